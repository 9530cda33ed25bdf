package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shivam-mishra-20/wheelboard-fe-sub002/internal/mockapi"
	"github.com/shivam-mishra-20/wheelboard-fe-sub002/internal/server/resp"
)

type KYCHandler struct {
	logger  *zap.Logger
	backend mockapi.Backend
}

func NewKYCHandler(logger *zap.Logger, backend mockapi.Backend) *KYCHandler {
	return &KYCHandler{logger: logger, backend: backend}
}

func (h *KYCHandler) Get(c *gin.Context) {
	userID := strings.TrimSpace(c.Param("user_id"))
	if userID == "" {
		resp.Error(c, http.StatusBadRequest, "user_id is required")
		return
	}
	data, err := h.backend.GetKYCStatus(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			resp.Error(c, 499, "request cancelled")
			return
		}
		h.logger.Warn("kyc status failed", zap.String("user_id", userID), zap.Error(err))
		resp.Error(c, http.StatusBadGateway, "kyc status unavailable")
		return
	}
	resp.OK(c, data)
}
