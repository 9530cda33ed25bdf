package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shivam-mishra-20/wheelboard-fe-sub002/internal/catalog"
	"github.com/shivam-mishra-20/wheelboard-fe-sub002/internal/certificate"
	"github.com/shivam-mishra-20/wheelboard-fe-sub002/internal/domain"
	"github.com/shivam-mishra-20/wheelboard-fe-sub002/internal/query"
	"github.com/shivam-mishra-20/wheelboard-fe-sub002/internal/server/resp"
)

type LearningHandler struct {
	logger *zap.Logger
	cat    *catalog.Catalog
}

func NewLearningHandler(logger *zap.Logger, cat *catalog.Catalog) *LearningHandler {
	return &LearningHandler{logger: logger, cat: cat}
}

var moduleList = listSpec[catalog.LearningModule, domain.Difficulty]{
	fields:      catalog.ModuleFields,
	statusParam: "difficulty",
	status:      func(m catalog.LearningModule) domain.Difficulty { return m.Difficulty },
	valid:       domain.Difficulty.Valid,
}

// List accepts ?completed=true|false on top of the usual search parameters.
func (h *LearningHandler) List(c *gin.Context) {
	items := h.cat.LearningModules()
	if raw := c.Query("completed"); raw != "" {
		done, err := strconv.ParseBool(raw)
		if err != nil {
			resp.Error(c, http.StatusBadRequest, "invalid completed")
			return
		}
		items = query.FilterByStatus(items, func(m catalog.LearningModule) bool { return m.Completed }, []bool{done})
	}
	writeList(c, items, moduleList)
}

func (h *LearningHandler) Get(c *gin.Context) {
	m, ok := h.cat.LearningModule(c.Param("id"))
	if !ok {
		resp.NotFound(c, "learning module")
		return
	}
	resp.OK(c, m)
}

func (h *LearningHandler) Stats(c *gin.Context) {
	resp.OK(c, catalog.ComputeLearningStats(h.cat.LearningModules()))
}

// Certificate renders the PDF for a completed module; ?holder= sets the name on it.
func (h *LearningHandler) Certificate(c *gin.Context) {
	m, ok := h.cat.LearningModule(c.Param("id"))
	if !ok {
		resp.NotFound(c, "learning module")
		return
	}

	var buf bytes.Buffer
	holder := strings.TrimSpace(c.Query("holder"))
	if err := certificate.Render(&buf, m, holder, time.Now()); err != nil {
		if errors.Is(err, certificate.ErrNotCompleted) {
			resp.Error(c, http.StatusConflict, "module not completed")
			return
		}
		if errors.Is(err, certificate.ErrUnsupportedText) {
			resp.Error(c, http.StatusBadRequest, "holder must use Latin characters")
			return
		}
		h.logger.Error("render certificate failed", zap.String("module_id", m.ID), zap.Error(err))
		resp.Error(c, http.StatusInternalServerError, "internal error")
		return
	}
	c.Header("Content-Disposition", `attachment; filename="certificate-`+m.ID+`.pdf"`)
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
