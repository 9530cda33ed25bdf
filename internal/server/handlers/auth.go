package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shivam-mishra-20/wheelboard-fe-sub002/internal/mockapi"
	"github.com/shivam-mishra-20/wheelboard-fe-sub002/internal/security"
	"github.com/shivam-mishra-20/wheelboard-fe-sub002/internal/server/mw"
	"github.com/shivam-mishra-20/wheelboard-fe-sub002/internal/server/resp"
)

type AuthHandler struct {
	logger   *zap.Logger
	backend  mockapi.Backend
	sessions *security.SessionManager
}

func NewAuthHandler(logger *zap.Logger, backend mockapi.Backend, sessions *security.SessionManager) *AuthHandler {
	return &AuthHandler{logger: logger, backend: backend, sessions: sessions}
}

// authReply is the AuthResult plus the session the client should keep.
// Token fields are only set on success.
type authReply struct {
	mockapi.AuthResult
	Token      string `json:"token,omitempty"`
	ExpiresIn  int64  `json:"expiresIn,omitempty"`
	RedirectTo string `json:"redirectTo,omitempty"`
}

// Register always answers 200; a rejected registration is success=false in data.
func (h *AuthHandler) Register(c *gin.Context) {
	var p mockapi.Profile
	if err := c.ShouldBindJSON(&p); err != nil {
		h.reply(c, mockapi.AuthResult{Message: "invalid payload"})
		return
	}
	h.reply(c, h.backend.Register(c.Request.Context(), p))
}

func (h *AuthHandler) SocialLogin(c *gin.Context) {
	h.reply(c, h.backend.SocialLogin(c.Request.Context(), c.Param("provider")))
}

func (h *AuthHandler) reply(c *gin.Context, res mockapi.AuthResult) {
	out := authReply{AuthResult: res}
	if !res.Success || res.User == nil {
		h.logger.Info("auth rejected", zap.String("path", c.FullPath()), zap.String("message", res.Message))
		resp.Success(c, http.StatusOK, res.Message, out)
		return
	}

	token, expiresIn, err := h.sessions.Issue(res.User.ID, res.User.UserType)
	if err != nil {
		h.logger.Error("session issue failed", zap.Error(err))
		resp.Error(c, http.StatusInternalServerError, "token issue failed")
		return
	}
	out.Token = token
	out.ExpiresIn = expiresIn
	out.RedirectTo = res.User.UserType.HomeRoute()
	resp.Success(c, http.StatusOK, res.Message, out)
}

// Me echoes the session behind X-User-Token.
func (h *AuthHandler) Me(c *gin.Context) {
	sess := mw.SessionFrom(c)
	resp.OK(c, gin.H{
		"sessionId":  sess.ID,
		"userId":     sess.UserID,
		"userType":   sess.UserType,
		"redirectTo": sess.UserType.HomeRoute(),
	})
}
