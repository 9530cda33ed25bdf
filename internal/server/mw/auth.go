package mw

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/shivam-mishra-20/wheelboard-fe-sub002/internal/security"
	"github.com/shivam-mishra-20/wheelboard-fe-sub002/internal/server/resp"
)

const CtxSession = "session"

// RequireSession resolves X-User-Token into a security.Session stored under CtxSession.
func RequireSession(sessions *security.SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := strings.TrimSpace(c.GetHeader(HeaderUserToken))
		if raw == "" {
			resp.Abort(c, http.StatusUnauthorized, "missing X-User-Token")
			return
		}
		sess, err := sessions.Parse(raw)
		if err != nil {
			resp.Abort(c, http.StatusUnauthorized, "invalid X-User-Token")
			return
		}
		c.Set(CtxSession, sess)
		c.Next()
	}
}

func SessionFrom(c *gin.Context) security.Session {
	return c.MustGet(CtxSession).(security.Session)
}
