package mw

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/shivam-mishra-20/wheelboard-fe-sub002/internal/config"
	"github.com/shivam-mishra-20/wheelboard-fe-sub002/internal/server/resp"
)

const (
	HeaderDeviceType  = "X-Device-Type"
	HeaderLanguage    = "X-Language"
	HeaderClientToken = "X-Client-Token"
	HeaderUserToken   = "X-User-Token"

	CtxLanguage = "language"
)

func RequireBaseHeaders(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		device := strings.ToLower(strings.TrimSpace(c.GetHeader(HeaderDeviceType)))
		lang := strings.ToLower(strings.TrimSpace(c.GetHeader(HeaderLanguage)))
		clientToken := strings.TrimSpace(c.GetHeader(HeaderClientToken))

		if device == "" || lang == "" || clientToken == "" {
			resp.Abort(c, http.StatusBadRequest, "missing required headers: X-Device-Type, X-Language, X-Client-Token")
			return
		}

		switch device {
		case "ios", "android", "web":
		default:
			resp.Abort(c, http.StatusBadRequest, "invalid X-Device-Type (allowed: ios, android, web)")
			return
		}

		switch lang {
		case "en", "hi":
		default:
			resp.Abort(c, http.StatusBadRequest, "invalid X-Language (allowed: en, hi)")
			return
		}

		if cfg.ClientTokenExpected != "" &&
			subtle.ConstantTimeCompare([]byte(clientToken), []byte(cfg.ClientTokenExpected)) != 1 {
			resp.Abort(c, http.StatusUnauthorized, "invalid X-Client-Token")
			return
		}

		c.Set(CtxLanguage, lang)
		c.Next()
	}
}
