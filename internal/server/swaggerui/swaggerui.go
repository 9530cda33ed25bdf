// Package swaggerui serves the embedded OpenAPI document and a Swagger UI page
// that keeps the required base headers in localStorage.
package swaggerui

import (
	_ "embed"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed openapi.yaml
var openapiYAML []byte

func Register(r *gin.Engine) {
	r.GET("/openapi.yaml", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/yaml; charset=utf-8", openapiYAML)
	})
	r.GET("/docs", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>WheelBoard API</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
    <style>.topbar { display: none; }</style>
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
    <script>
      window.onload = () => {
        const LS_PREFIX = 'wheelboard_auth_';
        const HEADERS = {
          DeviceTypeHeader: ['X-Device-Type', 'web'],
          LanguageHeader: ['X-Language', 'en'],
          ClientTokenHeader: ['X-Client-Token', ''],
          UserTokenHeader: ['X-User-Token', ''],
        };

        function getLS(name) {
          const v = localStorage.getItem(LS_PREFIX + name);
          return (v === null || v === '') ? HEADERS[name][1] : v;
        }
        function setLS(name, val) {
          try { localStorage.setItem(LS_PREFIX + name, val); } catch (e) {}
        }

        const PersistAuthPlugin = function() {
          return {
            wrapComponents: {
              apiKeyAuth: function(Original, system) {
                return function(props) {
                  const onChange = props.onChange;
                  const next = Object.assign({}, props, {
                    onChange: function(state) {
                      if (state && state.name in HEADERS) setLS(state.name, (state.value || '').toString());
                      if (onChange) onChange(state);
                    }
                  });
                  return system.React.createElement(Original, next);
                };
              }
            }
          };
        };

        window.ui = SwaggerUIBundle({
          url: '/openapi.yaml',
          dom_id: '#swagger-ui',
          deepLinking: true,
          persistAuthorization: true,
          docExpansion: 'none',
          defaultModelsExpandDepth: -1,
          plugins: [PersistAuthPlugin],
          requestInterceptor: (req) => {
            req.headers = req.headers || {};
            for (const name in HEADERS) {
              const v = getLS(name);
              if (v) req.headers[HEADERS[name][0]] = v;
            }
            return req;
          }
        });

        for (const name in HEADERS) {
          const v = getLS(name);
          if (v) {
            try { window.ui.preauthorizeApiKey(name, v); } catch (e) {}
          }
        }
      };
    </script>
  </body>
</html>`
