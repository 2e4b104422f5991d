package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// CORS returns middleware that handles cross-origin requests from the
// frontend. Only origins in the allowed list receive CORS headers; an
// empty list allows any origin, which is only suitable for development.
func CORS(allowedOrigins ...string) echo.MiddlewareFunc {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = true
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			origin := c.Request().Header.Get(echo.HeaderOrigin)

			if origin != "" && (len(allowed) == 0 || allowed[origin]) {
				h := c.Response().Header()
				h.Set(echo.HeaderAccessControlAllowOrigin, origin)
				h.Set(echo.HeaderAccessControlAllowCredentials, "true")
				h.Set(echo.HeaderAccessControlAllowHeaders, "Authorization, Content-Type")
				h.Set(echo.HeaderAccessControlAllowMethods, "GET, POST, PUT, DELETE, OPTIONS")
				h.Add(echo.HeaderVary, echo.HeaderOrigin)
			}

			// Preflight requests stop here.
			if c.Request().Method == http.MethodOptions {
				return c.NoContent(http.StatusNoContent)
			}

			return next(c)
		}
	}
}
