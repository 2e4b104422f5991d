package analytics

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes sets up the dashboard route. The caller mounts it on
// a group already guarded by the identity and admin checks.
func RegisterRoutes(g *echo.Group, h *Handler) {
	g.GET("/analytics/", h.Dashboard)
}
