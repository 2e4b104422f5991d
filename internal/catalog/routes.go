package catalog

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes sets up the aggregate read routes on the /v1 group.
func RegisterRoutes(g *echo.Group, h *Handler) {
	g.GET("/everything", h.Everything)
	g.GET("/search", h.Search)
}
