package storage

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes sets up the presign route on the /v1 group.
func RegisterRoutes(g *echo.Group, h *Handler) {
	g.POST("/presign_s3", h.Presign)
}
