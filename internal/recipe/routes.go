package recipe

import (
	"github.com/labstack/echo/v4"

	"github.com/Austionian/fishy-edge/internal/auth"
)

// RegisterRoutes sets up the public recipe routes on the /v1 group.
// The single-recipe lookup runs the optional identity extractor so it
// can resolve the favorite flag for logged-in callers.
func RegisterRoutes(g *echo.Group, h *Handler) {
	g.GET("/recipe/", h.List)
	g.GET("/recipe/:uuid", h.GetRecipe, auth.OptionalUser())
}
