package favorites

import (
	"github.com/labstack/echo/v4"

	"github.com/Austionian/fishy-edge/internal/auth"
)

// RegisterRoutes sets up the favorite and unfavorite routes on the /v1
// group. Every route requires an identified caller.
func RegisterRoutes(g *echo.Group, h *Handler) {
	fav := g.Group("/favorite", auth.RequireUser())
	fav.GET("/", h.List)
	fav.POST("/fish/:uuid", h.FavoriteFish)
	fav.POST("/recipe/:uuid", h.FavoriteRecipe)

	unfav := g.Group("/unfavorite", auth.RequireUser())
	unfav.POST("/fish/:uuid", h.UnfavoriteFish)
	unfav.POST("/recipe/:uuid", h.UnfavoriteRecipe)
}
