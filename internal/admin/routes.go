package admin

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes sets up the admin console routes. The caller mounts
// them on a group already guarded by the identity and admin checks.
func RegisterRoutes(g *echo.Group, h *Handler) {
	f := g.Group("/fish")
	f.POST("/", h.CreateFish)
	f.PUT("/:uuid", h.UpdateFish)
	f.DELETE("/:uuid", h.DeleteFish)

	ft := g.Group("/fish_type")
	ft.GET("/", h.ListFishTypes)
	ft.GET("/:uuid", h.GetFishType)
	ft.POST("/", h.CreateFishType)
	ft.POST("/:uuid", h.UpdateFishType)
	ft.POST("/:uuid/image", h.UpdateFishTypeImage)

	r := g.Group("/recipe")
	r.POST("/", h.CreateRecipe)
	r.PUT("/:uuid", h.UpdateRecipe)
	r.PUT("/:uuid/image", h.UpdateRecipeImage)
	r.POST("/delete/:uuid", h.DeleteRecipe)
}
