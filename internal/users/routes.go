package users

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes sets up the user profile routes on the /v1 group.
func RegisterRoutes(g *echo.Group, h *Handler) {
	user := g.Group("/user")
	user.GET("/:uuid", h.GetProfile)
	user.POST("/", h.UpdateProfile)
	user.POST("/update/account", h.UpdateAccount)
	user.POST("/update/image", h.UpdateImage)
	user.POST("/delete/:uuid", h.DeleteUser)
}
