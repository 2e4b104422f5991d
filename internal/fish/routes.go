package fish

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes sets up the public fish catalog routes on the /v1 group.
func RegisterRoutes(g *echo.Group, h *Handler) {
	g.GET("/fish/:uuid", h.GetFish)
	g.GET("/fishs", h.ListByLake)
	g.GET("/fish_avg", h.GetAvg)
	g.GET("/fish_avgs", h.ListAvgs)
	g.GET("/fish_types", h.ListTypes)
	g.GET("/min_and_max", h.MinMax)
}
