package fish

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/Austionian/fishy-edge/internal/apperror"
)

// Handler handles HTTP requests for the fish catalog.
type Handler struct {
	service FishService
}

// NewHandler creates a new fish handler with the given service.
func NewHandler(service FishService) *Handler {
	return &Handler{service: service}
}

// GetFish returns one fish sample (GET /v1/fish/:uuid).
func (h *Handler) GetFish(c echo.Context) error {
	fishID, err := uuid.Parse(c.Param("uuid"))
	if err != nil {
		return apperror.NewBadRequest("invalid fish id")
	}

	d, err := h.service.GetFish(c.Request().Context(), fishID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, d)
}

// ListByLake returns the fish for a lake (GET /v1/fishs?lake=Huron).
func (h *Handler) ListByLake(c echo.Context) error {
	fishs, err := h.service.ListByLake(c.Request().Context(), c.QueryParam("lake"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, fishs)
}

// GetAvg returns one species' averages and recipes
// (GET /v1/fish_avg?fishtype_id=...).
func (h *Handler) GetAvg(c echo.Context) error {
	fishTypeID, err := uuid.Parse(c.QueryParam("fishtype_id"))
	if err != nil {
		return apperror.NewBadRequest("invalid fish type id")
	}

	data, err := h.service.GetAvg(c.Request().Context(), fishTypeID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, data)
}

// ListAvgs returns every species with averaged values (GET /v1/fish_avgs).
func (h *Handler) ListAvgs(c echo.Context) error {
	avgs, err := h.service.ListAvgs(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, avgs)
}

// ListTypes returns the species index (GET /v1/fish_types).
func (h *Handler) ListTypes(c echo.Context) error {
	types, err := h.service.ListTypes(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, types)
}

// MinMax returns the extremes for one attribute in a lake
// (GET /v1/min_and_max?lake=Huron&attr=protein&avg=false).
func (h *Handler) MinMax(c echo.Context) error {
	useAvg := c.QueryParam("avg") == "true"

	fishs, err := h.service.MinMax(c.Request().Context(),
		c.QueryParam("lake"), c.QueryParam("attr"), useAvg)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, fishs)
}
