package catalog

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Handler handles HTTP requests for the aggregate endpoints.
type Handler struct {
	service CatalogService
}

// NewHandler creates a new catalog handler with the given service.
func NewHandler(service CatalogService) *Handler {
	return &Handler{service: service}
}

// Everything returns the full dataset (GET /v1/everything).
func (h *Handler) Everything(c echo.Context) error {
	data, err := h.service.Everything(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, data)
}

// Search returns the search index (GET /v1/search).
func (h *Handler) Search(c echo.Context) error {
	result, err := h.service.Search(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}
