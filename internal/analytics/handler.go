package analytics

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Handler handles HTTP requests for the admin dashboard.
type Handler struct {
	service AnalyticsService
}

// NewHandler creates a new analytics handler with the given service.
func NewHandler(service AnalyticsService) *Handler {
	return &Handler{service: service}
}

// Dashboard returns the dashboard summary
// (GET /v1/admin/analytics/).
func (h *Handler) Dashboard(c echo.Context) error {
	data, err := h.service.Dashboard(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, data)
}
