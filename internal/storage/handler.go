package storage

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Austionian/fishy-edge/internal/apperror"
)

// PresignRequest names the object an admin wants to upload.
type PresignRequest struct {
	Name string `json:"name"`
}

// PresignResponse carries the time-limited upload URL.
type PresignResponse struct {
	URL string `json:"url"`
}

// Handler handles HTTP requests for upload URLs.
type Handler struct {
	service StorageService
}

// NewHandler creates a new storage handler with the given service.
func NewHandler(service StorageService) *Handler {
	return &Handler{service: service}
}

// Presign returns a presigned PUT URL (POST /v1/presign_s3).
func (h *Handler) Presign(c echo.Context) error {
	var req PresignRequest
	if err := c.Bind(&req); err != nil {
		return apperror.NewBadRequest("invalid request body")
	}

	url, err := h.service.UploadURL(c.Request().Context(), req.Name)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, PresignResponse{URL: url})
}
