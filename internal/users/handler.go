package users

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/Austionian/fishy-edge/internal/apperror"
)

// Handler handles HTTP requests for user profiles.
type Handler struct {
	service UserService
}

// NewHandler creates a new user handler with the given service.
func NewHandler(service UserService) *Handler {
	return &Handler{service: service}
}

// GetProfile returns the health profile for a user (GET /v1/user/:uuid).
func (h *Handler) GetProfile(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("uuid"))
	if err != nil {
		return apperror.NewBadRequest("invalid user id")
	}

	profile, err := h.service.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}

// UpdateProfile stores the intake form values (POST /v1/user/).
func (h *Handler) UpdateProfile(c echo.Context) error {
	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return apperror.NewBadRequest("invalid request body")
	}

	if err := h.service.UpdateProfile(c.Request().Context(), req); err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}

// UpdateAccount stores the account settings (POST /v1/user/update/account).
func (h *Handler) UpdateAccount(c echo.Context) error {
	var req UpdateAccountRequest
	if err := c.Bind(&req); err != nil {
		return apperror.NewBadRequest("invalid request body")
	}

	if err := h.service.UpdateAccount(c.Request().Context(), req); err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}

// UpdateImage stores a new profile image URL (POST /v1/user/update/image).
func (h *Handler) UpdateImage(c echo.Context) error {
	var req UpdateImageRequest
	if err := c.Bind(&req); err != nil {
		return apperror.NewBadRequest("invalid request body")
	}

	if err := h.service.UpdateImage(c.Request().Context(), req); err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}

// DeleteUser removes an account (POST /v1/user/delete/:uuid).
func (h *Handler) DeleteUser(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("uuid"))
	if err != nil {
		return apperror.NewBadRequest("invalid user id")
	}

	if err := h.service.DeleteUser(c.Request().Context(), userID); err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}
