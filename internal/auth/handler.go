package auth

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/Austionian/fishy-edge/internal/apperror"
)

// Handler handles HTTP requests for authentication (login, register,
// password change). Handlers are thin: they bind the request, call the
// service, and render the response. No business logic lives here.
type Handler struct {
	service AuthService
}

// NewHandler creates a new auth handler with the given service.
func NewHandler(service AuthService) *Handler {
	return &Handler{service: service}
}

// Login processes the login form submission (POST /v1/login).
func (h *Handler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return apperror.NewBadRequest("invalid request")
	}

	resp, err := h.service.Login(c.Request().Context(), Credentials{
		Username: req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, resp)
}

// Register processes the registration form submission (POST /v1/register).
func (h *Handler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return apperror.NewBadRequest("invalid request")
	}

	userID, err := h.service.Register(c.Request().Context(), Credentials{
		Username: req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, RegisterResponse{UserID: userID})
}

// ChangePassword processes a password change submission
// (POST /v1/user/change_password). The account comes from the identity
// cookie when present, falling back to the user_id form field; a
// request naming no account at all is 401.
func (h *Handler) ChangePassword(c echo.Context) error {
	var req ChangePasswordRequest
	if err := c.Bind(&req); err != nil {
		return apperror.NewBadRequest("invalid request")
	}

	userID, ok := UserID(c)
	if !ok {
		userID = req.UserID
	}
	if userID == uuid.Nil {
		return apperror.NewUnauthorized("authentication required")
	}

	err := h.service.ChangePassword(c.Request().Context(), ChangePasswordInput{
		UserID:           userID,
		CurrentPassword:  req.CurrentPassword,
		NewPassword:      req.NewPassword,
		NewPasswordCheck: req.NewPasswordCheck,
	})
	if err != nil {
		return err
	}

	return c.NoContent(http.StatusOK)
}
