package favorites

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/Austionian/fishy-edge/internal/apperror"
	"github.com/Austionian/fishy-edge/internal/auth"
)

// Handler handles HTTP requests for favorites.
type Handler struct {
	service FavoritesService
}

// NewHandler creates a new favorites handler with the given service.
func NewHandler(service FavoritesService) *Handler {
	return &Handler{service: service}
}

// List returns the caller's favorites (GET /v1/favorite/).
func (h *Handler) List(c echo.Context) error {
	userID, ok := auth.UserID(c)
	if !ok {
		return apperror.NewUnauthorized("authentication required")
	}

	favs, err := h.service.List(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, favs)
}

// FavoriteFish marks a species as a favorite (POST /v1/favorite/fish/:uuid).
func (h *Handler) FavoriteFish(c echo.Context) error {
	return mutate(c, h.service.FavoriteFish)
}

// FavoriteRecipe marks a recipe as a favorite (POST /v1/favorite/recipe/:uuid).
func (h *Handler) FavoriteRecipe(c echo.Context) error {
	return mutate(c, h.service.FavoriteRecipe)
}

// UnfavoriteFish removes a species favorite (POST /v1/unfavorite/fish/:uuid).
func (h *Handler) UnfavoriteFish(c echo.Context) error {
	return mutate(c, h.service.UnfavoriteFish)
}

// UnfavoriteRecipe removes a recipe favorite (POST /v1/unfavorite/recipe/:uuid).
func (h *Handler) UnfavoriteRecipe(c echo.Context) error {
	return mutate(c, h.service.UnfavoriteRecipe)
}

// mutate resolves the caller and target id, then runs one of the four
// favorite/unfavorite operations. They all share this shape.
func mutate(c echo.Context, op func(ctx context.Context, userID, targetID uuid.UUID) error) error {
	userID, ok := auth.UserID(c)
	if !ok {
		return apperror.NewUnauthorized("authentication required")
	}

	targetID, err := uuid.Parse(c.Param("uuid"))
	if err != nil {
		return apperror.NewBadRequest("invalid id")
	}

	if err := op(c.Request().Context(), userID, targetID); err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}
