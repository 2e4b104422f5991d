package recipe

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/Austionian/fishy-edge/internal/apperror"
	"github.com/Austionian/fishy-edge/internal/auth"
)

// Handler handles HTTP requests for recipes.
type Handler struct {
	service RecipeService
}

// NewHandler creates a new recipe handler with the given service.
func NewHandler(service RecipeService) *Handler {
	return &Handler{service: service}
}

// List returns every recipe (GET /v1/recipe/).
func (h *Handler) List(c echo.Context) error {
	recipes, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, recipes)
}

// GetRecipe returns one recipe with the caller's favorite flag
// (GET /v1/recipe/:uuid).
func (h *Handler) GetRecipe(c echo.Context) error {
	recipeID, err := uuid.Parse(c.Param("uuid"))
	if err != nil {
		return apperror.NewBadRequest("invalid recipe id")
	}

	// uuid.Nil when the request carries no identity cookie.
	userID, _ := auth.UserID(c)

	resp, err := h.service.GetRecipe(c.Request().Context(), recipeID, userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}
