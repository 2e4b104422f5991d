package admin

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/Austionian/fishy-edge/internal/apperror"
)

// Handler handles HTTP requests for the admin console.
type Handler struct {
	service AdminService
}

// NewHandler creates a new admin handler with the given service.
func NewHandler(service AdminService) *Handler {
	return &Handler{service: service}
}

// CreateFish stores a new fish sample (POST /v1/admin/fish/).
func (h *Handler) CreateFish(c echo.Context) error {
	var req NewFishRequest
	if err := c.Bind(&req); err != nil {
		return apperror.NewBadRequest("invalid request body")
	}

	fishID, err := h.service.CreateFish(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, CreatedResponse{ID: fishID})
}

// UpdateFish updates a sample's nutrient values (PUT /v1/admin/fish/:uuid).
func (h *Handler) UpdateFish(c echo.Context) error {
	fishID, err := parseID(c)
	if err != nil {
		return err
	}

	var req UpdateFishRequest
	if err := c.Bind(&req); err != nil {
		return apperror.NewBadRequest("invalid request body")
	}

	if err := h.service.UpdateFish(c.Request().Context(), fishID, req); err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}

// DeleteFish removes a sample (DELETE /v1/admin/fish/:uuid).
func (h *Handler) DeleteFish(c echo.Context) error {
	fishID, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteFish(c.Request().Context(), fishID); err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}

// ListFishTypes returns every species (GET /v1/admin/fish_type/).
func (h *Handler) ListFishTypes(c echo.Context) error {
	types, err := h.service.ListFishTypes(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, types)
}

// GetFishType returns one species with its recipe links
// (GET /v1/admin/fish_type/:uuid).
func (h *Handler) GetFishType(c echo.Context) error {
	fishTypeID, err := parseID(c)
	if err != nil {
		return err
	}

	detail, err := h.service.GetFishType(c.Request().Context(), fishTypeID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, detail)
}

// CreateFishType stores a new species (POST /v1/admin/fish_type/).
func (h *Handler) CreateFishType(c echo.Context) error {
	var req NewFishTypeRequest
	if err := c.Bind(&req); err != nil {
		return apperror.NewBadRequest("invalid request body")
	}

	fishTypeID, err := h.service.CreateFishType(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, CreatedResponse{ID: fishTypeID})
}

// UpdateFishType stores species edits (POST /v1/admin/fish_type/:uuid).
func (h *Handler) UpdateFishType(c echo.Context) error {
	fishTypeID, err := parseID(c)
	if err != nil {
		return err
	}

	var req UpdateFishTypeRequest
	if err := c.Bind(&req); err != nil {
		return apperror.NewBadRequest("invalid request body")
	}

	if err := h.service.UpdateFishType(c.Request().Context(), fishTypeID, req); err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}

// UpdateFishTypeImage points a species at a new uploaded image
// (POST /v1/admin/fish_type/:uuid/image).
func (h *Handler) UpdateFishTypeImage(c echo.Context) error {
	fishTypeID, err := parseID(c)
	if err != nil {
		return err
	}

	var req UpdateFishTypeImageRequest
	if err := c.Bind(&req); err != nil {
		return apperror.NewBadRequest("invalid request body")
	}

	if err := h.service.UpdateFishTypeImage(c.Request().Context(), fishTypeID, req); err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}

// CreateRecipe stores a new recipe (POST /v1/admin/recipe/).
func (h *Handler) CreateRecipe(c echo.Context) error {
	var req RecipeRequest
	if err := c.Bind(&req); err != nil {
		return apperror.NewBadRequest("invalid request body")
	}

	recipeID, err := h.service.CreateRecipe(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, CreatedResponse{ID: recipeID})
}

// UpdateRecipe stores recipe edits (PUT /v1/admin/recipe/:uuid).
func (h *Handler) UpdateRecipe(c echo.Context) error {
	recipeID, err := parseID(c)
	if err != nil {
		return err
	}

	var req RecipeRequest
	if err := c.Bind(&req); err != nil {
		return apperror.NewBadRequest("invalid request body")
	}

	if err := h.service.UpdateRecipe(c.Request().Context(), recipeID, req); err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}

// UpdateRecipeImage points a recipe at a new uploaded image
// (PUT /v1/admin/recipe/:uuid/image).
func (h *Handler) UpdateRecipeImage(c echo.Context) error {
	recipeID, err := parseID(c)
	if err != nil {
		return err
	}

	var req UpdateRecipeImageRequest
	if err := c.Bind(&req); err != nil {
		return apperror.NewBadRequest("invalid request body")
	}

	if err := h.service.UpdateRecipeImage(c.Request().Context(), recipeID, req); err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}

// DeleteRecipe removes a recipe and its species links
// (POST /v1/admin/recipe/delete/:uuid).
func (h *Handler) DeleteRecipe(c echo.Context) error {
	recipeID, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteRecipe(c.Request().Context(), recipeID); err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}

// parseID reads the :uuid path parameter.
func parseID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("uuid"))
	if err != nil {
		return uuid.Nil, apperror.NewBadRequest("invalid id")
	}
	return id, nil
}
