package recipe

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/Austionian/fishy-edge/internal/apperror"
)

// RecipeService defines the business logic contract for recipes.
type RecipeService interface {
	List(ctx context.Context) ([]Recipe, error)
	// GetRecipe returns a recipe with the favorite flag resolved for
	// userID. Pass uuid.Nil for anonymous callers.
	GetRecipe(ctx context.Context, recipeID, userID uuid.UUID) (*DetailResponse, error)
}

type recipeService struct {
	repo RecipeRepository
}

// NewRecipeService creates a new recipe service with the given repository.
func NewRecipeService(repo RecipeRepository) RecipeService {
	return &recipeService{repo: repo}
}

// List retrieves every recipe.
func (s *recipeService) List(ctx context.Context) ([]Recipe, error) {
	recipes, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperror.NewInternal(fmt.Errorf("listing recipes: %w", err))
	}
	return recipes, nil
}

// GetRecipe retrieves one recipe and, for identified callers, whether
// they have favorited it.
func (s *recipeService) GetRecipe(ctx context.Context, recipeID, userID uuid.UUID) (*DetailResponse, error) {
	rec, err := s.repo.FindByID(ctx, recipeID)
	if err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}
		return nil, apperror.NewInternal(fmt.Errorf("getting recipe: %w", err))
	}

	resp := &DetailResponse{Data: *rec}

	if userID != uuid.Nil {
		favorite, err := s.repo.IsFavorite(ctx, userID, recipeID)
		if err != nil {
			return nil, apperror.NewInternal(fmt.Errorf("checking favorite: %w", err))
		}
		resp.IsFavorite = favorite
	}

	return resp, nil
}
