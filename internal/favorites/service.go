package favorites

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/Austionian/fishy-edge/internal/apperror"
)

// FavoritesService defines the business logic contract for favorites.
type FavoritesService interface {
	List(ctx context.Context, userID uuid.UUID) (*Favorites, error)
	FavoriteFish(ctx context.Context, userID, fishTypeID uuid.UUID) error
	FavoriteRecipe(ctx context.Context, userID, recipeID uuid.UUID) error
	UnfavoriteFish(ctx context.Context, userID, fishTypeID uuid.UUID) error
	UnfavoriteRecipe(ctx context.Context, userID, recipeID uuid.UUID) error
}

type favoritesService struct {
	repo FavoritesRepository
}

// NewFavoritesService creates a new favorites service with the given
// repository.
func NewFavoritesService(repo FavoritesRepository) FavoritesService {
	return &favoritesService{repo: repo}
}

// List retrieves the caller's favorited species and recipes.
func (s *favoritesService) List(ctx context.Context, userID uuid.UUID) (*Favorites, error) {
	fishs, err := s.repo.ListFishTypes(ctx, userID)
	if err != nil {
		return nil, apperror.NewInternal(fmt.Errorf("listing favorite fish: %w", err))
	}

	recipes, err := s.repo.ListRecipes(ctx, userID)
	if err != nil {
		return nil, apperror.NewInternal(fmt.Errorf("listing favorite recipes: %w", err))
	}

	return &Favorites{Fishs: fishs, Recipes: recipes}, nil
}

// FavoriteFish marks a species as a favorite.
func (s *favoritesService) FavoriteFish(ctx context.Context, userID, fishTypeID uuid.UUID) error {
	return wrapWriteErr(s.repo.AddFish(ctx, userID, fishTypeID), "favoriting fish")
}

// FavoriteRecipe marks a recipe as a favorite.
func (s *favoritesService) FavoriteRecipe(ctx context.Context, userID, recipeID uuid.UUID) error {
	return wrapWriteErr(s.repo.AddRecipe(ctx, userID, recipeID), "favoriting recipe")
}

// UnfavoriteFish removes a species from the favorites.
func (s *favoritesService) UnfavoriteFish(ctx context.Context, userID, fishTypeID uuid.UUID) error {
	return wrapWriteErr(s.repo.RemoveFish(ctx, userID, fishTypeID), "unfavoriting fish")
}

// UnfavoriteRecipe removes a recipe from the favorites.
func (s *favoritesService) UnfavoriteRecipe(ctx context.Context, userID, recipeID uuid.UUID) error {
	return wrapWriteErr(s.repo.RemoveRecipe(ctx, userID, recipeID), "unfavoriting recipe")
}

// wrapWriteErr passes app errors through and wraps everything else as
// internal.
func wrapWriteErr(err error, op string) error {
	if err == nil {
		return nil
	}
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return apperror.NewInternal(fmt.Errorf("%s: %w", op, err))
}
