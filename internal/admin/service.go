package admin

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/Austionian/fishy-edge/internal/apperror"
	"github.com/Austionian/fishy-edge/internal/fish"
	"github.com/Austionian/fishy-edge/internal/sanitize"
)

// AdminService defines the business logic contract for the admin
// console.
type AdminService interface {
	CreateFish(ctx context.Context, req NewFishRequest) (uuid.UUID, error)
	UpdateFish(ctx context.Context, fishID uuid.UUID, req UpdateFishRequest) error
	DeleteFish(ctx context.Context, fishID uuid.UUID) error

	ListFishTypes(ctx context.Context) ([]fish.FishType, error)
	GetFishType(ctx context.Context, fishTypeID uuid.UUID) (*FishTypeDetail, error)
	CreateFishType(ctx context.Context, req NewFishTypeRequest) (uuid.UUID, error)
	UpdateFishType(ctx context.Context, fishTypeID uuid.UUID, req UpdateFishTypeRequest) error
	UpdateFishTypeImage(ctx context.Context, fishTypeID uuid.UUID, req UpdateFishTypeImageRequest) error

	CreateRecipe(ctx context.Context, req RecipeRequest) (uuid.UUID, error)
	UpdateRecipe(ctx context.Context, recipeID uuid.UUID, req RecipeRequest) error
	UpdateRecipeImage(ctx context.Context, recipeID uuid.UUID, req UpdateRecipeImageRequest) error
	DeleteRecipe(ctx context.Context, recipeID uuid.UUID) error
}

type adminService struct {
	repo AdminRepository
}

// NewAdminService creates a new admin service with the given
// repository.
func NewAdminService(repo AdminRepository) AdminService {
	return &adminService{repo: repo}
}

// CreateFish validates and stores a new fish sample.
func (s *adminService) CreateFish(ctx context.Context, req NewFishRequest) (uuid.UUID, error) {
	if req.FishTypeID == uuid.Nil {
		return uuid.Nil, apperror.NewBadRequest("fish_type_id is required")
	}
	if !validLake(req.Lake) {
		return uuid.Nil, apperror.NewBadRequest("unknown lake")
	}

	fishID := uuid.New()
	if err := s.repo.CreateFish(ctx, fishID, req); err != nil {
		return uuid.Nil, wrapErr(err, "creating fish")
	}
	return fishID, nil
}

// UpdateFish updates the nutrient values of one sample.
func (s *adminService) UpdateFish(ctx context.Context, fishID uuid.UUID, req UpdateFishRequest) error {
	return wrapErr(s.repo.UpdateFish(ctx, fishID, req), "updating fish")
}

// DeleteFish removes one sample.
func (s *adminService) DeleteFish(ctx context.Context, fishID uuid.UUID) error {
	return wrapErr(s.repo.DeleteFish(ctx, fishID), "deleting fish")
}

// ListFishTypes retrieves every species.
func (s *adminService) ListFishTypes(ctx context.Context) ([]fish.FishType, error) {
	types, err := s.repo.ListFishTypes(ctx)
	if err != nil {
		return nil, wrapErr(err, "listing fish types")
	}
	return types, nil
}

// GetFishType retrieves one species with its linked recipe ids.
func (s *adminService) GetFishType(ctx context.Context, fishTypeID uuid.UUID) (*FishTypeDetail, error) {
	detail, err := s.repo.FindFishType(ctx, fishTypeID)
	if err != nil {
		return nil, wrapErr(err, "fetching fish type")
	}
	return detail, nil
}

// CreateFishType validates, sanitizes and stores a new species.
func (s *adminService) CreateFishType(ctx context.Context, req NewFishTypeRequest) (uuid.UUID, error) {
	req.Name = sanitize.Text(req.Name)
	if req.Name == "" {
		return uuid.Nil, apperror.NewBadRequest("name is required")
	}
	req.About = sanitize.HTML(req.About)

	fishTypeID := uuid.New()
	if err := s.repo.CreateFishType(ctx, fishTypeID, req); err != nil {
		return uuid.Nil, wrapErr(err, "creating fish type")
	}
	return fishTypeID, nil
}

// UpdateFishType sanitizes and stores species edits, replacing the
// recipe links when a set is supplied.
func (s *adminService) UpdateFishType(ctx context.Context, fishTypeID uuid.UUID, req UpdateFishTypeRequest) error {
	req.Name = sanitize.Text(req.Name)
	if req.Name == "" {
		return apperror.NewBadRequest("name is required")
	}
	req.About = sanitize.HTML(req.About)

	return wrapErr(s.repo.UpdateFishType(ctx, fishTypeID, req), "updating fish type")
}

// UpdateFishTypeImage points a species at a new uploaded image.
func (s *adminService) UpdateFishTypeImage(ctx context.Context, fishTypeID uuid.UUID, req UpdateFishTypeImageRequest) error {
	if req.ImageURL == "" {
		return apperror.NewBadRequest("image_url is required")
	}
	return wrapErr(s.repo.UpdateFishTypeImage(ctx, fishTypeID, req), "updating fish type image")
}

// CreateRecipe validates, sanitizes and stores a new recipe.
func (s *adminService) CreateRecipe(ctx context.Context, req RecipeRequest) (uuid.UUID, error) {
	if err := cleanRecipe(&req); err != nil {
		return uuid.Nil, err
	}

	recipeID := uuid.New()
	if err := s.repo.CreateRecipe(ctx, recipeID, req); err != nil {
		return uuid.Nil, wrapErr(err, "creating recipe")
	}
	return recipeID, nil
}

// UpdateRecipe sanitizes and stores recipe edits.
func (s *adminService) UpdateRecipe(ctx context.Context, recipeID uuid.UUID, req RecipeRequest) error {
	if err := cleanRecipe(&req); err != nil {
		return err
	}
	return wrapErr(s.repo.UpdateRecipe(ctx, recipeID, req), "updating recipe")
}

// UpdateRecipeImage points a recipe at a new uploaded image.
func (s *adminService) UpdateRecipeImage(ctx context.Context, recipeID uuid.UUID, req UpdateRecipeImageRequest) error {
	if req.ImageURL == "" {
		return apperror.NewBadRequest("image_url is required")
	}
	return wrapErr(s.repo.UpdateRecipeImage(ctx, recipeID, req.ImageURL), "updating recipe image")
}

// DeleteRecipe removes a recipe and its species links.
func (s *adminService) DeleteRecipe(ctx context.Context, recipeID uuid.UUID) error {
	return wrapErr(s.repo.DeleteRecipe(ctx, recipeID), "deleting recipe")
}

// cleanRecipe sanitizes recipe fields and checks the name is present.
func cleanRecipe(req *RecipeRequest) error {
	req.Name = sanitize.Text(req.Name)
	if req.Name == "" {
		return apperror.NewBadRequest("name is required")
	}
	req.Ingredients = sanitize.TextSlice(req.Ingredients)
	req.Steps = sanitize.TextSlice(req.Steps)
	return nil
}

// validLake reports whether lake is one of the recorded lakes.
func validLake(lake string) bool {
	for _, l := range fish.ValidLakes {
		if l == lake {
			return true
		}
	}
	return false
}

// wrapErr passes app errors through and wraps everything else as
// internal.
func wrapErr(err error, op string) error {
	if err == nil {
		return nil
	}
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return apperror.NewInternal(fmt.Errorf("%s: %w", op, err))
}
