package fish

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Austionian/fishy-edge/internal/apperror"
)

// FishService defines the business logic contract for the fish catalog.
type FishService interface {
	GetFish(ctx context.Context, fishID uuid.UUID) (*Detail, error)
	ListByLake(ctx context.Context, lake string) ([]Summary, error)
	GetAvg(ctx context.Context, fishTypeID uuid.UUID) (*AvgWithRecipes, error)
	ListAvgs(ctx context.Context) ([]Avg, error)
	ListTypes(ctx context.Context) ([]TypeSummary, error)
	MinMax(ctx context.Context, lake, attr string, useAvg bool) ([]MinMaxFish, error)
}

type fishService struct {
	repo FishRepository
}

// NewFishService creates a new fish service with the given repository.
func NewFishService(repo FishRepository) FishService {
	return &fishService{repo: repo}
}

// GetFish retrieves one fish sample.
func (s *fishService) GetFish(ctx context.Context, fishID uuid.UUID) (*Detail, error) {
	d, err := s.repo.FindByID(ctx, fishID)
	if err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}
		return nil, apperror.NewInternal(fmt.Errorf("getting fish: %w", err))
	}
	return d, nil
}

// ListByLake lists the fish recorded for a lake. An empty lake defaults
// to the commercial "Store" listing; an unknown lake is rejected.
func (s *fishService) ListByLake(ctx context.Context, lake string) ([]Summary, error) {
	if lake == "" {
		lake = "Store"
	}
	if !validLake(lake) {
		return nil, apperror.NewBadRequest("invalid lake")
	}

	fishs, err := s.repo.ListByLake(ctx, lake)
	if err != nil {
		return nil, apperror.NewInternal(fmt.Errorf("listing fish: %w", err))
	}
	return fishs, nil
}

// GetAvg retrieves one species' averages together with its recipes.
func (s *fishService) GetAvg(ctx context.Context, fishTypeID uuid.UUID) (*AvgWithRecipes, error) {
	avg, err := s.repo.AvgByType(ctx, fishTypeID)
	if err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}
		return nil, apperror.NewInternal(fmt.Errorf("getting fish averages: %w", err))
	}

	recipes, err := s.repo.RecipesForType(ctx, fishTypeID)
	if err != nil {
		return nil, apperror.NewInternal(fmt.Errorf("getting fish recipes: %w", err))
	}

	return &AvgWithRecipes{FishData: *avg, RecipeData: recipes}, nil
}

// ListAvgs lists every species with averaged values.
func (s *fishService) ListAvgs(ctx context.Context) ([]Avg, error) {
	avgs, err := s.repo.ListAvgs(ctx)
	if err != nil {
		return nil, apperror.NewInternal(fmt.Errorf("listing fish averages: %w", err))
	}
	return avgs, nil
}

// ListTypes lists the species index.
func (s *fishService) ListTypes(ctx context.Context) ([]TypeSummary, error) {
	types, err := s.repo.ListTypes(ctx)
	if err != nil {
		return nil, apperror.NewInternal(fmt.Errorf("listing fish types: %w", err))
	}
	return types, nil
}

// MinMax finds the fish with the lowest and highest value of one
// attribute in a lake. Unknown lakes fall back to Store and unknown
// attributes to protein rather than erroring, so a stale frontend
// still renders a chart.
func (s *fishService) MinMax(ctx context.Context, lake, attr string, useAvg bool) ([]MinMaxFish, error) {
	if !validLake(lake) {
		slog.Warn("invalid lake supplied, falling back", slog.String("lake", lake))
		lake = "Store"
	}
	if !validAttr(attr) {
		slog.Warn("invalid attr supplied, falling back", slog.String("attr", attr))
		attr = "protein"
	}

	fishs, err := s.repo.MinMax(ctx, lake, attr, useAvg)
	if err != nil {
		return nil, apperror.NewInternal(fmt.Errorf("querying min and max: %w", err))
	}
	return fishs, nil
}
