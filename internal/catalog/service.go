package catalog

import (
	"context"
	"fmt"

	"github.com/Austionian/fishy-edge/internal/apperror"
)

// CatalogService defines the business logic contract for the aggregate
// endpoints.
type CatalogService interface {
	Everything(ctx context.Context) (*Everything, error)
	Search(ctx context.Context) (*SearchResult, error)
}

type catalogService struct {
	repo CatalogRepository
}

// NewCatalogService creates a new catalog service with the given repository.
func NewCatalogService(repo CatalogRepository) CatalogService {
	return &catalogService{repo: repo}
}

// Everything assembles the full dataset dump.
func (s *catalogService) Everything(ctx context.Context) (*Everything, error) {
	fishs, err := s.repo.ListSamples(ctx)
	if err != nil {
		return nil, apperror.NewInternal(fmt.Errorf("listing samples: %w", err))
	}

	recipes, err := s.repo.ListRecipes(ctx)
	if err != nil {
		return nil, apperror.NewInternal(fmt.Errorf("listing recipes: %w", err))
	}

	return &Everything{Fishs: fishs, Recipes: recipes}, nil
}

// Search assembles the search index.
func (s *catalogService) Search(ctx context.Context) (*SearchResult, error) {
	fishResult, err := s.repo.ListSearchFish(ctx)
	if err != nil {
		return nil, apperror.NewInternal(fmt.Errorf("listing search fish: %w", err))
	}

	recipeResult, err := s.repo.ListSearchRecipes(ctx)
	if err != nil {
		return nil, apperror.NewInternal(fmt.Errorf("listing search recipes: %w", err))
	}

	return &SearchResult{FishResult: fishResult, RecipeResult: recipeResult}, nil
}
