package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/Austionian/fishy-edge/internal/apperror"
	"github.com/Austionian/fishy-edge/internal/fish"
	"github.com/Austionian/fishy-edge/internal/recipe"
)

type mockCatalogRepo struct {
	listSamplesFunc       func(ctx context.Context) ([]fish.Sample, error)
	listRecipesFunc       func(ctx context.Context) ([]recipe.Recipe, error)
	listSearchFishFunc    func(ctx context.Context) ([]SearchFish, error)
	listSearchRecipesFunc func(ctx context.Context) ([]SearchRecipe, error)
}

func (m *mockCatalogRepo) ListSamples(ctx context.Context) ([]fish.Sample, error) {
	return m.listSamplesFunc(ctx)
}

func (m *mockCatalogRepo) ListRecipes(ctx context.Context) ([]recipe.Recipe, error) {
	return m.listRecipesFunc(ctx)
}

func (m *mockCatalogRepo) ListSearchFish(ctx context.Context) ([]SearchFish, error) {
	return m.listSearchFishFunc(ctx)
}

func (m *mockCatalogRepo) ListSearchRecipes(ctx context.Context) ([]SearchRecipe, error) {
	return m.listSearchRecipesFunc(ctx)
}

func assertAppError(t *testing.T, err error, wantCode int) {
	t.Helper()
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected AppError, got %v", err)
	}
	if appErr.Code != wantCode {
		t.Errorf("expected code %d, got %d", wantCode, appErr.Code)
	}
}

func TestEverything_Success(t *testing.T) {
	svc := NewCatalogService(&mockCatalogRepo{
		listSamplesFunc: func(ctx context.Context) ([]fish.Sample, error) {
			return []fish.Sample{{ID: uuid.New(), Name: "Walleye", Lake: "Superior"}}, nil
		},
		listRecipesFunc: func(ctx context.Context) ([]recipe.Recipe, error) {
			return []recipe.Recipe{{ID: uuid.New(), Name: "Fish Fry"}}, nil
		},
	})

	got, err := svc.Everything(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Fishs) != 1 || len(got.Recipes) != 1 {
		t.Errorf("expected one fish and one recipe, got %d / %d", len(got.Fishs), len(got.Recipes))
	}
}

func TestEverything_SampleError(t *testing.T) {
	svc := NewCatalogService(&mockCatalogRepo{
		listSamplesFunc: func(ctx context.Context) ([]fish.Sample, error) {
			return nil, errors.New("connection reset")
		},
	})

	_, err := svc.Everything(context.Background())
	assertAppError(t, err, 500)
}

func TestSearch_Success(t *testing.T) {
	svc := NewCatalogService(&mockCatalogRepo{
		listSearchFishFunc: func(ctx context.Context) ([]SearchFish, error) {
			return []SearchFish{{Name: "Walleye"}}, nil
		},
		listSearchRecipesFunc: func(ctx context.Context) ([]SearchRecipe, error) {
			return []SearchRecipe{{RecipeName: "Fish Fry"}}, nil
		},
	})

	got, err := svc.Search(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.FishResult) != 1 || len(got.RecipeResult) != 1 {
		t.Errorf("expected one fish and one recipe result, got %d / %d",
			len(got.FishResult), len(got.RecipeResult))
	}
}

func TestSearch_RecipeError(t *testing.T) {
	svc := NewCatalogService(&mockCatalogRepo{
		listSearchFishFunc: func(ctx context.Context) ([]SearchFish, error) {
			return []SearchFish{}, nil
		},
		listSearchRecipesFunc: func(ctx context.Context) ([]SearchRecipe, error) {
			return nil, errors.New("connection reset")
		},
	})

	_, err := svc.Search(context.Background())
	assertAppError(t, err, 500)
}
