package favorites

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/Austionian/fishy-edge/internal/apperror"
	"github.com/Austionian/fishy-edge/internal/fish"
	"github.com/Austionian/fishy-edge/internal/recipe"
)

type mockFavoritesRepo struct {
	listFishTypesFunc func(ctx context.Context, userID uuid.UUID) ([]fish.FishType, error)
	listRecipesFunc   func(ctx context.Context, userID uuid.UUID) ([]recipe.Recipe, error)
	addFishFunc       func(ctx context.Context, userID, fishTypeID uuid.UUID) error
	addRecipeFunc     func(ctx context.Context, userID, recipeID uuid.UUID) error
	removeFishFunc    func(ctx context.Context, userID, fishTypeID uuid.UUID) error
	removeRecipeFunc  func(ctx context.Context, userID, recipeID uuid.UUID) error
}

func (m *mockFavoritesRepo) ListFishTypes(ctx context.Context, userID uuid.UUID) ([]fish.FishType, error) {
	return m.listFishTypesFunc(ctx, userID)
}

func (m *mockFavoritesRepo) ListRecipes(ctx context.Context, userID uuid.UUID) ([]recipe.Recipe, error) {
	return m.listRecipesFunc(ctx, userID)
}

func (m *mockFavoritesRepo) AddFish(ctx context.Context, userID, fishTypeID uuid.UUID) error {
	return m.addFishFunc(ctx, userID, fishTypeID)
}

func (m *mockFavoritesRepo) AddRecipe(ctx context.Context, userID, recipeID uuid.UUID) error {
	return m.addRecipeFunc(ctx, userID, recipeID)
}

func (m *mockFavoritesRepo) RemoveFish(ctx context.Context, userID, fishTypeID uuid.UUID) error {
	return m.removeFishFunc(ctx, userID, fishTypeID)
}

func (m *mockFavoritesRepo) RemoveRecipe(ctx context.Context, userID, recipeID uuid.UUID) error {
	return m.removeRecipeFunc(ctx, userID, recipeID)
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

func TestList_Success(t *testing.T) {
	userID := uuid.New()
	svc := NewFavoritesService(&mockFavoritesRepo{
		listFishTypesFunc: func(ctx context.Context, gotID uuid.UUID) ([]fish.FishType, error) {
			if gotID != userID {
				t.Errorf("expected user %s, got %s", userID, gotID)
			}
			return []fish.FishType{{ID: uuid.New(), Name: "Walleye"}}, nil
		},
		listRecipesFunc: func(ctx context.Context, gotID uuid.UUID) ([]recipe.Recipe, error) {
			return []recipe.Recipe{{ID: uuid.New(), Name: "Fish Fry"}}, nil
		},
	})

	favs, err := svc.List(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(favs.Fishs) != 1 || len(favs.Recipes) != 1 {
		t.Errorf("expected one fish and one recipe, got %d / %d", len(favs.Fishs), len(favs.Recipes))
	}
}

func TestList_RepoError(t *testing.T) {
	svc := NewFavoritesService(&mockFavoritesRepo{
		listFishTypesFunc: func(ctx context.Context, userID uuid.UUID) ([]fish.FishType, error) {
			return nil, errors.New("connection reset")
		},
	})

	_, err := svc.List(context.Background(), uuid.New())
	assertAppError(t, err, 500)
}

func TestFavoriteFish_DuplicateIsConflict(t *testing.T) {
	svc := NewFavoritesService(&mockFavoritesRepo{
		addFishFunc: func(ctx context.Context, userID, fishTypeID uuid.UUID) error {
			return apperror.NewConflict("already favorited")
		},
	})

	err := svc.FavoriteFish(context.Background(), uuid.New(), uuid.New())
	assertAppError(t, err, 409)
}

func TestFavoriteRecipe_PassesIDs(t *testing.T) {
	userID, recipeID := uuid.New(), uuid.New()
	svc := NewFavoritesService(&mockFavoritesRepo{
		addRecipeFunc: func(ctx context.Context, gotUser, gotRecipe uuid.UUID) error {
			if gotUser != userID || gotRecipe != recipeID {
				t.Errorf("wrong ids reached the repository: %s / %s", gotUser, gotRecipe)
			}
			return nil
		},
	})

	if err := svc.FavoriteRecipe(context.Background(), userID, recipeID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUnfavoriteFish_NoopSucceeds(t *testing.T) {
	svc := NewFavoritesService(&mockFavoritesRepo{
		removeFishFunc: func(ctx context.Context, userID, fishTypeID uuid.UUID) error {
			return nil
		},
	})

	if err := svc.UnfavoriteFish(context.Background(), uuid.New(), uuid.New()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUnfavoriteRecipe_RepoError(t *testing.T) {
	svc := NewFavoritesService(&mockFavoritesRepo{
		removeRecipeFunc: func(ctx context.Context, userID, recipeID uuid.UUID) error {
			return errors.New("connection reset")
		},
	})

	err := svc.UnfavoriteRecipe(context.Background(), uuid.New(), uuid.New())
	assertAppError(t, err, 500)
}
