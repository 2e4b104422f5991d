package recipe

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/Austionian/fishy-edge/internal/apperror"
)

// mockRecipeRepo implements RecipeRepository for testing.
type mockRecipeRepo struct {
	listFn       func(ctx context.Context) ([]Recipe, error)
	findByIDFn   func(ctx context.Context, recipeID uuid.UUID) (*Recipe, error)
	isFavoriteFn func(ctx context.Context, userID, recipeID uuid.UUID) (bool, error)

	favoriteChecked bool
}

func (m *mockRecipeRepo) List(ctx context.Context) ([]Recipe, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockRecipeRepo) FindByID(ctx context.Context, recipeID uuid.UUID) (*Recipe, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, recipeID)
	}
	return nil, apperror.NewNotFound("recipe not found")
}

func (m *mockRecipeRepo) IsFavorite(ctx context.Context, userID, recipeID uuid.UUID) (bool, error) {
	m.favoriteChecked = true
	if m.isFavoriteFn != nil {
		return m.isFavoriteFn(ctx, userID, recipeID)
	}
	return false, nil
}

func assertAppError(t *testing.T, err error, expectedCode int) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error with code %d, got nil", expectedCode)
	}
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *apperror.AppError, got %T: %v", err, err)
	}
	if appErr.Code != expectedCode {
		t.Errorf("expected status %d, got %d (message: %s)", expectedCode, appErr.Code, appErr.Message)
	}
}

func TestGetRecipe_AnonymousSkipsFavoriteCheck(t *testing.T) {
	repo := &mockRecipeRepo{
		findByIDFn: func(ctx context.Context, recipeID uuid.UUID) (*Recipe, error) {
			return &Recipe{ID: recipeID, Name: "Fish Stew"}, nil
		},
	}

	svc := NewRecipeService(repo)
	resp, err := svc.GetRecipe(context.Background(), uuid.New(), uuid.Nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.IsFavorite {
		t.Error("expected is_favorite false for anonymous caller")
	}
	if repo.favoriteChecked {
		t.Error("expected no favorite lookup for anonymous caller")
	}
}

func TestGetRecipe_IdentifiedResolvesFavorite(t *testing.T) {
	userID := uuid.New()
	recipeID := uuid.New()
	repo := &mockRecipeRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*Recipe, error) {
			return &Recipe{ID: id, Name: "Fish Stew"}, nil
		},
		isFavoriteFn: func(ctx context.Context, u, r uuid.UUID) (bool, error) {
			if u != userID || r != recipeID {
				t.Errorf("expected lookup for (%s, %s), got (%s, %s)", userID, recipeID, u, r)
			}
			return true, nil
		},
	}

	svc := NewRecipeService(repo)
	resp, err := svc.GetRecipe(context.Background(), recipeID, userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !resp.IsFavorite {
		t.Error("expected is_favorite true")
	}
}

func TestGetRecipe_NotFound(t *testing.T) {
	svc := NewRecipeService(&mockRecipeRepo{})

	_, err := svc.GetRecipe(context.Background(), uuid.New(), uuid.Nil)
	assertAppError(t, err, 404)
}

func TestList_RepoError(t *testing.T) {
	repo := &mockRecipeRepo{
		listFn: func(ctx context.Context) ([]Recipe, error) {
			return nil, errors.New("db read error")
		},
	}

	svc := NewRecipeService(repo)
	_, err := svc.List(context.Background())
	assertAppError(t, err, 500)
}
