package fish

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/Austionian/fishy-edge/internal/apperror"
)

// mockFishRepo implements FishRepository for testing.
type mockFishRepo struct {
	findByIDFn       func(ctx context.Context, fishID uuid.UUID) (*Detail, error)
	listByLakeFn     func(ctx context.Context, lake string) ([]Summary, error)
	avgByTypeFn      func(ctx context.Context, fishTypeID uuid.UUID) (*Avg, error)
	recipesForTypeFn func(ctx context.Context, fishTypeID uuid.UUID) ([]Recipe, error)
	listAvgsFn       func(ctx context.Context) ([]Avg, error)
	listTypesFn      func(ctx context.Context) ([]TypeSummary, error)
	minMaxFn         func(ctx context.Context, lake, attr string, useAvg bool) ([]MinMaxFish, error)
}

func (m *mockFishRepo) FindByID(ctx context.Context, fishID uuid.UUID) (*Detail, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, fishID)
	}
	return nil, apperror.NewNotFound("fish not found")
}

func (m *mockFishRepo) ListByLake(ctx context.Context, lake string) ([]Summary, error) {
	if m.listByLakeFn != nil {
		return m.listByLakeFn(ctx, lake)
	}
	return nil, nil
}

func (m *mockFishRepo) AvgByType(ctx context.Context, fishTypeID uuid.UUID) (*Avg, error) {
	if m.avgByTypeFn != nil {
		return m.avgByTypeFn(ctx, fishTypeID)
	}
	return nil, apperror.NewNotFound("fish type not found")
}

func (m *mockFishRepo) RecipesForType(ctx context.Context, fishTypeID uuid.UUID) ([]Recipe, error) {
	if m.recipesForTypeFn != nil {
		return m.recipesForTypeFn(ctx, fishTypeID)
	}
	return nil, nil
}

func (m *mockFishRepo) ListAvgs(ctx context.Context) ([]Avg, error) {
	if m.listAvgsFn != nil {
		return m.listAvgsFn(ctx)
	}
	return nil, nil
}

func (m *mockFishRepo) ListTypes(ctx context.Context) ([]TypeSummary, error) {
	if m.listTypesFn != nil {
		return m.listTypesFn(ctx)
	}
	return nil, nil
}

func (m *mockFishRepo) MinMax(ctx context.Context, lake, attr string, useAvg bool) ([]MinMaxFish, error) {
	if m.minMaxFn != nil {
		return m.minMaxFn(ctx, lake, attr, useAvg)
	}
	return nil, nil
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

func TestListByLake_DefaultsToStore(t *testing.T) {
	var queriedLake string
	repo := &mockFishRepo{
		listByLakeFn: func(ctx context.Context, lake string) ([]Summary, error) {
			queriedLake = lake
			return []Summary{}, nil
		},
	}

	svc := NewFishService(repo)
	if _, err := svc.ListByLake(context.Background(), ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if queriedLake != "Store" {
		t.Errorf("expected empty lake to default to Store, got %q", queriedLake)
	}
}

func TestListByLake_RejectsUnknownLake(t *testing.T) {
	svc := NewFishService(&mockFishRepo{})

	_, err := svc.ListByLake(context.Background(), "Erie")
	assertAppError(t, err, 400)
}

func TestListByLake_AcceptsAllValidLakes(t *testing.T) {
	repo := &mockFishRepo{
		listByLakeFn: func(ctx context.Context, lake string) ([]Summary, error) {
			return []Summary{}, nil
		},
	}
	svc := NewFishService(repo)

	for _, lake := range ValidLakes {
		if _, err := svc.ListByLake(context.Background(), lake); err != nil {
			t.Errorf("lake %q: unexpected error: %v", lake, err)
		}
	}
}

func TestGetFish_NotFound(t *testing.T) {
	svc := NewFishService(&mockFishRepo{})

	_, err := svc.GetFish(context.Background(), uuid.New())
	assertAppError(t, err, 404)
}

func TestGetAvg_CombinesFishAndRecipes(t *testing.T) {
	typeID := uuid.New()
	repo := &mockFishRepo{
		avgByTypeFn: func(ctx context.Context, fishTypeID uuid.UUID) (*Avg, error) {
			return &Avg{FishID: fishTypeID, Name: "Herring"}, nil
		},
		recipesForTypeFn: func(ctx context.Context, fishTypeID uuid.UUID) ([]Recipe, error) {
			return []Recipe{{ID: uuid.New(), Name: "Fish Stew"}}, nil
		},
	}

	svc := NewFishService(repo)
	data, err := svc.GetAvg(context.Background(), typeID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if data.FishData.Name != "Herring" {
		t.Errorf("expected fish data, got %+v", data.FishData)
	}
	if len(data.RecipeData) != 1 || data.RecipeData[0].Name != "Fish Stew" {
		t.Errorf("expected recipe data, got %+v", data.RecipeData)
	}
}

func TestGetAvg_RecipeErrorIsInternal(t *testing.T) {
	repo := &mockFishRepo{
		avgByTypeFn: func(ctx context.Context, fishTypeID uuid.UUID) (*Avg, error) {
			return &Avg{}, nil
		},
		recipesForTypeFn: func(ctx context.Context, fishTypeID uuid.UUID) ([]Recipe, error) {
			return nil, errors.New("db read error")
		},
	}

	svc := NewFishService(repo)
	_, err := svc.GetAvg(context.Background(), uuid.New())
	assertAppError(t, err, 500)
}

func TestMinMax_FallsBackOnInvalidInput(t *testing.T) {
	var gotLake, gotAttr string
	repo := &mockFishRepo{
		minMaxFn: func(ctx context.Context, lake, attr string, useAvg bool) ([]MinMaxFish, error) {
			gotLake, gotAttr = lake, attr
			return []MinMaxFish{}, nil
		},
	}
	svc := NewFishService(repo)

	if _, err := svc.MinMax(context.Background(), "Erie", "password_hash", false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotLake != "Store" {
		t.Errorf("expected fallback lake Store, got %q", gotLake)
	}
	if gotAttr != "protein" {
		t.Errorf("expected fallback attr protein, got %q", gotAttr)
	}
}

func TestMinMax_PassesThroughValidInput(t *testing.T) {
	var gotLake, gotAttr string
	var gotAvg bool
	repo := &mockFishRepo{
		minMaxFn: func(ctx context.Context, lake, attr string, useAvg bool) ([]MinMaxFish, error) {
			gotLake, gotAttr, gotAvg = lake, attr, useAvg
			return []MinMaxFish{}, nil
		},
	}
	svc := NewFishService(repo)

	if _, err := svc.MinMax(context.Background(), "Huron", "omega_3_ratio", true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotLake != "Huron" || gotAttr != "omega_3_ratio" || !gotAvg {
		t.Errorf("expected inputs to pass through, got lake=%q attr=%q avg=%v", gotLake, gotAttr, gotAvg)
	}
}
