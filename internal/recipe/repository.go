package recipe

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/Austionian/fishy-edge/internal/apperror"
)

// RecipeRepository defines the data access contract for recipes.
type RecipeRepository interface {
	List(ctx context.Context) ([]Recipe, error)
	FindByID(ctx context.Context, recipeID uuid.UUID) (*Recipe, error)
	IsFavorite(ctx context.Context, userID, recipeID uuid.UUID) (bool, error)
}

// recipeRepository implements RecipeRepository with hand-written MariaDB queries.
type recipeRepository struct {
	db *sql.DB
}

// NewRecipeRepository creates a new recipe repository backed by the given DB pool.
func NewRecipeRepository(db *sql.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

// List retrieves every recipe.
func (r *recipeRepository) List(ctx context.Context) ([]Recipe, error) {
	query := `SELECT id, name, ingredients, steps, image_url FROM recipe`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing recipes: %w", err)
	}
	defer rows.Close()

	var recipes []Recipe
	for rows.Next() {
		var rec Recipe
		var id string
		if err := rows.Scan(&id, &rec.Name, &rec.Ingredients, &rec.Steps, &rec.ImageURL); err != nil {
			return nil, fmt.Errorf("scanning recipe row: %w", err)
		}
		if rec.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("parsing recipe id: %w", err)
		}
		recipes = append(recipes, rec)
	}

	return recipes, rows.Err()
}

// FindByID retrieves one recipe.
// Returns apperror.NotFound if no recipe exists with this ID.
func (r *recipeRepository) FindByID(ctx context.Context, recipeID uuid.UUID) (*Recipe, error) {
	query := `SELECT id, name, ingredients, steps, image_url FROM recipe WHERE id = ?`

	rec := &Recipe{}
	var id string
	err := r.db.QueryRowContext(ctx, query, recipeID.String()).Scan(
		&id, &rec.Name, &rec.Ingredients, &rec.Steps, &rec.ImageURL,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperror.NewNotFound("recipe not found")
	}
	if err != nil {
		return nil, fmt.Errorf("querying recipe by id: %w", err)
	}
	if rec.ID, err = uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("parsing recipe id: %w", err)
	}

	return rec, nil
}

// IsFavorite reports whether the user has favorited the recipe.
func (r *recipeRepository) IsFavorite(ctx context.Context, userID, recipeID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS(
	              SELECT 1 FROM user_recipe WHERE user_id = ? AND recipe_id = ?
	          )`

	var favorite bool
	err := r.db.QueryRowContext(ctx, query, userID.String(), recipeID.String()).Scan(&favorite)
	if err != nil {
		return false, fmt.Errorf("checking favorite: %w", err)
	}

	return favorite, nil
}
