package favorites

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"

	"github.com/Austionian/fishy-edge/internal/apperror"
	"github.com/Austionian/fishy-edge/internal/fish"
	"github.com/Austionian/fishy-edge/internal/recipe"
)

const mysqlErrDuplicateEntry = 1062

// FavoritesRepository defines the data access contract for favorites.
type FavoritesRepository interface {
	ListFishTypes(ctx context.Context, userID uuid.UUID) ([]fish.FishType, error)
	ListRecipes(ctx context.Context, userID uuid.UUID) ([]recipe.Recipe, error)
	AddFish(ctx context.Context, userID, fishTypeID uuid.UUID) error
	AddRecipe(ctx context.Context, userID, recipeID uuid.UUID) error
	RemoveFish(ctx context.Context, userID, fishTypeID uuid.UUID) error
	RemoveRecipe(ctx context.Context, userID, recipeID uuid.UUID) error
}

// favoritesRepository implements FavoritesRepository with hand-written
// MariaDB queries.
type favoritesRepository struct {
	db *sql.DB
}

// NewFavoritesRepository creates a new favorites repository backed by
// the given DB pool.
func NewFavoritesRepository(db *sql.DB) FavoritesRepository {
	return &favoritesRepository{db: db}
}

// ListFishTypes retrieves the species a user has favorited.
func (r *favoritesRepository) ListFishTypes(ctx context.Context, userID uuid.UUID) ([]fish.FishType, error) {
	query := `SELECT fish_type.id, fish_type.name, fish_type.anishinaabe_name,
	                 fish_type.fish_image, fish_type.woodland_fish_image,
	                 fish_type.s3_fish_image, fish_type.s3_woodland_image,
	                 fish_type.about
	          FROM fish_type
	          JOIN user_fishtype ON fish_type.id = user_fishtype.fishtype_id
	          WHERE user_fishtype.user_id = ?`

	rows, err := r.db.QueryContext(ctx, query, userID.String())
	if err != nil {
		return nil, fmt.Errorf("listing favorite fish: %w", err)
	}
	defer rows.Close()

	var fishs []fish.FishType
	for rows.Next() {
		var f fish.FishType
		var id string
		if err := rows.Scan(
			&id, &f.Name, &f.AnishinaabeName, &f.FishImage,
			&f.WoodlandFishImage, &f.S3FishImage, &f.S3WoodlandImage, &f.About,
		); err != nil {
			return nil, fmt.Errorf("scanning favorite fish row: %w", err)
		}
		if f.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("parsing fish type id: %w", err)
		}
		fishs = append(fishs, f)
	}

	return fishs, rows.Err()
}

// ListRecipes retrieves the recipes a user has favorited.
func (r *favoritesRepository) ListRecipes(ctx context.Context, userID uuid.UUID) ([]recipe.Recipe, error) {
	query := `SELECT recipe.id, recipe.name, recipe.ingredients, recipe.steps,
	                 recipe.image_url
	          FROM recipe
	          JOIN user_recipe ON recipe.id = user_recipe.recipe_id
	          WHERE user_recipe.user_id = ?`

	rows, err := r.db.QueryContext(ctx, query, userID.String())
	if err != nil {
		return nil, fmt.Errorf("listing favorite recipes: %w", err)
	}
	defer rows.Close()

	var recipes []recipe.Recipe
	for rows.Next() {
		var rec recipe.Recipe
		var id string
		if err := rows.Scan(&id, &rec.Name, &rec.Ingredients, &rec.Steps, &rec.ImageURL); err != nil {
			return nil, fmt.Errorf("scanning favorite recipe row: %w", err)
		}
		if rec.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("parsing recipe id: %w", err)
		}
		recipes = append(recipes, rec)
	}

	return recipes, rows.Err()
}

// AddFish links a species to the user's favorites.
// Returns apperror.Conflict when it is already favorited.
func (r *favoritesRepository) AddFish(ctx context.Context, userID, fishTypeID uuid.UUID) error {
	query := `INSERT INTO user_fishtype (user_id, fishtype_id) VALUES (?, ?)`

	_, err := r.db.ExecContext(ctx, query, userID.String(), fishTypeID.String())
	return favoriteInsertErr(err, "favoriting fish")
}

// AddRecipe links a recipe to the user's favorites.
// Returns apperror.Conflict when it is already favorited.
func (r *favoritesRepository) AddRecipe(ctx context.Context, userID, recipeID uuid.UUID) error {
	query := `INSERT INTO user_recipe (user_id, recipe_id) VALUES (?, ?)`

	_, err := r.db.ExecContext(ctx, query, userID.String(), recipeID.String())
	return favoriteInsertErr(err, "favoriting recipe")
}

// RemoveFish unlinks a species from the user's favorites. Removing a
// species that was never favorited is a no-op.
func (r *favoritesRepository) RemoveFish(ctx context.Context, userID, fishTypeID uuid.UUID) error {
	query := `DELETE FROM user_fishtype WHERE user_id = ? AND fishtype_id = ?`

	if _, err := r.db.ExecContext(ctx, query, userID.String(), fishTypeID.String()); err != nil {
		return fmt.Errorf("unfavoriting fish: %w", err)
	}
	return nil
}

// RemoveRecipe unlinks a recipe from the user's favorites. Removing a
// recipe that was never favorited is a no-op.
func (r *favoritesRepository) RemoveRecipe(ctx context.Context, userID, recipeID uuid.UUID) error {
	query := `DELETE FROM user_recipe WHERE user_id = ? AND recipe_id = ?`

	if _, err := r.db.ExecContext(ctx, query, userID.String(), recipeID.String()); err != nil {
		return fmt.Errorf("unfavoriting recipe: %w", err)
	}
	return nil
}

// favoriteInsertErr maps a duplicate key violation to a conflict.
func favoriteInsertErr(err error, op string) error {
	if err == nil {
		return nil
	}
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlErrDuplicateEntry {
		return apperror.NewConflict("already favorited")
	}
	return fmt.Errorf("%s: %w", op, err)
}
