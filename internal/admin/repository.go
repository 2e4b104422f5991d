package admin

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/Austionian/fishy-edge/internal/apperror"
	"github.com/Austionian/fishy-edge/internal/fish"
)

// AdminRepository defines the data access contract for the admin
// console.
type AdminRepository interface {
	CreateFish(ctx context.Context, fishID uuid.UUID, req NewFishRequest) error
	UpdateFish(ctx context.Context, fishID uuid.UUID, req UpdateFishRequest) error
	DeleteFish(ctx context.Context, fishID uuid.UUID) error

	ListFishTypes(ctx context.Context) ([]fish.FishType, error)
	FindFishType(ctx context.Context, fishTypeID uuid.UUID) (*FishTypeDetail, error)
	CreateFishType(ctx context.Context, fishTypeID uuid.UUID, req NewFishTypeRequest) error
	UpdateFishType(ctx context.Context, fishTypeID uuid.UUID, req UpdateFishTypeRequest) error
	UpdateFishTypeImage(ctx context.Context, fishTypeID uuid.UUID, req UpdateFishTypeImageRequest) error

	CreateRecipe(ctx context.Context, recipeID uuid.UUID, req RecipeRequest) error
	UpdateRecipe(ctx context.Context, recipeID uuid.UUID, req RecipeRequest) error
	UpdateRecipeImage(ctx context.Context, recipeID uuid.UUID, imageURL string) error
	DeleteRecipe(ctx context.Context, recipeID uuid.UUID) error
}

// adminRepository implements AdminRepository with hand-written MariaDB
// queries.
type adminRepository struct {
	db *sql.DB
}

// NewAdminRepository creates a new admin repository backed by the given
// DB pool.
func NewAdminRepository(db *sql.DB) AdminRepository {
	return &adminRepository{db: db}
}

// CreateFish inserts a fish sample for an existing species.
func (r *adminRepository) CreateFish(ctx context.Context, fishID uuid.UUID, req NewFishRequest) error {
	query := `INSERT INTO fish (id, fish_type_id, lake, mercury, omega_3, omega_3_ratio, pcb, protein)
	          VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		fishID.String(), req.FishTypeID.String(), req.Lake,
		req.Mercury, req.Omega3, req.Omega3Ratio, req.PCB, req.Protein,
	)
	if err != nil {
		return fmt.Errorf("inserting fish: %w", err)
	}
	return nil
}

// UpdateFish updates the nutrient values of one sample.
func (r *adminRepository) UpdateFish(ctx context.Context, fishID uuid.UUID, req UpdateFishRequest) error {
	query := `UPDATE fish
	          SET mercury = ?, omega_3 = ?, omega_3_ratio = ?, pcb = ?, protein = ?
	          WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query,
		req.Mercury, req.Omega3, req.Omega3Ratio, req.PCB, req.Protein,
		fishID.String(),
	)
	if err != nil {
		return fmt.Errorf("updating fish: %w", err)
	}

	n, _ := result.RowsAffected()
	if n == 0 {
		return apperror.NewNotFound("fish not found")
	}
	return nil
}

// DeleteFish removes one sample.
func (r *adminRepository) DeleteFish(ctx context.Context, fishID uuid.UUID) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM fish WHERE id = ?`, fishID.String()); err != nil {
		return fmt.Errorf("deleting fish: %w", err)
	}
	return nil
}

// ListFishTypes retrieves every species record.
func (r *adminRepository) ListFishTypes(ctx context.Context) ([]fish.FishType, error) {
	query := `SELECT id, name, anishinaabe_name, fish_image, woodland_fish_image,
	                 s3_fish_image, s3_woodland_image, about
	          FROM fish_type ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying fish types: %w", err)
	}
	defer rows.Close()

	var types []fish.FishType
	for rows.Next() {
		var ft fish.FishType
		var id string
		if err := rows.Scan(
			&id, &ft.Name, &ft.AnishinaabeName, &ft.FishImage, &ft.WoodlandFishImage,
			&ft.S3FishImage, &ft.S3WoodlandImage, &ft.About,
		); err != nil {
			return nil, fmt.Errorf("scanning fish type: %w", err)
		}
		if ft.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("parsing fish type id: %w", err)
		}
		types = append(types, ft)
	}
	return types, rows.Err()
}

// FindFishType retrieves one species with its linked recipe ids.
// Returns apperror.NotFound if no species exists with this ID.
func (r *adminRepository) FindFishType(ctx context.Context, fishTypeID uuid.UUID) (*FishTypeDetail, error) {
	query := `SELECT id, name, anishinaabe_name, fish_image, woodland_fish_image,
	                 s3_fish_image, s3_woodland_image, about
	          FROM fish_type WHERE id = ?`

	detail := &FishTypeDetail{}
	var id string
	err := r.db.QueryRowContext(ctx, query, fishTypeID.String()).Scan(
		&id, &detail.Fish.Name, &detail.Fish.AnishinaabeName,
		&detail.Fish.FishImage, &detail.Fish.WoodlandFishImage,
		&detail.Fish.S3FishImage, &detail.Fish.S3WoodlandImage, &detail.Fish.About,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperror.NewNotFound("fish type not found")
	}
	if err != nil {
		return nil, fmt.Errorf("querying fish type: %w", err)
	}
	if detail.Fish.ID, err = uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("parsing fish type id: %w", err)
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT recipe_id FROM fishtype_recipe WHERE fishtype_id = ?`, fishTypeID.String())
	if err != nil {
		return nil, fmt.Errorf("querying recipe links: %w", err)
	}
	defer rows.Close()

	detail.Recipes = []uuid.UUID{}
	for rows.Next() {
		var rid string
		if err := rows.Scan(&rid); err != nil {
			return nil, fmt.Errorf("scanning recipe link: %w", err)
		}
		recipeID, err := uuid.Parse(rid)
		if err != nil {
			return nil, fmt.Errorf("parsing recipe id: %w", err)
		}
		detail.Recipes = append(detail.Recipes, recipeID)
	}
	return detail, rows.Err()
}

// CreateFishType inserts a species.
func (r *adminRepository) CreateFishType(ctx context.Context, fishTypeID uuid.UUID, req NewFishTypeRequest) error {
	query := `INSERT INTO fish_type
	          (id, name, anishinaabe_name, fish_image, woodland_fish_image,
	           s3_fish_image, s3_woodland_image, about)
	          VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		fishTypeID.String(), req.Name, req.AnishinaabeName,
		req.FishImage, req.WoodlandFishImage,
		req.S3FishImage, req.S3WoodlandImage, req.About,
	)
	if err != nil {
		return fmt.Errorf("inserting fish type: %w", err)
	}
	return nil
}

// UpdateFishType updates a species. When the request carries a recipe
// set, the link rows are replaced inside the same transaction so a
// failed rewrite never leaves the species half-linked.
func (r *adminRepository) UpdateFishType(ctx context.Context, fishTypeID uuid.UUID, req UpdateFishTypeRequest) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		`UPDATE fish_type SET name = ?, anishinaabe_name = ?, about = ? WHERE id = ?`,
		req.Name, req.AnishinaabeName, req.About, fishTypeID.String(),
	)
	if err != nil {
		return fmt.Errorf("updating fish type: %w", err)
	}
	n, _ := result.RowsAffected()
	if n == 0 {
		return apperror.NewNotFound("fish type not found")
	}

	if req.Recipes != nil {
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM fishtype_recipe WHERE fishtype_id = ?`, fishTypeID.String()); err != nil {
			return fmt.Errorf("clearing recipe links: %w", err)
		}
		for _, recipeID := range *req.Recipes {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO fishtype_recipe (fishtype_id, recipe_id) VALUES (?, ?)`,
				fishTypeID.String(), recipeID.String()); err != nil {
				return fmt.Errorf("inserting recipe link: %w", err)
			}
		}
	}

	return tx.Commit()
}

// UpdateFishTypeImage points a species at a new uploaded image. The
// woodland flag selects which image slot is written.
func (r *adminRepository) UpdateFishTypeImage(ctx context.Context, fishTypeID uuid.UUID, req UpdateFishTypeImageRequest) error {
	query := `UPDATE fish_type SET s3_fish_image = ? WHERE id = ?`
	if req.WoodlandImage {
		query = `UPDATE fish_type SET s3_woodland_image = ? WHERE id = ?`
	}

	result, err := r.db.ExecContext(ctx, query, req.ImageURL, fishTypeID.String())
	if err != nil {
		return fmt.Errorf("updating fish type image: %w", err)
	}

	n, _ := result.RowsAffected()
	if n == 0 {
		return apperror.NewNotFound("fish type not found")
	}
	return nil
}

// CreateRecipe inserts a recipe.
func (r *adminRepository) CreateRecipe(ctx context.Context, recipeID uuid.UUID, req RecipeRequest) error {
	query := `INSERT INTO recipe (id, name, ingredients, steps) VALUES (?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		recipeID.String(), req.Name, req.Ingredients, req.Steps,
	)
	if err != nil {
		return fmt.Errorf("inserting recipe: %w", err)
	}
	return nil
}

// UpdateRecipe replaces a recipe's name, ingredients and steps.
func (r *adminRepository) UpdateRecipe(ctx context.Context, recipeID uuid.UUID, req RecipeRequest) error {
	query := `UPDATE recipe SET name = ?, ingredients = ?, steps = ? WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query,
		req.Name, req.Ingredients, req.Steps, recipeID.String(),
	)
	if err != nil {
		return fmt.Errorf("updating recipe: %w", err)
	}

	n, _ := result.RowsAffected()
	if n == 0 {
		return apperror.NewNotFound("recipe not found")
	}
	return nil
}

// UpdateRecipeImage points a recipe at a new uploaded image.
func (r *adminRepository) UpdateRecipeImage(ctx context.Context, recipeID uuid.UUID, imageURL string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE recipe SET image_url = ? WHERE id = ?`, imageURL, recipeID.String())
	if err != nil {
		return fmt.Errorf("updating recipe image: %w", err)
	}

	n, _ := result.RowsAffected()
	if n == 0 {
		return apperror.NewNotFound("recipe not found")
	}
	return nil
}

// DeleteRecipe removes a recipe and its species links in one
// transaction.
func (r *adminRepository) DeleteRecipe(ctx context.Context, recipeID uuid.UUID) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM fishtype_recipe WHERE recipe_id = ?`, recipeID.String()); err != nil {
		return fmt.Errorf("clearing recipe links: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM recipe WHERE id = ?`, recipeID.String()); err != nil {
		return fmt.Errorf("deleting recipe: %w", err)
	}

	return tx.Commit()
}
