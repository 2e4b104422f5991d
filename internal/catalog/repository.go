package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/Austionian/fishy-edge/internal/fish"
	"github.com/Austionian/fishy-edge/internal/recipe"
)

// CatalogRepository defines the data access contract for the aggregate
// endpoints.
type CatalogRepository interface {
	ListSamples(ctx context.Context) ([]fish.Sample, error)
	ListRecipes(ctx context.Context) ([]recipe.Recipe, error)
	ListSearchFish(ctx context.Context) ([]SearchFish, error)
	ListSearchRecipes(ctx context.Context) ([]SearchRecipe, error)
}

// catalogRepository implements CatalogRepository with hand-written
// MariaDB queries.
type catalogRepository struct {
	db *sql.DB
}

// NewCatalogRepository creates a new catalog repository backed by the
// given DB pool.
func NewCatalogRepository(db *sql.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

// ListSamples retrieves every fish sample with its species data and the
// recipe ids linked to the species. The recipe links come from a second
// query and are stitched in by fish_type id, MariaDB has no array
// aggregation into a driver-friendly type.
func (r *catalogRepository) ListSamples(ctx context.Context) ([]fish.Sample, error) {
	recipesByType, err := r.recipeIDsByType(ctx)
	if err != nil {
		return nil, err
	}

	query := `SELECT fish.id, fish.fish_type_id, fish_type.name,
	                 fish_type.anishinaabe_name, fish.lake,
	                 fish_type.fish_image, fish_type.woodland_fish_image,
	                 fish_type.s3_fish_image, fish_type.s3_woodland_image,
	                 fish.pcb, fish.protein, fish.mercury,
	                 fish.omega_3_ratio, fish.omega_3, fish.date_sampled
	          FROM fish
	          JOIN fish_type ON fish.fish_type_id = fish_type.id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing fish samples: %w", err)
	}
	defer rows.Close()

	var samples []fish.Sample
	for rows.Next() {
		var s fish.Sample
		var id, typeID string
		if err := rows.Scan(
			&id, &typeID, &s.Name, &s.AnishinaabeName, &s.Lake,
			&s.FishImage, &s.WoodlandFishImage, &s.S3FishImage, &s.S3WoodlandImage,
			&s.PCB, &s.Protein, &s.Mercury, &s.Omega3Ratio, &s.Omega3, &s.DateSampled,
		); err != nil {
			return nil, fmt.Errorf("scanning fish sample row: %w", err)
		}
		if s.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("parsing fish id: %w", err)
		}
		fishTypeID, err := uuid.Parse(typeID)
		if err != nil {
			return nil, fmt.Errorf("parsing fish type id: %w", err)
		}
		s.Recipes = recipesByType[fishTypeID]
		samples = append(samples, s)
	}

	return samples, rows.Err()
}

// recipeIDsByType loads the full fishtype_recipe join table into a map.
func (r *catalogRepository) recipeIDsByType(ctx context.Context) (map[uuid.UUID][]uuid.UUID, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT fishtype_id, recipe_id FROM fishtype_recipe`)
	if err != nil {
		return nil, fmt.Errorf("listing recipe links: %w", err)
	}
	defer rows.Close()

	links := make(map[uuid.UUID][]uuid.UUID)
	for rows.Next() {
		var typeID, recipeID string
		if err := rows.Scan(&typeID, &recipeID); err != nil {
			return nil, fmt.Errorf("scanning recipe link row: %w", err)
		}
		tid, err := uuid.Parse(typeID)
		if err != nil {
			return nil, fmt.Errorf("parsing fish type id: %w", err)
		}
		rid, err := uuid.Parse(recipeID)
		if err != nil {
			return nil, fmt.Errorf("parsing recipe id: %w", err)
		}
		links[tid] = append(links[tid], rid)
	}

	return links, rows.Err()
}

// ListRecipes retrieves every recipe for the full dump.
func (r *catalogRepository) ListRecipes(ctx context.Context) ([]recipe.Recipe, error) {
	query := `SELECT id, name, ingredients, steps FROM recipe`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing recipes: %w", err)
	}
	defer rows.Close()

	var recipes []recipe.Recipe
	for rows.Next() {
		var rec recipe.Recipe
		var id string
		if err := rows.Scan(&id, &rec.Name, &rec.Ingredients, &rec.Steps); err != nil {
			return nil, fmt.Errorf("scanning recipe row: %w", err)
		}
		if rec.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("parsing recipe id: %w", err)
		}
		recipes = append(recipes, rec)
	}

	return recipes, rows.Err()
}

// ListSearchFish retrieves the species entries for the search index.
func (r *catalogRepository) ListSearchFish(ctx context.Context) ([]SearchFish, error) {
	query := `SELECT id, name, anishinaabe_name, fish_image,
	                 woodland_fish_image, s3_fish_image, s3_woodland_image
	          FROM fish_type`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing search fish: %w", err)
	}
	defer rows.Close()

	var result []SearchFish
	for rows.Next() {
		var f SearchFish
		var id string
		if err := rows.Scan(
			&id, &f.Name, &f.AnishinaabeName, &f.FishImage,
			&f.WoodlandFishImage, &f.S3FishImage, &f.S3WoodlandImage,
		); err != nil {
			return nil, fmt.Errorf("scanning search fish row: %w", err)
		}
		if f.FishID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("parsing fish type id: %w", err)
		}
		result = append(result, f)
	}

	return result, rows.Err()
}

// ListSearchRecipes retrieves the recipe entries for the search index.
func (r *catalogRepository) ListSearchRecipes(ctx context.Context) ([]SearchRecipe, error) {
	query := `SELECT id, name FROM recipe`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing search recipes: %w", err)
	}
	defer rows.Close()

	var result []SearchRecipe
	for rows.Next() {
		var rec SearchRecipe
		var id string
		if err := rows.Scan(&id, &rec.RecipeName); err != nil {
			return nil, fmt.Errorf("scanning search recipe row: %w", err)
		}
		if rec.RecipeID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("parsing recipe id: %w", err)
		}
		result = append(result, rec)
	}

	return result, rows.Err()
}
