package fish

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/Austionian/fishy-edge/internal/apperror"
)

// FishRepository defines the data access contract for the fish catalog.
type FishRepository interface {
	FindByID(ctx context.Context, fishID uuid.UUID) (*Detail, error)
	ListByLake(ctx context.Context, lake string) ([]Summary, error)
	AvgByType(ctx context.Context, fishTypeID uuid.UUID) (*Avg, error)
	RecipesForType(ctx context.Context, fishTypeID uuid.UUID) ([]Recipe, error)
	ListAvgs(ctx context.Context) ([]Avg, error)
	ListTypes(ctx context.Context) ([]TypeSummary, error)
	MinMax(ctx context.Context, lake, attr string, useAvg bool) ([]MinMaxFish, error)
}

// fishRepository implements FishRepository with hand-written MariaDB queries.
type fishRepository struct {
	db *sql.DB
}

// NewFishRepository creates a new fish repository backed by the given DB pool.
func NewFishRepository(db *sql.DB) FishRepository {
	return &fishRepository{db: db}
}

// FindByID retrieves one fish sample joined with its species data.
// Returns apperror.NotFound if no sample exists with this ID.
func (r *fishRepository) FindByID(ctx context.Context, fishID uuid.UUID) (*Detail, error) {
	query := `SELECT fish_type.name, fish_type.anishinaabe_name, fish_type.fish_image,
	                 fish_type.woodland_fish_image, fish_type.s3_fish_image,
	                 fish_type.s3_woodland_image,
	                 fish.mercury, fish.omega_3, fish.pcb, fish.protein
	          FROM fish_type
	          INNER JOIN fish ON fish_type.id = fish.fish_type_id
	          WHERE fish.id = ?`

	d := &Detail{}
	err := r.db.QueryRowContext(ctx, query, fishID.String()).Scan(
		&d.Name,
		&d.AnishinaabeName,
		&d.FishImage,
		&d.WoodlandFishImage,
		&d.S3FishImage,
		&d.S3WoodlandImage,
		&d.Mercury,
		&d.Omega3,
		&d.PCB,
		&d.Protein,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperror.NewNotFound("fish not found")
	}
	if err != nil {
		return nil, fmt.Errorf("querying fish by id: %w", err)
	}

	return d, nil
}

// ListByLake retrieves every fish sample recorded for one lake.
func (r *fishRepository) ListByLake(ctx context.Context, lake string) ([]Summary, error) {
	query := `SELECT fish_type.id, fish.id AS fish_id, fish_type.name,
	                 fish_type.anishinaabe_name, fish_type.fish_image,
	                 fish_type.woodland_fish_image, fish_type.s3_fish_image,
	                 fish_type.s3_woodland_image
	          FROM fish
	          JOIN fish_type ON fish.fish_type_id = fish_type.id
	          WHERE fish.lake = ?`

	rows, err := r.db.QueryContext(ctx, query, lake)
	if err != nil {
		return nil, fmt.Errorf("listing fish by lake: %w", err)
	}
	defer rows.Close()

	var fishs []Summary
	for rows.Next() {
		var s Summary
		var typeID, fishID string
		if err := rows.Scan(
			&typeID, &fishID, &s.Name, &s.AnishinaabeName,
			&s.FishImage, &s.WoodlandFishImage, &s.S3FishImage, &s.S3WoodlandImage,
		); err != nil {
			return nil, fmt.Errorf("scanning fish row: %w", err)
		}
		if s.ID, err = uuid.Parse(typeID); err != nil {
			return nil, fmt.Errorf("parsing fish type id: %w", err)
		}
		if s.FishID, err = uuid.Parse(fishID); err != nil {
			return nil, fmt.Errorf("parsing fish id: %w", err)
		}
		fishs = append(fishs, s)
	}

	return fishs, rows.Err()
}

// avgSelect is the shared projection for species averages.
const avgSelect = `SELECT fish_type.id AS fish_id, fish_type.name,
	       fish_type.anishinaabe_name, fish_type.fish_image,
	       fish_type.woodland_fish_image, fish_type.s3_fish_image,
	       fish_type.s3_woodland_image,
	       AVG(fish.mercury), AVG(fish.omega_3), AVG(fish.omega_3_ratio),
	       AVG(fish.pcb), AVG(fish.protein)
	FROM fish
	JOIN fish_type ON fish.fish_type_id = fish_type.id`

func scanAvg(rows interface{ Scan(...any) error }) (Avg, error) {
	var a Avg
	var id string
	err := rows.Scan(
		&id, &a.Name, &a.AnishinaabeName, &a.FishImage,
		&a.WoodlandFishImage, &a.S3FishImage, &a.S3WoodlandImage,
		&a.Mercury, &a.Omega3, &a.Omega3Ratio, &a.PCB, &a.Protein,
	)
	if err != nil {
		return Avg{}, err
	}
	if a.FishID, err = uuid.Parse(id); err != nil {
		return Avg{}, fmt.Errorf("parsing fish type id: %w", err)
	}
	return a, nil
}

// AvgByType retrieves one species with its sample values averaged.
// Returns apperror.NotFound when the species has no samples.
func (r *fishRepository) AvgByType(ctx context.Context, fishTypeID uuid.UUID) (*Avg, error) {
	query := avgSelect + `
	WHERE fish_type.id = ?
	GROUP BY fish_type.id`

	row := r.db.QueryRowContext(ctx, query, fishTypeID.String())
	a, err := scanAvg(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperror.NewNotFound("fish type not found")
	}
	if err != nil {
		return nil, fmt.Errorf("querying fish averages: %w", err)
	}

	return &a, nil
}

// RecipesForType retrieves the recipes linked to one species.
func (r *fishRepository) RecipesForType(ctx context.Context, fishTypeID uuid.UUID) ([]Recipe, error) {
	query := `SELECT id, name, ingredients, steps
	          FROM recipe
	          WHERE recipe.id IN (
	              SELECT recipe_id FROM fishtype_recipe WHERE fishtype_id = ?
	          )`

	rows, err := r.db.QueryContext(ctx, query, fishTypeID.String())
	if err != nil {
		return nil, fmt.Errorf("listing recipes for fish type: %w", err)
	}
	defer rows.Close()

	var recipes []Recipe
	for rows.Next() {
		var rec Recipe
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

// ListAvgs retrieves every species with its averaged sample values.
func (r *fishRepository) ListAvgs(ctx context.Context) ([]Avg, error) {
	query := avgSelect + `
	GROUP BY fish_type.id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing fish averages: %w", err)
	}
	defer rows.Close()

	var avgs []Avg
	for rows.Next() {
		a, err := scanAvg(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning fish average row: %w", err)
		}
		avgs = append(avgs, a)
	}

	return avgs, rows.Err()
}

// ListTypes retrieves the species index.
func (r *fishRepository) ListTypes(ctx context.Context) ([]TypeSummary, error) {
	query := `SELECT id, name, anishinaabe_name, about FROM fish_type`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing fish types: %w", err)
	}
	defer rows.Close()

	var types []TypeSummary
	for rows.Next() {
		var t TypeSummary
		var id string
		if err := rows.Scan(&id, &t.Name, &t.AnishinaabeName, &t.About); err != nil {
			return nil, fmt.Errorf("scanning fish type row: %w", err)
		}
		if t.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("parsing fish type id: %w", err)
		}
		types = append(types, t)
	}

	return types, rows.Err()
}

// MinMax retrieves the fish holding the minimum and maximum value of one
// attribute within a lake. With useAvg the comparison runs over species
// averages instead of individual samples.
//
// attr is interpolated into the SQL, so the caller MUST have validated
// it against ValidAttrs first. Placeholders cannot stand in for column
// names.
func (r *fishRepository) MinMax(ctx context.Context, lake, attr string, useAvg bool) ([]MinMaxFish, error) {
	if !validAttr(attr) {
		return nil, fmt.Errorf("attr %q is not an allowed column", attr)
	}

	var query string
	if useAvg {
		query = fmt.Sprintf(`
	SELECT fish_type.name, fish_type.anishinaabe_name,
	       AVG(fish.protein), AVG(fish.pcb), AVG(fish.omega_3), AVG(fish.mercury)
	FROM fish
	JOIN fish_type ON fish.fish_type_id = fish_type.id
	WHERE fish.lake = ?
	GROUP BY fish_type.id, fish_type.name, fish_type.anishinaabe_name
	HAVING AVG(fish.%[1]s) = (
	        SELECT MAX(a) FROM (
	            SELECT AVG(%[1]s) AS a FROM fish WHERE lake = ? GROUP BY fish_type_id
	        ) AS maxes)
	    OR AVG(fish.%[1]s) = (
	        SELECT MIN(a) FROM (
	            SELECT AVG(%[1]s) AS a FROM fish WHERE lake = ? GROUP BY fish_type_id
	        ) AS mins)`, attr)
	} else {
		query = fmt.Sprintf(`
	SELECT fish_type.name, fish_type.anishinaabe_name,
	       fish.protein, fish.pcb, fish.omega_3, fish.mercury
	FROM fish
	JOIN fish_type ON fish.fish_type_id = fish_type.id
	WHERE fish.lake = ?
	  AND (fish.%[1]s = (SELECT MAX(%[1]s) FROM fish WHERE lake = ?)
	    OR fish.%[1]s = (SELECT MIN(%[1]s) FROM fish WHERE lake = ?))`, attr)
	}

	rows, err := r.db.QueryContext(ctx, query, lake, lake, lake)
	if err != nil {
		return nil, fmt.Errorf("querying min and max: %w", err)
	}
	defer rows.Close()

	var fishs []MinMaxFish
	for rows.Next() {
		var f MinMaxFish
		if err := rows.Scan(
			&f.Name, &f.AnishinaabeName, &f.Protein, &f.PCB, &f.Omega3, &f.Mercury,
		); err != nil {
			return nil, fmt.Errorf("scanning min and max row: %w", err)
		}
		fishs = append(fishs, f)
	}

	return fishs, rows.Err()
}
