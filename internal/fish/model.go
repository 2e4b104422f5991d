// Package fish serves the public fish catalog: individual fish samples,
// per-lake listings, per-species averages, and the min/max comparison
// endpoint. All routes here are read-only; writes happen through the
// admin package.
package fish

import (
	"time"

	"github.com/google/uuid"

	"github.com/Austionian/fishy-edge/internal/database"
)

// Lakes that fish samples are recorded for. "Store" holds the fish sold
// commercially rather than caught in a specific lake.
var ValidLakes = []string{"Store", "Superior", "Huron", "Michigan"}

// Attributes the min/max endpoint can rank by. These become column names
// in SQL, so nothing outside this list may ever reach the query builder.
var ValidAttrs = []string{"protein", "pcb", "mercury", "omega_3_ratio"}

// Detail is the response for a single fish sample lookup.
type Detail struct {
	Name              string   `json:"name"`
	AnishinaabeName   *string  `json:"anishinaabe_name"`
	FishImage         *string  `json:"fish_image"`
	WoodlandFishImage *string  `json:"woodland_fish_image"`
	S3FishImage       *string  `json:"s3_fish_image"`
	S3WoodlandImage   *string  `json:"s3_woodland_image"`
	Mercury           *float64 `json:"mercury"`
	Omega3            *float64 `json:"omega_3"`
	PCB               *float64 `json:"pcb"`
	Protein           *float64 `json:"protein"`
}

// Summary is one row of the per-lake fish listing. ID is the species
// (fish_type) id, FishID the individual sample.
type Summary struct {
	ID                uuid.UUID `json:"id"`
	FishID            uuid.UUID `json:"fish_id"`
	Name              string    `json:"name"`
	AnishinaabeName   *string   `json:"anishinaabe_name"`
	FishImage         *string   `json:"fish_image"`
	WoodlandFishImage *string   `json:"woodland_fish_image"`
	S3FishImage       *string   `json:"s3_fish_image"`
	S3WoodlandImage   *string   `json:"s3_woodland_image"`
}

// Avg is a species with its nutrient values averaged across every
// recorded sample.
type Avg struct {
	FishID            uuid.UUID `json:"fish_id"`
	Name              string    `json:"name"`
	AnishinaabeName   *string   `json:"anishinaabe_name"`
	FishImage         *string   `json:"fish_image"`
	WoodlandFishImage *string   `json:"woodland_fish_image"`
	S3FishImage       *string   `json:"s3_fish_image"`
	S3WoodlandImage   *string   `json:"s3_woodland_image"`
	Mercury           *float64  `json:"mercury"`
	Omega3            *float64  `json:"omega_3"`
	Omega3Ratio       *float64  `json:"omega_3_ratio"`
	PCB               *float64  `json:"pcb"`
	Protein           *float64  `json:"protein"`
}

// Recipe is a recipe attached to a species, returned inside the per-
// species average response.
type Recipe struct {
	ID          uuid.UUID            `json:"id"`
	Name        string               `json:"name"`
	Ingredients database.JSONStrings `json:"ingredients"`
	Steps       database.JSONStrings `json:"steps"`
}

// AvgWithRecipes is the response for a single-species average lookup.
type AvgWithRecipes struct {
	FishData   Avg      `json:"fish_data"`
	RecipeData []Recipe `json:"recipe_data"`
}

// TypeSummary is one row of the species index.
type TypeSummary struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	AnishinaabeName *string   `json:"anishinaabe_name"`
	About           string    `json:"about"`
}

// FishType is the full species record, shared with the favorites
// listing.
type FishType struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	AnishinaabeName   *string   `json:"anishinaabe_name"`
	FishImage         *string   `json:"fish_image"`
	WoodlandFishImage *string   `json:"woodland_fish_image"`
	S3FishImage       *string   `json:"s3_fish_image"`
	S3WoodlandImage   *string   `json:"s3_woodland_image"`
	About             string    `json:"about"`
}

// MinMaxFish is one row of the min/max comparison response.
type MinMaxFish struct {
	Name            string   `json:"name"`
	AnishinaabeName *string  `json:"anishinaabe_name"`
	Protein         *float64 `json:"protein"`
	PCB             *float64 `json:"pcb"`
	Omega3          *float64 `json:"omega_3"`
	Mercury         *float64 `json:"mercury"`
}

// Sample is a full fish row with its sampling date, used by the catalog
// dump endpoint.
type Sample struct {
	ID                uuid.UUID   `json:"id"`
	Name              string      `json:"name"`
	AnishinaabeName   *string     `json:"anishinaabe_name"`
	Lake              string      `json:"lake"`
	FishImage         *string     `json:"fish_image"`
	WoodlandFishImage *string     `json:"woodland_fish_image"`
	S3FishImage       *string     `json:"s3_fish_image"`
	S3WoodlandImage   *string     `json:"s3_woodland_image"`
	Mercury           *float64    `json:"mercury"`
	Omega3            *float64    `json:"omega_3"`
	Omega3Ratio       *float64    `json:"omega_3_ratio"`
	PCB               *float64    `json:"pcb"`
	Protein           *float64    `json:"protein"`
	Recipes           []uuid.UUID `json:"recipes"`
	DateSampled       *time.Time  `json:"date_sampled"`
}

// validLake reports whether lake is one of the recorded lakes.
func validLake(lake string) bool {
	for _, l := range ValidLakes {
		if l == lake {
			return true
		}
	}
	return false
}

// validAttr reports whether attr is a rankable column.
func validAttr(attr string) bool {
	for _, a := range ValidAttrs {
		if a == attr {
			return true
		}
	}
	return false
}
