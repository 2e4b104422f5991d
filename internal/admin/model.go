// Package admin serves the authenticated admin console: CRUD for fish
// samples, species and recipes, including the species-to-recipe links
// and the S3 image pointers.
package admin

import (
	"github.com/google/uuid"

	"github.com/Austionian/fishy-edge/internal/database"
	"github.com/Austionian/fishy-edge/internal/fish"
)

// NewFishRequest creates a fish sample for an existing species.
type NewFishRequest struct {
	FishTypeID  uuid.UUID `json:"fish_type_id"`
	Lake        string    `json:"lake"`
	Mercury     *float64  `json:"mercury"`
	Omega3      *float64  `json:"omega_3"`
	Omega3Ratio *float64  `json:"omega_3_ratio"`
	PCB         *float64  `json:"pcb"`
	Protein     *float64  `json:"protein"`
}

// UpdateFishRequest updates the nutrient values of one sample.
type UpdateFishRequest struct {
	Mercury     *float64 `json:"mercury"`
	Omega3      *float64 `json:"omega_3"`
	Omega3Ratio *float64 `json:"omega_3_ratio"`
	PCB         *float64 `json:"pcb"`
	Protein     *float64 `json:"protein"`
}

// NewFishTypeRequest creates a species.
type NewFishTypeRequest struct {
	Name              string  `json:"name"`
	AnishinaabeName   *string `json:"anishinaabe_name"`
	FishImage         *string `json:"fish_image"`
	WoodlandFishImage *string `json:"woodland_fish_image"`
	S3FishImage       *string `json:"s3_fish_image"`
	S3WoodlandImage   *string `json:"s3_woodland_image"`
	About             string  `json:"about"`
}

// UpdateFishTypeRequest updates a species. When Recipes is non-nil the
// species-to-recipe links are replaced wholesale with the given set.
type UpdateFishTypeRequest struct {
	Name            string       `json:"name"`
	AnishinaabeName *string      `json:"anishinaabe_name"`
	About           string       `json:"about"`
	Recipes         *[]uuid.UUID `json:"recipe"`
}

// UpdateFishTypeImageRequest points a species at a new uploaded image.
// WoodlandImage selects which of the two image slots to update.
type UpdateFishTypeImageRequest struct {
	ImageURL      string `json:"image_url"`
	WoodlandImage bool   `json:"woodland_image"`
}

// FishTypeDetail is the admin view of one species with its linked
// recipe ids.
type FishTypeDetail struct {
	Fish    fish.FishType `json:"fish"`
	Recipes []uuid.UUID   `json:"recipes"`
}

// RecipeRequest creates or updates a recipe.
type RecipeRequest struct {
	Name        string               `json:"name"`
	Ingredients database.JSONStrings `json:"ingredients"`
	Steps       database.JSONStrings `json:"steps"`
}

// UpdateRecipeImageRequest points a recipe at a new uploaded image.
type UpdateRecipeImageRequest struct {
	ImageURL string `json:"image_url"`
}

// CreatedResponse returns the id of a newly created row.
type CreatedResponse struct {
	ID uuid.UUID `json:"id"`
}
