// Package recipe serves the public recipe listing and single-recipe
// lookup. The single lookup personalizes its response with the caller's
// favorite flag when an identity cookie is present.
package recipe

import (
	"github.com/google/uuid"

	"github.com/Austionian/fishy-edge/internal/database"
)

// Recipe is the recipe record returned by the public endpoints.
// Ingredients and steps are JSON arrays in the database.
type Recipe struct {
	ID          uuid.UUID            `json:"id"`
	Name        string               `json:"name"`
	Ingredients database.JSONStrings `json:"ingredients"`
	Steps       database.JSONStrings `json:"steps"`
	ImageURL    *string              `json:"image_url,omitempty"`
}

// DetailResponse wraps a recipe with the caller's favorite flag. The
// flag is always false for anonymous requests.
type DetailResponse struct {
	Data       Recipe `json:"data"`
	IsFavorite bool   `json:"is_favorite"`
}
