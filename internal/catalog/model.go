// Package catalog serves the aggregate read endpoints: the full data
// dump used by the frontend cache and the search index.
package catalog

import (
	"github.com/google/uuid"

	"github.com/Austionian/fishy-edge/internal/fish"
	"github.com/Austionian/fishy-edge/internal/recipe"
)

// Everything is the full dataset: every fish sample with its linked
// recipe ids, plus every recipe.
type Everything struct {
	Fishs   []fish.Sample   `json:"fishs"`
	Recipes []recipe.Recipe `json:"recipes"`
}

// SearchFish is one species entry in the search index.
type SearchFish struct {
	FishID            uuid.UUID `json:"fish_id"`
	Name              string    `json:"name"`
	AnishinaabeName   *string   `json:"anishinaabe_name"`
	FishImage         *string   `json:"fish_image"`
	WoodlandFishImage *string   `json:"woodland_fish_image"`
	S3FishImage       *string   `json:"s3_fish_image"`
	S3WoodlandImage   *string   `json:"s3_woodland_image"`
}

// SearchRecipe is one recipe entry in the search index.
type SearchRecipe struct {
	RecipeID   uuid.UUID `json:"recipe_id"`
	RecipeName string    `json:"recipe_name"`
}

// SearchResult is the search index response.
type SearchResult struct {
	FishResult   []SearchFish   `json:"fish_result"`
	RecipeResult []SearchRecipe `json:"recipe_result"`
}
