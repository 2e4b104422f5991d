// Package favorites manages per-user favorite fish species and recipes.
// Every route here requires an identified caller.
package favorites

import (
	"github.com/Austionian/fishy-edge/internal/fish"
	"github.com/Austionian/fishy-edge/internal/recipe"
)

// Favorites is the response for the favorites listing.
type Favorites struct {
	Fishs   []fish.FishType `json:"fishs"`
	Recipes []recipe.Recipe `json:"recipes"`
}
