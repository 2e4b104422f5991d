// Package analytics serves the admin dashboard summary: registered
// users and the most liked species and recipe.
package analytics

import (
	"time"

	"github.com/google/uuid"
)

// UserActivity is one row of the registered users table.
type UserActivity struct {
	Email       string     `json:"email"`
	CreatedAt   time.Time  `json:"created_at"`
	LatestLogin *time.Time `json:"latest_login"`
}

// Data is the dashboard summary response. The most-liked fields are
// nil when nothing has been favorited yet.
type Data struct {
	UserData                []UserActivity `json:"user_data"`
	NumberOfRegisteredUsers int64          `json:"number_of_registered_users"`
	MostLikedFish           *string        `json:"most_liked_fish"`
	MostLikedFishID         *uuid.UUID     `json:"most_liked_fish_id"`
	FishLikeCount           int64          `json:"fish_like_count"`
	MostLikedRecipe         *string        `json:"most_liked_recipe"`
	MostLikedRecipeID       *uuid.UUID     `json:"most_liked_recipe_id"`
	RecipeLikeCount         int64          `json:"recipe_like_count"`
}

// MostLiked is the winner of one favorite leaderboard.
type MostLiked struct {
	ID    uuid.UUID
	Name  string
	Count int64
}
