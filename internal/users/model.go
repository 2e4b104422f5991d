// Package users serves the user profile endpoints: reading the health
// profile that drives portion recommendations, updating profile and
// account fields, and deleting an account.
package users

import (
	"github.com/google/uuid"
)

// Profile is the health profile returned by the user lookup. Fields are
// nullable until the user fills in the intake form.
type Profile struct {
	Weight            *int16  `json:"weight"`
	Age               *int16  `json:"age"`
	Sex               *string `json:"sex"`
	PlanToGetPregnant *bool   `json:"plan_to_get_pregnant"`
	PortionSize       *int16  `json:"portion_size"`
}

// UpdateProfileRequest holds the intake form submission.
type UpdateProfileRequest struct {
	UserID            uuid.UUID `form:"user_id" json:"user_id"`
	Weight            int16     `form:"weight" json:"weight"`
	Age               int16     `form:"age" json:"age"`
	Sex               string    `form:"sex" json:"sex"`
	PlanToGetPregnant *bool     `form:"plan_to_get_pregnant" json:"plan_to_get_pregnant"`
	PortionSize       int16     `form:"portion_size" json:"portion_size"`
}

// UpdateAccountRequest holds the account settings form submission.
type UpdateAccountRequest struct {
	UserID    uuid.UUID `form:"user_id" json:"user_id"`
	Email     string    `form:"email" json:"email"`
	FirstName string    `form:"first_name" json:"first_name"`
	LastName  string    `form:"last_name" json:"last_name"`
}

// UpdateImageRequest holds a new profile image URL.
type UpdateImageRequest struct {
	UserID   uuid.UUID `form:"user_id" json:"user_id"`
	ImageURL string    `form:"image_url" json:"image_url"`
}
