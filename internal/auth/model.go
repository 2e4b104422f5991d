// Package auth handles credential verification, identity extraction, and
// privilege checks for fishy-edge. Every protected route passes through
// this package twice: once through the bearer key gate that fronts the
// whole /v1 surface, and again through the cookie-based identity and
// admin gates where a route needs them.
package auth

import (
	"github.com/google/uuid"
)

// Credentials is a username/password pair as submitted by a client.
// Username is an email address everywhere in this application.
type Credentials struct {
	Username string
	Password string
}

// StoredCredentials is what the database holds for one account: the row
// id, the PHC-encoded argon2id hash, and the admin flag. A NULL is_admin
// column reads as false.
type StoredCredentials struct {
	UserID       uuid.UUID
	PasswordHash string
	IsAdmin      bool
}

// Profile holds the optional per-user data returned alongside a
// successful login. All fields are nullable in the database.
type Profile struct {
	Weight            *int16  `json:"weight"`
	Age               *int16  `json:"age"`
	Sex               *string `json:"sex"`
	PlanToGetPregnant *bool   `json:"plan_to_get_pregnant"`
	PortionSize       *int16  `json:"portion_size"`
	ImageURL          *string `json:"image_url"`
	FirstName         *string `json:"first_name"`
	LastName          *string `json:"last_name"`
}

// --- Request DTOs (bound from HTTP requests) ---

// LoginRequest holds the form fields submitted to POST /v1/login.
type LoginRequest struct {
	Email    string `form:"email" json:"email"`
	Password string `form:"password" json:"password"`
}

// RegisterRequest holds the form fields submitted to POST /v1/register.
type RegisterRequest struct {
	Email    string `form:"email" json:"email"`
	Password string `form:"password" json:"password"`
}

// ChangePasswordRequest holds the form fields submitted to
// POST /v1/user/change_password. The account is named by user id, taken
// from the identity cookie when present; the email is resolved
// server-side. The current password is re-verified before the new one
// is accepted.
type ChangePasswordRequest struct {
	UserID           uuid.UUID `form:"user_id" json:"user_id"`
	CurrentPassword  string    `form:"current_password" json:"current_password"`
	NewPassword      string    `form:"new_password" json:"new_password"`
	NewPasswordCheck string    `form:"new_password_check" json:"new_password_check"`
}

// --- Response DTOs ---

// LoginResponse is the JSON body returned by a successful login. Data is
// nil when the profile read fails; login still succeeds in that case.
type LoginResponse struct {
	UserID  uuid.UUID `json:"user_id"`
	IsAdmin bool      `json:"is_admin"`
	Data    *Profile  `json:"data"`
}

// RegisterResponse is the JSON body returned by a successful registration.
type RegisterResponse struct {
	UserID uuid.UUID `json:"user_id"`
}
