package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/Austionian/fishy-edge/internal/apperror"
)

// UserService defines the business logic contract for user profiles.
type UserService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*Profile, error)
	UpdateProfile(ctx context.Context, req UpdateProfileRequest) error
	UpdateAccount(ctx context.Context, req UpdateAccountRequest) error
	UpdateImage(ctx context.Context, req UpdateImageRequest) error
	DeleteUser(ctx context.Context, userID uuid.UUID) error
}

type userService struct {
	repo UserRepository
}

// NewUserService creates a new user service with the given repository.
func NewUserService(repo UserRepository) UserService {
	return &userService{repo: repo}
}

// GetProfile retrieves the health profile for one user.
func (s *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*Profile, error) {
	profile, err := s.repo.FindProfile(ctx, userID)
	if err != nil {
		return nil, wrapErr(err, "fetching profile")
	}
	return profile, nil
}

// UpdateProfile validates and stores the intake form values.
func (s *userService) UpdateProfile(ctx context.Context, req UpdateProfileRequest) error {
	if req.Sex != "Male" && req.Sex != "Female" {
		return apperror.NewBadRequest("sex must be Male or Female")
	}
	if req.Weight <= 0 || req.Age <= 0 || req.PortionSize <= 0 {
		return apperror.NewBadRequest("weight, age and portion_size must be positive")
	}
	return wrapErr(s.repo.UpdateProfile(ctx, req), "updating profile")
}

// UpdateAccount validates and stores the account settings.
func (s *userService) UpdateAccount(ctx context.Context, req UpdateAccountRequest) error {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" {
		return apperror.NewBadRequest("email is required")
	}
	return wrapErr(s.repo.UpdateAccount(ctx, req), "updating account")
}

// UpdateImage stores a new profile image URL.
func (s *userService) UpdateImage(ctx context.Context, req UpdateImageRequest) error {
	if req.ImageURL == "" {
		return apperror.NewBadRequest("image_url is required")
	}
	return wrapErr(s.repo.UpdateImage(ctx, req.UserID, req.ImageURL), "updating image")
}

// DeleteUser removes an account.
func (s *userService) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	return wrapErr(s.repo.Delete(ctx, userID), "deleting user")
}

// wrapErr passes app errors through and wraps everything else as internal.
func wrapErr(err error, op string) error {
	if err == nil {
		return nil
	}
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return apperror.NewInternal(fmt.Errorf("%s: %w", op, err))
}
