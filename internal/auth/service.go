package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/Austionian/fishy-edge/internal/apperror"
)

// AuthService defines the business logic contract for authentication.
// Handlers call these methods, they never touch the repository directly.
type AuthService interface {
	ValidateCredentials(ctx context.Context, creds Credentials) (uuid.UUID, bool, error)
	Login(ctx context.Context, creds Credentials) (*LoginResponse, error)
	Register(ctx context.Context, creds Credentials) (uuid.UUID, error)
	ChangePassword(ctx context.Context, input ChangePasswordInput) error
	IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error)
}

// ChangePasswordInput is the validated input for a password change. The
// account is named by id; the service resolves the email itself.
type ChangePasswordInput struct {
	UserID           uuid.UUID
	CurrentPassword  string
	NewPassword      string
	NewPasswordCheck string
}

// PasswordVerifier is the hashing dependency of the service. The
// concrete Verifier satisfies it; tests substitute counting stubs.
type PasswordVerifier interface {
	Verify(ctx context.Context, password, encodedHash string) (bool, error)
	Hash(ctx context.Context, password string) (string, error)
}

// authService implements AuthService with argon2id verification against
// MariaDB-stored credentials.
type authService struct {
	repo     UserRepository
	verifier PasswordVerifier
}

// NewAuthService creates a new auth service with the given dependencies.
func NewAuthService(repo UserRepository, verifier PasswordVerifier) AuthService {
	return &authService{
		repo:     repo,
		verifier: verifier,
	}
}

// ValidateCredentials checks a username/password pair against the stored
// hash and returns the account's id and admin flag on success.
//
// A hash verification runs on EVERY call, whether or not the account
// exists. Unknown accounts verify against a fixed dummy hash so the
// failure path costs the same as a real mismatch. All credential
// failures collapse into one 401 with one message.
func (s *authService) ValidateCredentials(ctx context.Context, creds Credentials) (uuid.UUID, bool, error) {
	storedHash := dummyPasswordHash
	var userID uuid.UUID
	var isAdmin bool
	found := false

	stored, err := s.repo.FindCredentials(ctx, normalizeEmail(creds.Username))
	switch {
	case err == nil:
		storedHash = stored.PasswordHash
		userID = stored.UserID
		isAdmin = stored.IsAdmin
		found = true
	case isNotFound(err):
		// Fall through and verify against the dummy hash.
	default:
		return uuid.Nil, false, apperror.NewInternal(fmt.Errorf("finding credentials: %w", err))
	}

	ok, err := s.verifier.Verify(ctx, creds.Password, storedHash)
	if err != nil {
		return uuid.Nil, false, apperror.NewInternal(fmt.Errorf("verifying password: %w", err))
	}

	if !ok || !found {
		return uuid.Nil, false, apperror.NewUnauthorized("invalid email or password")
	}

	return userID, isAdmin, nil
}

// Login authenticates the credentials and assembles the login response.
// The profile read is best-effort: if it fails, the login still succeeds
// with a nil Data field.
func (s *authService) Login(ctx context.Context, creds Credentials) (*LoginResponse, error) {
	userID, isAdmin, err := s.ValidateCredentials(ctx, creds)
	if err != nil {
		return nil, err
	}

	resp := &LoginResponse{
		UserID:  userID,
		IsAdmin: isAdmin,
	}

	profile, err := s.repo.FindProfile(ctx, userID)
	if err != nil {
		slog.Warn("failed to read profile during login",
			slog.String("user_id", userID.String()),
			slog.Any("error", err),
		)
	} else {
		resp.Data = profile
	}

	// Non-critical, the login response doesn't depend on it.
	if err := s.repo.UpdateLatestLogin(ctx, userID); err != nil {
		slog.Warn("failed to update latest login",
			slog.String("user_id", userID.String()),
			slog.Any("error", err),
		)
	}

	slog.Info("user logged in", slog.String("user_id", userID.String()))

	return resp, nil
}

// Register creates a new account from an email and password and returns
// the generated user id.
func (s *authService) Register(ctx context.Context, creds Credentials) (uuid.UUID, error) {
	email := normalizeEmail(creds.Username)
	if email == "" || creds.Password == "" {
		return uuid.Nil, apperror.NewBadRequest("email and password are required")
	}

	hash, err := s.verifier.Hash(ctx, creds.Password)
	if err != nil {
		return uuid.Nil, apperror.NewInternal(fmt.Errorf("hashing password: %w", err))
	}

	userID := uuid.New()
	if err := s.repo.Create(ctx, userID, email, hash); err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			return uuid.Nil, err
		}
		return uuid.Nil, apperror.NewInternal(fmt.Errorf("creating user: %w", err))
	}

	slog.Info("user registered", slog.String("user_id", userID.String()))

	return userID, nil
}

// ChangePassword re-verifies the caller's current password, checks that
// the new password was typed the same twice, and stores the new hash.
// The account email is resolved from the user id, never taken from the
// client.
func (s *authService) ChangePassword(ctx context.Context, input ChangePasswordInput) error {
	if input.NewPassword != input.NewPasswordCheck {
		return apperror.NewBadRequest("new passwords do not match")
	}

	email, err := s.repo.FindEmail(ctx, input.UserID)
	if err != nil {
		if isNotFound(err) {
			// An unknown id fails the same way as a wrong password.
			return apperror.NewBadRequest("current password is incorrect")
		}
		return apperror.NewInternal(fmt.Errorf("finding account email: %w", err))
	}

	userID, _, err := s.ValidateCredentials(ctx, Credentials{
		Username: email,
		Password: input.CurrentPassword,
	})
	if err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) && appErr.Code == 401 {
			return apperror.NewBadRequest("current password is incorrect")
		}
		return err
	}

	hash, err := s.verifier.Hash(ctx, input.NewPassword)
	if err != nil {
		return apperror.NewInternal(fmt.Errorf("hashing new password: %w", err))
	}

	if err := s.repo.UpdatePassword(ctx, userID, hash); err != nil {
		return apperror.NewInternal(fmt.Errorf("updating password: %w", err))
	}

	slog.Info("password changed", slog.String("user_id", userID.String()))

	return nil
}

// IsAdmin reports whether the user holds the admin flag. Used by the
// admin gate middleware on every admin request; the flag is never cached.
func (s *authService) IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error) {
	isAdmin, err := s.repo.IsAdmin(ctx, userID)
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("checking admin flag: %w", err)
	}
	return isAdmin, nil
}

// --- Helpers ---

// normalizeEmail lowercases and trims an email address so lookups and
// inserts agree on the canonical form.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// isNotFound checks if an error is an apperror with a 404 code.
func isNotFound(err error) bool {
	var appErr *apperror.AppError
	return errors.As(err, &appErr) && appErr.Code == 404
}
