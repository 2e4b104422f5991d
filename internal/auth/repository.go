package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"

	"github.com/Austionian/fishy-edge/internal/apperror"
)

// mysqlErrDuplicateEntry is the MariaDB error number for a unique key
// violation.
const mysqlErrDuplicateEntry = 1062

// UserRepository defines the data access contract for credential and
// privilege lookups. All SQL lives in the concrete implementation.
type UserRepository interface {
	FindCredentials(ctx context.Context, email string) (*StoredCredentials, error)
	FindEmail(ctx context.Context, userID uuid.UUID) (string, error)
	IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error)
	Create(ctx context.Context, userID uuid.UUID, email, passwordHash string) error
	UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error
	FindProfile(ctx context.Context, userID uuid.UUID) (*Profile, error)
	UpdateLatestLogin(ctx context.Context, userID uuid.UUID) error
}

// userRepository implements UserRepository with hand-written MariaDB queries.
type userRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new user repository backed by the given DB pool.
func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{db: db}
}

// FindCredentials retrieves the stored credentials for an email address.
// Returns apperror.NotFound if no account exists with this email.
func (r *userRepository) FindCredentials(ctx context.Context, email string) (*StoredCredentials, error) {
	query := `SELECT id, password_hash, is_admin FROM users WHERE email = ?`

	var id string
	var hash string
	var isAdmin sql.NullBool
	err := r.db.QueryRowContext(ctx, query, email).Scan(&id, &hash, &isAdmin)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperror.NewNotFound("user not found")
	}
	if err != nil {
		return nil, fmt.Errorf("querying credentials by email: %w", err)
	}

	userID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("parsing stored user id %q: %w", id, err)
	}

	return &StoredCredentials{
		UserID:       userID,
		PasswordHash: hash,
		IsAdmin:      isAdmin.Valid && isAdmin.Bool,
	}, nil
}

// FindEmail resolves a user id to the account's email address.
// Returns apperror.NotFound if no user exists with this ID.
func (r *userRepository) FindEmail(ctx context.Context, userID uuid.UUID) (string, error) {
	query := `SELECT email FROM users WHERE id = ?`

	var email string
	err := r.db.QueryRowContext(ctx, query, userID.String()).Scan(&email)
	if errors.Is(err, sql.ErrNoRows) {
		return "", apperror.NewNotFound("user not found")
	}
	if err != nil {
		return "", fmt.Errorf("querying email by id: %w", err)
	}

	return email, nil
}

// IsAdmin reads the is_admin flag for a user. A NULL column reads as
// false. Returns apperror.NotFound if no user exists with this ID.
func (r *userRepository) IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error) {
	query := `SELECT is_admin FROM users WHERE id = ?`

	var isAdmin sql.NullBool
	err := r.db.QueryRowContext(ctx, query, userID.String()).Scan(&isAdmin)
	if errors.Is(err, sql.ErrNoRows) {
		return false, apperror.NewNotFound("user not found")
	}
	if err != nil {
		return false, fmt.Errorf("querying is_admin: %w", err)
	}

	return isAdmin.Valid && isAdmin.Bool, nil
}

// Create inserts a new user row with just the credential columns. Profile
// columns stay NULL until the user fills them in.
// Returns apperror.Conflict when the email is already taken.
func (r *userRepository) Create(ctx context.Context, userID uuid.UUID, email, passwordHash string) error {
	query := `INSERT INTO users (id, email, password_hash, created_at)
	          VALUES (?, ?, ?, NOW())`

	_, err := r.db.ExecContext(ctx, query, userID.String(), email, passwordHash)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlErrDuplicateEntry {
			return apperror.NewConflict("an account with this email already exists")
		}
		return fmt.Errorf("inserting user: %w", err)
	}

	return nil
}

// UpdatePassword sets a new password hash for a user.
func (r *userRepository) UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error {
	query := `UPDATE users SET password_hash = ? WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, passwordHash, userID.String())
	if err != nil {
		return fmt.Errorf("updating password: %w", err)
	}

	n, _ := result.RowsAffected()
	if n == 0 {
		return apperror.NewNotFound("user not found")
	}

	return nil
}

// FindProfile retrieves the optional profile columns for a user.
func (r *userRepository) FindProfile(ctx context.Context, userID uuid.UUID) (*Profile, error) {
	query := `SELECT weight, age, sex, plan_to_get_pregnant, portion_size,
	                 image_url, first_name, last_name
	          FROM users WHERE id = ?`

	p := &Profile{}
	err := r.db.QueryRowContext(ctx, query, userID.String()).Scan(
		&p.Weight,
		&p.Age,
		&p.Sex,
		&p.PlanToGetPregnant,
		&p.PortionSize,
		&p.ImageURL,
		&p.FirstName,
		&p.LastName,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperror.NewNotFound("user not found")
	}
	if err != nil {
		return nil, fmt.Errorf("querying profile: %w", err)
	}

	return p, nil
}

// UpdateLatestLogin stamps the latest_login column for a user.
func (r *userRepository) UpdateLatestLogin(ctx context.Context, userID uuid.UUID) error {
	query := `UPDATE users SET latest_login = NOW() WHERE id = ?`

	_, err := r.db.ExecContext(ctx, query, userID.String())
	if err != nil {
		return fmt.Errorf("updating latest login: %w", err)
	}

	return nil
}
