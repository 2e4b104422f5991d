package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"

	"github.com/Austionian/fishy-edge/internal/apperror"
)

const mysqlErrDuplicateEntry = 1062

// UserRepository defines the data access contract for user profiles.
type UserRepository interface {
	FindProfile(ctx context.Context, userID uuid.UUID) (*Profile, error)
	UpdateProfile(ctx context.Context, req UpdateProfileRequest) error
	UpdateAccount(ctx context.Context, req UpdateAccountRequest) error
	UpdateImage(ctx context.Context, userID uuid.UUID, imageURL string) error
	Delete(ctx context.Context, userID uuid.UUID) error
}

// userRepository implements UserRepository with hand-written MariaDB queries.
type userRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new user repository backed by the given DB pool.
func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{db: db}
}

// FindProfile retrieves the health profile for one user.
// Returns apperror.NotFound if no user exists with this ID.
func (r *userRepository) FindProfile(ctx context.Context, userID uuid.UUID) (*Profile, error) {
	query := `SELECT weight, age, sex, plan_to_get_pregnant, portion_size
	          FROM users WHERE id = ?`

	p := &Profile{}
	err := r.db.QueryRowContext(ctx, query, userID.String()).Scan(
		&p.Weight, &p.Age, &p.Sex, &p.PlanToGetPregnant, &p.PortionSize,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperror.NewNotFound("user not found")
	}
	if err != nil {
		return nil, fmt.Errorf("querying profile: %w", err)
	}

	return p, nil
}

// UpdateProfile stores the intake form values.
func (r *userRepository) UpdateProfile(ctx context.Context, req UpdateProfileRequest) error {
	query := `UPDATE users
	          SET weight = ?, age = ?, sex = ?, plan_to_get_pregnant = ?, portion_size = ?
	          WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query,
		req.Weight, req.Age, req.Sex, req.PlanToGetPregnant, req.PortionSize,
		req.UserID.String(),
	)
	if err != nil {
		return fmt.Errorf("updating profile: %w", err)
	}

	n, _ := result.RowsAffected()
	if n == 0 {
		return apperror.NewNotFound("user not found")
	}
	return nil
}

// UpdateAccount stores the account settings.
// Returns apperror.Conflict when the new email is already taken.
func (r *userRepository) UpdateAccount(ctx context.Context, req UpdateAccountRequest) error {
	query := `UPDATE users
	          SET email = ?, first_name = ?, last_name = ?
	          WHERE id = ?`

	_, err := r.db.ExecContext(ctx, query,
		req.Email, req.FirstName, req.LastName, req.UserID.String(),
	)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlErrDuplicateEntry {
			return apperror.NewConflict("an account with this email already exists")
		}
		return fmt.Errorf("updating account: %w", err)
	}
	return nil
}

// UpdateImage stores a new profile image URL.
func (r *userRepository) UpdateImage(ctx context.Context, userID uuid.UUID, imageURL string) error {
	query := `UPDATE users SET image_url = ? WHERE id = ?`

	if _, err := r.db.ExecContext(ctx, query, imageURL, userID.String()); err != nil {
		return fmt.Errorf("updating image: %w", err)
	}
	return nil
}

// Delete removes a user row. Favorite links cascade through foreign
// keys.
func (r *userRepository) Delete(ctx context.Context, userID uuid.UUID) error {
	query := `DELETE FROM users WHERE id = ?`

	if _, err := r.db.ExecContext(ctx, query, userID.String()); err != nil {
		return fmt.Errorf("deleting user: %w", err)
	}
	return nil
}
