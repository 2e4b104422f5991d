package analytics

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// AnalyticsRepository defines the data access contract for the
// dashboard summary.
type AnalyticsRepository interface {
	ListUserActivity(ctx context.Context) ([]UserActivity, error)
	CountUsers(ctx context.Context) (int64, error)
	MostLikedFish(ctx context.Context) (*MostLiked, error)
	MostLikedRecipe(ctx context.Context) (*MostLiked, error)
}

type analyticsRepository struct {
	db *sql.DB
}

// NewAnalyticsRepository creates a new analytics repository backed by
// the given DB pool.
func NewAnalyticsRepository(db *sql.DB) AnalyticsRepository {
	return &analyticsRepository{db: db}
}

// ListUserActivity retrieves signup and latest login times for every
// user, newest signup first.
func (r *analyticsRepository) ListUserActivity(ctx context.Context) ([]UserActivity, error) {
	query := `SELECT email, created_at, latest_login FROM users ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying user activity: %w", err)
	}
	defer rows.Close()

	var activity []UserActivity
	for rows.Next() {
		var ua UserActivity
		if err := rows.Scan(&ua.Email, &ua.CreatedAt, &ua.LatestLogin); err != nil {
			return nil, fmt.Errorf("scanning user activity: %w", err)
		}
		activity = append(activity, ua)
	}
	return activity, rows.Err()
}

// CountUsers returns the number of registered users.
func (r *analyticsRepository) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting users: %w", err)
	}
	return count, nil
}

// MostLikedFish returns the species with the most favorites, or nil
// when nothing has been favorited.
func (r *analyticsRepository) MostLikedFish(ctx context.Context) (*MostLiked, error) {
	query := `SELECT ft.id, ft.name, COUNT(*) AS like_count
	          FROM user_fishtype uf
	          JOIN fish_type ft ON ft.id = uf.fishtype_id
	          GROUP BY ft.id, ft.name
	          ORDER BY like_count DESC
	          LIMIT 1`

	return r.queryMostLiked(ctx, query)
}

// MostLikedRecipe returns the recipe with the most favorites, or nil
// when nothing has been favorited.
func (r *analyticsRepository) MostLikedRecipe(ctx context.Context) (*MostLiked, error) {
	query := `SELECT rc.id, rc.name, COUNT(*) AS like_count
	          FROM user_recipe ur
	          JOIN recipe rc ON rc.id = ur.recipe_id
	          GROUP BY rc.id, rc.name
	          ORDER BY like_count DESC
	          LIMIT 1`

	return r.queryMostLiked(ctx, query)
}

func (r *analyticsRepository) queryMostLiked(ctx context.Context, query string) (*MostLiked, error) {
	var id string
	ml := &MostLiked{}
	err := r.db.QueryRowContext(ctx, query).Scan(&id, &ml.Name, &ml.Count)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying most liked: %w", err)
	}
	if ml.ID, err = uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("parsing most liked id: %w", err)
	}
	return ml, nil
}
