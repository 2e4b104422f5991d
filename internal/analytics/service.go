package analytics

import (
	"context"
	"fmt"

	"github.com/Austionian/fishy-edge/internal/apperror"
)

// AnalyticsService defines the business logic contract for the
// dashboard summary.
type AnalyticsService interface {
	Dashboard(ctx context.Context) (*Data, error)
}

type analyticsService struct {
	repo AnalyticsRepository
}

// NewAnalyticsService creates a new analytics service with the given
// repository.
func NewAnalyticsService(repo AnalyticsRepository) AnalyticsService {
	return &analyticsService{repo: repo}
}

// Dashboard assembles the admin dashboard summary.
func (s *analyticsService) Dashboard(ctx context.Context) (*Data, error) {
	activity, err := s.repo.ListUserActivity(ctx)
	if err != nil {
		return nil, apperror.NewInternal(fmt.Errorf("listing user activity: %w", err))
	}

	count, err := s.repo.CountUsers(ctx)
	if err != nil {
		return nil, apperror.NewInternal(fmt.Errorf("counting users: %w", err))
	}

	data := &Data{
		UserData:                activity,
		NumberOfRegisteredUsers: count,
	}

	if ml, err := s.repo.MostLikedFish(ctx); err != nil {
		return nil, apperror.NewInternal(fmt.Errorf("ranking fish favorites: %w", err))
	} else if ml != nil {
		data.MostLikedFish = &ml.Name
		data.MostLikedFishID = &ml.ID
		data.FishLikeCount = ml.Count
	}

	if ml, err := s.repo.MostLikedRecipe(ctx); err != nil {
		return nil, apperror.NewInternal(fmt.Errorf("ranking recipe favorites: %w", err))
	} else if ml != nil {
		data.MostLikedRecipe = &ml.Name
		data.MostLikedRecipeID = &ml.ID
		data.RecipeLikeCount = ml.Count
	}

	return data, nil
}
