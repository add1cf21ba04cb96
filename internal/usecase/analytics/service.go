package analytics

import (
	"context"

	domainTrip "trip-expense-tracker/internal/domain/trip"

	"github.com/google/uuid"
)

const (
	topRoutesLimit       = 5
	defaultMonthlyWindow = 12
	maxMonthlyWindow     = 60
)

// Service implements the dashboard aggregations. All grouping and summing
// happens in the database; this layer only shapes results.
type Service struct {
	tripRepo domainTrip.Repository
}

func NewService(tripRepo domainTrip.Repository) *Service {
	return &Service{tripRepo: tripRepo}
}

func (s *Service) Summary(ctx context.Context, userID uuid.UUID) (*SummaryResponse, error) {
	summary, err := s.tripRepo.GetSummary(ctx, userID)
	if err != nil {
		return nil, err
	}

	return toSummaryResponse(summary), nil
}

func (s *Service) MonthlyStats(ctx context.Context, userID uuid.UUID, months int) ([]*MonthlyStatResponse, error) {
	if months < 1 {
		months = defaultMonthlyWindow
	}
	if months > maxMonthlyWindow {
		months = maxMonthlyWindow
	}

	stats, err := s.tripRepo.GetMonthlyStats(ctx, userID, months)
	if err != nil {
		return nil, err
	}

	return toMonthlyStatResponses(stats), nil
}

func (s *Service) TopRoutes(ctx context.Context, userID uuid.UUID) ([]*RouteStatResponse, error) {
	stats, err := s.tripRepo.GetTopRoutes(ctx, userID, topRoutesLimit)
	if err != nil {
		return nil, err
	}

	return toRouteStatResponses(stats), nil
}
