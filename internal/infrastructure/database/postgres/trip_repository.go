package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"trip-expense-tracker/internal/domain/trip"
	"trip-expense-tracker/internal/infrastructure/database/postgres/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TripRepository implements trip.Repository on Postgres. The analytics
// queries push all grouping and summing to the database.
type TripRepository struct {
	db *DB
}

func NewTripRepository(db *DB) trip.Repository {
	return &TripRepository{db: db}
}

func (r *TripRepository) Create(ctx context.Context, t *trip.Trip) error {
	t.ID = uuid.New()
	t.CreatedAt = time.Now()
	t.UpdatedAt = time.Now()

	dbModel := toTripModel(t)
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		return fmt.Errorf("failed to create trip: %w", err)
	}

	t.ID = dbModel.ID
	t.CreatedAt = dbModel.CreatedAt
	t.UpdatedAt = dbModel.UpdatedAt

	return nil
}

func (r *TripRepository) GetByID(ctx context.Context, tripID uuid.UUID) (*trip.Trip, error) {
	var dbModel models.TripModel
	err := r.db.DB.WithContext(ctx).First(&dbModel, "id = ?", tripID).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, trip.ErrTripNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get trip: %w", err)
	}

	return toTripEntity(&dbModel), nil
}

// GetByUser lists a user's trips newest first. A zero PageSize disables
// pagination.
func (r *TripRepository) GetByUser(ctx context.Context, userID uuid.UUID, filter trip.Filter) ([]*trip.Trip, int64, error) {
	query := r.db.DB.WithContext(ctx).Model(&models.TripModel{}).
		Where("user_id = ?", userID)

	if filter.From != nil {
		query = query.Where("trip_date >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("trip_date <= ?", *filter.To)
	}
	if filter.RouteID != nil {
		query = query.Where("route_id = ?", *filter.RouteID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count trips: %w", err)
	}

	query = query.Order("trip_date DESC, created_at DESC")
	if filter.PageSize > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		query = query.Offset((page - 1) * filter.PageSize).Limit(filter.PageSize)
	}

	var dbModels []models.TripModel
	if err := query.Find(&dbModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get trips: %w", err)
	}

	trips := make([]*trip.Trip, len(dbModels))
	for i := range dbModels {
		trips[i] = toTripEntity(&dbModels[i])
	}

	return trips, total, nil
}

func (r *TripRepository) Update(ctx context.Context, t *trip.Trip) error {
	t.UpdatedAt = time.Now()

	result := r.db.DB.WithContext(ctx).Model(&models.TripModel{}).
		Where("id = ?", t.ID).
		Updates(map[string]interface{}{
			"route_id":     t.RouteID,
			"origin":       t.Origin,
			"destination":  t.Destination,
			"trip_date":    t.TripDate,
			"distance_km":  t.DistanceKM,
			"fuel_cost":    t.FuelCost,
			"parking_cost": t.ParkingCost,
			"toll_cost":    t.TollCost,
			"other_cost":   t.OtherCost,
			"notes":        t.Notes,
			"updated_at":   t.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update trip: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return trip.ErrTripNotFound
	}

	return nil
}

func (r *TripRepository) Delete(ctx context.Context, tripID uuid.UUID) error {
	result := r.db.DB.WithContext(ctx).Delete(&models.TripModel{}, "id = ?", tripID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete trip: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return trip.ErrTripNotFound
	}

	return nil
}

func (r *TripRepository) GetSummary(ctx context.Context, userID uuid.UUID) (*trip.Summary, error) {
	var summary trip.Summary
	err := r.db.DB.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) AS trip_count,
			COALESCE(SUM(distance_km), 0) AS total_distance_km,
			COALESCE(SUM(fuel_cost), 0) AS total_fuel_cost,
			COALESCE(SUM(parking_cost), 0) AS total_parking_cost,
			COALESCE(SUM(toll_cost), 0) AS total_toll_cost,
			COALESCE(SUM(other_cost), 0) AS total_other_cost,
			COALESCE(SUM(fuel_cost + parking_cost + toll_cost + other_cost), 0) AS total_cost
		FROM trips
		WHERE user_id = ?
	`, userID).Scan(&summary).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get summary: %w", err)
	}

	return &summary, nil
}

func (r *TripRepository) GetMonthlyStats(ctx context.Context, userID uuid.UUID, months int) ([]*trip.MonthlyStat, error) {
	var stats []*trip.MonthlyStat
	err := r.db.DB.WithContext(ctx).Raw(`
		SELECT
			to_char(date_trunc('month', trip_date), 'YYYY-MM') AS month,
			COUNT(*) AS trip_count,
			COALESCE(SUM(distance_km), 0) AS total_distance_km,
			COALESCE(SUM(fuel_cost + parking_cost + toll_cost + other_cost), 0) AS total_cost
		FROM trips
		WHERE user_id = ?
		  AND trip_date >= date_trunc('month', NOW()) - (? || ' months')::interval
		GROUP BY date_trunc('month', trip_date)
		ORDER BY date_trunc('month', trip_date) DESC
	`, userID, months-1).Scan(&stats).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get monthly stats: %w", err)
	}

	return stats, nil
}

func (r *TripRepository) GetTopRoutes(ctx context.Context, userID uuid.UUID, limit int) ([]*trip.RouteStat, error) {
	var stats []*trip.RouteStat
	err := r.db.DB.WithContext(ctx).Raw(`
		SELECT
			origin,
			destination,
			COUNT(*) AS trip_count,
			COALESCE(SUM(distance_km), 0) AS total_distance_km,
			COALESCE(SUM(fuel_cost + parking_cost + toll_cost + other_cost), 0) AS total_cost
		FROM trips
		WHERE user_id = ?
		GROUP BY origin, destination
		ORDER BY COUNT(*) DESC, COALESCE(SUM(fuel_cost + parking_cost + toll_cost + other_cost), 0) DESC
		LIMIT ?
	`, userID, limit).Scan(&stats).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get top routes: %w", err)
	}

	return stats, nil
}

func toTripModel(t *trip.Trip) *models.TripModel {
	return &models.TripModel{
		ID:          t.ID,
		UserID:      t.UserID,
		RouteID:     t.RouteID,
		Origin:      t.Origin,
		Destination: t.Destination,
		TripDate:    t.TripDate,
		DistanceKM:  t.DistanceKM,
		FuelCost:    t.FuelCost,
		ParkingCost: t.ParkingCost,
		TollCost:    t.TollCost,
		OtherCost:   t.OtherCost,
		Notes:       t.Notes,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func toTripEntity(m *models.TripModel) *trip.Trip {
	return &trip.Trip{
		ID:          m.ID,
		UserID:      m.UserID,
		RouteID:     m.RouteID,
		Origin:      m.Origin,
		Destination: m.Destination,
		TripDate:    m.TripDate,
		DistanceKM:  m.DistanceKM,
		FuelCost:    m.FuelCost,
		ParkingCost: m.ParkingCost,
		TollCost:    m.TollCost,
		OtherCost:   m.OtherCost,
		Notes:       m.Notes,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
