package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"trip-expense-tracker/internal/domain/route"
	"trip-expense-tracker/internal/infrastructure/database/postgres/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RouteRepository implements route.Repository on Postgres.
type RouteRepository struct {
	db *DB
}

func NewRouteRepository(db *DB) route.Repository {
	return &RouteRepository{db: db}
}

func (r *RouteRepository) Create(ctx context.Context, rt *route.Route) error {
	rt.ID = uuid.New()
	rt.CreatedAt = time.Now()
	rt.UpdatedAt = time.Now()

	dbModel := toRouteModel(rt)
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		return fmt.Errorf("failed to create route: %w", err)
	}

	rt.ID = dbModel.ID
	rt.CreatedAt = dbModel.CreatedAt
	rt.UpdatedAt = dbModel.UpdatedAt

	return nil
}

func (r *RouteRepository) GetByID(ctx context.Context, routeID uuid.UUID) (*route.Route, error) {
	var dbModel models.RouteModel
	err := r.db.DB.WithContext(ctx).First(&dbModel, "id = ?", routeID).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, route.ErrRouteNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get route: %w", err)
	}

	return toRouteEntity(&dbModel), nil
}

func (r *RouteRepository) GetByUser(ctx context.Context, userID uuid.UUID) ([]*route.Route, error) {
	var dbModels []models.RouteModel
	err := r.db.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("name ASC").
		Find(&dbModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get routes: %w", err)
	}

	routes := make([]*route.Route, len(dbModels))
	for i := range dbModels {
		routes[i] = toRouteEntity(&dbModels[i])
	}

	return routes, nil
}

func (r *RouteRepository) Update(ctx context.Context, rt *route.Route) error {
	rt.UpdatedAt = time.Now()

	result := r.db.DB.WithContext(ctx).Model(&models.RouteModel{}).
		Where("id = ?", rt.ID).
		Updates(map[string]interface{}{
			"name":        rt.Name,
			"origin":      rt.Origin,
			"destination": rt.Destination,
			"distance_km": rt.DistanceKM,
			"updated_at":  rt.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update route: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return route.ErrRouteNotFound
	}

	return nil
}

func (r *RouteRepository) Delete(ctx context.Context, routeID uuid.UUID) error {
	result := r.db.DB.WithContext(ctx).Delete(&models.RouteModel{}, "id = ?", routeID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete route: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return route.ErrRouteNotFound
	}

	return nil
}

func toRouteModel(rt *route.Route) *models.RouteModel {
	return &models.RouteModel{
		ID:          rt.ID,
		UserID:      rt.UserID,
		Name:        rt.Name,
		Origin:      rt.Origin,
		Destination: rt.Destination,
		DistanceKM:  rt.DistanceKM,
		CreatedAt:   rt.CreatedAt,
		UpdatedAt:   rt.UpdatedAt,
	}
}

func toRouteEntity(m *models.RouteModel) *route.Route {
	return &route.Route{
		ID:          m.ID,
		UserID:      m.UserID,
		Name:        m.Name,
		Origin:      m.Origin,
		Destination: m.Destination,
		DistanceKM:  m.DistanceKM,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
