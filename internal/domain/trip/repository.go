package trip

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Filter narrows trip listings. Zero values mean "no constraint".
type Filter struct {
	From     *time.Time
	To       *time.Time
	RouteID  *uuid.UUID
	Page     int
	PageSize int
}

// Summary aggregates a user's trips across all time.
type Summary struct {
	TripCount        int64
	TotalDistanceKM  float64
	TotalFuelCost    float64
	TotalParkingCost float64
	TotalTollCost    float64
	TotalOtherCost   float64
	TotalCost        float64
}

// MonthlyStat aggregates a user's trips for one calendar month.
type MonthlyStat struct {
	Month           string
	TripCount       int64
	TotalDistanceKM float64
	TotalCost       float64
}

// RouteStat aggregates trips sharing an origin/destination pair.
type RouteStat struct {
	Origin          string
	Destination     string
	TripCount       int64
	TotalDistanceKM float64
	TotalCost       float64
}

// Repository defines the interface for trip persistence and aggregation.
// All grouping and summing is pushed to the backing store.
type Repository interface {
	Create(ctx context.Context, trip *Trip) error
	GetByID(ctx context.Context, tripID uuid.UUID) (*Trip, error)
	GetByUser(ctx context.Context, userID uuid.UUID, filter Filter) ([]*Trip, int64, error)
	Update(ctx context.Context, trip *Trip) error
	Delete(ctx context.Context, tripID uuid.UUID) error

	GetSummary(ctx context.Context, userID uuid.UUID) (*Summary, error)
	GetMonthlyStats(ctx context.Context, userID uuid.UUID, months int) ([]*MonthlyStat, error)
	GetTopRoutes(ctx context.Context, userID uuid.UUID, limit int) ([]*RouteStat, error)
}
