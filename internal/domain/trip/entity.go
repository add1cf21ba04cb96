package trip

import (
	"time"

	"github.com/google/uuid"
)

// Trip is a single business trip with its cost breakdown. RouteID is set
// when the trip was recorded against one of the user's frequent routes.
type Trip struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	RouteID     *uuid.UUID
	Origin      string
	Destination string
	TripDate    time.Time
	DistanceKM  float64
	FuelCost    float64
	ParkingCost float64
	TollCost    float64
	OtherCost   float64
	Notes       *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TotalCost sums all cost categories.
func (t *Trip) TotalCost() float64 {
	return t.FuelCost + t.ParkingCost + t.TollCost + t.OtherCost
}
