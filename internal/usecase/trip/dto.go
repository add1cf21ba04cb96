package trip

import (
	"time"

	domainTrip "trip-expense-tracker/internal/domain/trip"

	"github.com/google/uuid"
)

type CreateTripRequest struct {
	RouteID     *uuid.UUID `json:"routeId" validate:"omitempty"`
	Origin      string     `json:"origin" validate:"required,min=1,max=255"`
	Destination string     `json:"destination" validate:"required,min=1,max=255"`
	TripDate    time.Time  `json:"tripDate" validate:"required"`
	DistanceKM  float64    `json:"distanceKm" validate:"required,gt=0"`
	FuelCost    float64    `json:"fuelCost" validate:"omitempty,min=0"`
	ParkingCost float64    `json:"parkingCost" validate:"omitempty,min=0"`
	TollCost    float64    `json:"tollCost" validate:"omitempty,min=0"`
	OtherCost   float64    `json:"otherCost" validate:"omitempty,min=0"`
	Notes       *string    `json:"notes" validate:"omitempty,max=1000"`
}

type UpdateTripRequest struct {
	RouteID     *uuid.UUID `json:"routeId" validate:"omitempty"`
	Origin      *string    `json:"origin" validate:"omitempty,min=1,max=255"`
	Destination *string    `json:"destination" validate:"omitempty,min=1,max=255"`
	TripDate    *time.Time `json:"tripDate" validate:"omitempty"`
	DistanceKM  *float64   `json:"distanceKm" validate:"omitempty,gt=0"`
	FuelCost    *float64   `json:"fuelCost" validate:"omitempty,min=0"`
	ParkingCost *float64   `json:"parkingCost" validate:"omitempty,min=0"`
	TollCost    *float64   `json:"tollCost" validate:"omitempty,min=0"`
	OtherCost   *float64   `json:"otherCost" validate:"omitempty,min=0"`
	Notes       *string    `json:"notes" validate:"omitempty,max=1000"`
}

type ListTripsRequest struct {
	From     *time.Time `form:"from" time_format:"2006-01-02"`
	To       *time.Time `form:"to" time_format:"2006-01-02"`
	RouteID  *uuid.UUID `form:"routeId"`
	Page     int        `form:"page" validate:"omitempty,min=1"`
	PageSize int        `form:"pageSize" validate:"omitempty,min=1,max=100"`
}

type TripResponse struct {
	ID          uuid.UUID  `json:"id"`
	RouteID     *uuid.UUID `json:"routeId,omitempty"`
	Origin      string     `json:"origin"`
	Destination string     `json:"destination"`
	TripDate    time.Time  `json:"tripDate"`
	DistanceKM  float64    `json:"distanceKm"`
	FuelCost    float64    `json:"fuelCost"`
	ParkingCost float64    `json:"parkingCost"`
	TollCost    float64    `json:"tollCost"`
	OtherCost   float64    `json:"otherCost"`
	TotalCost   float64    `json:"totalCost"`
	Notes       *string    `json:"notes,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

type TripListResponse struct {
	Trips    []*TripResponse `json:"trips"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"pageSize"`
}

func ToTripResponse(t *domainTrip.Trip) *TripResponse {
	return &TripResponse{
		ID:          t.ID,
		RouteID:     t.RouteID,
		Origin:      t.Origin,
		Destination: t.Destination,
		TripDate:    t.TripDate,
		DistanceKM:  t.DistanceKM,
		FuelCost:    t.FuelCost,
		ParkingCost: t.ParkingCost,
		TollCost:    t.TollCost,
		OtherCost:   t.OtherCost,
		TotalCost:   t.TotalCost(),
		Notes:       t.Notes,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}
