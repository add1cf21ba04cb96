package route

import (
	"time"

	domainRoute "trip-expense-tracker/internal/domain/route"

	"github.com/google/uuid"
)

type CreateRouteRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=255"`
	Origin      string  `json:"origin" validate:"required,min=1,max=255"`
	Destination string  `json:"destination" validate:"required,min=1,max=255"`
	DistanceKM  float64 `json:"distanceKm" validate:"required,gt=0"`
}

type UpdateRouteRequest struct {
	Name        *string  `json:"name" validate:"omitempty,min=1,max=255"`
	Origin      *string  `json:"origin" validate:"omitempty,min=1,max=255"`
	Destination *string  `json:"destination" validate:"omitempty,min=1,max=255"`
	DistanceKM  *float64 `json:"distanceKm" validate:"omitempty,gt=0"`
}

type RouteResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Origin      string    `json:"origin"`
	Destination string    `json:"destination"`
	DistanceKM  float64   `json:"distanceKm"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func ToRouteResponse(r *domainRoute.Route) *RouteResponse {
	return &RouteResponse{
		ID:          r.ID,
		Name:        r.Name,
		Origin:      r.Origin,
		Destination: r.Destination,
		DistanceKM:  r.DistanceKM,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}
