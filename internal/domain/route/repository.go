package route

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for route persistence.
type Repository interface {
	Create(ctx context.Context, route *Route) error
	GetByID(ctx context.Context, routeID uuid.UUID) (*Route, error)
	GetByUser(ctx context.Context, userID uuid.UUID) ([]*Route, error)
	Update(ctx context.Context, route *Route) error
	Delete(ctx context.Context, routeID uuid.UUID) error
}
