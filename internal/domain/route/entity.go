package route

import (
	"time"

	"github.com/google/uuid"
)

// Route is a frequent route owned by a single user.
type Route struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Name        string
	Origin      string
	Destination string
	DistanceKM  float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
