package models

import (
	"time"

	"github.com/google/uuid"
)

// RouteModel represents the database model for a frequent route.
type RouteModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Origin      string    `gorm:"type:varchar(255);not null"`
	Destination string    `gorm:"type:varchar(255);not null"`
	DistanceKM  float64   `gorm:"column:distance_km;type:numeric(10,2);not null"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

func (RouteModel) TableName() string {
	return "routes"
}
