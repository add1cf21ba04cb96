package models

import (
	"time"

	"github.com/google/uuid"
)

// TripModel represents the database model for a trip.
type TripModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	RouteID     *uuid.UUID `gorm:"type:uuid;index"`
	Origin      string     `gorm:"type:varchar(255);not null"`
	Destination string     `gorm:"type:varchar(255);not null"`
	TripDate    time.Time  `gorm:"type:date;not null;index"`
	DistanceKM  float64    `gorm:"column:distance_km;type:numeric(10,2);not null"`
	FuelCost    float64    `gorm:"type:numeric(10,2);not null;default:0"`
	ParkingCost float64    `gorm:"type:numeric(10,2);not null;default:0"`
	TollCost    float64    `gorm:"type:numeric(10,2);not null;default:0"`
	OtherCost   float64    `gorm:"type:numeric(10,2);not null;default:0"`
	Notes       *string    `gorm:"type:text"`
	CreatedAt   time.Time  `gorm:"not null"`
	UpdatedAt   time.Time  `gorm:"not null"`
}

func (TripModel) TableName() string {
	return "trips"
}
