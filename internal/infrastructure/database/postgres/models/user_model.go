package models

import (
	"time"

	"github.com/google/uuid"
)

// UserModel represents the database model for User. The reset-token slot
// lives inline on the row: at most one active token per user.
type UserModel struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name                string     `gorm:"type:varchar(255);not null"`
	Email               string     `gorm:"type:varchar(255);not null;uniqueIndex"`
	Username            string     `gorm:"type:varchar(100);not null;uniqueIndex"`
	PasswordHashed      string     `gorm:"type:varchar(255);not null"`
	Vehicle             string     `gorm:"type:varchar(50);not null"`
	LicensePlate        string     `gorm:"type:varchar(20);not null"`
	FuelPrice           float64    `gorm:"type:numeric(10,3);not null;default:0"`
	Theme               string     `gorm:"type:varchar(20);not null;default:'light'"`
	ResetToken          *string    `gorm:"type:varchar(64);index"`
	ResetTokenExpiresAt *time.Time `gorm:"type:timestamp"`
	CreatedAt           time.Time  `gorm:"not null"`
	UpdatedAt           time.Time  `gorm:"not null"`
}

func (UserModel) TableName() string {
	return "users"
}
