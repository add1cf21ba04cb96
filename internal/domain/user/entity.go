package user

import (
	"time"

	"github.com/google/uuid"
)

// User is the identity record. PasswordHashed always holds a bcrypt hash,
// never plaintext. The reset-token fields form a single slot: a new
// forgot-password request overwrites the previous token.
type User struct {
	ID                  uuid.UUID
	Name                string
	Email               string
	Username            string
	PasswordHashed      string
	Vehicle             string
	LicensePlate        string
	FuelPrice           float64
	Theme               string
	ResetToken          *string
	ResetTokenExpiresAt *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
