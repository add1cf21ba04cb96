package user

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Repository defines the interface for user persistence.
type Repository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, userID uuid.UUID) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByEmailOrUsername(ctx context.Context, identifier string) (*User, error)
	Update(ctx context.Context, user *User) error
	UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error

	// EmailTaken and UsernameTaken report whether another user (excluding
	// excludeID) already holds the value.
	EmailTaken(ctx context.Context, email string, excludeID uuid.UUID) (bool, error)
	UsernameTaken(ctx context.Context, username string, excludeID uuid.UUID) (bool, error)

	// SetResetToken overwrites the user's reset-token slot.
	SetResetToken(ctx context.Context, userID uuid.UUID, token string, expiresAt time.Time) error
	// GetByResetToken resolves a user whose stored token matches and whose
	// expiry is still in the future.
	GetByResetToken(ctx context.Context, token string) (*User, error)
	// ResetPassword replaces the password hash and clears the reset-token
	// slot in a single update.
	ResetPassword(ctx context.Context, userID uuid.UUID, passwordHash string) error
}
