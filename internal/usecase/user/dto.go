package user

import (
	"time"

	domainUser "trip-expense-tracker/internal/domain/user"

	"github.com/google/uuid"
)

// Request DTOs. Field names follow the public API contract.

type RegisterRequest struct {
	Name            string   `json:"name" validate:"required,min=2,max=255"`
	Email           string   `json:"email" validate:"required,email"`
	Username        string   `json:"username" validate:"required,min=3,max=100"`
	Password        string   `json:"password" validate:"required"`
	ConfirmPassword string   `json:"confirmPassword" validate:"required,eqfield=Password"`
	Vehicle         string   `json:"vehicle" validate:"required,vehicle"`
	LicensePlate    string   `json:"licensePlate" validate:"required,max=20"`
	FuelPrice       *float64 `json:"fuelPrice" validate:"omitempty,min=0"`
	Theme           *string  `json:"theme" validate:"omitempty,theme"`
}

type LoginRequest struct {
	EmailOrUsername string `json:"emailOrUsername" validate:"required"`
	Password        string `json:"password" validate:"required"`
}

type UpdateProfileRequest struct {
	Name         *string  `json:"name" validate:"omitempty,min=2,max=255"`
	Email        *string  `json:"email" validate:"omitempty,email"`
	Username     *string  `json:"username" validate:"omitempty,min=3,max=100"`
	Vehicle      *string  `json:"vehicle" validate:"omitempty,vehicle"`
	LicensePlate *string  `json:"licensePlate" validate:"omitempty,max=20"`
	FuelPrice    *float64 `json:"fuelPrice" validate:"omitempty,min=0"`
	Theme        *string  `json:"theme" validate:"omitempty,theme"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Token           string `json:"token" validate:"required"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

// Response DTOs. UserResponse never carries the password hash or the
// reset-token fields.

type UserResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	Vehicle      string    `json:"vehicle"`
	LicensePlate string    `json:"licensePlate"`
	FuelPrice    float64   `json:"fuelPrice"`
	Theme        string    `json:"theme"`
	CreatedAt    time.Time `json:"createdAt"`
}

type AuthResponse struct {
	User  *UserResponse `json:"user"`
	Token string        `json:"token"`
}

func ToUserResponse(u *domainUser.User) *UserResponse {
	return &UserResponse{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		Username:     u.Username,
		Vehicle:      u.Vehicle,
		LicensePlate: u.LicensePlate,
		FuelPrice:    u.FuelPrice,
		Theme:        u.Theme,
		CreatedAt:    u.CreatedAt,
	}
}
