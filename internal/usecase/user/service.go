package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"trip-expense-tracker/internal/config"
	domainUser "trip-expense-tracker/internal/domain/user"
	"trip-expense-tracker/internal/logger"
	appErrors "trip-expense-tracker/pkg/errors"
	"trip-expense-tracker/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const resetTokenTTL = 1 * time.Hour

// Service implements the account and password lifecycle use cases.
type Service struct {
	userRepo domainUser.Repository
	config   *config.Config
}

// NewService creates a new user service
func NewService(userRepo domainUser.Repository, cfg *config.Config) *Service {
	return &Service{
		userRepo: userRepo,
		config:   cfg,
	}
}

func (s *Service) Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	if err := utils.ValidatePassword(req.Password); err != nil {
		return nil, appErrors.NewAppError("WEAK_PASSWORD", err.Error(), nil)
	}

	emailTaken, err := s.userRepo.EmailTaken(ctx, req.Email, uuid.Nil)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if emailTaken {
		logger.Warn("Registration attempt with existing email",
			zap.String("email", req.Email),
			zap.String("event", "registration_failed_duplicate_email"),
		)
		return nil, appErrors.NewFieldError("CONFLICT", "Email already in use",
			map[string]string{"email": "already in use"})
	}

	usernameTaken, err := s.userRepo.UsernameTaken(ctx, req.Username, uuid.Nil)
	if err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if usernameTaken {
		logger.Warn("Registration attempt with existing username",
			zap.String("username", req.Username),
			zap.String("event", "registration_failed_duplicate_username"),
		)
		return nil, appErrors.NewFieldError("CONFLICT", "Username already in use",
			map[string]string{"username": "already in use"})
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domainUser.User{
		Name:           req.Name,
		Email:          req.Email,
		Username:       req.Username,
		PasswordHashed: hashedPassword,
		Vehicle:        req.Vehicle,
		LicensePlate:   req.LicensePlate,
		Theme:          "light",
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}
	if req.FuelPrice != nil {
		user.FuelPrice = *req.FuelPrice
	}
	if req.Theme != nil {
		user.Theme = *req.Theme
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// Concurrent registration can still hit the unique constraints.
		switch {
		case errors.Is(err, domainUser.ErrEmailTaken):
			return nil, appErrors.NewFieldError("CONFLICT", "Email already in use",
				map[string]string{"email": "already in use"})
		case errors.Is(err, domainUser.ErrUsernameTaken):
			return nil, appErrors.NewFieldError("CONFLICT", "Username already in use",
				map[string]string{"username": "already in use"})
		}
		return nil, err
	}

	token, err := utils.GenerateToken(user.ID, s.config.JWT.Secret, s.config.JWT.TokenTTL())
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	logger.Info("User registered successfully",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email),
		zap.String("username", user.Username),
		zap.String("event", "user_registered"),
	)

	return &AuthResponse{
		User:  ToUserResponse(user),
		Token: token,
	}, nil
}

func (s *Service) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	// Unknown identifier and wrong password both collapse into the same
	// generic failure so callers cannot probe which field was wrong.
	user, err := s.userRepo.GetByEmailOrUsername(ctx, req.EmailOrUsername)
	if err != nil {
		if errors.Is(err, domainUser.ErrUserNotFound) {
			logger.Warn("Login attempt with unknown identifier",
				zap.String("identifier", req.EmailOrUsername),
				zap.String("event", "login_failed_unknown_identifier"),
			)
			return nil, appErrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !utils.CheckPassword(user.PasswordHashed, req.Password) {
		logger.Warn("Login attempt with invalid password",
			zap.String("user_id", user.ID.String()),
			zap.String("event", "login_failed_invalid_password"),
		)
		return nil, appErrors.ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(user.ID, s.config.JWT.Secret, s.config.JWT.TokenTTL())
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	logger.Info("User logged in successfully",
		zap.String("user_id", user.ID.String()),
		zap.String("event", "login_success"),
	)

	return &AuthResponse{
		User:  ToUserResponse(user),
		Token: token,
	}, nil
}

func (s *Service) GetProfile(ctx context.Context, userID uuid.UUID) (*UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domainUser.ErrUserNotFound) {
			return nil, appErrors.ErrUserNotFound
		}
		return nil, err
	}

	return ToUserResponse(user), nil
}

func (s *Service) UpdateProfile(ctx context.Context, userID uuid.UUID, req *UpdateProfileRequest) (*UserResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domainUser.ErrUserNotFound) {
			return nil, appErrors.ErrUserNotFound
		}
		return nil, err
	}

	if req.Email != nil && *req.Email != user.Email {
		taken, err := s.userRepo.EmailTaken(ctx, *req.Email, userID)
		if err != nil {
			return nil, fmt.Errorf("failed to check email: %w", err)
		}
		if taken {
			return nil, appErrors.NewFieldError("CONFLICT", "Email already in use",
				map[string]string{"email": "already in use"})
		}
		user.Email = *req.Email
	}
	if req.Username != nil && *req.Username != user.Username {
		taken, err := s.userRepo.UsernameTaken(ctx, *req.Username, userID)
		if err != nil {
			return nil, fmt.Errorf("failed to check username: %w", err)
		}
		if taken {
			return nil, appErrors.NewFieldError("CONFLICT", "Username already in use",
				map[string]string{"username": "already in use"})
		}
		user.Username = *req.Username
	}
	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Vehicle != nil {
		user.Vehicle = *req.Vehicle
	}
	if req.LicensePlate != nil {
		user.LicensePlate = *req.LicensePlate
	}
	if req.FuelPrice != nil {
		user.FuelPrice = *req.FuelPrice
	}
	if req.Theme != nil {
		user.Theme = *req.Theme
	}
	user.UpdatedAt = time.Now()

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	logger.Info("Profile updated",
		zap.String("user_id", user.ID.String()),
		zap.String("event", "profile_updated"),
	)

	return ToUserResponse(user), nil
}

func (s *Service) ChangePassword(ctx context.Context, userID uuid.UUID, req *ChangePasswordRequest) error {
	if err := utils.ValidateStruct(req); err != nil {
		return appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	if err := utils.ValidatePassword(req.NewPassword); err != nil {
		return appErrors.NewAppError("WEAK_PASSWORD", err.Error(), nil)
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domainUser.ErrUserNotFound) {
			return appErrors.ErrUserNotFound
		}
		return err
	}

	if !utils.CheckPassword(user.PasswordHashed, req.CurrentPassword) {
		logger.Warn("Password change attempt with incorrect current password",
			zap.String("user_id", user.ID.String()),
			zap.String("event", "password_change_failed_wrong_password"),
		)
		return appErrors.ErrWrongPassword
	}

	hashedPassword, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.userRepo.UpdatePassword(ctx, userID, hashedPassword); err != nil {
		return err
	}

	logger.Info("Password changed successfully",
		zap.String("user_id", user.ID.String()),
		zap.String("event", "password_change_success"),
	)

	return nil
}

// ForgotPassword issues a reset token for a known email. An unknown email is
// a no-op; the caller-visible outcome is identical either way so the endpoint
// cannot be used as an account-enumeration oracle.
func (s *Service) ForgotPassword(ctx context.Context, req *ForgotPasswordRequest) error {
	if err := utils.ValidateStruct(req); err != nil {
		return appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, domainUser.ErrUserNotFound) {
			logger.Info("Password reset requested for unknown email",
				zap.String("email", req.Email),
				zap.String("event", "password_reset_requested_unknown_email"),
			)
			return nil
		}
		return fmt.Errorf("failed to retrieve user: %w", err)
	}

	token, err := utils.GenerateResetToken()
	if err != nil {
		return fmt.Errorf("failed to generate reset token: %w", err)
	}

	expiresAt := time.Now().Add(resetTokenTTL)
	if err := s.userRepo.SetResetToken(ctx, user.ID, token, expiresAt); err != nil {
		return fmt.Errorf("failed to store reset token: %w", err)
	}

	logger.Info("Password reset token generated",
		zap.String("user_id", user.ID.String()),
		zap.Time("expires_at", expiresAt),
		zap.String("event", "password_reset_token_generated"),
	)

	// TODO: deliver the token through the notification channel once one
	// exists. For now the token is only logged.
	logger.Debug("Password reset token details",
		zap.String("email", user.Email),
		zap.String("reset_token", token),
		zap.String("reset_link", fmt.Sprintf("https://yourdomain.com/reset-password?token=%s", token)),
		zap.String("event", "password_reset_token_details"),
	)

	return nil
}

// ResetPassword redeems a reset token. An expired or unknown token fails
// without changing any state; success replaces the hash and clears the slot,
// so a second redemption with the same token fails.
func (s *Service) ResetPassword(ctx context.Context, req *ResetPasswordRequest) error {
	if err := utils.ValidateStruct(req); err != nil {
		return appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	if err := utils.ValidatePassword(req.Password); err != nil {
		return appErrors.NewAppError("WEAK_PASSWORD", err.Error(), nil)
	}

	user, err := s.userRepo.GetByResetToken(ctx, req.Token)
	if err != nil {
		if errors.Is(err, domainUser.ErrResetTokenInvalid) {
			logger.Warn("Password reset attempt with invalid token",
				zap.String("event", "password_reset_failed_invalid_token"),
			)
			return appErrors.ErrResetTokenInvalid
		}
		return err
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.userRepo.ResetPassword(ctx, user.ID, hashedPassword); err != nil {
		return err
	}

	logger.Info("Password reset successfully",
		zap.String("user_id", user.ID.String()),
		zap.String("event", "password_reset_success"),
	)

	return nil
}
