package auth

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"reservation-api/internal/config"
	domainUser "reservation-api/internal/domain/user"
	"reservation-api/internal/logger"
	userUsecase "reservation-api/internal/usecase/user"
	appErrors "reservation-api/pkg/errors"
	"reservation-api/pkg/utils"
)

// Service implements registration and login.
type Service struct {
	userRepo domainUser.Repository
	config   *config.Config
}

// NewService creates a new auth service
func NewService(userRepo domainUser.Repository, cfg *config.Config) *Service {
	return &Service{
		userRepo: userRepo,
		config:   cfg,
	}
}

func (s *Service) Register(ctx context.Context, req *RegisterRequest) (*UserResponse, error) {
	if req.Email == "" || req.Password == "" || req.Name == "" || req.Phone == "" {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "email, password, name and phone are required", nil)
	}

	email := utils.SanitizeEmail(req.Email)
	phone := utils.SanitizePhone(req.Phone)

	if iss := userUsecase.ValidateFormat(userUsecase.CandidateUser{
		Name:  req.Name,
		Email: email,
		Phone: phone,
	}); iss != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", iss.Message, nil)
	}

	// Uniqueness is checked before insert; the unique indexes on email and
	// phone remain the backstop for concurrent registrations.
	if _, err := s.userRepo.GetByEmail(ctx, email); err == nil {
		logger.Warn("Registration attempt with existing email",
			zap.String("email", email),
			zap.String("event", "registration_failed_duplicate_email"),
		)
		return nil, domainUser.ErrEmailTaken
	} else if !errors.Is(err, domainUser.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check existing email: %w", err)
	}

	if _, err := s.userRepo.GetByPhone(ctx, phone); err == nil {
		logger.Warn("Registration attempt with existing phone",
			zap.String("event", "registration_failed_duplicate_phone"),
		)
		return nil, domainUser.ErrPhoneTaken
	} else if !errors.Is(err, domainUser.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check existing phone: %w", err)
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domainUser.User{
		Name:           req.Name,
		Email:          email,
		Phone:          phone,
		PasswordHashed: hashedPassword,
		Role:           domainUser.RoleUser,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	logger.Info("User registered successfully",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email),
		zap.String("event", "user_registered"),
	)

	return ToUserResponse(user), nil
}

func (s *Service) Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "email and password are required", nil)
	}

	email := utils.SanitizeEmail(req.Email)

	// Missing user and wrong password yield the same error so callers
	// cannot tell which check failed.
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainUser.ErrUserNotFound) {
			logger.Warn("Login attempt with non-existent email",
				zap.String("email", email),
				zap.String("event", "login_failed_unknown_email"),
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

	token, expiresAt, err := utils.GenerateToken(
		user.ID,
		user.Email,
		user.Role,
		s.config.JWT.Secret,
		s.config.JWT.ExpiryHours,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	logger.Info("User logged in successfully",
		zap.String("user_id", user.ID.String()),
		zap.String("role", user.Role),
		zap.String("event", "login_success"),
	)

	return &LoginResponse{Token: token, ExpiresAt: expiresAt}, nil
}
