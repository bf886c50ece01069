package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/retailbank/bank_backend/internal/apperrors"
	"github.com/retailbank/bank_backend/internal/core/domain"
	portsrepo "github.com/retailbank/bank_backend/internal/core/ports/repositories"
	portssvc "github.com/retailbank/bank_backend/internal/core/ports/services"
	"github.com/retailbank/bank_backend/internal/dto"
	"github.com/retailbank/bank_backend/internal/middleware"
	"github.com/retailbank/bank_backend/internal/utils"
)

type userService struct {
	userRepo    portsrepo.UserRepository
	accountRepo portsrepo.AccountRepository
}

// NewUserService creates a new user service.
func NewUserService(userRepo portsrepo.UserRepository, accountRepo portsrepo.AccountRepository) portssvc.UserSvcFacade {
	return &userService{
		userRepo:    userRepo,
		accountRepo: accountRepo,
	}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

// RegisterUser creates a new non-staff user with a hashed password.
func (s *userService) RegisterUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &domain.User{
		UserID:       uuid.NewString(),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		Name:         req.Name,
		PasswordHash: hash,
		IsStaff:      false,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	user.CreatedBy = user.UserID
	user.LastUpdatedBy = user.UserID

	if err := s.userRepo.SaveUser(ctx, *user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: email is already registered", apperrors.ErrDuplicate)
		}
		return nil, err
	}

	logger.Info("User registered", slog.String("user_id", user.UserID))
	return user, nil
}

// Authenticate verifies the email/password pair. All mismatches collapse
// into ErrUnauthorized so the response does not reveal which part failed.
func (s *userService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid email or password", apperrors.ErrUnauthorized)
		}
		return nil, err
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, fmt.Errorf("%w: invalid email or password", apperrors.ErrUnauthorized)
	}
	return user, nil
}

// GetUserByID retrieves a user by primary key.
func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.FindUserByID(ctx, userID)
}

// UpdateProfile changes the user's name and/or password. Email stays fixed.
func (s *userService) UpdateProfile(ctx context.Context, userID string, req dto.UpdateUserRequest) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = strings.TrimSpace(*req.Name)
		if user.Name == "" {
			return nil, fmt.Errorf("%w: name cannot be blank", apperrors.ErrValidation)
		}
	}
	if req.Password != nil {
		hash, err := utils.HashPassword(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = hash
	}
	user.LastUpdatedAt = time.Now().UTC()
	user.LastUpdatedBy = userID

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		return nil, err
	}

	logger.Info("User profile updated", slog.String("user_id", userID))
	return user, nil
}

// DeleteUserAndAccounts tears down a user entirely: their accounts and
// transactions go first, then the user row. Closure preconditions do not
// apply on this path.
func (s *userService) DeleteUserAndAccounts(ctx context.Context, userID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.userRepo.FindUserByID(ctx, userID); err != nil {
		return err
	}
	if err := s.accountRepo.DeleteAccountsByUser(ctx, userID); err != nil {
		return err
	}
	if err := s.userRepo.DeleteUser(ctx, userID); err != nil {
		return err
	}

	logger.Info("User deleted", slog.String("user_id", userID))
	return nil
}
