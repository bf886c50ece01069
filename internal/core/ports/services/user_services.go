package services

import (
	"context"

	"github.com/retailbank/bank_backend/internal/core/domain"
	"github.com/retailbank/bank_backend/internal/dto"
)

// UserSvcFacade is the consumed surface of the user service.
type UserSvcFacade interface {
	// RegisterUser creates a new user with a bcrypt-hashed password.
	RegisterUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error)

	// Authenticate verifies credentials and returns the matching user.
	// Returns apperrors.ErrUnauthorized on any mismatch.
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)

	// GetUserByID retrieves a user by primary key.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// UpdateProfile changes the user's name and/or password. Email is
	// immutable. Omitted fields are left untouched.
	UpdateProfile(ctx context.Context, userID string, req dto.UpdateUserRequest) (*domain.User, error)

	// DeleteUserAndAccounts unconditionally deletes the user, every account
	// they own, and those accounts' transactions, bypassing close-account
	// preconditions. Destructive teardown path.
	DeleteUserAndAccounts(ctx context.Context, userID string) error
}
