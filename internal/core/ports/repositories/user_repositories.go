package repositories

import (
	"context"

	"github.com/retailbank/bank_backend/internal/core/domain"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	// SaveUser inserts a new user. Returns apperrors.ErrDuplicate if the email
	// is already registered.
	SaveUser(ctx context.Context, user domain.User) error

	// FindUserByID retrieves a user by primary key.
	// Returns apperrors.ErrNotFound when absent.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail retrieves a user by email.
	// Returns apperrors.ErrNotFound when absent.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// UpdateUser persists the mutable profile fields (name, password hash)
	// and audit columns. Returns apperrors.ErrNotFound when absent.
	UpdateUser(ctx context.Context, user domain.User) error

	// DeleteUser removes the user row. Account teardown is handled separately
	// by AccountRepository.DeleteAccountsByUser.
	DeleteUser(ctx context.Context, userID string) error
}
