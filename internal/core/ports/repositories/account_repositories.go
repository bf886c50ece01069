package repositories

import (
	"context"
	"time"

	"github.com/retailbank/bank_backend/internal/core/domain"
)

// AccountRepository defines persistence operations for bank accounts.
type AccountRepository interface {
	// SaveAccount inserts a new account. Returns apperrors.ErrDuplicate if the
	// account number is taken, or if a second bank-owner row is attempted.
	SaveAccount(ctx context.Context, account domain.Account) error

	// FindAccountByID retrieves an account by primary key.
	// Returns apperrors.ErrNotFound when absent.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// FindAccountByNumber retrieves an account by its unique account number.
	// Returns apperrors.ErrNotFound when absent.
	FindAccountByNumber(ctx context.Context, accountNumber string) (*domain.Account, error)

	// FindBankOwnerAccount retrieves the singleton bank-owner account.
	// Returns apperrors.ErrNotFound when none exists.
	FindBankOwnerAccount(ctx context.Context) (*domain.Account, error)

	// ListAccountsByUser retrieves all accounts owned by a user.
	ListAccountsByUser(ctx context.Context, userID string) ([]domain.Account, error)

	// UpdateAccountStatus sets the lifecycle status of an account.
	UpdateAccountStatus(ctx context.Context, accountID string, status domain.AccountStatus, userID string, now time.Time) error

	// CloseAccount purges the account's transactions and deletes the row, in one
	// DB transaction. The row is locked and its balance re-verified to be zero;
	// a non-zero balance surfaces as apperrors.ErrConflict.
	CloseAccount(ctx context.Context, accountID string) error

	// DeleteAccountsByUser deletes every account owned by the user together with
	// their transactions, bypassing closure preconditions.
	DeleteAccountsByUser(ctx context.Context, userID string) error
}
