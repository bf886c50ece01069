package services

import (
	"context"

	"github.com/retailbank/bank_backend/internal/core/domain"
	"github.com/retailbank/bank_backend/internal/dto"
)

// AccountSvcFacade is the consumed surface of the account lifecycle manager.
type AccountSvcFacade interface {
	// CreateAccount opens a new account for the owner. Only the account number
	// is client-writable; the rest is server-assigned.
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest, ownerUserID string) (*domain.Account, error)

	// GetAccount retrieves an account owned by the requesting user.
	GetAccount(ctx context.Context, accountID string, requestingUserID string) (*domain.Account, error)

	// ListAccounts retrieves the requesting user's accounts.
	ListAccounts(ctx context.Context, requestingUserID string) ([]domain.Account, error)

	// SuspendAccount sets the account status to suspended.
	SuspendAccount(ctx context.Context, accountID string, requestingUserID string) error

	// CloseAccount deletes the account after verifying a zero balance and no
	// blocking loans, purging its transactions first.
	CloseAccount(ctx context.Context, accountID string, requestingUserID string) error
}
