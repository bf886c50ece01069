package services

import (
	"context"

	"github.com/retailbank/bank_backend/internal/core/domain"
	"github.com/retailbank/bank_backend/internal/dto"
	"github.com/shopspring/decimal"
)

// LedgerSvcFacade is the consumed surface of the ledger engine. Every
// operation runs as one atomic read-modify-write against the store.
type LedgerSvcFacade interface {
	// Deposit credits the account and returns the new balance. The amount is
	// converted into the account's currency when the request currency differs.
	Deposit(ctx context.Context, accountID string, req dto.AmountRequest, actingUserID string) (decimal.Decimal, error)

	// Withdraw debits the account by amount plus the fixed fee and returns the
	// new balance.
	Withdraw(ctx context.Context, accountID string, req dto.AmountRequest, actingUserID string) (decimal.Decimal, error)

	// Transfer debits the source by amount plus fee and credits the target
	// account (looked up by account number) by amount. Returns the source's
	// new balance.
	Transfer(ctx context.Context, sourceAccountID string, req dto.TransferRequest, actingUserID string) (decimal.Decimal, error)

	// GetBalance returns the current balance of an active account.
	GetBalance(ctx context.Context, accountID string, actingUserID string) (domain.Money, error)

	// ListTransactions returns the account's transaction records, paginated.
	ListTransactions(ctx context.Context, accountID string, params dto.ListTransactionsParams, actingUserID string) (*dto.ListTransactionsResponse, error)
}

// RateProviderSvcFacade is the consumed contract of the external currency
// rate collaborator. Failures surface as apperrors.ErrRateUnavailable.
type RateProviderSvcFacade interface {
	// Convert returns amount expressed in toCurrency, using the provider's
	// current rate from fromCurrency.
	Convert(ctx context.Context, amount decimal.Decimal, fromCurrency, toCurrency string) (decimal.Decimal, error)
}
