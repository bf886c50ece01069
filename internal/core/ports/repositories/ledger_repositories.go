package repositories

import (
	"context"

	"github.com/retailbank/bank_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerRepository persists balance mutations and their transaction records.
type LedgerRepository interface {
	// SaveEntry atomically applies balance deltas and appends transaction
	// records in a single DB transaction. Affected account rows are locked in
	// ascending account-ID order (SELECT ... FOR UPDATE) so concurrent entries
	// against the same accounts serialize rather than lose updates.
	//
	// changes maps account ID to the signed balance delta. floors maps account
	// ID to the minimum balance the account must retain after the delta; a
	// floor violation detected under the lock aborts the whole entry with
	// apperrors.ErrInsufficientFunds. Accounts absent from floors are
	// unguarded (credits).
	//
	// Returns the resulting balance per account in changes.
	SaveEntry(ctx context.Context, txns []domain.Transaction, changes map[string]decimal.Decimal, floors map[string]decimal.Decimal) (map[string]decimal.Decimal, error)

	// ListTransactionsByAccountID retrieves transaction records for an account,
	// newest first, with opaque token pagination.
	ListTransactionsByAccountID(ctx context.Context, accountID string, limit int, nextToken *string) ([]domain.Transaction, *string, error)
}
