package pgsql

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/retailbank/bank_backend/internal/apperrors"
	"github.com/retailbank/bank_backend/internal/core/domain"
	portsrepo "github.com/retailbank/bank_backend/internal/core/ports/repositories"
	"github.com/retailbank/bank_backend/internal/models"
	"github.com/retailbank/bank_backend/internal/utils/mapping"
	"github.com/retailbank/bank_backend/internal/utils/pagination"
)

type PgxLedgerRepository struct {
	BaseRepository
}

// newPgxLedgerRepository creates a new repository for balance mutations and
// transaction records.
func newPgxLedgerRepository(pool *pgxpool.Pool) *PgxLedgerRepository {
	return &PgxLedgerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.LedgerRepository = (*PgxLedgerRepository)(nil)

// SaveEntry applies balance deltas and appends transaction records in one DB
// transaction. Account rows are locked in ascending account-ID order, then
// each guarded account's floor is re-checked against its post-delta balance
// under the lock, so a stale balance read in the service never produces an
// overdraw.
func (r *PgxLedgerRepository) SaveEntry(ctx context.Context, txns []domain.Transaction, changes map[string]decimal.Decimal, floors map[string]decimal.Decimal) (map[string]decimal.Decimal, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	accountIDs := make([]string, 0, len(changes))
	for accountID := range changes {
		accountIDs = append(accountIDs, accountID)
	}
	sort.Strings(accountIDs)

	locked, err := findAccountsByIDsForUpdate(ctx, tx, accountIDs)
	if err != nil {
		return nil, err
	}

	newBalances := make(map[string]decimal.Decimal, len(changes))
	for _, accountID := range accountIDs {
		after := locked[accountID].Balance.Add(changes[accountID])
		if floor, guarded := floors[accountID]; guarded && after.LessThan(floor) {
			return nil, apperrors.ErrInsufficientFunds
		}
		newBalances[accountID] = after
	}

	var userID string
	var now time.Time
	if len(txns) > 0 {
		now = txns[0].Timestamp
		if txns[0].UserID != nil {
			userID = *txns[0].UserID
		}
	} else {
		now = time.Now().UTC()
	}

	if err := updateAccountBalancesInTx(ctx, tx, changes, userID, now); err != nil {
		return nil, err
	}

	if err := insertTransactionsInTx(ctx, tx, txns); err != nil {
		return nil, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return newBalances, nil
}

// insertTransactionsInTx batch-inserts transaction records.
func insertTransactionsInTx(ctx context.Context, tx pgx.Tx, txns []domain.Transaction) error {
	if len(txns) == 0 {
		return nil
	}

	query := `
		INSERT INTO transactions (transaction_id, account_id, user_id, amount, transaction_type, timestamp)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	batch := &pgx.Batch{}
	for _, txn := range txns {
		m := mapping.ToModelTransaction(txn)
		batch.Queue(query,
			m.TransactionID,
			m.AccountID,
			m.UserID,
			m.Amount,
			m.Type,
			m.Timestamp,
		)
	}

	results := tx.SendBatch(ctx, batch)
	for range txns {
		if _, err := results.Exec(); err != nil {
			results.Close()
			return fmt.Errorf("failed to insert transaction record: %w", err)
		}
	}
	return results.Close()
}

// ListTransactionsByAccountID retrieves transaction records for an account,
// newest first. The (timestamp, transaction_id) pair of the last row is
// encoded into the next-page token.
func (r *PgxLedgerRepository) ListTransactionsByAccountID(ctx context.Context, accountID string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	query := `
		SELECT transaction_id, account_id, user_id, amount, transaction_type, timestamp
		FROM transactions
		WHERE account_id = $1
	`
	args := []any{accountID}

	if nextToken != nil && *nextToken != "" {
		ts, lastID, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: invalid pagination token", apperrors.ErrValidation)
		}
		query += ` AND (timestamp, transaction_id) < ($2, $3)`
		args = append(args, ts, lastID)
	}

	query += fmt.Sprintf(` ORDER BY timestamp DESC, transaction_id DESC LIMIT %d;`, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query transactions for account %s: %w", accountID, err)
	}
	defer rows.Close()

	txns := make([]domain.Transaction, 0, limit)
	for rows.Next() {
		var m models.Transaction
		if err := rows.Scan(&m.TransactionID, &m.AccountID, &m.UserID, &m.Amount, &m.Type, &m.Timestamp); err != nil {
			return nil, nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		txns = append(txns, mapping.ToDomainTransaction(m))
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}

	var token *string
	if len(txns) > limit {
		txns = txns[:limit]
		last := txns[limit-1]
		encoded := pagination.EncodeToken(last.Timestamp, last.TransactionID)
		token = &encoded
	}
	return txns, token, nil
}
