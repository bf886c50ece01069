package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/retailbank/bank_backend/internal/apperrors"
	"github.com/retailbank/bank_backend/internal/core/domain"
	portsrepo "github.com/retailbank/bank_backend/internal/core/ports/repositories"
	"github.com/retailbank/bank_backend/internal/models"
	"github.com/retailbank/bank_backend/internal/utils/mapping"
)

const accountColumns = `account_id, account_number, user_id, balance, status, account_type, currency_code, overdraft_limit, is_bank_owner, opened_at, created_at, created_by, last_updated_at, last_updated_by`

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(pool *pgxpool.Pool) *PgxAccountRepository {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AccountRepository = (*PgxAccountRepository)(nil)

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var m models.Account
	err := row.Scan(
		&m.AccountID,
		&m.AccountNumber,
		&m.UserID,
		&m.Balance,
		&m.Status,
		&m.AccountType,
		&m.CurrencyCode,
		&m.OverdraftLimit,
		&m.IsBankOwner,
		&m.OpenedAt,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	d := mapping.ToDomainAccount(m)
	return &d, nil
}

// SaveAccount inserts a new account.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)

	query := `
		INSERT INTO accounts (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.AccountID,
		m.AccountNumber,
		m.UserID,
		m.Balance,
		m.Status,
		m.AccountType,
		m.CurrencyCode,
		m.OverdraftLimit,
		m.IsBankOwner,
		m.OpenedAt,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique violation
			return fmt.Errorf("%w: account number %s is already taken", apperrors.ErrDuplicate, m.AccountNumber)
		}
		return fmt.Errorf("failed to save account %s: %w", m.AccountID, err)
	}
	return nil
}

// FindAccountByID retrieves an account by its ID.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = $1;`

	account, err := scanAccount(r.Pool.QueryRow(ctx, query, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account by ID %s: %w", accountID, err)
	}
	return account, nil
}

// FindAccountByNumber retrieves an account by its unique account number.
func (r *PgxAccountRepository) FindAccountByNumber(ctx context.Context, accountNumber string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_number = $1;`

	account, err := scanAccount(r.Pool.QueryRow(ctx, query, accountNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account by number: %w", err)
	}
	return account, nil
}

// FindBankOwnerAccount retrieves the singleton bank-owner account.
func (r *PgxAccountRepository) FindBankOwnerAccount(ctx context.Context) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE is_bank_owner;`

	account, err := scanAccount(r.Pool.QueryRow(ctx, query))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find bank owner account: %w", err)
	}
	return account, nil
}

// ListAccountsByUser retrieves all accounts owned by a user, oldest first.
func (r *PgxAccountRepository) ListAccountsByUser(ctx context.Context, userID string) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE user_id = $1 ORDER BY opened_at;`

	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts for user %s: %w", userID, err)
	}
	defer rows.Close()

	accounts := make([]domain.Account, 0)
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts = append(accounts, *account)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account rows: %w", err)
	}
	return accounts, nil
}

// UpdateAccountStatus sets the lifecycle status of an account.
func (r *PgxAccountRepository) UpdateAccountStatus(ctx context.Context, accountID string, status domain.AccountStatus, userID string, now time.Time) error {
	query := `
		UPDATE accounts
		SET status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE account_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, accountID, models.AccountStatus(status), now, userID)
	if err != nil {
		return fmt.Errorf("failed to update status of account %s: %w", accountID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// CloseAccount deletes the account and purges its transactions in one DB
// transaction. The row is locked first and its balance re-verified to be
// exactly zero so a concurrent credit or debit cannot slip between the
// service's check and the delete.
func (r *PgxAccountRepository) CloseAccount(ctx context.Context, accountID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	var balance decimal.Decimal
	err = tx.QueryRow(ctx, `SELECT balance FROM accounts WHERE account_id = $1 FOR UPDATE;`, accountID).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to lock account %s for closure: %w", accountID, err)
	}
	if !balance.IsZero() {
		return fmt.Errorf("%w: account balance changed during closure", apperrors.ErrConflict)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM transactions WHERE account_id = $1;`, accountID); err != nil {
		return fmt.Errorf("failed to purge transactions of account %s: %w", accountID, err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM accounts WHERE account_id = $1;`, accountID); err != nil {
		return fmt.Errorf("failed to delete account %s: %w", accountID, err)
	}

	return r.Commit(ctx, tx)
}

// DeleteAccountsByUser deletes every account owned by the user together with
// their transactions, in one DB transaction.
func (r *PgxAccountRepository) DeleteAccountsByUser(ctx context.Context, userID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		DELETE FROM transactions
		WHERE account_id IN (SELECT account_id FROM accounts WHERE user_id = $1);
	`
	if _, err := tx.Exec(ctx, query, userID); err != nil {
		return fmt.Errorf("failed to purge transactions for user %s: %w", userID, err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM accounts WHERE user_id = $1;`, userID); err != nil {
		return fmt.Errorf("failed to delete accounts for user %s: %w", userID, err)
	}

	return r.Commit(ctx, tx)
}

// findAccountsByIDsForUpdate locks the given account rows in ascending
// account-ID order and returns their current state. Used by the ledger and
// loan repositories inside their transactions.
func findAccountsByIDsForUpdate(ctx context.Context, tx pgx.Tx, accountIDs []string) (map[string]domain.Account, error) {
	if len(accountIDs) == 0 {
		return map[string]domain.Account{}, nil
	}

	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE account_id = ANY($1)
		ORDER BY account_id
		FOR UPDATE;
	`
	rows, err := tx.Query(ctx, query, accountIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to lock accounts: %w", err)
	}
	defer rows.Close()

	locked := make(map[string]domain.Account, len(accountIDs))
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan locked account row: %w", err)
		}
		locked[account.AccountID] = *account
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating locked account rows: %w", err)
	}

	if len(locked) != len(accountIDs) {
		return nil, apperrors.ErrNotFound
	}
	return locked, nil
}

// updateAccountBalancesInTx applies the signed deltas to the already locked
// account rows.
func updateAccountBalancesInTx(ctx context.Context, tx pgx.Tx, changes map[string]decimal.Decimal, userID string, now time.Time) error {
	query := `
		UPDATE accounts
		SET balance = balance + $2, last_updated_at = $3, last_updated_by = $4
		WHERE account_id = $1;
	`
	batch := &pgx.Batch{}
	for accountID, delta := range changes {
		batch.Queue(query, accountID, delta, now, userID)
	}

	results := tx.SendBatch(ctx, batch)
	for range changes {
		if _, err := results.Exec(); err != nil {
			results.Close()
			return fmt.Errorf("failed to apply balance delta: %w", err)
		}
	}
	return results.Close()
}
