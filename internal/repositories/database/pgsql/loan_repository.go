package pgsql

import (
	"context"
	"errors"
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
)

const loanColumns = `loan_id, customer_account_id, amount, repayment_period, monthly_payment, start_date, end_date, status, created_at, created_by, last_updated_at, last_updated_by`

type PgxLoanRepository struct {
	BaseRepository
}

// newPgxLoanRepository creates a new repository for loan data.
func newPgxLoanRepository(pool *pgxpool.Pool) *PgxLoanRepository {
	return &PgxLoanRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.LoanRepository = (*PgxLoanRepository)(nil)

func scanLoan(row pgx.Row) (*domain.Loan, error) {
	var m models.Loan
	err := row.Scan(
		&m.LoanID,
		&m.CustomerAccountID,
		&m.Amount,
		&m.RepaymentPeriod,
		&m.MonthlyPayment,
		&m.StartDate,
		&m.EndDate,
		&m.Status,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	d := mapping.ToDomainLoan(m)
	return &d, nil
}

// SaveLoan inserts the loan row and applies the disbursement deltas in one
// DB transaction. The affected account rows are locked in ascending
// account-ID order and the bank-owner floor is re-checked under the lock.
func (r *PgxLoanRepository) SaveLoan(ctx context.Context, loan domain.Loan, changes map[string]decimal.Decimal, floors map[string]decimal.Decimal) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	accountIDs := make([]string, 0, len(changes))
	for accountID := range changes {
		accountIDs = append(accountIDs, accountID)
	}
	sort.Strings(accountIDs)

	locked, err := findAccountsByIDsForUpdate(ctx, tx, accountIDs)
	if err != nil {
		return err
	}
	for _, accountID := range accountIDs {
		after := locked[accountID].Balance.Add(changes[accountID])
		if floor, guarded := floors[accountID]; guarded && after.LessThan(floor) {
			return apperrors.ErrInsufficientFunds
		}
	}

	m := mapping.ToModelLoan(loan)
	query := `
		INSERT INTO loans (` + loanColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err = tx.Exec(ctx, query,
		m.LoanID,
		m.CustomerAccountID,
		m.Amount,
		m.RepaymentPeriod,
		m.MonthlyPayment,
		m.StartDate,
		m.EndDate,
		m.Status,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert loan %s: %w", m.LoanID, err)
	}

	if err := updateAccountBalancesInTx(ctx, tx, changes, loan.CreatedBy, loan.CreatedAt); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// FindLoanByID retrieves a loan by its ID.
func (r *PgxLoanRepository) FindLoanByID(ctx context.Context, loanID string) (*domain.Loan, error) {
	query := `SELECT ` + loanColumns + ` FROM loans WHERE loan_id = $1;`

	loan, err := scanLoan(r.Pool.QueryRow(ctx, query, loanID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find loan %s: %w", loanID, err)
	}
	return loan, nil
}

func (r *PgxLoanRepository) listLoans(ctx context.Context, query string, args ...any) ([]domain.Loan, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query loans: %w", err)
	}
	defer rows.Close()

	loans := make([]domain.Loan, 0)
	for rows.Next() {
		loan, err := scanLoan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan loan row: %w", err)
		}
		loans = append(loans, *loan)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating loan rows: %w", err)
	}
	return loans, nil
}

// ListLoansByCustomerAccount retrieves all loans referencing an account,
// newest first.
func (r *PgxLoanRepository) ListLoansByCustomerAccount(ctx context.Context, accountID string) ([]domain.Loan, error) {
	query := `SELECT ` + loanColumns + ` FROM loans WHERE customer_account_id = $1 ORDER BY start_date DESC;`
	return r.listLoans(ctx, query, accountID)
}

// ListLoansByStatus retrieves all loans in the given status, oldest first so
// staff review the longest-waiting requests at the top.
func (r *PgxLoanRepository) ListLoansByStatus(ctx context.Context, status domain.LoanStatus) ([]domain.Loan, error) {
	query := `SELECT ` + loanColumns + ` FROM loans WHERE status = $1 ORDER BY start_date;`
	return r.listLoans(ctx, query, models.LoanStatus(status))
}

// CountLoansByCustomerAndStatus counts loans on an account in a status.
func (r *PgxLoanRepository) CountLoansByCustomerAndStatus(ctx context.Context, accountID string, status domain.LoanStatus) (int, error) {
	query := `SELECT COUNT(*) FROM loans WHERE customer_account_id = $1 AND status = $2;`

	var count int
	if err := r.Pool.QueryRow(ctx, query, accountID, models.LoanStatus(status)).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count loans for account %s: %w", accountID, err)
	}
	return count, nil
}

// UpdateLoanStatus flips the administrative status of a loan.
func (r *PgxLoanRepository) UpdateLoanStatus(ctx context.Context, loanID string, status domain.LoanStatus, userID string, now time.Time) error {
	query := `
		UPDATE loans
		SET status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE loan_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, loanID, models.LoanStatus(status), now, userID)
	if err != nil {
		return fmt.Errorf("failed to update status of loan %s: %w", loanID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
