package repositories

import (
	"context"
	"time"

	"github.com/retailbank/bank_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LoanRepository persists loans and their atomic disbursement.
type LoanRepository interface {
	// SaveLoan inserts the loan row and applies the disbursement balance
	// deltas in one DB transaction, with the affected account rows locked in
	// ascending account-ID order. floors carries the bank-owner guard; a floor
	// violation under the lock aborts with apperrors.ErrInsufficientFunds.
	SaveLoan(ctx context.Context, loan domain.Loan, changes map[string]decimal.Decimal, floors map[string]decimal.Decimal) error

	// FindLoanByID retrieves a loan by primary key.
	// Returns apperrors.ErrNotFound when absent.
	FindLoanByID(ctx context.Context, loanID string) (*domain.Loan, error)

	// ListLoansByCustomerAccount retrieves all loans referencing an account.
	ListLoansByCustomerAccount(ctx context.Context, accountID string) ([]domain.Loan, error)

	// ListLoansByStatus retrieves all loans in the given status.
	ListLoansByStatus(ctx context.Context, status domain.LoanStatus) ([]domain.Loan, error)

	// CountLoansByCustomerAndStatus counts loans on an account in a status.
	CountLoansByCustomerAndStatus(ctx context.Context, accountID string, status domain.LoanStatus) (int, error)

	// UpdateLoanStatus flips the administrative status of a loan. It performs
	// no balance movement.
	UpdateLoanStatus(ctx context.Context, loanID string, status domain.LoanStatus, userID string, now time.Time) error
}
