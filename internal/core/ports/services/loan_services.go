package services

import (
	"context"

	"github.com/retailbank/bank_backend/internal/core/domain"
	"github.com/retailbank/bank_backend/internal/dto"
)

// LoanSvcFacade is the consumed surface of the loan engine.
type LoanSvcFacade interface {
	// RequestLoan originates a loan against the bank-owner reservoir and
	// disburses it to the customer account atomically. The loan starts in
	// pending status purely as an administrative flag.
	RequestLoan(ctx context.Context, customerAccountID string, req dto.RequestLoanRequest, actingUserID string) (*domain.Loan, error)

	// ListCustomerLoans returns all loans for an account.
	ListCustomerLoans(ctx context.Context, customerAccountID string, actingUserID string) ([]domain.Loan, error)

	// ListPendingLoans returns all loans awaiting approval. Staff only.
	ListPendingLoans(ctx context.Context) ([]domain.Loan, error)

	// ApproveLoan flips a pending loan to approved. It performs no balance
	// movement; disbursement already happened at request time.
	ApproveLoan(ctx context.Context, loanID string, actingUserID string) (*domain.Loan, error)
}
