package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/retailbank/bank_backend/internal/apperrors"
	"github.com/retailbank/bank_backend/internal/core/domain"
	portsrepo "github.com/retailbank/bank_backend/internal/core/ports/repositories"
	portssvc "github.com/retailbank/bank_backend/internal/core/ports/services"
	"github.com/retailbank/bank_backend/internal/dto"
	"github.com/retailbank/bank_backend/internal/middleware"
)

// loanService originates loans against the bank owner's reserve account.
// Disbursement moves the full principal from the reserve to the customer in
// the same store transaction that records the loan.
type loanService struct {
	accountRepo portsrepo.AccountRepository
	loanRepo    portsrepo.LoanRepository
}

// NewLoanService creates a new loan service.
func NewLoanService(accountRepo portsrepo.AccountRepository, loanRepo portsrepo.LoanRepository) portssvc.LoanSvcFacade {
	return &loanService{
		accountRepo: accountRepo,
		loanRepo:    loanRepo,
	}
}

var _ portssvc.LoanSvcFacade = (*loanService)(nil)

// RequestLoan originates a loan: it validates the amount and repayment
// period, disburses the principal from the bank owner's reserve into the
// customer's account, and records the loan as pending. The monthly payment
// is the principal divided evenly over the period; the end date falls
// period * 30 days after origination.
func (s *loanService) RequestLoan(ctx context.Context, customerAccountID string, req dto.RequestLoanRequest, actingUserID string) (*domain.Loan, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: loan amount must be positive", apperrors.ErrInvalidAmount)
	}
	if req.RepaymentPeriod < 1 || req.RepaymentPeriod > domain.MaxRepaymentPeriodMonths {
		return nil, fmt.Errorf("%w: repayment period must be between 1 and %d months",
			apperrors.ErrInvalidPeriod, domain.MaxRepaymentPeriodMonths)
	}

	customer, err := s.accountRepo.FindAccountByID(ctx, customerAccountID)
	if err != nil {
		return nil, err
	}
	if customer.UserID != actingUserID {
		return nil, apperrors.ErrNotFound
	}

	reserve, err := s.accountRepo.FindBankOwnerAccount(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrBankOwnerMissing
		}
		return nil, err
	}
	if reserve.Balance.LessThan(req.Amount) {
		return nil, apperrors.ErrInsufficientBankFunds
	}

	now := time.Now().UTC()
	monthlyPayment := req.Amount.Div(decimal.NewFromInt(int64(req.RepaymentPeriod)))
	loan := &domain.Loan{
		LoanID:            uuid.NewString(),
		CustomerAccountID: customer.AccountID,
		Amount:            req.Amount,
		RepaymentPeriod:   req.RepaymentPeriod,
		MonthlyPayment:    monthlyPayment,
		StartDate:         now,
		EndDate:           now.AddDate(0, 0, 30*req.RepaymentPeriod),
		Status:            domain.LoanPending,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actingUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actingUserID,
		},
	}

	changes := map[string]decimal.Decimal{}
	changes[reserve.AccountID] = changes[reserve.AccountID].Add(req.Amount.Neg())
	changes[customer.AccountID] = changes[customer.AccountID].Add(req.Amount)

	err = s.loanRepo.SaveLoan(ctx, *loan, changes,
		map[string]decimal.Decimal{reserve.AccountID: decimal.Zero},
	)
	if err != nil {
		if errors.Is(err, apperrors.ErrInsufficientFunds) {
			// The reserve drained between the read and the locked write
			return nil, apperrors.ErrInsufficientBankFunds
		}
		logger.Error("Failed to save loan",
			slog.String("customer_account_id", customer.AccountID),
			slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Loan originated",
		slog.String("loan_id", loan.LoanID),
		slog.String("customer_account_id", customer.AccountID),
		slog.String("amount", loan.Amount.String()))
	return loan, nil
}

// ListCustomerLoans returns the loans held against the given account.
func (s *loanService) ListCustomerLoans(ctx context.Context, customerAccountID string, actingUserID string) ([]domain.Loan, error) {
	customer, err := s.accountRepo.FindAccountByID(ctx, customerAccountID)
	if err != nil {
		return nil, err
	}
	if customer.UserID != actingUserID {
		return nil, apperrors.ErrNotFound
	}
	return s.loanRepo.ListLoansByCustomerAccount(ctx, customer.AccountID)
}

// ListPendingLoans returns every loan still awaiting approval. Staff only;
// the handler layer enforces the staff check.
func (s *loanService) ListPendingLoans(ctx context.Context) ([]domain.Loan, error) {
	return s.loanRepo.ListLoansByStatus(ctx, domain.LoanPending)
}

// ApproveLoan marks a pending loan approved. Approving twice is rejected.
func (s *loanService) ApproveLoan(ctx context.Context, loanID string, actingUserID string) (*domain.Loan, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	loan, err := s.loanRepo.FindLoanByID(ctx, loanID)
	if err != nil {
		return nil, err
	}
	if loan.Status == domain.LoanApproved {
		return nil, apperrors.ErrAlreadyApproved
	}

	if err := s.loanRepo.UpdateLoanStatus(ctx, loan.LoanID, domain.LoanApproved, actingUserID, time.Now().UTC()); err != nil {
		logger.Error("Failed to approve loan", slog.String("loan_id", loan.LoanID), slog.String("error", err.Error()))
		return nil, err
	}

	loan.Status = domain.LoanApproved
	logger.Info("Loan approved", slog.String("loan_id", loan.LoanID), slog.String("approved_by", actingUserID))
	return loan, nil
}
