package services

import (
	"context"
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
	"github.com/retailbank/bank_backend/internal/utils"
)

// openingBalance is credited to every newly opened customer account.
var openingBalance = decimal.RequireFromString("100.00")

type accountService struct {
	accountRepo portsrepo.AccountRepository
	loanRepo    portsrepo.LoanRepository
}

// NewAccountService creates a new account lifecycle service.
func NewAccountService(accountRepo portsrepo.AccountRepository, loanRepo portsrepo.LoanRepository) portssvc.AccountSvcFacade {
	return &accountService{
		accountRepo: accountRepo,
		loanRepo:    loanRepo,
	}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// CreateAccount opens a fresh account for ownerUserID. Everything except the
// account number is server-assigned: active status, individual type, USD, and
// the standard opening balance.
func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, ownerUserID string) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	accountNumber := req.AccountNumber
	if accountNumber == "" {
		generated, err := utils.GenerateAccountNumber()
		if err != nil {
			return nil, fmt.Errorf("failed to generate account number: %w", err)
		}
		accountNumber = generated
	}

	now := time.Now().UTC()
	account := &domain.Account{
		AccountID:      uuid.NewString(),
		AccountNumber:  accountNumber,
		UserID:         ownerUserID,
		Balance:        openingBalance,
		Status:         domain.AccountActive,
		AccountType:    domain.AccountIndividual,
		CurrencyCode:   defaultCurrency,
		OverdraftLimit: decimal.Zero,
		IsBankOwner:    false,
		OpenedAt:       now,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     ownerUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: ownerUserID,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, *account); err != nil {
		return nil, err
	}

	logger.Info("Account opened", slog.String("account_id", account.AccountID), slog.String("user_id", ownerUserID))
	return account, nil
}

// GetAccount retrieves an account, reporting accounts owned by others as not
// found.
func (s *accountService) GetAccount(ctx context.Context, accountID string, requestingUserID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account.UserID != requestingUserID {
		return nil, apperrors.ErrNotFound
	}
	return account, nil
}

// ListAccounts retrieves the requesting user's accounts.
func (s *accountService) ListAccounts(ctx context.Context, requestingUserID string) ([]domain.Account, error) {
	return s.accountRepo.ListAccountsByUser(ctx, requestingUserID)
}

// SuspendAccount moves an active account to suspended. Suspending a
// suspended account is rejected.
func (s *accountService) SuspendAccount(ctx context.Context, accountID string, requestingUserID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	account, err := s.GetAccount(ctx, accountID, requestingUserID)
	if err != nil {
		return err
	}
	if account.Status == domain.AccountSuspended {
		return apperrors.ErrAlreadySuspended
	}

	if err := s.accountRepo.UpdateAccountStatus(ctx, account.AccountID, domain.AccountSuspended, requestingUserID, time.Now().UTC()); err != nil {
		return err
	}

	logger.Info("Account suspended", slog.String("account_id", account.AccountID))
	return nil
}

// CloseAccount permanently deletes an account and its transaction history.
// Closure requires an exactly zero balance and no approved loans; the error
// for a non-zero balance tells the caller the amount to deposit or withdraw
// first.
func (s *accountService) CloseAccount(ctx context.Context, accountID string, requestingUserID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	account, err := s.GetAccount(ctx, accountID, requestingUserID)
	if err != nil {
		return err
	}

	switch {
	case account.Balance.IsNegative():
		return fmt.Errorf("%w: deposit %s to clear the balance before closing",
			apperrors.ErrNegativeBalance, account.Balance.Abs().StringFixed(2))
	case account.Balance.IsPositive():
		return fmt.Errorf("%w: withdraw the remaining %s before closing",
			apperrors.ErrPositiveBalance, account.Balance.StringFixed(2))
	}

	approved, err := s.loanRepo.CountLoansByCustomerAndStatus(ctx, account.AccountID, domain.LoanApproved)
	if err != nil {
		return err
	}
	if approved > 0 {
		return apperrors.ErrActiveLoansExist
	}

	if err := s.accountRepo.CloseAccount(ctx, account.AccountID); err != nil {
		return err
	}

	logger.Info("Account closed", slog.String("account_id", account.AccountID))
	return nil
}
