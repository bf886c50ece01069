package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
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

// defaultCurrency is assumed when a request omits the currency field.
const defaultCurrency = "USD"

// ledgerService enforces balance-mutation invariants and produces the
// transaction trail. Each operation is one atomic read-modify-write: the
// service validates and computes deltas from plain reads, converts currency
// before any lock is taken, and the repository re-checks sufficiency under
// row locks when applying the entry.
type ledgerService struct {
	accountRepo  portsrepo.AccountRepository
	ledgerRepo   portsrepo.LedgerRepository
	rateProvider portssvc.RateProviderSvcFacade
}

// NewLedgerService creates a new ledger service.
func NewLedgerService(accountRepo portsrepo.AccountRepository, ledgerRepo portsrepo.LedgerRepository, rateProvider portssvc.RateProviderSvcFacade) portssvc.LedgerSvcFacade {
	return &ledgerService{
		accountRepo:  accountRepo,
		ledgerRepo:   ledgerRepo,
		rateProvider: rateProvider,
	}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// normalizeCurrency upper-cases a currency code and applies the USD default.
func normalizeCurrency(code string) string {
	if code == "" {
		return defaultCurrency
	}
	return strings.ToUpper(code)
}

// loadOwnedAccount fetches an account and verifies the acting user owns it.
// Accounts owned by others are reported as not found.
func (s *ledgerService) loadOwnedAccount(ctx context.Context, accountID, actingUserID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account.UserID != actingUserID {
		return nil, apperrors.ErrNotFound
	}
	return account, nil
}

// convertIntoAccountCurrency converts amount from the request currency into
// the account's currency when they differ. The rate lookup happens before the
// account transaction is opened so the network round-trip never holds a row
// lock.
func (s *ledgerService) convertIntoAccountCurrency(ctx context.Context, amount decimal.Decimal, fromCurrency string, account *domain.Account) (decimal.Decimal, error) {
	if fromCurrency == account.CurrencyCode {
		return amount, nil
	}
	converted, err := s.rateProvider.Convert(ctx, amount, fromCurrency, account.CurrencyCode)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Currency conversion failed",
			slog.String("from", fromCurrency),
			slog.String("to", account.CurrencyCode),
			slog.String("error", err.Error()))
		return decimal.Zero, err
	}
	return converted, nil
}

// Deposit credits the account and appends a deposit transaction for the
// converted amount. Returns the new balance.
func (s *ledgerService) Deposit(ctx context.Context, accountID string, req dto.AmountRequest, actingUserID string) (decimal.Decimal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, fmt.Errorf("%w: deposit amount must be positive", apperrors.ErrInvalidAmount)
	}

	account, err := s.loadOwnedAccount(ctx, accountID, actingUserID)
	if err != nil {
		return decimal.Zero, err
	}
	if !account.IsActive() {
		return decimal.Zero, apperrors.ErrAccountNotActive
	}

	amount, err := s.convertIntoAccountCurrency(ctx, req.Amount, normalizeCurrency(req.Currency), account)
	if err != nil {
		return decimal.Zero, err
	}

	now := time.Now().UTC()
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		AccountID:     account.AccountID,
		UserID:        &actingUserID,
		Amount:        amount,
		Type:          domain.Deposit,
		Timestamp:     now,
	}

	newBalances, err := s.ledgerRepo.SaveEntry(ctx,
		[]domain.Transaction{txn},
		map[string]decimal.Decimal{account.AccountID: amount},
		nil,
	)
	if err != nil {
		logger.Error("Failed to save deposit entry", slog.String("account_id", account.AccountID), slog.String("error", err.Error()))
		return decimal.Zero, err
	}

	logger.Info("Deposit successful", slog.String("account_id", account.AccountID), slog.String("amount", amount.String()))
	return newBalances[account.AccountID], nil
}

// Withdraw debits the account by amount plus the fixed fee. The transaction
// record carries the principal only. Returns the new balance.
func (s *ledgerService) Withdraw(ctx context.Context, accountID string, req dto.AmountRequest, actingUserID string) (decimal.Decimal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, fmt.Errorf("%w: withdrawal amount must be positive", apperrors.ErrInvalidAmount)
	}

	account, err := s.loadOwnedAccount(ctx, accountID, actingUserID)
	if err != nil {
		return decimal.Zero, err
	}
	if !account.IsActive() {
		return decimal.Zero, apperrors.ErrAccountNotActive
	}

	amount, err := s.convertIntoAccountCurrency(ctx, req.Amount, normalizeCurrency(req.Currency), account)
	if err != nil {
		return decimal.Zero, err
	}

	fee := domain.TransactionFee(account.CurrencyCode)
	total := amount.Add(fee.Amount)
	if account.Balance.LessThan(total) {
		return decimal.Zero, fmt.Errorf("%w: balance %s cannot cover %s plus the %s fee",
			apperrors.ErrInsufficientFunds, account.Balance.StringFixed(2), amount.StringFixed(2), fee.Amount.StringFixed(2))
	}

	now := time.Now().UTC()
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		AccountID:     account.AccountID,
		UserID:        &actingUserID,
		Amount:        amount,
		Type:          domain.Withdrawal,
		Timestamp:     now,
	}

	newBalances, err := s.ledgerRepo.SaveEntry(ctx,
		[]domain.Transaction{txn},
		map[string]decimal.Decimal{account.AccountID: total.Neg()},
		map[string]decimal.Decimal{account.AccountID: decimal.Zero},
	)
	if err != nil {
		if errors.Is(err, apperrors.ErrInsufficientFunds) {
			// Lost the race against a concurrent debit
			return decimal.Zero, fmt.Errorf("%w: balance cannot cover %s plus the %s fee",
				apperrors.ErrInsufficientFunds, amount.StringFixed(2), fee.Amount.StringFixed(2))
		}
		logger.Error("Failed to save withdrawal entry", slog.String("account_id", account.AccountID), slog.String("error", err.Error()))
		return decimal.Zero, err
	}

	logger.Info("Withdrawal successful", slog.String("account_id", account.AccountID), slog.String("amount", amount.String()))
	return newBalances[account.AccountID], nil
}

// Transfer debits the source by amount plus fee and credits the target by
// amount. The target is credited the same numeric amount in its own currency;
// no second conversion is performed. A transfer-out record is appended to the
// source attributed to the acting user, and a transfer-in record to the
// target attributed to the target's owner. Both sides commit or neither does.
func (s *ledgerService) Transfer(ctx context.Context, sourceAccountID string, req dto.TransferRequest, actingUserID string) (decimal.Decimal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, fmt.Errorf("%w: transfer amount must be positive", apperrors.ErrInvalidAmount)
	}

	source, err := s.loadOwnedAccount(ctx, sourceAccountID, actingUserID)
	if err != nil {
		return decimal.Zero, err
	}
	if !source.IsActive() {
		return decimal.Zero, fmt.Errorf("%w: source account is not active", apperrors.ErrAccountNotActive)
	}

	amount, err := s.convertIntoAccountCurrency(ctx, req.Amount, normalizeCurrency(req.Currency), source)
	if err != nil {
		return decimal.Zero, err
	}

	fee := domain.TransactionFee(source.CurrencyCode)
	total := amount.Add(fee.Amount)
	if source.Balance.LessThan(total) {
		return decimal.Zero, fmt.Errorf("%w: insufficient balance in source account", apperrors.ErrInsufficientFunds)
	}

	target, err := s.accountRepo.FindAccountByNumber(ctx, req.TargetAccountNumber)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return decimal.Zero, apperrors.ErrTargetNotFound
		}
		return decimal.Zero, err
	}
	if !target.IsActive() {
		return decimal.Zero, apperrors.ErrTargetInactive
	}

	now := time.Now().UTC()
	targetOwner := target.UserID
	txns := []domain.Transaction{
		{
			TransactionID: uuid.NewString(),
			AccountID:     source.AccountID,
			UserID:        &actingUserID,
			Amount:        amount,
			Type:          domain.TransferOut,
			Timestamp:     now,
		},
		{
			TransactionID: uuid.NewString(),
			AccountID:     target.AccountID,
			UserID:        &targetOwner,
			Amount:        amount,
			Type:          domain.TransferIn,
			Timestamp:     now,
		},
	}

	// Deltas merge when source and target are the same row
	changes := map[string]decimal.Decimal{}
	changes[source.AccountID] = changes[source.AccountID].Add(total.Neg())
	changes[target.AccountID] = changes[target.AccountID].Add(amount)

	newBalances, err := s.ledgerRepo.SaveEntry(ctx, txns, changes,
		map[string]decimal.Decimal{source.AccountID: decimal.Zero},
	)
	if err != nil {
		if errors.Is(err, apperrors.ErrInsufficientFunds) {
			return decimal.Zero, fmt.Errorf("%w: insufficient balance in source account", apperrors.ErrInsufficientFunds)
		}
		logger.Error("Failed to save transfer entry",
			slog.String("source_account_id", source.AccountID),
			slog.String("target_account_id", target.AccountID),
			slog.String("error", err.Error()))
		return decimal.Zero, err
	}

	logger.Info("Transfer successful",
		slog.String("source_account_id", source.AccountID),
		slog.String("target_account_id", target.AccountID),
		slog.String("amount", amount.String()))
	return newBalances[source.AccountID], nil
}

// GetBalance returns the current balance of an active account.
func (s *ledgerService) GetBalance(ctx context.Context, accountID string, actingUserID string) (domain.Money, error) {
	account, err := s.loadOwnedAccount(ctx, accountID, actingUserID)
	if err != nil {
		return domain.Money{}, err
	}
	if !account.IsActive() {
		return domain.Money{}, apperrors.ErrAccountNotActive
	}
	return domain.NewMoney(account.Balance, account.CurrencyCode), nil
}

// ListTransactions returns the account's transaction records, newest first.
func (s *ledgerService) ListTransactions(ctx context.Context, accountID string, params dto.ListTransactionsParams, actingUserID string) (*dto.ListTransactionsResponse, error) {
	if _, err := s.loadOwnedAccount(ctx, accountID, actingUserID); err != nil {
		return nil, err
	}

	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}

	txns, nextToken, err := s.ledgerRepo.ListTransactionsByAccountID(ctx, accountID, limit, params.NextToken)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve transactions: %w", err)
	}

	return &dto.ListTransactionsResponse{
		Transactions: dto.ToTransactionResponses(txns),
		NextToken:    nextToken,
	}, nil
}
