package services_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/retailbank/bank_backend/internal/core/domain"
	portsrepo "github.com/retailbank/bank_backend/internal/core/ports/repositories"
	portssvc "github.com/retailbank/bank_backend/internal/core/ports/services"
)

// --- Mock AccountRepository ---

type MockAccountRepository struct {
	mock.Mock
}

var _ portsrepo.AccountRepository = (*MockAccountRepository)(nil)

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountByNumber(ctx context.Context, accountNumber string) (*domain.Account, error) {
	args := m.Called(ctx, accountNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindBankOwnerAccount(ctx context.Context) (*domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccountsByUser(ctx context.Context, userID string) ([]domain.Account, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) UpdateAccountStatus(ctx context.Context, accountID string, status domain.AccountStatus, userID string, now time.Time) error {
	args := m.Called(ctx, accountID, status, userID, now)
	return args.Error(0)
}

func (m *MockAccountRepository) CloseAccount(ctx context.Context, accountID string) error {
	args := m.Called(ctx, accountID)
	return args.Error(0)
}

func (m *MockAccountRepository) DeleteAccountsByUser(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// --- Mock LedgerRepository ---

type MockLedgerRepository struct {
	mock.Mock
}

var _ portsrepo.LedgerRepository = (*MockLedgerRepository)(nil)

func (m *MockLedgerRepository) SaveEntry(ctx context.Context, txns []domain.Transaction, changes map[string]decimal.Decimal, floors map[string]decimal.Decimal) (map[string]decimal.Decimal, error) {
	args := m.Called(ctx, txns, changes, floors)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]decimal.Decimal), args.Error(1)
}

func (m *MockLedgerRepository) ListTransactionsByAccountID(ctx context.Context, accountID string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	args := m.Called(ctx, accountID, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.Transaction), returnedNextToken, args.Error(2)
}

// --- Mock LoanRepository ---

type MockLoanRepository struct {
	mock.Mock
}

var _ portsrepo.LoanRepository = (*MockLoanRepository)(nil)

func (m *MockLoanRepository) SaveLoan(ctx context.Context, loan domain.Loan, changes map[string]decimal.Decimal, floors map[string]decimal.Decimal) error {
	args := m.Called(ctx, loan, changes, floors)
	return args.Error(0)
}

func (m *MockLoanRepository) FindLoanByID(ctx context.Context, loanID string) (*domain.Loan, error) {
	args := m.Called(ctx, loanID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Loan), args.Error(1)
}

func (m *MockLoanRepository) ListLoansByCustomerAccount(ctx context.Context, accountID string) ([]domain.Loan, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Loan), args.Error(1)
}

func (m *MockLoanRepository) ListLoansByStatus(ctx context.Context, status domain.LoanStatus) ([]domain.Loan, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Loan), args.Error(1)
}

func (m *MockLoanRepository) CountLoansByCustomerAndStatus(ctx context.Context, accountID string, status domain.LoanStatus) (int, error) {
	args := m.Called(ctx, accountID, status)
	return args.Int(0), args.Error(1)
}

func (m *MockLoanRepository) UpdateLoanStatus(ctx context.Context, loanID string, status domain.LoanStatus, userID string, now time.Time) error {
	args := m.Called(ctx, loanID, status, userID, now)
	return args.Error(0)
}

// --- Mock UserRepository ---

type MockUserRepository struct {
	mock.Mock
}

var _ portsrepo.UserRepository = (*MockUserRepository)(nil)

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteUser(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// --- Mock rate provider ---

type MockRateProvider struct {
	mock.Mock
}

var _ portssvc.RateProviderSvcFacade = (*MockRateProvider)(nil)

func (m *MockRateProvider) Convert(ctx context.Context, amount decimal.Decimal, fromCurrency, toCurrency string) (decimal.Decimal, error) {
	args := m.Called(ctx, amount, fromCurrency, toCurrency)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}
