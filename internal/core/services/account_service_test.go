package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/retailbank/bank_backend/internal/apperrors"
	"github.com/retailbank/bank_backend/internal/core/domain"
	portssvc "github.com/retailbank/bank_backend/internal/core/ports/services"
	"github.com/retailbank/bank_backend/internal/core/services"
	"github.com/retailbank/bank_backend/internal/dto"
)

type AccountServiceTestSuite struct {
	suite.Suite
	mockAccountRepo *MockAccountRepository
	mockLoanRepo    *MockLoanRepository
	service         portssvc.AccountSvcFacade
	userID          string
	account         domain.Account
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockLoanRepo = new(MockLoanRepository)
	suite.service = services.NewAccountService(suite.mockAccountRepo, suite.mockLoanRepo)

	suite.userID = uuid.NewString()
	suite.account = domain.Account{
		AccountID:     uuid.NewString(),
		AccountNumber: "100000000001",
		UserID:        suite.userID,
		Balance:       decimal.Zero,
		Status:        domain.AccountActive,
		AccountType:   domain.AccountIndividual,
		CurrencyCode:  "USD",
	}
}

func (suite *AccountServiceTestSuite) TestCreateAccount_Defaults() {
	ctx := context.Background()

	var saved domain.Account
	suite.mockAccountRepo.On("SaveAccount", mock.Anything, mock.AnythingOfType("domain.Account")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(domain.Account)
		}).Return(nil).Once()

	account, err := suite.service.CreateAccount(ctx, dto.CreateAccountRequest{}, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(suite.userID, account.UserID)
	suite.True(account.Balance.Equal(decimal.RequireFromString("100.00")))
	suite.Equal(domain.AccountActive, account.Status)
	suite.Equal(domain.AccountIndividual, account.AccountType)
	suite.Equal("USD", account.CurrencyCode)
	suite.False(account.IsBankOwner)
	suite.Len(saved.AccountNumber, 12)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_ExplicitNumber() {
	ctx := context.Background()
	suite.mockAccountRepo.On("SaveAccount", mock.Anything, mock.MatchedBy(func(a domain.Account) bool {
		return a.AccountNumber == "555500001111"
	})).Return(nil).Once()

	account, err := suite.service.CreateAccount(ctx, dto.CreateAccountRequest{AccountNumber: "555500001111"}, suite.userID)

	suite.Require().NoError(err)
	suite.Equal("555500001111", account.AccountNumber)
}

func (suite *AccountServiceTestSuite) TestGetAccount_OtherUsersAccount() {
	ctx := context.Background()
	suite.mockAccountRepo.On("FindAccountByID", mock.Anything, suite.account.AccountID).Return(&suite.account, nil).Once()

	_, err := suite.service.GetAccount(ctx, suite.account.AccountID, uuid.NewString())

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *AccountServiceTestSuite) TestSuspendAccount_Success() {
	ctx := context.Background()
	suite.mockAccountRepo.On("FindAccountByID", mock.Anything, suite.account.AccountID).Return(&suite.account, nil).Once()
	suite.mockAccountRepo.On("UpdateAccountStatus", mock.Anything, suite.account.AccountID, domain.AccountSuspended, suite.userID, mock.AnythingOfType("time.Time")).
		Return(nil).Once()

	err := suite.service.SuspendAccount(ctx, suite.account.AccountID, suite.userID)

	suite.Require().NoError(err)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestSuspendAccount_AlreadySuspended() {
	ctx := context.Background()
	suite.account.Status = domain.AccountSuspended
	suite.mockAccountRepo.On("FindAccountByID", mock.Anything, suite.account.AccountID).Return(&suite.account, nil).Once()

	err := suite.service.SuspendAccount(ctx, suite.account.AccountID, suite.userID)

	suite.ErrorIs(err, apperrors.ErrAlreadySuspended)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "UpdateAccountStatus")
}

func (suite *AccountServiceTestSuite) TestCloseAccount_Success() {
	ctx := context.Background()
	suite.mockAccountRepo.On("FindAccountByID", mock.Anything, suite.account.AccountID).Return(&suite.account, nil).Once()
	suite.mockLoanRepo.On("CountLoansByCustomerAndStatus", mock.Anything, suite.account.AccountID, domain.LoanApproved).
		Return(0, nil).Once()
	suite.mockAccountRepo.On("CloseAccount", mock.Anything, suite.account.AccountID).Return(nil).Once()

	err := suite.service.CloseAccount(ctx, suite.account.AccountID, suite.userID)

	suite.Require().NoError(err)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCloseAccount_PositiveBalance() {
	ctx := context.Background()
	suite.account.Balance = decimal.RequireFromString("42.50")
	suite.mockAccountRepo.On("FindAccountByID", mock.Anything, suite.account.AccountID).Return(&suite.account, nil).Once()

	err := suite.service.CloseAccount(ctx, suite.account.AccountID, suite.userID)

	suite.ErrorIs(err, apperrors.ErrPositiveBalance)
	// Remediation message tells the customer how much to withdraw
	suite.Contains(err.Error(), "42.50")
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "CloseAccount")
}

func (suite *AccountServiceTestSuite) TestCloseAccount_NegativeBalance() {
	ctx := context.Background()
	suite.account.Balance = decimal.RequireFromString("-10.00")
	suite.mockAccountRepo.On("FindAccountByID", mock.Anything, suite.account.AccountID).Return(&suite.account, nil).Once()

	err := suite.service.CloseAccount(ctx, suite.account.AccountID, suite.userID)

	suite.ErrorIs(err, apperrors.ErrNegativeBalance)
	suite.Contains(err.Error(), "10.00")
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "CloseAccount")
}

func (suite *AccountServiceTestSuite) TestCloseAccount_BlockedByApprovedLoan() {
	ctx := context.Background()
	suite.mockAccountRepo.On("FindAccountByID", mock.Anything, suite.account.AccountID).Return(&suite.account, nil).Once()
	suite.mockLoanRepo.On("CountLoansByCustomerAndStatus", mock.Anything, suite.account.AccountID, domain.LoanApproved).
		Return(1, nil).Once()

	err := suite.service.CloseAccount(ctx, suite.account.AccountID, suite.userID)

	suite.ErrorIs(err, apperrors.ErrActiveLoansExist)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "CloseAccount")
}

func TestAccountService(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
