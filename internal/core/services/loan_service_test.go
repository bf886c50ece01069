package services_test

import (
	"context"
	"testing"
	"time"

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

type LoanServiceTestSuite struct {
	suite.Suite
	mockAccountRepo *MockAccountRepository
	mockLoanRepo    *MockLoanRepository
	service         portssvc.LoanSvcFacade
	userID          string
	customer        domain.Account
	reserve         domain.Account
}

func (suite *LoanServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockLoanRepo = new(MockLoanRepository)
	suite.service = services.NewLoanService(suite.mockAccountRepo, suite.mockLoanRepo)

	suite.userID = uuid.NewString()
	suite.customer = domain.Account{
		AccountID:    uuid.NewString(),
		UserID:       suite.userID,
		Balance:      decimal.RequireFromString("100.00"),
		Status:       domain.AccountActive,
		CurrencyCode: "USD",
	}
	suite.reserve = domain.Account{
		AccountID:    uuid.NewString(),
		UserID:       uuid.NewString(),
		Balance:      decimal.RequireFromString("100000.00"),
		Status:       domain.AccountActive,
		CurrencyCode: "USD",
		IsBankOwner:  true,
	}
}

func (suite *LoanServiceTestSuite) expectLookups() {
	suite.mockAccountRepo.On("FindAccountByID", mock.Anything, suite.customer.AccountID).Return(&suite.customer, nil).Once()
	suite.mockAccountRepo.On("FindBankOwnerAccount", mock.Anything).Return(&suite.reserve, nil).Once()
}

func (suite *LoanServiceTestSuite) TestRequestLoan_Success() {
	ctx := context.Background()
	suite.expectLookups()

	amount := decimal.RequireFromString("1200.00")
	suite.mockLoanRepo.On("SaveLoan", mock.Anything,
		mock.MatchedBy(func(loan domain.Loan) bool {
			return loan.CustomerAccountID == suite.customer.AccountID &&
				loan.Amount.Equal(amount) &&
				loan.RepaymentPeriod == 12 &&
				loan.Status == domain.LoanPending
		}),
		mock.MatchedBy(func(changes map[string]decimal.Decimal) bool {
			return changes[suite.reserve.AccountID].Equal(amount.Neg()) &&
				changes[suite.customer.AccountID].Equal(amount)
		}),
		mock.MatchedBy(func(floors map[string]decimal.Decimal) bool {
			floor, guarded := floors[suite.reserve.AccountID]
			return guarded && floor.IsZero()
		}),
	).Return(nil).Once()

	loan, err := suite.service.RequestLoan(ctx, suite.customer.AccountID,
		dto.RequestLoanRequest{Amount: amount, RepaymentPeriod: 12}, suite.userID)

	suite.Require().NoError(err)
	suite.True(loan.MonthlyPayment.Equal(decimal.RequireFromString("100.00")))
	suite.Equal(domain.LoanPending, loan.Status)
	// 12 periods of 30 days each
	suite.Equal(loan.StartDate.AddDate(0, 0, 360), loan.EndDate)
	suite.mockLoanRepo.AssertExpectations(suite.T())
}

func (suite *LoanServiceTestSuite) TestRequestLoan_PeriodBounds() {
	ctx := context.Background()

	for _, period := range []int{0, -1, 73} {
		_, err := suite.service.RequestLoan(ctx, suite.customer.AccountID,
			dto.RequestLoanRequest{Amount: decimal.NewFromInt(100), RepaymentPeriod: period}, suite.userID)
		suite.ErrorIs(err, apperrors.ErrInvalidPeriod)
	}
	suite.mockLoanRepo.AssertNotCalled(suite.T(), "SaveLoan")
}

func (suite *LoanServiceTestSuite) TestRequestLoan_NonPositiveAmount() {
	ctx := context.Background()

	_, err := suite.service.RequestLoan(ctx, suite.customer.AccountID,
		dto.RequestLoanRequest{Amount: decimal.Zero, RepaymentPeriod: 12}, suite.userID)

	suite.ErrorIs(err, apperrors.ErrInvalidAmount)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "FindAccountByID")
}

func (suite *LoanServiceTestSuite) TestRequestLoan_BankOwnerMissing() {
	ctx := context.Background()
	suite.mockAccountRepo.On("FindAccountByID", mock.Anything, suite.customer.AccountID).Return(&suite.customer, nil).Once()
	suite.mockAccountRepo.On("FindBankOwnerAccount", mock.Anything).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.RequestLoan(ctx, suite.customer.AccountID,
		dto.RequestLoanRequest{Amount: decimal.NewFromInt(100), RepaymentPeriod: 6}, suite.userID)

	suite.ErrorIs(err, apperrors.ErrBankOwnerMissing)
}

func (suite *LoanServiceTestSuite) TestRequestLoan_ReserveTooSmall() {
	ctx := context.Background()
	suite.reserve.Balance = decimal.RequireFromString("50.00")
	suite.expectLookups()

	_, err := suite.service.RequestLoan(ctx, suite.customer.AccountID,
		dto.RequestLoanRequest{Amount: decimal.NewFromInt(100), RepaymentPeriod: 6}, suite.userID)

	suite.ErrorIs(err, apperrors.ErrInsufficientBankFunds)
	suite.mockLoanRepo.AssertNotCalled(suite.T(), "SaveLoan")
}

func (suite *LoanServiceTestSuite) TestRequestLoan_ReserveDrainedUnderLock() {
	ctx := context.Background()
	suite.expectLookups()

	suite.mockLoanRepo.On("SaveLoan", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(apperrors.ErrInsufficientFunds).Once()

	_, err := suite.service.RequestLoan(ctx, suite.customer.AccountID,
		dto.RequestLoanRequest{Amount: decimal.NewFromInt(100), RepaymentPeriod: 6}, suite.userID)

	suite.ErrorIs(err, apperrors.ErrInsufficientBankFunds)
}

func (suite *LoanServiceTestSuite) TestRequestLoan_UnevenDivision() {
	ctx := context.Background()
	suite.expectLookups()
	suite.mockLoanRepo.On("SaveLoan", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()

	loan, err := suite.service.RequestLoan(ctx, suite.customer.AccountID,
		dto.RequestLoanRequest{Amount: decimal.NewFromInt(1000), RepaymentPeriod: 3}, suite.userID)

	suite.Require().NoError(err)
	// 1000 / 3, not rounded to a payment grid
	suite.True(loan.MonthlyPayment.Mul(decimal.NewFromInt(3)).Sub(decimal.NewFromInt(1000)).Abs().
		LessThan(decimal.RequireFromString("0.000000000001")))
}

func (suite *LoanServiceTestSuite) TestListCustomerLoans_OwnershipEnforced() {
	ctx := context.Background()
	suite.mockAccountRepo.On("FindAccountByID", mock.Anything, suite.customer.AccountID).Return(&suite.customer, nil).Once()

	_, err := suite.service.ListCustomerLoans(ctx, suite.customer.AccountID, uuid.NewString())

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockLoanRepo.AssertNotCalled(suite.T(), "ListLoansByCustomerAccount")
}

func (suite *LoanServiceTestSuite) TestApproveLoan_Success() {
	ctx := context.Background()
	staffID := uuid.NewString()
	loan := &domain.Loan{
		LoanID:            uuid.NewString(),
		CustomerAccountID: suite.customer.AccountID,
		Amount:            decimal.NewFromInt(500),
		RepaymentPeriod:   6,
		Status:            domain.LoanPending,
	}

	suite.mockLoanRepo.On("FindLoanByID", mock.Anything, loan.LoanID).Return(loan, nil).Once()
	suite.mockLoanRepo.On("UpdateLoanStatus", mock.Anything, loan.LoanID, domain.LoanApproved, staffID, mock.AnythingOfType("time.Time")).
		Return(nil).Once()

	approved, err := suite.service.ApproveLoan(ctx, loan.LoanID, staffID)

	suite.Require().NoError(err)
	suite.Equal(domain.LoanApproved, approved.Status)
	suite.mockLoanRepo.AssertExpectations(suite.T())
}

func (suite *LoanServiceTestSuite) TestApproveLoan_AlreadyApproved() {
	ctx := context.Background()
	loan := &domain.Loan{LoanID: uuid.NewString(), Status: domain.LoanApproved}
	suite.mockLoanRepo.On("FindLoanByID", mock.Anything, loan.LoanID).Return(loan, nil).Once()

	_, err := suite.service.ApproveLoan(ctx, loan.LoanID, uuid.NewString())

	suite.ErrorIs(err, apperrors.ErrAlreadyApproved)
	suite.mockLoanRepo.AssertNotCalled(suite.T(), "UpdateLoanStatus")
}

func (suite *LoanServiceTestSuite) TestPaymentDates() {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	loan := domain.Loan{
		RepaymentPeriod: 3,
		StartDate:       start,
	}

	dates := loan.PaymentDates()

	suite.Require().Len(dates, 3)
	suite.Equal(start, dates[0])
	suite.Equal(start.AddDate(0, 0, 30), dates[1])
	suite.Equal(start.AddDate(0, 0, 60), dates[2])
}

func TestLoanService(t *testing.T) {
	suite.Run(t, new(LoanServiceTestSuite))
}
