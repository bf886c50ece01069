package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"

	"github.com/retailbank/bank_backend/internal/apperrors"
	"github.com/retailbank/bank_backend/internal/core/domain"
	portssvc "github.com/retailbank/bank_backend/internal/core/ports/services"
	"github.com/retailbank/bank_backend/internal/core/services"
	"github.com/retailbank/bank_backend/internal/dto"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo    *MockUserRepository
	mockAccountRepo *MockAccountRepository
	service         portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.service = services.NewUserService(suite.mockUserRepo, suite.mockAccountRepo)
}

func (suite *UserServiceTestSuite) TestRegisterUser_Success() {
	ctx := context.Background()

	var saved domain.User
	suite.mockUserRepo.On("SaveUser", mock.Anything, mock.AnythingOfType("domain.User")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(domain.User)
		}).Return(nil).Once()

	user, err := suite.service.RegisterUser(ctx, dto.RegisterUserRequest{
		Email:    "  Alice@Example.COM ",
		Name:     "Alice",
		Password: "s3cret-pass",
	})

	suite.Require().NoError(err)
	suite.Equal("alice@example.com", user.Email)
	suite.False(user.IsStaff)
	suite.NotEqual("s3cret-pass", saved.PasswordHash)
	suite.NoError(bcrypt.CompareHashAndPassword([]byte(saved.PasswordHash), []byte("s3cret-pass")))
}

func (suite *UserServiceTestSuite) TestRegisterUser_DuplicateEmail() {
	ctx := context.Background()
	suite.mockUserRepo.On("SaveUser", mock.Anything, mock.Anything).Return(apperrors.ErrDuplicate).Once()

	_, err := suite.service.RegisterUser(ctx, dto.RegisterUserRequest{
		Email:    "alice@example.com",
		Name:     "Alice",
		Password: "s3cret-pass",
	})

	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *UserServiceTestSuite) TestAuthenticate_WrongPassword() {
	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("right-password"), bcrypt.DefaultCost)
	suite.Require().NoError(err)

	user := &domain.User{UserID: uuid.NewString(), Email: "alice@example.com", PasswordHash: string(hash)}
	suite.mockUserRepo.On("FindUserByEmail", mock.Anything, "alice@example.com").Return(user, nil).Once()

	_, err = suite.service.Authenticate(ctx, "alice@example.com", "wrong-password")

	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestAuthenticate_UnknownEmail() {
	ctx := context.Background()
	suite.mockUserRepo.On("FindUserByEmail", mock.Anything, "ghost@example.com").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.Authenticate(ctx, "ghost@example.com", "whatever")

	// Unknown email and wrong password are indistinguishable to the caller
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestUpdateProfile_ChangesNameAndPassword() {
	ctx := context.Background()
	userID := uuid.NewString()
	user := &domain.User{UserID: userID, Email: "alice@example.com", Name: "Alice", PasswordHash: "old-hash"}

	var updated domain.User
	suite.mockUserRepo.On("FindUserByID", mock.Anything, userID).Return(user, nil).Once()
	suite.mockUserRepo.On("UpdateUser", mock.Anything, mock.AnythingOfType("domain.User")).
		Run(func(args mock.Arguments) {
			updated = args.Get(1).(domain.User)
		}).Return(nil).Once()

	newName := "Alice B"
	newPassword := "brand-new-pass"
	result, err := suite.service.UpdateProfile(ctx, userID, dto.UpdateUserRequest{
		Name:     &newName,
		Password: &newPassword,
	})

	suite.Require().NoError(err)
	suite.Equal("Alice B", result.Name)
	suite.Equal("alice@example.com", updated.Email)
	suite.NotEqual("old-hash", updated.PasswordHash)
	suite.NoError(bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte(newPassword)))
}

func (suite *UserServiceTestSuite) TestUpdateProfile_BlankNameRejected() {
	ctx := context.Background()
	userID := uuid.NewString()
	user := &domain.User{UserID: userID, Name: "Alice"}
	suite.mockUserRepo.On("FindUserByID", mock.Anything, userID).Return(user, nil).Once()

	blank := "   "
	_, err := suite.service.UpdateProfile(ctx, userID, dto.UpdateUserRequest{Name: &blank})

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "UpdateUser")
}

func (suite *UserServiceTestSuite) TestDeleteUserAndAccounts_Order() {
	ctx := context.Background()
	userID := uuid.NewString()
	user := &domain.User{UserID: userID}

	suite.mockUserRepo.On("FindUserByID", mock.Anything, userID).Return(user, nil).Once()
	suite.mockAccountRepo.On("DeleteAccountsByUser", mock.Anything, userID).Return(nil).Once()
	suite.mockUserRepo.On("DeleteUser", mock.Anything, userID).Return(nil).Once()

	err := suite.service.DeleteUserAndAccounts(ctx, userID)

	suite.Require().NoError(err)
	suite.mockUserRepo.AssertExpectations(suite.T())
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestDeleteUserAndAccounts_UnknownUser() {
	ctx := context.Background()
	userID := uuid.NewString()
	suite.mockUserRepo.On("FindUserByID", mock.Anything, userID).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeleteUserAndAccounts(ctx, userID)

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "DeleteAccountsByUser")
}

func TestUserService(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
