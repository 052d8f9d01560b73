package services_test

import (
	"context"
	"testing"

	"github.com/daytrackapp/daytrack-backend/internal/apperrors"
	"github.com/daytrackapp/daytrack-backend/internal/core/domain"
	portssvc "github.com/daytrackapp/daytrack-backend/internal/core/ports/services"
	"github.com/daytrackapp/daytrack-backend/internal/core/services"
	"github.com/daytrackapp/daytrack-backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AccountServiceTestSuite struct {
	suite.Suite
	mockAccountRepo *MockAccountRepository
	service         portssvc.AccountSvcFacade
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.service = services.NewAccountService(suite.mockAccountRepo)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	balance := decimal.NewFromInt(850)
	req := dto.CreateBankAccountRequest{CurrentBalance: &balance}

	suite.mockAccountRepo.On("FindAccountByUserID", ctx, userID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockAccountRepo.On("SaveAccount", ctx, mock.MatchedBy(func(account domain.BankAccount) bool {
		return account.UserID == userID && account.CurrentBalance.Equal(balance) && account.AccountID != ""
	})).Return(nil).Once()

	account, err := suite.service.CreateAccount(ctx, userID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(account)
	suite.True(account.CurrentBalance.Equal(balance))
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_ZeroBalanceAllowed() {
	ctx := context.Background()
	userID := uuid.NewString()
	balance := decimal.Zero
	req := dto.CreateBankAccountRequest{CurrentBalance: &balance}

	suite.mockAccountRepo.On("FindAccountByUserID", ctx, userID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockAccountRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.BankAccount")).Return(nil).Once()

	account, err := suite.service.CreateAccount(ctx, userID, req)

	suite.Require().NoError(err)
	suite.True(account.CurrentBalance.IsZero())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_SecondCreateRejected() {
	ctx := context.Background()
	userID := uuid.NewString()
	balance := decimal.NewFromInt(100)
	req := dto.CreateBankAccountRequest{CurrentBalance: &balance}
	existing := &domain.BankAccount{AccountID: uuid.NewString(), UserID: userID}

	suite.mockAccountRepo.On("FindAccountByUserID", ctx, userID).Return(existing, nil).Once()

	account, err := suite.service.CreateAccount(ctx, userID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.Nil(account)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestGetAccountForUser_NotSetUp() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockAccountRepo.On("FindAccountByUserID", ctx, userID).Return(nil, apperrors.ErrNotFound).Once()

	account, err := suite.service.GetAccountForUser(ctx, userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(account)
}

func (suite *AccountServiceTestSuite) TestUpdateBalance_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	existing := &domain.BankAccount{AccountID: uuid.NewString(), UserID: userID, CurrentBalance: decimal.NewFromInt(500)}
	newBalance := decimal.NewFromInt(-120) // manual edits may go negative
	req := dto.UpdateBankAccountRequest{CurrentBalance: &newBalance}

	suite.mockAccountRepo.On("FindAccountByUserID", ctx, userID).Return(existing, nil).Once()
	suite.mockAccountRepo.On("UpdateAccountBalance", ctx, existing.AccountID, newBalance, mock.AnythingOfType("time.Time")).Return(nil).Once()

	account, err := suite.service.UpdateBalance(ctx, userID, req)

	suite.Require().NoError(err)
	suite.True(account.CurrentBalance.Equal(newBalance))
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
