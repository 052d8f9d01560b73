package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/daytrackapp/daytrack-backend/internal/apperrors"
	"github.com/daytrackapp/daytrack-backend/internal/core/domain"
	portssvc "github.com/daytrackapp/daytrack-backend/internal/core/ports/services"
	"github.com/daytrackapp/daytrack-backend/internal/core/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	mockAccountRepo     *MockAccountRepository
	mockTransactionRepo *MockTransactionRepository
	service             portssvc.ReportingSvcFacade

	userID  string
	account *domain.BankAccount
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockTransactionRepo = new(MockTransactionRepository)
	suite.service = services.NewReportingService(suite.mockAccountRepo, suite.mockTransactionRepo)

	suite.userID = uuid.NewString()
	suite.account = &domain.BankAccount{
		AccountID:      uuid.NewString(),
		UserID:         suite.userID,
		CurrentBalance: decimal.NewFromInt(1150),
		AuditFields: domain.AuditFields{
			CreatedAt: time.Date(2024, 12, 20, 10, 0, 0, 0, time.UTC),
		},
	}
}

func (suite *ReportingServiceTestSuite) transactions() []domain.Transaction {
	return []domain.Transaction{
		{TransactionID: uuid.NewString(), AccountID: suite.account.AccountID, Date: "2025-01-05", Kind: domain.TransactionKindGain, Amount: decimal.NewFromInt(200)},
		{TransactionID: uuid.NewString(), AccountID: suite.account.AccountID, Date: "2025-01-10", Kind: domain.TransactionKindLoss, Amount: decimal.NewFromInt(50)},
		{TransactionID: uuid.NewString(), AccountID: suite.account.AccountID, Date: "2025-02-03", Kind: domain.TransactionKindGain, Amount: decimal.NewFromInt(100)},
	}
}

func (suite *ReportingServiceTestSuite) expectLoad(txns []domain.Transaction) {
	ctx := context.Background()
	suite.mockAccountRepo.On("FindAccountByUserID", ctx, suite.userID).Return(suite.account, nil).Once()
	suite.mockTransactionRepo.On("FindAllTransactionsByAccount", ctx, suite.account.AccountID).Return(txns, nil).Once()
}

func (suite *ReportingServiceTestSuite) TestMonthlyReports_NewestFirst() {
	suite.expectLoad(suite.transactions())

	reports, err := suite.service.MonthlyReports(context.Background(), suite.userID)

	suite.Require().NoError(err)
	suite.Require().Len(reports, 2)
	suite.Equal("February", reports[0].Month)
	suite.Equal(2025, reports[0].Year)
	suite.Equal("January", reports[1].Month)
	// February opens where January closed.
	suite.True(reports[0].InitialValue.Equal(reports[1].FinalValue))
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestMonthlyReport_SpecificMonth() {
	suite.expectLoad(suite.transactions())

	report, err := suite.service.MonthlyReport(context.Background(), suite.userID, time.January, 2025)

	suite.Require().NoError(err)
	// Current balance 1150 minus all signed amounts (+250) gives 900 before January.
	suite.True(report.InitialValue.Equal(decimal.NewFromInt(900)))
	suite.True(report.NetProfit.Equal(decimal.NewFromInt(150)))
	suite.True(report.FinalValue.Equal(decimal.NewFromInt(1050)))
	suite.Equal(2, report.TransactionCount)
}

func (suite *ReportingServiceTestSuite) TestMonthlyReport_EmptyMonth() {
	suite.expectLoad(suite.transactions())

	report, err := suite.service.MonthlyReport(context.Background(), suite.userID, time.June, 2025)

	suite.Require().NoError(err)
	suite.True(report.NetProfit.IsZero())
	suite.Equal(0, report.TransactionCount)
}

func (suite *ReportingServiceTestSuite) TestDashboardStats_UsesTodayAsReference() {
	today := time.Now().Format(domain.DateLayout)
	txns := []domain.Transaction{
		{TransactionID: uuid.NewString(), AccountID: suite.account.AccountID, Date: today, Kind: domain.TransactionKindGain, Amount: decimal.NewFromInt(75)},
	}
	suite.expectLoad(txns)

	stats, err := suite.service.DashboardStats(context.Background(), suite.userID)

	suite.Require().NoError(err)
	suite.True(stats.DailyProfitLoss.Equal(decimal.NewFromInt(75)))
	suite.Equal(1, stats.TotalTransactions)
	suite.True(stats.CurrentBalance.Equal(suite.account.CurrentBalance))
}

func (suite *ReportingServiceTestSuite) TestBalanceSeries_AnchoredAtCreation() {
	suite.expectLoad(suite.transactions())

	points, err := suite.service.BalanceSeries(context.Background(), suite.userID)

	suite.Require().NoError(err)
	suite.Require().Len(points, 4) // creation day plus three transaction dates
	suite.Equal("20/12", points[0].Date)
	suite.True(points[0].Balance.Equal(decimal.NewFromInt(900)))
	suite.True(points[len(points)-1].Balance.Equal(suite.account.CurrentBalance))
}

func (suite *ReportingServiceTestSuite) TestRenderBalanceChart_ProducesPNG() {
	suite.expectLoad(suite.transactions())

	png, err := suite.service.RenderBalanceChart(context.Background(), suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotEmpty(png)
	// PNG magic bytes
	suite.Equal(byte(0x89), png[0])
	suite.Equal([]byte("PNG"), png[1:4])
}

func (suite *ReportingServiceTestSuite) TestRenderBalanceChart_NewAccountRendersAnchorOnly() {
	suite.expectLoad([]domain.Transaction{})

	png, err := suite.service.RenderBalanceChart(context.Background(), suite.userID)

	// Only the creation-day anchor exists; it still renders as a flat line.
	suite.Require().NoError(err)
	suite.Require().NotEmpty(png)
	suite.Equal(byte(0x89), png[0])
	suite.Equal([]byte("PNG"), png[1:4])
}

func (suite *ReportingServiceTestSuite) TestReporting_NoAccount() {
	ctx := context.Background()
	suite.mockAccountRepo.On("FindAccountByUserID", ctx, suite.userID).Return(nil, apperrors.ErrNotFound)

	_, err := suite.service.DashboardStats(ctx, suite.userID)
	suite.ErrorIs(err, apperrors.ErrNotFound)

	_, err = suite.service.MonthlyReports(ctx, suite.userID)
	suite.ErrorIs(err, apperrors.ErrNotFound)

	_, err = suite.service.BalanceSeries(ctx, suite.userID)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
