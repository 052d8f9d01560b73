package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/daytrackapp/daytrack-backend/internal/apperrors"
	"github.com/daytrackapp/daytrack-backend/internal/core/domain"
	portssvc "github.com/daytrackapp/daytrack-backend/internal/core/ports/services"
	"github.com/daytrackapp/daytrack-backend/internal/dto"
	"github.com/daytrackapp/daytrack-backend/internal/handlers"
	"github.com/daytrackapp/daytrack-backend/internal/platform/config"
	"github.com/daytrackapp/daytrack-backend/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/oauth2"
)

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) CreateUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest) (*domain.User, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) SetRefreshToken(ctx context.Context, userID string, tokenHash string, expiresAt time.Time) error {
	args := m.Called(ctx, userID, tokenHash, expiresAt)
	return args.Error(0)
}
func (m *MockUserService) ClearRefreshToken(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}
func (m *MockUserService) FindOrCreateGoogleUser(ctx context.Context, email, name string) (*domain.User, error) {
	args := m.Called(ctx, email, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

// --- Mock AccountService ---
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) CreateAccount(ctx context.Context, userID string, req dto.CreateBankAccountRequest) (*domain.BankAccount, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BankAccount), args.Error(1)
}
func (m *MockAccountService) GetAccountForUser(ctx context.Context, userID string) (*domain.BankAccount, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BankAccount), args.Error(1)
}
func (m *MockAccountService) UpdateBalance(ctx context.Context, userID string, req dto.UpdateBankAccountRequest) (*domain.BankAccount, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BankAccount), args.Error(1)
}

var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

// --- Mock TransactionService ---
type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockTransactionService) ListTransactions(ctx context.Context, userID string, params dto.ListTransactionsParams) ([]domain.Transaction, string, error) {
	args := m.Called(ctx, userID, params)
	var txns []domain.Transaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.Transaction)
	}
	return txns, args.String(1), args.Error(2)
}
func (m *MockTransactionService) UpdateTransaction(ctx context.Context, userID string, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, userID, transactionID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockTransactionService) DeleteTransaction(ctx context.Context, userID string, transactionID string) error {
	args := m.Called(ctx, userID, transactionID)
	return args.Error(0)
}

var _ portssvc.TransactionSvcFacade = (*MockTransactionService)(nil)

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) DashboardStats(ctx context.Context, userID string) (*domain.DashboardStats, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardStats), args.Error(1)
}
func (m *MockReportingService) MonthlyReports(ctx context.Context, userID string) ([]domain.MonthlyReport, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MonthlyReport), args.Error(1)
}
func (m *MockReportingService) MonthlyReport(ctx context.Context, userID string, month time.Month, year int) (*domain.MonthlyReport, error) {
	args := m.Called(ctx, userID, month, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MonthlyReport), args.Error(1)
}
func (m *MockReportingService) BalanceSeries(ctx context.Context, userID string) ([]domain.ChartPoint, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ChartPoint), args.Error(1)
}
func (m *MockReportingService) RenderBalanceChart(ctx context.Context, userID string) ([]byte, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

var _ portssvc.ReportingSvcFacade = (*MockReportingService)(nil)

// --- Mock TokenService ---
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}
func (m *MockTokenService) GenerateRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}
func (m *MockTokenService) ValidateAndParseRefreshToken(ctx context.Context, userID string, refreshToken string) (*domain.User, error) {
	args := m.Called(ctx, userID, refreshToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

var _ portssvc.TokenSvcFacade = (*MockTokenService)(nil)

// --- Mock GoogleOAuthService ---
type MockGoogleOAuthService struct {
	mock.Mock
}

func (m *MockGoogleOAuthService) GenerateStateString(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}
func (m *MockGoogleOAuthService) GetGoogleLoginURL(ctx context.Context, state string) string {
	args := m.Called(ctx, state)
	return args.String(0)
}
func (m *MockGoogleOAuthService) ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*oauth2.Token), args.Error(1)
}
func (m *MockGoogleOAuthService) VerifyIDToken(ctx context.Context, token *oauth2.Token) (string, string, error) {
	args := m.Called(ctx, token)
	return args.String(0), args.String(1), args.Error(2)
}

var _ portssvc.GoogleOAuthHandlerSvcFacade = (*MockGoogleOAuthService)(nil)

// --- Test Suite ---
type ReportingHandlerTestSuite struct {
	suite.Suite
	router               *gin.Engine
	mockReportingService *MockReportingService
	cfg                  *config.Config
}

func (suite *ReportingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()

	suite.cfg = &config.Config{
		JWTSecret:              "test-secret-key-that-is-long-enough",
		JWTExpiryDuration:      time.Hour,
		JWTIssuer:              "daytrack-test",
		RefreshTokenCookieName: "rtid",
		RefreshTokenCookiePath: "/api/v1/auth",
		LoginRateLimit:         "100-M",
		FrontendBaseURL:        "http://localhost:3000",
	}

	suite.mockReportingService = new(MockReportingService)

	services := &portssvc.ServiceContainer{
		User:               new(MockUserService),
		Account:            new(MockAccountService),
		Transaction:        new(MockTransactionService),
		Reporting:          suite.mockReportingService,
		Token:              new(MockTokenService),
		GoogleOAuthHandler: new(MockGoogleOAuthService),
	}

	handlers.RegisterRoutes(suite.router, suite.cfg, services)
}

func (suite *ReportingHandlerTestSuite) generateTestToken(userID string) string {
	token, err := utils.GenerateJWT(userID, suite.cfg.JWTSecret, time.Hour, suite.cfg.JWTIssuer)
	suite.Require().NoError(err)
	return token
}

func (suite *ReportingHandlerTestSuite) doRequest(method, path, userID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if userID != "" {
		req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *ReportingHandlerTestSuite) TestGetDashboardStats_Success() {
	userID := uuid.NewString()
	stats := &domain.DashboardStats{
		CurrentBalance:     decimal.NewFromInt(1150),
		DailyProfitLoss:    decimal.NewFromInt(75),
		MonthlyAccumulated: decimal.NewFromInt(250),
		GrowthPercentage:   decimal.NewFromFloat(21.74),
		TotalTransactions:  3,
	}

	suite.mockReportingService.On("DashboardStats", mock.Anything, userID).Return(stats, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/reports/dashboard", userID)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.DashboardStatsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.CurrentBalance.Equal(stats.CurrentBalance))
	suite.True(resp.GrowthPercentage.Equal(stats.GrowthPercentage))
	suite.Equal(3, resp.TotalTransactions)
	suite.mockReportingService.AssertExpectations(suite.T())
}

func (suite *ReportingHandlerTestSuite) TestGetDashboardStats_NoAccount() {
	userID := uuid.NewString()

	suite.mockReportingService.On("DashboardStats", mock.Anything, userID).Return(nil, apperrors.ErrNotFound).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/reports/dashboard", userID)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *ReportingHandlerTestSuite) TestGetDashboardStats_Unauthorized() {
	w := suite.doRequest(http.MethodGet, "/api/v1/reports/dashboard", "")

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockReportingService.AssertNotCalled(suite.T(), "DashboardStats", mock.Anything, mock.Anything)
}

func (suite *ReportingHandlerTestSuite) TestListMonthlyReports_Success() {
	userID := uuid.NewString()
	reports := []domain.MonthlyReport{
		{Month: "February", Year: 2025, NetProfit: decimal.NewFromInt(100)},
		{Month: "January", Year: 2025, NetProfit: decimal.NewFromInt(150)},
	}

	suite.mockReportingService.On("MonthlyReports", mock.Anything, userID).Return(reports, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/reports/monthly", userID)

	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.MonthlyReportResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp, 2)
	suite.Equal("February", resp[0].Month)
	suite.Equal("January", resp[1].Month)
}

func (suite *ReportingHandlerTestSuite) TestGetMonthlyReport_SpecificMonth() {
	userID := uuid.NewString()
	report := &domain.MonthlyReport{Month: "March", Year: 2025, NetProfit: decimal.NewFromInt(42)}

	suite.mockReportingService.On("MonthlyReport", mock.Anything, userID, time.March, 2025).Return(report, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/reports/monthly/2025/3", userID)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.MonthlyReportResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("March", resp.Month)
	suite.True(resp.NetProfit.Equal(decimal.NewFromInt(42)))
}

func (suite *ReportingHandlerTestSuite) TestGetMonthlyReport_InvalidMonth() {
	userID := uuid.NewString()

	w := suite.doRequest(http.MethodGet, "/api/v1/reports/monthly/2025/13", userID)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockReportingService.AssertNotCalled(suite.T(), "MonthlyReport", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReportingHandlerTestSuite) TestGetBalanceSeries_Success() {
	userID := uuid.NewString()
	points := []domain.ChartPoint{
		{Date: "20/12", Balance: decimal.NewFromInt(900)},
		{Date: "05/01", Balance: decimal.NewFromInt(1100)},
	}

	suite.mockReportingService.On("BalanceSeries", mock.Anything, userID).Return(points, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/reports/chart", userID)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ChartSeriesResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp.Points, 2)
	suite.Equal("20/12", resp.Points[0].Date)
}

func (suite *ReportingHandlerTestSuite) TestGetBalanceChartPNG_Success() {
	userID := uuid.NewString()
	fakePNG := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a}

	suite.mockReportingService.On("RenderBalanceChart", mock.Anything, userID).Return(fakePNG, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/reports/chart.png", userID)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("image/png", w.Header().Get("Content-Type"))
	suite.Equal(fakePNG, w.Body.Bytes())
}

func TestReportingHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingHandlerTestSuite))
}
