package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/daytrackapp/daytrack-backend/internal/apperrors"
	"github.com/daytrackapp/daytrack-backend/internal/core/domain"
	portssvc "github.com/daytrackapp/daytrack-backend/internal/core/ports/services"
	"github.com/daytrackapp/daytrack-backend/internal/core/services"
	"github.com/daytrackapp/daytrack-backend/internal/dto"
	"github.com/daytrackapp/daytrack-backend/internal/platform/config"
	"github.com/daytrackapp/daytrack-backend/internal/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockUserSvc mocks the UserSvcFacade for token service tests.
type MockUserSvc struct {
	mock.Mock
}

func (m *MockUserSvc) CreateUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserSvc) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserSvc) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserSvc) AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserSvc) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest) (*domain.User, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserSvc) SetRefreshToken(ctx context.Context, userID string, tokenHash string, expiresAt time.Time) error {
	args := m.Called(ctx, userID, tokenHash, expiresAt)
	return args.Error(0)
}
func (m *MockUserSvc) ClearRefreshToken(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}
func (m *MockUserSvc) FindOrCreateGoogleUser(ctx context.Context, email, name string) (*domain.User, error) {
	args := m.Called(ctx, email, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

var _ portssvc.UserSvcFacade = (*MockUserSvc)(nil)

type TokenServiceTestSuite struct {
	suite.Suite
	mockUserSvc *MockUserSvc
	cfg         *config.Config
	service     portssvc.TokenSvcFacade
}

func (suite *TokenServiceTestSuite) SetupTest() {
	suite.mockUserSvc = new(MockUserSvc)
	suite.cfg = &config.Config{
		JWTSecret:                  "test-secret-key-that-is-long-enough",
		JWTExpiryDuration:          15 * time.Minute,
		JWTIssuer:                  "daytrack-test",
		RefreshTokenExpiryDuration: 7 * 24 * time.Hour,
	}
	suite.service = services.NewTokenService(suite.cfg, suite.mockUserSvc)
}

func (suite *TokenServiceTestSuite) TestGenerateAccessToken_ProducesValidJWT() {
	ctx := context.Background()
	user := &domain.User{UserID: uuid.NewString()}

	token, expiresAt, err := suite.service.GenerateAccessToken(ctx, user)

	suite.Require().NoError(err)
	suite.Require().NotEmpty(token)
	suite.WithinDuration(time.Now().Add(suite.cfg.JWTExpiryDuration), expiresAt, 5*time.Second)

	claims, err := utils.ParseAndValidateJWT(token, suite.cfg.JWTSecret)
	suite.Require().NoError(err)
	suite.Equal(user.UserID, claims.Subject)
	suite.Equal(suite.cfg.JWTIssuer, claims.Issuer)
}

func (suite *TokenServiceTestSuite) TestGenerateAccessToken_RejectedWithWrongSecret() {
	ctx := context.Background()
	user := &domain.User{UserID: uuid.NewString()}

	token, _, err := suite.service.GenerateAccessToken(ctx, user)
	suite.Require().NoError(err)

	_, err = utils.ParseAndValidateJWT(token, "a-different-secret")
	suite.Require().Error(err)
}

func (suite *TokenServiceTestSuite) TestGenerateRefreshToken_OpaqueAndFresh() {
	ctx := context.Background()
	user := &domain.User{UserID: uuid.NewString()}

	first, expiresAt, err := suite.service.GenerateRefreshToken(ctx, user)
	suite.Require().NoError(err)
	second, _, err := suite.service.GenerateRefreshToken(ctx, user)
	suite.Require().NoError(err)

	suite.Len(first, 64) // 32 random bytes, hex encoded
	suite.NotEqual(first, second)
	suite.WithinDuration(time.Now().Add(suite.cfg.RefreshTokenExpiryDuration), expiresAt, 5*time.Second)
}

func (suite *TokenServiceTestSuite) TestValidateRefreshToken_Success() {
	ctx := context.Background()
	raw := "raw-refresh-token"
	expiry := time.Now().Add(time.Hour)
	stored := &domain.User{
		UserID:                 uuid.NewString(),
		RefreshTokenHash:       utils.HashRefreshToken(raw),
		RefreshTokenExpiryTime: &expiry,
	}

	suite.mockUserSvc.On("GetUserByID", ctx, stored.UserID).Return(stored, nil).Once()

	user, err := suite.service.ValidateAndParseRefreshToken(ctx, stored.UserID, raw)

	suite.Require().NoError(err)
	suite.Equal(stored.UserID, user.UserID)
}

func (suite *TokenServiceTestSuite) TestValidateRefreshToken_Expired() {
	ctx := context.Background()
	raw := "raw-refresh-token"
	expiry := time.Now().Add(-time.Minute)
	stored := &domain.User{
		UserID:                 uuid.NewString(),
		RefreshTokenHash:       utils.HashRefreshToken(raw),
		RefreshTokenExpiryTime: &expiry,
	}

	suite.mockUserSvc.On("GetUserByID", ctx, stored.UserID).Return(stored, nil).Once()

	user, err := suite.service.ValidateAndParseRefreshToken(ctx, stored.UserID, raw)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrRefreshTokenExpired)
	suite.Nil(user)
}

func (suite *TokenServiceTestSuite) TestValidateRefreshToken_Rejections() {
	ctx := context.Background()
	expiry := time.Now().Add(time.Hour)

	cases := []struct {
		name   string
		user   *domain.User
		svcErr error
	}{
		{"unknown user", nil, apperrors.ErrNotFound},
		{"no token stored", &domain.User{UserID: "u1", RefreshTokenHash: "", RefreshTokenExpiryTime: &expiry}, nil},
		{"nil expiry", &domain.User{UserID: "u2", RefreshTokenHash: utils.HashRefreshToken("other")}, nil},
		{"hash mismatch", &domain.User{UserID: "u3", RefreshTokenHash: utils.HashRefreshToken("other"), RefreshTokenExpiryTime: &expiry}, nil},
	}

	for _, tc := range cases {
		suite.Run(tc.name, func() {
			suite.mockUserSvc.On("GetUserByID", ctx, "some-user").Return(tc.user, tc.svcErr).Once()

			user, err := suite.service.ValidateAndParseRefreshToken(ctx, "some-user", "raw-refresh-token")

			suite.Require().Error(err)
			suite.ErrorIs(err, apperrors.ErrUnauthorized)
			suite.Nil(user)
		})
	}
}

func TestTokenServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TokenServiceTestSuite))
}
