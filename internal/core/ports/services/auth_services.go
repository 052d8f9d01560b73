package services

import (
	"context"
	"time"

	"github.com/daytrackapp/daytrack-backend/internal/core/domain"
	"golang.org/x/oauth2"
)

// TokenSvcFacade issues and validates the tokens used by the auth flow:
// short-lived JWT access tokens and opaque, hashed-at-rest refresh tokens.
type TokenSvcFacade interface {
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)
	GenerateRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error)

	// ValidateAndParseRefreshToken checks a raw refresh token against the
	// stored hash and expiry for the user, returning the user when valid.
	ValidateAndParseRefreshToken(ctx context.Context, userID string, refreshToken string) (*domain.User, error)
}

// GoogleOAuthHandlerSvcFacade wraps the Google sign-in flow.
type GoogleOAuthHandlerSvcFacade interface {
	// GenerateStateString creates the CSRF state parameter for the flow.
	GenerateStateString(ctx context.Context) (string, error)

	// GetGoogleLoginURL returns the consent-screen URL for the given state.
	GetGoogleLoginURL(ctx context.Context, state string) string

	// ExchangeCodeForToken exchanges the callback authorization code.
	ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error)

	// VerifyIDToken validates the ID token in the exchanged token and
	// returns the verified email and display name.
	VerifyIDToken(ctx context.Context, token *oauth2.Token) (email string, name string, err error)
}
