package services

import (
	"context"
	"time"

	"github.com/daytrackapp/daytrack-backend/internal/core/domain"
	"github.com/daytrackapp/daytrack-backend/internal/dto"
)

// UserSvcFacade defines user management operations.
type UserSvcFacade interface {
	CreateUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// AuthenticateUser verifies username/password credentials. Returns
	// apperrors.ErrUnauthorized on any mismatch.
	AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error)

	UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest) (*domain.User, error)

	// SetRefreshToken stores the hash of a newly issued refresh token.
	SetRefreshToken(ctx context.Context, userID string, tokenHash string, expiresAt time.Time) error

	// ClearRefreshToken invalidates any stored refresh token (logout).
	ClearRefreshToken(ctx context.Context, userID string) error

	// FindOrCreateGoogleUser provisions a user from a verified Google
	// identity, reusing an existing user with the same email.
	FindOrCreateGoogleUser(ctx context.Context, email, name string) (*domain.User, error)
}
