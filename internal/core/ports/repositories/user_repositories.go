package repositories

import (
	"context"
	"time"

	"github.com/daytrackapp/daytrack-backend/internal/core/domain"
)

// UserRepositoryFacade defines persistence operations for users.
type UserRepositoryFacade interface {
	SaveUser(ctx context.Context, user domain.User) error
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdateUser(ctx context.Context, user domain.User) error

	// UpdateRefreshToken stores the SHA256 hash of the user's refresh token
	// and its expiry. An empty hash with nil expiry clears it (logout).
	UpdateRefreshToken(ctx context.Context, userID string, tokenHash string, expiresAt *time.Time, now time.Time) error
}
