package repositories

import (
	"context"
	"time"

	"github.com/daytrackapp/daytrack-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountRepositoryFacade defines persistence operations for bank accounts.
type AccountRepositoryFacade interface {
	// SaveAccount inserts a new bank account. Returns apperrors.ErrDuplicate
	// if the user already owns one.
	SaveAccount(ctx context.Context, account domain.BankAccount) error

	// FindAccountByID retrieves an account by its primary key.
	// Returns apperrors.ErrNotFound when missing.
	FindAccountByID(ctx context.Context, accountID string) (*domain.BankAccount, error)

	// FindAccountByUserID retrieves the single account owned by a user.
	// Returns apperrors.ErrNotFound when the user has not completed setup.
	FindAccountByUserID(ctx context.Context, userID string) (*domain.BankAccount, error)

	// UpdateAccountBalance sets a new current balance and bumps the update timestamp.
	UpdateAccountBalance(ctx context.Context, accountID string, newBalance decimal.Decimal, now time.Time) error
}
