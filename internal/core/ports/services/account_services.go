package services

import (
	"context"

	"github.com/daytrackapp/daytrack-backend/internal/core/domain"
	"github.com/daytrackapp/daytrack-backend/internal/dto"
)

// AccountSvcFacade defines the operations on the user's single bank account.
type AccountSvcFacade interface {
	// CreateAccount performs the initial-balance setup step. A user may own
	// exactly one account; a second create returns apperrors.ErrDuplicate.
	CreateAccount(ctx context.Context, userID string, req dto.CreateBankAccountRequest) (*domain.BankAccount, error)

	// GetAccountForUser returns the user's account, or apperrors.ErrNotFound
	// before setup has been completed.
	GetAccountForUser(ctx context.Context, userID string) (*domain.BankAccount, error)

	// UpdateBalance applies a manual balance edit.
	UpdateBalance(ctx context.Context, userID string, req dto.UpdateBankAccountRequest) (*domain.BankAccount, error)
}
