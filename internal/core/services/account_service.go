package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/daytrackapp/daytrack-backend/internal/apperrors"
	"github.com/daytrackapp/daytrack-backend/internal/core/domain"
	portsrepo "github.com/daytrackapp/daytrack-backend/internal/core/ports/repositories"
	portssvc "github.com/daytrackapp/daytrack-backend/internal/core/ports/services"
	"github.com/daytrackapp/daytrack-backend/internal/dto"
	"github.com/google/uuid"
)

// accountService implements the AccountSvcFacade for the user's single bank account.
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewAccountService creates a new instance of accountService.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade) portssvc.AccountSvcFacade {
	return &accountService{
		accountRepo: accountRepo,
	}
}

// CreateAccount performs the one-time initial-balance setup for a user.
func (s *accountService) CreateAccount(ctx context.Context, userID string, req dto.CreateBankAccountRequest) (*domain.BankAccount, error) {
	_, err := s.accountRepo.FindAccountByUserID(ctx, userID)
	if err == nil {
		return nil, fmt.Errorf("account already exists for user: %w", apperrors.ErrDuplicate)
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check for existing account: %w", err)
	}

	now := time.Now()
	account := domain.BankAccount{
		AccountID:      uuid.NewString(),
		UserID:         userID,
		CurrentBalance: *req.CurrentBalance,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to save account", "user_id", userID)
		return nil, err
	}

	s.LogInfo(ctx, "Account created", "account_id", account.AccountID)
	return &account, nil
}

// GetAccountForUser returns the user's account, or apperrors.ErrNotFound
// before setup has been completed.
func (s *accountService) GetAccountForUser(ctx context.Context, userID string) (*domain.BankAccount, error) {
	return s.accountRepo.FindAccountByUserID(ctx, userID)
}

// UpdateBalance applies a manual balance edit to the user's account.
func (s *accountService) UpdateBalance(ctx context.Context, userID string, req dto.UpdateBankAccountRequest) (*domain.BankAccount, error) {
	account, err := s.accountRepo.FindAccountByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if err := s.accountRepo.UpdateAccountBalance(ctx, account.AccountID, *req.CurrentBalance, now); err != nil {
		s.LogError(ctx, err, "Failed to update account balance", "account_id", account.AccountID)
		return nil, err
	}

	account.CurrentBalance = *req.CurrentBalance
	account.LastUpdatedAt = now
	s.LogInfo(ctx, "Account balance updated", "account_id", account.AccountID)
	return account, nil
}
