package services

import (
	"context"
	"fmt"
	"time"

	"github.com/daytrackapp/daytrack-backend/internal/apperrors"
	"github.com/daytrackapp/daytrack-backend/internal/core/domain"
	portsrepo "github.com/daytrackapp/daytrack-backend/internal/core/ports/repositories"
	portssvc "github.com/daytrackapp/daytrack-backend/internal/core/ports/services"
	"github.com/daytrackapp/daytrack-backend/internal/dto"
	"github.com/daytrackapp/daytrack-backend/internal/utils/metrics"
	"github.com/google/uuid"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

// transactionService implements the TransactionSvcFacade. Every mutation
// recomputes the account balance and hands it to the repository, which
// applies both changes in one database transaction.
type transactionService struct {
	BaseService
	accountRepo     portsrepo.AccountRepositoryFacade
	transactionRepo portsrepo.TransactionRepositoryFacade
}

// NewTransactionService creates a new instance of transactionService.
func NewTransactionService(accountRepo portsrepo.AccountRepositoryFacade, transactionRepo portsrepo.TransactionRepositoryFacade) portssvc.TransactionSvcFacade {
	return &transactionService{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
	}
}

// CreateTransaction logs a new gain/loss transaction and moves the account
// balance by its signed amount.
func (s *transactionService) CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	account, err := s.accountRepo.FindAccountByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		AccountID:     account.AccountID,
		Date:          req.Date,
		Kind:          req.Kind,
		Amount:        *req.Amount,
		Note:          req.Note,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := metrics.ValidateTransaction(txn); err != nil {
		return nil, err
	}

	newBalance := account.CurrentBalance.Add(txn.SignedAmount())
	if err := s.transactionRepo.SaveTransaction(ctx, txn, newBalance); err != nil {
		s.LogError(ctx, err, "Failed to save transaction", "account_id", account.AccountID)
		return nil, err
	}

	s.LogInfo(ctx, "Transaction created", "transaction_id", txn.TransactionID, "kind", string(txn.Kind), "date", txn.Date)
	return &txn, nil
}

// ListTransactions returns one page of the user's transactions, newest first.
func (s *transactionService) ListTransactions(ctx context.Context, userID string, params dto.ListTransactionsParams) ([]domain.Transaction, string, error) {
	account, err := s.accountRepo.FindAccountByUserID(ctx, userID)
	if err != nil {
		return nil, "", err
	}

	limit := params.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	return s.transactionRepo.ListTransactionsByAccount(ctx, account.AccountID, limit, params.NextToken)
}

// UpdateTransaction edits a transaction. The balance delta is the reversal of
// the old signed amount plus the new one.
func (s *transactionService) UpdateTransaction(ctx context.Context, userID string, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	account, err := s.accountRepo.FindAccountByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	existing, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if existing.AccountID != account.AccountID {
		// Do not reveal that the transaction exists under another account.
		return nil, fmt.Errorf("transaction %s: %w", transactionID, apperrors.ErrNotFound)
	}

	updated := *existing
	if req.Date != nil {
		updated.Date = *req.Date
	}
	if req.Kind != nil {
		updated.Kind = *req.Kind
	}
	if req.Amount != nil {
		updated.Amount = *req.Amount
	}
	if req.Note != nil {
		updated.Note = *req.Note
	}
	updated.LastUpdatedAt = time.Now()

	if err := metrics.ValidateTransaction(updated); err != nil {
		return nil, err
	}

	newBalance := account.CurrentBalance.Sub(existing.SignedAmount()).Add(updated.SignedAmount())
	if err := s.transactionRepo.UpdateTransaction(ctx, updated, newBalance); err != nil {
		s.LogError(ctx, err, "Failed to update transaction", "transaction_id", transactionID)
		return nil, err
	}

	s.LogInfo(ctx, "Transaction updated", "transaction_id", transactionID)
	return &updated, nil
}

// DeleteTransaction removes a transaction and reverses its effect on the balance.
func (s *transactionService) DeleteTransaction(ctx context.Context, userID string, transactionID string) error {
	account, err := s.accountRepo.FindAccountByUserID(ctx, userID)
	if err != nil {
		return err
	}

	existing, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return err
	}
	if existing.AccountID != account.AccountID {
		return fmt.Errorf("transaction %s: %w", transactionID, apperrors.ErrNotFound)
	}

	newBalance := account.CurrentBalance.Sub(existing.SignedAmount())
	if err := s.transactionRepo.DeleteTransaction(ctx, transactionID, account.AccountID, newBalance, time.Now()); err != nil {
		s.LogError(ctx, err, "Failed to delete transaction", "transaction_id", transactionID)
		return err
	}

	s.LogInfo(ctx, "Transaction deleted", "transaction_id", transactionID)
	return nil
}
