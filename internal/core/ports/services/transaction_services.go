package services

import (
	"context"

	"github.com/daytrackapp/daytrack-backend/internal/core/domain"
	"github.com/daytrackapp/daytrack-backend/internal/dto"
)

// TransactionSvcFacade defines the gain/loss transaction operations.
// Every mutation recomputes the account's current balance so the metrics
// engine always folds over a consistent snapshot.
type TransactionSvcFacade interface {
	CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error)

	// ListTransactions returns one page plus the next-page token (empty when exhausted).
	ListTransactions(ctx context.Context, userID string, params dto.ListTransactionsParams) ([]domain.Transaction, string, error)

	UpdateTransaction(ctx context.Context, userID string, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error)
	DeleteTransaction(ctx context.Context, userID string, transactionID string) error
}
