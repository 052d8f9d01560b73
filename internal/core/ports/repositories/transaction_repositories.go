package repositories

import (
	"context"
	"time"

	"github.com/daytrackapp/daytrack-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransactionRepositoryFacade defines persistence operations for gain/loss transactions.
//
// Mutating methods take the account's recomputed balance and apply it in the
// same database transaction as the row change, so currentBalance and the
// transaction list can never diverge.
type TransactionRepositoryFacade interface {
	// SaveTransaction inserts the transaction and writes the new account balance atomically.
	SaveTransaction(ctx context.Context, txn domain.Transaction, newBalance decimal.Decimal) error

	// FindTransactionByID retrieves a transaction by its primary key.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactionsByAccount returns one page of transactions ordered by
	// (date, created_at) descending, plus the token for the next page
	// (empty when exhausted).
	ListTransactionsByAccount(ctx context.Context, accountID string, limit int, nextToken string) ([]domain.Transaction, string, error)

	// FindAllTransactionsByAccount returns the complete transaction list for
	// an account, date ascending. The metrics engine folds over this.
	FindAllTransactionsByAccount(ctx context.Context, accountID string) ([]domain.Transaction, error)

	// UpdateTransaction rewrites the transaction and the new account balance atomically.
	UpdateTransaction(ctx context.Context, txn domain.Transaction, newBalance decimal.Decimal) error

	// DeleteTransaction removes the transaction and writes the new account balance atomically.
	DeleteTransaction(ctx context.Context, transactionID string, accountID string, newBalance decimal.Decimal, now time.Time) error
}
