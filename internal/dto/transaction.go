package dto

import (
	"time"

	"github.com/daytrackapp/daytrack-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to log a gain/loss transaction.
type CreateTransactionRequest struct {
	Date   string                 `json:"date" binding:"required,tradedate"`
	Kind   domain.TransactionKind `json:"kind" binding:"required,oneof=gain loss"`
	Amount *decimal.Decimal       `json:"amount" binding:"required"`
	Note   string                 `json:"note"`
}

// UpdateTransactionRequest defines the fields allowed when editing a transaction.
// Pointers distinguish "not provided" from zero values.
type UpdateTransactionRequest struct {
	Date   *string                 `json:"date" binding:"omitempty,tradedate"`
	Kind   *domain.TransactionKind `json:"kind" binding:"omitempty,oneof=gain loss"`
	Amount *decimal.Decimal        `json:"amount"`
	Note   *string                 `json:"note"`
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	Limit     int    `form:"limit,default=50"`
	NextToken string `form:"nextToken"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	ID        string                 `json:"id"`
	Date      string                 `json:"date"`
	Kind      domain.TransactionKind `json:"kind"`
	Amount    decimal.Decimal        `json:"amount"`
	Note      string                 `json:"note,omitempty"`
	CreatedAt time.Time              `json:"createdAt"`
}

// ListTransactionsResponse wraps one page of transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    string                `json:"nextToken,omitempty"`
}

// ToTransactionResponse converts a domain.Transaction to its response DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:        txn.TransactionID,
		Date:      txn.Date,
		Kind:      txn.Kind,
		Amount:    txn.Amount,
		Note:      txn.Note,
		CreatedAt: txn.CreatedAt,
	}
}

// ToListTransactionsResponse converts a page of transactions plus its pagination token.
func ToListTransactionsResponse(txns []domain.Transaction, nextToken string) ListTransactionsResponse {
	res := ListTransactionsResponse{
		Transactions: make([]TransactionResponse, len(txns)),
		NextToken:    nextToken,
	}
	for i, txn := range txns {
		res.Transactions[i] = ToTransactionResponse(&txn)
	}
	return res
}
