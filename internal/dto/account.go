package dto

import (
	"time"

	"github.com/daytrackapp/daytrack-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateBankAccountRequest is the initial-balance setup payload.
// A pointer keeps a literal zero starting balance valid.
type CreateBankAccountRequest struct {
	CurrentBalance *decimal.Decimal `json:"currentBalance" binding:"required"`
}

// UpdateBankAccountRequest applies a manual balance edit.
type UpdateBankAccountRequest struct {
	CurrentBalance *decimal.Decimal `json:"currentBalance" binding:"required"`
}

// BankAccountResponse defines the data returned for the bank account.
type BankAccountResponse struct {
	ID             string          `json:"id"`
	CurrentBalance decimal.Decimal `json:"currentBalance"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// ToBankAccountResponse converts a domain.BankAccount to its response DTO.
func ToBankAccountResponse(acc *domain.BankAccount) BankAccountResponse {
	return BankAccountResponse{
		ID:             acc.AccountID,
		CurrentBalance: acc.CurrentBalance,
		CreatedAt:      acc.CreatedAt,
		UpdatedAt:      acc.LastUpdatedAt,
	}
}
