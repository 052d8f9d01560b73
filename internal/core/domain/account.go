package domain

import (
	"github.com/shopspring/decimal"
)

// BankAccount represents the single trading bank account owned by a user.
// CurrentBalance is the authoritative, forward-most balance; historical
// balances are reconstructed from it by reversing transactions (see the
// metrics package), not stored.
type BankAccount struct {
	AccountID      string          `json:"accountID"` // Primary key (UUID)
	UserID         string          `json:"userID"`    // Owning user; one account per user
	CurrentBalance decimal.Decimal `json:"currentBalance"`
	AuditFields                    // CreatedAt anchors the start of the chart series
}
