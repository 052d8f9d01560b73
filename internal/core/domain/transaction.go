package domain

import "github.com/shopspring/decimal"

// TransactionKind indicates whether a transaction increases or decreases the balance.
type TransactionKind string

const (
	TransactionKindGain TransactionKind = "gain"
	TransactionKindLoss TransactionKind = "loss"
)

// Transaction represents a single dated gain/loss event against the bank account.
// Amount is always non-negative; the sign is carried by Kind.
type Transaction struct {
	TransactionID string          `json:"transactionID"` // Primary key (UUID)
	AccountID     string          `json:"accountID"`     // FK -> BankAccount.AccountID
	Date          string          `json:"date"`          // Calendar date, YYYY-MM-DD
	Kind          TransactionKind `json:"kind"`          // gain or loss
	Amount        decimal.Decimal `json:"amount"`        // Magnitude, >= 0
	Note          string          `json:"note"`          // Optional annotation
	AuditFields
}

// SignedAmount returns the balance effect of the transaction: +Amount for a
// gain, -Amount for a loss.
func (t Transaction) SignedAmount() decimal.Decimal {
	if t.Kind == TransactionKindLoss {
		return t.Amount.Neg()
	}
	return t.Amount
}
