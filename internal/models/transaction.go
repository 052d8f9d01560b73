package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the database representation of a gain/loss transaction.
// The trade date is a DATE column; it round-trips to the domain as a plain
// YYYY-MM-DD string.
type Transaction struct {
	TransactionID string          `db:"transaction_id"`
	AccountID     string          `db:"account_id"`
	Date          time.Time       `db:"date"`
	Kind          string          `db:"kind"`
	Amount        decimal.Decimal `db:"amount"`
	Note          string          `db:"note"`
	AuditFields
}
