package models

import "github.com/shopspring/decimal"

// BankAccount is the database representation of a user's bank account.
type BankAccount struct {
	AccountID      string          `db:"account_id"`
	UserID         string          `db:"user_id"`
	CurrentBalance decimal.Decimal `db:"current_balance"`
	AuditFields
}
