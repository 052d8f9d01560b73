package models

import "time"

// User is the database representation of an application user.
type User struct {
	UserID                 string     `db:"user_id"`
	Username               string     `db:"username"`
	Email                  string     `db:"email"`
	Name                   string     `db:"name"`
	PasswordHash           string     `db:"password_hash"`
	IsActive               bool       `db:"is_active"`
	RefreshTokenHash       string     `db:"refresh_token_hash"`
	RefreshTokenExpiryTime *time.Time `db:"refresh_token_expiry_time"`
	AuditFields
}
