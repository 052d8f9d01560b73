package domain

import "time"

// User represents an application user within the core domain.
type User struct {
	UserID       string `json:"userID"` // Primary key (UUID)
	Username     string `json:"username"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	PasswordHash string `json:"-"` // Empty for users provisioned via Google sign-in
	IsActive     bool   `json:"isActive"`
	// Refresh token state; only the SHA256 hash of the token is persisted.
	RefreshTokenHash       string     `json:"-"`
	RefreshTokenExpiryTime *time.Time `json:"-"`
	AuditFields
}
