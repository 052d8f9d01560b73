package dto

import "time"

// AuthResponse is returned by login, register, refresh and the OAuth callback.
// The refresh token itself travels in an HTTP-only cookie, never in the body.
type AuthResponse struct {
	AccessToken string       `json:"accessToken"`
	ExpiresAt   time.Time    `json:"expiresAt"`
	User        UserResponse `json:"user"`
}
