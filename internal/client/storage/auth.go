package storage

import "context"

// AuthData holds the agent session persisted between CLI invocations.
// Tokens are stored as received; cached data is not encrypted.
type AuthData struct {
	Username    string `json:"username"`
	AccessToken string `json:"access_token"`
	ExpiresAt   int64  `json:"expires_at"`
}

// AuthStorage defines interface for storing agent session data
type AuthStorage interface {
	// SaveAuth stores the session, replacing any previous one
	SaveAuth(ctx context.Context, data *AuthData) error

	// GetAuth retrieves the stored session.
	// Returns ErrAuthNotFound if no session exists.
	GetAuth(ctx context.Context) (*AuthData, error)

	// DeleteAuth removes the stored session
	DeleteAuth(ctx context.Context) error
}
