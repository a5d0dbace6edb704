package storage

import (
	"context"
)

// AuthStorage defines the persistence interface for the credential pair.
// The pair is the only client-side state that must survive a restart;
// everything else is re-read from the server.
type AuthStorage interface {
	// SaveAuth stores the credential pair, replacing any previous one
	SaveAuth(ctx context.Context, auth *AuthData) error

	// GetAuth retrieves the stored credential pair.
	// Returns ErrAuthNotFound if no pair exists.
	GetAuth(ctx context.Context) (*AuthData, error)

	// DeleteAuth removes the stored credential pair (logout).
	// Returns ErrAuthNotFound if nothing was stored.
	DeleteAuth(ctx context.Context) error
}

// AuthData is the persisted credential pair. Tokens are opaque strings,
// the storage layer performs no validation of their contents.
type AuthData struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	UpdatedAt    int64  `json:"updated_at"`
}
