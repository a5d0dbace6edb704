package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jkowalski/auctionhub/internal/client/storage"
	"github.com/jkowalski/auctionhub/internal/models"
)

// Store owns the in-memory credential pair and writes it through to the
// persistent storage layer so the session survives a restart.
//
// All mutations are atomic with respect to concurrent readers: a reader
// sees either the previous pair or the new one, never a half-updated pair.
// Clear additionally notifies subscribers so dependent state (cached
// session, pending refresh handles) is torn down with it.
type Store struct {
	mu      sync.RWMutex
	creds   *models.Credentials
	subs    []func()
	storage storage.AuthStorage
}

// NewStore creates a credential store backed by st. st may be nil for an
// in-memory-only store (used in tests).
func NewStore(st storage.AuthStorage) *Store {
	return &Store{storage: st}
}

// Load hydrates the in-memory pair from persistent storage.
// An empty storage is not an error: it means "unauthenticated".
func (s *Store) Load(ctx context.Context) error {
	if s.storage == nil {
		return nil
	}

	auth, err := s.storage.GetAuth(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			return nil
		}
		return fmt.Errorf("failed to load stored credentials: %w", err)
	}

	s.mu.Lock()
	s.creds = &models.Credentials{
		AccessToken:  auth.AccessToken,
		RefreshToken: auth.RefreshToken,
	}
	s.mu.Unlock()

	return nil
}

// Get returns a copy of the current credential pair.
// The second result is false when the store holds no pair.
func (s *Store) Get() (models.Credentials, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.creds == nil {
		return models.Credentials{}, false
	}
	return *s.creds, true
}

// Set replaces the credential pair and persists it.
func (s *Store) Set(ctx context.Context, creds models.Credentials) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.storage != nil {
		auth := &storage.AuthData{
			AccessToken:  creds.AccessToken,
			RefreshToken: creds.RefreshToken,
			UpdatedAt:    time.Now().Unix(),
		}
		if err := s.storage.SaveAuth(ctx, auth); err != nil {
			return fmt.Errorf("failed to persist credentials: %w", err)
		}
	}

	s.creds = &creds
	return nil
}

// Clear drops the credential pair from memory and storage and notifies
// subscribers. Clearing an already-empty store is not an error.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()

	if s.storage != nil {
		if err := s.storage.DeleteAuth(ctx); err != nil && !errors.Is(err, storage.ErrAuthNotFound) {
			s.mu.Unlock()
			return fmt.Errorf("failed to delete stored credentials: %w", err)
		}
	}

	s.creds = nil
	subs := make([]func(), len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	// Run outside the lock: subscribers may call back into the store.
	for _, fn := range subs {
		fn()
	}
	return nil
}

// Subscribe registers fn to run after every Clear. Used as the session
// teardown event for components that cache credential-derived state.
func (s *Store) Subscribe(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}
