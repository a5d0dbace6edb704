package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/jkowalski/auctionhub/internal/client/api"
	"github.com/jkowalski/auctionhub/internal/models"
	"github.com/jkowalski/auctionhub/internal/validation"
)

// Service drives the authentication flows: register, login, logout and
// the derived session for the current credential pair.
type Service struct {
	client *api.Client
	store  *Store

	// session is cached per access token: a refresh exchange swaps the
	// token, so the projection is recomputed rather than patched.
	mu           sync.RWMutex
	sessionToken string
	session      *models.Session
}

// NewService creates the auth service. It subscribes to the store's
// teardown event so a cleared credential pair also drops the cached
// session.
func NewService(client *api.Client, store *Store) *Service {
	s := &Service{
		client: client,
		store:  store,
	}
	store.Subscribe(s.dropSession)
	return s
}

// RegisterResult contains the account created by Register.
type RegisterResult struct {
	UserID   string
	Username string
	Email    string
	Role     models.Role
}

// Register creates a new account. It does not log the user in: the
// caller follows up with Login, mirroring the server flow.
func (s *Service) Register(ctx context.Context, username, email, password string) (*RegisterResult, error) {
	if err := validation.ValidateUsername(username); err != nil {
		return nil, fmt.Errorf("invalid username: %w", err)
	}
	if err := validation.ValidateEmail(email); err != nil {
		return nil, fmt.Errorf("invalid email: %w", err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, fmt.Errorf("invalid password: %w", err)
	}

	resp, err := s.client.Register(ctx, username, email, password)
	if err != nil {
		return nil, fmt.Errorf("registration failed: %w", err)
	}

	return &RegisterResult{
		UserID:   resp.ID,
		Username: resp.Username,
		Email:    resp.Email,
		Role:     models.Role(resp.Role),
	}, nil
}

// Login authenticates against the server, stores the issued credential
// pair and returns the session derived from the access token.
func (s *Service) Login(ctx context.Context, email, password string) (*models.Session, error) {
	if err := validation.ValidateEmail(email); err != nil {
		return nil, fmt.Errorf("invalid email: %w", err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, fmt.Errorf("invalid password: %w", err)
	}

	resp, err := s.client.Login(ctx, email, password)
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}

	creds := models.Credentials{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
	}
	if err := s.store.Set(ctx, creds); err != nil {
		return nil, fmt.Errorf("failed to save credentials: %w", err)
	}

	session, err := DeriveSession(resp.AccessToken)
	if err != nil {
		// A token we cannot read must not be kept.
		if clearErr := s.store.Clear(ctx); clearErr != nil {
			slog.Error("failed to clear credentials", "error", clearErr)
		}
		return nil, fmt.Errorf("failed to derive session: %w", err)
	}

	s.mu.Lock()
	s.session = session
	s.sessionToken = resp.AccessToken
	s.mu.Unlock()

	return session, nil
}

// Logout drops the credential pair. The server has no logout endpoint:
// access tokens simply expire and the refresh token becomes unreachable
// once the pair is gone locally.
func (s *Service) Logout(ctx context.Context) error {
	if err := s.store.Clear(ctx); err != nil {
		return fmt.Errorf("logout failed: %w", err)
	}
	slog.Debug("session cleared")
	return nil
}

// Current returns the session for the stored access token, or (nil, nil)
// when unauthenticated. A credential that fails to decode is dropped
// defensively and reported as an error.
func (s *Service) Current(ctx context.Context) (*models.Session, error) {
	creds, ok := s.store.Get()
	if !ok {
		return nil, nil
	}

	s.mu.RLock()
	if s.session != nil && s.sessionToken == creds.AccessToken {
		cached := s.session
		s.mu.RUnlock()
		return cached, nil
	}
	s.mu.RUnlock()

	session, err := DeriveSession(creds.AccessToken)
	if err != nil {
		if errors.Is(err, ErrMalformedCredential) {
			slog.Warn("stored access credential is malformed, dropping session")
			if clearErr := s.store.Clear(ctx); clearErr != nil {
				slog.Error("failed to clear credentials", "error", clearErr)
			}
		}
		return nil, err
	}

	s.mu.Lock()
	s.session = session
	s.sessionToken = creds.AccessToken
	s.mu.Unlock()

	return session, nil
}

func (s *Service) dropSession() {
	s.mu.Lock()
	s.session = nil
	s.sessionToken = ""
	s.mu.Unlock()
}
