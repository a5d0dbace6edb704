package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/singleflight"

	"github.com/jkowalski/auctionhub/internal/models"
)

const refreshKey = "token-refresh"

// refresher serializes refresh exchanges. Refresh tokens are single-use,
// so when several requests observe a 401 at the same time they must all
// attach to the one exchange already in flight and share its outcome;
// a second concurrent exchange would consume a token that is no longer
// valid and fail all but the first caller.
type refresher struct {
	group  singleflight.Group
	client *Client
}

func newRefresher(client *Client) *refresher {
	return &refresher{client: client}
}

// EnsureRefreshed exchanges the stored refresh token for a new credential
// pair, deduplicating concurrent callers. On success the store holds the
// new pair before any caller resumes, and the fresh access token is
// returned. On a definitive rejection the store is cleared and
// ErrSessionExpired is returned to every waiter.
func (r *refresher) EnsureRefreshed(ctx context.Context) (string, error) {
	// The exchange is detached from the initiating caller's cancellation:
	// other requests may be waiting on this flight, and the client timeout
	// still bounds it. Each waiter honors its own ctx below.
	ch := r.group.DoChan(refreshKey, func() (any, error) {
		access, err := r.exchange(context.WithoutCancel(ctx))
		return access, err
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return "", res.Err
		}
		return res.Val.(string), nil
	case <-ctx.Done():
		return "", transportError(ctx.Err())
	}
}

// discard drops the pending flight, if any. Called on store teardown so
// a logout during an exchange cannot leak its outcome into the next
// session.
func (r *refresher) discard() {
	r.group.Forget(refreshKey)
}

func (r *refresher) exchange(ctx context.Context) (string, error) {
	creds, ok := r.client.creds.Get()
	if !ok || creds.RefreshToken == "" {
		return "", r.expire(ctx, errors.New("no refresh credential"))
	}

	resp, err := r.client.Refresh(ctx, creds.RefreshToken)
	if err != nil {
		var reqErr *RequestError
		if errors.As(err, &reqErr) && !reqErr.Timeout {
			// The server rejected the refresh token: it is dead and the
			// session cannot be salvaged.
			return "", r.expire(ctx, err)
		}
		// Transport failure: the token may still be good, keep it.
		return "", fmt.Errorf("refresh exchange: %w", err)
	}

	// The store was cleared while the exchange was in flight (logout);
	// do not resurrect the session.
	if _, ok := r.client.creds.Get(); !ok {
		return "", fmt.Errorf("%w: session closed during refresh", ErrSessionExpired)
	}

	pair := models.Credentials{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
	}
	if err := r.client.creds.Set(ctx, pair); err != nil {
		return "", fmt.Errorf("failed to save refreshed credentials: %w", err)
	}

	slog.Debug("access credential refreshed")
	return resp.AccessToken, nil
}

func (r *refresher) expire(ctx context.Context, cause error) error {
	slog.Warn("refresh failed, dropping session", "error", cause)
	if err := r.client.creds.Clear(ctx); err != nil {
		slog.Error("failed to clear credentials", "error", err)
	}
	return fmt.Errorf("%w: %v", ErrSessionExpired, cause)
}
