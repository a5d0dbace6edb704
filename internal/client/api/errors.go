package api

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jkowalski/auctionhub/pkg/api"
)

// ErrSessionExpired means the refresh exchange failed or a retried call
// was still unauthorized. The session cannot be salvaged: the credential
// store has already been cleared by the time this error is returned, and
// the only recovery is a new login.
var ErrSessionExpired = errors.New("session expired")

// RequestError is a terminal per-call failure: any non-2xx status other
// than a recoverable 401, or a transport timeout. It is never retried by
// the client; retry policy belongs to the caller.
type RequestError struct {
	StatusCode int
	Body       string
	Timeout    bool
}

func (e *RequestError) Error() string {
	if e.Timeout {
		return "request timed out"
	}
	return fmt.Sprintf("request failed with status %d: %s", e.StatusCode, e.Body)
}

// Detail extracts the server's {"detail": ...} message when the body
// carries one, falling back to the raw body.
func (e *RequestError) Detail() string {
	var resp api.ErrorResponse
	if err := json.Unmarshal([]byte(e.Body), &resp); err == nil && resp.Detail != "" {
		return resp.Detail
	}
	return e.Body
}
