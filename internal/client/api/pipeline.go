package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"

	"github.com/google/uuid"
)

// do performs an authenticated call. The flow, in order:
//
//  1. attach the current access credential as a bearer header, if any;
//  2. issue the call;
//  3. on 401, run the refresh coordinator and re-issue the call exactly
//     once with the fresh access token;
//  4. a second 401 after a successful refresh is not retried again: the
//     session is dropped and ErrSessionExpired is returned;
//  5. any other non-2xx status becomes *RequestError, untouched and
//     unretried.
func (c *Client) do(ctx context.Context, method, path string, body, result any) error {
	var payload []byte
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		payload = data
	}

	token := ""
	if c.creds != nil {
		if creds, ok := c.creds.Get(); ok {
			token = creds.AccessToken
		}
	}

	resp, err := c.roundTrip(ctx, method, path, payload, token)
	if err != nil {
		return transportError(err)
	}

	if resp.StatusCode == http.StatusUnauthorized && c.creds != nil {
		drain(resp)

		access, err := c.refresher.EnsureRefreshed(ctx)
		if err != nil {
			return err
		}

		resp, err = c.roundTrip(ctx, method, path, payload, access)
		if err != nil {
			return transportError(err)
		}

		if resp.StatusCode == http.StatusUnauthorized {
			drain(resp)
			slog.Warn("still unauthorized after refresh, dropping session",
				"method", method, "path", path)
			if clearErr := c.creds.Clear(context.WithoutCancel(ctx)); clearErr != nil {
				slog.Error("failed to clear credentials", "error", clearErr)
			}
			return ErrSessionExpired
		}
	}

	return decodeResponse(resp, result)
}

// roundTrip issues a single HTTP request with the standard headers.
func (c *Client) roundTrip(ctx context.Context, method, path string, payload []byte, bearer string) (*http.Response, error) {
	var bodyReader io.Reader
	if payload != nil {
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	req.Header.Set("X-Request-ID", uuid.NewString())

	return c.httpClient.Do(req)
}

// transportError maps a transport-level failure onto the error taxonomy:
// timeouts become a RequestError with the Timeout indicator, everything
// else is passed through wrapped.
func transportError(err error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return &RequestError{Timeout: true}
	}
	return fmt.Errorf("request failed: %w", err)
}

func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}
