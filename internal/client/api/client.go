// Package api is the HTTP client for the auction service. All protected
// endpoints go through the authenticated pipeline in pipeline.go, which
// attaches the bearer credential and transparently recovers from an
// expired access token via the refresh coordinator. Register, login and
// refresh are anonymous and bypass the pipeline.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jkowalski/auctionhub/internal/models"
	"github.com/jkowalski/auctionhub/pkg/api"
)

// CredentialStore is the slice of the credential store the client needs.
// Implemented by auth.Store.
type CredentialStore interface {
	Get() (models.Credentials, bool)
	Set(ctx context.Context, creds models.Credentials) error
	Clear(ctx context.Context) error
	Subscribe(fn func())
}

// Client is the HTTP client for the auction service.
type Client struct {
	httpClient *http.Client
	baseURL    string
	creds      CredentialStore
	refresher  *refresher
}

// NewClient creates a new API client. creds backs the authenticated
// pipeline; anonymous endpoints work without it.
func NewClient(baseURL string, creds CredentialStore, timeout time.Duration) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		creds:   creds,
		httpClient: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Keep the bearer credential across redirects.
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}

	c.refresher = newRefresher(c)
	if creds != nil {
		// A cleared store discards any pending refresh handle: the next
		// 401 must start a fresh exchange, not attach to a dead one.
		creds.Subscribe(c.refresher.discard)
	}

	return c
}

// Register creates a new account. Anonymous endpoint.
func (c *Client) Register(ctx context.Context, username, email, password string) (*api.UserResponse, error) {
	req := api.RegisterRequest{
		Username: username,
		Email:    email,
		Password: password,
	}

	var resp api.UserResponse
	if err := c.doAnon(ctx, http.MethodPost, "/register", req, &resp); err != nil {
		return nil, fmt.Errorf("register request failed: %w", err)
	}
	return &resp, nil
}

// Login exchanges email and password for a credential pair. Anonymous
// endpoint; the server expects an OAuth2-style form with the email in
// the username field.
func (c *Client) Login(ctx context.Context, email, password string) (*api.TokenResponse, error) {
	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/login",
		strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, transportError(err)
	}

	var tokens api.TokenResponse
	if err := decodeResponse(resp, &tokens); err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &tokens, nil
}

// Refresh exchanges a refresh token for a new credential pair.
// Anonymous endpoint; a consumed or expired token is rejected with 401.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (*api.TokenResponse, error) {
	req := api.RefreshRequest{RefreshToken: refreshToken}

	var resp api.TokenResponse
	if err := c.doAnon(ctx, http.MethodPost, "/token/refresh", req, &resp); err != nil {
		return nil, fmt.Errorf("refresh request failed: %w", err)
	}
	return &resp, nil
}

// doAnon performs a JSON request without the bearer credential or the
// 401 recovery loop.
func (c *Client) doAnon(ctx context.Context, method, path string, body, result any) error {
	var payload []byte
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		payload = data
	}

	resp, err := c.roundTrip(ctx, method, path, payload, "")
	if err != nil {
		return transportError(err)
	}

	return decodeResponse(resp, result)
}

// decodeResponse reads the body, maps non-2xx statuses to *RequestError
// and unmarshals a successful body into result when asked to.
func decodeResponse(resp *http.Response, result any) error {
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &RequestError{
			StatusCode: resp.StatusCode,
			Body:       string(bytes.TrimSpace(respBody)),
		}
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
