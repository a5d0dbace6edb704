package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jkowalski/auctionhub/pkg/api"
)

// ListAuctions returns all open auctions.
func (c *Client) ListAuctions(ctx context.Context) ([]api.AuctionResponse, error) {
	var resp []api.AuctionResponse
	if err := c.do(ctx, http.MethodGet, "/auctions", nil, &resp); err != nil {
		return nil, fmt.Errorf("list auctions request failed: %w", err)
	}
	return resp, nil
}

// GetAuction returns a single auction by id. A closed auction is no
// longer served here and comes back as a 404.
func (c *Client) GetAuction(ctx context.Context, auctionID string) (*api.AuctionResponse, error) {
	var resp api.AuctionResponse
	path := fmt.Sprintf("/auctions/%s", auctionID)
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("get auction request failed: %w", err)
	}
	return &resp, nil
}

// CreateAuction lists a new auction owned by the current user.
func (c *Client) CreateAuction(ctx context.Context, req api.CreateAuctionRequest) (*api.AuctionResponse, error) {
	var resp api.AuctionResponse
	if err := c.do(ctx, http.MethodPost, "/auctions", req, &resp); err != nil {
		return nil, fmt.Errorf("create auction request failed: %w", err)
	}
	return &resp, nil
}

// PlaceBid submits a bid. The server accepts only amounts strictly above
// the current price; a rejection carries no bid entity, just the error.
func (c *Client) PlaceBid(ctx context.Context, auctionID string, amount float64) (*api.BidResponse, error) {
	var resp api.BidResponse
	path := fmt.Sprintf("/auctions/%s/bid", auctionID)
	if err := c.do(ctx, http.MethodPost, path, api.BidRequest{Amount: amount}, &resp); err != nil {
		return nil, fmt.Errorf("place bid request failed: %w", err)
	}
	return &resp, nil
}

// CloseAuction closes an auction. Only the owner or an admin may close,
// and only once.
func (c *Client) CloseAuction(ctx context.Context, auctionID string) (*api.CloseAuctionResponse, error) {
	var resp api.CloseAuctionResponse
	path := fmt.Sprintf("/auctions/%s/close", auctionID)
	if err := c.do(ctx, http.MethodPost, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("close auction request failed: %w", err)
	}
	return &resp, nil
}
