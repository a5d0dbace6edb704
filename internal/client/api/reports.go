package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jkowalski/auctionhub/pkg/api"
)

// AuctionHistory returns the closed-auction history report.
// Admin only; other callers get a 403 RequestError.
func (c *Client) AuctionHistory(ctx context.Context) ([]api.AuctionHistoryResponse, error) {
	var resp []api.AuctionHistoryResponse
	if err := c.do(ctx, http.MethodGet, "/reports/history", nil, &resp); err != nil {
		return nil, fmt.Errorf("auction history request failed: %w", err)
	}
	return resp, nil
}
