package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jkowalski/auctionhub/internal/client/api"
	"github.com/jkowalski/auctionhub/internal/client/auction"
	"github.com/jkowalski/auctionhub/internal/models"
)

// parseAmount parses a price argument.
func parseAmount(raw string) (float64, error) {
	amount, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", raw)
	}
	if amount <= 0 {
		return 0, fmt.Errorf("amount must be greater than 0")
	}
	return amount, nil
}

// renderError turns pipeline and workflow errors into a message the
// user can act on.
func renderError(err error) string {
	switch {
	case errors.Is(err, api.ErrSessionExpired):
		return "Session expired, please log in again."
	case errors.Is(err, auction.ErrBidTooLow):
		return "Bid rejected: the amount must be higher than the current price."
	case errors.Is(err, auction.ErrAuctionClosed):
		return "Bid rejected: the auction is closed."
	case errors.Is(err, auction.ErrForbidden):
		return "Not allowed: only the owner or an admin may close this auction."
	case errors.Is(err, auction.ErrAlreadyClosed):
		return "The auction is already closed."
	}

	var reqErr *api.RequestError
	if errors.As(err, &reqErr) {
		if reqErr.Timeout {
			return "The server did not respond in time, try again."
		}
		return fmt.Sprintf("Server error (%d): %s", reqErr.StatusCode, reqErr.Detail())
	}

	return err.Error()
}

// formatAuction renders one auction for terminal output.
func formatAuction(a *models.Auction) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n", a.ID, a.Title)
	if a.Description != "" {
		fmt.Fprintf(&b, "  %s\n", a.Description)
	}
	fmt.Fprintf(&b, "  current price: %.2f  status: %s  created: %s",
		a.CurrentPrice, a.Status, a.CreatedAt.Format("2006-01-02 15:04"))
	return b.String()
}
