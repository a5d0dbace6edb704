package api

import "time"

// CreateAuctionRequest is the payload for listing a new auction.
// The server takes starting_price as the initial current price.
type CreateAuctionRequest struct {
	Title         string  `json:"title"`
	Description   string  `json:"description,omitempty"`
	StartingPrice float64 `json:"starting_price"`
}

// AuctionResponse is an auction as returned by the server.
// Only open auctions are listed; a closed auction disappears from
// /auctions and is served from the history report instead.
type AuctionResponse struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	OwnerID      string    `json:"owner_id"`
	CurrentPrice float64   `json:"current_price"`
	CreatedAt    time.Time `json:"created_at"`
}

// BidRequest is the payload for placing a bid on an auction.
type BidRequest struct {
	Amount float64 `json:"amount"`
}

// BidResponse is an accepted bid. Rejected bids are never materialized,
// the server reports them as plain errors.
type BidResponse struct {
	ID        string    `json:"id"`
	AuctionID string    `json:"auction_id"`
	UserID    string    `json:"user_id"`
	Amount    float64   `json:"amount"`
	Timestamp time.Time `json:"timestamp"`
}

// CloseAuctionResponse reports the outcome of closing an auction.
// WinnerID is nil when the auction closed without a single bid.
type CloseAuctionResponse struct {
	Message    string  `json:"message"`
	WinnerID   *string `json:"winner_id"`
	FinalPrice float64 `json:"final_price"`
}

// AuctionHistoryResponse is a closed auction from the history report.
type AuctionHistoryResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	OwnerID     string    `json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
	ClosedAt    time.Time `json:"closed_at"`
	WinnerID    *string   `json:"winner_id"`
	FinalPrice  *float64  `json:"final_price"`
}
