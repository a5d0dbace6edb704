package models

import "time"

// AuctionStatus represents the lifecycle state of an auction.
type AuctionStatus string

const (
	AuctionActive AuctionStatus = "active"
	AuctionClosed AuctionStatus = "closed"
)

// Auction is the client-side view of an auction. CurrentPrice is advisory
// between reads: the server decides which bids are accepted, so the local
// value is only trusted until the next authoritative response.
type Auction struct {
	ID           string
	Title        string
	Description  string
	OwnerID      string
	CurrentPrice float64
	CreatedAt    time.Time
	Status       AuctionStatus
}

// IsActive reports whether the auction still accepts bids.
func (a *Auction) IsActive() bool {
	return a.Status == AuctionActive
}

// Close marks the auction as closed. The transition is irreversible.
func (a *Auction) Close() {
	a.Status = AuctionClosed
}

// Bid is an accepted bid on an auction. Immutable once accepted.
type Bid struct {
	ID          string
	AuctionID   string
	UserID      string
	Amount      float64
	SubmittedAt time.Time
}
