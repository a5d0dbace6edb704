// Package auction drives the auction lifecycle — create, bid, close —
// through the authenticated API client and enforces the client-side
// bid-validation contract.
package auction

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	clientapi "github.com/jkowalski/auctionhub/internal/client/api"
	"github.com/jkowalski/auctionhub/internal/models"
	"github.com/jkowalski/auctionhub/internal/validation"
	"github.com/jkowalski/auctionhub/pkg/api"
)

// Client is the slice of the API client the workflow needs.
type Client interface {
	ListAuctions(ctx context.Context) ([]api.AuctionResponse, error)
	GetAuction(ctx context.Context, auctionID string) (*api.AuctionResponse, error)
	CreateAuction(ctx context.Context, req api.CreateAuctionRequest) (*api.AuctionResponse, error)
	PlaceBid(ctx context.Context, auctionID string, amount float64) (*api.BidResponse, error)
	CloseAuction(ctx context.Context, auctionID string) (*api.CloseAuctionResponse, error)
}

// Service implements the auction bid workflow.
type Service struct {
	client Client
}

// NewService creates the auction workflow service.
func NewService(client Client) *Service {
	return &Service{client: client}
}

// List returns all open auctions.
func (s *Service) List(ctx context.Context) ([]models.Auction, error) {
	resp, err := s.client.ListAuctions(ctx)
	if err != nil {
		return nil, err
	}

	auctions := make([]models.Auction, 0, len(resp))
	for _, a := range resp {
		auctions = append(auctions, fromAPI(&a))
	}
	return auctions, nil
}

// Get returns a single auction by id.
func (s *Service) Get(ctx context.Context, auctionID string) (*models.Auction, error) {
	resp, err := s.client.GetAuction(ctx, auctionID)
	if err != nil {
		return nil, err
	}
	auction := fromAPI(resp)
	return &auction, nil
}

// Create lists a new auction after local validation.
func (s *Service) Create(ctx context.Context, title, description string, startingPrice float64) (*models.Auction, error) {
	if err := validation.ValidateTitle(title); err != nil {
		return nil, fmt.Errorf("invalid title: %w", err)
	}
	if err := validation.ValidateStartingPrice(startingPrice); err != nil {
		return nil, fmt.Errorf("invalid starting price: %w", err)
	}

	resp, err := s.client.CreateAuction(ctx, api.CreateAuctionRequest{
		Title:         title,
		Description:   description,
		StartingPrice: startingPrice,
	})
	if err != nil {
		return nil, err
	}

	auction := fromAPI(resp)
	return &auction, nil
}

// PlaceBid validates and submits a bid. A bid is valid only on an active
// auction and only for an amount strictly above the current price: a bid
// equal to the price does not raise it and is rejected as too low.
//
// The local price is advisory. On acceptance the auction adopts the
// server-confirmed amount; on a server-side rejection the auction is
// resynchronized from a fresh read before the typed error is returned,
// so the caller never keeps an optimistic price the server refused.
func (s *Service) PlaceBid(ctx context.Context, auction *models.Auction, amount float64) (*models.Bid, error) {
	if !auction.IsActive() {
		return nil, ErrAuctionClosed
	}
	if amount <= auction.CurrentPrice {
		return nil, ErrBidTooLow
	}

	resp, err := s.client.PlaceBid(ctx, auction.ID, amount)
	if err != nil {
		var reqErr *clientapi.RequestError
		if errors.As(err, &reqErr) {
			s.resync(ctx, auction)
			switch reqErr.StatusCode {
			case http.StatusBadRequest:
				// Another bidder got there first.
				return nil, ErrBidTooLow
			case http.StatusNotFound, http.StatusConflict:
				auction.Close()
				return nil, ErrAuctionClosed
			}
		}
		return nil, err
	}

	auction.CurrentPrice = resp.Amount

	return &models.Bid{
		ID:          resp.ID,
		AuctionID:   resp.AuctionID,
		UserID:      resp.UserID,
		Amount:      resp.Amount,
		SubmittedAt: resp.Timestamp,
	}, nil
}

// CloseResult reports the outcome of a successful close.
type CloseResult struct {
	WinnerID   string // empty when the auction closed without bids
	FinalPrice float64
}

// Close transitions an auction from active to closed. Allowed only for
// the auction owner or an admin, and only once; the transition is
// irreversible.
func (s *Service) Close(ctx context.Context, auction *models.Auction, actor *models.Session) (*CloseResult, error) {
	if actor == nil || (!actor.IsAdmin() && actor.UserID != auction.OwnerID) {
		return nil, ErrForbidden
	}
	if !auction.IsActive() {
		return nil, ErrAlreadyClosed
	}

	resp, err := s.client.CloseAuction(ctx, auction.ID)
	if err != nil {
		var reqErr *clientapi.RequestError
		if errors.As(err, &reqErr) {
			switch reqErr.StatusCode {
			case http.StatusForbidden:
				return nil, ErrForbidden
			case http.StatusNotFound:
				// Closed by someone else between our read and this call.
				auction.Close()
				return nil, ErrAlreadyClosed
			}
		}
		return nil, err
	}

	auction.Close()
	auction.CurrentPrice = resp.FinalPrice

	result := &CloseResult{FinalPrice: resp.FinalPrice}
	if resp.WinnerID != nil {
		result.WinnerID = *resp.WinnerID
	}
	return result, nil
}

// resync replaces the local auction state with a fresh server read.
// Best effort: a failed read leaves the stale copy in place, the next
// successful read fixes it.
func (s *Service) resync(ctx context.Context, auction *models.Auction) {
	fresh, err := s.client.GetAuction(ctx, auction.ID)
	if err != nil {
		var reqErr *clientapi.RequestError
		if errors.As(err, &reqErr) && reqErr.StatusCode == http.StatusNotFound {
			auction.Close()
			return
		}
		slog.Debug("auction resync failed", "auction_id", auction.ID, "error", err)
		return
	}

	updated := fromAPI(fresh)
	*auction = updated
}

// fromAPI converts a wire auction to the client model. Everything the
// server lists is open; closed auctions only exist in history.
func fromAPI(a *api.AuctionResponse) models.Auction {
	return models.Auction{
		ID:           a.ID,
		Title:        a.Title,
		Description:  a.Description,
		OwnerID:      a.OwnerID,
		CurrentPrice: a.CurrentPrice,
		CreatedAt:    a.CreatedAt,
		Status:       models.AuctionActive,
	}
}
