package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/jkowalski/auctionhub/internal/client/auction"
)

func (c *Cli) runBid(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: bid <auction-id> <amount>")
	}

	amount, err := parseAmount(args[1])
	if err != nil {
		return err
	}

	current, err := c.auctions.Get(ctx, args[0])
	if err != nil {
		c.io.Println(renderError(err))
		return err
	}

	bid, err := c.auctions.PlaceBid(ctx, current, amount)
	if err != nil {
		c.io.Println(renderError(err))
		// The rejection already resynchronized the auction, show the
		// price the bid actually lost to.
		if errors.Is(err, auction.ErrBidTooLow) {
			c.io.Printf("Current price is %.2f\n", current.CurrentPrice)
		}
		return err
	}

	c.io.Printf("Bid accepted: %.2f on %s at %s\n",
		bid.Amount, bid.AuctionID, bid.SubmittedAt.Format("15:04:05"))
	return nil
}

func (c *Cli) runClose(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: close <auction-id>")
	}

	actor, err := c.auth.Current(ctx)
	if err != nil {
		c.io.Println(renderError(err))
		return err
	}

	current, err := c.auctions.Get(ctx, args[0])
	if err != nil {
		c.io.Println(renderError(err))
		return err
	}

	result, err := c.auctions.Close(ctx, current, actor)
	if err != nil {
		c.io.Println(renderError(err))
		return err
	}

	if result.WinnerID == "" {
		c.io.Printf("Auction closed without bids, final price %.2f\n", result.FinalPrice)
	} else {
		c.io.Printf("Auction closed, won by %s at %.2f\n", result.WinnerID, result.FinalPrice)
	}
	return nil
}
