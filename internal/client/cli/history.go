package cli

import (
	"context"
)

func (c *Cli) runHistory(ctx context.Context) error {
	history, err := c.client.AuctionHistory(ctx)
	if err != nil {
		c.io.Println(renderError(err))
		return err
	}

	if len(history) == 0 {
		c.io.Println("No closed auctions.")
		return nil
	}

	for _, h := range history {
		winner := "no bids"
		if h.WinnerID != nil {
			winner = *h.WinnerID
		}
		price := 0.0
		if h.FinalPrice != nil {
			price = *h.FinalPrice
		}
		c.io.Printf("%s  %s\n  closed: %s  winner: %s  final price: %.2f\n",
			h.ID, h.Title, h.ClosedAt.Format("2006-01-02 15:04"), winner, price)
	}
	return nil
}
