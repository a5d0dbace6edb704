package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runList(ctx context.Context) error {
	auctions, err := c.auctions.List(ctx)
	if err != nil {
		c.io.Println(renderError(err))
		return err
	}

	if len(auctions) == 0 {
		c.io.Println("No open auctions.")
		return nil
	}

	for i := range auctions {
		c.io.Println(formatAuction(&auctions[i]))
	}
	return nil
}

func (c *Cli) runGet(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: get <auction-id>")
	}

	auction, err := c.auctions.Get(ctx, args[0])
	if err != nil {
		c.io.Println(renderError(err))
		return err
	}

	c.io.Println(formatAuction(auction))
	return nil
}

func (c *Cli) runCreate(ctx context.Context) error {
	title, err := c.io.ReadInput("Title: ")
	if err != nil {
		return err
	}
	description, err := c.io.ReadInput("Description (optional): ")
	if err != nil {
		return err
	}
	priceRaw, err := c.io.ReadInput("Starting price: ")
	if err != nil {
		return err
	}
	price, err := parseAmount(priceRaw)
	if err != nil {
		return err
	}

	auction, err := c.auctions.Create(ctx, title, description, price)
	if err != nil {
		c.io.Println(renderError(err))
		return err
	}

	c.io.Printf("Auction created:\n%s\n", formatAuction(auction))
	return nil
}
