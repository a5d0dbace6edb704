// Package cli implements the auctionhub commands on top of the auth and
// auction services.
package cli

import (
	"context"
	"fmt"

	"github.com/jkowalski/auctionhub/internal/client/api"
	"github.com/jkowalski/auctionhub/internal/client/auction"
	"github.com/jkowalski/auctionhub/internal/client/auth"
	"github.com/jkowalski/auctionhub/internal/client/iocli"
)

// Cli dispatches commands to the underlying services.
type Cli struct {
	io       iocli.IO
	auth     *auth.Service
	auctions *auction.Service
	client   *api.Client
}

// New creates the command dispatcher.
func New(io iocli.IO, authSvc *auth.Service, auctionSvc *auction.Service, client *api.Client) *Cli {
	return &Cli{
		io:       io,
		auth:     authSvc,
		auctions: auctionSvc,
		client:   client,
	}
}

// Run executes a single command.
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "register":
		return c.runRegister(ctx)
	case "login":
		return c.runLogin(ctx)
	case "logout":
		return c.runLogout(ctx)
	case "status":
		return c.runStatus(ctx)
	case "auctions":
		return c.runList(ctx)
	case "get":
		return c.runGet(ctx, args)
	case "create":
		return c.runCreate(ctx)
	case "bid":
		return c.runBid(ctx, args)
	case "close":
		return c.runClose(ctx, args)
	case "history":
		return c.runHistory(ctx)
	default:
		PrintUsage(c.io)
		return fmt.Errorf("unknown command: %s", command)
	}
}

// PrintUsage prints the command overview.
func PrintUsage(io iocli.IO) {
	io.Println("Usage: auctionhub [flags] <command> [args]")
	io.Println("")
	io.Println("Commands:")
	io.Println("  register              Create a new account")
	io.Println("  login                 Log in and store the session")
	io.Println("  logout                Drop the stored session")
	io.Println("  status                Show the current session")
	io.Println("  auctions              List open auctions")
	io.Println("  get <auction-id>      Show a single auction")
	io.Println("  create                List a new auction")
	io.Println("  bid <auction-id> <amount>")
	io.Println("                        Place a bid")
	io.Println("  close <auction-id>    Close an auction you own")
	io.Println("  history               Closed-auction history (admin)")
}
