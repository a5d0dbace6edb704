package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/jkowalski/auctionhub/internal/client/api"
	"github.com/jkowalski/auctionhub/internal/client/auction"
	"github.com/jkowalski/auctionhub/internal/client/auth"
	"github.com/jkowalski/auctionhub/internal/client/cli"
	"github.com/jkowalski/auctionhub/internal/client/iocli"
	"github.com/jkowalski/auctionhub/internal/client/storage/boltdb"
	"github.com/jkowalski/auctionhub/internal/config"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	configPath := flag.String("config", "", "Path to config file")
	serverURL := flag.String("server", "", "Server URL (overrides config)")
	dbPath := flag.String("db", "", "Path to local database (overrides config)")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	stdio := iocli.NewStdio()

	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage(stdio)
		os.Exit(1)
	}
	command := args[0]

	cfg := config.MustLoad(*configPath)
	if *serverURL != "" {
		cfg.Server.URL = *serverURL
	}
	if *dbPath != "" {
		cfg.Storage.Path = *dbPath
	}

	if cfg.Env == "local" {
		slog.SetLogLoggerLevel(slog.LevelWarn)
	}

	ctx := context.Background()

	boltStorage, err := boltdb.New(ctx, cfg.Storage.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			slog.Error("failed to close database", "error", err)
		}
	}()

	store := auth.NewStore(boltStorage)
	if err := store.Load(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load stored session: %v\n", err)
		os.Exit(1)
	}

	apiClient := api.NewClient(cfg.Server.URL, store, cfg.Server.Timeout)
	authService := auth.NewService(apiClient, store)
	auctionService := auction.NewService(apiClient)

	commands := cli.New(stdio, authService, auctionService, apiClient)
	if err := commands.Run(ctx, command, args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printVersion() {
	fmt.Printf("AuctionHub Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
