// ABOUTME: Entry point for the studio back-office CLI
// ABOUTME: Routes commands against the hosted store
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/venaworks/studiodesk/cli"
	"github.com/venaworks/studiodesk/config"
	"github.com/venaworks/studiodesk/remote"
	"github.com/venaworks/studiodesk/seed"
	"github.com/venaworks/studiodesk/store"
)

const version = "0.1.0"

func main() {
	showVersion := flag.Bool("version", false, "Show version and exit")
	_ = flag.CommandLine.Parse(os.Args[1:])

	if *showVersion {
		fmt.Printf("studiodesk version %s\n", version)
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(0)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger := cfg.Logger()
	slog.SetDefault(logger)

	ctx := context.Background()
	command := args[0]
	commandArgs := args[1:]

	if err := run(ctx, cfg, logger, command, commandArgs); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger, command string, args []string) error {
	databaseURL, err := cfg.RequireDatabaseURL()
	if err != nil {
		return err
	}

	client, err := remote.Open(ctx, databaseURL, logger)
	if err != nil {
		return err
	}
	defer client.Close()

	switch command {
	case "init":
		if err := client.InitSchema(ctx); err != nil {
			return err
		}
		fmt.Println("✓ Schema initialized")
		return nil
	case "seed":
		if err := client.InitSchema(ctx); err != nil {
			return err
		}
		if err := seed.Import(ctx, client, logger); err != nil {
			return err
		}
		fmt.Println("✓ Demo data imported")
		return nil
	}

	st := store.New(client, logger)
	switch command {
	case "status":
		return cli.StatusCommand(ctx, st, args)
	case "add-client":
		return cli.AddClientCommand(ctx, st, args)
	case "list-clients":
		return cli.ListClientsCommand(ctx, st, args)
	case "add-lead":
		return cli.AddLeadCommand(ctx, st, args)
	case "list-leads":
		return cli.ListLeadsCommand(ctx, st, args)
	case "list-projects":
		return cli.ListProjectsCommand(ctx, st, args)
	default:
		printUsage()
		return fmt.Errorf("unknown command: %s", command)
	}
}

func printUsage() {
	fmt.Println("studiodesk - studio back-office over a hosted store")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  studiodesk <command> [flags]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  init           Create remote tables")
	fmt.Println("  seed           Import demo data (idempotent)")
	fmt.Println("  status         Load all collections and report counts")
	fmt.Println("  add-client     Create a client (--name required)")
	fmt.Println("  list-clients   List clients, newest first")
	fmt.Println("  add-lead       Create a lead (--name required)")
	fmt.Println("  list-leads     List leads, newest first")
	fmt.Println("  list-projects  List projects with revision counts")
	fmt.Println()
	fmt.Println("Environment:")
	fmt.Println("  STUDIODESK_DATABASE_URL  Postgres connection string (required)")
	fmt.Println("  STUDIODESK_LOG_LEVEL     debug|info|warn|error (default info)")
}
