package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"sushitest/internal/cmd"
	"sushitest/internal/config"
	"sushitest/version"
)

func main() {
	// Load settings from ~/.sushitest/settings.json
	settings, err := config.LoadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load settings: %v\n", err)
		settings = &config.Settings{} // Use empty settings
	}

	// Interrupts cancel the running stage, which kills its process group
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Parse CLI arguments with Kong
	// Container is created in CLI.AfterApply() after logging is initialized
	var cli cmd.CLI
	cli.SetSettings(settings) // Set settings before parsing
	kctx := kong.Parse(&cli,
		kong.Name("sushitest"),
		kong.Description(version.Tagline),
		kong.Vars{
			"version": version.Info(),
		},
		kong.UsageOnError(),
		kong.Bind(&cli),
		kong.BindTo(ctx, (*context.Context)(nil)),
	)

	// Execute the selected command
	err = kctx.Run()
	if closeErr := cli.Close(); closeErr != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to close resources: %v\n", closeErr)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
