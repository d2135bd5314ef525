package main

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"affiliate-escrow/internal/config"
)

// main is the entry point of the affiliate escrow service. Subcommands
// serve the API (the default), apply database migrations or write demo
// seed data. Configuration always comes from environment variables.
func main() {
	rootCmd := &cobra.Command{
		Use:           "affiliate-escrow",
		Short:         "NFT affiliate escrow and settlement service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	serve := serveCommand()
	rootCmd.AddCommand(serve, migrateCommand(), seedCommand())
	rootCmd.RunE = serve.RunE
	rootCmd.Flags().AddFlagSet(serve.Flags())

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		var sigErr signalError
		if !errors.As(err, &sigErr) {
			slog.Error("command failed", slog.Any("error", err))
		}
		os.Exit(exitCode(err))
	}
}

// loadConfig reads the configuration and builds the process logger.
func loadConfig() (config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, nil, err
	}
	logger := cfg.Log.NewLogger(os.Stdout).With(slog.String("env", cfg.Env))
	return cfg, logger, nil
}
