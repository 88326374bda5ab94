package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"crowdfund/internal/config"
)

const programName = "crowdfund"

// main is the entry point of the crowdfund service. Configuration comes from
// the environment and is loaded once before any subcommand runs. Without a
// subcommand the HTTP server is started.
func main() {
	var (
		cfg    config.Config
		logger *slog.Logger
	)

	rootCmd := &cobra.Command{
		Use:           programName,
		Short:         "Crowdfunding ledger with highest-donor awards",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			if cfg, err = config.Load(); err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			logger = cfg.Log.New(os.Stdout, cfg.Env).With(slog.String("component", programName))
			slog.SetDefault(logger)
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context(), cfg, logger)
		},
	}

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Deploy the ledger if needed and serve the HTTP API",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return serve(cmd.Context(), cfg, logger)
			},
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Apply database migrations and exit",
			RunE: func(_ *cobra.Command, _ []string) error {
				return migrate(cfg, logger)
			},
		},
		&cobra.Command{
			Use:   "seed",
			Short: "Deploy the ledger if needed and fill it with demo campaigns",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return seed(cmd.Context(), cfg, logger)
			},
		},
	)

	if err := rootCmd.Execute(); err != nil {
		slog.Error("command failed", slog.Any("error", err))
		os.Exit(1)
	}
}
