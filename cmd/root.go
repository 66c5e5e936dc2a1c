package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/satheeshds/invoicing/config"
	"github.com/satheeshds/invoicing/db"
	"github.com/satheeshds/invoicing/logger"
	"github.com/spf13/cobra"
)

var version = "1.0.0"

// cfg is loaded before any subcommand runs.
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "invoicing",
	Short: "Invoicing service - clients, invoices and year-scoped invoice numbers",
	Long: `Invoicing keeps clients and the company profile, edits draft invoices,
issues them with gapless per-year numbers (TC2601, TC2602, ...) and renders
issued invoices and the yearly register from their frozen snapshots.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return err
		}
		if err := logger.Setup(c.GetLoggerConfig()); err != nil {
			return fmt.Errorf("initializing logger: %w", err)
		}
		cfg = c
		return nil
	},
}

func Execute() {
	log := logger.WithComponent("cmd")

	if err := rootCmd.Execute(); err != nil {
		log.Error().
			Err(err).
			Msg("Command execution failed")
		fmt.Fprintf(os.Stderr, "Error executing command: %v\n", err)
		os.Exit(1)
	}
}

// openStore connects to the configured database, migrating it first when
// migrate is set.
func openStore(ctx context.Context, migrate bool) (*db.Store, error) {
	store, err := db.Open(ctx, cfg.DatabaseURL, cfg.DBMaxConns)
	if err != nil {
		return nil, err
	}
	if migrate {
		if err := store.Migrate(ctx); err != nil {
			store.Close()
			return nil, err
		}
	}
	return store, nil
}
