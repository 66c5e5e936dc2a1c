package cmd

import (
	"github.com/spf13/cobra"
)

var migrateStatus bool

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore(cmd.Context(), false)
		if err != nil {
			return err
		}
		defer store.Close()

		if migrateStatus {
			return store.MigrationStatus(cmd.Context())
		}
		return store.Migrate(cmd.Context())
	},
}

func init() {
	migrateCmd.Flags().BoolVar(&migrateStatus, "status", false, "Show migration status instead of migrating")
	rootCmd.AddCommand(migrateCmd)
}
