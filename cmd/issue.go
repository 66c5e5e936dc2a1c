package cmd

import (
	"fmt"
	"strconv"

	"github.com/satheeshds/invoicing/invoicing"
	"github.com/spf13/cobra"
)

var issueCmd = &cobra.Command{
	Use:   "issue <invoice-id>",
	Short: "Issue a draft invoice",
	Long: `Issue a draft invoice: assign the next number of its issue year and freeze
the client identity and totals. Issuing an already issued invoice prints it
unchanged.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid invoice id %q", args[0])
		}
		store, err := openStore(cmd.Context(), cfg.AutoMigrate)
		if err != nil {
			return err
		}
		defer store.Close()

		inv, err := invoicing.NewService(store).Issue(cmd.Context(), id)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s %s\n",
			*inv.InvoiceNumber, *inv.ClientNameSnapshot, inv.TotalSnapshot.StringFixed(2), inv.Currency)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(issueCmd)
}
