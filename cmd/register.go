package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/satheeshds/invoicing/logger"
	"github.com/satheeshds/invoicing/register"
	"github.com/spf13/cobra"
)

var (
	registerYear   int
	registerFormat string
	registerOut    string
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Work with the register of issued invoices",
}

var registerExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the issued invoices of a year",
	Long: `Export the issued and paid invoices of a year, built from their snapshots,
as an xlsx workbook or as an invoice_register table in a DuckDB database.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if registerFormat != "xlsx" && registerFormat != "duckdb" {
			return fmt.Errorf("unknown format %q (want xlsx or duckdb)", registerFormat)
		}
		out := registerOut
		if out == "" {
			out = fmt.Sprintf("register_%d.%s", registerYear, registerFormat)
		}
		ctx := cmd.Context()

		store, err := openStore(ctx, false)
		if err != nil {
			return err
		}
		defer store.Close()

		invoices, err := store.ListIssuedInvoices(ctx, registerYear)
		if err != nil {
			return err
		}
		entries, err := register.FromInvoices(invoices)
		if err != nil {
			return err
		}

		switch registerFormat {
		case "xlsx":
			f, err := os.Create(out)
			if err != nil {
				return err
			}
			if err := register.WriteXLSX(f, entries); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
		case "duckdb":
			if err := register.WriteDuckDB(ctx, out, entries); err != nil {
				return err
			}
		}

		log := logger.WithComponent("register")
		for _, sum := range register.Summarize(entries) {
			log.Info().
				Int("year", registerYear).
				Str("currency", sum.Currency).
				Int("invoices", sum.Count).
				Str("total", sum.Total.StringFixed(2)).
				Msg("register totals")
		}
		log.Info().
			Int("year", registerYear).
			Int("invoices", len(entries)).
			Str("out", out).
			Msg("register exported")
		return nil
	},
}

func init() {
	registerExportCmd.Flags().IntVar(&registerYear, "year", time.Now().Year(), "Issue year")
	registerExportCmd.Flags().StringVar(&registerFormat, "format", "xlsx", "Output format: xlsx or duckdb")
	registerExportCmd.Flags().StringVar(&registerOut, "out", "", "Output path (default register_<year>.<format>)")
	registerCmd.AddCommand(registerExportCmd)
	rootCmd.AddCommand(registerCmd)
}
