package register

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/duckdb/duckdb-go/v2"
	"github.com/satheeshds/invoicing/models"
)

const createRegisterTable = `
CREATE OR REPLACE TABLE invoice_register (
	invoice_number VARCHAR PRIMARY KEY,
	number         INTEGER NOT NULL,
	issue_date     DATE NOT NULL,
	due_date       DATE NOT NULL,
	status         VARCHAR NOT NULL,
	client_name    VARCHAR NOT NULL,
	client_tax_id  VARCHAR NOT NULL,
	currency       VARCHAR NOT NULL,
	igi_rate       DECIMAL(5,2) NOT NULL,
	subtotal       DECIMAL(14,2) NOT NULL,
	igi_amount     DECIMAL(14,2) NOT NULL,
	total          DECIMAL(14,2) NOT NULL
)`

const insertRegisterRow = `
INSERT INTO invoice_register VALUES (
	?, ?, ?::DATE, ?::DATE, ?, ?, ?, ?, ?::DECIMAL(5,2), ?::DECIMAL(14,2), ?::DECIMAL(14,2), ?::DECIMAL(14,2)
)`

// WriteDuckDB writes the entries to an invoice_register table in the DuckDB
// database at path, replacing any previous register there.
func WriteDuckDB(ctx context.Context, path string, entries []Entry) error {
	db, err := sql.Open("duckdb", path)
	if err != nil {
		return fmt.Errorf("opening duckdb %s: %w", path, err)
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, createRegisterTable); err != nil {
		return fmt.Errorf("creating register table: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx, insertRegisterRow)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, e := range entries {
		_, err := stmt.ExecContext(ctx,
			e.InvoiceNumber,
			e.Number,
			e.IssueDate.Format(models.DateLayout),
			e.DueDate.Format(models.DateLayout),
			string(e.Status),
			e.ClientName,
			e.ClientTaxID,
			e.Currency,
			e.IGIRate.String(),
			e.Subtotal.StringFixed(2),
			e.IGI.StringFixed(2),
			e.Total.StringFixed(2),
		)
		if err != nil {
			return fmt.Errorf("writing %s: %w", e.InvoiceNumber, err)
		}
	}
	return tx.Commit()
}
