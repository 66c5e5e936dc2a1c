package register

import (
	"bytes"
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestWriteXLSX(t *testing.T) {
	entries, err := FromInvoices(sample())
	if err != nil {
		t.Fatalf("FromInvoices: %v", err)
	}
	var buf bytes.Buffer
	if err := WriteXLSX(&buf, entries); err != nil {
		t.Fatalf("WriteXLSX: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	defer f.Close()
	rows, err := f.GetRows(SheetName)
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("rows = %d, want header + 2 + totals", len(rows))
	}
	if rows[0][0] != "Invoice" || rows[1][0] != "TC2601" || rows[2][0] != "TC2602" {
		t.Errorf("first column = %q %q %q", rows[0][0], rows[1][0], rows[2][0])
	}
	if rows[1][4] != "Acme" || rows[1][1] != "2026-01-10" {
		t.Errorf("row 2 = %v", rows[1])
	}
	if rows[3][0] != "2 invoices" {
		t.Errorf("totals label = %q", rows[3][0])
	}
	total, err := f.GetCellValue(SheetName, "K4", excelize.Options{RawCellValue: true})
	if err != nil {
		t.Fatalf("GetCellValue: %v", err)
	}
	if total != "313.5" {
		t.Errorf("total cell = %q, want 313.5", total)
	}
}

func TestWriteXLSX_TotalsPerCurrency(t *testing.T) {
	usd := issued(4, 3, "Gamma", "50", "0", "50")
	usd.Currency = "USD"
	entries, err := FromInvoices(append(sample(), usd))
	if err != nil {
		t.Fatalf("FromInvoices: %v", err)
	}
	var buf bytes.Buffer
	if err := WriteXLSX(&buf, entries); err != nil {
		t.Fatalf("WriteXLSX: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	defer f.Close()

	tests := []struct {
		cell, want string
	}{
		{"A5", "2 invoices"},
		{"G5", "EUR"},
		{"K5", "313.5"},
		{"A6", "1 invoices"},
		{"G6", "USD"},
		{"K6", "50"},
	}
	for _, tt := range tests {
		got, err := f.GetCellValue(SheetName, tt.cell, excelize.Options{RawCellValue: true})
		if err != nil {
			t.Fatalf("GetCellValue(%s): %v", tt.cell, err)
		}
		if got != tt.want {
			t.Errorf("%s = %q, want %q", tt.cell, got, tt.want)
		}
	}
}

func TestWriteDuckDB(t *testing.T) {
	entries, err := FromInvoices(sample())
	if err != nil {
		t.Fatalf("FromInvoices: %v", err)
	}
	path := filepath.Join(t.TempDir(), "register.duckdb")
	ctx := context.Background()

	// Written twice: the second run replaces the first.
	for range 2 {
		if err := WriteDuckDB(ctx, path, entries); err != nil {
			t.Fatalf("WriteDuckDB: %v", err)
		}
	}

	db, err := sql.Open("duckdb", path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()

	var count int
	var total, firstClient string
	err = db.QueryRowContext(ctx, `
		SELECT COUNT(*), CAST(SUM(total) AS VARCHAR), MIN(client_name)
		FROM invoice_register`).Scan(&count, &total, &firstClient)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if count != 2 || total != "313.50" || firstClient != "Acme" {
		t.Errorf("register = %d rows, total %s, first client %s", count, total, firstClient)
	}
}
