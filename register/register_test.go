package register

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/satheeshds/invoicing/models"
	"github.com/satheeshds/invoicing/pdf"
	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func issued(id, n int, client, subtotal, igi, total string) models.Invoice {
	code := fmt.Sprintf("TC26%02d", n)
	name, taxID := client, "TAX-"+client
	st, ig, tt, rate := dec(subtotal), dec(igi), dec(total), dec("4.5")
	terms := 30
	return models.Invoice{
		ID:                  id,
		Status:              models.InvoiceStatusIssued,
		IssueDate:           time.Date(2026, time.Month(n), 10, 0, 0, 0, 0, time.UTC),
		DueDate:             time.Date(2026, time.Month(n+1), 9, 0, 0, 0, 0, time.UTC),
		Currency:            "EUR",
		IGIRate:             dec("9.5"),
		Number:              &n,
		InvoiceNumber:       &code,
		ClientNameSnapshot:  &name,
		ClientTaxIDSnapshot: &taxID,
		SubtotalSnapshot:    &st,
		IGIAmountSnapshot:   &ig,
		TotalSnapshot:       &tt,
		IGIRateSnapshot:     &rate,

		PaymentTermsDaysApplied: &terms,
	}
}

func sample() []models.Invoice {
	paid := issued(3, 2, "Beta", "200", "9", "209")
	paid.Status = models.InvoiceStatusPaid
	return []models.Invoice{
		issued(1, 1, "Acme", "100", "4.5", "104.5"),
		{ID: 2, Status: models.InvoiceStatusDraft, Currency: "EUR"},
		paid,
	}
}

func TestFromInvoices(t *testing.T) {
	entries, err := FromInvoices(sample())
	if err != nil {
		t.Fatalf("FromInvoices: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2 (draft skipped)", len(entries))
	}
	first := entries[0]
	if first.InvoiceNumber != "TC2601" || first.Number != 1 || first.ClientName != "Acme" || first.ClientTaxID != "TAX-Acme" {
		t.Errorf("first entry = %+v", first)
	}
	if !first.IGIRate.Equal(dec("4.5")) {
		t.Errorf("igi rate = %s, want snapshot 4.5", first.IGIRate)
	}
	if entries[1].Status != models.InvoiceStatusPaid {
		t.Errorf("second status = %s, want paid", entries[1].Status)
	}

	sums := Summarize(entries)
	if len(sums) != 1 {
		t.Fatalf("summaries = %+v, want one currency", sums)
	}
	sum := sums[0]
	if sum.Currency != "EUR" || sum.Count != 2 || !sum.Subtotal.Equal(dec("300")) || !sum.IGI.Equal(dec("13.5")) || !sum.Total.Equal(dec("313.5")) {
		t.Errorf("summary = %+v", sum)
	}
}

func TestSummarize_PerCurrency(t *testing.T) {
	usd := issued(4, 3, "Gamma", "50", "0", "50")
	usd.Currency = "USD"
	invoices := append(sample(), usd)

	entries, err := FromInvoices(invoices)
	if err != nil {
		t.Fatalf("FromInvoices: %v", err)
	}
	sums := Summarize(entries)
	if len(sums) != 2 {
		t.Fatalf("summaries = %+v, want EUR and USD", sums)
	}
	if sums[0].Currency != "EUR" || sums[0].Count != 2 || !sums[0].Total.Equal(dec("313.5")) {
		t.Errorf("EUR summary = %+v", sums[0])
	}
	if sums[1].Currency != "USD" || sums[1].Count != 1 || !sums[1].Total.Equal(dec("50")) {
		t.Errorf("USD summary = %+v", sums[1])
	}
	if len(Summarize(nil)) != 0 {
		t.Errorf("empty register has totals")
	}
}

func TestFromInvoices_MissingSnapshot(t *testing.T) {
	invoices := sample()
	invoices[2].TotalSnapshot = nil
	if _, err := FromInvoices(invoices); !errors.Is(err, pdf.ErrMissingSnapshot) {
		t.Fatalf("err = %v, want ErrMissingSnapshot", err)
	}

	invoices = sample()
	invoices[0].Number = nil
	var mse *pdf.MissingSnapshotError
	if _, err := FromInvoices(invoices); !errors.As(err, &mse) || mse.Field != "number" {
		t.Fatalf("err = %v, want missing number", err)
	}
}
