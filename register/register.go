// Package register produces the book of issued invoices for a year. Every
// figure comes from the invoice snapshots, never from live lines.
package register

import (
	"sort"
	"time"

	"github.com/satheeshds/invoicing/models"
	"github.com/satheeshds/invoicing/pdf"
	"github.com/shopspring/decimal"
)

// Entry is one issued or paid invoice in the register.
type Entry struct {
	InvoiceNumber string
	Number        int
	IssueDate     time.Time
	DueDate       time.Time
	Status        models.InvoiceStatus
	ClientName    string
	ClientTaxID   string
	Currency      string
	IGIRate       decimal.Decimal
	Subtotal      decimal.Decimal
	IGI           decimal.Decimal
	Total         decimal.Decimal
}

// Summary holds the column totals of the register entries in one currency.
type Summary struct {
	Currency string
	Count    int
	Subtotal decimal.Decimal
	IGI      decimal.Decimal
	Total    decimal.Decimal
}

// FromInvoices builds entries for the finalized invoices, skipping drafts.
// A finalized invoice with an incomplete snapshot fails the whole register.
func FromInvoices(invoices []models.Invoice) ([]Entry, error) {
	entries := make([]Entry, 0, len(invoices))
	for i := range invoices {
		inv := &invoices[i]
		if !inv.IsFinalized() {
			continue
		}
		p, err := pdf.BuildPayload(inv, nil)
		if err != nil {
			return nil, err
		}
		entries = append(entries, Entry{
			InvoiceNumber: p.InvoiceNumber,
			Number:        *inv.Number,
			IssueDate:     p.IssueDate,
			DueDate:       p.DueDate,
			Status:        p.Status,
			ClientName:    p.ClientName,
			ClientTaxID:   p.ClientTaxID,
			Currency:      p.Currency,
			IGIRate:       p.IGIRate,
			Subtotal:      p.Totals.Subtotal,
			IGI:           p.Totals.IGI,
			Total:         p.Totals.Total,
		})
	}
	return entries, nil
}

// Summarize adds up the entries per currency, ordered by currency code.
// Amounts in different currencies are never added together.
func Summarize(entries []Entry) []Summary {
	byCurrency := make(map[string]*Summary)
	for _, e := range entries {
		s, ok := byCurrency[e.Currency]
		if !ok {
			s = &Summary{Currency: e.Currency}
			byCurrency[e.Currency] = s
		}
		s.Count++
		s.Subtotal = s.Subtotal.Add(e.Subtotal)
		s.IGI = s.IGI.Add(e.IGI)
		s.Total = s.Total.Add(e.Total)
	}

	out := make([]Summary, 0, len(byCurrency))
	for _, s := range byCurrency {
		out = append(out, *s)
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Currency < out[b].Currency })
	return out
}
