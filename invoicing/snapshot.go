package invoicing

import (
	"github.com/satheeshds/invoicing/models"
	"github.com/satheeshds/invoicing/money"
	"github.com/shopspring/decimal"
)

// Snapshot is everything frozen onto an invoice when it is issued.
type Snapshot struct {
	Number           int
	InvoiceNumber    string
	ClientName       string
	ClientTaxID      string
	Subtotal         decimal.Decimal
	IGIAmount        decimal.Decimal
	Total            decimal.Decimal
	IGIRate          decimal.Decimal
	PaymentTermsDays int
}

// captureSnapshot computes the snapshot of a draft from its current lines,
// its client and the company defaults, under sequence number n.
func captureSnapshot(inv *models.Invoice, company *models.Company, n int) Snapshot {
	totals := money.ComputeTotals(inv.IGIRate, inv.Lines)
	snap := Snapshot{
		Number:           n,
		InvoiceNumber:    FormatInvoiceNumber(inv.IssueDate.Year(), n),
		Subtotal:         totals.Subtotal,
		IGIAmount:        totals.IGI,
		Total:            totals.Total,
		IGIRate:          inv.IGIRate,
		PaymentTermsDays: EffectiveTermsDays(inv.Client, company),
	}
	if inv.Client != nil {
		snap.ClientName = inv.Client.Name
		// A client without a tax id is frozen as an empty one so issued
		// invoices never carry a partial snapshot.
		if inv.Client.TaxID != nil {
			snap.ClientTaxID = *inv.Client.TaxID
		}
	}
	return snap
}

// apply writes the snapshot onto inv and marks it issued.
func (s Snapshot) apply(inv *models.Invoice) {
	inv.Status = models.InvoiceStatusIssued
	inv.Number = &s.Number
	inv.InvoiceNumber = &s.InvoiceNumber
	inv.ClientNameSnapshot = &s.ClientName
	inv.ClientTaxIDSnapshot = &s.ClientTaxID
	inv.SubtotalSnapshot = &s.Subtotal
	inv.IGIAmountSnapshot = &s.IGIAmount
	inv.TotalSnapshot = &s.Total
	inv.IGIRateSnapshot = &s.IGIRate
	inv.PaymentTermsDaysApplied = &s.PaymentTermsDays
}
