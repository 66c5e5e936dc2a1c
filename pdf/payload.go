// Package pdf builds the printable view of an invoice and renders it.
package pdf

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/satheeshds/invoicing/models"
	"github.com/satheeshds/invoicing/money"
	"github.com/shopspring/decimal"
)

// ErrMissingSnapshot matches every MissingSnapshotError.
var ErrMissingSnapshot = errors.New("missing snapshot")

// MissingSnapshotError reports a finalized invoice without one of its frozen
// fields. It means the stored row is corrupt.
type MissingSnapshotError struct {
	Field     string
	InvoiceID int
}

func (e *MissingSnapshotError) Error() string {
	return fmt.Sprintf("invoice %d: missing snapshot field %s", e.InvoiceID, e.Field)
}

func (e *MissingSnapshotError) Is(target error) bool {
	return target == ErrMissingSnapshot
}

// PayloadLine is one printed line.
type PayloadLine struct {
	Index       int             `json:"index"`
	Description string          `json:"description"`
	Qty         decimal.Decimal `json:"qty"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	DiscountPct decimal.Decimal `json:"discount_pct"`
	Total       decimal.Decimal `json:"total"`
}

// Payload is everything the document shows.
type Payload struct {
	InvoiceNumber       string               `json:"invoice_number"`
	Status              models.InvoiceStatus `json:"status"`
	ClientName          string               `json:"client_name"`
	ClientTaxID         string               `json:"client_tax_id"`
	IssueDate           time.Time            `json:"issue_date"`
	DueDate             time.Time            `json:"due_date"`
	Currency            string               `json:"currency"`
	IGIRate             decimal.Decimal      `json:"igi_rate"`
	Totals              money.Totals         `json:"totals"`
	Lines               []PayloadLine        `json:"lines"`
	ShowIGIExemptFooter bool                 `json:"show_igi_exempt_footer"`
}

// BuildPayload selects the figures to print. Issued and paid invoices are
// read from their snapshot only; drafts are computed from the current lines
// and client (inv.Client, when loaded). Printed lines always come from lines.
func BuildPayload(inv *models.Invoice, lines []models.InvoiceLine) (*Payload, error) {
	sorted := append([]models.InvoiceLine(nil), lines...)
	models.SortLines(sorted)

	p := &Payload{
		InvoiceNumber: strconv.Itoa(inv.ID),
		Status:        inv.Status,
		IssueDate:     inv.IssueDate,
		DueDate:       inv.DueDate,
		Currency:      inv.Currency,
	}
	if inv.InvoiceNumber != nil {
		p.InvoiceNumber = *inv.InvoiceNumber
	}

	if inv.IsFinalized() {
		if err := requireSnapshot(inv); err != nil {
			return nil, err
		}
		p.ClientName = *inv.ClientNameSnapshot
		p.ClientTaxID = *inv.ClientTaxIDSnapshot
		p.IGIRate = *inv.IGIRateSnapshot
		p.Totals = money.FromSnapshot(*inv.SubtotalSnapshot, *inv.IGIAmountSnapshot, *inv.TotalSnapshot)
	} else {
		if inv.Client != nil {
			p.ClientName = inv.Client.Name
			if inv.Client.TaxID != nil {
				p.ClientTaxID = *inv.Client.TaxID
			}
		}
		p.IGIRate = inv.IGIRate
		p.Totals = money.ComputeTotals(inv.IGIRate, sorted)
	}
	p.ShowIGIExemptFooter = p.IGIRate.IsZero()

	for i, la := range money.LineAmounts(sorted) {
		p.Lines = append(p.Lines, PayloadLine{
			Index:       i + 1,
			Description: la.Line.Description,
			Qty:         la.Line.Qty,
			UnitPrice:   la.Line.UnitPrice,
			DiscountPct: la.Line.DiscountPct,
			Total:       la.Total,
		})
	}
	return p, nil
}

func requireSnapshot(inv *models.Invoice) error {
	required := []struct {
		field   string
		missing bool
	}{
		{"number", inv.Number == nil},
		{"invoice_number", inv.InvoiceNumber == nil},
		{"client_name_snapshot", inv.ClientNameSnapshot == nil},
		{"client_tax_id_snapshot", inv.ClientTaxIDSnapshot == nil},
		{"subtotal_snapshot", inv.SubtotalSnapshot == nil},
		{"igi_amount_snapshot", inv.IGIAmountSnapshot == nil},
		{"total_snapshot", inv.TotalSnapshot == nil},
		{"igi_rate_snapshot", inv.IGIRateSnapshot == nil},
		{"payment_terms_days_applied", inv.PaymentTermsDaysApplied == nil},
	}
	for _, r := range required {
		if r.missing {
			return &MissingSnapshotError{Field: r.field, InvoiceID: inv.ID}
		}
	}
	return nil
}
