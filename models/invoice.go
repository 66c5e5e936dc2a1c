package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the wire format for invoice dates.
const DateLayout = "2006-01-02"

// DefaultCurrency is applied when an invoice is created without a currency.
const DefaultCurrency = "EUR"

type InvoiceStatus string

const (
	InvoiceStatusDraft  InvoiceStatus = "draft"
	InvoiceStatusIssued InvoiceStatus = "issued"
	InvoiceStatusPaid   InvoiceStatus = "paid"
)

// Invoice is a receivable invoice to a client.
//
// Drafts carry no snapshot. Issuing an invoice fills every snapshot field at
// once and they are never written again; read paths for issued and paid
// invoices trust them instead of the live client and lines.
type Invoice struct {
	ID        int             `json:"id"`
	Status    InvoiceStatus   `json:"status"`
	IssueDate time.Time       `json:"issue_date"`
	DueDate   time.Time       `json:"due_date"`
	ClientID  int             `json:"client_id"`
	Currency  string          `json:"currency"`
	IGIRate   decimal.Decimal `json:"igi_rate"`
	Notes     *string         `json:"notes"`

	// Snapshot, set on issue.
	Number                  *int             `json:"number"`
	InvoiceNumber           *string          `json:"invoice_number"`
	ClientNameSnapshot      *string          `json:"client_name_snapshot"`
	ClientTaxIDSnapshot     *string          `json:"client_tax_id_snapshot"`
	SubtotalSnapshot        *decimal.Decimal `json:"subtotal_snapshot"`
	IGIAmountSnapshot       *decimal.Decimal `json:"igi_amount_snapshot"`
	TotalSnapshot           *decimal.Decimal `json:"total_snapshot"`
	IGIRateSnapshot         *decimal.Decimal `json:"igi_rate_snapshot"`
	PaymentTermsDaysApplied *int             `json:"payment_terms_days_applied"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Loaded relations
	Lines  []InvoiceLine `json:"lines,omitempty"`
	Client *Client       `json:"client,omitempty"`
}

// IsFinalized reports whether the invoice has left the draft state.
func (i *Invoice) IsFinalized() bool {
	return i.Status == InvoiceStatusIssued || i.Status == InvoiceStatusPaid
}

// InvoiceInput is used for creating invoices and editing draft headers.
type InvoiceInput struct {
	ClientID  int             `json:"client_id" validate:"required,gt=0"`
	IssueDate string          `json:"issue_date" validate:"omitempty,datetime=2006-01-02"`
	Currency  string          `json:"currency" validate:"max=10"`
	IGIRate   decimal.Decimal `json:"igi_rate" validate:"gte=0,lte=100"`
	Notes     *string         `json:"notes" validate:"omitempty,max=500"`
}

func (i *InvoiceInput) Validate() string {
	i.IssueDate = strings.TrimSpace(i.IssueDate)
	i.Currency = strings.ToUpper(strings.TrimSpace(i.Currency))
	if i.Currency == "" {
		i.Currency = DefaultCurrency
	}
	i.Notes = trimOptional(i.Notes)
	return validateStruct(i)
}

// IssueDateOr parses the input issue date, falling back to today's date
// (taken from now) when none was given. Call Validate first.
func (i *InvoiceInput) IssueDateOr(now time.Time) (time.Time, error) {
	if i.IssueDate == "" {
		y, m, d := now.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
	}
	return time.Parse(DateLayout, i.IssueDate)
}
