package models

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceLine is one billed item. Lines belong to exactly one invoice and
// are removed with it.
type InvoiceLine struct {
	ID          int             `json:"id"`
	InvoiceID   int             `json:"invoice_id"`
	Description string          `json:"description"`
	Qty         decimal.Decimal `json:"qty"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	DiscountPct decimal.Decimal `json:"discount_pct"`
	SortOrder   int             `json:"sort_order"`
	CreatedAt   time.Time       `json:"created_at"`
}

// LineInput is used for adding a line to a draft invoice.
type LineInput struct {
	Description string          `json:"description" validate:"required,max=500"`
	Qty         decimal.Decimal `json:"qty" validate:"gt=0"`
	UnitPrice   decimal.Decimal `json:"unit_price" validate:"gte=0"`
	DiscountPct decimal.Decimal `json:"discount_pct" validate:"gte=0,lte=100"`
}

func (l *LineInput) Validate() string {
	l.Description = strings.TrimSpace(l.Description)
	return validateStruct(l)
}

// SortLines orders lines by sort_order, breaking ties by id.
func SortLines(lines []InvoiceLine) {
	sort.SliceStable(lines, func(a, b int) bool {
		if lines[a].SortOrder != lines[b].SortOrder {
			return lines[a].SortOrder < lines[b].SortOrder
		}
		return lines[a].ID < lines[b].ID
	})
}
