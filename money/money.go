// Package money computes line and invoice amounts.
//
// Every monetary intermediate is rounded half-up to two decimals before it is
// summed, so invoice totals always equal the sum of the rounded line figures a
// reader sees on the document.
package money

import (
	"github.com/satheeshds/invoicing/models"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Round2 rounds half-up (away from zero) to two decimal places.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// LineAmount holds the computed figures of one invoice line.
type LineAmount struct {
	Line     models.InvoiceLine `json:"line"`
	Subtotal decimal.Decimal    `json:"subtotal"`
	Discount decimal.Decimal    `json:"discount"`
	Total    decimal.Decimal    `json:"total"`
}

// Totals is the aggregate of an invoice. Base is the taxable amount after
// discounts; IGI is the tax on Base.
type Totals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Discount decimal.Decimal `json:"discount"`
	Base     decimal.Decimal `json:"base"`
	IGI      decimal.Decimal `json:"igi"`
	Total    decimal.Decimal `json:"total"`
}

// LineAmounts computes the amounts of each line, in the order given.
func LineAmounts(lines []models.InvoiceLine) []LineAmount {
	out := make([]LineAmount, 0, len(lines))
	for _, line := range lines {
		subtotal := Round2(line.Qty.Mul(line.UnitPrice))
		discount := Round2(subtotal.Mul(line.DiscountPct).Div(hundred))
		out = append(out, LineAmount{
			Line:     line,
			Subtotal: subtotal,
			Discount: discount,
			Total:    Round2(subtotal.Sub(discount)),
		})
	}
	return out
}

// ComputeTotals sums the rounded line amounts and applies igiRate (a
// percentage) to the discounted base.
func ComputeTotals(igiRate decimal.Decimal, lines []models.InvoiceLine) Totals {
	subtotal := decimal.Zero
	discount := decimal.Zero
	for _, la := range LineAmounts(lines) {
		subtotal = subtotal.Add(la.Subtotal)
		discount = discount.Add(la.Discount)
	}
	base := subtotal.Sub(discount)
	igi := Round2(base.Mul(igiRate).Div(hundred))
	return Totals{
		Subtotal: Round2(subtotal),
		Discount: Round2(discount),
		Base:     Round2(base),
		IGI:      igi,
		Total:    Round2(base.Add(igi)),
	}
}

// FromSnapshot rebuilds totals from the figures frozen at issue. The base is
// total minus tax and the discount is subtotal minus base; both are exact
// because every frozen figure has two decimals.
func FromSnapshot(subtotal, igi, total decimal.Decimal) Totals {
	base := total.Sub(igi)
	return Totals{
		Subtotal: subtotal,
		Discount: subtotal.Sub(base),
		Base:     base,
		IGI:      igi,
		Total:    total,
	}
}
