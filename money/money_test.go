package money

import (
	"testing"

	"github.com/satheeshds/invoicing/models"
	"github.com/shopspring/decimal"
)

func line(qty, price, discount string) models.InvoiceLine {
	return models.InvoiceLine{
		Description: "item",
		Qty:         decimal.RequireFromString(qty),
		UnitPrice:   decimal.RequireFromString(price),
		DiscountPct: decimal.RequireFromString(discount),
	}
}

func TestRound2_HalfUp(t *testing.T) {
	tests := []struct{ in, want string }{
		{"30.015", "30.02"},
		{"0.125", "0.13"},
		{"0.135", "0.14"},
		{"2.5049", "2.5"},
		{"10", "10"},
	}
	for _, tt := range tests {
		got := Round2(decimal.RequireFromString(tt.in))
		if !got.Equal(decimal.RequireFromString(tt.want)) {
			t.Errorf("Round2(%s) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestLineAmounts(t *testing.T) {
	tests := []struct {
		name                          string
		line                          models.InvoiceLine
		wantSubtotal, wantDisc, wantT string
	}{
		{"half-up subtotal", line("3", "10.005", "0"), "30.02", "0", "30.02"},
		{"discounted", line("2", "49.99", "10"), "99.98", "10", "89.98"},
		{"discount rounds half-up", line("1", "0.25", "50"), "0.25", "0.13", "0.12"},
		{"full discount", line("4", "12.50", "100"), "50", "50", "0"},
		{"fractional qty", line("1.5", "33.33", "0"), "50", "0", "50"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LineAmounts([]models.InvoiceLine{tt.line})[0]
			if !got.Subtotal.Equal(decimal.RequireFromString(tt.wantSubtotal)) {
				t.Errorf("Subtotal = %s, want %s", got.Subtotal, tt.wantSubtotal)
			}
			if !got.Discount.Equal(decimal.RequireFromString(tt.wantDisc)) {
				t.Errorf("Discount = %s, want %s", got.Discount, tt.wantDisc)
			}
			if !got.Total.Equal(decimal.RequireFromString(tt.wantT)) {
				t.Errorf("Total = %s, want %s", got.Total, tt.wantT)
			}
		})
	}
}

func TestComputeTotals(t *testing.T) {
	tests := []struct {
		name    string
		rate    string
		lines   []models.InvoiceLine
		want    Totals
	}{
		{
			name:  "empty invoice",
			rate:  "4.5",
			lines: nil,
			want:  Totals{},
		},
		{
			name:  "rounded parts are summed",
			rate:  "0",
			lines: []models.InvoiceLine{line("3", "10.005", "0"), line("3", "10.005", "0")},
			want: Totals{
				Subtotal: decimal.RequireFromString("60.04"),
				Base:     decimal.RequireFromString("60.04"),
				Total:    decimal.RequireFromString("60.04"),
			},
		},
		{
			name:  "igi on discounted base",
			rate:  "4.5",
			lines: []models.InvoiceLine{line("2", "100", "10"), line("1", "35.50", "0")},
			want: Totals{
				Subtotal: decimal.RequireFromString("235.5"),
				Discount: decimal.RequireFromString("20"),
				Base:     decimal.RequireFromString("215.5"),
				IGI:      decimal.RequireFromString("9.7"),  // 9.6975
				Total:    decimal.RequireFromString("225.2"),
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeTotals(decimal.RequireFromString(tt.rate), tt.lines)
			check := func(field string, got, want decimal.Decimal) {
				if !got.Equal(want) {
					t.Errorf("%s = %s, want %s", field, got, want)
				}
			}
			check("Subtotal", got.Subtotal, tt.want.Subtotal)
			check("Discount", got.Discount, tt.want.Discount)
			check("Base", got.Base, tt.want.Base)
			check("IGI", got.IGI, tt.want.IGI)
			check("Total", got.Total, tt.want.Total)
		})
	}
}

func TestFromSnapshot(t *testing.T) {
	d := decimal.RequireFromString
	got := FromSnapshot(d("235.50"), d("9.70"), d("225.20"))
	if !got.Base.Equal(d("215.50")) {
		t.Errorf("Base = %s, want 215.50", got.Base)
	}
	if !got.Discount.Equal(d("20.00")) {
		t.Errorf("Discount = %s, want 20.00", got.Discount)
	}
	if !got.Subtotal.Sub(got.Discount).Equal(got.Base) {
		t.Errorf("Subtotal - Discount = %s, want Base %s", got.Subtotal.Sub(got.Discount), got.Base)
	}
}

func TestFromSnapshot_MatchesComputedTotals(t *testing.T) {
	d := decimal.RequireFromString
	lines := []models.InvoiceLine{
		{Qty: d("3"), UnitPrice: d("10.005"), DiscountPct: d("0")},
		{Qty: d("1"), UnitPrice: d("100"), DiscountPct: d("10")},
		{Qty: d("2.5"), UnitPrice: d("7.333"), DiscountPct: d("12.5")},
	}
	live := ComputeTotals(d("4.5"), lines)
	frozen := FromSnapshot(live.Subtotal, live.IGI, live.Total)
	if !frozen.Discount.Equal(live.Discount) || !frozen.Base.Equal(live.Base) {
		t.Errorf("frozen discount/base = %s/%s, want %s/%s",
			frozen.Discount, frozen.Base, live.Discount, live.Base)
	}
}
