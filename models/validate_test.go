package models

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestLineInput_Validate(t *testing.T) {
	d := decimal.RequireFromString
	tests := []struct {
		name    string
		input   LineInput
		wantMsg string
	}{
		{"valid", LineInput{Description: "Consulting", Qty: d("1"), UnitPrice: d("10"), DiscountPct: d("0")}, ""},
		{"blank description", LineInput{Description: "   ", Qty: d("1")}, "description is required"},
		{"long description", LineInput{Description: strings.Repeat("x", 501), Qty: d("1")}, "description must be at most 500 characters"},
		{"zero qty", LineInput{Description: "a", Qty: d("0")}, "qty must be greater than 0"},
		{"negative price", LineInput{Description: "a", Qty: d("1"), UnitPrice: d("-0.01")}, "unit_price must be at least 0"},
		{"discount over 100", LineInput{Description: "a", Qty: d("1"), DiscountPct: d("100.5")}, "discount_pct must be at most 100"},
		{"discount 100", LineInput{Description: "a", Qty: d("1"), DiscountPct: d("100")}, ""},
		{"qty below column scale", LineInput{Description: "a", Qty: d("0.0004")}, "qty must have at most 3 decimal places"},
		{"qty trailing zeros", LineInput{Description: "a", Qty: d("1.5000")}, ""},
		{"qty too large", LineInput{Description: "a", Qty: d("1000000000")}, "qty must be less than 1000000000"},
		{"price below column scale", LineInput{Description: "a", Qty: d("1"), UnitPrice: d("0.00499")}, "unit_price must have at most 4 decimal places"},
		{"price rounding", LineInput{Description: "a", Qty: d("1"), UnitPrice: d("10.00049")}, "unit_price must have at most 4 decimal places"},
		{"price too large", LineInput{Description: "a", Qty: d("1"), UnitPrice: d("99999999999")}, "unit_price must be less than 10000000000"},
		{"price at column limit", LineInput{Description: "a", Qty: d("1"), UnitPrice: d("9999999999.9999")}, ""},
		{"discount scale", LineInput{Description: "a", Qty: d("1"), DiscountPct: d("12.345")}, "discount_pct must have at most 2 decimal places"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.input.Validate(); got != tt.wantMsg {
				t.Errorf("Validate() = %q, want %q", got, tt.wantMsg)
			}
		})
	}
}

func TestInvoiceInput_Defaults(t *testing.T) {
	in := InvoiceInput{ClientID: 3, Currency: " usd "}
	if msg := in.Validate(); msg != "" {
		t.Fatalf("Validate() = %q", msg)
	}
	if in.Currency != "USD" {
		t.Errorf("Currency = %q, want USD", in.Currency)
	}

	in = InvoiceInput{ClientID: 3}
	in.Validate()
	if in.Currency != DefaultCurrency {
		t.Errorf("Currency = %q, want %q", in.Currency, DefaultCurrency)
	}

	now := time.Date(2026, 3, 14, 18, 30, 0, 0, time.UTC)
	got, err := in.IssueDateOr(now)
	if err != nil {
		t.Fatal(err)
	}
	if want := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Errorf("IssueDateOr() = %v, want %v", got, want)
	}
}

func TestInvoiceInput_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		input   InvoiceInput
		wantMsg string
	}{
		{"missing client", InvoiceInput{}, "client_id is required"},
		{"bad date", InvoiceInput{ClientID: 1, IssueDate: "14/03/2026"}, "issue_date must be a date in YYYY-MM-DD format"},
		{"negative rate", InvoiceInput{ClientID: 1, IGIRate: decimal.RequireFromString("-1")}, "igi_rate must be at least 0"},
		{"rate scale", InvoiceInput{ClientID: 1, IGIRate: decimal.RequireFromString("4.505")}, "igi_rate must have at most 2 decimal places"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.input.Validate(); got != tt.wantMsg {
				t.Errorf("Validate() = %q, want %q", got, tt.wantMsg)
			}
		})
	}
}

func TestClientInput_Validate(t *testing.T) {
	blank := "  "
	bad := "not-an-email"
	neg := -5

	in := ClientInput{Name: " Acme ", Email: &blank}
	if msg := in.Validate(); msg != "" {
		t.Fatalf("Validate() = %q", msg)
	}
	if in.Name != "Acme" || in.Email != nil {
		t.Errorf("normalised input = %+v", in)
	}

	in = ClientInput{Name: "Acme", Email: &bad}
	if got := in.Validate(); got != "email must be a valid email address" {
		t.Errorf("Validate() = %q", got)
	}

	in = ClientInput{Name: "Acme", PaymentTermsDays: &neg}
	if got := in.Validate(); got != "payment_terms_days must be at least 0" {
		t.Errorf("Validate() = %q", got)
	}
}

func TestSortLines(t *testing.T) {
	lines := []InvoiceLine{
		{ID: 5, SortOrder: 2},
		{ID: 3, SortOrder: 1},
		{ID: 1, SortOrder: 2},
	}
	SortLines(lines)
	got := []int{lines[0].ID, lines[1].ID, lines[2].ID}
	want := []int{3, 1, 5}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}
