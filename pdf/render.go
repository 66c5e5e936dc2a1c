package pdf

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/go-pdf/fpdf"
	"github.com/satheeshds/invoicing/models"
	"github.com/shopspring/decimal"
)

// ExemptFooter is printed on invoices issued at a zero IGI rate.
const ExemptFooter = "Operation exempt from IGI."

type column struct {
	title string
	width float64
	align string
}

var lineColumns = []column{
	{"#", 8, "L"},
	{"Description", 82, "L"},
	{"Qty", 20, "R"},
	{"Price", 25, "R"},
	{"Disc. %", 17, "R"},
	{"Amount", 28, "R"},
}

// Render draws the payload as an A4 document.
func Render(p *Payload) ([]byte, error) {
	f := fpdf.New("P", "mm", "A4", "")
	tr := f.UnicodeTranslatorFromDescriptor("")
	f.SetTitle(tr("Invoice "+p.InvoiceNumber), false)
	f.SetCreationDate(p.IssueDate)
	f.SetAutoPageBreak(true, 20)
	f.AddPage()

	f.SetFont("Helvetica", "B", 16)
	f.CellFormat(0, 9, tr("Invoice "+p.InvoiceNumber), "", 1, "L", false, 0, "")

	f.SetFont("Helvetica", "", 10)
	for _, row := range []string{
		"Status: " + string(p.Status),
		"Client: " + p.ClientName,
		"Tax ID: " + p.ClientTaxID,
		fmt.Sprintf("Issued: %s   Due: %s", p.IssueDate.Format(models.DateLayout), p.DueDate.Format(models.DateLayout)),
		fmt.Sprintf("Currency: %s   IGI %%: %s", p.Currency, p.IGIRate.String()),
	} {
		f.CellFormat(0, 6, tr(row), "", 1, "L", false, 0, "")
	}
	f.Ln(4)

	f.SetFont("Helvetica", "B", 9)
	for _, c := range lineColumns {
		f.CellFormat(c.width, 7, tr(c.title), "B", 0, c.align, false, 0, "")
	}
	f.Ln(-1)
	f.SetFont("Helvetica", "", 9)
	for _, l := range p.Lines {
		cells := []string{
			strconv.Itoa(l.Index),
			truncate(l.Description, 60),
			l.Qty.String(),
			l.UnitPrice.StringFixed(2),
			l.DiscountPct.StringFixed(2),
			l.Total.StringFixed(2),
		}
		for i, c := range lineColumns {
			f.CellFormat(c.width, 6, tr(cells[i]), "", 0, c.align, false, 0, "")
		}
		f.Ln(-1)
	}
	f.Ln(4)

	f.SetFont("Helvetica", "B", 11)
	f.CellFormat(0, 7, "Totals", "", 1, "L", false, 0, "")
	f.SetFont("Helvetica", "", 10)
	for _, row := range []struct {
		label  string
		amount decimal.Decimal
	}{
		{"Subtotal", p.Totals.Subtotal},
		{"Discount", p.Totals.Discount},
		{"Taxable base", p.Totals.Base},
		{"IGI", p.Totals.IGI},
		{"Total", p.Totals.Total},
	} {
		f.CellFormat(40, 6, tr(row.label), "", 0, "L", false, 0, "")
		f.CellFormat(40, 6, tr(row.amount.StringFixed(2)+" "+p.Currency), "", 1, "R", false, 0, "")
	}

	if p.ShowIGIExemptFooter {
		f.Ln(6)
		f.SetFont("Helvetica", "I", 9)
		f.CellFormat(0, 6, tr(ExemptFooter), "", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := f.Output(&buf); err != nil {
		return nil, fmt.Errorf("rendering invoice %s: %w", p.InvoiceNumber, err)
	}
	return buf.Bytes(), nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
