package register

import (
	"fmt"
	"io"

	"github.com/satheeshds/invoicing/models"
	"github.com/xuri/excelize/v2"
)

// SheetName is the worksheet holding the register.
const SheetName = "Register"

var headers = []any{
	"Invoice", "Issue date", "Due date", "Status", "Client", "Tax ID",
	"Currency", "IGI %", "Subtotal", "IGI", "Total",
}

// WriteXLSX writes the entries as a workbook with a header row and one totals
// row per currency.
func WriteXLSX(w io.Writer, entries []Entry) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return err
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	amount, err := f.NewStyle(&excelize.Style{NumFmt: 4})
	if err != nil {
		return err
	}

	if err := f.SetSheetRow(SheetName, "A1", &headers); err != nil {
		return err
	}
	for i, e := range entries {
		row := []any{
			e.InvoiceNumber,
			e.IssueDate.Format(models.DateLayout),
			e.DueDate.Format(models.DateLayout),
			string(e.Status),
			e.ClientName,
			e.ClientTaxID,
			e.Currency,
			e.IGIRate.InexactFloat64(),
			e.Subtotal.InexactFloat64(),
			e.IGI.InexactFloat64(),
			e.Total.InexactFloat64(),
		}
		if err := f.SetSheetRow(SheetName, fmt.Sprintf("A%d", i+2), &row); err != nil {
			return err
		}
	}

	first := len(entries) + 2
	last := first - 1
	for _, sum := range Summarize(entries) {
		last++
		totals := []any{
			fmt.Sprintf("%d invoices", sum.Count), nil, nil, nil, nil, nil,
			sum.Currency, nil,
			sum.Subtotal.InexactFloat64(),
			sum.IGI.InexactFloat64(),
			sum.Total.InexactFloat64(),
		}
		if err := f.SetSheetRow(SheetName, fmt.Sprintf("A%d", last), &totals); err != nil {
			return err
		}
	}

	if err := f.SetRowStyle(SheetName, 1, 1, bold); err != nil {
		return err
	}
	if last >= first {
		if err := f.SetRowStyle(SheetName, first, last, bold); err != nil {
			return err
		}
	}
	if last >= 2 {
		if err := f.SetCellStyle(SheetName, "I2", fmt.Sprintf("K%d", last), amount); err != nil {
			return err
		}
	}
	if err := f.SetColWidth(SheetName, "E", "E", 32); err != nil {
		return err
	}
	return f.Write(w)
}
