package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/satheeshds/invoicing/pdf"
	"github.com/satheeshds/invoicing/register"
)

// GetInvoicePDF renders an issued invoice
// @Summary      Invoice PDF
// @Description  Render an issued or paid invoice from its frozen snapshot. Drafts are rejected.
// @Tags         invoices
// @Produce      application/pdf
// @Param        id   path      int  true  "Invoice ID"
// @Success      200  {file}    file
// @Failure      400  {object}  Response{error=string}
// @Failure      404  {object}  Response{error=string}
// @Router       /invoices/{id}/pdf [get]
func GetInvoicePDF(w http.ResponseWriter, r *http.Request) {
	id, ok := intParam(w, r, "id")
	if !ok {
		return
	}
	inv, err := DB.GetInvoice(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if !inv.IsFinalized() {
		writeError(w, http.StatusBadRequest, "PDF is only available for issued invoices")
		return
	}
	payload, err := pdf.BuildPayload(inv, inv.Lines)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	doc, err := pdf.Render(payload)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="invoice_%s.pdf"`, payload.InvoiceNumber))
	w.Write(doc)
}

// GetRegister exports the register of issued invoices
// @Summary      Invoice register
// @Description  Download the issued and paid invoices of a year as a spreadsheet built from their snapshots.
// @Tags         register
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        year  query     int  false  "Issue year (defaults to the current year)"
// @Success      200   {file}    file
// @Failure      400   {object}  Response{error=string}
// @Router       /register [get]
func GetRegister(w http.ResponseWriter, r *http.Request) {
	year := time.Now().Year()
	if v := r.URL.Query().Get("year"); v != "" {
		y, err := strconv.Atoi(v)
		if err != nil || y < 2000 || y > 9999 {
			writeError(w, http.StatusBadRequest, "invalid year")
			return
		}
		year = y
	}

	invoices, err := DB.ListIssuedInvoices(r.Context(), year)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	entries, err := register.FromInvoices(invoices)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	var buf bytes.Buffer
	if err := register.WriteXLSX(&buf, entries); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="register_%d.xlsx"`, year))
	w.Write(buf.Bytes())
}
