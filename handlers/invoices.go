package handlers

import (
	"net/http"
	"strconv"

	"github.com/satheeshds/invoicing/db"
	"github.com/satheeshds/invoicing/invoicing"
	"github.com/satheeshds/invoicing/models"
	"github.com/satheeshds/invoicing/money"
	"github.com/satheeshds/invoicing/pdf"
)

// InvoiceView is an invoice with the figures to show for it: frozen ones
// once issued, live ones for drafts.
type InvoiceView struct {
	models.Invoice
	Totals      money.Totals       `json:"totals"`
	LineAmounts []money.LineAmount `json:"line_amounts"`
	CanIssue    bool               `json:"can_issue"`
}

func newInvoiceView(inv *models.Invoice) (*InvoiceView, error) {
	p, err := pdf.BuildPayload(inv, inv.Lines)
	if err != nil {
		return nil, err
	}
	return &InvoiceView{
		Invoice:     *inv,
		Totals:      p.Totals,
		LineAmounts: money.LineAmounts(inv.Lines),
		CanIssue:    invoicing.CanIssue(inv),
	}, nil
}

// writeInvoice re-reads an invoice and writes its view.
func writeInvoice(w http.ResponseWriter, r *http.Request, status, id int) {
	inv, err := DB.GetInvoice(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	view, err := newInvoiceView(inv)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, status, view)
}

// ListInvoices lists all invoices
// @Summary      List invoices
// @Description  Get invoices newest first, with lines and the totals to show for each.
// @Tags         invoices
// @Produce      json
// @Param        status     query     string  false  "Filter by status (draft, issued, paid)"
// @Param        client_id  query     int     false  "Filter by client"
// @Param        year       query     int     false  "Filter by issue year"
// @Success      200        {object}  Response{data=[]InvoiceView}
// @Failure      400        {object}  Response{error=string}
// @Router       /invoices [get]
func ListInvoices(w http.ResponseWriter, r *http.Request) {
	var f db.InvoiceFilter
	q := r.URL.Query()
	switch s := models.InvoiceStatus(q.Get("status")); s {
	case "", models.InvoiceStatusDraft, models.InvoiceStatusIssued, models.InvoiceStatusPaid:
		f.Status = s
	default:
		writeError(w, http.StatusBadRequest, "status must be draft, issued or paid")
		return
	}
	for name, dst := range map[string]*int{"client_id": &f.ClientID, "year": &f.Year} {
		if v := q.Get(name); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				writeError(w, http.StatusBadRequest, "invalid "+name)
				return
			}
			*dst = n
		}
	}

	invoices, err := DB.ListInvoices(r.Context(), f)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	views := make([]*InvoiceView, 0, len(invoices))
	for i := range invoices {
		view, err := newInvoiceView(&invoices[i])
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		views = append(views, view)
	}
	writeJSON(w, http.StatusOK, views)
}

// GetInvoice retrieves a single invoice by ID
// @Summary      Get invoice
// @Description  Get an invoice with its lines. Issued and paid invoices report their frozen totals.
// @Tags         invoices
// @Produce      json
// @Param        id   path      int  true  "Invoice ID"
// @Success      200  {object}  Response{data=InvoiceView}
// @Failure      404  {object}  Response{error=string}
// @Router       /invoices/{id} [get]
func GetInvoice(w http.ResponseWriter, r *http.Request) {
	id, ok := intParam(w, r, "id")
	if !ok {
		return
	}
	writeInvoice(w, r, http.StatusOK, id)
}

// CreateInvoice creates a new draft invoice
// @Summary      Create invoice
// @Description  Open a draft for an active client. The due date follows the client's payment terms.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        invoice  body      models.InvoiceInput  true  "Invoice header"
// @Success      201      {object}  Response{data=InvoiceView}
// @Failure      400      {object}  Response{error=string}
// @Failure      404      {object}  Response{error=string}
// @Router       /invoices [post]
func CreateInvoice(w http.ResponseWriter, r *http.Request) {
	var input models.InvoiceInput
	if !decode(w, r, &input) {
		return
	}
	inv, err := Invoices.CreateInvoice(r.Context(), input)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeInvoice(w, r, http.StatusCreated, inv.ID)
}

// UpdateInvoice updates the header of a draft invoice
// @Summary      Update invoice
// @Description  Change the header of a draft. Issued and paid invoices are rejected with 409.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        id       path      int                  true  "Invoice ID"
// @Param        invoice  body      models.InvoiceInput  true  "Invoice header"
// @Success      200      {object}  Response{data=InvoiceView}
// @Failure      400      {object}  Response{error=string}
// @Failure      404      {object}  Response{error=string}
// @Failure      409      {object}  Response{error=string}
// @Router       /invoices/{id} [put]
func UpdateInvoice(w http.ResponseWriter, r *http.Request) {
	id, ok := intParam(w, r, "id")
	if !ok {
		return
	}
	var input models.InvoiceInput
	if !decode(w, r, &input) {
		return
	}
	if _, err := Invoices.UpdateHeader(r.Context(), id, input); err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeInvoice(w, r, http.StatusOK, id)
}

// DeleteInvoice deletes an invoice
// @Summary      Delete invoice
// @Description  Remove an invoice together with its lines.
// @Tags         invoices
// @Produce      json
// @Param        id   path      int  true  "Invoice ID"
// @Success      200  {object}  Response{data=map[string]string}
// @Failure      404  {object}  Response{error=string}
// @Router       /invoices/{id} [delete]
func DeleteInvoice(w http.ResponseWriter, r *http.Request) {
	id, ok := intParam(w, r, "id")
	if !ok {
		return
	}
	if err := DB.DeleteInvoice(r.Context(), id); err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "deleted"})
}

// AddInvoiceLine adds a line to a draft invoice
// @Summary      Add invoice line
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        id    path      int               true  "Invoice ID"
// @Param        line  body      models.LineInput  true  "Line"
// @Success      201   {object}  Response{data=InvoiceView}
// @Failure      400   {object}  Response{error=string}
// @Failure      404   {object}  Response{error=string}
// @Failure      409   {object}  Response{error=string}
// @Router       /invoices/{id}/lines [post]
func AddInvoiceLine(w http.ResponseWriter, r *http.Request) {
	id, ok := intParam(w, r, "id")
	if !ok {
		return
	}
	var input models.LineInput
	if !decode(w, r, &input) {
		return
	}
	if _, err := Invoices.AddLine(r.Context(), id, input); err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeInvoice(w, r, http.StatusCreated, id)
}

// DeleteInvoiceLine removes a line from a draft invoice
// @Summary      Delete invoice line
// @Tags         invoices
// @Produce      json
// @Param        id      path      int  true  "Invoice ID"
// @Param        lineId  path      int  true  "Line ID"
// @Success      200     {object}  Response{data=InvoiceView}
// @Failure      404     {object}  Response{error=string}
// @Failure      409     {object}  Response{error=string}
// @Router       /invoices/{id}/lines/{lineId} [delete]
func DeleteInvoiceLine(w http.ResponseWriter, r *http.Request) {
	id, ok := intParam(w, r, "id")
	if !ok {
		return
	}
	lineID, ok := intParam(w, r, "lineId")
	if !ok {
		return
	}
	if err := Invoices.DeleteLine(r.Context(), id, lineID); err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeInvoice(w, r, http.StatusOK, id)
}

// IssueInvoice issues a draft invoice
// @Summary      Issue invoice
// @Description  Assign the next number of the issue year and freeze client identity and totals. Issuing an issued invoice returns it unchanged.
// @Tags         invoices
// @Produce      json
// @Param        id   path      int  true  "Invoice ID"
// @Success      200  {object}  Response{data=InvoiceView}
// @Failure      404  {object}  Response{error=string}
// @Failure      409  {object}  Response{error=string}
// @Failure      422  {object}  Response{error=string}
// @Router       /invoices/{id}/issue [post]
func IssueInvoice(w http.ResponseWriter, r *http.Request) {
	id, ok := intParam(w, r, "id")
	if !ok {
		return
	}
	inv, err := Invoices.Issue(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeInvoice(w, r, http.StatusOK, inv.ID)
}

// PayInvoice marks an issued invoice as paid
// @Summary      Mark invoice paid
// @Tags         invoices
// @Produce      json
// @Param        id   path      int  true  "Invoice ID"
// @Success      200  {object}  Response{data=InvoiceView}
// @Failure      404  {object}  Response{error=string}
// @Failure      409  {object}  Response{error=string}
// @Router       /invoices/{id}/pay [post]
func PayInvoice(w http.ResponseWriter, r *http.Request) {
	id, ok := intParam(w, r, "id")
	if !ok {
		return
	}
	if _, err := Invoices.MarkPaid(r.Context(), id); err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeInvoice(w, r, http.StatusOK, id)
}
