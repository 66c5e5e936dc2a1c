package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/satheeshds/invoicing/invoicing"
	"github.com/satheeshds/invoicing/models"
)

const invoiceColumns = `i.id, i.status, i.issue_date, i.due_date, i.client_id, i.currency, i.igi_rate, i.notes,
	i.number, i.invoice_number, i.client_name_snapshot, i.client_tax_id_snapshot,
	i.subtotal_snapshot, i.igi_amount_snapshot, i.total_snapshot, i.igi_rate_snapshot,
	i.payment_terms_days_applied, i.created_at, i.updated_at`

func scanInvoice(row pgx.Row) (models.Invoice, error) {
	var inv models.Invoice
	err := row.Scan(&inv.ID, &inv.Status, &inv.IssueDate, &inv.DueDate, &inv.ClientID, &inv.Currency,
		&inv.IGIRate, &inv.Notes, &inv.Number, &inv.InvoiceNumber, &inv.ClientNameSnapshot,
		&inv.ClientTaxIDSnapshot, &inv.SubtotalSnapshot, &inv.IGIAmountSnapshot, &inv.TotalSnapshot,
		&inv.IGIRateSnapshot, &inv.PaymentTermsDaysApplied, &inv.CreatedAt, &inv.UpdatedAt)
	return inv, err
}

// InvoiceFilter narrows ListInvoices. Zero values match everything.
type InvoiceFilter struct {
	Status   models.InvoiceStatus
	ClientID int
	Year     int
}

// ListInvoices returns invoices with their lines and clients, newest issue
// date first.
func (s *Store) ListInvoices(ctx context.Context, f InvoiceFilter) ([]models.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices i`
	var conditions []string
	var args []any
	if f.Status != "" {
		args = append(args, f.Status)
		conditions = append(conditions, fmt.Sprintf("i.status = $%d", len(args)))
	}
	if f.ClientID != 0 {
		args = append(args, f.ClientID)
		conditions = append(conditions, fmt.Sprintf("i.client_id = $%d", len(args)))
	}
	if f.Year != 0 {
		args = append(args, f.Year)
		conditions = append(conditions, fmt.Sprintf("EXTRACT(YEAR FROM i.issue_date) = $%d", len(args)))
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY i.issue_date DESC, i.id DESC"

	invoices, err := s.queryInvoices(ctx, query, args...)
	if err != nil {
		return nil, mapError(err, "listing invoices")
	}
	return invoices, nil
}

// ListIssuedInvoices returns the issued and paid invoices of a year in
// number order.
func (s *Store) ListIssuedInvoices(ctx context.Context, year int) ([]models.Invoice, error) {
	invoices, err := s.queryInvoices(ctx, `SELECT `+invoiceColumns+` FROM invoices i
		WHERE i.status IN ('issued', 'paid') AND EXTRACT(YEAR FROM i.issue_date) = $1
		ORDER BY i.number`, year)
	if err != nil {
		return nil, mapError(err, "listing issued invoices for %d", year)
	}
	return invoices, nil
}

func (s *Store) queryInvoices(ctx context.Context, query string, args ...any) ([]models.Invoice, error) {
	rows, err := s.q(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	invoices, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Invoice, error) {
		return scanInvoice(row)
	})
	if err != nil {
		return nil, err
	}
	if err := s.loadRelations(ctx, invoices); err != nil {
		return nil, err
	}
	return invoices, nil
}

// GetInvoice returns an invoice with its lines and client.
func (s *Store) GetInvoice(ctx context.Context, id int) (*models.Invoice, error) {
	return s.getInvoice(ctx, id, "")
}

// LockInvoice is GetInvoice holding a row lock on the invoice until the
// surrounding transaction ends.
func (s *Store) LockInvoice(ctx context.Context, id int) (*models.Invoice, error) {
	return s.getInvoice(ctx, id, " FOR UPDATE OF i")
}

func (s *Store) getInvoice(ctx context.Context, id int, lock string) (*models.Invoice, error) {
	inv, err := scanInvoice(s.q(ctx).QueryRow(ctx,
		`SELECT `+invoiceColumns+` FROM invoices i WHERE i.id = $1`+lock, id))
	if err != nil {
		return nil, mapError(err, "getting invoice %d", id)
	}
	invoices := []models.Invoice{inv}
	if err := s.loadRelations(ctx, invoices); err != nil {
		return nil, mapError(err, "loading invoice %d", id)
	}
	return &invoices[0], nil
}

// loadRelations fills Lines and Client on each invoice with one query each.
func (s *Store) loadRelations(ctx context.Context, invoices []models.Invoice) error {
	if len(invoices) == 0 {
		return nil
	}
	ids := make([]int, 0, len(invoices))
	clientIDs := make([]int, 0, len(invoices))
	for _, inv := range invoices {
		ids = append(ids, inv.ID)
		clientIDs = append(clientIDs, inv.ClientID)
	}

	lines, err := s.linesFor(ctx, ids)
	if err != nil {
		return err
	}
	rows, err := s.q(ctx).Query(ctx, `SELECT `+clientColumns+` FROM clients WHERE id = ANY($1)`, clientIDs)
	if err != nil {
		return err
	}
	clients, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Client, error) {
		return scanClient(row)
	})
	if err != nil {
		return err
	}
	byID := make(map[int]*models.Client, len(clients))
	for i := range clients {
		byID[clients[i].ID] = &clients[i]
	}

	for i := range invoices {
		invoices[i].Lines = lines[invoices[i].ID]
		if invoices[i].Lines == nil {
			invoices[i].Lines = []models.InvoiceLine{}
		}
		invoices[i].Client = byID[invoices[i].ClientID]
	}
	return nil
}

func (s *Store) InsertInvoice(ctx context.Context, inv *models.Invoice) error {
	err := s.q(ctx).QueryRow(ctx, `
		INSERT INTO invoices (status, issue_date, due_date, client_id, currency, igi_rate, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at`,
		inv.Status, inv.IssueDate, inv.DueDate, inv.ClientID, inv.Currency, inv.IGIRate, inv.Notes,
	).Scan(&inv.ID, &inv.CreatedAt, &inv.UpdatedAt)
	return mapError(err, "creating invoice")
}

func (s *Store) UpdateInvoiceHeader(ctx context.Context, inv *models.Invoice) error {
	err := s.q(ctx).QueryRow(ctx, `
		UPDATE invoices SET issue_date = $1, due_date = $2, client_id = $3, currency = $4,
			igi_rate = $5, notes = $6, updated_at = now()
		WHERE id = $7 AND status = 'draft'
		RETURNING updated_at`,
		inv.IssueDate, inv.DueDate, inv.ClientID, inv.Currency, inv.IGIRate, inv.Notes, inv.ID,
	).Scan(&inv.UpdatedAt)
	return mapError(err, "updating invoice %d", inv.ID)
}

func (s *Store) UpdateInvoiceStatus(ctx context.Context, id int, status models.InvoiceStatus) error {
	tag, err := s.q(ctx).Exec(ctx,
		`UPDATE invoices SET status = $1, updated_at = now() WHERE id = $2`, status, id)
	if err != nil {
		return mapError(err, "updating invoice %d status", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("invoice %d: %w", id, invoicing.ErrNotFound)
	}
	return nil
}

// SaveIssueSnapshot writes status, number and every snapshot field in one
// statement. Only drafts are updated.
func (s *Store) SaveIssueSnapshot(ctx context.Context, inv *models.Invoice) error {
	err := s.q(ctx).QueryRow(ctx, `
		UPDATE invoices SET
			status = $1,
			number = $2,
			invoice_number = $3,
			client_name_snapshot = $4,
			client_tax_id_snapshot = $5,
			subtotal_snapshot = $6,
			igi_amount_snapshot = $7,
			total_snapshot = $8,
			igi_rate_snapshot = $9,
			payment_terms_days_applied = $10,
			updated_at = now()
		WHERE id = $11 AND status = 'draft'
		RETURNING updated_at`,
		inv.Status, inv.Number, inv.InvoiceNumber, inv.ClientNameSnapshot, inv.ClientTaxIDSnapshot,
		inv.SubtotalSnapshot, inv.IGIAmountSnapshot, inv.TotalSnapshot, inv.IGIRateSnapshot,
		inv.PaymentTermsDaysApplied, inv.ID,
	).Scan(&inv.UpdatedAt)
	return mapError(err, "saving snapshot of invoice %d", inv.ID)
}

// DeleteInvoice removes an invoice and, through the foreign key, its lines.
func (s *Store) DeleteInvoice(ctx context.Context, id int) error {
	tag, err := s.q(ctx).Exec(ctx, `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return mapError(err, "deleting invoice %d", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("invoice %d: %w", id, invoicing.ErrNotFound)
	}
	return nil
}
