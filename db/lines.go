package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/satheeshds/invoicing/invoicing"
	"github.com/satheeshds/invoicing/models"
)

// linesFor returns the lines of the given invoices keyed by invoice id, each
// slice in print order.
func (s *Store) linesFor(ctx context.Context, invoiceIDs []int) (map[int][]models.InvoiceLine, error) {
	rows, err := s.q(ctx).Query(ctx, `
		SELECT id, invoice_id, description, qty, unit_price, discount_pct, sort_order, created_at
		FROM invoice_lines
		WHERE invoice_id = ANY($1)
		ORDER BY invoice_id, sort_order, id`, invoiceIDs)
	if err != nil {
		return nil, err
	}
	lines, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.InvoiceLine, error) {
		var l models.InvoiceLine
		err := row.Scan(&l.ID, &l.InvoiceID, &l.Description, &l.Qty, &l.UnitPrice, &l.DiscountPct,
			&l.SortOrder, &l.CreatedAt)
		return l, err
	})
	if err != nil {
		return nil, err
	}
	out := make(map[int][]models.InvoiceLine)
	for _, l := range lines {
		out[l.InvoiceID] = append(out[l.InvoiceID], l)
	}
	return out, nil
}

func (s *Store) InsertLine(ctx context.Context, line *models.InvoiceLine) error {
	err := s.q(ctx).QueryRow(ctx, `
		INSERT INTO invoice_lines (invoice_id, description, qty, unit_price, discount_pct, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`,
		line.InvoiceID, line.Description, line.Qty, line.UnitPrice, line.DiscountPct, line.SortOrder,
	).Scan(&line.ID, &line.CreatedAt)
	return mapError(err, "adding line to invoice %d", line.InvoiceID)
}

func (s *Store) DeleteLine(ctx context.Context, invoiceID, lineID int) error {
	tag, err := s.q(ctx).Exec(ctx,
		`DELETE FROM invoice_lines WHERE id = $1 AND invoice_id = $2`, lineID, invoiceID)
	if err != nil {
		return mapError(err, "deleting line %d", lineID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("line %d of invoice %d: %w", lineID, invoiceID, invoicing.ErrNotFound)
	}
	return nil
}
