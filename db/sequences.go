package db

import (
	"context"
	"fmt"

	"github.com/satheeshds/invoicing/models"
)

// NextSequenceNumber allocates the next invoice number of year. It must run
// inside RunInTx: the sequence row stays locked until the transaction ends,
// so concurrent issues in the same year queue here and a rollback returns
// the number.
func (s *Store) NextSequenceNumber(ctx context.Context, year int) (int, error) {
	q := s.q(ctx)
	if q == s.pool {
		return 0, fmt.Errorf("allocating %d sequence number outside a transaction", year)
	}

	if _, err := q.Exec(ctx, `
		INSERT INTO invoice_sequences (year_full, next_number)
		VALUES ($1, 1)
		ON CONFLICT (year_full) DO NOTHING`, year); err != nil {
		return 0, mapError(err, "creating %d sequence", year)
	}

	var seq models.InvoiceSequence
	if err := q.QueryRow(ctx, `
		SELECT id, year_full, next_number, created_at, updated_at
		FROM invoice_sequences WHERE year_full = $1 FOR UPDATE`, year,
	).Scan(&seq.ID, &seq.YearFull, &seq.NextNumber, &seq.CreatedAt, &seq.UpdatedAt); err != nil {
		return 0, mapError(err, "locking %d sequence", year)
	}

	if _, err := q.Exec(ctx, `
		UPDATE invoice_sequences SET next_number = next_number + 1, updated_at = now()
		WHERE id = $1`, seq.ID); err != nil {
		return 0, mapError(err, "advancing %d sequence", year)
	}
	s.log.Debug().Int("year", year).Int("number", seq.NextNumber).Msg("sequence number allocated")
	return seq.NextNumber, nil
}
