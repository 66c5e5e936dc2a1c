package db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/satheeshds/invoicing/models"
)

const clientColumns = `id, name, tax_id, address_line1, address_line2, city, postal_code, country,
	phone, email, payment_terms_days, is_deleted, created_at, updated_at`

func scanClient(row pgx.Row) (models.Client, error) {
	var c models.Client
	err := row.Scan(&c.ID, &c.Name, &c.TaxID, &c.AddressLine1, &c.AddressLine2, &c.City,
		&c.PostalCode, &c.Country, &c.Phone, &c.Email, &c.PaymentTermsDays, &c.IsDeleted,
		&c.CreatedAt, &c.UpdatedAt)
	return c, err
}

// ListClients returns clients ordered by name. Soft-deleted clients are
// included only when deleted is true, and then exclusively.
func (s *Store) ListClients(ctx context.Context, deleted bool) ([]models.Client, error) {
	rows, err := s.q(ctx).Query(ctx,
		`SELECT `+clientColumns+` FROM clients WHERE is_deleted = $1 ORDER BY name, id`, deleted)
	if err != nil {
		return nil, mapError(err, "listing clients")
	}
	clients, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Client, error) {
		return scanClient(row)
	})
	if err != nil {
		return nil, mapError(err, "listing clients")
	}
	return clients, nil
}

// GetClient returns a client, deleted or not.
func (s *Store) GetClient(ctx context.Context, id int) (*models.Client, error) {
	c, err := scanClient(s.q(ctx).QueryRow(ctx,
		`SELECT `+clientColumns+` FROM clients WHERE id = $1`, id))
	if err != nil {
		return nil, mapError(err, "getting client %d", id)
	}
	return &c, nil
}

func (s *Store) CreateClient(ctx context.Context, in models.ClientInput) (*models.Client, error) {
	c, err := scanClient(s.q(ctx).QueryRow(ctx, `
		INSERT INTO clients (name, tax_id, address_line1, address_line2, city, postal_code, country,
			phone, email, payment_terms_days)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING `+clientColumns,
		in.Name, in.TaxID, in.AddressLine1, in.AddressLine2, in.City, in.PostalCode, in.Country,
		in.Phone, in.Email, in.PaymentTermsDays))
	if err != nil {
		return nil, mapError(err, "creating client")
	}
	return &c, nil
}

func (s *Store) UpdateClient(ctx context.Context, id int, in models.ClientInput) (*models.Client, error) {
	c, err := scanClient(s.q(ctx).QueryRow(ctx, `
		UPDATE clients SET name = $1, tax_id = $2, address_line1 = $3, address_line2 = $4, city = $5,
			postal_code = $6, country = $7, phone = $8, email = $9, payment_terms_days = $10,
			updated_at = now()
		WHERE id = $11
		RETURNING `+clientColumns,
		in.Name, in.TaxID, in.AddressLine1, in.AddressLine2, in.City, in.PostalCode, in.Country,
		in.Phone, in.Email, in.PaymentTermsDays, id))
	if err != nil {
		return nil, mapError(err, "updating client %d", id)
	}
	return &c, nil
}

// SetClientDeleted soft-deletes or restores a client. Issued invoices keep
// their snapshot of the client either way.
func (s *Store) SetClientDeleted(ctx context.Context, id int, deleted bool) (*models.Client, error) {
	c, err := scanClient(s.q(ctx).QueryRow(ctx, `
		UPDATE clients SET is_deleted = $1, updated_at = now()
		WHERE id = $2
		RETURNING `+clientColumns, deleted, id))
	if err != nil {
		return nil, mapError(err, "setting client %d deleted=%t", id, deleted)
	}
	return &c, nil
}
