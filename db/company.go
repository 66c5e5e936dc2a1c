package db

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/satheeshds/invoicing/models"
)

const companyColumns = `id, name, tax_id, phone, address_line1, address_line2, city, postal_code,
	country, email, bank_account, bank_swift, payment_terms_days, notes, created_at, updated_at`

func scanCompany(row pgx.Row) (models.Company, error) {
	var c models.Company
	err := row.Scan(&c.ID, &c.Name, &c.TaxID, &c.Phone, &c.AddressLine1, &c.AddressLine2, &c.City,
		&c.PostalCode, &c.Country, &c.Email, &c.BankAccount, &c.BankSwift, &c.PaymentTermsDays,
		&c.Notes, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

// GetCompany returns the company profile, or nil while none has been saved.
func (s *Store) GetCompany(ctx context.Context) (*models.Company, error) {
	c, err := scanCompany(s.q(ctx).QueryRow(ctx, `SELECT `+companyColumns+` FROM company LIMIT 1`))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, mapError(err, "getting company")
	}
	return &c, nil
}

// SaveCompany creates the company profile on first use and updates it after.
func (s *Store) SaveCompany(ctx context.Context, in models.CompanyInput) (*models.Company, error) {
	c, err := scanCompany(s.q(ctx).QueryRow(ctx, `
		INSERT INTO company (name, tax_id, phone, address_line1, address_line2, city, postal_code,
			country, email, bank_account, bank_swift, payment_terms_days, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (singleton) DO UPDATE SET
			name = EXCLUDED.name,
			tax_id = EXCLUDED.tax_id,
			phone = EXCLUDED.phone,
			address_line1 = EXCLUDED.address_line1,
			address_line2 = EXCLUDED.address_line2,
			city = EXCLUDED.city,
			postal_code = EXCLUDED.postal_code,
			country = EXCLUDED.country,
			email = EXCLUDED.email,
			bank_account = EXCLUDED.bank_account,
			bank_swift = EXCLUDED.bank_swift,
			payment_terms_days = EXCLUDED.payment_terms_days,
			notes = EXCLUDED.notes,
			updated_at = now()
		RETURNING `+companyColumns,
		in.Name, in.TaxID, in.Phone, in.AddressLine1, in.AddressLine2, in.City, in.PostalCode,
		in.Country, in.Email, in.BankAccount, in.BankSwift, in.PaymentTermsDays, in.Notes))
	if err != nil {
		return nil, mapError(err, "saving company")
	}
	return &c, nil
}
