package models

import (
	"strings"
	"time"
)

// Client is a customer invoices are issued to. Clients referenced by invoices
// are never removed, only flagged as deleted.
type Client struct {
	ID               int       `json:"id"`
	Name             string    `json:"name"`
	TaxID            *string   `json:"tax_id"`
	AddressLine1     *string   `json:"address_line1"`
	AddressLine2     *string   `json:"address_line2"`
	City             *string   `json:"city"`
	PostalCode       *string   `json:"postal_code"`
	Country          *string   `json:"country"`
	Phone            *string   `json:"phone"`
	Email            *string   `json:"email"`
	PaymentTermsDays *int      `json:"payment_terms_days"`
	IsDeleted        bool      `json:"is_deleted"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
	// Computed fields
	EffectivePaymentTermsDays *int `json:"effective_payment_terms_days,omitempty"`
}

// ClientInput is used for creating/updating clients.
type ClientInput struct {
	Name             string  `json:"name" validate:"required,max=255"`
	TaxID            *string `json:"tax_id" validate:"omitempty,max=50"`
	AddressLine1     *string `json:"address_line1" validate:"omitempty,max=255"`
	AddressLine2     *string `json:"address_line2" validate:"omitempty,max=255"`
	City             *string `json:"city" validate:"omitempty,max=255"`
	PostalCode       *string `json:"postal_code" validate:"omitempty,max=20"`
	Country          *string `json:"country" validate:"omitempty,max=100"`
	Phone            *string `json:"phone" validate:"omitempty,max=100"`
	Email            *string `json:"email" validate:"omitempty,email,max=255"`
	PaymentTermsDays *int    `json:"payment_terms_days" validate:"omitempty,gte=0"`
}

func (c *ClientInput) Validate() string {
	c.Name = strings.TrimSpace(c.Name)
	c.TaxID = trimOptional(c.TaxID)
	c.AddressLine1 = trimOptional(c.AddressLine1)
	c.AddressLine2 = trimOptional(c.AddressLine2)
	c.City = trimOptional(c.City)
	c.PostalCode = trimOptional(c.PostalCode)
	c.Country = trimOptional(c.Country)
	c.Phone = trimOptional(c.Phone)
	c.Email = trimOptional(c.Email)
	return validateStruct(c)
}
