package models

import (
	"strings"
	"time"
)

// Company is the issuer profile. There is at most one row.
type Company struct {
	ID               int       `json:"id"`
	Name             string    `json:"name"`
	TaxID            *string   `json:"tax_id"`
	Phone            *string   `json:"phone"`
	AddressLine1     *string   `json:"address_line1"`
	AddressLine2     *string   `json:"address_line2"`
	City             *string   `json:"city"`
	PostalCode       *string   `json:"postal_code"`
	Country          *string   `json:"country"`
	Email            *string   `json:"email"`
	BankAccount      *string   `json:"bank_account"`
	BankSwift        *string   `json:"bank_swift"`
	PaymentTermsDays *int      `json:"payment_terms_days"` // default for clients without their own terms
	Notes            *string   `json:"notes"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// CompanyInput is used for saving the company profile.
type CompanyInput struct {
	Name             string  `json:"name" validate:"required,max=255"`
	TaxID            *string `json:"tax_id" validate:"omitempty,max=50"`
	Phone            *string `json:"phone" validate:"omitempty,max=100"`
	AddressLine1     *string `json:"address_line1" validate:"omitempty,max=255"`
	AddressLine2     *string `json:"address_line2" validate:"omitempty,max=255"`
	City             *string `json:"city" validate:"omitempty,max=255"`
	PostalCode       *string `json:"postal_code" validate:"omitempty,max=20"`
	Country          *string `json:"country" validate:"omitempty,max=100"`
	Email            *string `json:"email" validate:"omitempty,email,max=255"`
	BankAccount      *string `json:"bank_account" validate:"omitempty,max=255"`
	BankSwift        *string `json:"bank_swift" validate:"omitempty,max=255"`
	PaymentTermsDays *int    `json:"payment_terms_days" validate:"omitempty,gte=0"`
	Notes            *string `json:"notes" validate:"omitempty,max=500"`
}

func (c *CompanyInput) Validate() string {
	c.Name = strings.TrimSpace(c.Name)
	c.TaxID = trimOptional(c.TaxID)
	c.Phone = trimOptional(c.Phone)
	c.AddressLine1 = trimOptional(c.AddressLine1)
	c.AddressLine2 = trimOptional(c.AddressLine2)
	c.City = trimOptional(c.City)
	c.PostalCode = trimOptional(c.PostalCode)
	c.Country = trimOptional(c.Country)
	c.Email = trimOptional(c.Email)
	c.BankAccount = trimOptional(c.BankAccount)
	c.BankSwift = trimOptional(c.BankSwift)
	c.Notes = trimOptional(c.Notes)
	return validateStruct(c)
}
