package models

import "time"

// InvoiceSequence holds the next invoice number for one calendar year.
type InvoiceSequence struct {
	ID         int       `json:"id"`
	YearFull   int       `json:"year_full"`
	NextNumber int       `json:"next_number"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
