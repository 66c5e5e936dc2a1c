package invoicing

import "errors"

// Sentinel errors. Callers match them with errors.Is; the presentation layer
// maps them to status codes.
var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidState      = errors.New("invoice is not a draft")
	ErrEmptyInvoice      = errors.New("invoice has no lines")
	ErrIntegrityConflict = errors.New("invoice number already taken")
)
