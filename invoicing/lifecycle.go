package invoicing

import (
	"fmt"

	"github.com/satheeshds/invoicing/models"
)

// GuardMutable rejects header and line changes on invoices that have left
// the draft state.
func GuardMutable(inv *models.Invoice) error {
	if inv.Status != models.InvoiceStatusDraft {
		return fmt.Errorf("invoice %d is %s: %w", inv.ID, inv.Status, ErrInvalidState)
	}
	return nil
}

// CanIssue reports whether inv is a draft with at least one line.
func CanIssue(inv *models.Invoice) bool {
	return inv.Status == models.InvoiceStatusDraft && len(inv.Lines) > 0
}

// ValidateIssuable explains why CanIssue is false.
func ValidateIssuable(inv *models.Invoice) error {
	if err := GuardMutable(inv); err != nil {
		return err
	}
	if len(inv.Lines) == 0 {
		return fmt.Errorf("invoice %d: %w", inv.ID, ErrEmptyInvoice)
	}
	return nil
}

// EffectiveTermsDays resolves the payment terms for a client: its own
// override, else the company default, else zero. Either argument may be nil.
func EffectiveTermsDays(client *models.Client, company *models.Company) int {
	if client != nil && client.PaymentTermsDays != nil {
		return *client.PaymentTermsDays
	}
	if company != nil && company.PaymentTermsDays != nil {
		return *company.PaymentTermsDays
	}
	return 0
}
