package invoicing

import (
	"context"
	"fmt"

	"github.com/satheeshds/invoicing/models"
)

// CreateInvoice opens a draft for an active client. The due date is the
// issue date plus the client's effective payment terms.
func (s *Service) CreateInvoice(ctx context.Context, in models.InvoiceInput) (*models.Invoice, error) {
	issueDate, err := in.IssueDateOr(s.now())
	if err != nil {
		return nil, fmt.Errorf("parsing issue date: %w", err)
	}
	inv := &models.Invoice{
		Status:    models.InvoiceStatusDraft,
		IssueDate: issueDate,
		ClientID:  in.ClientID,
		Currency:  in.Currency,
		IGIRate:   in.IGIRate,
		Notes:     in.Notes,
	}
	err = s.repo.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.applyClientTerms(ctx, inv); err != nil {
			return err
		}
		return s.repo.InsertInvoice(ctx, inv)
	})
	if err != nil {
		return nil, err
	}
	return inv, nil
}

// UpdateHeader replaces the header fields of a draft and recomputes its due
// date.
func (s *Service) UpdateHeader(ctx context.Context, id int, in models.InvoiceInput) (*models.Invoice, error) {
	issueDate, err := in.IssueDateOr(s.now())
	if err != nil {
		return nil, fmt.Errorf("parsing issue date: %w", err)
	}
	var out *models.Invoice
	err = s.repo.RunInTx(ctx, func(ctx context.Context) error {
		inv, err := s.repo.LockInvoice(ctx, id)
		if err != nil {
			return err
		}
		if err := GuardMutable(inv); err != nil {
			return err
		}
		inv.IssueDate = issueDate
		inv.ClientID = in.ClientID
		inv.Currency = in.Currency
		inv.IGIRate = in.IGIRate
		inv.Notes = in.Notes
		if err := s.applyClientTerms(ctx, inv); err != nil {
			return err
		}
		if err := s.repo.UpdateInvoiceHeader(ctx, inv); err != nil {
			return err
		}
		out = inv
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// applyClientTerms loads the invoice's client and sets the due date from the
// effective payment terms. Soft-deleted clients cannot be invoiced.
func (s *Service) applyClientTerms(ctx context.Context, inv *models.Invoice) error {
	client, err := s.repo.GetClient(ctx, inv.ClientID)
	if err != nil {
		return err
	}
	if client.IsDeleted {
		return fmt.Errorf("client %d is deleted: %w", client.ID, ErrNotFound)
	}
	company, err := s.repo.GetCompany(ctx)
	if err != nil {
		return err
	}
	inv.Client = client
	inv.DueDate = inv.IssueDate.AddDate(0, 0, EffectiveTermsDays(client, company))
	return nil
}

// AddLine appends a line to a draft invoice.
func (s *Service) AddLine(ctx context.Context, invoiceID int, in models.LineInput) (*models.InvoiceLine, error) {
	var line *models.InvoiceLine
	err := s.repo.RunInTx(ctx, func(ctx context.Context) error {
		inv, err := s.repo.LockInvoice(ctx, invoiceID)
		if err != nil {
			return err
		}
		if err := GuardMutable(inv); err != nil {
			return err
		}
		next := 1
		for _, l := range inv.Lines {
			if l.SortOrder >= next {
				next = l.SortOrder + 1
			}
		}
		line = &models.InvoiceLine{
			InvoiceID:   inv.ID,
			Description: in.Description,
			Qty:         in.Qty,
			UnitPrice:   in.UnitPrice,
			DiscountPct: in.DiscountPct,
			SortOrder:   next,
		}
		return s.repo.InsertLine(ctx, line)
	})
	if err != nil {
		return nil, err
	}
	return line, nil
}

// DeleteLine removes a line from a draft invoice.
func (s *Service) DeleteLine(ctx context.Context, invoiceID, lineID int) error {
	return s.repo.RunInTx(ctx, func(ctx context.Context) error {
		inv, err := s.repo.LockInvoice(ctx, invoiceID)
		if err != nil {
			return err
		}
		if err := GuardMutable(inv); err != nil {
			return err
		}
		return s.repo.DeleteLine(ctx, invoiceID, lineID)
	})
}
