// Package invoicing holds the invoice lifecycle: draft editing, issuing with
// a year-scoped gapless number, and the snapshot frozen at issue.
package invoicing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/satheeshds/invoicing/logger"
	"github.com/satheeshds/invoicing/models"
)

// maxIssueAttempts bounds how often issuing is retried after an invoice
// number conflict.
const maxIssueAttempts = 2

// Repository is the persistence the service needs. Every method called from
// inside RunInTx must use the transaction carried by ctx.
type Repository interface {
	// RunInTx runs fn in one transaction, committing when fn returns nil
	// and rolling back otherwise.
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error

	// LockInvoice loads an invoice with its lines and client, holding a row
	// lock on the invoice until the transaction ends. Missing invoices
	// return ErrNotFound.
	LockInvoice(ctx context.Context, id int) (*models.Invoice, error)
	GetClient(ctx context.Context, id int) (*models.Client, error)
	// GetCompany returns nil, nil while no company profile has been saved.
	GetCompany(ctx context.Context) (*models.Company, error)

	// NextSequenceNumber returns the next number for year and advances the
	// counter, serialising concurrent callers for the same year.
	NextSequenceNumber(ctx context.Context, year int) (int, error)
	// SaveIssueSnapshot persists status, number and snapshot fields. A
	// duplicate invoice number returns ErrIntegrityConflict.
	SaveIssueSnapshot(ctx context.Context, inv *models.Invoice) error

	InsertInvoice(ctx context.Context, inv *models.Invoice) error
	UpdateInvoiceHeader(ctx context.Context, inv *models.Invoice) error
	UpdateInvoiceStatus(ctx context.Context, id int, status models.InvoiceStatus) error
	InsertLine(ctx context.Context, line *models.InvoiceLine) error
	DeleteLine(ctx context.Context, invoiceID, lineID int) error
}

// Service runs invoice operations, each in its own transaction.
type Service struct {
	repo Repository
	log  zerolog.Logger
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		log:  logger.WithComponent("invoicing"),
		now:  time.Now,
	}
}

// Issue freezes a draft invoice and gives it the next number of its issue
// year. Issuing an invoice that is already issued or paid returns it
// unchanged.
func (s *Service) Issue(ctx context.Context, id int) (*models.Invoice, error) {
	var err error
	for attempt := 1; attempt <= maxIssueAttempts; attempt++ {
		var inv *models.Invoice
		inv, err = s.issueOnce(ctx, id)
		if err == nil {
			return inv, nil
		}
		if !errors.Is(err, ErrIntegrityConflict) {
			return nil, err
		}
		s.log.Warn().Err(err).Int("invoice_id", id).Int("attempt", attempt).Msg("invoice number conflict")
	}
	return nil, fmt.Errorf("issuing invoice %d: %w", id, err)
}

func (s *Service) issueOnce(ctx context.Context, id int) (*models.Invoice, error) {
	var out *models.Invoice
	alreadyFinal := false
	err := s.repo.RunInTx(ctx, func(ctx context.Context) error {
		inv, err := s.repo.LockInvoice(ctx, id)
		if err != nil {
			return err
		}
		if inv.IsFinalized() {
			out, alreadyFinal = inv, true
			return nil
		}
		if err := ValidateIssuable(inv); err != nil {
			return err
		}
		if inv.Client == nil {
			return fmt.Errorf("invoice %d: client %d: %w", inv.ID, inv.ClientID, ErrNotFound)
		}
		company, err := s.repo.GetCompany(ctx)
		if err != nil {
			return err
		}

		n, err := s.repo.NextSequenceNumber(ctx, inv.IssueDate.Year())
		if err != nil {
			return fmt.Errorf("allocating invoice number: %w", err)
		}
		captureSnapshot(inv, company, n).apply(inv)
		if err := s.repo.SaveIssueSnapshot(ctx, inv); err != nil {
			return err
		}
		out = inv
		return nil
	})
	if err != nil {
		return nil, err
	}
	if alreadyFinal {
		s.log.Debug().Int("invoice_id", id).Str("status", string(out.Status)).Msg("invoice already issued")
	} else {
		s.log.Info().
			Int("invoice_id", id).
			Str("invoice_number", *out.InvoiceNumber).
			Str("total", out.TotalSnapshot.StringFixed(2)).
			Msg("invoice issued")
	}
	return out, nil
}

// MarkPaid moves an issued invoice to paid. The snapshot is untouched.
func (s *Service) MarkPaid(ctx context.Context, id int) (*models.Invoice, error) {
	var out *models.Invoice
	err := s.repo.RunInTx(ctx, func(ctx context.Context) error {
		inv, err := s.repo.LockInvoice(ctx, id)
		if err != nil {
			return err
		}
		switch inv.Status {
		case models.InvoiceStatusPaid:
		case models.InvoiceStatusIssued:
			if err := s.repo.UpdateInvoiceStatus(ctx, id, models.InvoiceStatusPaid); err != nil {
				return err
			}
			inv.Status = models.InvoiceStatusPaid
		default:
			return fmt.Errorf("invoice %d must be issued before it is paid: %w", id, ErrInvalidState)
		}
		out = inv
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
