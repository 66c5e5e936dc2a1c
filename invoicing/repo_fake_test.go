package invoicing

import (
	"context"
	"fmt"
	"maps"
	"sync"

	"github.com/satheeshds/invoicing/models"
)

// memRepo is an in-memory Repository. A transaction holds txMu for its whole
// duration and restores the previous state when fn fails, which mirrors the
// row locks and rollback of the Postgres store closely enough for the
// service's contract.
type memRepo struct {
	txMu sync.Mutex

	invoices  map[int]models.Invoice
	lines     map[int]models.InvoiceLine
	clients   map[int]models.Client
	company   *models.Company
	sequences map[int]int
	nextID    int

	// conflictsLeft makes SaveIssueSnapshot fail with ErrIntegrityConflict
	// that many times.
	conflictsLeft int
	// failSave, when set, is returned by SaveIssueSnapshot.
	failSave error
}

type memState struct {
	invoices  map[int]models.Invoice
	lines     map[int]models.InvoiceLine
	sequences map[int]int
	nextID    int
}

func newMemRepo() *memRepo {
	return &memRepo{
		invoices:  map[int]models.Invoice{},
		lines:     map[int]models.InvoiceLine{},
		clients:   map[int]models.Client{},
		sequences: map[int]int{},
		nextID:    100,
	}
}

func (r *memRepo) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	r.txMu.Lock()
	defer r.txMu.Unlock()
	saved := memState{
		invoices:  maps.Clone(r.invoices),
		lines:     maps.Clone(r.lines),
		sequences: maps.Clone(r.sequences),
		nextID:    r.nextID,
	}
	if err := fn(ctx); err != nil {
		r.invoices, r.lines, r.sequences, r.nextID = saved.invoices, saved.lines, saved.sequences, saved.nextID
		return err
	}
	return nil
}

func (r *memRepo) id() int {
	r.nextID++
	return r.nextID
}

func (r *memRepo) LockInvoice(_ context.Context, id int) (*models.Invoice, error) {
	inv, ok := r.invoices[id]
	if !ok {
		return nil, fmt.Errorf("invoice %d: %w", id, ErrNotFound)
	}
	inv.Lines = r.linesOf(id)
	if c, ok := r.clients[inv.ClientID]; ok {
		inv.Client = &c
	}
	return &inv, nil
}

func (r *memRepo) linesOf(invoiceID int) []models.InvoiceLine {
	var out []models.InvoiceLine
	for _, l := range r.lines {
		if l.InvoiceID == invoiceID {
			out = append(out, l)
		}
	}
	models.SortLines(out)
	return out
}

func (r *memRepo) GetClient(_ context.Context, id int) (*models.Client, error) {
	c, ok := r.clients[id]
	if !ok {
		return nil, fmt.Errorf("client %d: %w", id, ErrNotFound)
	}
	return &c, nil
}

func (r *memRepo) GetCompany(context.Context) (*models.Company, error) {
	if r.company == nil {
		return nil, nil
	}
	c := *r.company
	return &c, nil
}

func (r *memRepo) NextSequenceNumber(_ context.Context, year int) (int, error) {
	n := r.sequences[year]
	if n == 0 {
		n = 1
	}
	r.sequences[year] = n + 1
	return n, nil
}

func (r *memRepo) SaveIssueSnapshot(_ context.Context, inv *models.Invoice) error {
	if r.failSave != nil {
		return r.failSave
	}
	if r.conflictsLeft > 0 {
		r.conflictsLeft--
		return fmt.Errorf("saving invoice %d: %w", inv.ID, ErrIntegrityConflict)
	}
	for id, other := range r.invoices {
		if id != inv.ID && other.InvoiceNumber != nil && *other.InvoiceNumber == *inv.InvoiceNumber {
			return fmt.Errorf("saving invoice %d: %w", inv.ID, ErrIntegrityConflict)
		}
	}
	r.store(inv)
	return nil
}

func (r *memRepo) store(inv *models.Invoice) {
	row := *inv
	row.Lines, row.Client = nil, nil
	r.invoices[inv.ID] = row
}

func (r *memRepo) InsertInvoice(_ context.Context, inv *models.Invoice) error {
	inv.ID = r.id()
	r.store(inv)
	return nil
}

func (r *memRepo) UpdateInvoiceHeader(_ context.Context, inv *models.Invoice) error {
	r.store(inv)
	return nil
}

func (r *memRepo) UpdateInvoiceStatus(_ context.Context, id int, status models.InvoiceStatus) error {
	inv := r.invoices[id]
	inv.Status = status
	r.invoices[id] = inv
	return nil
}

func (r *memRepo) InsertLine(_ context.Context, line *models.InvoiceLine) error {
	line.ID = r.id()
	r.lines[line.ID] = *line
	return nil
}

func (r *memRepo) DeleteLine(_ context.Context, invoiceID, lineID int) error {
	l, ok := r.lines[lineID]
	if !ok || l.InvoiceID != invoiceID {
		return fmt.Errorf("line %d: %w", lineID, ErrNotFound)
	}
	delete(r.lines, lineID)
	return nil
}
