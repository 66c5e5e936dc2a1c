package handlers

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/satheeshds/invoicing/db"
	"github.com/satheeshds/invoicing/invoicing"
	"github.com/satheeshds/invoicing/models"
)

// fakeStore backs both the handlers and the invoicing service in memory.
// Handler tests run sequentially, so RunInTx needs no isolation.
type fakeStore struct {
	clients   map[int]models.Client
	company   *models.Company
	invoices  map[int]models.Invoice
	lines     map[int]models.InvoiceLine
	sequences map[int]int
	nextID    int
}

var (
	_ Store                = (*fakeStore)(nil)
	_ invoicing.Repository = (*fakeStore)(nil)
)

func newFakeStore() *fakeStore {
	return &fakeStore{
		clients:   map[int]models.Client{},
		invoices:  map[int]models.Invoice{},
		lines:     map[int]models.InvoiceLine{},
		sequences: map[int]int{},
	}
}

func (f *fakeStore) id() int {
	f.nextID++
	return f.nextID
}

func notFound(kind string, id int) error {
	return fmt.Errorf("%s %d: %w", kind, id, invoicing.ErrNotFound)
}

func (f *fakeStore) ListClients(_ context.Context, deleted bool) ([]models.Client, error) {
	var out []models.Client
	for _, c := range f.clients {
		if c.IsDeleted == deleted {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Name < out[b].Name })
	return out, nil
}

func (f *fakeStore) GetClient(_ context.Context, id int) (*models.Client, error) {
	c, ok := f.clients[id]
	if !ok {
		return nil, notFound("client", id)
	}
	return &c, nil
}

func clientFrom(id int, in models.ClientInput) models.Client {
	return models.Client{
		ID: id, Name: in.Name, TaxID: in.TaxID, AddressLine1: in.AddressLine1,
		AddressLine2: in.AddressLine2, City: in.City, PostalCode: in.PostalCode,
		Country: in.Country, Phone: in.Phone, Email: in.Email,
		PaymentTermsDays: in.PaymentTermsDays, CreatedAt: time.Now(), UpdatedAt: time.Now(),
	}
}

func (f *fakeStore) CreateClient(_ context.Context, in models.ClientInput) (*models.Client, error) {
	c := clientFrom(f.id(), in)
	f.clients[c.ID] = c
	return &c, nil
}

func (f *fakeStore) UpdateClient(_ context.Context, id int, in models.ClientInput) (*models.Client, error) {
	old, ok := f.clients[id]
	if !ok {
		return nil, notFound("client", id)
	}
	c := clientFrom(id, in)
	c.IsDeleted = old.IsDeleted
	f.clients[id] = c
	return &c, nil
}

func (f *fakeStore) SetClientDeleted(_ context.Context, id int, deleted bool) (*models.Client, error) {
	c, ok := f.clients[id]
	if !ok {
		return nil, notFound("client", id)
	}
	c.IsDeleted = deleted
	f.clients[id] = c
	return &c, nil
}

func (f *fakeStore) GetCompany(context.Context) (*models.Company, error) {
	if f.company == nil {
		return nil, nil
	}
	c := *f.company
	return &c, nil
}

func (f *fakeStore) SaveCompany(_ context.Context, in models.CompanyInput) (*models.Company, error) {
	f.company = &models.Company{ID: 1, Name: in.Name, TaxID: in.TaxID, PaymentTermsDays: in.PaymentTermsDays, Notes: in.Notes}
	return f.GetCompany(context.Background())
}

func (f *fakeStore) withRelations(inv models.Invoice) models.Invoice {
	inv.Lines = []models.InvoiceLine{}
	for _, l := range f.lines {
		if l.InvoiceID == inv.ID {
			inv.Lines = append(inv.Lines, l)
		}
	}
	models.SortLines(inv.Lines)
	if c, ok := f.clients[inv.ClientID]; ok {
		inv.Client = &c
	}
	return inv
}

func (f *fakeStore) ListInvoices(_ context.Context, filter db.InvoiceFilter) ([]models.Invoice, error) {
	var out []models.Invoice
	for _, inv := range f.invoices {
		if filter.Status != "" && inv.Status != filter.Status {
			continue
		}
		if filter.ClientID != 0 && inv.ClientID != filter.ClientID {
			continue
		}
		if filter.Year != 0 && inv.IssueDate.Year() != filter.Year {
			continue
		}
		out = append(out, f.withRelations(inv))
	}
	sort.Slice(out, func(a, b int) bool { return out[a].ID > out[b].ID })
	return out, nil
}

func (f *fakeStore) ListIssuedInvoices(_ context.Context, year int) ([]models.Invoice, error) {
	var out []models.Invoice
	for _, inv := range f.invoices {
		if inv.IsFinalized() && inv.IssueDate.Year() == year {
			out = append(out, f.withRelations(inv))
		}
	}
	sort.Slice(out, func(a, b int) bool { return *out[a].Number < *out[b].Number })
	return out, nil
}

func (f *fakeStore) GetInvoice(_ context.Context, id int) (*models.Invoice, error) {
	inv, ok := f.invoices[id]
	if !ok {
		return nil, notFound("invoice", id)
	}
	inv = f.withRelations(inv)
	return &inv, nil
}

func (f *fakeStore) DeleteInvoice(_ context.Context, id int) error {
	if _, ok := f.invoices[id]; !ok {
		return notFound("invoice", id)
	}
	delete(f.invoices, id)
	for lid, l := range f.lines {
		if l.InvoiceID == id {
			delete(f.lines, lid)
		}
	}
	return nil
}

func (f *fakeStore) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (f *fakeStore) LockInvoice(ctx context.Context, id int) (*models.Invoice, error) {
	return f.GetInvoice(ctx, id)
}

func (f *fakeStore) NextSequenceNumber(_ context.Context, year int) (int, error) {
	n := f.sequences[year]
	if n == 0 {
		n = 1
	}
	f.sequences[year] = n + 1
	return n, nil
}

func (f *fakeStore) put(inv *models.Invoice) {
	row := *inv
	row.Lines, row.Client = nil, nil
	f.invoices[inv.ID] = row
}

func (f *fakeStore) SaveIssueSnapshot(_ context.Context, inv *models.Invoice) error {
	f.put(inv)
	return nil
}

func (f *fakeStore) InsertInvoice(_ context.Context, inv *models.Invoice) error {
	inv.ID = f.id()
	f.put(inv)
	return nil
}

func (f *fakeStore) UpdateInvoiceHeader(_ context.Context, inv *models.Invoice) error {
	f.put(inv)
	return nil
}

func (f *fakeStore) UpdateInvoiceStatus(_ context.Context, id int, status models.InvoiceStatus) error {
	inv := f.invoices[id]
	inv.Status = status
	f.invoices[id] = inv
	return nil
}

func (f *fakeStore) InsertLine(_ context.Context, line *models.InvoiceLine) error {
	line.ID = f.id()
	f.lines[line.ID] = *line
	return nil
}

func (f *fakeStore) DeleteLine(_ context.Context, invoiceID, lineID int) error {
	l, ok := f.lines[lineID]
	if !ok || l.InvoiceID != invoiceID {
		return notFound("line", lineID)
	}
	delete(f.lines, lineID)
	return nil
}
