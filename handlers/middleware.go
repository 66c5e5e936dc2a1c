package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/satheeshds/invoicing/db"
	"github.com/satheeshds/invoicing/invoicing"
	"github.com/satheeshds/invoicing/logger"
	"github.com/satheeshds/invoicing/models"
	"github.com/satheeshds/invoicing/pdf"
)

// Response is the standard JSON envelope for all API responses.
type Response struct {
	Data  any    `json:"data"`
	Error string `json:"error,omitempty"`
}

// Store is the persistence used by the handlers directly. Invoice mutations
// go through the invoicing service instead.
type Store interface {
	ListClients(ctx context.Context, deleted bool) ([]models.Client, error)
	GetClient(ctx context.Context, id int) (*models.Client, error)
	CreateClient(ctx context.Context, in models.ClientInput) (*models.Client, error)
	UpdateClient(ctx context.Context, id int, in models.ClientInput) (*models.Client, error)
	SetClientDeleted(ctx context.Context, id int, deleted bool) (*models.Client, error)

	GetCompany(ctx context.Context) (*models.Company, error)
	SaveCompany(ctx context.Context, in models.CompanyInput) (*models.Company, error)

	ListInvoices(ctx context.Context, f db.InvoiceFilter) ([]models.Invoice, error)
	ListIssuedInvoices(ctx context.Context, year int) ([]models.Invoice, error)
	GetInvoice(ctx context.Context, id int) (*models.Invoice, error)
	DeleteInvoice(ctx context.Context, id int) error
}

var (
	// DB is the shared store used by all handlers.
	DB Store
	// Invoices runs the invoice lifecycle operations.
	Invoices *invoicing.Service
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(Response{Data: data})
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(Response{Error: msg})
}

// errorStatus maps domain errors to HTTP status codes.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, invoicing.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, invoicing.ErrInvalidState), errors.Is(err, invoicing.ErrIntegrityConflict):
		return http.StatusConflict
	case errors.Is(err, invoicing.ErrEmptyInvoice):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// writeServiceError writes err with its mapped status. Server-side failures
// are logged; their details are not sent to the client.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status := errorStatus(err)
	if status < http.StatusInternalServerError {
		writeError(w, status, err.Error())
		return
	}
	log := logger.WithComponent("http")
	event := log.Error().Err(err).Str("request_id", middleware.GetReqID(r.Context()))
	if errors.Is(err, pdf.ErrMissingSnapshot) {
		event = event.Bool("data_integrity", true)
	}
	event.Msg("request failed")
	writeError(w, status, "internal error")
}

// decode reads a JSON body into v and validates it.
func decode[T interface{ Validate() string }](w http.ResponseWriter, r *http.Request, v T) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return false
	}
	if msg := v.Validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return false
	}
	return true
}

// intParam reads a positive integer URL parameter, writing a 400 when it is
// malformed.
func intParam(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	v, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil || v <= 0 {
		writeError(w, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return v, true
}

// RequestLogger logs one line per request through zerolog.
func RequestLogger(next http.Handler) http.Handler {
	log := logger.WithComponent("http")
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		defer func() {
			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			event := log.Info()
			if status >= http.StatusInternalServerError {
				event = log.Error()
			}
			event.
				Str("request_id", middleware.GetReqID(r.Context())).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", status).
				Int("bytes", ww.BytesWritten()).
				Dur("duration", time.Since(start)).
				Msg("request")
		}()
		next.ServeHTTP(ww, r)
	})
}
