package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

// NewRouter wires every API route. DB and Invoices must be set first.
func NewRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger)
	r.Use(middleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		// Clients
		r.Get("/clients", ListClients)
		r.Post("/clients", CreateClient)
		r.Get("/clients/{id}", GetClient)
		r.Put("/clients/{id}", UpdateClient)
		r.Delete("/clients/{id}", DeleteClient)
		r.Post("/clients/{id}/restore", RestoreClient)

		// Company
		r.Get("/company", GetCompany)
		r.Put("/company", SaveCompany)

		// Invoices
		r.Get("/invoices", ListInvoices)
		r.Post("/invoices", CreateInvoice)
		r.Get("/invoices/{id}", GetInvoice)
		r.Put("/invoices/{id}", UpdateInvoice)
		r.Delete("/invoices/{id}", DeleteInvoice)
		r.Post("/invoices/{id}/lines", AddInvoiceLine)
		r.Delete("/invoices/{id}/lines/{lineId}", DeleteInvoiceLine)
		r.Post("/invoices/{id}/issue", IssueInvoice)
		r.Post("/invoices/{id}/pay", PayInvoice)
		r.Get("/invoices/{id}/pdf", GetInvoicePDF)

		// Register
		r.Get("/register", GetRegister)
	})

	// Swagger UI
	r.Get("/swagger/*", httpSwagger.WrapHandler)
	return r
}
