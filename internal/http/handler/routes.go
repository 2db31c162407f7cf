package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"legalapi/internal/service"
)

// Services groups everything the HTTP surface depends on.
type Services struct {
	Lawyers   service.LawyerService
	Clients   service.ClientService
	Cases     service.CaseService
	Receipts  service.ReceiptService
	Invoices  service.InvoiceService
	Search    service.SearchService
	Documents service.CaseDocumentService
}

// RegisterRoutes attaches all HTTP routes to the provided Fiber app.
// Handlers stay free of business logic; they parse, delegate, and map
// errors.
func RegisterRoutes(app *fiber.App, db *sql.DB, s Services) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", Liveness())

	app.Get("/lawyers", ListLawyers(s.Lawyers))
	app.Post("/lawyers", CreateLawyer(s.Lawyers))
	app.Get("/lawyers/:id", GetLawyer(s.Lawyers))
	app.Put("/lawyers/:id", UpdateLawyer(s.Lawyers))
	app.Delete("/lawyers/:id", DeleteLawyer(s.Lawyers))

	app.Get("/clients", ListClients(s.Clients))
	app.Post("/clients", CreateClient(s.Clients))
	app.Get("/clients/:id", GetClient(s.Clients))
	app.Put("/clients/:id", UpdateClient(s.Clients))
	app.Delete("/clients/:id", DeleteClient(s.Clients))

	app.Get("/cases", ListCases(s.Cases))
	app.Post("/cases", CreateCase(s.Cases))
	app.Get("/cases/:caseId", GetCase(s.Cases))
	app.Put("/cases/:caseId", UpdateCase(s.Cases))
	app.Delete("/cases/:caseId", DeleteCase(s.Cases))

	app.Post("/cases/:caseId/documents", UploadCaseDocument(s.Documents))
	app.Get("/cases/:caseId/documents", ListCaseDocuments(s.Documents))
	app.Get("/documents/:id/download", DownloadCaseDocument(s.Documents))
	app.Get("/documents/:id/url", PresignCaseDocument(s.Documents))
	app.Delete("/documents/:id", DeleteCaseDocument(s.Documents))

	app.Get("/receipts", ListReceipts(s.Receipts))
	app.Post("/receipts", CreateReceipt(s.Receipts))
	app.Get("/receipts/lawyer/:lawyerId", ListReceiptsByLawyer(s.Receipts))
	app.Get("/receipts/client/:clientId", ListReceiptsByClient(s.Receipts))
	app.Get("/receipts/:id", GetReceipt(s.Receipts))
	app.Put("/receipts/:id", UpdateReceipt(s.Receipts))
	app.Delete("/receipts/:id", DeleteReceipt(s.Receipts))

	app.Get("/invoices", ListInvoices(s.Invoices))
	app.Post("/invoices", CreateInvoice(s.Invoices))
	app.Get("/invoices/:id", GetInvoice(s.Invoices))
	app.Put("/invoices/:id", UpdateInvoice(s.Invoices))
	app.Delete("/invoices/:id", DeleteInvoice(s.Invoices))

	app.Get("/search", SearchCases(s.Search))
}
