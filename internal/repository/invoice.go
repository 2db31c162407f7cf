package repository

import (
	"context"

	"legalapi/internal/model"
)

// InvoiceRepository defines data access for invoices.
type InvoiceRepository interface {
	List(ctx context.Context) ([]model.Invoice, error)

	// FindByID returns an invoice by id, or sql.ErrNoRows.
	FindByID(ctx context.Context, id string) (*model.Invoice, error)

	Create(ctx context.Context, inv *model.Invoice) (*model.Invoice, error)

	// Update applies the supplied fields only; returns
	// apperr.ErrNoFields when the update carries nothing.
	Update(ctx context.Context, id string, u model.InvoiceUpdate) (*model.Invoice, error)

	Delete(ctx context.Context, id string) error
}
