package repository

import (
	"context"

	"legalapi/internal/model"
)

// ReceiptRepository defines data access for receipts and their joined
// display projections. All listings are ordered by payment_date
// descending.
type ReceiptRepository interface {
	// List returns all receipts with client and lawyer names.
	List(ctx context.Context) ([]model.ReceiptWithNames, error)

	// FindByID returns a receipt with names and the linked case title,
	// or sql.ErrNoRows.
	FindByID(ctx context.Context, id string) (*model.ReceiptWithNames, error)

	// ByLawyer returns a lawyer's receipts with the client name.
	ByLawyer(ctx context.Context, lawyerID string) ([]model.ReceiptWithNames, error)

	// ByClient returns a client's receipts with the lawyer name.
	ByClient(ctx context.Context, clientID string) ([]model.ReceiptWithNames, error)

	// ByCase returns the trimmed receipt rows nested under a case.
	ByCase(ctx context.Context, caseID string) ([]model.CaseReceipt, error)

	Create(ctx context.Context, r *model.Receipt) (*model.Receipt, error)

	// Update applies the supplied fields only; returns
	// apperr.ErrNoFields when the update carries nothing.
	Update(ctx context.Context, id string, u model.ReceiptUpdate) (*model.Receipt, error)

	Delete(ctx context.Context, id string) error
}
