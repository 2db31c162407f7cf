package repository

import (
	"context"

	"legalapi/internal/model"
)

// LawyerRepository defines data access for lawyers using SQL queries
// only. No business logic here — strictly persistence operations.
type LawyerRepository interface {
	List(ctx context.Context) ([]model.Lawyer, error)

	// FindByID returns a lawyer by id, or sql.ErrNoRows.
	FindByID(ctx context.Context, id string) (*model.Lawyer, error)

	// Create inserts the lawyer and returns the stored row with
	// database-assigned defaults filled in.
	Create(ctx context.Context, l *model.Lawyer) (*model.Lawyer, error)

	// Update applies the supplied fields only; returns
	// apperr.ErrNoFields when the update carries nothing.
	Update(ctx context.Context, id string, u model.LawyerUpdate) (*model.Lawyer, error)

	Delete(ctx context.Context, id string) error
}
