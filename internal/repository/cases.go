package repository

import (
	"context"

	"legalapi/internal/model"
)

// CaseRepository defines data access for cases, including the joined
// read projections and the full-text search query.
type CaseRepository interface {
	// List applies the recognized filters and limit/offset pagination,
	// ordered by opened_date descending.
	List(ctx context.Context, f model.CaseFilter) ([]model.CaseSummary, error)

	// FindByID returns the joined detail projection (without receipts),
	// or sql.ErrNoRows.
	FindByID(ctx context.Context, id string) (*model.CaseDetail, error)

	// ByClient returns a client's cases with the lawyer's display name,
	// newest first.
	ByClient(ctx context.Context, clientID string) ([]model.ClientCase, error)

	Create(ctx context.Context, c *model.Case) (*model.Case, error)

	// Update applies the supplied fields and stamps updated_at; returns
	// apperr.ErrNoFields when the update carries nothing.
	Update(ctx context.Context, id string, u model.CaseUpdate) (*model.Case, error)

	Delete(ctx context.Context, id string) error

	// Search matches the query text against the precomputed weighted
	// search document using Spanish stemming.
	Search(ctx context.Context, query string) ([]model.Case, error)
}
