package repository

import (
	"context"

	"legalapi/internal/model"
)

// CaseDocumentRepository defines data access for case document metadata.
// File content lives in object storage; rows here carry metadata only.
type CaseDocumentRepository interface {
	Create(ctx context.Context, d *model.CaseDocument) (*model.CaseDocument, error)

	// FindByID returns a document row by id, or sql.ErrNoRows.
	FindByID(ctx context.Context, id string) (*model.CaseDocument, error)

	// ByCase returns a case's documents, newest first.
	ByCase(ctx context.Context, caseID string) ([]model.CaseDocument, error)

	Delete(ctx context.Context, id string) error
}
