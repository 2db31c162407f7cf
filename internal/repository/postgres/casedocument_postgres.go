package postgres

import (
	"context"
	"database/sql"

	"legalapi/internal/model"
	"legalapi/internal/repository"
)

const caseDocumentColumns = "id, case_id, filename, storage_path, size, content_type, uploaded_at"

// CaseDocumentPostgres is a PostgreSQL implementation of
// repository.CaseDocumentRepository.
type CaseDocumentPostgres struct {
	db *sql.DB
}

// NewCaseDocumentPostgres creates a new CaseDocumentPostgres repository.
func NewCaseDocumentPostgres(db *sql.DB) *CaseDocumentPostgres {
	return &CaseDocumentPostgres{db: db}
}

var _ repository.CaseDocumentRepository = (*CaseDocumentPostgres)(nil)

func scanCaseDocument(row interface{ Scan(...any) error }) (*model.CaseDocument, error) {
	var d model.CaseDocument
	if err := row.Scan(
		&d.ID,
		&d.CaseID,
		&d.Filename,
		&d.StoragePath,
		&d.Size,
		&d.ContentType,
		&d.UploadedAt,
	); err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *CaseDocumentPostgres) Create(ctx context.Context, d *model.CaseDocument) (*model.CaseDocument, error) {
	q := `
		INSERT INTO case_documents (id, case_id, filename, storage_path, size, content_type)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + caseDocumentColumns
	row := r.db.QueryRowContext(ctx, q,
		d.ID,
		d.CaseID,
		d.Filename,
		d.StoragePath,
		d.Size,
		d.ContentType,
	)
	return scanCaseDocument(row)
}

func (r *CaseDocumentPostgres) FindByID(ctx context.Context, id string) (*model.CaseDocument, error) {
	q := `SELECT ` + caseDocumentColumns + ` FROM case_documents WHERE id = $1`
	return scanCaseDocument(r.db.QueryRowContext(ctx, q, id))
}

func (r *CaseDocumentPostgres) ByCase(ctx context.Context, caseID string) ([]model.CaseDocument, error) {
	q := `SELECT ` + caseDocumentColumns + ` FROM case_documents WHERE case_id = $1 ORDER BY uploaded_at DESC`
	rows, err := r.db.QueryContext(ctx, q, caseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.CaseDocument, 0)
	for rows.Next() {
		d, err := scanCaseDocument(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *d)
	}
	return items, rows.Err()
}

func (r *CaseDocumentPostgres) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM case_documents WHERE id = $1`, id)
	return err
}
