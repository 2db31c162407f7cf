package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"legalapi/internal/model"
	"legalapi/internal/repository"
	"legalapi/internal/sqlbuild"
)

const caseColumns = "id, lawyer_id, client_id, case_title, case_description, case_status, opened_date, updated_at"

// CasePostgres is a PostgreSQL implementation of
// repository.CaseRepository, including the joined projections and the
// full-text search over the precomputed weighted document.
type CasePostgres struct {
	db *sql.DB
}

// NewCasePostgres creates a new CasePostgres repository.
func NewCasePostgres(db *sql.DB) *CasePostgres {
	return &CasePostgres{db: db}
}

var _ repository.CaseRepository = (*CasePostgres)(nil)

func scanCase(row interface{ Scan(...any) error }) (*model.Case, error) {
	var c model.Case
	if err := row.Scan(
		&c.ID,
		&c.LawyerID,
		&c.ClientID,
		&c.Title,
		&c.Description,
		&c.Status,
		&c.OpenedDate,
		&c.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CasePostgres) List(ctx context.Context, f model.CaseFilter) ([]model.CaseSummary, error) {
	q := `
		SELECT cases.id, case_title, case_description, case_status, opened_date,
		       clients.first_name AS client_first_name,
		       clients.last_name AS client_last_name,
		       lawyers.first_name AS lawyer_first_name,
		       lawyers.last_name AS lawyer_last_name
		FROM cases
		JOIN clients ON cases.client_id = clients.id
		JOIN lawyers ON cases.lawyer_id = lawyers.id
		WHERE 1=1`

	filterSQL, args := sqlbuild.AndFilters([]sqlbuild.Assignment{
		{Column: "case_status", Value: f.Status},
		{Column: "cases.lawyer_id", Value: f.LawyerID},
		{Column: "cases.client_id", Value: f.ClientID},
	}, 1)
	q += filterSQL

	offset := (f.Page - 1) * f.Limit
	q += fmt.Sprintf(" ORDER BY opened_date DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, f.Limit, offset)

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.CaseSummary, 0)
	for rows.Next() {
		var s model.CaseSummary
		if err := rows.Scan(
			&s.ID,
			&s.Title,
			&s.Description,
			&s.Status,
			&s.OpenedDate,
			&s.ClientFirstName,
			&s.ClientLastName,
			&s.LawyerFirstName,
			&s.LawyerLastName,
		); err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	return items, rows.Err()
}

func (r *CasePostgres) FindByID(ctx context.Context, id string) (*model.CaseDetail, error) {
	q := `
		SELECT cases.id, cases.lawyer_id, cases.client_id, case_title, case_description,
		       case_status, opened_date, updated_at,
		       CONCAT(clients.first_name, ' ', clients.last_name) AS client_full_name,
		       CONCAT(lawyers.first_name, ' ', lawyers.last_name) AS lawyer_full_name,
		       lawyers.specialty
		FROM cases
		JOIN clients ON cases.client_id = clients.id
		JOIN lawyers ON cases.lawyer_id = lawyers.id
		WHERE cases.id = $1`
	var d model.CaseDetail
	if err := r.db.QueryRowContext(ctx, q, id).Scan(
		&d.ID,
		&d.LawyerID,
		&d.ClientID,
		&d.Title,
		&d.Description,
		&d.Status,
		&d.OpenedDate,
		&d.UpdatedAt,
		&d.ClientFullName,
		&d.LawyerFullName,
		&d.Specialty,
	); err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *CasePostgres) ByClient(ctx context.Context, clientID string) ([]model.ClientCase, error) {
	q := `
		SELECT c.id, c.lawyer_id, c.client_id, c.case_title, c.case_description,
		       c.case_status, c.opened_date, c.updated_at,
		       l.first_name || ' ' || l.last_name AS lawyer_name
		FROM cases c
		JOIN lawyers l ON c.lawyer_id = l.id
		WHERE c.client_id = $1
		ORDER BY c.opened_date DESC`
	rows, err := r.db.QueryContext(ctx, q, clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.ClientCase, 0)
	for rows.Next() {
		var c model.ClientCase
		if err := rows.Scan(
			&c.ID,
			&c.LawyerID,
			&c.ClientID,
			&c.Title,
			&c.Description,
			&c.Status,
			&c.OpenedDate,
			&c.UpdatedAt,
			&c.LawyerName,
		); err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

func (r *CasePostgres) Create(ctx context.Context, c *model.Case) (*model.Case, error) {
	q := `
		INSERT INTO cases (id, lawyer_id, client_id, case_title, case_description)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + caseColumns
	row := r.db.QueryRowContext(ctx, q,
		c.ID,
		c.LawyerID,
		c.ClientID,
		c.Title,
		c.Description,
	)
	return scanCase(row)
}

func (r *CasePostgres) Update(ctx context.Context, id string, u model.CaseUpdate) (*model.Case, error) {
	setSQL, args, err := sqlbuild.SetClause([]sqlbuild.Assignment{
		{Column: "case_title", Value: u.Title},
		{Column: "case_description", Value: u.Description},
		{Column: "case_status", Value: u.Status},
	}, 1)
	if err != nil {
		return nil, err
	}
	args = append(args, id)
	q := fmt.Sprintf(`UPDATE cases SET %s, updated_at = NOW() WHERE id = $%d RETURNING %s`,
		setSQL, len(args), caseColumns)
	return scanCase(r.db.QueryRowContext(ctx, q, args...))
}

func (r *CasePostgres) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM cases WHERE id = $1`, id)
	return err
}

// Search matches against the trigger-maintained document_with_weights
// tsvector. Ordering is whatever the engine returns; no rank is applied.
func (r *CasePostgres) Search(ctx context.Context, query string) ([]model.Case, error) {
	q := `
		SELECT ` + caseColumns + `
		FROM cases
		WHERE document_with_weights @@ plainto_tsquery('spanish', $1)`
	rows, err := r.db.QueryContext(ctx, q, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Case, 0)
	for rows.Next() {
		c, err := scanCase(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *c)
	}
	return items, rows.Err()
}
