package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"legalapi/internal/model"
	"legalapi/internal/repository"
	"legalapi/internal/sqlbuild"
)

const lawyerColumns = "id, first_name, last_name, email, specialty, phone, hourly_rate, created_at"

// LawyerPostgres is a PostgreSQL implementation of
// repository.LawyerRepository. Parameterized queries only, no business
// logic.
type LawyerPostgres struct {
	db *sql.DB
}

// NewLawyerPostgres creates a new LawyerPostgres repository.
func NewLawyerPostgres(db *sql.DB) *LawyerPostgres {
	return &LawyerPostgres{db: db}
}

var _ repository.LawyerRepository = (*LawyerPostgres)(nil)

func scanLawyer(row interface{ Scan(...any) error }) (*model.Lawyer, error) {
	var l model.Lawyer
	if err := row.Scan(
		&l.ID,
		&l.FirstName,
		&l.LastName,
		&l.Email,
		&l.Specialty,
		&l.Phone,
		&l.HourlyRate,
		&l.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *LawyerPostgres) List(ctx context.Context) ([]model.Lawyer, error) {
	q := `SELECT ` + lawyerColumns + ` FROM lawyers ORDER BY last_name, first_name`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Lawyer, 0)
	for rows.Next() {
		l, err := scanLawyer(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *l)
	}
	return items, rows.Err()
}

func (r *LawyerPostgres) FindByID(ctx context.Context, id string) (*model.Lawyer, error) {
	q := `SELECT ` + lawyerColumns + ` FROM lawyers WHERE id = $1`
	return scanLawyer(r.db.QueryRowContext(ctx, q, id))
}

func (r *LawyerPostgres) Create(ctx context.Context, l *model.Lawyer) (*model.Lawyer, error) {
	q := `
		INSERT INTO lawyers (id, first_name, last_name, email, specialty, phone, hourly_rate)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + lawyerColumns
	row := r.db.QueryRowContext(ctx, q,
		l.ID,
		l.FirstName,
		l.LastName,
		l.Email,
		l.Specialty,
		l.Phone,
		l.HourlyRate,
	)
	return scanLawyer(row)
}

func (r *LawyerPostgres) Update(ctx context.Context, id string, u model.LawyerUpdate) (*model.Lawyer, error) {
	// Fixed declaration order keeps placeholder numbering reproducible.
	setSQL, args, err := sqlbuild.SetClause([]sqlbuild.Assignment{
		{Column: "first_name", Value: u.FirstName},
		{Column: "last_name", Value: u.LastName},
		{Column: "email", Value: u.Email},
		{Column: "specialty", Value: u.Specialty},
		{Column: "phone", Value: u.Phone},
		{Column: "hourly_rate", Value: u.HourlyRate},
	}, 1)
	if err != nil {
		return nil, err
	}
	args = append(args, id)
	q := fmt.Sprintf(`UPDATE lawyers SET %s WHERE id = $%d RETURNING %s`, setSQL, len(args), lawyerColumns)
	return scanLawyer(r.db.QueryRowContext(ctx, q, args...))
}

func (r *LawyerPostgres) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM lawyers WHERE id = $1`, id)
	return err
}
