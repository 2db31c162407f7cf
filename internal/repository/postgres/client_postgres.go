package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"legalapi/internal/model"
	"legalapi/internal/repository"
	"legalapi/internal/sqlbuild"
)

const clientColumns = "id, first_name, last_name, email, phone, address, created_at"

// ClientPostgres is a PostgreSQL implementation of
// repository.ClientRepository.
type ClientPostgres struct {
	db *sql.DB
}

// NewClientPostgres creates a new ClientPostgres repository.
func NewClientPostgres(db *sql.DB) *ClientPostgres {
	return &ClientPostgres{db: db}
}

var _ repository.ClientRepository = (*ClientPostgres)(nil)

func scanClient(row interface{ Scan(...any) error }) (*model.Client, error) {
	var c model.Client
	if err := row.Scan(
		&c.ID,
		&c.FirstName,
		&c.LastName,
		&c.Email,
		&c.Phone,
		&c.Address,
		&c.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ClientPostgres) List(ctx context.Context) ([]model.Client, error) {
	q := `SELECT ` + clientColumns + ` FROM clients ORDER BY last_name, first_name`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Client, 0)
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *c)
	}
	return items, rows.Err()
}

func (r *ClientPostgres) FindByID(ctx context.Context, id string) (*model.Client, error) {
	q := `SELECT ` + clientColumns + ` FROM clients WHERE id = $1`
	return scanClient(r.db.QueryRowContext(ctx, q, id))
}

func (r *ClientPostgres) Create(ctx context.Context, c *model.Client) (*model.Client, error) {
	q := `
		INSERT INTO clients (id, first_name, last_name, email, phone, address)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + clientColumns
	row := r.db.QueryRowContext(ctx, q,
		c.ID,
		c.FirstName,
		c.LastName,
		c.Email,
		c.Phone,
		c.Address,
	)
	return scanClient(row)
}

func (r *ClientPostgres) Update(ctx context.Context, id string, u model.ClientUpdate) (*model.Client, error) {
	setSQL, args, err := sqlbuild.SetClause([]sqlbuild.Assignment{
		{Column: "first_name", Value: u.FirstName},
		{Column: "last_name", Value: u.LastName},
		{Column: "email", Value: u.Email},
		{Column: "phone", Value: u.Phone},
		{Column: "address", Value: u.Address},
	}, 1)
	if err != nil {
		return nil, err
	}
	args = append(args, id)
	q := fmt.Sprintf(`UPDATE clients SET %s WHERE id = $%d RETURNING %s`, setSQL, len(args), clientColumns)
	return scanClient(r.db.QueryRowContext(ctx, q, args...))
}

func (r *ClientPostgres) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM clients WHERE id = $1`, id)
	return err
}
