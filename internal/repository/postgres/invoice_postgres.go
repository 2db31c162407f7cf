package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"legalapi/internal/model"
	"legalapi/internal/repository"
	"legalapi/internal/sqlbuild"
)

const invoiceColumns = "id, receipt_id, invoice_number, due_date, tax_amount, total_amount, status, created_at"

// InvoicePostgres is a PostgreSQL implementation of
// repository.InvoiceRepository.
type InvoicePostgres struct {
	db *sql.DB
}

// NewInvoicePostgres creates a new InvoicePostgres repository.
func NewInvoicePostgres(db *sql.DB) *InvoicePostgres {
	return &InvoicePostgres{db: db}
}

var _ repository.InvoiceRepository = (*InvoicePostgres)(nil)

func scanInvoice(row interface{ Scan(...any) error }) (*model.Invoice, error) {
	var inv model.Invoice
	if err := row.Scan(
		&inv.ID,
		&inv.ReceiptID,
		&inv.InvoiceNumber,
		&inv.DueDate,
		&inv.TaxAmount,
		&inv.TotalAmount,
		&inv.Status,
		&inv.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *InvoicePostgres) List(ctx context.Context) ([]model.Invoice, error) {
	q := `SELECT ` + invoiceColumns + ` FROM invoices ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Invoice, 0)
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *inv)
	}
	return items, rows.Err()
}

func (r *InvoicePostgres) FindByID(ctx context.Context, id string) (*model.Invoice, error) {
	q := `SELECT ` + invoiceColumns + ` FROM invoices WHERE id = $1`
	return scanInvoice(r.db.QueryRowContext(ctx, q, id))
}

func (r *InvoicePostgres) Create(ctx context.Context, inv *model.Invoice) (*model.Invoice, error) {
	q := `
		INSERT INTO invoices (id, receipt_id, invoice_number, due_date, tax_amount, total_amount, status)
		VALUES ($1, $2, $3, $4, $5, $6, COALESCE($7, 'Pending'))
		RETURNING ` + invoiceColumns
	row := r.db.QueryRowContext(ctx, q,
		inv.ID,
		inv.ReceiptID,
		inv.InvoiceNumber,
		inv.DueDate,
		inv.TaxAmount,
		inv.TotalAmount,
		nullable(inv.Status),
	)
	return scanInvoice(row)
}

func (r *InvoicePostgres) Update(ctx context.Context, id string, u model.InvoiceUpdate) (*model.Invoice, error) {
	setSQL, args, err := sqlbuild.SetClause([]sqlbuild.Assignment{
		{Column: "due_date", Value: u.DueDate},
		{Column: "tax_amount", Value: u.TaxAmount},
		{Column: "total_amount", Value: u.TotalAmount},
		{Column: "status", Value: u.Status},
	}, 1)
	if err != nil {
		return nil, err
	}
	args = append(args, id)
	q := fmt.Sprintf(`UPDATE invoices SET %s WHERE id = $%d RETURNING %s`, setSQL, len(args), invoiceColumns)
	return scanInvoice(r.db.QueryRowContext(ctx, q, args...))
}

func (r *InvoicePostgres) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM invoices WHERE id = $1`, id)
	return err
}

// nullable maps the empty string to SQL NULL.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
