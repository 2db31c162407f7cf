package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"legalapi/internal/model"
	"legalapi/internal/repository"
	"legalapi/internal/sqlbuild"
)

const receiptColumns = "id, client_id, lawyer_id, case_id, amount, concept, payment_method, payment_date"

// ReceiptPostgres is a PostgreSQL implementation of
// repository.ReceiptRepository.
type ReceiptPostgres struct {
	db *sql.DB
}

// NewReceiptPostgres creates a new ReceiptPostgres repository.
func NewReceiptPostgres(db *sql.DB) *ReceiptPostgres {
	return &ReceiptPostgres{db: db}
}

var _ repository.ReceiptRepository = (*ReceiptPostgres)(nil)

func scanReceipt(row interface{ Scan(...any) error }) (*model.Receipt, error) {
	var rec model.Receipt
	if err := row.Scan(
		&rec.ID,
		&rec.ClientID,
		&rec.LawyerID,
		&rec.CaseID,
		&rec.Amount,
		&rec.Concept,
		&rec.PaymentMethod,
		&rec.PaymentDate,
	); err != nil {
		return nil, err
	}
	return &rec, nil
}

func scanReceiptNamed(rows *sql.Rows, withClient, withLawyer bool) (*model.ReceiptWithNames, error) {
	var rec model.ReceiptWithNames
	dest := []any{
		&rec.ID,
		&rec.ClientID,
		&rec.LawyerID,
		&rec.CaseID,
		&rec.Amount,
		&rec.Concept,
		&rec.PaymentMethod,
		&rec.PaymentDate,
	}
	if withClient {
		dest = append(dest, &rec.ClientName)
	}
	if withLawyer {
		dest = append(dest, &rec.LawyerName)
	}
	if err := rows.Scan(dest...); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *ReceiptPostgres) List(ctx context.Context) ([]model.ReceiptWithNames, error) {
	q := `
		SELECT r.id, r.client_id, r.lawyer_id, r.case_id, r.amount, r.concept,
		       r.payment_method, r.payment_date,
		       c.first_name || ' ' || c.last_name AS client_name,
		       l.first_name || ' ' || l.last_name AS lawyer_name
		FROM receipts r
		JOIN clients c ON r.client_id = c.id
		JOIN lawyers l ON r.lawyer_id = l.id
		ORDER BY r.payment_date DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.ReceiptWithNames, 0)
	for rows.Next() {
		rec, err := scanReceiptNamed(rows, true, true)
		if err != nil {
			return nil, err
		}
		items = append(items, *rec)
	}
	return items, rows.Err()
}

func (r *ReceiptPostgres) FindByID(ctx context.Context, id string) (*model.ReceiptWithNames, error) {
	q := `
		SELECT r.id, r.client_id, r.lawyer_id, r.case_id, r.amount, r.concept,
		       r.payment_method, r.payment_date,
		       c.first_name || ' ' || c.last_name AS client_name,
		       l.first_name || ' ' || l.last_name AS lawyer_name,
		       ca.case_title
		FROM receipts r
		JOIN clients c ON r.client_id = c.id
		JOIN lawyers l ON r.lawyer_id = l.id
		LEFT JOIN cases ca ON r.case_id = ca.id
		WHERE r.id = $1`
	var rec model.ReceiptWithNames
	if err := r.db.QueryRowContext(ctx, q, id).Scan(
		&rec.ID,
		&rec.ClientID,
		&rec.LawyerID,
		&rec.CaseID,
		&rec.Amount,
		&rec.Concept,
		&rec.PaymentMethod,
		&rec.PaymentDate,
		&rec.ClientName,
		&rec.LawyerName,
		&rec.CaseTitle,
	); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *ReceiptPostgres) ByLawyer(ctx context.Context, lawyerID string) ([]model.ReceiptWithNames, error) {
	q := `
		SELECT r.id, r.client_id, r.lawyer_id, r.case_id, r.amount, r.concept,
		       r.payment_method, r.payment_date,
		       c.first_name || ' ' || c.last_name AS client_name
		FROM receipts r
		JOIN clients c ON r.client_id = c.id
		WHERE r.lawyer_id = $1
		ORDER BY r.payment_date DESC`
	rows, err := r.db.QueryContext(ctx, q, lawyerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.ReceiptWithNames, 0)
	for rows.Next() {
		rec, err := scanReceiptNamed(rows, true, false)
		if err != nil {
			return nil, err
		}
		items = append(items, *rec)
	}
	return items, rows.Err()
}

func (r *ReceiptPostgres) ByClient(ctx context.Context, clientID string) ([]model.ReceiptWithNames, error) {
	q := `
		SELECT r.id, r.client_id, r.lawyer_id, r.case_id, r.amount, r.concept,
		       r.payment_method, r.payment_date,
		       l.first_name || ' ' || l.last_name AS lawyer_name
		FROM receipts r
		JOIN lawyers l ON r.lawyer_id = l.id
		WHERE r.client_id = $1
		ORDER BY r.payment_date DESC`
	rows, err := r.db.QueryContext(ctx, q, clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.ReceiptWithNames, 0)
	for rows.Next() {
		rec, err := scanReceiptNamed(rows, false, true)
		if err != nil {
			return nil, err
		}
		items = append(items, *rec)
	}
	return items, rows.Err()
}

func (r *ReceiptPostgres) ByCase(ctx context.Context, caseID string) ([]model.CaseReceipt, error) {
	q := `
		SELECT id, amount, payment_date, payment_method
		FROM receipts
		WHERE case_id = $1
		ORDER BY payment_date DESC`
	rows, err := r.db.QueryContext(ctx, q, caseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.CaseReceipt, 0)
	for rows.Next() {
		var cr model.CaseReceipt
		if err := rows.Scan(&cr.ID, &cr.Amount, &cr.PaymentDate, &cr.PaymentMethod); err != nil {
			return nil, err
		}
		items = append(items, cr)
	}
	return items, rows.Err()
}

func (r *ReceiptPostgres) Create(ctx context.Context, rec *model.Receipt) (*model.Receipt, error) {
	q := `
		INSERT INTO receipts (id, client_id, lawyer_id, case_id, amount, concept, payment_method)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + receiptColumns
	row := r.db.QueryRowContext(ctx, q,
		rec.ID,
		rec.ClientID,
		rec.LawyerID,
		rec.CaseID,
		rec.Amount,
		rec.Concept,
		rec.PaymentMethod,
	)
	return scanReceipt(row)
}

func (r *ReceiptPostgres) Update(ctx context.Context, id string, u model.ReceiptUpdate) (*model.Receipt, error) {
	setSQL, args, err := sqlbuild.SetClause([]sqlbuild.Assignment{
		{Column: "amount", Value: u.Amount},
		{Column: "concept", Value: u.Concept},
		{Column: "payment_method", Value: u.PaymentMethod},
		{Column: "payment_date", Value: u.PaymentDate},
	}, 1)
	if err != nil {
		return nil, err
	}
	args = append(args, id)
	q := fmt.Sprintf(`UPDATE receipts SET %s WHERE id = $%d RETURNING %s`, setSQL, len(args), receiptColumns)
	return scanReceipt(r.db.QueryRowContext(ctx, q, args...))
}

func (r *ReceiptPostgres) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM receipts WHERE id = $1`, id)
	return err
}
