package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"legalapi/internal/apperr"
	"legalapi/internal/integrity"
)

// Table names are resolved from a fixed map, never from request input,
// so the fmt.Sprintf query assembly below cannot inject.
var kindTables = map[apperr.Kind]string{
	apperr.KindLawyer:   "lawyers",
	apperr.KindClient:   "clients",
	apperr.KindCase:     "cases",
	apperr.KindReceipt:  "receipts",
	apperr.KindInvoice:  "invoices",
	apperr.KindDocument: "case_documents",
}

// IntegrityProbe implements integrity.Probe with read-only queries.
type IntegrityProbe struct {
	db *sql.DB
}

// NewIntegrityProbe creates a new IntegrityProbe.
func NewIntegrityProbe(db *sql.DB) *IntegrityProbe {
	return &IntegrityProbe{db: db}
}

var _ integrity.Probe = (*IntegrityProbe)(nil)

func tableFor(kind apperr.Kind) (string, error) {
	t, ok := kindTables[kind]
	if !ok {
		return "", fmt.Errorf("unknown entity kind: %s", kind)
	}
	return t, nil
}

func (p *IntegrityProbe) IDExists(ctx context.Context, kind apperr.Kind, id string) (bool, error) {
	table, err := tableFor(kind)
	if err != nil {
		return false, err
	}
	q := fmt.Sprintf(`SELECT id FROM %s WHERE id = $1`, table)
	var got string
	if err := p.db.QueryRowContext(ctx, q, id).Scan(&got); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (p *IntegrityProbe) EmailOwner(ctx context.Context, kind apperr.Kind, email string) (string, bool, error) {
	table, err := tableFor(kind)
	if err != nil {
		return "", false, err
	}
	q := fmt.Sprintf(`SELECT id FROM %s WHERE email = $1`, table)
	var id string
	if err := p.db.QueryRowContext(ctx, q, email).Scan(&id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, err
	}
	return id, true, nil
}

func (p *IntegrityProbe) ReferencingIDs(ctx context.Context, dependent apperr.Kind, fkColumn, id string) ([]string, error) {
	table, err := tableFor(dependent)
	if err != nil {
		return nil, err
	}
	q := fmt.Sprintf(`SELECT id FROM %s WHERE %s = $1`, table, fkColumn)
	rows, err := p.db.QueryContext(ctx, q, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var depID string
		if err := rows.Scan(&depID); err != nil {
			return nil, err
		}
		ids = append(ids, depID)
	}
	return ids, rows.Err()
}
