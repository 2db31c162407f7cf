// Package apperr defines the error taxonomy shared by the integrity,
// service, and handler layers. Error messages are the user-facing
// Spanish texts returned by the API; handlers map types to HTTP codes.
package apperr

import (
	"errors"
	"fmt"
	"strings"
)

// Kind identifies an entity family for error reporting.
type Kind string

const (
	KindLawyer   Kind = "lawyer"
	KindClient   Kind = "client"
	KindCase     Kind = "case"
	KindReceipt  Kind = "receipt"
	KindInvoice  Kind = "invoice"
	KindDocument Kind = "document"
)

// grammar holds the Spanish forms needed to build messages for a kind.
type grammar struct {
	noun     string
	feminine bool
}

var grammars = map[Kind]grammar{
	KindLawyer:   {noun: "abogado"},
	KindClient:   {noun: "cliente"},
	KindCase:     {noun: "caso"},
	KindReceipt:  {noun: "recibo"},
	KindInvoice:  {noun: "factura", feminine: true},
	KindDocument: {noun: "documento"},
}

func (k Kind) grammar() grammar {
	if g, ok := grammars[k]; ok {
		return g
	}
	return grammar{noun: string(k)}
}

// Noun returns the Spanish noun for the kind ("cliente", "factura", ...).
func (k Kind) Noun() string { return k.grammar().noun }

// Plural returns the English plural used as a JSON key for dependent
// listings ("cases", "receipts", ...).
func (k Kind) Plural() string { return string(k) + "s" }

var (
	// ErrNoFields is returned when a partial update supplies nothing.
	ErrNoFields = errors.New("No se proporcionaron campos para actualizar")
	// ErrInvalidQuery is returned when a search has no query text.
	ErrInvalidQuery = errors.New("Se requiere el parámetro query")
)

// NotFoundError reports that no row of the given kind matches the id.
type NotFoundError struct {
	Kind Kind
	ID   string
}

func (e *NotFoundError) Error() string {
	g := e.Kind.grammar()
	suffix := "encontrado"
	if g.feminine {
		suffix = "encontrada"
	}
	return capitalize(g.noun) + " no " + suffix
}

// ConflictError reports a uniqueness violation on a field. Excluding is
// true when the check excluded the entity itself (update path), which
// changes the wording ("otro" vs "un").
type ConflictError struct {
	Kind      Kind
	Field     string
	Excluding bool
}

func (e *ConflictError) Error() string {
	g := e.Kind.grammar()
	article := "un"
	if e.Excluding {
		article = "otro"
	}
	if g.feminine {
		article += "a"
	}
	return fmt.Sprintf("Ya existe %s %s con ese %s", article, g.noun, e.Field)
}

// DependencyError reports that a delete is blocked by rows of Dependent
// kind still referencing the parent. IDs lists the blocking rows.
type DependencyError struct {
	Kind      Kind
	ID        string
	Dependent Kind
	IDs       []string
}

func (e *DependencyError) Error() string {
	pg := e.Kind.grammar()
	dg := e.Dependent.grammar()
	parentArt := "el"
	if pg.feminine {
		parentArt = "la"
	}
	linked := "asociados"
	if dg.feminine {
		linked = "asociadas"
	}
	return fmt.Sprintf("No se puede eliminar %s %s porque tiene %ss %s",
		parentArt, pg.noun, dg.noun, linked)
}

// ValidationError reports missing or malformed request fields.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// RequiredFields builds the standard "Se requieren a, b y c" message.
func RequiredFields(fields ...string) *ValidationError {
	msg := "Se requiere " + fields[0]
	if len(fields) > 1 {
		msg = "Se requieren " + strings.Join(fields[:len(fields)-1], ", ") + " y " + fields[len(fields)-1]
	}
	return &ValidationError{Message: msg}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
