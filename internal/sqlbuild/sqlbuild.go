// Package sqlbuild assembles parameterized SQL fragments from a fixed,
// declared field schema. Callers list every candidate column in
// declaration order with its candidate value; absent values (nil, or a
// typed nil pointer) are skipped, and placeholder numbering stays
// contiguous and aligned with the returned argument slice.
package sqlbuild

import (
	"fmt"
	"reflect"
	"strings"

	"legalapi/internal/apperr"
)

// Assignment pairs a column with its candidate value.
type Assignment struct {
	Column string
	Value  any
}

// SetClause builds the comma-separated assignment list of an UPDATE.
// Placeholders start at startIdx. Returns apperr.ErrNoFields when every
// value is absent, so callers never issue a no-op statement.
func SetClause(assigns []Assignment, startIdx int) (string, []any, error) {
	parts := make([]string, 0, len(assigns))
	args := make([]any, 0, len(assigns))
	idx := startIdx
	for _, a := range assigns {
		if absent(a.Value) {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s = $%d", a.Column, idx))
		args = append(args, a.Value)
		idx++
	}
	if len(parts) == 0 {
		return "", nil, apperr.ErrNoFields
	}
	return strings.Join(parts, ", "), args, nil
}

// AndFilters builds " AND col = $n" fragments to append after a base
// WHERE clause. Absent values are skipped silently; an empty result is
// valid and means no filtering.
func AndFilters(filters []Assignment, startIdx int) (string, []any) {
	var sb strings.Builder
	args := make([]any, 0, len(filters))
	idx := startIdx
	for _, f := range filters {
		if absent(f.Value) {
			continue
		}
		fmt.Fprintf(&sb, " AND %s = $%d", f.Column, idx)
		args = append(args, f.Value)
		idx++
	}
	return sb.String(), args
}

// absent reports whether v carries no value: a nil interface or a typed
// nil pointer (the usual shape after assigning a *string field to any).
func absent(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
