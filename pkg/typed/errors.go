// Package typed binds the raw tables of a client database store to their
// well-known schema, providing named typed field access, hashed point
// lookups, and a small set of derived domain queries.
package typed

import "fmt"

// Error codes for schema mismatches detected at construction time.
const (
	CodeTableMissing  = "TABLE_MISSING"
	CodeColumnMissing = "COLUMN_MISSING"
)

// SchemaError reports that a store does not match the declared schema: a
// required table is absent, or a found table is missing a required column.
// It is returned from database construction; the database is never partially
// constructed.
type SchemaError struct {
	Code   string
	Table  string
	Column string
}

// Error returns a formatted error string.
func (e *SchemaError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("[SCHEMA:%s] table %q is missing required column %q", e.Code, e.Table, e.Column)
	}
	return fmt.Sprintf("[SCHEMA:%s] required table %q not found", e.Code, e.Table)
}

// Is reports whether target matches this error's code, table, and column.
// Empty fields on the target act as wildcards, so
// errors.Is(err, &SchemaError{Code: CodeTableMissing}) matches any missing
// table.
func (e *SchemaError) Is(target error) bool {
	t, ok := target.(*SchemaError)
	if !ok {
		return false
	}
	if t.Code != "" && t.Code != e.Code {
		return false
	}
	if t.Table != "" && t.Table != e.Table {
		return false
	}
	if t.Column != "" && t.Column != e.Column {
		return false
	}
	return true
}
