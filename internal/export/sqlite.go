package export

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/Xiphoseer/paradox-typed-db/pkg/fdb"
)

// exportSQLite writes every table into a fresh SQLite database at path. Each
// table mirrors its physical schema, with an index on the first (primary key)
// column to keep id lookups fast.
func exportSQLite(ctx context.Context, tables []*fdb.Table, path string) error {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return fmt.Errorf("export: open sqlite: %w", err)
	}
	defer db.Close()

	// One big transaction; the export is all-or-nothing.
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("export: begin: %w", err)
	}
	defer tx.Rollback()

	for _, t := range tables {
		if err := exportSQLiteTable(ctx, tx, t); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("export: commit: %w", err)
	}
	return nil
}

func exportSQLiteTable(ctx context.Context, tx *sql.Tx, t *fdb.Table) error {
	cols := t.Columns()

	defs := make([]string, len(cols))
	marks := make([]string, len(cols))
	for i, c := range cols {
		defs[i] = fmt.Sprintf("%s %s", quoteIdent(c.Name), sqliteType(c.Type))
		marks[i] = "?"
	}

	create := fmt.Sprintf("CREATE TABLE %s (%s)", quoteIdent(t.Name()), strings.Join(defs, ", "))
	if _, err := tx.ExecContext(ctx, create); err != nil {
		return fmt.Errorf("export: create table %s: %w", t.Name(), err)
	}

	insert := fmt.Sprintf("INSERT INTO %s VALUES (%s)", quoteIdent(t.Name()), strings.Join(marks, ", "))
	stmt, err := tx.PrepareContext(ctx, insert)
	if err != nil {
		return fmt.Errorf("export: prepare insert %s: %w", t.Name(), err)
	}
	defer stmt.Close()

	args := make([]interface{}, len(cols))
	it := t.RowIter()
	for it.Next() {
		row := it.Row()
		for i := range cols {
			v, _ := row.FieldAt(i)
			args[i] = v.Any()
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return fmt.Errorf("export: insert into %s: %w", t.Name(), err)
		}
	}

	if len(cols) > 0 {
		index := fmt.Sprintf("CREATE INDEX %s ON %s (%s)",
			quoteIdent("idx_"+t.Name()+"_"+cols[0].Name),
			quoteIdent(t.Name()),
			quoteIdent(cols[0].Name))
		if _, err := tx.ExecContext(ctx, index); err != nil {
			return fmt.Errorf("export: index %s: %w", t.Name(), err)
		}
	}

	return nil
}

// sqliteType maps a stored value type onto a SQLite column affinity.
func sqliteType(t fdb.ValueType) string {
	switch t {
	case fdb.TypeInteger, fdb.TypeBoolean, fdb.TypeBigInt:
		return "INTEGER"
	case fdb.TypeFloat:
		return "REAL"
	default:
		return "TEXT"
	}
}

// quoteIdent quotes an identifier for use in SQL text.
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
