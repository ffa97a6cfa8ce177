package typed

import (
	"fmt"

	"github.com/Xiphoseer/paradox-typed-db/internal/schema"
	"github.com/Xiphoseer/paradox-typed-db/pkg/fdb"
)

// table is the shared core of every typed table kind: the raw table handle
// plus the resolved mapping from declaration index to physical column index
// (-1 for an absent optional column).
type table struct {
	raw  *fdb.Table
	decl schema.Table
	cols []int
}

// resolve builds the column resolution map for one table kind. The physical
// index of each well-known column is found by name against the table's own
// schema, so files with extra or reordered columns still resolve as long as
// the expected names exist. A missing required column fails resolution.
func resolve(raw *fdb.Table, decl schema.Table) (table, error) {
	cols := make([]int, len(decl.Columns))
	for i, c := range decl.Columns {
		idx := raw.ColumnIndex(c.Name)
		if idx < 0 && c.Required {
			return table{}, &SchemaError{Code: CodeColumnMissing, Table: decl.Name, Column: c.Name}
		}
		cols[i] = idx
	}
	return table{raw: raw, decl: decl, cols: cols}, nil
}

// Raw returns the underlying raw table.
func (t *table) Raw() *fdb.Table { return t.raw }

// Name returns the table's lookup name.
func (t *table) Name() string { return t.decl.Name }

func (t *table) violate(decl int, msg string) {
	panic(fmt.Sprintf("typed: %s.%s: %s", t.decl.Name, t.decl.Columns[decl].Name, msg))
}

// Required accessors. These columns were validated present at construction;
// an absent or wrong-variant value here is a schema contract violation, not
// a per-row condition, so they panic rather than return an error.

func (t *table) mustInt(r fdb.Row, decl int) int32 {
	v, ok := r.FieldAt(t.cols[decl])
	if !ok {
		t.violate(decl, "row has no field at resolved column")
	}
	n, ok := v.AsInteger()
	if !ok {
		t.violate(decl, fmt.Sprintf("expected integer, got %s", v.Type()))
	}
	return n
}

func (t *table) mustFloat(r fdb.Row, decl int) float32 {
	v, ok := r.FieldAt(t.cols[decl])
	if !ok {
		t.violate(decl, "row has no field at resolved column")
	}
	f, ok := v.AsFloat()
	if !ok {
		t.violate(decl, fmt.Sprintf("expected float, got %s", v.Type()))
	}
	return f
}

func (t *table) mustBool(r fdb.Row, decl int) bool {
	v, ok := r.FieldAt(t.cols[decl])
	if !ok {
		t.violate(decl, "row has no field at resolved column")
	}
	b, ok := v.AsBoolean()
	if !ok {
		t.violate(decl, fmt.Sprintf("expected boolean, got %s", v.Type()))
	}
	return b
}

func (t *table) mustText(r fdb.Row, decl int) fdb.Latin1 {
	v, ok := r.FieldAt(t.cols[decl])
	if !ok {
		t.violate(decl, "row has no field at resolved column")
	}
	s, ok := v.AsText()
	if !ok {
		t.violate(decl, fmt.Sprintf("expected text, got %s", v.Type()))
	}
	return s
}

// Optional accessors. Absence of the column, of the field, or of a value of
// the expected variant all read as "no value".

func (t *table) optInt(r fdb.Row, decl int) (int32, bool) {
	c := t.cols[decl]
	if c < 0 {
		return 0, false
	}
	v, ok := r.FieldAt(c)
	if !ok {
		return 0, false
	}
	return v.AsInteger()
}

func (t *table) optBool(r fdb.Row, decl int) (bool, bool) {
	c := t.cols[decl]
	if c < 0 {
		return false, false
	}
	v, ok := r.FieldAt(c)
	if !ok {
		return false, false
	}
	return v.AsBoolean()
}

func (t *table) optText(r fdb.Row, decl int) (fdb.Latin1, bool) {
	c := t.cols[decl]
	if c < 0 {
		return nil, false
	}
	v, ok := r.FieldAt(c)
	if !ok {
		return nil, false
	}
	return v.AsText()
}

// lookupRow scans the bucket selected by hashKey for the first row whose
// integer field at column idCol equals key. The bucket index is computed on
// the unsigned bit image of hashKey, preserving the placement rule used when
// the file was built.
//
// hashKey and key may differ, which allows secondary-style lookups without a
// secondary bucket structure, but this only finds rows that physically live
// in the bucket implied by hashKey. Callers must pass a hashKey consistent
// with how the bucket was built.
func lookupRow(t *fdb.Table, hashKey, key int32, idCol int) (fdb.Row, bool) {
	n := t.BucketCount()
	if n == 0 {
		return fdb.Row{}, false
	}
	b, ok := t.BucketAt(int(uint32(hashKey) % uint32(n)))
	if !ok {
		return fdb.Row{}, false
	}
	for _, r := range b.Rows() {
		v, ok := r.FieldAt(idCol)
		if ok && v.IsInteger(key) {
			return r, true
		}
	}
	return fdb.Row{}, false
}

// Iter lazily yields typed rows. Use Next to advance and Row to read:
//
//	it := db.Missions.Rows()
//	for it.Next() {
//		row := it.Row()
//	}
//
// Iterators are single-pass; creating a new one restarts the scan. Any
// number of independent iterators may be active concurrently, since no
// iteration mutates the table.
type Iter[R any] struct {
	next func() (fdb.Row, bool)
	wrap func(fdb.Row) R
	cur  R
}

// Next advances the iterator, returning false when exhausted.
func (it *Iter[R]) Next() bool {
	r, ok := it.next()
	if !ok {
		var zero R
		it.cur = zero
		return false
	}
	it.cur = it.wrap(r)
	return true
}

// Row returns the current typed row. It is only valid after a call to Next
// that returned true.
func (it *Iter[R]) Row() R { return it.cur }

// tableIter iterates every row of a table in stored order.
func tableIter[R any](t *fdb.Table, wrap func(fdb.Row) R) *Iter[R] {
	inner := t.RowIter()
	return &Iter[R]{
		next: func() (fdb.Row, bool) {
			if inner.Next() {
				return inner.Row(), true
			}
			return fdb.Row{}, false
		},
		wrap: wrap,
	}
}

// bucketIter iterates the rows of the bucket selected by key, in stored
// order, without filtering by key equality. An empty bucket yields zero
// rows.
func bucketIter[R any](t *fdb.Table, key int32, wrap func(fdb.Row) R) *Iter[R] {
	var rows []fdb.Row
	if t.BucketCount() > 0 {
		rows = t.BucketForHash(uint32(key)).Rows()
	}
	i := 0
	return &Iter[R]{
		next: func() (fdb.Row, bool) {
			if i >= len(rows) {
				return fdb.Row{}, false
			}
			r := rows[i]
			i++
			return r, true
		},
		wrap: wrap,
	}
}

// Pointer helpers for record materialization: absent optionals become nil so
// they serialize as explicit nulls.

func intPtr(v int32, ok bool) *int32 {
	if !ok {
		return nil
	}
	return &v
}

func strPtr(s fdb.Latin1, ok bool) *string {
	if !ok {
		return nil
	}
	d := s.Decode()
	return &d
}
