package fdb

import "sort"

// Column describes one column of a table schema: its stored name and the
// declared value type.
type Column struct {
	Name string
	Type ValueType
}

// Row is one record of a table. Rows are immutable and cheap to copy; they
// borrow from the owning store and must not outlive it.
type Row struct {
	fields []Value
}

// FieldCount returns the number of fields in the row.
func (r Row) FieldCount() int { return len(r.fields) }

// FieldAt returns the field at the given zero-based column index, or false if
// the row has no such column.
func (r Row) FieldAt(i int) (Value, bool) {
	if i < 0 || i >= len(r.fields) {
		return Value{}, false
	}
	return r.fields[i], true
}

// Fields returns the row's fields in declared column order. The slice is
// shared with the store and must not be modified.
func (r Row) Fields() []Value { return r.fields }

// Bucket is one fixed partition of a table's rows, selected by a
// modulo-hashed key. Row order within a bucket is the stored order from the
// source file and is stable across reads.
type Bucket struct {
	rows []Row
}

// Rows returns the bucket's rows in stored order. The slice is shared with
// the store and must not be modified.
func (b Bucket) Rows() []Row { return b.rows }

// Table is an ordered set of rows distributed across a fixed number of
// buckets. Bucket membership was determined at file-build time from each
// row's primary key.
type Table struct {
	name    string
	columns []Column
	buckets []Bucket
}

// Name returns the table's lookup name.
func (t *Table) Name() string { return t.name }

// Columns returns the table's schema in declared order. The slice is shared
// with the store and must not be modified.
func (t *Table) Columns() []Column { return t.columns }

// ColumnIndex returns the zero-based index of the column with the given
// stored name, or -1 if the table has no such column.
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.columns {
		if c.Name == name {
			return i
		}
	}
	return -1
}

// BucketCount returns the number of buckets in the table.
func (t *Table) BucketCount() int { return len(t.buckets) }

// BucketAt returns the bucket at the given index, or false if the index is
// out of range.
func (t *Table) BucketAt(i int) (Bucket, bool) {
	if i < 0 || i >= len(t.buckets) {
		return Bucket{}, false
	}
	return t.buckets[i], true
}

// BucketForHash returns the bucket at hash modulo the bucket count. The
// table must have at least one bucket.
func (t *Table) BucketForHash(hash uint32) Bucket {
	return t.buckets[int(hash%uint32(len(t.buckets)))]
}

// RowCount returns the total number of rows across all buckets.
func (t *Table) RowCount() int {
	n := 0
	for _, b := range t.buckets {
		n += len(b.rows)
	}
	return n
}

// RowIter returns an iterator over every row of the table in stored order:
// buckets in index order, rows within a bucket in stored order. Each call
// returns a fresh iterator positioned before the first row.
func (t *Table) RowIter() *RowIter {
	return &RowIter{table: t}
}

// RowIter walks every row of a table in stored order. Use Next to advance
// and Row to read the current row:
//
//	it := table.RowIter()
//	for it.Next() {
//		row := it.Row()
//	}
//
// Iteration is read-only; any number of independent iterators may be active
// at once.
type RowIter struct {
	table  *Table
	bucket int
	row    int
	cur    Row
	valid  bool
}

// Next advances to the next row, returning false when the table is
// exhausted.
func (it *RowIter) Next() bool {
	for it.bucket < len(it.table.buckets) {
		b := it.table.buckets[it.bucket]
		if it.row < len(b.rows) {
			it.cur = b.rows[it.row]
			it.row++
			it.valid = true
			return true
		}
		it.bucket++
		it.row = 0
	}
	it.valid = false
	return false
}

// Row returns the current row. It is only valid after a call to Next that
// returned true.
func (it *RowIter) Row() Row { return it.cur }

// Store is an opened client database: a set of named tables backed by one
// shared buffer. Stores are immutable and safe for concurrent readers.
type Store struct {
	tables []*Table
	byName map[string]*Table
	// buf pins the backing buffer that Latin1 views borrow from.
	buf []byte
}

// TableByName returns the table with the given name, or false if the store
// has no such table.
func (s *Store) TableByName(name string) (*Table, bool) {
	t, ok := s.byName[name]
	return t, ok
}

// Tables returns all tables sorted by name.
func (s *Store) Tables() []*Table {
	out := make([]*Table, len(s.tables))
	copy(out, s.tables)
	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })
	return out
}

func newStore(tables []*Table, buf []byte) *Store {
	s := &Store{tables: tables, byName: make(map[string]*Table, len(tables)), buf: buf}
	for _, t := range tables {
		s.byName[t.name] = t
	}
	return s
}
