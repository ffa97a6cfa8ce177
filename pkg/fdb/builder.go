package fdb

import "fmt"

// Builder constructs a Store in memory. It is used by tests and tools that
// need an addressable store without going through the binary format.
//
// Bucket placement follows the same rule the file format uses: the first
// column of each row is the primary key, and the row lands in bucket
// uint32(key) % bucketCount, where uint32(key) is the bit image of the
// signed key, not a numeric conversion.
type Builder struct {
	tables []*Table
	names  map[string]bool
	err    error
}

// NewBuilder returns an empty store builder.
func NewBuilder() *Builder {
	return &Builder{names: make(map[string]bool)}
}

// Table starts a new table with the given name, bucket count, and schema.
// Errors are deferred to Build.
func (b *Builder) Table(name string, bucketCount int, columns ...Column) *TableBuilder {
	tb := &TableBuilder{builder: b}
	if b.err != nil {
		return tb
	}
	if name == "" {
		b.err = fmt.Errorf("fdb: table name must not be empty")
		return tb
	}
	if b.names[name] {
		b.err = fmt.Errorf("fdb: duplicate table %q", name)
		return tb
	}
	if bucketCount < 1 {
		b.err = fmt.Errorf("fdb: table %q: bucket count must be positive, got %d", name, bucketCount)
		return tb
	}
	if len(columns) == 0 {
		b.err = fmt.Errorf("fdb: table %q: at least one column required", name)
		return tb
	}
	t := &Table{
		name:    name,
		columns: columns,
		buckets: make([]Bucket, bucketCount),
	}
	b.names[name] = true
	b.tables = append(b.tables, t)
	tb.table = t
	return tb
}

// Build returns the constructed store, or the first error recorded while
// declaring tables and rows.
func (b *Builder) Build() (*Store, error) {
	if b.err != nil {
		return nil, b.err
	}
	return newStore(b.tables, nil), nil
}

// MustBuild is Build for fixtures that are known to be well-formed.
func (b *Builder) MustBuild() *Store {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}

// TableBuilder appends rows to one table under construction.
type TableBuilder struct {
	builder *Builder
	table   *Table
}

// MustBuild finishes the enclosing builder; see Builder.MustBuild.
func (tb *TableBuilder) MustBuild() *Store {
	return tb.builder.MustBuild()
}

// Row appends a row. The first value must be an integer; it is the primary
// key that selects the row's bucket. Rows sharing a bucket keep their
// insertion order.
func (tb *TableBuilder) Row(values ...Value) *TableBuilder {
	b := tb.builder
	if b.err != nil || tb.table == nil {
		return tb
	}
	t := tb.table
	if len(values) != len(t.columns) {
		b.err = fmt.Errorf("fdb: table %q: row has %d values, schema has %d columns",
			t.name, len(values), len(t.columns))
		return tb
	}
	key, ok := values[0].AsInteger()
	if !ok {
		b.err = fmt.Errorf("fdb: table %q: first column must be an integer primary key, got %s",
			t.name, values[0].Type())
		return tb
	}
	idx := int(uint32(key) % uint32(len(t.buckets)))
	row := Row{fields: append([]Value(nil), values...)}
	t.buckets[idx].rows = append(t.buckets[idx].rows, row)
	return tb
}
