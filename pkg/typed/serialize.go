package typed

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/Xiphoseer/paradox-typed-db/pkg/fdb"
)

// MarshalRow renders one raw row as a JSON object keyed by the table's own
// column names, in declared column order. Absent values are emitted as
// explicit nulls, never omitted. This is the serialization path for table
// kinds without a dedicated record type.
func MarshalRow(t *fdb.Table, row fdb.Row) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, col := range t.Columns() {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(col.Name)
		if err != nil {
			return nil, fmt.Errorf("typed: marshal column name %q: %w", col.Name, err)
		}
		buf.Write(name)
		buf.WriteByte(':')

		v, ok := row.FieldAt(i)
		if !ok {
			buf.WriteString("null")
			continue
		}
		payload, err := json.Marshal(v.Any())
		if err != nil {
			return nil, fmt.Errorf("typed: marshal %s.%s: %w", t.Name(), col.Name, err)
		}
		buf.Write(payload)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalTableRows renders every row of a raw table in stored order as a
// JSON array of objects, using MarshalRow for each row.
func MarshalTableRows(t *fdb.Table) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	first := true
	it := t.RowIter()
	for it.Next() {
		if !first {
			buf.WriteByte(',')
		}
		first = false
		obj, err := MarshalRow(t, it.Row())
		if err != nil {
			return nil, err
		}
		buf.Write(obj)
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}
