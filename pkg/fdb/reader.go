package fdb

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"os"
)

// ErrCorrupt is wrapped by all errors reporting a malformed database file.
var ErrCorrupt = errors.New("fdb: corrupt database file")

// nullAddr marks an empty bucket or the end of a row list on disk.
const nullAddr = 0xFFFFFFFF

// Open reads the database file at path into memory and parses it.
func Open(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fdb: open %s: %w", path, err)
	}
	return Read(data)
}

// Read parses a database image. The returned store borrows text values from
// data, so data must not be modified while the store is in use.
//
// The on-disk layout is a graph of little-endian uint32 offsets into the
// file: a header pointing at a table list, each table pointing at a column
// definition block and a bucket list, each bucket heading a linked list of
// rows, each row a contiguous run of (type, value) field pairs. Strings are
// NUL-terminated Latin-1 at the referenced offset; 64-bit integers are
// stored indirectly.
func Read(data []byte) (*Store, error) {
	r := &reader{data: data}

	tableCount, err := r.u32(0)
	if err != nil {
		return nil, err
	}
	tableListAddr, err := r.u32(4)
	if err != nil {
		return nil, err
	}

	// Each table list entry is two uint32s. Guard the multiplication against
	// absurd counts before touching the list.
	if uint64(tableCount)*8 > uint64(len(data)) {
		return nil, fmt.Errorf("%w: table count %d exceeds file size", ErrCorrupt, tableCount)
	}

	tables := make([]*Table, 0, tableCount)
	for i := uint32(0); i < tableCount; i++ {
		entry := tableListAddr + i*8
		defAddr, err := r.u32(entry)
		if err != nil {
			return nil, err
		}
		dataAddr, err := r.u32(entry + 4)
		if err != nil {
			return nil, err
		}
		t, err := r.table(defAddr, dataAddr)
		if err != nil {
			return nil, err
		}
		tables = append(tables, t)
	}
	return newStore(tables, data), nil
}

type reader struct {
	data []byte
}

func (r *reader) u32(addr uint32) (uint32, error) {
	if int64(addr)+4 > int64(len(r.data)) {
		return 0, fmt.Errorf("%w: read past end of file at offset %#x", ErrCorrupt, addr)
	}
	return binary.LittleEndian.Uint32(r.data[addr:]), nil
}

func (r *reader) i64(addr uint32) (int64, error) {
	if int64(addr)+8 > int64(len(r.data)) {
		return 0, fmt.Errorf("%w: read past end of file at offset %#x", ErrCorrupt, addr)
	}
	return int64(binary.LittleEndian.Uint64(r.data[addr:])), nil
}

// text returns the NUL-terminated Latin-1 string at addr as a borrowed view.
func (r *reader) text(addr uint32) (Latin1, error) {
	if int64(addr) >= int64(len(r.data)) {
		return nil, fmt.Errorf("%w: string offset %#x past end of file", ErrCorrupt, addr)
	}
	for end := addr; int64(end) < int64(len(r.data)); end++ {
		if r.data[end] == 0 {
			return Latin1(r.data[addr:end]), nil
		}
	}
	return nil, fmt.Errorf("%w: unterminated string at offset %#x", ErrCorrupt, addr)
}

func (r *reader) table(defAddr, dataAddr uint32) (*Table, error) {
	columnCount, err := r.u32(defAddr)
	if err != nil {
		return nil, err
	}
	nameAddr, err := r.u32(defAddr + 4)
	if err != nil {
		return nil, err
	}
	columnListAddr, err := r.u32(defAddr + 8)
	if err != nil {
		return nil, err
	}

	name, err := r.text(nameAddr)
	if err != nil {
		return nil, err
	}
	if uint64(columnCount)*8 > uint64(len(r.data)) {
		return nil, fmt.Errorf("%w: table %q: column count %d exceeds file size",
			ErrCorrupt, name.Decode(), columnCount)
	}

	columns := make([]Column, 0, columnCount)
	for i := uint32(0); i < columnCount; i++ {
		entry := columnListAddr + i*8
		typeCode, err := r.u32(entry)
		if err != nil {
			return nil, err
		}
		colNameAddr, err := r.u32(entry + 4)
		if err != nil {
			return nil, err
		}
		colName, err := r.text(colNameAddr)
		if err != nil {
			return nil, err
		}
		columns = append(columns, Column{Name: colName.Decode(), Type: ValueType(typeCode)})
	}

	bucketCount, err := r.u32(dataAddr)
	if err != nil {
		return nil, err
	}
	bucketListAddr, err := r.u32(dataAddr + 4)
	if err != nil {
		return nil, err
	}
	if uint64(bucketCount)*4 > uint64(len(r.data)) {
		return nil, fmt.Errorf("%w: table %q: bucket count %d exceeds file size",
			ErrCorrupt, name.Decode(), bucketCount)
	}

	buckets := make([]Bucket, bucketCount)
	for i := uint32(0); i < bucketCount; i++ {
		headAddr, err := r.u32(bucketListAddr + i*4)
		if err != nil {
			return nil, err
		}
		rows, err := r.rowList(headAddr)
		if err != nil {
			return nil, fmt.Errorf("table %q bucket %d: %w", name.Decode(), i, err)
		}
		buckets[i] = Bucket{rows: rows}
	}

	return &Table{name: name.Decode(), columns: columns, buckets: buckets}, nil
}

// rowList follows the on-disk linked list of rows headed at addr.
func (r *reader) rowList(addr uint32) ([]Row, error) {
	var rows []Row
	// A well-formed list cannot have more entries than fit in the file;
	// anything longer is a cycle.
	maxSteps := len(r.data)/8 + 1
	for steps := 0; addr != nullAddr; steps++ {
		if steps > maxSteps {
			return nil, fmt.Errorf("%w: row list cycle at offset %#x", ErrCorrupt, addr)
		}
		rowAddr, err := r.u32(addr)
		if err != nil {
			return nil, err
		}
		next, err := r.u32(addr + 4)
		if err != nil {
			return nil, err
		}
		row, err := r.row(rowAddr)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
		addr = next
	}
	return rows, nil
}

func (r *reader) row(addr uint32) (Row, error) {
	fieldCount, err := r.u32(addr)
	if err != nil {
		return Row{}, err
	}
	fieldListAddr, err := r.u32(addr + 4)
	if err != nil {
		return Row{}, err
	}
	if uint64(fieldCount)*8 > uint64(len(r.data)) {
		return Row{}, fmt.Errorf("%w: field count %d exceeds file size", ErrCorrupt, fieldCount)
	}

	fields := make([]Value, 0, fieldCount)
	for i := uint32(0); i < fieldCount; i++ {
		entry := fieldListAddr + i*8
		typeCode, err := r.u32(entry)
		if err != nil {
			return Row{}, err
		}
		raw, err := r.u32(entry + 4)
		if err != nil {
			return Row{}, err
		}
		v, err := r.value(ValueType(typeCode), raw)
		if err != nil {
			return Row{}, err
		}
		fields = append(fields, v)
	}
	return Row{fields: fields}, nil
}

func (r *reader) value(typ ValueType, raw uint32) (Value, error) {
	switch typ {
	case TypeNothing:
		return Null(), nil
	case TypeInteger:
		return Int(int32(raw)), nil
	case TypeFloat:
		return Float(math.Float32frombits(raw)), nil
	case TypeBoolean:
		return Bool(raw != 0), nil
	case TypeText:
		s, err := r.text(raw)
		if err != nil {
			return Value{}, err
		}
		return Text(s), nil
	case TypeVarChar:
		s, err := r.text(raw)
		if err != nil {
			return Value{}, err
		}
		return VarChar(s), nil
	case TypeBigInt:
		v, err := r.i64(raw)
		if err != nil {
			return Value{}, err
		}
		return BigInt(v), nil
	default:
		return Value{}, fmt.Errorf("%w: unknown field type %d", ErrCorrupt, uint32(typ))
	}
}
