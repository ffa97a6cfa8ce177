// Package fdb implements the in-memory model of the client database ("FDB")
// file format: named tables whose rows are distributed across a fixed number
// of hash buckets, each row a sequence of tagged field values. The model is
// read-only; stores are built once (from a file via Read, or programmatically
// via a Builder) and then only queried.
package fdb

import (
	"bytes"
	"fmt"

	"golang.org/x/text/encoding/charmap"
)

// ValueType tags the variant held by a Value. The numeric values match the
// type codes used by the on-disk format.
type ValueType uint32

const (
	TypeNothing ValueType = 0
	TypeInteger ValueType = 1
	TypeFloat   ValueType = 3
	TypeText    ValueType = 4
	TypeBoolean ValueType = 5
	TypeBigInt  ValueType = 6
	TypeVarChar ValueType = 8
)

// String returns the lowercase name of the type, as used in diagnostics.
func (t ValueType) String() string {
	switch t {
	case TypeNothing:
		return "nothing"
	case TypeInteger:
		return "integer"
	case TypeFloat:
		return "float"
	case TypeText:
		return "text"
	case TypeBoolean:
		return "boolean"
	case TypeBigInt:
		return "bigint"
	case TypeVarChar:
		return "varchar"
	default:
		return fmt.Sprintf("unknown(%d)", uint32(t))
	}
}

// Latin1 is a borrowed view of a Latin-1 (ISO 8859-1) encoded string in the
// store's backing buffer. A zero-length view is a present-but-empty value,
// which is distinct from an absent field. Views must not outlive the store
// they were read from.
type Latin1 []byte

// IsEmpty reports whether the view has zero length.
func (s Latin1) IsEmpty() bool { return len(s) == 0 }

// Equal compares two views by byte content.
func (s Latin1) Equal(other Latin1) bool { return bytes.Equal(s, other) }

// Decode converts the borrowed view into an owned UTF-8 string.
func (s Latin1) Decode() string {
	if len(s) == 0 {
		return ""
	}
	out, err := charmap.ISO8859_1.NewDecoder().Bytes(s)
	if err != nil {
		// Every byte is a valid ISO 8859-1 code point; the decoder cannot
		// fail on this charmap.
		return string(s)
	}
	return string(out)
}

// Value is one tagged field read from a row. Text variants borrow from the
// store's backing buffer; all other variants are self-contained.
type Value struct {
	typ ValueType
	i   int32
	f   float32
	b   bool
	i64 int64
	s   Latin1
}

// Null returns the absent value.
func Null() Value { return Value{typ: TypeNothing} }

// Int returns an integer value.
func Int(v int32) Value { return Value{typ: TypeInteger, i: v} }

// Float returns a float value.
func Float(v float32) Value { return Value{typ: TypeFloat, f: v} }

// Text returns a text value viewing s.
func Text(s Latin1) Value { return Value{typ: TypeText, s: s} }

// TextString returns a text value holding an owned copy of s. The string must
// only contain code points representable in Latin-1.
func TextString(s string) Value {
	enc, err := charmap.ISO8859_1.NewEncoder().Bytes([]byte(s))
	if err != nil {
		enc = []byte(s)
	}
	return Value{typ: TypeText, s: enc}
}

// Bool returns a boolean value.
func Bool(v bool) Value { return Value{typ: TypeBoolean, b: v} }

// BigInt returns a 64-bit integer value.
func BigInt(v int64) Value { return Value{typ: TypeBigInt, i64: v} }

// VarChar returns a varchar value viewing s. VarChar decodes like Text but
// keeps its distinct on-disk type tag.
func VarChar(s Latin1) Value { return Value{typ: TypeVarChar, s: s} }

// Type returns the variant tag.
func (v Value) Type() ValueType { return v.typ }

// IsNull reports whether the value is absent.
func (v Value) IsNull() bool { return v.typ == TypeNothing }

// AsInteger returns the integer payload, if the value is an integer.
func (v Value) AsInteger() (int32, bool) {
	if v.typ != TypeInteger {
		return 0, false
	}
	return v.i, true
}

// AsFloat returns the float payload, if the value is a float.
func (v Value) AsFloat() (float32, bool) {
	if v.typ != TypeFloat {
		return 0, false
	}
	return v.f, true
}

// AsBoolean returns the boolean payload, if the value is a boolean.
func (v Value) AsBoolean() (bool, bool) {
	if v.typ != TypeBoolean {
		return false, false
	}
	return v.b, true
}

// AsBigInt returns the 64-bit integer payload, if the value is a bigint.
func (v Value) AsBigInt() (int64, bool) {
	if v.typ != TypeBigInt {
		return 0, false
	}
	return v.i64, true
}

// AsText returns the borrowed text view, if the value is text or varchar.
func (v Value) AsText() (Latin1, bool) {
	if v.typ != TypeText && v.typ != TypeVarChar {
		return nil, false
	}
	return v.s, true
}

// IsInteger reports whether the value is an integer equal to i.
func (v Value) IsInteger(i int32) bool {
	return v.typ == TypeInteger && v.i == i
}

// Any returns the payload as a plain Go value: int32, float32, bool, int64,
// string, or nil for an absent value. Text is decoded into an owned string.
func (v Value) Any() interface{} {
	switch v.typ {
	case TypeInteger:
		return v.i
	case TypeFloat:
		return v.f
	case TypeBoolean:
		return v.b
	case TypeBigInt:
		return v.i64
	case TypeText, TypeVarChar:
		return v.s.Decode()
	default:
		return nil
	}
}

// String renders the value for diagnostics.
func (v Value) String() string {
	if v.typ == TypeNothing {
		return "null"
	}
	return fmt.Sprintf("%v", v.Any())
}
