package fdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderBucketPlacement(t *testing.T) {
	store := NewBuilder().
		Table("Icons", 2,
			Column{Name: "IconID", Type: TypeInteger},
			Column{Name: "IconPath", Type: TypeText},
		).
		Row(Int(10), TextString("textures/ui/anvil.png")).
		Row(Int(3), Null()).
		Row(Int(12), TextString("textures/ui/brick.png")).
		MustBuild()

	table, ok := store.TableByName("Icons")
	require.True(t, ok)
	require.Equal(t, 2, table.BucketCount())

	// 10 and 12 are even, 3 is odd.
	b0, ok := table.BucketAt(0)
	require.True(t, ok)
	assert.Len(t, b0.Rows(), 2)
	b1, ok := table.BucketAt(1)
	require.True(t, ok)
	assert.Len(t, b1.Rows(), 1)

	_, ok = table.BucketAt(2)
	assert.False(t, ok)
	_, ok = table.BucketAt(-1)
	assert.False(t, ok)
}

func TestBuilderNegativeKeyUsesBitImage(t *testing.T) {
	store := NewBuilder().
		Table("T", 7, Column{Name: "id", Type: TypeInteger}).
		Row(Int(-5)).
		MustBuild()

	table, _ := store.TableByName("T")
	want := int(uint32(int32(-5)) % 7)
	b, ok := table.BucketAt(want)
	require.True(t, ok)
	assert.Len(t, b.Rows(), 1, "negative keys must hash by unsigned bit image, not numeric value")

	// The same bucket must be selected by BucketForHash.
	assert.Len(t, table.BucketForHash(uint32(int32(-5))).Rows(), 1)
}

func TestBuilderErrors(t *testing.T) {
	tests := []struct {
		name  string
		build func() (*Store, error)
	}{
		{"duplicate table", func() (*Store, error) {
			b := NewBuilder()
			b.Table("A", 1, Column{Name: "id", Type: TypeInteger})
			b.Table("A", 1, Column{Name: "id", Type: TypeInteger})
			return b.Build()
		}},
		{"zero buckets", func() (*Store, error) {
			b := NewBuilder()
			b.Table("A", 0, Column{Name: "id", Type: TypeInteger})
			return b.Build()
		}},
		{"value count mismatch", func() (*Store, error) {
			b := NewBuilder()
			b.Table("A", 1, Column{Name: "id", Type: TypeInteger}).Row(Int(1), Int(2))
			return b.Build()
		}},
		{"non-integer key", func() (*Store, error) {
			b := NewBuilder()
			b.Table("A", 1, Column{Name: "id", Type: TypeText}).Row(TextString("x"))
			return b.Build()
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.build()
			assert.Error(t, err)
		})
	}
}

func TestRowIterVisitsAllRowsInStoredOrder(t *testing.T) {
	store := NewBuilder().
		Table("T", 3, Column{Name: "id", Type: TypeInteger}).
		Row(Int(0)).
		Row(Int(3)).
		Row(Int(1)).
		Row(Int(5)).
		MustBuild()

	table, _ := store.TableByName("T")
	require.Equal(t, 4, table.RowCount())

	var ids []int32
	it := table.RowIter()
	for it.Next() {
		v, ok := it.Row().FieldAt(0)
		require.True(t, ok)
		id, ok := v.AsInteger()
		require.True(t, ok)
		ids = append(ids, id)
	}
	// Bucket 0 holds 0 then 3 (insertion order), bucket 1 holds 1, bucket 2
	// holds 5.
	assert.Equal(t, []int32{0, 3, 1, 5}, ids)

	// A fresh iterator restarts from the beginning.
	it2 := table.RowIter()
	require.True(t, it2.Next())
	v, _ := it2.Row().FieldAt(0)
	assert.True(t, v.IsInteger(0))
}

func TestValueVariants(t *testing.T) {
	v, ok := Int(7).AsInteger()
	require.True(t, ok)
	assert.Equal(t, int32(7), v)
	_, ok = Int(7).AsFloat()
	assert.False(t, ok)

	f, ok := Float(1.5).AsFloat()
	require.True(t, ok)
	assert.Equal(t, float32(1.5), f)

	b, ok := Bool(true).AsBoolean()
	require.True(t, ok)
	assert.True(t, b)

	i64, ok := BigInt(1 << 40).AsBigInt()
	require.True(t, ok)
	assert.Equal(t, int64(1)<<40, i64)

	assert.True(t, Null().IsNull())
	assert.False(t, Int(0).IsNull())

	s, ok := TextString("hello").AsText()
	require.True(t, ok)
	assert.Equal(t, "hello", s.Decode())
	_, ok = Null().AsText()
	assert.False(t, ok)

	// VarChar decodes like Text but keeps its tag.
	vc := VarChar(Latin1("abc"))
	assert.Equal(t, TypeVarChar, vc.Type())
	s, ok = vc.AsText()
	require.True(t, ok)
	assert.Equal(t, "abc", s.Decode())
}

func TestLatin1Decode(t *testing.T) {
	// 0xE9 is é in ISO 8859-1.
	s := Latin1{0x43, 0x61, 0x66, 0xE9}
	assert.Equal(t, "Café", s.Decode())

	assert.True(t, Latin1{}.IsEmpty())
	assert.Equal(t, "", Latin1{}.Decode())
	assert.True(t, Latin1("abc").Equal(Latin1("abc")))
	assert.False(t, Latin1("abc").Equal(Latin1("abd")))
}

func TestEmptyTextIsDistinctFromNull(t *testing.T) {
	empty := TextString("")
	s, ok := empty.AsText()
	require.True(t, ok, "empty text is a present value")
	assert.True(t, s.IsEmpty())
	assert.False(t, empty.IsNull())
}

func TestTablesSortedByName(t *testing.T) {
	b := NewBuilder()
	b.Table("Zeta", 1, Column{Name: "id", Type: TypeInteger})
	b.Table("Alpha", 1, Column{Name: "id", Type: TypeInteger})
	store := b.MustBuild()

	tables := store.Tables()
	require.Len(t, tables, 2)
	assert.Equal(t, "Alpha", tables[0].Name())
	assert.Equal(t, "Zeta", tables[1].Name())
}

func TestColumnIndex(t *testing.T) {
	store := NewBuilder().
		Table("T", 1,
			Column{Name: "id", Type: TypeInteger},
			Column{Name: "name", Type: TypeText},
		).
		MustBuild()
	table, _ := store.TableByName("T")
	assert.Equal(t, 0, table.ColumnIndex("id"))
	assert.Equal(t, 1, table.ColumnIndex("name"))
	assert.Equal(t, -1, table.ColumnIndex("missing"))
}
