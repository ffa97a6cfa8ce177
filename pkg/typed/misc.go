package typed

import (
	"github.com/Xiphoseer/paradox-typed-db/internal/schema"
	"github.com/Xiphoseer/paradox-typed-db/pkg/fdb"
)

// The table kinds below carry only their key column in the declared schema.
// They are validated at construction and reachable through generic iteration
// and the generic row serializer; no derived query reads their other columns
// by name.

const destructibleComponentColID = 0

// DestructibleComponentTable provides typed access to the
// DestructibleComponent table.
type DestructibleComponentTable struct{ table }

func newDestructibleComponentTable(raw *fdb.Table) (*DestructibleComponentTable, error) {
	t, err := resolve(raw, schema.DestructibleComponent)
	if err != nil {
		return nil, err
	}
	return &DestructibleComponentTable{t}, nil
}

// DestructibleComponentRow is one row of the DestructibleComponent table.
type DestructibleComponentRow struct {
	row   fdb.Row
	table *DestructibleComponentTable
}

func (t *DestructibleComponentTable) wrap(r fdb.Row) DestructibleComponentRow {
	return DestructibleComponentRow{row: r, table: t}
}

// Rows returns a fresh iterator over every row in stored order.
func (t *DestructibleComponentTable) Rows() *Iter[DestructibleComponentRow] {
	return tableIter(t.raw, t.wrap)
}

// KeyRows returns a fresh iterator over the rows of the bucket selected by
// key, without filtering by key equality.
func (t *DestructibleComponentTable) KeyRows(key int32) *Iter[DestructibleComponentRow] {
	return bucketIter(t.raw, key, t.wrap)
}

func (r DestructibleComponentRow) ID() int32 {
	return r.table.mustInt(r.row, destructibleComponentColID)
}

const itemSetsColSetID = 0

// ItemSetsTable provides typed access to the ItemSets table.
type ItemSetsTable struct{ table }

func newItemSetsTable(raw *fdb.Table) (*ItemSetsTable, error) {
	t, err := resolve(raw, schema.ItemSets)
	if err != nil {
		return nil, err
	}
	return &ItemSetsTable{t}, nil
}

// ItemSetsRow is one row of the ItemSets table.
type ItemSetsRow struct {
	row   fdb.Row
	table *ItemSetsTable
}

func (t *ItemSetsTable) wrap(r fdb.Row) ItemSetsRow { return ItemSetsRow{row: r, table: t} }

// Rows returns a fresh iterator over every row in stored order.
func (t *ItemSetsTable) Rows() *Iter[ItemSetsRow] { return tableIter(t.raw, t.wrap) }

// KeyRows returns a fresh iterator over the rows of the bucket selected by
// key, without filtering by key equality.
func (t *ItemSetsTable) KeyRows(key int32) *Iter[ItemSetsRow] {
	return bucketIter(t.raw, key, t.wrap)
}

func (r ItemSetsRow) SetID() int32 { return r.table.mustInt(r.row, itemSetsColSetID) }

const lootTableColID = 0

// LootTableTable provides typed access to the LootTable table.
type LootTableTable struct{ table }

func newLootTableTable(raw *fdb.Table) (*LootTableTable, error) {
	t, err := resolve(raw, schema.LootTable)
	if err != nil {
		return nil, err
	}
	return &LootTableTable{t}, nil
}

// LootTableRow is one row of the LootTable table.
type LootTableRow struct {
	row   fdb.Row
	table *LootTableTable
}

func (t *LootTableTable) wrap(r fdb.Row) LootTableRow { return LootTableRow{row: r, table: t} }

// Rows returns a fresh iterator over every row in stored order.
func (t *LootTableTable) Rows() *Iter[LootTableRow] { return tableIter(t.raw, t.wrap) }

// KeyRows returns a fresh iterator over the rows of the bucket selected by
// key, without filtering by key equality.
func (t *LootTableTable) KeyRows(key int32) *Iter[LootTableRow] {
	return bucketIter(t.raw, key, t.wrap)
}

func (r LootTableRow) ID() int32 { return r.table.mustInt(r.row, lootTableColID) }

const rebuildComponentColID = 0

// RebuildComponentTable provides typed access to the RebuildComponent table.
type RebuildComponentTable struct{ table }

func newRebuildComponentTable(raw *fdb.Table) (*RebuildComponentTable, error) {
	t, err := resolve(raw, schema.RebuildComponent)
	if err != nil {
		return nil, err
	}
	return &RebuildComponentTable{t}, nil
}

// RebuildComponentRow is one row of the RebuildComponent table.
type RebuildComponentRow struct {
	row   fdb.Row
	table *RebuildComponentTable
}

func (t *RebuildComponentTable) wrap(r fdb.Row) RebuildComponentRow {
	return RebuildComponentRow{row: r, table: t}
}

// Rows returns a fresh iterator over every row in stored order.
func (t *RebuildComponentTable) Rows() *Iter[RebuildComponentRow] { return tableIter(t.raw, t.wrap) }

// KeyRows returns a fresh iterator over the rows of the bucket selected by
// key, without filtering by key equality.
func (t *RebuildComponentTable) KeyRows(key int32) *Iter[RebuildComponentRow] {
	return bucketIter(t.raw, key, t.wrap)
}

func (r RebuildComponentRow) ID() int32 { return r.table.mustInt(r.row, rebuildComponentColID) }
