package typed

import (
	"github.com/Xiphoseer/paradox-typed-db/internal/schema"
	"github.com/Xiphoseer/paradox-typed-db/pkg/fdb"
)

// Declaration order of schema.Icons.Columns.
const (
	iconsColIconID = iota
	iconsColIconPath
)

// IconsTable provides typed access to the Icons table.
type IconsTable struct{ table }

func newIconsTable(raw *fdb.Table) (*IconsTable, error) {
	t, err := resolve(raw, schema.Icons)
	if err != nil {
		return nil, err
	}
	return &IconsTable{t}, nil
}

// IconsRow is one row of the Icons table.
type IconsRow struct {
	row   fdb.Row
	table *IconsTable
}

func (t *IconsTable) wrap(r fdb.Row) IconsRow { return IconsRow{row: r, table: t} }

// Rows returns a fresh iterator over every row in stored order.
func (t *IconsTable) Rows() *Iter[IconsRow] { return tableIter(t.raw, t.wrap) }

// KeyRows returns a fresh iterator over the rows of the bucket selected by
// key, without filtering by key equality.
func (t *IconsTable) KeyRows(key int32) *Iter[IconsRow] { return bucketIter(t.raw, key, t.wrap) }

func (r IconsRow) IconID() int32 { return r.table.mustInt(r.row, iconsColIconID) }

func (r IconsRow) IconPath() (fdb.Latin1, bool) { return r.table.optText(r.row, iconsColIconPath) }

// Declaration order of schema.ComponentsRegistry.Columns.
const (
	componentsRegistryColID = iota
	componentsRegistryColComponentType
	componentsRegistryColComponentID
)

// ComponentsRegistryTable provides typed access to the ComponentsRegistry
// table. Rows are bucketed by object id; one object has one row per
// component.
type ComponentsRegistryTable struct{ table }

func newComponentsRegistryTable(raw *fdb.Table) (*ComponentsRegistryTable, error) {
	t, err := resolve(raw, schema.ComponentsRegistry)
	if err != nil {
		return nil, err
	}
	return &ComponentsRegistryTable{t}, nil
}

// ComponentsRegistryRow is one row of the ComponentsRegistry table.
type ComponentsRegistryRow struct {
	row   fdb.Row
	table *ComponentsRegistryTable
}

func (t *ComponentsRegistryTable) wrap(r fdb.Row) ComponentsRegistryRow {
	return ComponentsRegistryRow{row: r, table: t}
}

// Rows returns a fresh iterator over every row in stored order.
func (t *ComponentsRegistryTable) Rows() *Iter[ComponentsRegistryRow] {
	return tableIter(t.raw, t.wrap)
}

// KeyRows returns a fresh iterator over the rows of the bucket selected by
// key, without filtering by key equality.
func (t *ComponentsRegistryTable) KeyRows(key int32) *Iter[ComponentsRegistryRow] {
	return bucketIter(t.raw, key, t.wrap)
}

func (r ComponentsRegistryRow) ID() int32 { return r.table.mustInt(r.row, componentsRegistryColID) }

func (r ComponentsRegistryRow) ComponentType() int32 {
	return r.table.mustInt(r.row, componentsRegistryColComponentType)
}

func (r ComponentsRegistryRow) ComponentID() int32 {
	return r.table.mustInt(r.row, componentsRegistryColComponentID)
}

// Declaration order of schema.RenderComponent.Columns.
const (
	renderComponentColID = iota
	renderComponentColRenderAsset
	renderComponentColIconAsset
)

// RenderComponentTable provides typed access to the RenderComponent table.
type RenderComponentTable struct{ table }

func newRenderComponentTable(raw *fdb.Table) (*RenderComponentTable, error) {
	t, err := resolve(raw, schema.RenderComponent)
	if err != nil {
		return nil, err
	}
	return &RenderComponentTable{t}, nil
}

// RenderComponentRow is one row of the RenderComponent table.
type RenderComponentRow struct {
	row   fdb.Row
	table *RenderComponentTable
}

func (t *RenderComponentTable) wrap(r fdb.Row) RenderComponentRow {
	return RenderComponentRow{row: r, table: t}
}

// Rows returns a fresh iterator over every row in stored order.
func (t *RenderComponentTable) Rows() *Iter[RenderComponentRow] { return tableIter(t.raw, t.wrap) }

// KeyRows returns a fresh iterator over the rows of the bucket selected by
// key, without filtering by key equality.
func (t *RenderComponentTable) KeyRows(key int32) *Iter[RenderComponentRow] {
	return bucketIter(t.raw, key, t.wrap)
}

func (r RenderComponentRow) ID() int32 { return r.table.mustInt(r.row, renderComponentColID) }

func (r RenderComponentRow) RenderAsset() (fdb.Latin1, bool) {
	return r.table.optText(r.row, renderComponentColRenderAsset)
}

func (r RenderComponentRow) IconAsset() (fdb.Latin1, bool) {
	return r.table.optText(r.row, renderComponentColIconAsset)
}

// Declaration order of schema.Objects.Columns.
const (
	objectsColID = iota
	objectsColName
	objectsColDescription
	objectsColDisplayName
	objectsColInternalNotes
)

// ObjectsTable provides typed access to the Objects table.
type ObjectsTable struct{ table }

func newObjectsTable(raw *fdb.Table) (*ObjectsTable, error) {
	t, err := resolve(raw, schema.Objects)
	if err != nil {
		return nil, err
	}
	return &ObjectsTable{t}, nil
}

// ObjectsRow is one row of the Objects table.
type ObjectsRow struct {
	row   fdb.Row
	table *ObjectsTable
}

func (t *ObjectsTable) wrap(r fdb.Row) ObjectsRow { return ObjectsRow{row: r, table: t} }

// Rows returns a fresh iterator over every row in stored order.
func (t *ObjectsTable) Rows() *Iter[ObjectsRow] { return tableIter(t.raw, t.wrap) }

// KeyRows returns a fresh iterator over the rows of the bucket selected by
// key, without filtering by key equality.
func (t *ObjectsTable) KeyRows(key int32) *Iter[ObjectsRow] { return bucketIter(t.raw, key, t.wrap) }

// Get returns the first row whose id equals id.
func (t *ObjectsTable) Get(id int32) (ObjectsRow, bool) {
	r, ok := lookupRow(t.raw, id, id, t.cols[objectsColID])
	if !ok {
		return ObjectsRow{}, false
	}
	return t.wrap(r), true
}

func (r ObjectsRow) ID() int32 { return r.table.mustInt(r.row, objectsColID) }

func (r ObjectsRow) ObjectName() (fdb.Latin1, bool) { return r.table.optText(r.row, objectsColName) }

func (r ObjectsRow) Description() (fdb.Latin1, bool) {
	return r.table.optText(r.row, objectsColDescription)
}

func (r ObjectsRow) DisplayName() (fdb.Latin1, bool) {
	return r.table.optText(r.row, objectsColDisplayName)
}

func (r ObjectsRow) InternalNotes() (fdb.Latin1, bool) {
	return r.table.optText(r.row, objectsColInternalNotes)
}
