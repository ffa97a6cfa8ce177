package typed

import (
	"github.com/Xiphoseer/paradox-typed-db/internal/schema"
	"github.com/Xiphoseer/paradox-typed-db/pkg/fdb"
)

// Declaration order of schema.BehaviorParameter.Columns.
const (
	behaviorParameterColBehaviorID = iota
	behaviorParameterColParameterID
	behaviorParameterColValue
)

// BehaviorParameterTable provides typed access to the BehaviorParameter
// table. Rows are bucketed by behavior id; one behavior has one row per
// parameter name.
type BehaviorParameterTable struct{ table }

func newBehaviorParameterTable(raw *fdb.Table) (*BehaviorParameterTable, error) {
	t, err := resolve(raw, schema.BehaviorParameter)
	if err != nil {
		return nil, err
	}
	return &BehaviorParameterTable{t}, nil
}

// BehaviorParameterRow is one row of the BehaviorParameter table.
type BehaviorParameterRow struct {
	row   fdb.Row
	table *BehaviorParameterTable
}

func (t *BehaviorParameterTable) wrap(r fdb.Row) BehaviorParameterRow {
	return BehaviorParameterRow{row: r, table: t}
}

// Rows returns a fresh iterator over every row in stored order.
func (t *BehaviorParameterTable) Rows() *Iter[BehaviorParameterRow] {
	return tableIter(t.raw, t.wrap)
}

// KeyRows returns a fresh iterator over the rows of the bucket selected by
// key, without filtering by key equality.
func (t *BehaviorParameterTable) KeyRows(key int32) *Iter[BehaviorParameterRow] {
	return bucketIter(t.raw, key, t.wrap)
}

func (r BehaviorParameterRow) BehaviorID() int32 {
	return r.table.mustInt(r.row, behaviorParameterColBehaviorID)
}

func (r BehaviorParameterRow) ParameterID() fdb.Latin1 {
	return r.table.mustText(r.row, behaviorParameterColParameterID)
}

func (r BehaviorParameterRow) Value() float32 {
	return r.table.mustFloat(r.row, behaviorParameterColValue)
}

// BehaviorParameterRecord is the owned, serializable form of a
// BehaviorParameter row.
type BehaviorParameterRecord struct {
	BehaviorID  int32   `json:"behaviorID"`
	ParameterID string  `json:"parameterID"`
	Value       float32 `json:"value"`
}

// Record materializes the row into an owned record.
func (r BehaviorParameterRow) Record() BehaviorParameterRecord {
	return BehaviorParameterRecord{
		BehaviorID:  r.BehaviorID(),
		ParameterID: r.ParameterID().Decode(),
		Value:       r.Value(),
	}
}

// Declaration order of schema.BehaviorTemplate.Columns.
const (
	behaviorTemplateColBehaviorID = iota
	behaviorTemplateColTemplateID
	behaviorTemplateColEffectID
	behaviorTemplateColEffectHandle
)

// BehaviorTemplateTable provides typed access to the BehaviorTemplate table.
type BehaviorTemplateTable struct{ table }

func newBehaviorTemplateTable(raw *fdb.Table) (*BehaviorTemplateTable, error) {
	t, err := resolve(raw, schema.BehaviorTemplate)
	if err != nil {
		return nil, err
	}
	return &BehaviorTemplateTable{t}, nil
}

// BehaviorTemplateRow is one row of the BehaviorTemplate table.
type BehaviorTemplateRow struct {
	row   fdb.Row
	table *BehaviorTemplateTable
}

func (t *BehaviorTemplateTable) wrap(r fdb.Row) BehaviorTemplateRow {
	return BehaviorTemplateRow{row: r, table: t}
}

// Rows returns a fresh iterator over every row in stored order.
func (t *BehaviorTemplateTable) Rows() *Iter[BehaviorTemplateRow] {
	return tableIter(t.raw, t.wrap)
}

// KeyRows returns a fresh iterator over the rows of the bucket selected by
// key, without filtering by key equality.
func (t *BehaviorTemplateTable) KeyRows(key int32) *Iter[BehaviorTemplateRow] {
	return bucketIter(t.raw, key, t.wrap)
}

// Get returns the first row whose behaviorID equals id.
func (t *BehaviorTemplateTable) Get(id int32) (BehaviorTemplateRow, bool) {
	r, ok := lookupRow(t.raw, id, id, t.cols[behaviorTemplateColBehaviorID])
	if !ok {
		return BehaviorTemplateRow{}, false
	}
	return t.wrap(r), true
}

func (r BehaviorTemplateRow) BehaviorID() int32 {
	return r.table.mustInt(r.row, behaviorTemplateColBehaviorID)
}

func (r BehaviorTemplateRow) TemplateID() int32 {
	return r.table.mustInt(r.row, behaviorTemplateColTemplateID)
}

func (r BehaviorTemplateRow) EffectID() (int32, bool) {
	return r.table.optInt(r.row, behaviorTemplateColEffectID)
}

func (r BehaviorTemplateRow) EffectHandle() (fdb.Latin1, bool) {
	return r.table.optText(r.row, behaviorTemplateColEffectHandle)
}

// BehaviorTemplateRecord is the owned, serializable form of a
// BehaviorTemplate row.
type BehaviorTemplateRecord struct {
	BehaviorID   int32   `json:"behaviorID"`
	TemplateID   int32   `json:"templateID"`
	EffectID     *int32  `json:"effectID"`
	EffectHandle *string `json:"effectHandle"`
}

// Record materializes the row into an owned record.
func (r BehaviorTemplateRow) Record() BehaviorTemplateRecord {
	return BehaviorTemplateRecord{
		BehaviorID:   r.BehaviorID(),
		TemplateID:   r.TemplateID(),
		EffectID:     intPtr(r.EffectID()),
		EffectHandle: strPtr(r.EffectHandle()),
	}
}
