package typed

import (
	"github.com/Xiphoseer/paradox-typed-db/internal/schema"
	"github.com/Xiphoseer/paradox-typed-db/pkg/fdb"
)

// Declaration order of schema.SkillBehavior.Columns.
const (
	skillBehaviorColSkillID = iota
	skillBehaviorColLocStatus
	skillBehaviorColBehaviorID
	skillBehaviorColImaginationCost
	skillBehaviorColCooldownGroup
	skillBehaviorColCooldown
	skillBehaviorColInNpcEditor
	skillBehaviorColSkillIcon
	skillBehaviorColOomSkillID
	skillBehaviorColOomBehaviorEffectID
	skillBehaviorColCastTypeDesc
	skillBehaviorColImBonusUI
	skillBehaviorColLifeBonusUI
	skillBehaviorColArmorBonusUI
	skillBehaviorColDamageUI
	skillBehaviorColHideIcon
	skillBehaviorColLocalize
	skillBehaviorColGateVersion
	skillBehaviorColCancelType
)

// SkillBehaviorTable provides typed access to the SkillBehavior table.
type SkillBehaviorTable struct{ table }

func newSkillBehaviorTable(raw *fdb.Table) (*SkillBehaviorTable, error) {
	t, err := resolve(raw, schema.SkillBehavior)
	if err != nil {
		return nil, err
	}
	return &SkillBehaviorTable{t}, nil
}

// SkillBehaviorRow is one row of the SkillBehavior table.
type SkillBehaviorRow struct {
	row   fdb.Row
	table *SkillBehaviorTable
}

func (t *SkillBehaviorTable) wrap(r fdb.Row) SkillBehaviorRow {
	return SkillBehaviorRow{row: r, table: t}
}

// Rows returns a fresh iterator over every row in stored order.
func (t *SkillBehaviorTable) Rows() *Iter[SkillBehaviorRow] { return tableIter(t.raw, t.wrap) }

// KeyRows returns a fresh iterator over the rows of the bucket selected by
// key, without filtering by key equality.
func (t *SkillBehaviorTable) KeyRows(key int32) *Iter[SkillBehaviorRow] {
	return bucketIter(t.raw, key, t.wrap)
}

// Get returns the first row whose skillID equals id.
func (t *SkillBehaviorTable) Get(id int32) (SkillBehaviorRow, bool) {
	r, ok := lookupRow(t.raw, id, id, t.cols[skillBehaviorColSkillID])
	if !ok {
		return SkillBehaviorRow{}, false
	}
	return t.wrap(r), true
}

func (r SkillBehaviorRow) SkillID() int32   { return r.table.mustInt(r.row, skillBehaviorColSkillID) }
func (r SkillBehaviorRow) LocStatus() int32 { return r.table.mustInt(r.row, skillBehaviorColLocStatus) }

func (r SkillBehaviorRow) BehaviorID() int32 {
	return r.table.mustInt(r.row, skillBehaviorColBehaviorID)
}

func (r SkillBehaviorRow) ImaginationCost() int32 {
	return r.table.mustInt(r.row, skillBehaviorColImaginationCost)
}

func (r SkillBehaviorRow) CooldownGroup() int32 {
	return r.table.mustInt(r.row, skillBehaviorColCooldownGroup)
}

func (r SkillBehaviorRow) Cooldown() float32 {
	return r.table.mustFloat(r.row, skillBehaviorColCooldown)
}

func (r SkillBehaviorRow) InNpcEditor() bool {
	return r.table.mustBool(r.row, skillBehaviorColInNpcEditor)
}

func (r SkillBehaviorRow) SkillIcon() int32 {
	return r.table.mustInt(r.row, skillBehaviorColSkillIcon)
}

func (r SkillBehaviorRow) OomSkillID() fdb.Latin1 {
	return r.table.mustText(r.row, skillBehaviorColOomSkillID)
}

func (r SkillBehaviorRow) OomBehaviorEffectID() int32 {
	return r.table.mustInt(r.row, skillBehaviorColOomBehaviorEffectID)
}

func (r SkillBehaviorRow) CastTypeDesc() int32 {
	return r.table.mustInt(r.row, skillBehaviorColCastTypeDesc)
}

func (r SkillBehaviorRow) ImBonusUI() int32 {
	return r.table.mustInt(r.row, skillBehaviorColImBonusUI)
}

func (r SkillBehaviorRow) LifeBonusUI() int32 {
	return r.table.mustInt(r.row, skillBehaviorColLifeBonusUI)
}

func (r SkillBehaviorRow) ArmorBonusUI() int32 {
	return r.table.mustInt(r.row, skillBehaviorColArmorBonusUI)
}

func (r SkillBehaviorRow) DamageUI() int32 { return r.table.mustInt(r.row, skillBehaviorColDamageUI) }
func (r SkillBehaviorRow) HideIcon() bool  { return r.table.mustBool(r.row, skillBehaviorColHideIcon) }
func (r SkillBehaviorRow) Localize() bool  { return r.table.mustBool(r.row, skillBehaviorColLocalize) }

func (r SkillBehaviorRow) GateVersion() fdb.Latin1 {
	return r.table.mustText(r.row, skillBehaviorColGateVersion)
}

func (r SkillBehaviorRow) CancelType() int32 {
	return r.table.mustInt(r.row, skillBehaviorColCancelType)
}

// SkillBehaviorRecord is the owned, serializable form of a SkillBehavior
// row.
type SkillBehaviorRecord struct {
	SkillID             int32   `json:"skillID"`
	LocStatus           int32   `json:"locStatus"`
	BehaviorID          int32   `json:"behaviorID"`
	ImaginationCost     int32   `json:"imaginationcost"`
	CooldownGroup       int32   `json:"cooldowngroup"`
	Cooldown            float32 `json:"cooldown"`
	InNpcEditor         bool    `json:"inNpcEditor"`
	SkillIcon           int32   `json:"skillIcon"`
	OomSkillID          string  `json:"oomSkillID"`
	OomBehaviorEffectID int32   `json:"oomBehaviorEffectID"`
	CastTypeDesc        int32   `json:"castTypeDesc"`
	ImBonusUI           int32   `json:"imBonusUI"`
	LifeBonusUI         int32   `json:"lifeBonusUI"`
	ArmorBonusUI        int32   `json:"armorBonusUI"`
	DamageUI            int32   `json:"damageUI"`
	HideIcon            bool    `json:"hideIcon"`
	Localize            bool    `json:"localize"`
	GateVersion         string  `json:"gate_version"`
	CancelType          int32   `json:"cancelType"`
}

// Record materializes the row into an owned record.
func (r SkillBehaviorRow) Record() SkillBehaviorRecord {
	return SkillBehaviorRecord{
		SkillID:             r.SkillID(),
		LocStatus:           r.LocStatus(),
		BehaviorID:          r.BehaviorID(),
		ImaginationCost:     r.ImaginationCost(),
		CooldownGroup:       r.CooldownGroup(),
		Cooldown:            r.Cooldown(),
		InNpcEditor:         r.InNpcEditor(),
		SkillIcon:           r.SkillIcon(),
		OomSkillID:          r.OomSkillID().Decode(),
		OomBehaviorEffectID: r.OomBehaviorEffectID(),
		CastTypeDesc:        r.CastTypeDesc(),
		ImBonusUI:           r.ImBonusUI(),
		LifeBonusUI:         r.LifeBonusUI(),
		ArmorBonusUI:        r.ArmorBonusUI(),
		DamageUI:            r.DamageUI(),
		HideIcon:            r.HideIcon(),
		Localize:            r.Localize(),
		GateVersion:         r.GateVersion().Decode(),
		CancelType:          r.CancelType(),
	}
}

// Declaration order of schema.ObjectSkills.Columns.
const (
	objectSkillsColObjectTemplate = iota
	objectSkillsColSkillID
)

// ObjectSkillsTable provides typed access to the ObjectSkills table. Rows
// are bucketed by object template id.
type ObjectSkillsTable struct{ table }

func newObjectSkillsTable(raw *fdb.Table) (*ObjectSkillsTable, error) {
	t, err := resolve(raw, schema.ObjectSkills)
	if err != nil {
		return nil, err
	}
	return &ObjectSkillsTable{t}, nil
}

// ObjectSkillsRow is one row of the ObjectSkills table.
type ObjectSkillsRow struct {
	row   fdb.Row
	table *ObjectSkillsTable
}

func (t *ObjectSkillsTable) wrap(r fdb.Row) ObjectSkillsRow {
	return ObjectSkillsRow{row: r, table: t}
}

// Rows returns a fresh iterator over every row in stored order.
func (t *ObjectSkillsTable) Rows() *Iter[ObjectSkillsRow] { return tableIter(t.raw, t.wrap) }

// KeyRows returns a fresh iterator over the rows of the bucket selected by
// key, without filtering by key equality.
func (t *ObjectSkillsTable) KeyRows(key int32) *Iter[ObjectSkillsRow] {
	return bucketIter(t.raw, key, t.wrap)
}

func (r ObjectSkillsRow) ObjectTemplate() int32 {
	return r.table.mustInt(r.row, objectSkillsColObjectTemplate)
}

func (r ObjectSkillsRow) SkillID() int32 { return r.table.mustInt(r.row, objectSkillsColSkillID) }

// Declaration order of schema.ItemSetSkills.Columns.
const (
	itemSetSkillsColSkillSetID = iota
	itemSetSkillsColSkillID
)

// ItemSetSkillsTable provides typed access to the ItemSetSkills table. Rows
// are bucketed by skill set id.
type ItemSetSkillsTable struct{ table }

func newItemSetSkillsTable(raw *fdb.Table) (*ItemSetSkillsTable, error) {
	t, err := resolve(raw, schema.ItemSetSkills)
	if err != nil {
		return nil, err
	}
	return &ItemSetSkillsTable{t}, nil
}

// ItemSetSkillsRow is one row of the ItemSetSkills table.
type ItemSetSkillsRow struct {
	row   fdb.Row
	table *ItemSetSkillsTable
}

func (t *ItemSetSkillsTable) wrap(r fdb.Row) ItemSetSkillsRow {
	return ItemSetSkillsRow{row: r, table: t}
}

// Rows returns a fresh iterator over every row in stored order.
func (t *ItemSetSkillsTable) Rows() *Iter[ItemSetSkillsRow] { return tableIter(t.raw, t.wrap) }

// KeyRows returns a fresh iterator over the rows of the bucket selected by
// key, without filtering by key equality.
func (t *ItemSetSkillsTable) KeyRows(key int32) *Iter[ItemSetSkillsRow] {
	return bucketIter(t.raw, key, t.wrap)
}

func (r ItemSetSkillsRow) SkillSetID() int32 {
	return r.table.mustInt(r.row, itemSetSkillsColSkillSetID)
}

func (r ItemSetSkillsRow) SkillID() int32 { return r.table.mustInt(r.row, itemSetSkillsColSkillID) }
