package typed

import (
	"github.com/Xiphoseer/paradox-typed-db/internal/schema"
	"github.com/Xiphoseer/paradox-typed-db/pkg/fdb"
)

// Declaration order of schema.Missions.Columns.
const (
	missionsColID = iota
	missionsColDefinedType
	missionsColDefinedSubtype
	missionsColIsMission
	missionsColUISortOrder
	missionsColMissionIconID
)

// MissionsTable provides typed access to the Missions table.
type MissionsTable struct{ table }

func newMissionsTable(raw *fdb.Table) (*MissionsTable, error) {
	t, err := resolve(raw, schema.Missions)
	if err != nil {
		return nil, err
	}
	return &MissionsTable{t}, nil
}

// MissionsRow is one row of the Missions table. It borrows from the owning
// table and must not outlive it.
type MissionsRow struct {
	row   fdb.Row
	table *MissionsTable
}

func (t *MissionsTable) wrap(r fdb.Row) MissionsRow { return MissionsRow{row: r, table: t} }

// Rows returns a fresh iterator over every row in stored order.
func (t *MissionsTable) Rows() *Iter[MissionsRow] { return tableIter(t.raw, t.wrap) }

// KeyRows returns a fresh iterator over the rows of the bucket selected by
// key, without filtering by key equality.
func (t *MissionsTable) KeyRows(key int32) *Iter[MissionsRow] {
	return bucketIter(t.raw, key, t.wrap)
}

// Get returns the first row whose id equals id.
func (t *MissionsTable) Get(id int32) (MissionsRow, bool) {
	r, ok := lookupRow(t.raw, id, id, t.cols[missionsColID])
	if !ok {
		return MissionsRow{}, false
	}
	return t.wrap(r), true
}

func (r MissionsRow) ID() int32 { return r.table.mustInt(r.row, missionsColID) }

func (r MissionsRow) DefinedType() (fdb.Latin1, bool) {
	return r.table.optText(r.row, missionsColDefinedType)
}

func (r MissionsRow) DefinedSubtype() (fdb.Latin1, bool) {
	return r.table.optText(r.row, missionsColDefinedSubtype)
}

func (r MissionsRow) IsMission() bool { return r.table.mustBool(r.row, missionsColIsMission) }

func (r MissionsRow) UISortOrder() (int32, bool) {
	return r.table.optInt(r.row, missionsColUISortOrder)
}

func (r MissionsRow) MissionIconID() (int32, bool) {
	return r.table.optInt(r.row, missionsColMissionIconID)
}

// MissionRecord is the owned, serializable form of a Missions row. Field
// names and order follow the declared schema; absent optionals serialize as
// null.
type MissionRecord struct {
	ID             int32   `json:"id"`
	DefinedType    *string `json:"defined_type"`
	DefinedSubtype *string `json:"defined_subtype"`
	IsMission      bool    `json:"isMission"`
	UISortOrder    *int32  `json:"UISortOrder"`
	MissionIconID  *int32  `json:"missionIconID"`
}

// Record materializes the row into an owned record, detached from the
// store's buffer.
func (r MissionsRow) Record() MissionRecord {
	return MissionRecord{
		ID:             r.ID(),
		DefinedType:    strPtr(r.DefinedType()),
		DefinedSubtype: strPtr(r.DefinedSubtype()),
		IsMission:      r.IsMission(),
		UISortOrder:    intPtr(r.UISortOrder()),
		MissionIconID:  intPtr(r.MissionIconID()),
	}
}

// Declaration order of schema.MissionTasks.Columns.
const (
	missionTasksColID = iota
	missionTasksColLocStatus
	missionTasksColTaskType
	missionTasksColTarget
	missionTasksColTargetGroup
	missionTasksColTargetValue
	missionTasksColTaskParam1
	missionTasksColLargeTaskIcon
	missionTasksColIconID
	missionTasksColUID
	missionTasksColLargeTaskIconID
	missionTasksColLocalize
	missionTasksColGateVersion
)

// MissionTasksTable provides typed access to the MissionTasks table. Rows
// are bucketed by mission id, and one mission may have any number of task
// rows.
type MissionTasksTable struct{ table }

func newMissionTasksTable(raw *fdb.Table) (*MissionTasksTable, error) {
	t, err := resolve(raw, schema.MissionTasks)
	if err != nil {
		return nil, err
	}
	return &MissionTasksTable{t}, nil
}

// MissionTasksRow is one row of the MissionTasks table.
type MissionTasksRow struct {
	row   fdb.Row
	table *MissionTasksTable
}

func (t *MissionTasksTable) wrap(r fdb.Row) MissionTasksRow {
	return MissionTasksRow{row: r, table: t}
}

// Rows returns a fresh iterator over every row in stored order.
func (t *MissionTasksTable) Rows() *Iter[MissionTasksRow] { return tableIter(t.raw, t.wrap) }

// KeyRows returns a fresh iterator over the rows of the bucket selected by
// key, without filtering by key equality.
func (t *MissionTasksTable) KeyRows(key int32) *Iter[MissionTasksRow] {
	return bucketIter(t.raw, key, t.wrap)
}

// GetByUID returns the task row with the given uid. Tasks are bucketed by
// their mission id, so the caller must supply the missionID the row was
// stored under; a uid looked up with the wrong mission id is not found.
func (t *MissionTasksTable) GetByUID(missionID, uid int32) (MissionTasksRow, bool) {
	r, ok := lookupRow(t.raw, missionID, uid, t.cols[missionTasksColUID])
	if !ok {
		return MissionTasksRow{}, false
	}
	return t.wrap(r), true
}

func (r MissionTasksRow) ID() int32        { return r.table.mustInt(r.row, missionTasksColID) }
func (r MissionTasksRow) LocStatus() int32 { return r.table.mustInt(r.row, missionTasksColLocStatus) }
func (r MissionTasksRow) TaskType() int32  { return r.table.mustInt(r.row, missionTasksColTaskType) }

func (r MissionTasksRow) Target() (int32, bool) {
	return r.table.optInt(r.row, missionTasksColTarget)
}

func (r MissionTasksRow) TargetGroup() (fdb.Latin1, bool) {
	return r.table.optText(r.row, missionTasksColTargetGroup)
}

func (r MissionTasksRow) TargetValue() (int32, bool) {
	return r.table.optInt(r.row, missionTasksColTargetValue)
}

func (r MissionTasksRow) TaskParam1() (fdb.Latin1, bool) {
	return r.table.optText(r.row, missionTasksColTaskParam1)
}

func (r MissionTasksRow) LargeTaskIcon() (fdb.Latin1, bool) {
	return r.table.optText(r.row, missionTasksColLargeTaskIcon)
}

func (r MissionTasksRow) IconID() (int32, bool) {
	return r.table.optInt(r.row, missionTasksColIconID)
}

func (r MissionTasksRow) UID() int32     { return r.table.mustInt(r.row, missionTasksColUID) }
func (r MissionTasksRow) Localize() bool { return r.table.mustBool(r.row, missionTasksColLocalize) }

func (r MissionTasksRow) LargeTaskIconID() (int32, bool) {
	return r.table.optInt(r.row, missionTasksColLargeTaskIconID)
}

func (r MissionTasksRow) GateVersion() (fdb.Latin1, bool) {
	return r.table.optText(r.row, missionTasksColGateVersion)
}

// MissionTaskRecord is the owned, serializable form of a MissionTasks row.
type MissionTaskRecord struct {
	ID              int32   `json:"id"`
	LocStatus       int32   `json:"locStatus"`
	TaskType        int32   `json:"taskType"`
	Target          *int32  `json:"target"`
	TargetGroup     *string `json:"targetGroup"`
	TargetValue     *int32  `json:"targetValue"`
	TaskParam1      *string `json:"taskParam1"`
	LargeTaskIcon   *string `json:"largeTaskIcon"`
	IconID          *int32  `json:"IconID"`
	UID             int32   `json:"uid"`
	LargeTaskIconID *int32  `json:"largeTaskIconID"`
	Localize        bool    `json:"localize"`
	GateVersion     *string `json:"gate_version"`
}

// Record materializes the row into an owned record.
func (r MissionTasksRow) Record() MissionTaskRecord {
	return MissionTaskRecord{
		ID:              r.ID(),
		LocStatus:       r.LocStatus(),
		TaskType:        r.TaskType(),
		Target:          intPtr(r.Target()),
		TargetGroup:     strPtr(r.TargetGroup()),
		TargetValue:     intPtr(r.TargetValue()),
		TaskParam1:      strPtr(r.TaskParam1()),
		LargeTaskIcon:   strPtr(r.LargeTaskIcon()),
		IconID:          intPtr(r.IconID()),
		UID:             r.UID(),
		LargeTaskIconID: intPtr(r.LargeTaskIconID()),
		Localize:        r.Localize(),
		GateVersion:     strPtr(r.GateVersion()),
	}
}
