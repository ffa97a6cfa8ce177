package typed

import (
	"fmt"

	"github.com/Xiphoseer/paradox-typed-db/pkg/fdb"
)

// Mission is the summary returned by GetMissionData.
type Mission struct {
	MissionIconID *int32 `json:"mission_icon_id"`
	IsMission     bool   `json:"is_mission"`
}

// MissionTask is one entry of the list returned by GetMissionTasks.
type MissionTask struct {
	IconID *int32 `json:"icon_id"`
	UID    int32  `json:"uid"`
}

// Components is the component set of one object, returned by GetComponents.
type Components struct {
	Render *int32 `json:"render"`
}

// bucketFor selects the bucket for a signed key using the placement rule of
// the file format: the unsigned bit image of the key modulo the bucket
// count. Negative keys map to large unsigned values, never to negative
// indexes.
func bucketFor(t *fdb.Table, id int32) (fdb.Bucket, bool) {
	if t.BucketCount() == 0 {
		return fdb.Bucket{}, false
	}
	return t.BucketForHash(uint32(id)), true
}

// GetIconPath returns the icon path stored for the given icon id. The view
// borrows from the store. Returns false if the id has no row or the path
// column holds no text.
func (db *Database) GetIconPath(id int32) (fdb.Latin1, bool) {
	bucket, ok := bucketFor(db.Icons.raw, id)
	if !ok {
		return nil, false
	}
	for _, row := range bucket.Rows() {
		if f, ok := row.FieldAt(0); ok && f.IsInteger(id) {
			return db.Icons.optText(row, iconsColIconPath)
		}
	}
	return nil, false
}

// GetMissionData returns summary data for the given mission id. A mission
// with no stored isMission value counts as a mission.
func (db *Database) GetMissionData(id int32) (Mission, bool) {
	bucket, ok := bucketFor(db.Missions.raw, id)
	if !ok {
		return Mission{}, false
	}
	for _, row := range bucket.Rows() {
		if f, ok := row.FieldAt(0); ok && f.IsInteger(id) {
			iconID := intPtr(db.Missions.optInt(row, missionsColMissionIconID))
			isMission, ok := db.Missions.optBool(row, missionsColIsMission)
			if !ok {
				isMission = true
			}
			return Mission{MissionIconID: iconID, IsMission: isMission}, true
		}
	}
	return Mission{}, false
}

// GetMissionTasks returns every task row stored for the given mission id, in
// bucket scan order. No uniqueness is assumed; duplicate ids in the source
// produce duplicate entries.
func (db *Database) GetMissionTasks(id int32) []MissionTask {
	tasks := make([]MissionTask, 0, 4)
	bucket, ok := bucketFor(db.MissionTasks.raw, id)
	if !ok {
		return tasks
	}
	for _, row := range bucket.Rows() {
		if f, ok := row.FieldAt(0); ok && f.IsInteger(id) {
			tasks = append(tasks, MissionTask{
				IconID: intPtr(db.MissionTasks.optInt(row, missionTasksColIconID)),
				UID:    db.MissionTasks.mustInt(row, missionTasksColUID),
			})
		}
	}
	return tasks
}

// GetObjectNameDesc returns the formatted title and description for the
// given object id.
//
// Unlike every other query, this reads the name, description, displayName
// and internalNotes fields at fixed physical positions 1, 4, 7 and 10
// relative to the id field, bypassing the column resolver. This matches the
// shipped client layout of the Objects table; a file that reorders those
// columns will silently read the wrong fields here even though resolver
// based access still works.
func (db *Database) GetObjectNameDesc(id int32) (title, desc string, ok bool) {
	bucket, found := bucketFor(db.Objects.raw, id)
	if !found {
		return "", "", false
	}
	for _, row := range bucket.Rows() {
		fields := row.Fields()
		if len(fields) < 11 || !fields[0].IsInteger(id) {
			continue
		}
		name := textIfNotEmpty(fields[1])
		description := textIfNotEmpty(fields[4])
		displayName := textIfNotEmpty(fields[7])
		internalNotes := textIfNotEmpty(fields[10])

		return formatTitle(id, name, displayName), formatDescription(description, internalNotes), true
	}
	return "", "", false
}

// GetRenderImage returns the icon asset path of the given render component.
// The asset field is read at its fixed physical position. A matching row
// whose asset is not text does not end the scan; a later row with the same
// id may still supply the path.
func (db *Database) GetRenderImage(id int32) (fdb.Latin1, bool) {
	bucket, ok := bucketFor(db.RenderComp.raw, id)
	if !ok {
		return nil, false
	}
	for _, row := range bucket.Rows() {
		fields := row.Fields()
		if len(fields) < 3 || !fields[0].IsInteger(id) {
			continue
		}
		// fields[1] is the render asset; the icon asset follows it.
		if url, ok := fields[2].AsText(); ok {
			return url, true
		}
	}
	return nil, false
}

// GetComponents returns the component set registered for the given object
// id. When multiple render components (component_type 2) share the id, the
// last row in bucket scan order wins.
func (db *Database) GetComponents(id int32) Components {
	var comp Components
	bucket, ok := bucketFor(db.CompReg.raw, id)
	if !ok {
		return comp
	}
	for _, row := range bucket.Rows() {
		fields := row.Fields()
		if len(fields) < 3 || !fields[0].IsInteger(id) {
			continue
		}
		if fields[1].IsInteger(2) {
			comp.Render = intPtr(fields[2].AsInteger())
		}
	}
	return comp
}

// textIfNotEmpty returns the text payload of v, or nil when v is not text or
// the text is empty. Empty and absent both count as "no usable value" for
// the formatting rules.
func textIfNotEmpty(v fdb.Value) fdb.Latin1 {
	s, ok := v.AsText()
	if !ok || s.IsEmpty() {
		return nil
	}
	return s
}

// formatTitle combines an object's name and display name into the canonical
// title. A nil input counts as absent; equal values collapse to the single
// form.
func formatTitle(id int32, name, displayName fdb.Latin1) string {
	switch {
	case name != nil && displayName != nil && !displayName.Equal(name):
		return fmt.Sprintf("%s (%s) | Object #%d", displayName.Decode(), name.Decode(), id)
	case name != nil:
		return fmt.Sprintf("%s | Object #%d", name.Decode(), id)
	case displayName != nil:
		return fmt.Sprintf("%s | Object #%d", displayName.Decode(), id)
	default:
		return fmt.Sprintf("Object #%d", id)
	}
}

// formatDescription combines an object's description and internal notes.
// Equal values collapse; both absent yields the empty string.
func formatDescription(description, internalNotes fdb.Latin1) string {
	switch {
	case description != nil && internalNotes != nil && !description.Equal(internalNotes):
		return fmt.Sprintf("%s (%s)", description.Decode(), internalNotes.Decode())
	case description != nil:
		return description.Decode()
	case internalNotes != nil:
		return internalNotes.Decode()
	default:
		return ""
	}
}
