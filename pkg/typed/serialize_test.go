package typed

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMissionRecordFieldOrderAndNulls(t *testing.T) {
	db := testDB(t)

	row, ok := db.Missions.Get(102)
	require.True(t, ok)

	out, err := json.Marshal(row.Record())
	require.NoError(t, err)

	// Declared field names in declaration order; the absent subtype is an
	// explicit null, not omitted.
	assert.JSONEq(t,
		`{"id":102,"defined_type":"Achievement","defined_subtype":null,"isMission":false,"UISortOrder":2,"missionIconID":7}`,
		string(out))
	assert.Equal(t,
		`{"id":102,"defined_type":"Achievement","defined_subtype":null,"isMission":false,"UISortOrder":2,"missionIconID":7}`,
		string(out))
}

func TestMissionRecordRoundTrip(t *testing.T) {
	db := testDB(t)

	row, ok := db.Missions.Get(100)
	require.True(t, ok)

	out, err := json.Marshal(row.Record())
	require.NoError(t, err)

	var back MissionRecord
	require.NoError(t, json.Unmarshal(out, &back))

	// Re-read declared fields and compare against direct accessor reads.
	assert.Equal(t, row.ID(), back.ID)
	dt, _ := row.DefinedType()
	require.NotNil(t, back.DefinedType)
	assert.Equal(t, dt.Decode(), *back.DefinedType)
	assert.Equal(t, row.IsMission(), back.IsMission)
	icon, _ := row.MissionIconID()
	require.NotNil(t, back.MissionIconID)
	assert.Equal(t, icon, *back.MissionIconID)
	order, _ := row.UISortOrder()
	require.NotNil(t, back.UISortOrder)
	assert.Equal(t, order, *back.UISortOrder)
}

func TestMissionTaskRecordRoundTrip(t *testing.T) {
	db := testDB(t)

	task, ok := db.MissionTasks.GetByUID(100, 1000)
	require.True(t, ok)

	out, err := json.Marshal(task.Record())
	require.NoError(t, err)

	var back MissionTaskRecord
	require.NoError(t, json.Unmarshal(out, &back))

	assert.Equal(t, task.ID(), back.ID)
	assert.Equal(t, task.UID(), back.UID)
	assert.Equal(t, task.TaskType(), back.TaskType)
	assert.Equal(t, task.Localize(), back.Localize)
	target, _ := task.Target()
	require.NotNil(t, back.Target)
	assert.Equal(t, target, *back.Target)
	assert.Nil(t, back.TargetGroup)
	assert.Nil(t, back.GateVersion)
}

func TestSkillBehaviorRecord(t *testing.T) {
	db := testDB(t)

	skill, ok := db.Skills.Get(300)
	require.True(t, ok)

	rec := skill.Record()
	assert.Equal(t, int32(300), rec.SkillID)
	assert.Equal(t, int32(1000), rec.BehaviorID)
	assert.Equal(t, float32(1.5), rec.Cooldown)
	assert.Equal(t, "", rec.OomSkillID, "empty text is an empty string, not null")
	assert.Equal(t, "1.0", rec.GateVersion)
	assert.Equal(t, int32(0), rec.CancelType)

	out, err := json.Marshal(rec)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"cancelType":0`)
}

func TestBehaviorRecords(t *testing.T) {
	db := testDB(t)

	it := db.BehaviorParameters.KeyRows(1000)
	require.True(t, it.Next())
	rec := it.Row().Record()
	assert.Equal(t, int32(1000), rec.BehaviorID)
	assert.Equal(t, "strength", rec.ParameterID)
	assert.Equal(t, float32(1.5), rec.Value)

	tmpl, ok := db.BehaviorTemplates.Get(1000)
	require.True(t, ok)
	trec := tmpl.Record()
	assert.Nil(t, trec.EffectID)
	require.NotNil(t, trec.EffectHandle)
	assert.Equal(t, "fx_hit", *trec.EffectHandle)
}

func TestMarshalRowUsesPhysicalColumnOrder(t *testing.T) {
	db := testDB(t)

	it := db.Icons.KeyRows(10)
	require.True(t, it.Next())

	out, err := MarshalRow(db.Icons.Raw(), it.Row().row)
	require.NoError(t, err)
	assert.Equal(t,
		`{"IconID":10,"IconName":"anvil","IconPath":"textures/ui/anvil.png"}`,
		string(out))

	it = db.Icons.KeyRows(11)
	require.True(t, it.Next())
	out, err = MarshalRow(db.Icons.Raw(), it.Row().row)
	require.NoError(t, err)
	assert.Equal(t,
		`{"IconID":11,"IconName":"ghost","IconPath":null}`,
		string(out))
}

func TestMarshalTableRows(t *testing.T) {
	db := testDB(t)

	out, err := MarshalTableRows(db.ItemSets.Raw())
	require.NoError(t, err)
	assert.Equal(t, `[{"setID":50,"kitType":2}]`, string(out))

	var back []map[string]interface{}
	require.NoError(t, json.Unmarshal(out, &back))
	require.Len(t, back, 1)
	assert.EqualValues(t, 50, back[0]["setID"])
}
