package typed

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Xiphoseer/paradox-typed-db/pkg/fdb"
)

// fixtureTable declares one table of the shared test store.
type fixtureTable struct {
	name    string
	buckets int
	cols    []fdb.Column
	rows    [][]fdb.Value
}

func ic(name string) fdb.Column { return fdb.Column{Name: name, Type: fdb.TypeInteger} }
func tc(name string) fdb.Column { return fdb.Column{Name: name, Type: fdb.TypeText} }
func fc(name string) fdb.Column { return fdb.Column{Name: name, Type: fdb.TypeFloat} }
func bc(name string) fdb.Column { return fdb.Column{Name: name, Type: fdb.TypeBoolean} }

func i(v int32) fdb.Value   { return fdb.Int(v) }
func f(v float32) fdb.Value { return fdb.Float(v) }
func s(v string) fdb.Value  { return fdb.TextString(v) }
func b(v bool) fdb.Value    { return fdb.Bool(v) }
func null() fdb.Value       { return fdb.Null() }

// fixtureTables covers every table kind the database binds. Some physical
// layouts deliberately differ from the declared schema (extra columns in
// Icons, reordered columns in Missions) to exercise by-name resolution. The
// Objects layout keeps id/name/description/displayName/internalNotes at
// physical positions 0/1/4/7/10, which the name/description query depends
// on.
func fixtureTables() []fixtureTable {
	return []fixtureTable{
		{
			name: "BehaviorParameter", buckets: 7,
			cols: []fdb.Column{ic("behaviorID"), tc("parameterID"), fc("value")},
			rows: [][]fdb.Value{
				{i(1000), s("strength"), f(1.5)},
				{i(1000), s("radius"), f(2)},
				{i(1001), s("duration"), f(3.25)},
			},
		},
		{
			name: "BehaviorTemplate", buckets: 7,
			cols: []fdb.Column{ic("behaviorID"), ic("templateID"), ic("effectID"), tc("effectHandle")},
			rows: [][]fdb.Value{
				{i(1000), i(1), null(), s("fx_hit")},
				{i(1001), i(2), i(55), null()},
			},
		},
		{
			name: "ComponentsRegistry", buckets: 8,
			cols: []fdb.Column{ic("id"), ic("component_type"), ic("component_id")},
			rows: [][]fdb.Value{
				{i(42), i(2), i(601)},
				{i(42), i(5), i(9)},
				{i(42), i(2), i(602)},
				{i(43), i(5), i(10)},
			},
		},
		{
			name: "DestructibleComponent", buckets: 4,
			cols: []fdb.Column{ic("id"), ic("faction"), ic("imagination")},
			rows: [][]fdb.Value{{i(900), i(4), i(10)}},
		},
		{
			name: "Icons", buckets: 7,
			cols: []fdb.Column{ic("IconID"), tc("IconName"), tc("IconPath")},
			rows: [][]fdb.Value{
				{i(10), s("anvil"), s("textures/ui/anvil.png")},
				{i(11), s("ghost"), null()},
			},
		},
		{
			name: "ItemSets", buckets: 4,
			cols: []fdb.Column{ic("setID"), ic("kitType")},
			rows: [][]fdb.Value{{i(50), i(2)}},
		},
		{
			name: "ItemSetSkills", buckets: 4,
			cols: []fdb.Column{ic("SkillSetID"), ic("SkillID"), ic("SkillCastType")},
			rows: [][]fdb.Value{{i(50), i(300), i(0)}},
		},
		{
			name: "LootTable", buckets: 4,
			cols: []fdb.Column{ic("id"), ic("itemid"), ic("LootTableIndex")},
			rows: [][]fdb.Value{{i(700), i(2000), i(3)}},
		},
		{
			name: "Missions", buckets: 16,
			cols: []fdb.Column{
				ic("id"), ic("missionIconID"), tc("defined_type"),
				tc("defined_subtype"), bc("isMission"), ic("UISortOrder"),
			},
			rows: [][]fdb.Value{
				{i(100), i(12), s("Mission"), s("Story"), b(true), i(1)},
				{i(101), null(), s("Achievement"), null(), null(), null()},
				{i(102), i(7), s("Achievement"), null(), b(false), i(2)},
				{i(-7), null(), s("Mission"), null(), b(true), null()},
			},
		},
		{
			name: "MissionTasks", buckets: 16,
			cols: []fdb.Column{
				ic("id"), ic("locStatus"), ic("taskType"), ic("target"),
				tc("targetGroup"), ic("targetValue"), tc("taskParam1"),
				tc("largeTaskIcon"), ic("IconID"), ic("uid"),
				ic("largeTaskIconID"), bc("localize"), tc("gate_version"),
			},
			rows: [][]fdb.Value{
				{i(100), i(2), i(1), i(4001), null(), i(3), null(), null(), i(5), i(1000), null(), b(true), null()},
				{i(100), i(2), i(2), null(), s("grp"), null(), null(), null(), null(), i(1001), null(), b(true), null()},
				{i(100), i(2), i(1), i(4002), null(), i(1), null(), null(), i(7), i(1002), null(), b(false), null()},
				// Mission 116 shares bucket 4 with mission 100 (116 % 16 ==
				// 100 % 16); its task must not leak into mission 100 results.
				{i(116), i(2), i(1), null(), null(), null(), null(), null(), i(9), i(1160), null(), b(true), null()},
			},
		},
		{
			name: "Objects", buckets: 16,
			cols: []fdb.Column{
				ic("id"), tc("name"), bc("placeable"), tc("type"),
				tc("description"), bc("localize"), ic("npcTemplateID"),
				tc("displayName"), fc("interactionDistance"), bc("nametag"),
				tc("internalNotes"), ic("locStatus"), tc("gate_version"),
			},
			rows: [][]fdb.Value{
				{i(5), s("Widget"), b(true), s("Loot"), s("A box."), b(true), null(), s("Widget"), f(0), b(false), s("A box."), i(2), null()},
				{i(6), s(""), b(true), s("Loot"), s(""), b(true), null(), s("Big Widget"), f(0), b(false), s("debug only"), i(2), null()},
				{i(7), s("Widget"), b(true), s("Loot"), s("Crate"), b(true), null(), s("Big Widget"), f(0), b(false), s("dev note"), i(2), null()},
				{i(9), null(), b(false), s("Loot"), null(), b(true), null(), null(), f(0), b(false), null(), i(2), null()},
			},
		},
		{
			name: "ObjectSkills", buckets: 4,
			cols: []fdb.Column{ic("objectTemplate"), ic("skillID")},
			rows: [][]fdb.Value{{i(5), i(300)}},
		},
		{
			name: "RebuildComponent", buckets: 4,
			cols: []fdb.Column{ic("id"), fc("reset_time")},
			rows: [][]fdb.Value{{i(880), f(20)}},
		},
		{
			name: "RenderComponent", buckets: 8,
			cols: []fdb.Column{ic("id"), tc("render_asset"), tc("icon_asset")},
			rows: [][]fdb.Value{
				{i(20), s("mesh.nif"), s("textures/brick.png")},
				{i(21), s("mesh2.nif"), null()},
				{i(22), null(), null()},
				{i(23), s("mesh3.nif"), i(5)},
				{i(28), s("mesh4.nif"), null()},
				{i(28), s("mesh4_lod.nif"), s("textures/brick_lod.png")},
			},
		},
		{
			name: "SkillBehavior", buckets: 8,
			cols: []fdb.Column{
				ic("skillID"), ic("locStatus"), ic("behaviorID"),
				ic("imaginationcost"), ic("cooldowngroup"), fc("cooldown"),
				bc("inNpcEditor"), ic("skillIcon"), tc("oomSkillID"),
				ic("oomBehaviorEffectID"), ic("castTypeDesc"), ic("imBonusUI"),
				ic("lifeBonusUI"), ic("armorBonusUI"), ic("damageUI"),
				bc("hideIcon"), bc("localize"), tc("gate_version"), ic("cancelType"),
			},
			rows: [][]fdb.Value{
				{i(300), i(2), i(1000), i(10), i(1), f(1.5), b(false), i(87), s(""), i(0), i(1), i(0), i(0), i(0), i(0), b(false), b(true), s("1.0"), i(0)},
			},
		},
	}
}

func withoutTable(tables []fixtureTable, name string) []fixtureTable {
	out := make([]fixtureTable, 0, len(tables))
	for _, ft := range tables {
		if ft.name != name {
			out = append(out, ft)
		}
	}
	return out
}

func replaceTable(tables []fixtureTable, repl fixtureTable) []fixtureTable {
	out := make([]fixtureTable, 0, len(tables))
	for _, ft := range tables {
		if ft.name == repl.name {
			out = append(out, repl)
		} else {
			out = append(out, ft)
		}
	}
	return out
}

func storeWith(t *testing.T, tables []fixtureTable) *fdb.Store {
	t.Helper()
	builder := fdb.NewBuilder()
	for _, ft := range tables {
		tb := builder.Table(ft.name, ft.buckets, ft.cols...)
		for _, row := range ft.rows {
			tb.Row(row...)
		}
	}
	store, err := builder.Build()
	require.NoError(t, err)
	return store
}

func testDB(t *testing.T) *Database {
	t.Helper()
	db, err := New(storeWith(t, fixtureTables()))
	require.NoError(t, err)
	return db
}
