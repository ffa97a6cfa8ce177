package typed

import (
	"github.com/Xiphoseer/paradox-typed-db/internal/schema"
	"github.com/Xiphoseer/paradox-typed-db/pkg/fdb"
)

// Database is the typed view of an opened store: one typed table per table
// kind of interest, constructed once and safe to share between concurrent
// readers. Rows and iterators handed out by the database borrow from the
// store and must not outlive it.
type Database struct {
	BehaviorParameters    *BehaviorParameterTable
	BehaviorTemplates     *BehaviorTemplateTable
	CompReg               *ComponentsRegistryTable
	DestructibleComponent *DestructibleComponentTable
	Icons                 *IconsTable
	ItemSets              *ItemSetsTable
	ItemSetSkills         *ItemSetSkillsTable
	LootTable             *LootTableTable
	Missions              *MissionsTable
	MissionTasks          *MissionTasksTable
	Objects               *ObjectsTable
	ObjectSkills          *ObjectSkillsTable
	RebuildComponent      *RebuildComponentTable
	RenderComp            *RenderComponentTable
	Skills                *SkillBehaviorTable

	store *fdb.Store
}

// New constructs the typed database from an opened store. It fails with a
// *SchemaError on the first missing required table or column; on failure no
// partially usable database is returned.
func New(store *fdb.Store) (*Database, error) {
	db := &Database{store: store}

	raw := func(decl schema.Table) (*fdb.Table, error) {
		t, ok := store.TableByName(decl.Name)
		if !ok {
			return nil, &SchemaError{Code: CodeTableMissing, Table: decl.Name}
		}
		return t, nil
	}

	var err error
	var t *fdb.Table

	if t, err = raw(schema.BehaviorParameter); err != nil {
		return nil, err
	}
	if db.BehaviorParameters, err = newBehaviorParameterTable(t); err != nil {
		return nil, err
	}
	if t, err = raw(schema.BehaviorTemplate); err != nil {
		return nil, err
	}
	if db.BehaviorTemplates, err = newBehaviorTemplateTable(t); err != nil {
		return nil, err
	}
	if t, err = raw(schema.ComponentsRegistry); err != nil {
		return nil, err
	}
	if db.CompReg, err = newComponentsRegistryTable(t); err != nil {
		return nil, err
	}
	if t, err = raw(schema.DestructibleComponent); err != nil {
		return nil, err
	}
	if db.DestructibleComponent, err = newDestructibleComponentTable(t); err != nil {
		return nil, err
	}
	if t, err = raw(schema.Icons); err != nil {
		return nil, err
	}
	if db.Icons, err = newIconsTable(t); err != nil {
		return nil, err
	}
	if t, err = raw(schema.ItemSets); err != nil {
		return nil, err
	}
	if db.ItemSets, err = newItemSetsTable(t); err != nil {
		return nil, err
	}
	if t, err = raw(schema.ItemSetSkills); err != nil {
		return nil, err
	}
	if db.ItemSetSkills, err = newItemSetSkillsTable(t); err != nil {
		return nil, err
	}
	if t, err = raw(schema.LootTable); err != nil {
		return nil, err
	}
	if db.LootTable, err = newLootTableTable(t); err != nil {
		return nil, err
	}
	if t, err = raw(schema.Missions); err != nil {
		return nil, err
	}
	if db.Missions, err = newMissionsTable(t); err != nil {
		return nil, err
	}
	if t, err = raw(schema.MissionTasks); err != nil {
		return nil, err
	}
	if db.MissionTasks, err = newMissionTasksTable(t); err != nil {
		return nil, err
	}
	if t, err = raw(schema.Objects); err != nil {
		return nil, err
	}
	if db.Objects, err = newObjectsTable(t); err != nil {
		return nil, err
	}
	if t, err = raw(schema.ObjectSkills); err != nil {
		return nil, err
	}
	if db.ObjectSkills, err = newObjectSkillsTable(t); err != nil {
		return nil, err
	}
	if t, err = raw(schema.RebuildComponent); err != nil {
		return nil, err
	}
	if db.RebuildComponent, err = newRebuildComponentTable(t); err != nil {
		return nil, err
	}
	if t, err = raw(schema.RenderComponent); err != nil {
		return nil, err
	}
	if db.RenderComp, err = newRenderComponentTable(t); err != nil {
		return nil, err
	}
	if t, err = raw(schema.SkillBehavior); err != nil {
		return nil, err
	}
	if db.Skills, err = newSkillBehaviorTable(t); err != nil {
		return nil, err
	}

	return db, nil
}

// Store returns the underlying raw store.
func (db *Database) Store() *fdb.Store { return db.store }
