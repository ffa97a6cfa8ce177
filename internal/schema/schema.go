// Package schema declares the well-known tables and columns of the client
// database. The declarations mirror the 1.10.64 client schema; column order
// here is the declaration order used for serialization, not the physical
// column order of any particular file (that is resolved by name at load
// time).
package schema

// Column is one well-known column of a table kind.
type Column struct {
	// Name is the stored column name, also used as the serialized field
	// name.
	Name string

	// Required columns must exist in the file or construction of the typed
	// table fails. Optional columns resolve to "absent" and every accessor
	// built on them handles absence.
	Required bool
}

// Table is the declaration of one table kind: the lookup name used to locate
// the table in a store, and its well-known columns.
type Table struct {
	Name    string
	Columns []Column
}

// Index returns the declaration index of the named column, or -1.
func (t Table) Index(name string) int {
	for i, c := range t.Columns {
		if c.Name == name {
			return i
		}
	}
	return -1
}

func req(name string) Column { return Column{Name: name, Required: true} }
func opt(name string) Column { return Column{Name: name} }

var BehaviorParameter = Table{
	Name: "BehaviorParameter",
	Columns: []Column{
		req("behaviorID"),
		req("parameterID"),
		req("value"),
	},
}

var BehaviorTemplate = Table{
	Name: "BehaviorTemplate",
	Columns: []Column{
		req("behaviorID"),
		req("templateID"),
		opt("effectID"),
		opt("effectHandle"),
	},
}

var ComponentsRegistry = Table{
	Name: "ComponentsRegistry",
	Columns: []Column{
		req("id"),
		req("component_type"),
		req("component_id"),
	},
}

var DestructibleComponent = Table{
	Name: "DestructibleComponent",
	Columns: []Column{
		req("id"),
	},
}

var Icons = Table{
	Name: "Icons",
	Columns: []Column{
		req("IconID"),
		opt("IconPath"),
	},
}

var ItemSets = Table{
	Name: "ItemSets",
	Columns: []Column{
		req("setID"),
	},
}

var ItemSetSkills = Table{
	Name: "ItemSetSkills",
	Columns: []Column{
		req("SkillSetID"),
		req("SkillID"),
	},
}

var LootTable = Table{
	Name: "LootTable",
	Columns: []Column{
		req("id"),
	},
}

var Missions = Table{
	Name: "Missions",
	Columns: []Column{
		req("id"),
		opt("defined_type"),
		opt("defined_subtype"),
		req("isMission"),
		opt("UISortOrder"),
		opt("missionIconID"),
	},
}

var MissionTasks = Table{
	Name: "MissionTasks",
	Columns: []Column{
		req("id"),
		req("locStatus"),
		req("taskType"),
		opt("target"),
		opt("targetGroup"),
		opt("targetValue"),
		opt("taskParam1"),
		opt("largeTaskIcon"),
		opt("IconID"),
		req("uid"),
		opt("largeTaskIconID"),
		req("localize"),
		opt("gate_version"),
	},
}

var Objects = Table{
	Name: "Objects",
	Columns: []Column{
		req("id"),
		opt("name"),
		opt("description"),
		opt("displayName"),
		opt("internalNotes"),
	},
}

var ObjectSkills = Table{
	Name: "ObjectSkills",
	Columns: []Column{
		req("objectTemplate"),
		req("skillID"),
	},
}

var RebuildComponent = Table{
	Name: "RebuildComponent",
	Columns: []Column{
		req("id"),
	},
}

var RenderComponent = Table{
	Name: "RenderComponent",
	Columns: []Column{
		req("id"),
		opt("render_asset"),
		opt("icon_asset"),
	},
}

var SkillBehavior = Table{
	Name: "SkillBehavior",
	Columns: []Column{
		req("skillID"),
		req("locStatus"),
		req("behaviorID"),
		req("imaginationcost"),
		req("cooldowngroup"),
		req("cooldown"),
		req("inNpcEditor"),
		req("skillIcon"),
		req("oomSkillID"),
		req("oomBehaviorEffectID"),
		req("castTypeDesc"),
		req("imBonusUI"),
		req("lifeBonusUI"),
		req("armorBonusUI"),
		req("damageUI"),
		req("hideIcon"),
		req("localize"),
		req("gate_version"),
		req("cancelType"),
	},
}

// All lists every table kind the typed database binds, in lookup order.
var All = []Table{
	BehaviorParameter,
	BehaviorTemplate,
	ComponentsRegistry,
	DestructibleComponent,
	Icons,
	ItemSets,
	ItemSetSkills,
	LootTable,
	Missions,
	MissionTasks,
	Objects,
	ObjectSkills,
	RebuildComponent,
	RenderComponent,
	SkillBehavior,
}
