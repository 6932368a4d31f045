package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/scoutqa/scout/pkg/models"
)

// TeamState holds the schema definition for the TeamState entity: one shared
// JSON document per team, last-write-wins upsert keyed by team id.
type TeamState struct {
	ent.Schema
}

// Fields of the TeamState.
func (TeamState) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("team_id").
			Unique().
			Immutable(),
		field.JSON("state", &models.TeamState{}).
			Comment("Full team document: projects, tests, runs, groups, accounts, jobs, drafts"),
		field.String("updated_by").
			Optional().
			Comment("Writer identity from proxy headers"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the TeamState.
func (TeamState) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("updated_at"),
	}
}
