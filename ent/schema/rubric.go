package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Rubric holds the schema definition for an evaluation rubric.
// Rubrics are immutable: an "update" inserts a new row with version+1 and
// parent_id pointing at the previous version.
type Rubric struct {
	ent.Schema
}

// Fields of the Rubric.
func (Rubric) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("rubric_id").
			Unique().
			Immutable(),
		field.String("name").
			Immutable(),
		field.Int("version").
			Default(1).
			Immutable(),
		field.String("parent_id").
			Optional().
			Nillable().
			Immutable().
			Comment("Previous version of this rubric, nil for version 1"),
		field.JSON("dimensions", []map[string]interface{}{}).
			Immutable().
			Comment("Ordered dimensions: {name, description, weight, criteria}"),
		field.Bool("is_default").
			Default(false),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Rubric.
func (Rubric) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("name", "version").
			Unique(),
	}
}
