package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Metric holds the schema definition for one automated metric value
// belonging to a conversation. Unique per (conversation_id, name).
type Metric struct {
	ent.Schema
}

// Fields of the Metric.
func (Metric) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("metric_id").
			Unique().
			Immutable(),
		field.String("conversation_id").
			Immutable(),
		field.String("eval_run_id").
			Immutable().
			Comment("Denormalized for run-level aggregation queries"),
		field.String("name"),
		field.Float("value"),
		field.String("unit").
			Default(""),
		field.JSON("metadata", map[string]interface{}{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Metric.
func (Metric) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("conversation", Conversation.Type).
			Ref("metrics").
			Field("conversation_id").
			Unique().
			Required().
			Immutable(),
		edge.From("eval_run", EvalRun.Type).
			Ref("metrics").
			Field("eval_run_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Metric.
func (Metric) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("conversation_id", "name").
			Unique(),
		index.Fields("eval_run_id", "name"),
	}
}
