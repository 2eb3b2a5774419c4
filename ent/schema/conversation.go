package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Conversation holds the schema definition for a single simulated
// conversation. The full turn sequence is stored as ordered JSON; turns are
// immutable once the conversation reaches a terminal status.
type Conversation struct {
	ent.Schema
}

// Fields of the Conversation.
func (Conversation) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("conversation_id").
			Unique().
			Immutable(),
		field.String("eval_run_id").
			Immutable(),
		field.Int("sequence").
			Comment("Position within the run: 0, 1, 2..."),
		field.Enum("status").
			Values("pending", "running", "completed", "failed", "goal_achieved", "frustrated").
			Default("pending"),
		field.JSON("turns", []map[string]interface{}{}).
			Optional().
			Comment("Ordered turn records: role, content, tool_calls, tool_results, latency_ms, tokens"),
		field.Int("turn_count").
			Default(0),
		field.Int("total_tokens").
			Default(0),
		field.Int("total_input_tokens").
			Default(0),
		field.Int("total_output_tokens").
			Default(0),
		field.Int("total_latency_ms").
			Default(0),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the Conversation.
func (Conversation) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("eval_run", EvalRun.Type).
			Ref("conversations").
			Field("eval_run_id").
			Unique().
			Required().
			Immutable(),
		edge.To("evaluations", Evaluation.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("metrics", Metric.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Conversation.
func (Conversation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("eval_run_id", "sequence").
			Unique(),
		index.Fields("eval_run_id", "status"),
	}
}
