package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// EvalRun holds the schema definition for an evaluation run: N simulated
// conversations of one agent config against one scenario, plus the pipeline
// stages that score and aggregate them.
type EvalRun struct {
	ent.Schema
}

// Fields of the EvalRun.
func (EvalRun) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("eval_run_id").
			Unique().
			Immutable(),
		field.String("name").
			Optional(),
		field.String("agent_config_id").
			Immutable(),
		field.String("scenario_id").
			Immutable(),
		field.String("rubric_id").
			Optional().
			Nillable().
			Comment("Nil selects the built-in default rubric"),
		field.Int("num_conversations").
			Default(1).
			Comment("How many independent conversations to simulate"),
		field.Enum("status").
			Values("pending", "running_simulation", "running_evaluation", "completed", "failed", "cancelled").
			Default("pending"),
		field.String("error_message").
			Optional().
			Nillable(),
		field.JSON("environment", map[string]interface{}{}).
			Optional().
			Comment("SimulationEnvironment overrides: max_turns, max_total_tokens, timeout_seconds, tool_failure_rate, tool_latency_ms, adversarial_turns"),
		field.String("pod_id").
			Optional().
			Nillable().
			Comment("For multi-replica coordination"),
		field.Time("last_heartbeat_at").
			Optional().
			Nillable().
			Comment("For orphan detection"),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the EvalRun.
func (EvalRun) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("agent_config", AgentConfig.Type).
			Ref("eval_runs").
			Field("agent_config_id").
			Unique().
			Required().
			Immutable(),
		edge.From("scenario", Scenario.Type).
			Ref("eval_runs").
			Field("scenario_id").
			Unique().
			Required().
			Immutable(),
		edge.To("conversations", Conversation.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("evaluations", Evaluation.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("metrics", Metric.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the EvalRun.
func (EvalRun) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("status", "created_at"),
		index.Fields("status", "last_heartbeat_at"),
		index.Fields("agent_config_id"),
	}
}
