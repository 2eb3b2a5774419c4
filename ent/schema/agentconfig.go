package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// AgentConfig holds the schema definition for a tested-agent configuration.
// Captures everything the orchestrator needs to drive the agent side of a
// simulated conversation: model, system prompt, sampling knobs, tool schemas.
type AgentConfig struct {
	ent.Schema
}

// Fields of the AgentConfig.
func (AgentConfig) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("agent_config_id").
			Unique().
			Immutable(),
		field.String("name").
			Unique().
			Comment("Human-readable identifier, unique across configs"),
		field.String("description").
			Optional(),
		field.String("model_id").
			Comment("Provider model identifier (e.g., 'claude-sonnet-4-5')"),
		field.Text("system_prompt"),
		field.Float("temperature").
			Default(0.7).
			Comment("Sampling temperature, 0..2"),
		field.Int("max_tokens").
			Default(1024),
		field.JSON("tools", []map[string]interface{}{}).
			Optional().
			Comment("Tool schemas exposed to the agent (JSON Schema parameters)"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the AgentConfig.
func (AgentConfig) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("eval_runs", EvalRun.Type).
			Annotations(entsql.OnDelete(entsql.Restrict)),
	}
}
