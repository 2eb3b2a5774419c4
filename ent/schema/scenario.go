package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Scenario holds the schema definition for a test scenario: the simulated
// user's goal and personality plus optional scripted turns and the expected
// tool sequence used by the trajectory evaluator.
type Scenario struct {
	ent.Schema
}

// Fields of the Scenario.
func (Scenario) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("scenario_id").
			Unique().
			Immutable(),
		field.String("name").
			Unique(),
		field.String("description").
			Optional(),
		field.Text("goal").
			Comment("What the simulated user is trying to accomplish"),
		field.String("user_personality").
			Default("neutral and cooperative"),
		field.Enum("expertise_level").
			Values("novice", "intermediate", "expert").
			Default("intermediate"),
		field.Text("initial_message").
			Optional().
			Nillable().
			Comment("Verbatim first user message; skips the simulator LLM on turn 0"),
		field.JSON("turns_template", []map[string]interface{}{}).
			Optional().
			Comment("Per-turn hints: {user_message?, expected_response?}"),
		field.JSON("expected_tool_sequence", []string{}).
			Optional().
			Comment("Tool names in the order the agent is expected to call them"),
		field.Enum("difficulty").
			Values("easy", "medium", "hard").
			Default("medium"),
		field.JSON("tags", []string{}).
			Optional(),
		field.Int("max_turns").
			Default(10).
			Comment("Default user-turn budget; the run environment may override"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Scenario.
func (Scenario) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("eval_runs", EvalRun.Type).
			Annotations(entsql.OnDelete(entsql.Restrict)),
	}
}

// Indexes of the Scenario.
func (Scenario) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("difficulty"),
	}
}
