package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Evaluation holds the schema definition for one evaluator's verdict on one
// conversation: per-dimension scores, the weighted overall score, and the
// evaluator's reasoning.
type Evaluation struct {
	ent.Schema
}

// Fields of the Evaluation.
func (Evaluation) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("evaluation_id").
			Unique().
			Immutable(),
		field.String("conversation_id").
			Immutable(),
		field.String("eval_run_id").
			Immutable().
			Comment("Denormalized for run-level aggregation queries"),
		field.Enum("evaluator_type").
			Values("model_judge", "rubric_grader", "human", "reference_based", "trajectory", "pairwise_judge"),
		field.JSON("scores", map[string]float64{}).
			Comment("dimension name -> score in [0,10]"),
		field.Float("overall_score"),
		field.Text("reasoning").
			Optional(),
		field.JSON("turn_scores", []map[string]interface{}{}).
			Optional(),
		field.JSON("metadata", map[string]interface{}{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Evaluation.
func (Evaluation) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("conversation", Conversation.Type).
			Ref("evaluations").
			Field("conversation_id").
			Unique().
			Required().
			Immutable(),
		edge.From("eval_run", EvalRun.Type).
			Ref("evaluations").
			Field("eval_run_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Evaluation.
func (Evaluation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("conversation_id"),
		index.Fields("eval_run_id", "evaluator_type"),
		index.Fields("evaluator_type", "created_at"),
	}
}
