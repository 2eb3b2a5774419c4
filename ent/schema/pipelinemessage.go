package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PipelineMessage holds the schema definition for one queued pipeline
// delivery: a serialized event envelope addressed to one consumer group.
// The producer inserts one row per (envelope, group); consumers claim rows
// with FOR UPDATE SKIP LOCKED in id order, which preserves per-key
// publication order because each group runs a single worker.
//
// Uses the implicit auto-increment integer id so claim order follows
// insertion order.
type PipelineMessage struct {
	ent.Schema
}

// Fields of the PipelineMessage.
func (PipelineMessage) Fields() []ent.Field {
	return []ent.Field{
		field.String("topic").
			Immutable(),
		field.String("consumer_group").
			Immutable(),
		field.String("key").
			Optional().
			Immutable().
			Comment("Partition key: conversation_id or eval_run_id"),
		field.Text("value").
			Immutable().
			Comment("Serialized event envelope (UTF-8 JSON)"),
		field.Enum("status").
			Values("pending", "processing", "done", "failed").
			Default("pending"),
		field.Int("attempts").
			Default(0),
		field.String("last_error").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the PipelineMessage.
func (PipelineMessage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("topic", "consumer_group", "status"),
		index.Fields("status", "updated_at"),
	}
}
