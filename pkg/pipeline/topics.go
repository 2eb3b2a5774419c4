// Package pipeline implements the PostgreSQL-backed event pipeline that
// connects simulation, evaluation, and metric aggregation.
//
// Events travel as versioned JSON envelopes stored in the pipeline_messages
// table. The producer inserts one row per consumer group registered for the
// topic, then fires a NOTIFY on the shared wake channel so idle consumers
// claim new work immediately instead of waiting out their poll interval.
// Consumers claim rows with FOR UPDATE SKIP LOCKED in insertion order, skip
// envelopes whose event_id was already processed, retry failing handlers
// with exponential backoff, and dead-letter exhausted messages to the
// pipeline.errors topic.
//
// Each consumer group runs a single worker, so all messages sharing a
// partition key are processed in publication order.
package pipeline

// Topic names.
const (
	// TopicConversationCompleted carries one event per finished
	// simulation conversation.
	TopicConversationCompleted = "agent.conversation.completed"

	// TopicEvaluationScoreCompleted carries one event per persisted
	// evaluation score.
	TopicEvaluationScoreCompleted = "evaluation.score.completed"

	// TopicMetricsAggregated carries one event per aggregated metric name
	// once every completed conversation in a run has been evaluated.
	TopicMetricsAggregated = "metrics.aggregated"

	// TopicPipelineErrors is the dead letter topic. Messages that exhaust
	// their retries land here.
	TopicPipelineErrors = "pipeline.errors"
)

// Consumer group names. Each group runs exactly one worker.
const (
	GroupEvaluationEngine  = "evaluation-engine"
	GroupMetricsAggregator = "metrics-aggregator"
	GroupRunFinalizer      = "run-finalizer"

	// GroupDeadLetterArchive receives dead-lettered messages. No worker
	// claims them; the rows stay pending for operator inspection.
	GroupDeadLetterArchive = "dlq-archive"
)

// WakeChannel is the PostgreSQL NOTIFY channel used to wake idle consumers.
// The notification payload is the topic name.
const WakeChannel = "pipeline_wake"

// topicGroups maps each topic to the consumer groups that receive its
// messages. The producer fans out one pipeline_messages row per group.
var topicGroups = map[string][]string{
	TopicConversationCompleted:    {GroupEvaluationEngine},
	TopicEvaluationScoreCompleted: {GroupMetricsAggregator},
	TopicMetricsAggregated:        {GroupRunFinalizer},
	TopicPipelineErrors:           {GroupDeadLetterArchive},
}

// GroupsForTopic returns the consumer groups registered for a topic.
func GroupsForTopic(topic string) []string {
	return topicGroups[topic]
}
