package pipeline

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/agentprobe/agentprobe/pkg/stats"
)

// EnvelopeVersion is the current wire format version.
const EnvelopeVersion = 1

// EventTypeDeadLetter marks envelopes produced to the dead letter topic.
const EventTypeDeadLetter = "pipeline.dead_letter"

// Envelope is the versioned wrapper around every pipeline event. For the
// domain events the event type equals the topic name; dead letters carry
// EventTypeDeadLetter on the pipeline.errors topic.
type Envelope struct {
	Version   int                    `json:"version"`
	EventType string                 `json:"event_type"`
	Payload   map[string]interface{} `json:"payload"`
}

// Serialize encodes the envelope as UTF-8 JSON for the wire.
func (e *Envelope) Serialize() ([]byte, error) {
	data, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize envelope: %w", err)
	}
	return data, nil
}

// EventID returns the payload's event_id, or "" when absent.
func (e *Envelope) EventID() string {
	id, _ := e.Payload["event_id"].(string)
	return id
}

// StringField returns the named payload field as a string, or "" when the
// field is absent or not a string.
func (e *Envelope) StringField(name string) string {
	v, _ := e.Payload[name].(string)
	return v
}

// DeserializeEnvelope decodes an envelope from its wire form. Envelopes
// without an event type are rejected as malformed.
func DeserializeEnvelope(data []byte) (*Envelope, error) {
	var e Envelope
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, fmt.Errorf("failed to deserialize envelope: %w", err)
	}
	if e.EventType == "" {
		return nil, fmt.Errorf("envelope missing event_type")
	}
	return &e, nil
}

// newEventPayload seeds the fields every event carries: a time-ordered
// unique id, the event type, and an ISO-8601 UTC timestamp.
func newEventPayload(eventType string) map[string]interface{} {
	return map[string]interface{}{
		"event_id":   uuid.Must(uuid.NewV7()).String(),
		"event_type": eventType,
		"timestamp":  time.Now().UTC().Format(time.RFC3339Nano),
	}
}

// NewConversationCompletedEvent builds the envelope emitted when a
// simulation conversation reaches a terminal status.
func NewConversationCompletedEvent(evalRunID, conversationID string, turnCount, totalTokens, totalLatencyMS int, status string) *Envelope {
	payload := newEventPayload(TopicConversationCompleted)
	payload["eval_run_id"] = evalRunID
	payload["conversation_id"] = conversationID
	payload["turn_count"] = turnCount
	payload["total_tokens"] = totalTokens
	payload["total_latency_ms"] = totalLatencyMS
	payload["status"] = status
	return &Envelope{Version: EnvelopeVersion, EventType: TopicConversationCompleted, Payload: payload}
}

// NewEvaluationScoreCompletedEvent builds the envelope emitted when one
// evaluator's score for a conversation is persisted.
func NewEvaluationScoreCompletedEvent(evalRunID, conversationID, evaluationID, evaluatorType string, overallScore float64, dimensionScores map[string]float64) *Envelope {
	payload := newEventPayload(TopicEvaluationScoreCompleted)
	payload["eval_run_id"] = evalRunID
	payload["conversation_id"] = conversationID
	payload["evaluation_id"] = evaluationID
	payload["evaluator_type"] = evaluatorType
	payload["overall_score"] = overallScore
	payload["dimension_scores"] = dimensionScores
	return &Envelope{Version: EnvelopeVersion, EventType: TopicEvaluationScoreCompleted, Payload: payload}
}

// NewMetricsAggregatedEvent builds the envelope emitted for one aggregated
// metric once every completed conversation in the run has been evaluated.
func NewMetricsAggregatedEvent(evalRunID string, agg stats.AggregatedMetric) *Envelope {
	payload := newEventPayload(TopicMetricsAggregated)
	payload["eval_run_id"] = evalRunID
	payload["metric_name"] = agg.MetricName
	payload["mean"] = agg.Mean
	payload["median"] = agg.Median
	payload["std_dev"] = agg.StdDev
	payload["min_val"] = agg.Min
	payload["max_val"] = agg.Max
	payload["sample_count"] = agg.SampleCount
	return &Envelope{Version: EnvelopeVersion, EventType: TopicMetricsAggregated, Payload: payload}
}

// NewDeadLetterEvent wraps a message that exhausted its retries.
// originalValue is the raw serialized envelope exactly as claimed.
func NewDeadLetterEvent(originalTopic, errorMessage, originalValue string) *Envelope {
	return &Envelope{
		Version:   EnvelopeVersion,
		EventType: EventTypeDeadLetter,
		Payload: map[string]interface{}{
			"original_topic": originalTopic,
			"error":          errorMessage,
			"original_value": originalValue,
		},
	}
}
