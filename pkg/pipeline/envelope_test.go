package pipeline

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentprobe/agentprobe/pkg/stats"
)

func TestEnvelopeRoundTrip(t *testing.T) {
	env := &Envelope{
		Version:   EnvelopeVersion,
		EventType: TopicConversationCompleted,
		Payload:   map[string]interface{}{"event_id": "abc", "status": "completed"},
	}

	data, err := env.Serialize()
	require.NoError(t, err)

	decoded, err := DeserializeEnvelope(data)
	require.NoError(t, err)
	assert.Equal(t, EnvelopeVersion, decoded.Version)
	assert.Equal(t, TopicConversationCompleted, decoded.EventType)
	assert.Equal(t, "abc", decoded.EventID())
	assert.Equal(t, "completed", decoded.StringField("status"))
}

func TestEnvelopeWireShape(t *testing.T) {
	env := NewConversationCompletedEvent("run-1", "conv-1", 3, 450, 1200, "completed")

	data, err := env.Serialize()
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Len(t, raw, 3)
	assert.Contains(t, raw, "version")
	assert.Contains(t, raw, "event_type")
	assert.Contains(t, raw, "payload")
}

func TestDeserializeEnvelopeRejectsMalformed(t *testing.T) {
	_, err := DeserializeEnvelope([]byte("{not json"))
	assert.Error(t, err)

	_, err = DeserializeEnvelope([]byte(`{"version":1,"payload":{}}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "event_type")
}

func TestNewConversationCompletedEvent(t *testing.T) {
	env := NewConversationCompletedEvent("run-1", "conv-1", 3, 450, 1200, "completed")

	assert.Equal(t, EnvelopeVersion, env.Version)
	assert.Equal(t, "agent.conversation.completed", env.EventType)
	assert.Equal(t, "agent.conversation.completed", env.Payload["event_type"])
	assert.Equal(t, "run-1", env.Payload["eval_run_id"])
	assert.Equal(t, "conv-1", env.Payload["conversation_id"])
	assert.Equal(t, 3, env.Payload["turn_count"])
	assert.Equal(t, 450, env.Payload["total_tokens"])
	assert.Equal(t, 1200, env.Payload["total_latency_ms"])
	assert.Equal(t, "completed", env.Payload["status"])

	id, err := uuid.Parse(env.EventID())
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), id.Version())

	ts, ok := env.Payload["timestamp"].(string)
	require.True(t, ok)
	parsed, err := time.Parse(time.RFC3339Nano, ts)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().UTC(), parsed, time.Minute)
}

func TestNewEvaluationScoreCompletedEvent(t *testing.T) {
	scores := map[string]float64{"helpfulness": 8.0, "accuracy": 7.0}
	env := NewEvaluationScoreCompletedEvent("run-1", "conv-1", "eval-1", "model_judge", 7.5, scores)

	assert.Equal(t, "evaluation.score.completed", env.EventType)
	assert.Equal(t, "run-1", env.Payload["eval_run_id"])
	assert.Equal(t, "conv-1", env.Payload["conversation_id"])
	assert.Equal(t, "eval-1", env.Payload["evaluation_id"])
	assert.Equal(t, "model_judge", env.Payload["evaluator_type"])
	assert.Equal(t, 7.5, env.Payload["overall_score"])
	assert.Equal(t, scores, env.Payload["dimension_scores"])
	assert.NotEmpty(t, env.EventID())
}

func TestNewMetricsAggregatedEvent(t *testing.T) {
	agg := stats.AggregateMetricValues("avg_latency_ms", []float64{100, 200, 300})
	env := NewMetricsAggregatedEvent("run-1", agg)

	assert.Equal(t, "metrics.aggregated", env.EventType)
	assert.Equal(t, "run-1", env.Payload["eval_run_id"])
	assert.Equal(t, "avg_latency_ms", env.Payload["metric_name"])
	assert.Equal(t, 200.0, env.Payload["mean"])
	assert.Equal(t, 200.0, env.Payload["median"])
	assert.Equal(t, 100.0, env.Payload["min_val"])
	assert.Equal(t, 300.0, env.Payload["max_val"])
	assert.Equal(t, 3, env.Payload["sample_count"])
}

func TestNewDeadLetterEvent(t *testing.T) {
	env := NewDeadLetterEvent("agent.conversation.completed", "Max retries exhausted", `{"version":1}`)

	assert.Equal(t, "pipeline.dead_letter", env.EventType)
	assert.Equal(t, "agent.conversation.completed", env.Payload["original_topic"])
	assert.Equal(t, "Max retries exhausted", env.Payload["error"])
	assert.Equal(t, `{"version":1}`, env.Payload["original_value"])
	assert.Empty(t, env.EventID())
}

func TestGroupsForTopic(t *testing.T) {
	assert.Equal(t, []string{GroupEvaluationEngine}, GroupsForTopic(TopicConversationCompleted))
	assert.Equal(t, []string{GroupMetricsAggregator}, GroupsForTopic(TopicEvaluationScoreCompleted))
	assert.Equal(t, []string{GroupRunFinalizer}, GroupsForTopic(TopicMetricsAggregated))
	assert.Equal(t, []string{GroupDeadLetterArchive}, GroupsForTopic(TopicPipelineErrors))
	assert.Empty(t, GroupsForTopic("unknown.topic"))
}
