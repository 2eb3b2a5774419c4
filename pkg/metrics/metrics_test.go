package metrics

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPipelineCounters(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.MessageProduced("agent.conversation.completed")
	m.MessageProduced("agent.conversation.completed")
	m.MessageConsumed("agent.conversation.completed", "evaluation-engine", "ok")
	m.MessageRetried("agent.conversation.completed", "evaluation-engine")
	m.MessageDeadLettered("agent.conversation.completed", "evaluation-engine")
	m.MessageDeduplicated("agent.conversation.completed", "evaluation-engine")

	produced := testutil.ToFloat64(m.MessagesProduced.WithLabelValues("agent.conversation.completed"))
	assert.InDelta(t, 2.0, produced, 0.0001)

	expected := `
		# HELP agentprobe_pipeline_messages_consumed_total Total pipeline messages consumed by topic, group, and outcome
		# TYPE agentprobe_pipeline_messages_consumed_total counter
		agentprobe_pipeline_messages_consumed_total{group="evaluation-engine",status="ok",topic="agent.conversation.completed"} 1
	`
	require.NoError(t, testutil.CollectAndCompare(m.MessagesConsumed, strings.NewReader(expected)))

	assert.InDelta(t, 1.0,
		testutil.ToFloat64(m.MessagesRetried.WithLabelValues("agent.conversation.completed", "evaluation-engine")), 0.0001)
	assert.InDelta(t, 1.0,
		testutil.ToFloat64(m.MessagesDeadLettered.WithLabelValues("agent.conversation.completed", "evaluation-engine")), 0.0001)
	assert.InDelta(t, 1.0,
		testutil.ToFloat64(m.MessagesDeduplicated.WithLabelValues("agent.conversation.completed", "evaluation-engine")), 0.0001)
}

func TestOutcomeCounters(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ConversationFinished("goal_achieved")
	m.ConversationFinished("goal_achieved")
	m.ConversationFinished("failed")
	m.EvaluationFinished("model_judge", "ok")
	m.EvaluationFinished("rubric_grader", "error")

	assert.InDelta(t, 2.0, testutil.ToFloat64(m.ConversationsFinished.WithLabelValues("goal_achieved")), 0.0001)
	assert.InDelta(t, 1.0, testutil.ToFloat64(m.ConversationsFinished.WithLabelValues("failed")), 0.0001)
	assert.Equal(t, 2, testutil.CollectAndCount(m.EvaluationsFinished))
}

func TestDefaultIsSingleton(t *testing.T) {
	assert.Same(t, Default(), Default())
}
