package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubEvaluator struct {
	calls []string
	err   error
}

func (s *stubEvaluator) EvaluateConversation(_ context.Context, conversationID string) error {
	s.calls = append(s.calls, conversationID)
	return s.err
}

func TestConversationCompletedHandler(t *testing.T) {
	evaluator := &stubEvaluator{}
	handler := ConversationCompletedHandler(evaluator)

	env := NewConversationCompletedEvent("run-1", "conv-1", 2, 100, 50, "completed")
	require.NoError(t, handler(t.Context(), env))
	assert.Equal(t, []string{"conv-1"}, evaluator.calls)
}

func TestConversationCompletedHandlerEvaluatesTerminalStatuses(t *testing.T) {
	evaluator := &stubEvaluator{}
	handler := ConversationCompletedHandler(evaluator)

	// A goal-achieved or frustrated conversation still has a transcript
	// worth scoring; only failures carry nothing to judge.
	for _, status := range []string{"goal_achieved", "frustrated"} {
		env := NewConversationCompletedEvent("run-1", "conv-"+status, 2, 100, 50, status)
		require.NoError(t, handler(t.Context(), env))
	}
	assert.Equal(t, []string{"conv-goal_achieved", "conv-frustrated"}, evaluator.calls)
}

func TestConversationCompletedHandlerSkipsFailed(t *testing.T) {
	evaluator := &stubEvaluator{}
	handler := ConversationCompletedHandler(evaluator)

	for _, status := range []string{"failed", "running", ""} {
		env := NewConversationCompletedEvent("run-1", "conv-1", 2, 100, 50, status)
		require.NoError(t, handler(t.Context(), env))
	}
	assert.Empty(t, evaluator.calls)
}

func TestConversationCompletedHandlerMissingID(t *testing.T) {
	evaluator := &stubEvaluator{}
	handler := ConversationCompletedHandler(evaluator)

	env := NewConversationCompletedEvent("run-1", "", 2, 100, 50, "completed")
	err := handler(t.Context(), env)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "conversation_id")
	assert.Empty(t, evaluator.calls)
}

func TestConversationCompletedHandlerPropagatesError(t *testing.T) {
	evaluator := &stubEvaluator{err: errors.New("llm unavailable")}
	handler := ConversationCompletedHandler(evaluator)

	env := NewConversationCompletedEvent("run-1", "conv-1", 2, 100, 50, "completed")
	assert.Error(t, handler(t.Context(), env))
}

func TestEvaluationScoreHandlerIgnoresMissingRunID(t *testing.T) {
	handler := EvaluationScoreHandler(nil, nil)

	env := &Envelope{
		Version:   EnvelopeVersion,
		EventType: TopicEvaluationScoreCompleted,
		Payload:   map[string]interface{}{"event_id": "x"},
	}
	assert.NoError(t, handler(t.Context(), env))
}

func TestMetricsAggregatedHandlerIgnoresMissingRunID(t *testing.T) {
	handler := MetricsAggregatedHandler(nil)

	env := &Envelope{
		Version:   EnvelopeVersion,
		EventType: TopicMetricsAggregated,
		Payload:   map[string]interface{}{"event_id": "x"},
	}
	assert.NoError(t, handler(t.Context(), env))
}
