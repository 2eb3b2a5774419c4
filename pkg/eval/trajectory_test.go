package eval

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentprobe/agentprobe/pkg/sim"
)

func turnsWithTools(names ...string) []sim.Turn {
	turn := sim.Turn{Role: sim.RoleAssistant}
	for _, name := range names {
		turn.ToolCalls = append(turn.ToolCalls, sim.ToolCall{ID: "call", Name: name})
	}
	return []sim.Turn{{Role: sim.RoleUser, Content: "go"}, turn}
}

func TestTrajectoryExactMatch(t *testing.T) {
	e := NewTrajectoryEvaluator([]string{"search", "get_weather"})

	result, err := e.Evaluate(context.Background(), turnsWithTools("search", "get_weather"), nil)
	require.NoError(t, err)

	assert.Equal(t, TypeTrajectory, result.EvaluatorType)
	assert.InDelta(t, 10.0, result.OverallScore, 0.0001)
	assert.InDelta(t, 1.0, result.Scores["sequence_match_ratio"], 0.0001)
	assert.InDelta(t, 1.0, result.Scores["precision"], 0.0001)
	assert.InDelta(t, 1.0, result.Scores["recall"], 0.0001)
	assert.InDelta(t, 1.0, result.Scores["order_score"], 0.0001)
	assert.Zero(t, result.Scores["unnecessary_actions"])
	assert.Contains(t, result.Reasoning, "Sequence match=1.000")
}

func TestTrajectoryReversedOrder(t *testing.T) {
	e := NewTrajectoryEvaluator([]string{"search", "get_weather"})

	result, err := e.Evaluate(context.Background(), turnsWithTools("get_weather", "search"), nil)
	require.NoError(t, err)

	// Both tools called so precision and recall stay 1.0, but the LCS drops
	// to one element and no pair is concordant.
	assert.InDelta(t, 0.5, result.Scores["sequence_match_ratio"], 0.0001)
	assert.InDelta(t, 1.0, result.Scores["precision"], 0.0001)
	assert.InDelta(t, 1.0, result.Scores["recall"], 0.0001)
	assert.Zero(t, result.Scores["order_score"])
	assert.InDelta(t, 6.25, result.OverallScore, 0.0001)
}

func TestTrajectoryUnnecessaryAction(t *testing.T) {
	e := NewTrajectoryEvaluator([]string{"search", "get_weather"})

	result, err := e.Evaluate(context.Background(), turnsWithTools("search", "send_email", "get_weather"), nil)
	require.NoError(t, err)

	assert.InDelta(t, 1.0, result.Scores["sequence_match_ratio"], 0.0001)
	assert.InDelta(t, 0.6667, result.Scores["precision"], 0.0001)
	assert.InDelta(t, 1.0, result.Scores["unnecessary_actions"], 0.0001)
	assert.InDelta(t, 9.17, result.OverallScore, 0.0001)
	assert.Contains(t, result.Reasoning, "unnecessary=1")
}

func TestTrajectoryNoExpectedSequence(t *testing.T) {
	e := NewTrajectoryEvaluator(nil)

	result, err := e.Evaluate(context.Background(), turnsWithTools("search"), nil)
	require.NoError(t, err)

	assert.Empty(t, result.Scores)
	assert.Zero(t, result.OverallScore)
	assert.Equal(t, "No expected tool sequence defined.", result.Reasoning)
}

func TestTrajectoryNoToolsCalled(t *testing.T) {
	e := NewTrajectoryEvaluator([]string{"search"})

	result, err := e.Evaluate(context.Background(), []sim.Turn{{Role: sim.RoleAssistant, Content: "done"}}, nil)
	require.NoError(t, err)

	assert.Zero(t, result.OverallScore)
	assert.Zero(t, result.Scores["precision"])
	assert.Zero(t, result.Scores["recall"])
}

func TestOrderScore(t *testing.T) {
	// A single shared tool is trivially in order.
	assert.InDelta(t, 1.0, orderScore([]string{"a", "x"}, []string{"a", "b"}), 0.0001)

	// No shared tools at all.
	assert.Zero(t, orderScore([]string{"x"}, []string{"a"}))

	// A tool repeated in the expected sequence ranks at its last position.
	assert.InDelta(t, 1.0, orderScore([]string{"b", "a"}, []string{"a", "b", "a"}), 0.0001)
}
