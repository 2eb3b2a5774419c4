package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentprobe/agentprobe/pkg/sim"
)

func metricByName(t *testing.T, metrics []MetricValue, name string) MetricValue {
	t.Helper()
	for _, m := range metrics {
		if m.Name == name {
			return m
		}
	}
	t.Fatalf("metric %q not found", name)
	return MetricValue{}
}

func TestComputeMetrics(t *testing.T) {
	result := &sim.ConversationResult{
		Turns: []sim.Turn{
			{Role: sim.RoleUser, Content: "What's the weather?"},
			{
				Role:      sim.RoleAssistant,
				Content:   "Checking.",
				LatencyMS: 100,
				ToolCalls: []sim.ToolCall{{ID: "call_1", Name: "get_weather"}},
				ToolResults: []sim.ToolResult{
					{ToolCallID: "call_1", Content: "72F"},
				},
			},
			{Role: sim.RoleAssistant, Content: "Sunny, 72F.", LatencyMS: 300},
		},
		TurnCount:         1,
		TotalTokens:       450,
		TotalInputTokens:  300,
		TotalOutputTokens: 150,
		Status:            sim.StatusCompleted,
	}

	metrics := ComputeMetrics(result, sim.DefaultEnvironment())
	require.Len(t, metrics, 10)

	assert.InDelta(t, 450.0, metricByName(t, metrics, "tokens_per_turn").Value, 0.0001)
	assert.Equal(t, "tokens", metricByName(t, metrics, "tokens_per_turn").Unit)
	assert.InDelta(t, 0.5, metricByName(t, metrics, "output_input_ratio").Value, 0.0001)
	assert.InDelta(t, 200.0, metricByName(t, metrics, "avg_latency_ms").Value, 0.0001)
	// With two samples the p95 index resolves to the first element.
	assert.InDelta(t, 100.0, metricByName(t, metrics, "p95_latency_ms").Value, 0.0001)
	assert.InDelta(t, 1.0, metricByName(t, metrics, "turns_to_resolution").Value, 0.0001)
	assert.InDelta(t, 1.0, metricByName(t, metrics, "conversation_completed").Value, 0.0001)
	assert.InDelta(t, 1.0, metricByName(t, metrics, "tool_call_count").Value, 0.0001)
	assert.InDelta(t, 1.0, metricByName(t, metrics, "tool_success_rate").Value, 0.0001)
}

func TestComputeMetricsEmptyConversation(t *testing.T) {
	result := &sim.ConversationResult{Status: sim.StatusFailed}

	metrics := ComputeMetrics(result, sim.DefaultEnvironment())

	assert.Zero(t, metricByName(t, metrics, "tokens_per_turn").Value)
	assert.Zero(t, metricByName(t, metrics, "output_input_ratio").Value)
	assert.Zero(t, metricByName(t, metrics, "avg_latency_ms").Value)
	assert.Zero(t, metricByName(t, metrics, "p95_latency_ms").Value)
	assert.Zero(t, metricByName(t, metrics, "conversation_completed").Value)
	// No tools called means no failures.
	assert.InDelta(t, 1.0, metricByName(t, metrics, "tool_success_rate").Value, 0.0001)
}

func TestComputeMetricsGoalAchievedCounts(t *testing.T) {
	result := &sim.ConversationResult{Status: sim.StatusGoalAchieved, TurnCount: 3}

	metrics := ComputeMetrics(result, sim.DefaultEnvironment())

	assert.InDelta(t, 1.0, metricByName(t, metrics, "conversation_completed").Value, 0.0001)
	assert.InDelta(t, 1.0, metricByName(t, metrics, "goal_achieved").Value, 0.0001)
	assert.InDelta(t, 3.0, metricByName(t, metrics, "turns_to_resolution").Value, 0.0001)
}

func TestComputeMetricsAdversarialCount(t *testing.T) {
	env := sim.DefaultEnvironment()
	// Turn 5 was scheduled but the conversation ended after three turns.
	env.AdversarialTurns = []int{0, 2, 5}
	result := &sim.ConversationResult{Status: sim.StatusCompleted, TurnCount: 3}

	metrics := ComputeMetrics(result, env)

	assert.InDelta(t, 2.0, metricByName(t, metrics, "adversarial_turn_count").Value, 0.0001)
	// Completed without the goal sentinel.
	assert.Zero(t, metricByName(t, metrics, "goal_achieved").Value)
}

func TestComputeMetricsP95(t *testing.T) {
	result := &sim.ConversationResult{Status: sim.StatusCompleted, TurnCount: 20}
	for i := 1; i <= 20; i++ {
		result.Turns = append(result.Turns, sim.Turn{
			Role:      sim.RoleAssistant,
			LatencyMS: i,
		})
	}

	metrics := ComputeMetrics(result, sim.DefaultEnvironment())

	assert.InDelta(t, 19.0, metricByName(t, metrics, "p95_latency_ms").Value, 0.0001)
}

func TestComputeMetricsToolFailureRate(t *testing.T) {
	result := &sim.ConversationResult{
		Status:    sim.StatusCompleted,
		TurnCount: 1,
		Turns: []sim.Turn{{
			Role: sim.RoleAssistant,
			ToolCalls: []sim.ToolCall{
				{ID: "c1", Name: "search"},
				{ID: "c2", Name: "search"},
				{ID: "c3", Name: "search"},
			},
			ToolResults: []sim.ToolResult{
				{ToolCallID: "c1", Content: "ok"},
				{ToolCallID: "c2", Content: "fail", IsError: true},
				{ToolCallID: "c3", Content: "fail", IsError: true},
			},
		}},
	}

	metrics := ComputeMetrics(result, sim.DefaultEnvironment())

	assert.InDelta(t, 3.0, metricByName(t, metrics, "tool_call_count").Value, 0.0001)
	assert.InDelta(t, 0.3333, metricByName(t, metrics, "tool_success_rate").Value, 0.0001)
}
