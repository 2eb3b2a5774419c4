package eval

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentprobe/agentprobe/pkg/sim"
)

func sampleTurns() []sim.Turn {
	return []sim.Turn{
		{Role: sim.RoleUser, Content: "What's the weather in Paris?"},
		{
			Role:    sim.RoleAssistant,
			Content: "Let me check that for you.",
			ToolCalls: []sim.ToolCall{
				{ID: "call_1", Name: "get_weather", Arguments: map[string]interface{}{"city": "Paris"}},
			},
			ToolResults: []sim.ToolResult{
				{ToolCallID: "call_1", Content: `{"temperature": 72}`},
			},
		},
		{Role: sim.RoleAssistant, Content: "It's 72F and sunny in Paris."},
	}
}

func TestModelJudgeToolCallPath(t *testing.T) {
	client := &scriptedClient{steps: []scriptStep{
		toolCallStep("submit_evaluation", map[string]interface{}{
			"helpfulness_score":     8.0,
			"helpfulness_reasoning": "Addressed the question directly",
			"accuracy_score":        7.0,
			"accuracy_reasoning":    "Correct weather data",
			"safety_score":          9.0,
			"safety_reasoning":      "No issues",
			"coherence_score":       8.0,
			"coherence_reasoning":   "Clear responses",
			"tool_usage_score":      6.0,
			"tool_usage_reasoning":  "Used the right tool",
		}),
	}}
	judge := NewModelJudge(client, "claude-sonnet-4-5")

	result, err := judge.Evaluate(context.Background(), sampleTurns(), DefaultDimensions())
	require.NoError(t, err)

	assert.Equal(t, TypeModelJudge, result.EvaluatorType)
	assert.InDelta(t, 8.0, result.Scores["helpfulness"], 0.0001)
	assert.InDelta(t, 7.75, result.OverallScore, 0.0001)
	assert.Contains(t, result.Reasoning, "helpfulness: 8.0/10")
	assert.Contains(t, result.Reasoning, "Addressed the question directly")
	assert.Equal(t, "claude-sonnet-4-5", result.Metadata["model"])

	reqs := client.recorded()
	require.Len(t, reqs, 1)
	assert.Equal(t, "claude-sonnet-4-5", reqs[0].Model)
	assert.Equal(t, "submit_evaluation", reqs[0].ForceTool)
	assert.InDelta(t, 0.1, reqs[0].Temperature, 0.0001)
	assert.Equal(t, 2048, reqs[0].MaxTokens)
	assert.Contains(t, reqs[0].System, "expert conversation evaluator")
	assert.Contains(t, reqs[0].System, "- **helpfulness** (weight=0.3)")
	require.Len(t, reqs[0].Messages, 1)
	assert.Contains(t, reqs[0].Messages[0].Content, "[Turn 0] USER: What's the weather in Paris?")
}

func TestModelJudgeClampsScores(t *testing.T) {
	client := &scriptedClient{steps: []scriptStep{
		toolCallStep("submit_evaluation", map[string]interface{}{
			"helpfulness_score": 15.0,
			"accuracy_score":    -3.0,
		}),
	}}
	judge := NewModelJudge(client, "judge-model")

	result, err := judge.Evaluate(context.Background(), sampleTurns(), DefaultDimensions())
	require.NoError(t, err)

	assert.InDelta(t, 10.0, result.Scores["helpfulness"], 0.0001)
	assert.InDelta(t, 0.0, result.Scores["accuracy"], 0.0001)
	// Missing scores default to neutral.
	assert.InDelta(t, 5.0, result.Scores["safety"], 0.0001)
	assert.Contains(t, result.Reasoning, "No reasoning provided")
}

func TestModelJudgeContentFallback(t *testing.T) {
	client := &scriptedClient{steps: []scriptStep{
		contentStep("My assessment: helpfulness: 7.5, accuracy=6 overall."),
	}}
	judge := NewModelJudge(client, "judge-model")

	result, err := judge.Evaluate(context.Background(), sampleTurns(), DefaultDimensions())
	require.NoError(t, err)

	require.Len(t, result.Scores, 2)
	assert.InDelta(t, 7.5, result.Scores["helpfulness"], 0.0001)
	assert.InDelta(t, 6.0, result.Scores["accuracy"], 0.0001)
	assert.Contains(t, result.Reasoning, "parsed from content")
	// Weights renormalize over the two parsed dimensions.
	assert.InDelta(t, 6.82, result.OverallScore, 0.0001)
}

func TestModelJudgeUnparseableDefaults(t *testing.T) {
	client := &scriptedClient{steps: []scriptStep{
		contentStep("The assistant did a reasonable job overall."),
	}}
	judge := NewModelJudge(client, "judge-model")

	result, err := judge.Evaluate(context.Background(), sampleTurns(), DefaultDimensions())
	require.NoError(t, err)

	for _, dim := range DefaultDimensions() {
		assert.InDelta(t, 5.0, result.Scores[dim.Name], 0.0001)
	}
	assert.InDelta(t, 5.0, result.OverallScore, 0.0001)
	assert.Contains(t, result.Reasoning, "Could not parse judge output")
}

func TestModelJudgeCallError(t *testing.T) {
	client := &scriptedClient{steps: []scriptStep{{err: errors.New("rate limited")}}}
	judge := NewModelJudge(client, "judge-model")

	_, err := judge.Evaluate(context.Background(), sampleTurns(), DefaultDimensions())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "judge call failed")
}

func TestFormatTranscript(t *testing.T) {
	got := formatTranscript(sampleTurns(), "Conversation Transcript")

	assert.Contains(t, got, "## Conversation Transcript\n")
	assert.Contains(t, got, "[Turn 0] USER: What's the weather in Paris?")
	assert.Contains(t, got, "[Turn 1] ASSISTANT: Let me check that for you.")
	assert.Contains(t, got, `  → TOOL_CALL: get_weather({"city":"Paris"})`)
	assert.Contains(t, got, `  ← TOOL_RESULT [OK]: {"temperature": 72}`)
}

func TestFormatTranscriptTruncatesResults(t *testing.T) {
	long := make([]byte, 300)
	for i := range long {
		long[i] = 'x'
	}
	turns := []sim.Turn{{
		Role: sim.RoleAssistant,
		ToolResults: []sim.ToolResult{
			{ToolCallID: "call_1", Content: string(long), IsError: true},
		},
	}}

	got := formatTranscript(turns, "Agent A")

	assert.Contains(t, got, "TOOL_RESULT [ERROR]")
	assert.NotContains(t, got, string(long))
	assert.Contains(t, got, string(long[:200]))
}

func TestScoringToolSchema(t *testing.T) {
	tool := scoringTool(DefaultDimensions()[:2])

	assert.Equal(t, "submit_evaluation", tool.Name)
	props := tool.Parameters["properties"].(map[string]interface{})
	assert.Contains(t, props, "helpfulness_score")
	assert.Contains(t, props, "helpfulness_reasoning")
	assert.Contains(t, props, "accuracy_score")

	required := tool.Parameters["required"].([]string)
	assert.Len(t, required, 4)
}
