package eval

import (
	"context"
	"errors"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentprobe/agentprobe/pkg/llm"
	"github.com/agentprobe/agentprobe/pkg/sim"
)

func turnsFor(content string) []sim.Turn {
	return []sim.Turn{
		{Role: sim.RoleUser, Content: "Help me plan a trip."},
		{Role: sim.RoleAssistant, Content: content},
	}
}

func TestPairwiseCompare(t *testing.T) {
	client := &scriptedClient{steps: []scriptStep{
		toolCallStep("submit_comparison", map[string]interface{}{
			"winner":                 "a",
			"confidence":             0.8,
			"reasoning":              "A was more thorough",
			"helpfulness_preference": "a",
			"accuracy_preference":    "draw",
		}),
	}}
	judge := NewPairwiseJudge(client, "judge-model", rand.New(rand.NewPCG(7, 11)))
	dims := DefaultDimensions()[:2]

	result, err := judge.Compare(context.Background(), turnsFor("detailed plan"), turnsFor("short plan"), dims)
	require.NoError(t, err)

	_, parseErr := uuid.Parse(result.MatchID)
	assert.NoError(t, parseErr)
	assert.InDelta(t, 0.8, result.Confidence, 0.0001)
	assert.Equal(t, "A was more thorough", result.Reasoning)
	assert.Equal(t, "judge-model", result.Metadata["model"])

	// The model judged the presented order. If positions were swapped the
	// verdict maps back to the caller's labels.
	swapped := result.Metadata["swapped"].(bool)
	if swapped {
		assert.Equal(t, WinnerB, result.Winner)
		assert.Equal(t, WinnerB, result.DimensionPreferences["helpfulness"])
	} else {
		assert.Equal(t, WinnerA, result.Winner)
		assert.Equal(t, WinnerA, result.DimensionPreferences["helpfulness"])
	}
	assert.Equal(t, WinnerDraw, result.DimensionPreferences["accuracy"])

	reqs := client.recorded()
	require.Len(t, reqs, 1)
	assert.Equal(t, "submit_comparison", reqs[0].ForceTool)
	assert.Contains(t, reqs[0].System, "expert evaluator comparing two AI assistants")
	require.Len(t, reqs[0].Messages, 1)
	assert.Contains(t, reqs[0].Messages[0].Content, "## Agent A\n")
	assert.Contains(t, reqs[0].Messages[0].Content, "\n\n---\n\n## Agent B\n")

	// Whichever side was presented as Agent A appears before the divider.
	content := reqs[0].Messages[0].Content
	divider := strings.Index(content, "\n\n---\n\n")
	require.Greater(t, divider, 0)
	if swapped {
		assert.Contains(t, content[:divider], "short plan")
		assert.Contains(t, content[divider:], "detailed plan")
	} else {
		assert.Contains(t, content[:divider], "detailed plan")
		assert.Contains(t, content[divider:], "short plan")
	}
}

func TestPairwiseCompareError(t *testing.T) {
	client := &scriptedClient{steps: []scriptStep{{err: errors.New("boom")}}}
	judge := NewPairwiseJudge(client, "judge-model", rand.New(rand.NewPCG(1, 2)))

	_, err := judge.Compare(context.Background(), turnsFor("a"), turnsFor("b"), DefaultDimensions())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pairwise judge call failed")
}

func TestParseComparisonClampsConfidence(t *testing.T) {
	resp := &llm.Response{ToolCalls: []llm.ToolCall{{
		Name: "submit_comparison",
		Arguments: map[string]interface{}{
			"winner":     "b",
			"confidence": 1.7,
			"reasoning":  "clear difference",
		},
	}}}

	result := parseComparison(resp, DefaultDimensions()[:1])

	assert.Equal(t, WinnerB, result.Winner)
	assert.InDelta(t, 1.0, result.Confidence, 0.0001)
	// Missing per-dimension preference defaults to draw.
	assert.Equal(t, WinnerDraw, result.DimensionPreferences["helpfulness"])
}

func TestParseComparisonContentFallback(t *testing.T) {
	resp := &llm.Response{Content: "Agent A handled the scenario better overall."}

	result := parseComparison(resp, nil)

	assert.Equal(t, WinnerDraw, result.Winner)
	assert.InDelta(t, 0.5, result.Confidence, 0.0001)
	assert.Equal(t, "Agent A handled the scenario better overall.", result.Reasoning)
	assert.Empty(t, result.DimensionPreferences)
}

func TestUnswapFlipsLabels(t *testing.T) {
	result := &PairwiseResult{
		Winner:     WinnerA,
		Confidence: 0.9,
		DimensionPreferences: map[string]string{
			"helpfulness": "a",
			"accuracy":    "b",
			"safety":      "draw",
		},
	}

	unswap(result)

	assert.Equal(t, WinnerB, result.Winner)
	assert.Equal(t, WinnerB, result.DimensionPreferences["helpfulness"])
	assert.Equal(t, WinnerA, result.DimensionPreferences["accuracy"])
	assert.Equal(t, WinnerDraw, result.DimensionPreferences["safety"])
	// Confidence is order independent.
	assert.InDelta(t, 0.9, result.Confidence, 0.0001)
}
