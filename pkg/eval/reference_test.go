package eval

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentprobe/agentprobe/pkg/sim"
)

func TestReferenceEvaluatorPerfectMatch(t *testing.T) {
	turns := []sim.Turn{
		{Role: sim.RoleUser, Content: "What is 2+2?", ExpectedResponse: "The answer is 4."},
		{Role: sim.RoleAssistant, Content: "The answer is 4."},
	}

	result, err := NewReferenceEvaluator().Evaluate(context.Background(), turns, nil)
	require.NoError(t, err)

	assert.Equal(t, TypeReferenceBased, result.EvaluatorType)
	assert.InDelta(t, 1.0, result.Scores["token_overlap"], 0.0001)
	assert.InDelta(t, 1.0, result.Scores["lcs_ratio"], 0.0001)
	assert.InDelta(t, 1.0, result.Scores["exact_match"], 0.0001)
	assert.InDelta(t, 10.0, result.OverallScore, 0.0001)
	assert.Contains(t, result.Reasoning, "Evaluated 1 reference pair(s)")
}

func TestReferenceEvaluatorPartialMatch(t *testing.T) {
	turns := []sim.Turn{
		{Role: sim.RoleUser, Content: "Where is the cat?", ExpectedResponse: "the cat stood"},
		{Role: sim.RoleAssistant, Content: "the cat sat"},
	}

	result, err := NewReferenceEvaluator().Evaluate(context.Background(), turns, nil)
	require.NoError(t, err)

	// Two of three tokens shared, LCS "the cat", no exact match.
	assert.InDelta(t, 0.6667, result.Scores["token_overlap"], 0.0001)
	assert.InDelta(t, 0.6667, result.Scores["lcs_ratio"], 0.0001)
	assert.Zero(t, result.Scores["exact_match"])
	assert.InDelta(t, 5.33, result.OverallScore, 0.0001)
}

func TestReferenceEvaluatorNoReferences(t *testing.T) {
	turns := []sim.Turn{
		{Role: sim.RoleUser, Content: "Hello"},
		{Role: sim.RoleAssistant, Content: "Hi there"},
	}

	result, err := NewReferenceEvaluator().Evaluate(context.Background(), turns, nil)
	require.NoError(t, err)

	assert.Zero(t, result.OverallScore)
	assert.Zero(t, result.Scores["token_overlap"])
	assert.Equal(t, "No reference answers available in scenario.", result.Reasoning)
}

func TestReferenceEvaluatorNormalization(t *testing.T) {
	turns := []sim.Turn{
		{Role: sim.RoleUser, Content: "Q", ExpectedResponse: "the cat sat"},
		{Role: sim.RoleAssistant, Content: "  The CAT   sat  "},
	}

	result, err := NewReferenceEvaluator().Evaluate(context.Background(), turns, nil)
	require.NoError(t, err)

	assert.InDelta(t, 1.0, result.Scores["exact_match"], 0.0001)
	assert.InDelta(t, 10.0, result.OverallScore, 0.0001)
}

func TestReferencePairs(t *testing.T) {
	turns := []sim.Turn{
		{Role: sim.RoleUser, Content: "Q1", ExpectedResponse: "gold one"},
		{Role: sim.RoleAssistant, Content: "answer one"},
		{Role: sim.RoleUser, Content: "Q2"},
		{Role: sim.RoleAssistant, Content: "answer two"},
		// Expected response with no assistant turn after it yields no pair.
		{Role: sim.RoleUser, Content: "Q3", ExpectedResponse: "gold three"},
	}

	pairs := referencePairs(turns)

	require.Len(t, pairs, 1)
	assert.Equal(t, "answer one", pairs[0].actual)
	assert.Equal(t, "gold one", pairs[0].expected)
}

func TestLCSLength(t *testing.T) {
	assert.Equal(t, 2, lcsLength([]string{"a", "b", "c"}, []string{"a", "c", "d"}))
	assert.Equal(t, 0, lcsLength([]string{"x"}, []string{"y"}))
	assert.Equal(t, 3, lcsLength([]string{"a", "b", "c"}, []string{"a", "b", "c"}))
}
