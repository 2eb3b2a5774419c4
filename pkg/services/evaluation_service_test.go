package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentprobe/agentprobe/ent/evalrun"
	"github.com/agentprobe/agentprobe/ent/evaluation"
	"github.com/agentprobe/agentprobe/ent/metric"
	"github.com/agentprobe/agentprobe/pkg/eval"
	"github.com/agentprobe/agentprobe/pkg/llm"
)

// comparisonStep builds a submit_comparison tool call. Draw verdicts are
// used in tests because they are invariant under the judge's random
// presentation swap.
func comparisonStep(winner string, confidence float64) scriptStep {
	args := map[string]interface{}{
		"winner":     winner,
		"confidence": confidence,
		"reasoning":  "scripted comparison",
	}
	for _, dim := range eval.DefaultDimensions() {
		args[dim.Name+"_preference"] = winner
	}
	return scriptStep{resp: &llm.Response{
		ToolCalls: []llm.ToolCall{{
			ID:        "call_compare",
			Name:      "submit_comparison",
			Arguments: args,
		}},
		StopReason: "tool_use",
		Usage:      llm.Usage{InputTokens: 300, OutputTokens: 100},
	}}
}

func TestEvaluateConversationStoresVerdictsAndMetrics(t *testing.T) {
	client, ctx := newTestClientAndCtx(t)

	// Only the model judge hits the LLM; the rubric grader is heuristic.
	llmClient := &scriptedClient{steps: []scriptStep{judgeStep(8)}}
	svc := NewEvaluationService(client.Client, llmClient, testLLMConfig(), nil, nil)

	run := seedRun(ctx, t, client, evalrun.StatusRunningEvaluation)
	conv := seedConversation(ctx, t, client, run.ID, 0)

	require.NoError(t, svc.EvaluateConversation(ctx, conv.ID))

	evaluations, err := client.Evaluation.Query().
		Where(evaluation.ConversationIDEQ(conv.ID)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, evaluations, 2, "model judge and rubric grader run for every conversation")

	byType := map[evaluation.EvaluatorType]float64{}
	for _, e := range evaluations {
		byType[e.EvaluatorType] = e.OverallScore
		assert.Equal(t, run.ID, e.EvalRunID)
	}
	assert.InDelta(t, 8.0, byType[evaluation.EvaluatorTypeModelJudge], 0.001,
		"uniform 8s across all dimensions average to 8 overall")
	assert.Contains(t, byType, evaluation.EvaluatorTypeRubricGrader)

	metricsRows, err := client.Metric.Query().
		Where(metric.ConversationIDEQ(conv.ID)).
		All(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, metricsRows)
	names := map[string]float64{}
	for _, m := range metricsRows {
		names[m.Name] = m.Value
	}
	assert.Equal(t, 1.0, names["goal_achieved"])
	assert.Equal(t, 1.0, names["conversation_completed"])
	assert.Equal(t, 70.0, names["tokens_per_turn"])
	assert.Equal(t, 2.0, names["turns_to_resolution"])
}

func TestEvaluateConversationRedeliveryIsIdempotent(t *testing.T) {
	client, ctx := newTestClientAndCtx(t)

	llmClient := &scriptedClient{steps: []scriptStep{judgeStep(7)}}
	svc := NewEvaluationService(client.Client, llmClient, testLLMConfig(), nil, nil)

	run := seedRun(ctx, t, client, evalrun.StatusRunningEvaluation)
	conv := seedConversation(ctx, t, client, run.ID, 0)

	require.NoError(t, svc.EvaluateConversation(ctx, conv.ID))

	// The script is exhausted: a second delivery must not call the model
	// again, and must not duplicate evaluations or metrics.
	require.NoError(t, svc.EvaluateConversation(ctx, conv.ID))

	count, err := client.Evaluation.Query().
		Where(evaluation.ConversationIDEQ(conv.ID)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	metricCount, err := client.Metric.Query().
		Where(metric.ConversationIDEQ(conv.ID)).
		Count(ctx)
	require.NoError(t, err)
	firstRun := metricCount

	require.NoError(t, svc.EvaluateConversation(ctx, conv.ID))
	metricCount, err = client.Metric.Query().
		Where(metric.ConversationIDEQ(conv.ID)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, firstRun, metricCount, "metric rows are replaced, not appended")
}

func TestEvaluateConversationScenarioSpecificEvaluators(t *testing.T) {
	client, ctx := newTestClientAndCtx(t)

	llmClient := &scriptedClient{steps: []scriptStep{judgeStep(6)}}
	svc := NewEvaluationService(client.Client, llmClient, testLLMConfig(), nil, nil)

	run := seedRun(ctx, t, client, evalrun.StatusRunningEvaluation)
	_, err := client.Scenario.UpdateOneID(run.ScenarioID).
		SetTurnsTemplate([]map[string]interface{}{
			{"user_message": "I want a refund for order #1234.", "expected_response": "I have issued the refund."},
		}).
		SetExpectedToolSequence([]string{"lookup_order"}).
		Save(ctx)
	require.NoError(t, err)

	conv := seedConversation(ctx, t, client, run.ID, 0)
	require.NoError(t, svc.EvaluateConversation(ctx, conv.ID))

	evaluations, err := client.Evaluation.Query().
		Where(evaluation.ConversationIDEQ(conv.ID)).
		All(ctx)
	require.NoError(t, err)

	types := map[evaluation.EvaluatorType]bool{}
	for _, e := range evaluations {
		types[e.EvaluatorType] = true
	}
	assert.Len(t, types, 4)
	assert.True(t, types[evaluation.EvaluatorTypeReferenceBased],
		"expected_response in the template enables reference evaluation")
	assert.True(t, types[evaluation.EvaluatorTypeTrajectory],
		"expected_tool_sequence enables trajectory evaluation")
}

func TestEvaluateConversationJudgeFailureIsIsolated(t *testing.T) {
	client, ctx := newTestClientAndCtx(t)

	llmClient := &scriptedClient{steps: []scriptStep{{err: assert.AnError}}}
	svc := NewEvaluationService(client.Client, llmClient, testLLMConfig(), nil, nil)

	run := seedRun(ctx, t, client, evalrun.StatusRunningEvaluation)
	conv := seedConversation(ctx, t, client, run.ID, 0)

	require.NoError(t, svc.EvaluateConversation(ctx, conv.ID), "a failing evaluator must not fail the delivery")

	evaluations, err := client.Evaluation.Query().
		Where(evaluation.ConversationIDEQ(conv.ID)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, evaluations, 1, "the rubric grader still runs")
	assert.Equal(t, evaluation.EvaluatorTypeRubricGrader, evaluations[0].EvaluatorType)
}

func TestEvaluateConversationNotFound(t *testing.T) {
	client, ctx := newTestClientAndCtx(t)
	svc := NewEvaluationService(client.Client, &scriptedClient{}, testLLMConfig(), nil, nil)

	err := svc.EvaluateConversation(ctx, "ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPairwiseCompare(t *testing.T) {
	client, ctx := newTestClientAndCtx(t)

	llmClient := &scriptedClient{steps: []scriptStep{comparisonStep("draw", 0.9)}}
	svc := NewEvaluationService(client.Client, llmClient, testLLMConfig(), nil, nil)

	run := seedRun(ctx, t, client, evalrun.StatusCompleted)
	convA := seedConversation(ctx, t, client, run.ID, 0)
	convB := seedConversation(ctx, t, client, run.ID, 1)

	result, err := svc.PairwiseCompare(ctx, convA.ID, convB.ID)
	require.NoError(t, err)
	assert.Equal(t, eval.WinnerDraw, result.Winner)
	assert.InDelta(t, 0.9, result.Confidence, 0.001)
	assert.NotEmpty(t, result.MatchID)

	stored, err := client.Evaluation.Query().
		Where(
			evaluation.ConversationIDEQ(convA.ID),
			evaluation.EvaluatorTypeEQ(evaluation.EvaluatorTypePairwiseJudge),
		).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, convB.ID, stored.Metadata["opponent_conversation"])
	assert.Equal(t, "draw", stored.Metadata["winner"])
	assert.NotEmpty(t, stored.Metadata["agent_a"])
	assert.InDelta(t, 9.0, stored.OverallScore, 0.001, "overall encodes the judge's confidence")
	for _, pref := range stored.Scores {
		assert.Equal(t, 5.0, pref, "draws encode as the midpoint score")
	}
}

func TestPairwiseCompareSelfComparison(t *testing.T) {
	client, ctx := newTestClientAndCtx(t)
	svc := NewEvaluationService(client.Client, &scriptedClient{}, testLLMConfig(), nil, nil)

	run := seedRun(ctx, t, client, evalrun.StatusCompleted)
	conv := seedConversation(ctx, t, client, run.ID, 0)

	_, err := svc.PairwiseCompare(ctx, conv.ID, conv.ID)
	assert.True(t, IsValidationError(err))
}

func TestRecordHumanEvaluation(t *testing.T) {
	client, ctx := newTestClientAndCtx(t)
	svc := NewEvaluationService(client.Client, &scriptedClient{}, testLLMConfig(), nil, nil)

	run := seedRun(ctx, t, client, evalrun.StatusCompleted)
	conv := seedConversation(ctx, t, client, run.ID, 0)

	record, err := svc.RecordHumanEvaluation(ctx, HumanEvaluationInput{
		ConversationID: conv.ID,
		Scores:         map[string]float64{"helpfulness": 8, "accuracy": 6},
		Reasoning:      "solid but slightly imprecise",
	})
	require.NoError(t, err)
	assert.Equal(t, evaluation.EvaluatorTypeHuman, record.EvaluatorType)
	assert.InDelta(t, 7.0, record.OverallScore, 0.001, "overall defaults to the unweighted mean")

	explicit := 9.5
	record, err = svc.RecordHumanEvaluation(ctx, HumanEvaluationInput{
		ConversationID: conv.ID,
		Scores:         map[string]float64{"helpfulness": 8},
		OverallScore:   &explicit,
	})
	require.NoError(t, err)
	assert.Equal(t, 9.5, record.OverallScore)
}

func TestRecordHumanEvaluationValidation(t *testing.T) {
	client, ctx := newTestClientAndCtx(t)
	svc := NewEvaluationService(client.Client, &scriptedClient{}, testLLMConfig(), nil, nil)

	run := seedRun(ctx, t, client, evalrun.StatusCompleted)
	conv := seedConversation(ctx, t, client, run.ID, 0)

	_, err := svc.RecordHumanEvaluation(ctx, HumanEvaluationInput{
		Scores: map[string]float64{"helpfulness": 8},
	})
	assert.True(t, IsValidationError(err), "missing conversation id")

	_, err = svc.RecordHumanEvaluation(ctx, HumanEvaluationInput{ConversationID: conv.ID})
	assert.True(t, IsValidationError(err), "empty scores")

	_, err = svc.RecordHumanEvaluation(ctx, HumanEvaluationInput{
		ConversationID: conv.ID,
		Scores:         map[string]float64{"helpfulness": 11},
	})
	assert.True(t, IsValidationError(err), "score out of range")

	_, err = svc.RecordHumanEvaluation(ctx, HumanEvaluationInput{
		ConversationID: "ghost",
		Scores:         map[string]float64{"helpfulness": 8},
	})
	assert.ErrorIs(t, err, ErrNotFound)
}
