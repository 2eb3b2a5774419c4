package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentprobe/agentprobe/ent/evalrun"
	"github.com/agentprobe/agentprobe/ent/evaluation"
	"github.com/agentprobe/agentprobe/pkg/eval"
)

func TestLeaderboardFromStoredMatches(t *testing.T) {
	client, ctx := newTestClientAndCtx(t)
	svc := NewStatsService(client.Client, nil, nil)

	run := seedRun(ctx, t, client, evalrun.StatusCompleted)
	conv := seedConversation(ctx, t, client, run.ID, 0)

	// alpha beats beta twice and draws with gamma once.
	seedPairwiseMatch(ctx, t, client, conv, "alpha", "beta", eval.WinnerA)
	seedPairwiseMatch(ctx, t, client, conv, "alpha", "beta", eval.WinnerA)
	seedPairwiseMatch(ctx, t, client, conv, "alpha", "gamma", eval.WinnerDraw)

	board, err := svc.Leaderboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, board.MatchCount)
	assert.False(t, board.Cached)
	require.Len(t, board.Entries, 3)

	assert.Equal(t, "alpha", board.Entries[0].Agent)
	assert.Equal(t, 1, board.Entries[0].Rank)
	assert.Greater(t, board.Entries[0].Rating, 1500.0)
	assert.Equal(t, 2, board.Entries[0].Wins)
	assert.Equal(t, 1, board.Entries[0].Draws)
	assert.Equal(t, 3, board.Entries[0].Matches)

	betaIdx := -1
	for i, entry := range board.Entries {
		if entry.Agent == "beta" {
			betaIdx = i
			break
		}
	}
	require.NotEqual(t, -1, betaIdx)
	assert.Less(t, board.Entries[betaIdx].Rating, 1500.0)
	assert.Equal(t, 2, board.Entries[betaIdx].Losses)
}

func TestLeaderboardEmpty(t *testing.T) {
	client, ctx := newTestClientAndCtx(t)
	svc := NewStatsService(client.Client, nil, nil)

	board, err := svc.Leaderboard(ctx)
	require.NoError(t, err)
	assert.Empty(t, board.Entries)
	assert.Zero(t, board.MatchCount)
}

func TestLeaderboardSkipsMalformedMatches(t *testing.T) {
	client, ctx := newTestClientAndCtx(t)
	svc := NewStatsService(client.Client, nil, nil)

	run := seedRun(ctx, t, client, evalrun.StatusCompleted)
	conv := seedConversation(ctx, t, client, run.ID, 0)
	seedPairwiseMatch(ctx, t, client, conv, "alpha", "beta", eval.WinnerA)
	// Metadata without agent names must not break the fold.
	seedEvaluation(ctx, t, client, conv, evaluation.EvaluatorTypePairwiseJudge, 5)

	board, err := svc.Leaderboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, board.MatchCount)
	assert.Len(t, board.Entries, 2)
}

func TestInterRaterReliability(t *testing.T) {
	client, ctx := newTestClientAndCtx(t)
	svc := NewStatsService(client.Client, nil, nil)

	run := seedRun(ctx, t, client, evalrun.StatusCompleted)
	for seq := 0; seq < 4; seq++ {
		conv := seedConversation(ctx, t, client, run.ID, seq)
		base := float64(4 + seq)
		// Raters agree closely, so alpha should come out high.
		seedEvaluation(ctx, t, client, conv, evaluation.EvaluatorTypeModelJudge, base)
		seedEvaluation(ctx, t, client, conv, evaluation.EvaluatorTypeRubricGrader, base+0.5)
		seedEvaluation(ctx, t, client, conv, evaluation.EvaluatorTypeHuman, base)
	}

	report, err := svc.InterRaterReliability(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, run.ID, report.EvalRunID)
	assert.Equal(t, []string{eval.TypeModelJudge, eval.TypeRubricGrader, eval.TypeHuman}, report.Raters)
	assert.Equal(t, 3, report.Result.NumRaters)
	assert.Equal(t, 4, report.Result.NumItems)
	assert.Greater(t, report.Result.Alpha, 0.5)

	_, err = svc.InterRaterReliability(ctx, "ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCalibration(t *testing.T) {
	client, ctx := newTestClientAndCtx(t)
	svc := NewStatsService(client.Client, nil, nil)

	run := seedRun(ctx, t, client, evalrun.StatusCompleted)
	for seq := 0; seq < 5; seq++ {
		conv := seedConversation(ctx, t, client, run.ID, seq)
		human := float64(3 + seq)
		// The model consistently scores one point above the human.
		seedEvaluation(ctx, t, client, conv, evaluation.EvaluatorTypeHuman, human)
		seedEvaluation(ctx, t, client, conv, evaluation.EvaluatorTypeModelJudge, human+1)
	}

	report, err := svc.Calibration(ctx, run.ID, 5)
	require.NoError(t, err)
	assert.Equal(t, run.ID, report.EvalRunID)
	assert.InDelta(t, 1.0, report.Overall.MAE, 0.001)
	assert.InDelta(t, 1.0, report.Overall.Bias, 0.001, "the model judge runs one point hot")
	assert.InDelta(t, 1.0, report.Overall.PearsonR, 0.001, "a constant offset is perfectly correlated")
	assert.NotEmpty(t, report.Curve)
	assert.NotEmpty(t, report.PerDimension)
}

func TestCalibrationNeedsPairs(t *testing.T) {
	client, ctx := newTestClientAndCtx(t)
	svc := NewStatsService(client.Client, nil, nil)

	run := seedRun(ctx, t, client, evalrun.StatusCompleted)
	conv := seedConversation(ctx, t, client, run.ID, 0)
	seedEvaluation(ctx, t, client, conv, evaluation.EvaluatorTypeModelJudge, 7)

	_, err := svc.Calibration(ctx, run.ID, 10)
	assert.True(t, IsValidationError(err), "no human/model pairs should be a validation error")
}

func TestRunSummary(t *testing.T) {
	client, ctx := newTestClientAndCtx(t)
	statsSvc := NewStatsService(client.Client, nil, nil)

	llmClient := &scriptedClient{steps: []scriptStep{judgeStep(8)}}
	evalSvc := NewEvaluationService(client.Client, llmClient, testLLMConfig(), nil, nil)

	run := seedRun(ctx, t, client, evalrun.StatusCompleted)
	conv := seedConversation(ctx, t, client, run.ID, 0)
	require.NoError(t, evalSvc.EvaluateConversation(ctx, conv.ID))

	summary, err := statsSvc.RunSummary(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, run.ID, summary.Run.ID)
	assert.Equal(t, map[string]int{"goal_achieved": 1}, summary.ConversationStats)
	assert.InDelta(t, 8.0, summary.EvaluatorAverages[eval.TypeModelJudge], 0.001)
	assert.Contains(t, summary.EvaluatorAverages, eval.TypeRubricGrader)

	tpt, ok := summary.Metrics["tokens_per_turn"]
	require.True(t, ok)
	assert.Equal(t, 70.0, tpt.Mean)
	assert.Equal(t, 1, tpt.SampleCount)

	_, err = statsSvc.RunSummary(ctx, "ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}
