package services

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentprobe/agentprobe/ent/evalrun"
)

// recordingCanceller captures CancelRun calls.
type recordingCanceller struct {
	mu     sync.Mutex
	calls  []string
	result bool
}

func (c *recordingCanceller) CancelRun(runID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = append(c.calls, runID)
	return c.result
}

func TestRunCreate(t *testing.T) {
	client, ctx := newTestClientAndCtx(t)
	svc := NewRunService(client.Client, nil)

	agentCfg := seedAgentConfig(ctx, t, client)
	scenario := seedScenario(ctx, t, client)

	run, err := svc.Create(ctx, CreateRunInput{
		Name:             "nightly-regression",
		AgentConfigID:    agentCfg.ID,
		ScenarioID:       scenario.ID,
		NumConversations: 3,
		Environment: map[string]interface{}{
			"max_turns":         5,
			"tool_failure_rate": 0.1,
		},
	})
	require.NoError(t, err)
	assert.Equal(t, evalrun.StatusPending, run.Status, "runs start pending; workers claim them")
	assert.Equal(t, 3, run.NumConversations)
	assert.Equal(t, "nightly-regression", run.Name)
	assert.EqualValues(t, 5, run.Environment["max_turns"])
}

func TestRunCreateValidation(t *testing.T) {
	client, ctx := newTestClientAndCtx(t)
	svc := NewRunService(client.Client, nil)

	agentCfg := seedAgentConfig(ctx, t, client)
	scenario := seedScenario(ctx, t, client)

	tests := []struct {
		name  string
		input CreateRunInput
	}{
		{"missing agent config", CreateRunInput{ScenarioID: scenario.ID, NumConversations: 1}},
		{"missing scenario", CreateRunInput{AgentConfigID: agentCfg.ID, NumConversations: 1}},
		{"zero conversations", CreateRunInput{AgentConfigID: agentCfg.ID, ScenarioID: scenario.ID}},
		{"unknown agent config", CreateRunInput{AgentConfigID: "ghost", ScenarioID: scenario.ID, NumConversations: 1}},
		{"unknown scenario", CreateRunInput{AgentConfigID: agentCfg.ID, ScenarioID: "ghost", NumConversations: 1}},
		{
			"failure rate out of range",
			CreateRunInput{
				AgentConfigID: agentCfg.ID, ScenarioID: scenario.ID, NumConversations: 1,
				Environment: map[string]interface{}{"tool_failure_rate": 1.5},
			},
		},
		{
			"negative max turns",
			CreateRunInput{
				AgentConfigID: agentCfg.ID, ScenarioID: scenario.ID, NumConversations: 1,
				Environment: map[string]interface{}{"max_turns": -1},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tt.input)
			assert.True(t, IsValidationError(err), "expected validation error, got %v", err)
		})
	}
}

func TestRunListFilters(t *testing.T) {
	client, ctx := newTestClientAndCtx(t)
	svc := NewRunService(client.Client, nil)

	pending := seedRun(ctx, t, client, evalrun.StatusPending)
	seedRun(ctx, t, client, evalrun.StatusCompleted)

	runs, total, err := svc.List(ctx, RunListParams{Status: "pending"})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, runs, 1)
	assert.Equal(t, pending.ID, runs[0].ID)

	runs, total, err = svc.List(ctx, RunListParams{AgentConfigID: pending.AgentConfigID})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, runs, 1)
	assert.Equal(t, pending.ID, runs[0].ID)

	_, _, err = svc.List(ctx, RunListParams{Status: "sideways"})
	assert.True(t, IsValidationError(err))
}

func TestRunCancel(t *testing.T) {
	client, ctx := newTestClientAndCtx(t)
	canceller := &recordingCanceller{result: true}
	svc := NewRunService(client.Client, canceller)

	run := seedRun(ctx, t, client, evalrun.StatusRunningSimulation)

	cancelled, err := svc.Cancel(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, evalrun.StatusCancelled, cancelled.Status)
	assert.Equal(t, []string{run.ID}, canceller.calls, "the executing worker must be signalled")
}

func TestRunCancelPendingNeedsNoWorker(t *testing.T) {
	client, ctx := newTestClientAndCtx(t)
	svc := NewRunService(client.Client, nil)

	run := seedRun(ctx, t, client, evalrun.StatusPending)
	cancelled, err := svc.Cancel(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, evalrun.StatusCancelled, cancelled.Status)
}

func TestRunCancelTerminalStates(t *testing.T) {
	client, ctx := newTestClientAndCtx(t)
	svc := NewRunService(client.Client, nil)

	for _, status := range []evalrun.Status{
		evalrun.StatusCompleted, evalrun.StatusFailed, evalrun.StatusCancelled,
	} {
		run := seedRun(ctx, t, client, status)
		_, err := svc.Cancel(ctx, run.ID)
		assert.ErrorIs(t, err, ErrNotCancellable, "status %s", status)
	}

	_, err := svc.Cancel(ctx, "no-such-run")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRunConversationsAndEvaluations(t *testing.T) {
	client, ctx := newTestClientAndCtx(t)
	svc := NewRunService(client.Client, nil)

	run := seedRun(ctx, t, client, evalrun.StatusCompleted)
	second := seedConversation(ctx, t, client, run.ID, 1)
	first := seedConversation(ctx, t, client, run.ID, 0)
	seedEvaluation(ctx, t, client, first, "model_judge", 7.5)

	conversations, err := svc.ListConversations(ctx, run.ID)
	require.NoError(t, err)
	require.Len(t, conversations, 2)
	assert.Equal(t, first.ID, conversations[0].ID, "conversations come back in sequence order")
	assert.Equal(t, second.ID, conversations[1].ID)

	evaluations, err := svc.ListEvaluations(ctx, first.ID)
	require.NoError(t, err)
	require.Len(t, evaluations, 1)
	assert.EqualValues(t, "model_judge", evaluations[0].EvaluatorType)
	assert.Equal(t, 7.5, evaluations[0].OverallScore)

	_, err = svc.ListConversations(ctx, "ghost-run")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = svc.ListEvaluations(ctx, "ghost-conversation")
	assert.ErrorIs(t, err, ErrNotFound)
}
