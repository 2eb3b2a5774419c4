package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentprobe/agentprobe/ent"
	"github.com/agentprobe/agentprobe/ent/conversation"
	"github.com/agentprobe/agentprobe/ent/evalrun"
)

func TestSimulationExecuteGoalAchieved(t *testing.T) {
	client, ctx := newTestClientAndCtx(t)

	// The scenario ships an initial message, so the script only covers the
	// agent reply and the simulated user's closing turn.
	llmClient := &scriptedClient{steps: []scriptStep{
		textStep("I have processed your refund for order #1234.", 120, 45),
		textStep("[GOAL_ACHIEVED] Great, thank you!", 20, 8),
	}}
	svc := NewSimulationService(client.Client, llmClient, testLLMConfig(), nil, nil)

	run := seedRun(ctx, t, client, evalrun.StatusRunningSimulation)
	result := svc.Execute(ctx, run)
	require.NotNil(t, result)
	assert.Equal(t, evalrun.StatusRunningEvaluation, result.Status, "simulation success parks the run for the evaluation phase")
	assert.NoError(t, result.Error)

	conversations, err := client.Conversation.Query().
		Where(conversation.EvalRunIDEQ(run.ID)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, conversations, 1)

	conv := conversations[0]
	assert.Equal(t, conversation.StatusGoalAchieved, conv.Status)
	assert.Equal(t, 0, conv.Sequence)
	assert.Equal(t, 2, conv.TurnCount)
	assert.Equal(t, 165, conv.TotalTokens, "only the tested agent's usage counts")
	require.NotNil(t, conv.CompletedAt)

	require.Len(t, conv.Turns, 3)
	assert.Equal(t, "user", conv.Turns[0]["role"])
	assert.Equal(t, "I want a refund for order #1234.", conv.Turns[0]["content"])
	assert.Equal(t, "assistant", conv.Turns[1]["role"])
}

func TestSimulationExecuteMultipleConversations(t *testing.T) {
	client, ctx := newTestClientAndCtx(t)

	llmClient := &scriptedClient{steps: []scriptStep{
		textStep("Refund issued.", 100, 30),
		textStep("[GOAL_ACHIEVED] Thanks!", 10, 5),
		textStep("Refund issued.", 100, 30),
		textStep("[FRUSTRATED] This is going nowhere.", 10, 5),
	}}
	svc := NewSimulationService(client.Client, llmClient, testLLMConfig(), nil, nil)

	run := seedRun(ctx, t, client, evalrun.StatusRunningSimulation)
	run, err := run.Update().SetNumConversations(2).Save(ctx)
	require.NoError(t, err)

	result := svc.Execute(ctx, run)
	assert.Equal(t, evalrun.StatusRunningEvaluation, result.Status)

	conversations, err := client.Conversation.Query().
		Where(conversation.EvalRunIDEQ(run.ID)).
		Order(ent.Asc(conversation.FieldSequence)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, conversations, 2)
	assert.Equal(t, conversation.StatusGoalAchieved, conversations[0].Status)
	assert.Equal(t, conversation.StatusFrustrated, conversations[1].Status)
}

func TestSimulationExecuteScenarioMaxTurnsDefault(t *testing.T) {
	client, ctx := newTestClientAndCtx(t)

	// Script never emits a sentinel: the conversation must stop at the
	// scenario's one-turn budget.
	llmClient := &scriptedClient{steps: []scriptStep{
		textStep("Let me look into that.", 100, 30),
	}}
	svc := NewSimulationService(client.Client, llmClient, testLLMConfig(), nil, nil)

	run := seedRun(ctx, t, client, evalrun.StatusRunningSimulation)
	_, err := client.Scenario.UpdateOneID(run.ScenarioID).SetMaxTurns(1).Save(ctx)
	require.NoError(t, err)

	result := svc.Execute(ctx, run)
	assert.Equal(t, evalrun.StatusRunningEvaluation, result.Status)

	conversations, err := client.Conversation.Query().
		Where(conversation.EvalRunIDEQ(run.ID)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, conversations, 1)
	assert.Equal(t, conversation.StatusCompleted, conversations[0].Status, "hitting the turn budget is a normal completion")
	assert.Equal(t, 1, conversations[0].TurnCount)
}

func TestSimulationExecuteCancellation(t *testing.T) {
	client, baseCtx := newTestClientAndCtx(t)

	llmClient := &scriptedClient{steps: []scriptStep{
		textStep("Refund issued.", 100, 30),
		textStep("[GOAL_ACHIEVED] Thanks!", 10, 5),
	}}
	svc := NewSimulationService(client.Client, llmClient, testLLMConfig(), nil, nil)

	run := seedRun(baseCtx, t, client, evalrun.StatusRunningSimulation)
	run, err := run.Update().SetNumConversations(3).Save(baseCtx)
	require.NoError(t, err)

	// Cancel after the first conversation's final persistence: the
	// orchestrator consumes the whole script, then the loop observes ctx.
	ctx, cancel := context.WithCancel(baseCtx)
	cancel()

	result := svc.Execute(ctx, run)
	assert.Equal(t, evalrun.StatusCancelled, result.Status)

	conversations, err := client.Conversation.Query().
		Where(conversation.EvalRunIDEQ(run.ID)).
		All(baseCtx)
	require.NoError(t, err)
	assert.Empty(t, conversations, "a run cancelled before its first conversation creates no rows")
}

func TestSimulationExecuteAgentFailure(t *testing.T) {
	client, ctx := newTestClientAndCtx(t)

	// The agent call fails mid-conversation; the failure lands on the
	// conversation row, not the run.
	llmClient := &scriptedClient{steps: []scriptStep{
		{err: assert.AnError},
	}}
	svc := NewSimulationService(client.Client, llmClient, testLLMConfig(), nil, nil)

	run := seedRun(ctx, t, client, evalrun.StatusRunningSimulation)
	result := svc.Execute(ctx, run)
	assert.Equal(t, evalrun.StatusRunningEvaluation, result.Status)

	conversations, err := client.Conversation.Query().
		Where(conversation.EvalRunIDEQ(run.ID)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, conversations, 1)
	assert.Equal(t, conversation.StatusFailed, conversations[0].Status)
	require.NotNil(t, conversations[0].ErrorMessage)
}
