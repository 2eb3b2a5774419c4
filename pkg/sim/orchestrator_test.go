package sim

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentprobe/agentprobe/pkg/llm"
)

func testAgentPersona() AgentPersona {
	return AgentPersona{
		Name:         "weather-bot",
		SystemPrompt: "You are a helpful weather assistant.",
		Model:        "gpt-4o",
		Temperature:  0.2,
		MaxTokens:    1024,
		Tools: []llm.ToolSchema{{
			Name:        "get_weather",
			Description: "Get current weather for a city",
			Parameters: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"city": map[string]interface{}{"type": "string"},
				},
			},
		}},
	}
}

func newTestOrchestrator(client llm.Client, env Environment, initialMessage string, injector Injector) *Orchestrator {
	userSim := NewUserSimulator(client, testUserPersona(), initialMessage)
	sandbox := NewSandbox(env, nil, testRNG())
	return NewOrchestrator(client, testAgentPersona(), userSim, sandbox, injector, env)
}

func TestOrchestratorGoalAchieved(t *testing.T) {
	client := &scriptedClient{steps: []scriptStep{
		textStep("I need the weather forecast for Paris.", 10, 8),
		textStep("Paris is 72F and sunny today.", 100, 50),
		textStep("[GOAL_ACHIEVED] Perfect, thanks!", 15, 6),
	}}
	o := newTestOrchestrator(client, DefaultEnvironment(), "", nil)
	assert.Equal(t, StateIdle, o.State())

	result, err := o.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, StatusGoalAchieved, result.Status)
	assert.Empty(t, result.ErrorMessage)
	assert.Equal(t, StatusGoalAchieved, o.State())

	require.Len(t, result.Turns, 3)
	assert.Equal(t, RoleUser, result.Turns[0].Role)
	assert.Equal(t, RoleAssistant, result.Turns[1].Role)
	assert.Equal(t, RoleUser, result.Turns[2].Role)
	assert.Contains(t, result.Turns[2].Content, GoalSentinel)

	assert.Equal(t, 2, result.TurnCount)
	// Only the tested agent's usage counts toward the budget.
	assert.Equal(t, 100, result.TotalInputTokens)
	assert.Equal(t, 50, result.TotalOutputTokens)
	assert.Equal(t, 150, result.TotalTokens)

	reqs := client.recorded()
	require.Len(t, reqs, 3)
	assert.Empty(t, reqs[0].Tools, "user simulator request carries no tools")
	assert.NotEmpty(t, reqs[1].Tools, "agent request carries the tool schemas")
	assert.Equal(t, "You are a helpful weather assistant.", reqs[1].System)
}

func TestOrchestratorToolFlow(t *testing.T) {
	client := &scriptedClient{steps: []scriptStep{
		toolStep("Let me check that for you.", []llm.ToolCall{{
			ID:        "call_1",
			Name:      "get_weather",
			Arguments: map[string]interface{}{"city": "Paris"},
		}}, 120, 30),
		textStep("It's 72F and sunny in Paris.", 150, 40),
		textStep("[GOAL_ACHIEVED] Great, thank you!", 20, 8),
	}}
	o := newTestOrchestrator(client, DefaultEnvironment(), "What's the weather in Paris?", nil)

	result, err := o.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, StatusGoalAchieved, result.Status)
	require.Len(t, result.Turns, 4)

	toolTurn := result.Turns[1]
	assert.Equal(t, RoleAssistant, toolTurn.Role)
	require.Len(t, toolTurn.ToolCalls, 1)
	assert.Equal(t, "get_weather", toolTurn.ToolCalls[0].Name)
	require.Len(t, toolTurn.ToolResults, 1)
	assert.Equal(t, "call_1", toolTurn.ToolResults[0].ToolCallID)
	assert.Contains(t, toolTurn.ToolResults[0].Content, "72")
	assert.False(t, toolTurn.ToolResults[0].IsError)

	followupTurn := result.Turns[2]
	assert.Equal(t, RoleAssistant, followupTurn.Role)
	assert.Empty(t, followupTurn.ToolCalls)
	assert.Equal(t, "It's 72F and sunny in Paris.", followupTurn.Content)

	assert.Equal(t, 2, result.TurnCount)
	assert.Equal(t, 270, result.TotalInputTokens)
	assert.Equal(t, 70, result.TotalOutputTokens)

	reqs := client.recorded()
	require.Len(t, reqs, 3)

	followupReq := reqs[1]
	assert.Empty(t, followupReq.Tools, "followup request must not offer tools")
	last := followupReq.Messages[len(followupReq.Messages)-1]
	assert.Equal(t, llm.RoleTool, last.Role)
	assert.Equal(t, "call_1", last.ToolCallID)
	assert.Contains(t, last.Content, "sunny")
}

func TestOrchestratorMaxTurnsZero(t *testing.T) {
	client := &scriptedClient{}
	env := DefaultEnvironment()
	env.MaxTurns = 0
	o := newTestOrchestrator(client, env, "", nil)

	result, err := o.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, StatusCompleted, result.Status)
	assert.Empty(t, result.Turns)
	assert.Zero(t, result.TurnCount)
	assert.Zero(t, result.TotalTokens)
	assert.Empty(t, client.recorded())
}

func TestOrchestratorTokenBudget(t *testing.T) {
	client := &scriptedClient{steps: []scriptStep{
		textStep("Here is a long answer about the weather.", 80, 40),
	}}
	env := DefaultEnvironment()
	env.MaxTotalTokens = 100
	o := newTestOrchestrator(client, env, "What's the weather in Paris?", nil)

	result, err := o.Run(context.Background())
	require.NoError(t, err)

	// 120 tokens >= the 100 budget, so the loop stops after one exchange.
	assert.Equal(t, StatusCompleted, result.Status)
	assert.Equal(t, 1, result.TurnCount)
	assert.Equal(t, 120, result.TotalTokens)
	require.Len(t, result.Turns, 2)
}

func TestOrchestratorAgentFailure(t *testing.T) {
	client := &scriptedClient{steps: []scriptStep{
		errStep(errors.New("provider unavailable")),
	}}
	o := newTestOrchestrator(client, DefaultEnvironment(), "What's the weather in Paris?", nil)

	result, err := o.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, StatusFailed, result.Status)
	assert.Contains(t, result.ErrorMessage, "provider unavailable")
	assert.Equal(t, StatusFailed, o.State())

	// The user turn that preceded the failure is retained.
	require.Len(t, result.Turns, 1)
	assert.Equal(t, RoleUser, result.Turns[0].Role)
}

func TestOrchestratorUserSimulatorFailure(t *testing.T) {
	client := &scriptedClient{steps: []scriptStep{
		errStep(errors.New("rate limited")),
	}}
	o := newTestOrchestrator(client, DefaultEnvironment(), "", nil)

	result, err := o.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, StatusFailed, result.Status)
	assert.Contains(t, result.ErrorMessage, "rate limited")
	assert.Empty(t, result.Turns)
}

func TestOrchestratorCancelled(t *testing.T) {
	client := &scriptedClient{}
	o := newTestOrchestrator(client, DefaultEnvironment(), "", nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := o.Run(ctx)
	require.NoError(t, err)

	assert.Equal(t, StatusFailed, result.Status)
	assert.Equal(t, "cancelled", result.ErrorMessage)
	assert.Empty(t, result.Turns)
	assert.Empty(t, client.recorded())
	assert.Equal(t, StatusFailed, o.State())
}

func TestOrchestratorTimeout(t *testing.T) {
	client := &scriptedClient{steps: []scriptStep{
		textStep("A quick answer.", 30, 10),
	}}
	env := DefaultEnvironment()
	env.MaxTurns = 5
	env.Timeout = time.Nanosecond
	o := newTestOrchestrator(client, env, "What's the weather in Paris?", nil)

	result, err := o.Run(context.Background())
	require.NoError(t, err)

	// The deadline passes during the first exchange, so the loop stops at
	// the turn boundary with a normal completion.
	assert.Equal(t, StatusCompleted, result.Status)
	assert.Empty(t, result.ErrorMessage)
	assert.Equal(t, 1, result.TurnCount)
}

func TestOrchestratorAdversarialInjection(t *testing.T) {
	env := DefaultEnvironment()
	env.AdversarialTurns = []int{0}

	client := &scriptedClient{steps: []scriptStep{
		textStep("I can't ignore my instructions, but I'm happy to help.", 60, 25),
		textStep("[FRUSTRATED] Nothing you say makes sense.", 12, 9),
	}}
	o := newTestOrchestrator(client, env, "", NewAdversarialInjector(env, testRNG()))

	result, err := o.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, StatusFrustrated, result.Status)
	require.Len(t, result.Turns, 3)

	known := make(map[string]bool)
	for _, category := range adversarialMessages {
		for _, msg := range category {
			known[msg] = true
		}
	}
	assert.True(t, known[result.Turns[0].Content], "turn 0 must be an adversarial template")

	// The injected turn replaces the user simulator call entirely.
	reqs := client.recorded()
	require.Len(t, reqs, 2)
	assert.NotEmpty(t, reqs[0].Tools, "first call goes to the agent")
}

func TestOrchestratorRunTwice(t *testing.T) {
	client := &scriptedClient{steps: []scriptStep{
		textStep("[GOAL_ACHIEVED] Done.", 5, 5),
	}}
	o := newTestOrchestrator(client, DefaultEnvironment(), "", nil)

	_, err := o.Run(context.Background())
	require.NoError(t, err)

	_, err = o.Run(context.Background())
	assert.ErrorIs(t, err, ErrAlreadyStarted)
}

func TestOrchestratorSentinelPrecedence(t *testing.T) {
	client := &scriptedClient{steps: []scriptStep{
		textStep("Well [GOAL_ACHIEVED] though honestly also [FRUSTRATED].", 5, 5),
	}}
	o := newTestOrchestrator(client, DefaultEnvironment(), "", nil)

	result, err := o.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, StatusGoalAchieved, result.Status)
	assert.Equal(t, 1, result.TurnCount)
}
