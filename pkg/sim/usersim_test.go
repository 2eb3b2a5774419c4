package sim

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentprobe/agentprobe/pkg/llm"
)

func testUserPersona() UserPersona {
	return UserPersona{
		Personality:    "impatient and direct",
		ExpertiseLevel: "beginner",
		Goal:           "get the weather forecast for Paris",
		Model:          "claude-sonnet-4-5",
	}
}

func TestUserSimulatorInitialMessage(t *testing.T) {
	client := &scriptedClient{}
	sim := NewUserSimulator(client, testUserPersona(), "What's the weather in Paris?")

	msg, err := sim.Generate(context.Background(), nil, 0)
	require.NoError(t, err)
	assert.Equal(t, "What's the weather in Paris?", msg)
	assert.Empty(t, client.recorded(), "scripted opening must not call the model")
}

func TestUserSimulatorEmptyHistory(t *testing.T) {
	client := &scriptedClient{steps: []scriptStep{textStep("Hi, I need the Paris forecast.", 10, 8)}}
	sim := NewUserSimulator(client, testUserPersona(), "")

	msg, err := sim.Generate(context.Background(), nil, 0)
	require.NoError(t, err)
	assert.Equal(t, "Hi, I need the Paris forecast.", msg)

	reqs := client.recorded()
	require.Len(t, reqs, 1)
	require.Len(t, reqs[0].Messages, 1)
	assert.Equal(t, llm.RoleUser, reqs[0].Messages[0].Role)
	assert.Equal(t, "Start a conversation. Your goal: get the weather forecast for Paris", reqs[0].Messages[0].Content)
}

func TestUserSimulatorRoleSwap(t *testing.T) {
	client := &scriptedClient{steps: []scriptStep{textStep("Thanks, that helps. [GOAL_ACHIEVED]", 20, 10)}}
	sim := NewUserSimulator(client, testUserPersona(), "What's the weather in Paris?")

	history := []Turn{
		{Role: RoleUser, Content: "What's the weather in Paris?"},
		{Role: RoleAssistant, Content: "It is 72F and sunny in Paris."},
	}

	msg, err := sim.Generate(context.Background(), history, 1)
	require.NoError(t, err)
	assert.Contains(t, msg, GoalSentinel)

	reqs := client.recorded()
	require.Len(t, reqs, 1)
	req := reqs[0]

	// The simulated user sees its own past messages as the assistant side.
	require.Len(t, req.Messages, 2)
	assert.Equal(t, llm.RoleAssistant, req.Messages[0].Role)
	assert.Equal(t, "What's the weather in Paris?", req.Messages[0].Content)
	assert.Equal(t, llm.RoleUser, req.Messages[1].Role)
	assert.Equal(t, "It is 72F and sunny in Paris.", req.Messages[1].Content)

	assert.Equal(t, "claude-sonnet-4-5", req.Model)
	assert.Contains(t, req.System, "impatient and direct")
	assert.InDelta(t, 0.8, req.Temperature, 0.001)
	assert.Equal(t, 500, req.MaxTokens)
	assert.Empty(t, req.Tools, "simulated user never gets tools")
}

func TestUserPersonaSystemPrompt(t *testing.T) {
	prompt := testUserPersona().SystemPrompt()

	assert.Contains(t, prompt, "Personality: impatient and direct")
	assert.Contains(t, prompt, "Expertise level: beginner")
	assert.Contains(t, prompt, "Goal: get the weather forecast for Paris")
	assert.Contains(t, prompt, GoalSentinel)
	assert.Contains(t, prompt, FrustratedSentinel)
	assert.Contains(t, prompt, "Do NOT break character")
}
