package sim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultEnvironment(t *testing.T) {
	env := DefaultEnvironment()
	assert.Equal(t, 10, env.MaxTurns)
	assert.Equal(t, 50000, env.MaxTotalTokens)
	assert.Equal(t, 120*time.Second, env.Timeout)
	assert.Zero(t, env.ToolFailureRate)
	assert.Zero(t, env.ToolLatency)
	assert.Empty(t, env.AdversarialTurns)
}

func TestEnvironmentFromMap(t *testing.T) {
	// Values arrive as float64 after a JSON round trip.
	env := EnvironmentFromMap(map[string]interface{}{
		"max_turns":         float64(5),
		"max_total_tokens":  float64(2000),
		"timeout_seconds":   float64(30),
		"tool_failure_rate": 0.25,
		"tool_latency_ms":   float64(150),
		"adversarial_turns": []interface{}{float64(1), float64(3)},
		"unknown_key":       "ignored",
	})

	assert.Equal(t, 5, env.MaxTurns)
	assert.Equal(t, 2000, env.MaxTotalTokens)
	assert.Equal(t, 30*time.Second, env.Timeout)
	assert.InDelta(t, 0.25, env.ToolFailureRate, 0.001)
	assert.Equal(t, 150*time.Millisecond, env.ToolLatency)
	assert.Equal(t, []int{1, 3}, env.AdversarialTurns)
}

func TestEnvironmentFromMapDefaults(t *testing.T) {
	assert.Equal(t, DefaultEnvironment(), EnvironmentFromMap(nil))

	env := EnvironmentFromMap(map[string]interface{}{"max_turns": 3})
	assert.Equal(t, 3, env.MaxTurns)
	assert.Equal(t, 50000, env.MaxTotalTokens, "missing keys keep defaults")
}

func TestEnvironmentMapRoundTrip(t *testing.T) {
	env := DefaultEnvironment()
	env.ToolFailureRate = 0.5
	env.AdversarialTurns = []int{2}

	restored := EnvironmentFromMap(env.ToMap())
	assert.Equal(t, env, restored)
}

func TestTurnsMapRoundTrip(t *testing.T) {
	turns := []Turn{
		{Role: RoleUser, Content: "What's the weather in Paris?"},
		{
			Role:    RoleAssistant,
			Content: "Checking now.",
			ToolCalls: []ToolCall{{
				ID:        "call_1",
				Name:      "get_weather",
				Arguments: map[string]interface{}{"city": "Paris"},
			}},
			ToolResults: []ToolResult{{
				ToolCallID: "call_1",
				Content:    `{"temperature": 72}`,
			}},
			LatencyMS:    345,
			InputTokens:  120,
			OutputTokens: 30,
		},
	}

	maps, err := TurnsToMaps(turns)
	require.NoError(t, err)
	require.Len(t, maps, 2)
	assert.Equal(t, "user", maps[0]["role"])

	restored, err := TurnsFromMaps(maps)
	require.NoError(t, err)
	assert.Equal(t, turns, restored)
}
