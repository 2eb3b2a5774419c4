package sim

import (
	"context"
	"encoding/json"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRNG() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func TestSandboxCannedResponses(t *testing.T) {
	s := NewSandbox(DefaultEnvironment(), nil, testRNG())

	result, err := s.Execute(context.Background(), ToolCall{ID: "c1", Name: "get_weather"})
	require.NoError(t, err)
	assert.Equal(t, "c1", result.ToolCallID)
	assert.False(t, result.IsError)

	var weather map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(result.Content), &weather))
	assert.Equal(t, float64(72), weather["temperature"])
	assert.Equal(t, "sunny", weather["condition"])
}

func TestSandboxSubstringMatch(t *testing.T) {
	s := NewSandbox(DefaultEnvironment(), nil, testRNG())

	// "web_search_v2" has no exact entry but contains "search".
	result, err := s.Execute(context.Background(), ToolCall{ID: "c1", Name: "web_search_v2"})
	require.NoError(t, err)
	assert.Contains(t, result.Content, "Example Result")
}

func TestSandboxDefaultAck(t *testing.T) {
	s := NewSandbox(DefaultEnvironment(), nil, testRNG())

	call := ToolCall{ID: "c1", Name: "send_email", Arguments: map[string]interface{}{"to": "a@example.com"}}
	result, err := s.Execute(context.Background(), call)
	require.NoError(t, err)

	var ack map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(result.Content), &ack))
	assert.Equal(t, "success", ack["status"])
	assert.Equal(t, "send_email", ack["tool"])
	assert.Equal(t, "Tool 'send_email' executed successfully.", ack["message"])
	input, ok := ack["input_received"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "a@example.com", input["to"])
}

func TestSandboxCustomResponses(t *testing.T) {
	custom := map[string]string{
		"get_weather":    `{"temperature": -5, "condition": "snow"}`,
		"database_query": `{"rows": []}`,
	}
	s := NewSandbox(DefaultEnvironment(), custom, testRNG())

	result, err := s.Execute(context.Background(), ToolCall{ID: "c1", Name: "get_weather"})
	require.NoError(t, err)
	assert.Contains(t, result.Content, "snow")

	result, err = s.Execute(context.Background(), ToolCall{ID: "c2", Name: "database_query"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"rows": []}`, result.Content)

	// Untouched defaults still answer.
	result, err = s.Execute(context.Background(), ToolCall{ID: "c3", Name: "run_code"})
	require.NoError(t, err)
	assert.Contains(t, result.Content, "Hello, World!")
}

func TestSandboxFailureRate(t *testing.T) {
	env := DefaultEnvironment()
	env.ToolFailureRate = 1.0
	s := NewSandbox(env, nil, testRNG())

	result, err := s.Execute(context.Background(), ToolCall{ID: "c1", Name: "get_weather"})
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.JSONEq(t, `{"error": "Tool execution failed", "message": "Simulated failure for tool 'get_weather'"}`, result.Content)

	env.ToolFailureRate = 0.0
	s = NewSandbox(env, nil, testRNG())
	for i := 0; i < 20; i++ {
		result, err := s.Execute(context.Background(), ToolCall{ID: "c1", Name: "get_weather"})
		require.NoError(t, err)
		assert.False(t, result.IsError, "failure rate 0 must never fail")
	}
}

func TestSandboxLatency(t *testing.T) {
	env := DefaultEnvironment()
	env.ToolLatency = 20 * time.Millisecond
	s := NewSandbox(env, nil, testRNG())

	started := time.Now()
	_, err := s.Execute(context.Background(), ToolCall{ID: "c1", Name: "search"})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(started), 20*time.Millisecond)
}

func TestSandboxLatencyCancelled(t *testing.T) {
	env := DefaultEnvironment()
	env.ToolLatency = 5 * time.Second
	s := NewSandbox(env, nil, testRNG())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := s.Execute(ctx, ToolCall{ID: "c1", Name: "search"})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
