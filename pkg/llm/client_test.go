package llm

import (
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/agentprobe/agentprobe/pkg/config"
)

func TestNewClient(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.LLMConfig
		wantErr bool
	}{
		{
			name: "anthropic provider",
			cfg: config.LLMConfig{
				Provider:     config.ProviderAnthropic,
				APIKey:       "test-key",
				DefaultModel: "claude-sonnet-4-5",
			},
		},
		{
			name: "openai provider",
			cfg: config.LLMConfig{
				Provider:     config.ProviderOpenAI,
				APIKey:       "test-key",
				DefaultModel: "gpt-4o",
			},
		},
		{
			name: "sidecar provider connects lazily",
			cfg: config.LLMConfig{
				Provider:     config.ProviderSidecar,
				SidecarAddr:  "localhost:50051",
				DefaultModel: "claude-sonnet-4-5",
			},
		},
		{
			name:    "unknown provider",
			cfg:     config.LLMConfig{Provider: "gemini"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(tt.cfg)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "unknown LLM provider")
				return
			}
			require.NoError(t, err)
			require.NotNil(t, client)
			assert.NoError(t, client.Close())
		})
	}
}

func TestConvertOpenAIMessages(t *testing.T) {
	messages := []Message{
		{Role: RoleUser, Content: "What is the weather in Paris?"},
		{
			Role:    RoleAssistant,
			Content: "Let me check.",
			ToolCalls: []ToolCall{
				{ID: "call_1", Name: "get_weather", Arguments: map[string]interface{}{"city": "Paris"}},
			},
		},
		{Role: RoleTool, Content: `{"temperature":72}`, ToolCallID: "call_1", ToolName: "get_weather"},
	}

	out := convertOpenAIMessages(messages, "You are a weather assistant.")
	require.Len(t, out, 4)

	assert.Equal(t, openai.ChatMessageRoleSystem, out[0].Role)
	assert.Equal(t, "You are a weather assistant.", out[0].Content)

	assert.Equal(t, openai.ChatMessageRoleUser, out[1].Role)

	require.Len(t, out[2].ToolCalls, 1)
	assert.Equal(t, "call_1", out[2].ToolCalls[0].ID)
	assert.Equal(t, "get_weather", out[2].ToolCalls[0].Function.Name)
	assert.JSONEq(t, `{"city":"Paris"}`, out[2].ToolCalls[0].Function.Arguments)

	assert.Equal(t, openai.ChatMessageRoleTool, out[3].Role)
	assert.Equal(t, "call_1", out[3].ToolCallID)
}

func TestConvertAnthropicMessagesMergesToolResults(t *testing.T) {
	messages := []Message{
		{Role: RoleUser, Content: "Check two cities."},
		{
			Role: RoleAssistant,
			ToolCalls: []ToolCall{
				{ID: "call_1", Name: "get_weather", Arguments: map[string]interface{}{"city": "Paris"}},
				{ID: "call_2", Name: "get_weather", Arguments: map[string]interface{}{"city": "Lyon"}},
			},
		},
		{Role: RoleTool, Content: `{"temperature":72}`, ToolCallID: "call_1"},
		{Role: RoleTool, Content: `{"temperature":65}`, ToolCallID: "call_2"},
	}

	out := convertAnthropicMessages(messages)

	// Two tool results collapse into a single user message so roles alternate.
	require.Len(t, out, 3)
	assert.Len(t, out[1].Content, 2)
	assert.Len(t, out[2].Content, 2)
}

func TestConvertAnthropicMessagesSkipsSystem(t *testing.T) {
	messages := []Message{
		{Role: RoleSystem, Content: "carried separately"},
		{Role: RoleUser, Content: "hello"},
	}

	out := convertAnthropicMessages(messages)
	require.Len(t, out, 1)
}

func TestEncodeSidecarRequest(t *testing.T) {
	req := Request{
		System:      "Be helpful.",
		Messages:    []Message{{Role: RoleUser, Content: "hi"}},
		Temperature: 0.7,
		Tools: []ToolSchema{
			{
				Name:        "search",
				Description: "Search the web",
				Parameters:  map[string]interface{}{"type": "object"},
			},
		},
		ForceTool: "search",
	}

	encoded := encodeSidecarRequest(req, "claude-sonnet-4-5")

	assert.Equal(t, "claude-sonnet-4-5", encoded["model"])
	assert.Equal(t, defaultMaxTokens, encoded["max_tokens"])
	assert.Equal(t, "search", encoded["force_tool"])

	// The encoded request must be representable as a protobuf Struct.
	_, err := structpb.NewStruct(encoded)
	require.NoError(t, err)
}

func TestDecodeSidecarResponse(t *testing.T) {
	resp := decodeSidecarResponse(map[string]interface{}{
		"content":     "Here you go.",
		"stop_reason": "tool_use",
		"usage": map[string]interface{}{
			"input_tokens":  float64(120),
			"output_tokens": float64(48),
		},
		"tool_calls": []interface{}{
			map[string]interface{}{
				"id":        "call_9",
				"name":      "run_code",
				"arguments": map[string]interface{}{"code": "print(1)"},
			},
		},
	})

	assert.Equal(t, "Here you go.", resp.Content)
	assert.Equal(t, "tool_use", resp.StopReason)
	assert.Equal(t, 120, resp.Usage.InputTokens)
	assert.Equal(t, 48, resp.Usage.OutputTokens)
	require.Len(t, resp.ToolCalls, 1)
	assert.Equal(t, "run_code", resp.ToolCalls[0].Name)
	assert.Equal(t, map[string]interface{}{"code": "print(1)"}, resp.ToolCalls[0].Arguments)
}
