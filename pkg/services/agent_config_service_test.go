package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAgentConfigCreateAndGet(t *testing.T) {
	client, ctx := newTestClientAndCtx(t)
	svc := NewAgentConfigService(client.Client)

	temp := 0.7
	maxTokens := 2048
	created, err := svc.Create(ctx, SaveAgentConfigInput{
		Name:         "billing-agent",
		Description:  "Handles billing questions",
		ModelID:      "claude-sonnet-4-5",
		SystemPrompt: "You are a billing support agent.",
		Temperature:  &temp,
		MaxTokens:    &maxTokens,
		Tools: []map[string]interface{}{{
			"name":        "lookup_invoice",
			"description": "Look up an invoice by id",
			"parameters": map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"invoice_id": map[string]interface{}{"type": "string"},
				},
				"required": []interface{}{"invoice_id"},
			},
		}},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "billing-agent", got.Name)
	assert.Equal(t, 0.7, got.Temperature)
	assert.Equal(t, 2048, got.MaxTokens)
	require.Len(t, got.Tools, 1)
	assert.Equal(t, "lookup_invoice", got.Tools[0]["name"])
}

func TestAgentConfigValidation(t *testing.T) {
	client, ctx := newTestClientAndCtx(t)
	svc := NewAgentConfigService(client.Client)

	tests := []struct {
		name  string
		input SaveAgentConfigInput
		field string
	}{
		{
			name:  "missing name",
			input: SaveAgentConfigInput{ModelID: "m", SystemPrompt: "p"},
			field: "name",
		},
		{
			name:  "missing model",
			input: SaveAgentConfigInput{Name: "a", SystemPrompt: "p"},
			field: "model_id",
		},
		{
			name: "temperature out of range",
			input: SaveAgentConfigInput{
				Name: "a", ModelID: "m", SystemPrompt: "p",
				Temperature: floatPtr(2.5),
			},
			field: "temperature",
		},
		{
			name: "max_tokens below one",
			input: SaveAgentConfigInput{
				Name: "a", ModelID: "m", SystemPrompt: "p",
				MaxTokens: intPtr(0),
			},
			field: "max_tokens",
		},
		{
			name: "tool without name",
			input: SaveAgentConfigInput{
				Name: "a", ModelID: "m", SystemPrompt: "p",
				Tools: []map[string]interface{}{{"description": "unnamed"}},
			},
			field: "tools",
		},
		{
			name: "tool with broken schema",
			input: SaveAgentConfigInput{
				Name: "a", ModelID: "m", SystemPrompt: "p",
				Tools: []map[string]interface{}{{
					"name":       "broken",
					"parameters": map[string]interface{}{"type": "no-such-type"},
				}},
			},
			field: "tools",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tt.input)
			require.Error(t, err)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestAgentConfigDuplicateName(t *testing.T) {
	client, ctx := newTestClientAndCtx(t)
	svc := NewAgentConfigService(client.Client)

	input := SaveAgentConfigInput{
		Name:         "dup-agent",
		ModelID:      "claude-sonnet-4-5",
		SystemPrompt: "You are a support agent.",
	}
	_, err := svc.Create(ctx, input)
	require.NoError(t, err)

	_, err = svc.Create(ctx, input)
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestAgentConfigUpdate(t *testing.T) {
	client, ctx := newTestClientAndCtx(t)
	svc := NewAgentConfigService(client.Client)

	created, err := svc.Create(ctx, SaveAgentConfigInput{
		Name:         "update-agent",
		ModelID:      "claude-sonnet-4-5",
		SystemPrompt: "Original prompt.",
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, SaveAgentConfigInput{
		SystemPrompt: "Revised prompt.",
		Temperature:  floatPtr(0.3),
	})
	require.NoError(t, err)
	assert.Equal(t, "Revised prompt.", updated.SystemPrompt)
	assert.Equal(t, 0.3, updated.Temperature)
	assert.Equal(t, "claude-sonnet-4-5", updated.ModelID, "unset fields keep stored values")

	_, err = svc.Update(ctx, "missing-id", SaveAgentConfigInput{SystemPrompt: "x"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAgentConfigDelete(t *testing.T) {
	client, ctx := newTestClientAndCtx(t)
	svc := NewAgentConfigService(client.Client)

	created, err := svc.Create(ctx, SaveAgentConfigInput{
		Name:         "delete-agent",
		ModelID:      "claude-sonnet-4-5",
		SystemPrompt: "p",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))
	_, err = svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, created.ID), ErrNotFound)
}

func TestAgentConfigDeleteReferencedByRun(t *testing.T) {
	client, ctx := newTestClientAndCtx(t)
	svc := NewAgentConfigService(client.Client)

	run := seedRun(ctx, t, client, "pending")
	err := svc.Delete(ctx, run.AgentConfigID)
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestAgentConfigListPagination(t *testing.T) {
	client, ctx := newTestClientAndCtx(t)
	svc := NewAgentConfigService(client.Client)

	for i := 0; i < 3; i++ {
		seedAgentConfig(ctx, t, client)
	}

	configs, total, err := svc.List(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Len(t, configs, 2)

	configs, total, err = svc.List(ctx, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Len(t, configs, 1)

	// Out-of-range page sizes are clamped rather than rejected.
	_, _, err = svc.List(ctx, 0, 5000)
	require.NoError(t, err)
}

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }
