package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPipelineConfig(t *testing.T) {
	cfg := DefaultPipelineConfig()

	assert.Equal(t, 3, cfg.MaxRetries)
	assert.Equal(t, 1*time.Second, cfg.PollInterval)
	assert.Equal(t, 30*time.Second, cfg.BackoffCap)
	assert.Equal(t, 100000, cfg.DedupCapacity)
	assert.Equal(t, 10*time.Second, cfg.FlushTimeout)
}

func TestValidatePipeline(t *testing.T) {
	tests := []struct {
		name     string
		pipeline *PipelineConfig
		wantErr  bool
		errMsg   string
	}{
		{
			name:     "valid defaults",
			pipeline: DefaultPipelineConfig(),
			wantErr:  false,
		},
		{
			name:     "nil pipeline",
			pipeline: nil,
			wantErr:  true,
			errMsg:   "pipeline configuration is nil",
		},
		{
			name: "zero retries",
			pipeline: func() *PipelineConfig {
				p := DefaultPipelineConfig()
				p.MaxRetries = 0
				return p
			}(),
			wantErr: true,
			errMsg:  "max_retries must be at least 1",
		},
		{
			name: "dedup capacity too small",
			pipeline: func() *PipelineConfig {
				p := DefaultPipelineConfig()
				p.DedupCapacity = 1
				return p
			}(),
			wantErr: true,
			errMsg:  "dedup_capacity must be at least 2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePipeline(tt.pipeline)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidateLLM(t *testing.T) {
	tests := []struct {
		name    string
		llm     *LLMConfig
		wantErr bool
	}{
		{
			name:    "anthropic with key",
			llm:     &LLMConfig{Provider: ProviderAnthropic, APIKey: "sk-test"},
			wantErr: false,
		},
		{
			name:    "anthropic without key",
			llm:     &LLMConfig{Provider: ProviderAnthropic},
			wantErr: true,
		},
		{
			name:    "sidecar with addr",
			llm:     &LLMConfig{Provider: ProviderSidecar, SidecarAddr: "localhost:50051"},
			wantErr: false,
		},
		{
			name:    "unknown provider",
			llm:     &LLMConfig{Provider: "bedrock"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLLM(tt.llm)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
