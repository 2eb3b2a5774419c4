package llm

import (
	"context"
	"fmt"

	"github.com/agentprobe/agentprobe/pkg/config"
)

// defaultMaxTokens bounds completions whose request leaves MaxTokens unset.
const defaultMaxTokens = 1024

// Client is the seam between the simulation and evaluation engines and a
// concrete LLM provider.
type Client interface {
	// Complete sends one completion request and blocks until the provider
	// answers or ctx is done.
	Complete(ctx context.Context, req Request) (*Response, error)

	// Close releases any underlying connections.
	Close() error
}

// NewClient builds the provider selected by cfg. The configuration should
// already have passed config.ValidateLLM.
func NewClient(cfg config.LLMConfig) (Client, error) {
	switch cfg.Provider {
	case config.ProviderAnthropic:
		return newAnthropicClient(cfg), nil
	case config.ProviderOpenAI:
		return newOpenAIClient(cfg), nil
	case config.ProviderSidecar:
		return newSidecarClient(cfg)
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
}
