package config

import "fmt"

// LLM provider identifiers accepted by the client factory.
const (
	ProviderAnthropic = "anthropic"
	ProviderOpenAI    = "openai"
	ProviderSidecar   = "sidecar"
)

// LLMConfig selects and configures the chat-completion provider used by
// the simulation and evaluation engines.
type LLMConfig struct {
	// Provider is one of "anthropic", "openai", or "sidecar".
	Provider string

	// APIKey authenticates against the hosted provider. Unused by the
	// sidecar provider.
	APIKey string

	// BaseURL overrides the provider endpoint (OpenAI-compatible
	// gateways, proxies). Empty uses the provider default.
	BaseURL string

	// SidecarAddr is the gRPC address of the local inference sidecar,
	// used when Provider is "sidecar".
	SidecarAddr string

	// DefaultModel is used when an agent config omits model_id.
	DefaultModel string

	// JudgeModel is the model evaluators use for judging.
	JudgeModel string

	// UserSimulatorModel is the model the user simulator uses when the
	// scenario persona omits one.
	UserSimulatorModel string
}

// LoadLLMConfigFromEnv builds an LLMConfig from environment variables.
func LoadLLMConfigFromEnv() *LLMConfig {
	defaultModel := getEnvOrDefault("LLM_DEFAULT_MODEL", "claude-sonnet-4-5")
	return &LLMConfig{
		Provider:           getEnvOrDefault("LLM_PROVIDER", ProviderAnthropic),
		APIKey:             getEnvOrDefault("LLM_API_KEY", ""),
		BaseURL:            getEnvOrDefault("LLM_BASE_URL", ""),
		SidecarAddr:        getEnvOrDefault("LLM_SIDECAR_ADDR", "localhost:50051"),
		DefaultModel:       defaultModel,
		JudgeModel:         getEnvOrDefault("LLM_JUDGE_MODEL", defaultModel),
		UserSimulatorModel: getEnvOrDefault("LLM_USER_SIMULATOR_MODEL", defaultModel),
	}
}

// ValidateLLM checks provider selection and required credentials.
func ValidateLLM(l *LLMConfig) error {
	if l == nil {
		return fmt.Errorf("llm configuration is nil")
	}
	switch l.Provider {
	case ProviderAnthropic, ProviderOpenAI:
		if l.APIKey == "" {
			return fmt.Errorf("LLM_API_KEY is required for provider %q", l.Provider)
		}
	case ProviderSidecar:
		if l.SidecarAddr == "" {
			return fmt.Errorf("LLM_SIDECAR_ADDR is required for provider %q", l.Provider)
		}
	default:
		return fmt.Errorf("unknown LLM provider %q (expected anthropic, openai, or sidecar)", l.Provider)
	}
	return nil
}
