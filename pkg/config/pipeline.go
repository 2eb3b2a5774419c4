package config

import (
	"fmt"
	"time"
)

// PipelineConfig contains event pipeline configuration: producer and
// consumer behavior for the Postgres-backed topic queue.
type PipelineConfig struct {
	// MaxRetries is how many handler attempts a consumer makes per message
	// before dead-lettering it.
	MaxRetries int

	// PollInterval is the consumer poll timeout when no messages are
	// pending. A NOTIFY wake-up shortens the wait.
	PollInterval time.Duration

	// BackoffCap bounds the exponential retry backoff (2^attempt seconds,
	// capped here).
	BackoffCap time.Duration

	// DedupCapacity is the hard cap of the per-consumer processed-id set.
	// On overflow the older half is evicted.
	DedupCapacity int

	// FlushTimeout is the producer flush deadline used during shutdown.
	FlushTimeout time.Duration
}

// DefaultPipelineConfig returns the built-in pipeline defaults.
func DefaultPipelineConfig() *PipelineConfig {
	return &PipelineConfig{
		MaxRetries:    3,
		PollInterval:  1 * time.Second,
		BackoffCap:    30 * time.Second,
		DedupCapacity: 100000,
		FlushTimeout:  10 * time.Second,
	}
}

// LoadPipelineConfigFromEnv builds a PipelineConfig from environment
// variables, starting from the defaults.
func LoadPipelineConfigFromEnv() *PipelineConfig {
	cfg := DefaultPipelineConfig()
	cfg.MaxRetries = getEnvInt("PIPELINE_MAX_RETRIES", cfg.MaxRetries)
	cfg.PollInterval = getEnvDuration("PIPELINE_POLL_INTERVAL", cfg.PollInterval)
	cfg.BackoffCap = getEnvDuration("PIPELINE_BACKOFF_CAP", cfg.BackoffCap)
	cfg.DedupCapacity = getEnvInt("PIPELINE_DEDUP_CAPACITY", cfg.DedupCapacity)
	cfg.FlushTimeout = getEnvDuration("PIPELINE_FLUSH_TIMEOUT", cfg.FlushTimeout)
	return cfg
}

// ValidatePipeline checks pipeline configuration bounds.
func ValidatePipeline(p *PipelineConfig) error {
	if p == nil {
		return fmt.Errorf("pipeline configuration is nil")
	}
	if p.MaxRetries < 1 {
		return fmt.Errorf("max_retries must be at least 1, got %d", p.MaxRetries)
	}
	if p.PollInterval <= 0 {
		return fmt.Errorf("poll_interval must be positive, got %v", p.PollInterval)
	}
	if p.DedupCapacity < 2 {
		return fmt.Errorf("dedup_capacity must be at least 2, got %d", p.DedupCapacity)
	}
	return nil
}
