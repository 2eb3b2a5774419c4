package config

import "time"

// RetentionConfig controls pipeline message retention and cleanup behavior.
type RetentionConfig struct {
	// MessageRetention is the maximum age of done/failed pipeline messages
	// before deletion. Keeps the broker table from growing unbounded.
	MessageRetention time.Duration

	// StuckClaimThreshold is how long a message may sit in "processing"
	// before the janitor requeues it (worker crash recovery).
	StuckClaimThreshold time.Duration

	// CleanupInterval is how often the cleanup loop runs.
	CleanupInterval time.Duration
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		MessageRetention:    72 * time.Hour,
		StuckClaimThreshold: 10 * time.Minute,
		CleanupInterval:     1 * time.Hour,
	}
}

// LoadRetentionConfigFromEnv builds a RetentionConfig from environment
// variables, starting from the defaults.
func LoadRetentionConfigFromEnv() *RetentionConfig {
	cfg := DefaultRetentionConfig()
	cfg.MessageRetention = getEnvDuration("RETENTION_MESSAGE_AGE", cfg.MessageRetention)
	cfg.StuckClaimThreshold = getEnvDuration("RETENTION_STUCK_CLAIM_THRESHOLD", cfg.StuckClaimThreshold)
	cfg.CleanupInterval = getEnvDuration("RETENTION_CLEANUP_INTERVAL", cfg.CleanupInterval)
	return cfg
}
