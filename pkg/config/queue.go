package config

import (
	"fmt"
	"time"
)

// QueueConfig contains run queue and worker pool configuration.
// These values control how pending eval runs are polled, claimed, and
// executed.
type QueueConfig struct {
	// WorkerCount is the number of worker goroutines per replica/pod.
	// Each worker independently polls and executes runs.
	WorkerCount int

	// MaxConcurrentRuns is the global limit of runs being simulated
	// across ALL replicas/pods. Enforced by database COUNT(*) check.
	MaxConcurrentRuns int

	// MaxConcurrentConversations bounds how many of a run's conversations
	// are simulated in parallel. 1 means strictly sequential.
	MaxConcurrentConversations int

	// PollInterval is the base interval for checking pending runs.
	PollInterval time.Duration

	// PollIntervalJitter is the random jitter added to PollInterval.
	// Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration

	// RunTimeout is the maximum time a run's simulation phase may take.
	RunTimeout time.Duration

	// GracefulShutdownTimeout is the max time to wait for active runs
	// to complete during shutdown. Should match RunTimeout.
	GracefulShutdownTimeout time.Duration

	// HeartbeatInterval is how often a worker refreshes the claimed run's
	// last_heartbeat_at for orphan detection.
	HeartbeatInterval time.Duration

	// OrphanDetectionInterval is how often to scan for orphaned runs.
	OrphanDetectionInterval time.Duration

	// OrphanThreshold is how long a run can go without a heartbeat
	// before it is considered orphaned.
	OrphanThreshold time.Duration
}

// DefaultQueueConfig returns the built-in queue defaults.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		WorkerCount:                3,
		MaxConcurrentRuns:          3,
		MaxConcurrentConversations: 1,
		PollInterval:               1 * time.Second,
		PollIntervalJitter:         500 * time.Millisecond,
		RunTimeout:                 30 * time.Minute,
		GracefulShutdownTimeout:    30 * time.Minute,
		HeartbeatInterval:          30 * time.Second,
		OrphanDetectionInterval:    5 * time.Minute,
		OrphanThreshold:            5 * time.Minute,
	}
}

// LoadQueueConfigFromEnv builds a QueueConfig from environment variables,
// starting from the defaults.
func LoadQueueConfigFromEnv() *QueueConfig {
	cfg := DefaultQueueConfig()
	cfg.WorkerCount = getEnvInt("QUEUE_WORKER_COUNT", cfg.WorkerCount)
	cfg.MaxConcurrentRuns = getEnvInt("QUEUE_MAX_CONCURRENT_RUNS", cfg.MaxConcurrentRuns)
	cfg.MaxConcurrentConversations = getEnvInt("QUEUE_MAX_CONCURRENT_CONVERSATIONS", cfg.MaxConcurrentConversations)
	cfg.PollInterval = getEnvDuration("QUEUE_POLL_INTERVAL", cfg.PollInterval)
	cfg.PollIntervalJitter = getEnvDuration("QUEUE_POLL_INTERVAL_JITTER", cfg.PollIntervalJitter)
	cfg.RunTimeout = getEnvDuration("QUEUE_RUN_TIMEOUT", cfg.RunTimeout)
	cfg.GracefulShutdownTimeout = getEnvDuration("QUEUE_GRACEFUL_SHUTDOWN_TIMEOUT", cfg.GracefulShutdownTimeout)
	cfg.HeartbeatInterval = getEnvDuration("QUEUE_HEARTBEAT_INTERVAL", cfg.HeartbeatInterval)
	cfg.OrphanDetectionInterval = getEnvDuration("QUEUE_ORPHAN_DETECTION_INTERVAL", cfg.OrphanDetectionInterval)
	cfg.OrphanThreshold = getEnvDuration("QUEUE_ORPHAN_THRESHOLD", cfg.OrphanThreshold)
	return cfg
}

// ValidateQueue checks queue configuration bounds.
func ValidateQueue(q *QueueConfig) error {
	if q == nil {
		return fmt.Errorf("queue configuration is nil")
	}
	if q.WorkerCount < 1 || q.WorkerCount > 50 {
		return fmt.Errorf("worker_count must be between 1 and 50, got %d", q.WorkerCount)
	}
	if q.MaxConcurrentRuns < 1 {
		return fmt.Errorf("max_concurrent_runs must be at least 1, got %d", q.MaxConcurrentRuns)
	}
	if q.MaxConcurrentConversations < 1 {
		return fmt.Errorf("max_concurrent_conversations must be at least 1, got %d", q.MaxConcurrentConversations)
	}
	if q.PollInterval <= 0 {
		return fmt.Errorf("poll_interval must be positive, got %v", q.PollInterval)
	}
	if q.PollIntervalJitter < 0 || q.PollIntervalJitter >= q.PollInterval {
		return fmt.Errorf("poll_interval_jitter must be in [0, poll_interval), got %v", q.PollIntervalJitter)
	}
	if q.RunTimeout <= 0 {
		return fmt.Errorf("run_timeout must be positive, got %v", q.RunTimeout)
	}
	if q.HeartbeatInterval <= 0 || q.HeartbeatInterval >= q.OrphanThreshold {
		return fmt.Errorf("heartbeat_interval must be positive and below orphan_threshold, got %v", q.HeartbeatInterval)
	}
	return nil
}
