package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultQueueConfig(t *testing.T) {
	cfg := DefaultQueueConfig()

	assert.Equal(t, 3, cfg.WorkerCount)
	assert.Equal(t, 3, cfg.MaxConcurrentRuns)
	assert.Equal(t, 1, cfg.MaxConcurrentConversations)
	assert.Equal(t, 1*time.Second, cfg.PollInterval)
	assert.Equal(t, 500*time.Millisecond, cfg.PollIntervalJitter)
	assert.Equal(t, 30*time.Minute, cfg.RunTimeout)
	assert.Equal(t, 30*time.Minute, cfg.GracefulShutdownTimeout)
	assert.Equal(t, 30*time.Second, cfg.HeartbeatInterval)
	assert.Equal(t, 5*time.Minute, cfg.OrphanDetectionInterval)
	assert.Equal(t, 5*time.Minute, cfg.OrphanThreshold)
}

func TestValidateQueue(t *testing.T) {
	tests := []struct {
		name    string
		queue   *QueueConfig
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid defaults",
			queue:   DefaultQueueConfig(),
			wantErr: false,
		},
		{
			name:    "nil queue",
			queue:   nil,
			wantErr: true,
			errMsg:  "queue configuration is nil",
		},
		{
			name: "worker count too low",
			queue: func() *QueueConfig {
				q := DefaultQueueConfig()
				q.WorkerCount = 0
				return q
			}(),
			wantErr: true,
			errMsg:  "worker_count must be between 1 and 50",
		},
		{
			name: "worker count too high",
			queue: func() *QueueConfig {
				q := DefaultQueueConfig()
				q.WorkerCount = 51
				return q
			}(),
			wantErr: true,
			errMsg:  "worker_count must be between 1 and 50",
		},
		{
			name: "zero concurrent runs",
			queue: func() *QueueConfig {
				q := DefaultQueueConfig()
				q.MaxConcurrentRuns = 0
				return q
			}(),
			wantErr: true,
			errMsg:  "max_concurrent_runs must be at least 1",
		},
		{
			name: "zero concurrent conversations",
			queue: func() *QueueConfig {
				q := DefaultQueueConfig()
				q.MaxConcurrentConversations = 0
				return q
			}(),
			wantErr: true,
			errMsg:  "max_concurrent_conversations must be at least 1",
		},
		{
			name: "jitter not below poll interval",
			queue: func() *QueueConfig {
				q := DefaultQueueConfig()
				q.PollIntervalJitter = q.PollInterval
				return q
			}(),
			wantErr: true,
			errMsg:  "poll_interval_jitter must be in [0, poll_interval)",
		},
		{
			name: "heartbeat above orphan threshold",
			queue: func() *QueueConfig {
				q := DefaultQueueConfig()
				q.HeartbeatInterval = 10 * time.Minute
				return q
			}(),
			wantErr: true,
			errMsg:  "heartbeat_interval must be positive and below orphan_threshold",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateQueue(tt.queue)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestLoadQueueConfigFromEnv(t *testing.T) {
	t.Setenv("QUEUE_WORKER_COUNT", "7")
	t.Setenv("QUEUE_POLL_INTERVAL", "2s")
	t.Setenv("QUEUE_RUN_TIMEOUT", "not-a-duration")

	cfg := LoadQueueConfigFromEnv()

	assert.Equal(t, 7, cfg.WorkerCount)
	assert.Equal(t, 2*time.Second, cfg.PollInterval)
	// Unparseable values fall back to defaults.
	assert.Equal(t, 30*time.Minute, cfg.RunTimeout)
}
