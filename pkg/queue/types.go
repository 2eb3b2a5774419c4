// Package queue provides the worker pool that executes evaluation runs.
//
// Pending runs are claimed from PostgreSQL with FOR UPDATE SKIP LOCKED so
// any number of replicas can poll the same table without double-claiming.
// A claimed run is simulated by the RunExecutor; scoring and aggregation
// happen afterwards on the event pipeline, so successful execution leaves
// the run in running_evaluation rather than a terminal state.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/agentprobe/agentprobe/ent"
	"github.com/agentprobe/agentprobe/ent/evalrun"
)

// Sentinel errors for queue operations.
var (
	// ErrNoRunsAvailable indicates no pending runs are in the queue.
	ErrNoRunsAvailable = errors.New("no runs available")

	// ErrAtCapacity indicates the global concurrent run limit has been reached.
	ErrAtCapacity = errors.New("at capacity")
)

// RunExecutor is the interface for the simulation phase of a run.
//
// The executor owns that phase internally:
//   - Loads the run's agent config and scenario
//   - Simulates every conversation, persisting each one as it finishes
//   - Emits conversation.completed events best-effort
//
// Results are written PROGRESSIVELY during execution, not at the end.
// The worker only handles: claiming, heartbeat, and moving the run out of
// running_simulation when the executor returns.
type RunExecutor interface {
	Execute(ctx context.Context, run *ent.EvalRun) *ExecutionResult
}

// ExecutionResult carries only the outcome of the simulation phase. All
// conversation rows and completion events were already written by the
// executor while it ran.
type ExecutionResult struct {
	Status evalrun.Status // running_evaluation, failed, cancelled
	Error  error          // Error details (if failed/cancelled)
}

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy        bool           `json:"is_healthy"`
	DBReachable      bool           `json:"db_reachable"`
	DBError          string         `json:"db_error,omitempty"`
	PodID            string         `json:"pod_id"`
	ActiveWorkers    int            `json:"active_workers"`
	TotalWorkers     int            `json:"total_workers"`
	ActiveRuns       int            `json:"active_runs"`
	MaxConcurrent    int            `json:"max_concurrent"`
	QueueDepth       int            `json:"queue_depth"`
	WorkerStats      []WorkerHealth `json:"worker_stats"`
	LastOrphanScan   time.Time      `json:"last_orphan_scan"`
	OrphansRecovered int            `json:"orphans_recovered"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID            string    `json:"id"`
	Status        string    `json:"status"` // "idle" or "working"
	CurrentRunID  string    `json:"current_run_id,omitempty"`
	RunsProcessed int       `json:"runs_processed"`
	LastActivity  time.Time `json:"last_activity"`
}
