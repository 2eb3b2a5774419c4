package queue

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/agentprobe/agentprobe/ent"
	"github.com/agentprobe/agentprobe/ent/conversation"
	"github.com/agentprobe/agentprobe/ent/evalrun"
	"github.com/agentprobe/agentprobe/pkg/config"
	"github.com/agentprobe/agentprobe/pkg/database"
	testdb "github.com/agentprobe/agentprobe/test/database"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createTestRun creates a pending eval run with its agent config and scenario.
func createTestRun(ctx context.Context, t *testing.T, client *database.Client) *ent.EvalRun {
	t.Helper()

	agentCfg, err := client.AgentConfig.Create().
		SetID(uuid.New().String()).
		SetName("test-agent-" + uuid.New().String()).
		SetModelID("claude-sonnet-4-5").
		SetSystemPrompt("You are a helpful support agent.").
		Save(ctx)
	require.NoError(t, err)

	scenario, err := client.Scenario.Create().
		SetID(uuid.New().String()).
		SetName("test-scenario-" + uuid.New().String()).
		SetGoal("Get a refund for order #1234").
		Save(ctx)
	require.NoError(t, err)

	run, err := client.EvalRun.Create().
		SetID(uuid.New().String()).
		SetAgentConfigID(agentCfg.ID).
		SetScenarioID(scenario.ID).
		SetNumConversations(1).
		SetStatus(evalrun.StatusPending).
		Save(ctx)
	require.NoError(t, err)
	return run
}

// intTestQueueConfig returns a queue config suitable for integration tests.
func intTestQueueConfig() *config.QueueConfig {
	return &config.QueueConfig{
		WorkerCount:                2,
		MaxConcurrentRuns:          10,
		MaxConcurrentConversations: 1,
		PollInterval:               100 * time.Millisecond,
		PollIntervalJitter:         0,
		RunTimeout:                 30 * time.Second,
		GracefulShutdownTimeout:    10 * time.Second,
		HeartbeatInterval:          30 * time.Second,
		OrphanDetectionInterval:    1 * time.Second,
		OrphanThreshold:            2 * time.Second,
	}
}

// awaitCondition polls until condition returns true or the timeout elapses.
func awaitCondition(t *testing.T, timeout, interval time.Duration, msg string, condition func() bool) {
	t.Helper()
	deadline := time.After(timeout)
	for {
		select {
		case <-deadline:
			t.Fatalf("timed out: %s", msg)
		default:
			if condition() {
				return
			}
			time.Sleep(interval)
		}
	}
}

// TestForUpdateSkipLockedClaiming tests that a worker can atomically claim a pending run.
func TestForUpdateSkipLockedClaiming(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	// Create a pending run
	run := createTestRun(ctx, t, client)

	// Create worker and claim
	cfg := intTestQueueConfig()
	w := NewWorker("test-worker-0", "test-pod", client, cfg, nil, nil)

	claimed, err := w.claimNextRun(ctx)
	require.NoError(t, err)
	require.NotNil(t, claimed, "worker should claim the pending run")
	assert.Equal(t, run.ID, claimed.ID)
	assert.Equal(t, evalrun.StatusRunningSimulation, claimed.Status)
	require.NotNil(t, claimed.PodID)
	assert.Equal(t, "test-pod", *claimed.PodID)
	require.NotNil(t, claimed.StartedAt)
	require.NotNil(t, claimed.LastHeartbeatAt)

	// Second claim should return ErrNoRunsAvailable
	claimed2, err := w.claimNextRun(ctx)
	assert.ErrorIs(t, err, ErrNoRunsAvailable)
	assert.Nil(t, claimed2, "no more pending runs should be available")
}

// TestConcurrentClaimsDifferentRuns tests that concurrent workers claim different runs.
func TestConcurrentClaimsDifferentRuns(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	// Create multiple pending runs
	runIDs := make(map[string]struct{})
	for i := 0; i < 5; i++ {
		r := createTestRun(ctx, t, client)
		runIDs[r.ID] = struct{}{}
	}

	// Spawn multiple workers concurrently
	cfg := intTestQueueConfig()
	var mu sync.Mutex
	claimed := make([]string, 0, 5)
	errCh := make(chan error, 5)
	var wg sync.WaitGroup

	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			w := NewWorker(fmt.Sprintf("worker-%d", workerID), "test-pod", client, cfg, nil, nil)
			run, err := w.claimNextRun(ctx)
			if err != nil {
				errCh <- fmt.Errorf("worker-%d claim failed: %w", workerID, err)
				return
			}
			if run != nil {
				mu.Lock()
				claimed = append(claimed, run.ID)
				mu.Unlock()
			} else {
				errCh <- fmt.Errorf("worker-%d got nil run without error", workerID)
			}
		}(i)
	}
	wg.Wait()
	close(errCh)

	// Check for errors from goroutines
	for err := range errCh {
		require.NoError(t, err)
	}

	// All 5 runs should be claimed, each by exactly one worker (no duplicates)
	assert.Len(t, claimed, 5, "all 5 runs should be claimed")

	// Verify no duplicates
	seen := make(map[string]struct{})
	for _, id := range claimed {
		_, dup := seen[id]
		assert.False(t, dup, "run %s claimed by multiple workers", id)
		seen[id] = struct{}{}
	}

	// All claimed runs should be from the original set
	for _, id := range claimed {
		_, ok := runIDs[id]
		assert.True(t, ok, "claimed run %s was not in original set", id)
	}
}

// TestOrphanRecovery tests that orphaned runs are detected and recovered.
func TestOrphanRecovery(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	// Create a run that simulates a crash (running_simulation with old heartbeat)
	run := createTestRun(ctx, t, client)
	staleBeat := time.Now().Add(-10 * time.Minute) // Way past orphan threshold
	run, err := run.Update().
		SetStatus(evalrun.StatusRunningSimulation).
		SetPodID("crashed-pod").
		SetLastHeartbeatAt(staleBeat).
		Save(ctx)
	require.NoError(t, err)

	// The crashed pod also left a conversation mid-flight
	conv, err := client.Conversation.Create().
		SetID(uuid.New().String()).
		SetEvalRunID(run.ID).
		SetSequence(0).
		SetStatus(conversation.StatusRunning).
		Save(ctx)
	require.NoError(t, err)

	// Run orphan detection
	cfg := intTestQueueConfig()
	cfg.OrphanThreshold = 1 * time.Second // Very short for test

	pool := &WorkerPool{
		podID:  "test-pod",
		client: client,
		config: cfg,
	}

	err = pool.detectAndRecoverOrphans(ctx)
	require.NoError(t, err)

	// Verify run is now failed with an orphan message
	updated, err := client.EvalRun.Get(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, evalrun.StatusFailed, updated.Status)
	require.NotNil(t, updated.ErrorMessage)
	assert.Contains(t, *updated.ErrorMessage, "Orphaned: no heartbeat from pod crashed-pod")

	// Verify the in-flight conversation was failed too
	updatedConv, err := client.Conversation.Get(ctx, conv.ID)
	require.NoError(t, err)
	assert.Equal(t, conversation.StatusFailed, updatedConv.Status)

	// Verify orphan metrics tracked
	pool.orphans.mu.Lock()
	assert.Equal(t, 1, pool.orphans.orphansRecovered)
	pool.orphans.mu.Unlock()
}

// TestStartupOrphanCleanup tests the one-time startup orphan cleanup.
func TestStartupOrphanCleanup(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	podID := "startup-test-pod"

	// Create runs that belong to this pod
	for i := 0; i < 3; i++ {
		r := createTestRun(ctx, t, client)
		_, err := r.Update().
			SetStatus(evalrun.StatusRunningSimulation).
			SetPodID(podID).
			Save(ctx)
		require.NoError(t, err)
	}

	// Also create a run for a different pod (should not be affected)
	other := createTestRun(ctx, t, client)
	other, err := other.Update().
		SetStatus(evalrun.StatusRunningSimulation).
		SetPodID("other-pod").
		Save(ctx)
	require.NoError(t, err)

	// Run startup cleanup
	err = CleanupStartupOrphans(ctx, client, podID)
	require.NoError(t, err)

	// Verify this pod's runs are failed
	runs, err := client.EvalRun.Query().
		Where(evalrun.PodID(podID)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 3)
	for _, r := range runs {
		assert.Equal(t, evalrun.StatusFailed, r.Status, "run %s should be failed", r.ID)
		require.NotNil(t, r.ErrorMessage)
		assert.Contains(t, *r.ErrorMessage, "restarted while the run was mid-simulation")
	}

	// Verify other pod's run is untouched
	updated, err := client.EvalRun.Get(ctx, other.ID)
	require.NoError(t, err)
	assert.Equal(t, evalrun.StatusRunningSimulation, updated.Status, "other pod's run should be untouched")
}

// mockExecutor counts executions and tracks which runs were processed.
type mockExecutor struct {
	processed  atomic.Int64
	runs       sync.Map // string → struct{}
	inProgress atomic.Int64
	releaseCh  chan struct{} // optional: blocks execution until closed
}

func (m *mockExecutor) Execute(ctx context.Context, run *ent.EvalRun) *ExecutionResult {
	m.processed.Add(1)
	if run != nil {
		m.runs.Store(run.ID, struct{}{})
	}

	// Track in-progress runs
	m.inProgress.Add(1)
	defer m.inProgress.Add(-1)

	// If releaseCh is set, block until it's closed (for deterministic tests)
	if m.releaseCh != nil {
		select {
		case <-m.releaseCh:
			// Released, continue
		case <-ctx.Done():
			return &ExecutionResult{
				Status: evalrun.StatusCancelled,
				Error:  ctx.Err(),
			}
		}
	} else {
		// Default behavior: simulate short processing
		select {
		case <-time.After(50 * time.Millisecond):
		case <-ctx.Done():
			return &ExecutionResult{
				Status: evalrun.StatusCancelled,
				Error:  ctx.Err(),
			}
		}
	}

	return &ExecutionResult{
		Status: evalrun.StatusRunningEvaluation,
	}
}

// TestPoolEndToEndWithMockExecutor tests the full worker pool lifecycle.
func TestPoolEndToEndWithMockExecutor(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	// Create pending runs
	for i := 0; i < 3; i++ {
		createTestRun(ctx, t, client)
	}

	// Create pool with mock executor
	cfg := intTestQueueConfig()
	cfg.WorkerCount = 2
	cfg.PollInterval = 50 * time.Millisecond

	executor := &mockExecutor{}
	pool := NewWorkerPool("test-pod", client, cfg, executor)

	err := pool.Start(ctx)
	require.NoError(t, err)

	// Wait for runs to be processed
	awaitCondition(t, 10*time.Second, 100*time.Millisecond,
		fmt.Sprintf("waiting for runs to be processed, processed: %d", executor.processed.Load()),
		func() bool { return executor.processed.Load() >= 3 })

	// Stop the pool gracefully
	pool.Stop()

	// All runs should have moved to the evaluation phase
	runs, err := client.EvalRun.Query().
		Where(evalrun.StatusEQ(evalrun.StatusRunningEvaluation)).
		All(ctx)
	require.NoError(t, err)
	assert.Len(t, runs, 3, "all 3 runs should be in running_evaluation")

	// Health should show all workers
	health := pool.Health()
	assert.Equal(t, 2, health.TotalWorkers)
}

// TestCapacityLimits tests that the global max concurrent limit is enforced.
func TestCapacityLimits(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	// Create multiple pending runs
	for i := 0; i < 5; i++ {
		createTestRun(ctx, t, client)
	}

	// Configure pool: use 2 workers matching MaxConcurrentRuns to avoid races
	cfg := intTestQueueConfig()
	cfg.WorkerCount = 2
	cfg.MaxConcurrentRuns = 2 // Global limit
	cfg.PollInterval = 50 * time.Millisecond
	cfg.OrphanDetectionInterval = 1 * time.Hour // Disable orphan detection during test

	// Mock executor with release channel for deterministic control
	releaseCh := make(chan struct{})
	executor := &mockExecutor{
		releaseCh: releaseCh,
	}
	pool := NewWorkerPool("test-pod", client, cfg, executor)

	err := pool.Start(ctx)
	require.NoError(t, err)

	// Wait until exactly MaxConcurrentRuns runs are in progress
	awaitCondition(t, 5*time.Second, 10*time.Millisecond,
		fmt.Sprintf("waiting for %d runs in progress, got: %d", cfg.MaxConcurrentRuns, executor.inProgress.Load()),
		func() bool { return executor.inProgress.Load() == int64(cfg.MaxConcurrentRuns) })

	// Give the system a moment to stabilize
	time.Sleep(100 * time.Millisecond)

	// Verify exactly MaxConcurrentRuns are in progress (no races with 2 workers)
	assert.Equal(t, int64(cfg.MaxConcurrentRuns), executor.inProgress.Load(),
		"should have exactly MaxConcurrentRuns in progress")

	// Verify the database also shows MaxConcurrentRuns in running_simulation
	dbInProgress, err := client.EvalRun.Query().
		Where(evalrun.StatusEQ(evalrun.StatusRunningSimulation)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, cfg.MaxConcurrentRuns, dbInProgress, "DB should show MaxConcurrentRuns in running_simulation")

	// Release executions to complete
	close(releaseCh)

	// Wait for first batch to complete
	awaitCondition(t, 5*time.Second, 10*time.Millisecond,
		fmt.Sprintf("waiting for first batch to complete, in_progress: %d", executor.inProgress.Load()),
		func() bool { return executor.inProgress.Load() == 0 })

	// Workers should now claim remaining runs (3 more)
	// Wait for all 5 runs to be processed
	awaitCondition(t, 5*time.Second, 50*time.Millisecond,
		fmt.Sprintf("waiting for all runs to be processed, processed: %d", executor.processed.Load()),
		func() bool { return executor.processed.Load() >= 5 })

	// Stop the pool
	pool.Stop()

	// Verify all 5 runs reached the evaluation phase
	evalCount, err := client.EvalRun.Query().
		Where(evalrun.StatusEQ(evalrun.StatusRunningEvaluation)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, evalCount, "all 5 runs should reach running_evaluation")
}

// TestHeartbeatUpdates tests that heartbeats refresh last_heartbeat_at.
func TestHeartbeatUpdates(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	// Create a pending run
	run := createTestRun(ctx, t, client)

	// Configure pool with short heartbeat interval and blocking executor
	cfg := intTestQueueConfig()
	cfg.WorkerCount = 1
	cfg.PollInterval = 50 * time.Millisecond
	cfg.HeartbeatInterval = 100 * time.Millisecond // Short interval for testing

	// Mock executor that blocks until released (to keep the run in progress)
	releaseCh := make(chan struct{})
	executor := &mockExecutor{
		releaseCh: releaseCh,
	}
	pool := NewWorkerPool("test-pod", client, cfg, executor)

	err := pool.Start(ctx)
	require.NoError(t, err)

	// Wait for run to be claimed
	awaitCondition(t, 5*time.Second, 10*time.Millisecond,
		"waiting for run to be claimed",
		func() bool {
			r, err := client.EvalRun.Get(ctx, run.ID)
			require.NoError(t, err)
			return r.Status == evalrun.StatusRunningSimulation && r.LastHeartbeatAt != nil
		})

	// Get initial last_heartbeat_at
	r1, err := client.EvalRun.Get(ctx, run.ID)
	require.NoError(t, err)
	require.Equal(t, evalrun.StatusRunningSimulation, r1.Status)
	require.NotNil(t, r1.LastHeartbeatAt)
	initialTime := *r1.LastHeartbeatAt

	// Wait for at least one heartbeat to occur (heartbeat interval is 100ms)
	time.Sleep(250 * time.Millisecond)

	// Get updated last_heartbeat_at
	r2, err := client.EvalRun.Get(ctx, run.ID)
	require.NoError(t, err)
	require.Equal(t, evalrun.StatusRunningSimulation, r2.Status, "run should still be in progress")
	require.NotNil(t, r2.LastHeartbeatAt)

	// Verify heartbeat actually updated the timestamp
	assert.True(t, r2.LastHeartbeatAt.After(initialTime), "last_heartbeat_at should be updated by heartbeat")

	// Release executor and stop pool
	close(releaseCh)
	pool.Stop()
}

// TestFinalizeRunKeepsCancelledStatus tests that the worker's final update
// does not overwrite a run the API already moved to cancelled.
func TestFinalizeRunKeepsCancelledStatus(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	run := createTestRun(ctx, t, client)

	cfg := intTestQueueConfig()
	w := NewWorker("test-worker-0", "test-pod", client, cfg, nil, nil)

	claimed, err := w.claimNextRun(ctx)
	require.NoError(t, err)

	// Simulate the API cancelling the run while the executor was working
	_, err = claimed.Update().
		SetStatus(evalrun.StatusCancelled).
		SetCompletedAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)

	// The worker's finalize must not overwrite the cancelled status
	err = w.finalizeRun(ctx, claimed, &ExecutionResult{
		Status: evalrun.StatusFailed,
		Error:  fmt.Errorf("late failure"),
	})
	require.NoError(t, err)

	updated, err := client.EvalRun.Get(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, evalrun.StatusCancelled, updated.Status)
	assert.Nil(t, updated.ErrorMessage)
}

// nilExecutor returns a nil *ExecutionResult for testing the nil-guard.
type nilExecutor struct {
	blockUntilCtxDone bool
	processed         atomic.Int64
}

func (e *nilExecutor) Execute(ctx context.Context, _ *ent.EvalRun) *ExecutionResult {
	e.processed.Add(1)
	if e.blockUntilCtxDone {
		<-ctx.Done()
	}
	return nil
}

// TestNilExecutionResultGuard tests that a nil *ExecutionResult from
// RunExecutor.Execute does not panic and is translated into the correct
// terminal status.
func TestNilExecutionResultGuard(t *testing.T) {
	t.Run("nil result without context error marks run failed", func(t *testing.T) {
		client := testdb.NewTestClient(t)
		ctx := context.Background()

		run := createTestRun(ctx, t, client)

		cfg := intTestQueueConfig()
		cfg.WorkerCount = 1
		cfg.PollInterval = 50 * time.Millisecond

		executor := &nilExecutor{blockUntilCtxDone: false}
		pool := NewWorkerPool("test-pod", client, cfg, executor)

		require.NoError(t, pool.Start(ctx))

		// Wait for processing
		awaitCondition(t, 5*time.Second, 50*time.Millisecond,
			"waiting for run to be processed",
			func() bool { return executor.processed.Load() >= 1 })

		pool.Stop()

		updated, err := client.EvalRun.Get(ctx, run.ID)
		require.NoError(t, err)
		assert.Equal(t, evalrun.StatusFailed, updated.Status)
		require.NotNil(t, updated.ErrorMessage)
		assert.Contains(t, *updated.ErrorMessage, "executor returned nil result")
	})

	t.Run("nil result with deadline exceeded marks run failed with timeout", func(t *testing.T) {
		client := testdb.NewTestClient(t)
		ctx := context.Background()

		run := createTestRun(ctx, t, client)

		cfg := intTestQueueConfig()
		cfg.WorkerCount = 1
		cfg.PollInterval = 50 * time.Millisecond
		cfg.RunTimeout = 200 * time.Millisecond

		executor := &nilExecutor{blockUntilCtxDone: true}
		pool := NewWorkerPool("test-pod", client, cfg, executor)

		require.NoError(t, pool.Start(ctx))

		// Wait for processing (must exceed the 200ms timeout)
		awaitCondition(t, 5*time.Second, 50*time.Millisecond,
			"waiting for run to be processed",
			func() bool { return executor.processed.Load() >= 1 })

		// Give the worker time to persist the terminal status
		time.Sleep(100 * time.Millisecond)
		pool.Stop()

		updated, err := client.EvalRun.Get(ctx, run.ID)
		require.NoError(t, err)
		assert.Equal(t, evalrun.StatusFailed, updated.Status)
		require.NotNil(t, updated.ErrorMessage)
		assert.Contains(t, *updated.ErrorMessage, "timed out")
		assert.Contains(t, *updated.ErrorMessage, "200ms")
	})

	t.Run("nil result with cancellation marks run cancelled", func(t *testing.T) {
		client := testdb.NewTestClient(t)
		ctx := context.Background()

		run := createTestRun(ctx, t, client)

		cfg := intTestQueueConfig()
		cfg.WorkerCount = 1
		cfg.PollInterval = 50 * time.Millisecond
		cfg.RunTimeout = 30 * time.Second // Long timeout so cancellation wins

		executor := &nilExecutor{blockUntilCtxDone: true}
		pool := NewWorkerPool("test-pod", client, cfg, executor)

		require.NoError(t, pool.Start(ctx))

		// Wait for run to be claimed (running_simulation)
		awaitCondition(t, 5*time.Second, 10*time.Millisecond,
			"waiting for run to be claimed",
			func() bool {
				r, err := client.EvalRun.Get(ctx, run.ID)
				require.NoError(t, err)
				return r.Status == evalrun.StatusRunningSimulation
			})

		// Cancel the run via the pool (simulates API-triggered cancellation)
		cancelled := pool.CancelRun(run.ID)
		require.True(t, cancelled, "CancelRun should find the active run")

		// Wait for the executor to finish and status to be persisted
		awaitCondition(t, 5*time.Second, 50*time.Millisecond,
			"waiting for run to reach terminal status",
			func() bool {
				r, err := client.EvalRun.Get(ctx, run.ID)
				require.NoError(t, err)
				return r.Status == evalrun.StatusCancelled
			})

		pool.Stop()

		updated, err := client.EvalRun.Get(ctx, run.ID)
		require.NoError(t, err)
		assert.Equal(t, evalrun.StatusCancelled, updated.Status)
	})
}
