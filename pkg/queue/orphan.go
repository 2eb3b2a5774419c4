package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/agentprobe/agentprobe/ent"
	"github.com/agentprobe/agentprobe/ent/conversation"
	"github.com/agentprobe/agentprobe/ent/evalrun"
	"github.com/agentprobe/agentprobe/pkg/database"
)

// orphanState tracks orphan detection metrics (thread-safe).
type orphanState struct {
	mu               sync.Mutex
	lastOrphanScan   time.Time
	orphansRecovered int
}

// runOrphanDetection periodically scans for orphaned runs.
// All pods run this independently; operations are idempotent.
func (p *WorkerPool) runOrphanDetection(ctx context.Context) {
	ticker := time.NewTicker(p.config.OrphanDetectionInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.detectAndRecoverOrphans(ctx); err != nil {
				slog.Error("Orphan detection failed", "error", err)
			}
		}
	}
}

// detectAndRecoverOrphans finds running_simulation runs with stale heartbeats
// and marks them failed (the run status vocabulary has no timed_out state).
func (p *WorkerPool) detectAndRecoverOrphans(ctx context.Context) error {
	threshold := time.Now().Add(-p.config.OrphanThreshold)

	orphans, err := p.client.EvalRun.Query().
		Where(
			evalrun.StatusEQ(evalrun.StatusRunningSimulation),
			evalrun.LastHeartbeatAtNotNil(),
			evalrun.LastHeartbeatAtLT(threshold),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query orphaned runs: %w", err)
	}

	if len(orphans) == 0 {
		p.orphans.mu.Lock()
		p.orphans.lastOrphanScan = time.Now()
		p.orphans.mu.Unlock()
		return nil
	}

	slog.Warn("Detected orphaned runs", "count", len(orphans))

	recovered := 0
	for _, run := range orphans {
		if err := p.recoverOrphanedRun(ctx, run); err != nil {
			slog.Error("Failed to recover orphaned run",
				"eval_run_id", run.ID,
				"error", err)
			continue
		}
		recovered++
	}

	p.orphans.mu.Lock()
	p.orphans.lastOrphanScan = time.Now()
	p.orphans.orphansRecovered += recovered
	p.orphans.mu.Unlock()

	return nil
}

// recoverOrphanedRun marks a single orphaned run as failed.
func (p *WorkerPool) recoverOrphanedRun(ctx context.Context, run *ent.EvalRun) error {
	log := slog.With("eval_run_id", run.ID, "old_pod_id", run.PodID)

	now := time.Now()
	lastHeartbeat := "unknown"
	if run.LastHeartbeatAt != nil {
		lastHeartbeat = run.LastHeartbeatAt.Format(time.RFC3339)
	}

	podID := "unknown"
	if run.PodID != nil {
		podID = *run.PodID
	}

	err := run.Update().
		SetStatus(evalrun.StatusFailed).
		SetCompletedAt(now).
		SetErrorMessage(fmt.Sprintf("Orphaned: no heartbeat from pod %s since %s", podID, lastHeartbeat)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark run as failed: %w", err)
	}

	// Fail any conversation still marked running under the orphaned run
	_, _ = p.client.Conversation.Update().
		Where(
			conversation.EvalRunIDEQ(run.ID),
			conversation.StatusEQ(conversation.StatusRunning),
		).
		SetStatus(conversation.StatusFailed).
		SetErrorMessage("run orphaned before the conversation finished").
		SetCompletedAt(now).
		Save(ctx)

	log.Warn("Orphaned run marked as failed", "last_heartbeat", lastHeartbeat)
	return nil
}

// CleanupStartupOrphans performs a one-time cleanup of runs owned by this pod
// that were mid-simulation when the pod previously crashed.
// Called once during startup, before the worker pool begins processing.
func CleanupStartupOrphans(ctx context.Context, client *database.Client, podID string) error {
	orphans, err := client.EvalRun.Query().
		Where(
			evalrun.StatusEQ(evalrun.StatusRunningSimulation),
			evalrun.PodIDEQ(podID),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query startup orphans: %w", err)
	}

	if len(orphans) == 0 {
		return nil
	}

	slog.Warn("Found startup orphans from previous run",
		"pod_id", podID,
		"count", len(orphans))

	now := time.Now()
	for _, run := range orphans {
		err := run.Update().
			SetStatus(evalrun.StatusFailed).
			SetCompletedAt(now).
			SetErrorMessage(fmt.Sprintf("Orphaned: pod %s restarted while the run was mid-simulation", podID)).
			Exec(ctx)
		if err != nil {
			slog.Error("Failed to mark startup orphan",
				"eval_run_id", run.ID,
				"error", err)
			continue
		}

		// Fail conversations the crashed pod left running
		_, _ = client.Conversation.Update().
			Where(
				conversation.EvalRunIDEQ(run.ID),
				conversation.StatusEQ(conversation.StatusRunning),
			).
			SetStatus(conversation.StatusFailed).
			SetErrorMessage("run orphaned before the conversation finished").
			SetCompletedAt(now).
			Save(ctx)

		slog.Info("Startup orphan recovered", "eval_run_id", run.ID)
	}

	return nil
}
