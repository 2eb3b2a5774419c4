// Package cleanup provides the pipeline janitor: retention for finished
// broker rows and crash recovery for stuck claims.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/agentprobe/agentprobe/ent"
	"github.com/agentprobe/agentprobe/ent/pipelinemessage"
	"github.com/agentprobe/agentprobe/pkg/config"
)

// Service periodically enforces retention policies:
//   - Deletes done/failed pipeline messages past their retention age
//   - Requeues messages stuck in processing (worker crash recovery)
//
// All operations are idempotent and safe to run from multiple pods.
type Service struct {
	config *config.RetentionConfig
	client *ent.Client

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(cfg *config.RetentionConfig, client *ent.Client) *Service {
	if cfg == nil {
		cfg = config.DefaultRetentionConfig()
	}
	return &Service{
		config: cfg,
		client: client,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"message_retention", s.config.MessageRetention,
		"stuck_claim_threshold", s.config.StuckClaimThreshold,
		"interval", s.config.CleanupInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.runAll(ctx)

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

func (s *Service) runAll(ctx context.Context) {
	s.purgeFinishedMessages(ctx)
	s.requeueStuckClaims(ctx)
}

// purgeFinishedMessages deletes done and failed pipeline messages older
// than the retention age. Failed rows are the dead letter queue; operators
// inspect them within the retention window.
func (s *Service) purgeFinishedMessages(ctx context.Context) {
	cutoff := time.Now().Add(-s.config.MessageRetention)
	count, err := s.client.PipelineMessage.Delete().
		Where(
			pipelinemessage.StatusIn(pipelinemessage.StatusDone, pipelinemessage.StatusFailed),
			pipelinemessage.UpdatedAtLT(cutoff),
		).
		Exec(ctx)
	if err != nil {
		slog.Error("Retention: purge finished messages failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: purged finished pipeline messages", "count", count)
	}
}

// requeueStuckClaims returns messages stuck in processing to pending. A
// claim only stays in processing past the threshold when its worker died
// between claiming and finishing.
func (s *Service) requeueStuckClaims(ctx context.Context) {
	cutoff := time.Now().Add(-s.config.StuckClaimThreshold)
	count, err := s.client.PipelineMessage.Update().
		Where(
			pipelinemessage.StatusEQ(pipelinemessage.StatusProcessing),
			pipelinemessage.UpdatedAtLT(cutoff),
		).
		SetStatus(pipelinemessage.StatusPending).
		Save(ctx)
	if err != nil {
		slog.Error("Retention: requeue stuck claims failed", "error", err)
		return
	}
	if count > 0 {
		slog.Warn("Retention: requeued stuck pipeline messages", "count", count)
	}
}
