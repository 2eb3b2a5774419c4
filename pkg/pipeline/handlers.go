package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/agentprobe/agentprobe/ent"
	"github.com/agentprobe/agentprobe/ent/conversation"
	"github.com/agentprobe/agentprobe/ent/evalrun"
	"github.com/agentprobe/agentprobe/ent/evaluation"
	"github.com/agentprobe/agentprobe/ent/metric"
	"github.com/agentprobe/agentprobe/pkg/database"
	"github.com/agentprobe/agentprobe/pkg/metrics"
	"github.com/agentprobe/agentprobe/pkg/stats"
)

// ConversationEvaluator runs the evaluation engine against one finished
// conversation. Implemented by the evaluation service.
type ConversationEvaluator interface {
	EvaluateConversation(ctx context.Context, conversationID string) error
}

// evaluableStatuses are the terminal conversation statuses that carry a
// scoreable transcript. Failed conversations have nothing to judge and
// are skipped.
var evaluableStatuses = []conversation.Status{
	conversation.StatusCompleted,
	conversation.StatusGoalAchieved,
	conversation.StatusFrustrated,
}

func isEvaluableStatus(status string) bool {
	for _, s := range evaluableStatuses {
		if status == string(s) {
			return true
		}
	}
	return false
}

// NewConversationCompletedConsumer returns the evaluation-engine group
// consumer. Conversations that produced a transcript are dispatched to
// the evaluator; failed ones are skipped.
func NewConversationCompletedConsumer(client *database.Client, producer *Producer, m *metrics.Metrics, evaluator ConversationEvaluator, wake <-chan struct{}) *Consumer {
	return NewConsumer(client, producer, m, ConsumerConfig{
		Topic:   TopicConversationCompleted,
		Group:   GroupEvaluationEngine,
		Wake:    wake,
		Handler: ConversationCompletedHandler(evaluator),
	})
}

// ConversationCompletedHandler dispatches finished conversations for
// evaluation. Goal achievement and frustration are judged just like a
// max-turns completion.
func ConversationCompletedHandler(evaluator ConversationEvaluator) Handler {
	return func(ctx context.Context, envelope *Envelope) error {
		conversationID := envelope.StringField("conversation_id")
		status := envelope.StringField("status")

		if !isEvaluableStatus(status) {
			slog.Debug("Skipping conversation with nothing to evaluate",
				"conversation_id", conversationID, "status", status)
			return nil
		}
		if conversationID == "" {
			return fmt.Errorf("conversation.completed event missing conversation_id")
		}

		slog.Info("Conversation completed event received", "conversation_id", conversationID)
		return evaluator.EvaluateConversation(ctx, conversationID)
	}
}

// NewEvaluationScoreConsumer returns the metrics-aggregator group
// consumer. Once every completed conversation in a run has at least one
// evaluation, per-name metrics are aggregated and published.
func NewEvaluationScoreConsumer(client *database.Client, producer *Producer, m *metrics.Metrics, wake <-chan struct{}) *Consumer {
	return NewConsumer(client, producer, m, ConsumerConfig{
		Topic:   TopicEvaluationScoreCompleted,
		Group:   GroupMetricsAggregator,
		Wake:    wake,
		Handler: EvaluationScoreHandler(client, producer),
	})
}

// EvaluationScoreHandler checks whether the run is fully evaluated and,
// when it is, aggregates and publishes its metrics.
func EvaluationScoreHandler(client *database.Client, producer *Producer) Handler {
	return func(ctx context.Context, envelope *Envelope) error {
		evalRunID := envelope.StringField("eval_run_id")
		if evalRunID == "" {
			return nil
		}
		return aggregateRunMetrics(ctx, client, producer, evalRunID)
	}
}

// aggregateRunMetrics publishes one metrics.aggregated event per metric
// name once every evaluable conversation in the run is evaluated. The
// completion check and metric load share one transaction so the counts
// are a consistent snapshot. Evaluations on failed conversations (a
// human can record one) do not count toward completion.
func aggregateRunMetrics(ctx context.Context, client *database.Client, producer *Producer, evalRunID string) error {
	tx, err := client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin aggregation transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	total, err := tx.Conversation.Query().
		Where(
			conversation.EvalRunIDEQ(evalRunID),
			conversation.StatusIn(evaluableStatuses...),
		).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count evaluable conversations: %w", err)
	}

	evaluatedIDs, err := tx.Evaluation.Query().
		Where(
			evaluation.EvalRunIDEQ(evalRunID),
			evaluation.HasConversationWith(conversation.StatusIn(evaluableStatuses...)),
		).
		Unique(true).
		Select(evaluation.FieldConversationID).
		Strings(ctx)
	if err != nil {
		return fmt.Errorf("failed to count evaluated conversations: %w", err)
	}

	if len(evaluatedIDs) < total {
		slog.Debug("Run not fully evaluated yet",
			"eval_run_id", evalRunID, "evaluated", len(evaluatedIDs), "total", total)
		return nil
	}

	rows, err := tx.Metric.Query().
		Where(metric.EvalRunIDEQ(evalRunID)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to load run metrics: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit aggregation read: %w", err)
	}

	slog.Info("Aggregating run metrics",
		"eval_run_id", evalRunID, "conversation_count", total, "metric_rows", len(rows))

	values := make(map[string][]float64)
	names := make([]string, 0)
	for _, row := range rows {
		if _, ok := values[row.Name]; !ok {
			names = append(names, row.Name)
		}
		values[row.Name] = append(values[row.Name], row.Value)
	}

	// Publish failures surface in logs only; the handler is not retried
	// for them.
	for _, name := range names {
		agg := stats.AggregateMetricValues(name, values[name])
		if err := producer.Produce(ctx, TopicMetricsAggregated, NewMetricsAggregatedEvent(evalRunID, agg), evalRunID); err != nil {
			slog.Error("Failed to publish aggregated metric",
				"eval_run_id", evalRunID, "metric_name", name, "error", err)
		}
	}
	if remaining := producer.Flush(5 * time.Second); remaining > 0 {
		slog.Error("Aggregated metric publish incomplete",
			"eval_run_id", evalRunID, "undelivered", remaining)
	}
	return nil
}

// NewMetricsAggregatedConsumer returns the run-finalizer group consumer.
// A fully aggregated run is marked completed.
func NewMetricsAggregatedConsumer(client *database.Client, producer *Producer, m *metrics.Metrics, wake <-chan struct{}) *Consumer {
	return NewConsumer(client, producer, m, ConsumerConfig{
		Topic:   TopicMetricsAggregated,
		Group:   GroupRunFinalizer,
		Wake:    wake,
		Handler: MetricsAggregatedHandler(client),
	})
}

// MetricsAggregatedHandler marks the run completed unless it already
// reached a terminal status.
func MetricsAggregatedHandler(client *database.Client) Handler {
	return func(ctx context.Context, envelope *Envelope) error {
		evalRunID := envelope.StringField("eval_run_id")
		if evalRunID == "" {
			return nil
		}

		run, err := client.EvalRun.Get(ctx, evalRunID)
		if err != nil {
			if ent.IsNotFound(err) {
				slog.Warn("Eval run not found", "eval_run_id", evalRunID)
				return nil
			}
			return fmt.Errorf("failed to load eval run %s: %w", evalRunID, err)
		}

		switch run.Status {
		case evalrun.StatusCompleted, evalrun.StatusFailed, evalrun.StatusCancelled:
			return nil
		}

		if _, err := client.EvalRun.UpdateOne(run).
			SetStatus(evalrun.StatusCompleted).
			SetCompletedAt(time.Now()).
			Save(ctx); err != nil {
			return fmt.Errorf("failed to mark eval run %s completed: %w", evalRunID, err)
		}
		slog.Info("Eval run completed", "eval_run_id", evalRunID)
		return nil
	}
}
