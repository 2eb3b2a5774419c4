package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"

	"github.com/agentprobe/agentprobe/ent"
	"github.com/agentprobe/agentprobe/ent/pipelinemessage"
	"github.com/agentprobe/agentprobe/pkg/database"
	"github.com/agentprobe/agentprobe/pkg/metrics"
)

// Handler processes one deserialized envelope. A nil return marks the
// message done; an error triggers retries and eventually the dead letter
// queue.
type Handler func(ctx context.Context, envelope *Envelope) error

// Consumer defaults.
const (
	defaultMaxRetries   = 3
	defaultPollInterval = time.Second
	maxRetryBackoff     = 30 * time.Second
)

// errNoMessages signals an empty poll.
var errNoMessages = errors.New("no pending messages")

// ConsumerConfig configures a pipeline consumer.
type ConsumerConfig struct {
	// Topic and Group select the rows this consumer claims.
	Topic string
	Group string
	// Handler processes each envelope.
	Handler Handler
	// MaxRetries bounds handler attempts per message (default 3).
	MaxRetries int
	// PollInterval is the idle wait between empty polls (default 1s).
	PollInterval time.Duration
	// Wake optionally shortens idle waits; WakeListener.Register
	// supplies it. Nil means pure polling.
	Wake <-chan struct{}
	// DedupCapacity overrides the processed-id set bound (default 100000).
	DedupCapacity int
}

// Consumer claims and processes pipeline messages for one (topic, group)
// pair. A single goroutine owns the claim loop, so messages are handled
// one at a time in insertion order. Delivery is at-least-once: the
// processed-id set deduplicates redeliveries within the process only.
type Consumer struct {
	client   *database.Client
	producer *Producer
	metrics  *metrics.Metrics

	topic        string
	group        string
	handler      Handler
	maxRetries   int
	pollInterval time.Duration
	wake         <-chan struct{}
	processed    *dedupSet

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewConsumer creates a consumer. Start must be called to begin
// processing.
func NewConsumer(client *database.Client, producer *Producer, m *metrics.Metrics, cfg ConsumerConfig) *Consumer {
	if m == nil {
		m = metrics.Default()
	}
	maxRetries := cfg.MaxRetries
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}
	pollInterval := cfg.PollInterval
	if pollInterval <= 0 {
		pollInterval = defaultPollInterval
	}
	return &Consumer{
		client:       client,
		producer:     producer,
		metrics:      m,
		topic:        cfg.Topic,
		group:        cfg.Group,
		handler:      cfg.Handler,
		maxRetries:   maxRetries,
		pollInterval: pollInterval,
		wake:         cfg.Wake,
		processed:    newDedupSet(cfg.DedupCapacity),
		stopCh:       make(chan struct{}),
	}
}

// Start begins the claim loop in a goroutine.
func (c *Consumer) Start(ctx context.Context) {
	c.wg.Add(1)
	go c.run(ctx)
}

// Stop signals the loop to exit and waits for in-flight work to finish.
// Safe to call multiple times.
func (c *Consumer) Stop() {
	c.stopOnce.Do(func() { close(c.stopCh) })
	c.wg.Wait()
}

// run is the main claim loop.
func (c *Consumer) run(ctx context.Context) {
	defer c.wg.Done()

	log := slog.With("topic", c.topic, "group", c.group)
	log.Info("Pipeline consumer started")

	for {
		select {
		case <-c.stopCh:
			log.Info("Pipeline consumer shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, pipeline consumer shutting down")
			return
		default:
			if err := c.pollAndProcess(ctx); err != nil {
				if errors.Is(err, errNoMessages) {
					c.waitForWork()
					continue
				}
				if ctx.Err() != nil {
					continue
				}
				log.Error("Error processing pipeline message", "error", err)
				c.sleep(time.Second) // Brief backoff on claim errors
			}
		}
	}
}

// waitForWork blocks until new work is signalled, the poll interval
// elapses, or shutdown begins. A nil wake channel never fires, leaving
// polling alone to drive the loop.
func (c *Consumer) waitForWork() {
	timer := time.NewTimer(c.pollInterval)
	defer timer.Stop()
	select {
	case <-c.stopCh:
	case <-c.wake:
	case <-timer.C:
	}
}

// sleep waits for d or until stop is signalled.
func (c *Consumer) sleep(d time.Duration) {
	select {
	case <-c.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess claims the next pending message and runs it through the
// handler.
func (c *Consumer) pollAndProcess(ctx context.Context) error {
	msg, err := c.claimNext(ctx)
	if err != nil {
		return err
	}
	c.process(ctx, msg)
	return nil
}

// claimNext atomically claims the oldest pending message for this topic
// and group using FOR UPDATE SKIP LOCKED.
func (c *Consumer) claimNext(ctx context.Context) (*ent.PipelineMessage, error) {
	tx, err := c.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin claim transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	msg, err := tx.PipelineMessage.Query().
		Where(
			pipelinemessage.TopicEQ(c.topic),
			pipelinemessage.ConsumerGroupEQ(c.group),
			pipelinemessage.StatusEQ(pipelinemessage.StatusPending),
		).
		Order(ent.Asc(pipelinemessage.FieldID)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, errNoMessages
		}
		return nil, fmt.Errorf("failed to query pending messages: %w", err)
	}

	claimed, err := tx.PipelineMessage.UpdateOne(msg).
		SetStatus(pipelinemessage.StatusProcessing).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim message %d: %w", msg.ID, err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}
	return claimed, nil
}

// process runs one claimed message to a terminal row status.
func (c *Consumer) process(ctx context.Context, msg *ent.PipelineMessage) {
	log := slog.With("topic", c.topic, "group", c.group, "message_id", msg.ID)

	envelope, err := DeserializeEnvelope([]byte(msg.Value))
	if err != nil {
		log.Error("Dropping malformed pipeline message", "error", err)
		c.finish(msg, pipelinemessage.StatusFailed, 0, err.Error())
		c.metrics.MessageConsumed(c.topic, c.group, "malformed")
		return
	}

	eventID := envelope.EventID()
	if eventID != "" && c.processed.Contains(eventID) {
		log.Debug("Skipping duplicate event", "event_id", eventID)
		c.finish(msg, pipelinemessage.StatusDone, 0, "")
		c.metrics.MessageDeduplicated(c.topic, c.group)
		return
	}

	var lastErr error
	for attempt := 1; attempt <= c.maxRetries; attempt++ {
		lastErr = c.handler(ctx, envelope)
		if lastErr == nil {
			if eventID != "" {
				c.processed.Add(eventID)
			}
			c.finish(msg, pipelinemessage.StatusDone, attempt, "")
			c.metrics.MessageConsumed(c.topic, c.group, "done")
			return
		}
		if ctx.Err() != nil {
			// Shutdown mid-handler: requeue instead of counting the
			// interrupted attempt as a real failure.
			c.requeue(msg, attempt-1, lastErr)
			return
		}
		log.Warn("Event handler failed",
			"attempt", attempt, "max_retries", c.maxRetries, "error", lastErr)
		if attempt < c.maxRetries {
			c.metrics.MessageRetried(c.topic, c.group)
			if !c.backoff(attempt) {
				c.requeue(msg, attempt, lastErr)
				return
			}
		}
	}

	c.deadLetter(ctx, msg.Value)
	c.finish(msg, pipelinemessage.StatusFailed, c.maxRetries,
		fmt.Sprintf("Max retries exhausted: %v", lastErr))
	c.metrics.MessageConsumed(c.topic, c.group, "failed")
}

// backoff sleeps before the next attempt, returning false if shutdown
// was signalled during the wait.
func (c *Consumer) backoff(attempt int) bool {
	select {
	case <-c.stopCh:
		return false
	case <-time.After(retryBackoff(attempt)):
		return true
	}
}

// retryBackoff returns min(2^attempt, 30) seconds.
func retryBackoff(attempt int) time.Duration {
	if attempt >= 5 {
		return maxRetryBackoff
	}
	return min(time.Duration(1<<attempt)*time.Second, maxRetryBackoff)
}

// finish records a terminal status for the claimed row. Uses a fresh
// context so the update lands even when the loop context is cancelled.
func (c *Consumer) finish(msg *ent.PipelineMessage, status pipelinemessage.Status, attempts int, lastError string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := c.client.PipelineMessage.UpdateOne(msg).
		SetStatus(status).
		SetAttempts(attempts)
	if lastError != "" {
		update = update.SetLastError(lastError)
	}
	if _, err := update.Save(ctx); err != nil {
		slog.Error("Failed to update pipeline message status",
			"message_id", msg.ID, "status", status, "error", err)
	}
}

// requeue returns a claimed message to pending so it is redelivered
// after restart.
func (c *Consumer) requeue(msg *ent.PipelineMessage, attempts int, lastErr error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := c.client.PipelineMessage.UpdateOne(msg).
		SetStatus(pipelinemessage.StatusPending).
		SetAttempts(attempts)
	if lastErr != nil {
		update = update.SetLastError(lastErr.Error())
	}
	if _, err := update.Save(ctx); err != nil {
		slog.Error("Failed to requeue pipeline message",
			"message_id", msg.ID, "error", err)
	}
}

// deadLetter forwards an exhausted message to the pipeline.errors topic.
func (c *Consumer) deadLetter(ctx context.Context, originalValue string) {
	if c.producer == nil {
		return
	}
	envelope := NewDeadLetterEvent(c.topic, "Max retries exhausted", originalValue)
	if err := c.producer.Produce(ctx, TopicPipelineErrors, envelope, ""); err != nil {
		slog.Error("Failed to dead-letter message",
			"topic", c.topic, "group", c.group, "error", err)
		return
	}
	c.metrics.MessageDeadLettered(c.topic, c.group)
	slog.Error("Message dead-lettered after exhausting retries",
		"topic", c.topic, "group", c.group)
}
