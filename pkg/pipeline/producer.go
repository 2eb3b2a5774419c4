package pipeline

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/agentprobe/agentprobe/pkg/metrics"
)

// produceQueueSize bounds the in-flight delivery queue.
const produceQueueSize = 1024

// ErrProducerClosed is returned by Produce after Close.
var ErrProducerClosed = errors.New("pipeline: producer closed")

// queuedMessage is one serialized envelope awaiting delivery.
type queuedMessage struct {
	topic string
	key   string
	value string
}

// Producer publishes event envelopes to the pipeline_messages table.
// Produce enqueues; a single background goroutine delivers messages in
// publication order, inserting one row per registered consumer group and
// firing a NOTIFY on the wake channel in the same transaction. Delivery
// failures surface in logs only, never to the producing caller.
//
// Safe for concurrent use.
type Producer struct {
	db      *sql.DB
	metrics *metrics.Metrics

	queue       chan queuedMessage
	outstanding atomic.Int64
	closed      atomic.Bool

	cancelLoop context.CancelFunc
	loopDone   chan struct{}
}

// NewProducer creates a producer and starts its delivery loop.
// m may be nil, in which case the default metrics registry is used.
func NewProducer(db *sql.DB, m *metrics.Metrics) *Producer {
	if m == nil {
		m = metrics.Default()
	}
	loopCtx, cancel := context.WithCancel(context.Background())
	p := &Producer{
		db:         db,
		metrics:    m,
		queue:      make(chan queuedMessage, produceQueueSize),
		cancelLoop: cancel,
		loopDone:   make(chan struct{}),
	}
	go p.deliveryLoop(loopCtx)
	return p
}

// Produce enqueues an envelope for delivery to every consumer group
// registered for the topic. The key records the partition key
// (conversation or run id). Produce returns once the message is queued;
// delivery happens asynchronously.
func (p *Producer) Produce(ctx context.Context, topic string, envelope *Envelope, key string) error {
	if p.closed.Load() {
		return ErrProducerClosed
	}
	if len(topicGroups[topic]) == 0 {
		return fmt.Errorf("no consumer groups registered for topic %q", topic)
	}
	value, err := envelope.Serialize()
	if err != nil {
		return err
	}

	p.outstanding.Add(1)
	select {
	case p.queue <- queuedMessage{topic: topic, key: key, value: string(value)}:
		return nil
	case <-ctx.Done():
		p.outstanding.Add(-1)
		return fmt.Errorf("enqueue cancelled for topic %s: %w", topic, ctx.Err())
	}
}

// Flush blocks until every queued message is delivered or the timeout
// elapses, returning the number still undelivered.
func (p *Producer) Flush(timeout time.Duration) int {
	deadline := time.Now().Add(timeout)
	for {
		remaining := p.outstanding.Load()
		if remaining == 0 || time.Now().After(deadline) {
			return int(remaining)
		}
		time.Sleep(10 * time.Millisecond)
	}
}

// Close rejects further Produce calls, drains the queue bounded by
// timeout, and stops the delivery loop. It returns the number of
// messages dropped undelivered. Safe to call more than once.
func (p *Producer) Close(timeout time.Duration) int {
	if p.closed.Swap(true) {
		<-p.loopDone
		return 0
	}
	remaining := p.Flush(timeout)
	if remaining > 0 {
		slog.Warn("Closing producer with undelivered events", "count", remaining)
	}
	p.cancelLoop()
	<-p.loopDone
	return remaining
}

// deliveryLoop drains the queue one message at a time, preserving
// publication order.
func (p *Producer) deliveryLoop(ctx context.Context) {
	defer close(p.loopDone)
	for {
		select {
		case <-ctx.Done():
			return
		case m := <-p.queue:
			p.deliver(ctx, m)
			p.outstanding.Add(-1)
		}
	}
}

// deliver inserts one row per consumer group and fires the wake NOTIFY
// in a single transaction. pg_notify is transactional, so consumers are
// only woken once the rows are visible.
func (p *Producer) deliver(ctx context.Context, m queuedMessage) {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		p.deliveryFailed(m, fmt.Errorf("failed to begin transaction: %w", err))
		return
	}
	defer func() { _ = tx.Rollback() }()

	var key any
	if m.key != "" {
		key = m.key
	}
	now := time.Now()
	for _, group := range topicGroups[m.topic] {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO pipeline_messages (topic, consumer_group, key, value, status, attempts, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, 'pending', 0, $5, $5)`,
			m.topic, group, key, m.value, now,
		); err != nil {
			p.deliveryFailed(m, fmt.Errorf("failed to insert message for group %s: %w", group, err))
			return
		}
	}

	if _, err := tx.ExecContext(ctx, "SELECT pg_notify($1, $2)", WakeChannel, m.topic); err != nil {
		p.deliveryFailed(m, fmt.Errorf("pg_notify failed: %w", err))
		return
	}
	if err := tx.Commit(); err != nil {
		p.deliveryFailed(m, fmt.Errorf("failed to commit delivery: %w", err))
		return
	}

	p.metrics.MessageProduced(m.topic)
}

// deliveryFailed drops the message and records the failure. Producing
// callers never fail because an event could not be delivered.
func (p *Producer) deliveryFailed(m queuedMessage, err error) {
	slog.Error("Event delivery failed", "topic", m.topic, "key", m.key, "error", err)
}

var (
	sharedMu       sync.Mutex
	sharedProducer *Producer
)

// SharedProducer returns the process-wide producer, creating it on first
// call. Later calls ignore the arguments and return the existing
// instance.
func SharedProducer(db *sql.DB, m *metrics.Metrics) *Producer {
	sharedMu.Lock()
	defer sharedMu.Unlock()
	if sharedProducer == nil {
		sharedProducer = NewProducer(db, m)
	}
	return sharedProducer
}

// ResetSharedProducer flushes (best effort, 2s) and discards the
// process-wide producer so tests can rebuild it against a fresh database.
func ResetSharedProducer() {
	sharedMu.Lock()
	defer sharedMu.Unlock()
	if sharedProducer != nil {
		if remaining := sharedProducer.Close(2 * time.Second); remaining > 0 {
			slog.Warn("Discarded undelivered events on producer reset", "count", remaining)
		}
		sharedProducer = nil
	}
}
