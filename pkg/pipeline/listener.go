package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
)

// WakeListener holds a dedicated LISTEN connection on the pipeline wake
// channel and fans notifications out to registered consumers. Lost
// connections are re-established with exponential backoff; a missed
// notification only delays work until the next consumer poll.
type WakeListener struct {
	connString string
	conn       *pgx.Conn
	connMu     sync.Mutex

	subsMu sync.RWMutex
	subs   map[string][]chan struct{}

	// cancelLoop and loopDone coordinate graceful shutdown of the
	// receive loop.
	cancelLoop context.CancelFunc
	loopDone   chan struct{}
}

// NewWakeListener creates a listener for the given connection string.
func NewWakeListener(connString string) *WakeListener {
	return &WakeListener{
		connString: connString,
		subs:       make(map[string][]chan struct{}),
	}
}

// Register returns a wake channel signalled whenever an event is
// produced to topic. The channel has capacity one; concurrent signals
// coalesce.
func (l *WakeListener) Register(topic string) <-chan struct{} {
	ch := make(chan struct{}, 1)
	l.subsMu.Lock()
	l.subs[topic] = append(l.subs[topic], ch)
	l.subsMu.Unlock()
	return ch
}

// Start establishes the dedicated LISTEN connection and begins receiving
// notifications.
func (l *WakeListener) Start(ctx context.Context) error {
	conn, err := pgx.Connect(ctx, l.connString)
	if err != nil {
		return fmt.Errorf("failed to connect for LISTEN: %w", err)
	}
	if _, err := conn.Exec(ctx, "LISTEN "+pgx.Identifier{WakeChannel}.Sanitize()); err != nil {
		_ = conn.Close(ctx)
		return fmt.Errorf("LISTEN %s failed: %w", WakeChannel, err)
	}

	l.connMu.Lock()
	l.conn = conn
	l.connMu.Unlock()

	loopCtx, cancel := context.WithCancel(ctx)
	l.cancelLoop = cancel
	l.loopDone = make(chan struct{})
	go func() {
		defer close(l.loopDone)
		l.receiveLoop(loopCtx)
	}()

	slog.Info("Pipeline wake listener started")
	return nil
}

// receiveLoop waits for notifications and dispatches them. It is the
// sole goroutine that touches the pgx connection.
func (l *WakeListener) receiveLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		l.connMu.Lock()
		conn := l.conn
		l.connMu.Unlock()

		if conn == nil {
			l.reconnect(ctx)
			continue
		}

		// Short timeout keeps the loop responsive to shutdown.
		waitCtx, cancel := context.WithTimeout(ctx, 100*time.Millisecond)
		notification, err := conn.WaitForNotification(waitCtx)
		cancel()

		if err != nil {
			if ctx.Err() != nil {
				return // Context cancelled — shutting down
			}
			if waitCtx.Err() != nil {
				continue // Timeout — loop back
			}
			slog.Error("Pipeline wake receive error", "error", err)
			l.reconnect(ctx)
			continue
		}

		l.dispatch(notification.Payload)
	}
}

// dispatch signals every consumer registered for the topic named in the
// notification payload.
func (l *WakeListener) dispatch(topic string) {
	l.subsMu.RLock()
	defer l.subsMu.RUnlock()
	for _, ch := range l.subs[topic] {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// reconnect re-establishes the LISTEN connection with exponential
// backoff.
func (l *WakeListener) reconnect(ctx context.Context) {
	l.connMu.Lock()
	defer l.connMu.Unlock()

	if l.conn != nil {
		_ = l.conn.Close(ctx)
		l.conn = nil
	}

	backoff := time.Second
	for {
		select {
		case <-ctx.Done():
			return
		case <-time.After(backoff):
		}

		conn, err := pgx.Connect(ctx, l.connString)
		if err != nil {
			slog.Error("Wake listener reconnect failed", "error", err, "backoff", backoff)
			backoff = min(backoff*2, 30*time.Second)
			continue
		}
		if _, err := conn.Exec(ctx, "LISTEN "+pgx.Identifier{WakeChannel}.Sanitize()); err != nil {
			slog.Error("Re-LISTEN failed", "channel", WakeChannel, "error", err)
			_ = conn.Close(ctx)
			backoff = min(backoff*2, 30*time.Second)
			continue
		}

		l.conn = conn
		slog.Info("Pipeline wake listener reconnected")
		return
	}
}

// Stop signals the receive loop to exit, waits for it to finish, then
// closes the LISTEN connection.
func (l *WakeListener) Stop(ctx context.Context) {
	if l.cancelLoop != nil {
		l.cancelLoop()
	}
	if l.loopDone != nil {
		<-l.loopDone
	}

	l.connMu.Lock()
	defer l.connMu.Unlock()
	if l.conn != nil {
		_ = l.conn.Close(ctx)
		l.conn = nil
	}
}
