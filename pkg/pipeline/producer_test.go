package pipeline

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentprobe/agentprobe/pkg/metrics"
)

func TestProduceRejectsUnknownTopic(t *testing.T) {
	p := NewProducer(nil, metrics.New(prometheus.NewRegistry()))
	defer p.Close(0)

	env := &Envelope{Version: EnvelopeVersion, EventType: "x", Payload: map[string]interface{}{}}
	err := p.Produce(t.Context(), "unknown.topic", env, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no consumer groups")
}

func TestProduceRejectsUnserializablePayload(t *testing.T) {
	p := NewProducer(nil, metrics.New(prometheus.NewRegistry()))
	defer p.Close(0)

	env := &Envelope{
		Version:   EnvelopeVersion,
		EventType: TopicConversationCompleted,
		Payload:   map[string]interface{}{"bad": make(chan int)},
	}
	err := p.Produce(t.Context(), TopicConversationCompleted, env, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "serialize")
	assert.Zero(t, p.Flush(10*time.Millisecond), "rejected events must not stay queued")
}

func TestProduceAfterClose(t *testing.T) {
	p := NewProducer(nil, metrics.New(prometheus.NewRegistry()))
	p.Close(0)

	env := NewConversationCompletedEvent("run-1", "conv-1", 1, 10, 5, "completed")
	err := p.Produce(t.Context(), TopicConversationCompleted, env, "conv-1")
	assert.ErrorIs(t, err, ErrProducerClosed)
}

func TestFlushIdleProducer(t *testing.T) {
	p := NewProducer(nil, metrics.New(prometheus.NewRegistry()))
	defer p.Close(0)

	assert.Zero(t, p.Flush(10*time.Millisecond))
}

func TestProducerCloseTwice(t *testing.T) {
	p := NewProducer(nil, metrics.New(prometheus.NewRegistry()))
	assert.Zero(t, p.Close(0))
	assert.Zero(t, p.Close(0))
}

func TestSharedProducerSingleton(t *testing.T) {
	ResetSharedProducer()
	defer ResetSharedProducer()

	p1 := SharedProducer(nil, metrics.New(prometheus.NewRegistry()))
	p2 := SharedProducer(nil, nil)
	assert.Same(t, p1, p2)
}

func TestResetSharedProducerDiscardsInstance(t *testing.T) {
	ResetSharedProducer()

	p1 := SharedProducer(nil, metrics.New(prometheus.NewRegistry()))
	ResetSharedProducer()
	p2 := SharedProducer(nil, metrics.New(prometheus.NewRegistry()))
	defer ResetSharedProducer()

	assert.NotSame(t, p1, p2)
}
