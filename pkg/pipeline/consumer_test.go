package pipeline

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"

	"github.com/agentprobe/agentprobe/pkg/metrics"
)

func TestRetryBackoff(t *testing.T) {
	assert.Equal(t, 2*time.Second, retryBackoff(1))
	assert.Equal(t, 4*time.Second, retryBackoff(2))
	assert.Equal(t, 8*time.Second, retryBackoff(3))
	assert.Equal(t, 16*time.Second, retryBackoff(4))
	assert.Equal(t, 30*time.Second, retryBackoff(5))
	assert.Equal(t, 30*time.Second, retryBackoff(20))
}

func TestNewConsumerDefaults(t *testing.T) {
	c := NewConsumer(nil, nil, metrics.New(prometheus.NewRegistry()), ConsumerConfig{
		Topic: TopicConversationCompleted,
		Group: GroupEvaluationEngine,
	})

	assert.Equal(t, TopicConversationCompleted, c.topic)
	assert.Equal(t, GroupEvaluationEngine, c.group)
	assert.Equal(t, defaultMaxRetries, c.maxRetries)
	assert.Equal(t, defaultPollInterval, c.pollInterval)
	assert.Equal(t, dedupCapacity, c.processed.capacity)
}

func TestConsumerWaitForWorkWake(t *testing.T) {
	wake := make(chan struct{}, 1)
	c := NewConsumer(nil, nil, metrics.New(prometheus.NewRegistry()), ConsumerConfig{
		Topic:        TopicConversationCompleted,
		Group:        GroupEvaluationEngine,
		PollInterval: time.Minute,
		Wake:         wake,
	})

	wake <- struct{}{}
	start := time.Now()
	c.waitForWork()
	assert.Less(t, time.Since(start), time.Second, "wake signal should preempt the poll interval")
}

func TestConsumerWaitForWorkStop(t *testing.T) {
	c := NewConsumer(nil, nil, metrics.New(prometheus.NewRegistry()), ConsumerConfig{
		Topic:        TopicConversationCompleted,
		Group:        GroupEvaluationEngine,
		PollInterval: time.Minute,
	})

	c.stopOnce.Do(func() { close(c.stopCh) })
	start := time.Now()
	c.waitForWork()
	assert.Less(t, time.Since(start), time.Second, "stop should preempt the poll interval")
}
