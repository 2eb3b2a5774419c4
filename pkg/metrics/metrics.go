// Package metrics holds the Prometheus instrumentation for the platform:
// pipeline message counters, simulation outcomes, and evaluation outcomes.
// Handlers expose them through the /metrics endpoint.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics bundles the platform counters. Production code shares the
// Default() instance; tests build isolated instances with New.
type Metrics struct {
	// MessagesProduced counts pipeline messages written to the broker
	// table. Labels: topic.
	MessagesProduced *prometheus.CounterVec

	// MessagesConsumed counts handler outcomes per claimed message.
	// Labels: topic, group, status (ok|error).
	MessagesConsumed *prometheus.CounterVec

	// MessagesRetried counts handler retries after a failed attempt.
	// Labels: topic, group.
	MessagesRetried *prometheus.CounterVec

	// MessagesDeadLettered counts messages routed to pipeline.errors after
	// retry exhaustion. Labels: topic, group.
	MessagesDeadLettered *prometheus.CounterVec

	// MessagesDeduplicated counts messages skipped because their event ID
	// was already processed. Labels: topic, group.
	MessagesDeduplicated *prometheus.CounterVec

	// ConversationsFinished counts simulated conversations by terminal
	// status. Labels: status.
	ConversationsFinished *prometheus.CounterVec

	// EvaluationsFinished counts evaluator executions.
	// Labels: evaluator_type, status (ok|error).
	EvaluationsFinished *prometheus.CounterVec
}

// New creates the counters registered against reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		MessagesProduced: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "agentprobe_pipeline_messages_produced_total",
				Help: "Total pipeline messages produced by topic",
			},
			[]string{"topic"},
		),
		MessagesConsumed: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "agentprobe_pipeline_messages_consumed_total",
				Help: "Total pipeline messages consumed by topic, group, and outcome",
			},
			[]string{"topic", "group", "status"},
		),
		MessagesRetried: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "agentprobe_pipeline_messages_retried_total",
				Help: "Total pipeline message handler retries by topic and group",
			},
			[]string{"topic", "group"},
		),
		MessagesDeadLettered: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "agentprobe_pipeline_messages_dead_lettered_total",
				Help: "Total pipeline messages dead-lettered after retry exhaustion",
			},
			[]string{"topic", "group"},
		),
		MessagesDeduplicated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "agentprobe_pipeline_messages_deduplicated_total",
				Help: "Total pipeline messages skipped as duplicates",
			},
			[]string{"topic", "group"},
		),
		ConversationsFinished: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "agentprobe_conversations_finished_total",
				Help: "Total simulated conversations by terminal status",
			},
			[]string{"status"},
		),
		EvaluationsFinished: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "agentprobe_evaluations_finished_total",
				Help: "Total evaluator executions by type and outcome",
			},
			[]string{"evaluator_type", "status"},
		),
	}
}

var (
	defaultOnce    sync.Once
	defaultMetrics *Metrics
)

// Default returns the process-wide instance registered on the default
// Prometheus registry.
func Default() *Metrics {
	defaultOnce.Do(func() {
		defaultMetrics = New(prometheus.DefaultRegisterer)
	})
	return defaultMetrics
}

// MessageProduced records one produced pipeline message.
func (m *Metrics) MessageProduced(topic string) {
	m.MessagesProduced.WithLabelValues(topic).Inc()
}

// MessageConsumed records one consumed message with its handler outcome.
func (m *Metrics) MessageConsumed(topic, group, status string) {
	m.MessagesConsumed.WithLabelValues(topic, group, status).Inc()
}

// MessageRetried records one handler retry.
func (m *Metrics) MessageRetried(topic, group string) {
	m.MessagesRetried.WithLabelValues(topic, group).Inc()
}

// MessageDeadLettered records one dead-lettered message.
func (m *Metrics) MessageDeadLettered(topic, group string) {
	m.MessagesDeadLettered.WithLabelValues(topic, group).Inc()
}

// MessageDeduplicated records one duplicate skip.
func (m *Metrics) MessageDeduplicated(topic, group string) {
	m.MessagesDeduplicated.WithLabelValues(topic, group).Inc()
}

// ConversationFinished records one finished conversation.
func (m *Metrics) ConversationFinished(status string) {
	m.ConversationsFinished.WithLabelValues(status).Inc()
}

// EvaluationFinished records one evaluator execution.
func (m *Metrics) EvaluationFinished(evaluatorType, status string) {
	m.EvaluationsFinished.WithLabelValues(evaluatorType, status).Inc()
}
