package pipeline

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentprobe/agentprobe/ent"
	"github.com/agentprobe/agentprobe/ent/conversation"
	"github.com/agentprobe/agentprobe/ent/evaluation"
	"github.com/agentprobe/agentprobe/ent/pipelinemessage"
	"github.com/agentprobe/agentprobe/pkg/database"
	"github.com/agentprobe/agentprobe/pkg/metrics"
	testdb "github.com/agentprobe/agentprobe/test/database"
)

func seedRun(ctx context.Context, t *testing.T, client *database.Client) *ent.EvalRun {
	t.Helper()
	agentCfg, err := client.AgentConfig.Create().
		SetID(uuid.New().String()).
		SetName("pipeline-agent-" + uuid.New().String()).
		SetModelID("claude-sonnet-4-5").
		SetSystemPrompt("You are a helpful support agent.").
		Save(ctx)
	require.NoError(t, err)
	scenario, err := client.Scenario.Create().
		SetID(uuid.New().String()).
		SetName("pipeline-refund-" + uuid.New().String()).
		SetGoal("Get a refund for order #1234").
		Save(ctx)
	require.NoError(t, err)
	run, err := client.EvalRun.Create().
		SetID(uuid.New().String()).
		SetAgentConfigID(agentCfg.ID).
		SetScenarioID(scenario.ID).
		SetNumConversations(2).
		Save(ctx)
	require.NoError(t, err)
	return run
}

func seedConversation(ctx context.Context, t *testing.T, client *database.Client, runID string, seq int, status conversation.Status) *ent.Conversation {
	t.Helper()
	conv, err := client.Conversation.Create().
		SetID(uuid.New().String()).
		SetEvalRunID(runID).
		SetSequence(seq).
		SetStatus(status).
		Save(ctx)
	require.NoError(t, err)
	return conv
}

func seedEvaluation(ctx context.Context, t *testing.T, client *database.Client, conv *ent.Conversation, evalType evaluation.EvaluatorType) {
	t.Helper()
	_, err := client.Evaluation.Create().
		SetID(uuid.New().String()).
		SetConversationID(conv.ID).
		SetEvalRunID(conv.EvalRunID).
		SetEvaluatorType(evalType).
		SetScores(map[string]float64{"helpfulness": 7}).
		SetOverallScore(7).
		Save(ctx)
	require.NoError(t, err)
}

func seedMetric(ctx context.Context, t *testing.T, client *database.Client, conv *ent.Conversation) {
	t.Helper()
	_, err := client.Metric.Create().
		SetID(uuid.New().String()).
		SetConversationID(conv.ID).
		SetEvalRunID(conv.EvalRunID).
		SetName("total_tokens").
		SetValue(165).
		Save(ctx)
	require.NoError(t, err)
}

func countAggregatedEvents(ctx context.Context, t *testing.T, client *database.Client) int {
	t.Helper()
	n, err := client.PipelineMessage.Query().
		Where(pipelinemessage.TopicEQ(TopicMetricsAggregated)).
		Count(ctx)
	require.NoError(t, err)
	return n
}

// A human verdict recorded against a failed conversation must not count
// toward run completion: aggregation waits until every conversation that
// produced a transcript has been evaluated.
func TestAggregateRunMetricsIgnoresFailedConversationEvaluations(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	m := metrics.New(prometheus.NewRegistry())
	producer := NewProducer(client.DB(), m)
	t.Cleanup(func() { producer.Close(5 * time.Second) })

	run := seedRun(ctx, t, client)
	achieved := seedConversation(ctx, t, client, run.ID, 0, conversation.StatusGoalAchieved)
	failed := seedConversation(ctx, t, client, run.ID, 1, conversation.StatusFailed)
	seedEvaluation(ctx, t, client, failed, evaluation.EvaluatorTypeHuman)
	seedMetric(ctx, t, client, achieved)

	require.NoError(t, aggregateRunMetrics(ctx, client, producer, run.ID))
	assert.Zero(t, countAggregatedEvents(ctx, t, client),
		"failed-conversation evaluation must not satisfy the completion check")

	// Once the goal-achieved conversation is evaluated the run is done and
	// aggregation publishes.
	seedEvaluation(ctx, t, client, achieved, evaluation.EvaluatorTypeModelJudge)
	require.NoError(t, aggregateRunMetrics(ctx, client, producer, run.ID))
	assert.Positive(t, countAggregatedEvents(ctx, t, client))
}

// Goal-achieved and frustrated conversations count toward the total the
// aggregation check waits on, so a run with no max-turns completions can
// still finish.
func TestAggregateRunMetricsCountsGoalAchieved(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	m := metrics.New(prometheus.NewRegistry())
	producer := NewProducer(client.DB(), m)
	t.Cleanup(func() { producer.Close(5 * time.Second) })

	run := seedRun(ctx, t, client)
	achieved := seedConversation(ctx, t, client, run.ID, 0, conversation.StatusGoalAchieved)
	frustrated := seedConversation(ctx, t, client, run.ID, 1, conversation.StatusFrustrated)
	seedMetric(ctx, t, client, achieved)
	seedEvaluation(ctx, t, client, achieved, evaluation.EvaluatorTypeModelJudge)

	require.NoError(t, aggregateRunMetrics(ctx, client, producer, run.ID))
	assert.Zero(t, countAggregatedEvents(ctx, t, client),
		"the frustrated conversation is not evaluated yet")

	seedEvaluation(ctx, t, client, frustrated, evaluation.EvaluatorTypeModelJudge)
	require.NoError(t, aggregateRunMetrics(ctx, client, producer, run.ID))
	assert.Positive(t, countAggregatedEvents(ctx, t, client))
}

// Redelivering an event the consumer already processed acks the duplicate
// row without invoking the handler again.
func TestConsumerDeduplicatesRedeliveredEvent(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	var calls int
	c := NewConsumer(client, nil, metrics.New(prometheus.NewRegistry()), ConsumerConfig{
		Topic: TopicConversationCompleted,
		Group: GroupEvaluationEngine,
		Handler: func(context.Context, *Envelope) error {
			calls++
			return nil
		},
	})

	envelope := NewConversationCompletedEvent(uuid.New().String(), uuid.New().String(), 1, 100, 50, "completed")
	value, err := envelope.Serialize()
	require.NoError(t, err)

	seedClaimed := func() *ent.PipelineMessage {
		msg, err := client.PipelineMessage.Create().
			SetTopic(TopicConversationCompleted).
			SetConsumerGroup(GroupEvaluationEngine).
			SetValue(string(value)).
			SetStatus(pipelinemessage.StatusProcessing).
			Save(ctx)
		require.NoError(t, err)
		return msg
	}

	first := seedClaimed()
	duplicate := seedClaimed()

	c.process(ctx, first)
	c.process(ctx, duplicate)
	assert.Equal(t, 1, calls, "duplicate event_id must not reach the handler")

	reloaded, err := client.PipelineMessage.Get(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, pipelinemessage.StatusDone, reloaded.Status)
	assert.Equal(t, 1, reloaded.Attempts)

	reloaded, err = client.PipelineMessage.Get(ctx, duplicate.ID)
	require.NoError(t, err)
	assert.Equal(t, pipelinemessage.StatusDone, reloaded.Status)
	assert.Zero(t, reloaded.Attempts, "a deduplicated row is acked without a handler attempt")
}
