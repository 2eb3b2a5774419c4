// Package e2e wires the full stack — worker pool, simulation, event
// pipeline, evaluation, aggregation — against a real PostgreSQL database
// and a scripted model, and drives eval runs end to end.
package e2e

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentprobe/agentprobe/ent/conversation"
	"github.com/agentprobe/agentprobe/ent/evalrun"
	"github.com/agentprobe/agentprobe/ent/evaluation"
	"github.com/agentprobe/agentprobe/ent/metric"
	"github.com/agentprobe/agentprobe/ent/pipelinemessage"
	"github.com/agentprobe/agentprobe/pkg/config"
	"github.com/agentprobe/agentprobe/pkg/database"
	"github.com/agentprobe/agentprobe/pkg/eval"
	"github.com/agentprobe/agentprobe/pkg/llm"
	"github.com/agentprobe/agentprobe/pkg/metrics"
	"github.com/agentprobe/agentprobe/pkg/pipeline"
	"github.com/agentprobe/agentprobe/pkg/queue"
	"github.com/agentprobe/agentprobe/pkg/services"
	testdb "github.com/agentprobe/agentprobe/test/database"
)

// scriptedLLM replays a fixed sequence of model responses. When gate is
// non-nil every call blocks until the gate closes.
type scriptedLLM struct {
	mu    sync.Mutex
	steps []scriptStep
	gate  chan struct{}
}

type scriptStep struct {
	resp *llm.Response
	err  error
}

func (c *scriptedLLM) Complete(_ context.Context, _ llm.Request) (*llm.Response, error) {
	if c.gate != nil {
		<-c.gate
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.steps) == 0 {
		return nil, errors.New("unexpected model call")
	}
	step := c.steps[0]
	c.steps = c.steps[1:]
	return step.resp, step.err
}

func (c *scriptedLLM) Close() error { return nil }

func textStep(content string, in, out int) scriptStep {
	return scriptStep{resp: &llm.Response{
		Content:    content,
		StopReason: "end_turn",
		Usage:      llm.Usage{InputTokens: in, OutputTokens: out},
	}}
}

func judgeStep(score float64) scriptStep {
	args := map[string]interface{}{}
	for _, dim := range eval.DefaultDimensions() {
		args[dim.Name+"_score"] = score
		args[dim.Name+"_reasoning"] = "scripted"
	}
	return scriptStep{resp: &llm.Response{
		ToolCalls: []llm.ToolCall{{
			ID:        "call_judge",
			Name:      "submit_evaluation",
			Arguments: args,
		}},
		StopReason: "tool_use",
		Usage:      llm.Usage{InputTokens: 200, OutputTokens: 80},
	}}
}

// harness is the fully wired stack minus the HTTP server.
type harness struct {
	client       *database.Client
	producer     *pipeline.Producer
	pool         *queue.WorkerPool
	runs         *services.RunService
	agentConfigs *services.AgentConfigService
	scenarios    *services.ScenarioService
}

func newHarness(t *testing.T, llmClient llm.Client, maxRetries int) *harness {
	t.Helper()

	client := testdb.NewTestClient(t)
	m := metrics.New(prometheus.NewRegistry())
	ctx := context.Background()

	llmCfg := &config.LLMConfig{
		Provider:           config.ProviderAnthropic,
		DefaultModel:       "claude-sonnet-4-5",
		JudgeModel:         "claude-opus-4-1",
		UserSimulatorModel: "claude-haiku-4-5",
	}

	producer := pipeline.NewProducer(client.DB(), m)
	simulation := services.NewSimulationService(client.Client, llmClient, llmCfg, producer, m)
	evaluationSvc := services.NewEvaluationService(client.Client, llmClient, llmCfg, producer, m)

	consumers := []*pipeline.Consumer{
		pipeline.NewConsumer(client, producer, m, pipeline.ConsumerConfig{
			Topic:        pipeline.TopicConversationCompleted,
			Group:        pipeline.GroupEvaluationEngine,
			Handler:      pipeline.ConversationCompletedHandler(evaluationSvc),
			MaxRetries:   maxRetries,
			PollInterval: 50 * time.Millisecond,
		}),
		pipeline.NewConsumer(client, producer, m, pipeline.ConsumerConfig{
			Topic:        pipeline.TopicEvaluationScoreCompleted,
			Group:        pipeline.GroupMetricsAggregator,
			Handler:      pipeline.EvaluationScoreHandler(client, producer),
			MaxRetries:   maxRetries,
			PollInterval: 50 * time.Millisecond,
		}),
		pipeline.NewConsumer(client, producer, m, pipeline.ConsumerConfig{
			Topic:        pipeline.TopicMetricsAggregated,
			Group:        pipeline.GroupRunFinalizer,
			Handler:      pipeline.MetricsAggregatedHandler(client),
			MaxRetries:   maxRetries,
			PollInterval: 50 * time.Millisecond,
		}),
	}
	for _, c := range consumers {
		c.Start(ctx)
	}

	queueCfg := &config.QueueConfig{
		WorkerCount:                1,
		MaxConcurrentRuns:          5,
		MaxConcurrentConversations: 1,
		PollInterval:               100 * time.Millisecond,
		PollIntervalJitter:         0,
		RunTimeout:                 30 * time.Second,
		GracefulShutdownTimeout:    10 * time.Second,
		HeartbeatInterval:          1 * time.Second,
		OrphanDetectionInterval:    1 * time.Minute,
		OrphanThreshold:            1 * time.Minute,
	}
	pool := queue.NewWorkerPool("e2e-pod", client, queueCfg, simulation)
	require.NoError(t, pool.Start(ctx))

	t.Cleanup(func() {
		pool.Stop()
		for _, c := range consumers {
			c.Stop()
		}
		producer.Close(5 * time.Second)
	})

	return &harness{
		client:       client,
		producer:     producer,
		pool:         pool,
		runs:         services.NewRunService(client.Client, pool),
		agentConfigs: services.NewAgentConfigService(client.Client),
		scenarios:    services.NewScenarioService(client.Client),
	}
}

// createRun stores an agent config, a scenario with the given turn budget,
// and a pending run for one conversation.
func (h *harness) createRun(ctx context.Context, t *testing.T, maxTurns int) string {
	t.Helper()

	agentCfg, err := h.agentConfigs.Create(ctx, services.SaveAgentConfigInput{
		Name:         "e2e-agent-" + uuid.New().String(),
		ModelID:      "claude-sonnet-4-5",
		SystemPrompt: "You are a helpful support agent.",
	})
	require.NoError(t, err)

	initial := "I want a refund for order #1234."
	scenario, err := h.scenarios.Create(ctx, services.SaveScenarioInput{
		Name:           "e2e-refund-" + uuid.New().String(),
		Goal:           "Get a refund for order #1234",
		InitialMessage: &initial,
		MaxTurns:       &maxTurns,
	})
	require.NoError(t, err)

	run, err := h.runs.Create(ctx, services.CreateRunInput{
		AgentConfigID:    agentCfg.ID,
		ScenarioID:       scenario.ID,
		NumConversations: 1,
	})
	require.NoError(t, err)
	return run.ID
}

func awaitCondition(t *testing.T, timeout, interval time.Duration, msg string, condition func() bool) {
	t.Helper()
	deadline := time.After(timeout)
	for {
		select {
		case <-deadline:
			t.Fatalf("timed out: %s", msg)
		default:
			if condition() {
				return
			}
			time.Sleep(interval)
		}
	}
}

func (h *harness) awaitRunStatus(ctx context.Context, t *testing.T, runID string, status evalrun.Status) {
	t.Helper()
	awaitCondition(t, 30*time.Second, 100*time.Millisecond, "run did not reach status "+string(status), func() bool {
		run, err := h.client.EvalRun.Get(ctx, runID)
		return err == nil && run.Status == status
	})
}

// TestRunLifecycle drives one run from pending through simulation,
// evaluation, and aggregation to completed. The single conversation ends
// by exhausting its one-turn budget.
func TestRunLifecycle(t *testing.T) {
	llmClient := &scriptedLLM{steps: []scriptStep{
		textStep("I have issued the refund for order #1234.", 120, 45),
		judgeStep(8),
	}}
	h := newHarness(t, llmClient, 3)
	ctx := context.Background()

	runID := h.createRun(ctx, t, 1)
	h.awaitRunStatus(ctx, t, runID, evalrun.StatusCompleted)

	conversations, err := h.client.Conversation.Query().
		Where(conversation.EvalRunIDEQ(runID)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, conversations, 1)
	conv := conversations[0]
	assert.Equal(t, conversation.StatusCompleted, conv.Status)
	assert.Equal(t, 1, conv.TurnCount)
	assert.Equal(t, 165, conv.TotalTokens)

	evaluations, err := h.client.Evaluation.Query().
		Where(evaluation.ConversationIDEQ(conv.ID)).
		All(ctx)
	require.NoError(t, err)
	types := make(map[evaluation.EvaluatorType]bool, len(evaluations))
	for _, record := range evaluations {
		types[record.EvaluatorType] = true
	}
	assert.True(t, types[evaluation.EvaluatorTypeModelJudge])
	assert.True(t, types[evaluation.EvaluatorTypeRubricGrader])

	metricCount, err := h.client.Metric.Query().
		Where(metric.EvalRunIDEQ(runID)).
		Count(ctx)
	require.NoError(t, err)
	assert.Positive(t, metricCount)

	// Every pipeline message for the run's worker groups finished.
	awaitCondition(t, 10*time.Second, 100*time.Millisecond, "pipeline messages still outstanding", func() bool {
		n, err := h.client.PipelineMessage.Query().
			Where(
				pipelinemessage.ConsumerGroupNEQ(pipeline.GroupDeadLetterArchive),
				pipelinemessage.StatusIn(pipelinemessage.StatusPending, pipelinemessage.StatusProcessing),
			).
			Count(ctx)
		return err == nil && n == 0
	})
	dlq, err := h.client.PipelineMessage.Query().
		Where(pipelinemessage.TopicEQ(pipeline.TopicPipelineErrors)).
		Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, dlq)
}

// TestRunLifecycleGoalAchieved drives a run whose conversation ends with
// the user declaring success. The goal-achieved transcript must still be
// evaluated and the run must reach completed rather than stalling in
// running_evaluation.
func TestRunLifecycleGoalAchieved(t *testing.T) {
	llmClient := &scriptedLLM{steps: []scriptStep{
		textStep("I have issued the refund for order #1234.", 120, 45),
		textStep("[GOAL_ACHIEVED] Thanks, I can see the refund.", 20, 10),
		judgeStep(9),
	}}
	h := newHarness(t, llmClient, 3)
	ctx := context.Background()

	runID := h.createRun(ctx, t, 5)
	h.awaitRunStatus(ctx, t, runID, evalrun.StatusCompleted)

	conv, err := h.client.Conversation.Query().
		Where(conversation.EvalRunIDEQ(runID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, conversation.StatusGoalAchieved, conv.Status)
	assert.Equal(t, 165, conv.TotalTokens, "only the tested agent's usage counts")

	evaluationCount, err := h.client.Evaluation.Query().
		Where(evaluation.ConversationIDEQ(conv.ID)).
		Count(ctx)
	require.NoError(t, err)
	assert.Positive(t, evaluationCount)

	metricCount, err := h.client.Metric.Query().
		Where(metric.EvalRunIDEQ(runID)).
		Count(ctx)
	require.NoError(t, err)
	assert.Positive(t, metricCount)
}

// TestRunCancellation cancels a run while its only conversation is blocked
// on the model and verifies the cancelled status sticks.
func TestRunCancellation(t *testing.T) {
	gate := make(chan struct{})
	llmClient := &scriptedLLM{
		steps: []scriptStep{textStep("Looking into the refund now.", 80, 30)},
		gate:  gate,
	}
	h := newHarness(t, llmClient, 3)
	ctx := context.Background()

	runID := h.createRun(ctx, t, 5)
	h.awaitRunStatus(ctx, t, runID, evalrun.StatusRunningSimulation)

	_, err := h.runs.Cancel(ctx, runID)
	require.NoError(t, err)
	close(gate)

	h.awaitRunStatus(ctx, t, runID, evalrun.StatusCancelled)

	// The worker returning must not overwrite the cancelled status.
	time.Sleep(500 * time.Millisecond)
	run, err := h.client.EvalRun.Get(ctx, runID)
	require.NoError(t, err)
	assert.Equal(t, evalrun.StatusCancelled, run.Status)

	_, err = h.runs.Cancel(ctx, runID)
	assert.ErrorIs(t, err, services.ErrNotCancellable)
}

// TestHandlerRetriesThenDeadLetters publishes a completed-conversation
// event for a conversation that does not exist. The evaluation handler
// fails every attempt, so the message must land on the dead letter topic.
func TestHandlerRetriesThenDeadLetters(t *testing.T) {
	h := newHarness(t, &scriptedLLM{}, 2)
	ctx := context.Background()

	ghost := uuid.New().String()
	env := pipeline.NewConversationCompletedEvent(uuid.New().String(), ghost, 1, 10, 5, "completed")
	require.NoError(t, h.producer.Produce(ctx, pipeline.TopicConversationCompleted, env, ghost))

	awaitCondition(t, 30*time.Second, 100*time.Millisecond, "message was not dead-lettered", func() bool {
		n, err := h.client.PipelineMessage.Query().
			Where(pipelinemessage.TopicEQ(pipeline.TopicPipelineErrors)).
			Count(ctx)
		return err == nil && n > 0
	})

	failed, err := h.client.PipelineMessage.Query().
		Where(
			pipelinemessage.TopicEQ(pipeline.TopicConversationCompleted),
			pipelinemessage.StatusEQ(pipelinemessage.StatusFailed),
		).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, failed.Attempts)
	require.NotNil(t, failed.LastError)
	assert.Contains(t, *failed.LastError, "not found")
}
