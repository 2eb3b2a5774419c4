package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/agentprobe/agentprobe/ent"
	"github.com/agentprobe/agentprobe/ent/conversation"
	"github.com/agentprobe/agentprobe/ent/evalrun"
	"github.com/agentprobe/agentprobe/ent/evaluation"
	"github.com/agentprobe/agentprobe/pkg/config"
	"github.com/agentprobe/agentprobe/pkg/database"
	"github.com/agentprobe/agentprobe/pkg/eval"
	"github.com/agentprobe/agentprobe/pkg/llm"
	testdb "github.com/agentprobe/agentprobe/test/database"
)

// scriptedClient replays a fixed sequence of model responses and records
// every request it receives.
type scriptedClient struct {
	mu       sync.Mutex
	steps    []scriptStep
	requests []llm.Request
}

type scriptStep struct {
	resp *llm.Response
	err  error
}

func (c *scriptedClient) Complete(_ context.Context, req llm.Request) (*llm.Response, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.requests = append(c.requests, req)
	if len(c.steps) == 0 {
		return nil, errors.New("unexpected model call")
	}
	step := c.steps[0]
	c.steps = c.steps[1:]
	if step.err != nil {
		return nil, step.err
	}
	return step.resp, nil
}

func (c *scriptedClient) Close() error { return nil }

func textStep(content string, in, out int) scriptStep {
	return scriptStep{resp: &llm.Response{
		Content:    content,
		StopReason: "end_turn",
		Usage:      llm.Usage{InputTokens: in, OutputTokens: out},
	}}
}

// judgeStep builds a scoring tool call that assigns the same score to every
// default rubric dimension.
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

func testLLMConfig() *config.LLMConfig {
	return &config.LLMConfig{
		Provider:           config.ProviderAnthropic,
		DefaultModel:       "claude-sonnet-4-5",
		JudgeModel:         "claude-opus-4-1",
		UserSimulatorModel: "claude-haiku-4-5",
	}
}

func seedAgentConfig(ctx context.Context, t *testing.T, client *database.Client) *ent.AgentConfig {
	t.Helper()
	cfg, err := client.AgentConfig.Create().
		SetID(uuid.New().String()).
		SetName("support-agent-" + uuid.New().String()).
		SetModelID("claude-sonnet-4-5").
		SetSystemPrompt("You are a helpful support agent.").
		Save(ctx)
	require.NoError(t, err)
	return cfg
}

func seedScenario(ctx context.Context, t *testing.T, client *database.Client) *ent.Scenario {
	t.Helper()
	sc, err := client.Scenario.Create().
		SetID(uuid.New().String()).
		SetName("refund-" + uuid.New().String()).
		SetGoal("Get a refund for order #1234").
		SetInitialMessage("I want a refund for order #1234.").
		Save(ctx)
	require.NoError(t, err)
	return sc
}

func seedRun(ctx context.Context, t *testing.T, client *database.Client, status evalrun.Status) *ent.EvalRun {
	t.Helper()
	agentCfg := seedAgentConfig(ctx, t, client)
	scenario := seedScenario(ctx, t, client)
	run, err := client.EvalRun.Create().
		SetID(uuid.New().String()).
		SetAgentConfigID(agentCfg.ID).
		SetScenarioID(scenario.ID).
		SetNumConversations(1).
		SetStatus(status).
		Save(ctx)
	require.NoError(t, err)
	return run
}

// seedConversation stores a finished two-exchange conversation.
func seedConversation(ctx context.Context, t *testing.T, client *database.Client, runID string, seq int) *ent.Conversation {
	t.Helper()
	conv, err := client.Conversation.Create().
		SetID(uuid.New().String()).
		SetEvalRunID(runID).
		SetSequence(seq).
		SetStatus(conversation.StatusGoalAchieved).
		SetTurns([]map[string]interface{}{
			{"role": "user", "content": "I want a refund for order #1234."},
			{"role": "assistant", "content": "I have issued the refund.", "input_tokens": 100, "output_tokens": 40, "latency_ms": 250},
			{"role": "user", "content": "[GOAL_ACHIEVED] Thanks!"},
		}).
		SetTurnCount(2).
		SetTotalTokens(140).
		SetTotalInputTokens(100).
		SetTotalOutputTokens(40).
		SetTotalLatencyMs(250).
		Save(ctx)
	require.NoError(t, err)
	return conv
}

// seedEvaluation stores one evaluator verdict with uniform scores.
func seedEvaluation(ctx context.Context, t *testing.T, client *database.Client, conv *ent.Conversation, evalType evaluation.EvaluatorType, score float64) *ent.Evaluation {
	t.Helper()
	scores := map[string]float64{}
	for _, dim := range eval.DefaultDimensions() {
		scores[dim.Name] = score
	}
	record, err := client.Evaluation.Create().
		SetID(uuid.New().String()).
		SetConversationID(conv.ID).
		SetEvalRunID(conv.EvalRunID).
		SetEvaluatorType(evalType).
		SetScores(scores).
		SetOverallScore(score).
		Save(ctx)
	require.NoError(t, err)
	return record
}

// seedPairwiseMatch stores a pairwise_judge evaluation row carrying the
// leaderboard metadata.
func seedPairwiseMatch(ctx context.Context, t *testing.T, client *database.Client, conv *ent.Conversation, agentA, agentB, winner string) {
	t.Helper()
	_, err := client.Evaluation.Create().
		SetID(uuid.New().String()).
		SetConversationID(conv.ID).
		SetEvalRunID(conv.EvalRunID).
		SetEvaluatorType(evaluation.EvaluatorTypePairwiseJudge).
		SetScores(map[string]float64{"helpfulness": 10}).
		SetOverallScore(8).
		SetMetadata(map[string]interface{}{
			"match_id":   uuid.New().String(),
			"agent_a":    agentA,
			"agent_b":    agentB,
			"winner":     winner,
			"confidence": 0.8,
		}).
		Save(ctx)
	require.NoError(t, err)
}

func newTestClientAndCtx(t *testing.T) (*database.Client, context.Context) {
	t.Helper()
	return testdb.NewTestClient(t), context.Background()
}
