package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentprobe/agentprobe/ent"
	"github.com/agentprobe/agentprobe/ent/conversation"
	"github.com/agentprobe/agentprobe/pkg/config"
	"github.com/agentprobe/agentprobe/pkg/database"
	"github.com/agentprobe/agentprobe/pkg/llm"
	"github.com/agentprobe/agentprobe/pkg/services"
	testdb "github.com/agentprobe/agentprobe/test/database"
)

// stubLLM fails every completion. API tests never reach a model; the
// endpoints under test are CRUD and reads.
type stubLLM struct{}

func (stubLLM) Complete(context.Context, llm.Request) (*llm.Response, error) {
	return nil, errors.New("no model in tests")
}

func (stubLLM) Close() error { return nil }

func newTestRouter(t *testing.T, apiKey string) (*gin.Engine, *database.Client) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testdb.NewTestClient(t)
	cfg := &config.ServerConfig{Port: "0", APIKey: apiKey}
	llmCfg := &config.LLMConfig{
		Provider:           config.ProviderAnthropic,
		DefaultModel:       "claude-sonnet-4-5",
		JudgeModel:         "claude-opus-4-1",
		UserSimulatorModel: "claude-haiku-4-5",
	}

	server := NewServer(
		db,
		cfg,
		services.NewAgentConfigService(db.Client),
		services.NewScenarioService(db.Client),
		services.NewRubricService(db.Client),
		services.NewRunService(db.Client, nil),
		services.NewEvaluationService(db.Client, stubLLM{}, llmCfg, nil, nil),
		services.NewStatsService(db.Client, nil, nil),
		nil,
	)
	return server.Router(), db
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

func TestAgentConfigEndpoints(t *testing.T) {
	r, _ := newTestRouter(t, "")

	rec := doJSON(t, r, http.MethodPost, "/api/v1/agent-configs", SaveAgentConfigRequest{
		Name:         "support-agent",
		ModelID:      "claude-sonnet-4-5",
		SystemPrompt: "You are a helpful support agent.",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created struct {
		ID          string  `json:"id"`
		Name        string  `json:"name"`
		Temperature float64 `json:"temperature"`
	}
	decodeBody(t, rec, &created)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "support-agent", created.Name)

	rec = doJSON(t, r, http.MethodGet, "/api/v1/agent-configs/"+created.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, r, http.MethodGet, "/api/v1/agent-configs?page=1&page_size=10", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list struct {
		Items []json.RawMessage `json:"items"`
		Meta  struct {
			Total int `json:"total"`
		} `json:"meta"`
	}
	decodeBody(t, rec, &list)
	assert.Equal(t, 1, list.Meta.Total)
	assert.Len(t, list.Items, 1)

	rec = doJSON(t, r, http.MethodPut, "/api/v1/agent-configs/"+created.ID, SaveAgentConfigRequest{
		SystemPrompt: "You are a terse support agent.",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var updated struct {
		SystemPrompt string `json:"system_prompt"`
		Name         string `json:"name"`
	}
	decodeBody(t, rec, &updated)
	assert.Equal(t, "You are a terse support agent.", updated.SystemPrompt)
	assert.Equal(t, "support-agent", updated.Name)

	rec = doJSON(t, r, http.MethodDelete, "/api/v1/agent-configs/"+created.ID, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, r, http.MethodGet, "/api/v1/agent-configs/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestScenarioValidationOverHTTP(t *testing.T) {
	r, _ := newTestRouter(t, "")

	rec := doJSON(t, r, http.MethodPost, "/api/v1/scenarios", SaveScenarioRequest{
		Name: "no-goal",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "goal")
}

func TestRunLifecycleEndpoints(t *testing.T) {
	r, _ := newTestRouter(t, "")

	rec := doJSON(t, r, http.MethodPost, "/api/v1/agent-configs", SaveAgentConfigRequest{
		Name:         "run-agent",
		ModelID:      "claude-sonnet-4-5",
		SystemPrompt: "You are a helpful support agent.",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var agentCfg struct {
		ID string `json:"id"`
	}
	decodeBody(t, rec, &agentCfg)

	rec = doJSON(t, r, http.MethodPost, "/api/v1/scenarios", SaveScenarioRequest{
		Name: "refund-flow",
		Goal: "Get a refund for order #1234",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var scenario struct {
		ID string `json:"id"`
	}
	decodeBody(t, rec, &scenario)

	rec = doJSON(t, r, http.MethodPost, "/api/v1/eval-runs", CreateRunRequest{
		AgentConfigID:    agentCfg.ID,
		ScenarioID:       scenario.ID,
		NumConversations: 2,
	})
	require.Equal(t, http.StatusAccepted, rec.Code, rec.Body.String())
	var run struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	decodeBody(t, rec, &run)
	assert.Equal(t, "pending", run.Status)

	// Unknown scenario is a validation failure, not a 500.
	rec = doJSON(t, r, http.MethodPost, "/api/v1/eval-runs", CreateRunRequest{
		AgentConfigID:    agentCfg.ID,
		ScenarioID:       uuid.New().String(),
		NumConversations: 1,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, r, http.MethodPost, "/api/v1/eval-runs/"+run.ID+"/cancel", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var cancelled struct {
		Status string `json:"status"`
	}
	decodeBody(t, rec, &cancelled)
	assert.Equal(t, "cancelled", cancelled.Status)

	rec = doJSON(t, r, http.MethodPost, "/api/v1/eval-runs/"+run.ID+"/cancel", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = doJSON(t, r, http.MethodGet, "/api/v1/eval-runs?status=cancelled", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list struct {
		Meta struct {
			Total int `json:"total"`
		} `json:"meta"`
	}
	decodeBody(t, rec, &list)
	assert.Equal(t, 1, list.Meta.Total)

	rec = doJSON(t, r, http.MethodGet, "/api/v1/eval-runs/"+uuid.New().String(), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHumanEvaluationEndpoint(t *testing.T) {
	r, db := newTestRouter(t, "")
	ctx := context.Background()

	conv := seedFinishedConversation(ctx, t, db)

	rec := doJSON(t, r, http.MethodPost, "/api/v1/evaluations/human", HumanEvaluationRequest{
		ConversationID: conv.ID,
		Scores:         map[string]float64{"helpfulness": 8, "accuracy": 6},
		Reasoning:      "resolved the refund politely",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var record struct {
		EvaluatorType string  `json:"evaluator_type"`
		OverallScore  float64 `json:"overall_score"`
	}
	decodeBody(t, rec, &record)
	assert.Equal(t, "human", record.EvaluatorType)
	assert.InDelta(t, 7.0, record.OverallScore, 0.001)

	rec = doJSON(t, r, http.MethodGet, "/api/v1/conversations/"+conv.ID+"/evaluations", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list struct {
		Items []json.RawMessage `json:"items"`
	}
	decodeBody(t, rec, &list)
	assert.Len(t, list.Items, 1)

	rec = doJSON(t, r, http.MethodPost, "/api/v1/evaluations/human", HumanEvaluationRequest{
		ConversationID: conv.ID,
		Scores:         map[string]float64{"helpfulness": 15},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLeaderboardEndpoint(t *testing.T) {
	r, _ := newTestRouter(t, "")

	rec := doJSON(t, r, http.MethodGet, "/api/v1/leaderboard", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var board struct {
		MatchCount int  `json:"match_count"`
		Cached     bool `json:"cached"`
	}
	decodeBody(t, rec, &board)
	assert.Zero(t, board.MatchCount)
	assert.False(t, board.Cached)
}

func TestHealthzEndpoint(t *testing.T) {
	r, _ := newTestRouter(t, "")

	rec := doJSON(t, r, http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"healthy"`)
}

func TestMetricsEndpoint(t *testing.T) {
	r, _ := newTestRouter(t, "")

	rec := doJSON(t, r, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAPIKeyProtectsV1Routes(t *testing.T) {
	r, _ := newTestRouter(t, "secret-key")

	rec := doJSON(t, r, http.MethodGet, "/api/v1/leaderboard", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/leaderboard", nil)
	req.Header.Set("X-API-Key", "secret-key")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	// Health stays open for probes.
	rec = doJSON(t, r, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

// seedFinishedConversation stores a run with one finished conversation.
func seedFinishedConversation(ctx context.Context, t *testing.T, db *database.Client) *ent.Conversation {
	t.Helper()

	agentCfg, err := db.AgentConfig.Create().
		SetID(uuid.New().String()).
		SetName("seed-agent-" + uuid.New().String()).
		SetModelID("claude-sonnet-4-5").
		SetSystemPrompt("You are a helpful support agent.").
		Save(ctx)
	require.NoError(t, err)

	scenario, err := db.Scenario.Create().
		SetID(uuid.New().String()).
		SetName("seed-scenario-" + uuid.New().String()).
		SetGoal("Get a refund for order #1234").
		Save(ctx)
	require.NoError(t, err)

	run, err := db.EvalRun.Create().
		SetID(uuid.New().String()).
		SetAgentConfigID(agentCfg.ID).
		SetScenarioID(scenario.ID).
		SetNumConversations(1).
		Save(ctx)
	require.NoError(t, err)

	conv, err := db.Conversation.Create().
		SetID(uuid.New().String()).
		SetEvalRunID(run.ID).
		SetSequence(1).
		SetStatus(conversation.StatusGoalAchieved).
		SetTurns([]map[string]interface{}{
			{"role": "user", "content": "I want a refund for order #1234."},
			{"role": "assistant", "content": "I have issued the refund.", "input_tokens": 100, "output_tokens": 40, "latency_ms": 250},
		}).
		SetTurnCount(1).
		SetTotalTokens(140).
		SetTotalInputTokens(100).
		SetTotalOutputTokens(40).
		SetTotalLatencyMs(250).
		Save(ctx)
	require.NoError(t, err)
	return conv
}
