package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/agentprobe/agentprobe/ent"
	"github.com/agentprobe/agentprobe/ent/conversation"
	"github.com/agentprobe/agentprobe/ent/evalrun"
	"github.com/agentprobe/agentprobe/pkg/config"
	"github.com/agentprobe/agentprobe/pkg/llm"
	"github.com/agentprobe/agentprobe/pkg/metrics"
	"github.com/agentprobe/agentprobe/pkg/pipeline"
	"github.com/agentprobe/agentprobe/pkg/queue"
	"github.com/agentprobe/agentprobe/pkg/sim"
)

// SimulationService executes the simulation phase of an eval run. It is the
// worker pool's RunExecutor: the pool claims a pending run and hands it
// here; this service simulates every conversation, persists each one as it
// finishes, and emits conversation.completed events best-effort.
type SimulationService struct {
	client    *ent.Client
	llmClient llm.Client
	llmConfig *config.LLMConfig
	producer  *pipeline.Producer
	metrics   *metrics.Metrics
}

// NewSimulationService creates a new SimulationService. producer may be nil
// in tests; event emission is skipped then.
func NewSimulationService(client *ent.Client, llmClient llm.Client, llmConfig *config.LLMConfig, producer *pipeline.Producer, m *metrics.Metrics) *SimulationService {
	if client == nil {
		panic("NewSimulationService: client must not be nil")
	}
	if llmClient == nil {
		panic("NewSimulationService: llmClient must not be nil")
	}
	if llmConfig == nil {
		llmConfig = config.LoadLLMConfigFromEnv()
	}
	if m == nil {
		m = metrics.Default()
	}
	return &SimulationService{
		client:    client,
		llmClient: llmClient,
		llmConfig: llmConfig,
		producer:  producer,
		metrics:   m,
	}
}

// Execute runs every conversation of the claimed run sequentially. The
// worker already moved the run to running_simulation; this method only
// reports how the phase ended. Scoring and aggregation happen later on the
// event pipeline, so success parks the run in running_evaluation.
func (s *SimulationService) Execute(ctx context.Context, run *ent.EvalRun) *queue.ExecutionResult {
	log := slog.With("eval_run_id", run.ID)

	agentPersona, userPersona, scenario, env, err := s.loadRunSetup(ctx, run)
	if err != nil {
		log.Error("Failed to load run configuration", "error", err)
		return &queue.ExecutionResult{Status: evalrun.StatusFailed, Error: err}
	}

	log.Info("Simulation phase started",
		"agent", agentPersona.Name,
		"scenario", scenario.Name,
		"num_conversations", run.NumConversations)

	for seq := 0; seq < run.NumConversations; seq++ {
		if ctx.Err() != nil {
			log.Info("Simulation phase cancelled", "completed_conversations", seq)
			return &queue.ExecutionResult{Status: evalrun.StatusCancelled, Error: context.Cause(ctx)}
		}
		if err := s.runConversation(ctx, run, agentPersona, userPersona, scenario, env, seq); err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return &queue.ExecutionResult{Status: evalrun.StatusCancelled, Error: err}
			}
			log.Error("Conversation persistence failed", "sequence", seq, "error", err)
			return &queue.ExecutionResult{Status: evalrun.StatusFailed, Error: err}
		}
	}

	log.Info("Simulation phase complete", "num_conversations", run.NumConversations)
	return &queue.ExecutionResult{Status: evalrun.StatusRunningEvaluation}
}

// loadRunSetup resolves the run's agent config and scenario into engine
// personas and the simulation environment.
func (s *SimulationService) loadRunSetup(ctx context.Context, run *ent.EvalRun) (sim.AgentPersona, sim.UserPersona, *ent.Scenario, sim.Environment, error) {
	agentConfig, err := s.client.AgentConfig.Get(ctx, run.AgentConfigID)
	if err != nil {
		return sim.AgentPersona{}, sim.UserPersona{}, nil, sim.Environment{}, fmt.Errorf("failed to load agent config %s: %w", run.AgentConfigID, err)
	}
	scenario, err := s.client.Scenario.Get(ctx, run.ScenarioID)
	if err != nil {
		return sim.AgentPersona{}, sim.UserPersona{}, nil, sim.Environment{}, fmt.Errorf("failed to load scenario %s: %w", run.ScenarioID, err)
	}

	model := agentConfig.ModelID
	if model == "" {
		model = s.llmConfig.DefaultModel
	}
	agentPersona := sim.AgentPersona{
		Name:         agentConfig.Name,
		SystemPrompt: agentConfig.SystemPrompt,
		Model:        model,
		Temperature:  agentConfig.Temperature,
		MaxTokens:    agentConfig.MaxTokens,
		Tools:        sim.ToolSchemasFromMaps(agentConfig.Tools),
	}

	simModel := s.llmConfig.UserSimulatorModel
	if simModel == "" {
		simModel = model
	}
	userPersona := sim.UserPersona{
		Personality:    scenario.UserPersonality,
		ExpertiseLevel: string(scenario.ExpertiseLevel),
		Goal:           scenario.Goal,
		Model:          simModel,
	}

	env := sim.EnvironmentFromMap(run.Environment)
	if run.Environment == nil || run.Environment["max_turns"] == nil {
		env.MaxTurns = scenario.MaxTurns
	}

	return agentPersona, userPersona, scenario, env, nil
}

// runConversation simulates one conversation and persists the outcome. The
// conversation row is created in running status first so a crash leaves a
// visible trace for the orphan sweep.
func (s *SimulationService) runConversation(ctx context.Context, run *ent.EvalRun, agentPersona sim.AgentPersona, userPersona sim.UserPersona, scenario *ent.Scenario, env sim.Environment, seq int) error {
	conversationID := uuid.New().String()
	conv, err := s.client.Conversation.Create().
		SetID(conversationID).
		SetEvalRunID(run.ID).
		SetSequence(seq).
		SetStatus(conversation.StatusRunning).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to create conversation record: %w", err)
	}

	userSim := sim.NewUserSimulator(s.llmClient, userPersona, scenarioInitialMessage(scenario))
	sandbox := sim.NewSandbox(env, nil, nil)
	var injector sim.Injector
	if len(env.AdversarialTurns) > 0 {
		injector = sim.NewAdversarialInjector(env, nil)
	}
	orchestrator := sim.NewOrchestrator(s.llmClient, agentPersona, userSim, sandbox, injector, env)

	result, err := orchestrator.Run(ctx)
	if err != nil {
		// Only ErrAlreadyStarted reaches here; conversation failures are
		// carried on the result.
		return fmt.Errorf("orchestrator refused to run: %w", err)
	}

	if err := s.persistConversation(ctx, conv, result); err != nil {
		return err
	}

	s.metrics.ConversationFinished(result.Status)
	slog.Info("Conversation completed",
		"eval_run_id", run.ID,
		"conversation_id", conversationID,
		"sequence", seq,
		"turns", result.TurnCount,
		"status", result.Status)

	s.emitConversationCompleted(ctx, run.ID, conversationID, result)
	return ctx.Err()
}

// persistConversation records the finished transcript and aggregates. A
// fresh write context is used so a cancelled run still commits its final
// partial conversation.
func (s *SimulationService) persistConversation(ctx context.Context, conv *ent.Conversation, result *sim.ConversationResult) error {
	turns, err := sim.TurnsToMaps(result.Turns)
	if err != nil {
		return fmt.Errorf("failed to serialize turns: %w", err)
	}

	writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
	defer cancel()

	builder := s.client.Conversation.UpdateOne(conv).
		SetTurns(turns).
		SetTurnCount(result.TurnCount).
		SetTotalTokens(result.TotalTokens).
		SetTotalInputTokens(result.TotalInputTokens).
		SetTotalOutputTokens(result.TotalOutputTokens).
		SetTotalLatencyMs(result.TotalLatencyMS).
		SetStatus(conversation.Status(result.Status)).
		SetCompletedAt(time.Now())
	if result.ErrorMessage != "" {
		builder.SetErrorMessage(result.ErrorMessage)
	}

	if _, err := builder.Save(writeCtx); err != nil {
		return fmt.Errorf("failed to persist conversation %s: %w", conv.ID, err)
	}
	return nil
}

// emitConversationCompleted publishes the completion event. Publishing is
// best-effort: the conversation is already committed and a delivery
// failure must never fail the simulation.
func (s *SimulationService) emitConversationCompleted(ctx context.Context, evalRunID, conversationID string, result *sim.ConversationResult) {
	if s.producer == nil {
		return
	}
	event := pipeline.NewConversationCompletedEvent(
		evalRunID, conversationID,
		result.TurnCount, result.TotalTokens, result.TotalLatencyMS,
		result.Status,
	)
	if err := s.producer.Produce(context.WithoutCancel(ctx), pipeline.TopicConversationCompleted, event, conversationID); err != nil {
		slog.Warn("Failed to publish conversation.completed event",
			"conversation_id", conversationID, "error", err)
	}
}

// scenarioInitialMessage extracts the scripted opening message, preferring
// the dedicated column over the first turns-template entry.
func scenarioInitialMessage(scenario *ent.Scenario) string {
	if scenario.InitialMessage != nil && *scenario.InitialMessage != "" {
		return *scenario.InitialMessage
	}
	if len(scenario.TurnsTemplate) > 0 {
		if msg, ok := scenario.TurnsTemplate[0]["user_message"].(string); ok {
			return msg
		}
	}
	return ""
}
