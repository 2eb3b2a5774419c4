package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/agentprobe/agentprobe/ent"
	"github.com/agentprobe/agentprobe/ent/conversation"
	"github.com/agentprobe/agentprobe/ent/evalrun"
	"github.com/agentprobe/agentprobe/ent/evaluation"
	"github.com/agentprobe/agentprobe/pkg/sim"
)

// CreateRunInput contains the domain-level data needed to create an eval
// run.
type CreateRunInput struct {
	Name             string
	AgentConfigID    string
	ScenarioID       string
	RubricID         *string
	NumConversations int
	Environment      map[string]interface{}
}

// RunListParams filter and paginate run listings.
type RunListParams struct {
	Page          int
	PageSize      int
	Status        string
	AgentConfigID string
	ScenarioID    string
}

// RunCanceller propagates an API-triggered cancellation to the worker that
// is executing the run. Implemented by the queue's WorkerPool.
type RunCanceller interface {
	CancelRun(runID string) bool
}

// RunService handles eval run lifecycle: creation, lookup, and cooperative
// cancellation. Pending runs are picked up by the worker pool; this service
// never executes simulations itself.
type RunService struct {
	client    *ent.Client
	canceller RunCanceller
}

// NewRunService creates a new RunService. canceller may be nil when no
// worker pool runs in this process (API-only deployments).
func NewRunService(client *ent.Client, canceller RunCanceller) *RunService {
	if client == nil {
		panic("NewRunService: client must not be nil")
	}
	return &RunService{client: client, canceller: canceller}
}

// Create validates references and stores a new run in pending status. The
// worker pool claims it asynchronously.
func (s *RunService) Create(ctx context.Context, input CreateRunInput) (*ent.EvalRun, error) {
	if input.AgentConfigID == "" {
		return nil, NewValidationError("agent_config_id", "agent_config_id is required")
	}
	if input.ScenarioID == "" {
		return nil, NewValidationError("scenario_id", "scenario_id is required")
	}
	if input.NumConversations < 1 {
		return nil, NewValidationError("num_conversations", "num_conversations must be at least 1")
	}
	if err := validateEnvironment(input.Environment); err != nil {
		return nil, err
	}

	// Validate foreign keys up front so the caller gets a 4xx instead of a
	// constraint violation.
	if _, err := s.client.AgentConfig.Get(ctx, input.AgentConfigID); err != nil {
		if ent.IsNotFound(err) {
			return nil, NewValidationError("agent_config_id", fmt.Sprintf("agent config %s does not exist", input.AgentConfigID))
		}
		return nil, fmt.Errorf("failed to check agent config: %w", err)
	}
	if _, err := s.client.Scenario.Get(ctx, input.ScenarioID); err != nil {
		if ent.IsNotFound(err) {
			return nil, NewValidationError("scenario_id", fmt.Sprintf("scenario %s does not exist", input.ScenarioID))
		}
		return nil, fmt.Errorf("failed to check scenario: %w", err)
	}
	if input.RubricID != nil && *input.RubricID != "" {
		if _, err := s.client.Rubric.Get(ctx, *input.RubricID); err != nil {
			if ent.IsNotFound(err) {
				return nil, NewValidationError("rubric_id", fmt.Sprintf("rubric %s does not exist", *input.RubricID))
			}
			return nil, fmt.Errorf("failed to check rubric: %w", err)
		}
	}

	builder := s.client.EvalRun.Create().
		SetID(uuid.New().String()).
		SetAgentConfigID(input.AgentConfigID).
		SetScenarioID(input.ScenarioID).
		SetNumConversations(input.NumConversations).
		SetStatus(evalrun.StatusPending)

	if input.Name != "" {
		builder.SetName(input.Name)
	}
	if input.RubricID != nil && *input.RubricID != "" {
		builder.SetRubricID(*input.RubricID)
	}
	if input.Environment != nil {
		builder.SetEnvironment(input.Environment)
	}

	run, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create eval run: %w", err)
	}
	return run, nil
}

// Get loads one run by id.
func (s *RunService) Get(ctx context.Context, id string) (*ent.EvalRun, error) {
	run, err := s.client.EvalRun.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("eval run %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load eval run: %w", err)
	}
	return run, nil
}

// List returns runs ordered by creation time, newest first.
func (s *RunService) List(ctx context.Context, params RunListParams) ([]*ent.EvalRun, int, error) {
	page, pageSize := normalizePagination(params.Page, params.PageSize)

	query := s.client.EvalRun.Query()
	if params.Status != "" {
		if err := evalrun.StatusValidator(evalrun.Status(params.Status)); err != nil {
			return nil, 0, NewValidationError("status", "invalid run status: "+params.Status)
		}
		query = query.Where(evalrun.StatusEQ(evalrun.Status(params.Status)))
	}
	if params.AgentConfigID != "" {
		query = query.Where(evalrun.AgentConfigIDEQ(params.AgentConfigID))
	}
	if params.ScenarioID != "" {
		query = query.Where(evalrun.ScenarioIDEQ(params.ScenarioID))
	}

	total, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count eval runs: %w", err)
	}

	runs, err := query.
		Order(ent.Desc(evalrun.FieldCreatedAt)).
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list eval runs: %w", err)
	}
	return runs, total, nil
}

// Cancel transitions a run to cancelled and signals the executing worker,
// if any. Simulation stops cooperatively at the next turn boundary;
// in-flight model and sandbox calls finish first.
func (s *RunService) Cancel(ctx context.Context, id string) (*ent.EvalRun, error) {
	run, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	switch run.Status {
	case evalrun.StatusPending, evalrun.StatusRunningSimulation, evalrun.StatusRunningEvaluation:
	default:
		return nil, fmt.Errorf("eval run %s is %s: %w", id, run.Status, ErrNotCancellable)
	}

	// Conditional update: only flip runs still in a cancellable status, so
	// a racing worker transition is not overwritten.
	n, err := s.client.EvalRun.Update().
		Where(
			evalrun.IDEQ(id),
			evalrun.StatusIn(evalrun.StatusPending, evalrun.StatusRunningSimulation, evalrun.StatusRunningEvaluation),
		).
		SetStatus(evalrun.StatusCancelled).
		SetErrorMessage("cancelled").
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to cancel eval run: %w", err)
	}
	if n == 0 {
		return nil, fmt.Errorf("eval run %s reached a terminal status concurrently: %w", id, ErrNotCancellable)
	}

	if s.canceller != nil {
		s.canceller.CancelRun(id)
	}
	return s.Get(ctx, id)
}

// ListConversations returns a run's conversations in sequence order.
func (s *RunService) ListConversations(ctx context.Context, runID string) ([]*ent.Conversation, error) {
	if _, err := s.Get(ctx, runID); err != nil {
		return nil, err
	}
	conversations, err := s.client.Conversation.Query().
		Where(conversation.EvalRunIDEQ(runID)).
		Order(ent.Asc(conversation.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversations: %w", err)
	}
	return conversations, nil
}

// GetConversation loads one conversation with its full transcript.
func (s *RunService) GetConversation(ctx context.Context, id string) (*ent.Conversation, error) {
	conv, err := s.client.Conversation.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("conversation %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load conversation: %w", err)
	}
	return conv, nil
}

// ListEvaluations returns the evaluations recorded for one conversation.
func (s *RunService) ListEvaluations(ctx context.Context, conversationID string) ([]*ent.Evaluation, error) {
	if _, err := s.GetConversation(ctx, conversationID); err != nil {
		return nil, err
	}
	evaluations, err := s.client.Evaluation.Query().
		Where(evaluation.ConversationIDEQ(conversationID)).
		Order(ent.Asc(evaluation.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list evaluations: %w", err)
	}
	return evaluations, nil
}

// validateEnvironment checks the run's SimulationEnvironment overrides.
// Unknown keys are ignored; known keys must be in range.
func validateEnvironment(env map[string]interface{}) error {
	if env == nil {
		return nil
	}
	parsed := sim.EnvironmentFromMap(env)
	if parsed.MaxTurns < 0 {
		return NewValidationError("environment.max_turns", "must not be negative")
	}
	if parsed.MaxTotalTokens < 0 {
		return NewValidationError("environment.max_total_tokens", "must not be negative")
	}
	if parsed.ToolFailureRate < 0 || parsed.ToolFailureRate > 1 {
		return NewValidationError("environment.tool_failure_rate", "must be between 0 and 1")
	}
	if parsed.ToolLatency < 0 {
		return NewValidationError("environment.tool_latency_ms", "must not be negative")
	}
	if parsed.Timeout < 0 {
		return NewValidationError("environment.timeout_seconds", "must not be negative")
	}
	return nil
}
