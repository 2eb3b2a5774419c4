package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/agentprobe/agentprobe/ent"
	"github.com/agentprobe/agentprobe/ent/evaluation"
	"github.com/agentprobe/agentprobe/ent/metric"
	"github.com/agentprobe/agentprobe/pkg/config"
	"github.com/agentprobe/agentprobe/pkg/eval"
	"github.com/agentprobe/agentprobe/pkg/llm"
	"github.com/agentprobe/agentprobe/pkg/metrics"
	"github.com/agentprobe/agentprobe/pkg/pipeline"
	"github.com/agentprobe/agentprobe/pkg/sim"
)

// HumanEvaluationInput contains a manually scored evaluation submitted
// through the API.
type HumanEvaluationInput struct {
	ConversationID string
	Scores         map[string]float64
	OverallScore   *float64
	Reasoning      string
}

// EvaluationService orchestrates the evaluation of finished conversations:
// it runs every applicable evaluator, persists their verdicts and the
// automated metrics, and emits evaluation.score.completed events. It is
// the pipeline's ConversationEvaluator.
type EvaluationService struct {
	client    *ent.Client
	llmClient llm.Client
	llmConfig *config.LLMConfig
	rubrics   *RubricService
	producer  *pipeline.Producer
	metrics   *metrics.Metrics
}

// NewEvaluationService creates a new EvaluationService. producer may be
// nil in tests; event emission is skipped then.
func NewEvaluationService(client *ent.Client, llmClient llm.Client, llmConfig *config.LLMConfig, producer *pipeline.Producer, m *metrics.Metrics) *EvaluationService {
	if client == nil {
		panic("NewEvaluationService: client must not be nil")
	}
	if llmClient == nil {
		panic("NewEvaluationService: llmClient must not be nil")
	}
	if llmConfig == nil {
		llmConfig = config.LoadLLMConfigFromEnv()
	}
	if m == nil {
		m = metrics.Default()
	}
	return &EvaluationService{
		client:    client,
		llmClient: llmClient,
		llmConfig: llmConfig,
		rubrics:   NewRubricService(client),
		producer:  producer,
		metrics:   m,
	}
}

// EvaluateConversation runs every applicable evaluator against one
// conversation. Evaluators are isolated: one failing does not stop the
// rest, and a failed parse inside the model judge is a documented fallback
// rather than an error. Re-delivery is tolerated: evaluator types already
// stored for the conversation are skipped.
func (s *EvaluationService) EvaluateConversation(ctx context.Context, conversationID string) error {
	conv, err := s.client.Conversation.Get(ctx, conversationID)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("conversation %s: %w", conversationID, ErrNotFound)
		}
		return fmt.Errorf("failed to load conversation: %w", err)
	}
	run, err := s.client.EvalRun.Get(ctx, conv.EvalRunID)
	if err != nil {
		return fmt.Errorf("failed to load eval run %s: %w", conv.EvalRunID, err)
	}
	scenario, err := s.client.Scenario.Get(ctx, run.ScenarioID)
	if err != nil {
		return fmt.Errorf("failed to load scenario %s: %w", run.ScenarioID, err)
	}
	dimensions, err := s.rubrics.DimensionsForRun(ctx, run.RubricID)
	if err != nil {
		return err
	}

	turns, err := sim.TurnsFromMaps(conv.Turns)
	if err != nil {
		return fmt.Errorf("failed to decode transcript: %w", err)
	}

	existing, err := s.storedEvaluatorTypes(ctx, conversationID)
	if err != nil {
		return err
	}

	log := slog.With("conversation_id", conversationID, "eval_run_id", run.ID)
	var stored []*ent.Evaluation

	for _, step := range s.evaluatorsFor(scenario, turns) {
		if existing[step.evaluatorType] {
			log.Debug("Evaluator already recorded, skipping", "evaluator_type", step.evaluatorType)
			continue
		}
		result, err := step.evaluator.Evaluate(ctx, step.turns, dimensions)
		if err != nil {
			s.metrics.EvaluationFinished(step.evaluatorType, "error")
			log.Error("Evaluator failed", "evaluator_type", step.evaluatorType, "error", err)
			continue
		}
		record, err := s.storeEvaluation(ctx, conv, result)
		if err != nil {
			log.Error("Failed to store evaluation", "evaluator_type", step.evaluatorType, "error", err)
			continue
		}
		s.metrics.EvaluationFinished(step.evaluatorType, "ok")
		log.Info("Evaluator completed",
			"evaluator_type", step.evaluatorType, "overall_score", result.OverallScore)
		stored = append(stored, record)
	}

	if err := s.storeMetrics(ctx, conv, eval.ComputeMetrics(conversationResultOf(conv, turns), sim.EnvironmentFromMap(run.Environment))); err != nil {
		log.Error("Failed to store automated metrics", "error", err)
	}

	for _, record := range stored {
		s.emitScoreCompleted(ctx, run.ID, record)
	}
	return nil
}

// evaluatorStep pairs an evaluator with the transcript variant it scores.
type evaluatorStep struct {
	evaluatorType string
	evaluator     eval.Evaluator
	turns         []sim.Turn
}

// evaluatorsFor selects the evaluators that apply to this conversation:
// model judge and rubric grader always, the reference evaluator when the
// scenario template carries expected responses, and the trajectory
// evaluator when an expected tool sequence is defined.
func (s *EvaluationService) evaluatorsFor(scenario *ent.Scenario, turns []sim.Turn) []evaluatorStep {
	steps := []evaluatorStep{
		{eval.TypeModelJudge, eval.NewModelJudge(s.llmClient, s.llmConfig.JudgeModel), turns},
		{eval.TypeRubricGrader, eval.NewRubricGrader(), turns},
	}
	if hasExpectedResponses(scenario) {
		steps = append(steps, evaluatorStep{
			eval.TypeReferenceBased,
			eval.NewReferenceEvaluator(),
			enrichWithReferences(turns, scenario.TurnsTemplate),
		})
	}
	if len(scenario.ExpectedToolSequence) > 0 {
		steps = append(steps, evaluatorStep{
			eval.TypeTrajectory,
			eval.NewTrajectoryEvaluator(scenario.ExpectedToolSequence),
			turns,
		})
	}
	return steps
}

func (s *EvaluationService) storedEvaluatorTypes(ctx context.Context, conversationID string) (map[string]bool, error) {
	rows, err := s.client.Evaluation.Query().
		Where(evaluation.ConversationIDEQ(conversationID)).
		Select(evaluation.FieldEvaluatorType).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query existing evaluations: %w", err)
	}
	types := make(map[string]bool, len(rows))
	for _, row := range rows {
		types[string(row.EvaluatorType)] = true
	}
	return types, nil
}

func (s *EvaluationService) storeEvaluation(ctx context.Context, conv *ent.Conversation, result *eval.EvaluationResult) (*ent.Evaluation, error) {
	builder := s.client.Evaluation.Create().
		SetID(uuid.New().String()).
		SetConversationID(conv.ID).
		SetEvalRunID(conv.EvalRunID).
		SetEvaluatorType(evaluation.EvaluatorType(result.EvaluatorType)).
		SetScores(result.Scores).
		SetOverallScore(result.OverallScore).
		SetReasoning(result.Reasoning)
	if result.PerTurnScores != nil {
		builder.SetTurnScores(result.PerTurnScores)
	}
	if result.Metadata != nil {
		builder.SetMetadata(result.Metadata)
	}
	record, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to store %s evaluation: %w", result.EvaluatorType, err)
	}
	return record, nil
}

// storeMetrics replaces the conversation's metric rows in one transaction.
// Delete-then-insert keeps the (conversation_id, name) uniqueness intact
// under event redelivery.
func (s *EvaluationService) storeMetrics(ctx context.Context, conv *ent.Conversation, values []eval.MetricValue) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin metrics transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Metric.Delete().
		Where(metric.ConversationIDEQ(conv.ID)).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to clear previous metrics: %w", err)
	}

	builders := make([]*ent.MetricCreate, 0, len(values))
	for _, mv := range values {
		b := tx.Metric.Create().
			SetID(uuid.New().String()).
			SetConversationID(conv.ID).
			SetEvalRunID(conv.EvalRunID).
			SetName(mv.Name).
			SetValue(mv.Value).
			SetUnit(mv.Unit)
		if mv.Metadata != nil {
			b.SetMetadata(mv.Metadata)
		}
		builders = append(builders, b)
	}
	if _, err := tx.Metric.CreateBulk(builders...).Save(ctx); err != nil {
		return fmt.Errorf("failed to store metrics: %w", err)
	}
	return tx.Commit()
}

// emitScoreCompleted publishes the score event best-effort.
func (s *EvaluationService) emitScoreCompleted(ctx context.Context, evalRunID string, record *ent.Evaluation) {
	if s.producer == nil {
		return
	}
	event := pipeline.NewEvaluationScoreCompletedEvent(
		evalRunID, record.ConversationID, record.ID,
		string(record.EvaluatorType), record.OverallScore, record.Scores,
	)
	if err := s.producer.Produce(context.WithoutCancel(ctx), pipeline.TopicEvaluationScoreCompleted, event, record.ConversationID); err != nil {
		slog.Warn("Failed to publish evaluation.score.completed event",
			"evaluation_id", record.ID, "error", err)
	}
}

// PairwiseCompare judges two conversations head to head and stores the
// match outcome as a pairwise_judge evaluation on conversation A. The
// metadata carries everything the ELO leaderboard needs.
func (s *EvaluationService) PairwiseCompare(ctx context.Context, conversationIDA, conversationIDB string) (*eval.PairwiseResult, error) {
	if conversationIDA == conversationIDB {
		return nil, NewValidationError("conversation_id_b", "cannot compare a conversation against itself")
	}

	convA, agentA, err := s.loadConversationWithAgent(ctx, conversationIDA)
	if err != nil {
		return nil, err
	}
	convB, agentB, err := s.loadConversationWithAgent(ctx, conversationIDB)
	if err != nil {
		return nil, err
	}

	turnsA, err := sim.TurnsFromMaps(convA.Turns)
	if err != nil {
		return nil, fmt.Errorf("failed to decode transcript A: %w", err)
	}
	turnsB, err := sim.TurnsFromMaps(convB.Turns)
	if err != nil {
		return nil, fmt.Errorf("failed to decode transcript B: %w", err)
	}

	run, err := s.client.EvalRun.Get(ctx, convA.EvalRunID)
	if err != nil {
		return nil, fmt.Errorf("failed to load eval run: %w", err)
	}
	dimensions, err := s.rubrics.DimensionsForRun(ctx, run.RubricID)
	if err != nil {
		return nil, err
	}

	judge := eval.NewPairwiseJudge(s.llmClient, s.llmConfig.JudgeModel, nil)
	result, err := judge.Compare(ctx, turnsA, turnsB, dimensions)
	if err != nil {
		return nil, fmt.Errorf("pairwise comparison failed: %w", err)
	}

	metadata := map[string]interface{}{
		"match_id":              result.MatchID,
		"opponent_conversation": conversationIDB,
		"agent_a":               agentA,
		"agent_b":               agentB,
		"winner":                result.Winner,
		"confidence":            result.Confidence,
	}
	for k, v := range result.Metadata {
		metadata[k] = v
	}
	prefs := make(map[string]float64, len(result.DimensionPreferences))
	for dim, pref := range result.DimensionPreferences {
		// Encoded for the scores column: 10 = A preferred, 0 = B, 5 = draw.
		switch pref {
		case eval.WinnerA:
			prefs[dim] = 10
		case eval.WinnerB:
			prefs[dim] = 0
		default:
			prefs[dim] = 5
		}
	}

	record, err := s.client.Evaluation.Create().
		SetID(uuid.New().String()).
		SetConversationID(conversationIDA).
		SetEvalRunID(convA.EvalRunID).
		SetEvaluatorType(evaluation.EvaluatorTypePairwiseJudge).
		SetScores(prefs).
		SetOverallScore(result.Confidence * 10).
		SetReasoning(result.Reasoning).
		SetMetadata(metadata).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to store pairwise result: %w", err)
	}

	s.metrics.EvaluationFinished(eval.TypePairwiseJudge, "ok")
	s.emitScoreCompleted(ctx, convA.EvalRunID, record)
	return result, nil
}

// RecordHumanEvaluation persists a human-entered score. The overall score
// defaults to the unweighted mean of the submitted dimension scores.
func (s *EvaluationService) RecordHumanEvaluation(ctx context.Context, input HumanEvaluationInput) (*ent.Evaluation, error) {
	if input.ConversationID == "" {
		return nil, NewValidationError("conversation_id", "conversation_id is required")
	}
	if len(input.Scores) == 0 {
		return nil, NewValidationError("scores", "at least one dimension score is required")
	}
	for dim, score := range input.Scores {
		if score < 0 || score > 10 {
			return nil, NewValidationError("scores", fmt.Sprintf("score for %q must be between 0 and 10", dim))
		}
	}

	conv, err := s.client.Conversation.Get(ctx, input.ConversationID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("conversation %s: %w", input.ConversationID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load conversation: %w", err)
	}

	overall := 0.0
	if input.OverallScore != nil {
		if *input.OverallScore < 0 || *input.OverallScore > 10 {
			return nil, NewValidationError("overall_score", "overall_score must be between 0 and 10")
		}
		overall = *input.OverallScore
	} else {
		for _, score := range input.Scores {
			overall += score
		}
		overall /= float64(len(input.Scores))
	}

	record, err := s.client.Evaluation.Create().
		SetID(uuid.New().String()).
		SetConversationID(conv.ID).
		SetEvalRunID(conv.EvalRunID).
		SetEvaluatorType(evaluation.EvaluatorTypeHuman).
		SetScores(input.Scores).
		SetOverallScore(overall).
		SetReasoning(input.Reasoning).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to store human evaluation: %w", err)
	}

	s.metrics.EvaluationFinished(eval.TypeHuman, "ok")
	s.emitScoreCompleted(ctx, conv.EvalRunID, record)
	return record, nil
}

func (s *EvaluationService) loadConversationWithAgent(ctx context.Context, conversationID string) (*ent.Conversation, string, error) {
	conv, err := s.client.Conversation.Get(ctx, conversationID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, "", fmt.Errorf("conversation %s: %w", conversationID, ErrNotFound)
		}
		return nil, "", fmt.Errorf("failed to load conversation: %w", err)
	}
	run, err := s.client.EvalRun.Get(ctx, conv.EvalRunID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load eval run: %w", err)
	}
	agentConfig, err := s.client.AgentConfig.Get(ctx, run.AgentConfigID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load agent config: %w", err)
	}
	return conv, agentConfig.Name, nil
}

// hasExpectedResponses reports whether any turns-template entry carries an
// expected_response.
func hasExpectedResponses(scenario *ent.Scenario) bool {
	for _, entry := range scenario.TurnsTemplate {
		if resp, ok := entry["expected_response"].(string); ok && resp != "" {
			return true
		}
	}
	return false
}

// enrichWithReferences copies expected_response values from the scenario
// template onto the matching user turns, pairing the k-th template entry
// with the k-th user turn.
func enrichWithReferences(turns []sim.Turn, template []map[string]interface{}) []sim.Turn {
	enriched := make([]sim.Turn, len(turns))
	copy(enriched, turns)

	userIdx := 0
	for i := range enriched {
		if enriched[i].Role != sim.RoleUser {
			continue
		}
		if userIdx < len(template) {
			if resp, ok := template[userIdx]["expected_response"].(string); ok && resp != "" {
				enriched[i].ExpectedResponse = resp
			}
		}
		userIdx++
	}
	return enriched
}

// conversationResultOf rebuilds the engine result type from a stored row
// so the automated metrics can run on persisted conversations.
func conversationResultOf(conv *ent.Conversation, turns []sim.Turn) *sim.ConversationResult {
	errMsg := ""
	if conv.ErrorMessage != nil {
		errMsg = *conv.ErrorMessage
	}
	return &sim.ConversationResult{
		Turns:             turns,
		TurnCount:         conv.TurnCount,
		TotalTokens:       conv.TotalTokens,
		TotalInputTokens:  conv.TotalInputTokens,
		TotalOutputTokens: conv.TotalOutputTokens,
		TotalLatencyMS:    conv.TotalLatencyMs,
		Status:            string(conv.Status),
		ErrorMessage:      errMsg,
	}
}
