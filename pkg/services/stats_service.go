package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/agentprobe/agentprobe/ent"
	"github.com/agentprobe/agentprobe/ent/conversation"
	"github.com/agentprobe/agentprobe/ent/evaluation"
	"github.com/agentprobe/agentprobe/ent/metric"
	"github.com/agentprobe/agentprobe/pkg/config"
	"github.com/agentprobe/agentprobe/pkg/eval"
	"github.com/agentprobe/agentprobe/pkg/models"
	"github.com/agentprobe/agentprobe/pkg/stats"
)

// leaderboardCacheKey is the Redis key holding the cached leaderboard.
const leaderboardCacheKey = "agentprobe:leaderboard"

// ELO parameters for the leaderboard.
const (
	eloInitialRating = 1500.0
	eloKFactor       = 32.0
)

// StatsService computes cross-run statistics from stored evaluations: the
// ELO leaderboard, interrater reliability, judge calibration, and run
// summaries. All math lives in pkg/stats; this service only shapes data.
type StatsService struct {
	client  *ent.Client
	rubrics *RubricService
	redis   *redis.Client
	ttl     time.Duration
}

// NewStatsService creates a new StatsService. The Redis client is an
// optional leaderboard cache; nil disables caching.
func NewStatsService(client *ent.Client, redisClient *redis.Client, redisCfg *config.RedisConfig) *StatsService {
	if client == nil {
		panic("NewStatsService: client must not be nil")
	}
	ttl := 60 * time.Second
	if redisCfg != nil && redisCfg.LeaderboardTTL > 0 {
		ttl = redisCfg.LeaderboardTTL
	}
	return &StatsService{
		client:  client,
		rubrics: NewRubricService(client),
		redis:   redisClient,
		ttl:     ttl,
	}
}

// Leaderboard folds every stored pairwise match into ELO ratings,
// chronologically. Results are cached in Redis when configured; cache
// failures fall back to recomputing.
func (s *StatsService) Leaderboard(ctx context.Context) (*models.Leaderboard, error) {
	if s.redis != nil {
		raw, err := s.redis.Get(ctx, leaderboardCacheKey).Result()
		if err == nil {
			var cached models.Leaderboard
			if jsonErr := json.Unmarshal([]byte(raw), &cached); jsonErr == nil {
				cached.Cached = true
				return &cached, nil
			}
		} else if !errors.Is(err, redis.Nil) {
			slog.Warn("Leaderboard cache read failed", "error", err)
		}
	}

	board, err := s.computeLeaderboard(ctx)
	if err != nil {
		return nil, err
	}

	if s.redis != nil {
		if raw, err := json.Marshal(board); err == nil {
			if err := s.redis.Set(ctx, leaderboardCacheKey, raw, s.ttl).Err(); err != nil {
				slog.Warn("Leaderboard cache write failed", "error", err)
			}
		}
	}
	return board, nil
}

func (s *StatsService) computeLeaderboard(ctx context.Context) (*models.Leaderboard, error) {
	rows, err := s.client.Evaluation.Query().
		Where(evaluation.EvaluatorTypeEQ(evaluation.EvaluatorTypePairwiseJudge)).
		Order(ent.Asc(evaluation.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load pairwise matches: %w", err)
	}

	matches := make([]stats.MatchResult, 0, len(rows))
	type record struct{ wins, losses, draws int }
	records := make(map[string]*record)
	ensure := func(agent string) *record {
		if records[agent] == nil {
			records[agent] = &record{}
		}
		return records[agent]
	}

	for _, row := range rows {
		agentA, _ := row.Metadata["agent_a"].(string)
		agentB, _ := row.Metadata["agent_b"].(string)
		winner, _ := row.Metadata["winner"].(string)
		if agentA == "" || agentB == "" {
			continue
		}

		var result string
		switch winner {
		case eval.WinnerA:
			result = stats.ResultAWins
			ensure(agentA).wins++
			ensure(agentB).losses++
		case eval.WinnerB:
			result = stats.ResultBWins
			ensure(agentB).wins++
			ensure(agentA).losses++
		default:
			result = stats.ResultDraw
			ensure(agentA).draws++
			ensure(agentB).draws++
		}
		matches = append(matches, stats.MatchResult{AgentA: agentA, AgentB: agentB, Result: result})
	}

	ratings := stats.ComputeRankings(matches, eloInitialRating, eloKFactor)

	entries := make([]models.LeaderboardEntry, 0, len(ratings))
	for agent, rating := range ratings {
		rec := ensure(agent)
		entries = append(entries, models.LeaderboardEntry{
			Agent:   agent,
			Rating:  rating,
			Matches: rec.wins + rec.losses + rec.draws,
			Wins:    rec.wins,
			Losses:  rec.losses,
			Draws:   rec.draws,
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Rating != entries[j].Rating {
			return entries[i].Rating > entries[j].Rating
		}
		return entries[i].Agent < entries[j].Agent
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}

	return &models.Leaderboard{
		Entries:     entries,
		MatchCount:  len(matches),
		GeneratedAt: time.Now().UTC(),
	}, nil
}

// InterRaterReliability computes Krippendorff's alpha across the
// evaluators that scored a run's conversations. Each evaluator type is one
// rater position; conversations are the items.
func (s *StatsService) InterRaterReliability(ctx context.Context, evalRunID string) (*models.ReliabilityReport, error) {
	run, err := s.client.EvalRun.Get(ctx, evalRunID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("eval run %s: %w", evalRunID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load eval run: %w", err)
	}

	rows, err := s.client.Evaluation.Query().
		Where(
			evaluation.EvalRunIDEQ(evalRunID),
			evaluation.EvaluatorTypeIn(
				evaluation.EvaluatorTypeModelJudge,
				evaluation.EvaluatorTypeRubricGrader,
				evaluation.EvaluatorTypeHuman,
			),
		).
		Order(ent.Asc(evaluation.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load evaluations: %w", err)
	}

	// Fixed rater order so the matrix columns are stable across calls.
	raters := []string{eval.TypeModelJudge, eval.TypeRubricGrader, eval.TypeHuman}
	raterIndex := map[string]int{}
	for i, r := range raters {
		raterIndex[r] = i
	}

	byConversation := make(map[string][]stats.RaterScores)
	for _, row := range rows {
		scoresByRater := byConversation[row.ConversationID]
		if scoresByRater == nil {
			scoresByRater = make([]stats.RaterScores, len(raters))
			byConversation[row.ConversationID] = scoresByRater
		}
		idx := raterIndex[string(row.EvaluatorType)]
		if scoresByRater[idx] == nil {
			scoresByRater[idx] = stats.RaterScores(row.Scores)
		}
	}
	// Replace nil positions with empty maps so ComputeReliability sees a
	// missing rating, not a panic.
	for _, scoresByRater := range byConversation {
		for i := range scoresByRater {
			if scoresByRater[i] == nil {
				scoresByRater[i] = stats.RaterScores{}
			}
		}
	}

	dimensions, err := s.dimensionNamesForRun(ctx, run)
	if err != nil {
		return nil, err
	}
	result := stats.ComputeReliability(byConversation, dimensions)

	return &models.ReliabilityReport{
		EvalRunID: evalRunID,
		Result:    result,
		Raters:    raters,
	}, nil
}

// Calibration measures how well the model judge tracks human scores for
// one run. Conversations contribute a pair when both evaluator types
// scored them. Dimensions with fewer than two pairs are skipped and
// surfaced in the report.
func (s *StatsService) Calibration(ctx context.Context, evalRunID string, numBins int) (*models.CalibrationReport, error) {
	if numBins < 1 {
		numBins = 10
	}
	run, err := s.client.EvalRun.Get(ctx, evalRunID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("eval run %s: %w", evalRunID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load eval run: %w", err)
	}

	rows, err := s.client.Evaluation.Query().
		Where(
			evaluation.EvalRunIDEQ(evalRunID),
			evaluation.EvaluatorTypeIn(
				evaluation.EvaluatorTypeModelJudge,
				evaluation.EvaluatorTypeHuman,
			),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load evaluations: %w", err)
	}

	type pair struct {
		human *ent.Evaluation
		model *ent.Evaluation
	}
	pairs := make(map[string]*pair)
	for _, row := range rows {
		p := pairs[row.ConversationID]
		if p == nil {
			p = &pair{}
			pairs[row.ConversationID] = p
		}
		switch row.EvaluatorType {
		case evaluation.EvaluatorTypeHuman:
			if p.human == nil {
				p.human = row
			}
		case evaluation.EvaluatorTypeModelJudge:
			if p.model == nil {
				p.model = row
			}
		}
	}

	var humanOverall, modelOverall []float64
	humanByDim := make(map[string][]float64)
	modelByDim := make(map[string][]float64)
	convIDs := make([]string, 0, len(pairs))
	for id := range pairs {
		convIDs = append(convIDs, id)
	}
	sort.Strings(convIDs)
	for _, id := range convIDs {
		p := pairs[id]
		if p.human == nil || p.model == nil {
			continue
		}
		humanOverall = append(humanOverall, p.human.OverallScore)
		modelOverall = append(modelOverall, p.model.OverallScore)
		for dim, hv := range p.human.Scores {
			if mv, ok := p.model.Scores[dim]; ok {
				humanByDim[dim] = append(humanByDim[dim], hv)
				modelByDim[dim] = append(modelByDim[dim], mv)
			}
		}
	}

	overall, err := stats.ComputeCalibration(humanOverall, modelOverall)
	if err != nil {
		return nil, NewValidationError("eval_run_id", fmt.Sprintf("not enough human/model pairs for calibration: %v", err))
	}

	report := &models.CalibrationReport{
		EvalRunID:    evalRunID,
		Overall:      overall,
		Curve:        stats.CalibrationCurve(humanOverall, modelOverall, numBins),
		PerDimension: make(map[string]stats.CalibrationMetrics),
	}
	dimensions, err := s.dimensionNamesForRun(ctx, run)
	if err != nil {
		return nil, err
	}
	for _, dim := range dimensions {
		hv, mv := humanByDim[dim], modelByDim[dim]
		if len(hv) < 2 {
			report.SkippedDimensions = append(report.SkippedDimensions, dim)
			continue
		}
		dimMetrics, err := stats.ComputeCalibration(hv, mv)
		if err != nil {
			report.SkippedDimensions = append(report.SkippedDimensions, dim)
			continue
		}
		report.PerDimension[dim] = dimMetrics
	}
	sort.Strings(report.SkippedDimensions)
	return report, nil
}

// RunSummary aggregates one run: conversation status counts, mean overall
// score per evaluator type, and descriptive statistics per metric name.
func (s *StatsService) RunSummary(ctx context.Context, evalRunID string) (*models.RunSummary, error) {
	run, err := s.client.EvalRun.Get(ctx, evalRunID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("eval run %s: %w", evalRunID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load eval run: %w", err)
	}

	conversations, err := s.client.Conversation.Query().
		Where(conversation.EvalRunIDEQ(evalRunID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load conversations: %w", err)
	}
	statusCounts := make(map[string]int)
	for _, conv := range conversations {
		statusCounts[string(conv.Status)]++
	}

	evaluations, err := s.client.Evaluation.Query().
		Where(evaluation.EvalRunIDEQ(evalRunID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load evaluations: %w", err)
	}
	totals := make(map[string][]float64)
	for _, row := range evaluations {
		t := string(row.EvaluatorType)
		totals[t] = append(totals[t], row.OverallScore)
	}
	averages := make(map[string]float64, len(totals))
	for t, scores := range totals {
		averages[t] = stats.Mean(scores)
	}

	metricsRows, err := s.client.Metric.Query().
		Where(metric.EvalRunIDEQ(evalRunID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load metrics: %w", err)
	}
	byName := make(map[string][]float64)
	for _, row := range metricsRows {
		byName[row.Name] = append(byName[row.Name], row.Value)
	}
	aggregated := make(map[string]stats.AggregatedMetric, len(byName))
	for name, values := range byName {
		aggregated[name] = stats.AggregateMetricValues(name, values)
	}

	return &models.RunSummary{
		Run:               models.NewEvalRunResponse(run),
		ConversationStats: statusCounts,
		EvaluatorAverages: averages,
		Metrics:           aggregated,
	}, nil
}

// dimensionNamesForRun resolves the dimension names that evaluations of
// this run scored against, honoring the run's rubric selection.
func (s *StatsService) dimensionNamesForRun(ctx context.Context, run *ent.EvalRun) ([]string, error) {
	dims, err := s.rubrics.DimensionsForRun(ctx, run.RubricID)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(dims))
	for _, d := range dims {
		names = append(names, d.Name)
	}
	return names, nil
}
