package models

import (
	"time"

	"github.com/agentprobe/agentprobe/pkg/stats"
)

// LeaderboardEntry is one agent's standing in the ELO leaderboard.
type LeaderboardEntry struct {
	Rank    int     `json:"rank"`
	Agent   string  `json:"agent"`
	Rating  float64 `json:"rating"`
	Matches int     `json:"matches"`
	Wins    int     `json:"wins"`
	Losses  int     `json:"losses"`
	Draws   int     `json:"draws"`
}

// Leaderboard is the full ELO ranking over recorded pairwise matches.
type Leaderboard struct {
	Entries     []LeaderboardEntry `json:"entries"`
	MatchCount  int                `json:"match_count"`
	GeneratedAt time.Time          `json:"generated_at"`
	Cached      bool               `json:"cached"`
}

// CalibrationReport compares model-judge scores to human scores across a
// run's conversations.
type CalibrationReport struct {
	EvalRunID    string                              `json:"eval_run_id"`
	Overall      stats.CalibrationMetrics            `json:"overall"`
	Curve        []stats.CalibrationBin              `json:"curve"`
	PerDimension map[string]stats.CalibrationMetrics `json:"per_dimension,omitempty"`

	// SkippedDimensions lists dimensions with fewer than two paired
	// observations, which are excluded from per-dimension metrics.
	SkippedDimensions []string `json:"skipped_dimensions,omitempty"`
}

// ReliabilityReport is the interrater agreement for one run.
type ReliabilityReport struct {
	EvalRunID string                  `json:"eval_run_id"`
	Result    stats.ReliabilityResult `json:"result"`
	Raters    []string                `json:"raters"`
}

// RunSummary aggregates a finished run: status, per-evaluator mean overall
// scores, and descriptive statistics per metric name.
type RunSummary struct {
	Run               *EvalRunResponse                  `json:"run"`
	ConversationStats map[string]int                    `json:"conversation_stats"`
	EvaluatorAverages map[string]float64                `json:"evaluator_averages"`
	Metrics           map[string]stats.AggregatedMetric `json:"metrics"`
}
