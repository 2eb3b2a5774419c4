package eval

import (
	"sort"

	"github.com/agentprobe/agentprobe/pkg/sim"
	"github.com/agentprobe/agentprobe/pkg/stats"
)

// ComputeMetrics derives the objective per-conversation metrics from a
// finished conversation: token economics, latency distribution, resolution,
// and tool usage. Deterministic, no model involved. The environment supplies
// the adversarial schedule so injected turns can be counted.
func ComputeMetrics(result *sim.ConversationResult, env sim.Environment) []MetricValue {
	metrics := make([]MetricValue, 0, 10)

	tokensPerTurn := 0.0
	if result.TurnCount > 0 {
		tokensPerTurn = float64(result.TotalTokens) / float64(result.TurnCount)
	}
	metrics = append(metrics, MetricValue{
		Name:  "tokens_per_turn",
		Value: round2(tokensPerTurn),
		Unit:  "tokens",
	})

	outputInputRatio := 0.0
	if result.TotalInputTokens > 0 {
		outputInputRatio = float64(result.TotalOutputTokens) / float64(result.TotalInputTokens)
	}
	metrics = append(metrics, MetricValue{
		Name:  "output_input_ratio",
		Value: round4(outputInputRatio),
		Unit:  "ratio",
	})

	var latencies []float64
	for _, t := range result.Turns {
		if t.Role == sim.RoleAssistant {
			latencies = append(latencies, float64(t.LatencyMS))
		}
	}

	metrics = append(metrics, MetricValue{
		Name:  "avg_latency_ms",
		Value: round2(stats.Mean(latencies)),
		Unit:  "ms",
	})

	p95 := 0.0
	if len(latencies) > 0 {
		sorted := append([]float64(nil), latencies...)
		sort.Float64s(sorted)
		idx := max(0, int(float64(len(sorted))*0.95)-1)
		p95 = sorted[idx]
	}
	metrics = append(metrics, MetricValue{
		Name:  "p95_latency_ms",
		Value: round2(p95),
		Unit:  "ms",
	})

	metrics = append(metrics, MetricValue{
		Name:  "turns_to_resolution",
		Value: float64(result.TurnCount),
		Unit:  "turns",
	})

	completed := 0.0
	if result.Status == sim.StatusCompleted || result.Status == sim.StatusGoalAchieved {
		completed = 1.0
	}
	metrics = append(metrics, MetricValue{
		Name:  "conversation_completed",
		Value: completed,
		Unit:  "boolean",
	})

	toolCalls := 0
	toolResults := 0
	successes := 0
	for _, t := range result.Turns {
		toolCalls += len(t.ToolCalls)
		for _, r := range t.ToolResults {
			toolResults++
			if !r.IsError {
				successes++
			}
		}
	}

	metrics = append(metrics, MetricValue{
		Name:  "tool_call_count",
		Value: float64(toolCalls),
		Unit:  "count",
	})

	// No tools called means no failures.
	successRate := 1.0
	if toolResults > 0 {
		successRate = float64(successes) / float64(toolResults)
	}
	metrics = append(metrics, MetricValue{
		Name:  "tool_success_rate",
		Value: round4(successRate),
		Unit:  "ratio",
	})

	goalAchieved := 0.0
	if result.Status == sim.StatusGoalAchieved {
		goalAchieved = 1.0
	}
	metrics = append(metrics, MetricValue{
		Name:  "goal_achieved",
		Value: goalAchieved,
		Unit:  "boolean",
	})

	adversarialCount := 0
	for _, turn := range env.AdversarialTurns {
		if turn >= 0 && turn < result.TurnCount {
			adversarialCount++
		}
	}
	metrics = append(metrics, MetricValue{
		Name:  "adversarial_turn_count",
		Value: float64(adversarialCount),
		Unit:  "count",
	})

	return metrics
}
