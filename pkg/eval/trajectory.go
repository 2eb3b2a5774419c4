package eval

import (
	"context"
	"fmt"

	"github.com/agentprobe/agentprobe/pkg/sim"
)

// TrajectoryEvaluator compares the agent's tool-call sequence against the
// scenario's expected sequence: did the agent call the right tools, in the
// right order, without extra actions. Pure sequence math, no model call.
type TrajectoryEvaluator struct {
	expected []string
}

// NewTrajectoryEvaluator returns an evaluator for the given expected tool
// sequence, sourced from the scenario constraints.
func NewTrajectoryEvaluator(expectedToolSequence []string) *TrajectoryEvaluator {
	return &TrajectoryEvaluator{expected: expectedToolSequence}
}

// Evaluate scores the actual tool trajectory. With no expected sequence the
// result is empty scores and an explanatory reasoning.
func (e *TrajectoryEvaluator) Evaluate(_ context.Context, turns []sim.Turn, _ []RubricDimension) (*EvaluationResult, error) {
	actual := toolSequence(turns)
	expected := e.expected

	if len(expected) == 0 {
		return &EvaluationResult{
			EvaluatorType: TypeTrajectory,
			Scores:        map[string]float64{},
			OverallScore:  0,
			Reasoning:     "No expected tool sequence defined.",
		}, nil
	}

	seqMatch := sequenceMatchRatio(actual, expected)
	prec := trajectoryPrecision(actual, expected)
	rec := trajectoryRecall(actual, expected)
	order := orderScore(actual, expected)
	unnecessary := unnecessaryActions(actual, expected)

	overall := round2((seqMatch + prec + rec + order) / 4.0 * 10.0)

	return &EvaluationResult{
		EvaluatorType: TypeTrajectory,
		Scores: map[string]float64{
			"sequence_match_ratio": round4(seqMatch),
			"precision":            round4(prec),
			"recall":               round4(rec),
			"order_score":          round4(order),
			"unnecessary_actions":  float64(unnecessary),
		},
		OverallScore: overall,
		Reasoning: fmt.Sprintf(
			"Actual tools: %v. Expected: %v. Sequence match=%.3f, precision=%.3f, recall=%.3f, order=%.3f, unnecessary=%d.",
			actual, expected, seqMatch, prec, rec, order, unnecessary),
	}, nil
}

// toolSequence extracts the ordered tool names called across all turns.
func toolSequence(turns []sim.Turn) []string {
	var tools []string
	for _, turn := range turns {
		for _, tc := range turn.ToolCalls {
			if tc.Name != "" {
				tools = append(tools, tc.Name)
			}
		}
	}
	return tools
}

// sequenceMatchRatio is LCS length over the expected length. 1.0 means all
// expected tools were called in order.
func sequenceMatchRatio(actual, expected []string) float64 {
	if len(expected) == 0 {
		return 1.0
	}
	return float64(lcsLength(actual, expected)) / float64(len(expected))
}

// trajectoryPrecision is correct calls over total calls, penalizing
// unnecessary actions.
func trajectoryPrecision(actual, expected []string) float64 {
	if len(actual) == 0 {
		return 0.0
	}
	expectedSet := tokenSet(expected)
	correct := 0
	for _, t := range actual {
		if _, ok := expectedSet[t]; ok {
			correct++
		}
	}
	return float64(correct) / float64(len(actual))
}

// trajectoryRecall is covered expected entries over expected length,
// penalizing missing actions.
func trajectoryRecall(actual, expected []string) float64 {
	if len(expected) == 0 {
		return 1.0
	}
	actualSet := tokenSet(actual)
	found := 0
	for _, t := range expected {
		if _, ok := actualSet[t]; ok {
			found++
		}
	}
	return float64(found) / float64(len(expected))
}

// orderScore is a Kendall-tau-like concordance over tools present in both
// sequences: the fraction of shared-tool pairs whose relative order matches
// the expected ranks. A duplicated expected tool ranks at its last position.
func orderScore(actual, expected []string) float64 {
	expectedSet := tokenSet(expected)
	var shared []string
	for _, t := range actual {
		if _, ok := expectedSet[t]; ok {
			shared = append(shared, t)
		}
	}
	if len(shared) < 2 {
		if len(shared) == 1 {
			return 1.0
		}
		return 0.0
	}

	rankMap := map[string]int{}
	for i, t := range expected {
		rankMap[t] = i
	}
	ranks := make([]int, len(shared))
	for i, t := range shared {
		ranks[i] = rankMap[t]
	}

	concordant, total := 0, 0
	for i := 0; i < len(ranks); i++ {
		for j := i + 1; j < len(ranks); j++ {
			total++
			if ranks[i] < ranks[j] {
				concordant++
			}
		}
	}
	return float64(concordant) / float64(total)
}

// unnecessaryActions counts calls to tools outside the expected set.
func unnecessaryActions(actual, expected []string) int {
	expectedSet := tokenSet(expected)
	count := 0
	for _, t := range actual {
		if _, ok := expectedSet[t]; !ok {
			count++
		}
	}
	return count
}
