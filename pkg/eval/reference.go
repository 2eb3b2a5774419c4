package eval

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/agentprobe/agentprobe/pkg/sim"
)

var whitespaceRE = regexp.MustCompile(`\s+`)

// ReferenceEvaluator compares assistant responses against gold answers
// carried on the user turns (ExpectedResponse, copied from the scenario
// template). Similarity is pure string math: unigram F1, token LCS, and
// exact match after normalization.
type ReferenceEvaluator struct{}

// NewReferenceEvaluator returns a reference-based evaluator.
func NewReferenceEvaluator() *ReferenceEvaluator {
	return &ReferenceEvaluator{}
}

// Evaluate scores each (assistant response, expected response) pair and
// averages. Conversations without any expected responses score zero with an
// explanatory reasoning.
func (e *ReferenceEvaluator) Evaluate(_ context.Context, turns []sim.Turn, _ []RubricDimension) (*EvaluationResult, error) {
	pairs := referencePairs(turns)

	if len(pairs) == 0 {
		return &EvaluationResult{
			EvaluatorType: TypeReferenceBased,
			Scores:        map[string]float64{"token_overlap": 0, "lcs_ratio": 0, "exact_match": 0},
			OverallScore:  0,
			Reasoning:     "No reference answers available in scenario.",
		}, nil
	}

	var overlapSum, lcsSum, exactSum float64
	for _, p := range pairs {
		overlapSum += tokenOverlap(p.actual, p.expected)
		lcsSum += lcsRatio(p.actual, p.expected)
		exactSum += exactMatch(p.actual, p.expected)
	}

	n := float64(len(pairs))
	avgOverlap := overlapSum / n
	avgLCS := lcsSum / n
	avgExact := exactSum / n

	overall := (0.4*avgOverlap + 0.4*avgLCS + 0.2*avgExact) * 10.0

	return &EvaluationResult{
		EvaluatorType: TypeReferenceBased,
		Scores: map[string]float64{
			"token_overlap": round4(avgOverlap),
			"lcs_ratio":     round4(avgLCS),
			"exact_match":   round4(avgExact),
		},
		OverallScore: round2(overall),
		Reasoning: fmt.Sprintf(
			"Evaluated %d reference pair(s). Token overlap=%.3f, LCS ratio=%.3f, Exact match=%.3f.",
			len(pairs), avgOverlap, avgLCS, avgExact),
	}, nil
}

type referencePair struct {
	actual   string
	expected string
}

// referencePairs walks the turns and pairs each user turn carrying an
// expected response with the next assistant turn's content.
func referencePairs(turns []sim.Turn) []referencePair {
	var pairs []referencePair
	for i, turn := range turns {
		if turn.Role != sim.RoleUser || turn.ExpectedResponse == "" {
			continue
		}
		for j := i + 1; j < len(turns); j++ {
			if turns[j].Role == sim.RoleAssistant {
				pairs = append(pairs, referencePair{actual: turns[j].Content, expected: turn.ExpectedResponse})
				break
			}
		}
	}
	return pairs
}

func normalizeText(text string) string {
	return whitespaceRE.ReplaceAllString(strings.TrimSpace(strings.ToLower(text)), " ")
}

func tokenizeText(text string) []string {
	return strings.Fields(normalizeText(text))
}

// tokenOverlap is a ROUGE-1 F1 approximation over unigram sets.
func tokenOverlap(actual, expected string) float64 {
	actualSet := tokenSet(tokenizeText(actual))
	expectedSet := tokenSet(tokenizeText(expected))

	if len(actualSet) == 0 || len(expectedSet) == 0 {
		return 0
	}

	overlap := 0
	for tok := range actualSet {
		if _, ok := expectedSet[tok]; ok {
			overlap++
		}
	}

	precision := float64(overlap) / float64(len(actualSet))
	recall := float64(overlap) / float64(len(expectedSet))
	if precision+recall == 0 {
		return 0
	}
	return 2.0 * precision * recall / (precision + recall)
}

// lcsRatio is a ROUGE-L approximation: token LCS length over the longer
// token count.
func lcsRatio(actual, expected string) float64 {
	aTokens := tokenizeText(actual)
	eTokens := tokenizeText(expected)

	if len(aTokens) == 0 || len(eTokens) == 0 {
		return 0
	}

	return float64(lcsLength(aTokens, eTokens)) / float64(max(len(aTokens), len(eTokens)))
}

func exactMatch(actual, expected string) float64 {
	if normalizeText(actual) == normalizeText(expected) {
		return 1.0
	}
	return 0.0
}

// lcsLength computes the longest common subsequence length of two token
// slices with the standard dynamic program.
func lcsLength(a, b []string) int {
	m, n := len(a), len(b)
	dp := make([][]int, m+1)
	for i := range dp {
		dp[i] = make([]int, n+1)
	}
	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			if a[i-1] == b[j-1] {
				dp[i][j] = dp[i-1][j-1] + 1
			} else {
				dp[i][j] = max(dp[i-1][j], dp[i][j-1])
			}
		}
	}
	return dp[m][n]
}

func tokenSet(tokens []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		set[t] = struct{}{}
	}
	return set
}
