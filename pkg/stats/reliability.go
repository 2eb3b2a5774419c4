package stats

import (
	"math"
	"sort"
)

// ReliabilityResult summarizes interrater agreement across rated
// conversations. Alpha above 0.8 is conventionally considered good.
type ReliabilityResult struct {
	Alpha             float64            `json:"alpha"`
	NumItems          int                `json:"num_items"`
	NumRaters         int                `json:"num_raters"`
	PerDimensionAlpha map[string]float64 `json:"per_dimension_alpha,omitempty"`
}

// RaterScores maps dimension name to the score one rater gave.
type RaterScores map[string]float64

// KrippendorffsAlpha computes interval-metric alpha for a ratings matrix
// with rows as items and columns as raters. NaN marks a missing rating.
//
// Observed disagreement is the mean squared difference between rater values
// within each item (items with fewer than two ratings are skipped); expected
// disagreement is the mean squared difference across all values. Alpha is
// 1 - observed/expected, with 1.0 when the data has no variance at all.
func KrippendorffsAlpha(matrix [][]float64) float64 {
	if len(matrix) == 0 {
		return 0
	}

	var observedDiffs []float64
	var allValues []float64

	for _, row := range matrix {
		var values []float64
		for _, v := range row {
			if !math.IsNaN(v) {
				values = append(values, v)
			}
		}
		allValues = append(allValues, values...)
		if len(values) < 2 {
			continue
		}
		for i := 0; i < len(values); i++ {
			for j := i + 1; j < len(values); j++ {
				d := values[i] - values[j]
				observedDiffs = append(observedDiffs, d*d)
			}
		}
	}

	if len(observedDiffs) == 0 || len(allValues) < 2 {
		return 0
	}

	dObserved := Mean(observedDiffs)

	var expectedDiffs []float64
	for i := 0; i < len(allValues); i++ {
		for j := i + 1; j < len(allValues); j++ {
			d := allValues[i] - allValues[j]
			expectedDiffs = append(expectedDiffs, d*d)
		}
	}

	dExpected := Mean(expectedDiffs)
	if dExpected == 0 {
		return 1.0
	}

	return round4(1.0 - dObserved/dExpected)
}

// ComputeReliability computes overall and per-dimension alpha from
// evaluations grouped by conversation. The overall matrix uses each rater's
// mean across the requested dimensions. Fewer than two raters anywhere
// yields a zero result.
func ComputeReliability(evaluationsByConversation map[string][]RaterScores, dimensions []string) ReliabilityResult {
	convIDs := sortedKeys(evaluationsByConversation)

	maxRaters := 0
	for _, evals := range evaluationsByConversation {
		if len(evals) > maxRaters {
			maxRaters = len(evals)
		}
	}

	if maxRaters < 2 {
		return ReliabilityResult{NumItems: len(convIDs), NumRaters: maxRaters}
	}

	overallMatrix := make([][]float64, 0, len(convIDs))
	for _, id := range convIDs {
		row := nanRow(maxRaters)
		for i, scores := range evaluationsByConversation[id] {
			var vals []float64
			for _, dim := range dimensions {
				if v, ok := scores[dim]; ok {
					vals = append(vals, v)
				}
			}
			if len(vals) > 0 {
				row[i] = Mean(vals)
			}
		}
		overallMatrix = append(overallMatrix, row)
	}

	perDim := make(map[string]float64, len(dimensions))
	for _, dim := range dimensions {
		dimMatrix := make([][]float64, 0, len(convIDs))
		for _, id := range convIDs {
			row := nanRow(maxRaters)
			for i, scores := range evaluationsByConversation[id] {
				if v, ok := scores[dim]; ok {
					row[i] = v
				}
			}
			dimMatrix = append(dimMatrix, row)
		}
		perDim[dim] = KrippendorffsAlpha(dimMatrix)
	}

	return ReliabilityResult{
		Alpha:             KrippendorffsAlpha(overallMatrix),
		NumItems:          len(convIDs),
		NumRaters:         maxRaters,
		PerDimensionAlpha: perDim,
	}
}

// RaterCorrelation is the Pearson agreement between two rater positions on
// one dimension.
type RaterCorrelation struct {
	RaterA   int     `json:"rater_a"`
	RaterB   int     `json:"rater_b"`
	PearsonR float64 `json:"pearson_r"`
	N        int     `json:"n"`
}

// PairwiseCorrelations computes Pearson correlation for every rater pair on
// a single dimension. Pairs with fewer than two shared items are omitted.
func PairwiseCorrelations(evaluationsByConversation map[string][]RaterScores, dimension string) []RaterCorrelation {
	convIDs := sortedKeys(evaluationsByConversation)

	maxRaters := 0
	for _, evals := range evaluationsByConversation {
		if len(evals) > maxRaters {
			maxRaters = len(evals)
		}
	}

	var results []RaterCorrelation
	for ra := 0; ra < maxRaters; ra++ {
		for rb := ra + 1; rb < maxRaters; rb++ {
			var xs, ys []float64
			for _, id := range convIDs {
				evals := evaluationsByConversation[id]
				if rb >= len(evals) {
					continue
				}
				va, okA := evals[ra][dimension]
				vb, okB := evals[rb][dimension]
				if okA && okB {
					xs = append(xs, va)
					ys = append(ys, vb)
				}
			}
			if len(xs) >= 2 {
				results = append(results, RaterCorrelation{
					RaterA:   ra,
					RaterB:   rb,
					PearsonR: round4(PearsonR(xs, ys)),
					N:        len(xs),
				})
			}
		}
	}

	return results
}

func nanRow(n int) []float64 {
	row := make([]float64, n)
	for i := range row {
		row[i] = math.NaN()
	}
	return row
}

func sortedKeys(m map[string][]RaterScores) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
