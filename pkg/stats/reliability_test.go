package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKrippendorffsAlphaPerfectAgreement(t *testing.T) {
	matrix := [][]float64{
		{8, 8},
		{6, 6},
		{4, 4},
	}
	assert.InDelta(t, 1.0, KrippendorffsAlpha(matrix), 0.0001)
}

func TestKrippendorffsAlphaSystematicDisagreement(t *testing.T) {
	matrix := [][]float64{
		{1, 10},
		{10, 1},
	}
	// D_o = 81, D_e = 54, alpha = 1 - 81/54 = -0.5.
	assert.InDelta(t, -0.5, KrippendorffsAlpha(matrix), 0.0001)
}

func TestKrippendorffsAlphaSkipsSingleRaterItems(t *testing.T) {
	matrix := [][]float64{
		{8, 8},
		{5, math.NaN()},
		{6, 6},
	}
	// The single-rated item contributes no observed pairs but its value
	// still enters the expected-disagreement pool.
	alpha := KrippendorffsAlpha(matrix)
	assert.Greater(t, alpha, 0.9)
}

func TestKrippendorffsAlphaNoVariance(t *testing.T) {
	matrix := [][]float64{
		{7, 7},
		{7, 7},
	}
	assert.Equal(t, 1.0, KrippendorffsAlpha(matrix))
}

func TestKrippendorffsAlphaDegenerate(t *testing.T) {
	assert.Zero(t, KrippendorffsAlpha(nil))
	assert.Zero(t, KrippendorffsAlpha([][]float64{{5, math.NaN()}}))
}

func TestComputeReliability(t *testing.T) {
	evals := map[string][]RaterScores{
		"conv-1": {
			{"helpfulness": 8, "accuracy": 7},
			{"helpfulness": 8, "accuracy": 7},
		},
		"conv-2": {
			{"helpfulness": 4, "accuracy": 5},
			{"helpfulness": 4, "accuracy": 5},
		},
	}

	result := ComputeReliability(evals, []string{"helpfulness", "accuracy"})

	assert.Equal(t, 2, result.NumItems)
	assert.Equal(t, 2, result.NumRaters)
	assert.InDelta(t, 1.0, result.Alpha, 0.0001)
	require.Contains(t, result.PerDimensionAlpha, "helpfulness")
	assert.InDelta(t, 1.0, result.PerDimensionAlpha["helpfulness"], 0.0001)
}

func TestComputeReliabilityTooFewRaters(t *testing.T) {
	evals := map[string][]RaterScores{
		"conv-1": {{"helpfulness": 8}},
	}

	result := ComputeReliability(evals, []string{"helpfulness"})

	assert.Zero(t, result.Alpha)
	assert.Equal(t, 1, result.NumItems)
	assert.Equal(t, 1, result.NumRaters)
	assert.Empty(t, result.PerDimensionAlpha)
}

func TestPairwiseCorrelations(t *testing.T) {
	evals := map[string][]RaterScores{
		"conv-1": {{"helpfulness": 2}, {"helpfulness": 3}},
		"conv-2": {{"helpfulness": 5}, {"helpfulness": 6}},
		"conv-3": {{"helpfulness": 8}, {"helpfulness": 9}},
	}

	correlations := PairwiseCorrelations(evals, "helpfulness")

	require.Len(t, correlations, 1)
	assert.Equal(t, 0, correlations[0].RaterA)
	assert.Equal(t, 1, correlations[0].RaterB)
	assert.Equal(t, 3, correlations[0].N)
	// Raters move in lockstep, so correlation is perfect.
	assert.InDelta(t, 1.0, correlations[0].PearsonR, 0.0001)
}

func TestPairwiseCorrelationsInsufficientData(t *testing.T) {
	evals := map[string][]RaterScores{
		"conv-1": {{"helpfulness": 2}, {"helpfulness": 3}},
	}
	assert.Empty(t, PairwiseCorrelations(evals, "helpfulness"))
}
