package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeanMedianStdDev(t *testing.T) {
	values := []float64{2, 4, 4, 4, 5, 5, 7, 9}

	assert.InDelta(t, 5.0, Mean(values), 0.0001)
	assert.InDelta(t, 4.5, Median(values), 0.0001)
	assert.InDelta(t, 2.138, StdDev(values), 0.001)

	// Odd-length median is the middle element.
	assert.InDelta(t, 5.0, Median([]float64{9, 5, 2}), 0.0001)
}

func TestDescriptiveEdgeCases(t *testing.T) {
	assert.Zero(t, Mean(nil))
	assert.Zero(t, Median(nil))
	assert.Zero(t, StdDev(nil))
	assert.Zero(t, StdDev([]float64{42}), "sample stdev needs two observations")
}

func TestAggregateMetricValues(t *testing.T) {
	agg := AggregateMetricValues("avg_latency_ms", []float64{100, 200, 300})

	assert.Equal(t, "avg_latency_ms", agg.MetricName)
	assert.InDelta(t, 200.0, agg.Mean, 0.0001)
	assert.InDelta(t, 200.0, agg.Median, 0.0001)
	assert.InDelta(t, 100.0, agg.StdDev, 0.0001)
	assert.InDelta(t, 100.0, agg.Min, 0.0001)
	assert.InDelta(t, 300.0, agg.Max, 0.0001)
	assert.Equal(t, 3, agg.SampleCount)

	// Input order does not affect the aggregate.
	reversed := AggregateMetricValues("avg_latency_ms", []float64{300, 200, 100})
	assert.Equal(t, agg, reversed)
}

func TestAggregateMetricValuesEmpty(t *testing.T) {
	agg := AggregateMetricValues("tokens_per_turn", nil)

	assert.Equal(t, "tokens_per_turn", agg.MetricName)
	assert.Zero(t, agg.Mean)
	assert.Zero(t, agg.SampleCount)
}

func TestZScoreCalibrate(t *testing.T) {
	scores := []float64{2, 4, 6}
	calibrated := ZScoreCalibrate(scores)

	require.Len(t, calibrated, 3)
	assert.InDelta(t, 0.0, Mean(calibrated), 0.0001)
	assert.Less(t, calibrated[0], calibrated[2])
}

func TestZScoreCalibrateDegenerate(t *testing.T) {
	// Constant input has no spread to normalize, values pass through.
	constant := []float64{5, 5, 5}
	assert.Equal(t, constant, ZScoreCalibrate(constant))

	single := []float64{7}
	assert.Equal(t, single, ZScoreCalibrate(single))
}

func TestWeightedDimensionAverage(t *testing.T) {
	scores := map[string]float64{"helpfulness": 8, "accuracy": 6}
	weights := map[string]float64{"helpfulness": 0.75, "accuracy": 0.25}

	assert.InDelta(t, 7.5, WeightedDimensionAverage(scores, weights), 0.0001)
}

func TestWeightedDimensionAverageRenormalizes(t *testing.T) {
	// Weights that do not sum to 1 are normalized before averaging.
	scores := map[string]float64{"a": 10, "b": 0}
	weights := map[string]float64{"a": 3, "b": 1}

	assert.InDelta(t, 7.5, WeightedDimensionAverage(scores, weights), 0.0001)
}

func TestWeightedDimensionAverageMissingWeights(t *testing.T) {
	scores := map[string]float64{"a": 4, "b": 8}

	// Dimensions without a weight contribute nothing, so an empty weight
	// map yields zero rather than an arbitrary average.
	assert.Zero(t, WeightedDimensionAverage(scores, nil))

	// Weighted dims are renormalized over those actually present.
	assert.InDelta(t, 4.0, WeightedDimensionAverage(scores, map[string]float64{"a": 0.3}), 0.0001)
}
