// Package stats provides the pure-math statistics behind the evaluation
// engine: descriptive aggregation, ELO rankings, interrater reliability,
// and judge calibration. Nothing here touches a database or a model.
package stats

import (
	"math"
	"sort"
)

// Mean of values. Empty input yields 0.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// Median of values. Empty input yields 0.
func Median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// StdDev is the sample standard deviation. Fewer than two values yields 0.
func StdDev(values []float64) float64 {
	n := len(values)
	if n < 2 {
		return 0
	}
	m := Mean(values)
	sum := 0.0
	for _, v := range values {
		d := v - m
		sum += d * d
	}
	return math.Sqrt(sum / float64(n-1))
}

// AggregatedMetric is the descriptive summary of one metric across a run's
// conversations.
type AggregatedMetric struct {
	MetricName  string  `json:"metric_name"`
	Mean        float64 `json:"mean"`
	Median      float64 `json:"median"`
	StdDev      float64 `json:"std_dev"`
	Min         float64 `json:"min"`
	Max         float64 `json:"max"`
	SampleCount int     `json:"sample_count"`
}

// AggregateMetricValues summarizes one metric's values across conversations.
// Empty input yields a zeroed summary with SampleCount 0.
func AggregateMetricValues(name string, values []float64) AggregatedMetric {
	if len(values) == 0 {
		return AggregatedMetric{MetricName: name}
	}

	minVal, maxVal := values[0], values[0]
	for _, v := range values[1:] {
		minVal = math.Min(minVal, v)
		maxVal = math.Max(maxVal, v)
	}

	return AggregatedMetric{
		MetricName:  name,
		Mean:        round4(Mean(values)),
		Median:      round4(Median(values)),
		StdDev:      round4(StdDev(values)),
		Min:         round4(minVal),
		Max:         round4(maxVal),
		SampleCount: len(values),
	}
}

// ZScoreCalibrate normalizes scores to mean 0 and unit variance. Fewer than
// two scores, or zero variance, returns the input unchanged.
func ZScoreCalibrate(scores []float64) []float64 {
	if len(scores) < 2 {
		return scores
	}
	m := Mean(scores)
	sd := StdDev(scores)
	if sd == 0 {
		return scores
	}
	out := make([]float64, len(scores))
	for i, v := range scores {
		out[i] = round4((v - m) / sd)
	}
	return out
}

// WeightedDimensionAverage averages dimension scores with weights
// re-normalized over the dimensions actually present in scores.
func WeightedDimensionAverage(scores, weights map[string]float64) float64 {
	totalWeight := 0.0
	weightedSum := 0.0
	for name, score := range scores {
		w := weights[name]
		weightedSum += score * w
		totalWeight += w
	}
	if totalWeight == 0 {
		return 0
	}
	return round4(weightedSum / totalWeight)
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }

func round4(v float64) float64 { return math.Round(v*10000) / 10000 }
