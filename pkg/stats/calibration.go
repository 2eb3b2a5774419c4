package stats

import (
	"fmt"
	"math"
	"sort"
)

// CalibrationMetrics measures how well model-judge scores track human
// scores over paired observations. Positive bias means the model scores
// higher than humans on average.
type CalibrationMetrics struct {
	PearsonR    float64 `json:"pearson_r"`
	SpearmanRho float64 `json:"spearman_rho"`
	MAE         float64 `json:"mae"`
	RMSE        float64 `json:"rmse"`
	Bias        float64 `json:"bias"`
	N           int     `json:"n"`
}

// ComputeCalibration computes agreement metrics between paired human and
// model scores. Requires equal lengths and at least two pairs.
func ComputeCalibration(humanScores, modelScores []float64) (CalibrationMetrics, error) {
	n := len(humanScores)
	if n != len(modelScores) {
		return CalibrationMetrics{}, fmt.Errorf("length mismatch: %d human vs %d model", n, len(modelScores))
	}
	if n < 2 {
		return CalibrationMetrics{}, fmt.Errorf("need at least 2 paired observations, got %d", n)
	}

	var absSum, sqSum, biasSum float64
	for i := range humanScores {
		d := humanScores[i] - modelScores[i]
		absSum += math.Abs(d)
		sqSum += d * d
		biasSum += modelScores[i] - humanScores[i]
	}

	return CalibrationMetrics{
		PearsonR:    round4(PearsonR(humanScores, modelScores)),
		SpearmanRho: round4(SpearmanRho(humanScores, modelScores)),
		MAE:         round4(absSum / float64(n)),
		RMSE:        round4(math.Sqrt(sqSum / float64(n))),
		Bias:        round4(biasSum / float64(n)),
		N:           n,
	}, nil
}

// PearsonR is the Pearson correlation coefficient. Returns 0 when either
// side has no variance or fewer than two points.
func PearsonR(x, y []float64) float64 {
	n := len(x)
	if n < 2 || n != len(y) {
		return 0
	}
	mx, my := Mean(x), Mean(y)
	var cov, sx, sy float64
	for i := 0; i < n; i++ {
		dx, dy := x[i]-mx, y[i]-my
		cov += dx * dy
		sx += dx * dx
		sy += dy * dy
	}
	if sx == 0 || sy == 0 {
		return 0
	}
	return cov / (math.Sqrt(sx) * math.Sqrt(sy))
}

// SpearmanRho converts both sides to average ranks and correlates the
// ranks, so ties are handled and monotone agreement is measured.
func SpearmanRho(x, y []float64) float64 {
	return PearsonR(toRanks(x), toRanks(y))
}

// CalibrationBin is one bucket of the calibration curve.
type CalibrationBin struct {
	BinCenter float64 `json:"bin_center"`
	AvgHuman  float64 `json:"avg_human"`
	AvgModel  float64 `json:"avg_model"`
	Count     int     `json:"count"`
}

// CalibrationCurve bins pairs uniformly over the model-score range. A well
// calibrated judge has AvgHuman close to AvgModel in every bin. A constant
// model score collapses to a single bin.
func CalibrationCurve(humanScores, modelScores []float64, numBins int) []CalibrationBin {
	if len(humanScores) == 0 || len(modelScores) == 0 {
		return nil
	}

	minScore, maxScore := modelScores[0], modelScores[0]
	for _, m := range modelScores[1:] {
		minScore = math.Min(minScore, m)
		maxScore = math.Max(maxScore, m)
	}

	if maxScore == minScore {
		return []CalibrationBin{{
			BinCenter: round2(minScore),
			AvgHuman:  round4(Mean(humanScores)),
			AvgModel:  round4(minScore),
			Count:     len(humanScores),
		}}
	}

	binWidth := (maxScore - minScore) / float64(numBins)
	type pair struct{ human, model float64 }
	bins := make(map[int][]pair)

	n := min(len(humanScores), len(modelScores))
	for i := 0; i < n; i++ {
		idx := int((modelScores[i] - minScore) / binWidth)
		if idx > numBins-1 {
			idx = numBins - 1
		}
		bins[idx] = append(bins[idx], pair{humanScores[i], modelScores[i]})
	}

	indices := make([]int, 0, len(bins))
	for idx := range bins {
		indices = append(indices, idx)
	}
	sort.Ints(indices)

	result := make([]CalibrationBin, 0, len(indices))
	for _, idx := range indices {
		pairs := bins[idx]
		var humanSum, modelSum float64
		for _, p := range pairs {
			humanSum += p.human
			modelSum += p.model
		}
		count := float64(len(pairs))
		result = append(result, CalibrationBin{
			BinCenter: round2(minScore + (float64(idx)+0.5)*binWidth),
			AvgHuman:  round4(humanSum / count),
			AvgModel:  round4(modelSum / count),
			Count:     len(pairs),
		})
	}

	return result
}

// toRanks converts values to 1-based average ranks, assigning tied values
// the mean of the ranks they span.
func toRanks(values []float64) []float64 {
	n := len(values)
	type indexed struct {
		idx int
		val float64
	}
	order := make([]indexed, n)
	for i, v := range values {
		order[i] = indexed{i, v}
	}
	sort.SliceStable(order, func(a, b int) bool { return order[a].val < order[b].val })

	ranks := make([]float64, n)
	i := 0
	for i < n {
		j := i
		for j < n-1 && order[j+1].val == order[i].val {
			j++
		}
		avgRank := float64(i+j)/2.0 + 1.0
		for k := i; k <= j; k++ {
			ranks[order[k].idx] = avgRank
		}
		i = j + 1
	}
	return ranks
}
