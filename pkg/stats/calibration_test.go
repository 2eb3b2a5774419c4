package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeCalibrationPerfect(t *testing.T) {
	human := []float64{2, 5, 8}
	model := []float64{2, 5, 8}

	m, err := ComputeCalibration(human, model)
	require.NoError(t, err)

	assert.InDelta(t, 1.0, m.PearsonR, 0.0001)
	assert.InDelta(t, 1.0, m.SpearmanRho, 0.0001)
	assert.Zero(t, m.MAE)
	assert.Zero(t, m.RMSE)
	assert.Zero(t, m.Bias)
	assert.Equal(t, 3, m.N)
}

func TestComputeCalibrationBias(t *testing.T) {
	human := []float64{4, 6}
	model := []float64{5, 7}

	m, err := ComputeCalibration(human, model)
	require.NoError(t, err)

	// Model scores one point higher across the board.
	assert.InDelta(t, 1.0, m.Bias, 0.0001)
	assert.InDelta(t, 1.0, m.MAE, 0.0001)
	assert.InDelta(t, 1.0, m.RMSE, 0.0001)
}

func TestComputeCalibrationConstantModel(t *testing.T) {
	m, err := ComputeCalibration([]float64{2, 8}, []float64{5, 5})
	require.NoError(t, err)
	assert.Zero(t, m.PearsonR, "no variance on one side means no correlation")
}

func TestComputeCalibrationErrors(t *testing.T) {
	_, err := ComputeCalibration([]float64{1, 2}, []float64{1})
	assert.ErrorContains(t, err, "length mismatch")

	_, err = ComputeCalibration([]float64{1}, []float64{1})
	assert.ErrorContains(t, err, "at least 2")
}

func TestSpearmanRhoWithTies(t *testing.T) {
	// Monotone but nonlinear relation still ranks perfectly.
	rho := SpearmanRho([]float64{1, 2, 3, 4}, []float64{1, 4, 9, 16})
	assert.InDelta(t, 1.0, rho, 0.0001)

	// Ties get average ranks on both sides.
	rho = SpearmanRho([]float64{1, 1, 3}, []float64{2, 2, 5})
	assert.InDelta(t, 1.0, rho, 0.0001)
}

func TestCalibrationCurve(t *testing.T) {
	human := []float64{1, 2, 8, 9}
	model := []float64{1, 2, 8, 9}

	bins := CalibrationCurve(human, model, 2)

	require.Len(t, bins, 2)
	assert.Equal(t, 2, bins[0].Count)
	assert.Equal(t, 2, bins[1].Count)
	assert.InDelta(t, 1.5, bins[0].AvgModel, 0.0001)
	assert.InDelta(t, 8.5, bins[1].AvgModel, 0.0001)
	assert.InDelta(t, bins[0].AvgHuman, bins[0].AvgModel, 0.0001)
	assert.Less(t, bins[0].BinCenter, bins[1].BinCenter)
}

func TestCalibrationCurveSingleBin(t *testing.T) {
	bins := CalibrationCurve([]float64{3, 5, 7}, []float64{6, 6, 6}, 10)
	require.Len(t, bins, 1)
	assert.Equal(t, 3, bins[0].Count)
	assert.InDelta(t, 6.0, bins[0].BinCenter, 0.0001)
	assert.InDelta(t, 5.0, bins[0].AvgHuman, 0.0001)
}

func TestCalibrationCurveOneBinRequested(t *testing.T) {
	bins := CalibrationCurve([]float64{1, 9}, []float64{1, 9}, 1)
	require.Len(t, bins, 1)
	assert.Equal(t, 2, bins[0].Count)
	assert.InDelta(t, 5.0, bins[0].BinCenter, 0.0001)
}

func TestCalibrationCurveEmpty(t *testing.T) {
	assert.Empty(t, CalibrationCurve(nil, nil, 10))
}
