package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultDimensions(t *testing.T) {
	dims := DefaultDimensions()

	require.Len(t, dims, 5)
	total := 0.0
	for _, d := range dims {
		total += d.Weight
		assert.NotEmpty(t, d.Criteria)
	}
	assert.InDelta(t, 1.0, total, 0.0001)
	assert.Equal(t, "helpfulness", dims[0].Name)
	assert.InDelta(t, 0.30, dims[0].Weight, 0.0001)
}

func TestDimensionsFromMaps(t *testing.T) {
	rows := []map[string]interface{}{
		{
			"name":        "politeness",
			"description": "Tone of the responses",
			"weight":      0.6,
			"criteria":    []interface{}{"Stays courteous"},
		},
		{"name": "brevity"},
		{"description": "nameless rows are dropped"},
	}

	dims := DimensionsFromMaps(rows)

	require.Len(t, dims, 2)
	assert.Equal(t, "politeness", dims[0].Name)
	assert.InDelta(t, 0.6, dims[0].Weight, 0.0001)
	assert.Equal(t, []string{"Stays courteous"}, dims[0].Criteria)
	// Missing weight defaults to 1.0.
	assert.InDelta(t, 1.0, dims[1].Weight, 0.0001)
}

func TestDimensionsFromMapsFallsBackToDefaults(t *testing.T) {
	assert.Len(t, DimensionsFromMaps(nil), 5)
	assert.Len(t, DimensionsFromMaps([]map[string]interface{}{{"weight": 0.5}}), 5)
}

func TestWeightedOverall(t *testing.T) {
	dims := []RubricDimension{
		{Name: "a", Weight: 0.5},
		{Name: "b", Weight: 0.5},
		{Name: "c", Weight: 2.0},
	}

	// Unscored dimensions drop out and weights renormalize.
	scores := map[string]float64{"a": 8, "b": 6}
	assert.InDelta(t, 7.0, weightedOverall(scores, dims), 0.0001)

	assert.Zero(t, weightedOverall(nil, dims))
	assert.Zero(t, weightedOverall(map[string]float64{"unknown": 5}, dims))
}

func TestClampScore(t *testing.T) {
	assert.InDelta(t, 10.0, clampScore(12.5), 0.0001)
	assert.InDelta(t, 0.0, clampScore(-1), 0.0001)
	assert.InDelta(t, 7.3, clampScore(7.3), 0.0001)
}
