package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpectedScore(t *testing.T) {
	assert.InDelta(t, 0.5, ExpectedScore(1500, 1500), 0.0001)
	// 400 points of advantage is a 10:1 expected win ratio.
	assert.InDelta(t, 10.0/11.0, ExpectedScore(1900, 1500), 0.0001)
	assert.InDelta(t, 1.0/11.0, ExpectedScore(1500, 1900), 0.0001)
}

func TestUpdateRatingsWin(t *testing.T) {
	result := UpdateRatings(1500, 1500, DefaultKFactor, false)
	assert.InDelta(t, 16.0, result.WinnerDelta, 0.001)
	assert.InDelta(t, -16.0, result.LoserDelta, 0.001)
	assert.InDelta(t, 1516.0, result.WinnerNewRating, 0.001)
	assert.InDelta(t, 1484.0, result.LoserNewRating, 0.001)
}

func TestUpdateRatingsDraw(t *testing.T) {
	// Equal ratings drawing moves nobody.
	result := UpdateRatings(1500, 1500, DefaultKFactor, true)
	assert.Zero(t, result.WinnerDelta)
	assert.Zero(t, result.LoserDelta)

	// A draw against a stronger player gains rating.
	result = UpdateRatings(1400, 1600, DefaultKFactor, true)
	assert.Positive(t, result.WinnerDelta)
	assert.Negative(t, result.LoserDelta)
}

func TestUpdateRatingsUpset(t *testing.T) {
	// An underdog win pays out more than the 16-point baseline.
	result := UpdateRatings(1400, 1600, DefaultKFactor, false)
	assert.Greater(t, result.WinnerDelta, 16.0)
}

func TestComputeRankings(t *testing.T) {
	matches := []MatchResult{
		{AgentA: "agent-a", AgentB: "agent-b", Result: ResultAWins},
		{AgentA: "agent-b", AgentB: "agent-c", Result: ResultAWins},
		{AgentA: "agent-a", AgentB: "agent-c", Result: ResultAWins},
	}

	ratings := ComputeRankings(matches, DefaultRating, DefaultKFactor)

	assert.Len(t, ratings, 3)
	assert.Greater(t, ratings["agent-a"], ratings["agent-b"])
	assert.Greater(t, ratings["agent-b"], ratings["agent-c"])

	// Rating is zero-sum up to per-match rounding.
	sum := ratings["agent-a"] + ratings["agent-b"] + ratings["agent-c"]
	assert.InDelta(t, 3*DefaultRating, sum, 0.1)
}

func TestComputeRankingsBWins(t *testing.T) {
	ratings := ComputeRankings([]MatchResult{
		{AgentA: "agent-a", AgentB: "agent-b", Result: ResultBWins},
	}, DefaultRating, DefaultKFactor)

	assert.InDelta(t, 1484.0, ratings["agent-a"], 0.001)
	assert.InDelta(t, 1516.0, ratings["agent-b"], 0.001)
}

func TestComputeRankingsDrawAndUnknown(t *testing.T) {
	ratings := ComputeRankings([]MatchResult{
		{AgentA: "agent-a", AgentB: "agent-b", Result: ResultDraw},
		{AgentA: "agent-a", AgentB: "agent-b", Result: "invalid"},
	}, DefaultRating, DefaultKFactor)

	// The draw between equals and the unknown result both leave 1500.
	assert.InDelta(t, DefaultRating, ratings["agent-a"], 0.001)
	assert.InDelta(t, DefaultRating, ratings["agent-b"], 0.001)
}

func TestComputeRankingsEmpty(t *testing.T) {
	assert.Empty(t, ComputeRankings(nil, DefaultRating, DefaultKFactor))
}
