package stats

import "math"

// Standard ELO parameters, the same ones Chatbot Arena uses for LLM ranking.
const (
	DefaultRating  = 1500.0
	DefaultKFactor = 32.0
)

// Match outcomes as recorded on pairwise comparison results.
const (
	ResultAWins = "a_wins"
	ResultBWins = "b_wins"
	ResultDraw  = "draw"
)

// MatchResult is one pairwise outcome. Order matters: rankings fold matches
// chronologically.
type MatchResult struct {
	AgentA string
	AgentB string
	Result string
}

// EloResult holds the updated ratings for both sides of one match.
type EloResult struct {
	WinnerNewRating float64
	LoserNewRating  float64
	WinnerDelta     float64
	LoserDelta      float64
}

// ExpectedScore is the probability that a player rated ratingA beats one
// rated ratingB.
func ExpectedScore(ratingA, ratingB float64) float64 {
	return 1.0 / (1.0 + math.Pow(10, (ratingB-ratingA)/400.0))
}

// UpdateRatings applies one match outcome. For a draw the first argument is
// player A rather than the winner. Deltas and ratings are rounded to 0.01.
func UpdateRatings(winnerRating, loserRating, kFactor float64, draw bool) EloResult {
	expWinner := ExpectedScore(winnerRating, loserRating)
	expLoser := 1.0 - expWinner

	actualWinner, actualLoser := 1.0, 0.0
	if draw {
		actualWinner, actualLoser = 0.5, 0.5
	}

	winnerDelta := round2(kFactor * (actualWinner - expWinner))
	loserDelta := round2(kFactor * (actualLoser - expLoser))

	return EloResult{
		WinnerNewRating: round2(winnerRating + winnerDelta),
		LoserNewRating:  round2(loserRating + loserDelta),
		WinnerDelta:     winnerDelta,
		LoserDelta:      loserDelta,
	}
}

// ComputeRankings folds matches in order and returns the final rating per
// agent. Unseen agents enter at initialRating; unknown result strings leave
// both ratings untouched.
func ComputeRankings(matches []MatchResult, initialRating, kFactor float64) map[string]float64 {
	ratings := make(map[string]float64)
	ensure := func(id string) {
		if _, ok := ratings[id]; !ok {
			ratings[id] = initialRating
		}
	}

	for _, match := range matches {
		ensure(match.AgentA)
		ensure(match.AgentB)

		switch match.Result {
		case ResultDraw:
			elo := UpdateRatings(ratings[match.AgentA], ratings[match.AgentB], kFactor, true)
			ratings[match.AgentA] = elo.WinnerNewRating
			ratings[match.AgentB] = elo.LoserNewRating
		case ResultAWins:
			elo := UpdateRatings(ratings[match.AgentA], ratings[match.AgentB], kFactor, false)
			ratings[match.AgentA] = elo.WinnerNewRating
			ratings[match.AgentB] = elo.LoserNewRating
		case ResultBWins:
			elo := UpdateRatings(ratings[match.AgentB], ratings[match.AgentA], kFactor, false)
			ratings[match.AgentB] = elo.WinnerNewRating
			ratings[match.AgentA] = elo.LoserNewRating
		}
	}

	return ratings
}
