// Package scoring implements the Scoring Pipeline: it reduces a raw
// EpisodeResult to a single bounded per-episode score, and reduces a
// game's raw episodes into a types.GameReport. Family- and top-line
// aggregation are pure derived methods on the report types themselves
// (see internal/types) and are not duplicated here.
package scoring

import "reasoning-bench/internal/types"

const (
	weightEfficiency         = 0.40
	weightErrorInverse       = 0.15
	weightBacktrackInverse   = 0.15
	weightProgressSteadiness = 0.15
	weightHintIndependence   = 0.15
)

// ScoreEpisode reduces one EpisodeResult to a score in [0, 100], rounded
// to 2 decimals for storage. Unsolved episodes always score 0.
func ScoreEpisode(e types.EpisodeResult) float64 {
	if !e.Success() {
		return 0
	}

	raw := 100 * (weightEfficiency*efficiencyComponent(e) +
		weightErrorInverse*(1-e.ErrorRate()) +
		weightBacktrackInverse*backtrackInverseComponent(e) +
		weightProgressSteadiness*progressSteadinessComponent(e) +
		weightHintIndependence*(1-e.HintDependency()))

	return types.Round2(clamp(raw, 0, 100))
}

// efficiencyComponent is e.EfficiencyScore() when optimal_steps is known;
// otherwise a fallback that decays with steps taken, since there is no
// known optimum to compare against.
func efficiencyComponent(e types.EpisodeResult) float64 {
	if e.OptimalSteps != nil {
		return e.EfficiencyScore()
	}
	fallback := 1 - float64(e.StepsTaken-1)/100
	if fallback < 0 {
		return 0
	}
	return fallback
}

func backtrackInverseComponent(e types.EpisodeResult) float64 {
	if e.ReasoningMetrics == nil {
		return 1
	}
	rate := e.ReasoningMetrics.BacktrackRate
	if rate > 1 {
		rate = 1
	}
	return 1 - rate
}

func progressSteadinessComponent(e types.EpisodeResult) float64 {
	if e.ReasoningMetrics == nil {
		return 1
	}
	return e.ReasoningMetrics.ProgressSteadiness
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// ScoreGame reduces a game's raw episodes into a types.GameReport: every
// episode is scored independently and the scores stored verbatim, so
// GameReport.Score/ScoreStdDev (pure methods on the stored slice) need no
// access to the original episodes afterward.
func ScoreGame(gameID string, fam types.FamilyID, difficulty types.Difficulty, episodes []types.EpisodeResult) types.GameReport {
	scores := make([]float64, len(episodes))
	solved := 0
	for i, e := range episodes {
		scores[i] = ScoreEpisode(e)
		if e.Success() {
			solved++
		}
	}

	return types.GameReport{
		GameID:            gameID,
		Family:            fam,
		Difficulty:        difficulty,
		EpisodesEvaluated: len(episodes),
		EpisodesSolved:    solved,
		EpisodeScores:     scores,
	}
}
