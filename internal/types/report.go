package types

import (
	"encoding/json"
	"math"
)

// GameReport is the scored result of evaluating one game at one
// difficulty: episode counts plus the already-weighted per-episode score
// list the Scoring Pipeline produced. Every method below is a pure
// function of these stored fields, so a GameReport is freely clonable and
// round-trips through serialization unchanged.
type GameReport struct {
	GameID            string     `json:"game_id"`
	Family            FamilyID   `json:"family"`
	Difficulty        Difficulty `json:"difficulty"`
	EpisodesEvaluated int        `json:"episodes_evaluated"`
	EpisodesSolved    int        `json:"episodes_solved"`
	EpisodeScores     []float64  `json:"episode_scores"`
}

// Score is the arithmetic mean of episode scores, including zeros for
// unsolved episodes.
func (g GameReport) Score() float64 {
	if len(g.EpisodeScores) == 0 {
		return 0
	}
	sum := 0.0
	for _, s := range g.EpisodeScores {
		sum += s
	}
	return sum / float64(len(g.EpisodeScores))
}

// SolveRate is the fraction of evaluated episodes that were solved.
func (g GameReport) SolveRate() float64 {
	if g.EpisodesEvaluated == 0 {
		return 0
	}
	return float64(g.EpisodesSolved) / float64(g.EpisodesEvaluated)
}

// ScoreStdDev is the population standard deviation (divisor N) of the
// episode score list.
func (g GameReport) ScoreStdDev() float64 {
	n := len(g.EpisodeScores)
	if n == 0 {
		return 0
	}
	mean := g.Score()
	variance := 0.0
	for _, s := range g.EpisodeScores {
		d := s - mean
		variance += d * d
	}
	variance /= float64(n)
	return math.Sqrt(variance)
}

// MarshalJSON adds Score, SolveRate, and ScoreStdDev to the serialized
// document alongside the stored fields, so an external consumer reading
// the JSON sees the same derived view the Go methods above compute.
func (g GameReport) MarshalJSON() ([]byte, error) {
	type alias GameReport
	return json.Marshal(struct {
		alias
		Score       float64 `json:"score"`
		SolveRate   float64 `json:"solve_rate"`
		ScoreStdDev float64 `json:"score_stddev"`
	}{
		alias:       alias(g),
		Score:       g.Score(),
		SolveRate:   g.SolveRate(),
		ScoreStdDev: g.ScoreStdDev(),
	})
}

// FamilyReport is the scored result of one reasoning family: every game
// the Family Registry declares for it, including placeholder entries
// (EpisodesEvaluated == 0) for games that were not run in this benchmark.
type FamilyReport struct {
	Family            FamilyID     `json:"family"`
	Games             []GameReport `json:"games"`
	ExpectedGameCount int          `json:"expected_game_count"`
}

// EvaluatedCount is the number of games in this family with at least one
// evaluated episode.
func (f FamilyReport) EvaluatedCount() int {
	n := 0
	for _, g := range f.Games {
		if g.EpisodesEvaluated > 0 {
			n++
		}
	}
	return n
}

// Coverage is the fraction of the family's expected games that were
// evaluated.
func (f FamilyReport) Coverage() float64 {
	if f.ExpectedGameCount == 0 {
		return 0
	}
	return float64(f.EvaluatedCount()) / float64(f.ExpectedGameCount)
}

// Score is the arithmetic mean of scores for games with at least one
// evaluated episode; 0 if none were evaluated.
func (f FamilyReport) Score() float64 {
	sum, n := 0.0, 0
	for _, g := range f.Games {
		if g.EpisodesEvaluated > 0 {
			sum += g.Score()
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// MarshalJSON adds EvaluatedCount, Coverage, and Score to the serialized
// document alongside the stored fields.
func (f FamilyReport) MarshalJSON() ([]byte, error) {
	type alias FamilyReport
	return json.Marshal(struct {
		alias
		EvaluatedCount int     `json:"evaluated_count"`
		Coverage       float64 `json:"coverage"`
		Score          float64 `json:"score"`
	}{
		alias:          alias(f),
		EvaluatedCount: f.EvaluatedCount(),
		Coverage:       f.Coverage(),
		Score:          f.Score(),
	})
}
