package types

import (
	"encoding/json"
	"time"
)

// BenchmarkResult is the top-level, frozen output of an evaluate_many run.
// Families and Games carry every number the top-line score, coverage, and
// solve-rate views need — all of BenchmarkResult's methods are pure
// functions of these stored fields.
type BenchmarkResult struct {
	Timestamp       time.Time      `json:"timestamp"`
	Difficulty      Difficulty     `json:"difficulty"`
	EpisodesPerGame int            `json:"episodes_per_game"`
	SolverDesc      string         `json:"solver_desc"`
	Families        []FamilyReport `json:"families"`

	// Games holds only games with at least one evaluated episode; games
	// with EpisodesEvaluated == 0 appear solely as placeholders nested
	// inside Families.
	Games []GameReport `json:"games"`

	// TotalGameCount is the Family Registry's declared total (30),
	// supplied at construction time so Coverage needs no registry lookup.
	TotalGameCount int `json:"total_game_count"`
}

// TopLineScore is the arithmetic mean of family scores over families with
// at least one evaluated game; 0 if none were evaluated.
func (b BenchmarkResult) TopLineScore() float64 {
	sum, n := 0.0, 0
	for _, f := range b.Families {
		if f.EvaluatedCount() > 0 {
			sum += f.Score()
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// TotalEpisodes is the sum of evaluated episodes across all games.
func (b BenchmarkResult) TotalEpisodes() int {
	total := 0
	for _, g := range b.Games {
		total += g.EpisodesEvaluated
	}
	return total
}

// TotalSolved is the sum of solved episodes across all games.
func (b BenchmarkResult) TotalSolved() int {
	total := 0
	for _, g := range b.Games {
		total += g.EpisodesSolved
	}
	return total
}

// OverallSolveRate is the aggregate solve rate across all evaluated
// episodes.
func (b BenchmarkResult) OverallSolveRate() float64 {
	total := b.TotalEpisodes()
	if total == 0 {
		return 0
	}
	return float64(b.TotalSolved()) / float64(total)
}

// Coverage is the fraction of the declared game set that was evaluated.
func (b BenchmarkResult) Coverage() float64 {
	if b.TotalGameCount == 0 {
		return 0
	}
	evaluated := 0
	for _, g := range b.Games {
		if g.EpisodesEvaluated > 0 {
			evaluated++
		}
	}
	return float64(evaluated) / float64(b.TotalGameCount)
}

// FamiliesEvaluated is the number of families with at least one evaluated
// game.
func (b BenchmarkResult) FamiliesEvaluated() int {
	n := 0
	for _, f := range b.Families {
		if f.EvaluatedCount() > 0 {
			n++
		}
	}
	return n
}

// MarshalJSON adds TopLineScore, TotalEpisodes, TotalSolved,
// OverallSolveRate, Coverage, and FamiliesEvaluated to the serialized
// document alongside the stored fields — the frozen Aggregation Result's
// (c) derived views, per §4.H.
func (b BenchmarkResult) MarshalJSON() ([]byte, error) {
	type alias BenchmarkResult
	return json.Marshal(struct {
		alias
		TopLineScore      float64 `json:"top_line_score"`
		TotalEpisodes     int     `json:"total_episodes"`
		TotalSolved       int     `json:"total_solved"`
		OverallSolveRate  float64 `json:"overall_solve_rate"`
		Coverage          float64 `json:"coverage"`
		FamiliesEvaluated int     `json:"families_evaluated"`
	}{
		alias:             alias(b),
		TopLineScore:      b.TopLineScore(),
		TotalEpisodes:     b.TotalEpisodes(),
		TotalSolved:       b.TotalSolved(),
		OverallSolveRate:  b.OverallSolveRate(),
		Coverage:          b.Coverage(),
		FamiliesEvaluated: b.FamiliesEvaluated(),
	})
}
