package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleBenchmarkResult() BenchmarkResult {
	sudoku := GameReport{
		GameID: "sudoku", Family: Logic, Difficulty: Easy,
		EpisodesEvaluated: 2, EpisodesSolved: 2, EpisodeScores: []float64{100, 80},
	}
	binary := GameReport{GameID: "binary", Family: Logic, Difficulty: Easy}

	return BenchmarkResult{
		Timestamp:       time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		Difficulty:      Easy,
		EpisodesPerGame: 2,
		SolverDesc:      "test-solver",
		Families: []FamilyReport{
			{Family: Logic, Games: []GameReport{sudoku, binary}, ExpectedGameCount: 2},
		},
		Games:          []GameReport{sudoku},
		TotalGameCount: 30,
	}
}

func TestBenchmarkResultMarshalJSONIncludesDerivedFields(t *testing.T) {
	b := sampleBenchmarkResult()

	data, err := json.Marshal(b)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))

	assert.InDelta(t, b.TopLineScore(), doc["top_line_score"], 1e-9)
	assert.InDelta(t, b.TotalEpisodes(), doc["total_episodes"], 1e-9)
	assert.InDelta(t, b.TotalSolved(), doc["total_solved"], 1e-9)
	assert.InDelta(t, b.OverallSolveRate(), doc["overall_solve_rate"], 1e-9)
	assert.InDelta(t, b.Coverage(), doc["coverage"], 1e-9)
	assert.InDelta(t, b.FamiliesEvaluated(), doc["families_evaluated"], 1e-9)

	// The nested FamilyReport/GameReport documents carry their own derived
	// fields too, not just the top-level ones.
	families := doc["families"].([]any)
	firstFamily := families[0].(map[string]any)
	assert.Contains(t, firstFamily, "score")
	assert.Contains(t, firstFamily, "coverage")
	assert.Contains(t, firstFamily, "evaluated_count")

	games := doc["games"].([]any)
	firstGame := games[0].(map[string]any)
	assert.Contains(t, firstGame, "score")
	assert.Contains(t, firstGame, "solve_rate")
	assert.Contains(t, firstGame, "score_stddev")
}

func TestBenchmarkResultTopLineScoreIsBoundedMeanOfFamilyScores(t *testing.T) {
	b := sampleBenchmarkResult()

	assert.GreaterOrEqual(t, b.TopLineScore(), 0.0)
	assert.LessOrEqual(t, b.TopLineScore(), 100.0)
	assert.InDelta(t, b.Families[0].Score(), b.TopLineScore(), 1e-9)
}
