package harness

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"reasoning-bench/internal/engine"
	"reasoning-bench/internal/puzzle/mockgame"
	"reasoning-bench/internal/types"
)

func baseRequest(episodes int) Request {
	return Request{
		GameID:       "mock",
		Factory:      mockgame.New,
		Difficulty:   types.Easy,
		Episodes:     episodes,
		SolverConfig: types.DefaultSolverConfig(),
		Limits:       engine.Limits{MaxMoves: 100, MaxWallTimeMs: 60_000},
	}
}

func TestSeedsForDerivesFromRootOffset(t *testing.T) {
	seeds := seedsFor(3, nil)
	assert.Equal(t, []int64{42, 43, 44}, seeds)
}

func TestSeedsForExplicitListWins(t *testing.T) {
	seeds := seedsFor(3, []int64{100, 200})
	assert.Equal(t, []int64{100, 200}, seeds)
}

func TestEvaluateGameSequential(t *testing.T) {
	report := EvaluateGame(context.Background(), baseRequest(5))

	assert.Equal(t, 5, report.EpisodesEvaluated)
	assert.Equal(t, types.Logic, report.Family)
	assert.Len(t, report.EpisodeScores, 5)
}

func TestEvaluateGameParallelMatchesSequentialScores(t *testing.T) {
	seq := baseRequest(8)
	par := baseRequest(8)
	par.MaxParallel = 4

	seqReport := EvaluateGame(context.Background(), seq)
	parReport := EvaluateGame(context.Background(), par)

	assert.Equal(t, seqReport.EpisodeScores, parReport.EpisodeScores)
}

func TestEvaluateGameWithExplicitSeeds(t *testing.T) {
	req := baseRequest(0)
	req.Seeds = []int64{1, 2, 3}

	report := EvaluateGame(context.Background(), req)
	assert.Equal(t, 3, report.EpisodesEvaluated)
}

func TestEvaluateGameAllSolvedWithBuiltinAgent(t *testing.T) {
	report := EvaluateGame(context.Background(), baseRequest(4))
	assert.Equal(t, 4, report.EpisodesSolved)
}
