package mcpserver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reasoning-bench/internal/catalog"
	"reasoning-bench/internal/types"
)

func testServer() *Server {
	return New(catalog.Default(), nil)
}

func TestHandleRunEpisodeSolvesWithBuiltinSolver(t *testing.T) {
	s := testServer()
	_, resp, err := s.handleRunEpisode(context.Background(), nil, RunEpisodeRequest{
		GameID:     "sudoku",
		Difficulty: "easy",
		Seed:       1,
		Solver:     SolverConfigInput{SolverAllowed: true, HintBudget: 100},
		Limits:     LimitsInput{MaxMoves: 200, MaxWallTimeMs: 30_000},
	})

	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, types.Solved, resp.Episode.Status)
}

func TestHandleRunEpisodeRejectsUnknownGame(t *testing.T) {
	s := testServer()
	_, _, err := s.handleRunEpisode(context.Background(), nil, RunEpisodeRequest{
		GameID:     "not-a-game",
		Difficulty: "easy",
	})
	assert.Error(t, err)
}

func TestHandleRunEpisodeRejectsInvalidDifficulty(t *testing.T) {
	s := testServer()
	_, _, err := s.handleRunEpisode(context.Background(), nil, RunEpisodeRequest{
		GameID:     "sudoku",
		Difficulty: "impossible",
	})
	assert.Error(t, err)
}

func TestHandleEvaluateGameReturnsScoredReport(t *testing.T) {
	s := testServer()
	_, resp, err := s.handleEvaluateGame(context.Background(), nil, EvaluateGameRequest{
		GameID:     "binary",
		Difficulty: "easy",
		Episodes:   3,
		Solver:     SolverConfigInput{SolverAllowed: true, HintBudget: 100},
		Limits:     LimitsInput{MaxMoves: 200, MaxWallTimeMs: 30_000},
	})

	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, 3, resp.Report.EpisodesEvaluated)
}

func TestHandleEvaluateManyAggregatesAcrossGames(t *testing.T) {
	s := testServer()
	_, resp, err := s.handleEvaluateMany(context.Background(), nil, EvaluateManyRequest{
		GameIDs:    []string{"sudoku", "mastermind", "bogus-game"},
		Difficulty: "easy",
		Episodes:   2,
		Solver:     SolverConfigInput{SolverAllowed: true, HintBudget: 100},
		Limits:     LimitsInput{MaxMoves: 200, MaxWallTimeMs: 30_000},
	})

	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, []string{"bogus-game"}, resp.UnknownGames)
	assert.Len(t, resp.Result.Games, 2)
	assert.False(t, resp.Cached)
}

func TestHandleEvaluateManySecondCallIsCached(t *testing.T) {
	s := testServer()
	req := EvaluateManyRequest{
		GameIDs:    []string{"sudoku"},
		Difficulty: "easy",
		Episodes:   2,
		Solver:     SolverConfigInput{SolverAllowed: true, HintBudget: 100},
		Limits:     LimitsInput{MaxMoves: 200, MaxWallTimeMs: 30_000},
	}

	_, first, err := s.handleEvaluateMany(context.Background(), nil, req)
	require.NoError(t, err)
	assert.False(t, first.Cached)

	_, second, err := s.handleEvaluateMany(context.Background(), nil, req)
	require.NoError(t, err)
	assert.True(t, second.Cached)
	assert.Equal(t, first.Result, second.Result)
}
