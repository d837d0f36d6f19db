package aggregate

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reasoning-bench/internal/engine"
	"reasoning-bench/internal/puzzle/mockgame"
	"reasoning-bench/internal/types"
)

func baseRequest(gameIDs ...string) Request {
	return Request{
		GameIDs:      gameIDs,
		Registry:     Registry{"sudoku": mockgame.New, "kenken": mockgame.New, "mastermind": mockgame.New, "sokoban": mockgame.New},
		Difficulty:   types.Easy,
		Episodes:     1,
		SolverConfig: types.DefaultSolverConfig(),
		Limits:       engine.Limits{MaxMoves: 100, MaxWallTimeMs: 60_000},
	}
}

func TestUnknownGameIsReportedAndExcluded(t *testing.T) {
	req := baseRequest("sudoku", "not-a-real-game")
	result, unknown := EvaluateMany(context.Background(), req)

	assert.Equal(t, []string{"not-a-real-game"}, unknown)
	assert.Len(t, result.Games, 1)
}

func TestPartialCoverageOnlySudoku(t *testing.T) {
	req := baseRequest("sudoku")
	result, unknown := EvaluateMany(context.Background(), req)
	require.Empty(t, unknown)

	assert.InDelta(t, 1.0/30.0, result.Coverage(), 1e-9)
	assert.Equal(t, 100.0, result.OverallSolveRate()*100)

	var logicScore, otherSum float64
	for _, f := range result.Families {
		if f.Family == types.Logic {
			logicScore = f.Score()
		} else {
			assert.Equal(t, 0, f.EvaluatedCount())
			otherSum += f.Score()
		}
	}
	assert.Equal(t, 0.0, otherSum)
	assert.Equal(t, logicScore, result.TopLineScore())
}

func TestMixedFamilyEvaluationAllFourFamiliesCounted(t *testing.T) {
	req := baseRequest("sudoku", "kenken", "mastermind", "sokoban")
	result, unknown := EvaluateMany(context.Background(), req)
	require.Empty(t, unknown)

	assert.Equal(t, 4, result.FamiliesEvaluated())
	assert.InDelta(t, 4.0/30.0, result.Coverage(), 1e-9)
}

func TestEmptyGameListYieldsZeroTopLine(t *testing.T) {
	req := baseRequest()
	result, unknown := EvaluateMany(context.Background(), req)
	require.Empty(t, unknown)

	assert.Equal(t, 0.0, result.TopLineScore())
	assert.Equal(t, 0.0, result.Coverage())
	assert.Equal(t, 0, result.FamiliesEvaluated())
}

func TestTotalGameCountIsRegistryConstant(t *testing.T) {
	req := baseRequest("sudoku")
	result, _ := EvaluateMany(context.Background(), req)
	assert.Equal(t, 30, result.TotalGameCount)
}
