package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"reasoning-bench/internal/types"
)

func intp(n int) *int { return &n }

func perfectEpisode() types.EpisodeResult {
	return types.EpisodeResult{
		Status:         types.Solved,
		StepsTaken:     10,
		InvalidActions: 0,
		HintsUsed:      0,
		OptimalSteps:   intp(10),
		ReasoningMetrics: &types.ReasoningMetrics{
			BacktrackRate:      0,
			ProgressSteadiness: 1,
		},
	}
}

func TestUnsolvedEpisodeScoresZero(t *testing.T) {
	e := perfectEpisode()
	e.Status = types.Failed
	assert.Equal(t, 0.0, ScoreEpisode(e))
}

func TestPerfectEpisodeScoresOneHundred(t *testing.T) {
	assert.Equal(t, 100.0, ScoreEpisode(perfectEpisode()))
}

func TestImmediateGiveUpScoresZero(t *testing.T) {
	e := types.EpisodeResult{Status: types.Failed, StepsTaken: 0, InvalidActions: 0}
	assert.Equal(t, 0.0, ScoreEpisode(e))
}

// TestFullHintDependencyScenario matches the spec's worked example: a
// perfect solve entirely driven by hints scores 85 (100 - 15 for zero
// hint independence).
func TestFullHintDependencyScenario(t *testing.T) {
	e := perfectEpisode()
	e.HintsUsed = e.StepsTaken
	assert.Equal(t, 85.0, ScoreEpisode(e))
}

// TestBacktrackPenaltyScenario matches the spec's worked example:
// backtrack_count=5, steps_taken=10, otherwise perfect -> 92.5.
func TestBacktrackPenaltyScenario(t *testing.T) {
	e := perfectEpisode()
	e.ReasoningMetrics.BacktrackRate = 0.5
	assert.Equal(t, 92.5, ScoreEpisode(e))
}

func TestEfficiencyFallbackWhenOptimalUnknown(t *testing.T) {
	e := perfectEpisode()
	e.OptimalSteps = nil
	e.StepsTaken = 21 // fallback = 1 - (21-1)/100 = 0.8
	assert.InDelta(t, 100*(0.40*0.8+0.15+0.15+0.15+0.15), ScoreEpisode(e), 1e-9)
}

func TestScoreIsClampedAndNeverNegative(t *testing.T) {
	e := perfectEpisode()
	e.OptimalSteps = nil
	e.StepsTaken = 1000 // fallback goes deeply negative before clamping
	assert.Equal(t, 100*(0.15+0.15+0.15+0.15), ScoreEpisode(e))
}

func TestScoreGameAggregatesEpisodeScores(t *testing.T) {
	solved := perfectEpisode()
	failed := types.EpisodeResult{Status: types.Failed}

	report := ScoreGame("sudoku", types.Logic, types.Easy, []types.EpisodeResult{solved, failed})

	assert.Equal(t, 2, report.EpisodesEvaluated)
	assert.Equal(t, 1, report.EpisodesSolved)
	assert.Equal(t, []float64{100, 0}, report.EpisodeScores)
	assert.Equal(t, 50.0, report.Score())
}
