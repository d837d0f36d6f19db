// Package trace implements the Trace Recorder: an append-only log of move
// attempts that the Episode Engine drives move by move, producing the
// ReasoningTrace the Metrics component later reduces to scalar rates.
package trace

import "reasoning-bench/internal/types"

// Recorder accumulates a ReasoningTrace for one episode. It is owned by
// the Episode Engine for the lifetime of that episode; nothing outside
// the engine goroutine touches it.
type Recorder struct {
	backtrackCount      int
	solverDistanceTrace []int
	errorStreaks        []int
	openStreak          int
	totalActions        int
	optimalPathLength   *int
}

// NewRecorder starts a trace for a game whose optimal path length may be
// unknown (nil).
func NewRecorder(optimalPathLength *int) *Recorder {
	return &Recorder{optimalPathLength: optimalPathLength}
}

// Rejected records a rejected move attempt: it opens or extends the
// current error streak and counts as one total action.
func (r *Recorder) Rejected() {
	r.openStreak++
	r.totalActions++
}

// Accepted records an accepted move attempt. remainingWork is the value
// the game reported immediately after the move; overwritesFilled marks a
// backtrack.
func (r *Recorder) Accepted(remainingWork int, overwritesFilled bool) {
	if r.openStreak > 0 {
		r.errorStreaks = append(r.errorStreaks, r.openStreak)
		r.openStreak = 0
	}
	r.solverDistanceTrace = append(r.solverDistanceTrace, remainingWork)
	if overwritesFilled {
		r.backtrackCount++
	}
	r.totalActions++
}

// OpenStreakLength returns the length of the currently open (unclosed)
// error streak, used by the Episode Engine's invalid-loop early-out.
func (r *Recorder) OpenStreakLength() int {
	return r.openStreak
}

// Finish closes any still-open error streak and returns the frozen trace.
// Calling Finish more than once is safe but only the first call observes
// an open streak.
func (r *Recorder) Finish() types.ReasoningTrace {
	if r.openStreak > 0 {
		r.errorStreaks = append(r.errorStreaks, r.openStreak)
		r.openStreak = 0
	}

	max := 0
	for _, s := range r.errorStreaks {
		if s > max {
			max = s
		}
	}

	return types.ReasoningTrace{
		BacktrackCount:      r.backtrackCount,
		SolverDistanceTrace: append([]int(nil), r.solverDistanceTrace...),
		ErrorStreaks:        append([]int(nil), r.errorStreaks...),
		ErrorStreakMax:      max,
		TotalActions:        r.totalActions,
		OptimalPathLength:   r.optimalPathLength,
	}
}
