// Package metrics derives normalized behavioral statistics from a
// ReasoningTrace. Compute is a pure function: same trace in, same metrics
// out, no shared state.
package metrics

import "reasoning-bench/internal/types"

// Compute reduces a ReasoningTrace to its ReasoningMetrics. All edge cases
// (empty trace, unknown optimal path, zero total actions) resolve to the
// conventions below rather than division by zero.
func Compute(t types.ReasoningTrace) types.ReasoningMetrics {
	return types.ReasoningMetrics{
		BacktrackRate:      backtrackRate(t),
		ReasoningOverhead:  reasoningOverhead(t),
		ProgressVelocity:   progressVelocity(t),
		ProgressSteadiness: progressSteadiness(t),
		AvgErrorStreak:     avgErrorStreak(t),
	}
}

func backtrackRate(t types.ReasoningTrace) float64 {
	n := len(t.SolverDistanceTrace)
	if n == 0 {
		return 0
	}
	return float64(t.BacktrackCount) / float64(n)
}

func reasoningOverhead(t types.ReasoningTrace) float64 {
	if t.OptimalPathLength == nil || *t.OptimalPathLength == 0 {
		return 0
	}
	return float64(t.TotalActions) / float64(*t.OptimalPathLength)
}

func progressVelocity(t types.ReasoningTrace) float64 {
	n := len(t.SolverDistanceTrace)
	if n < 2 {
		return 0
	}
	first := t.SolverDistanceTrace[0]
	last := t.SolverDistanceTrace[n-1]
	return float64(first-last) / float64(n-1)
}

func progressSteadiness(t types.ReasoningTrace) float64 {
	n := len(t.SolverDistanceTrace)
	if n < 2 {
		return 1
	}
	decreasing := 0
	for i := 0; i < n-1; i++ {
		if t.SolverDistanceTrace[i+1] < t.SolverDistanceTrace[i] {
			decreasing++
		}
	}
	return float64(decreasing) / float64(n-1)
}

func avgErrorStreak(t types.ReasoningTrace) float64 {
	if len(t.ErrorStreaks) == 0 {
		return 0
	}
	sum := 0
	for _, s := range t.ErrorStreaks {
		sum += s
	}
	return float64(sum) / float64(len(t.ErrorStreaks))
}
