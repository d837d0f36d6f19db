package types

import "encoding/json"

// MoveRecord is an immutable log entry for a single move attempt.
type MoveRecord struct {
	Step             int    `json:"step"`
	Action           string `json:"action"`
	Success          bool   `json:"success"`
	AdvancesSolution bool   `json:"advances_solution"`
	HintUsed         bool   `json:"hint_used"`
	TimestampMs      int64  `json:"timestamp_ms"`
}

// ReasoningTrace is the raw, per-episode behavioral record the Trace
// Recorder accumulates. It is owned by the Episode Engine for the
// lifetime of one episode and moved into an EpisodeResult at the end;
// nothing mutates it thereafter.
type ReasoningTrace struct {
	BacktrackCount      int   `json:"backtrack_count"`
	SolverDistanceTrace []int `json:"solver_distance_trace"`
	ErrorStreaks        []int `json:"error_streaks"`
	ErrorStreakMax      int   `json:"error_streak_max"`
	TotalActions        int   `json:"total_actions"`

	// OptimalPathLength is nil when the game could not compute an
	// optimal-work estimate for this seed.
	OptimalPathLength *int `json:"optimal_path_length,omitempty"`
}

// ReasoningMetrics is the frozen, normalized view derived from a
// ReasoningTrace by the Reasoning Metrics component. All fields are pure
// functions of the trace that produced them.
type ReasoningMetrics struct {
	BacktrackRate      float64 `json:"backtrack_rate"`
	ReasoningOverhead  float64 `json:"reasoning_overhead"`
	ProgressVelocity   float64 `json:"progress_velocity"`
	ProgressSteadiness float64 `json:"progress_steadiness"`
	AvgErrorStreak     float64 `json:"avg_error_streak"`
}

// MarshalJSON rounds every field to 3 decimal places on emission, per the
// "external serialization only" rounding rule — internal arithmetic
// (scoring, aggregation) always reads the unrounded fields directly.
func (m ReasoningMetrics) MarshalJSON() ([]byte, error) {
	type alias ReasoningMetrics
	return json.Marshal(alias{
		BacktrackRate:      Round3(m.BacktrackRate),
		ReasoningOverhead:  Round3(m.ReasoningOverhead),
		ProgressVelocity:   Round3(m.ProgressVelocity),
		ProgressSteadiness: Round3(m.ProgressSteadiness),
		AvgErrorStreak:     Round3(m.AvgErrorStreak),
	})
}

// Round3 rounds x to 3 decimal places, the precision external
// serialization of metrics uses. Internal arithmetic never calls this —
// only the emission path does.
func Round3(x float64) float64 {
	return roundTo(x, 3)
}

// Round2 rounds x to 2 decimal places, used when storing episode/game
// scores.
func Round2(x float64) float64 {
	return roundTo(x, 2)
}

func roundTo(x float64, places int) float64 {
	scale := 1.0
	for i := 0; i < places; i++ {
		scale *= 10
	}
	return float64(int64(x*scale+sign(x)*0.5)) / scale
}

func sign(x float64) float64 {
	if x < 0 {
		return -1
	}
	return 1
}
