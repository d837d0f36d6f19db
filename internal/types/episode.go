package types

import "time"

// EpisodeResult is the frozen record of one completed episode. Every field
// beyond the ones listed here is a pure function of these — EpisodeResult
// values are freely clonable and compare structurally equal after a
// serialize/deserialize round trip.
type EpisodeResult struct {
	GameID     string       `json:"game_id"`
	Family     FamilyID     `json:"family"`
	Difficulty Difficulty   `json:"difficulty"`
	Seed       int64        `json:"seed"`
	EpisodeID  string       `json:"episode_id"`

	StartedAt  time.Time     `json:"started_at"`
	EndedAt    time.Time     `json:"ended_at"`
	WallTimeMs int64         `json:"wall_time_ms"`

	Status EpisodeStatus `json:"status"`

	StepsTaken     int `json:"steps_taken"`
	InvalidActions int `json:"invalid_actions"`
	HintsUsed      int `json:"hints_used"`

	// OptimalSteps is nil when the game could not compute an optimal-work
	// estimate for this seed.
	OptimalSteps *int `json:"optimal_steps,omitempty"`

	SolverConfig SolverConfig `json:"solver_config"`

	// ReasoningMetrics is nil only when generation failed. An episode
	// that ended with an empty trace (no move taken) still carries the
	// metrics of that empty trace.
	ReasoningMetrics *ReasoningMetrics `json:"reasoning_metrics,omitempty"`

	// MoveHistory is an optional step-level log. engine.Run never fills
	// it; only EpisodeResultBuilder.MoveHistory sets it. No derived field
	// below reads it.
	MoveHistory []MoveRecord `json:"move_history,omitempty"`

	// Diagnostic carries a human-readable explanation for Failed episodes
	// caused by GenerationFailed, a ValidateMove error, or a disallowed
	// solver with no external strategy; empty otherwise.
	Diagnostic string `json:"diagnostic,omitempty"`
}

// Success reports whether the episode ended Solved.
func (e EpisodeResult) Success() bool {
	return e.Status == Solved
}

// EfficiencyScore is min(1, optimal_steps/steps_taken) for a successful
// episode with a known optimal-step count and at least one step taken;
// 0 otherwise.
func (e EpisodeResult) EfficiencyScore() float64 {
	if !e.Success() || e.OptimalSteps == nil || e.StepsTaken == 0 {
		return 0
	}
	ratio := float64(*e.OptimalSteps) / float64(e.StepsTaken)
	if ratio > 1 {
		return 1
	}
	return ratio
}

// ErrorRate is invalid_actions / (steps_taken + invalid_actions), or 0 if
// both are zero.
func (e EpisodeResult) ErrorRate() float64 {
	total := e.StepsTaken + e.InvalidActions
	if total == 0 {
		return 0
	}
	return float64(e.InvalidActions) / float64(total)
}

// HintDependency is min(1, hints_used/steps_taken), or 0 if steps_taken is
// zero.
func (e EpisodeResult) HintDependency() float64 {
	if e.StepsTaken == 0 {
		return 0
	}
	ratio := float64(e.HintsUsed) / float64(e.StepsTaken)
	if ratio > 1 {
		return 1
	}
	return ratio
}
