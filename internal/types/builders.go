package types

import "time"

// EpisodeResultBuilder provides a fluent API for assembling an
// EpisodeResult, mirroring the construction style used for other
// frozen value types in this codebase.
type EpisodeResultBuilder struct {
	result EpisodeResult
}

// NewEpisodeResult creates a builder with sensible defaults: the default
// solver config and a just-started timestamp pair.
func NewEpisodeResult(gameID string, difficulty Difficulty, seed int64) *EpisodeResultBuilder {
	now := time.Now()
	return &EpisodeResultBuilder{
		result: EpisodeResult{
			GameID:       gameID,
			Family:       Unknown,
			Difficulty:   difficulty,
			Seed:         seed,
			StartedAt:    now,
			EndedAt:      now,
			Status:       Failed,
			SolverConfig: DefaultSolverConfig(),
		},
	}
}

func (b *EpisodeResultBuilder) EpisodeID(id string) *EpisodeResultBuilder {
	b.result.EpisodeID = id
	return b
}

func (b *EpisodeResultBuilder) Family(f FamilyID) *EpisodeResultBuilder {
	b.result.Family = f
	return b
}

func (b *EpisodeResultBuilder) Timing(started, ended time.Time) *EpisodeResultBuilder {
	b.result.StartedAt = started
	b.result.EndedAt = ended
	b.result.WallTimeMs = ended.Sub(started).Milliseconds()
	return b
}

func (b *EpisodeResultBuilder) Status(s EpisodeStatus) *EpisodeResultBuilder {
	b.result.Status = s
	return b
}

func (b *EpisodeResultBuilder) Counts(stepsTaken, invalidActions, hintsUsed int) *EpisodeResultBuilder {
	b.result.StepsTaken = stepsTaken
	b.result.InvalidActions = invalidActions
	b.result.HintsUsed = hintsUsed
	return b
}

func (b *EpisodeResultBuilder) OptimalSteps(steps *int) *EpisodeResultBuilder {
	b.result.OptimalSteps = steps
	return b
}

func (b *EpisodeResultBuilder) SolverConfig(cfg SolverConfig) *EpisodeResultBuilder {
	b.result.SolverConfig = cfg
	return b
}

func (b *EpisodeResultBuilder) ReasoningMetrics(m *ReasoningMetrics) *EpisodeResultBuilder {
	b.result.ReasoningMetrics = m
	return b
}

func (b *EpisodeResultBuilder) MoveHistory(h []MoveRecord) *EpisodeResultBuilder {
	b.result.MoveHistory = h
	return b
}

func (b *EpisodeResultBuilder) Diagnostic(msg string) *EpisodeResultBuilder {
	b.result.Diagnostic = msg
	return b
}

func (b *EpisodeResultBuilder) Build() EpisodeResult {
	return b.result
}
