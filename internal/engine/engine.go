// Package engine drives one puzzle instance from generation to
// termination and emits a types.EpisodeResult. It is the only component
// that mutates a Game beyond its own generation.
package engine

import (
	"context"
	"fmt"
	"time"

	"reasoning-bench/internal/eventlog"
	"reasoning-bench/internal/metrics"
	"reasoning-bench/internal/puzzle"
	"reasoning-bench/internal/trace"
	"reasoning-bench/internal/types"
)

// defaultInvalidStreakThreshold bounds the built-in agent's retries inside
// one open error streak, preventing an infinite invalid-move loop.
const defaultInvalidStreakThreshold = 50

// ActionContext is the state handed to an AgentStrategy each time it is
// asked to propose a move.
type ActionContext struct {
	Steps          int
	Invalid        int
	HintsRemaining int
}

// AgentStrategy proposes the next action given the current rendered
// observation (empty string if the game has no Observer view). Returning
// giveUp true ends the episode with status Failed at the next boundary.
// hintUsed reports whether the proposed action was derived from the
// game's own hint mechanism, for hint-budget accounting.
type AgentStrategy interface {
	Propose(ctx context.Context, observation string, actx ActionContext) (action string, hintUsed bool, giveUp bool)
}

// builtinStrategy proxies every move to the game's own hint mechanism,
// respecting the hint budget it is given via ActionContext.
type builtinStrategy struct {
	game puzzle.Game
}

// NewBuiltinStrategy wraps game's hint mechanism as an AgentStrategy.
func NewBuiltinStrategy(game puzzle.Game) AgentStrategy {
	return &builtinStrategy{game: game}
}

func (b *builtinStrategy) Propose(_ context.Context, _ string, actx ActionContext) (string, bool, bool) {
	if actx.HintsRemaining <= 0 {
		return "", false, true
	}
	hint := b.game.GetHint()
	if hint == nil {
		return "", false, true
	}
	return hint.Action, true, false
}

// Limits bounds one episode's resource consumption.
type Limits struct {
	MaxMoves      int
	MaxWallTimeMs int64

	// InvalidStreakThreshold caps the length of one open error streak
	// before the episode is abandoned as a failure. Zero selects
	// defaultInvalidStreakThreshold.
	InvalidStreakThreshold int
}

func (l Limits) streakThreshold() int {
	if l.InvalidStreakThreshold > 0 {
		return l.InvalidStreakThreshold
	}
	return defaultInvalidStreakThreshold
}

// Params bundles one episode's construction parameters.
type Params struct {
	GameID       string
	Factory      puzzle.GameFactory
	Difficulty   types.Difficulty
	Seed         int64
	EpisodeID    string
	SolverConfig types.SolverConfig
	Limits       Limits

	// Strategy selects the agent driving this episode. If nil, Run builds
	// a builtin strategy from the generated game — which immediately
	// gives up if SolverConfig.SolverAllowed is false, since no external
	// strategy was supplied to take over.
	Strategy AgentStrategy
}

// Run drives one episode to completion, failure, timeout, or cancellation
// and returns its frozen result. Run never returns an error: every
// failure mode is reified into the returned EpisodeResult, per the error
// handling design — the only exception is GenerationFailed, which is
// also reified rather than propagated.
func Run(ctx context.Context, p Params) types.EpisodeResult {
	started := time.Now()
	reporter := eventlog.FromContext(ctx)
	relMs := func() int64 { return time.Since(started).Milliseconds() }

	reporter.Emit(eventlog.Event{
		EpisodeID:           p.EpisodeID,
		Kind:                eventlog.EpisodeStart,
		TimestampMsRelative: 0,
		Payload:             map[string]any{"game_id": p.GameID, "difficulty": p.Difficulty, "seed": p.Seed},
	})

	game := p.Factory(p.Difficulty, p.Seed)
	if err := game.Generate(); err != nil {
		ended := time.Now()
		reporter.Emit(eventlog.Event{
			EpisodeID:           p.EpisodeID,
			Kind:                eventlog.EpisodeEnd,
			TimestampMsRelative: relMs(),
			Payload:             map[string]any{"status": types.Failed},
		})
		return types.EpisodeResult{
			GameID:       p.GameID,
			Family:       game.FamilyTag(),
			Difficulty:   p.Difficulty,
			Seed:         p.Seed,
			EpisodeID:    p.EpisodeID,
			StartedAt:    started,
			EndedAt:      ended,
			WallTimeMs:   ended.Sub(started).Milliseconds(),
			Status:       types.Failed,
			SolverConfig: p.SolverConfig,
			Diagnostic:   fmt.Sprintf("generation failed: %v", err),
		}
	}

	strategy := p.Strategy
	if strategy == nil {
		if !p.SolverConfig.SolverAllowed {
			return giveUpImmediately(p, game, started, reporter, relMs)
		}
		strategy = NewBuiltinStrategy(game)
	}

	optimalSteps := game.OptimalSteps()
	recorder := trace.NewRecorder(optimalSteps)

	var (
		status         types.EpisodeStatus
		stepsTaken     int
		invalidActions int
		hintsUsed      int
		diagnostic     string
	)

	threshold := p.Limits.streakThreshold()

runLoop:
	for {
		switch {
		case game.IsComplete():
			status = types.Solved
			break runLoop
		case ctx.Err() != nil:
			status = types.Abandoned
			break runLoop
		case time.Since(started).Milliseconds() >= p.Limits.MaxWallTimeMs:
			status = types.Timeout
			break runLoop
		case stepsTaken+invalidActions >= p.Limits.MaxMoves:
			status = types.Failed
			break runLoop
		}

		observation := ""
		if obs, ok := game.(puzzle.Observer); ok {
			observation = obs.Observe()
			if reporter.IsEnabled() {
				reporter.Emit(eventlog.Event{
					EpisodeID:           p.EpisodeID,
					Kind:                eventlog.Observation,
					TimestampMsRelative: relMs(),
					Payload:             map[string]any{"observation": observation},
				})
			}
		}

		hintsRemaining := p.SolverConfig.HintBudget - hintsUsed
		action, hintUsed, giveUp := strategy.Propose(ctx, observation, ActionContext{
			Steps:          stepsTaken,
			Invalid:        invalidActions,
			HintsRemaining: hintsRemaining,
		})
		if giveUp {
			status = types.Failed
			break runLoop
		}

		outcome, err := game.ValidateMove(action)
		if err != nil {
			status = types.Failed
			diagnostic = fmt.Sprintf("validate_move error: %v", err)
			break runLoop
		}

		reporter.Emit(eventlog.Event{
			EpisodeID:           p.EpisodeID,
			Kind:                eventlog.Action,
			TimestampMsRelative: relMs(),
			Payload:             map[string]any{"action": action, "accepted": outcome.Accepted},
		})
		if hintUsed {
			reporter.Emit(eventlog.Event{
				EpisodeID:           p.EpisodeID,
				Kind:                eventlog.Hint,
				TimestampMsRelative: relMs(),
				Payload:             map[string]any{"action": action},
			})
		}

		if outcome.Accepted {
			stepsTaken++
			if hintUsed {
				hintsUsed++
			}
			recorder.Accepted(game.RemainingWork(), outcome.OverwritesFilled)
		} else {
			invalidActions++
			recorder.Rejected()
			if recorder.OpenStreakLength() > threshold {
				status = types.Failed
				break runLoop
			}
		}
	}

	ended := time.Now()
	rt := recorder.Finish()
	rm := metrics.Compute(rt)

	reporter.Emit(eventlog.Event{
		EpisodeID:           p.EpisodeID,
		Kind:                eventlog.EpisodeEnd,
		TimestampMsRelative: relMs(),
		Payload:             map[string]any{"status": status, "steps_taken": stepsTaken},
	})

	return types.EpisodeResult{
		GameID:           p.GameID,
		Family:           game.FamilyTag(),
		Difficulty:       p.Difficulty,
		Seed:             p.Seed,
		EpisodeID:        p.EpisodeID,
		StartedAt:        started,
		EndedAt:          ended,
		WallTimeMs:       ended.Sub(started).Milliseconds(),
		Status:           status,
		StepsTaken:       stepsTaken,
		InvalidActions:   invalidActions,
		HintsUsed:        hintsUsed,
		OptimalSteps:     optimalSteps,
		SolverConfig:     p.SolverConfig,
		ReasoningMetrics: &rm,
		Diagnostic:       diagnostic,
	}
}

// giveUpImmediately handles the boundary configuration where hints are
// disabled and no external strategy was supplied: the episode ends
// having taken no moves at all.
func giveUpImmediately(p Params, game puzzle.Game, started time.Time, reporter eventlog.Reporter, relMs func() int64) types.EpisodeResult {
	rt := trace.NewRecorder(game.OptimalSteps()).Finish()
	rm := metrics.Compute(rt)
	ended := time.Now()
	reporter.Emit(eventlog.Event{
		EpisodeID:           p.EpisodeID,
		Kind:                eventlog.EpisodeEnd,
		TimestampMsRelative: relMs(),
		Payload:             map[string]any{"status": types.Failed, "steps_taken": 0},
	})
	return types.EpisodeResult{
		GameID:           p.GameID,
		Family:           game.FamilyTag(),
		Difficulty:       p.Difficulty,
		Seed:             p.Seed,
		EpisodeID:        p.EpisodeID,
		StartedAt:        started,
		EndedAt:          ended,
		WallTimeMs:       ended.Sub(started).Milliseconds(),
		Status:           types.Failed,
		OptimalSteps:     game.OptimalSteps(),
		SolverConfig:     p.SolverConfig,
		ReasoningMetrics: &rm,
		Diagnostic:       "solver disallowed and no external strategy supplied",
	}
}
