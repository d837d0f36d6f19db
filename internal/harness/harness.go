// Package harness implements the Evaluation Harness: it runs N episodes
// of one game, optionally in parallel, and reassembles results into
// stable seed order regardless of completion order.
package harness

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"reasoning-bench/internal/engine"
	"reasoning-bench/internal/puzzle"
	"reasoning-bench/internal/scoring"
	"reasoning-bench/internal/types"
)

// RootSeedOffset is the constant the spec fixes for deriving a seed list
// from an episode count when no explicit seeds are supplied.
const RootSeedOffset = 42

// seedsFor resolves the effective seed list: explicit seeds win; otherwise
// seeds are derived as RootSeedOffset + i for i in [0, episodes).
func seedsFor(episodes int, seeds []int64) []int64 {
	if len(seeds) > 0 {
		return seeds
	}
	out := make([]int64, episodes)
	for i := range out {
		out[i] = RootSeedOffset + int64(i)
	}
	return out
}

// Request bundles one evaluate_game invocation's parameters.
type Request struct {
	GameID       string
	Factory      puzzle.GameFactory
	Difficulty   types.Difficulty
	Episodes     int
	Seeds        []int64
	SolverConfig types.SolverConfig
	Limits       engine.Limits

	// MakeStrategy, if set, builds a fresh AgentStrategy per episode
	// (receiving the episode's seed, for strategies that need it). When
	// nil, each episode runs with the Episode Engine's default: the
	// built-in hint strategy, or an immediate give-up if hints are
	// disallowed.
	MakeStrategy func(seed int64) engine.AgentStrategy

	// MaxParallel bounds the number of episodes dispatched concurrently.
	// A value <= 1 runs episodes sequentially, which is also what a
	// MaxParallel of 0 (unset) selects.
	MaxParallel int
}

// EvaluateGame runs Request.Episodes (or len(Seeds)) episodes of one game
// and returns the scored GameReport. Per-episode panics are not caught —
// that mirrors the Episode Engine's own contract of never throwing past
// its own boundary — but engine.Run itself never errors: every episode
// failure mode is reified into its EpisodeResult's Status field.
func EvaluateGame(ctx context.Context, req Request) types.GameReport {
	seeds := seedsFor(req.Episodes, req.Seeds)
	results := make([]types.EpisodeResult, len(seeds))

	run := func(i int) {
		seed := seeds[i]
		var strategy engine.AgentStrategy
		if req.MakeStrategy != nil {
			strategy = req.MakeStrategy(seed)
		}
		results[i] = engine.Run(ctx, engine.Params{
			GameID:       req.GameID,
			Factory:      req.Factory,
			Difficulty:   req.Difficulty,
			Seed:         seed,
			EpisodeID:    episodeID(req.GameID, seed),
			SolverConfig: req.SolverConfig,
			Limits:       req.Limits,
			Strategy:     strategy,
		})
	}

	if req.MaxParallel <= 1 {
		for i := range seeds {
			run(i)
		}
	} else {
		g, _ := errgroup.WithContext(ctx)
		g.SetLimit(req.MaxParallel)
		for i := range seeds {
			i := i
			g.Go(func() error {
				run(i)
				return nil
			})
		}
		_ = g.Wait()
	}

	familyTag := types.Unknown
	if len(results) > 0 {
		familyTag = results[0].Family
	}

	return scoring.ScoreGame(req.GameID, familyTag, req.Difficulty, results)
}

// episodeID mints an opaque identifier unique within this process run.
func episodeID(gameID string, seed int64) string {
	return gameID + "-" + uuid.NewString()
}
