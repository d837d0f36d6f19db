// Package aggregate implements the Aggregation Result: it drives the
// Harness across a requested set of games, consults the Family Registry
// for expected coverage, and assembles the frozen top-level
// types.BenchmarkResult.
package aggregate

import (
	"context"
	"time"

	"reasoning-bench/internal/engine"
	"reasoning-bench/internal/family"
	"reasoning-bench/internal/harness"
	"reasoning-bench/internal/puzzle"
	"reasoning-bench/internal/types"
)

// Registry resolves a game ID to the factory that constructs it. A game
// ID absent from the Registry is an UnknownGame configuration error,
// rejected before any episode of that game runs.
type Registry map[string]puzzle.GameFactory

// Request bundles one evaluate_many invocation.
type Request struct {
	GameIDs      []string
	Registry     Registry
	Difficulty   types.Difficulty
	Episodes     int
	Seeds        []int64
	SolverConfig types.SolverConfig
	Limits       engine.Limits
	MakeStrategy func(seed int64) engine.AgentStrategy
	MaxParallel  int
	SolverDesc   string
	Now          time.Time
}

// EvaluateMany runs every requested game through the Harness and
// assembles a BenchmarkResult. Games absent from req.Registry are
// reported in unknownGames and excluded from the result entirely — they
// never count toward coverage or any family's evaluated set, matching an
// UnknownGame game_id being rejected before any episode runs for it.
func EvaluateMany(ctx context.Context, req Request) (result types.BenchmarkResult, unknownGames []string) {
	gameReports := make(map[string]types.GameReport, len(req.GameIDs))

	for _, gameID := range req.GameIDs {
		factory, ok := req.Registry[gameID]
		if !ok {
			unknownGames = append(unknownGames, gameID)
			continue
		}

		report := harness.EvaluateGame(ctx, harness.Request{
			GameID:       gameID,
			Factory:      factory,
			Difficulty:   req.Difficulty,
			Episodes:     req.Episodes,
			Seeds:        req.Seeds,
			SolverConfig: req.SolverConfig,
			Limits:       req.Limits,
			MakeStrategy: req.MakeStrategy,
			MaxParallel:  req.MaxParallel,
		})
		report.Family = family.FamilyOf(gameID)
		gameReports[gameID] = report
	}

	families := make([]types.FamilyReport, 0, len(family.Families()))

	for _, fam := range family.Families() {
		expected := family.GamesIn(fam)
		games := make([]types.GameReport, 0, len(expected))
		for _, gameID := range expected {
			if report, ok := gameReports[gameID]; ok {
				games = append(games, report)
			} else {
				games = append(games, types.GameReport{
					GameID:     gameID,
					Family:     fam,
					Difficulty: req.Difficulty,
				})
			}
		}
		families = append(families, types.FamilyReport{
			Family:            fam,
			Games:             games,
			ExpectedGameCount: len(expected),
		})
	}

	// allGames lists every evaluated game, including ones the Family
	// Registry has no entry for (tagged Unknown) — those still appear in
	// the top-level game list, just excluded from any family's average.
	allGames := make([]types.GameReport, 0, len(gameReports))
	for _, gameID := range req.GameIDs {
		if report, ok := gameReports[gameID]; ok {
			allGames = append(allGames, report)
		}
	}

	now := req.Now
	if now.IsZero() {
		now = time.Now()
	}

	result = types.BenchmarkResult{
		Timestamp:       now,
		Difficulty:      req.Difficulty,
		EpisodesPerGame: req.Episodes,
		SolverDesc:      req.SolverDesc,
		Families:        families,
		Games:           allGames,
		TotalGameCount:  family.TotalGames,
	}
	return result, unknownGames
}
