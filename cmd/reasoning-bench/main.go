// Command reasoning-bench drives the benchmark engine directly, for
// one-shot local runs outside the MCP server. It writes the serialized
// BenchmarkResult to stdout; it does not render reports.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/alecthomas/kong"

	"reasoning-bench/internal/aggregate"
	"reasoning-bench/internal/catalog"
	"reasoning-bench/internal/config"
	"reasoning-bench/internal/engine"
	"reasoning-bench/internal/family"
	"reasoning-bench/internal/historystore"
	"reasoning-bench/internal/pipeline"
	"reasoning-bench/internal/types"
)

// CLI is the full set of reasoning-bench flags.
type CLI struct {
	Games       []string `help:"Game IDs to evaluate (default: the full 30-game catalogue)."`
	Difficulty  string   `default:"" help:"Override the config's difficulty: easy, medium, or hard."`
	Episodes    int      `default:"0" help:"Override the config's episodes-per-game (0 uses config value)."`
	MaxParallel int      `default:"0" help:"Override the config's max-parallel episode dispatch."`
	ConfigFile  string   `help:"Path to a JSON config file, layered under environment variables."`
	History     string   `help:"Path to a SQLite history database; if set, appends this run for trend queries."`
	SolverDesc  string   `default:"builtin-hint-solver" help:"Description of the solver under evaluation, recorded in the result."`
}

func main() {
	var cli CLI
	kong.Parse(&cli,
		kong.Name("reasoning-bench"),
		kong.Description("Run the reasoning benchmark engine and print the scored result as JSON."),
	)

	if err := pipeline.Validate(); err != nil {
		log.Fatalf("component dependency graph: %v", err)
	}

	cfg, err := loadConfig(cli.ConfigFile)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	applyOverrides(cfg, cli)

	gameIDs := cli.Games
	if len(gameIDs) == 0 {
		gameIDs = family.AllGames()
	}

	result, unknownGames := aggregate.EvaluateMany(context.Background(), aggregate.Request{
		GameIDs:    gameIDs,
		Registry:   catalog.Default(),
		Difficulty: types.Difficulty(cfg.Run.Difficulty),
		Episodes:   cfg.Run.Episodes,
		SolverConfig: types.SolverConfig{
			SolverAllowed: cfg.Solver.SolverAllowed,
			HintBudget:    cfg.Solver.HintBudget,
			HintPenalty:   cfg.Solver.HintPenalty,
		},
		Limits:      limitsFrom(cfg),
		MaxParallel: cfg.Run.MaxParallel,
		SolverDesc:  cli.SolverDesc,
	})

	if len(unknownGames) > 0 {
		log.Printf("skipped unknown games: %v", unknownGames)
	}

	if cli.History != "" {
		if err := appendHistory(cli.History, result); err != nil {
			log.Printf("warning: failed to append to history store: %v", err)
		}
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(result); err != nil {
		log.Fatalf("encode result: %v", err)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFromFile(path)
	}
	return config.Load()
}

func applyOverrides(cfg *config.Config, cli CLI) {
	if cli.Difficulty != "" {
		cfg.Run.Difficulty = cli.Difficulty
	}
	if cli.Episodes > 0 {
		cfg.Run.Episodes = cli.Episodes
	}
	if cli.MaxParallel > 0 {
		cfg.Run.MaxParallel = cli.MaxParallel
	}
}

func limitsFrom(cfg *config.Config) engine.Limits {
	return engine.Limits{
		MaxMoves:               cfg.Limits.MaxMoves,
		MaxWallTimeMs:          cfg.Limits.MaxWallTimeMs,
		InvalidStreakThreshold: cfg.Limits.InvalidStreakThreshold,
	}
}

func appendHistory(path string, result types.BenchmarkResult) error {
	store, err := historystore.Open(path)
	if err != nil {
		return fmt.Errorf("open history store: %w", err)
	}
	defer store.Close()

	if err := store.Append(result); err != nil {
		return fmt.Errorf("append benchmark result: %w", err)
	}
	return nil
}
