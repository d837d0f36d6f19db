// Package mcpserver exposes the reasoning benchmark engine over the
// Model Context Protocol: run_episode, evaluate_game, and evaluate_many
// as MCP tools, so an MCP-aware caller (e.g. an agent harness under
// evaluation) can drive this engine the same way it would any other MCP
// server.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"reasoning-bench/internal/aggregate"
	"reasoning-bench/internal/engine"
	"reasoning-bench/internal/eventlog"
	"reasoning-bench/internal/harness"
	"reasoning-bench/internal/scoring"
	"reasoning-bench/internal/types"
	"reasoning-bench/pkg/cache"
)

// Server coordinates the benchmark engine and provides MCP tool
// handlers.
type Server struct {
	registry aggregate.Registry
	hub      eventlog.Reporter
	results  *cache.LRU[string, types.BenchmarkResult]
}

// New builds a Server backed by registry. hub may be nil, in which case
// run_episode emits no live event stream.
func New(registry aggregate.Registry, hub eventlog.Reporter) *Server {
	if hub == nil {
		hub = eventlog.NewDefaultReporter()
	}
	return &Server{
		registry: registry,
		hub:      hub,
		results:  cache.New[string, types.BenchmarkResult](cache.DefaultConfig()),
	}
}

// RegisterTools registers the three tools on mcpServer.
func (s *Server) RegisterTools(mcpServer *mcp.Server) {
	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "run_episode",
		Description: "Run one episode of a single game and return its scored result",
	}, s.handleRunEpisode)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "evaluate_game",
		Description: "Run N episodes of a single game and return its GameReport",
	}, s.handleEvaluateGame)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "evaluate_many",
		Description: "Run the full benchmark across a set of games and return a BenchmarkResult",
	}, s.handleEvaluateMany)
}

// SolverConfigInput mirrors types.SolverConfig as an MCP tool input.
type SolverConfigInput struct {
	SolverAllowed bool    `json:"solver_allowed"`
	HintBudget    int     `json:"hint_budget"`
	HintPenalty   float64 `json:"hint_penalty"`
}

func (in SolverConfigInput) toSolverConfig() types.SolverConfig {
	return types.SolverConfig{
		SolverAllowed: in.SolverAllowed,
		HintBudget:    in.HintBudget,
		HintPenalty:   in.HintPenalty,
	}
}

// LimitsInput mirrors engine.Limits as an MCP tool input. A zero
// InvalidStreakThreshold selects the Episode Engine's default. A zero
// MaxWallTimeMs or MaxMoves is passed through as is and ends the episode
// before its first move (Timeout or Failed respectively).
type LimitsInput struct {
	MaxMoves               int   `json:"max_moves"`
	MaxWallTimeMs          int64 `json:"max_wall_time_ms"`
	InvalidStreakThreshold int   `json:"invalid_streak_threshold"`
}

func (in LimitsInput) toLimits() engine.Limits {
	return engine.Limits{
		MaxMoves:               in.MaxMoves,
		MaxWallTimeMs:          in.MaxWallTimeMs,
		InvalidStreakThreshold: in.InvalidStreakThreshold,
	}
}

// RunEpisodeRequest is the run_episode tool's input.
type RunEpisodeRequest struct {
	GameID     string            `json:"game_id"`
	Difficulty string            `json:"difficulty"`
	Seed       int64             `json:"seed"`
	Solver     SolverConfigInput `json:"solver"`
	Limits     LimitsInput       `json:"limits"`
}

// RunEpisodeResponse is the run_episode tool's output.
type RunEpisodeResponse struct {
	Episode types.EpisodeResult `json:"episode"`
	Score   float64             `json:"score"`
}

func (s *Server) handleRunEpisode(ctx context.Context, _ *mcp.CallToolRequest, in RunEpisodeRequest) (*mcp.CallToolResult, *RunEpisodeResponse, error) {
	difficulty := types.Difficulty(in.Difficulty)
	if !difficulty.Valid() {
		return nil, nil, fmt.Errorf("invalid difficulty %q", in.Difficulty)
	}

	factory, ok := s.registry[in.GameID]
	if !ok {
		return nil, nil, fmt.Errorf("unknown game %q", in.GameID)
	}

	ctx = eventlog.WithReporter(ctx, s.hub)

	result := engine.Run(ctx, engine.Params{
		GameID:       in.GameID,
		Factory:      factory,
		Difficulty:   difficulty,
		Seed:         in.Seed,
		EpisodeID:    in.GameID + "-" + uuid.NewString(),
		SolverConfig: in.Solver.toSolverConfig(),
		Limits:       in.Limits.toLimits(),
	})

	return nil, &RunEpisodeResponse{Episode: result, Score: scoring.ScoreEpisode(result)}, nil
}

// EvaluateGameRequest is the evaluate_game tool's input.
type EvaluateGameRequest struct {
	GameID      string            `json:"game_id"`
	Difficulty  string            `json:"difficulty"`
	Episodes    int               `json:"episodes"`
	Seeds       []int64           `json:"seeds,omitempty"`
	Solver      SolverConfigInput `json:"solver"`
	Limits      LimitsInput       `json:"limits"`
	MaxParallel int               `json:"max_parallel"`
}

// EvaluateGameResponse is the evaluate_game tool's output.
type EvaluateGameResponse struct {
	Report types.GameReport `json:"report"`
}

func (s *Server) handleEvaluateGame(ctx context.Context, _ *mcp.CallToolRequest, in EvaluateGameRequest) (*mcp.CallToolResult, *EvaluateGameResponse, error) {
	difficulty := types.Difficulty(in.Difficulty)
	if !difficulty.Valid() {
		return nil, nil, fmt.Errorf("invalid difficulty %q", in.Difficulty)
	}

	factory, ok := s.registry[in.GameID]
	if !ok {
		return nil, nil, fmt.Errorf("unknown game %q", in.GameID)
	}

	report := harness.EvaluateGame(ctx, harness.Request{
		GameID:       in.GameID,
		Factory:      factory,
		Difficulty:   difficulty,
		Episodes:     in.Episodes,
		Seeds:        in.Seeds,
		SolverConfig: in.Solver.toSolverConfig(),
		Limits:       in.Limits.toLimits(),
		MaxParallel:  in.MaxParallel,
	})

	return nil, &EvaluateGameResponse{Report: report}, nil
}

// EvaluateManyRequest is the evaluate_many tool's input.
type EvaluateManyRequest struct {
	GameIDs     []string          `json:"game_ids"`
	Difficulty  string            `json:"difficulty"`
	Episodes    int               `json:"episodes"`
	Seeds       []int64           `json:"seeds,omitempty"`
	Solver      SolverConfigInput `json:"solver"`
	Limits      LimitsInput       `json:"limits"`
	MaxParallel int               `json:"max_parallel"`
	SolverDesc  string            `json:"solver_desc"`
}

// EvaluateManyResponse is the evaluate_many tool's output.
type EvaluateManyResponse struct {
	Result       types.BenchmarkResult `json:"result"`
	UnknownGames []string              `json:"unknown_games,omitempty"`
	Cached       bool                  `json:"cached"`
}

func (s *Server) handleEvaluateMany(ctx context.Context, _ *mcp.CallToolRequest, in EvaluateManyRequest) (*mcp.CallToolResult, *EvaluateManyResponse, error) {
	difficulty := types.Difficulty(in.Difficulty)
	if !difficulty.Valid() {
		return nil, nil, fmt.Errorf("invalid difficulty %q", in.Difficulty)
	}

	key, err := fingerprint(in)
	if err != nil {
		return nil, nil, fmt.Errorf("fingerprint request: %w", err)
	}
	if cached, ok := s.results.Get(key); ok {
		return nil, &EvaluateManyResponse{Result: cached, Cached: true}, nil
	}

	result, unknown := aggregate.EvaluateMany(ctx, aggregate.Request{
		GameIDs:      in.GameIDs,
		Registry:     s.registry,
		Difficulty:   difficulty,
		Episodes:     in.Episodes,
		Seeds:        in.Seeds,
		SolverConfig: in.Solver.toSolverConfig(),
		Limits:       in.Limits.toLimits(),
		MaxParallel:  in.MaxParallel,
		SolverDesc:   in.SolverDesc,
	})

	if len(unknown) == 0 {
		s.results.Set(key, result)
	}

	return nil, &EvaluateManyResponse{Result: result, UnknownGames: unknown}, nil
}

// fingerprint derives a cache key from the parts of the request that
// determine the result deterministically. Timestamps are never part of
// the key.
func fingerprint(in EvaluateManyRequest) (string, error) {
	data, err := json.Marshal(in)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

