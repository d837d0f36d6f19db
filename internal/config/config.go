// Package config provides configuration management for the reasoning
// benchmark engine.
//
// Configuration can be loaded from multiple sources (in order of
// precedence):
//  1. Environment variables (highest priority)
//  2. Configuration file (JSON)
//  3. Default values (lowest priority)
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config is the complete run configuration for one evaluate_many
// invocation.
type Config struct {
	Run     RunConfig     `json:"run"`
	Solver  SolverConfig  `json:"solver"`
	Limits  LimitsConfig  `json:"limits"`
	Logging LoggingConfig `json:"logging"`
}

// RunConfig selects what gets evaluated.
type RunConfig struct {
	// Difficulty is one of easy, medium, hard.
	Difficulty string `json:"difficulty"`

	// Episodes is the per-game episode count used when Seeds is empty.
	Episodes int `json:"episodes"`

	// MaxParallel bounds concurrent episode dispatch inside the Harness;
	// 0 or 1 runs sequentially.
	MaxParallel int `json:"max_parallel"`
}

// SolverConfig mirrors types.SolverConfig as a configuration surface.
type SolverConfig struct {
	SolverAllowed bool    `json:"solver_allowed"`
	HintBudget    int     `json:"hint_budget"`
	HintPenalty   float64 `json:"hint_penalty"`
}

// LimitsConfig bounds one episode's resource consumption.
type LimitsConfig struct {
	MaxMoves               int   `json:"max_moves"`
	MaxWallTimeMs          int64 `json:"max_wall_time_ms"`
	InvalidStreakThreshold int   `json:"invalid_streak_threshold"`
}

// LoggingConfig controls diagnostic output, independent of the benchmark
// result itself.
type LoggingConfig struct {
	Level  string `json:"level"`
	Format string `json:"format"`
}

// Default returns the documented default configuration: medium
// difficulty, 10 episodes per game, the default solver config, and
// generous but finite episode limits.
func Default() *Config {
	return &Config{
		Run: RunConfig{
			Difficulty:  "medium",
			Episodes:    10,
			MaxParallel: 4,
		},
		Solver: SolverConfig{
			SolverAllowed: true,
			HintBudget:    100,
			HintPenalty:   0.0,
		},
		Limits: LimitsConfig{
			MaxMoves:               500,
			MaxWallTimeMs:          30_000,
			InvalidStreakThreshold: 50,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load builds a Config from defaults overridden by environment
// variables.
func Load() (*Config, error) {
	cfg := Default()
	if err := cfg.loadFromEnv(); err != nil {
		return nil, fmt.Errorf("load config from environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// LoadFromFile builds a Config from a JSON file, then applies
// environment variable overrides on top of it.
func LoadFromFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}
	if err := cfg.loadFromEnv(); err != nil {
		return nil, fmt.Errorf("load config from environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// loadFromEnv overrides cfg's fields from RB_<SECTION>_<KEY> environment
// variables, e.g. RB_RUN_DIFFICULTY, RB_SOLVER_HINT_BUDGET.
func (c *Config) loadFromEnv() error {
	if v := os.Getenv("RB_RUN_DIFFICULTY"); v != "" {
		c.Run.Difficulty = strings.ToLower(v)
	}
	if v := os.Getenv("RB_RUN_EPISODES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Run.Episodes = n
		}
	}
	if v := os.Getenv("RB_RUN_MAX_PARALLEL"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Run.MaxParallel = n
		}
	}
	if v := os.Getenv("RB_SOLVER_ALLOWED"); v != "" {
		c.Solver.SolverAllowed = parseBool(v)
	}
	if v := os.Getenv("RB_SOLVER_HINT_BUDGET"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Solver.HintBudget = n
		}
	}
	if v := os.Getenv("RB_SOLVER_HINT_PENALTY"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.Solver.HintPenalty = f
		}
	}
	if v := os.Getenv("RB_LIMITS_MAX_MOVES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Limits.MaxMoves = n
		}
	}
	if v := os.Getenv("RB_LIMITS_MAX_WALL_TIME_MS"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Limits.MaxWallTimeMs = n
		}
	}
	if v := os.Getenv("RB_LIMITS_INVALID_STREAK_THRESHOLD"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Limits.InvalidStreakThreshold = n
		}
	}
	if v := os.Getenv("RB_LOGGING_LEVEL"); v != "" {
		c.Logging.Level = strings.ToLower(v)
	}
	if v := os.Getenv("RB_LOGGING_FORMAT"); v != "" {
		c.Logging.Format = strings.ToLower(v)
	}
	return nil
}

// Validate rejects a configuration that violates the documented
// configuration-surface constraints.
func (c *Config) Validate() error {
	switch c.Run.Difficulty {
	case "easy", "medium", "hard":
	default:
		return fmt.Errorf("run.difficulty must be one of: easy, medium, hard")
	}
	if c.Run.Episodes < 1 {
		return fmt.Errorf("run.episodes must be >= 1")
	}
	if c.Solver.HintBudget < 0 {
		return fmt.Errorf("solver.hint_budget cannot be negative")
	}
	if c.Solver.HintPenalty < 0 || c.Solver.HintPenalty > 1 {
		return fmt.Errorf("solver.hint_penalty must be in [0,1]")
	}
	if c.Limits.MaxMoves < 1 {
		return fmt.Errorf("limits.max_moves must be >= 1")
	}
	if c.Limits.MaxWallTimeMs < 1 {
		return fmt.Errorf("limits.max_wall_time_ms must be >= 1")
	}
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return fmt.Errorf("logging.level must be one of: debug, info, warn, error")
	}
	if c.Logging.Format != "text" && c.Logging.Format != "json" {
		return fmt.Errorf("logging.format must be 'text' or 'json'")
	}
	return nil
}

func parseBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "true" || s == "1" || s == "yes" || s == "on" || s == "enabled"
}

// ToJSON serializes the configuration for inspection or persistence.
func (c *Config) ToJSON() ([]byte, error) {
	return json.MarshalIndent(c, "", "  ")
}
