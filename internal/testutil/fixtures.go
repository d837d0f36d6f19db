package testutil

import (
	"context"

	"reasoning-bench/internal/engine"
	"reasoning-bench/internal/puzzle"
	"reasoning-bench/internal/puzzle/mockgame"
	"reasoning-bench/internal/types"
)

// FixedSeed is the seed used across tests that need determinism but
// don't care about a specific value.
const FixedSeed int64 = 42

// MockFactory is mockgame.New, exposed under a name tests can pass as
// an engine.Params.Factory or harness.Request.Factory without importing
// mockgame directly.
var MockFactory puzzle.GameFactory = mockgame.New

// DefaultSolverConfig returns a permissive solver configuration suitable
// for most episode tests: solver allowed, generous hint budget, no
// penalty.
func DefaultSolverConfig() types.SolverConfig {
	return types.DefaultSolverConfig()
}

// GiveUpImmediately is an AgentStrategy that gives up on its first
// proposal, for exercising the zero-move failure path with an external
// strategy present.
type GiveUpImmediately struct{}

func (GiveUpImmediately) Propose(context.Context, string, engine.ActionContext) (string, bool, bool) {
	return "", false, true
}

var _ engine.AgentStrategy = GiveUpImmediately{}
