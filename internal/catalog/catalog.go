// Package catalog wires the Family Registry's declared game IDs to
// concrete puzzle.Game factories. Every executable that drives the
// Harness or Aggregation needs this mapping; keeping it in one place
// means cmd/server and cmd/reasoning-bench never disagree about which
// game IDs are actually playable.
package catalog

import (
	"reasoning-bench/internal/aggregate"
	"reasoning-bench/internal/family"
	"reasoning-bench/internal/puzzle/mockgame"
)

// Default builds the registry used by both executables. Real puzzle
// rule packages are external collaborators (see puzzle.Game); until one
// is wired in, every declared game ID in the Family Registry resolves to
// the deterministic mockgame.New factory, so the full 30-game roster is
// already evaluable end to end.
func Default() aggregate.Registry {
	reg := make(aggregate.Registry, family.TotalGames)
	for _, gameID := range family.AllGames() {
		reg[gameID] = mockgame.New
	}
	return reg
}
