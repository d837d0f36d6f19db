// Package family holds the static, read-only mapping of game IDs to
// reasoning families. The table is process-lifetime constant data, not
// mutable state, and requires no locking.
package family

import "reasoning-bench/internal/types"

// TotalGames is the declared size of the union of all family game lists.
const TotalGames = 30

// registry declares, per family, the ordered list of games that family
// expects to see evaluated. Order here is the canonical ordering used
// when a FamilyReport lists its games.
var registry = map[types.FamilyID][]string{
	types.Logic: {
		"sudoku", "binary", "futoshiki", "nonogram", "logic",
		"skyscrapers", "nqueens", "graph_coloring", "cryptarithmetic", "hitori",
	},
	types.Constraint: {
		"kenken", "kakuro", "killer", "slither", "bridges",
		"nurikabe", "fillomino", "shikaku", "hidato", "star_battle",
		"tents", "einstein",
	},
	types.Search: {
		"mastermind", "minesweeper", "numberlink", "lights",
	},
	types.Planning: {
		"sokoban", "rush_hour", "knapsack", "scheduler",
	},
}

// orderedFamilies is the Family Registry's declared family order, used
// when building a BenchmarkResult's family list.
var orderedFamilies = []types.FamilyID{types.Logic, types.Constraint, types.Search, types.Planning}

var gameToFamily = buildIndex()

func buildIndex() map[string]types.FamilyID {
	idx := make(map[string]types.FamilyID, TotalGames)
	for fam, games := range registry {
		for _, g := range games {
			idx[g] = fam
		}
	}
	return idx
}

// FamilyOf returns the reasoning family a game belongs to, or
// types.Unknown if the game is not in the registry.
func FamilyOf(gameID string) types.FamilyID {
	if fam, ok := gameToFamily[gameID]; ok {
		return fam
	}
	return types.Unknown
}

// GamesIn returns the declared game list for a family, in canonical
// order. Returns an empty slice for types.Unknown or any family not in
// the table.
func GamesIn(fam types.FamilyID) []string {
	games := registry[fam]
	out := make([]string, len(games))
	copy(out, games)
	return out
}

// Families returns the four declared families in canonical order.
func Families() []types.FamilyID {
	out := make([]types.FamilyID, len(orderedFamilies))
	copy(out, orderedFamilies)
	return out
}

// AllGames returns every declared game ID across all families, in
// family-then-game canonical order. Its length is always TotalGames.
func AllGames() []string {
	out := make([]string, 0, TotalGames)
	for _, fam := range orderedFamilies {
		out = append(out, registry[fam]...)
	}
	return out
}
