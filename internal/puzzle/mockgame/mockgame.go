// Package mockgame provides the one game implementation that lives inside
// this repository: a deterministic, rule-free puzzle used to exercise the
// Episode Engine, Trace Recorder, Metrics, Harness, and Scoring Pipeline
// end to end without depending on an external game package.
//
// The puzzle is a row of cells, each with a hidden target value. A move
// fills one cell with a guessed value; it is accepted only if the guess
// matches that cell's target. Filling an already-correct cell again is a
// backtrack. The puzzle is complete once every cell holds its target.
package mockgame

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"reasoning-bench/internal/puzzle"
	"reasoning-bench/internal/types"
)

// sizeFor maps a difficulty tier to the number of cells in the puzzle.
func sizeFor(d types.Difficulty) int {
	switch d {
	case types.Easy:
		return 5
	case types.Medium:
		return 8
	case types.Hard:
		return 12
	default:
		return 5
	}
}

// Game is the mock puzzle instance. It is not safe for concurrent use —
// the same restriction the Puzzle Abstraction places on every game.
type Game struct {
	difficulty types.Difficulty
	seed       int64

	size      int
	target    []int
	filled    []int // -1 means unfilled
	solved    []bool
	moves     int
	generated bool
}

// New satisfies puzzle.GameFactory.
func New(difficulty types.Difficulty, seed int64) puzzle.Game {
	return &Game{difficulty: difficulty, seed: seed}
}

func (g *Game) Generate() error {
	size := sizeFor(g.difficulty)
	rng := rand.New(rand.NewSource(g.seed))

	target := make([]int, size)
	for i := range target {
		target[i] = rng.Intn(size)
	}

	g.size = size
	g.target = target
	g.filled = make([]int, size)
	g.solved = make([]bool, size)
	for i := range g.filled {
		g.filled[i] = -1
	}
	g.generated = true
	return nil
}

// parseAction expects "fill:<index>:<value>".
func parseAction(action string) (idx, value int, err error) {
	parts := strings.Split(action, ":")
	if len(parts) != 3 || parts[0] != "fill" {
		return 0, 0, fmt.Errorf("malformed action %q", action)
	}
	idx, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("malformed cell index in %q: %w", action, err)
	}
	value, err = strconv.Atoi(parts[2])
	if err != nil {
		return 0, 0, fmt.Errorf("malformed cell value in %q: %w", action, err)
	}
	return idx, value, nil
}

func (g *Game) ValidateMove(action string) (puzzle.MoveOutcome, error) {
	idx, value, err := parseAction(action)
	if err != nil {
		return puzzle.MoveOutcome{Accepted: false, Reason: err.Error()}, nil
	}
	if idx < 0 || idx >= g.size {
		return puzzle.MoveOutcome{Accepted: false, Reason: "cell index out of range"}, nil
	}
	if value != g.target[idx] {
		return puzzle.MoveOutcome{Accepted: false, Reason: "value does not match target"}, nil
	}

	wasSolved := g.solved[idx]
	g.filled[idx] = value
	g.solved[idx] = true
	g.moves++

	return puzzle.MoveOutcome{
		Accepted:         true,
		Advances:         !wasSolved,
		OverwritesFilled: wasSolved,
	}, nil
}

func (g *Game) IsComplete() bool {
	return g.RemainingWork() == 0
}

func (g *Game) GetHint() *puzzle.Hint {
	for i, done := range g.solved {
		if !done {
			return &puzzle.Hint{
				Action: fmt.Sprintf("fill:%d:%d", i, g.target[i]),
				Text:   fmt.Sprintf("cell %d should hold %d", i, g.target[i]),
			}
		}
	}
	return nil
}

func (g *Game) RemainingWork() int {
	remaining := 0
	for _, done := range g.solved {
		if !done {
			remaining++
		}
	}
	return remaining
}

func (g *Game) OptimalSteps() *int {
	n := g.size
	return &n
}

func (g *Game) FamilyTag() types.FamilyID {
	return types.Logic
}

// Observe satisfies puzzle.Observer, rendering the cells as a compact
// fill/blank string so an external agent strategy can inspect state
// without reaching into the struct.
func (g *Game) Observe() string {
	cells := make([]string, g.size)
	for i, done := range g.solved {
		if done {
			cells[i] = strconv.Itoa(g.filled[i])
		} else {
			cells[i] = "_"
		}
	}
	return strings.Join(cells, " ")
}
