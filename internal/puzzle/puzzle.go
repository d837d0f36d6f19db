// Package puzzle declares the contract every game satisfies: a stateful
// value parameterized by (difficulty, seed) that can generate itself,
// validate moves, and report its own completion and distance-to-goal.
// Game rule code is never part of this package — it lives behind the
// Game interface and is invoked only through it.
package puzzle

import (
	"errors"
	"fmt"

	"reasoning-bench/internal/types"
)

// MoveOutcome is the result of one validate_move call. Exactly one of
// Accepted or Rejected describes it: Accepted is true for an accepted
// move, false for a rejected one, and Reason is only meaningful when
// Accepted is false.
type MoveOutcome struct {
	Accepted         bool
	Advances         bool
	OverwritesFilled bool
	Reason           string
}

// Hint is the (action, text) pair a game proposes as its next move. A nil
// *Hint from GetHint means no progressive hint exists.
type Hint struct {
	Action string
	Text   string
}

// Game is the uniform contract every puzzle implementation satisfies. It
// is intentionally narrow — a capability set, not a base class — so that
// heterogeneous game implementations can be invoked through one interface
// value without a shared ancestor.
//
// A Game is stateful: Generate is the only call that mutates identity;
// ValidateMove is the only state-mutating call afterward.
type Game interface {
	// Generate produces a puzzle instance deterministically from the
	// (difficulty, seed) the Game was constructed with. Two instances
	// built from the same pair must be byte-identical in their initial
	// observable state. A failure returns an error wrapping ErrGenerationFailed.
	Generate() error

	// ValidateMove attempts a single move. A rejected move leaves
	// observable state unchanged.
	ValidateMove(action string) (MoveOutcome, error)

	// IsComplete reports whether the puzzle is solved.
	IsComplete() bool

	// GetHint returns the next suggested action, or nil if no progressive
	// hint exists — either because the puzzle is solved or because the
	// game's internal solver cannot derive one. Must not mutate state.
	GetHint() *Hint

	// RemainingWork is a non-negative count of observable units still to
	// resolve, used as the Episode Engine's distance-to-goal signal.
	RemainingWork() int

	// OptimalSteps is the best-known minimum successful-move count to
	// solve this seed/difficulty, or nil if the game cannot compute one.
	OptimalSteps() *int

	// FamilyTag is this game's static family classification.
	FamilyTag() types.FamilyID
}

// Observer is an optional capability a Game may additionally satisfy: a
// rendered, human/LLM-readable view of current state. The Episode Engine
// checks for it via type assertion before every proposal, whichever
// strategy is running, and passes the rendering (or "") to Propose.
type Observer interface {
	Observe() string
}

// GameFactory constructs a fresh, not-yet-generated Game instance for a
// given difficulty and seed. One of these is registered per game ID in an
// aggregate.Registry (internal/catalog builds the default one).
type GameFactory func(difficulty types.Difficulty, seed int64) Game

// ErrorKind classifies why a Game operation failed, so callers can
// distinguish terminal conditions without parsing error strings.
type ErrorKind int

const (
	GenerationFailed ErrorKind = iota
	InvalidMove
	BudgetExceeded
	Cancelled
	UnknownGame
	UnknownFamily
)

func (k ErrorKind) String() string {
	switch k {
	case GenerationFailed:
		return "generation_failed"
	case InvalidMove:
		return "invalid_move"
	case BudgetExceeded:
		return "budget_exceeded"
	case Cancelled:
		return "cancelled"
	case UnknownGame:
		return "unknown_game"
	case UnknownFamily:
		return "unknown_family"
	default:
		return "unknown"
	}
}

// Error is a Game or registry failure tagged with an ErrorKind, so
// callers can recover it with errors.As and branch on Kind without
// string matching.
type Error struct {
	Kind ErrorKind
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// NewError builds an *Error for the given kind and message.
func NewError(kind ErrorKind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// ErrGenerationFailed is a sentinel for errors.Is checks against a bare
// generation failure carrying no extra message.
var ErrGenerationFailed = NewError(GenerationFailed, "puzzle generation failed")

// KindOf extracts the ErrorKind from err if it (or something it wraps) is
// an *Error; ok is false otherwise.
func KindOf(err error) (kind ErrorKind, ok bool) {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Kind, true
	}
	return 0, false
}
