package puzzle

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorKindString(t *testing.T) {
	cases := map[ErrorKind]string{
		GenerationFailed: "generation_failed",
		InvalidMove:      "invalid_move",
		BudgetExceeded:   "budget_exceeded",
		Cancelled:        "cancelled",
		UnknownGame:      "unknown_game",
		UnknownFamily:    "unknown_family",
	}
	for kind, want := range cases {
		assert.Equal(t, want, kind.String())
	}
}

func TestKindOf(t *testing.T) {
	err := NewError(UnknownGame, "no such game: foo")
	kind, ok := KindOf(err)
	assert.True(t, ok)
	assert.Equal(t, UnknownGame, kind)

	wrapped := fmt.Errorf("registry lookup: %w", err)
	kind, ok = KindOf(wrapped)
	assert.True(t, ok)
	assert.Equal(t, UnknownGame, kind)

	_, ok = KindOf(errors.New("plain error"))
	assert.False(t, ok)
}

func TestErrorMessage(t *testing.T) {
	err := NewError(BudgetExceeded, "hint budget exhausted")
	assert.Equal(t, "budget_exceeded: hint budget exhausted", err.Error())
}
