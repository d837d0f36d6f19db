package testutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"reasoning-bench/internal/engine"
	"reasoning-bench/internal/types"
)

func TestMockStrategyCyclesThenRepeatsLastAction(t *testing.T) {
	m := NewMockStrategy("fill:0:1", "fill:1:2")

	a1, _, giveUp1 := m.Propose(context.Background(), "", engine.ActionContext{})
	a2, _, _ := m.Propose(context.Background(), "", engine.ActionContext{})
	a3, _, _ := m.Propose(context.Background(), "", engine.ActionContext{})

	assert.False(t, giveUp1)
	assert.Equal(t, "fill:0:1", a1)
	assert.Equal(t, "fill:1:2", a2)
	assert.Equal(t, "fill:1:2", a3)
	assert.Equal(t, 3, m.CallCount())
}

func TestMockStrategyWithHintFlags(t *testing.T) {
	m := NewMockStrategy("fill:0:1", "fill:1:2").WithHintFlags(true, false)

	_, hint1, _ := m.Propose(context.Background(), "", engine.ActionContext{})
	_, hint2, _ := m.Propose(context.Background(), "", engine.ActionContext{})

	assert.True(t, hint1)
	assert.False(t, hint2)
}

func TestMockStrategyEmptyActionsGivesUp(t *testing.T) {
	m := NewMockStrategy()
	_, _, giveUp := m.Propose(context.Background(), "", engine.ActionContext{})
	assert.True(t, giveUp)
}

func TestMockStrategyGiveUpAfterThreshold(t *testing.T) {
	m := NewMockStrategy("fill:0:1")
	m.GiveUpAfter = 1

	_, _, giveUp1 := m.Propose(context.Background(), "", engine.ActionContext{})
	_, _, giveUp2 := m.Propose(context.Background(), "", engine.ActionContext{})

	assert.False(t, giveUp1)
	assert.True(t, giveUp2)
}

func TestMockStrategyReset(t *testing.T) {
	m := NewMockStrategy("fill:0:1")
	m.Propose(context.Background(), "", engine.ActionContext{})
	m.Reset()

	assert.Equal(t, 0, m.CallCount())
}

func TestGiveUpImmediatelyStrategy(t *testing.T) {
	var s engine.AgentStrategy = GiveUpImmediately{}
	_, hintUsed, giveUp := s.Propose(context.Background(), "", engine.ActionContext{})
	assert.False(t, hintUsed)
	assert.True(t, giveUp)
}

func TestDefaultSolverConfigIsSolverAllowed(t *testing.T) {
	cfg := DefaultSolverConfig()
	assert.True(t, cfg.SolverAllowed)
	assert.Equal(t, types.DefaultSolverConfig(), cfg)
}
