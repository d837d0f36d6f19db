// Package testutil provides testing utilities for the benchmark engine.
package testutil

import (
	"context"
	"sync"

	"reasoning-bench/internal/engine"
)

// ProposeCall records one Propose invocation for later assertion.
type ProposeCall struct {
	Observation string
	Steps       int
	Invalid     int
}

// MockStrategy is a configurable engine.AgentStrategy for driving
// episodes deterministically in tests, without a real external agent.
type MockStrategy struct {
	mu sync.Mutex

	// Actions is cycled through in order; once exhausted, the last entry
	// repeats. GiveUpAfter, if non-zero, forces a give-up once this many
	// actions have been proposed.
	Actions     []string
	HintFlags   []bool
	GiveUpAfter int

	Calls []ProposeCall

	idx int
}

// NewMockStrategy returns a mock that proposes the given actions in
// order, never claiming any of them came from a hint.
func NewMockStrategy(actions ...string) *MockStrategy {
	return &MockStrategy{Actions: actions}
}

// Propose implements engine.AgentStrategy.
func (m *MockStrategy) Propose(_ context.Context, observation string, actx engine.ActionContext) (string, bool, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, ProposeCall{Observation: observation, Steps: actx.Steps, Invalid: actx.Invalid})

	if m.GiveUpAfter > 0 && len(m.Calls) > m.GiveUpAfter {
		return "", false, true
	}
	if len(m.Actions) == 0 {
		return "", false, true
	}

	i := m.idx
	if i >= len(m.Actions) {
		i = len(m.Actions) - 1
	} else {
		m.idx++
	}

	hintUsed := false
	if i < len(m.HintFlags) {
		hintUsed = m.HintFlags[i]
	}
	return m.Actions[i], hintUsed, false
}

// WithHintFlags marks which of Actions, by index, should report as
// hint-derived for hint-budget accounting.
func (m *MockStrategy) WithHintFlags(flags ...bool) *MockStrategy {
	m.HintFlags = flags
	return m
}

// CallCount returns the number of times Propose was invoked.
func (m *MockStrategy) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

// Reset clears call history and rewinds the action cursor.
func (m *MockStrategy) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = nil
	m.idx = 0
}

var _ engine.AgentStrategy = (*MockStrategy)(nil)
