package odds

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lox/holdem-advisor/internal/holdem"
)

func TestDirectOdds(t *testing.T) {
	t.Parallel()

	e := NewEngine()

	assert.InDelta(t, 0.2, e.DirectOdds(25, 100), 1e-9)
	assert.InDelta(t, 0.5, e.DirectOdds(100, 100), 1e-9)
	assert.Zero(t, e.DirectOdds(0, 100))
	assert.Zero(t, e.DirectOdds(-5, 100))
}

func TestImpliedOddsDrawMultiplier(t *testing.T) {
	t.Parallel()

	e := NewEngine()

	// Deep stack with a draw on the flop: direct 0.2, draw multiplier
	// 1 + 0.6 + 0.15, deep-stack bump 1.2.
	got := e.ImpliedOdds(25, 100, 1000, holdem.Flop, 0.3, true)
	assert.InDelta(t, 0.42, got, 1e-9)

	// Without a draw only the stack adjustment applies.
	noDraw := e.ImpliedOdds(25, 100, 1000, holdem.Flop, 0.3, false)
	assert.InDelta(t, 0.24, noDraw, 1e-9)
	assert.Greater(t, got, noDraw)
}

func TestImpliedOddsShallowStackPenalty(t *testing.T) {
	t.Parallel()

	e := NewEngine()

	got := e.ImpliedOdds(25, 100, 150, holdem.Flop, 0.3, false)
	assert.InDelta(t, 0.16, got, 1e-9)
}

func TestImpliedOddsClamped(t *testing.T) {
	t.Parallel()

	e := NewEngine()

	got := e.ImpliedOdds(100, 10, 5000, holdem.Preflop, 0.4, true)
	assert.InDelta(t, 0.95, got, 1e-9)
}

func TestReverseImpliedOdds(t *testing.T) {
	t.Parallel()

	e := NewEngine()

	// Deep stack with real drawing-dead risk on the turn.
	got := e.ReverseImpliedOdds(25, 100, 400, holdem.Turn, 0.3)
	assert.InDelta(t, 0.065, got, 1e-9)

	// Penalty needs both depth and risk.
	assert.InDelta(t, 0.2, e.ReverseImpliedOdds(25, 100, 400, holdem.Turn, 0.1), 1e-9)
	assert.InDelta(t, 0.2, e.ReverseImpliedOdds(25, 100, 200, holdem.Turn, 0.3), 1e-9)

	// Floored at zero.
	assert.Zero(t, e.ReverseImpliedOdds(10, 100, 1000, holdem.River, 1.0))
}

func TestEffectiveOdds(t *testing.T) {
	t.Parallel()

	e := NewEngine()

	eval := e.EffectiveOdds(25, 100, 1000, 0.5, holdem.Flop, 0.3, 0.1, true)

	assert.InDelta(t, 0.2, eval.DirectOdds, 1e-9)
	assert.InDelta(t, 0.42, eval.ImpliedOdds, 1e-9)
	assert.InDelta(t, 0.2, eval.ReverseImpliedOdds, 1e-9)
	assert.InDelta(t, 0.2, eval.RequiredEquity, 1e-9)
	assert.True(t, eval.Profitable)
	assert.InDelta(t, 25.0, eval.BreakEvenPot, 1e-9)
	assert.InDelta(t, 0.765, eval.Confidence, 1e-9)
}

func TestEffectiveOddsRequiredIsMinimum(t *testing.T) {
	t.Parallel()

	e := NewEngine()

	eval := e.EffectiveOdds(25, 100, 1000, 0.1, holdem.Turn, 0.3, 0.5, true)
	assert.InDelta(t, min(eval.ImpliedOdds, eval.ReverseImpliedOdds), eval.RequiredEquity, 1e-9)
	assert.False(t, eval.Profitable)
}

func TestShouldCallWithDraw(t *testing.T) {
	t.Parallel()

	e := NewEngine()

	assert.True(t, e.ShouldCallWithDraw(25, 100, 1000, 0.5, holdem.Flop, 0.3, 0.1))
	assert.False(t, e.ShouldCallWithDraw(25, 100, 1000, 0.05, holdem.Flop, 0.3, 0.1))
}

func TestConfidenceByStreet(t *testing.T) {
	t.Parallel()

	e := NewEngine()

	// No draw, modest stack: confidence should track the per-street base.
	streets := []holdem.Street{holdem.Preflop, holdem.Flop, holdem.Turn, holdem.River}
	want := []float64{0.6, 0.85, 0.9, 1.0}
	for i, street := range streets {
		eval := e.EffectiveOdds(25, 100, 300, 0.5, street, 0.3, 0.1, false)
		assert.InDelta(t, want[i], eval.Confidence, 1e-9, "street %s", street)
	}
}

func TestBreakEvenPotGuardsZeroEquity(t *testing.T) {
	t.Parallel()

	e := NewEngine()

	eval := e.EffectiveOdds(25, 100, 300, 0, holdem.River, 0.3, 0.1, false)
	assert.InDelta(t, 25/0.01-25, eval.BreakEvenPot, 1e-9)
}
