// Package odds computes pot-odds derived quantities: direct, implied,
// reverse-implied and effective odds, plus stack-to-pot ratio analysis and
// bet sizing.
package odds

import (
	"math"

	"github.com/lox/holdem-advisor/internal/holdem"
)

// Engine computes pot-odds quantities. It is stateless; construct one per
// caller or share freely.
type Engine struct{}

// NewEngine creates an odds engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Evaluation is the combined output of an effective-odds calculation.
type Evaluation struct {
	DirectOdds         float64
	ImpliedOdds        float64
	ReverseImpliedOdds float64

	// RequiredEquity is the effective required equity: the minimum of the
	// implied and reverse-implied odds.
	RequiredEquity float64

	// Profitable is true when the actual equity exceeds RequiredEquity.
	Profitable bool

	// Confidence reflects how settled the estimate is for the street.
	Confidence float64

	// BreakEvenPot is the pot size at which the call exactly breaks even.
	BreakEvenPot float64
}

// DirectOdds returns callAmount / (potSize + callAmount), or 0 when there is
// nothing to call.
func (e *Engine) DirectOdds(callAmount, potSize float64) float64 {
	if callAmount <= 0 {
		return 0
	}
	return callAmount / (potSize + callAmount)
}

// ImpliedOdds adjusts direct odds upward for chips expected to be won on
// later streets when a draw completes. The result is clamped to 0.95.
func (e *Engine) ImpliedOdds(callAmount, potSize, stackSize float64, street holdem.Street, handStrength float64, isDraw bool) float64 {
	odds := e.DirectOdds(callAmount, potSize)

	if isDraw {
		multiplier := 1 + math.Min(handStrength*2, 0.8) + 0.05*float64(street.RemainingStreets())
		odds *= multiplier
	}

	ratio := stackToPot(stackSize, potSize)
	if ratio > 5 {
		odds *= 1.2
	} else if ratio < 2 {
		odds *= 0.8
	}

	return math.Min(odds, 0.95)
}

// ReverseImpliedOdds adjusts direct odds downward for the risk of making a
// second-best hand. The penalty only applies deep-stacked with a meaningful
// drawing-dead risk.
func (e *Engine) ReverseImpliedOdds(callAmount, potSize, stackSize float64, street holdem.Street, drawingDeadRisk float64) float64 {
	odds := e.DirectOdds(callAmount, potSize)

	if stackToPot(stackSize, potSize) > 3 && drawingDeadRisk > 0.2 {
		penalty := drawingDeadRisk * 0.15 * float64(street.RemainingStreets()+1)
		odds -= penalty
	}

	return math.Max(0, odds)
}

// EffectiveOdds computes the full evaluation for a call decision. The
// required equity is the minimum of the implied and reverse-implied odds; the
// call is profitable when equity exceeds it.
func (e *Engine) EffectiveOdds(callAmount, potSize, stackSize, equity float64, street holdem.Street, handStrength, drawingDeadRisk float64, hasDraw bool) Evaluation {
	direct := e.DirectOdds(callAmount, potSize)
	implied := e.ImpliedOdds(callAmount, potSize, stackSize, street, handStrength, hasDraw)
	reverse := e.ReverseImpliedOdds(callAmount, potSize, stackSize, street, drawingDeadRisk)

	required := math.Min(implied, reverse)

	return Evaluation{
		DirectOdds:         direct,
		ImpliedOdds:        implied,
		ReverseImpliedOdds: reverse,
		RequiredEquity:     required,
		Profitable:         equity > required,
		Confidence:         confidence(street, hasDraw, stackToPot(stackSize, potSize)),
		BreakEvenPot:       breakEvenPot(callAmount, equity),
	}
}

// ShouldCallWithDraw reports whether calling is profitable with the draw
// flag forced on.
func (e *Engine) ShouldCallWithDraw(callAmount, potSize, stackSize, equity float64, street holdem.Street, handStrength, drawingDeadRisk float64) bool {
	return e.EffectiveOdds(callAmount, potSize, stackSize, equity, street, handStrength, drawingDeadRisk, true).Profitable
}

// confidence scales a per-street base down for drawing hands and very deep
// stacks.
func confidence(street holdem.Street, hasDraw bool, spr float64) float64 {
	var base float64
	switch street {
	case holdem.Preflop:
		base = 0.6
	case holdem.Flop:
		base = 0.85
	case holdem.Turn:
		base = 0.9
	default:
		base = 1.0
	}

	if hasDraw {
		base *= 0.9
	}
	if spr > 10 {
		base *= 0.85
	}
	return base
}

// breakEvenPot returns the pot size at which the call breaks even, or 0 when
// no call is due.
func breakEvenPot(callAmount, equity float64) float64 {
	if callAmount <= 0 {
		return 0
	}
	return callAmount/math.Max(equity, 0.01) - callAmount
}

func stackToPot(stack, pot float64) float64 {
	if pot <= 0 {
		return stack
	}
	return stack / pot
}
