// Package bluff infers the probability that an opponent's betting line is a
// bluff from their observed statistics, the board texture, and the betting
// history of the current hand.
package bluff

import (
	"math"

	"github.com/lox/holdem-advisor/internal/holdem"
	"github.com/lox/holdem-advisor/internal/texture"
)

// Signal tags the heuristic that contributed to a bluff read.
type Signal string

const (
	SignalHighAggression    Signal = "highAggression"
	SignalTripleBarrel      Signal = "tripleBarrel"
	SignalDryBoardLargeBet  Signal = "dryBoardLargeBet"
	SignalWetBoardContinue  Signal = "wetBoardContinue"
	SignalRiverOverbet      Signal = "riverOverbet"
	SignalInconsistentSizes Signal = "inconsistentSizing"
)

// maxBluffProbability caps the additive score; no read is ever certain.
const maxBluffProbability = 0.85

// Indicator is the result of one bluff evaluation. Created fresh per call,
// never mutated.
type Indicator struct {
	// Probability is the estimated bluff likelihood, in [0, 0.85].
	Probability float64

	// Confidence reflects the opponent sample size, in [0, 1].
	Confidence float64

	// Signals lists the heuristics that triggered, in evaluation order.
	Signals []Signal
}

// Recommendation is the closed set of responses to a bluff read.
type Recommendation int

const (
	DeferToPotOdds Recommendation = iota
	WidenCallingRange
	TightenCallingRange
)

// String returns the recommendation name.
func (r Recommendation) String() string {
	switch r {
	case WidenCallingRange:
		return "widen calling range"
	case TightenCallingRange:
		return "tighten calling range"
	default:
		return "defer to pot odds"
	}
}

// Engine scores bluff likelihood. Stateless and safe for concurrent use.
type Engine struct{}

// NewEngine creates a bluff inference engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Infer scores the current line against the opponent model and board. Each
// triggered heuristic adds to the probability and records a signal; the total
// is capped at 0.85.
func (e *Engine) Infer(opp holdem.OpponentModel, board texture.Board, history []holdem.BetAction, potSize float64) Indicator {
	var probability float64
	var signals []Signal

	if opp.AggressionFactor > 3.0 {
		probability += 0.20
		signals = append(signals, SignalHighAggression)
	}

	if len(history) >= 3 && allAggressive(history) {
		probability += 0.25
		signals = append(signals, SignalTripleBarrel)
	}

	// The two wetness bands are mutually exclusive; mid-band boards add
	// nothing either way.
	if board.Wetness < 0.3 {
		probability += 0.15
		signals = append(signals, SignalDryBoardLargeBet)
	} else if board.Wetness > 0.7 && len(history) >= 2 {
		probability += 0.10
		signals = append(signals, SignalWetBoardContinue)
	}

	if last, ok := lastAction(history); ok && last.Street == holdem.River && potSize > 0 && last.Amount/potSize > 1.2 {
		probability += 0.20
		signals = append(signals, SignalRiverOverbet)
	}

	if len(history) >= 2 && sizingVariance(history, potSize) > 0.3 {
		probability += 0.10
		signals = append(signals, SignalInconsistentSizes)
	}

	return Indicator{
		Probability: math.Min(probability, maxBluffProbability),
		Confidence:  math.Min(1, float64(opp.HandsObserved)/30),
		Signals:     signals,
	}
}

// Recommend maps a bluff probability to the standard response.
func Recommend(probability float64) Recommendation {
	switch {
	case probability > 0.6:
		return WidenCallingRange
	case probability < 0.3:
		return TightenCallingRange
	default:
		return DeferToPotOdds
	}
}

func allAggressive(history []holdem.BetAction) bool {
	for _, action := range history {
		if !action.Kind.Aggressive() {
			return false
		}
	}
	return true
}

func lastAction(history []holdem.BetAction) (holdem.BetAction, bool) {
	if len(history) == 0 {
		return holdem.BetAction{}, false
	}
	return history[len(history)-1], true
}

// sizingVariance is the population variance of the amount-to-pot ratios
// across the betting history.
func sizingVariance(history []holdem.BetAction, potSize float64) float64 {
	if potSize <= 0 {
		return 0
	}

	ratios := make([]float64, len(history))
	var sum float64
	for i, action := range history {
		ratios[i] = action.Amount / potSize
		sum += ratios[i]
	}
	mean := sum / float64(len(ratios))

	var variance float64
	for _, r := range ratios {
		d := r - mean
		variance += d * d
	}
	return variance / float64(len(ratios))
}
