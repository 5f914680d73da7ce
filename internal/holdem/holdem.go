// Package holdem defines the shared vocabulary of a Texas Hold'em hand:
// streets, betting actions, and observed opponent statistics.
package holdem

import "fmt"

// Street identifies a betting round.
type Street int

const (
	Preflop Street = iota
	Flop
	Turn
	River
)

// String returns the street name.
func (s Street) String() string {
	switch s {
	case Preflop:
		return "preflop"
	case Flop:
		return "flop"
	case Turn:
		return "turn"
	case River:
		return "river"
	default:
		return "unknown"
	}
}

// ParseStreet converts a street name to its Street value.
func ParseStreet(s string) (Street, error) {
	switch s {
	case "preflop":
		return Preflop, nil
	case "flop":
		return Flop, nil
	case "turn":
		return Turn, nil
	case "river":
		return River, nil
	default:
		return 0, fmt.Errorf("unknown street %q", s)
	}
}

// RemainingStreets returns the number of betting rounds left to play,
// counting the current one.
func (s Street) RemainingStreets() int {
	switch s {
	case Preflop:
		return 4
	case Flop:
		return 3
	case Turn:
		return 2
	default:
		return 1
	}
}

// ActionKind enumerates the possible betting actions.
type ActionKind int

const (
	Check ActionKind = iota
	Bet
	Call
	Raise
	Fold
)

// String returns the action name.
func (k ActionKind) String() string {
	switch k {
	case Check:
		return "check"
	case Bet:
		return "bet"
	case Call:
		return "call"
	case Raise:
		return "raise"
	case Fold:
		return "fold"
	default:
		return "unknown"
	}
}

// Aggressive reports whether the action puts chips in voluntarily beyond a
// call.
func (k ActionKind) Aggressive() bool {
	return k == Bet || k == Raise
}

// ParseActionKind converts an action name to its ActionKind value.
func ParseActionKind(s string) (ActionKind, error) {
	switch s {
	case "check":
		return Check, nil
	case "bet":
		return Bet, nil
	case "call":
		return Call, nil
	case "raise":
		return Raise, nil
	case "fold":
		return Fold, nil
	default:
		return 0, fmt.Errorf("unknown action %q", s)
	}
}

// BetAction is a single entry in the betting history of one hand. Histories
// are append-only within a hand and discarded between hands.
type BetAction struct {
	Street Street
	Kind   ActionKind
	Amount float64
}

// OpponentModel holds the observed statistics for one opponent. Read-only
// input to bluff inference.
type OpponentModel struct {
	// AggressionFactor is the ratio of bets+raises to calls.
	AggressionFactor float64

	// VPIP is the voluntarily-put-money-in-pot rate.
	VPIP float64

	// HandsObserved is the total number of hands this model is built from.
	HandsObserved int
}
