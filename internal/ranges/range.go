// Package ranges provides weighted hole-card ranges, range-vs-range equity
// estimation, bluff-catcher identification, and bet-sizing strategy
// classification.
package ranges

import (
	"fmt"

	"github.com/lox/holdem-advisor/internal/cards"
)

// wildcardCombos is the number of distinct two-card combinations in a full
// deck: C(52,2).
const wildcardCombos = 1326

// Combo is one concrete two-card combination, e.g. "AhKh". Pocket pairs from
// shorthand notation are stored as the bare shorthand itself (e.g. "AA");
// downstream combo counts depend on that expansion.
type Combo string

// Cards returns the two concrete cards of the combo. Bare pair shorthands
// have no concrete cards and return false.
func (c Combo) Cards() (cards.Card, cards.Card, bool) {
	if len(c) != 4 {
		return 0, 0, false
	}
	c1, err1 := cards.ParseCard(string(c[:2]))
	c2, err2 := cards.ParseCard(string(c[2:]))
	if err1 != nil || err2 != nil {
		return 0, 0, false
	}
	return c1, c2, true
}

// pairRank returns the rank of a bare pair combo, or false.
func (c Combo) pairRank() (uint8, bool) {
	if len(c) != 2 || c[0] != c[1] {
		return 0, false
	}
	card, err := cards.ParseCard(string(c[0]) + "h")
	if err != nil {
		return 0, false
	}
	return card.Rank(), true
}

// Range is either the wildcard "any two cards" range or an explicit weighted
// set of combos. Weights are in [0, 1].
type Range struct {
	anyTwo bool
	combos map[Combo]float64
}

// AnyTwoCards returns the wildcard range covering all 1326 combinations.
func AnyTwoCards() Range {
	return Range{anyTwo: true}
}

// NewRange creates an explicit range from combos, all at weight 1.
func NewRange(combos ...Combo) Range {
	r := Range{combos: make(map[Combo]float64, len(combos))}
	for _, c := range combos {
		r.combos[c] = 1.0
	}
	return r
}

// AddCombo adds a combo with the given weight, clamped to [0, 1]. No-op on
// the wildcard range.
func (r *Range) AddCombo(c Combo, weight float64) {
	if r.anyTwo {
		return
	}
	if r.combos == nil {
		r.combos = make(map[Combo]float64)
	}
	if weight < 0 {
		weight = 0
	}
	if weight > 1 {
		weight = 1
	}
	r.combos[c] = weight
}

// IsWildcard reports whether the range is "any two cards".
func (r Range) IsWildcard() bool {
	return r.anyTwo
}

// TotalCombos returns 1326 for the wildcard range, otherwise the explicit
// combo count.
func (r Range) TotalCombos() int {
	if r.anyTwo {
		return wildcardCombos
	}
	return len(r.combos)
}

// Weight returns the weight of a combo in the range. Every combo weighs 1 in
// the wildcard range.
func (r Range) Weight(c Combo) float64 {
	if r.anyTwo {
		return 1.0
	}
	return r.combos[c]
}

// Contains reports whether a concrete two-card hand is in the range,
// regardless of card order.
func (r Range) Contains(c1, c2 cards.Card) bool {
	if r.anyTwo {
		return true
	}
	for combo := range r.combos {
		if combo.matches(c1, c2) {
			return true
		}
	}
	return false
}

// Combos returns the explicit combos in the range; nil for the wildcard.
func (r Range) Combos() []Combo {
	if r.anyTwo {
		return nil
	}
	out := make([]Combo, 0, len(r.combos))
	for c := range r.combos {
		out = append(out, c)
	}
	return out
}

// matches tests a combo against an unordered pair of concrete cards. A bare
// pair combo matches any two cards of that rank.
func (c Combo) matches(c1, c2 cards.Card) bool {
	if rank, ok := c.pairRank(); ok {
		return c1.Rank() == rank && c2.Rank() == rank
	}

	m1, m2, ok := c.Cards()
	if !ok {
		return false
	}
	return (m1 == c1 && m2 == c2) || (m1 == c2 && m2 == c1)
}

// parseShorthandRanks parses the two rank characters of a shorthand like
// "AKs" and returns them as cards of a nominal suit.
func parseShorthandRanks(shorthand string) (uint8, uint8, error) {
	if len(shorthand) < 2 {
		return 0, 0, fmt.Errorf("invalid shorthand %q", shorthand)
	}
	c1, err := cards.ParseCard(string(shorthand[0]) + "h")
	if err != nil {
		return 0, 0, fmt.Errorf("invalid shorthand %q: %w", shorthand, err)
	}
	c2, err := cards.ParseCard(string(shorthand[1]) + "h")
	if err != nil {
		return 0, 0, fmt.Errorf("invalid shorthand %q: %w", shorthand, err)
	}
	return c1.Rank(), c2.Rank(), nil
}
