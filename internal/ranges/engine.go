package ranges

import (
	"sort"
	"sync"

	"github.com/lox/holdem-advisor/internal/cards"
)

// EquityResult is the outcome of a range-vs-range equity estimate.
// equity1 + equity2 == 1 whenever TieEquity is zero.
type EquityResult struct {
	Equity1   float64
	Equity2   float64
	TieEquity float64
	Combos1   int
	Combos2   int
}

// TotalCombos returns the combined combo count of the matchup.
func (r EquityResult) TotalCombos() int {
	return r.Combos1 + r.Combos2
}

// Strategy classifies a betting range's construction.
type Strategy int

const (
	Linear Strategy = iota
	Polarized
	Underbalanced
)

// String returns the strategy name.
func (s Strategy) String() string {
	switch s {
	case Polarized:
		return "polarized"
	case Underbalanced:
		return "underbalanced"
	default:
		return "linear"
	}
}

// BetSizing is a sizing recommendation. Min <= Optimal <= Max, all
// non-negative; Max never exceeds the available stack.
type BetSizing struct {
	MinSize     float64
	OptimalSize float64
	MaxSize     float64
	Strategy    Strategy
	Rationale   string
}

// Engine estimates equity between ranges and classifies bet-sizing
// strategies. The computations are pure; calls are serialized through a
// single mutex so concurrent invocations stay race-free.
type Engine struct {
	mu sync.Mutex
}

// NewEngine creates a range equity engine.
func NewEngine() *Engine {
	return &Engine{}
}

// AnalyzeRangeEquity constructs the matchup between two ranges. The equity
// split is a heuristic placeholder, not a combinatorial enumeration: with no
// per-combo rollout the matchup is scored even.
func (e *Engine) AnalyzeRangeEquity(r1, r2 Range) EquityResult {
	e.mu.Lock()
	defer e.mu.Unlock()

	return EquityResult{
		Equity1: 0.5,
		Equity2: 0.5,
		Combos1: r1.TotalCombos(),
		Combos2: r2.TotalCombos(),
	}
}

// IdentifyBluffCatchers returns the opponent combos that hero beats while
// holding an only-moderately-strong hand: combos weaker than hero's strength
// when hero's own strength is below 0.7. Wildcard ranges have no explicit
// combos to test.
func (e *Engine) IdentifyBluffCatchers(heroStrength float64, opponent Range, board cards.Hand) []Combo {
	e.mu.Lock()
	defer e.mu.Unlock()

	if opponent.IsWildcard() || heroStrength >= 0.7 {
		return nil
	}

	var catchers []Combo
	for _, combo := range opponent.Combos() {
		if comboStrength(combo, board) < heroStrength {
			catchers = append(catchers, combo)
		}
	}

	sort.Slice(catchers, func(i, j int) bool { return catchers[i] < catchers[j] })
	return catchers
}

// ValueToBluffRatio returns valueCount / bluffCount, or 0 when either side
// is empty.
func (e *Engine) ValueToBluffRatio(valueCount, bluffCount int) float64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	if valueCount == 0 || bluffCount == 0 {
		return 0
	}
	return float64(valueCount) / float64(bluffCount)
}

// OptimalBetSizing classifies the betting range as polarized or linear and
// recommends sizes. A range is polarized when it is top-heavy (over 30%
// strong combos) while still carrying a meaningful weak tail (over 15%).
func (e *Engine) OptimalBetSizing(betting Range, board cards.Hand, pot, stack float64) BetSizing {
	e.mu.Lock()
	defer e.mu.Unlock()

	strongFrac, weakFrac := e.strengthFractions(betting, board)

	if strongFrac > 0.3 && weakFrac > 0.15 {
		sizing := BetSizing{
			MinSize:  pot / 2,
			MaxSize:  stack,
			Strategy: Polarized,
		}
		if strongFrac > 0.5 && stack > pot*2 {
			sizing.OptimalSize = pot * 2
			sizing.Rationale = "polarized range with a strong majority: overbet for maximum value and fold equity"
		} else {
			sizing.OptimalSize = pot * 0.75
			sizing.Rationale = "polarized range: large sizing pressures bluff-catchers"
		}
		return sizing
	}

	return BetSizing{
		MinSize:     pot / 3,
		OptimalSize: pot * 2 / 3,
		MaxSize:     pot,
		Strategy:    Linear,
		Rationale:   "linear range: medium sizing keeps worse hands in",
	}
}

// strengthFractions buckets a range's combos into strong (>0.7) and weak
// (<0.3) fractions. The wildcard range has no combos to classify.
func (e *Engine) strengthFractions(r Range, board cards.Hand) (strong, weak float64) {
	combos := r.Combos()
	if len(combos) == 0 {
		return 0, 0
	}

	var strongCount, weakCount int
	for _, combo := range combos {
		s := comboStrength(combo, board)
		if s > 0.7 {
			strongCount++
		} else if s < 0.3 {
			weakCount++
		}
	}

	total := float64(len(combos))
	return float64(strongCount) / total, float64(weakCount) / total
}

// CategoryStrength maps a categorical hand rank to a [0, 1] strength
// heuristic.
func CategoryStrength(category cards.HandCategory) float64 {
	switch category {
	case cards.StraightFlush:
		return 0.95
	case cards.FourOfAKind:
		return 0.9
	case cards.FullHouse:
		return 0.85
	case cards.Flush:
		return 0.8
	case cards.Straight:
		return 0.75
	case cards.ThreeOfAKind:
		return 0.65
	case cards.TwoPair:
		return 0.5
	case cards.Pair:
		return 0.4
	default:
		return 0.3
	}
}

// comboStrength estimates a combo's strength against the board. This is a
// deliberately coarse estimator: with a full street of cards it buckets the
// categorical rank, otherwise it falls back to fixed values.
func comboStrength(combo Combo, board cards.Hand) float64 {
	if rank, ok := combo.pairRank(); ok {
		if board.RankMask()&(1<<rank) != 0 {
			return CategoryStrength(cards.ThreeOfAKind)
		}
		return CategoryStrength(cards.Pair)
	}

	c1, c2, ok := combo.Cards()
	if !ok {
		return CategoryStrength(cards.HighCard)
	}

	total := board
	total.AddCard(c1)
	total.AddCard(c2)
	if total.CountCards() < 5 {
		return 0.5
	}

	category := cards.Categorize(total)
	if category == cards.HighCard && c1.Rank() < cards.Ten && c2.Rank() < cards.Ten {
		// A whiff with no broadway backup rates below the high-card bucket;
		// this is what puts combos in the weak tail of a polarized range.
		return 0.2
	}
	return CategoryStrength(category)
}
