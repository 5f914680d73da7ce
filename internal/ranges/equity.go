package ranges

import (
	"math"
	"math/rand"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/lox/holdem-advisor/internal/cards"
)

// MonteCarloResult holds the outcome of a Monte Carlo hole-card equity
// simulation against random opponent hands.
type MonteCarloResult struct {
	Wins             uint32
	Ties             uint32
	TotalSimulations uint32
}

// Equity returns the overall equity in [0, 1]; ties count half.
func (r MonteCarloResult) Equity() float64 {
	if r.TotalSimulations == 0 {
		return 0
	}
	return (float64(r.Wins) + 0.5*float64(r.Ties)) / float64(r.TotalSimulations)
}

// ConfidenceInterval returns the 95% interval around the equity estimate.
func (r MonteCarloResult) ConfidenceInterval() (lower, upper float64) {
	equity := r.Equity()
	n := float64(r.TotalSimulations)
	if n == 0 {
		return 0, 0
	}

	se := math.Sqrt(equity * (1 - equity) / n)
	margin := 1.96 * se
	return math.Max(0, equity-margin), math.Min(1, equity+margin)
}

// SimulateEquity runs a Monte Carlo equity estimate for a hero hand against
// the given number of random opponent hands, completing the board each
// rollout.
func SimulateEquity(hero [2]cards.Card, board []cards.Card, opponents, simulations int, rng *rand.Rand) MonteCarloResult {
	if opponents < 1 {
		opponents = 1
	}

	var used cards.Hand
	used.AddCard(hero[0])
	used.AddCard(hero[1])
	var boardHand cards.Hand
	for _, c := range board {
		boardHand.AddCard(c)
		used.AddCard(c)
	}

	available := make([]cards.Card, 0, 52-used.CountCards())
	for suit := uint8(0); suit < 4; suit++ {
		for rank := uint8(0); rank < 13; rank++ {
			c := cards.NewCard(rank, suit)
			if !used.HasCard(c) {
				available = append(available, c)
			}
		}
	}

	var wins, ties uint32
	dealt := make([]cards.Card, len(available))

	for sim := 0; sim < simulations; sim++ {
		copy(dealt, available)
		rng.Shuffle(len(dealt), func(i, j int) {
			dealt[i], dealt[j] = dealt[j], dealt[i]
		})

		next := 0
		finalBoard := boardHand
		for finalBoard.CountCards() < 5 {
			finalBoard.AddCard(dealt[next])
			next++
		}

		heroFinal := finalBoard
		heroFinal.AddCard(hero[0])
		heroFinal.AddCard(hero[1])
		heroCat := cards.Categorize(heroFinal)
		heroStrength := CategoryStrength(heroCat)

		best := heroStrength
		tied := false
		for opp := 0; opp < opponents && next+1 < len(dealt); opp++ {
			oppFinal := finalBoard
			oppFinal.AddCard(dealt[next])
			oppFinal.AddCard(dealt[next+1])
			next += 2

			s := CategoryStrength(cards.Categorize(oppFinal))
			if s > best {
				best = s
			} else if s == best {
				tied = true
			}
		}

		if best > heroStrength {
			continue
		}
		if tied {
			ties++
		} else {
			wins++
		}
	}

	return MonteCarloResult{Wins: wins, Ties: ties, TotalSimulations: uint32(simulations)}
}

// SimulateEquityParallel splits the simulations across workers. Each worker
// derives its own RNG from the seed so the result is deterministic for a
// given seed and worker count.
func SimulateEquityParallel(hero [2]cards.Card, board []cards.Card, opponents, simulations int, seed int64) MonteCarloResult {
	workers := runtime.GOMAXPROCS(0)
	if workers > simulations {
		workers = 1
	}

	results := make([]MonteCarloResult, workers)
	per := simulations / workers

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		n := per
		if w == workers-1 {
			n = simulations - per*(workers-1)
		}
		rng := rand.New(rand.NewSource(seed + int64(w)))
		g.Go(func() error {
			results[w] = SimulateEquity(hero, board, opponents, n, rng)
			return nil
		})
	}
	_ = g.Wait() // workers never return errors

	var total MonteCarloResult
	for _, r := range results {
		total.Wins += r.Wins
		total.Ties += r.Ties
		total.TotalSimulations += r.TotalSimulations
	}
	return total
}
