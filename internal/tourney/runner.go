// Package tourney is an in-process tournament runner: a simplified
// profile-driven Hold'em simulation good enough to produce finishing-rank
// distributions for the verification harness.
package tourney

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"sort"

	"github.com/charmbracelet/log"
	"github.com/paulhankin/poker"

	"github.com/lox/holdem-advisor/internal/cards"
	"github.com/lox/holdem-advisor/internal/holdem"
	"github.com/lox/holdem-advisor/internal/playbook"
	"github.com/lox/holdem-advisor/internal/profile"
	"github.com/lox/holdem-advisor/internal/texture"
	"github.com/lox/holdem-advisor/internal/verify"
)

// Config sizes the simulation.
type Config struct {
	HandsPerGame  int
	StartingChips int
	Seed          int64
	Logger        *log.Logger
}

// Runner implements verify.Runner with an in-process simulation. Not safe
// for concurrent use; the harness drives it from a single worker.
type Runner struct {
	cfg      Config
	rng      *rand.Rand
	logger   *log.Logger
	profiles []profile.Profile
	books    *playbook.Store

	// finishing ranks per profile, one entry per completed game
	ranks map[string][]int
}

// New creates a runner for the given profiles.
func New(cfg Config, profiles []profile.Profile) *Runner {
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Runner{
		cfg:      cfg,
		rng:      rand.New(rand.NewSource(cfg.Seed)),
		logger:   logger,
		profiles: profiles,
		books:    playbook.NewStore(),
		ranks:    make(map[string][]int),
	}
}

// Factory adapts New to the harness's RunnerFactory signature.
func Factory(seed int64, logger *log.Logger) verify.RunnerFactory {
	return func(cfg verify.Config, profiles []profile.Profile) (verify.Runner, error) {
		if len(profiles) < 2 {
			return nil, fmt.Errorf("tournament needs at least 2 profiles, got %d", len(profiles))
		}
		return New(Config{
			HandsPerGame:  cfg.HandsPerTournament,
			StartingChips: cfg.StartingChips,
			Seed:          seed,
			Logger:        logger,
		}, profiles), nil
	}
}

type seat struct {
	profile profile.Profile
	chips   int
	busted  int // hand number the player busted on, 0 while alive
	hole    [2]cards.Card
	folded  bool
	wager   int
}

// RunSingleGame plays one tournament to completion: hands are dealt until
// one player holds all the chips or the hand limit is reached, and the
// finishing ranks are recorded.
func (r *Runner) RunSingleGame(ctx context.Context) error {
	seats := make([]*seat, len(r.profiles))
	for i, p := range r.profiles {
		seats[i] = &seat{profile: p, chips: r.cfg.StartingChips}
	}

	for hand := 1; hand <= r.cfg.HandsPerGame; hand++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if alive(seats) < 2 {
			break
		}
		if err := r.playHand(seats, hand); err != nil {
			return fmt.Errorf("hand %d failed: %w", hand, err)
		}
	}

	r.recordRanks(seats)
	return nil
}

// RunFullEvaluation averages finishing ranks per profile across all games
// played so far, ordered ascending by average rank.
func (r *Runner) RunFullEvaluation() []verify.Standing {
	standings := make([]verify.Standing, 0, len(r.profiles))
	for _, p := range r.profiles {
		games := r.ranks[p.Name]
		var sum float64
		for _, rank := range games {
			sum += float64(rank)
		}
		avg := 0.0
		if len(games) > 0 {
			avg = sum / float64(len(games))
		}
		standings = append(standings, verify.Standing{ProfileName: p.Name, AverageRank: avg})
	}

	sort.SliceStable(standings, func(i, j int) bool {
		return standings[i].AverageRank < standings[j].AverageRank
	})
	return standings
}

// playHand deals one simplified hand. Each live player decides preflop from
// the playbook-adjusted profile; callers commit a fixed wager scaled by
// aggression and the best showdown hand takes the pot.
func (r *Runner) playHand(seats []*seat, handNum int) error {
	deck := cards.NewDeck(r.rng)

	live := make([]*seat, 0, len(seats))
	for _, s := range seats {
		if s.chips > 0 {
			s.folded = false
			s.wager = 0
			s.hole = [2]cards.Card{deck.DealOne(), deck.DealOne()}
			live = append(live, s)
		}
	}
	if len(live) < 2 {
		return nil
	}

	board := deck.Deal(5)
	if board == nil {
		return fmt.Errorf("deck exhausted with %d players", len(live))
	}
	boardTexture := texture.AnalyzeCards(board[:3])

	// Blinds keep every hand contested.
	blind := r.cfg.StartingChips / 100
	if blind < 1 {
		blind = 1
	}

	pot := 0
	for position, s := range live {
		adjusted := playbook.Modifier{
			Playbook: r.books.Playbook(s.profile.Name),
			Phase:    holdem.Preflop,
			Texture:  boardTexture.Class,
			Position: position,
		}.Apply(s.profile)

		stake := blind
		if r.wantsToPlay(s, adjusted) {
			stake = blind + int(float64(s.chips-blind)*0.1*(1+adjusted.Aggression))
		} else {
			s.folded = true
		}
		if stake > s.chips {
			stake = s.chips
		}
		s.wager = stake
		s.chips -= stake
		pot += stake
	}

	winner, err := r.showdown(live, board)
	if err != nil {
		return err
	}
	winner.chips += pot

	for _, s := range live {
		outcome := playbook.Loss
		if s == winner {
			outcome = playbook.Win
		}
		r.books.RecordOutcome(s.profile.Name, outcome)
		if s.chips <= 0 && s.busted == 0 {
			s.busted = handNum
		}
	}
	return nil
}

// wantsToPlay folds the weakest holdings for tight profiles and plays
// everything for loose ones, with a small random component so identical
// profiles do not move in lockstep.
func (r *Runner) wantsToPlay(s *seat, adjusted profile.Profile) bool {
	var hole cards.Hand
	hole.AddCard(s.hole[0])
	hole.AddCard(s.hole[1])

	strength := 0.3
	if cards.Categorize(hole) == cards.Pair {
		strength = 0.6
	} else if s.hole[0].Rank() >= cards.Ten && s.hole[1].Rank() >= cards.Ten {
		strength = 0.5
	}
	strength += adjusted.BluffFreq * 0.2

	threshold := adjusted.Tightness * 0.55
	return strength+r.rng.Float64()*0.1 > threshold
}

// showdown evaluates all non-folded hands and returns the winner. Folded
// players forfeit; if everyone folded the first live seat takes the pot.
func (r *Runner) showdown(live []*seat, board []cards.Card) (*seat, error) {
	var best *seat
	var bestScore int16

	for _, s := range live {
		if s.folded {
			continue
		}

		var final [7]poker.Card
		for i, c := range board {
			card, err := toPokerCard(c)
			if err != nil {
				return nil, err
			}
			final[i] = card
		}
		for i, c := range s.hole {
			card, err := toPokerCard(c)
			if err != nil {
				return nil, err
			}
			final[5+i] = card
		}

		score := poker.Eval7(&final)
		if best == nil || score > bestScore {
			best = s
			bestScore = score
		}
	}

	if best == nil {
		best = live[0]
	}
	return best, nil
}

// recordRanks orders players by bust time (later is better), breaking ties
// by final chips, and appends each profile's finishing rank.
func (r *Runner) recordRanks(seats []*seat) {
	ordered := make([]*seat, len(seats))
	copy(ordered, seats)
	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if (a.busted == 0) != (b.busted == 0) {
			return a.busted == 0
		}
		if a.busted != b.busted {
			return a.busted > b.busted
		}
		return a.chips > b.chips
	})

	for i, s := range ordered {
		r.ranks[s.profile.Name] = append(r.ranks[s.profile.Name], i+1)
	}

	r.logger.Debug("Recorded tournament ranks", "players", len(ordered), "winner", ordered[0].profile.Name)
}

func alive(seats []*seat) int {
	n := 0
	for _, s := range seats {
		if s.chips > 0 {
			n++
		}
	}
	return n
}

// toPokerCard converts an internal card to the evaluator's representation.
// The evaluator numbers suits the same way but ranks ace-low: Ace=1 through
// King=13.
func toPokerCard(c cards.Card) (poker.Card, error) {
	rank := poker.Rank(int(c.Rank()) + 2)
	if c.Rank() == cards.Ace {
		rank = 1
	}
	return poker.MakeCard(poker.Suit(c.Suit()), rank)
}
