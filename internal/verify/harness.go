// Package verify runs repeated simulated tournaments against an external
// tournament runner and checks each AI profile's empirical finishing rank
// against its theoretical expectation.
package verify

import (
	"context"
	"sort"
	"sync/atomic"
	"time"

	"github.com/coder/quartz"
	"github.com/rs/zerolog"

	"github.com/lox/holdem-advisor/internal/profile"
)

// ResultsKey is the fixed persistence key for final verification results.
const ResultsKey = "ai_verification_results"

// Standing is one row of the external runner's aggregate evaluation.
type Standing struct {
	ProfileName string
	AverageRank float64
}

// Runner drives the underlying game simulation. Implementations are assumed
// externally correct; a failed game aborts the verification run.
type Runner interface {
	// RunSingleGame plays one full simulated tournament.
	RunSingleGame(ctx context.Context) error

	// RunFullEvaluation recomputes aggregate standings across all games
	// played so far, ordered by the runner's own convention.
	RunFullEvaluation() []Standing
}

// RunnerFactory builds a runner for one verification pass: player count from
// the selection, games and sizing from the config.
type RunnerFactory func(cfg Config, profiles []profile.Profile) (Runner, error)

// Config sizes one verification pass.
type Config struct {
	TournamentCount    int
	HandsPerTournament int
	StartingChips      int
}

// Result is the per-profile verdict of a verification pass.
type Result struct {
	ProfileName  string  `json:"profile_name"`
	ExpectedRank int     `json:"expected"`
	ActualRank   float64 `json:"actual"`
	Deviation    int     `json:"deviation"`
	Status       Status  `json:"status"`
}

// Snapshot is one immutable progress publication. Snapshots are sent over a
// channel to a single consumer; the results slice is owned by the snapshot
// and never mutated after publication.
type Snapshot struct {
	CurrentGame int
	Progress    float64
	Elapsed     time.Duration
	Results     []Result
	Final       bool
}

// Sink receives the final results as an opaque serializable value.
type Sink interface {
	Put(key string, value any) error
}

// Harness owns one verification run at a time. Starting a second run while
// one is active is the caller's error; the harness does not guard it.
type Harness struct {
	factory RunnerFactory
	sink    Sink
	logger  zerolog.Logger
	clock   quartz.Clock
	running atomic.Bool
}

// Option configures a Harness.
type Option func(*Harness)

// WithClock substitutes the wall clock, for tests.
func WithClock(clock quartz.Clock) Option {
	return func(h *Harness) { h.clock = clock }
}

// NewHarness creates a verification harness. The sink may be nil when the
// caller does not persist results.
func NewHarness(factory RunnerFactory, sink Sink, logger zerolog.Logger, opts ...Option) *Harness {
	h := &Harness{
		factory: factory,
		sink:    sink,
		logger:  logger,
		clock:   quartz.NewReal(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Running reports whether a verification pass is in flight.
func (h *Harness) Running() bool {
	return h.running.Load()
}

// Run starts the verification worker and returns its snapshot channel. One
// snapshot is published per completed tournament and a final one on
// completion; the channel is closed when the run stops for any reason.
//
// An empty profile selection is a no-op: the returned channel is already
// closed and no state changes. Cancelling the context stops the run after
// the in-flight game completes, without further publications.
func (h *Harness) Run(ctx context.Context, profiles []profile.Profile, cfg Config) <-chan Snapshot {
	snapshots := make(chan Snapshot)

	if len(profiles) == 0 {
		close(snapshots)
		return snapshots
	}

	h.running.Store(true)
	go h.worker(ctx, profiles, cfg, snapshots)
	return snapshots
}

func (h *Harness) worker(ctx context.Context, profiles []profile.Profile, cfg Config, snapshots chan<- Snapshot) {
	// LIFO: running flips false before the channel closes, so a consumer
	// draining the channel observes Running() == false afterwards.
	defer close(snapshots)
	defer h.running.Store(false)

	runner, err := h.factory(cfg, profiles)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to initialize tournament runner")
		return
	}

	h.logger.Info().
		Int("profiles", len(profiles)).
		Int("tournaments", cfg.TournamentCount).
		Int("hands_per_tournament", cfg.HandsPerTournament).
		Msg("Starting verification run")

	start := h.clock.Now()
	completed := 0

	for game := 1; game <= cfg.TournamentCount; game++ {
		select {
		case <-ctx.Done():
			h.logger.Info().Int("game", game-1).Msg("Verification cancelled")
			return
		default:
		}

		if err := runner.RunSingleGame(ctx); err != nil {
			h.logger.Error().Err(err).Int("game", game).Msg("Tournament failed, aborting run")
			return
		}
		completed = game

		results := h.evaluate(runner, profiles)
		snapshot := Snapshot{
			CurrentGame: game,
			Progress:    float64(game) / float64(cfg.TournamentCount),
			Elapsed:     h.clock.Since(start),
			Results:     results,
		}

		select {
		case snapshots <- snapshot:
		case <-ctx.Done():
			h.logger.Info().Int("game", game).Msg("Verification cancelled")
			return
		}
	}

	select {
	case <-ctx.Done():
		h.logger.Info().Int("game", completed).Msg("Verification cancelled before final evaluation")
		return
	default:
	}

	final := h.evaluate(runner, profiles)
	select {
	case snapshots <- Snapshot{
		CurrentGame: completed,
		Progress:    1,
		Elapsed:     h.clock.Since(start),
		Results:     final,
		Final:       true,
	}:
	case <-ctx.Done():
		return
	}

	if h.sink != nil {
		if err := h.sink.Put(ResultsKey, final); err != nil {
			h.logger.Error().Err(err).Msg("Failed to persist verification results")
		}
	}

	h.logger.Info().
		Int("games", completed).
		Dur("elapsed", h.clock.Since(start)).
		Msg("Verification run complete")
}

// evaluate recomputes standings and classifies every profile, ordered
// ascending by actual average rank.
func (h *Harness) evaluate(runner Runner, profiles []profile.Profile) []Result {
	standings := runner.RunFullEvaluation()
	byName := make(map[string]float64, len(standings))
	for _, s := range standings {
		byName[s.ProfileName] = s.AverageRank
	}

	total := len(profiles)
	results := make([]Result, 0, total)
	for _, p := range profiles {
		actual := byName[p.Name]
		expected := ExpectedRank(p, total)
		deviation, status := Classify(expected, actual)
		results = append(results, Result{
			ProfileName:  p.Name,
			ExpectedRank: expected,
			ActualRank:   actual,
			Deviation:    deviation,
			Status:       status,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].ActualRank < results[j].ActualRank
	})
	return results
}
