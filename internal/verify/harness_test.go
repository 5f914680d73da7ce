package verify

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/coder/quartz"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/holdem-advisor/internal/profile"
)

// stubRunner returns fixed standings and can be told to fail on a given game.
type stubRunner struct {
	standings  []Standing
	gamesRun   int
	failOnGame int
}

func (r *stubRunner) RunSingleGame(ctx context.Context) error {
	r.gamesRun++
	if r.failOnGame > 0 && r.gamesRun == r.failOnGame {
		return errors.New("table caught fire")
	}
	return nil
}

func (r *stubRunner) RunFullEvaluation() []Standing {
	return r.standings
}

// recordingSink captures Put calls.
type recordingSink struct {
	mu     sync.Mutex
	keys   []string
	values []any
}

func (s *recordingSink) Put(key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.keys = append(s.keys, key)
	s.values = append(s.values, value)
	return nil
}

func (s *recordingSink) calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.keys)
}

var testProfiles = []profile.Profile{
	{Name: "P1", Tightness: 0.2, Aggression: 0.8, PositionAwareness: 0.7},
	{Name: "P2", Tightness: 0.8, Aggression: 0.2, PositionAwareness: 0.2},
}

func stubFactory(runner *stubRunner) RunnerFactory {
	return func(cfg Config, profiles []profile.Profile) (Runner, error) {
		return runner, nil
	}
}

func TestHarnessFullRun(t *testing.T) {
	t.Parallel()

	runner := &stubRunner{standings: []Standing{
		{ProfileName: "P1", AverageRank: 1.0},
		{ProfileName: "P2", AverageRank: 2.0},
	}}
	sink := &recordingSink{}
	h := NewHarness(stubFactory(runner), sink, zerolog.Nop())

	snapshots := h.Run(context.Background(), testProfiles, Config{TournamentCount: 10})

	var all []Snapshot
	for snap := range snapshots {
		all = append(all, snap)
	}

	// One snapshot per game plus the final one.
	require.Len(t, all, 11)
	assert.Equal(t, 10, runner.gamesRun)

	for i, snap := range all[:10] {
		assert.Equal(t, i+1, snap.CurrentGame)
		assert.InDelta(t, float64(i+1)/10, snap.Progress, 1e-9)
		assert.False(t, snap.Final)
	}

	final := all[10]
	assert.True(t, final.Final)
	assert.InDelta(t, 1.0, final.Progress, 1e-9)
	require.Len(t, final.Results, 2)

	// Ordered ascending by actual rank, both on track.
	assert.Equal(t, "P1", final.Results[0].ProfileName)
	assert.Equal(t, 1, final.Results[0].ExpectedRank)
	assert.InDelta(t, 1.0, final.Results[0].ActualRank, 1e-9)
	assert.Equal(t, 0, final.Results[0].Deviation)
	assert.Equal(t, StatusOnTrack, final.Results[0].Status)

	assert.Equal(t, "P2", final.Results[1].ProfileName)
	assert.Equal(t, 2, final.Results[1].ExpectedRank)
	assert.Equal(t, StatusOnTrack, final.Results[1].Status)

	assert.False(t, h.Running())

	// Final results were persisted under the fixed key.
	require.Equal(t, 1, sink.calls())
	assert.Equal(t, ResultsKey, sink.keys[0])
}

func TestHarnessEmptySelectionNoOp(t *testing.T) {
	t.Parallel()

	runner := &stubRunner{}
	h := NewHarness(stubFactory(runner), &recordingSink{}, zerolog.Nop())

	snapshots := h.Run(context.Background(), nil, Config{TournamentCount: 5})

	_, open := <-snapshots
	assert.False(t, open, "channel should be closed immediately")
	assert.False(t, h.Running())
	assert.Zero(t, runner.gamesRun)
}

func TestHarnessCancellation(t *testing.T) {
	t.Parallel()

	runner := &stubRunner{standings: []Standing{
		{ProfileName: "P1", AverageRank: 1.0},
		{ProfileName: "P2", AverageRank: 2.0},
	}}
	sink := &recordingSink{}
	h := NewHarness(stubFactory(runner), sink, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	snapshots := h.Run(ctx, testProfiles, Config{TournamentCount: 10})

	received := 0
	for snap := range snapshots {
		received++
		assert.False(t, snap.Final)
		if received == 3 {
			cancel()
		}
	}

	// The run stops after the in-flight game; results already published
	// stand, nothing is persisted.
	assert.GreaterOrEqual(t, received, 3)
	assert.Less(t, received, 11)
	assert.False(t, h.Running())
	assert.Zero(t, sink.calls())
}

func TestHarnessRunnerFailureAborts(t *testing.T) {
	t.Parallel()

	runner := &stubRunner{
		standings:  []Standing{{ProfileName: "P1", AverageRank: 1.0}, {ProfileName: "P2", AverageRank: 2.0}},
		failOnGame: 3,
	}
	sink := &recordingSink{}
	h := NewHarness(stubFactory(runner), sink, zerolog.Nop())

	snapshots := h.Run(context.Background(), testProfiles, Config{TournamentCount: 10})

	var all []Snapshot
	for snap := range snapshots {
		all = append(all, snap)
	}

	// Two games completed before the failure; their snapshots stand.
	require.Len(t, all, 2)
	assert.False(t, all[1].Final)
	assert.False(t, h.Running())
	assert.Zero(t, sink.calls())
}

func TestHarnessFactoryError(t *testing.T) {
	t.Parallel()

	factory := func(cfg Config, profiles []profile.Profile) (Runner, error) {
		return nil, errors.New("not enough players")
	}
	h := NewHarness(factory, nil, zerolog.Nop())

	snapshots := h.Run(context.Background(), testProfiles, Config{TournamentCount: 5})

	_, open := <-snapshots
	assert.False(t, open)
	assert.False(t, h.Running())
}

func TestHarnessElapsedUsesClock(t *testing.T) {
	t.Parallel()

	mock := quartz.NewMock(t)
	runner := &stubRunner{standings: []Standing{
		{ProfileName: "P1", AverageRank: 1.0},
		{ProfileName: "P2", AverageRank: 2.0},
	}}
	h := NewHarness(stubFactory(runner), nil, zerolog.Nop(), WithClock(mock))

	snapshots := h.Run(context.Background(), testProfiles, Config{TournamentCount: 1})

	var all []Snapshot
	for snap := range snapshots {
		all = append(all, snap)
	}

	require.Len(t, all, 2)
	assert.Equal(t, time.Duration(0), all[0].Elapsed)
}
