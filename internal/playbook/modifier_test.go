package playbook

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lox/holdem-advisor/internal/holdem"
	"github.com/lox/holdem-advisor/internal/profile"
	"github.com/lox/holdem-advisor/internal/texture"
)

func TestModifierDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	input := base
	m := Modifier{Playbook: Tight, Texture: texture.Dry, Position: 0}
	m.Apply(input)

	assert.Equal(t, base, input)
}

func TestModifierTextureAdjustments(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		texture texture.Class
		check   func(t *testing.T, got profile.Profile)
	}{
		{"dry boosts bluffing", texture.Dry, func(t *testing.T, got profile.Profile) {
			assert.InDelta(t, 0.60, got.BluffFreq, 1e-9)
			assert.InDelta(t, 0.55, got.Aggression, 1e-9)
		}},
		{"wet dampens bluffing", texture.Wet, func(t *testing.T, got profile.Profile) {
			assert.InDelta(t, 0.35, got.BluffFreq, 1e-9)
			assert.InDelta(t, 0.60, got.CallDownTendency, 1e-9)
		}},
		{"paired slows down", texture.Paired, func(t *testing.T, got profile.Profile) {
			assert.InDelta(t, 0.40, got.BluffFreq, 1e-9)
			assert.InDelta(t, 0.45, got.Aggression, 1e-9)
		}},
		{"rainbow is neutral", texture.Rainbow, func(t *testing.T, got profile.Profile) {
			assert.Equal(t, base, got)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// Standard playbook and middle position keep the other steps
			// neutral.
			m := Modifier{Playbook: Standard, Texture: tt.texture, Position: 3}
			tt.check(t, m.Apply(base))
		})
	}
}

func TestModifierPositionAdjustments(t *testing.T) {
	t.Parallel()

	early := Modifier{Playbook: Standard, Texture: texture.Rainbow, Position: 0}.Apply(base)
	assert.InDelta(t, 0.55, early.Tightness, 1e-9)
	assert.InDelta(t, 0.45, early.Aggression, 1e-9)

	late := Modifier{Playbook: Standard, Texture: texture.Rainbow, Position: 6}.Apply(base)
	assert.InDelta(t, 0.45, late.Tightness, 1e-9)
	assert.InDelta(t, 0.575, late.BluffFreq, 1e-9)

	middle := Modifier{Playbook: Standard, Texture: texture.Rainbow, Position: 3}.Apply(base)
	assert.Equal(t, base, middle)
}

func TestModifierStepOrder(t *testing.T) {
	t.Parallel()

	// Bluffy then dry texture: 0.5*1.5 clamps to the bluff cap before the
	// texture multiplier, so the result is 0.8*1.2 re-clamped, not
	// 0.5*1.5*1.2 straight through.
	m := Modifier{Playbook: Bluffy, Texture: texture.Dry, Position: 3, Phase: holdem.Flop}
	got := m.Apply(base)
	assert.InDelta(t, 0.8, got.BluffFreq, 1e-9)
}

func TestModifierComposedSpot(t *testing.T) {
	t.Parallel()

	// Tight playbook, wet board, early position.
	m := Modifier{Playbook: Tight, Texture: texture.Wet, Position: 0}
	got := m.Apply(base)

	assert.InDelta(t, 0.35*1.1, got.Tightness, 1e-9)        // playbook then position
	assert.InDelta(t, 0.25*0.7, got.BluffFreq, 1e-9)        // playbook then texture
	assert.InDelta(t, 0.30*1.2, got.CallDownTendency, 1e-9) // playbook then texture
	assert.InDelta(t, 0.5*0.9, got.Aggression, 1e-9)        // position only
}

func TestStoreDefaultsToStandard(t *testing.T) {
	t.Parallel()

	s := NewStore()
	assert.Equal(t, Standard, s.Playbook("p1"))

	s.SetPlaybook("p1", Loose)
	assert.Equal(t, Loose, s.Playbook("p1"))
}

func TestStoreEscalatesEveryFifthWin(t *testing.T) {
	t.Parallel()

	s := NewStore()
	for i := 0; i < 4; i++ {
		assert.Equal(t, Standard, s.RecordOutcome("p1", Win))
	}
	assert.Equal(t, Aggressive, s.RecordOutcome("p1", Win))

	for i := 0; i < 4; i++ {
		s.RecordOutcome("p1", Win)
	}
	assert.Equal(t, Bluffy, s.Playbook("p1"))
}

func TestStoreDeescalatesEveryThirdLoss(t *testing.T) {
	t.Parallel()

	s := NewStore()
	s.SetPlaybook("p1", Aggressive)

	s.RecordOutcome("p1", Loss)
	s.RecordOutcome("p1", Loss)
	assert.Equal(t, Aggressive, s.Playbook("p1"))

	assert.Equal(t, Passive, s.RecordOutcome("p1", Loss))
}

func TestStoreSplitIsNoOp(t *testing.T) {
	t.Parallel()

	s := NewStore()
	s.RecordOutcome("p1", Win)
	s.RecordOutcome("p1", Win)
	s.RecordOutcome("p1", Win)
	s.RecordOutcome("p1", Win)

	// Splits neither count nor transition.
	assert.Equal(t, Standard, s.RecordOutcome("p1", Split))
	assert.Equal(t, Standard, s.Playbook("p1"))

	// The fifth real win still escalates.
	assert.Equal(t, Aggressive, s.RecordOutcome("p1", Win))
}

func TestStoreTracksPlayersIndependently(t *testing.T) {
	t.Parallel()

	s := NewStore()
	for i := 0; i < 5; i++ {
		s.RecordOutcome("p1", Win)
	}
	assert.Equal(t, Aggressive, s.Playbook("p1"))
	assert.Equal(t, Standard, s.Playbook("p2"))
}

func TestStoreReset(t *testing.T) {
	t.Parallel()

	s := NewStore()
	s.SetPlaybook("p1", Bluffy)
	for i := 0; i < 4; i++ {
		s.RecordOutcome("p1", Win)
	}

	s.Reset("p1")
	assert.Equal(t, Standard, s.Playbook("p1"))

	// Counters were cleared too: five more wins are needed to escalate.
	for i := 0; i < 4; i++ {
		assert.Equal(t, Standard, s.RecordOutcome("p1", Win))
	}
	assert.Equal(t, Aggressive, s.RecordOutcome("p1", Win))
}
