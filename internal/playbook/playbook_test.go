package playbook

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lox/holdem-advisor/internal/profile"
)

var base = profile.Profile{
	Name:              "Test",
	Tightness:         0.5,
	Aggression:        0.5,
	PositionAwareness: 0.5,
	BluffFreq:         0.5,
	CallDownTendency:  0.5,
}

func TestPlaybookApply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		playbook Playbook
		check    func(t *testing.T, got profile.Profile)
	}{
		{"standard is identity", Standard, func(t *testing.T, got profile.Profile) {
			assert.Equal(t, base, got)
		}},
		{"tight", Tight, func(t *testing.T, got profile.Profile) {
			assert.InDelta(t, 0.35, got.Tightness, 1e-9)
			assert.InDelta(t, 0.25, got.BluffFreq, 1e-9)
			assert.InDelta(t, 0.30, got.CallDownTendency, 1e-9)
		}},
		{"loose", Loose, func(t *testing.T, got profile.Profile) {
			assert.InDelta(t, 0.65, got.Tightness, 1e-9)
		}},
		{"aggressive", Aggressive, func(t *testing.T, got profile.Profile) {
			assert.InDelta(t, 0.65, got.Aggression, 1e-9)
		}},
		{"passive", Passive, func(t *testing.T, got profile.Profile) {
			assert.InDelta(t, 0.35, got.Aggression, 1e-9)
		}},
		{"bluffy", Bluffy, func(t *testing.T, got profile.Profile) {
			assert.InDelta(t, 0.75, got.BluffFreq, 1e-9)
		}},
		{"calling station", CallingStation, func(t *testing.T, got profile.Profile) {
			assert.InDelta(t, 0.70, got.CallDownTendency, 1e-9)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tt.check(t, tt.playbook.apply(base))
		})
	}
}

func TestPlaybookApplyRespectsCaps(t *testing.T) {
	t.Parallel()

	hot := base
	hot.BluffFreq = 0.7
	got := Bluffy.apply(hot)
	assert.InDelta(t, 0.8, got.BluffFreq, 1e-9)

	hot.Aggression = 0.9
	got = Aggressive.apply(hot)
	assert.InDelta(t, 1.0, got.Aggression, 1e-9)
}

func TestEscalationLadder(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Standard, Tight.escalate())
	assert.Equal(t, Aggressive, Standard.escalate())
	assert.Equal(t, Bluffy, Aggressive.escalate())

	// Bluffy is terminal; off-ladder playbooks stay put.
	assert.Equal(t, Bluffy, Bluffy.escalate())
	assert.Equal(t, Loose, Loose.escalate())
	assert.Equal(t, CallingStation, CallingStation.escalate())
}

func TestDeescalation(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Passive, Aggressive.deescalate())
	assert.Equal(t, Tight, Bluffy.deescalate())
	assert.Equal(t, Tight, Loose.deescalate())
	assert.Equal(t, Standard, Standard.deescalate())
	assert.Equal(t, Tight, Tight.deescalate())
}

func TestPlaybookString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "standard", Standard.String())
	assert.Equal(t, "callingStation", CallingStation.String())
	assert.Equal(t, "unknown", Playbook(99).String())
}
