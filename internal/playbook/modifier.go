package playbook

import (
	"github.com/lox/holdem-advisor/internal/holdem"
	"github.com/lox/holdem-advisor/internal/profile"
	"github.com/lox/holdem-advisor/internal/texture"
)

// Modifier reshapes a behavioral profile for a specific spot. Apply is a
// pure function; the input profile is never mutated.
type Modifier struct {
	Playbook Playbook
	Phase    holdem.Street
	Texture  texture.Class
	Position int
}

// Earliest table position; positions at or beyond latePosition act last.
const latePosition = 6

// Apply adjusts a copy of the base profile by applying playbook multipliers,
// then board-texture multipliers, then position multipliers. The order is
// fixed: the steps compose multiplicatively under per-step clamping, so
// reordering them changes the result.
func (m Modifier) Apply(base profile.Profile) profile.Profile {
	out := m.Playbook.apply(base)
	out = m.applyTexture(out)
	return m.applyPosition(out)
}

func (m Modifier) applyTexture(p profile.Profile) profile.Profile {
	switch m.Texture {
	case texture.Dry:
		p.BluffFreq = clamp(p.BluffFreq*1.2, bluffFreqCap)
		p.Aggression = clamp(p.Aggression*1.1, aggressionCap)
	case texture.Wet:
		p.BluffFreq = clamp(p.BluffFreq*0.7, bluffFreqCap)
		p.CallDownTendency = clamp(p.CallDownTendency*1.2, callDownCap)
	case texture.Paired:
		p.BluffFreq = clamp(p.BluffFreq*0.8, bluffFreqCap)
		p.Aggression = clamp(p.Aggression*0.9, aggressionCap)
	case texture.Rainbow:
		// no adjustment
	}
	return p
}

func (m Modifier) applyPosition(p profile.Profile) profile.Profile {
	switch {
	case m.Position == 0:
		p.Tightness = clamp(p.Tightness*1.1, tightnessCap)
		p.Aggression = clamp(p.Aggression*0.9, aggressionCap)
	case m.Position >= latePosition:
		p.Tightness = clamp(p.Tightness*0.9, tightnessCap)
		p.BluffFreq = clamp(p.BluffFreq*1.15, bluffFreqCap)
	}
	return p
}
