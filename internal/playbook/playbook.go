// Package playbook implements personality-driven strategy shaping: named
// playbook variants, a pure profile modifier, and an adaptive store that
// nudges a player's playbook after wins and losses.
package playbook

import "github.com/lox/holdem-advisor/internal/profile"

// Playbook is a closed enumeration of personality variants.
type Playbook int

const (
	Standard Playbook = iota
	Loose
	Tight
	Aggressive
	Passive
	Bluffy
	CallingStation
)

// String returns the playbook name.
func (p Playbook) String() string {
	switch p {
	case Standard:
		return "standard"
	case Loose:
		return "loose"
	case Tight:
		return "tight"
	case Aggressive:
		return "aggressive"
	case Passive:
		return "passive"
	case Bluffy:
		return "bluffy"
	case CallingStation:
		return "callingStation"
	default:
		return "unknown"
	}
}

// Per-field caps. Multiplied values are re-clamped into [0, cap] after every
// adjustment step.
const (
	tightnessCap  = 1.0
	aggressionCap = 1.0
	bluffFreqCap  = 0.8
	callDownCap   = 1.0
)

// apply returns a copy of the profile with this playbook's multipliers
// applied.
func (p Playbook) apply(base profile.Profile) profile.Profile {
	out := base
	switch p {
	case Tight:
		out.Tightness = clamp(out.Tightness*0.7, tightnessCap)
		out.BluffFreq = clamp(out.BluffFreq*0.5, bluffFreqCap)
		out.CallDownTendency = clamp(out.CallDownTendency*0.6, callDownCap)
	case Loose:
		out.Tightness = clamp(out.Tightness*1.3, tightnessCap)
	case Aggressive:
		out.Aggression = clamp(out.Aggression*1.3, aggressionCap)
	case Passive:
		out.Aggression = clamp(out.Aggression*0.7, aggressionCap)
	case Bluffy:
		out.BluffFreq = clamp(out.BluffFreq*1.5, bluffFreqCap)
	case CallingStation:
		out.CallDownTendency = clamp(out.CallDownTendency*1.4, callDownCap)
	}
	return out
}

// escalate returns the next playbook after a win streak. The ladder is
// tight -> standard -> aggressive -> bluffy, terminal at bluffy; playbooks
// off the ladder are unchanged.
func (p Playbook) escalate() Playbook {
	switch p {
	case Tight:
		return Standard
	case Standard:
		return Aggressive
	case Aggressive:
		return Bluffy
	default:
		return p
	}
}

// deescalate returns the next playbook after a losing streak.
func (p Playbook) deescalate() Playbook {
	switch p {
	case Aggressive:
		return Passive
	case Bluffy, Loose:
		return Tight
	default:
		return p
	}
}

func clamp(v, cap float64) float64 {
	if v < 0 {
		return 0
	}
	if v > cap {
		return cap
	}
	return v
}
