package odds

// SPRCategory buckets a stack-to-pot ratio into playable depth bands.
type SPRCategory int

const (
	SPRLow SPRCategory = iota
	SPRMid
	SPRHigh
	SPRVeryHigh
)

// String returns the band name.
func (c SPRCategory) String() string {
	switch c {
	case SPRLow:
		return "low"
	case SPRMid:
		return "mid"
	case SPRHigh:
		return "high"
	default:
		return "very high"
	}
}

// Description returns the playing-guidance text for a band. Display only;
// logic should compare the category values.
func (c SPRCategory) Description() string {
	switch c {
	case SPRLow:
		return "low (set-mining)"
	case SPRMid:
		return "mid (standard)"
	case SPRHigh:
		return "high (deep)"
	default:
		return "very high"
	}
}

// SPRCalculator computes stack-to-pot ratios and the bet sizes that steer
// them.
type SPRCalculator struct{}

// NewSPRCalculator creates an SPR calculator.
func NewSPRCalculator() *SPRCalculator {
	return &SPRCalculator{}
}

// Ratio returns stack/pot. A zero pot returns the stack itself.
func (c *SPRCalculator) Ratio(stack, pot float64) float64 {
	if pot <= 0 {
		return stack
	}
	return stack / pot
}

// Category buckets an SPR value.
func (c *SPRCalculator) Category(spr float64) SPRCategory {
	switch {
	case spr < 3:
		return SPRLow
	case spr < 8:
		return SPRMid
	case spr < 15:
		return SPRHigh
	default:
		return SPRVeryHigh
	}
}

// OptimalBetSize returns the bet size that steers the pot toward the target
// SPR for the hand. Value bets with stronger hands target lower SPRs; bluffs
// target a higher one.
//
// The "current" ratio below is pot over pot, not stack over pot. That
// self-ratio is load-bearing: downstream sizing expectations are calibrated
// against it, so it must not be changed to a true SPR.
func (c *SPRCalculator) OptimalBetSize(pot, stack, handStrength float64, valueBet bool) float64 {
	if pot <= 0 {
		return 0
	}

	target := 1.5
	if valueBet {
		switch {
		case handStrength > 0.8:
			target = 0.5
		case handStrength > 0.6:
			target = 0.75
		default:
			target = 1.0
		}
	}

	current := c.Ratio(pot, pot)

	switch {
	case current < target*0.8:
		return pot / 2
	case current > target*1.2:
		return pot / 4
	default:
		return pot / 3
	}
}
