package verify

import (
	"math"

	"github.com/lox/holdem-advisor/internal/profile"
)

// Status classifies how a profile's empirical rank tracks its expectation.
type Status string

const (
	StatusAhead   Status = "ahead"
	StatusOnTrack Status = "onTrack"
	StatusBehind  Status = "behind"
)

// deviationThreshold is the rank distance beyond which a profile is
// considered off expectation.
const deviationThreshold = 5

// ExpectedRank predicts the finishing rank of a profile among totalPlayers.
// Aggression and position awareness pull the rank down (better); tightness
// pushes it up. Clamped to [1, totalPlayers].
func ExpectedRank(p profile.Profile, totalPlayers int) int {
	score := p.Aggression*30 + p.PositionAwareness*20 + (1-p.Tightness)*15
	normalized := score / 65

	rank := int(math.Round((1-normalized)*float64(totalPlayers-1))) + 1
	if rank < 1 {
		rank = 1
	}
	if rank > totalPlayers {
		rank = totalPlayers
	}
	return rank
}

// Classify compares an expected rank against an actual average rank.
func Classify(expected int, actual float64) (deviation int, status Status) {
	deviation = expected - int(math.Round(actual))
	switch {
	case deviation <= -deviationThreshold:
		return deviation, StatusAhead
	case deviation >= deviationThreshold:
		return deviation, StatusBehind
	default:
		return deviation, StatusOnTrack
	}
}
