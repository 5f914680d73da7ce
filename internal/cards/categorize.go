package cards

import "math/bits"

// HandCategory is the categorical rank of a made hand, ordered from weakest
// to strongest.
type HandCategory uint8

const (
	HighCard HandCategory = iota
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

// String returns a human-readable category name.
func (c HandCategory) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case Pair:
		return "Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	default:
		return "Unknown"
	}
}

// Categorize returns the best category makeable from the cards in the hand.
// Works for any hand of 5-7 cards; with fewer than 5 cards only pair-type
// categories are reachable.
func Categorize(hand Hand) HandCategory {
	var suitMasks [4]uint16
	var rankMask uint16
	for suit := uint8(0); suit < 4; suit++ {
		suitMasks[suit] = hand.SuitMask(suit)
		rankMask |= suitMasks[suit]
	}

	flush := false
	for _, mask := range suitMasks {
		if bits.OnesCount16(mask) >= 5 {
			flush = true
			if straightHigh(mask) > 0 {
				return StraightFlush
			}
		}
	}

	s0, s1, s2, s3 := suitMasks[0], suitMasks[1], suitMasks[2], suitMasks[3]
	quads := s0 & s1 & s2 & s3
	tripCandidates := (s0 & s1 & s2) | (s0 & s1 & s3) | (s0 & s2 & s3) | (s1 & s2 & s3)
	trips := tripCandidates &^ quads
	pairs := ((s0 & s1) | (s0 & s2) | (s0 & s3) | (s1 & s2) | (s1 & s3) | (s2 & s3)) &^ tripCandidates

	switch {
	case quads != 0:
		return FourOfAKind
	case trips != 0 && (pairs != 0 || bits.OnesCount16(trips) >= 2):
		return FullHouse
	case flush:
		return Flush
	case straightHigh(rankMask) > 0:
		return Straight
	case trips != 0:
		return ThreeOfAKind
	case bits.OnesCount16(pairs) >= 2:
		return TwoPair
	case pairs != 0:
		return Pair
	default:
		return HighCard
	}
}

// straightHigh returns the high-card rank of the best straight in the rank
// mask plus one, or 0 if no straight is present. The wheel (A-5) counts with
// a high card of Five.
func straightHigh(rankMask uint16) uint8 {
	run := uint16(0x1F00) // A-K-Q-J-T
	for high := Ace; high >= Six; high-- {
		if rankMask&run == run {
			return high + 1
		}
		run >>= 1
	}

	// Wheel: A-2-3-4-5
	const wheel = (1 << Ace) | (1 << Two) | (1 << Three) | (1 << Four) | (1 << Five)
	if rankMask&wheel == wheel {
		return Five + 1
	}
	return 0
}
