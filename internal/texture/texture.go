// Package texture classifies community-card boards by how coordinated they
// are. The wetness score feeds bluff inference; the categorical class feeds
// the playbook modifier.
package texture

import (
	"math/bits"

	"github.com/lox/holdem-advisor/internal/cards"
)

// Class is the categorical board texture.
type Class int

const (
	Dry Class = iota
	Wet
	Paired
	Rainbow
)

// String returns the class name.
func (c Class) String() string {
	switch c {
	case Dry:
		return "dry"
	case Wet:
		return "wet"
	case Paired:
		return "paired"
	case Rainbow:
		return "rainbow"
	default:
		return "unknown"
	}
}

// Board describes one board state. Computed once per board, immutable.
type Board struct {
	Wetness float64
	Class   Class
}

// maxRawWetness is the ceiling of the additive raw score below; wetness is
// normalized against it.
const maxRawWetness = 8.0

// Analyze computes the texture of a board. Boards with fewer than three
// cards are dry with zero wetness.
func Analyze(board cards.Hand) Board {
	count := board.CountCards()
	if count < 3 {
		return Board{Wetness: 0, Class: Dry}
	}

	raw := 0

	// Flush coordination
	maxSuit := 0
	suitsPresent := 0
	for suit := uint8(0); suit < 4; suit++ {
		n := bits.OnesCount16(board.SuitMask(suit))
		if n > 0 {
			suitsPresent++
		}
		if n > maxSuit {
			maxSuit = n
		}
	}
	switch {
	case maxSuit >= 4:
		raw += 4
	case maxSuit == 3:
		raw += 3
	case maxSuit == 2:
		raw += 1
	}

	// Straight coordination: longest run of connected ranks
	connected := longestRun(board.RankMask())
	switch {
	case connected >= 4:
		raw += 3
	case connected == 3:
		raw += 2
	case connected == 2:
		raw += 1
	}

	// Pairs and high-card concentration
	pairCount := boardPairs(board)
	if pairCount >= 1 {
		raw++
	}
	if highCards(board.RankMask()) >= 3 {
		raw++
	}

	wetness := float64(raw) / maxRawWetness
	if wetness > 1 {
		wetness = 1
	}

	return Board{Wetness: wetness, Class: classify(wetness, pairCount, suitsPresent, count)}
}

// AnalyzeCards is a convenience wrapper over Analyze for a card slice.
func AnalyzeCards(board []cards.Card) Board {
	var hand cards.Hand
	for _, c := range board {
		hand.AddCard(c)
	}
	return Analyze(hand)
}

// classify derives the categorical class. Pairing dominates, then wetness,
// then suit spread.
func classify(wetness float64, pairCount, suitsPresent, cardCount int) Class {
	switch {
	case pairCount >= 1:
		return Paired
	case wetness >= 0.6:
		return Wet
	case suitsPresent == cardCount:
		return Rainbow
	default:
		return Dry
	}
}

func longestRun(rankMask uint16) int {
	best, run := 0, 0
	for rank := 0; rank < 13; rank++ {
		if rankMask&(1<<rank) != 0 {
			run++
			if run > best {
				best = run
			}
		} else {
			run = 0
		}
	}
	return best
}

func boardPairs(board cards.Hand) int {
	var counts [13]int
	for suit := uint8(0); suit < 4; suit++ {
		mask := board.SuitMask(suit)
		for rank := 0; rank < 13; rank++ {
			if mask&(1<<rank) != 0 {
				counts[rank]++
			}
		}
	}

	pairs := 0
	for _, n := range counts {
		if n >= 2 {
			pairs++
		}
	}
	return pairs
}

func highCards(rankMask uint16) int {
	return bits.OnesCount16(rankMask & 0x1F00) // T through A
}
