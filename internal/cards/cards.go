// Package cards provides bit-packed playing card representations and a
// lightweight hand categorizer used by the decision engines.
package cards

import (
	"fmt"
	"math/bits"
	"math/rand"
	"strings"
)

// Rank values (0-12). Two is the lowest rank, Ace the highest.
const (
	Two uint8 = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// Suit values (0-3).
const (
	Clubs uint8 = iota
	Diamonds
	Hearts
	Spades
)

// Card is a single playing card encoded as a one-hot uint64 with bit
// position suit*13+rank.
type Card uint64

// Hand is a bitfield holding up to 7 cards.
type Hand uint64

// NewCard creates a card from a rank (0-12) and suit (0-3).
func NewCard(rank, suit uint8) Card {
	return Card(1) << (uint(suit)*13 + uint(rank))
}

// NewHand combines two cards into a hand.
func NewHand(c1, c2 Card) Hand {
	return Hand(c1) | Hand(c2)
}

// Rank returns the card's rank (0-12).
func (c Card) Rank() uint8 {
	return uint8(bitPosition(uint64(c)) % 13)
}

// Suit returns the card's suit (0-3).
func (c Card) Suit() uint8 {
	return uint8(bitPosition(uint64(c)) / 13)
}

var rankChars = "23456789TJQKA"
var suitChars = "cdhs"

// String returns the card in two-character form, e.g. "Ah".
func (c Card) String() string {
	if c == 0 {
		return "??"
	}
	return string(rankChars[c.Rank()]) + string(suitChars[c.Suit()])
}

// AddCard adds a card to the hand.
func (h *Hand) AddCard(c Card) {
	*h |= Hand(c)
}

// HasCard reports whether the hand contains the given card.
func (h Hand) HasCard(c Card) bool {
	return h&Hand(c) != 0
}

// CountCards returns the number of cards in the hand.
func (h Hand) CountCards() int {
	return popcount(uint64(h))
}

// SuitMask returns the 13-bit rank mask for a single suit.
func (h Hand) SuitMask(suit uint8) uint16 {
	return uint16((uint64(h) >> (uint(suit) * 13)) & 0x1FFF)
}

// RankMask returns the union of rank bits across all suits.
func (h Hand) RankMask() uint16 {
	var mask uint16
	for suit := uint8(0); suit < 4; suit++ {
		mask |= h.SuitMask(suit)
	}
	return mask
}

// Cards returns the individual cards in the hand.
func (h Hand) Cards() []Card {
	out := make([]Card, 0, h.CountCards())
	v := uint64(h)
	for v != 0 {
		low := v & -v
		out = append(out, Card(low))
		v &^= low
	}
	return out
}

// ParseCard parses a two-character card such as "Ah" or "Td".
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return 0, fmt.Errorf("invalid card %q: want rank+suit", s)
	}

	rank := strings.IndexByte(rankChars, s[0])
	if rank < 0 {
		return 0, fmt.Errorf("invalid rank %q in card %q", s[0], s)
	}

	suit := strings.IndexByte(suitChars, s[1])
	if suit < 0 {
		return 0, fmt.Errorf("invalid suit %q in card %q", s[1], s)
	}

	return NewCard(uint8(rank), uint8(suit)), nil
}

// ParseCards parses a concatenated card string such as "Ah7d2c".
func ParseCards(s string) ([]Card, error) {
	s = strings.ReplaceAll(s, " ", "")
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("invalid card string %q: odd length", s)
	}

	out := make([]Card, 0, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		card, err := ParseCard(s[i : i+2])
		if err != nil {
			return nil, err
		}
		out = append(out, card)
	}
	return out, nil
}

// MustParseCards parses a card string and panics on error. For tests and
// static tables only.
func MustParseCards(s string) []Card {
	out, err := ParseCards(s)
	if err != nil {
		panic(err)
	}
	return out
}

// Deck is a standard 52-card deck with an explicit RNG for deterministic
// shuffling.
type Deck struct {
	cards [52]Card
	next  int
	rng   *rand.Rand
}

// NewDeck creates a new shuffled deck using the provided RNG.
func NewDeck(rng *rand.Rand) *Deck {
	d := &Deck{rng: rng}
	i := 0
	for suit := uint8(0); suit < 4; suit++ {
		for rank := uint8(0); rank < 13; rank++ {
			d.cards[i] = NewCard(rank, suit)
			i++
		}
	}
	d.Shuffle()
	return d
}

// Shuffle reshuffles the full deck using Fisher-Yates.
func (d *Deck) Shuffle() {
	d.next = 0
	for i := len(d.cards) - 1; i > 0; i-- {
		j := d.rng.Intn(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// DealOne deals a single card, or 0 when the deck is exhausted.
func (d *Deck) DealOne() Card {
	if d.next >= len(d.cards) {
		return 0
	}
	card := d.cards[d.next]
	d.next++
	return card
}

// Deal deals n cards, or nil if fewer than n remain.
func (d *Deck) Deal(n int) []Card {
	if d.next+n > len(d.cards) {
		return nil
	}
	out := d.cards[d.next : d.next+n]
	d.next += n
	return out
}

// Remaining returns the number of undealt cards.
func (d *Deck) Remaining() int {
	return len(d.cards) - d.next
}

func popcount(v uint64) int {
	return bits.OnesCount64(v)
}

func bitPosition(v uint64) int {
	return bits.TrailingZeros64(v)
}
