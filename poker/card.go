package poker

import (
	"fmt"
	"strings"
)

// Card packs a rank and suit into a single byte as (rank << 3) | suit.
type Card uint8

const (
	// Ranks is the number of ranks in the deck (deuce through nine).
	Ranks = 8
	// Suits is the number of suits in the deck.
	Suits = 4
	// DeckSize is the number of distinct cards.
	DeckSize = Ranks * Suits
)

// Rank constants (1-8 for 2-9)
const (
	Two   uint8 = 1
	Three uint8 = 2
	Four  uint8 = 3
	Five  uint8 = 4
	Six   uint8 = 5
	Seven uint8 = 6
	Eight uint8 = 7
	Nine  uint8 = 8
)

// Suit constants
const (
	Clubs    uint8 = 0
	Diamonds uint8 = 1
	Hearts   uint8 = 2
	Spades   uint8 = 3
)

const (
	rankGlyphs = "?23456789TJQKABC"
	suitGlyphs = "cdhswxyz"
	suitMask   = 7
)

// NewCard creates a card from rank and suit.
func NewCard(rank, suit uint8) Card {
	return Card(rank<<3 | suit&suitMask)
}

// Rank returns the rank of the card (1-8 for a valid card).
func (c Card) Rank() uint8 {
	return uint8(c) >> 3
}

// Suit returns the suit of the card (0-3 for a valid card).
func (c Card) Suit() uint8 {
	return uint8(c) & suitMask
}

// Valid reports whether the card belongs to the 32-card deck.
func (c Card) Valid() bool {
	r := c.Rank()
	return r >= Two && r <= Nine && c.Suit() < Suits
}

// String returns the two-glyph form, e.g. "9s" or "2c".
func (c Card) String() string {
	r := int(c.Rank())
	if r >= len(rankGlyphs) {
		return "??"
	}
	return string(rankGlyphs[r]) + string(suitGlyphs[c.Suit()])
}

// ParseCard parses a string like "7h" into a Card.
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return 0, fmt.Errorf("invalid card string: %q", s)
	}

	rank := strings.IndexByte(rankGlyphs, s[0])
	if rank < int(Two) || rank > int(Nine) {
		return 0, fmt.Errorf("invalid rank: %c", s[0])
	}

	suit := strings.IndexByte(suitGlyphs, s[1])
	if suit < 0 || suit >= Suits {
		return 0, fmt.Errorf("invalid suit: %c", s[1])
	}

	return NewCard(uint8(rank), uint8(suit)), nil
}

// MustParseCard parses a card and panics on error (for tests)
func MustParseCard(s string) Card {
	c, err := ParseCard(s)
	if err != nil {
		panic(err)
	}
	return c
}

// FormatHand joins cards with commas, the notation used in reveal events.
func FormatHand(cards []Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, ",")
}

// ParseHand parses a comma-separated list of cards such as "2c,9s,5h".
func ParseHand(s string) ([]Card, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	cards := make([]Card, 0, len(parts))
	for _, p := range parts {
		c, err := ParseCard(p)
		if err != nil {
			return nil, fmt.Errorf("parse hand %q: %w", s, err)
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// MustParseHand parses cards and panics on error (for tests)
func MustParseHand(s string) []Card {
	cards, err := ParseHand(s)
	if err != nil {
		panic(err)
	}
	return cards
}
