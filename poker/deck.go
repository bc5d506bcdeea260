package poker

import (
	"math/rand/v2"
)

// Deck represents the 32-card MonkeyStud deck. Cards are dealt from the end.
type Deck struct {
	cards []Card
	rng   *rand.Rand // Random source for deterministic shuffling
}

// NewDeck creates a new shuffled deck with explicit RNG
func NewDeck(rng *rand.Rand) *Deck {
	d := NewOrderedDeck()
	d.rng = rng
	d.Shuffle()
	return d
}

// NewOrderedDeck returns all 32 cards unshuffled, clubs first and deuces
// first within a suit.
func NewOrderedDeck() *Deck {
	d := &Deck{cards: make([]Card, 0, DeckSize)}
	for suit := range uint8(Suits) {
		for rank := Two; rank <= Nine; rank++ {
			d.cards = append(d.cards, NewCard(rank, suit))
		}
	}
	return d
}

// NewDeckFromCards creates a deck in the given order. The last card is dealt
// first, so a test can stack the deck explicitly.
func NewDeckFromCards(cards []Card) *Deck {
	return &Deck{cards: append([]Card(nil), cards...)}
}

// Shuffle shuffles the remaining cards using Fisher-Yates
func (d *Deck) Shuffle() {
	for i := len(d.cards) - 1; i > 0; i-- {
		var j int
		if d.rng != nil {
			j = d.rng.IntN(i + 1)
		} else {
			j = rand.IntN(i + 1)
		}
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Pop deals the card at the end of the deck. The boolean is false when the
// deck is exhausted.
func (d *Deck) Pop() (Card, bool) {
	if len(d.cards) == 0 {
		return 0, false
	}
	c := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return c, true
}

// Remove takes the given cards out of the deck if present.
func (d *Deck) Remove(cards ...Card) {
	out := d.cards[:0]
	for _, c := range d.cards {
		dead := false
		for _, r := range cards {
			if c == r {
				dead = true
				break
			}
		}
		if !dead {
			out = append(out, c)
		}
	}
	d.cards = out
}

// Cards returns a copy of the undealt cards.
func (d *Deck) Cards() []Card {
	return append([]Card(nil), d.cards...)
}

// CardsRemaining returns the number of cards left in the deck
func (d *Deck) CardsRemaining() int {
	return len(d.cards)
}
