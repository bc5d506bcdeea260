package poker

import (
	"testing"

	"github.com/lox/monkeystud/internal/randutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeckHasEveryCardOnce(t *testing.T) {
	t.Parallel()
	d := NewDeck(randutil.New(42))
	require.Equal(t, DeckSize, d.CardsRemaining())

	seen := make(map[Card]bool)
	for {
		c, ok := d.Pop()
		if !ok {
			break
		}
		assert.True(t, c.Valid(), "invalid card %d", c)
		assert.False(t, seen[c], "duplicate card %s", c)
		seen[c] = true
	}
	assert.Len(t, seen, DeckSize)
	assert.Equal(t, 0, d.CardsRemaining())
}

func TestDeckShuffleIsSeeded(t *testing.T) {
	t.Parallel()
	a := NewDeck(randutil.New(7)).Cards()
	b := NewDeck(randutil.New(7)).Cards()
	c := NewDeck(randutil.New(8)).Cards()
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestDeckFromCardsPopsFromEnd(t *testing.T) {
	t.Parallel()
	d := NewDeckFromCards(MustParseHand("2c,3c,4c"))
	c, ok := d.Pop()
	require.True(t, ok)
	assert.Equal(t, "4c", c.String())

	d.Remove(MustParseCard("2c"))
	assert.Equal(t, MustParseHand("3c"), d.Cards())
}

func TestOrderedDeck(t *testing.T) {
	t.Parallel()
	d := NewOrderedDeck()
	cards := d.Cards()
	require.Len(t, cards, DeckSize)
	assert.Equal(t, "2c", cards[0].String())
	assert.Equal(t, "9s", cards[DeckSize-1].String())

	d.Remove(MustParseHand("9s,5h")...)
	assert.Equal(t, DeckSize-2, d.CardsRemaining())
	assert.NotContains(t, d.Cards(), MustParseCard("5h"))
}
