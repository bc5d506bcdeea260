package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardEncoding(t *testing.T) {
	t.Parallel()
	c := NewCard(Nine, Spades)
	assert.Equal(t, Card(8<<3|3), c)
	assert.Equal(t, Nine, c.Rank())
	assert.Equal(t, Spades, c.Suit())
	assert.Equal(t, "9s", c.String())
	assert.Equal(t, "2c", NewCard(Two, Clubs).String())
	assert.True(t, c.Valid())
	assert.False(t, Card(0).Valid())
}

func TestParseCard(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		input   string
		want    Card
		wantErr bool
	}{
		{name: "nine of spades", input: "9s", want: NewCard(Nine, Spades)},
		{name: "deuce of clubs", input: "2c", want: NewCard(Two, Clubs)},
		{name: "five of hearts", input: "5h", want: NewCard(Five, Hearts)},
		{name: "ten is not in the deck", input: "Ts", wantErr: true},
		{name: "placeholder rank", input: "?s", wantErr: true},
		{name: "fifth suit", input: "2w", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "too long", input: "9sx", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseCard(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHandNotation(t *testing.T) {
	t.Parallel()
	hand := []Card{NewCard(Two, Clubs), NewCard(Nine, Spades), NewCard(Five, Diamonds)}
	assert.Equal(t, "2c,9s,5d", FormatHand(hand))

	parsed, err := ParseHand("2c,9s,5d")
	require.NoError(t, err)
	assert.Equal(t, hand, parsed)

	empty, err := ParseHand("")
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = ParseHand("2c,,5d")
	assert.Error(t, err)
}
