package game

import (
	"io"
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"github.com/lox/monkeystud/internal/randutil"
	"github.com/lox/monkeystud/poker"
)

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.WarnLevel})
}

// recordingAgent answers with a fixed decision and records every history
// it was shown.
type recordingAgent struct {
	decision Decision
	seen     []string
}

func (a *recordingAgent) Play(_ string, _ []poker.Card, history string) (Decision, error) {
	a.seen = append(a.seen, history)
	return a.decision, nil
}

// notifications returns the histories shown after the hand finished.
func (a *recordingAgent) notifications() []string {
	var out []string
	for _, h := range a.seen {
		if strings.Contains(h, ":W:") {
			out = append(out, h)
		}
	}
	return out
}

func always(d Decision) *recordingAgent {
	return &recordingAgent{decision: d}
}

// randomAgent picks uniformly among F, C and B.
func randomAgent(seed int64) Agent {
	rng := randutil.New(seed)
	choices := []Decision{Fold, Call, Bet}
	return AgentFunc(func(string, []poker.Card, string) (Decision, error) {
		return choices[rng.IntN(len(choices))], nil
	})
}

// newPlayers seats players a, b, c... with the given agents and stacks of 100.
func newPlayers(t *testing.T, agents ...Agent) []*Player {
	t.Helper()
	players := make([]*Player, len(agents))
	for i, agent := range agents {
		p, err := NewPlayer(string(rune('a'+i)), agent)
		require.NoError(t, err)
		p.Chips = DefaultStartingChips
		players[i] = p
	}
	return players
}

// stackedDeck returns a deck that deals the given cards in order.
func stackedDeck(cards string) *poker.Deck {
	c := poker.MustParseHand(cards)
	slices.Reverse(c)
	return poker.NewDeckFromCards(c)
}

// playHand plays one hand with fixed seating and a quiet logger.
func playHand(t *testing.T, rng *rand.Rand, players []*Player, opts ...HandOption) *HandResult {
	t.Helper()
	opts = append([]HandOption{WithFixedSeating(), WithLogger(quietLogger()), WithHandID("test")}, opts...)
	h, err := NewHand(rng, players, opts...)
	require.NoError(t, err)
	result, err := h.Play()
	require.NoError(t, err)
	return result
}

func totalChips(players []*Player) int {
	total := 0
	for _, p := range players {
		total += p.Chips
	}
	return total
}

func countCode(events []Event, code Code) int {
	n := 0
	for _, e := range events {
		if e.Code() == code {
			n++
		}
	}
	return n
}
