package bot

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/monkeystud/internal/game"
	"github.com/lox/monkeystud/internal/randutil"
	"github.com/lox/monkeystud/poker"
)

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.WarnLevel})
}

func TestRegistryListsBuiltins(t *testing.T) {
	var names []string
	for _, info := range List() {
		names = append(names, info.Name)
		assert.NotEmpty(t, info.Description, info.Name)
	}
	assert.Subset(t, names, []string{"call", "equity", "fold", "raise", "random"})
	assert.IsIncreasing(t, names)
}

func TestNewUnknownAgent(t *testing.T) {
	_, err := New("p_nonexistent", Options{})
	require.ErrorIs(t, err, ErrUnknownAgent)
	assert.ErrorContains(t, err, "p_nonexistent")
}

func TestRegisterTwicePanics(t *testing.T) {
	assert.Panics(t, func() {
		Register("call", "again", func(Options) game.Agent { return nil })
	})
}

func TestSimpleBots(t *testing.T) {
	tests := []struct {
		name string
		want game.Decision
	}{
		{"fold", game.Fold},
		{"call", game.Call},
		{"raise", game.Bet},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			agent, err := New(tt.name, Options{Logger: quietLogger()})
			require.NoError(t, err)
			d, err := agent.Play("a", poker.MustParseHand("2c,3d"), "")
			require.NoError(t, err)
			assert.Equal(t, tt.want, d)
		})
	}
}

func TestSimpleBotsLogDecisions(t *testing.T) {
	for _, name := range []string{"fold", "call", "raise", "random"} {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
			agent, err := New(name, Options{RNG: randutil.New(1), Logger: logger})
			require.NoError(t, err)

			d, err := agent.Play("a", nil, "")
			require.NoError(t, err)
			assert.Contains(t, buf.String(), name+"-bot")
			assert.Contains(t, buf.String(), "player=a")
			assert.Contains(t, buf.String(), "decision="+d.String())
		})
	}
}

func TestRandBotUsesEveryDecision(t *testing.T) {
	agent := NewRandBot(randutil.New(1), quietLogger())
	seen := map[game.Decision]int{}
	for range 300 {
		d, err := agent.Play("a", nil, "")
		require.NoError(t, err)
		seen[d]++
	}
	assert.Len(t, seen, 3)
	for d, n := range seen {
		assert.Greater(t, n, 50, d.String())
	}
}

func TestEquityBotBetsTheNuts(t *testing.T) {
	agent := NewEquityBot(randutil.New(1), quietLogger(), 500)
	history := "a:S:0 b:S:1 a:A:1 b:A:1 a:D:xx b:D:xx " +
		"a:U:8s b:U:2c a:C:0 b:C:0 a:U:7s b:U:3d"

	d, err := agent.Play("a", poker.MustParseHand("9s,8s,7s"), history)
	require.NoError(t, err)
	assert.Equal(t, game.Bet, d)
}

func TestEquityBotFoldsDeadHandToABet(t *testing.T) {
	agent := NewEquityBot(randutil.New(1), quietLogger(), 500)
	history := "a:S:0 b:S:1 a:A:1 b:A:1 a:D:xx b:D:xx " +
		"a:U:3d b:U:9s a:C:0 b:C:0 " +
		"a:U:4h b:U:9h a:C:0 b:C:0 " +
		"a:U:6c b:U:9d a:C:0 b:B:2"

	d, err := agent.Play("a", poker.MustParseHand("2c,3d,4h,6c"), history)
	require.NoError(t, err)
	assert.Equal(t, game.Fold, d)
}

func TestEquityBotIgnoresNotification(t *testing.T) {
	agent := NewEquityBot(randutil.New(1), quietLogger(), 100)
	d, err := agent.Play("a", poker.MustParseHand("2c,3d"), "a:S:0 b:S:1 a:A:1 b:A:1 b:F: a:W:2")
	require.NoError(t, err)
	assert.Equal(t, game.Call, d)
}

func TestEquityBotRejectsGarbage(t *testing.T) {
	agent := NewEquityBot(randutil.New(1), quietLogger(), 100)
	_, err := agent.Play("a", nil, "not-a-history")
	assert.Error(t, err)
}

func TestDecide(t *testing.T) {
	tests := []struct {
		name      string
		eq        float64
		opponents int
		toCall    int
		pot       int
		want      game.Decision
	}{
		{"strong heads up bets", 0.9, 1, 0, 2, game.Bet},
		{"middling checks", 0.5, 1, 0, 2, game.Call},
		{"priced in calls", 0.4, 1, 2, 4, game.Call},
		{"behind folds", 0.2, 1, 4, 4, game.Fold},
		{"multiway bar is lower", 0.6, 3, 0, 4, game.Bet},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, decide(tt.eq, tt.opponents, tt.toCall, tt.pot))
		})
	}
}

func TestEveryRegisteredAgentCompletesATournament(t *testing.T) {
	rng := randutil.New(4)
	var players []*game.Player
	for i, info := range List() {
		agent, err := New(info.Name, Options{RNG: randutil.New(int64(i)), Logger: quietLogger(), Samples: 64})
		require.NoError(t, err)
		p, err := game.NewPlayer(info.Name, agent)
		require.NoError(t, err)
		players = append(players, p)
	}

	cfg := game.DefaultConfig()
	cfg.HandLimit = 500
	tour, err := game.NewTournament(rng, players, cfg, game.WithLogger(quietLogger()))
	require.NoError(t, err)

	result, err := tour.Run(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, 3, result.Games)
}
