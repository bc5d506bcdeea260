package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/monkeystud/internal/bot"
	"github.com/lox/monkeystud/internal/game"
	"github.com/lox/monkeystud/internal/statistics"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("monkeystud"),
		kong.Vars{"version": "test"},
		kong.Bind(&cli.Globals),
		kong.Exit(func(int) { t.Fatalf("unexpected exit for %v", args) }),
	)
	require.NoError(t, err)

	ctx, err := parser.Parse(append([]string{"--log-level=error", "--no-color"}, args...))
	require.NoError(t, err)

	var out bytes.Buffer
	cli.Globals.Out = &out
	err = ctx.Run()
	return out.String(), err
}

func TestBotsCommand(t *testing.T) {
	out, err := run(t, "bots")
	require.NoError(t, err)
	for _, info := range bot.List() {
		assert.Contains(t, out, info.Name)
	}
}

func TestGameCommand(t *testing.T) {
	out, err := run(t, "--seed=1", "game", "raise", "fold", "call")
	require.NoError(t, err)
	assert.Contains(t, out, "wins after")
}

func TestTournamentCommand(t *testing.T) {
	out, err := run(t, "--seed=3", "tournament", "3", "raise", "fold")
	require.NoError(t, err)
	assert.Contains(t, out, "3 games")
	assert.Contains(t, out, "raise")
	assert.Contains(t, out, "Win %")
	assert.Contains(t, out, "p95")
	assert.Contains(t, out, "95% CI")
}

func TestTournamentRejectsCrowdedTable(t *testing.T) {
	args := []string{"tournament", "1"}
	for range game.MaxPlayers + 1 {
		args = append(args, "call")
	}
	_, err := run(t, args...)
	assert.ErrorIs(t, err, game.ErrTooManyPlayers)
}

func TestTournamentFromConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tournament.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`
tournament {
  games = 2
  seed  = 9
}

player "north" {
  agent = "raise"
}

player "south" {
  agent = "call"
}
`), 0o644))

	out, err := run(t, "tournament", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "2 games")
	assert.Contains(t, out, "north")
	assert.Contains(t, out, "south")
}

func TestTournamentNeedsPlayers(t *testing.T) {
	_, err := run(t, "tournament", "2")
	assert.ErrorContains(t, err, "no agents")
}

func TestTimeCommand(t *testing.T) {
	out, err := run(t, "--seed=5", "time", "call", "--games=2", "--baseline=fold")
	require.NoError(t, err)
	assert.Contains(t, out, "candidate")
	assert.Contains(t, out, "baseline")
	assert.Contains(t, out, "p95")
}

func TestWinsTableLatencyColumns(t *testing.T) {
	lat := &statistics.Statistics{}
	for i := 1; i <= 100; i++ {
		lat.AddDuration(time.Duration(i) * time.Millisecond)
	}
	result := &game.TournamentResult{
		Games:   4,
		Wins:    map[string]int{"0": 3, "1": 1},
		Latency: map[string]*statistics.Statistics{"0": lat},
	}

	out := winsTable(result, map[string]string{"0": "equity", "1": "random"})
	assert.Contains(t, out, "75.0")
	assert.Contains(t, out, "50.5ms")
	assert.Contains(t, out, "95.05ms")
}

func TestUnknownAgent(t *testing.T) {
	_, err := run(t, "game", "call", "p_nobody")
	assert.ErrorIs(t, err, bot.ErrUnknownAgent)
}

func TestPlayerIDs(t *testing.T) {
	assert.Equal(t, "a", letterID(0))
	assert.Equal(t, "z", letterID(25))
	assert.Equal(t, "p26", letterID(26))
	assert.Equal(t, "3", numberID(3))
}
