package game

import (
	"context"
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/lox/monkeystud/internal/statistics"
)

// Tournament plays a number of independent games among the same players.
type Tournament struct {
	players []*Player
	rng     *rand.Rand
	cfg     Config
	opts    []HandOption
	logger  *log.Logger

	// OnGame, if set, is called after every game with its 1-based number.
	OnGame func(n int, result *GameResult)
}

// TournamentResult tallies a tournament.
type TournamentResult struct {
	Games        int
	Wins         map[string]int
	HandLimited  int // games decided by the hand limit
	HandsPerGame statistics.Statistics
	// Latency holds each player's decision latency in seconds.
	Latency map[string]*statistics.Statistics
}

// NewTournament creates a tournament over players.
func NewTournament(rng *rand.Rand, players []*Player, cfg Config, opts ...HandOption) (*Tournament, error) {
	if rng == nil {
		panic("rng is required for tournament creation")
	}
	if len(players) < 2 {
		return nil, ErrNotEnoughPlayers
	}
	if len(players) > MaxPlayers {
		return nil, ErrTooManyPlayers
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid tournament config: %w", err)
	}
	hc := newHandConfig(opts)
	return &Tournament{
		players: slices.Clone(players),
		rng:     rng,
		cfg:     cfg,
		opts:    opts,
		logger:  hc.logger.WithPrefix("tournament"),
	}, nil
}

// Run plays games one after another. Cancellation is honoured between
// games; a game in progress always completes.
func (t *Tournament) Run(ctx context.Context, games int) (*TournamentResult, error) {
	if games <= 0 {
		return nil, fmt.Errorf("games must be positive, got %d", games)
	}

	result := &TournamentResult{
		Wins:    make(map[string]int, len(t.players)),
		Latency: make(map[string]*statistics.Statistics, len(t.players)),
	}
	for _, p := range t.players {
		result.Wins[p.ID] = 0
	}

	g, err := NewGame(t.rng, t.players, t.cfg, t.opts...)
	if err != nil {
		return nil, err
	}

	for n := 1; n <= games; n++ {
		if err := ctx.Err(); err != nil {
			return result, fmt.Errorf("tournament stopped after %d games: %w", result.Games, err)
		}

		gr, err := g.Play()
		if err != nil {
			return nil, fmt.Errorf("game %d: %w", n, err)
		}

		result.Games++
		result.Wins[gr.Winner.ID]++
		result.HandsPerGame.Add(float64(gr.Hands))
		if gr.HandLimitReached {
			result.HandLimited++
		}

		t.logger.Debug("game complete", "game", n, "winner", gr.Winner.ID, "hands", gr.Hands)
		if t.OnGame != nil {
			t.OnGame(n, gr)
		}
	}

	for _, p := range t.players {
		lat := &statistics.Statistics{}
		lat.Merge(&p.Timing)
		result.Latency[p.ID] = lat
	}

	t.logger.Info("tournament complete",
		"games", result.Games,
		"mean_hands", fmt.Sprintf("%.1f", result.HandsPerGame.Mean()))
	return result, nil
}
