package game

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/charmbracelet/log"
)

// DefaultStartingChips is each entrant's stack at the start of a game.
const DefaultStartingChips = 100

// Config holds the rules shared by games and tournaments.
type Config struct {
	StartingChips int     // default 100
	AnteFraction  float64 // default 0.01
	HandLimit     int     // 0 means play until one player holds every chip
}

// DefaultConfig returns the standard MonkeyStud rules.
func DefaultConfig() Config {
	return Config{
		StartingChips: DefaultStartingChips,
		AnteFraction:  DefaultAnteFraction,
	}
}

// Validate checks the rule values.
func (c Config) Validate() error {
	var errs []error
	if c.StartingChips <= 0 {
		errs = append(errs, fmt.Errorf("starting chips must be positive, got %d", c.StartingChips))
	}
	if c.AnteFraction <= 0 || c.AnteFraction >= 1 {
		errs = append(errs, fmt.Errorf("ante fraction must be in (0, 1), got %g", c.AnteFraction))
	}
	if c.HandLimit < 0 {
		errs = append(errs, fmt.Errorf("hand limit must not be negative, got %d", c.HandLimit))
	}
	return errors.Join(errs...)
}

// Game plays hands among its entrants until one holds every chip.
type Game struct {
	players []*Player // entry order
	rng     *rand.Rand
	cfg     Config
	opts    []HandOption
	logger  *log.Logger

	// OnHand, if set, is called after every completed hand.
	OnHand func(*HandResult)
}

// GameResult is the outcome of one game.
type GameResult struct {
	Winner           *Player
	Hands            int
	HandLimitReached bool
}

// NewGame creates a game. Hand options are passed to every hand.
func NewGame(rng *rand.Rand, players []*Player, cfg Config, opts ...HandOption) (*Game, error) {
	if rng == nil {
		panic("rng is required for game creation")
	}
	if len(players) < 2 {
		return nil, ErrNotEnoughPlayers
	}
	if len(players) > MaxPlayers {
		return nil, ErrTooManyPlayers
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}

	seen := make(map[string]bool, len(players))
	for _, p := range players {
		if seen[p.ID] {
			return nil, fmt.Errorf("duplicate player id %q", p.ID)
		}
		seen[p.ID] = true
	}

	hc := newHandConfig(opts)
	return &Game{
		players: slices.Clone(players),
		rng:     rng,
		cfg:     cfg,
		opts:    append(slices.Clone(opts), WithAnteFraction(cfg.AnteFraction), WithLogger(hc.logger), WithCaller(hc.caller)),
		logger:  hc.logger.WithPrefix("game"),
	}, nil
}

// Play resets every stack and plays hands until a single player is left.
func (g *Game) Play() (*GameResult, error) {
	for _, p := range g.players {
		p.Chips = g.cfg.StartingChips
	}

	hands := 0
	for {
		active := g.activePlayers()
		if len(active) == 1 {
			g.logger.Debug("game over", "winner", active[0].ID, "hands", hands)
			return &GameResult{Winner: active[0], Hands: hands}, nil
		}

		if g.cfg.HandLimit > 0 && hands >= g.cfg.HandLimit {
			leader := g.chipLeader()
			g.logger.Warn("hand limit reached, awarding game to chip leader",
				"limit", g.cfg.HandLimit,
				"winner", leader.ID,
				"chips", leader.Chips)
			return &GameResult{Winner: leader, Hands: hands, HandLimitReached: true}, nil
		}

		hand, err := NewHand(g.rng, active, g.opts...)
		if err != nil {
			return nil, err
		}
		result, err := hand.Play()
		if err != nil {
			return nil, fmt.Errorf("hand %d: %w", hands+1, err)
		}
		hands++

		if g.OnHand != nil {
			g.OnHand(result)
		}
	}
}

func (g *Game) activePlayers() []*Player {
	var active []*Player
	for _, p := range g.players {
		if p.Chips > 0 {
			active = append(active, p)
		}
	}
	return active
}

// chipLeader returns the largest stack, preferring the earliest entrant.
func (g *Game) chipLeader() *Player {
	leader := g.players[0]
	for _, p := range g.players[1:] {
		if p.Chips > leader.Chips {
			leader = p
		}
	}
	return leader
}
