package bot

import (
	"math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/monkeystud/internal/game"
	"github.com/lox/monkeystud/poker"
)

var randomChoices = [...]game.Decision{game.Fold, game.Call, game.Bet}

// RandBot picks uniformly among fold, call and bet.
type RandBot struct {
	rng    *rand.Rand
	logger *log.Logger
}

// NewRandBot creates a new RandBot instance
func NewRandBot(rng *rand.Rand, logger *log.Logger) *RandBot {
	return &RandBot{rng: rng, logger: logger.WithPrefix("random-bot")}
}

func (r *RandBot) Play(playerID string, _ []poker.Card, _ string) (game.Decision, error) {
	d := randomChoices[r.rng.IntN(len(randomChoices))]
	r.logger.Debug("decision", "player", playerID, "decision", d)
	return d, nil
}
