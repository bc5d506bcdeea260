package bot

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/monkeystud/internal/equity"
	"github.com/lox/monkeystud/internal/game"
	"github.com/lox/monkeystud/poker"
)

// DefaultSamples is the number of Monte Carlo samples per decision.
const DefaultSamples = 2000

// EquityBot rebuilds the table from the history, estimates its showdown
// equity against the live opponents' up cards, and compares that with the
// price of calling.
type EquityBot struct {
	rng     *rand.Rand
	logger  *log.Logger
	samples int
}

// NewEquityBot creates a new EquityBot instance
func NewEquityBot(rng *rand.Rand, logger *log.Logger, samples int) *EquityBot {
	if samples <= 0 {
		samples = DefaultSamples
	}
	return &EquityBot{rng: rng, logger: logger.WithPrefix("equity-bot"), samples: samples}
}

func (b *EquityBot) Play(playerID string, hand []poker.Card, history string) (game.Decision, error) {
	view, err := game.Replay(history)
	if err != nil {
		return game.Fold, fmt.Errorf("replay history: %w", err)
	}
	if view.Finished {
		return game.Call, nil
	}

	opponents := view.Opponents(playerID)
	if len(opponents) == 0 {
		return game.Call, nil
	}

	s := equity.Scenario{Hero: hand}
	for _, o := range opponents {
		s.Opponents = append(s.Opponents, o.UpCards)
	}
	for _, seat := range view.Seats {
		if seat.Folded && seat.ID != playerID {
			s.Dead = append(s.Dead, seat.UpCards...)
		}
	}

	result, err := equity.Estimate(context.Background(), s, b.samples, b.rng)
	if err != nil {
		return game.Fold, fmt.Errorf("estimate equity: %w", err)
	}
	eq := result.Equity()
	toCall := view.ToCall(playerID)

	d := decide(eq, len(opponents), toCall, view.Pot)
	b.logger.Debug("decision",
		"player", playerID,
		"street", view.Street,
		"equity", fmt.Sprintf("%.3f", eq),
		"to_call", toCall,
		"pot", view.Pot,
		"decision", d)
	return d, nil
}

// decide bets well above a fair share of the pot, calls when the price is
// right, and folds otherwise.
func decide(eq float64, opponents, toCall, pot int) game.Decision {
	fair := 1 / float64(opponents+1)
	if eq >= fair+(1-fair)*0.35 {
		return game.Bet
	}
	if toCall == 0 {
		return game.Call
	}
	if eq >= float64(toCall)/float64(pot+toCall) {
		return game.Call
	}
	return game.Fold
}
