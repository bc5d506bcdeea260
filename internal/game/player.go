package game

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/lox/monkeystud/internal/statistics"
	"github.com/lox/monkeystud/poker"
)

// Player is a seat at the table. Chips persist across the hands of a game;
// the remaining fields are reset at the start of every hand.
type Player struct {
	ID    string
	Agent Agent
	Chips int

	Hand        []poker.Card // hidden card first, then up cards
	Folded      bool
	Paid        int  // chips committed this street
	Played      bool // acted since the street started
	Contributed int  // chips committed this hand

	// Timing holds per-decision latency samples in seconds. It is never
	// consulted for outcomes.
	Timing statistics.Statistics
}

// NewPlayer creates a player with an empty stack.
func NewPlayer(id string, agent Agent) (*Player, error) {
	if err := ValidatePlayerID(id); err != nil {
		return nil, err
	}
	if agent == nil {
		return nil, fmt.Errorf("player %s: agent is required", id)
	}
	return &Player{ID: id, Agent: agent}, nil
}

// ValidatePlayerID rejects IDs that would break the history token format.
func ValidatePlayerID(id string) error {
	if id == "" {
		return fmt.Errorf("%w: empty", ErrInvalidPlayerID)
	}
	if strings.ContainsRune(id, ':') {
		return fmt.Errorf("%w: %q contains ':'", ErrInvalidPlayerID, id)
	}
	if strings.IndexFunc(id, unicode.IsSpace) >= 0 {
		return fmt.Errorf("%w: %q contains whitespace", ErrInvalidPlayerID, id)
	}
	return nil
}

func (p *Player) resetHand() {
	p.Hand = nil
	p.Folded = false
	p.Paid = 0
	p.Played = false
	p.Contributed = 0
}

func (p *Player) resetStreet() {
	p.Paid = 0
	p.Played = false
}

// commit moves up to amount chips from the stack into the pot and returns
// what was actually paid. A short stack pays what it has.
func (p *Player) commit(amount int) int {
	amount = max(0, min(amount, p.Chips))
	p.Chips -= amount
	p.Paid += amount
	p.Contributed += amount
	return amount
}

// handCopy returns a copy of the player's cards for handing to an agent.
func (p *Player) handCopy() []poker.Card {
	return append([]poker.Card(nil), p.Hand...)
}
