package game

import (
	"errors"
	"fmt"
)

var (
	// ErrDecisionTimeout is reported when an agent does not answer within
	// the configured decision timeout.
	ErrDecisionTimeout = errors.New("agent decision timed out")

	// ErrInvalidPlayerID is returned for IDs that cannot be written into
	// the history wire format.
	ErrInvalidPlayerID = errors.New("invalid player id")

	// ErrNotEnoughPlayers is returned when a hand or game has fewer than
	// two participants.
	ErrNotEnoughPlayers = errors.New("at least 2 players required")

	// ErrTooManyPlayers is returned when the deck cannot deal every seat a
	// full hand.
	ErrTooManyPlayers = fmt.Errorf("at most %d players allowed", MaxPlayers)

	// ErrDeckExhausted means the deck ran out mid-hand.
	ErrDeckExhausted = errors.New("deck exhausted")
)

// AgentError wraps a failure raised by an agent during a decision or
// notification call: a returned error, a recovered panic or a timeout.
type AgentError struct {
	PlayerID string
	Err      error
}

func (e *AgentError) Error() string {
	return fmt.Sprintf("agent %s: %v", e.PlayerID, e.Err)
}

func (e *AgentError) Unwrap() error {
	return e.Err
}
