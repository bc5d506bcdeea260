package game

import "github.com/lox/monkeystud/poker"

// Decision is the single-character action an agent returns.
type Decision byte

const (
	Fold Decision = 'F'
	Call Decision = 'C'
	Bet  Decision = 'B'
)

// Valid reports whether d is one of F, C or B.
func (d Decision) Valid() bool {
	return d == Fold || d == Call || d == Bet
}

func (d Decision) String() string {
	switch d {
	case Fold:
		return "fold"
	case Call:
		return "call"
	case Bet:
		return "bet"
	default:
		return "invalid(" + string(rune(d)) + ")"
	}
}

// Agent decides actions for one player. Agents receive a copy of their
// hand (hidden card first) and the serialized history of the hand so far.
// The same method is called once more after the hand ends with the
// complete history; that result is ignored.
//
// Agents are untrusted: errors, panics and invalid decisions are bounded by
// the Caller and never corrupt the hand.
type Agent interface {
	Play(playerID string, hand []poker.Card, history string) (Decision, error)
}

// AgentFunc adapts an ordinary function to the Agent interface.
type AgentFunc func(playerID string, hand []poker.Card, history string) (Decision, error)

// Play calls f.
func (f AgentFunc) Play(playerID string, hand []poker.Card, history string) (Decision, error) {
	return f(playerID, hand, history)
}
