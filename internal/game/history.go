package game

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lox/monkeystud/poker"
)

// Code identifies the kind of a history event on the wire.
type Code byte

const (
	CodeSeat    Code = 'S'
	CodeAnte    Code = 'A'
	CodeDeal    Code = 'D'
	CodeUpCard  Code = 'U'
	CodeCall    Code = 'C'
	CodeFold    Code = 'F'
	CodeBet     Code = 'B'
	CodeReveal  Code = 'R'
	CodeWin     Code = 'W'
	CodeOddChip Code = 'Z'
)

// hiddenCard is the payload of a D event; the dealt card is never written.
const hiddenCard = "xx"

func (c Code) String() string {
	return string(c)
}

// Event is one entry of a hand history.
type Event interface {
	Player() string
	Code() Code
	// Payload is the wire form of the event's value, empty for a fold.
	Payload() string
}

// SeatEvent records a player's seat index for the hand.
type SeatEvent struct {
	PlayerID string
	Seat     int
}

// AnteEvent records a forced ante.
type AnteEvent struct {
	PlayerID string
	Amount   int
}

// DealEvent records the face-down card. The card itself is not logged.
type DealEvent struct {
	PlayerID string
}

// UpCardEvent records a card dealt face up.
type UpCardEvent struct {
	PlayerID string
	Card     poker.Card
}

// CallEvent records chips paid to match the current bet. Zero is a check.
type CallEvent struct {
	PlayerID string
	Amount   int
}

// FoldEvent records a player leaving the hand.
type FoldEvent struct {
	PlayerID string
}

// BetEvent records a raise and its size.
type BetEvent struct {
	PlayerID string
	Amount   int
}

// RevealEvent shows a player's full hand at showdown.
type RevealEvent struct {
	PlayerID string
	Cards    []poker.Card
}

// WinEvent records an even share of the pot.
type WinEvent struct {
	PlayerID string
	Amount   int
}

// OddChipEvent records the indivisible remainder of a split pot.
type OddChipEvent struct {
	PlayerID string
	Amount   int
}

func (e SeatEvent) Player() string    { return e.PlayerID }
func (e AnteEvent) Player() string    { return e.PlayerID }
func (e DealEvent) Player() string    { return e.PlayerID }
func (e UpCardEvent) Player() string  { return e.PlayerID }
func (e CallEvent) Player() string    { return e.PlayerID }
func (e FoldEvent) Player() string    { return e.PlayerID }
func (e BetEvent) Player() string     { return e.PlayerID }
func (e RevealEvent) Player() string  { return e.PlayerID }
func (e WinEvent) Player() string     { return e.PlayerID }
func (e OddChipEvent) Player() string { return e.PlayerID }

func (SeatEvent) Code() Code    { return CodeSeat }
func (AnteEvent) Code() Code    { return CodeAnte }
func (DealEvent) Code() Code    { return CodeDeal }
func (UpCardEvent) Code() Code  { return CodeUpCard }
func (CallEvent) Code() Code    { return CodeCall }
func (FoldEvent) Code() Code    { return CodeFold }
func (BetEvent) Code() Code     { return CodeBet }
func (RevealEvent) Code() Code  { return CodeReveal }
func (WinEvent) Code() Code     { return CodeWin }
func (OddChipEvent) Code() Code { return CodeOddChip }

func (e SeatEvent) Payload() string    { return strconv.Itoa(e.Seat) }
func (e AnteEvent) Payload() string    { return strconv.Itoa(e.Amount) }
func (DealEvent) Payload() string      { return hiddenCard }
func (e UpCardEvent) Payload() string  { return e.Card.String() }
func (e CallEvent) Payload() string    { return strconv.Itoa(e.Amount) }
func (FoldEvent) Payload() string      { return "" }
func (e BetEvent) Payload() string     { return strconv.Itoa(e.Amount) }
func (e RevealEvent) Payload() string  { return poker.FormatHand(e.Cards) }
func (e WinEvent) Payload() string     { return strconv.Itoa(e.Amount) }
func (e OddChipEvent) Payload() string { return strconv.Itoa(e.Amount) }

// FormatEvent renders a single player:code:payload token.
func FormatEvent(e Event) string {
	return e.Player() + ":" + e.Code().String() + ":" + e.Payload()
}

// Serialize renders events as the space-separated history handed to agents.
func Serialize(events []Event) string {
	var b strings.Builder
	for i, e := range events {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(FormatEvent(e))
	}
	return b.String()
}

// ParseHistory converts a serialized history back into typed events.
func ParseHistory(s string) ([]Event, error) {
	tokens := strings.Fields(s)
	events := make([]Event, 0, len(tokens))
	for i, tok := range tokens {
		e, err := ParseEvent(tok)
		if err != nil {
			return nil, fmt.Errorf("token %d: %w", i, err)
		}
		events = append(events, e)
	}
	return events, nil
}

// ParseEvent parses one player:code:payload token.
func ParseEvent(tok string) (Event, error) {
	parts := strings.SplitN(tok, ":", 3)
	if len(parts) != 3 {
		return nil, fmt.Errorf("malformed event %q", tok)
	}
	id, code, payload := parts[0], parts[1], parts[2]
	if id == "" {
		return nil, fmt.Errorf("event %q has no player", tok)
	}
	if len(code) != 1 {
		return nil, fmt.Errorf("event %q has invalid code %q", tok, code)
	}

	amount := func() (int, error) {
		n, err := strconv.Atoi(payload)
		if err != nil {
			return 0, fmt.Errorf("event %q: invalid amount: %w", tok, err)
		}
		return n, nil
	}

	switch Code(code[0]) {
	case CodeSeat:
		n, err := amount()
		return SeatEvent{PlayerID: id, Seat: n}, err
	case CodeAnte:
		n, err := amount()
		return AnteEvent{PlayerID: id, Amount: n}, err
	case CodeDeal:
		return DealEvent{PlayerID: id}, nil
	case CodeUpCard:
		c, err := poker.ParseCard(payload)
		if err != nil {
			return nil, fmt.Errorf("event %q: %w", tok, err)
		}
		return UpCardEvent{PlayerID: id, Card: c}, nil
	case CodeCall:
		n, err := amount()
		return CallEvent{PlayerID: id, Amount: n}, err
	case CodeFold:
		return FoldEvent{PlayerID: id}, nil
	case CodeBet:
		n, err := amount()
		return BetEvent{PlayerID: id, Amount: n}, err
	case CodeReveal:
		cards, err := poker.ParseHand(payload)
		if err != nil {
			return nil, fmt.Errorf("event %q: %w", tok, err)
		}
		return RevealEvent{PlayerID: id, Cards: cards}, nil
	case CodeWin:
		n, err := amount()
		return WinEvent{PlayerID: id, Amount: n}, err
	case CodeOddChip:
		n, err := amount()
		return OddChipEvent{PlayerID: id, Amount: n}, err
	default:
		return nil, fmt.Errorf("event %q has unknown code %q", tok, code)
	}
}

// History is the append-only event log of one hand.
type History struct {
	events []Event
}

// Append adds an event to the log.
func (h *History) Append(e Event) {
	h.events = append(h.events, e)
}

// Events returns a copy of the logged events.
func (h *History) Events() []Event {
	return append([]Event(nil), h.events...)
}

// String serializes the log in wire format.
func (h *History) String() string {
	return Serialize(h.events)
}
