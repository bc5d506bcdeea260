package game

import (
	"fmt"

	"github.com/lox/monkeystud/poker"
)

// SeatView is what the history reveals about one seat.
type SeatView struct {
	ID          string
	Seat        int
	Contributed int // chips put in this hand, ante included
	Paid        int // chips put in this street
	Folded      bool
	UpCards     []poker.Card
	Revealed    []poker.Card // full hand, only after showdown
	Won         int
}

// TableView is a hand reconstructed from its serialized history, the way
// an agent sees it.
type TableView struct {
	Seats    []*SeatView
	Pot      int
	Street   int // 0 before the first up card, then 1 to 3
	RaisedTo int // amount to match this street
	Showdown bool
	Finished bool // a win has been recorded
}

// Replay parses history and rebuilds the table from it.
func Replay(history string) (*TableView, error) {
	events, err := ParseHistory(history)
	if err != nil {
		return nil, err
	}
	return ReplayEvents(events)
}

// ReplayEvents rebuilds the table from typed events.
func ReplayEvents(events []Event) (*TableView, error) {
	v := &TableView{}
	var prev Code
	for i, e := range events {
		if s, ok := e.(SeatEvent); ok {
			if v.Seat(s.PlayerID) != nil {
				return nil, fmt.Errorf("event %d: %s seated twice", i, s.PlayerID)
			}
			v.Seats = append(v.Seats, &SeatView{ID: s.PlayerID, Seat: s.Seat})
			prev = CodeSeat
			continue
		}

		seat := v.Seat(e.Player())
		if seat == nil {
			return nil, fmt.Errorf("event %d: %s is not seated", i, e.Player())
		}

		switch e := e.(type) {
		case AnteEvent:
			seat.Contributed += e.Amount
			v.Pot += e.Amount
		case DealEvent:
		case UpCardEvent:
			if prev != CodeUpCard {
				v.startStreet()
			}
			seat.UpCards = append(seat.UpCards, e.Card)
		case CallEvent:
			v.pay(seat, e.Amount)
		case BetEvent:
			v.pay(seat, e.Amount)
			v.RaisedTo = seat.Paid
		case FoldEvent:
			seat.Folded = true
		case RevealEvent:
			seat.Revealed = append([]poker.Card(nil), e.Cards...)
			v.Showdown = true
		case WinEvent:
			seat.Won += e.Amount
			v.Finished = true
		case OddChipEvent:
			seat.Won += e.Amount
		}
		prev = e.Code()
	}
	return v, nil
}

func (v *TableView) startStreet() {
	v.Street++
	v.RaisedTo = 0
	for _, s := range v.Seats {
		s.Paid = 0
	}
}

func (v *TableView) pay(s *SeatView, amount int) {
	s.Paid += amount
	s.Contributed += amount
	v.Pot += amount
}

// Seat returns the seat of player id, or nil.
func (v *TableView) Seat(id string) *SeatView {
	for _, s := range v.Seats {
		if s.ID == id {
			return s
		}
	}
	return nil
}

// ToCall returns what player id must pay to stay in this street.
func (v *TableView) ToCall(id string) int {
	s := v.Seat(id)
	if s == nil {
		return 0
	}
	return max(0, v.RaisedTo-s.Paid)
}

// ActivePlayers returns the number of seats that have not folded.
func (v *TableView) ActivePlayers() int {
	n := 0
	for _, s := range v.Seats {
		if !s.Folded {
			n++
		}
	}
	return n
}

// Opponents returns the live seats other than id.
func (v *TableView) Opponents(id string) []*SeatView {
	var out []*SeatView
	for _, s := range v.Seats {
		if s.ID != id && !s.Folded {
			out = append(out, s)
		}
	}
	return out
}

// VisibleCards returns every up card on the table, plus revealed hands.
func (v *TableView) VisibleCards() []poker.Card {
	var out []poker.Card
	for _, s := range v.Seats {
		if len(s.Revealed) > 0 {
			out = append(out, s.Revealed...)
			continue
		}
		out = append(out, s.UpCards...)
	}
	return out
}
