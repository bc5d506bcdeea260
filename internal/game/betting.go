package game

import (
	"github.com/charmbracelet/log"
)

// table is the shared state of a hand in progress. The hand and its
// betting rounds mutate it from the orchestrating goroutine only.
type table struct {
	seats   []*Player
	pot     int
	active  int
	history History
}

func (t *table) log(e Event) {
	t.history.Append(e)
}

// noSeat marks an unset action cursor or raiser.
const noSeat = -1

// BettingRound resolves one street of betting. The cursor walks the seats
// from seat 0, skipping folded players. The street closes when the cursor
// returns to the last raiser, when the player to act has already acted
// and owes nothing, or when a single player remains.
type BettingRound struct {
	t      *table
	caller *Caller
	logger *log.Logger

	RaisedTo   int // amount every live player must have paid this street
	LastAction int // seat of the most recent raiser, or -1
	Decisions  int // agent decisions taken this street
}

func newBettingRound(t *table, caller *Caller, logger *log.Logger) *BettingRound {
	return &BettingRound{
		t:          t,
		caller:     caller,
		logger:     logger,
		LastAction: noSeat,
	}
}

// Run plays the street to completion. Only an agent failure in Strict mode
// returns an error.
func (b *BettingRound) Run() error {
	b.RaisedTo = 0
	b.LastAction = noSeat
	for _, p := range b.t.seats {
		p.resetStreet()
	}

	cursor := noSeat
	for b.t.active > 1 {
		cursor = b.advance(cursor)
		if cursor == b.LastAction {
			return nil
		}

		p := b.t.seats[cursor]
		if p.Played && p.Paid == b.RaisedTo {
			return nil
		}

		maxBet := b.MaxBet()
		d, err := b.caller.Decide(p, b.t.history.String())
		if err != nil {
			return err
		}
		p.Played = true
		b.Decisions++

		b.apply(cursor, d, maxBet)
	}
	return nil
}

// MaxBet returns the cap for the next action: the pot, or the shortest
// stack among live players that still have chips, whichever is smaller.
func (b *BettingRound) MaxBet() int {
	maxBet := b.t.pot
	for _, p := range b.t.seats {
		if p.Folded || p.Chips == 0 {
			continue
		}
		maxBet = min(maxBet, p.Chips)
	}
	return maxBet
}

// advance moves the cursor to the next seat that has not folded.
func (b *BettingRound) advance(cursor int) int {
	n := len(b.t.seats)
	for range n {
		if cursor == noSeat {
			cursor = 0
		} else {
			cursor = (cursor + 1) % n
		}
		if !b.t.seats[cursor].Folded {
			return cursor
		}
	}
	return cursor
}

func (b *BettingRound) apply(seat int, d Decision, maxBet int) {
	p := b.t.seats[seat]
	toCall := b.RaisedTo - p.Paid

	switch d {
	case Bet:
		raise := min(maxBet-toCall, p.Chips-min(toCall, p.Chips))
		if raise <= 0 {
			b.call(p)
			return
		}
		if toCall > 0 {
			b.call(p)
		}
		paid := p.commit(raise)
		b.t.pot += paid
		b.RaisedTo += paid
		b.LastAction = seat
		b.t.log(BetEvent{PlayerID: p.ID, Amount: paid})
		b.logger.Debug("bet", "player", p.ID, "amount", paid, "raised_to", b.RaisedTo, "pot", b.t.pot)

	case Call:
		b.call(p)

	default:
		// nothing to fold against
		if toCall <= 0 {
			b.call(p)
			return
		}
		p.Folded = true
		b.t.active--
		b.t.log(FoldEvent{PlayerID: p.ID})
		b.logger.Debug("fold", "player", p.ID, "active", b.t.active)
	}
}

func (b *BettingRound) call(p *Player) {
	paid := p.commit(b.RaisedTo - p.Paid)
	b.t.pot += paid
	b.t.log(CallEvent{PlayerID: p.ID, Amount: paid})
	b.logger.Debug("call", "player", p.ID, "amount", paid, "pot", b.t.pot)
}
