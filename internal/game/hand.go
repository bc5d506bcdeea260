package game

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/lox/monkeystud/internal/handid"
	"github.com/lox/monkeystud/poker"
)

// upStreets is the number of up-card streets, each followed by betting.
const upStreets = 3

// MaxPlayers is the largest table a 32-card deck can deal a hidden card and
// every up card to.
const MaxPlayers = poker.DeckSize / (1 + upStreets)

// Hand drives one hand from ante to pot award.
type Hand struct {
	ID string

	rng    *rand.Rand
	cfg    *handConfig
	deck   *poker.Deck
	logger *log.Logger
	t      table
	played bool
}

// HandResult summarises a completed hand.
type HandResult struct {
	ID       string
	Seats    []string // player IDs in seat order
	Events   []Event
	History  string
	Ante     int
	Pot      int
	Winners  []string
	Awards   map[string]int // chips paid to each winner, odd chip included
	Showdown bool
	Streets  int // up-card streets dealt
}

// NewHand creates a hand among players. The RNG is required to make
// randomness explicit and testing deterministic. Players keep their Chips;
// every other per-hand field is reset when the hand is played.
func NewHand(rng *rand.Rand, players []*Player, opts ...HandOption) (*Hand, error) {
	if rng == nil {
		panic("rng is required for hand creation")
	}
	if len(players) < 2 {
		return nil, ErrNotEnoughPlayers
	}
	if len(players) > MaxPlayers {
		return nil, ErrTooManyPlayers
	}

	cfg := newHandConfig(opts)

	seats := slices.Clone(players)
	if !cfg.fixedSeating {
		rng.Shuffle(len(seats), func(i, j int) {
			seats[i], seats[j] = seats[j], seats[i]
		})
	}

	deck := cfg.deck
	if deck == nil {
		deck = poker.NewDeck(rng)
	}

	id := cfg.handID
	if id == "" {
		id = handid.NewGenerator(rng).Generate()
	}

	return &Hand{
		ID:     id,
		rng:    rng,
		cfg:    cfg,
		deck:   deck,
		logger: cfg.logger.With("hand", id),
		t:      table{seats: seats, active: len(seats)},
	}, nil
}

// Seats returns the players in seat order.
func (h *Hand) Seats() []*Player {
	return slices.Clone(h.t.seats)
}

// Pot returns the chips committed so far.
func (h *Hand) Pot() int {
	return h.t.pot
}

// Play runs the hand. In Strict mode an agent failure aborts the hand and
// is returned; chips already committed stay in the abandoned pot.
func (h *Hand) Play() (*HandResult, error) {
	if h.played {
		return nil, fmt.Errorf("hand %s already played", h.ID)
	}
	h.played = true

	h.seat()
	ante := h.collectAntes()

	if err := h.deal(func(p *Player, _ poker.Card) Event {
		return DealEvent{PlayerID: p.ID}
	}); err != nil {
		return nil, err
	}

	streets := 0
	for range upStreets {
		if h.t.active <= 1 {
			break
		}
		if err := h.deal(func(p *Player, c poker.Card) Event {
			return UpCardEvent{PlayerID: p.ID, Card: c}
		}); err != nil {
			return nil, err
		}
		streets++

		round := newBettingRound(&h.t, h.cfg.caller, h.logger)
		if err := round.Run(); err != nil {
			return nil, err
		}
		h.logger.Debug("street complete", "street", streets, "decisions", round.Decisions, "pot", h.t.pot)
	}

	result := h.settle()
	result.Ante = ante
	result.Streets = streets

	final := h.t.history.String()
	for _, p := range h.t.seats {
		if err := h.cfg.caller.Notify(p, final); err != nil {
			return nil, err
		}
	}

	result.Events = h.t.history.Events()
	result.History = final
	return result, nil
}

func (h *Hand) seat() {
	for i, p := range h.t.seats {
		p.resetHand()
		h.t.log(SeatEvent{PlayerID: p.ID, Seat: i})
	}
}

// collectAntes charges every player the same ante: the floored share of
// total chips, at least 1, never more than the shortest stack.
func (h *Hand) collectAntes() int {
	total := 0
	shortest := h.t.seats[0].Chips
	for _, p := range h.t.seats {
		total += p.Chips
		shortest = min(shortest, p.Chips)
	}

	share := int(float64(total)*h.cfg.anteFraction) / len(h.t.seats)
	ante := min(shortest, max(1, share))

	for _, p := range h.t.seats {
		paid := p.commit(ante)
		h.t.pot += paid
		h.t.log(AnteEvent{PlayerID: p.ID, Amount: paid})
	}
	h.logger.Debug("antes collected", "ante", ante, "pot", h.t.pot)
	return ante
}

// deal gives one card to every player still in the hand.
func (h *Hand) deal(event func(*Player, poker.Card) Event) error {
	for _, p := range h.t.seats {
		if p.Folded {
			continue
		}
		c, ok := h.deck.Pop()
		if !ok {
			return ErrDeckExhausted
		}
		p.Hand = append(p.Hand, c)
		h.t.log(event(p, c))
	}
	return nil
}

// settle reveals at showdown and pays the pot.
func (h *Hand) settle() *HandResult {
	var remaining []*Player
	for _, p := range h.t.seats {
		if !p.Folded {
			remaining = append(remaining, p)
		}
	}

	showdown := len(remaining) > 1
	if showdown {
		for _, p := range remaining {
			h.t.log(RevealEvent{PlayerID: p.ID, Cards: p.handCopy()})
		}
	}

	var (
		best    poker.HandRank
		winners []*Player
	)
	for _, p := range remaining {
		r := poker.BestHand(p.Hand)
		switch {
		case len(winners) == 0 || r > best:
			best = r
			winners = []*Player{p}
		case r == best:
			winners = append(winners, p)
		}
	}

	result := &HandResult{
		ID:       h.ID,
		Pot:      h.t.pot,
		Awards:   make(map[string]int, len(winners)),
		Showdown: showdown,
	}
	for _, p := range h.t.seats {
		result.Seats = append(result.Seats, p.ID)
	}

	share := h.t.pot / len(winners)
	remainder := h.t.pot % len(winners)
	for _, p := range winners {
		p.Chips += share
		result.Awards[p.ID] += share
		result.Winners = append(result.Winners, p.ID)
		h.t.log(WinEvent{PlayerID: p.ID, Amount: share})
	}

	if remainder != 0 {
		lucky := winners[h.rng.IntN(len(winners))]
		lucky.Chips += remainder
		result.Awards[lucky.ID] += remainder
		h.t.log(OddChipEvent{PlayerID: lucky.ID, Amount: remainder})
	}

	h.logger.Debug("hand settled",
		"winners", result.Winners,
		"pot", h.t.pot,
		"showdown", showdown,
		"best", best)
	return result
}
