// Package equity estimates a hand's chance of winning at showdown by Monte
// Carlo sampling of the unseen cards.
package equity

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/lox/monkeystud/internal/randutil"
	"github.com/lox/monkeystud/poker"
)

// handSize is the number of cards each player holds at showdown.
const handSize = 4

// cancelCheckInterval is how many samples a worker runs between context checks.
const cancelCheckInterval = 256

// CardSet represents a set of cards using a bitset for fast operations
// Each card maps to a bit: index = (rank-1)*4 + suit
type CardSet uint32

func cardIndex(c poker.Card) uint {
	return uint(c.Rank()-1)*poker.Suits + uint(c.Suit())
}

// Add adds a card to the set
func (cs *CardSet) Add(c poker.Card) {
	*cs |= 1 << cardIndex(c)
}

// Contains checks if a card is in the set
func (cs CardSet) Contains(c poker.Card) bool {
	return cs&(1<<cardIndex(c)) != 0
}

// Scenario is what one player knows about a hand in progress.
type Scenario struct {
	Hero      []poker.Card   // the player's own cards, hidden card first
	Opponents [][]poker.Card // each live opponent's up cards
	Dead      []poker.Card   // other cards known to be out of the deck
}

// Result counts sampled showdowns.
type Result struct {
	Wins    int
	Ties    int
	Samples int
}

// Equity returns the share of the pot the hero expects to win.
func (r Result) Equity() float64 {
	if r.Samples == 0 {
		return 0
	}
	return (float64(r.Wins) + float64(r.Ties)/2) / float64(r.Samples)
}

func (r *Result) add(o Result) {
	r.Wins += o.Wins
	r.Ties += o.Ties
	r.Samples += o.Samples
}

// Validate checks that the scenario describes a possible deal.
func (s Scenario) Validate() error {
	if len(s.Hero) == 0 || len(s.Hero) > handSize {
		return fmt.Errorf("hero must hold 1 to %d cards, got %d", handSize, len(s.Hero))
	}
	if len(s.Opponents) == 0 {
		return errors.New("at least one opponent required")
	}

	var seen CardSet
	check := func(c poker.Card) error {
		if !c.Valid() {
			return fmt.Errorf("invalid card %d", c)
		}
		if seen.Contains(c) {
			return fmt.Errorf("card %s appears twice", c)
		}
		seen.Add(c)
		return nil
	}

	for _, c := range s.Hero {
		if err := check(c); err != nil {
			return err
		}
	}
	needed := handSize - len(s.Hero)
	for i, up := range s.Opponents {
		if len(up) >= handSize {
			return fmt.Errorf("opponent %d shows %d up cards", i, len(up))
		}
		for _, c := range up {
			if err := check(c); err != nil {
				return err
			}
		}
		needed += handSize - len(up)
	}
	for _, c := range s.Dead {
		if err := check(c); err != nil {
			return err
		}
	}

	if unseen := poker.DeckSize - len(s.Hero) - len(s.Dead) - knownOpponentCards(s); needed > unseen {
		return fmt.Errorf("scenario needs %d more cards but only %d are unseen", needed, unseen)
	}
	return nil
}

func knownOpponentCards(s Scenario) int {
	n := 0
	for _, up := range s.Opponents {
		n += len(up)
	}
	return n
}

// Estimate samples completions of the hand across parallel workers. The
// rng is used only to seed workers, so a seeded rng gives a reproducible
// estimate.
func Estimate(ctx context.Context, s Scenario, samples int, rng *rand.Rand) (Result, error) {
	if err := s.Validate(); err != nil {
		return Result{}, err
	}
	if samples <= 0 {
		return Result{}, fmt.Errorf("samples must be positive, got %d", samples)
	}

	workers := min(runtime.NumCPU(), 8, samples)
	perWorker := samples / workers
	remainder := samples % workers

	unseen := unseenCards(s)
	results := make([]Result, workers)

	g, ctx := errgroup.WithContext(ctx)
	for w := range workers {
		n := perWorker
		if w < remainder {
			n++ // Distribute remainder samples
		}

		// Independent RNG per worker to avoid contention
		workerRNG := randutil.New(int64(rng.Uint64()))

		g.Go(func() error {
			r, err := runWorker(ctx, s, unseen, n, workerRNG)
			results[w] = r
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	var total Result
	for _, r := range results {
		total.add(r)
	}
	return total, nil
}

func unseenCards(s Scenario) []poker.Card {
	deck := poker.NewOrderedDeck()
	deck.Remove(s.Hero...)
	for _, up := range s.Opponents {
		deck.Remove(up...)
	}
	deck.Remove(s.Dead...)
	return deck.Cards()
}

func runWorker(ctx context.Context, s Scenario, unseen []poker.Card, samples int, rng *rand.Rand) (Result, error) {
	var r Result

	// Pre-allocate reusable slices for this worker
	pool := make([]poker.Card, len(unseen))
	hero := make([]poker.Card, handSize)
	opp := make([]poker.Card, handSize)

	for i := range samples {
		if i%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return r, err
			}
		}

		copy(pool, unseen)
		drawn := 0
		draw := func() poker.Card {
			idx := drawn + rng.IntN(len(pool)-drawn)
			pool[drawn], pool[idx] = pool[idx], pool[drawn]
			drawn++
			return pool[drawn-1]
		}

		copy(hero, s.Hero)
		for j := len(s.Hero); j < handSize; j++ {
			hero[j] = draw()
		}
		heroRank := poker.BestHand(hero)

		best := poker.HandRank(0)
		for _, up := range s.Opponents {
			copy(opp, up)
			for j := len(up); j < handSize; j++ {
				opp[j] = draw()
			}
			best = max(best, poker.BestHand(opp))
		}

		switch poker.CompareHands(heroRank, best) {
		case 1:
			r.Wins++
		case 0:
			r.Ties++
		}
		r.Samples++
	}
	return r, nil
}
