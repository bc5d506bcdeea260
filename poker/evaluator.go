package poker

// HandRank represents the strength of a three-card hand. Higher values are
// stronger, so ranks compare with the ordinary integer operators.
//
// Layout (most significant first):
//
//	bits 28-31 category
//	bits 24-27 paired rank (Pair only)
//	bits 12-23 high, mid, low ranks
//	bits  0-11 high, mid, low suits
type HandRank uint32

// Category enumerates the hand categories ordered from weakest to strongest.
// The order is a house rule of this variant: trips beat flushes and
// straights, and flushes beat straights.
type Category uint8

const (
	HighCard Category = iota
	Pair
	Straight
	Flush
	Trips
	StraightFlush
)

const (
	categoryShift = 28
	pairShift     = 24
	nibble        = 0xF
)

// String returns a human-readable category name.
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case Pair:
		return "Pair"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case Trips:
		return "Trips"
	case StraightFlush:
		return "Straight Flush"
	default:
		return "Unknown"
	}
}

// Category returns the category stored in the top bits.
func (hr HandRank) Category() Category {
	return Category(hr >> categoryShift)
}

// Ranks returns the high, mid and low ranks of the evaluated hand.
func (hr HandRank) Ranks() (high, mid, low uint8) {
	return uint8(hr>>20) & nibble, uint8(hr>>16) & nibble, uint8(hr>>12) & nibble
}

// String returns the category name followed by the sorted ranks.
func (hr HandRank) String() string {
	h, m, l := hr.Ranks()
	return hr.Category().String() + " " + string(rankGlyphs[h]) + string(rankGlyphs[m]) + string(rankGlyphs[l])
}

// Classify packs a three-card hand into a HandRank. The cards are ordered by
// descending rank, with equal ranks ordered by descending suit, so the result
// does not depend on argument order.
func Classify(a, b, c Card) HandRank {
	if less(a, b) {
		a, b = b, a
	}
	if less(b, c) {
		b, c = c, b
	}
	if less(a, b) {
		a, b = b, a
	}

	h, m, l := uint32(a.Rank()), uint32(b.Rank()), uint32(c.Rank())
	hs, ms, ls := uint32(a.Suit()), uint32(b.Suit()), uint32(c.Suit())
	x := h<<20 | m<<16 | l<<12 | hs<<8 | ms<<4 | ls

	suited := hs == ms && hs == ls
	switch {
	case h == m && m == l:
		x |= uint32(Trips) << categoryShift
	case h == m:
		x |= uint32(Pair)<<categoryShift | h<<pairShift
	case m == l:
		x |= uint32(Pair)<<categoryShift | m<<pairShift
	case h == m+1 && h == l+2:
		if suited {
			x |= uint32(StraightFlush) << categoryShift
		} else {
			x |= uint32(Straight) << categoryShift
		}
	case suited:
		x |= uint32(Flush) << categoryShift
	default:
		x |= uint32(HighCard) << categoryShift
	}
	return HandRank(x)
}

// less orders cards by rank, then suit.
func less(x, y Card) bool {
	if x.Rank() != y.Rank() {
		return x.Rank() < y.Rank()
	}
	return x.Suit() < y.Suit()
}

// BestHand returns the strongest Classify result over every three-card
// combination of cards. Fewer than three cards yields zero.
func BestHand(cards []Card) HandRank {
	var best HandRank
	n := len(cards)
	for i := 0; i < n-2; i++ {
		for j := i + 1; j < n-1; j++ {
			for k := j + 1; k < n; k++ {
				if r := Classify(cards[i], cards[j], cards[k]); r > best {
					best = r
				}
			}
		}
	}
	return best
}

// CompareHands returns 1 if a is stronger, -1 if b is stronger, 0 on a tie.
func CompareHands(a, b HandRank) int {
	switch {
	case a > b:
		return 1
	case a < b:
		return -1
	default:
		return 0
	}
}
