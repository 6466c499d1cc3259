package deck

import (
	"math/rand"
	"sort"
	"strings"
)

// Deck is an ordered sequence of cards. The zero value is an empty deck.
// Every transforming operation returns a new Deck and leaves its receiver
// untouched, so a Deck may be shared freely across goroutines.
type Deck []Card

// New returns the canonical 52-card deck: every rank paired with every suit
// exactly once, ranks ascending and suits C, D, H, S within each rank.
func New() Deck {
	d := make(Deck, 0, len(Ranks)*len(Suits))
	for _, r := range Ranks {
		for _, s := range Suits {
			d = append(d, Card{Rank: r, Suit: s})
		}
	}
	return d
}

// Shuffled returns a uniformly random permutation of the canonical deck.
func Shuffled(rnd *rand.Rand) Deck {
	return New().Shuffle(rnd)
}

// Shuffle returns a uniformly random permutation of the deck. A nil rnd uses
// the shared math/rand source.
func (d Deck) Shuffle(rnd *rand.Rand) Deck {
	intn := rand.Intn
	if rnd != nil {
		intn = rnd.Intn
	}

	out := append(Deck(nil), d...)
	// Fisher-Yates
	for i := len(out) - 1; i > 0; i-- {
		j := intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Size returns the number of cards in the deck.
func (d Deck) Size() int {
	return len(d)
}

// SortByRank returns the deck ordered by ascending rank strength.
// Cards of equal rank keep their relative order.
func (d Deck) SortByRank() Deck {
	out := append(Deck(nil), d...)
	sort.SliceStable(out, func(i, j int) bool {
		return rankValues[out[i].Rank] < rankValues[out[j].Rank]
	})
	return out
}

// SortBySuit returns the deck ordered by ascending suit letter (C < D < H < S).
// Cards of equal suit keep their relative order.
func (d Deck) SortBySuit() Deck {
	out := append(Deck(nil), d...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Suit < out[j].Suit
	})
	return out
}

// Sort returns the deck in its total order: ascending rank strength first,
// ascending suit letter within equal ranks. Sorting the canonical deck is a
// fixed point, with the two of clubs first.
func (d Deck) Sort() Deck {
	out := append(Deck(nil), d...)
	sort.SliceStable(out, func(i, j int) bool {
		vi, vj := rankValues[out[i].Rank], rankValues[out[j].Rank]
		if vi != vj {
			return vi < vj
		}
		return out[i].Suit < out[j].Suit
	})
	return out
}

func (d Deck) String() string {
	parts := make([]string, len(d))
	for i, c := range d {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
