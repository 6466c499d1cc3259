package rng

import (
	"fmt"
	"io"

	"github.com/lost-woods/deck/src/deck"
)

// ShuffleDeck returns a uniformly random permutation of d, with index
// selection driven by the entropy stream r. Fisher-Yates with unbiased
// per-index sampling; d itself is left untouched.
func ShuffleDeck(r io.Reader, h *Health, d deck.Deck) (deck.Deck, error) {
	out := append(deck.Deck(nil), d...)
	for i := len(out) - 1; i > 0; i-- {
		j, err := UniformInt32(r, h, 0, i)
		if err != nil {
			return nil, fmt.Errorf("shuffle: %w", err)
		}
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}

// DrawCards picks n cards from d uniformly at random without replacement.
// It returns the drawn cards in draw order and the rest of the deck in its
// original relative order.
func DrawCards(r io.Reader, h *Health, d deck.Deck, n int) (drawn, rest deck.Deck, err error) {
	if n < 0 || n > d.Size() {
		return nil, nil, fmt.Errorf("cannot draw %d cards from a deck of %d", n, d.Size())
	}

	rest = append(deck.Deck(nil), d...)
	drawn = make(deck.Deck, 0, n)
	for i := 0; i < n; i++ {
		index := 0
		if len(rest) > 1 {
			j, err := UniformInt32(r, h, 0, len(rest)-1)
			if err != nil {
				return nil, nil, fmt.Errorf("draw: %w", err)
			}
			index = int(j)
		}
		drawn = append(drawn, rest[index])
		rest = rest.Drop(index)
	}
	return drawn, rest, nil
}
