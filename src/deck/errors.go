package deck

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidRank = errors.New("invalid rank")
	ErrInvalidSuit = errors.New("invalid suit")
	ErrInvalidCard = errors.New("invalid card")
)

// DealError reports a deal that asked for more cards than the deck holds,
// or a negative count. The deck it was called on is left untouched.
type DealError struct {
	Requested int
	Available int
}

func (e *DealError) Error() string {
	return fmt.Sprintf("cannot deal %d cards from a deck of %d", e.Requested, e.Available)
}
