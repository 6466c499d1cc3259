package deck

// Deal splits the deck into the first count cards and the remainder,
// preserving order on both sides. Asking for more cards than the deck holds
// (or a negative count) fails with a *DealError and deals nothing.
func (d Deck) Deal(count int) (hand, rest Deck, err error) {
	if count < 0 || count > len(d) {
		return nil, nil, &DealError{Requested: count, Available: len(d)}
	}
	hand = append(Deck{}, d[:count]...)
	rest = append(Deck{}, d[count:]...)
	return hand, rest, nil
}

// DealOne deals the top card of the deck.
func (d Deck) DealOne() (Card, Deck, error) {
	hand, rest, err := d.Deal(1)
	if err != nil {
		return Card{}, nil, err
	}
	return hand[0], rest, nil
}

// Drop returns the deck with the cards at the given zero-based positions
// removed. Positions outside the deck are ignored and duplicates count once.
func (d Deck) Drop(positions ...int) Deck {
	_, rest := d.DropToPile(positions...)
	return rest
}

// DropToPile partitions the deck by position: cards at the given zero-based
// positions form the pile, everything else stays behind. Both halves keep
// their original relative order, and every card lands in exactly one of them.
func (d Deck) DropToPile(positions ...int) (pile, rest Deck) {
	member := make(map[int]struct{}, len(positions))
	for _, p := range positions {
		member[p] = struct{}{}
	}

	pile = Deck{}
	rest = Deck{}
	for i, c := range d {
		if _, ok := member[i]; ok {
			pile = append(pile, c)
		} else {
			rest = append(rest, c)
		}
	}
	return pile, rest
}
