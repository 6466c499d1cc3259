package deck

import (
	"fmt"
	"strings"
)

// Rank is a card face value symbol: "2" through "9", "T", "J", "Q", "K" or "A".
type Rank string

// Suit is a card suit symbol: "C", "D", "H" or "S".
type Suit string

const (
	Clubs    Suit = "C"
	Diamonds Suit = "D"
	Hearts   Suit = "H"
	Spades   Suit = "S"
)

// Ranks lists every valid rank in ascending strength order.
var Ranks = []Rank{"2", "3", "4", "5", "6", "7", "8", "9", "T", "J", "Q", "K", "A"}

// Suits lists every valid suit in sorting order.
var Suits = []Suit{Clubs, Diamonds, Hearts, Spades}

var rankValues = map[Rank]int{
	"2": 2, "3": 3, "4": 4, "5": 5, "6": 6, "7": 7, "8": 8, "9": 9,
	"T": 10, "J": 11, "Q": 12, "K": 13, "A": 14,
}

// Value maps the rank to its numeric strength, 2 through 14 with ace high.
// Symbols outside the thirteen valid ranks fail with ErrInvalidRank.
func (r Rank) Value() (int, error) {
	v, ok := rankValues[r]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidRank, string(r))
	}
	return v, nil
}

func (r Rank) Valid() bool {
	_, ok := rankValues[r]
	return ok
}

func (s Suit) Valid() bool {
	switch s {
	case Clubs, Diamonds, Hearts, Spades:
		return true
	}
	return false
}

// Card is a rank/suit pair. Cards compare equal when both fields match.
type Card struct {
	Rank Rank `json:"rank"`
	Suit Suit `json:"suit"`
}

// Value returns the numeric strength of the card's rank.
func (c Card) Value() (int, error) {
	return c.Rank.Value()
}

// ToValue returns the card's numeric rank strength together with its suit.
func (c Card) ToValue() (int, Suit, error) {
	v, err := c.Rank.Value()
	if err != nil {
		return 0, "", err
	}
	return v, c.Suit, nil
}

func (c Card) String() string {
	return string(c.Rank) + string(c.Suit)
}

// ParseCard parses a two-character card such as "TC" or "9s".
func ParseCard(s string) (Card, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) != 2 {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}
	r := Rank(s[:1])
	if !r.Valid() {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidRank, string(r))
	}
	su := Suit(s[1:])
	if !su.Valid() {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidSuit, string(su))
	}
	return Card{Rank: r, Suit: su}, nil
}
