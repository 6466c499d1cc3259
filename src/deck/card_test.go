package deck_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lost-woods/deck/src/deck"
)

func TestRankValue_AscendingOrder(t *testing.T) {
	prev := 0
	for _, r := range deck.Ranks {
		v, err := r.Value()
		require.NoError(t, err, "rank %q", r)
		assert.Greater(t, v, prev, "rank %q", r)
		prev = v
	}

	ten, err := deck.Rank("T").Value()
	require.NoError(t, err)
	assert.Equal(t, 10, ten)

	ace, err := deck.Rank("A").Value()
	require.NoError(t, err)
	assert.Equal(t, 14, ace)
}

func TestRankValue_InvalidSymbolFails(t *testing.T) {
	for _, bad := range []deck.Rank{"X", "1", "10", "t", ""} {
		_, err := bad.Value()
		require.Error(t, err, "rank %q", bad)
		assert.ErrorIs(t, err, deck.ErrInvalidRank)
	}
}

func TestCard_ValueAndToValue(t *testing.T) {
	c := deck.Card{Rank: "Q", Suit: deck.Hearts}

	v, err := c.Value()
	require.NoError(t, err)
	assert.Equal(t, 12, v)

	v, s, err := c.ToValue()
	require.NoError(t, err)
	assert.Equal(t, 12, v)
	assert.Equal(t, deck.Hearts, s)

	_, _, err = deck.Card{Rank: "X", Suit: deck.Clubs}.ToValue()
	assert.ErrorIs(t, err, deck.ErrInvalidRank)
}

func TestCard_Equality(t *testing.T) {
	a := deck.Card{Rank: "7", Suit: deck.Spades}
	b := deck.Card{Rank: "7", Suit: deck.Spades}
	c := deck.Card{Rank: "7", Suit: deck.Hearts}

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestParseCard(t *testing.T) {
	tests := []struct {
		input   string
		want    deck.Card
		wantErr error
	}{
		{input: "TC", want: deck.Card{Rank: "T", Suit: deck.Clubs}},
		{input: "2d", want: deck.Card{Rank: "2", Suit: deck.Diamonds}},
		{input: " as ", want: deck.Card{Rank: "A", Suit: deck.Spades}},
		{input: "XC", wantErr: deck.ErrInvalidRank},
		{input: "2Z", wantErr: deck.ErrInvalidSuit},
		{input: "2", wantErr: deck.ErrInvalidCard},
		{input: "10H", wantErr: deck.ErrInvalidCard},
		{input: "", wantErr: deck.ErrInvalidCard},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := deck.ParseCard(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCard_String(t *testing.T) {
	assert.Equal(t, "2C", deck.Card{Rank: "2", Suit: deck.Clubs}.String())
	assert.Equal(t, "AS", deck.Card{Rank: "A", Suit: deck.Spades}.String())
}
