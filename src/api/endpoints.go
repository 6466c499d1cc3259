package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lost-woods/deck/src/deck"
	"github.com/lost-woods/deck/src/rng"
)

// Deck returns the canonical 52-card deck in generation order.
func (h *Handlers) Deck(c *gin.Context) {
	h.handleRNG(c, func() (string, gin.H, int, string) {
		d := deck.New()
		return d.String(), gin.H{"cards": d, "size": d.Size()}, 0, ""
	})
}

// ShuffledDeck returns a uniformly random permutation of the canonical deck,
// shuffled with entropy from the configured source.
func (h *Handlers) ShuffledDeck(c *gin.Context) {
	h.handleRNG(c, func() (string, gin.H, int, string) {
		d, err := rng.ShuffleDeck(h.r, h.health, deck.New())
		if err != nil {
			h.log.Error(err)
			return "", nil, http.StatusInternalServerError, "Error shuffling the deck."
		}
		return d.String(), gin.H{"cards": d, "size": d.Size()}, 0, ""
	})
}

// SortedDeck returns the canonical deck under one of the three sort orders:
// by=rank, by=suit, or by=both (rank then suit, the default).
func (h *Handlers) SortedDeck(c *gin.Context) {
	by := c.DefaultQuery("by", "both")

	h.handleRNG(c, func() (string, gin.H, int, string) {
		d := deck.New()
		switch by {
		case "rank":
			d = d.SortByRank()
		case "suit":
			d = d.SortBySuit()
		case "both":
			d = d.Sort()
		default:
			return "", nil, http.StatusBadRequest,
				"Sort key must be one of: rank, suit, both."
		}
		return d.String(), gin.H{"cards": d, "size": d.Size(), "by": by}, 0, ""
	})
}

// Deal splits the canonical deck into a hand of `count` cards and the rest.
func (h *Handlers) Deal(c *gin.Context) {
	count, err := strconv.Atoi(c.DefaultQuery("count", "1"))
	if err != nil {
		responder{c}.err(http.StatusBadRequest, "Invalid count value.")
		return
	}

	h.handleRNG(c, func() (string, gin.H, int, string) {
		hand, rest, err := deck.New().Deal(count)
		if err != nil {
			var dealErr *deck.DealError
			if errors.As(err, &dealErr) {
				return "", nil, http.StatusBadRequest,
					fmt.Sprintf("Cannot deal %d cards from a deck of %d.",
						dealErr.Requested, dealErr.Available)
			}
			h.log.Error(err)
			return "", nil, http.StatusInternalServerError, "Error dealing cards."
		}

		text := "hand: " + hand.String() + "\nrest: " + rest.String()
		return text, gin.H{
			"count": count,
			"hand":  hand,
			"rest":  rest,
		}, 0, ""
	})
}

// Draw picks `cards` distinct cards uniformly at random from the canonical deck.
func (h *Handlers) Draw(c *gin.Context) {
	numCards, err := strconv.Atoi(c.DefaultQuery("cards", "1"))
	if err != nil || numCards < 1 {
		responder{c}.err(http.StatusBadRequest, "Invalid card count.")
		return
	}

	h.handleRNG(c, func() (string, gin.H, int, string) {
		d := deck.New()
		if numCards > d.Size() {
			return "", nil, http.StatusBadRequest,
				"There are more cards to pick than cards in the deck."
		}

		drawn, rest, err := rng.DrawCards(h.r, h.health, d, numCards)
		if err != nil {
			h.log.Error(err)
			return "", nil, http.StatusInternalServerError, "Error fetching a random card."
		}

		return drawn.String(), gin.H{
			"cards":     numCards,
			"drawn":     drawn,
			"remaining": rest.Size(),
		}, 0, ""
	})
}

func (h *Handlers) Health(c *gin.Context) {
	if h.health == nil {
		responder{c}.err(http.StatusServiceUnavailable, "UNHEALTHY: missing health monitor")
		return
	}

	ok, msg, t := h.health.Snapshot()
	if ok {
		responder{c}.ok(
			fmt.Sprintf("OK (last checked %s)", t.Format(time.RFC3339)),
			gin.H{"ok": true, "last_checked": t.Format(time.RFC3339)},
			"health-check",
		)
		return
	}

	responder{c}.err(http.StatusServiceUnavailable,
		fmt.Sprintf("UNHEALTHY: %s (last checked %s)", msg, t.Format(time.RFC3339)))
}
