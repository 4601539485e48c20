package tricks

import (
	"github.com/paulhankin/poker"

	"github.com/luca-patrignani/tricks/domain/deck"
)

// DescribeHand names the poker hand formed by h, e.g. "a pair of kings".
// Only hands of exactly 5 or 7 cards can be described.
func DescribeHand(h *Hand) (string, bool) {
	cards := h.Cards()
	if len(cards) != 5 && len(cards) != 7 {
		return "", false
	}
	pc := make([]poker.Card, len(cards))
	for i, c := range cards {
		card, err := poker.MakeCard(pokerSuit(c.Suit()), poker.Rank(c.Rank()))
		if err != nil {
			return "", false
		}
		pc[i] = card
	}
	description, err := poker.Describe(pc)
	if err != nil {
		return "", false
	}
	return description, true
}

func pokerSuit(s deck.Suit) poker.Suit {
	switch s {
	case deck.Clubs:
		return poker.Suit(0)
	case deck.Diamonds:
		return poker.Suit(1)
	case deck.Hearts:
		return poker.Suit(2)
	default:
		return poker.Suit(3)
	}
}
