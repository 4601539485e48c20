package tricks

import (
	"fmt"
	"strings"

	"github.com/luca-patrignani/tricks/domain/deck"
)

// Hand holds a player's cards in the order they were received.
type Hand struct {
	cards []*deck.Card
}

// AddCard appends a card to the hand.
func (h *Hand) AddCard(card *deck.Card) {
	h.cards = append(h.cards, card)
}

// PlayCard removes and returns the card at the 0-based index.
func (h *Hand) PlayCard(index int) (*deck.Card, error) {
	if index < 0 || index >= len(h.cards) {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, index, len(h.cards))
	}
	card := h.cards[index]
	h.cards = append(h.cards[:index], h.cards[index+1:]...)
	return card, nil
}

func (h *Hand) Len() int {
	return len(h.cards)
}

// Cards returns a snapshot of the hand.
func (h *Hand) Cards() []*deck.Card {
	return append([]*deck.Card(nil), h.cards...)
}

// String lists the cards with the 1-based positions players choose from,
// e.g. "[1] 7♣  [2] Q♥".
func (h *Hand) String() string {
	parts := make([]string, len(h.cards))
	for i, c := range h.cards {
		parts[i] = fmt.Sprintf("[%d] %s", i+1, c)
	}
	return strings.Join(parts, "  ")
}
