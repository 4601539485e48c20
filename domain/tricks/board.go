package tricks

import (
	"strings"

	"github.com/luca-patrignani/tricks/domain/deck"
)

// Board holds the cards of the current trick in play order.
type Board struct {
	cards []*deck.Card
}

func (b *Board) Add(card *deck.Card) {
	b.cards = append(b.cards, card)
}

func (b *Board) Len() int {
	return len(b.cards)
}

// Cards returns a snapshot of the board in play order.
func (b *Board) Cards() []*deck.Card {
	return append([]*deck.Card(nil), b.cards...)
}

// Clear removes every card and returns them in play order.
func (b *Board) Clear() []*deck.Card {
	cleared := b.cards
	b.cards = nil
	return cleared
}

// Undo takes back the last card played. It reports false on an empty board.
func (b *Board) Undo() (*deck.Card, bool) {
	if len(b.cards) == 0 {
		return nil, false
	}
	last := b.cards[len(b.cards)-1]
	b.cards = b.cards[:len(b.cards)-1]
	return last, true
}

// HighCard returns the card with the greatest numeric rank.
func (b *Board) HighCard() (*deck.Card, error) {
	if len(b.cards) == 0 {
		return nil, ErrEmptyBoard
	}
	high := b.cards[0]
	for _, c := range b.cards[1:] {
		if c.Beats(high) {
			high = c
		}
	}
	return high, nil
}

func (b *Board) String() string {
	parts := make([]string, len(b.cards))
	for i, c := range b.cards {
		parts[i] = c.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
