package deck

import "errors"

// ErrEmptyDeck is returned when drawing from a deck with no cards left.
var ErrEmptyDeck = errors.New("deck is empty")

// Size is the number of cards in a full deck.
const Size = 52

// Deck is an ordered pile of cards; index 0 is the top.
type Deck struct {
	cards  []*Card
	source *Source
}

// New builds a full, unshuffled deck that will shuffle with the given source.
// A nil source falls back to NewSource.
func New(source *Source) *Deck {
	if source == nil {
		source = NewSource()
	}
	return &Deck{
		cards:  Build(),
		source: source,
	}
}

// Build enumerates every suit and rank pair exactly once.
func Build() []*Card {
	cards := make([]*Card, 0, Size)
	for _, s := range Suits {
		for _, r := range Ranks {
			cards = append(cards, &Card{
				suit:        s,
				rank:        r,
				numericRank: NumericRank(s, r),
			})
		}
	}
	return cards
}

// Draw removes and returns the card on top of the deck.
func (d *Deck) Draw() (*Card, error) {
	if len(d.cards) == 0 {
		return nil, ErrEmptyDeck
	}
	card := d.cards[0]
	d.cards = d.cards[1:]
	return card, nil
}

// AddToBottom puts the cards under the deck, keeping their relative order.
func (d *Deck) AddToBottom(cards ...*Card) {
	d.cards = append(d.cards, cards...)
}

// Len returns the number of cards left.
func (d *Deck) Len() int {
	return len(d.cards)
}

// Cards returns a snapshot of the deck from top to bottom.
func (d *Deck) Cards() []*Card {
	return append([]*Card(nil), d.cards...)
}
