package tricks

import "github.com/luca-patrignani/tricks/domain/deck"

// Player is a named seat at the table. The name is fixed at registration.
type Player struct {
	name string
	hand *Hand
}

func NewPlayer(name string) *Player {
	return &Player{name: name, hand: &Hand{}}
}

func (p *Player) Name() string {
	return p.name
}

func (p *Player) Hand() *Hand {
	return p.hand
}

// Receive takes ownership of a card and adds it to the hand.
func (p *Player) Receive(card *deck.Card) {
	card.SetOwner(p.name)
	p.hand.AddCard(card)
}

// PlayCard plays the card at the 1-based position shown in the hand view.
// The card keeps p as its owner.
func (p *Player) PlayCard(position int) (*deck.Card, error) {
	return p.hand.PlayCard(position - 1)
}

func (p *Player) String() string {
	return p.name
}
