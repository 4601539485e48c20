package deck

import (
	"errors"
	"fmt"
)

// ErrInvalidCard is returned when a suit or rank is outside the standard deck.
var ErrInvalidCard = errors.New("invalid card")

// Suit of a card. The numeric value is the suit weight expressed in tenths:
// it only separates cards of equal rank and never lifts a card over the next rank.
type Suit uint8

const (
	Spades   Suit = 0 // ♠
	Clubs    Suit = 1 // ♣
	Diamonds Suit = 2 // ♦
	Hearts   Suit = 3 // ♥
)

// Suits lists every suit in build order.
var Suits = []Suit{Hearts, Diamonds, Clubs, Spades}

// Rank of a card, Ace low.
type Rank uint8

// Face card ranks; 2-10 use their face value.
const (
	Ace   Rank = 1  // A
	Jack  Rank = 11 // J
	Queen Rank = 12 // Q
	King  Rank = 13 // K
)

// Ranks lists every rank in build order.
var Ranks = []Rank{Ace, 2, 3, 4, 5, 6, 7, 8, 9, 10, Jack, Queen, King}

func (s Suit) String() string {
	switch s {
	case Spades:
		return "♠"
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	case Hearts:
		return "♥"
	default:
		return "?"
	}
}

func (r Rank) String() string {
	switch r {
	case Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		return fmt.Sprintf("%d", uint8(r))
	}
}

// Card is a playing card. Suit, rank and numeric rank never change after
// construction; only the owner follows the card from the deck to a player.
type Card struct {
	suit        Suit
	rank        Rank
	numericRank int
	owner       string
}

// NewCard creates a Card with validation.
//
// Parameters:
//   - suit: Spades, Clubs, Diamonds or Hearts
//   - rank: 1-13 (Ace=1, 2-10=face value, Jack=11, Queen=12, King=13)
//
// Returns the Card or ErrInvalidCard if suit or rank is out of range.
func NewCard(suit Suit, rank Rank) (*Card, error) {
	if suit > Hearts || rank < Ace || rank > King {
		return nil, fmt.Errorf("%w: suit %d, rank %d", ErrInvalidCard, suit, rank)
	}
	return &Card{
		suit:        suit,
		rank:        rank,
		numericRank: NumericRank(suit, rank),
	}, nil
}

// NumericRank is the ordering key of a card: the rank weight plus the suit
// weight, both in tenths so that every suit/rank pair maps to a distinct value.
func NumericRank(suit Suit, rank Rank) int {
	return int(rank)*10 + int(suit)
}

func (c *Card) Suit() Suit {
	return c.suit
}

func (c *Card) Rank() Rank {
	return c.rank
}

func (c *Card) NumericRank() int {
	return c.numericRank
}

// Owner returns the name of the player holding the card, or "" while it is in the deck.
func (c *Card) Owner() string {
	return c.owner
}

// SetOwner transfers the card to the named player.
func (c *Card) SetOwner(name string) {
	c.owner = name
}

// Beats reports whether c outranks other.
func (c *Card) Beats(other *Card) bool {
	return c.numericRank > other.numericRank
}

// String returns the rank followed by the suit symbol, e.g. "10♥".
func (c *Card) String() string {
	return c.rank.String() + c.suit.String()
}
