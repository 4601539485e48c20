package tricks

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/luca-patrignani/tricks/domain/deck"
)

// TurnState is the stage of a single card selection.
type TurnState string

const (
	AwaitingInput TurnState = "awaiting_input"
	Validated     TurnState = "validated"
	Rejected      TurnState = "rejected"
	Complete      TurnState = "complete"
)

// Turn asks one player for a card until a valid hand position is given.
type Turn struct {
	player     *Player
	console    Console
	logger     *slog.Logger
	maxRetries int // 0 means unbounded

	state      TurnState
	position   int
	rejection  error
	rejections int
	card       *deck.Card
}

// NewTurn prepares a turn for player. After maxRetries consecutive invalid
// selections the turn fails with ErrFatalInput; zero retries forever.
func NewTurn(player *Player, console Console, maxRetries int) *Turn {
	return &Turn{
		player:     player,
		console:    console,
		logger:     slog.Default(),
		maxRetries: maxRetries,
		state:      AwaitingInput,
	}
}

func (t *Turn) State() TurnState {
	return t.state
}

// ChooseCard runs the turn to completion and returns the card removed from
// the player's hand.
func (t *Turn) ChooseCard() (*deck.Card, error) {
	if t.player.Hand().Len() == 0 {
		return nil, fmt.Errorf("%w: %s has no cards", ErrIndexOutOfRange, t.player.Name())
	}
	t.console.Display(fmt.Sprintf("\nIt is now %s's turn", t.player.Name()))
	if description, ok := DescribeHand(t.player.Hand()); ok {
		t.console.Display(fmt.Sprintf("%s is holding %s", t.player.Name(), description))
	}
	for t.state != Complete {
		if err := t.step(); err != nil {
			return nil, err
		}
	}
	return t.card, nil
}

func (t *Turn) step() error {
	switch t.state {
	case AwaitingInput:
		raw, err := t.console.RequestCardIndex(fmt.Sprintf("Choose a card from your hand:\n%s", t.player.Hand()))
		if err != nil {
			return fmt.Errorf("reading selection of %s: %w", t.player.Name(), err)
		}
		position, err := t.validate(raw)
		if err != nil {
			t.rejection = err
			t.state = Rejected
			return nil
		}
		t.position = position
		t.state = Validated
	case Rejected:
		t.rejections++
		t.logger.Warn("selection rejected", "player", t.player.Name(), "error", t.rejection)
		var invalid *InvalidInputError
		if errors.As(t.rejection, &invalid) {
			t.console.Display(fmt.Sprintf("Selection %s, try again!!", invalid.Reason))
		}
		if t.maxRetries > 0 && t.rejections >= t.maxRetries {
			return fmt.Errorf("%w: %s made %d invalid selections", ErrFatalInput, t.player.Name(), t.rejections)
		}
		t.state = AwaitingInput
	case Validated:
		card, err := t.player.PlayCard(t.position)
		if err != nil {
			return err
		}
		t.card = card
		t.state = Complete
	}
	return nil
}

// validate parses a 1-based hand position.
func (t *Turn) validate(raw string) (int, error) {
	position, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, &InvalidInputError{Input: raw, Reason: "is not a number"}
	}
	if position-1 < 0 || position-1 >= t.player.Hand().Len() {
		return 0, &InvalidInputError{Input: raw, Reason: "out of range"}
	}
	return position, nil
}
