package tricks

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange is returned when a hand position does not exist.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrEmptyBoard is returned when a round is scored before any card was played.
	ErrEmptyBoard = errors.New("board is empty")
	// ErrFatalInput is returned when a player exceeds the allowed invalid selections.
	ErrFatalInput = errors.New("too many invalid selections")
	// ErrNoPlayers is returned when a game is started without players.
	ErrNoPlayers = errors.New("no players registered")
)

// InvalidInputError describes a card selection the turn rejected.
type InvalidInputError struct {
	Input  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid selection %q: %s", e.Input, e.Reason)
}
