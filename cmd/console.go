package main

import (
	"github.com/pterm/pterm"
)

// terminal is the interactive console of the game.
type terminal struct{}

func (terminal) RequestPlayerNames() (string, error) {
	names, err := pterm.DefaultInteractiveTextInput.
		WithDefaultText(`Enter player names separated by a comma (i.e. "Bill, Ted, Jerry")`).
		Show()
	pterm.Println()
	return names, err
}

func (terminal) RequestCardIndex(prompt string) (string, error) {
	pterm.Println(prompt)
	return pterm.DefaultInteractiveTextInput.WithDefaultText("Card number").Show()
}

func (terminal) Display(message string) {
	pterm.Println(message)
}
