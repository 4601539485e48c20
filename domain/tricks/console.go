package tricks

// Console is the input/output collaborator of the game. Implementations may
// block on RequestPlayerNames and RequestCardIndex until the player answers.
type Console interface {
	// RequestPlayerNames returns the raw, comma separated list of names.
	RequestPlayerNames() (string, error)
	// RequestCardIndex shows prompt and returns the raw answer.
	RequestCardIndex(prompt string) (string, error)
	// Display shows a message to the players.
	Display(message string)
}
