// Package tricks implements the round and trick engine of a local,
// turn-based trick-taking card game.
//
// # Core Types
//
// Game: Owns the deck and the players, deals the hands and plays one Round
// per card held by each player, accumulating points on a ScoreBoard.
//
// Round: One trick. Every player plays one card, always in registration
// order, and the card with the highest numeric rank wins a single point.
//
// Turn: A single card selection. It asks the Console for a 1-based hand
// position, re-prompting on invalid input, and removes the chosen card.
//
// Hand, Player, Board: the cards held by a player and the cards in play.
//
// # Game Flow
//
// NewGame → AddPlayers (or RegisterPlayers) → Start → ScoreGame.
// The Console is the only blocking collaborator; everything else runs
// synchronously on the caller's goroutine.
package tricks
