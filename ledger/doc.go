// Package ledger implements an append-only record of the tricks played in a
// game.
//
// # Core Components
//
// Ledger: A log of resolved tricks with hash chaining for tamper detection.
//
// Block: A single trick with its plays, winner and awarded points, linked to
// the previous block by hash.
//
// # Usage
//
// Create a ledger, append a Trick after every round, and call Verify at any
// time to check the chain. Totals replays the chain into per-player points.
package ledger
