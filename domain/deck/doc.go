// Package deck implements the standard 52-card deck used by the trick engine.
//
// # Cards
//
// A Card pairs one of four suits with one of thirteen ranks (Ace low). Its
// numeric rank is the rank weight plus a small suit weight, so any two cards
// of the deck compare strictly: rank decides first and suit breaks ties
// (Hearts > Diamonds > Clubs > Spades).
//
// # Shuffling
//
// Randomness comes from a Source owned by the Deck. NewSource draws from a
// cryptographic stream; NewSeededSource derives the stream from a seed so
// that shuffles can be replayed.
package deck
