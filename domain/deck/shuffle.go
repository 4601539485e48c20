package deck

import (
	"crypto/cipher"
	"math/big"

	"go.dedis.ch/kyber/v4/suites"
	"go.dedis.ch/kyber/v4/util/random"
)

var suite suites.Suite = suites.MustFind("Ed25519")

// Source supplies the randomness used to shuffle a deck.
type Source struct {
	stream cipher.Stream
}

// NewSource returns a Source backed by the suite's cryptographic random stream.
func NewSource() *Source {
	return &Source{stream: suite.RandomStream()}
}

// NewSeededSource returns a deterministic Source: two sources built from the
// same seed produce the same sequence of permutations.
func NewSeededSource(seed []byte) *Source {
	return &Source{stream: suite.XOF(seed)}
}

// Intn returns a uniform integer in [0, n).
func (s *Source) Intn(n int) int {
	if n <= 1 {
		return 0
	}
	return int(random.Int(big.NewInt(int64(n)), s.stream).Int64())
}

// Perm returns a uniform random permutation of [0, n).
func (s *Source) Perm(n int) []int {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	for i := n - 1; i > 0; i-- {
		j := s.Intn(i + 1)
		perm[i], perm[j] = perm[j], perm[i]
	}
	return perm
}

// Shuffle randomly permutes the cards still in the deck.
func (d *Deck) Shuffle() {
	perm := d.source.Perm(len(d.cards))
	shuffled := make([]*Card, len(d.cards))
	for i, p := range perm {
		shuffled[i] = d.cards[p]
	}
	d.cards = shuffled
}
