package deck

import "testing"

func TestShufflePreservesCards(t *testing.T) {
	d := New(NewSource())
	before := map[*Card]bool{}
	for _, c := range d.Cards() {
		before[c] = true
	}
	d.Shuffle()
	after := d.Cards()
	if len(after) != len(before) {
		t.Fatalf("expected %d cards, got %d", len(before), len(after))
	}
	for _, c := range after {
		if !before[c] {
			t.Fatalf("unexpected card %s after shuffle", c)
		}
		delete(before, c)
	}
	if len(before) != 0 {
		t.Fatalf("%d cards lost in shuffle", len(before))
	}
}

func TestSeededShuffleIsDeterministic(t *testing.T) {
	d1 := New(NewSeededSource([]byte("seed")))
	d2 := New(NewSeededSource([]byte("seed")))
	d1.Shuffle()
	d2.Shuffle()
	c1, c2 := d1.Cards(), d2.Cards()
	for i := range c1 {
		if c1[i].String() != c2[i].String() {
			t.Fatalf("position %d: %s != %s", i, c1[i], c2[i])
		}
	}
}

func TestPermIsPermutation(t *testing.T) {
	s := NewSeededSource([]byte("perm"))
	for n := 0; n < 60; n++ {
		perm := s.Perm(n)
		if len(perm) != n {
			t.Fatalf("expected length %d, got %d", n, len(perm))
		}
		seen := make([]bool, n)
		for _, p := range perm {
			if p < 0 || p >= n || seen[p] {
				t.Fatalf("invalid permutation %v", perm)
			}
			seen[p] = true
		}
	}
}

func TestIntnRange(t *testing.T) {
	s := NewSource()
	for i := 0; i < 1000; i++ {
		if v := s.Intn(7); v < 0 || v >= 7 {
			t.Fatalf("value %d out of range", v)
		}
	}
	if v := s.Intn(1); v != 0 {
		t.Fatalf("expected 0, got %d", v)
	}
}
