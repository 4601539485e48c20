package tricks

import (
	"errors"
	"reflect"
	"testing"

	"github.com/luca-patrignani/tricks/domain/deck"
)

func TestGameEndToEnd(t *testing.T) {
	// Unshuffled, the deck starts A♥ 2♥: BOB is dealt the ace, ALICE the two.
	console := newScriptedConsole("bob, alice", "1", "1")
	cfg := DefaultConfig()
	cfg.CardsPerPlayer = 1
	g, err := NewGame(console, cfg, WithDeck(deck.New(nil)))
	if err != nil {
		t.Fatal(err)
	}
	if err := g.AddPlayers(); err != nil {
		t.Fatal(err)
	}
	if err := g.Start(); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(g.Score().Totals(), map[string]int{"ALICE": 1}) {
		t.Fatalf("unexpected score %v", g.Score().Totals())
	}
	winner, ok := g.ScoreGame()
	if !ok || winner != "ALICE" {
		t.Fatalf("expected ALICE to win, got %q", winner)
	}
	if console.displayed("ALICE wins!") != 1 {
		t.Fatalf("expected winner announcement, got %v", console.messages)
	}
	if console.displayed("SCORE BOARD\nBOB: 0\nALICE: 1\n") != 1 {
		t.Fatalf("expected score board, got %v", console.messages)
	}
}

func TestGameLedgerMatchesScore(t *testing.T) {
	answers := make([]string, 0, 12)
	for i := 0; i < 12; i++ {
		answers = append(answers, "1")
	}
	console := newScriptedConsole("ann, ben, cy", answers...)
	cfg := DefaultConfig()
	cfg.CardsPerPlayer = 4
	cfg.Seed = "ledger"
	g, err := NewGame(console, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if err := g.AddPlayers(); err != nil {
		t.Fatal(err)
	}
	if err := g.Start(); err != nil {
		t.Fatal(err)
	}
	history := g.History()
	if err := history.Verify(); err != nil {
		t.Fatal(err)
	}
	tricks := history.Tricks()
	if len(tricks) != 4 {
		t.Fatalf("expected 4 tricks, got %d", len(tricks))
	}
	for i, trick := range tricks {
		if trick.Round != i+1 || len(trick.Plays) != 3 {
			t.Fatalf("unexpected trick %+v", trick)
		}
		for j, name := range []string{"ANN", "BEN", "CY"} {
			if trick.Plays[j].Player != name {
				t.Fatalf("trick %d: expected %s to play at %d, got %s", i+1, name, j, trick.Plays[j].Player)
			}
		}
	}
	if !reflect.DeepEqual(history.Totals(), g.Score().Totals()) {
		t.Fatalf("ledger %v does not match score %v", history.Totals(), g.Score().Totals())
	}
	total := 0
	for _, pts := range g.Score().Totals() {
		total += pts
	}
	if total != 4 {
		t.Fatalf("expected 4 points awarded, got %d", total)
	}
	for _, p := range g.Players() {
		if p.Hand().Len() != 0 {
			t.Fatalf("%s still holds %d cards", p.Name(), p.Hand().Len())
		}
	}
}

func TestDeal(t *testing.T) {
	g, err := NewGame(newScriptedConsole(""), DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if err := g.RegisterPlayers("ANN", "BEN", "CY"); err != nil {
		t.Fatal(err)
	}
	if err := g.Deal(); err != nil {
		t.Fatal(err)
	}
	if g.Deck().Len() != deck.Size-15 {
		t.Fatalf("expected %d cards left, got %d", deck.Size-15, g.Deck().Len())
	}
	seen := map[*deck.Card]bool{}
	for _, p := range g.Players() {
		if p.Hand().Len() != 5 {
			t.Fatalf("%s: expected 5 cards, got %d", p.Name(), p.Hand().Len())
		}
		for _, c := range p.Hand().Cards() {
			if seen[c] {
				t.Fatalf("card %s dealt twice", c)
			}
			seen[c] = true
			if c.Owner() != p.Name() {
				t.Fatalf("expected %s to own %s, got %q", p.Name(), c, c.Owner())
			}
		}
	}
}

func TestDealRoundRobin(t *testing.T) {
	d := deck.New(nil)
	top := d.Cards()[:4]
	cfg := DefaultConfig()
	cfg.CardsPerPlayer = 2
	g, err := NewGame(newScriptedConsole(""), cfg, WithDeck(d))
	if err != nil {
		t.Fatal(err)
	}
	if err := g.RegisterPlayers("ANN", "BEN"); err != nil {
		t.Fatal(err)
	}
	if err := g.Deal(); err != nil {
		t.Fatal(err)
	}
	ann, ben := g.Players()[0].Hand().Cards(), g.Players()[1].Hand().Cards()
	if ann[0] != top[0] || ben[0] != top[1] || ann[1] != top[2] || ben[1] != top[3] {
		t.Fatalf("cards not dealt one at a time: %v %v", ann, ben)
	}
}

func TestDealExceedsDeck(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CardsPerPlayer = 27
	g, err := NewGame(newScriptedConsole(""), cfg)
	if err != nil {
		t.Fatal(err)
	}
	if err := g.RegisterPlayers("ANN", "BEN"); err != nil {
		t.Fatal(err)
	}
	if err := g.Start(); !errors.Is(err, deck.ErrEmptyDeck) {
		t.Fatalf("expected ErrEmptyDeck, got %v", err)
	}
}

func TestGameWithoutPlayers(t *testing.T) {
	g, err := NewGame(newScriptedConsole(" , "), DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if err := g.AddPlayers(); !errors.Is(err, ErrNoPlayers) {
		t.Fatalf("expected ErrNoPlayers, got %v", err)
	}
	if err := g.Start(); !errors.Is(err, ErrNoPlayers) {
		t.Fatalf("expected ErrNoPlayers, got %v", err)
	}
	if _, ok := g.ScoreGame(); ok {
		t.Fatal("expected no winner without rounds")
	}
}

func TestNewGameRejectsInvalidConfig(t *testing.T) {
	if _, err := NewGame(newScriptedConsole(""), Config{}); err == nil {
		t.Fatal("expected invalid config to be rejected")
	}
}

func TestSeededGamesDealTheSameHands(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = "same"
	hands := make([][]string, 2)
	for i := range hands {
		g, err := NewGame(newScriptedConsole(""), cfg)
		if err != nil {
			t.Fatal(err)
		}
		if err := g.RegisterPlayers("ANN"); err != nil {
			t.Fatal(err)
		}
		if err := g.Deal(); err != nil {
			t.Fatal(err)
		}
		hands[i] = []string{g.Players()[0].Hand().String()}
	}
	if !reflect.DeepEqual(hands[0], hands[1]) {
		t.Fatalf("expected identical hands, got %v and %v", hands[0], hands[1])
	}
}
