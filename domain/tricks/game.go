package tricks

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/luca-patrignani/tricks/domain/deck"
	"github.com/luca-patrignani/tricks/ledger"
)

// Game owns the deck, the players and the score of one match.
type Game struct {
	cfg     Config
	deck    *deck.Deck
	players []*Player
	score   *ScoreBoard
	history *ledger.Ledger
	console Console
	logger  *slog.Logger
}

type Option func(*Game)

func WithLogger(logger *slog.Logger) Option {
	return func(g *Game) {
		g.logger = logger
	}
}

// WithDeck makes the game deal from d as it is, without shuffling.
func WithDeck(d *deck.Deck) Option {
	return func(g *Game) {
		g.deck = d
	}
}

// NewGame builds and shuffles a deck. Players must be registered before Start.
func NewGame(console Console, cfg Config, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g := &Game{
		cfg:     cfg,
		console: console,
		logger:  slog.Default(),
		history: ledger.New(),
		score:   NewScoreBoard(nil),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.deck == nil {
		source := deck.NewSource()
		if cfg.Seed != "" {
			source = deck.NewSeededSource([]byte(cfg.Seed))
		}
		g.deck = deck.New(source)
		g.deck.Shuffle()
		g.logger.Debug("deck shuffled", "cards", g.deck.Len(), "seeded", cfg.Seed != "")
	}
	return g, nil
}

// AddPlayers asks the console for the player names and registers them.
func (g *Game) AddPlayers() error {
	raw, err := g.console.RequestPlayerNames()
	if err != nil {
		return fmt.Errorf("reading player names: %w", err)
	}
	return g.RegisterPlayers(NormalizePlayerNames(raw)...)
}

// RegisterPlayers seats the named players in the given order.
func (g *Game) RegisterPlayers(names ...string) error {
	if len(names) == 0 {
		return ErrNoPlayers
	}
	g.players = make([]*Player, len(names))
	for i, name := range names {
		g.players[i] = NewPlayer(name)
	}
	g.score = NewScoreBoard(names)
	return nil
}

func (g *Game) Players() []*Player {
	return append([]*Player(nil), g.players...)
}

func (g *Game) Deck() *deck.Deck {
	return g.deck
}

func (g *Game) Score() *ScoreBoard {
	return g.score
}

func (g *Game) History() *ledger.Ledger {
	return g.history
}

// Deal gives CardsPerPlayer cards to each player, one at a time around the table.
func (g *Game) Deal() error {
	if len(g.players) == 0 {
		return ErrNoPlayers
	}
	for i := 0; i < g.cfg.CardsPerPlayer; i++ {
		for _, p := range g.players {
			card, err := g.deck.Draw()
			if err != nil {
				return fmt.Errorf("dealing %d cards to %d players: %w", g.cfg.CardsPerPlayer, len(g.players), err)
			}
			p.Receive(card)
		}
	}
	g.logger.Debug("cards dealt", "players", len(g.players), "per_player", g.cfg.CardsPerPlayer, "left", g.deck.Len())
	return nil
}

// Start deals and plays one round per card in hand.
func (g *Game) Start() error {
	if err := g.Deal(); err != nil {
		return err
	}
	for i := 1; i <= g.cfg.CardsPerPlayer; i++ {
		round := NewRound(i, g.players, g.console, g.cfg)
		round.logger = g.logger
		delta, err := round.Play()
		if err != nil {
			return err
		}
		g.score.ApplyScoreDelta(delta.Player, delta.Points)
		if err := g.record(round, delta); err != nil {
			return err
		}
		g.console.Display(g.score.String())
		if g.cfg.Pace > 0 {
			time.Sleep(3 * g.cfg.Pace)
		}
	}
	return nil
}

// ScoreGame announces and returns the player with the highest score.
// It reports false when no round was played.
func (g *Game) ScoreGame() (string, bool) {
	winner, ok := g.score.Winner()
	if ok {
		g.console.Display(fmt.Sprintf("%s wins!", winner))
	}
	return winner, ok
}

func (g *Game) record(round *Round, delta ScoreDelta) error {
	cards := round.Board().Cards()
	plays := make([]ledger.Play, len(cards))
	for i, c := range cards {
		plays[i] = ledger.Play{Player: c.Owner(), Card: c.String(), NumericRank: c.NumericRank()}
	}
	block, err := g.history.Append(ledger.Trick{
		Round:  round.Number(),
		Plays:  plays,
		Winner: delta.Player,
		Points: delta.Points,
	})
	if err != nil {
		return fmt.Errorf("recording round %d: %w", round.Number(), err)
	}
	g.logger.Debug("trick recorded", "index", block.Index, "hash", block.Hash)
	return nil
}
