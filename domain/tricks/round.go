package tricks

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/luca-patrignani/tricks/domain/deck"
)

// TrickAward is the number of points the winner of a trick receives.
const TrickAward = 1

// ScoreDelta is the outcome of a round.
type ScoreDelta struct {
	Player string
	Points int
}

// Round plays one trick: every player plays a card, in registration order,
// and the highest card wins.
type Round struct {
	number  int
	players []*Player
	board   *Board
	award   int
	console Console
	logger  *slog.Logger
	cfg     Config
}

// NewRound creates the round with the given 1-based number on a fresh board.
func NewRound(number int, players []*Player, console Console, cfg Config) *Round {
	return &Round{
		number:  number,
		players: players,
		board:   &Board{},
		award:   TrickAward,
		console: console,
		logger:  slog.Default(),
		cfg:     cfg,
	}
}

func (r *Round) Number() int {
	return r.number
}

func (r *Round) Board() *Board {
	return r.board
}

// Play runs one turn per player and scores the trick.
func (r *Round) Play() (ScoreDelta, error) {
	r.console.Display(fmt.Sprintf("**** ROUND %d ****", r.number))
	r.pause(2)
	for _, p := range r.players {
		if err := r.takeTurn(p); err != nil {
			return ScoreDelta{}, fmt.Errorf("round %d: %w", r.number, err)
		}
	}
	delta, err := r.Score()
	if err != nil {
		return ScoreDelta{}, fmt.Errorf("round %d: %w", r.number, err)
	}
	return delta, nil
}

// Score awards the round to the owner of the highest card on the board.
func (r *Round) Score() (ScoreDelta, error) {
	high, err := r.board.HighCard()
	if err != nil {
		return ScoreDelta{}, err
	}
	r.console.Display(fmt.Sprintf("\n\n**** %s wins this round with %s! ****", high.Owner(), high))
	r.logger.Debug("trick resolved", "round", r.number, "winner", high.Owner(), "card", high.String())
	return ScoreDelta{Player: high.Owner(), Points: r.award}, nil
}

func (r *Round) takeTurn(p *Player) error {
	turn := NewTurn(p, r.console, r.cfg.MaxRetries)
	turn.logger = r.logger
	card, err := turn.ChooseCard()
	if err != nil {
		return err
	}
	r.addToBoard(card)
	return nil
}

func (r *Round) addToBoard(card *deck.Card) {
	r.board.Add(card)
	r.console.Display(fmt.Sprintf("\nBoard:\n%s", r.board))
	r.pause(1)
}

// pause waits the given number of pace units.
func (r *Round) pause(units int) {
	if r.cfg.Pace > 0 {
		time.Sleep(time.Duration(units) * r.cfg.Pace)
	}
}
