package tricks

import (
	"fmt"
	"strings"
)

// ScoreBoard accumulates the points of every round.
type ScoreBoard struct {
	roster []string
	scored []string // names in the order they first scored
	points map[string]int
}

// NewScoreBoard creates an empty board listing roster in display order.
func NewScoreBoard(roster []string) *ScoreBoard {
	return &ScoreBoard{
		roster: append([]string(nil), roster...),
		points: map[string]int{},
	}
}

// ApplyScoreDelta adds points to the player's total.
func (s *ScoreBoard) ApplyScoreDelta(player string, points int) {
	if _, ok := s.points[player]; !ok {
		s.scored = append(s.scored, player)
	}
	s.points[player] += points
}

// Points returns the total of player, 0 if they never scored.
func (s *ScoreBoard) Points(player string) int {
	return s.points[player]
}

// Totals returns a copy of the players that scored and their points.
func (s *ScoreBoard) Totals() map[string]int {
	totals := make(map[string]int, len(s.points))
	for name, pts := range s.points {
		totals[name] = pts
	}
	return totals
}

// Winner returns the player with the most points. Ties go to whoever scored
// first. It reports false when nobody scored.
func (s *ScoreBoard) Winner() (string, bool) {
	if len(s.scored) == 0 {
		return "", false
	}
	winner := s.scored[0]
	for _, name := range s.scored[1:] {
		if s.points[name] > s.points[winner] {
			winner = name
		}
	}
	return winner, true
}

// Roster returns the players in display order.
func (s *ScoreBoard) Roster() []string {
	return append([]string(nil), s.roster...)
}

func (s *ScoreBoard) String() string {
	var b strings.Builder
	b.WriteString("SCORE BOARD\n")
	for _, name := range s.roster {
		fmt.Fprintf(&b, "%s: %d\n", name, s.points[name])
	}
	return b.String()
}
