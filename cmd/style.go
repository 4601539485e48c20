package main

import (
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/tricks/domain/tricks"
	"github.com/luca-patrignani/tricks/ledger"
)

func scoreTable(score *tricks.ScoreBoard) (string, error) {
	data := pterm.TableData{{"Player", "Points"}}
	for _, name := range score.Roster() {
		data = append(data, []string{name, strconv.Itoa(score.Points(name))})
	}
	return pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(data).Srender()
}

func historyTable(history *ledger.Ledger) (string, error) {
	data := pterm.TableData{{"Round", "Board", "Winner"}}
	for _, t := range history.Tricks() {
		plays := make([]string, len(t.Plays))
		for i, p := range t.Plays {
			plays[i] = p.Player + " " + p.Card
		}
		data = append(data, []string{strconv.Itoa(t.Round), strings.Join(plays, ", "), pterm.LightCyan(t.Winner)})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
}

func winnerPanel(winner string, ok bool) string {
	pbox := pterm.DefaultBox.WithLeftPadding(4).WithRightPadding(4).WithTopPadding(1).WithBottomPadding(1)
	text := "No rounds were played"
	if ok {
		text = pterm.Sprintf("%s takes the game", pterm.LightCyan(winner))
	}
	return pbox.WithTitle(pterm.LightGreen("|GAME OVER|")).WithTitleTopCenter().Sprint(text)
}
