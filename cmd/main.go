package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/luca-patrignani/tricks/domain/tricks"
)

func main() {
	cfg, verbose, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		os.Exit(2)
	}
	if verbose {
		pterm.DefaultLogger.Level = pterm.LogLevelDebug
	}

	// Create a new slog handler with the default PTerm logger
	handler := pterm.NewSlogHandler(&pterm.DefaultLogger)
	logger := slog.New(handler)

	title, err := pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("H", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("igh ", pterm.FgDarkGray.ToStyle()),
		putils.LettersFromStringWithStyle("C", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("ard", pterm.FgDarkGray.ToStyle()),
	).Srender()
	if err != nil {
		logger.Error(err.Error())
	}
	pterm.Print(title)

	if err := run(cfg, terminal{}, logger); err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
}

func parseFlags(args []string, output io.Writer) (tricks.Config, bool, error) {
	fs := flag.NewFlagSet("tricks", flag.ContinueOnError)
	fs.SetOutput(output)
	cardsFlag := fs.Int("cards", 5, "cards dealt to each player, one round per card")
	retriesFlag := fs.Int("retries", 5, "invalid selections allowed in a row before the game stops (0 = unlimited)")
	paceFlag := fs.Duration("pace", 500*time.Millisecond, "delay between game phases")
	seedFlag := fs.String("seed", "", "seed for a reproducible shuffle")
	verboseFlag := fs.Bool("v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return tricks.Config{}, false, err
	}
	cfg := tricks.Config{
		CardsPerPlayer: *cardsFlag,
		MaxRetries:     *retriesFlag,
		Pace:           *paceFlag,
		Seed:           *seedFlag,
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(output, err)
		return tricks.Config{}, false, err
	}
	return cfg, *verboseFlag, nil
}

func run(cfg tricks.Config, console tricks.Console, logger *slog.Logger) error {
	game, err := tricks.NewGame(console, cfg, tricks.WithLogger(logger))
	if err != nil {
		return err
	}
	if err := game.AddPlayers(); err != nil {
		return err
	}
	names := make([]string, 0, len(game.Players()))
	for _, p := range game.Players() {
		names = append(names, p.Name())
	}
	pterm.Info.Printfln("Players: %s", strings.Join(names, ", "))

	if err := game.Start(); err != nil {
		return err
	}
	winner, ok := game.ScoreGame()

	pterm.DefaultSection.Println("Final score")
	table, err := scoreTable(game.Score())
	if err != nil {
		return err
	}
	pterm.Println(table)

	if err := game.History().Verify(); err != nil {
		return fmt.Errorf("trick history: %w", err)
	}
	pterm.DefaultSection.Println("Tricks")
	history, err := historyTable(game.History())
	if err != nil {
		return err
	}
	pterm.Println(history)
	pterm.Println(winnerPanel(winner, ok))
	return nil
}
