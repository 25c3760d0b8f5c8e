package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/office-chase/internal/platform/tui"
	"github.com/vovakirdan/office-chase/internal/registry"
	"github.com/vovakirdan/office-chase/internal/storage"
)

var (
	flagBrowse bool
	flagClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show the high score table",
	Long: `Display the top 5 scores for a mode (default: office). Until five
runs have been recorded the table is filled with the office's own staff.

Examples:
  officechase scores
  officechase scores office_endless
  officechase scores --browse
  officechase scores office --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagBrowse, "browse", false, "Open the interactive scoreboard")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every stored score for the mode")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := "office"
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'officechase list' to see available modes.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		exitf("opening scores database: %v", err)
	}
	defer store.Close()

	if flagBrowse {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			store.Close()
			exitf("running scoreboard: %v", err)
		}
		return
	}

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			store.Close()
			exitf("clearing scores: %v", err)
		}
		fmt.Printf("Cleared scores for %s.\n", gameID)
		return
	}

	game, err := registry.Create(gameID)
	if err != nil {
		store.Close()
		exitf("creating game: %v", err)
	}

	table, err := store.Table(gameID)
	if err != nil {
		store.Close()
		exitf("retrieving scores: %v", err)
	}

	fmt.Printf("High Scores - %s\n\n", game.Title())
	fmt.Println(tui.FormatTable(table, 0))

	stats, err := store.GetGameStats(gameID)
	if err == nil && stats.GamesCount > 0 {
		fmt.Println()
		fmt.Printf("Runs recorded: %d   Best level: %d   Average: %.0f\n",
			stats.GamesCount, stats.BestLevel, stats.AvgScore)
		fmt.Printf("Last played:   %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))
	}
}
