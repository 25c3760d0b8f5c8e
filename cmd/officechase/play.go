package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/office-chase/internal/config"
	"github.com/vovakirdan/office-chase/internal/core"
	"github.com/vovakirdan/office-chase/internal/games/office"
	"github.com/vovakirdan/office-chase/internal/platform/tui"
	"github.com/vovakirdan/office-chase/internal/registry"
	"github.com/vovakirdan/office-chase/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagStartLevel int
	flagHold       int
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play Office Chase",
	Long: `Start a game. The mode defaults to "office" (campaign); use
"office_endless" for endless levels with growing staff.

Controls:
  WASD/Arrows  - Move (keys stay held briefly after each press)
  X            - Stop moving
  Space/E      - Smash, scare or drink coffee
  P/Esc        - Pause
  R            - Restart (after game over)
  Ctrl+S       - Save a screenshot
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - More lives, shorter sight, longer scares
  normal - Default tuning
  hard   - Fewer lives, more executives, keener sight
  fixed  - No progression within a run

Examples:
  officechase play
  officechase play office_endless
  officechase play --difficulty hard --start-level 3
  officechase play --config ./my-office.yaml --hold 15`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom office config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().IntVar(&flagStartLevel, "start-level", 1, "Level to start at")
	playCmd.Flags().IntVar(&flagHold, "hold", tui.DefaultHoldTicks, "Ticks a direction stays held after a key press")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "office"
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'officechase list' to see available modes.")
		os.Exit(1)
	}

	if flagConfig != "" {
		if _, err := config.LoadOffice(flagConfig); err != nil {
			exitf("%v", err)
		}
	}
	if flagStartLevel < 1 {
		exitf("--start-level must be at least 1")
	}

	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		exitf("%v", err)
	}
	defer closeLog()

	office.SetConfigPath(flagConfig)
	office.SetDifficultyPreset(flagDifficulty)
	office.SetStartLevel(flagStartLevel)

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game, err := registry.Create(gameID)
	if err != nil {
		exitf("creating game: %v", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("playing without high scores", "error", err)
		store = nil
	}

	runErr := tui.Run(game, store, cfg, tui.Options{HoldTicks: flagHold, Logger: logger})

	if store != nil {
		store.Close()
	}
	if runErr != nil {
		closeLog()
		exitf("running game: %v", runErr)
	}
}
