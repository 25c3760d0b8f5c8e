// officechase is a terminal maze chase: dodge the executives, smash the
// office equipment and grab the coins before they expire.
//
// Usage:
//
//	officechase list              - List available game modes
//	officechase play [mode]       - Play (default: office)
//	officechase scores [mode]     - Show the high score table
//	officechase serve             - Host games over SSH
//	officechase maze              - Preview a generated maze
//	officechase config            - Print the default configuration
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.officechase/scores.db)
//	--log-level <lvl>   - debug, info, warn, error
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/office-chase/internal/games/office"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "officechase",
	Short: "Office Chase - a maze chase in your terminal",
	Long: `Office Chase drops you in a procedurally generated office. Executives
patrol the corridors and chase you when you enter their vision cone. Smash
computers and wall art to clear the level, drink coffee to turn the tables,
and pick up coins before they expire.

Available commands:
  list     - Show the game modes
  play     - Play a game
  scores   - View high scores
  serve    - Start SSH server for remote play
  maze     - Print a generated maze and its stats
  config   - Print the default YAML configuration

Examples:
  officechase play
  officechase play office_endless --difficulty hard
  officechase scores
  officechase serve --ssh :2222
  officechase maze --seed 42`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.officechase/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(mazeCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the process logger. Without --log-file, logs go to
// fallback (the TUI owns stdout, so play passes io.Discard).
// The returned close func must be called on exit.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	w, closeFn := fallback, func() {}
	if flagLogFile != "" {
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if openErr != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", openErr)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Level:           level,
	})
	office.SetLogger(logger.WithPrefix("office"))
	return logger, closeFn, nil
}

// exitf prints an error and exits.
func exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
