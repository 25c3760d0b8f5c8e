package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/office-chase/internal/games/office"
	"github.com/vovakirdan/office-chase/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagServeMode   string
	flagServeConfig string
	flagServeDiff   string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Office Chase SSH server",
	Long: `Start an SSH server that hosts Office Chase.

Every SSH connection plays its own independent single-player game.
Scores are stored per server, so all players share one table.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.officechase/host_key

Examples:
  officechase serve                           # Listen on :23234
  officechase serve --ssh :2222               # Listen on port 2222
  officechase serve --mode office_endless     # Host endless mode
  officechase serve --host-key ./my_host_key  # Use specific host key

Players connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagServeMode, "mode", "office", "Game mode every session plays")
	serveCmd.Flags().StringVar(&flagServeConfig, "config", "", "Path to custom office config YAML")
	serveCmd.Flags().StringVar(&flagServeDiff, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runServe(_ *cobra.Command, _ []string) {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		exitf("%v", err)
	}
	defer closeLog()

	office.SetConfigPath(flagServeConfig)
	office.SetDifficultyPreset(flagServeDiff)

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = flagDBPath
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.GameID = flagServeMode
	cfg.TickRate = flagFPS

	server, err := tui.NewSSHServer(cfg, logger)
	if err != nil {
		closeLog()
		exitf("creating server: %v", err)
	}

	fmt.Printf("Starting Office Chase SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		closeLog()
		exitf("server: %v", err)
	}
}
