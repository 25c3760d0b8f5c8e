package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/office-chase/internal/core"
	"github.com/vovakirdan/office-chase/internal/registry"
	"github.com/vovakirdan/office-chase/internal/storage"
)

// phase is where the runner is between ticks.
type phase int

const (
	phasePlaying   phase = iota // game is stepped every tick
	phaseNameEntry              // run ended with a qualifying score
	phaseResults                // run ended, table shown
)

// Options tunes the runner.
type Options struct {
	HoldTicks int         // ticks a direction stays held after a press
	Logger    *log.Logger // nil discards
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keys       *KeyMapper
	logger     *log.Logger
	inputFrame core.InputFrame
	gameState  core.GameState
	phase      phase
	entry      NameEntry
	table      []storage.ScoreEntry
	savedID    int64
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		keys:       NewKeyMapper(opts.HoldTicks),
		logger:     logger,
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("run started", "game", m.game.ID(), "run", m.currentRunID(), "seed", m.config.Seed)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	if m.phase == phaseNameEntry {
		var cmd tea.Cmd
		m.entry, cmd = m.entry.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.phase {
	case phaseNameEntry:
		var cmd tea.Cmd
		m.entry, cmd = m.entry.Update(msg)
		if m.entry.Done() {
			m.saveScore(m.entry.Name())
			m.phase = phaseResults
		}
		return m, cmd

	case phaseResults:
		action, isQuit := m.keys.MapKey(msg)
		switch {
		case isQuit:
			m.quitting = true
			return m, tea.Quit
		case action == core.ActionRestart, action == core.ActionConfirm:
			m.restart()
		}
		return m, nil
	}

	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}
	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events. The game adapts its layout
// at render time, so the run continues.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.phase != phasePlaying {
		return m, tickCmd(m.config.TickRate)
	}

	m.keys.Apply(&m.inputFrame)
	result := m.game.Step(m.inputFrame)
	m.keys.Advance()
	m.gameState = result.State
	m.inputFrame.Clear()

	for _, cue := range result.Cues {
		m.logger.Debug("cue", "text", cue)
	}

	var cmd tea.Cmd
	if m.gameState.GameOver {
		cmd = m.finishRun()
	}
	return m, tea.Batch(cmd, tickCmd(m.config.TickRate))
}

// finishRun moves to name entry when the score makes the table, otherwise
// straight to the results.
func (m *Model) finishRun() tea.Cmd {
	m.keys.ReleaseAll()
	m.logger.Info("run finished",
		"game", m.game.ID(), "run", m.currentRunID(),
		"score", m.gameState.Score, "level", m.gameState.Level, "won", m.gameState.Won)

	if m.store != nil {
		ok, err := m.store.Qualifies(m.game.ID(), m.gameState.Score)
		if err != nil {
			m.logger.Warn("could not check high scores", "error", err)
		}
		if ok {
			m.phase = phaseNameEntry
			m.entry = NewNameEntry(m.gameState.Score, m.gameState.Level)
			return m.entry.Init()
		}
	}

	m.phase = phaseResults
	m.loadTable()
	return nil
}

// saveScore records the finished run once and reloads the table.
func (m *Model) saveScore(name string) {
	if m.store != nil {
		id, err := m.store.SaveScore(storage.NewScore{
			GameID: m.game.ID(),
			RunID:  m.currentRunID(),
			Name:   name,
			Score:  m.gameState.Score,
			Level:  m.gameState.Level,
		})
		if err != nil {
			m.logger.Warn("could not save score", "error", err)
		} else {
			m.savedID = id
			m.logger.Info("score saved", "name", name, "score", m.gameState.Score)
		}
	}
	m.loadTable()
}

func (m *Model) loadTable() {
	if m.store == nil {
		m.table = storage.MergeTable(m.game.ID(), nil)
		return
	}
	table, err := m.store.Table(m.game.ID())
	if err != nil {
		m.logger.Warn("could not load high scores", "error", err)
		table = storage.MergeTable(m.game.ID(), nil)
	}
	m.table = table
}

// restart begins a new run with a fresh seed.
func (m *Model) restart() {
	m.config.Seed = time.Now().UnixNano()
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.phase = phasePlaying
	m.savedID = 0
	m.table = nil
	m.keys.ReleaseAll()
	m.inputFrame.Clear()
	m.logger.Info("run started", "game", m.game.ID(), "run", m.currentRunID(), "seed", m.config.Seed)
}

// currentRunID is the ID the finished run is saved under.
func (m Model) currentRunID() string {
	return m.game.RunID()
}

// saveScreenshot saves the current screen to ~/.officechase/screenshots.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".officechase", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.phase {
	case phaseNameEntry:
		return m.place(m.entry.View())
	case phaseResults:
		return m.place(m.resultsView())
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

func (m Model) resultsView() string {
	title := "GAME OVER"
	if m.gameState.Won {
		title = "YOU WIN!"
	}

	var b strings.Builder
	b.WriteString(entryTitleStyle.Render(title))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Score %d   Level %d\n\n", m.gameState.Score, m.gameState.Level)
	b.WriteString(FormatTable(m.table, m.savedID))
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render("r/enter play again • q quit"))
	return entryBoxStyle.Render(b.String())
}

func (m Model) place(s string) string {
	return lipgloss.Place(m.config.ScreenW, m.config.ScreenH, lipgloss.Center, lipgloss.Center, s)
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, store, cfg, opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
