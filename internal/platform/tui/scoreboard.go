package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/office-chase/internal/registry"
	"github.com/vovakirdan/office-chase/internal/storage"
)

// Scoreboard layout constants
const (
	minWidthForSidebar = 70 // Minimum width to show game list sidebar
	sidebarWidth       = 26 // Width of game list sidebar
	tableHeight        = storage.TableSize + 1
)

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	panelStyle      = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	highlightStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208"))
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	NextGame key.Binding
	PrevGame key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevGame, k.NextGame, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.PrevGame, k.NextGame}, {k.Quit}}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		NextGame: key.NewBinding(
			key.WithKeys("right", "l", "tab"),
			key.WithHelp("→/tab", "next game"),
		),
		PrevGame: key.NewBinding(
			key.WithKeys("left", "h", "shift+tab"),
			key.WithHelp("←/S-tab", "prev game"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for browsing the high score tables.
type ScoreboardModel struct {
	games       []registry.GameInfo
	gameCursor  int
	store       *storage.Store
	entries     []storage.ScoreEntry
	loadErr     error
	table       table.Model
	help        help.Model
	keys        ScoreboardKeyMap
	width       int
	height      int
	showSidebar bool
	quitting    bool
}

// NewScoreboardModel creates a new scoreboard model.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		games:       registry.List(),
		store:       store,
		keys:        DefaultScoreboardKeyMap(),
		help:        help.New(),
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	m.table = newScoreTable()
	m.loadScores()
	return m
}

// newScoreTable creates the table widget with the score columns.
func newScoreTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 3},
		{Title: "Name", Width: storage.MaxNameLength},
		{Title: "Score", Width: 7},
		{Title: "Lvl", Width: 4},
		{Title: "Date", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithHeight(tableHeight),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)
	return t
}

// scoreRows converts table entries into table rows.
func scoreRows(entries []storage.ScoreEntry) []table.Row {
	rows := make([]table.Row, len(entries))
	for i, e := range entries {
		date := "-"
		if !e.Default && !e.CreatedAt.IsZero() {
			date = e.CreatedAt.Format("Jan 02 15:04")
		}
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			e.Name,
			fmt.Sprintf("%d", e.Score),
			fmt.Sprintf("%d", e.Level),
			date,
		}
	}
	return rows
}

// loadScores loads the table for the selected game.
func (m *ScoreboardModel) loadScores() {
	m.entries, m.loadErr = nil, nil
	switch {
	case len(m.games) == 0:
	case m.store == nil:
		m.entries = storage.MergeTable(m.games[m.gameCursor].ID, nil)
	default:
		m.entries, m.loadErr = m.store.Table(m.games[m.gameCursor].ID)
	}
	m.table.SetRows(scoreRows(m.entries))
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextGame):
			if len(m.games) > 0 {
				m.gameCursor = (m.gameCursor + 1) % len(m.games)
				m.loadScores()
			}
		case key.Matches(msg, m.keys.PrevGame):
			if len(m.games) > 0 {
				m.gameCursor = (m.gameCursor + len(m.games) - 1) % len(m.games)
				m.loadScores()
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.help.Width = msg.Width
	}

	return m, nil
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	title := "HIGH SCORES"
	if len(m.games) > 0 {
		title = fmt.Sprintf("HIGH SCORES - %s", m.games[m.gameCursor].Title)
	}

	var body string
	switch {
	case m.loadErr != nil:
		body = panelStyle.Render(dimStyle.Render("Could not load scores: " + m.loadErr.Error()))
	case m.showSidebar:
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), "  ", panelStyle.Render(m.table.View()))
	default:
		body = panelStyle.Render(m.table.View())
	}

	view := lipgloss.JoinVertical(lipgloss.Center,
		boardTitleStyle.Render(title),
		"",
		body,
		"",
		dimStyle.Render(m.help.View(m.keys)),
	)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, view)
}

// renderSidebar renders the game list.
func (m ScoreboardModel) renderSidebar() string {
	var b strings.Builder
	b.WriteString("Games\n")
	b.WriteString(strings.Repeat("-", sidebarWidth-4))
	for i, g := range m.games {
		b.WriteString("\n")
		if i == m.gameCursor {
			b.WriteString(highlightStyle.Render("> " + g.Title))
		} else {
			b.WriteString("  " + g.Title)
		}
	}
	return panelStyle.Width(sidebarWidth).Render(b.String())
}

// FormatTable renders a high score table as plain aligned text.
// The entry with ID highlight (if non-zero) is marked with an arrow.
func FormatTable(entries []storage.ScoreEntry, highlight int64) string {
	var b strings.Builder
	fmt.Fprintf(&b, "   %-3s %-*s %7s %4s\n", "#", storage.MaxNameLength, "NAME", "SCORE", "LVL")
	for i, e := range entries {
		marker := "  "
		if highlight != 0 && e.ID == highlight {
			marker = "->"
		}
		fmt.Fprintf(&b, "%s %-3d %-*s %7d %4d\n", marker, i+1, storage.MaxNameLength, e.Name, e.Score, e.Level)
	}
	return strings.TrimRight(b.String(), "\n")
}

// RunScoreboard runs the scoreboard screen until the user quits.
func RunScoreboard(store *storage.Store, width, height int) error {
	p := tea.NewProgram(
		NewScoreboardModel(store, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
