package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/office-chase/internal/storage"
)

var (
	entryTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	entryBoxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("208")).
			Padding(1, 3)
	dimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// NameEntry prompts for a high score name after a qualifying run.
type NameEntry struct {
	input textinput.Model
	score int
	level int
	done  bool
}

// NewNameEntry creates a focused name prompt for the given result.
func NewNameEntry(score, level int) NameEntry {
	ti := textinput.New()
	ti.Placeholder = storage.DefaultName
	ti.Prompt = "> "
	ti.CharLimit = storage.MaxNameLength
	ti.Width = storage.MaxNameLength + 1
	ti.Focus()

	return NameEntry{input: ti, score: score, level: level}
}

// Init starts the cursor blinking.
func (n NameEntry) Init() tea.Cmd {
	return textinput.Blink
}

// Update feeds a message to the prompt. Enter or Esc finishes it; an
// empty name is saved as storage.DefaultName.
func (n NameEntry) Update(msg tea.Msg) (NameEntry, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.Type {
		case tea.KeyEnter:
			n.done = true
			return n, nil
		case tea.KeyEsc:
			n.input.SetValue("")
			n.done = true
			return n, nil
		}
	}

	var cmd tea.Cmd
	n.input, cmd = n.input.Update(msg)
	return n, cmd
}

// Done reports whether the player has submitted a name.
func (n NameEntry) Done() bool {
	return n.done
}

// Name returns the normalized name typed so far.
func (n NameEntry) Name() string {
	return storage.NormalizeName(n.input.Value())
}

// View renders the prompt box.
func (n NameEntry) View() string {
	var b strings.Builder
	b.WriteString(entryTitleStyle.Render("NEW HIGH SCORE!"))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Score %d   Level %d\n\n", n.score, n.level)
	b.WriteString("Your name:\n")
	b.WriteString(n.input.View())
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render("enter save • esc skip name"))
	return entryBoxStyle.Render(b.String())
}
