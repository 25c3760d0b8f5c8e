package tui

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/office-chase/internal/core"
	"github.com/vovakirdan/office-chase/internal/storage"
)

// fakeGame records its input and ends when told to.
type fakeGame struct {
	resets int
	steps  []core.InputFrame
	state  core.GameState
	runID  string
}

func (g *fakeGame) ID() string    { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }
func (g *fakeGame) RunID() string { return g.runID }

func (g *fakeGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.steps = nil
	g.state = core.GameState{Lives: 1, Level: 1}
	g.runID = fmt.Sprint("run-", g.resets)
}

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.steps = append(g.steps, in.Clone())
	return core.StepResult{State: g.state}
}

func (g *fakeGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "fake game")
}

func (g *fakeGame) State() core.GameState { return g.state }

func (g *fakeGame) end(score int) {
	g.state.Score = score
	g.state.GameOver = true
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T", next)
	}
	return nm
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	return update(t, m, TickMsg{})
}

func TestModelHeldDirectionReachesGame(t *testing.T) {
	game := &fakeGame{}
	m := NewModel(game, nil, testConfig(), Options{HoldTicks: 2})
	m.Init()

	m = update(t, m, runeKey('d'))
	m = update(t, m, runeKey('e'))
	m = tick(t, m)
	m = tick(t, m)
	m = tick(t, m)

	if len(game.steps) != 3 {
		t.Fatalf("game stepped %d times, want 3", len(game.steps))
	}
	first := game.steps[0]
	if !first.IsHeld(core.ActionRight) || !first.Has(core.ActionInteract) {
		t.Errorf("first frame = %+v, want right held and interact", first.Actions)
	}
	if game.steps[1].Has(core.ActionInteract) {
		t.Error("interact should only be seen once")
	}
	if !game.steps[1].IsHeld(core.ActionRight) {
		t.Error("right should be held for the hold window")
	}
	if game.steps[2].IsHeld(core.ActionRight) {
		t.Error("right should expire after the hold window")
	}
}

func TestModelGameOverWithoutStore(t *testing.T) {
	game := &fakeGame{}
	m := NewModel(game, nil, testConfig(), Options{})
	m.Init()

	game.end(9999)
	m = tick(t, m)

	if m.phase != phaseResults {
		t.Fatalf("phase = %v, want results", m.phase)
	}
	if len(m.table) != storage.TableSize || !m.table[0].Default {
		t.Errorf("table = %+v, want the default table", m.table)
	}
	if !strings.Contains(m.View(), "GAME OVER") {
		t.Error("results view should say GAME OVER")
	}

	steps := len(game.steps)
	m = tick(t, m)
	if len(game.steps) != steps {
		t.Error("game should not step after the run ended")
	}
}

func TestModelNameEntrySavesOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	game := &fakeGame{}
	m := NewModel(game, store, testConfig(), Options{})
	m.Init()

	game.end(450)
	m = tick(t, m)
	if m.phase != phaseNameEntry {
		t.Fatalf("phase = %v, want name entry for a qualifying score", m.phase)
	}

	for _, r := range "ann" {
		m = update(t, m, runeKey(r))
	}
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.phase != phaseResults {
		t.Fatalf("phase = %v, want results after enter", m.phase)
	}
	if m.savedID == 0 {
		t.Fatal("score was not saved")
	}
	if m.table[1].Name != "ANN" || m.table[1].Score != 450 {
		t.Errorf("table[1] = %+v, want ANN 450", m.table[1])
	}
	if !strings.Contains(FormatTable(m.table, m.savedID), "-> 2") {
		t.Error("saved entry should be highlighted")
	}

	all, _ := store.AllScores("fake")
	if len(all) != 1 || all[0].RunID != "run-1" {
		t.Errorf("stored = %+v, want one row for run-1", all)
	}

	m = update(t, m, runeKey('r'))
	if m.phase != phasePlaying || game.resets != 2 {
		t.Errorf("restart: phase = %v, resets = %d", m.phase, game.resets)
	}
	if m.currentRunID() == "run-1" {
		t.Error("restart should start a new run ID")
	}
}

func TestModelNonQualifyingScoreSkipsEntry(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	game := &fakeGame{}
	m := NewModel(game, store, testConfig(), Options{})
	m.Init()

	game.end(50)
	m = tick(t, m)
	if m.phase != phaseResults {
		t.Errorf("phase = %v, want results for a score below the table", m.phase)
	}
	if m.savedID != 0 {
		t.Error("nothing should be saved")
	}
}

func TestModelResizeKeepsRun(t *testing.T) {
	game := &fakeGame{}
	m := NewModel(game, nil, testConfig(), Options{})
	m.Init()

	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if game.resets != 1 {
		t.Errorf("resize reset the game (%d resets)", game.resets)
	}
	if m.screen.Width() != 120 || m.screen.Height() != 40 {
		t.Errorf("screen = %dx%d, want 120x40", m.screen.Width(), m.screen.Height())
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawText(0, 0, "ab")
	s.SetColored(2, 0, '@', core.ColorYellow)
	s.SetColored(0, 1, '·', core.ColorDarkGray)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if !strings.Contains(lines[0], "ab") || !strings.Contains(lines[0], "@") {
		t.Errorf("line 0 = %q", lines[0])
	}
	if !strings.Contains(lines[1], "·") {
		t.Errorf("line 1 = %q", lines[1])
	}
}

func TestFormatTable(t *testing.T) {
	table := storage.MergeTable("office", nil)
	out := FormatTable(table, 0)

	if strings.Contains(out, "->") {
		t.Error("nothing should be highlighted")
	}
	if got := strings.Count(out, "\n"); got != storage.TableSize {
		t.Errorf("got %d newlines, want header plus %d rows", got, storage.TableSize)
	}
	if !strings.Contains(out, "CEO") {
		t.Error("default entries should be listed")
	}
}
