// Package registry maps mode IDs to game constructors. The office package
// registers its campaign ("office") and endless ("office_endless") modes
// from init, so the CLI and the SSH server can pick a mode by name.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/office-chase/internal/core"
)

// Game is one playable mode. Implementations are pure simulation: the TUI
// runner owns timing, key mapping and terminal output.
type Game interface {
	// ID names the mode ("office", "office_endless"). It keys the CLI
	// argument and the high score table.
	ID() string

	// Title is shown in listings and on the scoreboard tabs.
	Title() string

	// RunID identifies the current run. It changes on every Reset and is
	// stored with the score so a run is recorded at most once.
	RunID() string

	// Reset starts a new run: a fresh maze from cfg.Seed sized for the screen.
	Reset(cfg core.RuntimeConfig)

	// Step advances one fixed tick with the directions held and the
	// actions pressed since the previous tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the office, executives, props and HUD into dst.
	Render(dst *core.Screen)

	// State reports score, lives, level and whether the run is over.
	State() core.GameState
}

// GameInfo describes a registered mode.
type GameInfo struct {
	ID    string
	Title string
}

// Factory builds a fresh game for one session.
type Factory func() Game

type entry struct {
	title   string
	factory Factory
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a mode. It panics on an empty or duplicate ID, or when the
// factory builds a game reporting a different ID.
func Register(id string, f Factory) {
	if id == "" {
		panic("registry: empty game id")
	}
	g := f()
	if g.ID() != id {
		panic(fmt.Sprintf("registry: factory for %q builds %q", id, g.ID()))
	}

	mu.Lock()
	defer mu.Unlock()
	if _, dup := entries[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{title: g.Title(), factory: f}
}

// List returns every registered mode sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, 0, len(entries))
	for id, e := range entries {
		out = append(out, GameInfo{ID: id, Title: e.title})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Create builds a new game for the mode.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

// Exists reports whether the mode is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := entries[id]
	return ok
}
