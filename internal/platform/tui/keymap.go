package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/office-chase/internal/core"
)

// DefaultHoldTicks is how long a direction stays held after its last press.
// Terminal auto-repeat refreshes it well within this window.
const DefaultHoldTicks = 10

// directions in a fixed order so frames are built deterministically.
var directions = [...]core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight}

// KeyMapper translates Bubble Tea key messages to game actions.
//
// Terminals report key presses but never releases, so movement keys are
// turned into held directions that expire holdTicks ticks after the last
// press. Pressing a direction releases its opposite immediately.
type KeyMapper struct {
	holdTicks int
	held      map[core.Action]int // ticks left per held direction
}

// NewKeyMapper creates a key mapper. holdTicks <= 0 uses DefaultHoldTicks.
func NewKeyMapper(holdTicks int) *KeyMapper {
	if holdTicks <= 0 {
		holdTicks = DefaultHoldTicks
	}
	return &KeyMapper{
		holdTicks: holdTicks,
		held:      make(map[core.Action]int),
	}
}

// HoldTicks returns the configured hold window.
func (km *KeyMapper) HoldTicks() int {
	return km.holdTicks
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "w", "up", "k":
		return core.ActionUp, false
	case "s", "down", "j":
		return core.ActionDown, false
	case "a", "left", "h":
		return core.ActionLeft, false
	case "d", "right", "l":
		return core.ActionRight, false
	case " ", "e":
		return core.ActionInteract, false
	case "enter":
		return core.ActionConfirm, false
	case "p", "esc":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	case "b":
		return core.ActionBack, false
	}

	return core.ActionNone, false
}

// MapKeyToFrame records a key press: directions start (or refresh) a hold,
// everything else is set as an edge action on frame.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	if msg.String() == "x" {
		km.ReleaseAll()
		return false
	}

	action, isQuit := km.MapKey(msg)
	switch {
	case action == core.ActionNone:
	case action.IsDirection():
		km.Press(action)
	default:
		frame.Set(action)
	}
	return isQuit
}

// Press starts holding a direction and drops the opposite one.
func (km *KeyMapper) Press(a core.Action) {
	if !a.IsDirection() {
		return
	}
	delete(km.held, a.Opposite())
	km.held[a] = km.holdTicks
}

// ReleaseAll drops every held direction.
func (km *KeyMapper) ReleaseAll() {
	clear(km.held)
}

// Apply copies the currently held directions into frame.Held.
func (km *KeyMapper) Apply(frame *core.InputFrame) {
	for _, d := range directions {
		if km.held[d] > 0 {
			frame.Hold(d)
		} else {
			frame.Release(d)
		}
	}
}

// Advance ages every hold by one tick, releasing expired ones.
func (km *KeyMapper) Advance() {
	for d, left := range km.held {
		if left <= 1 {
			delete(km.held, d)
			continue
		}
		km.held[d] = left - 1
	}
}
