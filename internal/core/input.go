package core

import "github.com/zyedidia/generic/mapset"

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone     Action = iota
	ActionUp              // W, Up arrow - move up (held)
	ActionDown            // S, Down arrow - move down (held)
	ActionLeft            // A, Left arrow - move left (held)
	ActionRight           // D, Right arrow - move right (held)
	ActionInteract        // Space, E - smash / scare / drink (edge-triggered)
	ActionConfirm         // Enter - confirm selection
	ActionBack            // B, Escape - go back
	ActionRestart         // R key - restart game after game over
	ActionQuit            // Q, Ctrl+C - exit game/session
	ActionPause           // P, Escape - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionInteract:
		return "Interact"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// IsDirection reports whether the action is a level-sensitive movement direction.
func (a Action) IsDirection() bool {
	return a == ActionUp || a == ActionDown || a == ActionLeft || a == ActionRight
}

// Opposite returns the opposing direction, or ActionNone for non-directions.
func (a Action) Opposite() Action {
	switch a {
	case ActionUp:
		return ActionDown
	case ActionDown:
		return ActionUp
	case ActionLeft:
		return ActionRight
	case ActionRight:
		return ActionLeft
	default:
		return ActionNone
	}
}

// InputFrame represents the input state for a single simulation tick.
//
// Actions holds edge-triggered actions that fired since the previous tick
// (each press is seen exactly once). Held holds level-sensitive actions,
// currently the movement directions being held down.
type InputFrame struct {
	Actions map[Action]bool
	Held    mapset.Set[Action]
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
		Held:    mapset.New[Action](),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Hold marks a direction as currently held.
func (f *InputFrame) Hold(a Action) {
	if f.Held.Size() == 0 {
		// zero-value frames have no backing map yet
		f.Held = mapset.New[Action]()
	}
	f.Held.Put(a)
}

// Release clears a held direction.
func (f *InputFrame) Release(a Action) {
	f.Held.Remove(a)
}

// IsHeld returns true if the given action is held this frame.
func (f InputFrame) IsHeld(a Action) bool {
	return f.Held.Has(a)
}

// Clear resets the edge-triggered actions for the next frame.
// Held directions persist until released.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	f.Held.Each(func(k Action) {
		clone.Held.Put(k)
	})
	return clone
}
