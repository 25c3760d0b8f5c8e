package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/office-chase/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper(0)

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		want   core.Action
		isQuit bool
	}{
		{"w", runeKey('w'), core.ActionUp, false},
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"s", runeKey('s'), core.ActionDown, false},
		{"a", runeKey('a'), core.ActionLeft, false},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"space", runeKey(' '), core.ActionInteract, false},
		{"e", runeKey('e'), core.ActionInteract, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"p", runeKey('p'), core.ActionPause, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause, false},
		{"r", runeKey('r'), core.ActionRestart, false},
		{"q", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('z'), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, isQuit := km.MapKey(tt.msg)
			if got != tt.want || isQuit != tt.isQuit {
				t.Errorf("MapKey() = (%v, %v), want (%v, %v)", got, isQuit, tt.want, tt.isQuit)
			}
		})
	}
}

func TestHoldExpiresAfterWindow(t *testing.T) {
	km := NewKeyMapper(3)
	frame := core.NewInputFrame()

	km.MapKeyToFrame(runeKey('d'), &frame)
	if frame.Has(core.ActionRight) {
		t.Error("directions should not be edge actions")
	}

	for tick := 0; tick < 3; tick++ {
		km.Apply(&frame)
		if !frame.IsHeld(core.ActionRight) {
			t.Fatalf("tick %d: right should still be held", tick)
		}
		km.Advance()
	}

	km.Apply(&frame)
	if frame.IsHeld(core.ActionRight) {
		t.Error("right should be released after the hold window")
	}
}

func TestRepeatRefreshesHold(t *testing.T) {
	km := NewKeyMapper(2)
	frame := core.NewInputFrame()

	km.Press(core.ActionUp)
	for i := 0; i < 10; i++ {
		km.Apply(&frame)
		km.Advance()
		km.Press(core.ActionUp) // auto-repeat
	}
	km.Apply(&frame)
	if !frame.IsHeld(core.ActionUp) {
		t.Error("repeated presses should keep the direction held")
	}
}

func TestOppositeReleasesDirection(t *testing.T) {
	km := NewKeyMapper(0)
	frame := core.NewInputFrame()

	km.Press(core.ActionLeft)
	km.Press(core.ActionUp)
	km.Press(core.ActionRight)
	km.Apply(&frame)

	if frame.IsHeld(core.ActionLeft) {
		t.Error("pressing right should release left")
	}
	if !frame.IsHeld(core.ActionRight) || !frame.IsHeld(core.ActionUp) {
		t.Error("right and up should both be held for diagonal movement")
	}
}

func TestStopKeyReleasesAll(t *testing.T) {
	km := NewKeyMapper(0)
	frame := core.NewInputFrame()

	km.Press(core.ActionDown)
	km.Press(core.ActionLeft)
	km.MapKeyToFrame(runeKey('x'), &frame)
	km.Apply(&frame)

	if frame.Held.Size() != 0 {
		t.Errorf("held = %d directions after stop, want 0", frame.Held.Size())
	}
}

func TestEdgeActionsGoToFrame(t *testing.T) {
	km := NewKeyMapper(0)
	frame := core.NewInputFrame()

	if quit := km.MapKeyToFrame(runeKey('e'), &frame); quit {
		t.Error("interact is not a quit")
	}
	if !frame.Has(core.ActionInteract) {
		t.Error("interact should be set on the frame")
	}
	if quit := km.MapKeyToFrame(runeKey('q'), &frame); !quit {
		t.Error("q should request quit")
	}
}

func TestHoldTicksDefault(t *testing.T) {
	if got := NewKeyMapper(-1).HoldTicks(); got != DefaultHoldTicks {
		t.Errorf("HoldTicks() = %d, want %d", got, DefaultHoldTicks)
	}
}
