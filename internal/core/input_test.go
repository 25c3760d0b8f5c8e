package core

import "testing"

func TestInputFrameEdgeActions(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionInteract)

	if !f.Has(ActionInteract) {
		t.Fatal("Interact should be set")
	}

	f.Clear()
	if f.Has(ActionInteract) {
		t.Error("Clear should drop edge-triggered actions")
	}
}

func TestInputFrameHeldSurvivesClear(t *testing.T) {
	f := NewInputFrame()
	f.Hold(ActionLeft)
	f.Set(ActionPause)
	f.Clear()

	if !f.IsHeld(ActionLeft) {
		t.Error("held directions must persist across Clear")
	}

	f.Release(ActionLeft)
	if f.IsHeld(ActionLeft) {
		t.Error("Release should clear the held direction")
	}
}

func TestInputFrameZeroValueHold(t *testing.T) {
	var f InputFrame
	if f.IsHeld(ActionUp) || f.Has(ActionUp) {
		t.Fatal("zero-value frame should report nothing")
	}

	f.Hold(ActionUp)
	f.Set(ActionInteract)
	if !f.IsHeld(ActionUp) || !f.Has(ActionInteract) {
		t.Error("zero-value frame should accept holds and actions")
	}
}

func TestInputFrameClone(t *testing.T) {
	f := NewInputFrame()
	f.Hold(ActionRight)
	f.Set(ActionInteract)

	c := f.Clone()
	f.Release(ActionRight)
	f.Clear()

	if !c.IsHeld(ActionRight) || !c.Has(ActionInteract) {
		t.Error("clone should be independent of the original")
	}
}

func TestActionOpposite(t *testing.T) {
	tests := []struct {
		in, expected Action
	}{
		{ActionUp, ActionDown},
		{ActionDown, ActionUp},
		{ActionLeft, ActionRight},
		{ActionRight, ActionLeft},
		{ActionInteract, ActionNone},
	}
	for _, tc := range tests {
		if got := tc.in.Opposite(); got != tc.expected {
			t.Errorf("%v.Opposite() = %v, expected %v", tc.in, got, tc.expected)
		}
	}
	if !ActionLeft.IsDirection() || ActionPause.IsDirection() {
		t.Error("IsDirection misclassified actions")
	}
}
