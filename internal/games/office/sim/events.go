package sim

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/vovakirdan/office-chase/internal/core"
)

// DamageEvent records a prop smashed by the player.
type DamageEvent struct {
	ID   int
	Kind PropKind
}

// Events is what happened during one tick, for score keeping, sound and
// visual collaborators.
type Events struct {
	ScoreDelta       int
	LifeLost         bool
	CaughtBy         int // executive ID when LifeLost
	Scared           []int
	Damaged          []DamageEvent
	CoinsSpawned     int
	CoinsCollected   int
	CoinsExpired     int
	PowerUpsConsumed int
	PropsRemoved     int
	ItemsDropped     int
}

// TargetsSmashed counts computers and wall art damaged this tick.
func (e Events) TargetsSmashed() int {
	n := 0
	for _, d := range e.Damaged {
		if d.Kind.Droppable() {
			n++
		}
	}
	return n
}

// Empty reports whether nothing noteworthy happened.
func (e Events) Empty() bool {
	return e.ScoreDelta == 0 && !e.LifeLost && len(e.Scared) == 0 && len(e.Damaged) == 0 &&
		e.CoinsSpawned == 0 && e.CoinsCollected == 0 && e.CoinsExpired == 0 &&
		e.PowerUpsConsumed == 0 && e.PropsRemoved == 0 && e.ItemsDropped == 0
}

// Input is the player input sampled for one tick: held directions are level
// sensitive, Interact is edge triggered.
type Input struct {
	Held     mapset.Set[core.Action]
	Interact bool
}

// NewInput builds an input with the given directions held.
func NewInput(interact bool, held ...core.Action) Input {
	in := Input{Held: mapset.New[core.Action](), Interact: interact}
	for _, a := range held {
		in.Held.Put(a)
	}
	return in
}

// InputFromFrame converts a platform input frame.
func InputFromFrame(f core.InputFrame) Input {
	return Input{Held: f.Held, Interact: f.Has(core.ActionInteract)}
}

// Direction sums the held directions into a vector with components in
// {-1, 0, 1}. Opposite directions cancel.
func (in Input) Direction() core.Vec {
	var d core.Vec
	if in.Held.Has(core.ActionLeft) {
		d.X--
	}
	if in.Held.Has(core.ActionRight) {
		d.X++
	}
	if in.Held.Has(core.ActionUp) {
		d.Y--
	}
	if in.Held.Has(core.ActionDown) {
		d.Y++
	}
	return d
}
