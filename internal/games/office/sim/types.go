// Package sim is the office chase simulation: entity placement, executive
// perception and movement, the item and coin economy, and the fixed-step tick.
//
// The package is pure. Tick takes the previous state and returns a new one,
// leaving its argument untouched, so renderers can hold on to any state they
// were handed without locking.
package sim

import (
	"math"

	"github.com/vovakirdan/office-chase/internal/core"
	"github.com/vovakirdan/office-chase/internal/games/office/maze"
)

// Cardinal unit directions in a fixed order (east, south, west, north).
var Cardinals = [4]core.Vec{{X: 1}, {Y: 1}, {X: -1}, {Y: -1}}

// Player is the character controlled by the user.
type Player struct {
	Pos    core.Vec
	Facing core.Vec // last movement direction

	BoostTicks      int // speed boost from coffee
	InvincibleTicks int // after a catch
	CooldownTicks   int // short post-catch window where catches are ignored
}

// Boosted reports whether a speed boost is active.
func (p Player) Boosted() bool { return p.BoostTicks > 0 }

// Invincible reports whether the player is immune to catches.
func (p Player) Invincible() bool { return p.InvincibleTicks > 0 }

// ExecutiveMode is the executive state machine.
type ExecutiveMode int

const (
	Patrolling ExecutiveMode = iota
	Scared
)

func (m ExecutiveMode) String() string {
	if m == Scared {
		return "scared"
	}
	return "patrolling"
}

// Executive is a patrolling NPC whose vision cone catches the player.
type Executive struct {
	ID     int
	Name   string
	Pos    core.Vec
	Facing core.Vec

	Mode        ExecutiveMode
	ScaredTicks int
	Commit      int // ticks left in the current patrol direction
}

// IsScared reports whether the executive is fleeing.
func (e Executive) IsScared() bool { return e.Mode == Scared }

// PropKind enumerates damageable office furniture.
type PropKind int

const (
	Computer PropKind = iota
	WallArt
	Coworker
)

func (k PropKind) String() string {
	switch k {
	case Computer:
		return "computer"
	case WallArt:
		return "wall-art"
	case Coworker:
		return "coworker"
	default:
		return "unknown"
	}
}

// Droppable reports whether the kind counts toward the scheduled-drop cap and
// toward clearing a level.
func (k PropKind) Droppable() bool { return k == Computer || k == WallArt }

// Prop is a damageable static collectible. Damaged props wait out DamageTicks,
// then coworkers recover and everything else is removed.
type Prop struct {
	ID          int
	Kind        PropKind
	Pos         core.Vec
	Damaged     bool
	DamageTicks int
}

// PowerUp is a consumable. Coffee is the only kind; drinking it removes it.
type PowerUp struct {
	ID  int
	Pos core.Vec
}

// Coin is transient currency. A coin bounces from its origin for a fixed
// number of ticks, can then be picked up, and disappears when it expires.
// A collected coin lingers while its pop animation plays.
type Coin struct {
	ID        int
	Pos       core.Vec
	From      core.Vec // bounce origin
	Value     int
	Bounce    int // ticks of spawn animation elapsed
	Pop       int // ticks of collect animation elapsed
	Expire    int
	Collected bool
}

// Landed reports whether the spawn animation has finished.
func (c Coin) Landed(bounceTicks int) bool { return c.Bounce >= bounceTicks }

// BounceProgress returns spawn animation progress in [0, 1].
func (c Coin) BounceProgress(bounceTicks int) float64 {
	if bounceTicks <= 0 {
		return 1
	}
	return math.Min(1, float64(c.Bounce)/float64(bounceTicks))
}

// PopProgress returns collect animation progress in [0, 1].
func (c Coin) PopProgress(popTicks int) float64 {
	if popTicks <= 0 {
		return 1
	}
	return math.Min(1, float64(c.Pop)/float64(popTicks))
}

// State is one immutable snapshot of the simulation.
type State struct {
	Cfg       Config
	Grid      *maze.Grid // shared read-only between snapshots
	MazeStats maze.Stats
	Fallbacks int // placement fallbacks used when the level was built
	Level     int
	Ticks     uint64

	Player     Player
	Executives []Executive
	Props      []Prop
	PowerUps   []PowerUp
	Coins      []Coin

	DropTimer     int
	CoinDropTimer int
	NextID        int
}

// Clone returns a deep copy of the entity state. The grid is shared.
func (s *State) Clone() *State {
	c := *s
	c.Executives = append([]Executive(nil), s.Executives...)
	c.Props = append([]Prop(nil), s.Props...)
	c.PowerUps = append([]PowerUp(nil), s.PowerUps...)
	c.Coins = append([]Coin(nil), s.Coins...)
	return &c
}

func (s *State) newID() int {
	s.NextID++
	return s.NextID
}

// LiveDroppables counts undamaged computers and wall art plus coffee on the floor.
func (s *State) LiveDroppables() int {
	n := len(s.PowerUps)
	for _, p := range s.Props {
		if p.Kind.Droppable() && !p.Damaged {
			n++
		}
	}
	return n
}

// RemainingTargets counts undamaged computers and wall art.
func (s *State) RemainingTargets() int {
	n := 0
	for _, p := range s.Props {
		if p.Kind.Droppable() && !p.Damaged {
			n++
		}
	}
	return n
}
