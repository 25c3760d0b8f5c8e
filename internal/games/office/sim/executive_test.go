package sim

import (
	"testing"

	"github.com/vovakirdan/office-chase/internal/core"
)

func TestPatrolFollowsCommitment(t *testing.T) {
	g := room(20, 12)
	cfg := DefaultConfig()
	e := Executive{Pos: at(8, 6), Facing: core.V(1, 0), Commit: 5}

	patrol(g, &e, cfg, 1, fixedRand{f: 0})

	if e.Pos != core.V(9, 6.5) {
		t.Errorf("Pos = %v, want half a cell east", e.Pos)
	}
	if e.Commit != 4 {
		t.Errorf("Commit = %d, want 4", e.Commit)
	}
}

func TestPatrolGateClosed(t *testing.T) {
	g := room(20, 12)
	cfg := DefaultConfig()
	e := Executive{Pos: at(8, 6), Facing: core.V(1, 0), Commit: 5}

	patrol(g, &e, cfg, 1, fixedRand{f: 0.99})

	if e.Pos != at(8, 6) || e.Commit != 5 {
		t.Errorf("executive moved with the gate closed: %+v", e)
	}
}

func TestPatrolPicksClearDirection(t *testing.T) {
	g := room(20, 12)
	cfg := DefaultConfig()
	for y := 0; y < 12; y++ {
		g.SetWall(10, y, true)
	}
	// footprint flush against the wall column, so east is blocked
	start := core.V(10-cfg.Footprint.Right, 6.5)
	e := Executive{Pos: start, Facing: core.V(-1, 0)}

	patrol(g, &e, cfg, 1, fixedRand{f: 0})

	if e.Facing != core.V(0, 1) {
		t.Errorf("Facing = %v, want south (first clear cardinal after east)", e.Facing)
	}
	if e.Commit != cfg.CommitTicks-1 {
		t.Errorf("Commit = %d, want %d", e.Commit, cfg.CommitTicks-1)
	}
	if want := start.Add(core.V(0, cfg.PatrolStep)); e.Pos != want {
		t.Errorf("Pos = %v, want %v", e.Pos, want)
	}
}

func TestPatrolObstructionDropsCommitment(t *testing.T) {
	g := room(20, 12)
	cfg := DefaultConfig()
	g.SetWall(10, 6, true)
	start := core.V(10-cfg.Footprint.Right, 6.5)
	e := Executive{Pos: start, Facing: core.V(1, 0), Commit: 7}

	patrol(g, &e, cfg, 1, fixedRand{f: 0})

	if e.Commit != 0 {
		t.Errorf("Commit = %d, want 0 after obstruction", e.Commit)
	}
	if e.Pos != start {
		t.Errorf("executive moved into a wall: %v", e.Pos)
	}
}

func TestFleeMovesAwayFromPlayer(t *testing.T) {
	g := room(20, 12)
	cfg := DefaultConfig()
	e := Executive{Pos: at(10, 6), Mode: Scared, ScaredTicks: 50}

	flee(g, &e, at(8, 4), cfg)

	want := at(10, 6).Add(core.V(cfg.FleeStep, cfg.FleeStep))
	if e.Pos != want {
		t.Errorf("Pos = %v, want %v", e.Pos, want)
	}
}

func TestFleeBlockedStaysPut(t *testing.T) {
	g := room(20, 12)
	cfg := DefaultConfig()
	// footprint already touches the east border
	start := core.V(float64(g.W-1)-cfg.Footprint.Right, 6.5)
	e := Executive{Pos: start, Mode: Scared, ScaredTicks: 50}

	flee(g, &e, at(10, 6), cfg)

	if e.Pos != start {
		t.Errorf("Pos = %v, want unchanged %v", e.Pos, start)
	}
}

func TestScaredCountdownReturnsToPatrol(t *testing.T) {
	g := room(20, 12)
	cfg := DefaultConfig()
	e := Executive{Pos: at(10, 6), Mode: Scared, ScaredTicks: 1, Commit: 9}

	updateExecutive(g, &e, at(4, 6), cfg, 1, fixedRand{f: 0.99})

	if e.IsScared() {
		t.Error("executive should be patrolling once the countdown ends")
	}
	if e.Commit != 0 {
		t.Errorf("Commit = %d, want reset to 0", e.Commit)
	}
}

func TestScare(t *testing.T) {
	cfg := DefaultConfig()
	e := Executive{Commit: 4}
	scare(&e, cfg)
	if !e.IsScared() || e.ScaredTicks != cfg.ScaredTicks || e.Commit != 0 {
		t.Errorf("scare produced %+v", e)
	}
}

func TestMoveChanceScalesWithLevel(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.MoveChance(2) <= cfg.MoveChance(1) {
		t.Error("move chance should grow with level")
	}
	if got := cfg.MoveChance(1000); got != cfg.MoveChanceMax {
		t.Errorf("MoveChance(1000) = %v, want cap %v", got, cfg.MoveChanceMax)
	}
}
