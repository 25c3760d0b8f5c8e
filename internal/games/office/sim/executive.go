package sim

import (
	"github.com/vovakirdan/office-chase/internal/core"
	"github.com/vovakirdan/office-chase/internal/games/office/maze"
)

// updateExecutive advances one executive by a tick: fleeing while scared,
// patrolling otherwise.
func updateExecutive(g *maze.Grid, e *Executive, player core.Vec, cfg Config, level int, rng Rand) {
	if e.IsScared() {
		flee(g, e, player, cfg)
		e.ScaredTicks = core.Countdown(e.ScaredTicks)
		if e.ScaredTicks == 0 {
			e.Mode = Patrolling
			e.Commit = 0
		}
		return
	}
	patrol(g, e, cfg, level, rng)
}

// patrol moves the executive half a cell along a committed direction when the
// level-scaled movement gate opens. Without a commitment it shuffles the four
// cardinals and commits to the first one that is clear.
func patrol(g *maze.Grid, e *Executive, cfg Config, level int, rng Rand) {
	if rng.Float64() >= cfg.MoveChance(level) {
		return
	}

	if e.Commit <= 0 {
		dirs := Cardinals
		rng.Shuffle(len(dirs), func(i, j int) { dirs[i], dirs[j] = dirs[j], dirs[i] })
		for _, d := range dirs {
			if g.CanOccupy(e.Pos.Add(d.Scale(cfg.PatrolStep)), cfg.Footprint) {
				e.Facing = d
				e.Commit = cfg.CommitTicks
				break
			}
		}
		if e.Commit <= 0 {
			return
		}
	}

	next := e.Pos.Add(e.Facing.Scale(cfg.PatrolStep))
	if !g.CanOccupy(next, cfg.Footprint) {
		e.Commit = 0
		return
	}
	e.Pos = next
	e.Commit--
}

// flee steps directly away from the player on each axis, staying put when the
// destination is blocked.
func flee(g *maze.Grid, e *Executive, player core.Vec, cfg Config) {
	away := core.V(core.Sign(e.Pos.X-player.X), core.Sign(e.Pos.Y-player.Y))
	if away == (core.Vec{}) {
		return
	}
	e.Facing = away

	next := g.ClampAnchor(e.Pos.Add(away.Scale(cfg.FleeStep)), cfg.Footprint)
	if g.IsFootprintClear(next, cfg.Footprint) {
		e.Pos = next
	}
}

// scare flips a patrolling executive into the scared state.
func scare(e *Executive, cfg Config) {
	e.Mode = Scared
	e.ScaredTicks = cfg.ScaredTicks
	e.Commit = 0
}
