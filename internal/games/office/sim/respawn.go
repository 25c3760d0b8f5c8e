package sim

import (
	"math"

	"github.com/vovakirdan/office-chase/internal/core"
	"github.com/vovakirdan/office-chase/internal/games/office/maze"
)

// SafeRespawn picks where a caught player reappears:
//  1. the spawn cell, if clear and far enough from every executive;
//  2. random reachable cells under the same constraint, a bounded number of times;
//  3. the clear corner pocket with the greatest total distance to executives;
//  4. the first clear cell in scan order;
//  5. the spawn cell regardless.
func SafeRespawn(g *maze.Grid, cfg Config, execs []Executive, rng Rand) core.Vec {
	fp := cfg.Footprint
	spawn := cfg.Spawn()

	safe := func(c maze.Cell) bool {
		if !g.CellClear(c, fp) {
			return false
		}
		pos := core.CellCenter(c.X, c.Y)
		for _, e := range execs {
			if pos.Dist(e.Pos) < cfg.RespawnMinDistance {
				return false
			}
		}
		return true
	}

	if safe(spawn) {
		return core.CellCenter(spawn.X, spawn.Y)
	}

	reach := ComputeReach(g, spawn, fp)
	for i := 0; i < cfg.RespawnAttempts; i++ {
		if c, ok := reach.Random(rng); ok && safe(c) {
			return core.CellCenter(c.X, c.Y)
		}
	}

	best, bestScore := maze.Cell{}, -1.0
	for _, c := range cornerTargets(g, cfg.Maze.PocketSize) {
		if !g.CellClear(c, fp) {
			continue
		}
		pos := core.CellCenter(c.X, c.Y)
		total := 0.0
		for _, e := range execs {
			total += pos.Dist(e.Pos)
		}
		if total > bestScore {
			best, bestScore = c, total
		}
	}
	if bestScore >= 0 {
		return core.CellCenter(best.X, best.Y)
	}

	if cells := reach.Cells(); len(cells) > 0 {
		return core.CellCenter(cells[0].X, cells[0].Y)
	}
	return core.CellCenter(spawn.X, spawn.Y)
}

// NearestExecutiveDistance returns the distance from pos to the closest
// executive, or +Inf when there are none.
func NearestExecutiveDistance(pos core.Vec, execs []Executive) float64 {
	best := math.Inf(1)
	for _, e := range execs {
		best = math.Min(best, pos.Dist(e.Pos))
	}
	return best
}
