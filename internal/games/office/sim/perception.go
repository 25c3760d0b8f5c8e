package sim

import (
	"math"

	"github.com/vovakirdan/office-chase/internal/core"
	"github.com/vovakirdan/office-chase/internal/games/office/maze"
)

// Vision describes an executive's field of view.
type Vision struct {
	Distance  float64
	HalfAngle float64 // radians
}

// Vision returns the configured field of view.
func (c Config) Vision() Vision {
	return Vision{Distance: c.VisionDistance, HalfAngle: c.ConeHalfAngle}
}

// CanSee reports whether an observer at from, facing facing, sees target.
//
// The target must be at least one cell away (closer is a blind spot), no
// farther than the vision distance, inside the cone around facing, and every
// cell sampled along the segment between them must be open.
func CanSee(g *maze.Grid, from, facing, target core.Vec, v Vision) bool {
	d := from.Dist(target)
	if d < 1 || d > v.Distance {
		return false
	}

	diff := normalizeAngle(target.Sub(from).Angle() - facing.Angle())
	if math.Abs(diff) > v.HalfAngle {
		return false
	}

	return lineOfSight(g, from, target, d)
}

// lineOfSight samples ceil(d)-1 intermediate points between a and b.
func lineOfSight(g *maze.Grid, a, b core.Vec, d float64) bool {
	steps := int(math.Ceil(d))
	for i := 1; i < steps; i++ {
		x, y := a.Lerp(b, float64(i)/float64(steps)).Cell()
		if g.IsWall(x, y) {
			return false
		}
	}
	return true
}

// normalizeAngle maps a into (-π, π].
func normalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a <= -math.Pi {
		a += 2 * math.Pi
	} else if a > math.Pi {
		a -= 2 * math.Pi
	}
	return a
}

// Sees reports whether the executive currently sees target. Scared
// executives see nothing.
func (e Executive) Sees(g *maze.Grid, target core.Vec, v Vision) bool {
	if e.IsScared() {
		return false
	}
	return CanSee(g, e.Pos, e.Facing, target, v)
}

// VisibleCells returns the open cells whose centres the executive can see.
// Used for the vision cone overlay.
func VisibleCells(g *maze.Grid, e Executive, v Vision) []maze.Cell {
	if e.IsScared() {
		return nil
	}
	r := int(math.Ceil(v.Distance))
	cx, cy := e.Pos.Cell()

	var cells []maze.Cell
	for y := cy - r; y <= cy+r; y++ {
		for x := cx - r; x <= cx+r; x++ {
			if g.IsWall(x, y) {
				continue
			}
			if CanSee(g, e.Pos, e.Facing, core.CellCenter(x, y), v) {
				cells = append(cells, maze.C(x, y))
			}
		}
	}
	return cells
}
