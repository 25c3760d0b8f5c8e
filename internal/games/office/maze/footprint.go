package maze

import (
	"math"

	"github.com/vovakirdan/office-chase/internal/core"
)

// Footprint is the collision box of an entity, given as extents from its anchor.
// The anchor is the entity's continuous position; the box spans
// [x-Left, x+Right] × [y-Top, y+Bottom].
type Footprint struct {
	Left, Right, Top, Bottom float64
}

// Square returns a footprint extending half cells in every direction.
func Square(half float64) Footprint {
	return Footprint{Left: half, Right: half, Top: half, Bottom: half}
}

// Footprint presets. The simulation uses Small for every mover and prop.
var (
	Small = Square(0.7)  // 1.4 × 1.4 cells
	Large = Square(1.25) // 2.5 × 2.5 cells
	Coin  = Square(0.35)
)

// Box returns the footprint's bounding box at the given anchor.
func (f Footprint) Box(anchor core.Vec) core.Box {
	return core.Box{
		MinX: anchor.X - f.Left,
		MinY: anchor.Y - f.Top,
		MaxX: anchor.X + f.Right,
		MaxY: anchor.Y + f.Bottom,
	}
}

// IsFootprintClear reports whether no wall lies under the footprint at anchor.
//
// The scanned cell range is clamped to the grid, so cells outside the grid add
// no walls; callers moving an entity must also keep the footprint in bounds
// (see FootprintInBounds). The grid is never modified.
func (g *Grid) IsFootprintClear(anchor core.Vec, fp Footprint) bool {
	x0, y0, x1, y1 := fp.Box(anchor).CellRange()
	x0 = core.Clamp(x0, 0, g.W-1)
	x1 = core.Clamp(x1, 0, g.W-1)
	y0 = core.Clamp(y0, 0, g.H-1)
	y1 = core.Clamp(y1, 0, g.H-1)

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if g.walls[g.index(x, y)] {
				return false
			}
		}
	}
	return true
}

// IsFootprintClear is the free-function form of Grid.IsFootprintClear.
func IsFootprintClear(g *Grid, anchor core.Vec, fp Footprint) bool {
	return g.IsFootprintClear(anchor, fp)
}

// FootprintInBounds reports whether the whole footprint lies inside the grid.
func (g *Grid) FootprintInBounds(anchor core.Vec, fp Footprint) bool {
	b := fp.Box(anchor)
	return b.MinX >= 0 && b.MinY >= 0 && b.MaxX <= float64(g.W) && b.MaxY <= float64(g.H)
}

// ClampAnchor moves anchor the minimum distance needed to keep the footprint inside the grid.
func (g *Grid) ClampAnchor(anchor core.Vec, fp Footprint) core.Vec {
	return core.Vec{
		X: core.ClampF(anchor.X, fp.Left, math.Max(fp.Left, float64(g.W)-fp.Right)),
		Y: core.ClampF(anchor.Y, fp.Top, math.Max(fp.Top, float64(g.H)-fp.Bottom)),
	}
}

// CanOccupy combines the bounds and wall tests: the footprint is entirely
// inside the grid and over open cells.
func (g *Grid) CanOccupy(anchor core.Vec, fp Footprint) bool {
	return g.FootprintInBounds(anchor, fp) && g.IsFootprintClear(anchor, fp)
}

// CellClear reports whether an entity anchored at the centre of cell c fits.
func (g *Grid) CellClear(c Cell, fp Footprint) bool {
	return g.CanOccupy(core.CellCenter(c.X, c.Y), fp)
}
