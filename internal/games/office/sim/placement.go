package sim

import (
	"errors"
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/vovakirdan/office-chase/internal/core"
	"github.com/vovakirdan/office-chase/internal/games/office/maze"
)

// ErrNoLegalCell means every placement fallback was exhausted. The maze is
// too small or too dense for the requested entities.
var ErrNoLegalCell = errors.New("sim: no legal cell")

// Rand is the randomness source of the simulation. *rand.Rand satisfies it.
type Rand interface {
	maze.Rand
	Shuffle(n int, swap func(i, j int))
}

// Counts says how many entities of each kind to place.
type Counts struct {
	Executives int
	Computers  int
	WallArt    int
	Coworkers  int
	Coffees    int
}

// Counts returns the configured entity counts.
func (c Config) Counts() Counts {
	return Counts{
		Executives: c.Executives,
		Computers:  c.Computers,
		WallArt:    c.WallArt,
		Coworkers:  c.Coworkers,
		Coffees:    c.Coffees,
	}
}

// Placement is the initial entity layout of a level.
type Placement struct {
	Executives []Executive
	Props      []Prop
	PowerUps   []PowerUp
	Fallbacks  int // entities that needed a ring search, scan or relocation
}

// Reach is the set of cells from which the spawn can be reached by an entity
// anchored at cell centres with a given footprint.
type Reach struct {
	set   mapset.Set[maze.Cell]
	cells []maze.Cell // scan order
}

// ComputeReach flood-fills footprint-clear cells from spawn.
func ComputeReach(g *maze.Grid, spawn maze.Cell, fp maze.Footprint) Reach {
	marks := g.FloodFill(spawn, func(x, y int) bool {
		return g.CellClear(maze.C(x, y), fp)
	})
	r := Reach{set: mapset.New[maze.Cell]()}
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			if marks[y*g.W+x] {
				c := maze.C(x, y)
				r.set.Put(c)
				r.cells = append(r.cells, c)
			}
		}
	}
	return r
}

// Has reports whether c is reachable.
func (r Reach) Has(c maze.Cell) bool { return r.set.Has(c) }

// Len returns the number of reachable cells.
func (r Reach) Len() int { return len(r.cells) }

// Cells returns reachable cells in row-major order.
func (r Reach) Cells() []maze.Cell { return r.cells }

// Random returns a uniformly chosen reachable cell.
func (r Reach) Random(rng Rand) (maze.Cell, bool) {
	if len(r.cells) == 0 {
		return maze.Cell{}, false
	}
	return r.cells[rng.Intn(len(r.cells))], true
}

// occupancy tracks footprints of placed non-coin entities.
type occupancy struct {
	boxes []core.Box
}

func (o *occupancy) add(pos core.Vec, fp maze.Footprint) {
	o.boxes = append(o.boxes, fp.Box(pos))
}

// overlaps reports whether a footprint at pos intersects a placed entity.
// A non-nil self is skipped once so an entity never blocks its own move.
func (o *occupancy) overlaps(pos core.Vec, fp maze.Footprint, self *core.Box) bool {
	b := fp.Box(pos)
	skipped := false
	for _, other := range o.boxes {
		if self != nil && !skipped && other == *self {
			skipped = true
			continue
		}
		if b.Intersects(other) {
			return true
		}
	}
	return false
}

// move replaces the box at from with one at to.
func (o *occupancy) move(from, to core.Box) {
	for i, b := range o.boxes {
		if b == from {
			o.boxes[i] = to
			return
		}
	}
	o.boxes = append(o.boxes, to)
}

// PlaceEntities lays out executives, props and coffee for a new level.
// Every entity ends on a footprint-clear cell from which the spawn is
// reachable. ErrNoLegalCell is returned only when no such cell remains.
func PlaceEntities(g *maze.Grid, cfg Config, counts Counts, rng Rand) (Placement, error) {
	spawn := cfg.Spawn()
	fp := cfg.Footprint
	reach := ComputeReach(g, spawn, fp)
	if !reach.Has(spawn) {
		return Placement{}, fmt.Errorf("%w: spawn (%d,%d) is blocked", ErrNoLegalCell, spawn.X, spawn.Y)
	}

	var (
		pl  Placement
		occ occupancy
	)

	legal := func(c maze.Cell) bool {
		return reach.Has(c) && !occ.overlaps(core.CellCenter(c.X, c.Y), fp, nil)
	}

	targets := cornerTargets(g, cfg.Maze.PocketSize)
	for i := 0; i < counts.Executives; i++ {
		target := targets[i%len(targets)]
		c, fallback, ok := placeNear(g, target, 4, legal)
		if !ok {
			return pl, fmt.Errorf("%w: executive %d", ErrNoLegalCell, i)
		}
		if fallback {
			pl.Fallbacks++
		}
		pos := core.CellCenter(c.X, c.Y)
		occ.add(pos, fp)
		pl.Executives = append(pl.Executives, Executive{
			ID:     i + 1,
			Name:   cfg.ExecutiveName(i),
			Pos:    pos,
			Facing: Cardinals[rng.Intn(len(Cardinals))],
		})
	}

	itemFits := func(c maze.Cell, self *core.Box) bool {
		if !g.CellClear(c, fp) || core.Abs(c.X-spawn.X) <= cfg.SpawnClearance && core.Abs(c.Y-spawn.Y) <= cfg.SpawnClearance {
			return false
		}
		return !occ.overlaps(core.CellCenter(c.X, c.Y), fp, self)
	}
	itemLegal := func(c maze.Cell) bool { return itemFits(c, nil) }

	var positions []*core.Vec
	kinds := []struct {
		kind  PropKind
		count int
	}{
		{Computer, counts.Computers},
		{WallArt, counts.WallArt},
		{Coworker, counts.Coworkers},
	}
	for _, k := range kinds {
		for i := 0; i < k.count; i++ {
			c, fallback, err := sampleCell(g, reach, cfg.PlacementAttempts, rng, itemLegal)
			if err != nil {
				return pl, fmt.Errorf("%s %d: %w", k.kind, i, err)
			}
			if fallback {
				pl.Fallbacks++
			}
			pos := core.CellCenter(c.X, c.Y)
			occ.add(pos, fp)
			pl.Props = append(pl.Props, Prop{Kind: k.kind, Pos: pos})
		}
	}
	for i := 0; i < counts.Coffees; i++ {
		c, fallback, err := sampleCell(g, reach, cfg.PlacementAttempts, rng, itemLegal)
		if err != nil {
			return pl, fmt.Errorf("coffee %d: %w", i, err)
		}
		if fallback {
			pl.Fallbacks++
		}
		pos := core.CellCenter(c.X, c.Y)
		occ.add(pos, fp)
		pl.PowerUps = append(pl.PowerUps, PowerUp{Pos: pos})
	}

	for i := range pl.Props {
		positions = append(positions, &pl.Props[i].Pos)
	}
	for i := range pl.PowerUps {
		positions = append(positions, &pl.PowerUps[i].Pos)
	}
	relocated, err := relocateUnreachable(positions, reach, cfg.PlacementAttempts, rng, &occ, fp, func(c maze.Cell, self core.Box) bool {
		return itemFits(c, &self)
	})
	if err != nil {
		return pl, err
	}
	pl.Fallbacks += relocated
	return pl, nil
}

// cornerTargets returns the centres of the four corner pockets.
func cornerTargets(g *maze.Grid, pocket int) []maze.Cell {
	lo := 1 + pocket/2
	return []maze.Cell{
		{X: lo, Y: lo},
		{X: g.W - 2 - pocket/2, Y: lo},
		{X: lo, Y: g.H - 2 - pocket/2},
		{X: g.W - 2 - pocket/2, Y: g.H - 2 - pocket/2},
	}
}

// placeNear tries target, then square rings of radius 1..maxRing around it,
// then every cell of the grid in row-major order.
func placeNear(g *maze.Grid, target maze.Cell, maxRing int, legal func(maze.Cell) bool) (maze.Cell, bool, bool) {
	if legal(target) {
		return target, false, true
	}
	for r := 1; r <= maxRing; r++ {
		for _, c := range ring(target, r) {
			if g.InBounds(c.X, c.Y) && legal(c) {
				return c, true, true
			}
		}
	}
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			if c := maze.C(x, y); legal(c) {
				return c, true, true
			}
		}
	}
	return maze.Cell{}, true, false
}

// ring lists the cells at exactly Chebyshev distance r from c, row by row.
func ring(c maze.Cell, r int) []maze.Cell {
	if r == 0 {
		return []maze.Cell{c}
	}
	out := make([]maze.Cell, 0, 8*r)
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if core.Abs(dx) == r || core.Abs(dy) == r {
				out = append(out, maze.C(c.X+dx, c.Y+dy))
			}
		}
	}
	return out
}

// sampleCell rejection-samples interior cells, then falls back to scanning
// reachable cells. The second result reports whether the fallback was used.
func sampleCell(g *maze.Grid, reach Reach, attempts int, rng Rand, legal func(maze.Cell) bool) (maze.Cell, bool, error) {
	for i := 0; i < attempts; i++ {
		c := maze.C(1+rng.Intn(g.W-2), 1+rng.Intn(g.H-2))
		if legal(c) {
			return c, false, nil
		}
	}
	for _, c := range reach.Cells() {
		if legal(c) {
			return c, true, nil
		}
	}
	return maze.Cell{}, true, ErrNoLegalCell
}

// relocateUnreachable moves items whose cell is not in reach onto random
// reachable cells accepted by fits, falling back to the first such cell in
// scan order. fits receives the item's current box so it can ignore it.
func relocateUnreachable(positions []*core.Vec, reach Reach, attempts int, rng Rand, occ *occupancy, fp maze.Footprint, fits func(c maze.Cell, self core.Box) bool) (int, error) {
	moved := 0
	for _, pos := range positions {
		cx, cy := pos.Cell()
		if reach.Has(maze.C(cx, cy)) {
			continue
		}
		self := fp.Box(*pos)
		ok := func(c maze.Cell) bool { return reach.Has(c) && fits(c, self) }

		dest, found := maze.Cell{}, false
		for i := 0; i < attempts && !found; i++ {
			if c, picked := reach.Random(rng); picked && ok(c) {
				dest, found = c, true
			}
		}
		for _, c := range reach.Cells() {
			if found {
				break
			}
			if ok(c) {
				dest, found = c, true
			}
		}
		if !found {
			return moved, fmt.Errorf("%w: relocating item at (%d,%d)", ErrNoLegalCell, cx, cy)
		}
		*pos = core.CellCenter(dest.X, dest.Y)
		occ.move(self, fp.Box(*pos))
		moved++
	}
	return moved, nil
}
