package maze

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/office-chase/internal/core"
)

var (
	// ErrGridTooSmall is returned when the requested grid cannot hold the
	// spawn cross and corner pockets inside its border.
	ErrGridTooSmall = errors.New("maze: grid too small")
	// ErrSpawnOutOfRange is returned when the spawn cross would touch the border.
	ErrSpawnOutOfRange = errors.New("maze: spawn out of range")
)

// Rand is the randomness source the generator draws from.
// *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// Params controls maze generation.
type Params struct {
	Width, Height int
	Spawn         Cell

	// Coarse pass. Scale multiplies every coarse cell into a Scale×Scale block
	// of fine cells, so Scale 2 doubles wall thickness and corridor width.
	Scale            int
	VerticalEvery    int // columns between vertical struts
	VerticalSpan     int // rows per vertical strut slot
	HorizontalEvery  int // rows between horizontal struts
	HorizontalSpan   int // columns per horizontal strut slot
	StrutChance      float64
	ThinChance       float64 // chance a line drops every other wall run
	CrossWidth       int     // width of the spawn cross arms
	PocketSize       int     // side of the open corner pockets
	MinCorridorWidth int
	MaxCarves        int // 0 means Width*Height
}

// DefaultParams returns the standard office layout parameters for a grid of
// the given size with the spawn at its centre.
func DefaultParams(w, h int) Params {
	return Params{
		Width:            w,
		Height:           h,
		Spawn:            Cell{X: w / 2, Y: h / 2},
		Scale:            1,
		VerticalEvery:    4,
		VerticalSpan:     3,
		HorizontalEvery:  4,
		HorizontalSpan:   3,
		StrutChance:      0.65,
		ThinChance:       0.3,
		CrossWidth:       3,
		PocketSize:       3,
		MinCorridorWidth: 3,
	}
}

// Validate checks that the parameters describe a buildable maze.
func (p Params) Validate() error {
	minSide := 2*p.PocketSize + 3
	if p.Width < minSide || p.Height < minSide {
		return fmt.Errorf("%w: %dx%d, need at least %dx%d", ErrGridTooSmall, p.Width, p.Height, minSide, minSide)
	}
	half := p.CrossWidth / 2
	if p.Spawn.X-half < 1 || p.Spawn.X+half > p.Width-2 || p.Spawn.Y-half < 1 || p.Spawn.Y+half > p.Height-2 {
		return fmt.Errorf("%w: (%d,%d)", ErrSpawnOutOfRange, p.Spawn.X, p.Spawn.Y)
	}
	if p.Scale < 1 || p.VerticalEvery < 2 || p.HorizontalEvery < 2 || p.VerticalSpan < 1 || p.HorizontalSpan < 1 {
		return fmt.Errorf("maze: invalid strut layout (scale %d, every %d/%d, span %d/%d)",
			p.Scale, p.VerticalEvery, p.HorizontalEvery, p.VerticalSpan, p.HorizontalSpan)
	}
	if p.MinCorridorWidth < 1 || p.CrossWidth < 1 || p.PocketSize < 1 {
		return fmt.Errorf("maze: widths must be positive")
	}
	return nil
}

// Stats summarises what each generation phase did.
type Stats struct {
	Struts    int // coarse strut segments placed
	Thinned   int // wall runs removed by alternating thinning
	Opened    int // cells cleared to break 2×2 wall blocks
	Closed    int // short open runs turned into wall
	Carves    int // corridors cut to reconnect regions
	Sealed    int // unreachable cells walled off as a last resort
	Trimmed   int // thick-wall cells opened after runs were closed
	Open      int
	Reachable int
}

// Generate builds a maze that satisfies:
//   - the outer ring is all wall,
//   - the spawn cross and the four corner pockets are open,
//   - every open cell is 4-connected to the spawn,
//   - every maximal horizontal or vertical open run outside the reserved area
//     is at least MinCorridorWidth long.
//
// A nil rng seeds one from the clock.
func Generate(p Params, rng Rand) (*Grid, Stats, error) {
	var stats Stats
	if err := p.Validate(); err != nil {
		return nil, stats, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	g := NewGrid(p.Width, p.Height)
	stats.Struts = placeStruts(g, p, rng)
	stats.Thinned = thinRuns(g, p, rng)
	reserveOpenAreas(g, p)
	stats.Opened = breakWallBlocks(g, rng)
	stats.Closed = closeShortRuns(g, p.MinCorridorWidth)
	stats.Carves, stats.Sealed = connect(g, p)
	stats.Trimmed = trimThickWalls(g, p.MinCorridorWidth)
	sealBorder(g)

	stats.Open = g.OpenCount()
	stats.Reachable = g.ReachableCount(p.Spawn)
	return g, stats, nil
}

// placeStruts lays a coarse lattice of wall segments and scales it onto the
// interior of g. Returns the number of segments placed.
func placeStruts(g *Grid, p Params, rng Rand) int {
	iw, ih := g.W-2, g.H-2
	cw := (iw + p.Scale - 1) / p.Scale
	ch := (ih + p.Scale - 1) / p.Scale
	coarse := make([][]bool, ch)
	for y := range coarse {
		coarse[y] = make([]bool, cw)
	}

	placed := 0
	for cx := p.VerticalEvery - 1; cx < cw-1; cx += p.VerticalEvery {
		for cy := 0; cy < ch; cy += p.VerticalSpan {
			if rng.Float64() >= p.StrutChance {
				continue
			}
			length := 1 + rng.Intn(p.VerticalSpan)
			for k := 0; k < length && cy+k < ch; k++ {
				coarse[cy+k][cx] = true
			}
			placed++
		}
	}
	for cy := p.HorizontalEvery - 1; cy < ch-1; cy += p.HorizontalEvery {
		for cx := 0; cx < cw; cx += p.HorizontalSpan {
			if rng.Float64() >= p.StrutChance {
				continue
			}
			length := 1 + rng.Intn(p.HorizontalSpan)
			for k := 0; k < length && cx+k < cw; k++ {
				coarse[cy][cx+k] = true
			}
			placed++
		}
	}

	for y := 0; y < ih; y++ {
		for x := 0; x < iw; x++ {
			g.SetWall(x+1, y+1, coarse[y/p.Scale][x/p.Scale])
		}
	}
	sealBorder(g)
	return placed
}

// thinRuns removes every other wall run on randomly chosen interior lines.
// Cells that also belong to a perpendicular segment are kept so that no
// other segment is cut in two.
func thinRuns(g *Grid, p Params, rng Rand) int {
	removed := 0

	for y := 1; y < g.H-1; y++ {
		if rng.Float64() >= p.ThinChance {
			continue
		}
		parity := rng.Intn(2)
		for i, run := range wallRuns(g, y, true) {
			if i%2 != parity {
				continue
			}
			for x := run[0]; x <= run[1]; x++ {
				if interiorWall(g, x, y-1) || interiorWall(g, x, y+1) {
					continue
				}
				g.SetWall(x, y, false)
			}
			removed++
		}
	}

	for x := 1; x < g.W-1; x++ {
		if rng.Float64() >= p.ThinChance {
			continue
		}
		parity := rng.Intn(2)
		for i, run := range wallRuns(g, x, false) {
			if i%2 != parity {
				continue
			}
			for y := run[0]; y <= run[1]; y++ {
				if interiorWall(g, x-1, y) || interiorWall(g, x+1, y) {
					continue
				}
				g.SetWall(x, y, false)
			}
			removed++
		}
	}
	return removed
}

// wallRuns returns the [start, end] spans of interior wall runs of length two
// or more along row line (horizontal) or column line.
func wallRuns(g *Grid, line int, horizontal bool) [][2]int {
	limit := g.H - 1
	if horizontal {
		limit = g.W - 1
	}
	at := func(i int) bool {
		if horizontal {
			return g.IsWall(i, line)
		}
		return g.IsWall(line, i)
	}

	var runs [][2]int
	for i := 1; i < limit; {
		if !at(i) {
			i++
			continue
		}
		start := i
		for i < limit && at(i) {
			i++
		}
		if i-start >= 2 {
			runs = append(runs, [2]int{start, i - 1})
		}
	}
	return runs
}

func interiorWall(g *Grid, x, y int) bool {
	return !g.IsBorder(x, y) && g.IsWall(x, y)
}

// reserveOpenAreas opens and marks the spawn cross and the four corner pockets.
func reserveOpenAreas(g *Grid, p Params) {
	half := p.CrossWidth / 2
	lo, hi := -half, p.CrossWidth-half-1

	for x := 1; x < g.W-1; x++ {
		for d := lo; d <= hi; d++ {
			g.reserve(x, p.Spawn.Y+d)
		}
	}
	for y := 1; y < g.H-1; y++ {
		for d := lo; d <= hi; d++ {
			g.reserve(p.Spawn.X+d, y)
		}
	}

	corners := []Cell{
		{1, 1},
		{g.W - 1 - p.PocketSize, 1},
		{1, g.H - 1 - p.PocketSize},
		{g.W - 1 - p.PocketSize, g.H - 1 - p.PocketSize},
	}
	for _, c := range corners {
		for dy := 0; dy < p.PocketSize; dy++ {
			for dx := 0; dx < p.PocketSize; dx++ {
				g.reserve(c.X+dx, c.Y+dy)
			}
		}
	}
}

// breakWallBlocks clears one random non-border cell in every 2×2 all-wall window.
func breakWallBlocks(g *Grid, rng Rand) int {
	opened := 0
	for y := 0; y < g.H-1; y++ {
		for x := 0; x < g.W-1; x++ {
			if !g.IsWall(x, y) || !g.IsWall(x+1, y) || !g.IsWall(x, y+1) || !g.IsWall(x+1, y+1) {
				continue
			}
			var candidates []Cell
			for _, c := range []Cell{{x, y}, {x + 1, y}, {x, y + 1}, {x + 1, y + 1}} {
				if !g.IsBorder(c.X, c.Y) {
					candidates = append(candidates, c)
				}
			}
			if len(candidates) == 0 {
				continue
			}
			c := candidates[rng.Intn(len(candidates))]
			g.SetWall(c.X, c.Y, false)
			opened++
		}
	}
	return opened
}

// closeShortRuns walls off maximal open runs shorter than minWidth, in rows
// and columns, until nothing changes. Runs touching reserved cells are kept.
// Returns the number of cells closed.
func closeShortRuns(g *Grid, minWidth int) int {
	closed := 0
	for pass := 0; pass < g.W*g.H; pass++ {
		changed := 0
		for y := 1; y < g.H-1; y++ {
			changed += closeLine(g, y, true, minWidth)
		}
		for x := 1; x < g.W-1; x++ {
			changed += closeLine(g, x, false, minWidth)
		}
		closed += changed
		if changed == 0 {
			break
		}
	}
	return closed
}

func closeLine(g *Grid, line int, horizontal bool, minWidth int) int {
	limit := g.H - 1
	if horizontal {
		limit = g.W - 1
	}
	cell := func(i int) (int, int) {
		if horizontal {
			return i, line
		}
		return line, i
	}

	closed := 0
	for i := 1; i < limit; {
		if x, y := cell(i); g.IsWall(x, y) {
			i++
			continue
		}
		start := i
		touchesReserved := false
		for i < limit {
			x, y := cell(i)
			if g.IsWall(x, y) {
				break
			}
			if g.IsReserved(x, y) {
				touchesReserved = true
			}
			i++
		}
		if i-start >= minWidth || touchesReserved {
			continue
		}
		for k := start; k < i; k++ {
			x, y := cell(k)
			g.SetWall(x, y, true)
			closed++
		}
	}
	return closed
}

// connect carves L-shaped corridors from unreachable open cells back to the
// spawn until every open cell is reachable. When an L-carve makes no progress
// a straight corridor to the spawn row or column is tried. If that fails too,
// or the carve budget runs out, the remaining unreachable cells are sealed.
func connect(g *Grid, p Params) (carves, sealed int) {
	budget := p.MaxCarves
	if budget <= 0 {
		budget = g.W * g.H
	}
	half := p.MinCorridorWidth / 2
	if half < 1 {
		half = 1
	}

	reach := g.Reachable(p.Spawn)
	reached := count(reach)
	for carves < budget {
		target, ok := firstUnreached(g, reach)
		if !ok {
			return carves, 0
		}
		carveL(g, target, p.Spawn, half)
		carves++

		reach = g.Reachable(p.Spawn)
		n := count(reach)
		if n <= reached {
			carveStraight(g, target, p.Spawn, half)
			carves++
			reach = g.Reachable(p.Spawn)
			if n = count(reach); n <= reached {
				break
			}
		}
		reached = n
	}

	for y := 1; y < g.H-1; y++ {
		for x := 1; x < g.W-1; x++ {
			if g.IsOpen(x, y) && !reach[g.index(x, y)] {
				g.SetWall(x, y, true)
				sealed++
			}
		}
	}
	return carves, sealed
}

func firstUnreached(g *Grid, reach []bool) (Cell, bool) {
	for y := 1; y < g.H-1; y++ {
		for x := 1; x < g.W-1; x++ {
			if g.IsOpen(x, y) && !reach[g.index(x, y)] {
				return Cell{x, y}, true
			}
		}
	}
	return Cell{}, false
}

// carveL opens a corridor (2*half+1) cells wide from `from` along its row to
// the spawn column, then along that column to the spawn row.
func carveL(g *Grid, from, to Cell, half int) {
	cx := clampCentre(from.X, g.W, half)
	cy := clampCentre(from.Y, g.H, half)
	tx := clampCentre(to.X, g.W, half)
	ty := clampCentre(to.Y, g.H, half)

	// reach the clamped corridor centre from the original cell
	openRect(g, min(from.X, cx), min(from.Y, cy), max(from.X, cx), max(from.Y, cy))
	openRect(g, min(cx, tx)-half, cy-half, max(cx, tx)+half, cy+half)
	openRect(g, tx-half, min(cy, ty)-half, tx+half, max(cy, ty)+half)
}

// carveStraight opens a corridor (2*half+1) cells wide from `from` straight to
// whichever of the spawn row or spawn column is nearer.
func carveStraight(g *Grid, from, to Cell, half int) {
	cx := clampCentre(from.X, g.W, half)
	cy := clampCentre(from.Y, g.H, half)
	tx := clampCentre(to.X, g.W, half)
	ty := clampCentre(to.Y, g.H, half)

	openRect(g, min(from.X, cx), min(from.Y, cy), max(from.X, cx), max(from.Y, cy))
	if core.Abs(cy-ty) <= core.Abs(cx-tx) {
		openRect(g, cx-half, min(cy, ty)-half, cx+half, max(cy, ty)+half)
		return
	}
	openRect(g, min(cx, tx)-half, cy-half, max(cx, tx)+half, cy+half)
}

func clampCentre(v, size, half int) int {
	lo, hi := 1+half, size-2-half
	if hi < lo {
		return size / 2
	}
	return max(lo, min(v, hi))
}

func openRect(g *Grid, x0, y0, x1, y1 int) {
	for y := max(y0, 1); y <= min(y1, g.H-2); y++ {
		for x := max(x0, 1); x <= min(x1, g.W-2); x++ {
			g.SetWall(x, y, false)
		}
	}
}

func sealBorder(g *Grid) {
	for x := 0; x < g.W; x++ {
		g.SetWall(x, 0, true)
		g.SetWall(x, g.H-1, true)
	}
	for y := 0; y < g.H; y++ {
		g.SetWall(0, y, true)
		g.SetWall(g.W-1, y, true)
	}
}

func count(marks []bool) int {
	n := 0
	for _, m := range marks {
		if m {
			n++
		}
	}
	return n
}

// trimThickWalls opens interior cells of 2×2 all-wall windows wherever the
// cell joins open runs at least minWidth long in both its row and column.
// Opening only merges runs, so corridor width and connectivity both hold.
func trimThickWalls(g *Grid, minWidth int) int {
	opened := 0
	for {
		changed := false
		for y := 1; y < g.H-2; y++ {
			for x := 1; x < g.W-2; x++ {
				if !g.IsWall(x, y) || !g.IsWall(x+1, y) || !g.IsWall(x, y+1) || !g.IsWall(x+1, y+1) {
					continue
				}
				for _, c := range []Cell{{x, y}, {x + 1, y}, {x, y + 1}, {x + 1, y + 1}} {
					if canOpen(g, c, minWidth) {
						g.SetWall(c.X, c.Y, false)
						opened++
						changed = true
						break
					}
				}
			}
		}
		if !changed {
			return opened
		}
	}
}

// canOpen reports whether opening wall cell c leaves both the row run and
// the column run through it at least minWidth long.
func canOpen(g *Grid, c Cell, minWidth int) bool {
	if g.IsBorder(c.X, c.Y) || !g.IsWall(c.X, c.Y) {
		return false
	}
	across := 1 + openRun(g, c, -1, 0) + openRun(g, c, 1, 0)
	down := 1 + openRun(g, c, 0, -1) + openRun(g, c, 0, 1)
	return across >= minWidth && down >= minWidth
}

// openRun counts consecutive open cells from c (exclusive) in direction dx, dy.
func openRun(g *Grid, c Cell, dx, dy int) int {
	n := 0
	for x, y := c.X+dx, c.Y+dy; g.InBounds(x, y) && g.IsOpen(x, y); x, y = x+dx, y+dy {
		n++
	}
	return n
}
