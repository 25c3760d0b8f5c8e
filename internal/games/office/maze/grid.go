// Package maze builds and queries the office floor plan: a boolean wall grid
// with guaranteed connectivity and minimum corridor width, plus the footprint
// occupancy test every moving or placed entity relies on.
package maze

import (
	"fmt"
	"strings"
)

// Cell addresses a single grid cell.
type Cell struct {
	X, Y int
}

// C is shorthand for constructing a Cell.
func C(x, y int) Cell {
	return Cell{X: x, Y: y}
}

// Neighbors4 lists the 4-connected offsets in a fixed order (up, right, down, left).
var Neighbors4 = [4]Cell{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Grid is the wall layout of one level. Cells are stored in row-major order.
// A generated grid is handed to the simulation read-only.
type Grid struct {
	W, H     int
	walls    []bool
	reserved []bool // spawn cross and corner pockets
}

// NewGrid creates a grid of the given size with every cell open.
func NewGrid(w, h int) *Grid {
	return &Grid{
		W:        w,
		H:        h,
		walls:    make([]bool, w*h),
		reserved: make([]bool, w*h),
	}
}

// Parse builds a grid from rows of text: '#' is a wall, 'R' is a reserved open
// cell, anything else is open. Rows shorter than the widest one are padded with walls.
func Parse(rows []string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("maze: empty layout")
	}
	w := 0
	for _, r := range rows {
		w = max(w, len([]rune(r)))
	}
	g := NewGrid(w, len(rows))
	for y, r := range rows {
		runes := []rune(r)
		for x := 0; x < w; x++ {
			switch {
			case x >= len(runes) || runes[x] == '#':
				g.SetWall(x, y, true)
			case runes[x] == 'R':
				g.reserved[g.index(x, y)] = true
			}
		}
	}
	return g, nil
}

func (g *Grid) index(x, y int) int {
	return y*g.W + x
}

// InBounds returns true if (x, y) is inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// IsWall reports whether (x, y) is impassable. Cells outside the grid count as walls.
func (g *Grid) IsWall(x, y int) bool {
	if !g.InBounds(x, y) {
		return true
	}
	return g.walls[g.index(x, y)]
}

// IsOpen is the negation of IsWall.
func (g *Grid) IsOpen(x, y int) bool {
	return !g.IsWall(x, y)
}

// SetWall changes a cell. Only generators and test fixtures should call it.
func (g *Grid) SetWall(x, y int, wall bool) {
	if g.InBounds(x, y) {
		g.walls[g.index(x, y)] = wall
	}
}

// IsReserved reports whether the cell belongs to the spawn cross or a corner pocket.
func (g *Grid) IsReserved(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	return g.reserved[g.index(x, y)]
}

func (g *Grid) reserve(x, y int) {
	if g.InBounds(x, y) {
		g.walls[g.index(x, y)] = false
		g.reserved[g.index(x, y)] = true
	}
}

// IsBorder reports whether (x, y) lies on the outer ring.
func (g *Grid) IsBorder(x, y int) bool {
	return x == 0 || y == 0 || x == g.W-1 || y == g.H-1
}

// OpenCount returns the number of open cells.
func (g *Grid) OpenCount() int {
	n := 0
	for _, w := range g.walls {
		if !w {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	c := NewGrid(g.W, g.H)
	copy(c.walls, g.walls)
	copy(c.reserved, g.reserved)
	return c
}

// FloodFill marks every cell 4-connected to start through cells accepted by passable.
// The result is indexed like the grid (y*W + x). A start rejected by passable yields
// an all-false result.
func (g *Grid) FloodFill(start Cell, passable func(x, y int) bool) []bool {
	seen := make([]bool, g.W*g.H)
	if !g.InBounds(start.X, start.Y) || !passable(start.X, start.Y) {
		return seen
	}

	queue := []Cell{start}
	seen[g.index(start.X, start.Y)] = true
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, d := range Neighbors4 {
			nx, ny := cur.X+d.X, cur.Y+d.Y
			if !g.InBounds(nx, ny) || seen[g.index(nx, ny)] || !passable(nx, ny) {
				continue
			}
			seen[g.index(nx, ny)] = true
			queue = append(queue, Cell{nx, ny})
		}
	}
	return seen
}

// Reachable flood-fills open cells from start.
func (g *Grid) Reachable(start Cell) []bool {
	return g.FloodFill(start, g.IsOpen)
}

// ReachableCount returns how many open cells are reachable from start.
func (g *Grid) ReachableCount(start Cell) int {
	n := 0
	for _, r := range g.Reachable(start) {
		if r {
			n++
		}
	}
	return n
}

// String renders the grid as text, '#' for walls and '.' for open cells.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.W + 1) * g.H)
	for y := 0; y < g.H; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < g.W; x++ {
			if g.IsWall(x, y) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}
