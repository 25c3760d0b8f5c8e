// Package core provides fundamental types and utilities for the office chase platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect is an integer rectangle in screen cells, used for HUD and overlay layout.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Vec is a point or displacement in continuous grid units.
// Fractional values represent sub-cell placement: cell (x, y) spans [x, x+1) × [y, y+1).
type Vec struct {
	X, Y float64
}

// V is shorthand for constructing a Vec.
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// CellCenter returns the continuous position at the middle of grid cell (cx, cy).
func CellCenter(cx, cy int) Vec {
	return Vec{X: float64(cx) + 0.5, Y: float64(cy) + 0.5}
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by k.
func (v Vec) Scale(k float64) Vec {
	return Vec{X: v.X * k, Y: v.Y * k}
}

// Len returns the Euclidean length of v.
func (v Vec) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Dist returns the Euclidean distance between v and o.
func (v Vec) Dist(o Vec) float64 {
	return v.Sub(o).Len()
}

// Angle returns the direction of v in radians, in (-π, π].
func (v Vec) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Lerp interpolates between v (t=0) and o (t=1).
func (v Vec) Lerp(o Vec, t float64) Vec {
	return Vec{X: v.X + (o.X-v.X)*t, Y: v.Y + (o.Y-v.Y)*t}
}

// Cell returns the grid cell containing v.
func (v Vec) Cell() (int, int) {
	return int(math.Floor(v.X)), int(math.Floor(v.Y))
}

// Chebyshev returns the Chebyshev distance between the cells containing v and o.
func (v Vec) Chebyshev(o Vec) int {
	ax, ay := v.Cell()
	bx, by := o.Cell()
	return Max(Abs(ax-bx), Abs(ay-by))
}

// Box is an axis-aligned bounding box in continuous grid units.
type Box struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Intersects reports whether two boxes overlap with positive area.
// Boxes that only touch along an edge do not intersect.
func (b Box) Intersects(o Box) bool {
	if b.MinX >= o.MaxX || o.MinX >= b.MaxX {
		return false
	}
	if b.MinY >= o.MaxY || o.MinY >= b.MaxY {
		return false
	}
	return true
}

// CellRange returns the inclusive range of grid cells the box covers.
// Edges lying exactly on a cell boundary do not claim the neighbouring cell.
func (b Box) CellRange() (x0, y0, x1, y1 int) {
	x0 = int(math.Floor(b.MinX))
	y0 = int(math.Floor(b.MinY))
	x1 = int(math.Ceil(b.MaxX)) - 1
	y1 = int(math.Ceil(b.MaxY)) - 1
	return x0, y0, x1, y1
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Sign returns -1, 0 or 1 matching the sign of x.
func Sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Countdown decrements a timer by one tick, never going below zero.
func Countdown(t int) int {
	if t > 0 {
		return t - 1
	}
	return 0
}
