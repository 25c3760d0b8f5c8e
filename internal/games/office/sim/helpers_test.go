package sim

import (
	"github.com/vovakirdan/office-chase/internal/core"
	"github.com/vovakirdan/office-chase/internal/games/office/maze"
)

// fixedRand always opens movement gates below f and never reorders.
type fixedRand struct{ f float64 }

func (r fixedRand) Intn(int) int                 { return 0 }
func (r fixedRand) Float64() float64             { return r.f }
func (r fixedRand) Shuffle(int, func(i, j int)) {}

// room returns a w×h grid with a wall border and an open interior.
func room(w, h int) *maze.Grid {
	g := maze.NewGrid(w, h)
	for x := 0; x < w; x++ {
		g.SetWall(x, 0, true)
		g.SetWall(x, h-1, true)
	}
	for y := 0; y < h; y++ {
		g.SetWall(0, y, true)
		g.SetWall(w-1, y, true)
	}
	return g
}

// roomState places only the player, at the room's spawn, with scheduled
// drops pushed out of the way.
func roomState(g *maze.Grid) *State {
	cfg := DefaultConfig()
	cfg.Maze = maze.DefaultParams(g.W, g.H)
	cfg.CoinDropInterval = 0
	spawn := cfg.Spawn()
	return &State{
		Cfg:       cfg,
		Grid:      g,
		Level:     1,
		Player:    Player{Pos: core.CellCenter(spawn.X, spawn.Y), Facing: core.V(1, 0)},
		DropTimer: 1 << 30,
	}
}

func at(x, y int) core.Vec {
	return core.CellCenter(x, y)
}
