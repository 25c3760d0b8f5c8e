package maze

import (
	"errors"
	"math/rand"
	"testing"
)

func generateSeed(t *testing.T, p Params, seed int64) (*Grid, Stats) {
	t.Helper()
	g, stats, err := Generate(p, rand.New(rand.NewSource(seed)))
	if err != nil {
		t.Fatalf("seed %d: Generate: %v", seed, err)
	}
	return g, stats
}

func TestGenerateBorderAndSpawn(t *testing.T) {
	p := DefaultParams(40, 24)
	for seed := int64(0); seed < 50; seed++ {
		g, _ := generateSeed(t, p, seed)

		if g.W != 40 || g.H != 24 {
			t.Fatalf("seed %d: size = %dx%d, want 40x24", seed, g.W, g.H)
		}
		for x := 0; x < g.W; x++ {
			if !g.IsWall(x, 0) || !g.IsWall(x, g.H-1) {
				t.Fatalf("seed %d: border open at column %d", seed, x)
			}
		}
		for y := 0; y < g.H; y++ {
			if !g.IsWall(0, y) || !g.IsWall(g.W-1, y) {
				t.Fatalf("seed %d: border open at row %d", seed, y)
			}
		}
		if g.IsWall(20, 12) {
			t.Fatalf("seed %d: spawn cell is a wall", seed)
		}
		// cross arms reach the border
		for x := 1; x < g.W-1; x++ {
			if g.IsWall(x, 12) {
				t.Fatalf("seed %d: spawn row blocked at x=%d", seed, x)
			}
		}
		// corner pockets
		for _, c := range []Cell{{1, 1}, {g.W - 2, 1}, {1, g.H - 2}, {g.W - 2, g.H - 2}} {
			if g.IsWall(c.X, c.Y) {
				t.Fatalf("seed %d: corner pocket %v is a wall", seed, c)
			}
		}
	}
}

func TestGenerateConnectivity(t *testing.T) {
	p := DefaultParams(40, 24)
	for seed := int64(0); seed < 100; seed++ {
		g, stats := generateSeed(t, p, seed)

		reach := g.Reachable(p.Spawn)
		for y := 0; y < g.H; y++ {
			for x := 0; x < g.W; x++ {
				if g.IsOpen(x, y) && !reach[y*g.W+x] {
					t.Fatalf("seed %d: open cell (%d,%d) unreachable from spawn\n%s", seed, x, y, g)
				}
			}
		}
		if stats.Open != stats.Reachable {
			t.Errorf("seed %d: stats open=%d reachable=%d", seed, stats.Open, stats.Reachable)
		}
	}
}

func TestGenerateCorridorWidth(t *testing.T) {
	for _, scale := range []int{1, 2} {
		p := DefaultParams(40, 24)
		p.Scale = scale
		for seed := int64(0); seed < 60; seed++ {
			g, _ := generateSeed(t, p, seed)
			checkRuns(t, g, p.MinCorridorWidth, seed)
		}
	}
}

func checkRuns(t *testing.T, g *Grid, minWidth int, seed int64) {
	t.Helper()
	check := func(cells []Cell) {
		if len(cells) == 0 || len(cells) >= minWidth {
			return
		}
		for _, c := range cells {
			if g.IsReserved(c.X, c.Y) {
				return
			}
		}
		t.Fatalf("seed %d: open run %v shorter than %d\n%s", seed, cells, minWidth, g)
	}

	for y := 0; y < g.H; y++ {
		var run []Cell
		for x := 0; x < g.W; x++ {
			if g.IsOpen(x, y) {
				run = append(run, Cell{x, y})
				continue
			}
			check(run)
			run = run[:0]
		}
		check(run)
	}
	for x := 0; x < g.W; x++ {
		var run []Cell
		for y := 0; y < g.H; y++ {
			if g.IsOpen(x, y) {
				run = append(run, Cell{x, y})
				continue
			}
			check(run)
			run = run[:0]
		}
		check(run)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	p := DefaultParams(40, 24)
	a, _ := generateSeed(t, p, 42)
	b, _ := generateSeed(t, p, 42)
	if a.String() != b.String() {
		t.Errorf("same seed produced different mazes:\n%s\n\n%s", a, b)
	}
}

func TestGenerateHasWalls(t *testing.T) {
	p := DefaultParams(40, 24)
	interior := (p.Width - 2) * (p.Height - 2)
	for seed := int64(0); seed < 20; seed++ {
		g, _ := generateSeed(t, p, seed)
		if g.OpenCount() >= interior {
			t.Errorf("seed %d: maze has no interior walls", seed)
		}
		// the spawn cross alone keeps a fifth of a 40x24 interior open
		if g.OpenCount() < interior/5 {
			t.Errorf("seed %d: maze is mostly wall (%d open of %d)", seed, g.OpenCount(), interior)
		}
	}
}

func TestGenerateValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(p *Params)
		wantErr error
	}{
		{"too narrow", func(p *Params) { p.Width = 5 }, ErrGridTooSmall},
		{"too short", func(p *Params) { p.Height = 6 }, ErrGridTooSmall},
		{"spawn on border", func(p *Params) { p.Spawn = Cell{1, 12} }, ErrSpawnOutOfRange},
		{"spawn outside", func(p *Params) { p.Spawn = Cell{20, 40} }, ErrSpawnOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParams(40, 24)
			tt.mutate(&p)
			_, _, err := Generate(p, rand.New(rand.NewSource(1)))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCloseShortRunsKeepsReserved(t *testing.T) {
	g, err := Parse([]string{
		"#######",
		"#..#RR#",
		"#######",
	})
	if err != nil {
		t.Fatal(err)
	}
	closeShortRuns(g, 3)
	if g.IsOpen(1, 1) || g.IsOpen(2, 1) {
		t.Error("short unreserved run should be closed")
	}
	if g.IsWall(4, 1) || g.IsWall(5, 1) {
		t.Error("reserved run should stay open")
	}
}

func TestConnectCarvesIsolatedRoom(t *testing.T) {
	g, err := Parse([]string{
		"###########",
		"#...#######",
		"#...#######",
		"#...#######",
		"###########",
		"#######...#",
		"#######...#",
		"#######...#",
		"###########",
	})
	if err != nil {
		t.Fatal(err)
	}
	p := DefaultParams(g.W, g.H)
	p.Spawn = Cell{8, 6}

	carves, sealed := connect(g, p)
	if carves == 0 {
		t.Fatal("expected at least one carve")
	}
	if sealed != 0 {
		t.Errorf("sealed %d cells, want 0", sealed)
	}
	if g.ReachableCount(p.Spawn) != g.OpenCount() {
		t.Errorf("rooms still disconnected:\n%s", g)
	}
}

func TestCarveStraightReachesSpawnCross(t *testing.T) {
	g, err := Parse([]string{
		"###########",
		"#..#...####",
		"#..#...####",
		"####...####",
		"####...####",
		"#.........#",
		"#.........#",
		"#.........#",
		"###########",
	})
	if err != nil {
		t.Fatal(err)
	}
	spawn := Cell{5, 6}
	if g.ReachableCount(spawn) == g.OpenCount() {
		t.Fatal("setup: pocket should be cut off")
	}

	carveStraight(g, Cell{1, 1}, spawn, 1)

	if g.ReachableCount(spawn) != g.OpenCount() {
		t.Errorf("pocket still disconnected:\n%s", g)
	}
	// the spawn column is nearer than the spawn row, so the cut is horizontal
	for x := 1; x <= 3; x++ {
		if g.IsOpen(x, 4) {
			t.Errorf("cell (%d,4) opened, want a straight corridor along rows 1..3\n%s", x, g)
		}
	}
}

func TestTrimThickWalls(t *testing.T) {
	g, err := Parse([]string{
		"########",
		"#......#",
		"#......#",
		"#......#",
		"#...####",
		"#...####",
		"#...####",
		"########",
	})
	if err != nil {
		t.Fatal(err)
	}

	if opened := trimThickWalls(g, 3); opened == 0 {
		t.Fatal("expected thick wall cells to be opened")
	}
	if hasThickWall(g) {
		t.Errorf("2×2 wall block left:\n%s", g)
	}
	if g.OpenCount() == (g.W-2)*(g.H-2) {
		t.Error("trimming should leave a wall one cell thick")
	}
	checkRuns(t, g, 3, 0)
}

func TestTrimThickWallsKeepsCorridorWidth(t *testing.T) {
	g, err := Parse([]string{
		"#######",
		"#.....#",
		"#.##..#",
		"#.##..#",
		"#.....#",
		"#######",
	})
	if err != nil {
		t.Fatal(err)
	}
	before := g.String()

	if opened := trimThickWalls(g, 3); opened != 0 {
		t.Errorf("opened %d cells, want 0: every cell of the block would leave a run of 2", opened)
	}
	if g.String() != before {
		t.Errorf("grid changed:\n%s", g)
	}
}

func TestGenerateLeavesNoTrimmableWall(t *testing.T) {
	p := DefaultParams(40, 24)
	for seed := int64(0); seed < 60; seed++ {
		g, _ := generateSeed(t, p, seed)
		for y := 1; y < g.H-2; y++ {
			for x := 1; x < g.W-2; x++ {
				for _, c := range []Cell{{x, y}, {x + 1, y}, {x, y + 1}, {x + 1, y + 1}} {
					if isThickWindow(g, x, y) && canOpen(g, c, p.MinCorridorWidth) {
						t.Fatalf("seed %d: wall (%d,%d) could be opened\n%s", seed, c.X, c.Y, g)
					}
				}
			}
		}
	}
}

func isThickWindow(g *Grid, x, y int) bool {
	return g.IsWall(x, y) && g.IsWall(x+1, y) && g.IsWall(x, y+1) && g.IsWall(x+1, y+1)
}

func hasThickWall(g *Grid) bool {
	for y := 1; y < g.H-2; y++ {
		for x := 1; x < g.W-2; x++ {
			if isThickWindow(g, x, y) {
				return true
			}
		}
	}
	return false
}
