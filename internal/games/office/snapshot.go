package office

import "math"

// Snapshot contains the complete game state for replay and determinism checks.
// Uses primitive types only for stable serialization; positions are kept as
// float bit patterns so two runs compare exactly.
type Snapshot struct {
	Tick    uint64
	State   string
	Mode    int // 0=Campaign, 1=Endless
	Score   int
	Lives   int
	Level   int
	Smashed int

	// Maze (row-major, 1 = wall)
	MazeW, MazeH int
	Walls        []int

	// Player: X, Y, Boost, Invincible, Cooldown
	Player [5]uint64

	// Each executive is 6 values: ID, X, Y, Mode, ScaredTicks, Commit
	ExecutiveData []uint64

	// Each prop is 5 values: ID, Kind, X, Y, DamageTicks
	PropData []uint64

	// Each power-up is 3 values: ID, X, Y
	PowerUpData []uint64

	// Each coin is 6 values: ID, X, Y, Bounce, Expire, Collected
	CoinData []uint64

	DropTimer     int
	CoinDropTimer int
}

func bits(f float64) uint64 { return math.Float64bits(f) }

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		State:   g.state,
		Mode:    int(g.mode),
		Score:   g.score,
		Lives:   g.lives,
		Level:   g.level,
		Smashed: g.smashed,
	}
	st := g.sim
	if st == nil {
		return snap
	}

	snap.Tick = st.Ticks
	snap.MazeW, snap.MazeH = st.Grid.W, st.Grid.H
	snap.Walls = make([]int, 0, st.Grid.W*st.Grid.H)
	for y := 0; y < st.Grid.H; y++ {
		for x := 0; x < st.Grid.W; x++ {
			if st.Grid.IsWall(x, y) {
				snap.Walls = append(snap.Walls, 1)
			} else {
				snap.Walls = append(snap.Walls, 0)
			}
		}
	}

	p := st.Player
	snap.Player = [5]uint64{bits(p.Pos.X), bits(p.Pos.Y),
		uint64(p.BoostTicks), uint64(p.InvincibleTicks), uint64(p.CooldownTicks)} //#nosec G115 -- timers are non-negative

	for _, e := range st.Executives {
		snap.ExecutiveData = append(snap.ExecutiveData,
			uint64(e.ID), bits(e.Pos.X), bits(e.Pos.Y), uint64(e.Mode), uint64(e.ScaredTicks), uint64(e.Commit)) //#nosec G115 -- snapshot encoding
	}
	for _, pr := range st.Props {
		snap.PropData = append(snap.PropData,
			uint64(pr.ID), uint64(pr.Kind), bits(pr.Pos.X), bits(pr.Pos.Y), uint64(pr.DamageTicks)) //#nosec G115 -- snapshot encoding
	}
	for _, pu := range st.PowerUps {
		snap.PowerUpData = append(snap.PowerUpData, uint64(pu.ID), bits(pu.Pos.X), bits(pu.Pos.Y)) //#nosec G115 -- snapshot encoding
	}
	for _, c := range st.Coins {
		snap.CoinData = append(snap.CoinData,
			uint64(c.ID), bits(c.Pos.X), bits(c.Pos.Y), uint64(c.Bounce), uint64(c.Expire), boolBit(c.Collected)) //#nosec G115 -- snapshot encoding
	}

	snap.DropTimer = st.DropTimer
	snap.CoinDropTimer = st.CoinDropTimer
	return snap
}

func boolBit(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Mode)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Smashed) //#nosec G115 -- hash computation
	for _, r := range snap.State {
		h = h*31 + uint64(r) //#nosec G115 -- hash computation
	}

	for _, v := range snap.Walls {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.Player {
		h = h*31 + v
	}
	for _, data := range [][]uint64{snap.ExecutiveData, snap.PropData, snap.PowerUpData, snap.CoinData} {
		h = h*31 + uint64(len(data))
		for _, v := range data {
			h = h*31 + v
		}
	}

	h = h*31 + uint64(snap.DropTimer)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.CoinDropTimer) //#nosec G115 -- hash computation
	return h
}
