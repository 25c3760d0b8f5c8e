package sim

import (
	"github.com/vovakirdan/office-chase/internal/core"
	"github.com/vovakirdan/office-chase/internal/games/office/maze"
)

// spawnCoins scatters up to n coins around origin. Candidate cells are taken
// ring by ring out to the configured search radius, shuffled within each ring,
// and must be coin-footprint clear and free of other coins and items.
// Every coin bounces out from origin. Returns the number spawned.
func (s *State) spawnCoins(origin core.Vec, n int, rng Rand) int {
	cfg := s.Cfg
	ox, oy := origin.Cell()
	spawned := 0

	for r := 1; r <= cfg.CoinSearchRadius && spawned < n; r++ {
		cells := ring(maze.C(ox, oy), r)
		rng.Shuffle(len(cells), func(i, j int) { cells[i], cells[j] = cells[j], cells[i] })
		for _, c := range cells {
			if spawned == n {
				break
			}
			if !s.coinCellFree(c) {
				continue
			}
			s.Coins = append(s.Coins, Coin{
				ID:     s.newID(),
				Pos:    core.CellCenter(c.X, c.Y),
				From:   origin,
				Value:  cfg.CoinValue,
				Expire: cfg.CoinExpireTicks,
			})
			spawned++
		}
	}
	return spawned
}

// coinCellFree reports whether a coin may land on c.
func (s *State) coinCellFree(c maze.Cell) bool {
	pos := core.CellCenter(c.X, c.Y)
	if !s.Grid.CanOccupy(pos, s.Cfg.CoinFootprint) {
		return false
	}
	for _, coin := range s.Coins {
		if x, y := coin.Pos.Cell(); !coin.Collected && x == c.X && y == c.Y {
			return false
		}
	}
	for _, p := range s.Props {
		if x, y := p.Pos.Cell(); x == c.X && y == c.Y {
			return false
		}
	}
	for _, p := range s.PowerUps {
		if x, y := p.Pos.Cell(); x == c.X && y == c.Y {
			return false
		}
	}
	return true
}

// advanceCoins runs spawn and pop animations and expires stale coins.
// Collected coins are dropped once their pop finishes; expired coins vanish
// without awarding anything.
func (s *State) advanceCoins(ev *Events) {
	cfg := s.Cfg
	kept := s.Coins[:0]
	for _, c := range s.Coins {
		if c.Collected {
			c.Pop++
			if c.Pop >= cfg.PopTicks {
				continue
			}
			kept = append(kept, c)
			continue
		}
		if c.Bounce < cfg.BounceTicks {
			c.Bounce++
		}
		c.Expire = core.Countdown(c.Expire)
		if c.Expire == 0 {
			ev.CoinsExpired++
			continue
		}
		kept = append(kept, c)
	}
	s.Coins = kept
}

// collectCoins awards landed coins under the player's footprint.
func (s *State) collectCoins(ev *Events) {
	playerBox := s.Cfg.Footprint.Box(s.Player.Pos)
	for i := range s.Coins {
		c := &s.Coins[i]
		if c.Collected || !c.Landed(s.Cfg.BounceTicks) {
			continue
		}
		if !playerBox.Intersects(s.Cfg.CoinFootprint.Box(c.Pos)) {
			continue
		}
		c.Collected = true
		c.Pop = 0
		ev.ScoreDelta += c.Value
		ev.CoinsCollected++
	}
}

// advanceDamage counts down damaged props. Coworkers recover; computers and
// wall art are carted away.
func (s *State) advanceDamage(ev *Events) {
	kept := s.Props[:0]
	for _, p := range s.Props {
		if p.Damaged {
			p.DamageTicks = core.Countdown(p.DamageTicks)
			if p.DamageTicks == 0 {
				if p.Kind != Coworker {
					ev.PropsRemoved++
					continue
				}
				p.Damaged = false
			}
		}
		kept = append(kept, p)
	}
	s.Props = kept
}

// scheduledDrop fires every DropInterval ticks: a random patrolling executive
// leaves a coffee, wall art or computer next to itself while the number of
// live droppables is below the cap.
func (s *State) scheduledDrop(rng Rand, ev *Events) {
	cfg := s.Cfg
	s.DropTimer = core.Countdown(s.DropTimer)
	if s.DropTimer > 0 {
		return
	}
	s.DropTimer = cfg.DropInterval

	if s.LiveDroppables() >= cfg.DropCap {
		return
	}
	e, ok := s.randomPatroller(rng)
	if !ok {
		return
	}
	c, ok := s.dropCell(e.Pos, rng)
	if !ok {
		return
	}

	pos := core.CellCenter(c.X, c.Y)
	switch rng.Intn(3) {
	case 0:
		s.PowerUps = append(s.PowerUps, PowerUp{ID: s.newID(), Pos: pos})
	case 1:
		s.Props = append(s.Props, Prop{ID: s.newID(), Kind: WallArt, Pos: pos})
	default:
		s.Props = append(s.Props, Prop{ID: s.newID(), Kind: Computer, Pos: pos})
	}
	ev.ItemsDropped++
}

// coinDrop fires every CoinDropInterval ticks: a random patrolling executive
// drops a single coin.
func (s *State) coinDrop(rng Rand, ev *Events) {
	if s.Cfg.CoinDropInterval <= 0 {
		return
	}
	s.CoinDropTimer = core.Countdown(s.CoinDropTimer)
	if s.CoinDropTimer > 0 {
		return
	}
	s.CoinDropTimer = s.Cfg.CoinDropInterval

	if e, ok := s.randomPatroller(rng); ok {
		ev.CoinsSpawned += s.spawnCoins(e.Pos, 1, rng)
	}
}

func (s *State) randomPatroller(rng Rand) (Executive, bool) {
	var idle []int
	for i, e := range s.Executives {
		if !e.IsScared() {
			idle = append(idle, i)
		}
	}
	if len(idle) == 0 {
		return Executive{}, false
	}
	return s.Executives[idle[rng.Intn(len(idle))]], true
}

// dropCell finds a footprint-clear cell near pos that overlaps no prop or coffee.
func (s *State) dropCell(pos core.Vec, rng Rand) (maze.Cell, bool) {
	fp := s.Cfg.Footprint
	occ := s.itemOccupancy()
	cx, cy := pos.Cell()
	for r := 1; r <= s.Cfg.DropRadius; r++ {
		cells := ring(maze.C(cx, cy), r)
		rng.Shuffle(len(cells), func(i, j int) { cells[i], cells[j] = cells[j], cells[i] })
		for _, c := range cells {
			if s.Grid.CellClear(c, fp) && !occ.overlaps(core.CellCenter(c.X, c.Y), fp, nil) {
				return c, true
			}
		}
	}
	return maze.Cell{}, false
}

func (s *State) itemOccupancy() *occupancy {
	occ := &occupancy{}
	for _, p := range s.Props {
		occ.add(p.Pos, s.Cfg.Footprint)
	}
	for _, p := range s.PowerUps {
		occ.add(p.Pos, s.Cfg.Footprint)
	}
	return occ
}

// interact handles the interaction action: the nearest undamaged prop or
// coffee within one cell is smashed or drunk, and every patrolling
// executive within one cell is scared.
func (s *State) interact(rng Rand, ev *Events) {
	cfg := s.Cfg
	player := s.Player.Pos

	propIdx, powerIdx := -1, -1
	best := 0.0
	for i, p := range s.Props {
		if p.Damaged || player.Chebyshev(p.Pos) > 1 {
			continue
		}
		if d := player.Dist(p.Pos); propIdx < 0 && powerIdx < 0 || d < best {
			propIdx, powerIdx, best = i, -1, d
		}
	}
	for i, p := range s.PowerUps {
		if player.Chebyshev(p.Pos) > 1 {
			continue
		}
		if d := player.Dist(p.Pos); propIdx < 0 && powerIdx < 0 || d < best {
			propIdx, powerIdx, best = -1, i, d
		}
	}

	switch {
	case propIdx >= 0:
		p := &s.Props[propIdx]
		p.Damaged = true
		p.DamageTicks = cfg.DamageTicks(p.Kind)
		ev.Damaged = append(ev.Damaged, DamageEvent{ID: p.ID, Kind: p.Kind})
		ev.CoinsSpawned += s.spawnCoins(p.Pos, cfg.CoinsPerItem, rng)
	case powerIdx >= 0:
		ev.PowerUpsConsumed++
		s.PowerUps = append(s.PowerUps[:powerIdx], s.PowerUps[powerIdx+1:]...)
		s.Player.BoostTicks = cfg.BoostTicks
	}

	for i := range s.Executives {
		e := &s.Executives[i]
		if e.IsScared() || player.Chebyshev(e.Pos) > 1 {
			continue
		}
		scare(e, cfg)
		ev.Scared = append(ev.Scared, e.ID)
		ev.CoinsSpawned += s.spawnCoins(e.Pos, cfg.CoinsPerScare, rng)
	}
}
