package sim

import (
	"fmt"

	"github.com/vovakirdan/office-chase/internal/core"
	"github.com/vovakirdan/office-chase/internal/games/office/maze"
)

// Initialize generates a maze for the given level and places every entity.
func Initialize(cfg Config, level int, rng Rand) (*State, error) {
	grid, stats, err := maze.Generate(cfg.Maze, rng)
	if err != nil {
		return nil, fmt.Errorf("sim: generate maze: %w", err)
	}
	return InitializeWithGrid(cfg, grid, stats, level, rng)
}

// InitializeWithGrid places entities on an existing grid.
func InitializeWithGrid(cfg Config, grid *maze.Grid, stats maze.Stats, level int, rng Rand) (*State, error) {
	pl, err := PlaceEntities(grid, cfg, cfg.Counts(), rng)
	if err != nil {
		return nil, fmt.Errorf("sim: place entities: %w", err)
	}

	spawn := cfg.Spawn()
	s := &State{
		Cfg:           cfg,
		Grid:          grid,
		MazeStats:     stats,
		Fallbacks:     pl.Fallbacks,
		Level:         max(level, 1),
		Player:        Player{Pos: core.CellCenter(spawn.X, spawn.Y), Facing: core.V(1, 0)},
		Executives:    pl.Executives,
		Props:         pl.Props,
		PowerUps:      pl.PowerUps,
		DropTimer:     cfg.DropInterval,
		CoinDropTimer: cfg.CoinDropInterval,
		NextID:        len(pl.Executives),
	}
	for i := range s.Props {
		s.Props[i].ID = s.newID()
	}
	for i := range s.PowerUps {
		s.PowerUps[i].ID = s.newID()
	}
	return s, nil
}

// Tick advances the simulation by one fixed step and returns the next state
// together with what happened. prev is not modified.
//
// Order: player movement, player timers, executives, coin animations and
// expiry, damaged props, scheduled drops, coin pickup, interaction, and
// finally catch evaluation against the pre-tick positions. At most one life
// is lost per tick.
func Tick(prev *State, in Input, rng Rand) (*State, Events) {
	var ev Events
	s := prev.Clone()
	s.Ticks++

	s.movePlayer(in.Direction())

	s.Player.BoostTicks = core.Countdown(s.Player.BoostTicks)
	s.Player.InvincibleTicks = core.Countdown(s.Player.InvincibleTicks)
	s.Player.CooldownTicks = core.Countdown(s.Player.CooldownTicks)

	for i := range s.Executives {
		updateExecutive(s.Grid, &s.Executives[i], s.Player.Pos, s.Cfg, s.Level, rng)
	}

	s.advanceCoins(&ev)
	s.advanceDamage(&ev)
	s.scheduledDrop(rng, &ev)
	s.coinDrop(rng, &ev)
	s.collectCoins(&ev)

	if in.Interact {
		s.interact(rng, &ev)
	}

	if id, caught := Caught(prev); caught {
		ev.LifeLost = true
		ev.CaughtBy = id
		s.Player.CooldownTicks = s.Cfg.CatchCooldownTicks
		s.Player.InvincibleTicks = s.Cfg.InvincibleTicks
		s.Player.BoostTicks = 0
		s.Player.Pos = SafeRespawn(s.Grid, s.Cfg, s.Executives, rng)
	}
	return s, ev
}

// Caught reports whether any patrolling executive sees the player in s,
// returning the first such executive's ID. Invincibility and the post-catch
// cooldown suppress catches.
func Caught(s *State) (int, bool) {
	p := s.Player
	if p.Invincible() || p.CooldownTicks > 0 {
		return 0, false
	}
	v := s.Cfg.Vision()
	for _, e := range s.Executives {
		if e.Sees(s.Grid, p.Pos, v) {
			return e.ID, true
		}
	}
	return 0, false
}

// movePlayer resolves the X axis, then the Y axis from the updated X, so the
// player slides along walls when moving diagonally into them.
func (s *State) movePlayer(dir core.Vec) {
	if dir == (core.Vec{}) {
		return
	}
	s.Player.Facing = dir

	speed := s.Cfg.PlayerSpeed
	if s.Player.Boosted() {
		speed *= s.Cfg.BoostMultiplier
	}
	fp := s.Cfg.Footprint
	g := s.Grid

	if dir.X != 0 {
		next := g.ClampAnchor(core.V(s.Player.Pos.X+dir.X*speed, s.Player.Pos.Y), fp)
		if g.IsFootprintClear(next, fp) {
			s.Player.Pos = next
		}
	}
	if dir.Y != 0 {
		next := g.ClampAnchor(core.V(s.Player.Pos.X, s.Player.Pos.Y+dir.Y*speed), fp)
		if g.IsFootprintClear(next, fp) {
			s.Player.Pos = next
		}
	}
}
