package office

import (
	"math"

	"github.com/vovakirdan/office-chase/internal/config"
	"github.com/vovakirdan/office-chase/internal/games/office/maze"
	"github.com/vovakirdan/office-chase/internal/games/office/sim"
)

// simConfig translates the YAML configuration into simulation tunables for
// one level. Difficulty scaling is sampled once per level so the executives
// do not change behavior mid-level.
func simConfig(c config.OfficeConfig, mode GameMode, dm *config.DifficultyManager, p config.Progress) sim.Config {
	return sim.Config{
		Maze:          MazeParams(c),
		Footprint:     maze.Square(c.Maze.Footprint),
		CoinFootprint: maze.Square(c.Maze.CoinFootprint),

		PlayerSpeed:        c.Player.Speed,
		BoostMultiplier:    c.Player.BoostMultiplier,
		BoostTicks:         c.Player.BoostTicks,
		InvincibleTicks:    c.Player.InvincibleTicks,
		CatchCooldownTicks: c.Player.CatchCooldownTicks,

		Executives:         executiveCount(c, mode, p.Level),
		ExecutiveNames:     c.Executives.Names,
		VisionDistance:     dm.VisionDistance(c.Executives.VisionDistance, p),
		ConeHalfAngle:      c.Executives.ConeDegrees * math.Pi / 360,
		MoveChanceBase:     dm.MoveChance(c.Executives.MoveChanceBase, p),
		MoveChancePerLevel: c.Executives.MoveChancePerLevel,
		MoveChanceMax:      c.Executives.MoveChanceMax,
		PatrolStep:         c.Executives.PatrolStep,
		CommitTicks:        c.Executives.CommitTicks,
		FleeStep:           c.Executives.FleeStep,
		ScaredTicks:        dm.ScaredTicks(c.Executives.ScaredTicks, p),

		Computers:           c.Items.Computers,
		WallArt:             c.Items.WallArt,
		Coworkers:           c.Items.Coworkers,
		Coffees:             c.Items.Coffees,
		ComputerDamageTicks: c.Items.ComputerDamageTicks,
		CoworkerDamageTicks: c.Items.CoworkerDamageTicks,
		SpawnClearance:      c.Items.SpawnClearance,
		PlacementAttempts:   c.Items.PlacementAttempts,

		CoinValue:        c.Coins.Value,
		CoinsPerItem:     c.Coins.PerItem,
		CoinsPerScare:    c.Coins.PerScare,
		CoinExpireTicks:  c.Coins.ExpireTicks,
		BounceTicks:      c.Coins.BounceTicks,
		PopTicks:         c.Coins.PopTicks,
		CoinSearchRadius: c.Coins.SearchRadius,

		DropInterval:     c.Drops.Interval,
		DropCap:          c.Drops.Cap,
		DropRadius:       c.Drops.Radius,
		CoinDropInterval: c.Drops.CoinInterval,

		RespawnMinDistance: c.Respawn.MinDistance,
		RespawnAttempts:    c.Respawn.Attempts,
	}
}

// MazeParams builds generator parameters from the maze section of c,
// with the spawn at the centre of the grid.
func MazeParams(c config.OfficeConfig) maze.Params {
	mp := maze.DefaultParams(c.Maze.Width, c.Maze.Height)
	mp.Scale = c.Maze.Scale
	mp.VerticalEvery = c.Maze.VerticalEvery
	mp.VerticalSpan = c.Maze.VerticalSpan
	mp.HorizontalEvery = c.Maze.HorizontalEvery
	mp.HorizontalSpan = c.Maze.HorizontalSpan
	mp.StrutChance = c.Maze.StrutChance
	mp.ThinChance = c.Maze.ThinChance
	mp.CrossWidth = c.Maze.CrossWidth
	mp.PocketSize = c.Maze.PocketSize
	mp.MinCorridorWidth = c.Maze.MinCorridorWidth
	return mp
}

// executiveCount grows the staff in endless mode, one extra executive every
// ExtraExecutiveEvery levels.
func executiveCount(c config.OfficeConfig, mode GameMode, level int) int {
	n := c.Executives.Count
	if mode != ModeEndless || c.Gameplay.ExtraExecutiveEvery <= 0 {
		return n
	}
	n += (max(level, 1) - 1) / c.Gameplay.ExtraExecutiveEvery
	if c.Gameplay.MaxExecutives > 0 && n > c.Gameplay.MaxExecutives {
		n = c.Gameplay.MaxExecutives
	}
	return n
}
