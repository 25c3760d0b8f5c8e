// Package config provides YAML-based game configuration loading and
// difficulty management for the office chase game.
package config

import (
	"errors"
	"fmt"
)

// OfficeConfig contains all configuration for the office chase game.
type OfficeConfig struct {
	Maze       OfficeMaze       `yaml:"maze"`
	Player     OfficePlayer     `yaml:"player"`
	Executives OfficeExecutives `yaml:"executives"`
	Items      OfficeItems      `yaml:"items"`
	Coins      OfficeCoins      `yaml:"coins"`
	Drops      OfficeDrops      `yaml:"drops"`
	Respawn    OfficeRespawn    `yaml:"respawn"`
	Gameplay   OfficeGameplay   `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// OfficeMaze defines maze generation parameters.
type OfficeMaze struct {
	Width            int     `yaml:"width"`
	Height           int     `yaml:"height"`
	Scale            int     `yaml:"scale"`            // 1 or 2: coarse-to-fine wall scaling
	VerticalEvery    int     `yaml:"vertical_every"`   // Columns between vertical struts
	VerticalSpan     int     `yaml:"vertical_span"`    // Rows per vertical strut slot
	HorizontalEvery  int     `yaml:"horizontal_every"` // Rows between horizontal struts
	HorizontalSpan   int     `yaml:"horizontal_span"`  // Columns per horizontal strut slot
	StrutChance      float64 `yaml:"strut_chance"`
	ThinChance       float64 `yaml:"thin_chance"`
	CrossWidth       int     `yaml:"cross_width"`
	PocketSize       int     `yaml:"pocket_size"`
	MinCorridorWidth int     `yaml:"min_corridor_width"`
	Footprint        float64 `yaml:"footprint"`      // Half extent of movers and props, in cells
	CoinFootprint    float64 `yaml:"coin_footprint"` // Half extent of coins
}

// OfficePlayer defines player movement and protection timers.
type OfficePlayer struct {
	Speed              float64 `yaml:"speed"` // Cells per tick
	BoostMultiplier    float64 `yaml:"boost_multiplier"`
	BoostTicks         int     `yaml:"boost_ticks"`
	InvincibleTicks    int     `yaml:"invincible_ticks"`
	CatchCooldownTicks int     `yaml:"catch_cooldown_ticks"`
}

// OfficeExecutives defines executive perception and movement.
type OfficeExecutives struct {
	Count              int      `yaml:"count"`
	Names              []string `yaml:"names"`
	VisionDistance     float64  `yaml:"vision_distance"`
	ConeDegrees        float64  `yaml:"cone_degrees"` // Full cone angle
	MoveChanceBase     float64  `yaml:"move_chance_base"`
	MoveChancePerLevel float64  `yaml:"move_chance_per_level"`
	MoveChanceMax      float64  `yaml:"move_chance_max"`
	PatrolStep         float64  `yaml:"patrol_step"`
	CommitTicks        int      `yaml:"commit_ticks"`
	FleeStep           float64  `yaml:"flee_step"`
	ScaredTicks        int      `yaml:"scared_ticks"`
}

// OfficeItems defines the initial furniture and coffee layout.
type OfficeItems struct {
	Computers           int `yaml:"computers"`
	WallArt             int `yaml:"wall_art"`
	Coworkers           int `yaml:"coworkers"`
	Coffees             int `yaml:"coffees"`
	ComputerDamageTicks int `yaml:"computer_damage_ticks"`
	CoworkerDamageTicks int `yaml:"coworker_damage_ticks"`
	SpawnClearance      int `yaml:"spawn_clearance"`
	PlacementAttempts   int `yaml:"placement_attempts"`
}

// OfficeCoins defines the coin economy.
type OfficeCoins struct {
	Value        int `yaml:"value"`
	PerItem      int `yaml:"per_item"`
	PerScare     int `yaml:"per_scare"`
	ExpireTicks  int `yaml:"expire_ticks"`
	BounceTicks  int `yaml:"bounce_ticks"`
	PopTicks     int `yaml:"pop_ticks"`
	SearchRadius int `yaml:"search_radius"`
}

// OfficeDrops defines the periodic item and coin drops.
type OfficeDrops struct {
	Interval     int `yaml:"interval"`
	Cap          int `yaml:"cap"`
	Radius       int `yaml:"radius"`
	CoinInterval int `yaml:"coin_interval"` // 0 disables executive coin drops
}

// OfficeRespawn defines the safe respawn search.
type OfficeRespawn struct {
	MinDistance float64 `yaml:"min_distance"`
	Attempts    int     `yaml:"attempts"`
}

// OfficeGameplay defines lives, scoring and level progression.
type OfficeGameplay struct {
	Lives               int `yaml:"lives"`
	LevelGoal           int `yaml:"level_goal"` // Computers/wall art to smash per level
	MaxLevel            int `yaml:"max_level"`  // Campaign is won after this level
	LevelBonus          int `yaml:"level_bonus"`
	ExtraExecutiveEvery int `yaml:"extra_executive_every"` // Endless mode only
	MaxExecutives       int `yaml:"max_executives"`
}

// Validate checks values the simulation cannot run without.
func (c OfficeConfig) Validate() error {
	var errs []error
	if c.Maze.Width < 9 || c.Maze.Height < 9 {
		errs = append(errs, fmt.Errorf("maze: %dx%d is smaller than 9x9", c.Maze.Width, c.Maze.Height))
	}
	if c.Maze.Scale != 1 && c.Maze.Scale != 2 {
		errs = append(errs, fmt.Errorf("maze: scale must be 1 or 2, got %d", c.Maze.Scale))
	}
	if c.Maze.Footprint <= 0 || c.Maze.CoinFootprint <= 0 {
		errs = append(errs, errors.New("maze: footprints must be positive"))
	}
	if c.Player.Speed <= 0 {
		errs = append(errs, errors.New("player: speed must be positive"))
	}
	if c.Executives.Count < 0 || c.Executives.VisionDistance <= 0 {
		errs = append(errs, errors.New("executives: count must be >= 0 and vision_distance > 0"))
	}
	if c.Executives.ConeDegrees <= 0 || c.Executives.ConeDegrees > 360 {
		errs = append(errs, fmt.Errorf("executives: cone_degrees %v out of range", c.Executives.ConeDegrees))
	}
	if c.Gameplay.Lives <= 0 {
		errs = append(errs, errors.New("gameplay: lives must be positive"))
	}
	if c.Items.PlacementAttempts < 0 {
		errs = append(errs, errors.New("items: placement_attempts must be >= 0"))
	}
	if c.Coins.ExpireTicks <= 0 || c.Coins.BounceTicks < 0 {
		errs = append(errs, errors.New("coins: expire_ticks must be positive and bounce_ticks >= 0"))
	}
	if c.Drops.Interval <= 0 {
		errs = append(errs, fmt.Errorf("drops: interval must be positive, got %d", c.Drops.Interval))
	}
	if c.Drops.CoinInterval < 0 || c.Drops.Cap < 0 {
		errs = append(errs, errors.New("drops: coin_interval and cap must be >= 0"))
	}
	return errors.Join(errs...)
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", "level", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks/level at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	MoveChanceMultiplier float64 `yaml:"move_chance_multiplier"` // Added to executive move chance at max difficulty
	VisionBonus          float64 `yaml:"vision_bonus"`           // Extra vision distance at max difficulty
	ScaredReduction      int     `yaml:"scared_reduction"`       // Scared ticks removed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI flag value to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
