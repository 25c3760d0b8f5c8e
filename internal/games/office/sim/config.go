package sim

import (
	"math"

	"github.com/vovakirdan/office-chase/internal/games/office/maze"
)

// Config holds every tunable of the simulation. Durations are in ticks and
// distances in grid cells.
type Config struct {
	Maze maze.Params

	Footprint     maze.Footprint // player, executives and props
	CoinFootprint maze.Footprint

	// Player
	PlayerSpeed        float64
	BoostMultiplier    float64
	BoostTicks         int
	InvincibleTicks    int
	CatchCooldownTicks int

	// Executives
	Executives         int
	ExecutiveNames     []string
	VisionDistance     float64
	ConeHalfAngle      float64 // radians
	MoveChanceBase     float64
	MoveChancePerLevel float64
	MoveChanceMax      float64
	PatrolStep         float64
	CommitTicks        int
	FleeStep           float64
	ScaredTicks        int

	// Items
	Computers           int
	WallArt             int
	Coworkers           int
	Coffees             int
	ComputerDamageTicks int
	CoworkerDamageTicks int
	SpawnClearance      int // no item within this Chebyshev distance of the spawn
	PlacementAttempts   int

	// Coins
	CoinValue        int
	CoinsPerItem     int
	CoinsPerScare    int
	CoinExpireTicks  int
	BounceTicks      int
	PopTicks         int
	CoinSearchRadius int

	// Scheduled drops
	DropInterval     int
	DropCap          int
	DropRadius       int
	CoinDropInterval int // 0 disables executive coin drops

	// Respawn
	RespawnMinDistance float64
	RespawnAttempts    int
}

// DefaultConfig returns the standard 40×24 office at a 60 Hz tick rate.
func DefaultConfig() Config {
	return Config{
		Maze:          maze.DefaultParams(40, 24),
		Footprint:     maze.Small,
		CoinFootprint: maze.Coin,

		PlayerSpeed:        0.15,
		BoostMultiplier:    2,
		BoostTicks:         300,
		InvincibleTicks:    120,
		CatchCooldownTicks: 30,

		Executives:         4,
		ExecutiveNames:     []string{"Gary", "Linda", "Bob", "Patricia"},
		VisionDistance:     6,
		ConeHalfAngle:      math.Pi / 6,
		MoveChanceBase:     0.08,
		MoveChancePerLevel: 0.02,
		MoveChanceMax:      0.5,
		PatrolStep:         0.5,
		CommitTicks:        15,
		FleeStep:           0.08,
		ScaredTicks:        180,

		Computers:           6,
		WallArt:             4,
		Coworkers:           3,
		Coffees:             2,
		ComputerDamageTicks: 240,
		CoworkerDamageTicks: 600,
		SpawnClearance:      3,
		PlacementAttempts:   200,

		CoinValue:        10,
		CoinsPerItem:     3,
		CoinsPerScare:    10,
		CoinExpireTicks:  600,
		BounceTicks:      20,
		PopTicks:         15,
		CoinSearchRadius: 4,

		DropInterval:     180,
		DropCap:          12,
		DropRadius:       3,
		CoinDropInterval: 300,

		RespawnMinDistance: 6,
		RespawnAttempts:    50,
	}
}

// MoveChance returns the per-tick probability that a patrolling executive
// attempts to move at the given level.
func (c Config) MoveChance(level int) float64 {
	chance := c.MoveChanceBase + float64(max(level-1, 0))*c.MoveChancePerLevel
	return math.Min(chance, c.MoveChanceMax)
}

// DamageTicks returns how long a prop of the given kind stays damaged.
func (c Config) DamageTicks(k PropKind) int {
	if k == Coworker {
		return c.CoworkerDamageTicks
	}
	return c.ComputerDamageTicks
}

// ExecutiveName returns a display name for the i-th executive.
func (c Config) ExecutiveName(i int) string {
	if len(c.ExecutiveNames) == 0 {
		return "Exec"
	}
	return c.ExecutiveNames[i%len(c.ExecutiveNames)]
}

// Spawn is the player's start cell.
func (c Config) Spawn() maze.Cell {
	return c.Maze.Spawn
}
