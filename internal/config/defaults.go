package config

import (
	_ "embed"
)

//go:embed defaults/office.yaml
var defaultOfficeYAML []byte

// DefaultOfficeConfig returns the default office chase configuration.
func DefaultOfficeConfig() OfficeConfig {
	return OfficeConfig{
		Maze: OfficeMaze{
			Width:            40,
			Height:           24,
			Scale:            1,
			VerticalEvery:    4,
			VerticalSpan:     3,
			HorizontalEvery:  4,
			HorizontalSpan:   3,
			StrutChance:      0.65,
			ThinChance:       0.3,
			CrossWidth:       3,
			PocketSize:       3,
			MinCorridorWidth: 3,
			Footprint:        0.7,
			CoinFootprint:    0.35,
		},
		Player: OfficePlayer{
			Speed:              0.15,
			BoostMultiplier:    2,
			BoostTicks:         300,
			InvincibleTicks:    120,
			CatchCooldownTicks: 30,
		},
		Executives: OfficeExecutives{
			Count:              4,
			Names:              []string{"Gary", "Linda", "Bob", "Patricia"},
			VisionDistance:     6,
			ConeDegrees:        60,
			MoveChanceBase:     0.08,
			MoveChancePerLevel: 0.02,
			MoveChanceMax:      0.5,
			PatrolStep:         0.5,
			CommitTicks:        15,
			FleeStep:           0.08,
			ScaredTicks:        180,
		},
		Items: OfficeItems{
			Computers:           6,
			WallArt:             4,
			Coworkers:           3,
			Coffees:             2,
			ComputerDamageTicks: 240,
			CoworkerDamageTicks: 600,
			SpawnClearance:      3,
			PlacementAttempts:   200,
		},
		Coins: OfficeCoins{
			Value:        10,
			PerItem:      3,
			PerScare:     10,
			ExpireTicks:  600,
			BounceTicks:  20,
			PopTicks:     15,
			SearchRadius: 4,
		},
		Drops: OfficeDrops{
			Interval:     180,
			Cap:          12,
			Radius:       3,
			CoinInterval: 300,
		},
		Respawn: OfficeRespawn{
			MinDistance: 6,
			Attempts:    50,
		},
		Gameplay: OfficeGameplay{
			Lives:               3,
			LevelGoal:           8,
			MaxLevel:            5,
			LevelBonus:          100,
			ExtraExecutiveEvery: 2,
			MaxExecutives:       8,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "level",
				MaxAt: 10,
			},
			Scaling: ScalingConfig{
				MoveChanceMultiplier: 0.5,
				VisionBonus:          2,
				ScaredReduction:      60,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "office", "office_endless":
		return defaultOfficeYAML
	default:
		return nil
	}
}
