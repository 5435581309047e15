package config

import (
	_ "embed"
)

//go:embed defaults/lanedash.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Field: FieldConfig{
			Lanes:  3,
			Width:  360,
			Height: 640,
		},
		Player: PlayerConfig{
			Width:        40,
			Height:       48,
			BottomOffset: 32,
		},
		Entities: EntitiesConfig{
			Obstacle: EntityKindConfig{
				Size:          44,
				SpawnY:        -50,
				MinSpeed:      180,
				MaxSpeed:      260,
				DespawnMargin: 60,
			},
			Positive: EntityKindConfig{
				Size:          28,
				SpawnY:        -70,
				MinSpeed:      120,
				MaxSpeed:      160,
				DespawnMargin: 60,
			},
			Negative: EntityKindConfig{
				Size:          28,
				SpawnY:        -70,
				MinSpeed:      160,
				MaxSpeed:      220,
				DespawnMargin: 60,
			},
		},
		PowerUps: PowerUpsConfig{
			MagnetChance:     0.12,
			MagnetDurationMs: 6000,
			MagnetRange:      120,
			MagnetPull:       40,
			ShieldDurationMs: 3000,
		},
	}
}
