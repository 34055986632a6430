package config

import (
	_ "embed"
)

//go:embed defaults/dodge.yaml
var defaultDodgeYAML []byte

// DefaultYAML returns the embedded default configuration document.
func DefaultYAML() []byte {
	return append([]byte(nil), defaultDodgeYAML...)
}

// DefaultDodgeConfig returns the default dodge configuration.
func DefaultDodgeConfig() DodgeConfig {
	return DodgeConfig{
		Field: FieldConfig{
			Width:         1000,
			Height:        600,
			Top:           0,
			InfoBar:       50,
			UnitRatio:     0.04802,
			BackgroundPan: 0.5,
		},
		Player: PlayerConfig{
			MaxVelocity:  5,
			MinVelocity:  -5,
			Acceleration: 0.5,
			Deceleration: 0.25,
			AspectRatio:  872.0 / 600.0,
			Lives:        3,
		},
		Levels: []LevelConfig{
			{Obstacles: 25, MinSpeed: 4, MaxSpeed: 5, MinDelayMS: 200, MaxDelayMS: 700, Color: "yellow"},
			{Obstacles: 50, MinSpeed: 4, MaxSpeed: 6, MinDelayMS: 200, MaxDelayMS: 700, Color: "green"},
			{Obstacles: 100, MinSpeed: 3, MaxSpeed: 6, MinDelayMS: 200, MaxDelayMS: 600, Color: "blue"},
			{Obstacles: 150, MinSpeed: 3, MaxSpeed: 7, MinDelayMS: 200, MaxDelayMS: 600, Color: "magenta"},
			{Obstacles: 200, MinSpeed: 3, MaxSpeed: 7, MinDelayMS: 150, MaxDelayMS: 600, Color: "navy"},
			{Obstacles: 250, MinSpeed: 3, MaxSpeed: 8, MinDelayMS: 150, MaxDelayMS: 600, Color: "white"},
			{Obstacles: 300, MinSpeed: 3, MaxSpeed: 8, MinDelayMS: 150, MaxDelayMS: 500, Color: "orange"},
			{Obstacles: 400, MinSpeed: 4, MaxSpeed: 9, MinDelayMS: 100, MaxDelayMS: 500, Color: "salmon"},
			{Obstacles: 500, MinSpeed: 5, MaxSpeed: 10, MinDelayMS: 100, MaxDelayMS: 500, Color: "pink"},
			{Obstacles: 1000, MinSpeed: 5, MaxSpeed: 12, MinDelayMS: 100, MaxDelayMS: 500, Color: "gray"},
		},
		Obstacles: ObstacleConfig{
			HitboxScale:      0.8,
			MinRotationSpeed: 0.02,
			MaxRotationSpeed: 0.12,
		},
		Lanes: LaneConfig{
			Count:  9,
			LockMS: 1000,
		},
		PowerUps: PowerUpConfig{
			Chance:     10,
			LuckyValue: 7,
			DurationMS: 5000,
			Speed:      3,
			RadiusUnit: 0.5,
			Pool:       []string{"halfsize", "doublesize", "lasers", "twin"},
		},
		Lasers: LaserConfig{
			Speed:      10,
			Width:      4,
			Height:     16,
			CooldownMS: 300,
		},
		Timing: TimingConfig{
			LifeLossPauseMS:   1500,
			LevelStartDelayMS: 1000,
		},
		Versus: VersusConfig{
			SpawnDelayMS: 1000,
			Level:        3,
			Lives:        3,
			PowerUpPool:  []string{"halfsize", "doublesize", "twin"},
		},
		Gameplay: GameplayConfig{
			StartLevel: 1,
		},
		Terminal: TerminalConfig{
			HoldMS: 200,
		},
	}
}
