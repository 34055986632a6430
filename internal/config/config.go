// Package config provides YAML-based game configuration loading and
// difficulty presets for the dodge game.
package config

import (
	"errors"
	"fmt"
)

// MaxLevels is the number of single-player levels.
const MaxLevels = 10

// DodgeConfig contains all configuration for the dodge game.
type DodgeConfig struct {
	Field     FieldConfig    `yaml:"field"`
	Player    PlayerConfig   `yaml:"player"`
	Levels    []LevelConfig  `yaml:"levels"`
	Obstacles ObstacleConfig `yaml:"obstacles"`
	Lanes     LaneConfig     `yaml:"lanes"`
	PowerUps  PowerUpConfig  `yaml:"powerups"`
	Lasers    LaserConfig    `yaml:"lasers"`
	Timing    TimingConfig   `yaml:"timing"`
	Versus    VersusConfig   `yaml:"versus"`
	Gameplay  GameplayConfig `yaml:"gameplay"`
	Terminal  TerminalConfig `yaml:"terminal"`
}

// FieldConfig defines the logical play field. Hosts scale it to their surface.
type FieldConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	Top           float64 `yaml:"top"`
	InfoBar       float64 `yaml:"info_bar"`       // Reserved at the bottom for the HUD
	UnitRatio     float64 `yaml:"unit_ratio"`     // Sprite unit as a fraction of width
	BackgroundPan float64 `yaml:"background_pan"` // Background scroll per tick
}

// Bottom returns the lowest y a player may occupy.
func (f FieldConfig) Bottom() float64 {
	return f.Height - f.InfoBar
}

// PlayerConfig defines rocket movement parameters.
type PlayerConfig struct {
	MaxVelocity  float64 `yaml:"max_velocity"`
	MinVelocity  float64 `yaml:"min_velocity"`
	Acceleration float64 `yaml:"acceleration"`
	Deceleration float64 `yaml:"deceleration"`
	AspectRatio  float64 `yaml:"aspect_ratio"` // Height over width of the rocket sprite
	Lives        int     `yaml:"lives"`
}

// LevelConfig holds the per-level difficulty table row.
type LevelConfig struct {
	Obstacles  int    `yaml:"obstacles"` // Obstacles to pass to clear the level
	MinSpeed   int    `yaml:"min_speed"`
	MaxSpeed   int    `yaml:"max_speed"`
	MinDelayMS int    `yaml:"min_delay_ms"`
	MaxDelayMS int    `yaml:"max_delay_ms"`
	Color      string `yaml:"color"`
}

// ObstacleConfig defines obstacle geometry.
type ObstacleConfig struct {
	HitboxScale      float64 `yaml:"hitbox_scale"`
	MinRotationSpeed float64 `yaml:"min_rotation_speed"`
	MaxRotationSpeed float64 `yaml:"max_rotation_speed"`
}

// LaneConfig defines the spawn lanes.
type LaneConfig struct {
	Count  int `yaml:"count"`
	LockMS int `yaml:"lock_ms"`
}

// PowerUpConfig defines power-up spawning and effects.
type PowerUpConfig struct {
	Chance     int      `yaml:"chance"`      // Roll is rand.Intn(Chance)
	LuckyValue int      `yaml:"lucky_value"` // Roll value that spawns a power-up
	DurationMS int      `yaml:"duration_ms"`
	Speed      float64  `yaml:"speed"`
	RadiusUnit float64  `yaml:"radius_unit"` // Radius as a fraction of the sprite unit
	Pool       []string `yaml:"pool"`
}

// LaserConfig defines laser shots.
type LaserConfig struct {
	Speed      float64 `yaml:"speed"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	CooldownMS int     `yaml:"cooldown_ms"`
}

// TimingConfig defines state machine pauses.
type TimingConfig struct {
	LifeLossPauseMS   int `yaml:"life_loss_pause_ms"`
	LevelStartDelayMS int `yaml:"level_start_delay_ms"`
}

// VersusConfig defines the two-player mode.
type VersusConfig struct {
	SpawnDelayMS int      `yaml:"spawn_delay_ms"`
	Level        int      `yaml:"level"` // Level row used for obstacle speed
	Lives        int      `yaml:"lives"`
	PowerUpPool  []string `yaml:"powerup_pool"`
}

// GameplayConfig defines run-level options.
type GameplayConfig struct {
	StartLevel int `yaml:"start_level"`
}

// TerminalConfig tunes the terminal host.
type TerminalConfig struct {
	HoldMS int `yaml:"hold_ms"` // How long a key counts as held after its last repeat
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI string into a preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	case "":
		return DifficultyNormal, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// Level returns the table row for a 1-based level, clamped to the table.
func (c DodgeConfig) Level(level int) LevelConfig {
	if len(c.Levels) == 0 {
		return LevelConfig{}
	}
	if level < 1 {
		level = 1
	}
	if level > len(c.Levels) {
		level = len(c.Levels)
	}
	return c.Levels[level-1]
}

// Unit returns the base sprite size for the configured field width.
func (c DodgeConfig) Unit() float64 {
	return float64(int(c.Field.UnitRatio * c.Field.Width))
}

// Validate reports every invalid field at once.
func (c DodgeConfig) Validate() error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		add("field: size must be positive, got %vx%v", c.Field.Width, c.Field.Height)
	}
	if c.Field.InfoBar < 0 || c.Field.Top < 0 || c.Field.Top >= c.Field.Bottom() {
		add("field: top %v and info bar %v leave no room to play", c.Field.Top, c.Field.InfoBar)
	}
	if c.Field.UnitRatio <= 0 || c.Field.UnitRatio >= 0.5 {
		add("field: unit_ratio must be in (0, 0.5), got %v", c.Field.UnitRatio)
	}
	if c.Player.MaxVelocity <= 0 || c.Player.MinVelocity >= 0 {
		add("player: velocity range [%v, %v] must straddle zero", c.Player.MinVelocity, c.Player.MaxVelocity)
	}
	if c.Player.Acceleration <= 0 || c.Player.Deceleration <= 0 {
		add("player: acceleration and deceleration must be positive")
	}
	if c.Player.AspectRatio <= 0 {
		add("player: aspect_ratio must be positive")
	}
	if c.Player.Lives < 1 {
		add("player: lives must be at least 1, got %d", c.Player.Lives)
	}
	if len(c.Levels) != MaxLevels {
		add("levels: want %d entries, got %d", MaxLevels, len(c.Levels))
	}
	for i, l := range c.Levels {
		n := i + 1
		if l.Obstacles < 1 {
			add("levels[%d]: obstacles must be at least 1", n)
		}
		if l.MinSpeed < 1 || l.MaxSpeed < l.MinSpeed {
			add("levels[%d]: speed range [%d, %d] is invalid", n, l.MinSpeed, l.MaxSpeed)
		}
		if l.MinDelayMS < 0 || l.MaxDelayMS < l.MinDelayMS {
			add("levels[%d]: delay range [%d, %d] is invalid", n, l.MinDelayMS, l.MaxDelayMS)
		}
	}
	if c.Obstacles.HitboxScale <= 0 || c.Obstacles.HitboxScale > 1 {
		add("obstacles: hitbox_scale must be in (0, 1], got %v", c.Obstacles.HitboxScale)
	}
	if c.Obstacles.MaxRotationSpeed < c.Obstacles.MinRotationSpeed {
		add("obstacles: rotation speed range is inverted")
	}
	if c.Lanes.Count < 1 || c.Lanes.LockMS < 0 {
		add("lanes: count %d and lock_ms %d are invalid", c.Lanes.Count, c.Lanes.LockMS)
	}
	if c.PowerUps.Chance < 1 || c.PowerUps.LuckyValue < 0 || c.PowerUps.LuckyValue >= c.PowerUps.Chance {
		add("powerups: lucky_value %d must be in [0, %d)", c.PowerUps.LuckyValue, c.PowerUps.Chance)
	}
	if c.PowerUps.DurationMS <= 0 || c.PowerUps.Speed <= 0 || c.PowerUps.RadiusUnit <= 0 {
		add("powerups: duration, speed and radius must be positive")
	}
	if err := validatePool("powerups.pool", c.PowerUps.Pool); err != nil {
		errs = append(errs, err)
	}
	if c.Lasers.Speed <= 0 || c.Lasers.Width <= 0 || c.Lasers.Height <= 0 || c.Lasers.CooldownMS < 0 {
		add("lasers: speed and size must be positive")
	}
	if c.Timing.LifeLossPauseMS < 0 || c.Timing.LevelStartDelayMS < 0 {
		add("timing: delays must not be negative")
	}
	if c.Versus.SpawnDelayMS <= 0 {
		add("versus: spawn_delay_ms must be positive")
	}
	if c.Versus.Level < 1 || c.Versus.Level > MaxLevels {
		add("versus: level must be in [1, %d], got %d", MaxLevels, c.Versus.Level)
	}
	if c.Versus.Lives < 1 {
		add("versus: lives must be at least 1")
	}
	if err := validatePool("versus.powerup_pool", c.Versus.PowerUpPool); err != nil {
		errs = append(errs, err)
	}
	if c.Gameplay.StartLevel < 1 || c.Gameplay.StartLevel > MaxLevels {
		add("gameplay: start_level must be in [1, %d], got %d", MaxLevels, c.Gameplay.StartLevel)
	}
	if c.Terminal.HoldMS <= 0 {
		add("terminal: hold_ms must be positive")
	}

	return errors.Join(errs...)
}

// PowerUpNames lists the recognised power-up names in pool entries.
var PowerUpNames = []string{"halfsize", "doublesize", "lasers", "twin"}

func validatePool(name string, pool []string) error {
	if len(pool) == 0 {
		return fmt.Errorf("%s: must not be empty", name)
	}
	for _, p := range pool {
		ok := false
		for _, known := range PowerUpNames {
			if p == known {
				ok = true
				break
			}
		}
		if !ok {
			return fmt.Errorf("%s: unknown power-up %q", name, p)
		}
	}
	return nil
}
