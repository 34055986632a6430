package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Source names where a configuration was loaded from.
type Source string

const (
	SourceCustom   Source = "custom"
	SourceUser     Source = "user"
	SourceLocal    Source = "local"
	SourceEmbedded Source = "embedded"
	SourceBuiltin  Source = "builtin"
)

// LoadDodge loads the dodge configuration.
// Search order: customPath -> ~/.dodge/configs/dodge.yaml -> ./configs/dodge.yaml -> embedded default.
// Files are decoded on top of the defaults, so a partial file only overrides
// the keys it sets. Only an explicit customPath produces an error.
func LoadDodge(customPath string) (DodgeConfig, Source, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultDodgeConfig(), SourceBuiltin, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return DefaultDodgeConfig(), SourceBuiltin, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, SourceCustom, nil
	}

	if userCfgPath := userConfigPath("dodge.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, SourceUser, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", "dodge.yaml")); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, SourceLocal, nil
		}
	}

	if cfg, err := Parse(defaultDodgeYAML); err == nil {
		return cfg, SourceEmbedded, nil
	}
	return DefaultDodgeConfig(), SourceBuiltin, nil
}

// Parse decodes a YAML document over the hardcoded defaults and validates it.
func Parse(data []byte) (DodgeConfig, error) {
	cfg := DefaultDodgeConfig()
	// Lists replace rather than merge.
	cfg.Levels = nil
	cfg.PowerUps.Pool = nil
	cfg.Versus.PowerUpPool = nil

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse: %w", err)
	}

	def := DefaultDodgeConfig()
	if cfg.Levels == nil {
		cfg.Levels = def.Levels
	}
	if cfg.PowerUps.Pool == nil {
		cfg.PowerUps.Pool = def.PowerUps.Pool
	}
	if cfg.Versus.PowerUpPool == nil {
		cfg.Versus.PowerUpPool = def.Versus.PowerUpPool
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Marshal encodes a configuration as YAML.
func Marshal(cfg DodgeConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".dodge", "configs", filename)
}

// ApplyDodgePreset modifies the config based on a difficulty preset.
func ApplyDodgePreset(cfg *DodgeConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Player.Lives = 5
		cfg.Versus.Lives = 5
		cfg.Timing.LifeLossPauseMS = 2000
	case DifficultyHard:
		cfg.Player.Lives = 2
		cfg.Versus.Lives = 2
		cfg.PowerUps.DurationMS = 3500
	}
}
