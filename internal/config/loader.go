package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrUnknownPreset is returned for a difficulty name that is not defined.
var ErrUnknownPreset = errors.New("config: unknown difficulty preset")

// LoadPacman loads the game configuration.
// Search order: customPath -> ~/.pacman/configs/pacman.yaml -> ./configs/pacman.yaml -> embedded default.
// Files are applied on top of the defaults, so a file only needs the keys it
// changes. The result is validated.
func LoadPacman(customPath string) (PacmanConfig, error) {
	cfg, err := loadPacman(customPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadPacman(customPath string) (PacmanConfig, error) {
	cfg := DefaultPacmanConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("pacman.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
			cfg = DefaultPacmanConfig()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "pacman.yaml")); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
		cfg = DefaultPacmanConfig()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultPacmanYAML, &cfg); err != nil {
		return DefaultPacmanConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pacman", "configs", filename)
}

// ParsePreset maps a difficulty name to its preset. The empty string means
// normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
}

// ApplyPacmanPreset scales the ghosts and the power pellet for a preset.
// Normal leaves the configuration as loaded.
func ApplyPacmanPreset(cfg *PacmanConfig, preset DifficultyPreset) {
	var speed, power, chase float64
	switch preset {
	case DifficultyEasy:
		speed, power, chase = 0.85, 1.5, 0.35
	case DifficultyHard:
		speed, power, chase = 1.15, 0.6, 0.7
	default:
		return
	}

	for _, g := range []*GhostConfig{&cfg.Ghosts.Blinky, &cfg.Ghosts.Pinky, &cfg.Ghosts.Inky, &cfg.Ghosts.Clyde} {
		g.Speed *= speed
	}
	cfg.Rules.PowerDuration = max(1, int(float64(cfg.Rules.PowerDuration)*power))
	cfg.Ghosts.ChaseProbability = chase
}
