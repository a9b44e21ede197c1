package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadSki loads Ski Runner configuration.
// Search order: customPath -> ~/.skirun/configs/ski.yaml -> ./configs/ski.yaml -> embedded default
func LoadSki(customPath string) (SkiConfig, error) {
	var cfg SkiConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := Validate(cfg); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("ski.yaml"); userCfgPath != "" {
		if c, ok := tryLoad(userCfgPath); ok {
			return c, nil
		}
	}

	// Try local configs directory
	if c, ok := tryLoad(filepath.Join("configs", "ski.yaml")); ok {
		return c, nil
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultSkiYAML, &cfg); err != nil {
		return DefaultSkiConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryLoad reads an optional config file. Missing, unparsable or invalid files are skipped.
func tryLoad(path string) (SkiConfig, bool) {
	var cfg SkiConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	if err := Validate(cfg); err != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".skirun", "configs", filename)
}

// Marshal renders a config back to YAML (used by `skirun config dump`).
func Marshal(cfg SkiConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

// Validate reports structural problems the simulation cannot run with.
func Validate(cfg SkiConfig) error {
	var errs []error

	w := cfg.World
	if w.LaneWidth <= 0 {
		errs = append(errs, errors.New("world.lane_width must be positive"))
	}
	if w.SpawnDistance <= 0 || w.RemoveDistance <= 0 {
		errs = append(errs, errors.New("world.spawn_distance and world.remove_distance must be positive"))
	}
	if w.MaxStep <= 0 {
		errs = append(errs, errors.New("world.max_step must be positive"))
	}
	if w.StartLanes < 1 || w.StartLanes%2 == 0 {
		errs = append(errs, fmt.Errorf("world.start_lanes must be a positive odd number, got %d", w.StartLanes))
	}
	if w.MaxLanes < w.StartLanes || w.MaxLanes%2 == 0 {
		errs = append(errs, fmt.Errorf("world.max_lanes must be odd and >= start_lanes, got %d", w.MaxLanes))
	}

	s := cfg.Spawn
	if s.ObstacleWeight < 0 || s.RampWeight < 0 || s.CashLineWeight < 0 ||
		s.ObstacleWeight+s.RampWeight+s.CashLineWeight <= 0 {
		errs = append(errs, errors.New("spawn weights must be non-negative and sum to more than zero"))
	}
	if s.CashLineMin < 1 || s.CashLineMax < s.CashLineMin {
		errs = append(errs, errors.New("spawn.cash_line_min/max must satisfy 1 <= min <= max"))
	}

	if len(cfg.Targets) == 0 {
		errs = append(errs, errors.New("targets must not be empty"))
	}
	switch cfg.Difficulty.Progression.Type {
	case ProgressionDistance, ProgressionTime, ProgressionNone, "":
	default:
		errs = append(errs, fmt.Errorf("difficulty.progression.type %q is not distance, time or none", cfg.Difficulty.Progression.Type))
	}
	if cfg.Progression.Lives < 1 {
		errs = append(errs, errors.New("progression.lives must be at least 1"))
	}

	return errors.Join(errs...)
}

// ApplySkiPreset modifies the config based on a difficulty preset.
func ApplySkiPreset(cfg *SkiConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	switch preset {
	case DifficultyEasy:
		cfg.Progression.Lives = 5
	case DifficultyHard:
		cfg.Progression.Lives = 2
	}
}
