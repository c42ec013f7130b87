package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadRunGun loads the simulation configuration.
// Search order: customPath -> ~/.rungun/configs/rungun.yaml -> ./configs/rungun.yaml -> embedded default.
// Files are layered over the defaults, so a partial file only overrides the keys it sets.
func LoadRunGun(customPath string) (RunGunConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return RunGunConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parseRunGun(data)
		if err != nil {
			return RunGunConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory.
	// Broken files here are skipped rather than reported.
	for _, path := range []string{userConfigPath("rungun.yaml"), filepath.Join("configs", "rungun.yaml")} {
		if path == "" {
			continue
		}
		if data, err := os.ReadFile(path); err == nil {
			if cfg, err := parseRunGun(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Use embedded default YAML
	cfg, err := parseRunGun(defaultRunGunYAML)
	if err != nil {
		return DefaultRunGunConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseRunGun decodes data over the hardcoded defaults and validates the result.
func parseRunGun(data []byte) (RunGunConfig, error) {
	cfg := DefaultRunGunConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RunGunConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return RunGunConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".rungun", "configs", filename)
}

// ApplyRunGunPreset adjusts enemy toughness and spawn cadence for a preset.
// Normal leaves the config untouched.
func ApplyRunGunPreset(cfg *RunGunConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Enemy.Health = 20
		cfg.Enemy.VX = -1.5
		cfg.Spawner.Interval = 1.5
	case DifficultyHard:
		cfg.Enemy.Health = 40
		cfg.Enemy.VX = -3
		cfg.Spawner.Interval = 0.7
	}
}
