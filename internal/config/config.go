// Package config provides YAML-based configuration loading for the
// run-and-gun simulation and its difficulty presets.
package config

import (
	"errors"
	"fmt"
)

// RunGunConfig contains every tunable constant of the simulation.
type RunGunConfig struct {
	World   WorldConfig   `yaml:"world"`
	Player  PlayerConfig  `yaml:"player"`
	Physics PhysicsConfig `yaml:"physics"`
	Bullet  BulletConfig  `yaml:"bullet"`
	Enemy   EnemyConfig   `yaml:"enemy"`
	Spawner SpawnerConfig `yaml:"spawner"`
	Frame   FrameConfig   `yaml:"frame"`
}

// WorldConfig defines the viewport and the ground plane.
type WorldConfig struct {
	ViewportW    float64 `yaml:"viewport_w"`
	ViewportH    float64 `yaml:"viewport_h"`
	GroundY      float64 `yaml:"ground_y"`
	GroundHeight float64 `yaml:"ground_height"`
}

// PlayerConfig defines the player's spawn point and body.
type PlayerConfig struct {
	StartX float64 `yaml:"start_x"`
	StartY float64 `yaml:"start_y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Health int     `yaml:"health"`
}

// PhysicsConfig defines per-step player motion constants.
type PhysicsConfig struct {
	Speed       float64 `yaml:"speed"`        // Horizontal pixels per step
	JumpImpulse float64 `yaml:"jump_impulse"` // Negative is upward
	Gravity     float64 `yaml:"gravity"`      // Added to vy every step
}

// BulletConfig defines projectiles fired by the player.
type BulletConfig struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Speed      float64 `yaml:"speed"`
	Damage     int     `yaml:"damage"`
	CullMargin float64 `yaml:"cull_margin"` // Distance outside the viewport before removal
}

// EnemyConfig defines spawned enemies.
type EnemyConfig struct {
	Kind          string  `yaml:"kind"`
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	Health        int     `yaml:"health"`
	VX            float64 `yaml:"vx"`
	SpawnY        float64 `yaml:"spawn_y"`
	DespawnMargin float64 `yaml:"despawn_margin"` // Distance behind the camera before despawn
}

// SpawnerConfig defines the enemy spawn cadence.
type SpawnerConfig struct {
	Interval float64 `yaml:"interval"` // Seconds the timer must exceed
	Jitter   float64 `yaml:"jitter"`   // Spawn x spread ahead of the viewport
}

// FrameConfig defines frame driver limits.
type FrameConfig struct {
	MaxDelta float64 `yaml:"max_delta"` // Largest dt fed into a step, in seconds
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI value to a preset. Empty input yields normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q", s)
	}
}

// Validate reports the first structural problem in the config.
func (c RunGunConfig) Validate() error {
	var errs []error
	if c.World.ViewportW <= 0 || c.World.ViewportH <= 0 {
		errs = append(errs, errors.New("world viewport must be positive"))
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		errs = append(errs, errors.New("player size must be positive"))
	}
	if c.Bullet.Width <= 0 || c.Bullet.Height <= 0 {
		errs = append(errs, errors.New("bullet size must be positive"))
	}
	if c.Enemy.Width <= 0 || c.Enemy.Height <= 0 {
		errs = append(errs, errors.New("enemy size must be positive"))
	}
	if c.Enemy.Health <= 0 {
		errs = append(errs, errors.New("enemy health must be positive"))
	}
	if c.Bullet.Damage <= 0 {
		errs = append(errs, errors.New("bullet damage must be positive"))
	}
	if c.Spawner.Interval <= 0 {
		errs = append(errs, errors.New("spawner interval must be positive"))
	}
	if c.Spawner.Jitter < 0 {
		errs = append(errs, errors.New("spawner jitter must not be negative"))
	}
	if c.Frame.MaxDelta <= 0 {
		errs = append(errs, errors.New("frame max_delta must be positive"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: invalid rungun config: %w", errors.Join(errs...))
	}
	return nil
}
