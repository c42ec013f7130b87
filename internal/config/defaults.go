package config

import (
	_ "embed"
)

//go:embed defaults/rungun.yaml
var defaultRunGunYAML []byte

// DefaultRunGunConfig returns the reference configuration.
// It must stay in sync with defaults/rungun.yaml.
func DefaultRunGunConfig() RunGunConfig {
	return RunGunConfig{
		World: WorldConfig{
			ViewportW:    960,
			ViewportH:    540,
			GroundY:      500,
			GroundHeight: 40,
		},
		Player: PlayerConfig{
			StartX: 100,
			StartY: 400,
			Width:  30,
			Height: 50,
			Health: 100,
		},
		Physics: PhysicsConfig{
			Speed:       5,
			JumpImpulse: -14,
			Gravity:     0.8,
		},
		Bullet: BulletConfig{
			Width:      10,
			Height:     4,
			Speed:      10,
			Damage:     10,
			CullMargin: 50,
		},
		Enemy: EnemyConfig{
			Kind:          "grunt",
			Width:         30,
			Height:        50,
			Health:        30,
			VX:            -2,
			SpawnY:        450,
			DespawnMargin: 200,
		},
		Spawner: SpawnerConfig{
			Interval: 1.0,
			Jitter:   200,
		},
		Frame: FrameConfig{
			MaxDelta: 0.1,
		},
	}
}

// DefaultYAML returns the embedded default YAML document.
func DefaultYAML() []byte {
	return defaultRunGunYAML
}
