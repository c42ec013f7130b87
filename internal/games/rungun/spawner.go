package rungun

import (
	"github.com/vovakirdan/tui-rungun/internal/config"
)

// Rand is the random source used for spawn placement.
// *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64 // Uniform in [0, 1)
}

// Spawner emits one enemy each time its timer exceeds the interval.
type Spawner struct {
	timer    float64
	interval float64
	jitter   float64
	enemy    config.EnemyConfig
	rng      Rand
}

// NewSpawner creates a spawner with an empty timer.
func NewSpawner(cfg config.RunGunConfig, rng Rand) *Spawner {
	return &Spawner{
		interval: cfg.Spawner.Interval,
		jitter:   cfg.Spawner.Jitter,
		enemy:    cfg.Enemy,
		rng:      rng,
	}
}

// TrySpawn accumulates dt and returns an enemy when the timer exceeds the
// interval. The timer then restarts from zero with no carry, so one call
// spawns at most one enemy however large dt is.
func (s *Spawner) TrySpawn(dt, cameraX, viewportW float64) (Enemy, bool) {
	s.timer += dt
	if s.timer <= s.interval {
		return Enemy{}, false
	}
	s.timer = 0

	x := cameraX + viewportW + s.rng.Float64()*s.jitter
	return newEnemy(s.enemy, x), true
}

// Timer returns the seconds accumulated since the last spawn.
func (s *Spawner) Timer() float64 {
	return s.timer
}
