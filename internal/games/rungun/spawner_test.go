package rungun

import (
	"testing"

	"github.com/vovakirdan/tui-rungun/internal/config"
)

func TestSpawnerAccumulates(t *testing.T) {
	s := NewSpawner(config.DefaultRunGunConfig(), fixedRand{0.5})

	for i := 0; i < 3; i++ {
		if _, ok := s.TrySpawn(0.3, 0, 960); ok {
			t.Fatalf("spawned after %d calls (%.1fs), expected none before 1s", i+1, 0.3*float64(i+1))
		}
	}

	e, ok := s.TrySpawn(0.2, 0, 960)
	if !ok {
		t.Fatal("expected a spawn once the timer exceeds 1s")
	}
	if s.Timer() != 0 {
		t.Errorf("timer after spawn = %v, expected 0", s.Timer())
	}
	if e.X != 960+100 {
		t.Errorf("spawn x = %v, expected cameraX + viewportW + 0.5*200 = 1060", e.X)
	}
	if e.Y != 450 || e.Health != 30 || e.MaxHealth != 30 || e.VX != -2 || e.Kind != "grunt" {
		t.Errorf("unexpected enemy: %+v", e)
	}
}

func TestSpawnerThresholdIsExclusive(t *testing.T) {
	s := NewSpawner(config.DefaultRunGunConfig(), fixedRand{0})

	if _, ok := s.TrySpawn(1.0, 0, 960); ok {
		t.Error("timer equal to the interval should not spawn")
	}
	if _, ok := s.TrySpawn(0.001, 0, 960); !ok {
		t.Error("timer past the interval should spawn")
	}
}

func TestSpawnerSingleSpawnOnLargeDelta(t *testing.T) {
	s := NewSpawner(config.DefaultRunGunConfig(), fixedRand{0})

	if _, ok := s.TrySpawn(10, 0, 960); !ok {
		t.Fatal("expected a spawn")
	}
	if s.Timer() != 0 {
		t.Errorf("timer = %v, expected no carry after a large delta", s.Timer())
	}
	if _, ok := s.TrySpawn(0, 0, 960); ok {
		t.Error("a zero delta right after a spawn must not spawn again")
	}
}

func TestSpawnerPlacementFollowsCamera(t *testing.T) {
	s := NewSpawner(config.DefaultRunGunConfig(), fixedRand{0.999})

	e, ok := s.TrySpawn(2, 1500, 960)
	if !ok {
		t.Fatal("expected a spawn")
	}
	if e.X < 1500+960 || e.X >= 1500+960+200 {
		t.Errorf("spawn x = %v outside [2460, 2660)", e.X)
	}
}
