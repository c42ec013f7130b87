// Package rungun implements a side-scrolling run-and-gun simulation.
// The player runs and jumps along an endless ground plane, shoots enemies
// that spawn ahead of the camera, and the camera follows the player.
//
// The package owns only simulation state. Hosts feed it an input intent and
// elapsed time each frame through a Driver and draw from a Snapshot.
package rungun

import (
	"math/rand"

	"github.com/vovakirdan/tui-rungun/internal/config"
)

// World is the complete mutable state of one session.
type World struct {
	cfg       config.RunGunConfig
	player    Player
	enemies   []Enemy
	ground    Platform
	cameraX   float64
	viewportW float64
	viewportH float64
	spawner   *Spawner

	kills    int     // Enemies destroyed by bullets
	despawns int     // Enemies left behind the camera
	ticks    int     // Steps taken
	elapsed  float64 // Sum of normalized dt
	farthest float64 // Largest player x reached
}

// InitWorld creates a world with the player at its spawn point, no enemies
// or bullets, the camera at zero and an empty spawn timer.
func InitWorld(cfg config.RunGunConfig, viewportW, viewportH float64, rng Rand) *World {
	w := &World{
		cfg:       cfg,
		player:    newPlayer(cfg),
		enemies:   make([]Enemy, 0, 16),
		ground:    newGround(cfg.World),
		viewportW: viewportW,
		viewportH: viewportH,
		spawner:   NewSpawner(cfg, rng),
	}
	w.farthest = w.player.X
	return w
}

// NewWorld creates a world with the default configuration and a seeded RNG.
func NewWorld(viewportW, viewportH float64, seed int64) *World {
	return InitWorld(config.DefaultRunGunConfig(), viewportW, viewportH, rand.New(rand.NewSource(seed)))
}

// CameraX returns the world x of the viewport's left edge.
func (w *World) CameraX() float64 {
	return w.cameraX
}

// Kills returns the number of enemies destroyed so far.
func (w *World) Kills() int {
	return w.kills
}
