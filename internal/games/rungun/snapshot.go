package rungun

import (
	"math"

	"github.com/vovakirdan/tui-rungun/internal/core"
)

// PlayerView is the renderable part of the player.
type PlayerView struct {
	Box      core.Box
	Health   int
	Facing   int
	OnGround bool
}

// EnemyView is the renderable part of an enemy.
type EnemyView struct {
	Box            core.Box
	Health         int
	HealthFraction float64 // Health / MaxHealth, in (0, 1]
	Kind           string
}

// Snapshot is a read-only copy of the world for renderers.
// Its slices are fresh copies; changing them does not affect the world.
type Snapshot struct {
	Player    PlayerView
	Enemies   []EnemyView
	Bullets   []core.Box
	CameraX   float64
	ViewportW float64
	ViewportH float64
	GroundY   float64

	Kills    int
	Despawns int
	Ticks    int
	Elapsed  float64 // Seconds of simulated time
	Distance float64 // Farthest x reached past the spawn point
}

// Snapshot captures the current world state.
func (w *World) Snapshot() Snapshot {
	p := &w.player
	s := Snapshot{
		Player: PlayerView{
			Box:      p.Box(),
			Health:   p.Health,
			Facing:   p.Facing,
			OnGround: p.OnGround,
		},
		Enemies:   make([]EnemyView, 0, len(w.enemies)),
		Bullets:   make([]core.Box, 0, len(p.Bullets)),
		CameraX:   w.cameraX,
		ViewportW: w.viewportW,
		ViewportH: w.viewportH,
		GroundY:   w.ground.Y,
		Kills:     w.kills,
		Despawns:  w.despawns,
		Ticks:     w.ticks,
		Elapsed:   w.elapsed,
		Distance:  w.farthest - w.cfg.Player.StartX,
	}

	for _, e := range w.enemies {
		frac := 1.0
		if e.MaxHealth > 0 {
			frac = float64(e.Health) / float64(e.MaxHealth)
		}
		s.Enemies = append(s.Enemies, EnemyView{
			Box:            e.Box(),
			Health:         e.Health,
			HealthFraction: frac,
			Kind:           e.Kind,
		})
	}
	for _, b := range p.Bullets {
		s.Bullets = append(s.Bullets, b.Box())
	}
	return s
}

// ToView converts a world x to a viewport-relative x.
func (s Snapshot) ToView(worldX float64) float64 {
	return worldX - s.CameraX
}

// BackgroundOffset returns the viewport x of the first background tile of
// width tileW for a parallax layer scrolling at half the camera speed.
// Tiles are drawn from there every tileW until the viewport is covered.
func (s Snapshot) BackgroundOffset(tileW float64) float64 {
	if tileW <= 0 {
		return 0
	}
	return math.Mod(-s.CameraX*0.5, tileW) - tileW
}
