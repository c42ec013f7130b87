package rungun

import (
	"math"
	"slices"

	"github.com/vovakirdan/tui-rungun/internal/core"
)

// Step advances the world by one frame.
//
// The order below is fixed: movement intent, jump, integration, ground,
// bullets, enemies, camera, spawn. Bullets and enemies are walked back to
// front so removals never shift an element that has not been visited yet.
func (w *World) Step(in core.Intent, dt float64) {
	dt = normalizeDelta(dt)
	p := &w.player

	p.VX = 0
	if in.Left {
		p.VX = -p.Speed
		p.Facing = -1
	}
	if in.Right {
		p.VX = p.Speed
		p.Facing = 1
	}

	// No air jumps: OnGround is only set by the ground check below.
	if in.Jump && p.OnGround {
		p.VY = p.JumpImpulse
		p.OnGround = false
	}

	p.VY += p.Gravity
	p.X += p.VX
	p.Y += p.VY

	p.OnGround = false
	if p.Y+p.H >= w.ground.Y {
		p.Y = w.ground.Y - p.H
		p.VY = 0
		p.OnGround = true
	}

	w.updateBullets()
	w.updateEnemies()

	w.cameraX = p.X - w.viewportW/2

	if e, ok := w.spawner.TrySpawn(dt, w.cameraX, w.viewportW); ok {
		w.enemies = append(w.enemies, e)
	}

	w.ticks++
	w.elapsed += dt
	if p.X > w.farthest {
		w.farthest = p.X
	}
}

// updateBullets moves bullets, culls those that reach the edge of the
// extended view window and applies at most one enemy hit per bullet.
func (w *World) updateBullets() {
	p := &w.player
	minX := w.cameraX - w.cfg.Bullet.CullMargin
	maxX := w.cameraX + w.viewportW + w.cfg.Bullet.CullMargin

	for i := len(p.Bullets) - 1; i >= 0; i-- {
		p.Bullets[i].X += p.Bullets[i].VX
		b := p.Bullets[i]

		if b.X <= minX || b.X >= maxX {
			p.Bullets = slices.Delete(p.Bullets, i, i+1)
			continue
		}

		box := b.Box()
		for j := len(w.enemies) - 1; j >= 0; j-- {
			if !box.Overlaps(w.enemies[j].Box()) {
				continue
			}
			w.enemies[j].Health -= w.cfg.Bullet.Damage
			p.Bullets = slices.Delete(p.Bullets, i, i+1)
			if w.enemies[j].Health <= 0 {
				w.enemies = slices.Delete(w.enemies, j, j+1)
				w.kills++
			}
			break
		}
	}
}

// updateEnemies advances enemies and silently drops those far behind the camera.
func (w *World) updateEnemies() {
	limit := w.cameraX - w.cfg.Enemy.DespawnMargin

	for i := len(w.enemies) - 1; i >= 0; i-- {
		w.enemies[i].X += w.enemies[i].VX
		if w.enemies[i].X < limit {
			w.enemies = slices.Delete(w.enemies, i, i+1)
			w.despawns++
		}
	}
}

// TriggerShoot fires one bullet from the player's muzzle in the facing
// direction. Hosts call it once per shoot key press, never per held frame.
func (w *World) TriggerShoot() {
	p := &w.player
	bc := w.cfg.Bullet

	x := p.X + p.W
	if p.Facing < 0 {
		x = p.X - bc.Width
	}

	p.Bullets = append(p.Bullets, Bullet{
		X:  x,
		Y:  p.Y + p.H/2,
		VX: float64(p.Facing) * bc.Speed,
		W:  bc.Width,
		H:  bc.Height,
	})
}

// normalizeDelta maps negative, NaN and infinite dt to zero.
func normalizeDelta(dt float64) float64 {
	if math.IsNaN(dt) || math.IsInf(dt, 0) || dt < 0 {
		return 0
	}
	return dt
}
