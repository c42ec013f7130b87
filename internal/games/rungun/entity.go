package rungun

import (
	"github.com/vovakirdan/tui-rungun/internal/config"
	"github.com/vovakirdan/tui-rungun/internal/core"
)

// Player is the single controllable entity of a world.
type Player struct {
	X, Y        float64 // Top-left corner in world pixels
	VX, VY      float64 // Pixels per step
	W, H        float64
	Speed       float64
	JumpImpulse float64 // Negative is upward
	Gravity     float64
	OnGround    bool
	Facing      int // -1 left, +1 right
	Health      int // Never decremented by the simulation
	Bullets     []Bullet
}

// Box returns the player's collision box.
func (p *Player) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.W, p.H)
}

// Bullet is a projectile owned by the player.
type Bullet struct {
	X, Y float64
	VX   float64
	W, H float64
}

// Box returns the bullet's collision box.
func (b Bullet) Box() core.Box {
	return core.NewBox(b.X, b.Y, b.W, b.H)
}

// Enemy walks left at a constant velocity until killed or left behind.
type Enemy struct {
	X, Y      float64
	W, H      float64
	VX        float64
	Health    int
	MaxHealth int
	Kind      string
}

// Box returns the enemy's collision box.
func (e Enemy) Box() core.Box {
	return core.NewBox(e.X, e.Y, e.W, e.H)
}

// Platform is a static ground segment. Only its top edge is used for collision.
type Platform struct {
	X, Y float64
	W, H float64
}

// newPlayer builds the player at its configured spawn point.
func newPlayer(cfg config.RunGunConfig) Player {
	return Player{
		X:           cfg.Player.StartX,
		Y:           cfg.Player.StartY,
		W:           cfg.Player.Width,
		H:           cfg.Player.Height,
		Speed:       cfg.Physics.Speed,
		JumpImpulse: cfg.Physics.JumpImpulse,
		Gravity:     cfg.Physics.Gravity,
		Facing:      1,
		Health:      cfg.Player.Health,
		Bullets:     make([]Bullet, 0, 16),
	}
}

// newEnemy builds a full-health enemy at world x.
func newEnemy(cfg config.EnemyConfig, x float64) Enemy {
	return Enemy{
		X:         x,
		Y:         cfg.SpawnY,
		W:         cfg.Width,
		H:         cfg.Height,
		VX:        cfg.VX,
		Health:    cfg.Health,
		MaxHealth: cfg.Health,
		Kind:      cfg.Kind,
	}
}

// newGround builds the single ground plane. Its width stands in for infinity.
func newGround(cfg config.WorldConfig) Platform {
	return Platform{X: 0, Y: cfg.GroundY, W: 999999, H: cfg.GroundHeight}
}
