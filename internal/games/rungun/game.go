package rungun

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-rungun/internal/config"
	"github.com/vovakirdan/tui-rungun/internal/core"
)

// Game binds a World and its Driver to a host. Hosts create it once and call
// Reset to start or restart a run.
type Game struct {
	cfg     config.RunGunConfig
	runtime core.RuntimeConfig
	clock   Clock
	world   *World
	driver  *Driver
}

// New creates a game with the given simulation config and the system clock.
func New(cfg config.RunGunConfig) *Game {
	return NewWithClock(cfg, SystemClock())
}

// NewWithClock creates a game whose frame deltas come from clock.
func NewWithClock(cfg config.RunGunConfig, clock Clock) *Game {
	return &Game{cfg: cfg, clock: clock}
}

// ID returns the identifier used for score storage.
func (g *Game) ID() string {
	return "rungun"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Run & Gun"
}

// Reset starts a fresh run. A zero seed picks one from the current time.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if runtime.Seed == 0 {
		runtime.Seed = time.Now().UnixNano()
	}
	g.runtime = runtime

	rng := rand.New(rand.NewSource(runtime.Seed))
	g.world = InitWorld(g.cfg, g.cfg.World.ViewportW, g.cfg.World.ViewportH, rng)
	g.driver = NewDriver(g.world, g.clock, g.cfg.Frame.MaxDelta)
}

// Resize updates the terminal dimensions without restarting the run.
// The world viewport is fixed in world pixels; only the projection changes.
func (g *Game) Resize(screenW, screenH int) {
	g.runtime.ScreenW = screenW
	g.runtime.ScreenH = screenH
}

// Frame advances the simulation by the wall time since the previous frame.
func (g *Game) Frame(in core.Intent) FrameResult {
	return g.driver.Frame(in)
}

// Shoot fires one bullet.
func (g *Game) Shoot() {
	g.driver.Shoot()
}

// TogglePause flips the paused state.
func (g *Game) TogglePause() {
	g.driver.SetPaused(!g.driver.Paused())
}

// Snapshot returns the current renderable state.
func (g *Game) Snapshot() Snapshot {
	return g.driver.Snapshot()
}

// State returns the host-facing summary.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:  g.driver.Snapshot().Kills,
		Paused: g.driver.Paused(),
	}
}

// Render draws the current state into dst.
func (g *Game) Render(dst *core.Screen) {
	RenderSnapshot(dst, g.driver.Snapshot(), g.driver.Paused())
}
