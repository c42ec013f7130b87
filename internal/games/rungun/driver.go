package rungun

import (
	"math"
	"sync"
	"time"

	"github.com/vovakirdan/tui-rungun/internal/core"
)

// Clock provides the wall time used to measure frame deltas.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns a Clock backed by time.Now.
func SystemClock() Clock {
	return systemClock{}
}

// FrameResult describes what a single Frame call did.
type FrameResult struct {
	RawDelta float64 // Measured wall time in seconds
	Delta    float64 // Delta fed into the step
	Clamped  bool    // Whether RawDelta was out of range
	Stepped  bool    // False while paused
	NewKills int     // Kills that happened during this frame
}

// Driver is the only caller of World.Step. It measures elapsed time, clamps
// it, and serializes steps and shots so hosts with several goroutines (input
// handlers, tick timers) never mutate the world concurrently.
type Driver struct {
	mu       sync.Mutex
	world    *World
	clock    Clock
	maxDelta float64
	last     time.Time
	started  bool
	paused   bool
}

// NewDriver wraps a world. A nil clock uses the system clock.
func NewDriver(w *World, clock Clock, maxDelta float64) *Driver {
	if clock == nil {
		clock = SystemClock()
	}
	return &Driver{
		world:    w,
		clock:    clock,
		maxDelta: maxDelta,
	}
}

// Frame runs one step with the wall time elapsed since the previous frame.
// The first frame steps with zero delta. The intent is copied by value, so
// the caller may keep mutating its own input state.
func (d *Driver) Frame(in core.Intent) FrameResult {
	d.mu.Lock()
	defer d.mu.Unlock()

	now := d.clock.Now()
	raw := 0.0
	if d.started {
		raw = now.Sub(d.last).Seconds()
	}
	d.last = now
	d.started = true

	if d.paused {
		return FrameResult{RawDelta: raw}
	}

	dt := ClampDelta(raw, d.maxDelta)
	before := d.world.kills
	d.world.Step(in, dt)

	return FrameResult{
		RawDelta: raw,
		Delta:    dt,
		Clamped:  dt != raw,
		Stepped:  true,
		NewKills: d.world.kills - before,
	}
}

// Shoot fires one bullet. Ignored while paused.
func (d *Driver) Shoot() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.paused {
		return
	}
	d.world.TriggerShoot()
}

// SetPaused freezes or resumes the simulation. Time spent paused is never
// fed into a step.
func (d *Driver) SetPaused(paused bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.paused = paused
}

// Paused reports whether the driver is paused.
func (d *Driver) Paused() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.paused
}

// Snapshot returns a read-only copy of the world.
func (d *Driver) Snapshot() Snapshot {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.world.Snapshot()
}

// ClampDelta bounds dt to [0, max]. Negative, NaN and infinite values become 0.
func ClampDelta(dt, max float64) float64 {
	if math.IsNaN(dt) || math.IsInf(dt, 0) || dt < 0 {
		return 0
	}
	return core.ClampF(dt, 0, max)
}
