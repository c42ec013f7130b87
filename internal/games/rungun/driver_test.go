package rungun

import (
	"sync"
	"testing"
	"time"

	"github.com/vovakirdan/tui-rungun/internal/core"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Unix(1700000000, 0)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestClampDelta(t *testing.T) {
	tests := []struct {
		name string
		dt   float64
		want float64
	}{
		{"in range", 0.016, 0.016},
		{"zero", 0, 0},
		{"long pause", 5, 0.1},
		{"negative", -0.5, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ClampDelta(tc.dt, 0.1); got != tc.want {
				t.Errorf("ClampDelta(%v) = %v, expected %v", tc.dt, got, tc.want)
			}
		})
	}
}

func TestDriverFrameMeasuresAndClamps(t *testing.T) {
	clock := newFakeClock()
	d := NewDriver(newTestWorld(), clock, 0.1)

	first := d.Frame(core.Intent{})
	if !first.Stepped || first.Delta != 0 {
		t.Errorf("first frame = %+v, expected a zero-delta step", first)
	}

	clock.Advance(50 * time.Millisecond)
	r := d.Frame(core.Intent{})
	if r.Delta != 0.05 || r.Clamped {
		t.Errorf("frame after 50ms = %+v", r)
	}

	clock.Advance(3 * time.Second)
	r = d.Frame(core.Intent{})
	if r.Delta != 0.1 || !r.Clamped || r.RawDelta != 3 {
		t.Errorf("frame after 3s = %+v, expected clamp to 0.1", r)
	}

	if got := d.Snapshot().Ticks; got != 3 {
		t.Errorf("ticks = %d, expected 3", got)
	}
}

func TestDriverLagSpikeSpawnsOnce(t *testing.T) {
	clock := newFakeClock()
	d := NewDriver(newTestWorld(), clock, 0.1)
	d.Frame(core.Intent{})

	// Eleven clamped frames cross the 1s threshold once.
	for i := 0; i < 11; i++ {
		clock.Advance(10 * time.Second)
		d.Frame(core.Intent{})
	}

	if got := len(d.Snapshot().Enemies); got != 1 {
		t.Errorf("enemies after lag spikes = %d, expected 1", got)
	}
}

func TestDriverPause(t *testing.T) {
	clock := newFakeClock()
	d := NewDriver(newTestWorld(), clock, 0.1)
	d.Frame(core.Intent{})

	d.SetPaused(true)
	clock.Advance(time.Second)
	r := d.Frame(core.Intent{Right: true})
	if r.Stepped {
		t.Error("paused driver should not step")
	}
	d.Shoot()
	if n := len(d.Snapshot().Bullets); n != 0 {
		t.Errorf("paused driver should ignore shots, have %d bullets", n)
	}

	d.SetPaused(false)
	clock.Advance(20 * time.Millisecond)
	r = d.Frame(core.Intent{})
	if !r.Stepped || r.Delta != 0.02 {
		t.Errorf("resumed frame = %+v, expected only the time since the paused frame", r)
	}
}

func TestDriverReportsKills(t *testing.T) {
	clock := newFakeClock()
	w := centeredWorld(t)
	placeTarget(w, 600)
	w.enemies[0].Health = 10
	d := NewDriver(w, clock, 0.1)

	w.player.Bullets = append(w.player.Bullets, Bullet{X: 585, Y: 475, VX: 10, W: 10, H: 4})
	r := d.Frame(core.Intent{})
	if r.NewKills != 1 {
		t.Errorf("NewKills = %d, expected 1", r.NewKills)
	}
}

func TestDriverConcurrentCallers(t *testing.T) {
	clock := newFakeClock()
	d := NewDriver(newTestWorld(), clock, 0.1)

	var wg sync.WaitGroup
	for g := 0; g < 4; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				clock.Advance(time.Millisecond)
				d.Frame(core.Intent{Right: true})
				d.Shoot()
				_ = d.Snapshot()
			}
		}()
	}
	wg.Wait()

	if got := d.Snapshot().Ticks; got != 400 {
		t.Errorf("ticks = %d, expected 400 sequential steps", got)
	}
}
