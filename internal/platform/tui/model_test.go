package tui

import (
	"path/filepath"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-rungun/internal/config"
	"github.com/vovakirdan/tui-rungun/internal/core"
	"github.com/vovakirdan/tui-rungun/internal/storage"
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

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func newTestModel(t *testing.T, store *storage.Store, clock *fakeClock, embedded bool) Model {
	t.Helper()
	return NewModel(Options{
		Config:     config.DefaultRunGunConfig(),
		Difficulty: config.DifficultyNormal,
		Runtime:    core.RuntimeConfig{ScreenW: 96, ScreenH: 28, TickRate: 60, Seed: 7},
		Store:      store,
		Player:     "tester",
		HoldWindow: 300 * time.Millisecond,
		Clock:      clock,
		Embedded:   embedded,
	})
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return model, cmd
}

// tickN advances the clock by step before every tick after the first.
func tickN(t *testing.T, m Model, clock *fakeClock, n int, step time.Duration) Model {
	t.Helper()
	for i := 0; i < n; i++ {
		if i > 0 {
			clock.Advance(step)
		}
		m, _ = update(t, m, TickMsg(clock.Now()))
	}
	return m
}

func TestModelHeldKeyMovesPlayer(t *testing.T) {
	clock := newFakeClock()
	m := newTestModel(t, nil, clock, false)

	m, _ = update(t, m, keyPress("d"))

	m = tickN(t, m, clock, 3, 100*time.Millisecond) // t = 0, 100, 200 ms
	if x := m.Snapshot().Player.Box.X; x != 115 {
		t.Fatalf("player X = %v after three held frames, expected 115", x)
	}

	clock.Advance(200 * time.Millisecond) // t = 400 ms, hold lapsed
	m, _ = update(t, m, TickMsg(clock.Now()))
	if x := m.Snapshot().Player.Box.X; x != 115 {
		t.Errorf("player X = %v after release, expected 115", x)
	}
}

func TestModelShootIsPerPress(t *testing.T) {
	clock := newFakeClock()
	m := newTestModel(t, nil, clock, false)

	m, _ = update(t, m, keyPress("j"))
	m, _ = update(t, m, keyPress("j"))

	if n := len(m.Snapshot().Bullets); n != 2 {
		t.Errorf("expected 2 bullets, got %d", n)
	}
}

func TestModelPause(t *testing.T) {
	clock := newFakeClock()
	m := newTestModel(t, nil, clock, false)

	m = tickN(t, m, clock, 2, 16*time.Millisecond)
	ticks := m.Snapshot().Ticks

	m, _ = update(t, m, keyPress("p"))
	m = tickN(t, m, clock, 5, 16*time.Millisecond)
	if got := m.Snapshot().Ticks; got != ticks {
		t.Errorf("paused model advanced from %d to %d ticks", ticks, got)
	}

	m, _ = update(t, m, keyPress("p"))
	m = tickN(t, m, clock, 1, 16*time.Millisecond)
	if got := m.Snapshot().Ticks; got != ticks+1 {
		t.Errorf("expected %d ticks after resume, got %d", ticks+1, got)
	}
}

func TestModelQuitSavesRun(t *testing.T) {
	store := openTestStore(t)
	clock := newFakeClock()
	m := newTestModel(t, store, clock, false)

	m = tickN(t, m, clock, 30, 50*time.Millisecond)
	m, cmd := update(t, m, keyPress("q"))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if !m.IsQuitting() {
		t.Error("model should be quitting")
	}

	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 saved run, got %d", len(runs))
	}
	r := runs[0]
	if r.Player != "tester" || r.Difficulty != "normal" {
		t.Errorf("unexpected run owner: %+v", r)
	}
	if r.Duration < 1.4 || r.Duration > 1.5 {
		t.Errorf("Duration = %v, expected about 1.45", r.Duration)
	}
}

func TestModelShortRunNotSaved(t *testing.T) {
	store := openTestStore(t)
	clock := newFakeClock()
	m := newTestModel(t, store, clock, false)

	m = tickN(t, m, clock, 3, 50*time.Millisecond)
	update(t, m, keyPress("q"))

	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no saved runs, got %d", len(runs))
	}
}

func TestModelRestart(t *testing.T) {
	store := openTestStore(t)
	clock := newFakeClock()
	m := newTestModel(t, store, clock, false)

	m = tickN(t, m, clock, 30, 50*time.Millisecond)
	m, _ = update(t, m, keyPress("r"))

	if ticks := m.Snapshot().Ticks; ticks != 0 {
		t.Errorf("restart should start a fresh world, got %d ticks", ticks)
	}

	// The first run was saved once; quitting right away adds nothing.
	m, _ = update(t, m, keyPress("q"))
	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns failed: %v", err)
	}
	if len(runs) != 1 {
		t.Errorf("expected 1 saved run, got %d", len(runs))
	}
	_ = m
}

func TestModelBackToMenu(t *testing.T) {
	clock := newFakeClock()

	standalone := newTestModel(t, nil, clock, false)
	standalone, _ = update(t, standalone, keyPress("b"))
	if standalone.WantsMenu() {
		t.Error("standalone model has no menu to return to")
	}

	embedded := newTestModel(t, nil, clock, true)
	embedded, _ = update(t, embedded, tea.KeyMsg{Type: tea.KeyEsc})
	if !embedded.WantsMenu() {
		t.Error("embedded model should return to the menu on esc")
	}

	// Ticks after leaving stop the loop.
	_, cmd := update(t, embedded, TickMsg(clock.Now()))
	if cmd != nil {
		t.Error("no tick should be scheduled after leaving the game")
	}
}

func TestModelResizeKeepsRun(t *testing.T) {
	clock := newFakeClock()
	m := newTestModel(t, nil, clock, false)

	m = tickN(t, m, clock, 5, 16*time.Millisecond)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	if ticks := m.Snapshot().Ticks; ticks != 5 {
		t.Errorf("resize should keep the run, got %d ticks", ticks)
	}
	if view := m.View(); view == "" {
		t.Error("View should render after resize")
	}
}

func TestMenuSelect(t *testing.T) {
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24}
	m := NewMenuModel(nil, cfg)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(MenuModel)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(MenuModel)

	if m.Selected() == nil || m.Selected().Difficulty != config.DifficultyHard {
		t.Fatalf("expected hard selected, got %+v", m.Selected())
	}
	if cmd == nil {
		t.Error("standalone menu should quit after a selection")
	}
}

func TestMenuShowsBestKills(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveRun(storage.RunRecord{Difficulty: "easy", Kills: 12}); err != nil {
		t.Fatalf("SaveRun failed: %v", err)
	}

	m := NewMenuModel(store, core.RuntimeConfig{ScreenW: 100, ScreenH: 24})
	if m.items[0].Best != 12 {
		t.Errorf("easy best = %d, expected 12", m.items[0].Best)
	}
	if m.items[2].Best != 0 {
		t.Errorf("hard best = %d, expected 0", m.items[2].Best)
	}
}

func TestSessionFlow(t *testing.T) {
	store := openTestStore(t)
	s := NewSessionModel(SessionOptions{
		Store:    store,
		Runtime:  core.RuntimeConfig{ScreenW: 96, ScreenH: 28, TickRate: 60},
		Game:     config.DefaultRunGunConfig(),
		Username: "guest",
	})

	step := func(msg tea.Msg) tea.Cmd {
		next, cmd := s.Update(msg)
		s = next.(SessionModel)
		return cmd
	}

	if cmd := step(tea.KeyMsg{Type: tea.KeyEnter}); cmd == nil {
		t.Error("starting a game should schedule a tick")
	}
	if s.screen != screenGame {
		t.Fatalf("expected game screen, got %v", s.screen)
	}

	step(keyPress("b"))
	if s.screen != screenMenu {
		t.Fatalf("expected menu after back, got %v", s.screen)
	}

	step(tea.KeyMsg{Type: tea.KeyTab})
	if s.screen != screenScores {
		t.Fatalf("expected scores screen, got %v", s.screen)
	}

	step(tea.KeyMsg{Type: tea.KeyEsc})
	if s.screen != screenMenu {
		t.Fatalf("expected menu after leaving scores, got %v", s.screen)
	}

	if cmd := step(keyPress("q")); cmd == nil {
		t.Error("quit should return a command")
	}
	if s.View() != "" {
		t.Error("quitting session should render nothing")
	}
}
