package runrec

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-rungun/internal/config"
	"github.com/vovakirdan/tui-rungun/internal/games/rungun"
	"github.com/vovakirdan/tui-rungun/internal/storage"
)

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestWorth(t *testing.T) {
	tests := []struct {
		name string
		s    rungun.Snapshot
		want bool
	}{
		{"empty", rungun.Snapshot{}, false},
		{"short without kills", rungun.Snapshot{Elapsed: 0.99}, false},
		{"one second", rungun.Snapshot{Elapsed: 1.0}, true},
		{"quick kill", rungun.Snapshot{Kills: 1, Elapsed: 0.2}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Worth(tc.s); got != tc.want {
				t.Errorf("Worth() = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestFinishSavesOnce(t *testing.T) {
	store := openTestStore(t)
	r := New(store, nil, "ana", config.DifficultyHard)
	r.Start()

	s := rungun.Snapshot{Kills: 4, Despawns: 2, Distance: 1234, Elapsed: 12.5}
	if !r.Finish("quit", s) {
		t.Fatal("first Finish should save")
	}
	if r.Finish("quit", s) {
		t.Error("second Finish should be a no-op")
	}

	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
	got := runs[0]
	if got.Player != "ana" || got.Difficulty != "hard" || got.Kills != 4 ||
		got.Despawns != 2 || got.Distance != 1234 || got.Duration != 12.5 {
		t.Errorf("unexpected record: %+v", got)
	}

	r.Start()
	if !r.Finish("restart", s) {
		t.Error("Finish after Start should save again")
	}
}

func TestFinishWithoutStore(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	r := New(nil, logger, "", config.DifficultyNormal)
	r.Start()
	r.Frame(rungun.FrameResult{RawDelta: 0.5, Delta: 0.1, Clamped: true, Stepped: true}, 0)
	r.Frame(rungun.FrameResult{Stepped: true, NewKills: 1}, 1)

	if r.Finish("quit", rungun.Snapshot{Kills: 1}) {
		t.Error("Finish without a store should not report a save")
	}

	out := buf.String()
	for _, want := range []string{"run started", "frame delta clamped", "enemy killed", "run finished"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}
