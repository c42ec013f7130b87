// Package runrec records finished runs to the run history and the host log.
package runrec

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-rungun/internal/config"
	"github.com/vovakirdan/tui-rungun/internal/games/rungun"
	"github.com/vovakirdan/tui-rungun/internal/storage"
)

// MinDuration is the shortest kill-less run worth saving, in seconds.
const MinDuration = 1.0

// Recorder saves each run once. A nil store only logs.
type Recorder struct {
	store      *storage.Store
	logger     *log.Logger
	player     string
	difficulty config.DifficultyPreset
	done       bool
}

// New creates a recorder for runs by player at difficulty.
func New(store *storage.Store, logger *log.Logger, player string, difficulty config.DifficultyPreset) *Recorder {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Recorder{
		store:      store,
		logger:     logger,
		player:     player,
		difficulty: difficulty,
	}
}

// Start marks the beginning of a new run.
func (r *Recorder) Start() {
	r.done = false
	r.logger.Info("run started", "player", r.player, "difficulty", r.difficulty)
}

// Frame logs notable frame events.
func (r *Recorder) Frame(res rungun.FrameResult, kills int) {
	if res.Clamped {
		r.logger.Debug("frame delta clamped", "raw", res.RawDelta, "dt", res.Delta)
	}
	if res.NewKills > 0 {
		r.logger.Info("enemy killed", "new", res.NewKills, "kills", kills)
	}
}

// Finish ends the current run and saves it when it is worth keeping.
// It reports whether a record was written. Later calls before Start are no-ops.
func (r *Recorder) Finish(reason string, s rungun.Snapshot) bool {
	if r.done {
		return false
	}
	r.done = true

	r.logger.Info("run finished",
		"reason", reason,
		"kills", s.Kills,
		"despawns", s.Despawns,
		"distance", s.Distance,
		"elapsed", s.Elapsed,
	)

	if r.store == nil || !Worth(s) {
		return false
	}
	_, err := r.store.SaveRun(storage.RunRecord{
		Player:     r.player,
		Difficulty: string(r.difficulty),
		Kills:      s.Kills,
		Despawns:   s.Despawns,
		Distance:   s.Distance,
		Duration:   s.Elapsed,
	})
	if err != nil {
		r.logger.Error("failed to save run", "err", err)
		return false
	}
	return true
}

// Worth reports whether a run should be saved: it scored or lasted long enough.
func Worth(s rungun.Snapshot) bool {
	return s.Kills > 0 || s.Elapsed >= MinDuration
}
