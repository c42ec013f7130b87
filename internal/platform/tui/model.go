package tui

import (
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-rungun/internal/config"
	"github.com/vovakirdan/tui-rungun/internal/core"
	"github.com/vovakirdan/tui-rungun/internal/games/rungun"
	"github.com/vovakirdan/tui-rungun/internal/runrec"
	"github.com/vovakirdan/tui-rungun/internal/storage"
)

// Options configures a game model.
type Options struct {
	Config     config.RunGunConfig
	Difficulty config.DifficultyPreset
	Runtime    core.RuntimeConfig
	Store      *storage.Store // optional
	Logger     *log.Logger    // optional; discards when nil
	Player     string
	HoldWindow time.Duration
	Clock      rungun.Clock // optional; wall clock when nil
	Embedded   bool         // b/esc returns to the caller instead of quitting
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game       *rungun.Game
	screen     *core.Screen
	recorder   *runrec.Recorder
	logger     *log.Logger
	runtime    core.RuntimeConfig
	keys       *KeyMapper
	holds      *HoldTracker
	now        func() time.Time
	embedded   bool
	quitting   bool
	backToMenu bool
}

// NewModel creates a new Bubble Tea model. The run starts in Init.
func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	clock := opts.Clock
	if clock == nil {
		clock = rungun.SystemClock()
	}
	window := opts.HoldWindow
	if window <= 0 {
		window = DefaultHoldWindow
	}
	difficulty := opts.Difficulty
	if difficulty == "" {
		difficulty = config.DifficultyNormal
	}
	cfg := opts.Config
	config.ApplyRunGunPreset(&cfg, difficulty)

	m := Model{
		game:     rungun.NewWithClock(cfg, clock),
		screen:   core.NewScreen(opts.Runtime.ScreenW, opts.Runtime.ScreenH),
		recorder: runrec.New(opts.Store, logger, opts.Player, difficulty),
		logger:   logger,
		runtime:  opts.Runtime,
		keys:     NewKeyMapper(),
		holds:    NewHoldTracker(window),
		now:      clock.Now,
		embedded: opts.Embedded,
	}
	m.game.Reset(m.runtime)
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.recorder.Start()
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.embedded {
		switch msg.String() {
		case "b", "esc":
			m.finishRun("menu")
			m.backToMenu = true
			return m, nil
		}
	}

	action := m.keys.MapKey(msg)
	switch action {
	case core.ActionQuit:
		m.finishRun("quit")
		m.quitting = true
		return m, tea.Quit

	case core.ActionShoot:
		m.game.Shoot()

	case core.ActionPause:
		m.game.TogglePause()
		m.holds.ReleaseAll()
		m.logger.Debug("pause toggled", "paused", m.game.State().Paused)

	case core.ActionRestart:
		m.finishRun("restart")
		m.runtime.Seed = 0
		m.game.Reset(m.runtime)
		m.holds.ReleaseAll()
		m.recorder.Start()

	default:
		if action.IsHeld() {
			m.holds.Press(action, m.now())
		}
	}

	return m, nil
}

// handleResize processes window resize events. The run keeps going.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.game.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick advances one frame with the currently held controls.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	res := m.game.Frame(m.holds.Intent(m.now()))
	m.recorder.Frame(res, m.game.State().Score)

	return m, tickCmd(m.runtime.TickRate)
}

// finishRun records the current run once.
func (m Model) finishRun(reason string) {
	m.recorder.Finish(reason, m.game.Snapshot())
}

// WantsMenu reports whether the player asked to leave the game.
func (m Model) WantsMenu() bool {
	return m.backToMenu
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Snapshot returns the current world state.
func (m Model) Snapshot() rungun.Snapshot {
	return m.game.Snapshot()
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with a new game model.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
