// Package gui hosts the game in a desktop window using Ebitengine.
// Unlike a terminal, the window reports real key releases, so movement
// is read straight from the keyboard state every frame.
package gui

import (
	"fmt"
	"image/color"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-rungun/internal/config"
	"github.com/vovakirdan/tui-rungun/internal/core"
	"github.com/vovakirdan/tui-rungun/internal/games/rungun"
	"github.com/vovakirdan/tui-rungun/internal/runrec"
	"github.com/vovakirdan/tui-rungun/internal/storage"
)

const hillTileW = 400

var (
	colorSky        = color.RGBA{135, 206, 235, 255}
	colorHill       = color.RGBA{110, 180, 210, 255}
	colorGround     = color.RGBA{34, 139, 34, 255}
	colorPlayer     = color.RGBA{30, 90, 220, 255}
	colorMuzzle     = color.RGBA{20, 40, 120, 255}
	colorEnemy      = color.RGBA{200, 40, 40, 255}
	colorHealthBack = color.RGBA{100, 0, 0, 255}
	colorHealth     = color.RGBA{0, 255, 0, 255}
	colorBullet     = color.RGBA{255, 220, 0, 255}
	colorShade      = color.RGBA{0, 0, 0, 128}
)

// Options configures the desktop window.
type Options struct {
	Config     config.RunGunConfig
	Difficulty config.DifficultyPreset
	Runtime    core.RuntimeConfig
	Store      *storage.Store // optional
	Logger     *log.Logger    // optional
	Player     string
}

// Window is an ebiten.Game driving one run at a time.
type Window struct {
	game     *rungun.Game
	recorder *runrec.Recorder
	runtime  core.RuntimeConfig
	logger   *log.Logger
	width    int
	height   int
}

// New creates a window host and starts the first run.
func New(opts Options) *Window {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	difficulty := opts.Difficulty
	if difficulty == "" {
		difficulty = config.DifficultyNormal
	}
	cfg := opts.Config
	config.ApplyRunGunPreset(&cfg, difficulty)

	w := &Window{
		game:     rungun.New(cfg),
		recorder: runrec.New(opts.Store, logger, opts.Player, difficulty),
		runtime:  opts.Runtime,
		logger:   logger,
		width:    int(cfg.World.ViewportW),
		height:   int(cfg.World.ViewportH),
	}
	w.game.Reset(w.runtime)
	w.recorder.Start()
	return w
}

// readIntent samples the held movement keys.
func readIntent() core.Intent {
	return core.Intent{
		Left:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right: ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Jump: ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW) ||
			ebiten.IsKeyPressed(ebiten.KeySpace),
	}
}

// Update handles edge-triggered keys and advances one frame.
func (w *Window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		w.recorder.Finish("quit", w.game.Snapshot())
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		w.game.TogglePause()
		w.logger.Debug("pause toggled", "paused", w.game.State().Paused)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		w.recorder.Finish("restart", w.game.Snapshot())
		w.runtime.Seed = 0
		w.game.Reset(w.runtime)
		w.recorder.Start()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyJ) || inpututil.IsKeyJustPressed(ebiten.KeyK) {
		w.game.Shoot()
	}

	res := w.game.Frame(readIntent())
	w.recorder.Frame(res, w.game.State().Score)
	return nil
}

// Draw renders the latest snapshot.
func (w *Window) Draw(screen *ebiten.Image) {
	s := w.game.Snapshot()
	screen.Fill(colorSky)

	for x := s.BackgroundOffset(hillTileW); x < s.ViewportW; x += hillTileW {
		vector.DrawFilledRect(screen, float32(x+hillTileW/4), float32(s.GroundY-80),
			hillTileW/2, 80, colorHill, false)
	}

	vector.DrawFilledRect(screen, 0, float32(s.GroundY),
		float32(s.ViewportW), float32(s.ViewportH-s.GroundY), colorGround, false)

	for _, e := range s.Enemies {
		drawBox(screen, s, e.Box, colorEnemy)
		bar := core.NewBox(e.Box.X, e.Box.Y-8, e.Box.W, 4)
		drawBox(screen, s, bar, colorHealthBack)
		bar.W *= e.HealthFraction
		drawBox(screen, s, bar, colorHealth)
	}

	p := s.Player.Box
	drawBox(screen, s, p, colorPlayer)
	muzzleX := p.Right()
	if s.Player.Facing < 0 {
		muzzleX = p.X - 8
	}
	drawBox(screen, s, core.NewBox(muzzleX, p.Y+p.H/2-2, 8, 4), colorMuzzle)

	for _, b := range s.Bullets {
		drawBox(screen, s, b, colorBullet)
	}

	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"Kills: %d  Enemies: %d  HP: %d  Dist: %.0f  Time: %.1fs  FPS: %.0f",
		s.Kills, len(s.Enemies), s.Player.Health, s.Distance, s.Elapsed, ebiten.ActualFPS(),
	))

	if w.game.State().Paused {
		vector.DrawFilledRect(screen, 0, 0, float32(w.width), float32(w.height), colorShade, false)
		ebitenutil.DebugPrintAt(screen, "PAUSED - press P to resume", w.width/2-80, w.height/2)
	}
}

// drawBox fills a world-space box translated by the camera.
func drawBox(screen *ebiten.Image, s rungun.Snapshot, b core.Box, clr color.Color) {
	vector.DrawFilledRect(screen, float32(s.ToView(b.X)), float32(b.Y),
		float32(b.W), float32(b.H), clr, false)
}

// Layout keeps the logical screen at the world viewport size.
func (w *Window) Layout(_, _ int) (int, int) {
	return w.width, w.height
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	w := New(opts)

	ebiten.SetWindowSize(w.width, w.height)
	ebiten.SetWindowTitle(w.game.Title())
	ebiten.SetWindowResizable(true)
	if opts.Runtime.TickRate > 0 {
		ebiten.SetTPS(opts.Runtime.TickRate)
	}

	err := ebiten.RunGame(w)
	w.recorder.Finish("closed", w.game.Snapshot())
	if err != nil {
		return fmt.Errorf("gui: %w", err)
	}
	return nil
}
