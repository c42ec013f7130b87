package rungun

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-rungun/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar    = '█'
	MuzzleChar    = '▶'
	MuzzleLeft    = '◀'
	EnemyChar     = '▓'
	HealthChar    = '▬'
	BulletChar    = '•'
	GroundChar    = '▀'
	SkyMarkerChar = '·'
)

// hudRows is the number of screen rows reserved above the world.
const hudRows = 1

// skyTileW is the parallax background tile width in world pixels.
const skyTileW = 400

// projection maps world pixels to screen cells for one snapshot.
type projection struct {
	cameraX float64
	sx, sy  float64 // Cells per world pixel
}

func newProjection(dst *core.Screen, s Snapshot) projection {
	rows := dst.Height() - hudRows
	if rows < 1 {
		rows = 1
	}
	return projection{
		cameraX: s.CameraX,
		sx:      float64(dst.Width()) / s.ViewportW,
		sy:      float64(rows) / s.ViewportH,
	}
}

// rect projects a world box to a screen rectangle at least one cell in size.
func (p projection) rect(b core.Box) core.Rect {
	x := int(math.Floor((b.X - p.cameraX) * p.sx))
	y := int(math.Floor(b.Y*p.sy)) + hudRows
	w := core.Max(1, int(math.Ceil(b.W*p.sx)))
	h := core.Max(1, int(math.Ceil(b.H*p.sy)))
	return core.NewRect(x, y, w, h)
}

// RenderSnapshot draws a snapshot into dst, scaled to fit the screen.
func RenderSnapshot(dst *core.Screen, s Snapshot, paused bool) {
	dst.Clear()
	if s.ViewportW <= 0 || s.ViewportH <= 0 {
		return
	}
	proj := newProjection(dst, s)

	drawBackground(dst, s, proj)

	groundRow := int(math.Floor(s.GroundY*proj.sy)) + hudRows
	dst.DrawHLine(0, groundRow, dst.Width(), GroundChar, core.ColorGrass)

	for _, e := range s.Enemies {
		r := proj.rect(e.Box)
		dst.DrawRect(r, EnemyChar, core.ColorRed)
		// Health bar above the enemy
		bar := int(math.Ceil(float64(r.W) * e.HealthFraction))
		dst.DrawHLine(r.X, r.Y-1, bar, HealthChar, core.ColorGreen)
	}

	pr := proj.rect(s.Player.Box)
	dst.DrawRect(pr, PlayerChar, core.ColorBrightBlue)
	if s.Player.Facing < 0 {
		dst.SetColored(pr.X-1, pr.Y+pr.H/2, MuzzleLeft, core.ColorWhite)
	} else {
		dst.SetColored(pr.Right(), pr.Y+pr.H/2, MuzzleChar, core.ColorWhite)
	}

	for _, b := range s.Bullets {
		r := proj.rect(b)
		dst.SetColored(r.X, r.Y, BulletChar, core.ColorBrightYellow)
	}

	hud := fmt.Sprintf(" Kills: %d  Enemies: %d  HP: %d  Dist: %.0f  Time: %.1fs ",
		s.Kills, len(s.Enemies), s.Player.Health, s.Distance, s.Elapsed)
	dst.DrawText(1, 0, hud)

	if paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// drawBackground scatters parallax markers in the sky, scrolling at half the camera speed.
func drawBackground(dst *core.Screen, s Snapshot, proj projection) {
	skyRows := int(math.Floor(s.GroundY*proj.sy)) + hudRows
	for x := s.BackgroundOffset(skyTileW); x < s.ViewportW; x += skyTileW {
		for _, frac := range []float64{0.1, 0.45, 0.8} {
			col := int(math.Floor((x + frac*skyTileW) * proj.sx))
			row := hudRows + 1 + int(frac*float64(skyRows-hudRows-1)/2)
			dst.SetColored(col, row, SkyMarkerChar, core.ColorSky)
		}
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)
	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
