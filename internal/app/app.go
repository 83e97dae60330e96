//go:build ebiten

package app

import (
	"time"

	"mad-life/internal/core"
	"mad-life/internal/render"
	"mad-life/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a Session to the ebiten.Game interface. Playback runs on a
// FrameClock advanced from Update, so ticks, clicks and key presses all run
// on ebiten's update goroutine one after another.
type Game struct {
	session *Session
	clock   *core.FrameClock
	painter *render.GridPainter
	hud     *ui.HUD

	scale int
}

// New constructs a Game for the provided session. clock must be the
// scheduler the session's controller was built with.
func New(session *Session, clock *core.FrameClock, scale int) *Game {
	size := session.Sim.Size()
	return &Game{
		session: session,
		clock:   clock,
		painter: render.NewGridPainter(size.W, size.H, scale),
		hud:     ui.NewHUD(session, ui.PanelWidth, session.Ctrl, session.Sim),
		scale:   scale,
	}
}

// Update handles per-frame input and fires due playback ticks.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.session.ToggleRun()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.session.StepOnce()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.session.Randomize()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.session.Reseed()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.session.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		g.session.NudgeSpeed(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		g.session.NudgeSpeed(-1)
	}

	gridW, _ := g.painter.Size()
	if !g.hud.Update(gridW) && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		if x, y, ok := CellAt(mx, my, g.scale, g.session.Sim.Size()); ok {
			_ = g.session.ToggleCell(x, y)
		}
	}

	g.clock.Advance(time.Now())
	return nil
}

// Draw renders the grid and the control panel.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.session.Sim.Cells())
	gridW, _ := g.painter.Size()
	g.hud.Draw(screen, gridW)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.painter.Size()
	return w + ui.PanelWidth, max(h, minPanelHeight)
}

const minPanelHeight = 320
