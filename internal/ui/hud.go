//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"mad-life/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var (
	panelBG    = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	titleColor = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	labelColor = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	mutedColor = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	buttonBG   = color.RGBA{R: 54, G: 56, B: 64, A: 255}
	buttonFG   = color.RGBA{R: 230, G: 230, B: 240, A: 255}
	disabledBG = color.RGBA{R: 32, G: 34, B: 40, A: 255}
	disabledFG = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	runningBG  = color.RGBA{R: 40, G: 110, B: 60, A: 255}
)

// HUD renders the control panel to the right of the grid.
type HUD struct {
	panel  *Panel
	width  int
	height int
	img    *ebiten.Image
}

// NewHUD constructs a HUD of the given width for cmds and providers.
func NewHUD(cmds Commands, width int, providers ...core.ParameterProvider) *HUD {
	if width <= 0 {
		width = PanelWidth
	}
	return &HUD{panel: NewPanel(cmds, width, providers...), width: width}
}

// Update refreshes displayed values and handles clicks inside the panel.
// It reports whether the click was consumed.
func (h *HUD) Update(offsetX int) bool {
	if h == nil {
		return false
	}
	h.panel.Refresh()
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	mx, my := ebiten.CursorPosition()
	if mx < offsetX {
		return false
	}
	return h.panel.Click(mx-offsetX, my)
}

// Draw paints the panel with its left edge at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int) {
	if h == nil {
		return
	}
	height := screen.Bounds().Dy()
	if h.img == nil || h.height != height {
		h.img = ebiten.NewImage(h.width, height)
		h.height = height
	}
	h.img.Fill(panelBG)
	h.drawContents()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.img, op)
}

func (h *HUD) drawContents() {
	face := basicfont.Face7x13
	p := h.panel
	text.Draw(h.img, "Game of Life", face, panelPadding, panelPadding+headerBaseline, titleColor)

	for _, b := range p.buttons {
		bg := buttonBG
		label := b.label()
		if label == "Stop" {
			bg = runningBG
		}
		h.drawButton(b.rect, label, bg, buttonFG)
	}

	for i := range p.controls {
		state := &p.controls[i]
		y := state.top + labelBaseline
		text.Draw(h.img, state.control.Label, face, panelPadding, y, labelColor)
		valueColor := labelColor
		if !state.has {
			valueColor = mutedColor
		}
		w := text.BoundString(face, state.text).Dx()
		text.Draw(h.img, state.text, face, state.minusRect.Min.X-buttonGap-w, y, valueColor)

		_, canDec := nextValue(state, -1)
		_, canInc := nextValue(state, 1)
		h.drawStepButton(state.minusRect, "-", canDec)
		h.drawStepButton(state.plusRect, "+", canInc)
	}

	for _, r := range p.readouts {
		y := r.top + readoutHeight
		text.Draw(h.img, r.label, face, panelPadding, y, mutedColor)
		w := text.BoundString(face, r.text).Dx()
		text.Draw(h.img, r.text, face, h.width-panelPadding-w, y, labelColor)
	}
}

func (h *HUD) drawStepButton(rect image.Rectangle, label string, enabled bool) {
	if enabled {
		h.drawButton(rect, label, buttonBG, buttonFG)
		return
	}
	h.drawButton(rect, label, disabledBG, disabledFG)
}

func (h *HUD) drawButton(rect image.Rectangle, label string, bg, fg color.Color) {
	vector.DrawFilledRect(h.img, float32(rect.Min.X), float32(rect.Min.Y), float32(rect.Dx()), float32(rect.Dy()), bg, false)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.img, label, face, x, y, fg)
}
