//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridColor fills the gap between cells.
var GridColor = color.RGBA{R: 40, G: 40, B: 44, A: 255}

// GridPainter updates a single RGBA image based on binary cell data.
type GridPainter struct {
	w, h  int
	scale int
	gap   int
	img   *ebiten.Image
	buf   []byte
}

// NewGridPainter allocates a painter for a w*h grid drawn at scale pixels
// per cell.
func NewGridPainter(w, h, scale int) *GridPainter {
	if scale <= 0 {
		scale = 1
	}
	gap := 0
	if scale >= 4 {
		gap = 1
	}
	gp := &GridPainter{w: w, h: h, scale: scale, gap: gap, buf: make([]byte, 4*w*scale*h*scale)}
	gp.img = ebiten.NewImage(w*scale, h*scale)
	return gp
}

// Blit uploads the provided cells into the painter image and draws it.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8) {
	if len(cells) != gp.w*gp.h {
		return
	}
	fillCellsRGBA(gp.buf, cells, gp.w, gp.h, gp.scale, gp.gap, AliveColor, DeadColor, GridColor)
	gp.img.WritePixels(gp.buf)
	dst.DrawImage(gp.img, &ebiten.DrawImageOptions{})
}

// Size returns the dimensions of the underlying image in pixels.
func (gp *GridPainter) Size() (int, int) { return gp.w * gp.scale, gp.h * gp.scale }
