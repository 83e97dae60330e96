package render

import "image/color"

// Cell colours: live cells green, dead cells gray.
var (
	AliveColor = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	DeadColor  = color.RGBA{R: 128, G: 128, B: 128, A: 255}
)

// fillCellsRGBA converts binary cell data (0/1) into RGBA pixels in buf,
// drawing each cell as a scale×scale block with a gap-pixel border on its
// right and bottom edges. buf must hold 4*(w*scale)*(h*scale) bytes.
func fillCellsRGBA(buf []byte, cells []uint8, w, h, scale, gap int, on, off, grid color.Color) {
	if scale <= 0 {
		scale = 1
	}
	if gap >= scale {
		gap = 0
	}
	onPx := rgba(on)
	offPx := rgba(off)
	gridPx := rgba(grid)
	stride := w * scale
	for py := 0; py < h*scale; py++ {
		cy, iy := py/scale, py%scale
		for px := 0; px < stride; px++ {
			cx, ix := px/scale, px%scale
			var c [4]byte
			switch {
			case ix >= scale-gap || iy >= scale-gap:
				c = gridPx
			case cells[cy*w+cx] != 0:
				c = onPx
			default:
				c = offPx
			}
			copy(buf[(py*stride+px)*4:], c[:])
		}
	}
}

func rgba(c color.Color) [4]byte {
	r, g, b, a := c.RGBA()
	return [4]byte{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}
