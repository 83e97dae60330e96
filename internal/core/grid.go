package core

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
// Coordinates outside the grid are never wrapped.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a grid with the given dimensions.
func NewByteGrid(w, h int) *ByteGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Size returns the grid dimensions.
func (g *ByteGrid) Size() Size { return Size{W: g.W, H: g.H} }

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *ByteGrid) Index(x, y int) int { return y*g.W + x }

// In reports whether (x, y) addresses a cell of the grid.
func (g *ByteGrid) In(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// At returns the value at (x, y), or zero when the coordinate is off-grid.
func (g *ByteGrid) At(x, y int) uint8 {
	if !g.In(x, y) {
		return 0
	}
	return g.data[y*g.W+x]
}

// Get returns the value at (x, y).
func (g *ByteGrid) Get(x, y int) (uint8, error) {
	if !g.In(x, y) {
		return 0, &OutOfBoundsError{X: x, Y: y, Size: g.Size()}
	}
	return g.data[y*g.W+x], nil
}

// Set stores v at (x, y).
func (g *ByteGrid) Set(x, y int, v uint8) error {
	if !g.In(x, y) {
		return &OutOfBoundsError{X: x, Y: y, Size: g.Size()}
	}
	g.data[y*g.W+x] = v
	return nil
}

// Count returns the number of non-zero cells.
func (g *ByteGrid) Count() int {
	n := 0
	for _, v := range g.data {
		if v != 0 {
			n++
		}
	}
	return n
}

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}

// Swap exchanges the backing buffers of two grids of equal size.
func (g *ByteGrid) Swap(o *ByteGrid) {
	g.data, o.data = o.data, g.data
}
