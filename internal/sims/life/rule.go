package life

import "mad-life/internal/core"

// CountAliveNeighbors returns the number of live cells in the Moore
// neighbourhood of (x, y). Off-grid positions count as dead.
func CountAliveNeighbors(g *core.ByteGrid, x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if g.At(x+dx, y+dy) != 0 {
				n++
			}
		}
	}
	return n
}

// Rule applies B3/S23 to a single cell.
func Rule(alive bool, neighbors int) bool {
	if alive {
		return neighbors == 2 || neighbors == 3
	}
	return neighbors == 3
}

// NextGeneration writes the successor of src into dst. dst must have the same
// dimensions and must not alias src.
func NextGeneration(src, dst *core.ByteGrid) {
	cur, nxt := src.Cells(), dst.Cells()
	for y := 0; y < src.H; y++ {
		for x := 0; x < src.W; x++ {
			idx := src.Index(x, y)
			nxt[idx] = 0
			if Rule(cur[idx] != 0, CountAliveNeighbors(src, x, y)) {
				nxt[idx] = 1
			}
		}
	}
}
