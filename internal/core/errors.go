package core

import "fmt"

// OutOfBoundsError reports a cell access outside the grid dimensions.
type OutOfBoundsError struct {
	X, Y int
	Size Size
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("cell (%d,%d) out of bounds for %dx%d grid", e.X, e.Y, e.Size.W, e.Size.H)
}
