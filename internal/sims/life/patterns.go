package life

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownPattern is returned by Load for names that are not registered.
var ErrUnknownPattern = errors.New("unknown pattern")

// Special pattern names understood by Load.
const (
	PatternEmpty  = "empty"
	PatternRandom = "random"
)

// patterns lists live-cell offsets relative to the pattern's top-left corner.
var patterns = map[string][][2]int{
	"blinker": {{0, 0}, {1, 0}, {2, 0}},
	"block":   {{0, 0}, {1, 0}, {0, 1}, {1, 1}},
	"glider":  {{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}},
	"toad":    {{1, 0}, {2, 0}, {3, 0}, {0, 1}, {1, 1}, {2, 1}},
	"beacon":  {{0, 0}, {1, 0}, {0, 1}, {3, 2}, {2, 3}, {3, 3}},
}

// Patterns returns the names accepted by Load, sorted.
func Patterns() []string {
	names := []string{PatternEmpty, PatternRandom}
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Load replaces the grid with the named pattern centred on the board, an
// empty board, or a random one. Cells of the pattern that fall off the grid
// are dropped.
func (l *Life) Load(name string) error {
	switch name {
	case PatternEmpty:
		l.Clear()
		return nil
	case PatternRandom:
		l.Randomize()
		return nil
	}
	offsets, ok := patterns[name]
	if !ok {
		return fmt.Errorf("load %q: %w", name, ErrUnknownPattern)
	}
	pw, ph := 0, 0
	for _, o := range offsets {
		pw = max(pw, o[0]+1)
		ph = max(ph, o[1]+1)
	}
	size := l.Size()
	ox := (size.W - pw) / 2
	oy := (size.H - ph) / 2

	l.Clear()
	for _, o := range offsets {
		x, y := ox+o[0], oy+o[1]
		if !size.Contains(x, y) {
			continue
		}
		if err := l.SetCellAlive(x, y, true); err != nil {
			return fmt.Errorf("load %q: %w", name, err)
		}
	}
	return nil
}
