// Package life implements Conway's Game of Life on a bounded grid.
package life

import (
	"strings"
	"sync"
	"time"

	"mad-life/internal/core"
)

// Change records a cell whose state flipped.
type Change struct {
	X, Y  int
	Alive bool
}

// Life owns the grid state and computes generations. All methods are safe for
// concurrent use; every mutation, including a full Step, runs under a single
// mutex so a step is never interleaved with an edit.
type Life struct {
	mu sync.Mutex

	cfg Config
	cur *core.ByteGrid
	nxt *core.ByteGrid
	rng *core.RNG
	gen uint64

	observers []func([]Change)
}

// New returns a Life simulation with the provided dimensions using defaults.
func New(w, h int) *Life {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns an empty grid configured from cfg. Non-positive
// dimensions become 1.
func NewWithConfig(cfg Config) *Life {
	cur := core.NewByteGrid(cfg.Width, cfg.Height)
	cfg.Width, cfg.Height = cur.W, cur.H
	cfg.Density = clampDensity(cfg.Density)
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Life{
		cfg: cfg,
		cur: cur,
		nxt: core.NewByteGrid(cur.W, cur.H),
		rng: core.NewRNG(seed),
	}
}

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return l.cur.Size() }

// Cells exposes the current grid values (1 alive, 0 dead). The slice is
// replaced on every Step; callers on other goroutines should use Snapshot.
func (l *Life) Cells() []uint8 { return l.cur.Cells() }

// Snapshot copies the current cells into dst, growing it when needed.
func (l *Life) Snapshot(dst []uint8) []uint8 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append(dst[:0], l.cur.Cells()...)
}

// IsAlive reports the state of (x, y).
func (l *Life) IsAlive(x, y int) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	v, err := l.cur.Get(x, y)
	return v != 0, err
}

// SetCellAlive sets the state of (x, y).
func (l *Life) SetCellAlive(x, y int, alive bool) error {
	l.mu.Lock()
	changed, err := l.setLocked(x, y, alive)
	l.mu.Unlock()
	if err != nil {
		return err
	}
	if changed {
		l.notify([]Change{{X: x, Y: y, Alive: alive}})
	}
	return nil
}

// ToggleCell flips the state of (x, y).
func (l *Life) ToggleCell(x, y int) error {
	l.mu.Lock()
	v, err := l.cur.Get(x, y)
	if err != nil {
		l.mu.Unlock()
		return err
	}
	alive := v == 0
	l.setLocked(x, y, alive)
	l.mu.Unlock()
	l.notify([]Change{{X: x, Y: y, Alive: alive}})
	return nil
}

func (l *Life) setLocked(x, y int, alive bool) (bool, error) {
	v, err := l.cur.Get(x, y)
	if err != nil {
		return false, err
	}
	if (v != 0) == alive {
		return false, nil
	}
	var nv uint8
	if alive {
		nv = 1
	}
	return true, l.cur.Set(x, y, nv)
}

// CountAliveNeighbors returns the live Moore neighbours of (x, y).
func (l *Life) CountAliveNeighbors(x, y int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return CountAliveNeighbors(l.cur, x, y)
}

// Randomize brings each cell alive with the configured density.
func (l *Life) Randomize() {
	l.RandomizeDensity(l.Density())
}

// RandomizeDensity brings each cell alive independently with probability
// density, clamped to [0, 1]. The generation counter restarts.
func (l *Life) RandomizeDensity(density float64) {
	l.replace(func(cells []uint8) {
		core.FillDensity(l.rng, cells, clampDensity(density))
	})
}

// Reset reseeds the generator and randomizes the grid, so equal seeds give
// equal boards.
func (l *Life) Reset(seed int64) {
	l.mu.Lock()
	l.rng = core.NewRNG(seed)
	l.mu.Unlock()
	l.Randomize()
}

// Clear kills every cell and restarts the generation counter.
func (l *Life) Clear() {
	l.replace(func(cells []uint8) {
		for i := range cells {
			cells[i] = 0
		}
	})
}

// replace fills the scratch buffer and swaps it in, reporting the diff.
func (l *Life) replace(fill func(cells []uint8)) {
	l.mu.Lock()
	fill(l.nxt.Cells())
	changes := l.diffLocked()
	l.cur.Swap(l.nxt)
	l.gen = 0
	l.mu.Unlock()
	l.notify(changes)
}

// Step advances the simulation by one generation. The successor is built in
// a scratch buffer and swapped in once complete.
func (l *Life) Step() {
	l.mu.Lock()
	NextGeneration(l.cur, l.nxt)
	changes := l.diffLocked()
	l.cur.Swap(l.nxt)
	l.gen++
	l.mu.Unlock()
	l.notify(changes)
}

func (l *Life) diffLocked() []Change {
	if len(l.observers) == 0 {
		return nil
	}
	var changes []Change
	cur, nxt := l.cur.Cells(), l.nxt.Cells()
	for i := range cur {
		if cur[i] != nxt[i] {
			changes = append(changes, Change{X: i % l.cur.W, Y: i / l.cur.W, Alive: nxt[i] != 0})
		}
	}
	return changes
}

// OnChange registers fn to receive the cells flipped by each Step or edit.
// fn runs on the mutating goroutine after the grid lock is released, and is
// not called when nothing changed.
func (l *Life) OnChange(fn func([]Change)) {
	if fn == nil {
		return
	}
	l.mu.Lock()
	l.observers = append(l.observers, fn)
	l.mu.Unlock()
}

func (l *Life) notify(changes []Change) {
	if len(changes) == 0 {
		return
	}
	l.mu.Lock()
	observers := l.observers
	l.mu.Unlock()
	for _, fn := range observers {
		fn(changes)
	}
}

// Generation returns the number of steps since the last Clear or Randomize.
func (l *Life) Generation() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.gen
}

// Population returns the number of live cells.
func (l *Life) Population() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.cur.Count()
}

// Density returns the fraction of cells Randomize brings alive.
func (l *Life) Density() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.cfg.Density
}

// SetDensity changes the density used by Randomize.
func (l *Life) SetDensity(d float64) {
	l.mu.Lock()
	l.cfg.Density = clampDensity(d)
	l.mu.Unlock()
}

// String renders the grid one row per line, '#' alive and '.' dead.
func (l *Life) String() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	var b strings.Builder
	b.Grow((l.cur.W + 1) * l.cur.H)
	for y := 0; y < l.cur.H; y++ {
		for x := 0; x < l.cur.W; x++ {
			if l.cur.At(x, y) != 0 {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func clampDensity(d float64) float64 {
	if d < 0 {
		return 0
	}
	if d > 1 {
		return 1
	}
	return d
}
