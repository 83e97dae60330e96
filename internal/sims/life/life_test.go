package life

import (
	"errors"
	"slices"
	"sync"
	"testing"

	"mad-life/internal/core"
)

func newLife(t *testing.T, w, h int, alive ...[2]int) *Life {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	cfg.Seed = 1
	l := NewWithConfig(cfg)
	for _, p := range alive {
		if err := l.SetCellAlive(p[0], p[1], true); err != nil {
			t.Fatalf("SetCellAlive(%d,%d): %v", p[0], p[1], err)
		}
	}
	return l
}

func expectAlive(t *testing.T, l *Life, label string, alive ...[2]int) {
	t.Helper()
	want := map[[2]int]bool{}
	for _, p := range alive {
		want[p] = true
	}
	size := l.Size()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			got, err := l.IsAlive(x, y)
			if err != nil {
				t.Fatalf("IsAlive(%d,%d): %v", x, y, err)
			}
			if got != want[[2]int{x, y}] {
				t.Fatalf("%s: cell (%d,%d) alive=%v, expected %v", label, x, y, got, want[[2]int{x, y}])
			}
		}
	}
}

func TestBlinkerOscillation(t *testing.T) {
	horizontal := [][2]int{{1, 2}, {2, 2}, {3, 2}}
	vertical := [][2]int{{2, 1}, {2, 2}, {2, 3}}
	l := newLife(t, 5, 5, horizontal...)

	l.Step()
	expectAlive(t, l, "generation 1", vertical...)

	l.Step()
	expectAlive(t, l, "generation 2", horizontal...)

	if l.Generation() != 2 {
		t.Fatalf("generation = %d, want 2", l.Generation())
	}
}

func TestBlockIsStable(t *testing.T) {
	block := [][2]int{{2, 2}, {3, 2}, {2, 3}, {3, 3}}
	l := newLife(t, 6, 6, block...)
	before := l.Snapshot(nil)
	l.Step()
	if !slices.Equal(before, l.Cells()) {
		t.Fatal("block should be a still life")
	}
}

func TestIsolatedCellDies(t *testing.T) {
	for _, size := range []core.Size{{W: 1, H: 1}, {W: 2, H: 1}, {W: 3, H: 3}, {W: 9, H: 7}} {
		l := newLife(t, size.W, size.H, [2]int{size.W / 2, size.H / 2})
		l.Step()
		if l.Population() != 0 {
			t.Fatalf("%dx%d: isolated cell survived", size.W, size.H)
		}
	}
}

func TestEmptyGridIsFixedPoint(t *testing.T) {
	l := newLife(t, 8, 8, [2]int{1, 1}, [2]int{4, 4})
	l.Clear()
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if n := l.CountAliveNeighbors(x, y); n != 0 {
				t.Fatalf("cleared grid: (%d,%d) has %d neighbours", x, y, n)
			}
		}
	}
	l.Step()
	if l.Population() != 0 {
		t.Fatal("empty grid must stay empty")
	}
}

func TestRandomizeDensityExtremes(t *testing.T) {
	l := newLife(t, 10, 7)
	l.RandomizeDensity(1)
	if l.Population() != 70 {
		t.Fatalf("density 1: population %d, want 70", l.Population())
	}
	l.RandomizeDensity(0)
	if l.Population() != 0 {
		t.Fatalf("density 0: population %d, want 0", l.Population())
	}
	l.RandomizeDensity(3)
	if l.Population() != 70 {
		t.Fatal("densities above 1 should clamp to 1")
	}
}

func TestResetDeterministic(t *testing.T) {
	l := newLife(t, 16, 16)
	l.Reset(99)
	first := l.Snapshot(nil)
	l.Step()
	l.Reset(99)
	if !slices.Equal(first, l.Cells()) {
		t.Fatal("Reset with equal seeds should produce equal boards")
	}
	if l.Generation() != 0 {
		t.Fatal("Reset should restart the generation counter")
	}
}

func TestToggleAndBounds(t *testing.T) {
	l := newLife(t, 3, 3)
	if err := l.ToggleCell(1, 2); err != nil {
		t.Fatal(err)
	}
	if alive, _ := l.IsAlive(1, 2); !alive {
		t.Fatal("toggle should bring cell alive")
	}
	if err := l.ToggleCell(1, 2); err != nil {
		t.Fatal(err)
	}
	if alive, _ := l.IsAlive(1, 2); alive {
		t.Fatal("second toggle should kill cell")
	}

	var oob *core.OutOfBoundsError
	if _, err := l.IsAlive(3, 0); !errors.As(err, &oob) {
		t.Fatalf("IsAlive out of range: %v", err)
	}
	if err := l.SetCellAlive(0, -1, true); !errors.As(err, &oob) {
		t.Fatalf("SetCellAlive out of range: %v", err)
	}
	if err := l.ToggleCell(-1, -1); !errors.As(err, &oob) {
		t.Fatalf("ToggleCell out of range: %v", err)
	}
}

func TestOnChangeReportsFlips(t *testing.T) {
	l := newLife(t, 5, 5, [2]int{1, 2}, [2]int{2, 2}, [2]int{3, 2})
	var got []Change
	l.OnChange(func(c []Change) { got = append(got, c...) })

	l.Step()
	want := []Change{
		{X: 2, Y: 1, Alive: true},
		{X: 1, Y: 2, Alive: false},
		{X: 3, Y: 2, Alive: false},
		{X: 2, Y: 3, Alive: true},
	}
	if !slices.Equal(got, want) {
		t.Fatalf("changes = %v, want %v", got, want)
	}

	got = nil
	l.SetCellAlive(2, 2, true)
	if len(got) != 0 {
		t.Fatalf("setting a live cell alive should not notify, got %v", got)
	}
	l.ToggleCell(0, 0)
	if !slices.Equal(got, []Change{{X: 0, Y: 0, Alive: true}}) {
		t.Fatalf("toggle notification = %v", got)
	}
}

func TestConcurrentEditsAndSteps(t *testing.T) {
	l := newLife(t, 32, 32)
	l.Reset(5)
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 50; i++ {
			l.Step()
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			l.ToggleCell(i%32, (i/32)%32)
			l.Population()
		}
	}()
	wg.Wait()
	if l.Generation() != 50 {
		t.Fatalf("generation = %d, want 50", l.Generation())
	}
}

func TestString(t *testing.T) {
	l := newLife(t, 3, 2, [2]int{0, 0}, [2]int{2, 1})
	if got, want := l.String(), "#..\n..#\n"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}
