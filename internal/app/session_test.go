package app

import (
	"errors"
	"flag"
	"testing"
	"time"

	"mad-life/internal/core"
	"mad-life/internal/playback"
	"mad-life/internal/sims/life"
)

func newTestSession(t *testing.T, args ...string) (*Session, *core.FrameClock) {
	t.Helper()
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatal(err)
	}
	clock := core.NewFrameClock(time.Unix(0, 0))
	s, err := NewSession(cfg, clock, nil)
	if err != nil {
		t.Fatal(err)
	}
	return s, clock
}

func TestConfigDefaults(t *testing.T) {
	cfg := NewConfig()
	lc := cfg.LifeConfig()
	if lc.Width != 30 || lc.Height != 20 || lc.Interval != 300*time.Millisecond || lc.Density != 0.3 {
		t.Fatalf("unexpected defaults %+v", lc)
	}
}

func TestConfigClampsAndValidates(t *testing.T) {
	cfg := NewConfig()
	cfg.Interval = 5
	cfg.Density = -1
	lc := cfg.LifeConfig()
	if lc.Interval != playback.MaxInterval || lc.Density != 0 {
		t.Fatalf("expected clamped config, got %+v", lc)
	}

	cfg.Width = 0
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("zero width err = %v", err)
	}
	if _, err := NewSession(cfg, core.WallClock{}, nil); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("NewSession should reject invalid config, got %v", err)
	}
}

func TestNewSessionUnknownPattern(t *testing.T) {
	cfg := NewConfig()
	cfg.Pattern = "nope"
	if _, err := NewSession(cfg, core.WallClock{}, nil); !errors.Is(err, life.ErrUnknownPattern) {
		t.Fatalf("err = %v", err)
	}
}

func TestSessionPlayback(t *testing.T) {
	s, clock := newTestSession(t, "-w", "5", "-h", "5", "-pattern", "blinker", "-interval", "0.1")
	start := s.Sim.String()

	s.ToggleRun()
	s.StepOnce() // ignored while running
	clock.Step(100 * time.Millisecond)
	if s.Sim.Generation() != 1 {
		t.Fatalf("generation = %d after one tick", s.Sim.Generation())
	}
	clock.Step(100 * time.Millisecond)
	s.ToggleRun()
	if s.Sim.String() != start {
		t.Fatalf("blinker should be back in phase:\n%s", s.Sim.String())
	}

	s.StepOnce()
	if s.Sim.Generation() != 3 {
		t.Fatalf("StepOnce while stopped should step, generation %d", s.Sim.Generation())
	}
}

func TestSessionEdits(t *testing.T) {
	s, _ := newTestSession(t, "-w", "4", "-h", "4", "-seed", "3")
	if err := s.ToggleCell(1, 1); err != nil {
		t.Fatal(err)
	}
	if err := s.SetCellAlive(2, 1, true); err != nil {
		t.Fatal(err)
	}
	if s.Sim.Population() != 2 {
		t.Fatalf("population %d", s.Sim.Population())
	}
	var oob *core.OutOfBoundsError
	if err := s.ToggleCell(4, 0); !errors.As(err, &oob) {
		t.Fatalf("err = %v", err)
	}
	s.Clear()
	if s.Sim.Population() != 0 {
		t.Fatal("Clear left live cells")
	}
	s.Randomize()
	if s.Sim.Generation() != 0 {
		t.Fatal("Randomize should restart generations")
	}
}

func TestSessionNudgeSpeed(t *testing.T) {
	s, _ := newTestSession(t)
	// The default 300ms sits between slider positions 7 and 8.
	s.NudgeSpeed(1)
	if got := s.Ctrl.Interval(); got != playback.SliderInterval(8) {
		t.Fatalf("one step up from the default = %v, want %v", got, playback.SliderInterval(8))
	}
	s.NudgeSpeed(-1)
	s.NudgeSpeed(-1)
	if got := s.Ctrl.Interval(); got != playback.SliderInterval(6) {
		t.Fatalf("two steps down from 8 = %v, want %v", got, playback.SliderInterval(6))
	}
	for i := 0; i < 20; i++ {
		s.NudgeSpeed(1)
	}
	if s.Ctrl.Interval() != playback.MinInterval {
		t.Fatalf("interval = %v", s.Ctrl.Interval())
	}
	for i := 0; i < 20; i++ {
		s.NudgeSpeed(-1)
	}
	if s.Ctrl.Interval() != playback.MaxInterval {
		t.Fatalf("interval = %v", s.Ctrl.Interval())
	}
}

func TestSessionReseedReplaysBoard(t *testing.T) {
	s, _ := newTestSession(t, "-w", "12", "-h", "12", "-seed", "17")
	s.Reseed()
	first := s.Sim.String()
	s.Sim.Step()
	s.Sim.Clear()
	s.Reseed()
	if s.Sim.String() != first {
		t.Fatal("Reseed with a configured seed should reproduce the same board")
	}
	if s.Sim.Generation() != 0 {
		t.Fatalf("generation = %d after Reseed", s.Sim.Generation())
	}
}

func TestConfigOverrides(t *testing.T) {
	s, _ := newTestSession(t, "-w", "8", "-seed", "1",
		"-set", "w=12", "-set", " seed = 4 ", "-set", "interval=5", "-set", "density=0.5")
	lc := s.Sim.Size()
	if lc.W != 12 || lc.H != 20 {
		t.Fatalf("size = %+v, want 12x20", lc)
	}
	if s.Ctrl.Interval() != playback.MaxInterval {
		t.Fatalf("interval override should clamp to %v, got %v", playback.MaxInterval, s.Ctrl.Interval())
	}
	if s.Sim.Density() != 0.5 {
		t.Fatalf("density = %v", s.Sim.Density())
	}
	if s.seed != 4 {
		t.Fatalf("seed = %d, want 4", s.seed)
	}

	for _, bad := range []string{"w=abc", "h=0", "density=2", "interval=-1", "colour=red", "novalue"} {
		cfg := NewConfig()
		cfg.Overrides = kvList{bad}
		if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
			t.Fatalf("override %q: err = %v, want ErrInvalidConfig", bad, err)
		}
	}
}

func TestCellAt(t *testing.T) {
	size := core.Size{W: 3, H: 2}
	cases := []struct {
		px, py, x, y int
		ok           bool
	}{
		{0, 0, 0, 0, true},
		{23, 23, 0, 0, true},
		{24, 0, 1, 0, true},
		{71, 47, 2, 1, true},
		{72, 0, 0, 0, false},
		{0, 48, 0, 0, false},
		{-1, 5, 0, 0, false},
	}
	for _, tc := range cases {
		x, y, ok := CellAt(tc.px, tc.py, 24, size)
		if ok != tc.ok || (ok && (x != tc.x || y != tc.y)) {
			t.Fatalf("CellAt(%d,%d) = %d,%d,%v", tc.px, tc.py, x, y, ok)
		}
	}
}
