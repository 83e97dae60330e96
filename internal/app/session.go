package app

import (
	"fmt"
	"io"
	"log"
	"time"

	"mad-life/internal/core"
	"mad-life/internal/playback"
	"mad-life/internal/sims/life"
)

// Session pairs a grid with its playback controller and exposes the input
// events a front end issues. Cells are addressed by coordinate only.
type Session struct {
	Sim  *life.Life
	Ctrl *playback.Controller

	seed int64
}

// NewSession builds the grid described by cfg, loads its starting pattern and
// attaches a stopped controller on sched.
func NewSession(cfg *Config, sched core.Scheduler, logger *log.Logger) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	lc := cfg.LifeConfig()
	sim := life.NewWithConfig(lc)
	if err := sim.Load(cfg.Pattern); err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}
	ctrl := playback.New(sim, sched, playback.WithInterval(lc.Interval), playback.WithLogger(logger))
	logger.Printf("session: %dx%d grid, pattern %q, interval %v", lc.Width, lc.Height, cfg.Pattern, lc.Interval)
	return &Session{Sim: sim, Ctrl: ctrl, seed: lc.Seed}, nil
}

// ToggleRun starts or stops playback.
func (s *Session) ToggleRun() { s.Ctrl.ToggleRun() }

// Running reports whether playback is running.
func (s *Session) Running() bool { return s.Ctrl.Running() }

// StepOnce advances a single generation while playback is stopped.
func (s *Session) StepOnce() {
	if s.Ctrl.Running() {
		return
	}
	s.Sim.Step()
}

// Randomize refills the grid at the configured density.
func (s *Session) Randomize() { s.Sim.Randomize() }

// Clear kills every cell.
func (s *Session) Clear() { s.Sim.Clear() }

// ToggleCell flips the cell at (x, y).
func (s *Session) ToggleCell(x, y int) error { return s.Sim.ToggleCell(x, y) }

// SetCellAlive sets the cell at (x, y).
func (s *Session) SetCellAlive(x, y int, alive bool) error { return s.Sim.SetCellAlive(x, y, alive) }

// Reseed randomizes the grid from the configured seed, reproducing the same
// board each time. With no seed configured a fresh time-based one is used.
func (s *Session) Reseed() {
	seed := s.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s.Sim.Reset(seed)
}

// NudgeSpeed moves the speed slider to the next whole position in the given
// direction, the same way the HUD buttons do.
func (s *Session) NudgeSpeed(direction int) {
	s.Ctrl.NudgeSpeed(direction)
}

// CellAt maps a pixel position to the cell under it for a grid drawn at
// scale pixels per cell from the origin.
func CellAt(px, py, scale int, size core.Size) (x, y int, ok bool) {
	if scale <= 0 || px < 0 || py < 0 {
		return 0, 0, false
	}
	x, y = px/scale, py/scale
	if !size.Contains(x, y) {
		return 0, 0, false
	}
	return x, y, true
}
