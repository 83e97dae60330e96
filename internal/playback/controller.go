// Package playback drives a simulation on a repeating timer.
package playback

import (
	"io"
	"log"
	"sync"
	"time"

	"mad-life/internal/core"
)

// State is the playback state.
type State int

const (
	// Stopped is the initial state; no tick is pending.
	Stopped State = iota
	// Running has exactly one tick pending or executing.
	Running
)

func (s State) String() string {
	switch s {
	case Stopped:
		return "stopped"
	case Running:
		return "running"
	}
	return "unknown"
}

// Stepper advances a simulation by one generation. Step must run to
// completion before returning.
type Stepper interface {
	Step()
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for state transitions.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// WithInterval sets the initial tick interval, clamped to the allowed range.
func WithInterval(d time.Duration) Option {
	return func(c *Controller) { c.interval = ClampInterval(d) }
}

// Controller owns the single pending tick of a simulation. While running,
// each tick calls Step and then schedules the next one after the current
// interval, so ticks never overlap. Interval changes apply from the next
// scheduled tick; a tick that is already pending keeps its deadline.
type Controller struct {
	mu sync.Mutex

	sim   Stepper
	sched core.Scheduler
	log   *log.Logger

	state    State
	interval time.Duration
	pending  core.Timer
	// token identifies the current run; ticks from an earlier run are ignored.
	token uint64
	ticks uint64
}

// New returns a stopped Controller stepping sim on sched.
func New(sim Stepper, sched core.Scheduler, opts ...Option) *Controller {
	c := &Controller{
		sim:      sim,
		sched:    sched,
		log:      log.New(io.Discard, "", 0),
		interval: DefaultInterval,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns the current playback state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Running reports whether playback is running.
func (c *Controller) Running() bool { return c.State() == Running }

// Ticks returns the number of generations stepped by playback.
func (c *Controller) Ticks() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ticks
}

// ToggleRun switches between Stopped and Running and returns the new state.
func (c *Controller) ToggleRun() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == Running {
		c.stopLocked()
	} else {
		c.startLocked()
	}
	return c.state
}

// Start begins playback. The first generation is stepped one interval later.
func (c *Controller) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != Running {
		c.startLocked()
	}
}

// Stop halts playback. Once Stop returns no further tick will step the
// simulation; a Step already executing is allowed to finish.
func (c *Controller) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != Stopped {
		c.stopLocked()
	}
}

func (c *Controller) startLocked() {
	c.state = Running
	c.token++
	c.scheduleLocked(c.token)
	c.log.Printf("playback: running every %v", c.interval)
}

func (c *Controller) stopLocked() {
	c.state = Stopped
	c.token++
	if c.pending != nil {
		c.pending.Stop()
		c.pending = nil
	}
	c.log.Printf("playback: stopped after %d ticks", c.ticks)
}

func (c *Controller) scheduleLocked(token uint64) {
	c.pending = c.sched.AfterFunc(c.interval, func() { c.tick(token) })
}

func (c *Controller) tick(token uint64) {
	c.mu.Lock()
	if c.state != Running || c.token != token {
		c.mu.Unlock()
		return
	}
	c.pending = nil
	c.mu.Unlock()

	c.sim.Step()

	c.mu.Lock()
	defer c.mu.Unlock()
	c.ticks++
	if c.state == Running && c.token == token {
		c.scheduleLocked(token)
	}
}

// Interval returns the delay between generations.
func (c *Controller) Interval() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.interval
}

// SetTickInterval changes the delay between generations and returns the
// clamped value in effect.
func (c *Controller) SetTickInterval(d time.Duration) time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.interval = ClampInterval(d)
	return c.interval
}

// SetSpeed applies a speed slider position; see SliderInterval.
func (c *Controller) SetSpeed(value float64) time.Duration {
	return c.SetTickInterval(SliderInterval(value))
}

// Speed returns the slider position matching the current interval.
func (c *Controller) Speed() float64 {
	return SliderValue(c.Interval())
}
