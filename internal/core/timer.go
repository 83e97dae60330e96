package core

import (
	"slices"
	"time"
)

// Timer is a handle to a task scheduled on a Scheduler.
type Timer interface {
	// Stop cancels the task. It reports false if the task already fired or
	// was stopped before.
	Stop() bool
}

// Scheduler runs a function once after a delay.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// WallClock schedules tasks on the runtime timer goroutines.
type WallClock struct{}

// AfterFunc wraps time.AfterFunc.
func (WallClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// FrameClock is a cooperative Scheduler driven by a host loop. Tasks only run
// inside Advance, on the caller's goroutine, so a task never interleaves with
// other work done by the same loop. A FrameClock must not be shared between
// goroutines.
type FrameClock struct {
	now   time.Time
	tasks []*frameTask
}

type frameTask struct {
	at   time.Time
	fn   func()
	done bool
}

func (t *frameTask) Stop() bool {
	if t.done {
		return false
	}
	t.done = true
	return true
}

// NewFrameClock returns a clock whose current time is start.
func NewFrameClock(start time.Time) *FrameClock {
	return &FrameClock{now: start}
}

// Now returns the time of the last Advance.
func (c *FrameClock) Now() time.Time { return c.now }

// AfterFunc schedules f to run on the first Advance at or after Now()+d.
func (c *FrameClock) AfterFunc(d time.Duration, f func()) Timer {
	t := &frameTask{at: c.now.Add(d), fn: f}
	c.tasks = append(c.tasks, t)
	return t
}

// Advance moves the clock to now and runs every task that was due at the
// time of the call, oldest deadline first. Tasks scheduled by a running task
// wait for the next Advance even if already overdue, so a repeating task
// fires at most once per frame. It returns the number of tasks run.
func (c *FrameClock) Advance(now time.Time) int {
	if now.Before(c.now) {
		now = c.now
	}
	var due []*frameTask
	keep := c.tasks[:0]
	for _, t := range c.tasks {
		switch {
		case t.done:
		case !t.at.After(now):
			due = append(due, t)
		default:
			keep = append(keep, t)
		}
	}
	for i := len(keep); i < len(c.tasks); i++ {
		c.tasks[i] = nil
	}
	c.tasks = keep
	slices.SortStableFunc(due, func(a, b *frameTask) int { return a.at.Compare(b.at) })

	ran := 0
	for _, t := range due {
		if t.done {
			continue
		}
		t.done = true
		// Repeating tasks reschedule relative to their own deadline.
		c.now = t.at
		t.fn()
		ran++
	}
	c.now = now
	return ran
}

// Step advances the clock by d.
func (c *FrameClock) Step(d time.Duration) int {
	return c.Advance(c.now.Add(d))
}

// Pending returns the number of scheduled tasks that have not fired or been
// stopped.
func (c *FrameClock) Pending() int {
	n := 0
	for _, t := range c.tasks {
		if !t.done {
			n++
		}
	}
	return n
}
