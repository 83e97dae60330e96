package core

import (
	"testing"
	"time"
)

func TestFrameClockRunsDueTasksInOrder(t *testing.T) {
	start := time.Unix(0, 0)
	c := NewFrameClock(start)
	var order []string
	c.AfterFunc(20*time.Millisecond, func() { order = append(order, "b") })
	c.AfterFunc(10*time.Millisecond, func() { order = append(order, "a") })
	c.AfterFunc(50*time.Millisecond, func() { order = append(order, "c") })

	if n := c.Step(5 * time.Millisecond); n != 0 {
		t.Fatalf("nothing should be due yet, ran %d", n)
	}
	if n := c.Step(20 * time.Millisecond); n != 2 {
		t.Fatalf("expected 2 tasks, ran %d", n)
	}
	if len(order) != 2 || order[0] != "a" || order[1] != "b" {
		t.Fatalf("unexpected order %v", order)
	}
	if c.Pending() != 1 {
		t.Fatalf("expected 1 pending task, got %d", c.Pending())
	}
	if !c.Now().Equal(start.Add(25 * time.Millisecond)) {
		t.Fatalf("clock should sit at the advanced time, got %v", c.Now())
	}
}

func TestFrameClockStop(t *testing.T) {
	c := NewFrameClock(time.Unix(0, 0))
	fired := false
	timer := c.AfterFunc(time.Millisecond, func() { fired = true })
	if !timer.Stop() {
		t.Fatal("first Stop should report a pending task")
	}
	if timer.Stop() {
		t.Fatal("second Stop should report false")
	}
	c.Step(time.Second)
	if fired {
		t.Fatal("stopped task fired")
	}
}

func TestFrameClockRescheduleWaitsForNextFrame(t *testing.T) {
	c := NewFrameClock(time.Unix(0, 0))
	count := 0
	var tick func()
	tick = func() {
		count++
		c.AfterFunc(10*time.Millisecond, tick)
	}
	c.AfterFunc(10*time.Millisecond, tick)

	// A long frame still only fires the repeating task once.
	if n := c.Step(time.Second); n != 1 || count != 1 {
		t.Fatalf("expected a single firing, got n=%d count=%d", n, count)
	}
	c.Step(time.Millisecond)
	if count != 2 {
		t.Fatalf("overdue reschedule should fire on the next frame, count=%d", count)
	}
}
