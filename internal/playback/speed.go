package playback

import (
	"math"
	"time"
)

// Interval bounds and the slider range the UI maps onto them.
const (
	MinInterval     = 50 * time.Millisecond
	MaxInterval     = time.Second
	DefaultInterval = 300 * time.Millisecond

	SliderMin = 1.0
	SliderMax = 10.0
)

// ClampInterval limits d to [MinInterval, MaxInterval].
func ClampInterval(d time.Duration) time.Duration {
	if d < MinInterval {
		return MinInterval
	}
	if d > MaxInterval {
		return MaxInterval
	}
	return d
}

// SliderInterval maps a speed slider position in [SliderMin, SliderMax] onto
// a tick interval: 1 is the slow end (1s), 10 the fast end (50ms), linear in
// between. Out-of-range and NaN values clamp.
func SliderInterval(value float64) time.Duration {
	t := (clampSlider(value) - SliderMin) / (SliderMax - SliderMin)
	slow, fast := MaxInterval.Seconds(), MinInterval.Seconds()
	secs := slow + (fast-slow)*t
	return ClampInterval(time.Duration(math.Round(secs * float64(time.Second))))
}

// SliderValue is the inverse of SliderInterval.
func SliderValue(d time.Duration) float64 {
	d = ClampInterval(d)
	slow, fast := MaxInterval.Seconds(), MinInterval.Seconds()
	t := (d.Seconds() - slow) / (fast - slow)
	return SliderMin + t*(SliderMax-SliderMin)
}

func clampSlider(v float64) float64 {
	switch {
	case math.IsNaN(v), v < SliderMin:
		return SliderMin
	case v > SliderMax:
		return SliderMax
	}
	return v
}
