package playback

import (
	"math"
	"time"

	"mad-life/internal/core"
)

const paramSpeed = "speed"

// Parameters reports the playback state shown on the HUD.
func (c *Controller) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name: "Playback",
		Params: []core.Parameter{
			core.FloatParam(paramSpeed, "Speed", math.Round(c.Speed()*100)/100),
			core.FloatParam("interval", "Interval (s)", c.Interval().Seconds()),
		},
	}}}
}

var speedControl = core.ParameterControl{
	Key:    paramSpeed,
	Label:  "Speed",
	Type:   core.ParamTypeFloat,
	Step:   1,
	Min:    SliderMin,
	Max:    SliderMax,
	HasMin: true,
	HasMax: true,
}

// ParameterControls exposes the speed slider on the HUD.
func (c *Controller) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{speedControl}
}

// NudgeSpeed moves the speed slider to the next whole position in the given
// direction and returns the new interval.
func (c *Controller) NudgeSpeed(direction int) time.Duration {
	return c.SetSpeed(speedControl.Next(c.Speed(), direction))
}

// SetFloatParameter updates the speed control.
func (c *Controller) SetFloatParameter(key string, value float64) bool {
	if key != paramSpeed {
		return false
	}
	c.SetSpeed(value)
	return true
}
