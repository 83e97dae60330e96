package life

import "mad-life/internal/core"

const paramDensity = "density"

// Parameters reports the grid state shown on the HUD.
func (l *Life) Parameters() core.ParameterSnapshot {
	size := l.Size()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				core.IntParam("w", "Width", size.W),
				core.IntParam("h", "Height", size.H),
				core.FloatParam(paramDensity, "Density", l.Density()),
			},
		},
		{
			Name: "State",
			Params: []core.Parameter{
				core.IntParam("generation", "Generation", int(l.Generation())),
				core.IntParam("population", "Population", l.Population()),
			},
		},
	}}
}

// ParameterControls exposes the randomize density on the HUD.
func (l *Life) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{{
		Key:    paramDensity,
		Label:  "Density",
		Type:   core.ParamTypeFloat,
		Step:   0.05,
		Min:    0,
		Max:    1,
		HasMin: true,
		HasMax: true,
	}}
}

// SetFloatParameter updates the density control.
func (l *Life) SetFloatParameter(key string, value float64) bool {
	if key != paramDensity {
		return false
	}
	l.SetDensity(value)
	return true
}
