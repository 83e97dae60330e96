package ui

import (
	"image"
	"math"
	"strconv"

	"mad-life/internal/core"
)

// Commands are the user actions the panel buttons issue.
type Commands interface {
	ToggleRun()
	StepOnce()
	Randomize()
	Clear()
	Running() bool
}

// Panel holds the layout and state of the control panel independently of how
// it is drawn. Coordinates are relative to the panel's top-left corner.
type Panel struct {
	width     int
	cmds      Commands
	providers []core.ParameterProvider

	buttons  []panelButton
	controls []controlState
	readouts []readout
}

type panelButton struct {
	label  func() string
	rect   image.Rectangle
	action func()
}

type controlState struct {
	control core.ParameterControl
	setter  core.FloatParameterSetter
	value   float64
	text    string
	has     bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

type readout struct {
	key   string
	label string
	text  string
	top   int
}

// NewPanel lays out the action buttons, one -/+ row per control exposed by
// providers, and the readouts.
func NewPanel(cmds Commands, width int, providers ...core.ParameterProvider) *Panel {
	p := &Panel{width: width, cmds: cmds, providers: providers}
	p.buttons = []panelButton{
		{label: p.runLabel, action: cmds.ToggleRun},
		{label: fixed("Step"), action: cmds.StepOnce},
		{label: fixed("Random"), action: cmds.Randomize},
		{label: fixed("Clear"), action: cmds.Clear},
	}
	for _, prov := range providers {
		cp, ok := prov.(core.ParameterControlsProvider)
		if !ok {
			continue
		}
		setter, _ := prov.(core.FloatParameterSetter)
		for _, ctrl := range cp.ParameterControls() {
			p.controls = append(p.controls, controlState{control: ctrl, setter: setter, text: "--"})
		}
	}
	p.readouts = []readout{
		{key: "generation", label: "Generation"},
		{key: "population", label: "Population"},
		{key: "interval", label: "Interval (s)"},
	}
	p.layout()
	p.Refresh()
	return p
}

func fixed(s string) func() string { return func() string { return s } }

func (p *Panel) runLabel() string {
	if p.cmds.Running() {
		return "Stop"
	}
	return "Start"
}

func (p *Panel) layout() {
	colW := (p.width - 2*panelPadding - buttonGap) / 2
	for i := range p.buttons {
		row, col := i/2, i%2
		x := panelPadding + col*(colW+buttonGap)
		y := buttonsTop + row*(actionHeight+buttonGap)
		p.buttons[i].rect = image.Rect(x, y, x+colW, y+actionHeight)
	}
	rows := (len(p.buttons) + 1) / 2
	top := buttonsTop + rows*(actionHeight+buttonGap) + sectionGap
	for i := range p.controls {
		buttonY := top + (lineHeight-buttonSize)/2
		plusRect := image.Rect(p.width-panelPadding-buttonSize, buttonY, p.width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		p.controls[i].top = top
		p.controls[i].minusRect = minusRect
		p.controls[i].plusRect = plusRect
		top += lineHeight
	}
	top += sectionGap
	for i := range p.readouts {
		p.readouts[i].top = top
		top += readoutHeight
	}
}

// Refresh pulls current values from the providers.
func (p *Panel) Refresh() {
	var snap core.ParameterSnapshot
	for _, prov := range p.providers {
		snap.Groups = append(snap.Groups, prov.Parameters().Groups...)
	}
	for i := range p.controls {
		state := &p.controls[i]
		param, ok := snap.Lookup(state.control.Key)
		if !ok {
			state.has, state.text = false, "--"
			continue
		}
		v, err := strconv.ParseFloat(param.Value, 64)
		if err != nil {
			state.has, state.text = false, "--"
			continue
		}
		state.value, state.has = v, true
		state.text = formatFloat(state.control, v)
	}
	for i := range p.readouts {
		r := &p.readouts[i]
		r.text = "--"
		if param, ok := snap.Lookup(r.key); ok {
			r.text = param.Value
		}
	}
}

// Click handles a press at (x, y) and reports whether it hit anything.
func (p *Panel) Click(x, y int) bool {
	pt := image.Pt(x, y)
	for _, b := range p.buttons {
		if pt.In(b.rect) {
			b.action()
			p.Refresh()
			return true
		}
	}
	for i := range p.controls {
		state := &p.controls[i]
		switch {
		case pt.In(state.minusRect):
			p.adjust(state, -1)
			return true
		case pt.In(state.plusRect):
			p.adjust(state, 1)
			return true
		}
	}
	return false
}

func (p *Panel) adjust(state *controlState, direction int) {
	target, ok := nextValue(state, direction)
	if !ok {
		return
	}
	if state.setter.SetFloatParameter(state.control.Key, target) {
		p.Refresh()
	}
}

// nextValue returns the value one step away from the current one, or false
// when the control is at its bound or cannot be set.
func nextValue(state *controlState, direction int) (float64, bool) {
	if !state.has || state.setter == nil || direction == 0 {
		return 0, false
	}
	target := state.control.Next(state.value, direction)
	if math.Abs(target-state.value) < 1e-9 {
		return 0, false
	}
	return target, true
}

func formatFloat(ctrl core.ParameterControl, value float64) string {
	step := ctrl.Step
	if step <= 0 {
		step = 0.05
	}
	precision := 1
	switch {
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

const (
	panelPadding   = 12
	headerBaseline = 18
	buttonsTop     = panelPadding + headerBaseline + 10
	actionHeight   = 24
	sectionGap     = 14
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	labelBaseline  = 24
	readoutHeight  = 18
)

// PanelWidth is the default width of the control panel in pixels.
const PanelWidth = 220
