package ui

import (
	"image"
	"math"
	"strconv"

	"mazeforge/internal/core"
)

// controlState tracks one adjustable parameter: its last known value and
// where its buttons sit on the panel.
type controlState struct {
	control core.ParameterControl
	value   string

	intValue   int
	floatValue float64
	hasValue   bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

// Controls holds the HUD-adjustable parameters of a source and routes
// button presses to its setters. It has no drawing code so it runs in
// headless builds.
type Controls struct {
	states      []controlState
	intSetter   core.IntParameterSetter
	floatSetter core.FloatParameterSetter
}

// NewControls inspects src for the parameter interfaces in internal/core.
func NewControls(src any) *Controls {
	c := &Controls{}
	if provider, ok := src.(core.ParameterControlsProvider); ok {
		for _, ctrl := range provider.ParameterControls() {
			c.states = append(c.states, controlState{control: ctrl, value: "--"})
		}
	}
	if setter, ok := src.(core.IntParameterSetter); ok {
		c.intSetter = setter
	}
	if setter, ok := src.(core.FloatParameterSetter); ok {
		c.floatSetter = setter
	}
	return c
}

// Len reports how many controls there are.
func (c *Controls) Len() int { return len(c.states) }

// Label returns the label of control i.
func (c *Controls) Label(i int) string { return c.states[i].control.Label }

// Value returns the formatted value of control i and whether it is known.
func (c *Controls) Value(i int) (string, bool) {
	return c.states[i].value, c.states[i].hasValue
}

// Refresh pulls current values from a snapshot.
func (c *Controls) Refresh(snap core.ParameterSnapshot) {
	for i := range c.states {
		state := &c.states[i]
		state.hasValue = false
		state.value = "--"
		param, ok := snap.Lookup(state.control.Key)
		if !ok {
			continue
		}
		switch state.control.Type {
		case core.ParamTypeInt:
			parsed, err := strconv.Atoi(param.Value)
			if err != nil {
				continue
			}
			state.intValue = parsed
			state.floatValue = float64(parsed)
			state.value = strconv.Itoa(parsed)
			state.hasValue = true
		case core.ParamTypeFloat:
			parsed, err := strconv.ParseFloat(param.Value, 64)
			if err != nil {
				continue
			}
			state.floatValue = parsed
			state.value = formatFloat(state.control, parsed)
			state.hasValue = true
		}
	}
}

// CanAdjust reports whether pressing the button in direction would move
// control i without leaving its bounds.
func (c *Controls) CanAdjust(i, direction int) bool {
	state := &c.states[i]
	if !state.hasValue || direction == 0 {
		return false
	}
	switch state.control.Type {
	case core.ParamTypeInt:
		if c.intSetter == nil {
			return false
		}
		target := state.intValue + direction*intStep(state.control)
		if state.control.HasMin && direction < 0 && target < int(math.Round(state.control.Min)) {
			return false
		}
		if state.control.HasMax && direction > 0 && target > int(math.Round(state.control.Max)) {
			return false
		}
		return true
	case core.ParamTypeFloat:
		if c.floatSetter == nil {
			return false
		}
		target := state.floatValue + float64(direction)*floatStep(state.control)
		if state.control.HasMin && direction < 0 && target < state.control.Min-1e-9 {
			return false
		}
		if state.control.HasMax && direction > 0 && target > state.control.Max+1e-9 {
			return false
		}
		return true
	}
	return false
}

// Adjust steps control i by one step in direction, clamped to its bounds,
// and reports whether the source accepted the new value.
func (c *Controls) Adjust(i, direction int) bool {
	state := &c.states[i]
	if !state.hasValue || direction == 0 {
		return false
	}
	switch state.control.Type {
	case core.ParamTypeInt:
		if c.intSetter == nil {
			return false
		}
		target := state.intValue + direction*intStep(state.control)
		if state.control.HasMin {
			target = max(target, int(math.Round(state.control.Min)))
		}
		if state.control.HasMax {
			target = min(target, int(math.Round(state.control.Max)))
		}
		if target == state.intValue || !c.intSetter.SetIntParameter(state.control.Key, target) {
			return false
		}
		state.intValue = target
		state.floatValue = float64(target)
		state.value = strconv.Itoa(target)
		return true
	case core.ParamTypeFloat:
		if c.floatSetter == nil {
			return false
		}
		target := state.floatValue + float64(direction)*floatStep(state.control)
		if state.control.HasMin {
			target = max(target, state.control.Min)
		}
		if state.control.HasMax {
			target = min(target, state.control.Max)
		}
		// Snap to the step grid so repeated presses do not drift.
		target = math.Round(target*1e6) / 1e6
		if math.Abs(target-state.floatValue) < 1e-9 || !c.floatSetter.SetFloatParameter(state.control.Key, target) {
			return false
		}
		state.floatValue = target
		state.value = formatFloat(state.control, target)
		return true
	}
	return false
}

// Layout positions the -/+ buttons of every control for a panel of width.
func (c *Controls) Layout(width int) {
	for i := range c.states {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plusRect := image.Rect(width-panelPadding-buttonSize, buttonY, width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		c.states[i].top = top
		c.states[i].minusRect = minusRect
		c.states[i].plusRect = plusRect
	}
}

// Hit maps a panel-relative point to a control index and direction.
func (c *Controls) Hit(x, y int) (int, int, bool) {
	pt := image.Pt(x, y)
	for i := range c.states {
		if !c.states[i].hasValue {
			continue
		}
		if pt.In(c.states[i].minusRect) {
			return i, -1, true
		}
		if pt.In(c.states[i].plusRect) {
			return i, 1, true
		}
	}
	return 0, 0, false
}

// Bottom returns the first panel row below the controls.
func (c *Controls) Bottom() int { return controlsTop + len(c.states)*lineHeight }

func intStep(ctrl core.ParameterControl) int {
	if step := int(math.Round(ctrl.Step)); step > 0 {
		return step
	}
	return 1
}

func floatStep(ctrl core.ParameterControl) float64 {
	if ctrl.Step > 0 {
		return ctrl.Step
	}
	return 0.05
}

func formatFloat(ctrl core.ParameterControl, value float64) string {
	step := floatStep(ctrl)
	precision := 1
	switch {
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	infoSpacing    = 18
	controlsTop    = panelPadding + headerBaseline + 14
)
