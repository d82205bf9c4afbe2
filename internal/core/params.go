package core

import "strconv"

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
	// ParamTypeString denotes free-form parameters such as colours.
	ParamTypeString ParamType = "string"
)

// Parameter describes a single tunable value exposed by a generator.
type Parameter struct {
	Key   string    `yaml:"key"`
	Label string    `yaml:"label"`
	Type  ParamType `yaml:"type"`
	Value string    `yaml:"value"`
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name   string      `yaml:"name"`
	Params []Parameter `yaml:"params"`
}

// ParameterSnapshot captures the current set of tunables exposed by a generator.
type ParameterSnapshot struct {
	Groups []ParameterGroup `yaml:"groups"`
}

// ParameterProvider is implemented by generators that can describe their
// current settings, for manifests and the viewer overlay.
type ParameterProvider interface {
	Parameters() ParameterSnapshot
}

// IntParameterSetter allows interactive callers to update integer parameters.
type IntParameterSetter interface {
	SetIntParameter(key string, value int) bool
}

// IntParam builds an integer parameter entry.
func IntParam(key, label string, value int) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeInt, Value: strconv.Itoa(value)}
}

// StringParam builds a string parameter entry.
func StringParam(key, label, value string) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeString, Value: value}
}

// ParameterControl describes how an integer parameter may be adjusted
// interactively.
type ParameterControl struct {
	Key    string
	Label  string
	Step   int
	Min    int
	Max    int
	HasMin bool
	HasMax bool
}

// Clamp limits v to the control's range.
func (c ParameterControl) Clamp(v int) int {
	if c.HasMin && v < c.Min {
		v = c.Min
	}
	if c.HasMax && v > c.Max {
		v = c.Max
	}
	return v
}

// ParameterControlsProvider exposes adjustable controls for the viewer panel.
type ParameterControlsProvider interface {
	ParameterControls() []ParameterControl
}
