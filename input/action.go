package input

import (
	"fmt"
	"math"
	"strings"
)

// ValueType is the shape of the value an action reports.
type ValueType int

const (
	ValueBool ValueType = iota
	ValueAxis1D
	ValueAxis2D
)

func (v ValueType) String() string {
	switch v {
	case ValueBool:
		return "bool"
	case ValueAxis1D:
		return "axis1d"
	case ValueAxis2D:
		return "axis2d"
	default:
		return fmt.Sprintf("value_type(%d)", int(v))
	}
}

// ParseValueType reads the names produced by String. Empty means bool.
func ParseValueType(name string) (ValueType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "bool":
		return ValueBool, nil
	case "axis1d":
		return ValueAxis1D, nil
	case "axis2d":
		return ValueAxis2D, nil
	default:
		return ValueBool, fmt.Errorf("input: unknown value type %q", name)
	}
}

// Action is a bindable input action. Actions are owned by the Config that
// declares them; everything else holds them by pointer as opaque handles.
type Action struct {
	Name      string
	ValueType ValueType
}

func (a *Action) String() string {
	if a == nil {
		return "<nil action>"
	}
	return a.Name
}

// Value is the magnitude an action reports for one frame.
type Value struct {
	Type ValueType
	X    float64
	Y    float64
}

func BoolValue(pressed bool) Value {
	if pressed {
		return Value{Type: ValueBool, X: 1}
	}
	return Value{Type: ValueBool}
}

func Axis1DValue(x float64) Value {
	return Value{Type: ValueAxis1D, X: x}
}

func Axis2DValue(x, y float64) Value {
	return Value{Type: ValueAxis2D, X: x, Y: y}
}

func (v Value) Bool() bool {
	return v.IsActive()
}

func (v Value) Axis1D() float64 {
	return v.X
}

func (v Value) Axis2D() (float64, float64) {
	return v.X, v.Y
}

func (v Value) Magnitude() float64 {
	return math.Hypot(v.X, v.Y)
}

// IsActive reports whether the value is actuated at all.
func (v Value) IsActive() bool {
	return v.X != 0 || v.Y != 0
}

// add accumulates another device's contribution for the same frame.
func (v Value) add(o Value) Value {
	switch v.Type {
	case ValueBool:
		if o.IsActive() {
			v.X = 1
		}
	case ValueAxis1D:
		v.X = clampUnit(v.X + o.X)
	default:
		v.X = clampUnit(v.X + o.X)
		v.Y = clampUnit(v.Y + o.Y)
	}
	return v
}

func clampUnit(f float64) float64 {
	return math.Max(-1, math.Min(1, f))
}
