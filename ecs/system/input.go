package system

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/warrior/ecs"
	"github.com/milk9111/warrior/input"
	"github.com/milk9111/warrior/prefabs"
)

// Device is the raw input hardware polled once per frame.
type Device interface {
	KeyPressed(key ebiten.Key) bool
	GamepadButtonPressed(button ebiten.StandardGamepadButton) bool
	GamepadAxis(axis ebiten.StandardGamepadAxis) float64
}

type keyScale struct {
	key   ebiten.Key
	scale float64
}

type buttonScale struct {
	button ebiten.StandardGamepadButton
	scale  float64
}

type axisScale struct {
	axis     ebiten.StandardGamepadAxis
	scale    float64
	deadzone float64
}

// KeyBinding maps physical controls onto one action.
type KeyBinding struct {
	Action  *input.Action
	keys    []keyScale
	buttons []buttonScale
	axes    []axisScale
}

var gamepadButtons = map[string]ebiten.StandardGamepadButton{
	"right_bottom":       ebiten.StandardGamepadButtonRightBottom,
	"right_right":        ebiten.StandardGamepadButtonRightRight,
	"right_left":         ebiten.StandardGamepadButtonRightLeft,
	"right_top":          ebiten.StandardGamepadButtonRightTop,
	"front_bottom_left":  ebiten.StandardGamepadButtonFrontBottomLeft,
	"front_bottom_right": ebiten.StandardGamepadButtonFrontBottomRight,
	"front_top_left":     ebiten.StandardGamepadButtonFrontTopLeft,
	"front_top_right":    ebiten.StandardGamepadButtonFrontTopRight,
	"center_right":       ebiten.StandardGamepadButtonCenterRight,
}

var gamepadAxes = map[string]ebiten.StandardGamepadAxis{
	"left_stick_x":  ebiten.StandardGamepadAxisLeftStickHorizontal,
	"left_stick_y":  ebiten.StandardGamepadAxisLeftStickVertical,
	"right_stick_x": ebiten.StandardGamepadAxisRightStickHorizontal,
	"right_stick_y": ebiten.StandardGamepadAxisRightStickVertical,
}

// BuildKeyBindings resolves authored bindings against the action table.
// Bindings naming actions the table lacks are an error: the two files are
// authored together.
func BuildKeyBindings(spec prefabs.KeyBindingsSpec, cfg *input.Config) ([]KeyBinding, error) {
	out := make([]KeyBinding, 0, len(spec.Bindings))
	for _, b := range spec.Bindings {
		action, ok := cfg.ActionByName(b.Action)
		if !ok {
			return nil, fmt.Errorf("input system: key bindings: unknown action %s", b.Action)
		}
		kb := KeyBinding{Action: action}
		for _, k := range b.Keys {
			var key ebiten.Key
			if err := key.UnmarshalText([]byte(k.Key)); err != nil {
				return nil, fmt.Errorf("input system: key bindings: action %s: %w", b.Action, err)
			}
			kb.keys = append(kb.keys, keyScale{key: key, scale: scaleOrOne(k.Scale)})
		}
		for _, gb := range b.GamepadButtons {
			button, ok := gamepadButtons[gb.Button]
			if !ok {
				return nil, fmt.Errorf("input system: key bindings: action %s: unknown gamepad button %q", b.Action, gb.Button)
			}
			kb.buttons = append(kb.buttons, buttonScale{button: button, scale: scaleOrOne(gb.Scale)})
		}
		for _, ga := range b.GamepadAxes {
			axis, ok := gamepadAxes[ga.Axis]
			if !ok {
				return nil, fmt.Errorf("input system: key bindings: action %s: unknown gamepad axis %q", b.Action, ga.Axis)
			}
			kb.axes = append(kb.axes, axisScale{axis: axis, scale: scaleOrOne(ga.Scale), deadzone: ga.Deadzone})
		}
		out = append(out, kb)
	}
	return out, nil
}

func scaleOrOne(s float64) float64 {
	if s == 0 {
		return 1
	}
	return s
}

// InputSystem polls the device, feeds the input subsystem and raises this
// frame's trigger events. Bound handlers run inside Update.
type InputSystem struct {
	device    Device
	subsystem *input.Subsystem
	bindings  []KeyBinding
}

func NewInputSystem(device Device, subsystem *input.Subsystem, bindings []KeyBinding) *InputSystem {
	return &InputSystem{device: device, subsystem: subsystem, bindings: bindings}
}

// SetBindings swaps the key map, canceling anything held under the old one.
func (i *InputSystem) SetBindings(bindings []KeyBinding) {
	i.subsystem.ReleaseAll()
	i.bindings = bindings
}

func (i *InputSystem) Update(w *ecs.World) {
	if i == nil || i.device == nil || i.subsystem == nil {
		return
	}
	for _, b := range i.bindings {
		i.subsystem.Feed(b.Action, i.read(b))
	}
	i.subsystem.Process()
}

func (i *InputSystem) read(b KeyBinding) input.Value {
	v := input.Value{Type: b.Action.ValueType}
	for _, k := range b.keys {
		if i.device.KeyPressed(k.key) {
			v.X += k.scale
		}
	}
	for _, gb := range b.buttons {
		if i.device.GamepadButtonPressed(gb.button) {
			v.X += gb.scale
		}
	}
	for _, ga := range b.axes {
		raw := i.device.GamepadAxis(ga.axis)
		if math.Abs(raw) > ga.deadzone {
			v.X += raw * ga.scale
		}
	}
	return v
}

// EbitenDevice reads the keyboard and the first connected gamepad.
type EbitenDevice struct {
	gamepads []ebiten.GamepadID
}

func NewEbitenDevice() *EbitenDevice {
	return &EbitenDevice{}
}

func (d *EbitenDevice) KeyPressed(key ebiten.Key) bool {
	return ebiten.IsKeyPressed(key)
}

func (d *EbitenDevice) GamepadButtonPressed(button ebiten.StandardGamepadButton) bool {
	id, ok := d.gamepad()
	return ok && ebiten.IsStandardGamepadButtonPressed(id, button)
}

func (d *EbitenDevice) GamepadAxis(axis ebiten.StandardGamepadAxis) float64 {
	id, ok := d.gamepad()
	if !ok {
		return 0
	}
	return ebiten.StandardGamepadAxisValue(id, axis)
}

func (d *EbitenDevice) gamepad() (ebiten.GamepadID, bool) {
	d.gamepads = ebiten.AppendGamepadIDs(d.gamepads[:0])
	if len(d.gamepads) == 0 {
		return 0, false
	}
	return d.gamepads[0], true
}
