package system

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/warrior/common"
	"github.com/milk9111/warrior/ecs"
	"github.com/milk9111/warrior/input"
	"github.com/milk9111/warrior/prefabs"
)

type fakeDevice struct {
	keys    map[ebiten.Key]bool
	buttons map[ebiten.StandardGamepadButton]bool
	axes    map[ebiten.StandardGamepadAxis]float64
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{
		keys:    make(map[ebiten.Key]bool),
		buttons: make(map[ebiten.StandardGamepadButton]bool),
		axes:    make(map[ebiten.StandardGamepadAxis]float64),
	}
}

func (d *fakeDevice) KeyPressed(key ebiten.Key) bool { return d.keys[key] }

func (d *fakeDevice) GamepadButtonPressed(button ebiten.StandardGamepadButton) bool {
	return d.buttons[button]
}

func (d *fakeDevice) GamepadAxis(axis ebiten.StandardGamepadAxis) float64 { return d.axes[axis] }

func testKeyBindings() prefabs.KeyBindingsSpec {
	return prefabs.KeyBindingsSpec{Bindings: []prefabs.KeyBindingSpec{
		{
			Action: "IA_Move",
			Keys:   []prefabs.KeySpec{{Key: "A", Scale: -1}, {Key: "D", Scale: 1}},
			GamepadAxes: []prefabs.GamepadAxisSpec{
				{Axis: "left_stick_x", Scale: 1, Deadzone: 0.2},
			},
		},
		{
			Action:         "IA_Jump",
			Keys:           []prefabs.KeySpec{{Key: "Space"}},
			GamepadButtons: []prefabs.GamepadButtonSpec{{Button: "right_bottom"}},
		},
	}}
}

func TestBuildKeyBindingsErrors(t *testing.T) {
	cfg := newHeroConfig(t)
	tests := []struct {
		name    string
		binding prefabs.KeyBindingSpec
	}{
		{"unknown_action", prefabs.KeyBindingSpec{Action: "IA_Missing"}},
		{"unknown_key", prefabs.KeyBindingSpec{Action: "IA_Jump", Keys: []prefabs.KeySpec{{Key: "NotAKey"}}}},
		{"unknown_button", prefabs.KeyBindingSpec{Action: "IA_Jump", GamepadButtons: []prefabs.GamepadButtonSpec{{Button: "nope"}}}},
		{"unknown_axis", prefabs.KeyBindingSpec{Action: "IA_Move", GamepadAxes: []prefabs.GamepadAxisSpec{{Axis: "nope"}}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			spec := prefabs.KeyBindingsSpec{Bindings: []prefabs.KeyBindingSpec{tc.binding}}
			if _, err := BuildKeyBindings(spec, cfg); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestInputSystemRaisesTriggers(t *testing.T) {
	cfg := newHeroConfig(t)
	keys, err := BuildKeyBindings(testKeyBindings(), cfg)
	if err != nil {
		t.Fatalf("build key bindings: %v", err)
	}

	bindings := input.NewComponent()
	sub := input.NewSubsystem(bindings)
	dev := newFakeDevice()
	sys := NewInputSystem(dev, sub, keys)
	w := ecs.NewWorld()

	move, _ := cfg.FindNativeAction(common.InputTagMove)
	jump, _ := cfg.FindNativeAction(common.InputTagJump)

	var moves []float64
	var events []input.TriggerEvent
	ctx := &struct{}{}
	bindings.BindAction(move, input.TriggerTriggered, ctx, func(v input.Value) { moves = append(moves, v.Axis1D()) })
	for _, trig := range []input.TriggerEvent{input.TriggerStarted, input.TriggerCompleted, input.TriggerCanceled} {
		trig := trig
		bindings.BindAction(jump, trig, ctx, func(input.Value) { events = append(events, trig) })
	}

	tests := []struct {
		name       string
		setup      func()
		wantMove   []float64
		wantEvents []input.TriggerEvent
	}{
		{
			name:     "key_right",
			setup:    func() { dev.keys[ebiten.KeyD] = true },
			wantMove: []float64{1},
		},
		{
			name:     "opposite_keys_cancel",
			setup:    func() { dev.keys[ebiten.KeyA] = true },
			wantMove: nil,
		},
		{
			name: "stick_past_deadzone",
			setup: func() {
				dev.keys = make(map[ebiten.Key]bool)
				dev.axes[ebiten.StandardGamepadAxisLeftStickHorizontal] = -0.5
			},
			wantMove: []float64{-0.5},
		},
		{
			name: "stick_inside_deadzone_and_jump",
			setup: func() {
				dev.axes[ebiten.StandardGamepadAxisLeftStickHorizontal] = 0.1
				dev.buttons[ebiten.StandardGamepadButtonRightBottom] = true
			},
			wantEvents: []input.TriggerEvent{input.TriggerStarted},
		},
		{
			name:       "jump_released",
			setup:      func() { dev.buttons = make(map[ebiten.StandardGamepadButton]bool) },
			wantEvents: []input.TriggerEvent{input.TriggerCompleted},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			moves, events = nil, nil
			tc.setup()
			sys.Update(w)
			if !equalFloats(moves, tc.wantMove) {
				t.Fatalf("expected moves %v, got %v", tc.wantMove, moves)
			}
			if len(events) != len(tc.wantEvents) {
				t.Fatalf("expected events %v, got %v", tc.wantEvents, events)
			}
			for i := range events {
				if events[i] != tc.wantEvents[i] {
					t.Fatalf("expected events %v, got %v", tc.wantEvents, events)
				}
			}
		})
	}
}

func TestInputSystemSetBindingsCancels(t *testing.T) {
	cfg := newHeroConfig(t)
	keys, err := BuildKeyBindings(testKeyBindings(), cfg)
	if err != nil {
		t.Fatalf("build key bindings: %v", err)
	}
	bindings := input.NewComponent()
	sub := input.NewSubsystem(bindings)
	dev := newFakeDevice()
	sys := NewInputSystem(dev, sub, keys)

	jump, _ := cfg.FindNativeAction(common.InputTagJump)
	canceled := 0
	bindings.BindAction(jump, input.TriggerCanceled, sub, func(input.Value) { canceled++ })

	dev.keys[ebiten.KeySpace] = true
	sys.Update(ecs.NewWorld())
	sys.SetBindings(nil)

	if canceled != 1 {
		t.Fatalf("expected held jump canceled once, got %d", canceled)
	}
	if sub.IsActive(jump) {
		t.Fatalf("expected jump inactive after swap")
	}
}

func equalFloats(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
