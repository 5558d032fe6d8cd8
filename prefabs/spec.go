package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// InputConfigSpec is the authored form of the tag to action table.
type InputConfigSpec struct {
	Name                string             `yaml:"name"`
	NativeInputActions  []TaggedActionSpec `yaml:"native_input_actions"`
	AbilityInputActions []TaggedActionSpec `yaml:"ability_input_actions"`
}

type TaggedActionSpec struct {
	Tag       string `yaml:"tag"`
	Action    string `yaml:"action"`
	ValueType string `yaml:"value_type"`
}

func LoadInputConfigSpec(filename string) (InputConfigSpec, error) {
	return LoadSpec[InputConfigSpec](filename)
}

// KeyBindingsSpec maps physical keys and gamepad controls onto action names.
type KeyBindingsSpec struct {
	Bindings []KeyBindingSpec `yaml:"bindings"`
}

type KeyBindingSpec struct {
	Action         string              `yaml:"action"`
	Keys           []KeySpec           `yaml:"keys"`
	GamepadButtons []GamepadButtonSpec `yaml:"gamepad_buttons"`
	GamepadAxes    []GamepadAxisSpec   `yaml:"gamepad_axes"`
}

type KeySpec struct {
	Key   string  `yaml:"key"`
	Scale float64 `yaml:"scale"`
}

type GamepadButtonSpec struct {
	Button string  `yaml:"button"`
	Scale  float64 `yaml:"scale"`
}

type GamepadAxisSpec struct {
	Axis     string  `yaml:"axis"`
	Scale    float64 `yaml:"scale"`
	Deadzone float64 `yaml:"deadzone"`
}

func LoadKeyBindingsSpec(filename string) (KeyBindingsSpec, error) {
	return LoadSpec[KeyBindingsSpec](filename)
}

type HeroSpec struct {
	Name      string        `yaml:"name"`
	MoveSpeed float64       `yaml:"move_speed"`
	JumpSpeed float64       `yaml:"jump_speed"`
	Transform TransformSpec `yaml:"transform"`
	Collider  ColliderSpec  `yaml:"collider"`
	AnimData  AnimDataSpec  `yaml:"anim_data"`
	Animation AnimationSpec `yaml:"animation"`
}

type TransformSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type ColliderSpec struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Mass     float64 `yaml:"mass"`
	Friction float64 `yaml:"friction"`
}

// AnimDataSpec is the locomotion tuning read by the animation state evaluator.
type AnimDataSpec struct {
	RelaxThreshold   *float64 `yaml:"relax_threshold"`
	WalkSpeed        float64  `yaml:"walk_speed"`
	RunSpeed         float64  `yaml:"run_speed"`
	ClassifierScript string   `yaml:"classifier_script"`
}

type AnimationSpec struct {
	Defs    map[string]AnimationDefSpec `yaml:"defs"`
	Current string                      `yaml:"current"`
}

type AnimationDefSpec struct {
	FrameCount int     `yaml:"frame_count"`
	FPS        float64 `yaml:"fps"`
	Loop       bool    `yaml:"loop"`
}

func LoadHeroSpec(filename string) (HeroSpec, error) {
	return LoadSpec[HeroSpec](filename)
}

type GroundSpec struct {
	Transform TransformSpec `yaml:"transform"`
	Collider  ColliderSpec  `yaml:"collider"`
}

// LevelSpec is the static geometry the hero stands on.
type LevelSpec struct {
	Name    string       `yaml:"name"`
	Gravity float64      `yaml:"gravity"`
	Ground  []GroundSpec `yaml:"ground"`
}

func LoadLevelSpec(filename string) (LevelSpec, error) {
	return LoadSpec[LevelSpec](filename)
}
