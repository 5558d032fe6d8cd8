package prefabs

import (
	"fmt"

	"github.com/milk9111/warrior/anim"
	"github.com/milk9111/warrior/ecs/component"
	"github.com/milk9111/warrior/input"
)

// BuildInputConfig turns the authored table into a validated action table.
func BuildInputConfig(spec InputConfigSpec) (*input.Config, error) {
	native, err := buildTaggedActions(spec.Name, spec.NativeInputActions)
	if err != nil {
		return nil, err
	}
	ability, err := buildTaggedActions(spec.Name, spec.AbilityInputActions)
	if err != nil {
		return nil, err
	}
	cfg, err := input.NewConfig(spec.Name, native, ability)
	if err != nil {
		return nil, fmt.Errorf("prefabs: build input config: %w", err)
	}
	return cfg, nil
}

// LoadInputConfig loads and builds the action table in one step.
func LoadInputConfig(filename string) (*input.Config, error) {
	spec, err := LoadInputConfigSpec(filename)
	if err != nil {
		return nil, err
	}
	return BuildInputConfig(spec)
}

func buildTaggedActions(config string, specs []TaggedActionSpec) ([]input.TaggedAction, error) {
	out := make([]input.TaggedAction, 0, len(specs))
	for _, s := range specs {
		tag, err := input.RequestTag(s.Tag)
		if err != nil {
			return nil, fmt.Errorf("prefabs: input config %s: %w", config, err)
		}
		vt, err := input.ParseValueType(s.ValueType)
		if err != nil {
			return nil, fmt.Errorf("prefabs: input config %s: action %s: %w", config, s.Action, err)
		}
		out = append(out, input.TaggedAction{Tag: tag, Action: &input.Action{Name: s.Action, ValueType: vt}})
	}
	return out, nil
}

// BuildAnimConfig applies the authored anim data over the defaults.
func BuildAnimConfig(spec AnimDataSpec) (anim.Config, error) {
	cfg := anim.DefaultConfig()
	if spec.RelaxThreshold != nil {
		cfg.RelaxThreshold = *spec.RelaxThreshold
	}
	if spec.WalkSpeed > 0 {
		cfg.WalkSpeed = spec.WalkSpeed
	}
	if spec.RunSpeed > 0 {
		cfg.RunSpeed = spec.RunSpeed
	}
	cfg.ClassifierScript = spec.ClassifierScript
	if err := cfg.Validate(); err != nil {
		return anim.Config{}, fmt.Errorf("prefabs: anim data: %w", err)
	}
	return cfg, nil
}

// BuildClassifier compiles cfg's classifier script. It returns nil without
// error when no script is configured.
func BuildClassifier(cfg anim.Config) (anim.Classifier, error) {
	if cfg.ClassifierScript == "" {
		return nil, nil
	}
	src, err := LoadScript(cfg.ClassifierScript)
	if err != nil {
		return nil, fmt.Errorf("prefabs: load script %s: %w", cfg.ClassifierScript, err)
	}
	c, err := anim.CompileClassifier(cfg.ClassifierScript, src, cfg)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func BuildAnimation(spec AnimationSpec) component.Animation {
	defs := make(map[string]component.AnimationDef, len(spec.Defs))
	for name, d := range spec.Defs {
		defs[name] = component.AnimationDef{
			Name:       name,
			FrameCount: d.FrameCount,
			FPS:        d.FPS,
			Loop:       d.Loop,
		}
	}
	return component.Animation{Defs: defs, Current: spec.Current, Playing: spec.Current != ""}
}
