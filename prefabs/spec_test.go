package prefabs

import (
	"testing"

	"github.com/milk9111/warrior/anim"
	"github.com/milk9111/warrior/input"
)

func TestLoadEmbeddedInputConfig(t *testing.T) {
	cfg, err := LoadInputConfig("input_config.yaml")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	cases := []struct {
		tag  string
		name string
		vt   input.ValueType
	}{
		{"Input.Move", "IA_Move", input.ValueAxis1D},
		{"Input.Jump", "IA_Jump", input.ValueBool},
	}
	for _, c := range cases {
		t.Run(c.tag, func(t *testing.T) {
			a, ok := cfg.FindNativeAction(input.MustTag(c.tag))
			if !ok {
				t.Fatalf("missing %s", c.tag)
			}
			if a.Name != c.name || a.ValueType != c.vt {
				t.Fatalf("unexpected action %+v", a)
			}
		})
	}
	if _, ok := cfg.FindNativeAction(input.MustTag("Input.Look")); ok {
		t.Fatalf("default config should not carry Input.Look")
	}
	if got := len(cfg.AbilityActions()); got != 1 {
		t.Fatalf("expected one ability action, got %d", got)
	}
}

func TestBuildInputConfigErrors(t *testing.T) {
	cases := []struct {
		name string
		spec InputConfigSpec
	}{
		{"bad_tag", InputConfigSpec{NativeInputActions: []TaggedActionSpec{{Tag: "Input..Move", Action: "IA_Move"}}}},
		{"bad_value_type", InputConfigSpec{NativeInputActions: []TaggedActionSpec{{Tag: "Input.Move", Action: "IA_Move", ValueType: "axis9d"}}}},
		{"duplicate_tag", InputConfigSpec{NativeInputActions: []TaggedActionSpec{
			{Tag: "Input.Move", Action: "IA_Move"},
			{Tag: "Input.Move", Action: "IA_Move2"},
		}}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := BuildInputConfig(c.spec); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestLoadHeroSpec(t *testing.T) {
	spec, err := LoadHeroSpec("hero.yaml")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	cfg, err := BuildAnimConfig(spec.AnimData)
	if err != nil {
		t.Fatalf("anim config: %v", err)
	}
	if cfg.RelaxThreshold != 5 {
		t.Fatalf("expected relax threshold 5, got %v", cfg.RelaxThreshold)
	}

	classifier, err := BuildClassifier(cfg)
	if err != nil {
		t.Fatalf("classifier: %v", err)
	}
	if classifier == nil {
		t.Fatalf("expected scripted classifier")
	}
	if got := classifier.Classify(anim.NewSnapshot(300, 0, true, true, false)); got != anim.LocomotionRunning {
		t.Fatalf("expected running, got %s", got)
	}

	a := BuildAnimation(spec.Animation)
	for _, clip := range []string{"idle", "relax", "walk", "run", "fall"} {
		if _, ok := a.Defs[clip]; !ok {
			t.Fatalf("missing clip %s", clip)
		}
	}
	if a.Current != "idle" || !a.Playing {
		t.Fatalf("expected idle playing, got %q playing=%v", a.Current, a.Playing)
	}
}

func TestBuildAnimConfig(t *testing.T) {
	zero := 0.0
	neg := -1.0
	cases := []struct {
		name    string
		spec    AnimDataSpec
		want    float64
		wantErr bool
	}{
		{"default_threshold", AnimDataSpec{}, anim.DefaultRelaxThreshold, false},
		{"explicit_zero", AnimDataSpec{RelaxThreshold: &zero}, 0, false},
		{"negative", AnimDataSpec{RelaxThreshold: &neg}, 0, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg, err := BuildAnimConfig(c.spec)
			if c.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cfg.RelaxThreshold != c.want {
				t.Fatalf("expected %v, got %v", c.want, cfg.RelaxThreshold)
			}
		})
	}
}

func TestLoadKeyBindingsAndLevel(t *testing.T) {
	kb, err := LoadKeyBindingsSpec("key_bindings.yaml")
	if err != nil {
		t.Fatalf("key bindings: %v", err)
	}
	if len(kb.Bindings) != 3 || kb.Bindings[0].Action != "IA_Move" || len(kb.Bindings[0].Keys) != 4 {
		t.Fatalf("unexpected key bindings %+v", kb)
	}
	lvl, err := LoadLevelSpec("level.yaml")
	if err != nil {
		t.Fatalf("level: %v", err)
	}
	if lvl.Gravity <= 0 || len(lvl.Ground) == 0 {
		t.Fatalf("unexpected level %+v", lvl)
	}
}

func TestCleanScriptPath(t *testing.T) {
	for _, in := range []string{"locomotion.tengo", "scripts/locomotion.tengo", "prefabs/scripts/locomotion.tengo"} {
		if got := cleanScriptPath(in); got != "scripts/locomotion.tengo" {
			t.Fatalf("%s: got %s", in, got)
		}
	}
}
