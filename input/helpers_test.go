package input

import "testing"

var (
	tagMove  = MustTag("Input.Move")
	tagJump  = MustTag("Input.Jump")
	tagLook  = MustTag("Input.Look")
	tagRelax = MustTag("Input.Ability.Relax")
)

type controller struct {
	moves   []float64
	jumps   int
	pressed []Tag
}

func newTestConfig(t *testing.T) *Config {
	t.Helper()
	cfg, err := NewConfig("test",
		[]TaggedAction{
			{Tag: tagMove, Action: &Action{Name: "IA_Move", ValueType: ValueAxis1D}},
			{Tag: tagJump, Action: &Action{Name: "IA_Jump", ValueType: ValueBool}},
		},
		[]TaggedAction{
			{Tag: tagRelax, Action: &Action{Name: "IA_Relax", ValueType: ValueBool}},
		},
	)
	if err != nil {
		t.Fatalf("new config: %v", err)
	}
	return cfg
}

func mustAction(t *testing.T, cfg *Config, tag Tag) *Action {
	t.Helper()
	a, ok := cfg.FindNativeAction(tag)
	if !ok {
		t.Fatalf("missing action for %s", tag)
	}
	return a
}
