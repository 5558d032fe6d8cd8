package input

import (
	"errors"
	"testing"
)

func TestRequestTag(t *testing.T) {
	cases := []struct {
		name    string
		wantErr bool
	}{
		{"Input.Move", false},
		{"Input", false},
		{"", true},
		{"Input..Move", true},
		{".Input", true},
		{"Input.Mo ve", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := RequestTag(tc.name)
			if tc.wantErr != (err != nil) {
				t.Fatalf("expected err=%v, got %v", tc.wantErr, err)
			}
			if err != nil && !errors.Is(err, ErrInvalidTag) {
				t.Fatalf("expected ErrInvalidTag, got %v", err)
			}
		})
	}
}

func TestTagMatching(t *testing.T) {
	if !tagRelax.MatchesTag(MustTag("Input.Ability")) || !tagRelax.MatchesTag(MustTag("Input")) {
		t.Fatalf("expected hierarchical match")
	}
	if MustTag("Input.MoveFast").MatchesTag(tagMove) {
		t.Fatalf("prefix without a dot boundary must not match")
	}
	if !tagMove.MatchesTagExact(MustTag("Input.Move")) || tagMove.MatchesTagExact(MustTag("Input")) {
		t.Fatalf("unexpected exact match result")
	}
	if tagRelax.Parent() != MustTag("Input.Ability") || MustTag("Input").Parent().IsValid() {
		t.Fatalf("unexpected parent")
	}
	if (Tag{}).MatchesTag(Tag{}) {
		t.Fatalf("zero tags never match")
	}
}

func TestNewConfigRejectsDuplicates(t *testing.T) {
	cases := []struct {
		name    string
		native  []TaggedAction
		ability []TaggedAction
		want    error
	}{
		{
			name: "duplicate_tag",
			native: []TaggedAction{
				{Tag: tagMove, Action: &Action{Name: "IA_Move"}},
				{Tag: tagMove, Action: &Action{Name: "IA_Move2"}},
			},
			want: ErrDuplicateTag,
		},
		{
			name:    "duplicate_action_across_lists",
			native:  []TaggedAction{{Tag: tagJump, Action: &Action{Name: "IA_Jump"}}},
			ability: []TaggedAction{{Tag: tagRelax, Action: &Action{Name: "IA_Jump"}}},
			want:    ErrDuplicateAction,
		},
		{
			name:   "empty_tag",
			native: []TaggedAction{{Action: &Action{Name: "IA_Jump"}}},
			want:   ErrInvalidTag,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewConfig(tc.name, tc.native, tc.ability)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestFindNativeActionSkipsAbilities(t *testing.T) {
	cfg := newTestConfig(t)
	if _, ok := cfg.FindNativeAction(tagRelax); ok {
		t.Fatalf("ability actions are not native actions")
	}
	if _, ok := cfg.ActionByName("IA_Relax"); !ok {
		t.Fatalf("expected ability action by name")
	}
	var nilCfg *Config
	if _, ok := nilCfg.FindNativeAction(tagMove); ok {
		t.Fatalf("nil config finds nothing")
	}
}
