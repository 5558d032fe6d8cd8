package input

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

var ErrInvalidTag = errors.New("input: invalid tag")

// Tag is an immutable dotted hierarchical identifier such as "Input.Move".
// Tags compare by value.
type Tag struct {
	name string
}

// RequestTag validates name and returns its tag.
func RequestTag(name string) (Tag, error) {
	if name == "" {
		return Tag{}, fmt.Errorf("%w: empty name", ErrInvalidTag)
	}
	for _, seg := range strings.Split(name, ".") {
		if seg == "" {
			return Tag{}, fmt.Errorf("%w: %q has an empty segment", ErrInvalidTag, name)
		}
		if strings.IndexFunc(seg, unicode.IsSpace) >= 0 {
			return Tag{}, fmt.Errorf("%w: %q contains whitespace", ErrInvalidTag, name)
		}
	}
	return Tag{name: name}, nil
}

// MustTag is RequestTag for package-level tag declarations.
func MustTag(name string) Tag {
	t, err := RequestTag(name)
	if err != nil {
		panic(err)
	}
	return t
}

func (t Tag) String() string {
	return t.name
}

func (t Tag) IsValid() bool {
	return t.name != ""
}

// MatchesTag reports whether t is other or nested under it, so
// "Input.Ability.Relax" matches "Input.Ability" and "Input".
func (t Tag) MatchesTag(other Tag) bool {
	if !t.IsValid() || !other.IsValid() {
		return false
	}
	return t.name == other.name || strings.HasPrefix(t.name, other.name+".")
}

func (t Tag) MatchesTagExact(other Tag) bool {
	return t.IsValid() && t == other
}

// Parent returns the enclosing tag, or the zero tag at the root.
func (t Tag) Parent() Tag {
	i := strings.LastIndexByte(t.name, '.')
	if i < 0 {
		return Tag{}
	}
	return Tag{name: t.name[:i]}
}
