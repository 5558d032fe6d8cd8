package input

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateTag    = errors.New("input: duplicate tag")
	ErrDuplicateAction = errors.New("input: duplicate action")
)

// TaggedAction pairs a gameplay tag with the action it names.
type TaggedAction struct {
	Tag    Tag
	Action *Action
}

// Config is the action table: native actions bound one by one by the
// controller, and ability actions bound in bulk. A Config is immutable after
// NewConfig and safe for concurrent lookups.
type Config struct {
	name    string
	native  []TaggedAction
	ability []TaggedAction
	byTag   map[Tag]*Action
	byName  map[string]*Action
}

// NewConfig validates and indexes the table. Action names must be unique
// across both lists, tags within each list.
func NewConfig(name string, native, ability []TaggedAction) (*Config, error) {
	c := &Config{
		name:    name,
		native:  append([]TaggedAction(nil), native...),
		ability: append([]TaggedAction(nil), ability...),
		byTag:   make(map[Tag]*Action, len(native)),
		byName:  make(map[string]*Action, len(native)+len(ability)),
	}
	abilityTags := make(map[Tag]struct{}, len(ability))

	index := func(ta TaggedAction, tags map[Tag]struct{}) error {
		if !ta.Tag.IsValid() {
			return fmt.Errorf("%w: config %s has an empty tag", ErrInvalidTag, name)
		}
		if ta.Action == nil || ta.Action.Name == "" {
			return fmt.Errorf("input: config %s: tag %s has no action", name, ta.Tag)
		}
		if _, ok := c.byName[ta.Action.Name]; ok {
			return fmt.Errorf("%w: config %s: %s", ErrDuplicateAction, name, ta.Action.Name)
		}
		if _, ok := tags[ta.Tag]; ok {
			return fmt.Errorf("%w: config %s: %s", ErrDuplicateTag, name, ta.Tag)
		}
		tags[ta.Tag] = struct{}{}
		c.byName[ta.Action.Name] = ta.Action
		return nil
	}

	nativeTags := make(map[Tag]struct{}, len(native))
	for _, ta := range c.native {
		if err := index(ta, nativeTags); err != nil {
			return nil, err
		}
		c.byTag[ta.Tag] = ta.Action
	}
	for _, ta := range c.ability {
		if err := index(ta, abilityTags); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (c *Config) Name() string {
	return c.name
}

// FindNativeAction looks up the native action for tag.
func (c *Config) FindNativeAction(tag Tag) (*Action, bool) {
	if c == nil {
		return nil, false
	}
	a, ok := c.byTag[tag]
	return a, ok
}

// ActionByName finds any action, native or ability, by its name.
func (c *Config) ActionByName(name string) (*Action, bool) {
	if c == nil {
		return nil, false
	}
	a, ok := c.byName[name]
	return a, ok
}

func (c *Config) NativeActions() []TaggedAction {
	return append([]TaggedAction(nil), c.native...)
}

func (c *Config) AbilityActions() []TaggedAction {
	return append([]TaggedAction(nil), c.ability...)
}
