package input

import "log"

// BindNativeAction resolves tag through cfg and registers fn to run with ctx
// when the action fires with trigger. It reports whether a handler was bound.
//
// A nil cfg or component is a wiring bug and panics. A tag missing from cfg is
// expected for partial configurations: it is logged and nothing is bound.
func BindNativeAction[C comparable](c *Component, cfg *Config, tag Tag, trigger TriggerEvent, ctx C, fn func(C, Value)) bool {
	if cfg == nil {
		log.Panicf("input: input config is nil, cannot bind %s", tag)
	}
	if c == nil {
		log.Panicf("input: input component is nil, cannot bind %s", tag)
	}
	action, ok := cfg.FindNativeAction(tag)
	if !ok {
		log.Printf("input: config %s has no native action for tag %s, skipping %s binding", cfg.Name(), tag, trigger)
		return false
	}
	c.BindAction(action, trigger, ctx, func(v Value) { fn(ctx, v) })
	return true
}

// BindAbilityActions binds every ability action in cfg: pressed runs on
// TriggerStarted and released on TriggerCompleted, each with the action's tag.
// It returns the number of actions bound.
func BindAbilityActions[C comparable](c *Component, cfg *Config, ctx C, pressed, released func(C, Tag)) int {
	if cfg == nil {
		log.Panicf("input: input config is nil, cannot bind ability actions")
	}
	if c == nil {
		log.Panicf("input: input component is nil, cannot bind ability actions")
	}
	n := 0
	for _, ta := range cfg.AbilityActions() {
		tag := ta.Tag
		if pressed != nil {
			c.BindAction(ta.Action, TriggerStarted, ctx, func(Value) { pressed(ctx, tag) })
		}
		if released != nil {
			c.BindAction(ta.Action, TriggerCompleted, ctx, func(Value) { released(ctx, tag) })
		}
		n++
	}
	return n
}
