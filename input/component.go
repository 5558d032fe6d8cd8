package input

// bindingKey identifies one registration slot. The binding context must be a
// comparable value, in practice a pointer to the owning controller.
type bindingKey struct {
	action  *Action
	trigger TriggerEvent
	context any
}

type binding struct {
	key bindingKey
	fn  func(Value)
}

// Component is the registry bound handlers live in. It is driven from the
// game's update goroutine only.
type Component struct {
	bindings []binding
	index    map[bindingKey]int
}

func NewComponent() *Component {
	return &Component{index: make(map[bindingKey]int)}
}

// BindAction registers fn for action and trigger on behalf of ctx. An existing
// registration for the same triple is replaced in place.
func (c *Component) BindAction(action *Action, trigger TriggerEvent, ctx any, fn func(Value)) {
	if action == nil || fn == nil {
		return
	}
	key := bindingKey{action: action, trigger: trigger, context: ctx}
	if i, ok := c.index[key]; ok {
		c.bindings[i].fn = fn
		return
	}
	c.index[key] = len(c.bindings)
	c.bindings = append(c.bindings, binding{key: key, fn: fn})
}

// RemoveBindings drops every registration made on behalf of ctx and returns
// how many were removed.
func (c *Component) RemoveBindings(ctx any) int {
	return c.removeWhere(func(k bindingKey) bool { return k.context == ctx })
}

// ClearBindings drops every registration.
func (c *Component) ClearBindings() {
	c.bindings = nil
	c.index = make(map[bindingKey]int)
}

// Bindings reports the number of live registrations.
func (c *Component) Bindings() int {
	return len(c.bindings)
}

// IsBound reports whether a handler is registered for the triple.
func (c *Component) IsBound(action *Action, trigger TriggerEvent, ctx any) bool {
	_, ok := c.index[bindingKey{action: action, trigger: trigger, context: ctx}]
	return ok
}

// Dispatch invokes every handler registered for action and trigger, in
// registration order, and returns how many ran. Handlers may bind or unbind
// while being dispatched; changes apply from the next dispatch.
func (c *Component) Dispatch(action *Action, trigger TriggerEvent, v Value) int {
	var fns []func(Value)
	for _, b := range c.bindings {
		if b.key.action == action && b.key.trigger == trigger {
			fns = append(fns, b.fn)
		}
	}
	for _, fn := range fns {
		fn(v)
	}
	return len(fns)
}

func (c *Component) removeWhere(match func(bindingKey) bool) int {
	kept := c.bindings[:0]
	removed := 0
	for _, b := range c.bindings {
		if match(b.key) {
			removed++
			continue
		}
		kept = append(kept, b)
	}
	for i := len(kept); i < len(c.bindings); i++ {
		c.bindings[i] = binding{}
	}
	c.bindings = kept
	c.index = make(map[bindingKey]int, len(kept))
	for i, b := range kept {
		c.index[b.key] = i
	}
	return removed
}
