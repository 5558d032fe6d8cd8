package input

type actionState struct {
	action *Action
	value  Value
	active bool
}

// Subsystem evaluates action signals once per frame and raises trigger events
// through a Component.
//
// Feed any number of device contributions during a frame, then call Process.
// Actions not fed during a frame read as released.
type Subsystem struct {
	component *Component
	states    map[*Action]*actionState
	order     []*actionState
}

func NewSubsystem(c *Component) *Subsystem {
	return &Subsystem{component: c, states: make(map[*Action]*actionState)}
}

func (s *Subsystem) Component() *Component {
	return s.component
}

// Feed adds a device contribution to action's value for this frame.
func (s *Subsystem) Feed(action *Action, v Value) {
	if action == nil {
		return
	}
	st := s.state(action)
	st.value = st.value.add(v)
}

// Process raises this frame's trigger events and resets fed values. It
// returns the number of handlers invoked.
//
//	inactive -> active: Started, Triggered
//	active   -> active: Ongoing, Triggered
//	active   -> inactive: Completed
func (s *Subsystem) Process() int {
	n := 0
	for _, st := range s.order {
		v := st.value
		now := v.IsActive()
		switch {
		case now && !st.active:
			n += s.component.Dispatch(st.action, TriggerStarted, v)
			n += s.component.Dispatch(st.action, TriggerTriggered, v)
		case now && st.active:
			n += s.component.Dispatch(st.action, TriggerOngoing, v)
			n += s.component.Dispatch(st.action, TriggerTriggered, v)
		case !now && st.active:
			n += s.component.Dispatch(st.action, TriggerCompleted, v)
		}
		st.active = now
		st.value = Value{Type: st.action.ValueType}
	}
	return n
}

// Release cancels action if it is active, raising TriggerCanceled.
func (s *Subsystem) Release(action *Action) int {
	st, ok := s.states[action]
	if !ok {
		return 0
	}
	st.value = Value{Type: action.ValueType}
	if !st.active {
		return 0
	}
	st.active = false
	return s.component.Dispatch(action, TriggerCanceled, st.value)
}

// ReleaseAll cancels every active action and forgets all tracked actions,
// used when the action table is swapped.
func (s *Subsystem) ReleaseAll() int {
	n := 0
	for _, st := range s.order {
		n += s.Release(st.action)
	}
	s.states = make(map[*Action]*actionState)
	s.order = nil
	return n
}

// IsActive reports whether action was active as of the last Process.
func (s *Subsystem) IsActive(action *Action) bool {
	st, ok := s.states[action]
	return ok && st.active
}

func (s *Subsystem) state(action *Action) *actionState {
	st, ok := s.states[action]
	if !ok {
		st = &actionState{action: action, value: Value{Type: action.ValueType}}
		s.states[action] = st
		s.order = append(s.order, st)
	}
	return st
}
