package ecs

// Event is a generic ECS event payload.
type Event struct {
	Type string
	Data any
}

const (
	EventGrounded    = "grounded"
	EventClipChanged = "clip_changed"
)

// GroundedEvent is emitted when a body touches down or leaves the ground.
type GroundedEvent struct {
	Entity   Entity
	Grounded bool
}

// ClipChangedEvent is emitted when an animation consumer switches clips.
type ClipChangedEvent struct {
	Entity Entity
	From   string
	To     string
}

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Len reports the number of queued events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
