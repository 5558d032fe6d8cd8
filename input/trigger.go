package input

import "fmt"

// TriggerEvent is the phase of an input signal at which a handler fires.
type TriggerEvent int

const (
	TriggerNone TriggerEvent = iota
	// TriggerStarted fires on the frame an action becomes active.
	TriggerStarted
	// TriggerOngoing fires on every later frame while it stays active.
	TriggerOngoing
	// TriggerTriggered fires on every active frame, including the first.
	TriggerTriggered
	// TriggerCompleted fires on the frame an action is released.
	TriggerCompleted
	// TriggerCanceled fires when an active action is cut off without a release.
	TriggerCanceled
)

var triggerNames = [...]string{
	TriggerNone:      "none",
	TriggerStarted:   "started",
	TriggerOngoing:   "ongoing",
	TriggerTriggered: "triggered",
	TriggerCompleted: "completed",
	TriggerCanceled:  "canceled",
}

func (t TriggerEvent) String() string {
	if t < 0 || int(t) >= len(triggerNames) {
		return fmt.Sprintf("trigger(%d)", int(t))
	}
	return triggerNames[t]
}
