package anim

import (
	"fmt"
	"strings"
)

// Locomotion is the categorical movement bucket published to animation consumers.
type Locomotion int

const (
	LocomotionIdle Locomotion = iota
	LocomotionWalking
	LocomotionRunning
	LocomotionFalling
)

var locomotionNames = [...]string{
	LocomotionIdle:    "idle",
	LocomotionWalking: "walking",
	LocomotionRunning: "running",
	LocomotionFalling: "falling",
}

func (l Locomotion) String() string {
	if l < 0 || int(l) >= len(locomotionNames) {
		return fmt.Sprintf("locomotion(%d)", int(l))
	}
	return locomotionNames[l]
}

// ParseLocomotion maps a bucket name back to its value. Matching ignores case.
func ParseLocomotion(name string) (Locomotion, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for i, n := range locomotionNames {
		if n == key {
			return Locomotion(i), nil
		}
	}
	return LocomotionIdle, fmt.Errorf("anim: unknown locomotion %q", name)
}

// Classifier buckets a snapshot. Implementations must be pure: the same
// snapshot always yields the same bucket.
type Classifier interface {
	Classify(s Snapshot) Locomotion
}

// ThresholdClassifier buckets by ground speed.
type ThresholdClassifier struct {
	WalkSpeed float64
	RunSpeed  float64
}

func (c ThresholdClassifier) Classify(s Snapshot) Locomotion {
	switch {
	case !s.Grounded:
		return LocomotionFalling
	case s.Speed >= c.RunSpeed && s.Speed > 0:
		return LocomotionRunning
	case s.Speed >= c.WalkSpeed && s.Speed > 0, s.HasIntent:
		return LocomotionWalking
	default:
		return LocomotionIdle
	}
}
