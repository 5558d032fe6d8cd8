package anim

import (
	"errors"
	"fmt"
)

var ErrInvalidConfig = errors.New("anim: invalid config")

// DefaultRelaxThreshold is how long a character idles before it may relax.
const DefaultRelaxThreshold = 5.0

// Config is the per-character tuning of an evaluator.
type Config struct {
	// RelaxThreshold is the idle time in seconds after which RelaxEligible is set.
	RelaxThreshold float64
	WalkSpeed      float64
	RunSpeed       float64
	// ClassifierScript names a tengo script under prefabs/scripts. Empty means
	// the speed thresholds above are used directly.
	ClassifierScript string
}

func DefaultConfig() Config {
	return Config{
		RelaxThreshold: DefaultRelaxThreshold,
		WalkSpeed:      10,
		RunSpeed:       200,
	}
}

func (c Config) Validate() error {
	if c.RelaxThreshold < 0 {
		return fmt.Errorf("%w: relax threshold %v is negative", ErrInvalidConfig, c.RelaxThreshold)
	}
	if c.WalkSpeed < 0 || c.RunSpeed < 0 {
		return fmt.Errorf("%w: negative speed threshold (walk %v, run %v)", ErrInvalidConfig, c.WalkSpeed, c.RunSpeed)
	}
	if c.RunSpeed < c.WalkSpeed {
		return fmt.Errorf("%w: run speed %v below walk speed %v", ErrInvalidConfig, c.RunSpeed, c.WalkSpeed)
	}
	return nil
}

// Classifier returns the threshold classifier described by c.
func (c Config) Classifier() ThresholdClassifier {
	return ThresholdClassifier{WalkSpeed: c.WalkSpeed, RunSpeed: c.RunSpeed}
}
