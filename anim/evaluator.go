package anim

// State is the derived animation state published once per frame.
type State struct {
	Locomotion      Locomotion
	GroundSpeed     float64
	HasAcceleration bool
	Direction       float64
	IdleElapsed     float64
	RelaxEligible   bool
}

// cloner is implemented by classifiers holding per-instance mutable state.
type cloner interface {
	Clone() Classifier
}

// HeroEvaluator turns kinematic snapshots into State, tracking how long the
// character has stood still.
type HeroEvaluator struct {
	cfg        Config
	classifier Classifier
	source     KinematicSource
	state      State
}

// NewHeroEvaluator builds an evaluator. A nil classifier uses cfg's speed
// thresholds.
func NewHeroEvaluator(cfg Config, classifier Classifier) *HeroEvaluator {
	h := &HeroEvaluator{}
	h.SetConfig(cfg, classifier)
	return h
}

// SetConfig swaps tuning and classifier, keeping the current state. Must not
// run concurrently with Evaluate.
func (h *HeroEvaluator) SetConfig(cfg Config, classifier Classifier) {
	if classifier == nil {
		classifier = cfg.Classifier()
	}
	if c, ok := classifier.(cloner); ok {
		classifier = c.Clone()
	}
	h.cfg = cfg
	h.classifier = classifier
	if h.state.IdleElapsed < cfg.RelaxThreshold {
		h.state.RelaxEligible = false
	}
}

func (h *HeroEvaluator) Config() Config {
	return h.cfg
}

// Initialize binds the evaluator to its owner and zeroes all derived state.
// It panics on a nil source: that is a wiring bug, not a runtime condition.
func (h *HeroEvaluator) Initialize(src KinematicSource) {
	if src == nil {
		panic("anim: initialize with nil kinematic source")
	}
	h.source = src
	h.state = State{}
}

// Evaluate advances the derived state by one frame of deltaSeconds.
//
// When the source is missing or reports its owner gone the frame is skipped
// and the last state is held. A non-positive delta only re-classifies the
// locomotion bucket; idle time and relax eligibility stay as they were.
func (h *HeroEvaluator) Evaluate(deltaSeconds float64) {
	if h == nil || h.source == nil {
		return
	}
	snap, ok := h.source.Sample()
	if !ok {
		return
	}

	next := h.state
	next.Locomotion = h.classifier.Classify(snap)
	next.GroundSpeed = snap.Speed
	next.HasAcceleration = snap.HasIntent
	next.Direction = snap.Direction()

	if deltaSeconds > 0 {
		if next.Locomotion == LocomotionIdle && snap.Speed == 0 {
			next.IdleElapsed += deltaSeconds
			next.RelaxEligible = next.IdleElapsed >= h.cfg.RelaxThreshold
		} else {
			next.IdleElapsed = 0
			next.RelaxEligible = false
		}
	}

	h.state = next
}

// State returns the last published state.
func (h *HeroEvaluator) State() State {
	return h.state
}

func (h *HeroEvaluator) Locomotion() Locomotion {
	return h.state.Locomotion
}

func (h *HeroEvaluator) RelaxEligible() bool {
	return h.state.RelaxEligible
}

func (h *HeroEvaluator) IdleElapsed() float64 {
	return h.state.IdleElapsed
}
