package anim

import "math"

// stillSpeed is the ground speed below which a body is reported as stopped.
const stillSpeed = 1e-3

// Snapshot is one frame of kinematic readings from the owning character.
type Snapshot struct {
	// Speed is the ground (horizontal) speed in pixels per second.
	Speed     float64
	VelocityX float64
	VelocityY float64
	Grounded  bool
	// HasIntent is true while the controller is asking the character to move.
	HasIntent  bool
	FacingLeft bool
}

// NewSnapshot builds a snapshot from raw body velocity, snapping solver noise
// to a speed of exactly zero.
func NewSnapshot(vx, vy float64, grounded, intent, facingLeft bool) Snapshot {
	speed := math.Abs(vx)
	if speed < stillSpeed {
		speed = 0
		vx = 0
	}
	return Snapshot{
		Speed:      speed,
		VelocityX:  vx,
		VelocityY:  vy,
		Grounded:   grounded,
		HasIntent:  intent,
		FacingLeft: facingLeft,
	}
}

// Direction returns the signed angle in degrees between the velocity and the
// facing direction, in [-180, 180]. A body at rest reports 0.
func (s Snapshot) Direction() float64 {
	if s.VelocityX == 0 && s.VelocityY == 0 {
		return 0
	}
	facing := 1.0
	if s.FacingLeft {
		facing = -1
	}
	cross := facing * s.VelocityY
	dot := facing * s.VelocityX
	return math.Atan2(cross, dot) * 180 / math.Pi
}

// KinematicSource is the owning character as seen by an evaluator. Sample
// reports false once the character is gone.
type KinematicSource interface {
	Sample() (Snapshot, bool)
}

// SourceFunc adapts a function to KinematicSource.
type SourceFunc func() (Snapshot, bool)

func (f SourceFunc) Sample() (Snapshot, bool) {
	return f()
}

// SnapshotSource is a KinematicSource holding a value copy that the main loop
// refreshes before evaluation fans out.
type SnapshotSource struct {
	snap  Snapshot
	valid bool
}

// NewSnapshotSource returns a source that is not yet available.
func NewSnapshotSource() *SnapshotSource {
	return &SnapshotSource{}
}

// Set replaces the held snapshot and marks the source available.
func (s *SnapshotSource) Set(snap Snapshot) {
	s.snap = snap
	s.valid = true
}

// Invalidate marks the owner as gone; later samples fail.
func (s *SnapshotSource) Invalidate() {
	s.snap = Snapshot{}
	s.valid = false
}

func (s *SnapshotSource) Sample() (Snapshot, bool) {
	if s == nil || !s.valid {
		return Snapshot{}, false
	}
	return s.snap, true
}
