package anim

import (
	"errors"
	"testing"
)

func TestThresholdClassifier(t *testing.T) {
	c := DefaultConfig().Classifier()
	cases := []struct {
		name string
		snap Snapshot
		want Locomotion
	}{
		{"still", NewSnapshot(0, 0, true, false, false), LocomotionIdle},
		{"drift_below_walk", NewSnapshot(3, 0, true, false, false), LocomotionIdle},
		{"pushing_wall", NewSnapshot(0, 0, true, true, false), LocomotionWalking},
		{"walk", NewSnapshot(-80, 0, true, true, true), LocomotionWalking},
		{"run", NewSnapshot(260, 0, true, true, false), LocomotionRunning},
		{"airborne", NewSnapshot(260, -400, false, true, false), LocomotionFalling},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := c.Classify(tc.snap); got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestParseLocomotion(t *testing.T) {
	for _, l := range []Locomotion{LocomotionIdle, LocomotionWalking, LocomotionRunning, LocomotionFalling} {
		got, err := ParseLocomotion(" " + l.String() + " ")
		if err != nil || got != l {
			t.Fatalf("parse %s: got %s err %v", l, got, err)
		}
	}
	if _, err := ParseLocomotion("crouching"); err == nil {
		t.Fatalf("expected error for unknown bucket")
	}
	if Locomotion(42).String() != "locomotion(42)" {
		t.Fatalf("unexpected out of range name %q", Locomotion(42).String())
	}
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"default", func(*Config) {}, false},
		{"zero_threshold", func(c *Config) { c.RelaxThreshold = 0 }, false},
		{"negative_threshold", func(c *Config) { c.RelaxThreshold = -1 }, true},
		{"negative_walk", func(c *Config) { c.WalkSpeed = -1 }, true},
		{"run_below_walk", func(c *Config) { c.RunSpeed = 1; c.WalkSpeed = 5 }, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr != (err != nil) {
				t.Fatalf("expected err=%v, got %v", tc.wantErr, err)
			}
			if err != nil && !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}
