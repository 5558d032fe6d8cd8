package anim

import (
	"fmt"
	"log"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// classifyDispatch is appended to every classifier script. The script must
// define classify(speed, grounded, intent) returning a locomotion name.
const classifyDispatch = `
__result := classify(__speed, __grounded, __intent)
`

// ScriptClassifier buckets snapshots by running a tengo script. Any script
// failure falls back to the threshold classifier.
type ScriptClassifier struct {
	name     string
	compiled *tengo.Compiled
	fallback Classifier
	warned   bool
}

// CompileClassifier compiles src once. walk_speed and run_speed are exposed to
// the script from cfg.
func CompileClassifier(name string, src []byte, cfg Config) (*ScriptClassifier, error) {
	full := append(append([]byte(nil), src...), classifyDispatch...)
	script := tengo.NewScript(full)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))
	for k, v := range map[string]any{
		"__speed":    0.0,
		"__grounded": false,
		"__intent":   false,
		"walk_speed": cfg.WalkSpeed,
		"run_speed":  cfg.RunSpeed,
	} {
		if err := script.Add(k, v); err != nil {
			return nil, fmt.Errorf("anim: script %s: add %s: %w", name, k, err)
		}
	}

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("anim: compile %s: %w", name, err)
	}
	return &ScriptClassifier{name: name, compiled: compiled, fallback: cfg.Classifier()}, nil
}

// Clone returns an independent copy safe to run on another goroutine.
func (c *ScriptClassifier) Clone() Classifier {
	return &ScriptClassifier{name: c.name, compiled: c.compiled.Clone(), fallback: c.fallback}
}

func (c *ScriptClassifier) Classify(s Snapshot) Locomotion {
	l, err := c.run(s)
	if err != nil {
		if !c.warned {
			log.Printf("anim: classifier %s failed, using thresholds: %v", c.name, err)
			c.warned = true
		}
		return c.fallback.Classify(s)
	}
	return l
}

func (c *ScriptClassifier) run(s Snapshot) (Locomotion, error) {
	if err := c.compiled.Set("__speed", s.Speed); err != nil {
		return LocomotionIdle, err
	}
	if err := c.compiled.Set("__grounded", s.Grounded); err != nil {
		return LocomotionIdle, err
	}
	if err := c.compiled.Set("__intent", s.HasIntent); err != nil {
		return LocomotionIdle, err
	}
	if err := c.compiled.Run(); err != nil {
		return LocomotionIdle, err
	}
	return ParseLocomotion(c.compiled.Get("__result").String())
}
