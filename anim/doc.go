// Package anim derives per-frame animation state for a character from its
// kinematic readings.
//
// A HeroEvaluator is initialized once with a KinematicSource and then
// evaluated once per frame by an external driver. Evaluation only touches
// the evaluator's own State and a value copy of the current Snapshot, so
// evaluators for different characters may run on separate goroutines while
// other systems work. Readers of State must be ordered after Evaluate by the
// driver; the evaluator itself takes no locks.
package anim
