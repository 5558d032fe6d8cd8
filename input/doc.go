// Package input routes device input to typed gameplay handlers by symbolic tag.
//
// A Config is the read-only action table mapping tags to actions. A Component
// holds handler registrations keyed by action, trigger event and binding
// context. A Subsystem turns raw per-frame action values into trigger events
// and dispatches them through the Component. BindNativeAction ties the three
// together: it resolves a tag through the table and registers a typed handler.
package input
