// Package orchestrator wires the widget lookup → settings validation →
// resolution → renderer pipeline behind a single entry point, with every
// stage open to dependency injection.
package orchestrator
