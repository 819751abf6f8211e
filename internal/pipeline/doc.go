// Package pipeline holds the stage and step model and the stage runner.
// A stage is an ordered list of conditional steps; the runner executes
// them sequentially, skips steps whose predicate is false, stops at the
// first failure, and threads activation effects from each step into the
// working environment of the next.
//
// The runner knows nothing about what a step does. Steps are plain
// actions, usually closures over an external collaborator call assembled
// by the controller package.
package pipeline
