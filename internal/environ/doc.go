// Package environ models a job's environment: an immutable declared
// key/value mapping, right-biased overlays, structured predicates used to
// guard conditional steps, and explicit activation effects that steps hand
// back to the engine instead of mutating process state.
//
// The declared environment of a job never changes after matrix expansion.
// Anything a step wants later steps to see is expressed as an Effect and
// applied by the engine to a derived working environment.
package environ
