// Package matrix expands a declarative matrix configuration into the
// concrete list of job specifications to execute. Expansion is a pure
// function of the configuration: no I/O, no error paths, deterministic
// ordering (primary axis values first, then overrides, each in declared
// order).
package matrix
