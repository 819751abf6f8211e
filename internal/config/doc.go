// Package config defines the format-agnostic configuration model for a
// matrix run: the primary axis, the global default environment, and the
// per-job overrides. It also owns configuration validation, which runs
// before any job executes so that malformed declarations never cause
// partial pipeline runs.
//
// Concrete loaders (HCL, YAML) live in separate packages and translate
// their format into this model through the Loader interface.
package config
