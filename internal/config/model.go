package config

import "context"

// Axis is a named configuration dimension swept across multiple values to
// generate jobs. It is immutable once declared. Duplicate values are
// allowed and produce duplicate jobs: redundant verification jobs are a
// deliberate real-world pattern, not a configuration mistake.
type Axis struct {
	Name   string
	Values []string
}

// Override is a partial job declaration: an axis value of its own plus
// extra environment keys and extra setup packages. Any field other than
// Value may be absent, in which case the global defaults apply. An
// override always produces one additional job beyond the primary sweep,
// even when its axis value also appears in the sweep.
type Override struct {
	Value    string
	Env      map[string]string
	Packages []string
}

// Model is the unified, format-agnostic representation of a matrix
// configuration. It is the single source of truth for the matrix expander
// and is never mutated after loading.
type Model struct {
	Axis      Axis
	Defaults  map[string]string
	Overrides []Override

	// CacheDir is a dependency cache shared by all jobs. The engine only
	// propagates it and never serializes access: the cache is assumed to
	// be per-job-isolated or safely concurrent.
	CacheDir string
}

// Loader is the interface for a format-specific configuration loader. It
// reads a single configuration file and translates it into the model.
type Loader interface {
	Load(ctx context.Context, path string) (*Model, error)
}
