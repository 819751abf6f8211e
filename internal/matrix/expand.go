package matrix

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/vk/matrixci/internal/config"
	"github.com/vk/matrixci/internal/environ"
)

// JobSpec is one fully resolved, concrete unit of work. It is immutable
// after expansion and consumed read-only by the pipeline controller.
type JobSpec struct {
	// ID uniquely identifies this job within a run.
	ID string
	// Name is a human-readable label, axis=value, suitable for logs and
	// the summary table. Duplicate jobs share a name but never an ID.
	Name string
	// Axis and Value identify the point on the primary axis.
	Axis  string
	Value string
	// Env is the flattened environment: global defaults overlaid with the
	// override's keys (override wins, absent keys keep defaults).
	Env environ.Env
	// Packages are extra setup requirements (system packages) declared by
	// the override, in declared order.
	Packages []string
}

// Expand produces the full ordered job list for one matrix declaration:
// one spec per primary axis value using the global defaults, followed by
// one spec per override with the override's environment overlaid on the
// defaults. Overrides always append; they never replace a primary-sweep
// entry, even when they pin the same axis value. Duplicate jobs model
// independent verification concerns and are preserved as-is.
func Expand(axis config.Axis, defaults map[string]string, overrides []config.Override) []JobSpec {
	base := environ.New(defaults)
	specs := make([]JobSpec, 0, len(axis.Values)+len(overrides))

	for _, value := range axis.Values {
		specs = append(specs, JobSpec{
			ID:    uuid.NewString(),
			Name:  fmt.Sprintf("%s=%s", axis.Name, value),
			Axis:  axis.Name,
			Value: value,
			Env:   base,
		})
	}

	for _, o := range overrides {
		specs = append(specs, JobSpec{
			ID:       uuid.NewString(),
			Name:     fmt.Sprintf("%s=%s", axis.Name, o.Value),
			Axis:     axis.Name,
			Value:    o.Value,
			Env:      environ.Overlay(base, environ.New(o.Env)),
			Packages: append([]string(nil), o.Packages...),
		})
	}

	return specs
}

// ExpandModel expands a loaded configuration model, propagating the cache
// directory into every job's environment when one is declared.
func ExpandModel(m *config.Model) []JobSpec {
	defaults := m.Defaults
	if m.CacheDir != "" {
		merged := make(map[string]string, len(m.Defaults)+1)
		for k, v := range m.Defaults {
			merged[k] = v
		}
		merged[config.KeyCacheDir] = m.CacheDir
		defaults = merged
	}
	return Expand(m.Axis, defaults, m.Overrides)
}
