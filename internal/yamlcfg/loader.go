// Package yamlcfg loads matrix configuration from YAML files, as an
// alternative to the HCL format. Both loaders produce the same
// format-agnostic config model:
//
//	cache: /var/cache/pip
//	axis:
//	  name: python
//	  values: ["2.7", "3.6"]
//	env:
//	  DEPENDS: "numpy scipy"
//	jobs:
//	  - value: "2.7"
//	    env: { COVERAGE: "1" }
//	    packages: [libhdf5-dev]
package yamlcfg

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/vk/matrixci/internal/config"
	"github.com/vk/matrixci/internal/ctxlog"
	"gopkg.in/yaml.v3"
)

// Loader is the YAML implementation of config.Loader.
type Loader struct{}

// NewLoader creates a new YAML configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

type fileRoot struct {
	Cache string            `yaml:"cache"`
	Axis  axisNode          `yaml:"axis"`
	Env   map[string]string `yaml:"env"`
	Jobs  []jobNode         `yaml:"jobs"`
}

type axisNode struct {
	Name   string   `yaml:"name"`
	Values []string `yaml:"values"`
}

type jobNode struct {
	Value    string            `yaml:"value"`
	Env      map[string]string `yaml:"env"`
	Packages []string          `yaml:"packages"`
}

// Load reads one YAML file and translates it into the config model.
// Unknown fields are rejected so typos fail at load time instead of
// silently configuring nothing.
func (l *Loader) Load(ctx context.Context, path string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("YAML loader started.", "path", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var root fileRoot
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&root); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	model := &config.Model{
		Axis:     config.Axis{Name: root.Axis.Name, Values: root.Axis.Values},
		Defaults: root.Env,
		CacheDir: root.Cache,
	}
	for _, job := range root.Jobs {
		model.Overrides = append(model.Overrides, config.Override{
			Value:    job.Value,
			Env:      job.Env,
			Packages: job.Packages,
		})
	}

	logger.Debug("YAML loading complete.",
		"axis", model.Axis.Name,
		"values", len(model.Axis.Values),
		"overrides", len(model.Overrides))
	return model, nil
}
