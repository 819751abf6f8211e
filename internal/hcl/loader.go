package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/matrixci/internal/config"
	"github.com/vk/matrixci/internal/ctxlog"
)

// Loader is the HCL implementation of config.Loader.
type Loader struct{}

// NewLoader creates a new HCL configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// fileRoot decodes the top level of a matrix configuration file.
type fileRoot struct {
	Matrix *matrixBlock `hcl:"matrix,block"`
}

type matrixBlock struct {
	Cache *string        `hcl:"cache,optional"`
	Axis  *axisBlock     `hcl:"axis,block"`
	Env   hcl.Expression `hcl:"env,optional"`
	Jobs  []*jobBlock    `hcl:"job,block"`
}

type axisBlock struct {
	Name   string   `hcl:"name,label"`
	Values []string `hcl:"values"`
}

type jobBlock struct {
	Value    string         `hcl:"value"`
	Env      hcl.Expression `hcl:"env,optional"`
	Packages []string       `hcl:"packages,optional"`
}

// Load parses one HCL file and translates it into the config model.
// Parse and decode diagnostics surface as configuration errors.
func (l *Loader) Load(ctx context.Context, path string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path", path)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse %s: %w", path, diags)
	}

	var root fileRoot
	if diags := gohcl.DecodeBody(file.Body, nil, &root); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode %s: %w", path, diags)
	}
	if root.Matrix == nil {
		return nil, fmt.Errorf("%s: missing required matrix block", path)
	}

	model, err := translateMatrix(root.Matrix)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	logger.Debug("HCL loading complete.",
		"axis", model.Axis.Name,
		"values", len(model.Axis.Values),
		"overrides", len(model.Overrides))
	return model, nil
}

func translateMatrix(block *matrixBlock) (*config.Model, error) {
	if block.Axis == nil {
		return nil, fmt.Errorf("matrix block is missing an axis block")
	}

	defaults, err := envMap(block.Env)
	if err != nil {
		return nil, fmt.Errorf("env: %w", err)
	}

	model := &config.Model{
		Axis:     config.Axis{Name: block.Axis.Name, Values: block.Axis.Values},
		Defaults: defaults,
	}
	if block.Cache != nil {
		model.CacheDir = *block.Cache
	}

	for i, job := range block.Jobs {
		env, err := envMap(job.Env)
		if err != nil {
			return nil, fmt.Errorf("job %d: env: %w", i+1, err)
		}
		model.Overrides = append(model.Overrides, config.Override{
			Value:    job.Value,
			Env:      env,
			Packages: job.Packages,
		})
	}
	return model, nil
}
