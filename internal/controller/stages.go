package controller

import (
	"context"
	"fmt"
	"strings"

	"github.com/vk/matrixci/internal/collab"
	"github.com/vk/matrixci/internal/config"
	"github.com/vk/matrixci/internal/environ"
	"github.com/vk/matrixci/internal/matrix"
	"github.com/vk/matrixci/internal/pipeline"
)

// baseTooling is installed for every job before anything else.
var baseTooling = []string{"pip", "virtualenv"}

// coverageTooling is installed only when the coverage flag is set.
var coverageTooling = []string{"coverage", "pytest-cov"}

// beforeInstallSteps sets up the job's isolated environment: extra system
// packages declared by the override, base tooling (whose completion
// activates the virtualenv), the optional pinned lower-bound dependency
// set, the declared dependency set, and optional coverage tooling.
func (c *Controller) beforeInstallSteps(spec matrix.JobSpec) []pipeline.Step {
	var steps []pipeline.Step

	if len(spec.Packages) > 0 {
		extra := append([]string(nil), spec.Packages...)
		steps = append(steps, c.step("install setup packages", nil, c.installPackages(extra)))
	}

	steps = append(steps, c.step("install base tooling", nil,
		func(ctx context.Context, env environ.Env) (pipeline.Output, error) {
			out, err := c.set.Packages.InstallPackages(ctx, collab.InstallRequest{Packages: baseTooling}, env)
			if err != nil {
				return pipeline.Output{Text: out}, err
			}
			// Entering the isolated environment is an explicit effect,
			// not ambient process mutation.
			return pipeline.Output{
				Text:   out,
				Effect: environ.SetVar(config.KeyVirtualEnv, ".venv"),
			}, nil
		}))

	steps = append(steps, c.step("install minimum dependencies", environ.IsSet(config.KeyMinDepends),
		func(ctx context.Context, env environ.Env) (pipeline.Output, error) {
			req := collab.InstallRequest{Packages: strings.Fields(env.Get(config.KeyMinDepends))}
			out, err := c.set.Packages.InstallPackages(ctx, req, env)
			return pipeline.Output{Text: out}, err
		}))

	steps = append(steps, c.step("install dependencies", nil,
		func(ctx context.Context, env environ.Env) (pipeline.Output, error) {
			req := collab.InstallRequest{Packages: strings.Fields(env.Get(config.KeyDepends))}
			out, err := c.set.Packages.InstallPackages(ctx, req, env)
			return pipeline.Output{Text: out}, err
		}))

	steps = append(steps, c.step("install coverage tooling", environ.IsSet(config.KeyCoverage),
		c.installPackages(coverageTooling)))

	return steps
}

// installSteps dispatches on the install strategy. Exactly one branch is
// assembled per job. Validation rejects unknown tokens before any job
// runs; the fallback step exists so a controller handed an invalid spec
// still fails loudly instead of installing nothing.
func (c *Controller) installSteps(strategy config.InstallStrategy, stratErr error) []pipeline.Step {
	if stratErr != nil {
		return []pipeline.Step{c.step("resolve install strategy", nil,
			func(ctx context.Context, env environ.Env) (pipeline.Output, error) {
				return pipeline.Output{}, fmt.Errorf("configuration error: %w", stratErr)
			})}
	}

	switch strategy {
	case config.StrategyDirect:
		return []pipeline.Step{c.step("install package", nil, c.install(config.StrategyDirect))}
	case config.StrategyEditable:
		return []pipeline.Step{c.step("install package (editable)", nil, c.install(config.StrategyEditable))}
	case config.StrategySetup:
		return []pipeline.Step{c.step("build and install from source", nil, c.install(config.StrategySetup))}
	case config.StrategySdist:
		return []pipeline.Step{
			c.step("package sdist", nil, c.buildDist(collab.DistSdist)),
			c.step("install sdist", nil, c.install(config.StrategySdist)),
		}
	case config.StrategyWheel:
		return []pipeline.Step{
			c.step("package wheel", nil, c.buildDist(collab.DistWheel)),
			c.step("install wheel", nil, c.install(config.StrategyWheel)),
		}
	case config.StrategyRequirements:
		return []pipeline.Step{
			c.step("install requirements file", nil,
				func(ctx context.Context, env environ.Env) (pipeline.Output, error) {
					req := collab.InstallRequest{File: env.Get(config.KeyRequirementsFile)}
					out, err := c.set.Packages.InstallPackages(ctx, req, env)
					return pipeline.Output{Text: out}, err
				}),
			c.step("install package", nil, c.install(config.StrategyDirect)),
		}
	default:
		// Unreachable: ParseInstallStrategy covers the enumeration.
		return []pipeline.Step{c.step("resolve install strategy", nil,
			func(ctx context.Context, env environ.Env) (pipeline.Output, error) {
				return pipeline.Output{}, fmt.Errorf("configuration error: unhandled install strategy %q", strategy)
			})}
	}
}

// scriptSteps either builds documentation or runs the test suite against
// the installed artifact, depending on the doc-build flag.
func (c *Controller) scriptSteps(spec matrix.JobSpec) []pipeline.Step {
	if spec.Env.Has(config.KeyDocBuild) {
		return []pipeline.Step{
			c.step("install doc dependencies", nil,
				func(ctx context.Context, env environ.Env) (pipeline.Output, error) {
					req := collab.InstallRequest{Packages: strings.Fields(env.Get(config.KeyDocDepends))}
					out, err := c.set.Packages.InstallPackages(ctx, req, env)
					return pipeline.Output{Text: out}, err
				}),
			c.step("apply doc patch", environ.NotEmpty(config.KeyDocPatch),
				func(ctx context.Context, env environ.Env) (pipeline.Output, error) {
					out, err := c.set.Docs.ApplyPatch(ctx, env.Get(config.KeyDocPatch), env)
					return pipeline.Output{Text: out}, err
				}),
			c.step("build html docs", nil, c.buildDocs(collab.DocHTML)),
			c.step("build pdf docs", nil, c.buildDocs(collab.DocPDF)),
		}
	}

	return []pipeline.Step{
		// Tests must exercise the installed artifact, never the source
		// tree, so the runner relocates first.
		c.step("enter clean workdir", nil,
			func(ctx context.Context, env environ.Env) (pipeline.Output, error) {
				dir, err := c.set.Target.PrepareWorkdir(ctx, env)
				if err != nil {
					return pipeline.Output{}, err
				}
				return pipeline.Output{
					Text:   dir,
					Effect: environ.SetVar(config.KeyWorkdir, dir),
				}, nil
			}),
		c.step("run tests", nil,
			func(ctx context.Context, env environ.Env) (pipeline.Output, error) {
				opts := collab.TestOptions{
					Package:  env.Get(config.KeyPackage),
					Coverage: env.Has(config.KeyCoverage),
					WorkDir:  env.Get(config.KeyWorkdir),
				}
				out, err := c.set.Target.RunTests(ctx, opts, env)
				return pipeline.Output{Text: out}, err
			}),
	}
}

// afterSuccessSteps submits coverage to every configured reporting
// service. One step per service so a summary can name the one that
// failed.
func (c *Controller) afterSuccessSteps(spec matrix.JobSpec) []pipeline.Step {
	steps := make([]pipeline.Step, 0, len(c.set.Reporters))
	for _, reporter := range c.set.Reporters {
		reporter := reporter
		steps = append(steps, c.step("submit coverage ("+reporter.Name()+")", nil,
			func(ctx context.Context, env environ.Env) (pipeline.Output, error) {
				report := collab.Report{JobID: spec.ID, JobName: spec.Name}
				return pipeline.Output{}, reporter.Submit(ctx, report, env)
			}))
	}
	return steps
}

func (c *Controller) installPackages(packages []string) pipeline.Action {
	return func(ctx context.Context, env environ.Env) (pipeline.Output, error) {
		out, err := c.set.Packages.InstallPackages(ctx, collab.InstallRequest{Packages: packages}, env)
		return pipeline.Output{Text: out}, err
	}
}

func (c *Controller) install(strategy config.InstallStrategy) pipeline.Action {
	return func(ctx context.Context, env environ.Env) (pipeline.Output, error) {
		out, err := c.set.Target.Install(ctx, strategy, env)
		return pipeline.Output{Text: out}, err
	}
}

func (c *Controller) buildDist(format collab.DistFormat) pipeline.Action {
	return func(ctx context.Context, env environ.Env) (pipeline.Output, error) {
		out, err := c.set.Target.BuildDist(ctx, format, env)
		return pipeline.Output{Text: out}, err
	}
}

func (c *Controller) buildDocs(target collab.DocTarget) pipeline.Action {
	return func(ctx context.Context, env environ.Env) (pipeline.Output, error) {
		out, err := c.set.Docs.BuildDocs(ctx, target, env)
		return pipeline.Output{Text: out}, err
	}
}
