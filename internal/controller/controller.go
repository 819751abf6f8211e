package controller

import (
	"context"
	"time"

	"github.com/vk/matrixci/internal/collab"
	"github.com/vk/matrixci/internal/config"
	"github.com/vk/matrixci/internal/ctxlog"
	"github.com/vk/matrixci/internal/environ"
	"github.com/vk/matrixci/internal/matrix"
	"github.com/vk/matrixci/internal/pipeline"
)

// Controller executes one job specification at a time. Instances hold no
// per-job state, but the executor still creates one per job so jobs stay
// fully independent.
type Controller struct {
	set         *collab.Set
	stepTimeout time.Duration
}

// New creates a controller bound to a collaborator set. stepTimeout is
// the per-step time budget; zero disables the deadline. A step that
// exceeds its budget fails like any other step, it is not a distinct
// state.
func New(set *collab.Set, stepTimeout time.Duration) *Controller {
	return &Controller{set: set, stepTimeout: stepTimeout}
}

// Execute runs the job's stages in their fixed order and returns the
// immutable job result. The spec is consumed read-only.
func (c *Controller) Execute(ctx context.Context, spec matrix.JobSpec) pipeline.JobResult {
	logger := ctxlog.FromContext(ctx).With("job", spec.Name, "jobID", spec.ID)
	ctx = ctxlog.WithLogger(ctx, logger)

	logger.Info("▶️ Starting job")
	start := time.Now()
	result := pipeline.JobResult{Spec: spec, OK: true, FailedStep: -1}

	strategy, stratErr := config.ParseInstallStrategy(spec.Env.Get(config.KeyInstallType))

	stages := []struct {
		name  string
		steps []pipeline.Step
	}{
		{pipeline.StageBeforeInstall, c.beforeInstallSteps(spec)},
		{pipeline.StageInstall, c.installSteps(strategy, stratErr)},
		{pipeline.StageScript, c.scriptSteps(spec)},
	}

	env := spec.Env
	for _, stage := range stages {
		res := pipeline.RunStage(ctx, stage.name, stage.steps, env)
		result.Stages = append(result.Stages, res)
		if !res.OK {
			result.OK = false
			result.FailedStage = stage.name
			result.FailedStep = res.FailedStep
			logger.Error("Stage failed; remaining stages skipped.",
				"stage", stage.name, "step", res.FailedStep)
			break
		}
		env = res.Env
	}

	// after_success is gated twice: on every prior stage succeeding and
	// on the coverage flag. Its own failures are non-fatal.
	if result.OK && spec.Env.Has(config.KeyCoverage) {
		res := pipeline.RunStage(ctx, pipeline.StageAfterSuccess, c.afterSuccessSteps(spec), env)
		result.Stages = append(result.Stages, res)
		if !res.OK {
			logger.Warn("Coverage reporting failed; job result is unaffected.",
				"step", res.FailedStep)
		}
	}

	result.Duration = time.Since(start)
	if result.OK {
		logger.Info("✅ Job finished", "duration", result.Duration)
	} else {
		logger.Error("❌ Job failed",
			"stage", result.FailedStage, "step", result.FailedStep, "duration", result.Duration)
	}
	return result
}

// step builds a pipeline step whose action runs under the controller's
// per-step deadline.
func (c *Controller) step(name string, when environ.Predicate, run pipeline.Action) pipeline.Step {
	return pipeline.Step{Name: name, When: when, Run: c.withDeadline(run)}
}

func (c *Controller) withDeadline(run pipeline.Action) pipeline.Action {
	if c.stepTimeout <= 0 {
		return run
	}
	return func(ctx context.Context, env environ.Env) (pipeline.Output, error) {
		ctx, cancel := context.WithTimeout(ctx, c.stepTimeout)
		defer cancel()
		return run(ctx, env)
	}
}
