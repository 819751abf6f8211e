package pipeline

import (
	"context"

	"github.com/vk/matrixci/internal/ctxlog"
	"github.com/vk/matrixci/internal/environ"
)

// RunStage executes one stage's steps in declared order against env.
// Conditional steps whose predicate is false are recorded as skipped and
// never executed. The first failing step stops the stage immediately;
// steps after it are not recorded at all, so a failure's step index is
// always the last entry of StageResult.Steps.
//
// Each step's activation effect is applied to the working environment
// before the next step runs; the caller's env is never mutated.
func RunStage(ctx context.Context, name string, steps []Step, env environ.Env) StageResult {
	logger := ctxlog.FromContext(ctx).With("stage", name)
	result := StageResult{Name: name, OK: true, FailedStep: -1}

	for i, step := range steps {
		if step.When != nil && !step.When(env) {
			logger.Debug("Step skipped by predicate.", "step", step.Name, "index", i)
			result.Steps = append(result.Steps, StepOutcome{Name: step.Name, Status: StepSkipped})
			continue
		}

		logger.Debug("Step starting.", "step", step.Name, "index", i)
		out, err := step.Run(ctx, env)
		if err != nil {
			logger.Debug("Step failed.", "step", step.Name, "index", i, "error", err)
			result.Steps = append(result.Steps, StepOutcome{
				Name:   step.Name,
				Status: StepFailed,
				Output: out.Text,
				Err:    err,
			})
			result.OK = false
			result.FailedStep = i
			break
		}

		result.Steps = append(result.Steps, StepOutcome{
			Name:   step.Name,
			Status: StepPassed,
			Output: out.Text,
		})
		if out.Effect != nil {
			logger.Debug("Applying step activation effect.", "step", step.Name, "keys", len(out.Effect.Set))
			env = env.Apply(out.Effect)
		}
	}

	result.Env = env
	return result
}
