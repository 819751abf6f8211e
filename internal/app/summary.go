package app

import (
	"fmt"
	"time"

	"github.com/vk/matrixci/internal/executor"
	"github.com/vk/matrixci/internal/pipeline"
)

// timeGrain keeps durations in the summary table readable.
const timeGrain = 10 * time.Millisecond

// renderSummary writes the per-job outcome table to the application's
// output writer. For failures it names the stage, step index, and step
// name, which is enough to reproduce a single failing configuration.
func (a *App) renderSummary(summary executor.Summary) {
	fmt.Fprintf(a.outW, "\nMatrix summary: %d total, %d succeeded, %d failed\n",
		summary.Total, summary.Succeeded, summary.Failed)

	for _, result := range summary.Results {
		if result.OK {
			fmt.Fprintf(a.outW, "  ok    %-24s %s\n", result.Spec.Name, result.Duration.Round(timeGrain))
			continue
		}
		fmt.Fprintf(a.outW, "  FAIL  %-24s %s[%d] %s: %v\n",
			result.Spec.Name,
			result.FailedStage,
			result.FailedStep,
			failedStepName(result),
			failedStepError(result))
	}
}

func failedStage(result pipeline.JobResult) *pipeline.StageResult {
	for i := range result.Stages {
		if result.Stages[i].Name == result.FailedStage {
			return &result.Stages[i]
		}
	}
	return nil
}

func failedStepName(result pipeline.JobResult) string {
	if stage := failedStage(result); stage != nil && result.FailedStep < len(stage.Steps) {
		return stage.Steps[result.FailedStep].Name
	}
	return "?"
}

func failedStepError(result pipeline.JobResult) error {
	if stage := failedStage(result); stage != nil && result.FailedStep < len(stage.Steps) {
		return stage.Steps[result.FailedStep].Err
	}
	return nil
}
