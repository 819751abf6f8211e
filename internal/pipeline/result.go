package pipeline

import (
	"time"

	"github.com/vk/matrixci/internal/environ"
	"github.com/vk/matrixci/internal/matrix"
)

// StepStatus is the terminal state of a single step.
type StepStatus int

const (
	// StepPassed means the step executed and succeeded.
	StepPassed StepStatus = iota
	// StepSkipped means the step's predicate was false; it never executed
	// and counts as vacuously successful.
	StepSkipped
	// StepFailed means the step executed and the collaborator reported
	// failure (including an exceeded time budget).
	StepFailed
)

// String renders the status for logs and the summary table.
func (s StepStatus) String() string {
	switch s {
	case StepPassed:
		return "passed"
	case StepSkipped:
		return "skipped"
	case StepFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// StepOutcome records how one step ended.
type StepOutcome struct {
	Name   string
	Status StepStatus
	Output string
	Err    error
}

// StageResult is the structured outcome of running one stage.
type StageResult struct {
	Name  string
	Steps []StepOutcome
	// OK is true when no executed step failed.
	OK bool
	// FailedStep is the index of the failing step, or -1.
	FailedStep int
	// Env is the working environment after the stage's activation
	// effects. The controller carries it into the next stage.
	Env environ.Env
}

// JobResult is the immutable record of one finished job.
type JobResult struct {
	Spec   matrix.JobSpec
	Stages []StageResult
	// OK reflects the required stages only; an after_success reporting
	// failure never flips it.
	OK bool
	// FailedStage and FailedStep locate the first failure ("" and -1 on
	// success) so a single failing configuration can be reproduced.
	FailedStage string
	FailedStep  int
	Duration    time.Duration
}
