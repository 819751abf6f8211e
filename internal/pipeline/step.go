package pipeline

import (
	"context"

	"github.com/vk/matrixci/internal/environ"
)

// Canonical stage names, in their fixed execution order.
const (
	StageBeforeInstall = "before_install"
	StageInstall       = "install"
	StageScript        = "script"
	StageAfterSuccess  = "after_success"
)

// StageOrder is the fixed sequence a job's stages run in. after_success
// is special-cased by the controller: it only runs when everything before
// it succeeded, and its failure never fails the job.
var StageOrder = []string{StageBeforeInstall, StageInstall, StageScript, StageAfterSuccess}

// Output is what a completed step hands back to the engine: captured
// diagnostic text and an optional environment activation to apply before
// later steps run.
type Output struct {
	Text   string
	Effect *environ.Effect
}

// Action performs one step's work against the working environment. It is
// atomic from the engine's perspective: the external collaborator either
// completes it or reports an error.
type Action func(ctx context.Context, env environ.Env) (Output, error)

// Step is one unit of work within a stage. A nil When makes the step
// unconditional; otherwise the step is skipped (vacuously successful)
// when the predicate reports false against the working environment.
type Step struct {
	Name string
	When environ.Predicate
	Run  Action
}
