package app

import (
	"context"
	"fmt"

	"github.com/vk/matrixci/internal/ctxlog"
	"github.com/vk/matrixci/internal/executor"
	"github.com/vk/matrixci/internal/matrix"
)

// Run expands the matrix and executes every job. It returns a non-nil
// error iff at least one job failed, so the process exit code reflects
// the aggregate outcome.
func (a *App) Run(ctx context.Context, appConfig *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if appConfig.HealthcheckPort > 0 {
		a.startHealthcheckServer(appConfig.HealthcheckPort)
	}

	specs := matrix.ExpandModel(a.model)
	a.logger.Info("🚀 Starting matrix execution",
		"axis", a.model.Axis.Name,
		"jobs", len(specs),
		"workers", appConfig.WorkerCount)

	exec := executor.New(a.set, appConfig.WorkerCount, appConfig.StepTimeout)
	summary := exec.Run(ctx, specs)
	a.summary = &summary

	a.renderSummary(summary)

	if !summary.OK() {
		return fmt.Errorf("%d of %d jobs failed", summary.Failed, summary.Total)
	}
	a.logger.Info("🏁 Matrix execution finished", "jobs", summary.Total)
	return nil
}
