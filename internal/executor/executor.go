package executor

import (
	"context"
	"sync"
	"time"

	"github.com/vk/matrixci/internal/collab"
	"github.com/vk/matrixci/internal/controller"
	"github.com/vk/matrixci/internal/ctxlog"
	"github.com/vk/matrixci/internal/matrix"
	"github.com/vk/matrixci/internal/pipeline"
)

// Summary aggregates a whole run. Results keep the expansion order of
// their specs regardless of completion order, so reporting stays
// deterministic under concurrency.
type Summary struct {
	Total     int
	Succeeded int
	Failed    int
	Results   []pipeline.JobResult
}

// OK reports whether every job succeeded. The aggregate is a logical AND
// over all job results; a run with zero jobs is vacuously successful.
func (s Summary) OK() bool {
	return s.Failed == 0
}

// Executor dispatches jobs to pipeline controllers on a worker pool.
type Executor struct {
	set         *collab.Set
	workers     int
	stepTimeout time.Duration
}

// New creates an executor. workers bounds the number of jobs in flight;
// values below one are clamped to one.
func New(set *collab.Set, workers int, stepTimeout time.Duration) *Executor {
	if workers < 1 {
		workers = 1
	}
	return &Executor{set: set, workers: workers, stepTimeout: stepTimeout}
}

// indexedJob pairs a spec with its expansion index so results land in
// declaration order no matter which worker finishes first.
type indexedJob struct {
	idx  int
	spec matrix.JobSpec
}

// Run executes every spec and blocks until all results are in. A failed
// job never cancels its siblings; ctx cancellation is the only way to cut
// a run short, and even then in-flight jobs finish their current step.
func (e *Executor) Run(ctx context.Context, specs []matrix.JobSpec) Summary {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Executor starting.", "jobs", len(specs), "workers", e.workers)

	jobs := make(chan indexedJob)
	results := make([]pipeline.JobResult, len(specs))

	var wg sync.WaitGroup
	for workerID := 0; workerID < e.workers; workerID++ {
		wg.Add(1)
		go e.worker(ctx, workerID, &wg, jobs, results)
	}

	for i, spec := range specs {
		jobs <- indexedJob{idx: i, spec: spec}
	}
	close(jobs)
	wg.Wait()

	summary := Summary{Total: len(specs), Results: results}
	for _, r := range results {
		if r.OK {
			summary.Succeeded++
		} else {
			summary.Failed++
		}
	}
	logger.Debug("Executor finished.", "succeeded", summary.Succeeded, "failed", summary.Failed)
	return summary
}

// worker is the processing loop for one concurrent worker. Each job gets
// its own controller instance so jobs stay fully independent.
func (e *Executor) worker(ctx context.Context, workerID int, wg *sync.WaitGroup, jobs <-chan indexedJob, results []pipeline.JobResult) {
	defer wg.Done()
	logger := ctxlog.FromContext(ctx).With("workerID", workerID)
	logger.Debug("Worker started.")

	for job := range jobs {
		workerCtx := ctxlog.WithLogger(ctx, logger)
		ctrl := controller.New(e.set, e.stepTimeout)
		results[job.idx] = ctrl.Execute(workerCtx, job.spec)
	}

	logger.Debug("Worker finished.")
}
