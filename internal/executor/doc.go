// Package executor runs the expanded job list on a bounded worker pool
// and aggregates the per-job results into a run summary. Jobs share no
// mutable state and never cancel each other: one job's failure only
// flips the aggregate outcome, the siblings run to completion.
package executor
