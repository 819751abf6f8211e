package collab

import (
	"context"

	"github.com/vk/matrixci/internal/config"
	"github.com/vk/matrixci/internal/environ"
)

// DistFormat names a distribution artifact the unit under test can be
// packaged into before installation.
type DistFormat string

const (
	// DistSdist is a source distribution.
	DistSdist DistFormat = "sdist"
	// DistWheel is a built (binary) distribution.
	DistWheel DistFormat = "wheel"
)

// DocTarget names a documentation build output.
type DocTarget string

const (
	// DocHTML builds the HTML documentation.
	DocHTML DocTarget = "html"
	// DocPDF builds the PDF documentation.
	DocPDF DocTarget = "pdf"
)

// TestOptions parameterize a test run.
type TestOptions struct {
	// Package is the import name of the installed unit under test.
	Package string
	// Coverage attaches coverage instrumentation to the run.
	Coverage bool
	// WorkDir is the clean directory the runner executes from, so tests
	// exercise the installed artifact rather than the source tree.
	WorkDir string
}

// InstallRequest describes one dependency-registry install operation.
type InstallRequest struct {
	// Packages are requirement specifiers, possibly with version pins.
	Packages []string
	// File, when non-empty, installs from a requirements file instead of
	// (or in addition to) the package list.
	File string
	// Flags are extra registry flags (e.g. pre-release opt-in).
	Flags []string
}

// UnitUnderTest is the black box being verified. It exposes an install
// operation parameterized by strategy, distribution packaging, work
// directory staging, and a test run.
type UnitUnderTest interface {
	Install(ctx context.Context, strategy config.InstallStrategy, env environ.Env) (string, error)
	BuildDist(ctx context.Context, format DistFormat, env environ.Env) (string, error)
	PrepareWorkdir(ctx context.Context, env environ.Env) (string, error)
	RunTests(ctx context.Context, opts TestOptions, env environ.Env) (string, error)
}

// PackageRegistry installs dependency sets from a package registry.
type PackageRegistry interface {
	InstallPackages(ctx context.Context, req InstallRequest, env environ.Env) (string, error)
}

// DocBuilder drives the documentation toolchain.
type DocBuilder interface {
	ApplyPatch(ctx context.Context, patch string, env environ.Env) (string, error)
	BuildDocs(ctx context.Context, target DocTarget, env environ.Env) (string, error)
}

// Report is the payload handed to a coverage reporting service.
type Report struct {
	JobID   string
	JobName string
}

// CoverageReporter submits coverage results to an external service. The
// submission is fire-and-forget: a returned error is logged by the engine
// but never fails the job.
type CoverageReporter interface {
	Name() string
	Submit(ctx context.Context, report Report, env environ.Env) error
}

// Set bundles the collaborators one job needs. Sets are shared across
// jobs and must be safe for concurrent use.
type Set struct {
	Target    UnitUnderTest
	Packages  PackageRegistry
	Docs      DocBuilder
	Reporters []CoverageReporter
}
