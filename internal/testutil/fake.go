package testutil

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/vk/matrixci/internal/collab"
	"github.com/vk/matrixci/internal/config"
	"github.com/vk/matrixci/internal/environ"
)

// FakeSet is a side-effect-free collaborator set for tests. Every
// operation is appended to an ordered journal; individual operations can
// be scripted to fail. It implements all four collaborator interfaces and
// is safe for concurrent use.
type FakeSet struct {
	mu       sync.Mutex
	journal  []string
	failures map[string]error
}

// NewFakeSet creates an empty fake collaborator set.
func NewFakeSet() *FakeSet {
	return &FakeSet{failures: make(map[string]error)}
}

// Set bundles the fake into a collab.Set usable by the engine.
func (f *FakeSet) Set() *collab.Set {
	return &collab.Set{
		Target:    f,
		Packages:  f,
		Docs:      f,
		Reporters: []collab.CoverageReporter{f},
	}
}

// FailOn scripts err for every operation whose journal entry starts with
// op (e.g. "target.dist sdist" or just "target.test").
func (f *FakeSet) FailOn(op string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failures[op] = err
}

// Journal returns a copy of the ordered operation record.
func (f *FakeSet) Journal() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.journal...)
}

// Calls counts journal entries starting with prefix.
func (f *FakeSet) Calls(prefix string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, entry := range f.journal {
		if strings.HasPrefix(entry, prefix) {
			n++
		}
	}
	return n
}

// Reset clears the journal but keeps scripted failures.
func (f *FakeSet) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.journal = nil
}

func (f *FakeSet) record(entry string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.journal = append(f.journal, entry)
	for op, err := range f.failures {
		if strings.HasPrefix(entry, op) {
			return err
		}
	}
	return nil
}

// Install implements collab.UnitUnderTest.
func (f *FakeSet) Install(ctx context.Context, strategy config.InstallStrategy, env environ.Env) (string, error) {
	err := f.record("target.install " + string(strategy))
	return "installed " + string(strategy), err
}

// BuildDist implements collab.UnitUnderTest.
func (f *FakeSet) BuildDist(ctx context.Context, format collab.DistFormat, env environ.Env) (string, error) {
	err := f.record("target.dist " + string(format))
	return "built " + string(format), err
}

// PrepareWorkdir implements collab.UnitUnderTest with a fixed directory
// so repeated runs stay comparable.
func (f *FakeSet) PrepareWorkdir(ctx context.Context, env environ.Env) (string, error) {
	err := f.record("target.workdir")
	return "/tmp/clean-workdir", err
}

// RunTests implements collab.UnitUnderTest.
func (f *FakeSet) RunTests(ctx context.Context, opts collab.TestOptions, env environ.Env) (string, error) {
	err := f.record(fmt.Sprintf("target.test pkg=%s coverage=%t workdir=%s", opts.Package, opts.Coverage, opts.WorkDir))
	return "tests ok", err
}

// InstallPackages implements collab.PackageRegistry.
func (f *FakeSet) InstallPackages(ctx context.Context, req collab.InstallRequest, env environ.Env) (string, error) {
	var entry string
	if req.File != "" {
		entry = "packages.file " + req.File
	} else {
		entry = "packages.install " + strings.Join(req.Packages, " ")
	}
	err := f.record(entry)
	return "packages ok", err
}

// ApplyPatch implements collab.DocBuilder.
func (f *FakeSet) ApplyPatch(ctx context.Context, patch string, env environ.Env) (string, error) {
	err := f.record("docs.patch " + patch)
	return "patched", err
}

// BuildDocs implements collab.DocBuilder.
func (f *FakeSet) BuildDocs(ctx context.Context, target collab.DocTarget, env environ.Env) (string, error) {
	err := f.record("docs.build " + string(target))
	return "docs " + string(target), err
}

// Name implements collab.CoverageReporter.
func (f *FakeSet) Name() string { return "fake" }

// Submit implements collab.CoverageReporter.
func (f *FakeSet) Submit(ctx context.Context, report collab.Report, env environ.Env) error {
	return f.record("reporter.submit " + report.JobName)
}
