package shell

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/vk/matrixci/internal/collab"
	"github.com/vk/matrixci/internal/config"
	"github.com/vk/matrixci/internal/environ"
)

// unitUnderTest shells out to install, package, and test the project in
// the current working directory.
type unitUnderTest struct{}

// installCommand maps a strategy to its shell command. Commands are
// written with $VAR references so the job environment fills in the
// details at execution time.
func installCommand(strategy config.InstallStrategy) (string, error) {
	switch strategy {
	case config.StrategyDirect:
		return "pip install .", nil
	case config.StrategyEditable:
		return "pip install -e .", nil
	case config.StrategySetup:
		return "python setup.py install", nil
	case config.StrategySdist:
		return "pip install dist/*.tar.gz", nil
	case config.StrategyWheel:
		return "pip install dist/*.whl", nil
	default:
		return "", fmt.Errorf("shell: no install command for strategy %q", strategy)
	}
}

// distCommand maps a distribution format to its packaging command.
func distCommand(format collab.DistFormat) (string, error) {
	switch format {
	case collab.DistSdist:
		return "python setup.py sdist", nil
	case collab.DistWheel:
		return "python setup.py bdist_wheel", nil
	default:
		return "", fmt.Errorf("shell: no packaging command for format %q", format)
	}
}

// testCommand builds the pytest invocation for an installed package.
func testCommand(opts collab.TestOptions) string {
	var b strings.Builder
	b.WriteString("pytest")
	if opts.Coverage {
		fmt.Fprintf(&b, " --cov=%s", opts.Package)
	}
	fmt.Fprintf(&b, " --pyargs %s", opts.Package)
	return b.String()
}

// Install implements collab.UnitUnderTest.
func (u *unitUnderTest) Install(ctx context.Context, strategy config.InstallStrategy, env environ.Env) (string, error) {
	script, err := installCommand(strategy)
	if err != nil {
		return "", err
	}
	return runScript(ctx, "", env, withCache(env, script))
}

// BuildDist implements collab.UnitUnderTest.
func (u *unitUnderTest) BuildDist(ctx context.Context, format collab.DistFormat, env environ.Env) (string, error) {
	script, err := distCommand(format)
	if err != nil {
		return "", err
	}
	return runScript(ctx, "", env, script)
}

// PrepareWorkdir implements collab.UnitUnderTest. The fresh directory
// guarantees the test run imports the installed artifact, not the source
// tree the process happens to sit in.
func (u *unitUnderTest) PrepareWorkdir(ctx context.Context, env environ.Env) (string, error) {
	return os.MkdirTemp("", "matrixci-workdir-")
}

// RunTests implements collab.UnitUnderTest.
func (u *unitUnderTest) RunTests(ctx context.Context, opts collab.TestOptions, env environ.Env) (string, error) {
	if opts.Package == "" {
		return "", fmt.Errorf("shell: %s is not set; cannot name the package to test", config.KeyPackage)
	}
	return runScript(ctx, opts.WorkDir, env, testCommand(opts))
}

// withCache points pip at the shared dependency cache when one is
// configured. The cache is assumed safe for concurrent jobs.
func withCache(env environ.Env, script string) string {
	if !strings.HasPrefix(script, "pip install") {
		return script
	}
	if dir := env.Get(config.KeyCacheDir); dir != "" {
		return strings.Replace(script, "pip install", "pip install --cache-dir "+dir, 1)
	}
	return script
}
