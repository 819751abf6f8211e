package shell

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/matrixci/internal/collab"
	"github.com/vk/matrixci/internal/config"
	"github.com/vk/matrixci/internal/environ"
)

func TestInstallCommandPerStrategy(t *testing.T) {
	testCases := []struct {
		strategy config.InstallStrategy
		want     string
	}{
		{config.StrategyDirect, "pip install ."},
		{config.StrategyEditable, "pip install -e ."},
		{config.StrategySetup, "python setup.py install"},
		{config.StrategySdist, "pip install dist/*.tar.gz"},
		{config.StrategyWheel, "pip install dist/*.whl"},
	}

	for _, tc := range testCases {
		t.Run(string(tc.strategy), func(t *testing.T) {
			got, err := installCommand(tc.strategy)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestInstallCommandRejectsUnknownStrategy(t *testing.T) {
	_, err := installCommand(config.InstallStrategy("conda"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "conda")
}

func TestDistCommandPerFormat(t *testing.T) {
	got, err := distCommand(collab.DistSdist)
	require.NoError(t, err)
	assert.Equal(t, "python setup.py sdist", got)

	got, err = distCommand(collab.DistWheel)
	require.NoError(t, err)
	assert.Equal(t, "python setup.py bdist_wheel", got)

	_, err = distCommand(collab.DistFormat("egg"))
	require.Error(t, err)
}

func TestTestCommand(t *testing.T) {
	plain := testCommand(collab.TestOptions{Package: "nipy"})
	assert.Equal(t, "pytest --pyargs nipy", plain)

	covered := testCommand(collab.TestOptions{Package: "nipy", Coverage: true})
	assert.Equal(t, "pytest --cov=nipy --pyargs nipy", covered)
}

func TestInstallPackagesCommand(t *testing.T) {
	t.Run("packages only", func(t *testing.T) {
		got := installPackagesCommand(collab.InstallRequest{Packages: []string{"numpy==1.0", "scipy"}})
		assert.Equal(t, "pip install numpy==1.0 scipy", got)
	})

	t.Run("requirements file with flags", func(t *testing.T) {
		got := installPackagesCommand(collab.InstallRequest{
			File:  "requirements.txt",
			Flags: []string{"--pre"},
		})
		assert.Equal(t, "pip install --pre -r requirements.txt", got)
	})

	t.Run("empty request is a no-op", func(t *testing.T) {
		assert.Empty(t, installPackagesCommand(collab.InstallRequest{}))
	})
}

func TestWithCache(t *testing.T) {
	cached := environ.New(map[string]string{config.KeyCacheDir: "/var/cache/pip"})

	assert.Equal(t, "pip install --cache-dir /var/cache/pip numpy",
		withCache(cached, "pip install numpy"))
	assert.Equal(t, "pip install numpy",
		withCache(environ.New(nil), "pip install numpy"))
	assert.Equal(t, "python setup.py install",
		withCache(cached, "python setup.py install"))
}

func TestDocDirDefaultsToDoc(t *testing.T) {
	assert.Equal(t, "doc", docDir(environ.New(nil)))
	assert.Equal(t, "docs", docDir(environ.New(map[string]string{config.KeyDocDir: "docs"})))
}

func TestRunScriptCapturesOutputAndEnv(t *testing.T) {
	env := environ.New(map[string]string{"GREETING": "hello"})

	out, err := runScript(context.Background(), "", env, "echo $GREETING matrix")
	require.NoError(t, err)
	assert.Equal(t, "hello matrix", strings.TrimSpace(out))
}

func TestRunScriptReportsFailuresWithOutput(t *testing.T) {
	out, err := runScript(context.Background(), "", environ.New(nil), "echo broken >&2; exit 3")
	require.Error(t, err)
	assert.Contains(t, out, "broken")
}

func TestModuleRegistersShellSet(t *testing.T) {
	catalog := collab.NewCatalog(&Module{})

	set, err := catalog.Get("shell")
	require.NoError(t, err)
	assert.NotNil(t, set.Target)
	assert.NotNil(t, set.Packages)
	assert.NotNil(t, set.Docs)
	require.Len(t, set.Reporters, 1)
	assert.Equal(t, "coveralls", set.Reporters[0].Name())
}
