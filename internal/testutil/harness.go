package testutil

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/matrixci/internal/app"
	"github.com/vk/matrixci/internal/collab"
	"github.com/vk/matrixci/internal/config"
	"github.com/vk/matrixci/internal/hcl"
	"github.com/vk/matrixci/internal/yamlcfg"
)

// fakeModule registers a FakeSet under the "fake" collaborator name.
type fakeModule struct {
	set *collab.Set
}

// Register implements collab.Module.
func (m *fakeModule) Register(c *collab.Catalog) {
	c.Add("fake", m.set)
}

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	LogOutput string
	Err       error
	App       *app.App
}

// RunIntegrationTest provides a standardized harness for running
// integration tests using a default background context.
func RunIntegrationTest(t *testing.T, configName, configBody string, fake *FakeSet) *HarnessResult {
	t.Helper()
	return RunIntegrationTestWithContext(context.Background(), t, configName, configBody, fake)
}

// RunIntegrationTestWithContext runs the whole engine against a config
// fixture, with every collaborator operation routed into fake's journal.
// Both startup panics and run errors surface through HarnessResult.Err.
func RunIntegrationTestWithContext(ctx context.Context, t *testing.T, configName, configBody string, fake *FakeSet) *HarnessResult {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", ".tmp-integration-test-*")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(tmpDir) })

	configPath := filepath.Join(tmpDir, configName)
	require.NoError(t, os.WriteFile(configPath, []byte(configBody), 0644))

	appConfig, err := app.NewConfig(app.Config{
		ConfigPath:  configPath,
		CollabSet:   "fake",
		LogLevel:    "debug",
		LogFormat:   "text",
		WorkerCount: 4,
	})
	require.NoError(t, err)

	var loader config.Loader
	switch strings.ToLower(filepath.Ext(configName)) {
	case ".hcl":
		loader = hcl.NewLoader()
	case ".yml", ".yaml":
		loader = yamlcfg.NewLoader()
	default:
		t.Fatalf("unsupported fixture extension in %q", configName)
	}

	logBuffer := &SafeBuffer{}

	var testApp *app.App
	var panicErr any
	func() {
		defer func() {
			if r := recover(); r != nil {
				panicErr = r
			}
		}()
		testApp = app.NewApp(logBuffer, appConfig, loader, &fakeModule{set: fake.Set()})
	}()

	if panicErr != nil {
		return &HarnessResult{
			LogOutput: logBuffer.String(),
			Err:       fmt.Errorf("application startup panicked | %v", panicErr),
		}
	}

	runErr := testApp.Run(ctx, appConfig)

	if os.Getenv("MATRIXCI_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
	}

	return &HarnessResult{
		LogOutput: logBuffer.String(),
		Err:       runErr,
		App:       testApp,
	}
}
