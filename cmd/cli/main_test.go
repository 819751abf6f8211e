package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/matrixci/internal/hcl"
	"github.com/vk/matrixci/internal/yamlcfg"
)

func TestRunPanicRecovery(t *testing.T) {
	t.Parallel()

	// A syntax error guarantees a startup panic inside app.NewApp.
	invalidHCL := `
matrix {
  axis "python" {
`
	filePath := filepath.Join(t.TempDir(), "matrix.hcl")
	require.NoError(t, os.WriteFile(filePath, []byte(invalidHCL), 0o600))

	out := &bytes.Buffer{}
	err := run(out, []string{filePath})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "application startup panicked")
	assert.Contains(t, err.Error(), "failed to parse")
}

func TestRunUnknownStrategyIsFatalBeforeAnyJob(t *testing.T) {
	t.Parallel()

	badConfig := `
matrix {
  axis "python" {
    values = ["3.9"]
  }
  env = { INSTALL_TYPE = "sidst" }
}
`
	filePath := filepath.Join(t.TempDir(), "matrix.hcl")
	require.NoError(t, os.WriteFile(filePath, []byte(badConfig), 0o600))

	out := &bytes.Buffer{}
	err := run(out, []string{filePath})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown install strategy")
	assert.NotContains(t, out.String(), "Matrix summary", "no job may run on a configuration error")
}

func TestRunShouldExit(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	err := run(out, []string{"-h"})

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Usage:")
}

func TestRunParseError(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	err := run(out, []string{"--this-is-not-a-valid-flag"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "flag provided but not defined")
}

func TestRunRejectsUnknownConfigFormat(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	err := run(out, []string{"matrix.toml"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported configuration format")
}

func TestLoaderFor(t *testing.T) {
	t.Parallel()

	l, err := loaderFor("ci/matrix.hcl")
	require.NoError(t, err)
	assert.IsType(t, &hcl.Loader{}, l)

	l, err = loaderFor("ci/matrix.YAML")
	require.NoError(t, err)
	assert.IsType(t, &yamlcfg.Loader{}, l)

	_, err = loaderFor("ci/matrix.json")
	assert.Error(t, err)
}
