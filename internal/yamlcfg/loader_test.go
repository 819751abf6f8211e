package yamlcfg

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/matrixci/internal/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "matrix.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFullConfig(t *testing.T) {
	path := writeConfig(t, `
cache: /var/cache/pip
axis:
  name: python
  values: ["2.7", "3.6", "3.7"]
env:
  DEPENDS: "numpy scipy"
  INSTALL_TYPE: direct
jobs:
  - value: "2.7"
    env: { COVERAGE: "1" }
    packages: [libhdf5-dev]
  - value: "3.8"
    env:
      DOC_BUILD: "1"
`)

	model, err := NewLoader().Load(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "python", model.Axis.Name)
	assert.Equal(t, []string{"2.7", "3.6", "3.7"}, model.Axis.Values)
	assert.Equal(t, "/var/cache/pip", model.CacheDir)
	assert.Equal(t, "numpy scipy", model.Defaults[config.KeyDepends])

	require.Len(t, model.Overrides, 2)
	assert.Equal(t, "2.7", model.Overrides[0].Value)
	assert.Equal(t, []string{"libhdf5-dev"}, model.Overrides[0].Packages)
	assert.Equal(t, "1", model.Overrides[1].Env[config.KeyDocBuild])

	assert.NoError(t, config.Validate(model))
}

func TestLoadProducesSameModelShapeAsHCL(t *testing.T) {
	// Both loaders feed the same expander; a YAML-configured run must
	// validate and expand exactly like an HCL one.
	path := writeConfig(t, `
axis:
  name: python
  values: ["3.9"]
env:
  INSTALL_TYPE: wheel
`)

	model, err := NewLoader().Load(context.Background(), path)
	require.NoError(t, err)
	require.NoError(t, config.Validate(model))
	assert.Equal(t, "wheel", model.Defaults[config.KeyInstallType])
}

func TestLoadRejectsBadInput(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := NewLoader().Load(context.Background(), filepath.Join(t.TempDir(), "nope.yml"))
		assert.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writeConfig(t, "axis: [unclosed")
		_, err := NewLoader().Load(context.Background(), path)
		assert.ErrorContains(t, err, "failed to decode")
	})

	t.Run("unknown field", func(t *testing.T) {
		path := writeConfig(t, `
axis:
  name: python
  values: ["3.9"]
env: { DEPENDS: numpy }
`)
		_, err := NewLoader().Load(context.Background(), path)
		assert.ErrorContains(t, err, "failed to decode", "typo'd keys must not silently configure nothing")
	})
}
