package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validModel() *Model {
	return &Model{
		Axis:     Axis{Name: "python", Values: []string{"3.8", "3.9"}},
		Defaults: map[string]string{KeyDepends: "numpy", KeyInstallType: "direct"},
	}
}

func TestValidateAcceptsWellFormedModel(t *testing.T) {
	assert.NoError(t, Validate(validModel()))
}

func TestValidateRejectsMalformedDeclarations(t *testing.T) {
	t.Run("nil model", func(t *testing.T) {
		assert.Error(t, Validate(nil))
	})

	t.Run("missing axis name", func(t *testing.T) {
		m := validModel()
		m.Axis.Name = ""
		assert.ErrorContains(t, Validate(m), "axis name")
	})

	t.Run("no values and no overrides", func(t *testing.T) {
		m := validModel()
		m.Axis.Values = nil
		assert.ErrorContains(t, Validate(m), "nothing to run")
	})

	t.Run("empty axis value", func(t *testing.T) {
		m := validModel()
		m.Axis.Values = []string{"3.8", ""}
		assert.ErrorContains(t, Validate(m), "empty value")
	})

	t.Run("override without axis value", func(t *testing.T) {
		m := validModel()
		m.Overrides = []Override{{Env: map[string]string{KeyCoverage: "1"}}}
		assert.ErrorContains(t, Validate(m), "axis value is required")
	})
}

func TestValidateRejectsUnknownInstallStrategy(t *testing.T) {
	t.Run("in defaults", func(t *testing.T) {
		m := validModel()
		m.Defaults[KeyInstallType] = "sidst" // typo must be fatal, not a silent no-op
		assert.ErrorContains(t, Validate(m), "unknown install strategy")
	})

	t.Run("in override env", func(t *testing.T) {
		m := validModel()
		m.Overrides = []Override{{Value: "3.8", Env: map[string]string{KeyInstallType: "whl"}}}
		err := Validate(m)
		require.Error(t, err)
		assert.ErrorContains(t, err, "unknown install strategy")
		assert.ErrorContains(t, err, "python=3.8")
	})

	t.Run("override inheriting valid default is fine", func(t *testing.T) {
		m := validModel()
		m.Overrides = []Override{{Value: "3.8", Env: map[string]string{KeyCoverage: "1"}}}
		assert.NoError(t, Validate(m))
	})
}

func TestParseInstallStrategy(t *testing.T) {
	for _, token := range []string{"direct", "editable", "setup", "sdist", "wheel", "requirements"} {
		s, err := ParseInstallStrategy(token)
		require.NoError(t, err)
		assert.Equal(t, InstallStrategy(token), s)
	}

	s, err := ParseInstallStrategy("")
	require.NoError(t, err)
	assert.Equal(t, StrategyDirect, s, "empty token defaults to direct")

	_, err = ParseInstallStrategy("pip")
	assert.Error(t, err)
}

func TestValidateAllowsDuplicateAxisValues(t *testing.T) {
	m := validModel()
	m.Axis.Values = []string{"2.7", "2.7"}
	assert.NoError(t, Validate(m), "duplicate values are intentional redundant jobs")
}
