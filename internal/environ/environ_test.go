package environ

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCopiesInput(t *testing.T) {
	src := map[string]string{"A": "1"}
	e := New(src)
	src["A"] = "mutated"
	src["B"] = "2"

	assert.Equal(t, "1", e.Get("A"))
	assert.False(t, e.Has("B"))
}

func TestLookupAndHas(t *testing.T) {
	e := New(map[string]string{"SET": "v", "EMPTY": ""})

	v, ok := e.Lookup("SET")
	require.True(t, ok)
	assert.Equal(t, "v", v)

	_, ok = e.Lookup("MISSING")
	assert.False(t, ok)

	// A declared-but-empty key is still declared.
	assert.True(t, e.Has("EMPTY"))
	assert.Equal(t, "", e.Get("EMPTY"))
}

func TestOverlayIsRightBiased(t *testing.T) {
	base := New(map[string]string{"DEPENDS": "A B", "INSTALL_TYPE": "direct"})
	over := New(map[string]string{"INSTALL_TYPE": "sdist", "COVERAGE": "1"})

	merged := Overlay(base, over)

	assert.Equal(t, "sdist", merged.Get("INSTALL_TYPE"), "override key must win")
	assert.Equal(t, "A B", merged.Get("DEPENDS"), "absent key must keep default")
	assert.Equal(t, "1", merged.Get("COVERAGE"))

	// Inputs stay untouched.
	assert.Equal(t, "direct", base.Get("INSTALL_TYPE"))
	assert.False(t, base.Has("COVERAGE"))
}

func TestApplyEffect(t *testing.T) {
	e := New(map[string]string{"A": "1"})

	applied := e.Apply(SetVar("VIRTUAL_ENV", ".venv"))
	assert.Equal(t, ".venv", applied.Get("VIRTUAL_ENV"))
	assert.False(t, e.Has("VIRTUAL_ENV"), "declared env must not mutate")

	assert.Equal(t, e, e.Apply(nil))
	assert.Equal(t, e, e.Apply(&Effect{}))
}

func TestEffectMerge(t *testing.T) {
	a := SetVar("X", "1")
	b := &Effect{Set: map[string]string{"X": "2", "Y": "3"}}

	merged := a.Merge(b)
	assert.Equal(t, "2", merged.Set["X"], "later effect wins")
	assert.Equal(t, "3", merged.Set["Y"])

	var nilEff *Effect
	assert.Equal(t, b, nilEff.Merge(b))
	assert.Equal(t, a, a.Merge(nil))
}

func TestExpand(t *testing.T) {
	e := New(map[string]string{"PKG": "nipy", "DIR": "doc"})

	assert.Equal(t, "pytest --pyargs nipy", e.Expand("pytest --pyargs $PKG"))
	assert.Equal(t, "make -C doc html", e.Expand("make -C ${DIR} html"))
	assert.Equal(t, "pip install ", e.Expand("pip install $MISSING"))
}

func TestPredicates(t *testing.T) {
	e := New(map[string]string{"COVERAGE": "1", "DOC_BUILD": ""})

	assert.True(t, IsSet("COVERAGE")(e))
	assert.True(t, IsSet("DOC_BUILD")(e), "IsSet ignores the value")
	assert.False(t, IsSet("MISSING")(e))

	assert.True(t, NotEmpty("COVERAGE")(e))
	assert.False(t, NotEmpty("DOC_BUILD")(e))
	assert.False(t, NotEmpty("MISSING")(e))

	assert.True(t, Equals("COVERAGE", "1")(e))
	assert.False(t, Equals("COVERAGE", "0")(e))
	assert.False(t, Equals("MISSING", "")(e))

	assert.True(t, Not(IsSet("MISSING"))(e))
	assert.True(t, All(IsSet("COVERAGE"), NotEmpty("COVERAGE"))(e))
	assert.False(t, All(IsSet("COVERAGE"), NotEmpty("DOC_BUILD"))(e))
}

func TestKeysSorted(t *testing.T) {
	e := New(map[string]string{"B": "2", "A": "1", "C": "3"})
	assert.Equal(t, []string{"A", "B", "C"}, e.Keys())
}
