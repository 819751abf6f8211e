package environ

import (
	"os"
	"sort"
)

// Env is a job's environment mapping. The zero value is an empty
// environment. Env values are treated as immutable: every operation that
// would change the mapping returns a new Env instead.
type Env struct {
	vals map[string]string
}

// New builds an Env from a plain map. The map is copied, so later changes
// to it do not leak into the Env.
func New(m map[string]string) Env {
	vals := make(map[string]string, len(m))
	for k, v := range m {
		vals[k] = v
	}
	return Env{vals: vals}
}

// Get returns the value for key, or the empty string when unset.
func (e Env) Get(key string) string {
	return e.vals[key]
}

// Lookup returns the value for key and whether the key is declared at all.
func (e Env) Lookup(key string) (string, bool) {
	v, ok := e.vals[key]
	return v, ok
}

// Has reports whether key is declared, even if its value is empty.
func (e Env) Has(key string) bool {
	_, ok := e.vals[key]
	return ok
}

// Len returns the number of declared keys.
func (e Env) Len() int {
	return len(e.vals)
}

// Keys returns the declared keys in sorted order, for deterministic
// logging and for materializing a process environment.
func (e Env) Keys() []string {
	keys := make([]string, 0, len(e.vals))
	for k := range e.vals {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Map returns a copy of the underlying mapping.
func (e Env) Map() map[string]string {
	m := make(map[string]string, len(e.vals))
	for k, v := range e.vals {
		m[k] = v
	}
	return m
}

// Overlay merges over onto base with right bias: every key present in
// over wins, keys absent from over keep their base value. Neither input
// is modified.
func Overlay(base, over Env) Env {
	merged := base.Map()
	for k, v := range over.vals {
		merged[k] = v
	}
	return Env{vals: merged}
}

// Apply returns a new Env with the effect's assignments layered on top.
// A nil or empty effect returns the receiver unchanged.
func (e Env) Apply(eff *Effect) Env {
	if eff == nil || len(eff.Set) == 0 {
		return e
	}
	return Overlay(e, New(eff.Set))
}

// Expand substitutes $VAR and ${VAR} references in s with values from the
// environment. Unknown variables expand to the empty string.
func (e Env) Expand(s string) string {
	return os.Expand(s, e.Get)
}
