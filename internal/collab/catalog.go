package collab

import (
	"fmt"
	"sort"
)

// Module is anything that can contribute collaborator sets to a catalog.
// Modules are registered once at application startup.
type Module interface {
	Register(c *Catalog)
}

// Catalog holds the named collaborator sets available to a run. It is
// populated during startup and read-only afterwards.
type Catalog struct {
	sets map[string]*Set
}

// NewCatalog creates an empty catalog and registers the given modules.
func NewCatalog(modules ...Module) *Catalog {
	c := &Catalog{sets: make(map[string]*Set)}
	for _, m := range modules {
		m.Register(c)
	}
	return c
}

// Add registers a set under a name. Re-registering a name is a programmer
// error and panics, matching startup-time registry behavior elsewhere.
func (c *Catalog) Add(name string, s *Set) {
	if _, dup := c.sets[name]; dup {
		panic(fmt.Sprintf("collab: duplicate collaborator set %q", name))
	}
	c.sets[name] = s
}

// Get returns the set registered under name.
func (c *Catalog) Get(name string) (*Set, error) {
	s, ok := c.sets[name]
	if !ok {
		return nil, fmt.Errorf("unknown collaborator set %q (available: %v)", name, c.Names())
	}
	return s, nil
}

// Names lists the registered set names in sorted order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.sets))
	for name := range c.sets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
