// Package shell provides the production collaborator set: every
// install, build, and test operation is delegated to a shell command so
// the engine stays ignorant of what is actually being built. Commands
// follow pip/pytest/sphinx conventions and are parameterized entirely by
// the job environment.
package shell

import (
	"github.com/vk/matrixci/internal/collab"
	"github.com/vk/matrixci/modules/coveralls"
)

// Module registers the "shell" collaborator set.
type Module struct{}

// Register implements collab.Module.
func (m *Module) Register(c *collab.Catalog) {
	c.Add("shell", &collab.Set{
		Target:   &unitUnderTest{},
		Packages: &packageRegistry{},
		Docs:     &docBuilder{},
		Reporters: []collab.CoverageReporter{
			coveralls.New(""),
		},
	})
}
