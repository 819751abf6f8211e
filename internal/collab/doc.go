// Package collab declares the engine's external collaborators: the unit
// under test, the dependency registry, the documentation toolchain, and
// coverage reporting services. The engine only orchestrates; everything
// that actually installs, builds, or tests happens behind these
// interfaces.
//
// Concrete collaborator sets are provided by modules (see modules/shell)
// and registered in a Catalog under a name the CLI can select.
package collab
