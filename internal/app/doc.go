// Package app wires the engine together: it owns the application
// lifecycle, the isolated logger, configuration loading and validation,
// the optional health check server, and the final summary rendering.
//
// Critical startup errors (unreadable or invalid configuration, unknown
// collaborator set) panic out of NewApp; the CLI entrypoint recovers and
// turns them into a clean exit. Nothing executes partially: validation
// happens before a single job is expanded.
package app
