package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/matrixci/internal/collab"
	"github.com/vk/matrixci/internal/config"
	"github.com/vk/matrixci/internal/ctxlog"
	"github.com/vk/matrixci/internal/executor"
	"github.com/vk/matrixci/modules/shell"
)

// coreModules are the collaborator modules registered when the caller
// doesn't supply any (tests do, to substitute fakes).
var coreModules = []collab.Module{&shell.Module{}}

// App encapsulates the engine's dependencies, configuration, and
// lifecycle.
type App struct {
	outW    io.Writer
	logger  *slog.Logger
	model   *config.Model
	set     *collab.Set
	summary *executor.Summary
}

// NewApp constructs a fully initialized App: isolated logger, loaded and
// validated configuration, and a resolved collaborator set. A failure in
// any of these is a fatal startup error and panics; the entrypoint
// recovers and reports it cleanly.
func NewApp(outW io.Writer, appConfig *Config, loader config.Loader, modules ...collab.Module) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	model, err := loader.Load(ctx, appConfig.ConfigPath)
	if err != nil {
		panic(fmt.Errorf("failed to load configuration: %w", err))
	}
	logger.Debug("Configuration loaded into unified model.")

	// Configuration errors are fatal before any job runs; there is no
	// partial execution.
	if err := config.Validate(model); err != nil {
		panic(fmt.Errorf("invalid configuration: %w", err))
	}
	logger.Debug("Configuration validation passed.")

	if len(modules) == 0 {
		modules = coreModules
	}
	catalog := collab.NewCatalog(modules...)
	set, err := catalog.Get(appConfig.CollabSet)
	if err != nil {
		panic(err)
	}
	logger.Debug("Collaborator set resolved.", "set", appConfig.CollabSet)

	return &App{
		outW:   outW,
		logger: logger,
		model:  model,
		set:    set,
	}
}

// Model returns the loaded configuration model. Primarily for testing.
func (a *App) Model() *config.Model {
	return a.model
}

// Summary returns the result of the last Run, or nil before any run.
// Primarily for testing.
func (a *App) Summary() *executor.Summary {
	return a.summary
}
