package app

import (
	"errors"
	"time"
)

// Config holds everything an App instance needs to run.
type Config struct {
	// ConfigPath points at the matrix configuration file (.hcl, .yml or
	// .yaml).
	ConfigPath string

	// CollabSet names the collaborator set that performs the actual
	// install/test/build work.
	CollabSet string

	LogFormat       string
	LogLevel        string
	HealthcheckPort int
	WorkerCount     int

	// StepTimeout is the per-step time budget; zero disables it.
	StepTimeout time.Duration
}

// NewConfig validates and returns the configuration.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ConfigPath == "" {
		return nil, errors.New("ConfigPath is a required configuration field and cannot be empty")
	}
	if cfg.CollabSet == "" {
		cfg.CollabSet = "shell"
	}
	return &cfg, nil
}
