package app

import (
	"context"

	"roundtrip/internal/adapters/filesystem"
	"roundtrip/internal/hostinfo"
	"roundtrip/internal/logging"
)

// NewAppWithConfig creates a new App with the given configuration, wiring all dependencies.
func NewAppWithConfig(ctx context.Context, cfg *Config) (*App, error) {
	// Create logger.
	logger := logging.NewLoggerWithConfig(logging.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Output: cfg.LogOutput,
	})

	// Create filesystem adapter.
	fs := filesystem.New()

	logger.DebugContext(ctx, "Initializing roundtrip with configuration",
		"logLevel", cfg.LogLevel.String(),
		"logFormat", string(cfg.LogFormat),
		"verbose", cfg.Verbose,
		"tempDir", fs.TempDir())

	return &App{
		FileSystem: fs,
		HostInfo:   hostinfo.New(),
		Logger:     logger,
		Config:     cfg,
	}, nil
}
