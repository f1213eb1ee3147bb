package app

import (
	"context"
	"io"
	"log/slog"
	"os"

	"roundtrip/internal/domain"
	"roundtrip/internal/logging"
)

// App contains all application dependencies.
type App struct {
	// File operations for the temporary benchmark file
	FileSystem domain.FileSystemAdapter

	// Host description attached to reports on request
	HostInfo domain.HostInfoProvider

	// Logging
	Logger *slog.Logger

	// Configuration
	Config *Config
}

// Config holds application configuration.
type Config struct {
	LogLevel  slog.Level
	LogFormat logging.Format
	LogOutput io.Writer
	Verbose   bool
}

// Option is a functional option for configuring the App.
type Option func(*Config)

// WithLogLevel sets the logging level.
func WithLogLevel(level slog.Level) Option {
	return func(cfg *Config) {
		cfg.LogLevel = level
	}
}

// WithVerbose enables verbose logging.
func WithVerbose(verbose bool) Option {
	return func(cfg *Config) {
		cfg.Verbose = verbose
		if verbose {
			cfg.LogLevel = slog.LevelDebug
		}
	}
}

// WithLogFormat sets the log handler format.
func WithLogFormat(format logging.Format) Option {
	return func(cfg *Config) {
		cfg.LogFormat = format
	}
}

// WithLogOutput redirects log output, which defaults to stderr.
func WithLogOutput(w io.Writer) Option {
	return func(cfg *Config) {
		cfg.LogOutput = w
	}
}

// NewApp creates a new App with the given options.
func NewApp(ctx context.Context, opts ...Option) (*App, error) {
	cfg := &Config{
		LogLevel:  slog.LevelInfo,
		LogFormat: logging.FormatAuto,
		LogOutput: os.Stderr,
		Verbose:   false,
	}

	// Apply options.
	for _, opt := range opts {
		opt(cfg)
	}

	return NewAppWithConfig(ctx, cfg)
}
