// Package logging provides centralized logger creation for the roundtrip application.
package logging

import (
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"
)

// Format selects the slog handler.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatAuto Format = "auto" // text on a terminal, JSON otherwise
)

// Config holds logger configuration
type Config struct {
	Level  slog.Level
	Format Format
	Output io.Writer
}

// DefaultConfig returns a default logger configuration
func DefaultConfig() Config {
	return Config{
		Level:  slog.LevelInfo,
		Format: FormatAuto,
		Output: os.Stderr,
	}
}

// NewLoggerWithConfig creates a structured logger from config.
func NewLoggerWithConfig(config Config) *slog.Logger {
	out := config.Output
	if out == nil {
		out = os.Stderr
	}

	opts := &slog.HandlerOptions{
		Level: config.Level,
	}

	var handler slog.Handler
	if ResolveFormat(config.Format, out) == FormatJSON {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}

	return slog.New(handler)
}

// ResolveFormat turns FormatAuto into a concrete format for out. Unknown
// formats fall back to text.
func ResolveFormat(format Format, out io.Writer) Format {
	switch format {
	case FormatJSON:
		return FormatJSON
	case FormatAuto:
		if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			return FormatText
		}
		return FormatJSON
	default:
		return FormatText
	}
}

// NewTestLogger creates a silent logger for tests.
func NewTestLogger() *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: slog.LevelError + 1, // Higher than any real level = silent
	}
	return slog.New(slog.NewTextHandler(io.Discard, opts))
}
