// Package testutil provides test utilities and constructors with pre-injected dependencies.
package testutil

import (
	"log/slog"

	"github.com/spf13/afero"

	"roundtrip/internal/adapters/filesystem"
	"roundtrip/internal/logging"
)

// Logger returns a test logger for use in tests.
func Logger() *slog.Logger {
	return logging.NewTestLogger()
}

// MemFileSystem returns a filesystem adapter over an in-memory filesystem,
// along with the afero.Fs so tests can inspect what is left behind.
func MemFileSystem() (*filesystem.Adapter, afero.Fs) {
	fs := afero.NewMemMapFs()
	return filesystem.NewWithFs(fs), fs
}
