package filesystem

import (
	"os"

	"github.com/spf13/afero"

	"roundtrip/internal/domain"
)

// Adapter provides file system operations.
type Adapter struct {
	fs afero.Fs
}

// New creates a new filesystem adapter backed by the operating system.
func New() *Adapter {
	return NewWithFs(afero.NewOsFs())
}

// NewWithFs creates a filesystem adapter on top of fs.
func NewWithFs(fs afero.Fs) *Adapter {
	return &Adapter{fs: fs}
}

// CreateTemp creates a new uniquely named file in dir.
func (a *Adapter) CreateTemp(dir, pattern string) (domain.File, error) {
	if dir == "" {
		dir = a.TempDir()
	}
	return afero.TempFile(a.fs, dir, pattern)
}

// Open opens a file for reading.
func (a *Adapter) Open(path string) (domain.File, error) {
	return a.fs.Open(path)
}

// Remove deletes a file.
func (a *Adapter) Remove(path string) error {
	return a.fs.Remove(path)
}

// Stat returns file info.
func (a *Adapter) Stat(path string) (os.FileInfo, error) {
	return a.fs.Stat(path)
}

// TempDir returns the temporary directory.
func (a *Adapter) TempDir() string {
	return os.TempDir()
}
