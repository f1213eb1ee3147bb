package domain

import (
	"io"
	"os"
)

// File is an open file handle.
type File interface {
	io.Reader
	io.Writer
	io.Closer
	Name() string
}

// FileSystemAdapter defines the interface for file operations.
type FileSystemAdapter interface {
	// CreateTemp creates a new uniquely named file opened for writing.
	// pattern follows os.CreateTemp: the last "*" is replaced by a random string.
	CreateTemp(dir, pattern string) (File, error)
	Open(path string) (File, error)
	Remove(path string) error
	Stat(path string) (os.FileInfo, error)
	TempDir() string
}
