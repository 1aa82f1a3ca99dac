// Package ports defines the interfaces the file gateway depends on.
package ports

import "io"

// FileSystem abstracts the filesystem primitives used by the gateway and config.
type FileSystem interface {
	// ReadFile reads the entire contents of a file.
	ReadFile(path string) ([]byte, error)

	// WriteFile creates or truncates a file and writes data to it.
	// Parent directories are not created.
	WriteFile(path string, data []byte) error

	// Create creates or truncates a file and returns it open for writing.
	// Parent directories are not created.
	Create(path string) (io.WriteCloser, error)

	// MkdirAll creates a directory and all missing parents.
	// It succeeds when the directory already exists.
	MkdirAll(path string) error

	// Exists reports whether a file or directory exists at path.
	Exists(path string) (bool, error)
}
