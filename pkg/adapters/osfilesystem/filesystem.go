// Package osfilesystem provides a filesystem implementation using the os package.
package osfilesystem

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"syscall"

	"github.com/user/splicedd/pkg/ports"
)

const (
	dirPerm  = 0755
	filePerm = 0644
)

// FileSystem implements ports.FileSystem using the os package.
type FileSystem struct{}

// New creates a new FileSystem.
func New() *FileSystem {
	return &FileSystem{}
}

// ReadFile reads the entire contents of a file.
func (f *FileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// WriteFile creates or truncates a file and writes data to it.
func (f *FileSystem) WriteFile(path string, data []byte) error {
	return os.WriteFile(path, data, filePerm)
}

// Create creates or truncates a file and returns it open for writing.
func (f *FileSystem) Create(path string) (io.WriteCloser, error) {
	return os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, filePerm)
}

// MkdirAll creates a directory and all missing parents.
func (f *FileSystem) MkdirAll(path string) error {
	return os.MkdirAll(path, dirPerm)
}

// Exists checks if a file or directory exists.
// Paths that cannot name an entry (running through a regular file, holding a
// NUL byte, or too long) report false rather than an error.
func (f *FileSystem) Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if isAbsent(err) {
		return false, nil
	}
	return false, err
}

func isAbsent(err error) bool {
	return errors.Is(err, fs.ErrNotExist) ||
		errors.Is(err, syscall.ENOTDIR) ||
		errors.Is(err, syscall.EINVAL) ||
		errors.Is(err, syscall.ENAMETOOLONG)
}

var _ ports.FileSystem = (*FileSystem)(nil)
