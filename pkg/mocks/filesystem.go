// Package mocks provides in-memory implementations of the ports interfaces for tests.
package mocks

import (
	"fmt"
	"io"
	"io/fs"
	"sync"

	"github.com/user/splicedd/pkg/ports"
)

// FileSystem is a mock implementation of ports.FileSystem.
// Setting a *Func hook replaces the in-memory behaviour of that method.
type FileSystem struct {
	mu    sync.RWMutex
	files map[string][]byte
	dirs  map[string]bool
	calls int

	ReadFileFunc  func(path string) ([]byte, error)
	WriteFileFunc func(path string, data []byte) error
	CreateFunc    func(path string) (io.WriteCloser, error)
	MkdirAllFunc  func(path string) error
	ExistsFunc    func(path string) (bool, error)

	// FileWriteFunc, when set, intercepts writes to files returned by Create.
	FileWriteFunc func(path string, p []byte) (int, error)
}

// NewFileSystem creates a new mock FileSystem.
func NewFileSystem() *FileSystem {
	return &FileSystem{
		files: make(map[string][]byte),
		dirs:  make(map[string]bool),
	}
}

func (m *FileSystem) record() {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()
}

func (m *FileSystem) ReadFile(path string) ([]byte, error) {
	m.record()
	if m.ReadFileFunc != nil {
		return m.ReadFileFunc(path)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if data, ok := m.files[path]; ok {
		return append([]byte(nil), data...), nil
	}
	return nil, fmt.Errorf("open %s: %w", path, fs.ErrNotExist)
}

func (m *FileSystem) WriteFile(path string, data []byte) error {
	m.record()
	if m.WriteFileFunc != nil {
		return m.WriteFileFunc(path, data)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[path] = append([]byte(nil), data...)
	return nil
}

func (m *FileSystem) Create(path string) (io.WriteCloser, error) {
	m.record()
	if m.CreateFunc != nil {
		return m.CreateFunc(path)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[path] = []byte{}
	return &file{fs: m, path: path}, nil
}

func (m *FileSystem) MkdirAll(path string) error {
	m.record()
	if m.MkdirAllFunc != nil {
		return m.MkdirAllFunc(path)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dirs[path] = true
	return nil
}

func (m *FileSystem) Exists(path string) (bool, error) {
	m.record()
	if m.ExistsFunc != nil {
		return m.ExistsFunc(path)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if _, ok := m.files[path]; ok {
		return true, nil
	}
	if _, ok := m.dirs[path]; ok {
		return true, nil
	}
	return false, nil
}

// GetFile returns the contents of a file (for test verification).
func (m *FileSystem) GetFile(path string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.files[path]
	return data, ok
}

// SetFile seeds a file (for test setup).
func (m *FileSystem) SetFile(path string, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[path] = append([]byte(nil), data...)
}

// HasDir reports whether MkdirAll was called for path.
func (m *FileSystem) HasDir(path string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.dirs[path]
}

// Calls returns the number of FileSystem methods invoked so far.
func (m *FileSystem) Calls() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.calls
}

type file struct {
	fs     *FileSystem
	path   string
	closed bool
}

func (f *file) Write(p []byte) (int, error) {
	if f.closed {
		return 0, fs.ErrClosed
	}
	if f.fs.FileWriteFunc != nil {
		return f.fs.FileWriteFunc(f.path, p)
	}
	f.fs.mu.Lock()
	defer f.fs.mu.Unlock()
	f.fs.files[f.path] = append(f.fs.files[f.path], p...)
	return len(p), nil
}

func (f *file) Close() error {
	if f.closed {
		return fs.ErrClosed
	}
	f.closed = true
	return nil
}

var _ ports.FileSystem = (*FileSystem)(nil)
