package gateway

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/user/splicedd/pkg/ports"
)

// SampleSuffix is the file name suffix WriteSampleFile requires.
const SampleSuffix = ".wav"

// Gateway performs one filesystem side effect per call.
type Gateway struct {
	fs  ports.FileSystem
	log ports.Logger
}

// New creates a Gateway backed by fs.
func New(fs ports.FileSystem, log ports.Logger) *Gateway {
	return &Gateway{
		fs:  fs,
		log: log.WithComponent("gateway"),
	}
}

// WriteSampleFile writes buffer to baseDir/relativePath, creating missing
// parent directories and truncating any existing file.
// relativePath must end with SampleSuffix.
func (g *Gateway) WriteSampleFile(baseDir, relativePath string, buffer []byte) error {
	const op = "WriteSampleFile"

	if !strings.HasSuffix(relativePath, SampleSuffix) {
		return validationError(op, ErrInvalidSuffix)
	}

	fullPath := filepath.Join(baseDir, relativePath)
	if err := g.ensureParent(op, fullPath); err != nil {
		g.log.Warn("Write to %s failed: %s", fullPath, err)
		return err
	}

	g.log.Debug("Writing %d bytes to %s", len(buffer), fullPath)
	if err := g.write(op, fullPath, buffer); err != nil {
		g.log.Warn("Write to %s failed: %s", fullPath, err)
		return err
	}
	return nil
}

// FileExists reports whether a file or directory exists at baseDir/relativePath.
// The answer may be stale by the time the caller acts on it.
func (g *Gateway) FileExists(baseDir, relativePath string) (bool, error) {
	fullPath := filepath.Join(baseDir, relativePath)
	g.log.Debug("Checking existence of %s", fullPath)

	exists, err := g.fs.Exists(fullPath)
	if err != nil {
		return false, ioError("FileExists", "failed to check file", err)
	}
	return exists, nil
}

// CreatePlaceholderFile creates an empty file at baseDir/relativePath,
// creating missing parent directories and truncating any existing file.
func (g *Gateway) CreatePlaceholderFile(baseDir, relativePath string) error {
	const op = "CreatePlaceholderFile"

	fullPath := filepath.Join(baseDir, relativePath)
	if err := g.ensureParent(op, fullPath); err != nil {
		g.log.Warn("Placeholder %s failed: %s", fullPath, err)
		return err
	}

	// filepath.Join drops a trailing separator; a path naming a directory
	// must still fail to be created as a file.
	if hasTrailingSeparator(relativePath) {
		err := ioError(op, "failed to create file", ErrDirectoryPath)
		g.log.Warn("Placeholder %s failed: %s", fullPath, err)
		return err
	}

	g.log.Debug("Creating placeholder at %s", fullPath)
	if err := g.write(op, fullPath, nil); err != nil {
		g.log.Warn("Placeholder %s failed: %s", fullPath, err)
		return err
	}
	return nil
}

// ensureParent creates the parent directory of fullPath.
func (g *Gateway) ensureParent(op, fullPath string) error {
	parent, ok := parentDir(fullPath)
	if !ok {
		return pathError(op)
	}

	g.log.Debug("Ensuring directory %s", parent)
	if err := g.fs.MkdirAll(parent); err != nil {
		return ioError(op, "failed to create directories", err)
	}
	return nil
}

// write creates or truncates fullPath and writes data to it.
func (g *Gateway) write(op, fullPath string, data []byte) error {
	f, err := g.fs.Create(fullPath)
	if err != nil {
		return ioError(op, "failed to create file", err)
	}

	if len(data) > 0 {
		if _, err := f.Write(data); err != nil {
			f.Close()
			return ioError(op, "failed to write to file", err)
		}
	}

	if err := f.Close(); err != nil {
		if len(data) == 0 {
			return ioError(op, "failed to create file", err)
		}
		return ioError(op, "failed to write to file", err)
	}
	return nil
}

// parentDir returns the directory containing path. It reports false for the
// empty path and for filesystem roots, which are their own parent.
func parentDir(path string) (string, bool) {
	if path == "" {
		return "", false
	}
	dir := filepath.Dir(path)
	if dir == path {
		return "", false
	}
	return dir, true
}

func hasTrailingSeparator(path string) bool {
	return path != "" && os.IsPathSeparator(path[len(path)-1])
}
