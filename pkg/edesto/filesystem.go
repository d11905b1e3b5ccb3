package edesto

import (
	"os"
	"path/filepath"
)

// FileSystem provides file system operations for the edesto tool.
// Implementations can use the OS file system or mock storage for testing.
type FileSystem interface {
	// WriteFile writes data to a file.
	// The file is created if it doesn't exist, and truncated if it does.
	WriteFile(path string, data []byte) error

	// ReadFile reads the contents of a file.
	ReadFile(path string) ([]byte, error)

	// FileExists checks if a file exists and is accessible.
	FileExists(path string) bool

	// Glob returns the paths matching a shell glob pattern.
	Glob(pattern string) ([]string, error)
}

// OSFileSystem implements FileSystem using the OS file system
type OSFileSystem struct{}

// NewOSFileSystem creates a new OS file system instance.
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

// WriteFile writes data to a file.
// The file is created if it doesn't exist, and truncated if it does.
// File permissions are set to 0644 (rw-r--r--).
func (fs *OSFileSystem) WriteFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0o644)
}

// ReadFile reads the contents of a file.
// Returns the file data as bytes.
func (fs *OSFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// FileExists checks if a file exists and is accessible.
// Returns false if the path is a directory or doesn't exist.
func (fs *OSFileSystem) FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// Glob returns the paths matching a shell glob pattern.
// A pattern that matches nothing returns an empty slice, not an error.
func (fs *OSFileSystem) Glob(pattern string) ([]string, error) {
	return filepath.Glob(pattern)
}
