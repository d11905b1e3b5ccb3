package edesto

import (
	"context"
	"os"
	"path/filepath"
)

// MockFileSystem is a mock implementation of FileSystem for testing
type MockFileSystem struct {
	files map[string][]byte
}

func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		files: make(map[string][]byte),
	}
}

func (fs *MockFileSystem) ReadFile(path string) ([]byte, error) {
	if content, exists := fs.files[path]; exists {
		return content, nil
	}
	return nil, &os.PathError{Op: "open", Path: path, Err: os.ErrNotExist}
}

func (fs *MockFileSystem) WriteFile(path string, content []byte) error {
	fs.files[path] = content
	return nil
}

func (fs *MockFileSystem) FileExists(path string) bool {
	_, exists := fs.files[path]
	return exists
}

func (fs *MockFileSystem) Glob(pattern string) ([]string, error) {
	var matches []string
	for path := range fs.files {
		if ok, err := filepath.Match(pattern, path); err == nil && ok {
			matches = append(matches, path)
		}
	}
	return matches, nil
}

// MockCommandRunner is a mock implementation of CommandRunner for testing.
// It records invocations and returns canned output.
type MockCommandRunner struct {
	// Output is returned from Run when Err is nil
	Output []byte
	// Err is returned from Run when set
	Err error
	// Calls records each command line passed to Run
	Calls [][]string
}

func NewMockCommandRunner(output []byte, err error) *MockCommandRunner {
	return &MockCommandRunner{Output: output, Err: err}
}

func (r *MockCommandRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	r.Calls = append(r.Calls, append([]string{name}, args...))
	if r.Err != nil {
		return nil, r.Err
	}
	return r.Output, nil
}
