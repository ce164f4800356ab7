package testutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// WorkDir is a throwaway working directory for one run.
type WorkDir struct {
	dir string
}

// NewWorkDir creates a fresh directory under the system temp dir.
// Callers must Close it.
func NewWorkDir(pattern string) (*WorkDir, error) {
	dir, err := os.MkdirTemp("", pattern)
	if err != nil {
		return nil, fmt.Errorf("create work dir: %w", err)
	}
	return &WorkDir{dir: dir}, nil
}

// Dir returns the directory path.
func (w *WorkDir) Dir() string {
	return w.dir
}

// Path joins name onto the directory.
func (w *WorkDir) Path(name string) string {
	return filepath.Join(w.dir, name)
}

// Close removes the directory and everything in it.
func (w *WorkDir) Close() error {
	return os.RemoveAll(w.dir)
}
